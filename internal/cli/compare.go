package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/pipeline"
)

var compareJSON string

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <file1> <file2>",
	Short: "Compare the clause-type coverage of two documents",
	Long: `Compare classifies both documents and diffs their clause-type sets:
- Types present only in the first document
- Types present only in the second document
- Types common to both

Example:
  clauselens compare old-contract.txt new-contract.txt
  clauselens compare v1.pdf v2.pdf --json diff.json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareJSON, "json", "", "output JSON path (optional)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	analyzer := pipeline.NewAnalyzer(cfg, nil)

	texts := make([]string, 2)
	for i, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		text, err := analyzer.ExtractFile(path, data)
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}
		texts[i] = text
	}

	result, err := analyzer.Compare(texts[0], texts[1])
	if err != nil {
		return fmt.Errorf("compare failed: %w", err)
	}

	if compareJSON != "" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if err := os.WriteFile(compareJSON, data, 0644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}

	fmt.Printf("Only in %s: %s\n", args[0], joinOrNone(result.Doc1UniqueTypes))
	fmt.Printf("Only in %s: %s\n", args[1], joinOrNone(result.Doc2UniqueTypes))
	fmt.Printf("Common: %s\n", joinOrNone(result.CommonTypes))

	return nil
}

func joinOrNone(types []string) string {
	if len(types) == 0 {
		return "(none)"
	}
	return strings.Join(types, ", ")
}
