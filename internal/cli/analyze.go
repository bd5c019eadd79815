package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/nlu"
	"github.com/clauselens/clauselens/internal/pipeline"
	"github.com/clauselens/clauselens/internal/tone"
)

var (
	outJSON     string
	outMD       string
	timeout     time.Duration
	noCache     bool
	noFooter    bool
	minLength   int
	nluEnabled  bool
	nluProvider string
	nluModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single document and generate an annotation report",
	Long: `Analyze runs every annotation pass over one document:
- Split the text into sentence-level segments
- Classify clauses and score their risk and importance
- Extract dates, durations, and deadline cues
- Flag boilerplate and generate rewriting suggestions
- Profile the document's tone

Supported formats: .txt, .text, .pdf, .docx, .html, .htm

Example:
  clauselens analyze contract.txt
  clauselens analyze contract.pdf --json report.json --md report.md
  clauselens analyze contract.docx --nlu openai --nlu-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	// Analysis flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().IntVar(&minLength, "min-length", 20, "minimum segment length for clause classification")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable result cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// NLU flags
	analyzeCmd.Flags().BoolVar(&nluEnabled, "nlu", false, "enable external NLU enrichment for tone analysis")
	analyzeCmd.Flags().StringVar(&nluProvider, "nlu-provider", "openai", "NLU provider (openai, mock)")
	analyzeCmd.Flags().StringVar(&nluModel, "nlu-model", "gpt-4o-mini", "NLU model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", path)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	var backend *nlu.Service
	if cfg.NLU.Provider != "" {
		backend = nlu.NewService(cfg.NLU, cfg.RateLimiting, verbose)
	}

	analyzer := pipeline.NewAnalyzer(cfg, toneBackend(backend))

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Extracting text...\n")
	}

	report, err := analyzer.AnalyzeFile(ctx, path)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Classified %d clauses\n", report.Statistics.TotalClauses)
		fmt.Fprintf(os.Stderr, "✓ Extracted %d timeline entries\n", len(report.TimelineInfo))
		fmt.Fprintf(os.Stderr, "✓ Flagged %d boilerplate matches\n", len(report.Boilerplate))
		fmt.Fprintf(os.Stderr, "✓ Generated %d rewriting suggestions\n", len(report.Suggestions))
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render Markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outMD)
		}
	}

	renderer.RenderSummary(report)

	return nil
}

// toneBackend adapts the optional NLU service to the tone analyzer's
// backend interface. A nil or disabled service must become a nil interface,
// not a typed-nil one.
func toneBackend(svc *nlu.Service) tone.Backend {
	if svc == nil || !svc.Enabled() {
		return nil
	}
	return svc
}

// buildConfig assembles the runtime configuration from defaults and the
// analyze/batch flag set.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Analysis.MinSegmentLength = minLength
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if nluEnabled {
		cfg.NLU.Provider = nluProvider
		cfg.NLU.Model = nluModel

		switch nluProvider {
		case "openai":
			cfg.NLU.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.NLU.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
			if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
				cfg.NLU.BaseURL = baseURL
			}
		case "mock":
			// No credentials needed
		}
	}

	return cfg, nil
}
