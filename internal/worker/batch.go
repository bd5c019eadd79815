package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// DocumentAnalyzer analyzes one document file.
type DocumentAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// AnalyzeJob analyzes a single document file.
type AnalyzeJob struct {
	Path     string
	Analyzer DocumentAnalyzer
}

// Execute runs the analysis for the job's file.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &FileResult{
		Path:   j.Path,
		Report: report,
		Error:  err,
	}
}

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the analysis error, if any.
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many document files concurrently.
type BatchProcessor struct {
	analyzer    DocumentAnalyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer DocumentAnalyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths analyzes the given files concurrently.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(ctx, b.concurrency)
	pool.Start()

	// Submit concurrently so result draining keeps the queue moving.
	go func() {
		for _, path := range paths {
			pool.Submit(&AnalyzeJob{Path: path, Analyzer: b.analyzer})
		}
		pool.Close()
	}()

	results := pool.Wait()

	fileResults := make([]*FileResult, len(results))
	for i, result := range results {
		fileResults[i] = result.(*FileResult)
	}

	return fileResults
}

// ProcessFile reads document paths from a list file and analyzes them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*FileResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}

	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads document paths from a file, one per line.
// Empty lines and # comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
