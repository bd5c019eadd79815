// Package pipeline orchestrates the complete document annotation flow.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/clauselens/clauselens/internal/boilerplate"
	"github.com/clauselens/clauselens/internal/cache"
	"github.com/clauselens/clauselens/internal/classify"
	"github.com/clauselens/clauselens/internal/compare"
	"github.com/clauselens/clauselens/internal/extract"
	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/segment"
	"github.com/clauselens/clauselens/internal/suggest"
	"github.com/clauselens/clauselens/internal/tone"
	"github.com/clauselens/clauselens/internal/timeline"
)

// Analyzer runs the annotation passes over raw document text and assembles
// one Report. All components are pure functions of their text input plus
// fixed pattern tables built once here; an Analyzer is safe for concurrent
// use across independent requests.
type Analyzer struct {
	classifier *classify.Classifier
	timeline   *timeline.Extractor
	detector   *boilerplate.Detector
	toner      *tone.Analyzer
	suggester  *suggest.Generator
	comparator *compare.Comparator
	registry   *extract.Registry
	cache      cache.Cache // Optional result cache (nil if disabled)
	config     *model.Config
}

// NewAnalyzer builds an analyzer from configuration. backend is the
// optional sentiment capability for tone analysis (nil disables it and
// selects the fixed fallback profile).
func NewAnalyzer(cfg *model.Config, backend tone.Backend) *Analyzer {
	rules := classify.DefaultRules()
	classifier := classify.NewClassifier(rules, cfg.Analysis.MinSegmentLength)

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}

	return &Analyzer{
		classifier: classifier,
		timeline:   timeline.NewExtractor(),
		detector:   boilerplate.NewDetector(),
		toner:      tone.NewAnalyzer(cfg.Analysis.ToneSampleSize, backend),
		suggester:  suggest.NewGenerator(),
		comparator: compare.NewComparator(classifier),
		registry:   extract.NewRegistry(),
		cache:      resultCache,
		config:     cfg,
	}
}

// AnalyzeFile reads a document file, extracts its text by format, and runs
// the full analysis.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	text, err := a.registry.ExtractFile(path, data)
	if err != nil {
		return nil, err
	}

	return a.Analyze(ctx, text)
}

// ExtractFile converts document bytes to plain text using the registered
// extractor for the filename's format.
func (a *Analyzer) ExtractFile(filename string, data []byte) (string, error) {
	return a.registry.ExtractFile(filename, data)
}

// Analyze runs every annotation pass over the text and assembles the
// report. Empty input is an error; empty pass results are not.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*model.Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrEmptyInput
	}

	key := cache.Key(text)
	if a.cache != nil {
		if data, found := a.cache.Get(key); found {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			// Corrupt entry: drop it and recompute.
			_ = a.cache.Delete(key)
		}
	}

	segments := segment.Split(text)

	clauses := a.classifier.Classify(segments)

	report := &model.Report{
		AnalyzedAt:   time.Now().UTC(),
		Clauses:      clauses,
		TimelineInfo: a.timeline.Extract(segments),
		Boilerplate:  a.detector.Detect(segments),
		ToneAnalysis: a.toner.Analyze(ctx, segments),
		Suggestions:  a.suggester.Generate(clauses),
		Statistics:   buildStatistics(clauses),
	}

	if a.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = a.cache.Set(key, data, 0)
		}
	}

	return report, nil
}

// Compare diffs the category-tag sets of two documents. Both texts must be
// non-empty.
func (a *Analyzer) Compare(doc1Text, doc2Text string) (*model.ComparisonResult, error) {
	if strings.TrimSpace(doc1Text) == "" || strings.TrimSpace(doc2Text) == "" {
		return nil, model.ErrEmptyInput
	}

	result := a.comparator.Compare(doc1Text, doc2Text)
	return &result, nil
}

// buildStatistics summarizes the clause set. The zero-clause average is
// exactly 0, never a division error.
func buildStatistics(clauses []model.Clause) model.Statistics {
	stats := model.Statistics{
		TotalClauses:     len(clauses),
		RiskDistribution: make(map[string]int),
		TypeDistribution: make(map[string]int),
	}

	if len(clauses) == 0 {
		return stats
	}

	sum := 0
	for _, clause := range clauses {
		stats.RiskDistribution[string(clause.RiskLevel)]++
		for _, t := range clause.Types {
			stats.TypeDistribution[t]++
		}
		sum += clause.ImportanceScore
	}

	avg := float64(sum) / float64(len(clauses))
	stats.AvgImportanceScore = math.Round(avg*100) / 100

	return stats
}
