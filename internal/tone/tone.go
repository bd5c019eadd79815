// Package tone aggregates lexical indicators across a sampled prefix of
// segments into document-level formality, assertiveness, and risk metrics.
package tone

import (
	"context"
	"math"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// Backend is the optional external sentiment capability. The heuristic tone
// computation never consults it beyond availability; when absent, a fixed
// fallback profile is returned instead.
type Backend interface {
	IsAvailable(ctx context.Context) bool
}

// Analyzer computes document-level tone from indicator word counts.
type Analyzer struct {
	sampleSize int
	backend    Backend

	formalIndicators    []string
	assertiveIndicators []string
	riskyIndicators     []string
}

// NewAnalyzer creates a tone analyzer sampling at most sampleSize segments.
// backend may be nil (sentiment capability disabled).
func NewAnalyzer(sampleSize int, backend Backend) *Analyzer {
	if sampleSize <= 0 {
		sampleSize = 10
	}
	return &Analyzer{
		sampleSize:          sampleSize,
		backend:             backend,
		formalIndicators:    []string{"shall", "hereby", "whereas", "pursuant", "notwithstanding"},
		assertiveIndicators: []string{"must", "required", "mandatory", "obligation", "duty"},
		riskyIndicators:     []string{"penalty", "breach", "default", "terminate", "void"},
	}
}

// Analyze computes the tone profile over the first sampleSize segments.
// Returns the fallback profile when no sentiment backend is available.
// The overall sentiment label in the heuristic path is fixed to "formal"
// and is not derived from the computed scores.
func (a *Analyzer) Analyze(ctx context.Context, segments []model.Segment) model.ToneProfile {
	if a.backend == nil || !a.backend.IsAvailable(ctx) {
		return FallbackProfile()
	}
	if len(segments) == 0 {
		return FallbackProfile()
	}

	sampled := segments
	if len(sampled) > a.sampleSize {
		sampled = sampled[:a.sampleSize]
	}

	var formality, assertiveness, risky int
	for _, seg := range sampled {
		lower := strings.ToLower(seg.Raw)
		formality += countPresent(lower, a.formalIndicators)
		assertiveness += countPresent(lower, a.assertiveIndicators)
		risky += countPresent(lower, a.riskyIndicators)
	}

	n := float64(len(sampled))

	riskTone := model.RiskToneHigh
	switch {
	case risky < 2:
		riskTone = model.RiskToneLow
	case risky < 5:
		riskTone = model.RiskToneModerate
	}

	return model.ToneProfile{
		OverallSentiment:   "formal",
		FormalityScore:     normalize(float64(formality), n),
		AssertivenessScore: normalize(float64(assertiveness), n),
		RiskTone:           riskTone,
	}
}

// FallbackProfile is returned when the sentiment capability is unavailable.
func FallbackProfile() model.ToneProfile {
	return model.ToneProfile{
		OverallSentiment:   "neutral",
		FormalityScore:     7,
		AssertivenessScore: 5,
		RiskTone:           model.RiskToneModerate,
	}
}

// normalize scales a raw indicator total into [0,10], 1 decimal.
func normalize(total, sampled float64) float64 {
	score := math.Min(total/sampled*10, 10)
	return math.Round(score*10) / 10
}

func countPresent(lower string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(lower, ind) {
			n++
		}
	}
	return n
}
