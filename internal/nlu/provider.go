// Package nlu integrates an optional external natural-language-understanding
// service for entity, keyword, sentiment, and emotion analysis of legal
// documents. The core annotation pipeline never depends on it; when the
// service is unavailable the documented mock result is returned instead.
package nlu

import (
	"context"
	"fmt"
	"strings"

	"github.com/clauselens/clauselens/internal/model"
)

// maxAnalyzeChars caps the text sent to the external service.
const maxAnalyzeChars = 50000

// Provider defines the interface for NLU backends.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Analyze runs entity/keyword/sentiment/emotion analysis over the text.
	Analyze(ctx context.Context, text string) (*Result, error)

	// IsAvailable checks if the provider is properly configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Result is the legal-document NLU analysis. The schema (including the
// mock values returned when no service is configured) is part of the
// public API surface and must not drift.
type Result struct {
	Entities        []Entity           `json:"entities"`
	Keywords        []Keyword          `json:"keywords"`
	Sentiment       DocumentSentiment  `json:"sentiment"`
	Emotion         map[string]float64 `json:"emotion"`
	Summary         string             `json:"summary"`
	RiskIndicators  []string           `json:"risk_indicators"`
	ComplianceFlags []string           `json:"compliance_flags"`
}

// Entity is one recognized entity with its legal-relevance tier.
type Entity struct {
	Text           string  `json:"text"`
	Type           string  `json:"type"`
	Confidence     float64 `json:"confidence"`
	Sentiment      string  `json:"sentiment"`
	LegalRelevance string  `json:"legal_relevance"`
}

// Keyword is one extracted keyword with its legal category.
type Keyword struct {
	Text          string  `json:"text"`
	Relevance     float64 `json:"relevance"`
	Sentiment     string  `json:"sentiment"`
	LegalCategory string  `json:"legal_category"`
}

// DocumentSentiment is the document-level sentiment assessment.
type DocumentSentiment struct {
	Score               float64 `json:"score"`
	Label               string  `json:"label"`
	LegalToneAssessment string  `json:"legal_tone_assessment"`
}

// NewProvider creates an NLU provider from configuration. An empty provider
// name disables the integration (nil, nil).
func NewProvider(cfg model.NLUConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "mock":
		return NewMockProvider(), nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown NLU provider: %s (supported: openai, mock)", cfg.Provider)
	}
}

// truncate limits text to the provider input cap.
func truncate(text string) string {
	if len(text) > maxAnalyzeChars {
		return text[:maxAnalyzeChars] + "..."
	}
	return text
}
