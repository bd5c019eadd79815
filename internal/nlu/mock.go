package nlu

import "context"

// MockProvider returns the fixed fallback analysis used whenever no real
// NLU service is configured or the configured one fails. The values are
// part of the documented schema and must stay stable.
type MockProvider struct{}

// NewMockProvider creates a mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider name.
func (p *MockProvider) Name() string { return "mock" }

// IsAvailable always reports true.
func (p *MockProvider) IsAvailable(ctx context.Context) bool { return true }

// Analyze returns the documented mock result regardless of input.
func (p *MockProvider) Analyze(ctx context.Context, text string) (*Result, error) {
	return MockResult(), nil
}

// MockResult is the documented fallback analysis.
func MockResult() *Result {
	return &Result{
		Entities: []Entity{
			{Text: "Contract Agreement", Type: "Legal Document", Confidence: 0.95, Sentiment: "neutral", LegalRelevance: "high"},
			{Text: "Payment Terms", Type: "Legal Clause", Confidence: 0.88, Sentiment: "neutral", LegalRelevance: "high"},
			{Text: "Liability Clause", Type: "Legal Clause", Confidence: 0.82, Sentiment: "negative", LegalRelevance: "high"},
		},
		Keywords: []Keyword{
			{Text: "liability", Relevance: 0.92, Sentiment: "negative", LegalCategory: "risk"},
			{Text: "payment", Relevance: 0.85, Sentiment: "neutral", LegalCategory: "financial"},
			{Text: "termination", Relevance: 0.78, Sentiment: "negative", LegalCategory: "temporal"},
			{Text: "obligations", Relevance: 0.75, Sentiment: "neutral", LegalCategory: "obligations"},
		},
		Sentiment: DocumentSentiment{
			Score:               0.1,
			Label:               "neutral",
			LegalToneAssessment: "formal_neutral",
		},
		Emotion: map[string]float64{
			"sadness": 0.2,
			"joy":     0.3,
			"fear":    0.4,
			"disgust": 0.1,
			"anger":   0.2,
		},
		Summary: "This legal document contains standard contractual clauses with moderate risk levels and formal neutral tone.",
		RiskIndicators: []string{
			"High-risk term detected: liability",
			"High-risk term detected: termination",
		},
		ComplianceFlags: []string{},
	}
}
