package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/util"
)

// OpenAIProvider implements the Provider interface on the OpenAI Chat
// Completions API. The model returns raw entities, keywords, sentiment, and
// emotion; the legal enrichment (relevance tiers, categories, risk
// indicators, compliance flags, summary) is computed locally so the output
// schema never depends on model phrasing.
type OpenAIProvider struct {
	client *openai.Client
	config model.NLUConfig
}

// NewOpenAIProvider creates a new OpenAI NLU provider.
func NewOpenAIProvider(cfg model.NLUConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{
		Transport: &http.Transport{
			Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
		},
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// rawAnalysis is the JSON shape requested from the model.
type rawAnalysis struct {
	Entities []struct {
		Text       string  `json:"text"`
		Type       string  `json:"type"`
		Confidence float64 `json:"confidence"`
		Sentiment  string  `json:"sentiment"`
	} `json:"entities"`
	Keywords []struct {
		Text      string  `json:"text"`
		Relevance float64 `json:"relevance"`
		Sentiment string  `json:"sentiment"`
	} `json:"keywords"`
	Sentiment struct {
		Score float64 `json:"score"`
		Label string  `json:"label"`
	} `json:"sentiment"`
	Emotion map[string]float64 `json:"emotion"`
}

const analysisPrompt = `Analyze the following legal document text. Respond with a single JSON object:
{
  "entities":  [{"text": "...", "type": "Person|Organization|Location|Money|Date|Legal Document|Legal Clause", "confidence": 0.0, "sentiment": "positive|neutral|negative"}],
  "keywords":  [{"text": "...", "relevance": 0.0, "sentiment": "positive|neutral|negative"}],
  "sentiment": {"score": 0.0, "label": "positive|neutral|negative"},
  "emotion":   {"sadness": 0.0, "joy": 0.0, "fear": 0.0, "disgust": 0.0, "anger": 0.0}
}
Limit entities and keywords to 20 each. Document text:

`

// Analyze sends the text to the model and enriches the response with the
// local legal heuristics.
func (p *OpenAIProvider) Analyze(ctx context.Context, text string) (*Result, error) {
	modelName := p.config.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a legal document analysis service. Respond only with the requested JSON object.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: analysisPrompt + truncate(text),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.1,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	var raw rawAnalysis
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	return enrich(raw), nil
}

// enrich applies the local legal heuristics to the model's raw analysis.
func enrich(raw rawAnalysis) *Result {
	entities := make([]Entity, 0, len(raw.Entities))
	for _, e := range raw.Entities {
		sentiment := e.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		entities = append(entities, Entity{
			Text:           e.Text,
			Type:           e.Type,
			Confidence:     e.Confidence,
			Sentiment:      sentiment,
			LegalRelevance: AssessLegalRelevance(e.Text, e.Type),
		})
	}

	keywords := make([]Keyword, 0, len(raw.Keywords))
	for _, k := range raw.Keywords {
		sentiment := k.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		keywords = append(keywords, Keyword{
			Text:          k.Text,
			Relevance:     k.Relevance,
			Sentiment:     sentiment,
			LegalCategory: CategorizeLegalKeyword(k.Text),
		})
	}

	sentiment := DocumentSentiment{
		Score:               raw.Sentiment.Score,
		Label:               raw.Sentiment.Label,
		LegalToneAssessment: AssessLegalTone(raw.Sentiment.Score, raw.Sentiment.Label),
	}
	if sentiment.Label == "" {
		sentiment.Label = "neutral"
	}

	emotion := raw.Emotion
	if emotion == nil {
		emotion = map[string]float64{}
	}

	return &Result{
		Entities:        entities,
		Keywords:        keywords,
		Sentiment:       sentiment,
		Emotion:         emotion,
		Summary:         LegalSummary(entities, keywords, sentiment),
		RiskIndicators:  RiskIndicators(entities, keywords),
		ComplianceFlags: ComplianceFlags(keywords),
	}
}
