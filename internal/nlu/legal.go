package nlu

import (
	"fmt"
	"strings"
)

// legalEntityTypes are entity types always considered highly relevant.
var legalEntityTypes = []string{"Person", "Organization", "Location", "Money", "Date"}

// legalTerms mark entity text as highly relevant regardless of type.
var legalTerms = []string{"contract", "agreement", "liability", "damages", "breach", "termination"}

// keywordCategories maps legal categories to their trigger terms, tried in
// a fixed order; the first category with a matching term wins.
var keywordCategories = []struct {
	name  string
	terms []string
}{
	{"risk", []string{"risk", "liability", "damages", "penalty", "breach", "default"}},
	{"obligations", []string{"shall", "must", "required", "obligation", "duty", "responsibility"}},
	{"financial", []string{"payment", "fee", "cost", "price", "compensation", "remuneration"}},
	{"temporal", []string{"term", "duration", "deadline", "expiry", "termination"}},
	{"legal_process", []string{"court", "arbitration", "mediation", "jurisdiction", "governing law"}},
}

// highRiskTerms trigger risk indicators when found in keywords.
var highRiskTerms = []string{"penalty", "liquidated damages", "breach", "default", "termination", "void"}

// regulatoryTerms trigger compliance flags when found in keywords.
var regulatoryTerms = []string{"regulation", "compliance", "gdpr", "privacy", "data protection"}

// AssessLegalRelevance tiers an entity's relevance to legal review.
func AssessLegalRelevance(text, entityType string) string {
	for _, t := range legalEntityTypes {
		if entityType == t {
			return "high"
		}
	}
	lower := strings.ToLower(text)
	for _, term := range legalTerms {
		if strings.Contains(lower, term) {
			return "high"
		}
	}
	return "medium"
}

// CategorizeLegalKeyword assigns a keyword to a legal category, or
// "general" when nothing matches.
func CategorizeLegalKeyword(keyword string) string {
	lower := strings.ToLower(keyword)
	for _, cat := range keywordCategories {
		for _, term := range cat.terms {
			if strings.Contains(lower, term) {
				return cat.name
			}
		}
	}
	return "general"
}

// AssessLegalTone maps document sentiment onto a legal tone label.
func AssessLegalTone(score float64, label string) string {
	if label == "positive" && score > 0.5 {
		return "collaborative"
	}
	if label == "negative" && score < -0.5 {
		return "adversarial"
	}
	return "formal_neutral"
}

// RiskIndicators derives free-text risk indicators from keywords and
// negatively charged high-relevance entities.
func RiskIndicators(entities []Entity, keywords []Keyword) []string {
	indicators := []string{}

	for _, kw := range keywords {
		lower := strings.ToLower(kw.Text)
		for _, term := range highRiskTerms {
			if strings.Contains(lower, term) {
				indicators = append(indicators, fmt.Sprintf("High-risk term detected: %s", kw.Text))
				break
			}
		}
	}

	for _, ent := range entities {
		if ent.Sentiment == "negative" && ent.LegalRelevance == "high" {
			indicators = append(indicators, fmt.Sprintf("Negative sentiment on legal entity: %s", ent.Text))
		}
	}

	return indicators
}

// ComplianceFlags derives free-text compliance flags from regulatory terms.
func ComplianceFlags(keywords []Keyword) []string {
	flags := []string{}

	for _, kw := range keywords {
		lower := strings.ToLower(kw.Text)
		for _, term := range regulatoryTerms {
			if strings.Contains(lower, term) {
				flags = append(flags, fmt.Sprintf("Regulatory term detected: %s", kw.Text))
				break
			}
		}
	}

	return flags
}

// LegalSummary builds a short legal-focused summary line.
func LegalSummary(entities []Entity, keywords []Keyword, sentiment DocumentSentiment) string {
	highRelevance := 0
	for _, ent := range entities {
		if ent.LegalRelevance == "high" {
			highRelevance++
		}
	}

	riskKeywords := 0
	for _, kw := range keywords {
		if kw.LegalCategory == "risk" {
			riskKeywords++
		}
	}

	var parts []string
	if highRelevance > 0 {
		parts = append(parts, fmt.Sprintf("Document contains %d legally relevant entities", highRelevance))
	}
	if riskKeywords > 0 {
		parts = append(parts, fmt.Sprintf("Identified %d risk-related terms", riskKeywords))
	}
	parts = append(parts, fmt.Sprintf("Overall legal tone is %s", AssessLegalTone(sentiment.Score, sentiment.Label)))

	return strings.Join(parts, ". ") + "."
}
