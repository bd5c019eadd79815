package suggest

import (
	"strings"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
)

func TestGenerator_Generate_SkipsLowRiskLowImportance(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate([]model.Clause{
		{ID: 0, Text: "The party may act reasonably", RiskLevel: model.RiskLow, ImportanceScore: 5},
	})

	if len(suggestions) != 0 {
		t.Errorf("expected no suggestions for low risk, low importance, got %d", len(suggestions))
	}
}

func TestGenerator_Generate_HighRiskWithAmbiguity(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate([]model.Clause{
		{ID: 3, Text: "The Company may impose a penalty", RiskLevel: model.RiskHigh, ImportanceScore: 5},
	})

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	s := suggestions[0]
	if s.ClauseID != 3 {
		t.Errorf("ClauseID = %d, want 3", s.ClauseID)
	}
	if len(s.Issues) != 2 || len(s.Suggestions) != 2 {
		t.Fatalf("expected 2 issue/suggestion pairs, got %d/%d", len(s.Issues), len(s.Suggestions))
	}
	if s.Issues[0] != `Ambiguous language - "may" creates uncertainty` {
		t.Errorf("unexpected first issue: %q", s.Issues[0])
	}
	if s.Issues[1] != "High financial risk language" {
		t.Errorf("unexpected second issue: %q", s.Issues[1])
	}
}

func TestGenerator_Generate_HighImportanceSelectedWithoutHighRisk(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate([]model.Clause{
		{ID: 1, Text: "The Client may assign this contract", RiskLevel: model.RiskLow, ImportanceScore: 8},
	})

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion for importance 8, got %d", len(suggestions))
	}
}

func TestGenerator_Generate_FlaggedClauseWithNoIssuesDropped(t *testing.T) {
	g := NewGenerator()

	// High risk but trips none of the checks
	suggestions := g.Generate([]model.Clause{
		{ID: 2, Text: "Breach voids the contract", RiskLevel: model.RiskHigh, ImportanceScore: 5},
	})

	if len(suggestions) != 0 {
		t.Errorf("expected no suggestion when no check fires, got %d", len(suggestions))
	}
}

func TestGenerator_Generate_CommerciallyReasonableNotVague(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate([]model.Clause{
		{ID: 0, Text: "Party uses commercially reasonable efforts", RiskLevel: model.RiskHigh, ImportanceScore: 9},
	})

	for _, s := range suggestions {
		for _, issue := range s.Issues {
			if issue == `Vague standard - "reasonable" is subjective` {
				t.Errorf("commercially reasonable must not trigger the vague-standard check")
			}
		}
	}
}

func TestGenerator_Generate_LongClause(t *testing.T) {
	g := NewGenerator()

	long := strings.Repeat("the indemnifying party bears all costs ", 9)
	if len(long) <= 300 {
		t.Fatalf("test text too short: %d", len(long))
	}

	suggestions := g.Generate([]model.Clause{
		{ID: 5, Text: long, RiskLevel: model.RiskHigh, ImportanceScore: 5},
	})

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	found := false
	for _, issue := range suggestions[0].Issues {
		if issue == "Overly complex sentence structure" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected complexity issue in %v", suggestions[0].Issues)
	}
}

func TestGenerator_Generate_LongPenaltyClause(t *testing.T) {
	g := NewGenerator()

	text := "In the event of any failure to perform, the defaulting party agrees to " +
		"remit a penalty equal to twice the outstanding balance together with all " +
		"collection expenses, administrative charges, and accrued interest, such " +
		"amounts becoming immediately payable upon written notice and surviving " +
		"any expiration of the engagement between the parties hereto in full."
	if len(text) <= 300 {
		t.Fatalf("test text too short: %d", len(text))
	}

	suggestions := g.Generate([]model.Clause{
		{ID: 4, Text: text, RiskLevel: model.RiskHigh, ImportanceScore: 9},
	})

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	issues := suggestions[0].Issues
	var complexity, financial bool
	for _, issue := range issues {
		switch issue {
		case "Overly complex sentence structure":
			complexity = true
		case "High financial risk language":
			financial = true
		}
	}
	if !complexity || !financial {
		t.Errorf("expected complexity and financial issues, got %v", issues)
	}
}

func TestGenerator_Generate_FinancialRiskReportedOnce(t *testing.T) {
	g := NewGenerator()

	suggestions := g.Generate([]model.Clause{
		{ID: 7, Text: "A penalty and liquidated damages apply; the deposit is forfeit", RiskLevel: model.RiskHigh, ImportanceScore: 10},
	})

	if len(suggestions) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(suggestions))
	}

	count := 0
	for _, issue := range suggestions[0].Issues {
		if issue == "High financial risk language" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("financial risk issue reported %d times, want 1", count)
	}
}
