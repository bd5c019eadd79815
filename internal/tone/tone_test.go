package tone

import (
	"context"
	"testing"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/segment"
)

// stubBackend implements Backend with a fixed availability answer.
type stubBackend struct {
	available bool
}

func (b *stubBackend) IsAvailable(ctx context.Context) bool {
	return b.available
}

func TestAnalyzer_Analyze_FallbackWithoutBackend(t *testing.T) {
	analyzer := NewAnalyzer(10, nil)

	profile := analyzer.Analyze(context.Background(), segment.Split("The party shall comply."))

	want := model.ToneProfile{
		OverallSentiment:   "neutral",
		FormalityScore:     7,
		AssertivenessScore: 5,
		RiskTone:           model.RiskToneModerate,
	}
	if profile != want {
		t.Errorf("fallback profile = %+v, want %+v", profile, want)
	}
}

func TestAnalyzer_Analyze_FallbackWhenBackendUnavailable(t *testing.T) {
	analyzer := NewAnalyzer(10, &stubBackend{available: false})

	profile := analyzer.Analyze(context.Background(), segment.Split("The party shall comply."))

	if profile != FallbackProfile() {
		t.Errorf("expected fallback profile, got %+v", profile)
	}
}

func TestAnalyzer_Analyze_FallbackForEmptySegments(t *testing.T) {
	analyzer := NewAnalyzer(10, &stubBackend{available: true})

	profile := analyzer.Analyze(context.Background(), nil)

	if profile != FallbackProfile() {
		t.Errorf("expected fallback profile for no segments, got %+v", profile)
	}
}

func TestAnalyzer_Analyze_HeuristicScores(t *testing.T) {
	analyzer := NewAnalyzer(10, &stubBackend{available: true})

	// 2 segments: "shall" and "hereby" are formal, "must" is assertive
	text := "The supplier shall hereby deliver. The buyer must inspect"
	profile := analyzer.Analyze(context.Background(), segment.Split(text))

	if profile.OverallSentiment != "formal" {
		t.Errorf("expected formal sentiment, got %q", profile.OverallSentiment)
	}
	// formality total 2 over 2 segments: 2/2*10 = 10.0
	if profile.FormalityScore != 10.0 {
		t.Errorf("FormalityScore = %v, want 10.0", profile.FormalityScore)
	}
	// assertiveness total 1 over 2 segments: 1/2*10 = 5.0
	if profile.AssertivenessScore != 5.0 {
		t.Errorf("AssertivenessScore = %v, want 5.0", profile.AssertivenessScore)
	}
	if profile.RiskTone != model.RiskToneLow {
		t.Errorf("RiskTone = %q, want low", profile.RiskTone)
	}
}

func TestAnalyzer_Analyze_RiskToneTiers(t *testing.T) {
	analyzer := NewAnalyzer(10, &stubBackend{available: true})

	tests := []struct {
		name string
		text string
		want model.RiskTone
	}{
		{
			name: "one risky indicator is low",
			text: "a penalty applies here",
			want: model.RiskToneLow,
		},
		{
			name: "two risky indicators are moderate",
			text: "a penalty applies upon breach",
			want: model.RiskToneModerate,
		},
		{
			name: "five risky indicators are high",
			text: "penalty for breach or default may terminate and void this",
			want: model.RiskToneHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := analyzer.Analyze(context.Background(), segment.Split(tt.text))
			if profile.RiskTone != tt.want {
				t.Errorf("RiskTone = %q, want %q", profile.RiskTone, tt.want)
			}
		})
	}
}

func TestAnalyzer_Analyze_SamplesOnlyPrefix(t *testing.T) {
	analyzer := NewAnalyzer(2, &stubBackend{available: true})

	// Risky language beyond the sample window must not affect the profile
	text := "plain intro. another plain sentence. penalty breach default terminate void"
	profile := analyzer.Analyze(context.Background(), segment.Split(text))

	if profile.RiskTone != model.RiskToneLow {
		t.Errorf("expected low risk tone from 2-segment sample, got %q", profile.RiskTone)
	}
}

func TestNormalize_CapsAtTen(t *testing.T) {
	if got := normalize(25, 2); got != 10 {
		t.Errorf("normalize(25, 2) = %v, want 10", got)
	}
	if got := normalize(1, 3); got != 3.3 {
		t.Errorf("normalize(1, 3) = %v, want 3.3", got)
	}
}
