package types_test

import (
	"testing"

	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.StyleKey
		wantErr bool
	}{
		{"aztec", "aztec", types.StyleAztec, false},
		{"zama", "zama", types.StyleZama, false},
		{"soundness", "soundness", types.StyleSoundness, false},
		{"empty", "", "", true},
		{"unknown", "optimism", "", true},
		{"uppercase", "Aztec", "", true},
		{"whitespace", " aztec", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStyle() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStyle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLabelForScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  types.RiskLabel
	}{
		{"zero", 0.0, types.RiskLabelVeryLow},
		{"just below low", 0.2499, types.RiskLabelVeryLow},
		{"exactly 0.25 is low", 0.25, types.RiskLabelLow},
		{"mid low", 0.37, types.RiskLabelLow},
		{"exactly 0.45 is moderate", 0.45, types.RiskLabelModerate},
		{"mid moderate", 0.55, types.RiskLabelModerate},
		{"exactly 0.65 is high", 0.65, types.RiskLabelHigh},
		{"just below very high", 0.7999, types.RiskLabelHigh},
		{"exactly 0.80 is very high", 0.80, types.RiskLabelVeryHigh},
		{"one", 1.0, types.RiskLabelVeryHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := types.LabelForScore(tt.score); got != tt.want {
				t.Errorf("LabelForScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestRiskLabel_IsValid(t *testing.T) {
	for _, label := range types.AllRiskLabels() {
		if !label.IsValid() {
			t.Errorf("expected %q to be valid", label)
		}
	}
	if types.RiskLabel("extreme").IsValid() {
		t.Error("expected `extreme` to be invalid")
	}
}

func TestStyleKey_IsValid(t *testing.T) {
	for _, key := range types.AllStyleKeys() {
		if !key.IsValid() {
			t.Errorf("expected %q to be valid", key)
		}
	}
	if types.StyleKey("wormhole").IsValid() {
		t.Error("expected `wormhole` to be invalid")
	}
}
