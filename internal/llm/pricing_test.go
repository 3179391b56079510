package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		found bool
		in    float64
	}{
		{"gemini-2.5-flash", true, 0.3},
		{"google/gemini-2.5-flash", true, 0.3},
		{"claude-haiku-4-5-20251001", true, 1},
		{"mock", false, 0},
		{"acme/unknown-model", false, 0},
	}
	for _, tt := range tests {
		c := LookupCost(tt.model)
		if (c != nil) != tt.found {
			t.Errorf("%s: found = %v, want %v", tt.model, c != nil, tt.found)
			continue
		}
		if c != nil && c.InputPerMTok != tt.in {
			t.Errorf("%s: input price = %v, want %v", tt.model, c.InputPerMTok, tt.in)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.3, OutputPerMTok: 2.5}
	got := c.Cost(2_000_000, 400_000)
	if math.Abs(got-1.6) > 1e-9 {
		t.Errorf("Cost = %v, want 1.6", got)
	}
}
