package llm

import (
	"errors"
	"slices"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "ten questions",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 10,
				"maxItems": 10,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":            map[string]any{"type": "integer"},
						"text":          map[string]any{"type": "string"},
						"options":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						"correctAnswer": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
						"level":         map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
					},
					"required":             []any{"id", "text", "options", "correctAnswer"},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{"questions"},
	}

	s := geminiSchema(def)
	if s.Type != genai.TypeObject || s.Description != "ten questions" {
		t.Fatalf("root = %+v", s)
	}
	if len(s.Required) != 1 || s.Required[0] != "questions" {
		t.Errorf("required = %v", s.Required)
	}

	qs := s.Properties["questions"]
	if qs == nil || qs.Type != genai.TypeArray {
		t.Fatalf("questions = %+v", qs)
	}
	if qs.MinItems == nil || *qs.MinItems != 10 || qs.MaxItems == nil || *qs.MaxItems != 10 {
		t.Errorf("item bounds = %v..%v", qs.MinItems, qs.MaxItems)
	}

	item := qs.Items
	if item == nil || item.Type != genai.TypeObject || len(item.Properties) != 5 {
		t.Fatalf("items = %+v", item)
	}
	if got := item.Properties["options"].Items.Type; got != genai.TypeString {
		t.Errorf("options items = %s", got)
	}
	ca := item.Properties["correctAnswer"]
	if ca.Type != genai.TypeInteger || ca.Minimum == nil || *ca.Minimum != 0 || ca.Maximum == nil || *ca.Maximum != 3 {
		t.Errorf("correctAnswer = %+v", ca)
	}
	if len(item.Properties["level"].Enum) != 2 {
		t.Errorf("enum = %v", item.Properties["level"].Enum)
	}
	if want := []string{"id", "text", "options", "correctAnswer", "level"}; !slices.Equal(item.PropertyOrdering, want) {
		t.Errorf("ordering = %v, want %v", item.PropertyOrdering, want)
	}
	if qs.PropertyOrdering != nil {
		t.Errorf("array ordering = %v, want none", qs.PropertyOrdering)
	}
}

func TestGeminiStopReason(t *testing.T) {
	tests := []struct {
		reason genai.FinishReason
		want   string
	}{
		{genai.FinishReasonStop, "end"},
		{genai.FinishReasonMaxTokens, "max_tokens"},
		{genai.FinishReasonSafety, "error"},
	}
	for _, tt := range tests {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: tt.reason}},
		}
		if got := geminiStopReason(resp); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.reason, got, tt.want)
		}
	}
	if got := geminiStopReason(&genai.GenerateContentResponse{}); got != "end" {
		t.Errorf("no candidates: got %q", got)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if err := mapGeminiError(genai.APIError{Code: 429, Message: "quota"}); !errors.As(err, &rl) {
		t.Errorf("429 mapped to %T", err)
	}

	var unavail *ErrProviderUnavailable
	if err := mapGeminiError(genai.APIError{Code: 503, Message: "overloaded"}); !errors.As(err, &unavail) {
		t.Errorf("503 mapped to %T", err)
	}
	if err := mapGeminiError(errors.New("dial tcp: refused")); !errors.As(err, &unavail) {
		t.Errorf("network error mapped to %T", err)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), GeminiConfig{Model: "gemini-flash"}); err == nil {
		t.Fatal("expected error without API key")
	}
}
