package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func remediationTestSchema() *Schema {
	return &Schema{
		Name: "test-remediation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"gapAnalysis": map[string]any{"type": "string"},
				"level":       map[string]any{"type": "string", "enum": []any{"low", "high"}},
				"weight":      map[string]any{"type": "integer", "minimum": 0},
				"prescriptions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []any{"gapAnalysis", "prescriptions"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"gapAnalysis":"IAM basics","prescriptions":["AWS IAM course"],"level":"low","weight":2}`, false},
		{"optional fields absent", `{"gapAnalysis":"x","prescriptions":[]}`, false},
		{"missing required", `{"gapAnalysis":"x"}`, true},
		{"wrong type", `{"gapAnalysis":1,"prescriptions":[]}`, true},
		{"enum violation", `{"gapAnalysis":"x","prescriptions":[],"level":"mid"}`, true},
		{"negative minimum", `{"gapAnalysis":"x","prescriptions":[],"weight":-1}`, true},
		{"extra property", `{"gapAnalysis":"x","prescriptions":[],"extra":true}`, true},
		{"malformed json", `{not json}`, true},
		{"empty payload", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(remediationTestSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected *ErrInvalidResponse, got %T (%v)", err, err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("Content = %q, want the offending payload", invErr.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidateResponse_BrokenSchema(t *testing.T) {
	s := &Schema{
		Name:       "test-broken",
		Definition: map[string]any{"type": 12},
	}
	err := validateResponse(s, json.RawMessage(`{}`))
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected *ErrInvalidResponse, got %T", err)
	}
}

func TestCompileSchema_Cached(t *testing.T) {
	s := remediationTestSchema()
	s.Name = "test-cached"
	a, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	b, err := compileSchema(s)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if a != b {
		t.Error("expected the cached compiled schema to be reused")
	}
}
