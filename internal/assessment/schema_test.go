package assessment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/abhisek/ksa/internal/llm"
)

// strictKeywords are the JSON Schema keywords accepted by OpenAI strict
// structured output for the shapes used here.
var strictKeywords = []string{"type", "description", "properties", "items", "required", "additionalProperties", "enum"}

// checkStrict walks def and reports unknown keywords and objects whose
// properties are not all required.
func checkStrict(t *testing.T, path string, def map[string]any) {
	t.Helper()
	for key := range def {
		if !slices.Contains(strictKeywords, key) {
			t.Errorf("%s: keyword %q is not portable", path, key)
		}
	}
	props, _ := def["properties"].(map[string]any)
	if len(props) > 0 {
		required, _ := def["required"].([]any)
		for name, raw := range props {
			if !slices.Contains(required, any(name)) {
				t.Errorf("%s: property %q is not required", path, name)
			}
			if sub, ok := raw.(map[string]any); ok {
				checkStrict(t, path+"."+name, sub)
			}
		}
		if def["additionalProperties"] != false {
			t.Errorf("%s: additionalProperties must be false", path)
		}
	}
	if items, ok := def["items"].(map[string]any); ok {
		checkStrict(t, path+"[]", items)
	}
}

func TestSchemasArePortable(t *testing.T) {
	for _, s := range []*llm.Schema{QuizSchema, RemediationSchema} {
		t.Run(s.Name, func(t *testing.T) {
			checkStrict(t, s.Name, s.Definition)
		})
	}
}

func TestQuizSchemaSentToOpenAI(t *testing.T) {
	var sent map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ResponseFormat struct {
				JSONSchema struct {
					Schema map[string]any `json:"schema"`
					Strict bool           `json:"strict"`
				} `json:"json_schema"`
			} `json:"response_format"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if !body.ResponseFormat.JSONSchema.Strict {
			t.Error("expected strict structured output")
		}
		sent = body.ResponseFormat.JSONSchema.Schema
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p, err := llm.NewOpenAIProvider(llm.OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _ = p.Generate(context.Background(), llm.Request{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Cloud Computing, Beginner"}},
		Schema:    QuizSchema,
		MaxTokens: 64,
	})

	if sent == nil {
		t.Fatal("no schema in the request body")
	}
	checkStrict(t, "request", sent)
}
