package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/ksa/internal/store"
)

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	ctx = WithPurpose(ctx, PurposeAssessmentEval)
	if p := PurposeFrom(ctx); p != PurposeAssessmentEval {
		t.Fatalf("expected %q, got %q", PurposeAssessmentEval, p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"openai with key", Config{Provider: ProviderOpenAI, OpenAI: OpenAIConfig{APIKey: "k"}}, false},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"mock needs nothing", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "bard"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func clearLLMEnv(t *testing.T) {
	for _, k := range []string{
		"KSA_LLM_PROVIDER", "KSA_LLM_TIMEOUT", "KSA_GEMINI_API_KEY", "KSA_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("KSA_LLM_PROVIDER", "gemini")
	t.Setenv("KSA_GEMINI_API_KEY", "g-key")
	t.Setenv("KSA_GEMINI_MODEL", "gemini-pro")
	t.Setenv("KSA_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("unexpected config: %+v", cfg.Gemini)
	}
	if cfg.Timeout.Seconds() != 5 {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("defaults not kept: %+v", cfg.Retry)
	}
}

func TestDiscoverConfig_GeminiFirst(t *testing.T) {
	clearLLMEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no config without keys")
	}

	t.Setenv("OPENAI_API_KEY", "o-key")
	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderGemini || cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("expected gemini to win, got %q ok=%v", cfg.Provider, ok)
	}
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsSuccessAndFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 12, OutputTokens: 3}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("boom")}},
	)
	rec := &fakeRecorder{}
	p := WithLogging(mock, rec, nil)
	ctx := WithPurpose(context.Background(), PurposeAssessmentGen)
	req := Request{System: "be strict", Messages: []Message{{Role: RoleUser, Content: "ten questions"}}}

	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("second call: expected error")
	}

	if len(rec.events) != 2 {
		t.Fatalf("events = %d, want 2", len(rec.events))
	}
	ok, failed := rec.events[0], rec.events[1]
	if !ok.Success || ok.Purpose != PurposeAssessmentGen || ok.InputTokens != 12 || ok.ResponseBody != `{"ok":true}` {
		t.Errorf("success event = %+v", ok)
	}
	if !strings.Contains(ok.RequestBody, "[system]\nbe strict") || !strings.Contains(ok.RequestBody, "[user]\nten questions") {
		t.Errorf("request body = %q", ok.RequestBody)
	}
	if failed.Success || !strings.Contains(failed.ErrorMessage, "boom") {
		t.Errorf("failure event = %+v", failed)
	}
}

func TestLogging_StoreFailureDoesNotFailCall(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, &fakeRecorder{err: errors.New("disk full")}, nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewProvider_MockStack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	rec := &fakeRecorder{}
	obs := &recordingObserver{}

	p, err := NewProvider(context.Background(), cfg, Options{EventRepo: rec, Observer: obs, Mock: mock})
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if _, ok := p.(*TimeoutProvider); !ok {
		t.Errorf("outermost decorator = %T, want *TimeoutProvider", p)
	}
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(rec.events) != 1 || len(obs.calls) != 1 {
		t.Errorf("events = %d, observations = %d", len(rec.events), len(obs.calls))
	}
}

func TestNewProvider_InvalidConfig(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: ProviderOpenAI}, Options{})
	if err == nil {
		t.Fatal("expected error for missing key")
	}
}
