package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestTimeout_ExpiryIsProviderUnavailable(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: okContent, Delay: time.Second})
	p := WithTimeout(mock, 10*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected *ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestTimeout_CallerCancellationPassesThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: okContent, Delay: time.Second})
	p := WithTimeout(mock, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestTimeout_FastCallSucceeds(t *testing.T) {
	p := WithTimeout(NewMockProvider(MockResponse{Content: okContent}), time.Second)
	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(okContent) {
		t.Errorf("content = %s", resp.Content)
	}
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observed
}

type observed struct {
	purpose, model string
	success        bool
	usage          Usage
}

func (r *recordingObserver) ObserveLLMCall(purpose, model string, success bool, _ time.Duration, usage Usage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, observed{purpose, model, success, usage})
}

func TestMetrics_ObservesEveryCall(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: okContent, Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	obs := &recordingObserver{}
	p := WithMetrics(mock, obs)
	ctx := WithPurpose(context.Background(), PurposeAssessmentGen)

	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("second call: expected error")
	}

	if len(obs.calls) != 2 {
		t.Fatalf("observations = %d, want 2", len(obs.calls))
	}
	first, second := obs.calls[0], obs.calls[1]
	if first.purpose != PurposeAssessmentGen || first.model != "mock" || !first.success || first.usage.TotalTokens != 15 {
		t.Errorf("first observation = %+v", first)
	}
	if second.success {
		t.Error("second observation should be a failure")
	}
}

func TestMockProvider_Responder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: []byte(`{"n":1}`)})
	mock.Responder = func(Request) (json.RawMessage, error) { return json.RawMessage(`{"n":2}`), nil }

	for _, want := range []string{`{"n":1}`, `{"n":2}`, `{"n":2}`} {
		resp, err := mock.Generate(context.Background(), Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Content) != want {
			t.Errorf("content = %s, want %s", resp.Content, want)
		}
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestMockProvider_ValidatesSchema(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: []byte(`{"gapAnalysis":1}`)})
	_, err := mock.Generate(context.Background(), Request{Schema: remediationTestSchema()})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidResponse, got %v", err)
	}
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected *ErrProviderUnavailable, got %v", err)
	}
}
