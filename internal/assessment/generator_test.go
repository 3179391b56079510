package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/phase"
)

func TestGenerate_HappyPath(t *testing.T) {
	qs := sampleQuestions(QuizSize)
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(t, qs)})
	gen := NewGenerator(mock, DefaultConfig())

	got, err := gen.Generate(context.Background(), "  Cloud Computing ", phase.Intermediate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != QuizSize {
		t.Fatalf("got %d questions, want %d", len(got), QuizSize)
	}
	if got[3].CorrectAnswer != 3 || got[3].Options[2] != "Lambda" {
		t.Errorf("question 4 = %+v", got[3])
	}

	req, _ := mock.LastCall()
	if req.Schema != QuizSchema {
		t.Error("expected the quiz schema on the request")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Sector: Cloud Computing\n") || !strings.Contains(msg, "Phase: Intermediate (4 of 8)") {
		t.Errorf("user message = %q", msg)
	}
	if !strings.Contains(req.System, "exactly 10") {
		t.Errorf("system prompt should ask for 10 questions")
	}
}

func TestGenerate_Rejects(t *testing.T) {
	withOptions := func(opts ...string) []Question {
		qs := sampleQuestions(QuizSize)
		qs[0].Options = opts
		return qs
	}

	tests := []struct {
		name      string
		questions []Question
		validator string
	}{
		{"nine questions", sampleQuestions(9), "count"},
		{"eleven questions", sampleQuestions(11), "count"},
		{"three options", withOptions("a", "b", "c"), "structural"},
		{"five options", withOptions("a", "b", "c", "d", "e"), "structural"},
		{"blank option", withOptions("a", " ", "c", "d"), "structural"},
		{"duplicate option", withOptions("a", "A", "c", "d"), "structural"},
		{"correct index too high", func() []Question {
			qs := sampleQuestions(QuizSize)
			qs[5].CorrectAnswer = 4
			return qs
		}(), "structural"},
		{"negative correct index", func() []Question {
			qs := sampleQuestions(QuizSize)
			qs[5].CorrectAnswer = -1
			return qs
		}(), "structural"},
		{"empty text", func() []Question {
			qs := sampleQuestions(QuizSize)
			qs[9].Text = ""
			return qs
		}(), "structural"},
		{"duplicate ids", func() []Question {
			qs := sampleQuestions(QuizSize)
			qs[1].ID = qs[0].ID
			return qs
		}(), "unique-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(t, tt.questions)})
			got, err := NewGenerator(mock, DefaultConfig()).Generate(context.Background(), "Cloud Computing", phase.Beginner)
			if got != nil {
				t.Errorf("expected nil questions, got %d", len(got))
			}
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a *ValidationError cause, got %v", err)
			}
			if verr.Validator != tt.validator {
				t.Errorf("validator = %q, want %q", verr.Validator, tt.validator)
			}
		})
	}
}

func TestGenerate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		sector string
		phase  phase.Phase
		resp   llm.MockResponse
		calls  int
	}{
		{"empty sector", "   ", phase.Beginner, llm.MockResponse{}, 0},
		{"invalid phase", "Cloud Computing", phase.Phase("Guru"), llm.MockResponse{}, 0},
		{"provider error", "Cloud Computing", phase.Beginner, llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}}, 1},
		{"bare array instead of object", "Cloud Computing", phase.Beginner, llm.MockResponse{Content: json.RawMessage(`[]`)}, 1},
		{"not json", "Cloud Computing", phase.Beginner, llm.MockResponse{Content: json.RawMessage(`here you go`)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(tt.resp)
			got, err := NewGenerator(mock, DefaultConfig()).Generate(context.Background(), tt.sector, tt.phase)
			if got != nil {
				t.Errorf("expected nil questions")
			}
			var genErr *GenerationError
			if !errors.As(err, &genErr) {
				t.Fatalf("expected *GenerationError, got %T (%v)", err, err)
			}
			if mock.CallCount() != tt.calls {
				t.Errorf("provider calls = %d, want %d", mock.CallCount(), tt.calls)
			}
		})
	}
}

func TestGenerate_CancelledBeforeCommit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mock := llm.NewMockProvider()
	mock.Responder = func(llm.Request) (json.RawMessage, error) {
		// The caller gives up while the provider is still answering.
		cancel()
		return quizJSON(t, sampleQuestions(QuizSize)), nil
	}

	got, err := NewGenerator(mock, DefaultConfig()).Generate(ctx, "Cloud Computing", phase.Beginner)
	if got != nil {
		t.Error("expected nil questions after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerate_PurposeLabel(t *testing.T) {
	var purpose string
	rec := &purposeRecorder{inner: llm.NewMockProvider(llm.MockResponse{Content: quizJSON(t, sampleQuestions(QuizSize))}), got: &purpose}
	if _, err := NewGenerator(rec, DefaultConfig()).Generate(context.Background(), "Soft Skills", phase.Basic); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purpose != llm.PurposeAssessmentGen {
		t.Errorf("purpose = %q", purpose)
	}
}

type purposeRecorder struct {
	inner llm.Provider
	got   *string
}

func (p *purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	*p.got = llm.PurposeFrom(ctx)
	return p.inner.Generate(ctx, req)
}

func (p *purposeRecorder) ModelID() string { return p.inner.ModelID() }
