package scorecard

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// scored takes a demo session through one attempt with k correct answers.
func scored(t *testing.T, k int) (*session.Session, *ScorecardScreen) {
	t.Helper()
	provider := assessment.NewDemoProvider()
	cfg := assessment.DefaultConfig()
	sess := session.New("s1", progress.Demo(), session.Deps{
		Generator: assessment.NewGenerator(provider, cfg),
		Evaluator: assessment.NewEvaluator(provider, cfg, nil),
	})

	ctx := context.Background()
	quiz, err := sess.StartAssessment(ctx, "Cloud Computing")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	for i, q := range quiz.Questions {
		opt := q.CorrectAnswer
		if i >= k {
			opt = (opt + 1) % assessment.OptionCount
		}
		if err := sess.SubmitAnswer(q.ID, opt); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	card, err := sess.FinishAssessment(ctx)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	return sess, New(sess, quiz, sess.Answers(), card)
}

func TestSummaryView(t *testing.T) {
	_, s := scored(t, 8)
	view := s.View(100, 60)

	for _, want := range []string{"Passed", "80 / 100", "8 of 10 correct", "Gap analysis", "Online", "Offline"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestAcknowledgeAppliesProgress(t *testing.T) {
	sess, s := scored(t, 10)
	if sess.Progress().Points != 1250 {
		t.Fatal("progress must not change before acknowledgement")
	}

	_, cmd := s.Update(keyPress('x'))
	if cmd != nil {
		t.Fatal("unrelated keys should do nothing")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should acknowledge")
	}
	s.Update(cmd())
	if !s.acked {
		t.Fatalf("expected acknowledged, err %q", s.errMsg)
	}

	user := sess.Progress()
	if user.Points != 1450 || user.PhaseFor("Cloud Computing") != phase.Basic {
		t.Errorf("unexpected progress %+v", user)
	}

	view := s.View(100, 60)
	for _, want := range []string{"Advanced from Beginner to Basic", "+200 points", "Beginner Cloud Computing Badge"} {
		if !strings.Contains(view, want) {
			t.Errorf("outcome missing %q", want)
		}
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Fatal("enter after acknowledgement should return home")
	}
}

func TestFailedAttemptKeepsPhase(t *testing.T) {
	sess, s := scored(t, 5)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s.Update(cmd())

	if got := sess.Progress().Points; got != 1250 {
		t.Errorf("failed attempt should not award points, got %d", got)
	}
	if !strings.Contains(s.View(100, 60), "Still at Beginner") {
		t.Error("expected unchanged phase message")
	}
}

func TestReviewMode(t *testing.T) {
	_, s := scored(t, 0)

	s.Update(keyPress('r'))
	if !s.reviewing {
		t.Fatal("r should open the review")
	}
	if !strings.Contains(s.View(100, 60), "Question 1 of 10") {
		t.Error("review should start at the first question")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	view := s.View(100, 60)
	if !strings.Contains(view, "Question 2 of 10") || !strings.Contains(view, "Incorrect") {
		t.Error("expected second question marked incorrect")
	}

	s.Update(keyPress('r'))
	if s.reviewing {
		t.Error("r should toggle the review off")
	}
}
