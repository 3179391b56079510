package quiz

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/llm"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screens/scorecard"
	"github.com/abhisek/ksa/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newSession(provider llm.Provider) *session.Session {
	cfg := assessment.DefaultConfig()
	return session.New("s1", progress.Demo(), session.Deps{
		Generator: assessment.NewGenerator(provider, cfg),
		Evaluator: assessment.NewEvaluator(provider, cfg, nil),
	})
}

// run executes cmd, unpacking batches, and returns the first message that
// is not a spinner tick.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			switch m := c().(type) {
			case quizReadyMsg, scoredMsg:
				return m
			}
		}
		t.Fatal("batch produced no result message")
	}
	return msg
}

func loaded(t *testing.T, sess *session.Session) *QuizScreen {
	t.Helper()
	s := New(sess, "Cloud Computing")
	s.Update(run(t, s.Init()))
	if s.mode != modeAnswering {
		t.Fatalf("expected answering mode, got %d (%s)", s.mode, s.errMsg)
	}
	return s
}

func TestFullAttempt(t *testing.T) {
	sess := newSession(assessment.NewDemoProvider())
	s := loaded(t, sess)

	if len(s.choices) != assessment.QuizSize {
		t.Fatalf("expected %d questions, got %d", assessment.QuizSize, len(s.choices))
	}

	// Demo quiz puts the correct option at index i%4. Answer 7 right.
	for i := range s.choices {
		opt := i % assessment.OptionCount
		if i >= 7 {
			opt = (opt + 1) % assessment.OptionCount
		}
		s.Update(keyPress(rune('a' + opt)))
	}
	if got := len(sess.Answers()); got != assessment.QuizSize {
		t.Fatalf("expected all answers recorded, got %d", got)
	}
	if s.current != len(s.choices)-1 {
		t.Errorf("expected auto-advance to the last question, got %d", s.current)
	}

	_, cmd := s.Update(keyPress('f'))
	if s.mode != modeEvaluating {
		t.Fatalf("expected evaluating mode, got %d", s.mode)
	}

	_, cmd = s.Update(run(t, cmd))
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg after scoring")
	}
	if _, ok := replace.Screen.(*scorecard.ScorecardScreen); !ok {
		t.Fatalf("expected scorecard screen, got %T", replace.Screen)
	}
	if sc := sess.Scorecard(); sc == nil || sc.Score != 70 || !sc.Passed {
		t.Errorf("unexpected scorecard %+v", sc)
	}
	if s.mode != modeClosed {
		t.Errorf("expected closed mode after handing off, got %d", s.mode)
	}
	if s.ctx.Err() == nil {
		t.Error("expected the screen context to be cancelled once scored")
	}
	if _, cmd := s.Update(keyPress('f')); cmd != nil {
		t.Error("expected a closed screen to ignore keys")
	}
}

func TestNavigationAndReanswer(t *testing.T) {
	sess := newSession(assessment.NewDemoProvider())
	s := loaded(t, sess)

	s.Update(special(tea.KeyRight))
	s.Update(special(tea.KeyRight))
	if s.current != 2 {
		t.Fatalf("expected question 3, got %d", s.current+1)
	}
	s.Update(special(tea.KeyLeft))
	if s.current != 1 {
		t.Fatalf("expected question 2, got %d", s.current+1)
	}

	s.Update(special(tea.KeyDown))
	s.Update(special(tea.KeyEnter))
	q := s.quiz.Questions[1]
	if got := sess.Answers()[q.ID]; got != 1 {
		t.Errorf("expected option 1 recorded, got %d", got)
	}

	s.current = 1
	s.Update(keyPress('d'))
	if got := sess.Answers()[q.ID]; got != 3 {
		t.Errorf("re-answer should overwrite, got %d", got)
	}
}

func TestFinishWithUnansweredAsksFirst(t *testing.T) {
	s := loaded(t, newSession(assessment.NewDemoProvider()))
	s.Update(keyPress('a'))

	_, cmd := s.Update(keyPress('f'))
	if cmd != nil || s.mode != modeConfirmFinish {
		t.Fatalf("expected confirmation, got mode %d", s.mode)
	}
	if !strings.Contains(s.View(100, 40), "9 question(s) unanswered") {
		t.Error("confirmation should count unanswered questions")
	}

	s.Update(keyPress('n'))
	if s.mode != modeAnswering {
		t.Fatal("n should return to answering")
	}

	s.Update(keyPress('f'))
	_, cmd = s.Update(keyPress('y'))
	if cmd == nil || s.mode != modeEvaluating {
		t.Fatal("y should start scoring")
	}
}

func TestEscapeConfirmsThenCancels(t *testing.T) {
	sess := newSession(assessment.NewDemoProvider())
	s := loaded(t, sess)

	_, cmd := s.Update(special(tea.KeyEscape))
	if cmd != nil || s.mode != modeConfirmQuit {
		t.Fatal("esc should ask before quitting")
	}

	_, cmd = s.Update(keyPress('y'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("confirmed quit should pop the screen")
	}
	if sess.State() != session.StateIdle {
		t.Errorf("expected idle session, got %s", sess.State())
	}
}

func TestGenerationFailureAllowsRetry(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	sess := newSession(provider)
	s := New(sess, "Cloud Computing")

	s.Update(run(t, s.Init()))
	if s.mode != modeFailed {
		t.Fatalf("expected failed mode, got %d", s.mode)
	}
	view := s.View(100, 40)
	if strings.Contains(view, "down") {
		t.Error("provider detail should not reach the screen")
	}
	if !strings.Contains(view, "try again") {
		t.Error("expected retry hint")
	}

	_, cmd := s.Update(keyPress('r'))
	if cmd == nil || s.mode != modeLoading {
		t.Fatal("r should retry generation")
	}
}

func TestStaleResultIgnoredAfterCancel(t *testing.T) {
	sess := newSession(assessment.NewDemoProvider())
	s := New(sess, "Cloud Computing")

	_, cmd := s.Update(special(tea.KeyEscape))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("esc while loading should leave the screen")
	}
	s.Update(quizReadyMsg{Quiz: &assessment.Quiz{Sector: "Cloud Computing"}})
	if s.quiz != nil {
		t.Error("a result arriving after cancel should not be shown")
	}
}
