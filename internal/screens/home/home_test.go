package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screens/quiz"
	"github.com/abhisek/ksa/internal/session"
)

func newTestHome(user progress.UserProgress) (*HomeScreen, *session.Session) {
	provider := assessment.NewDemoProvider()
	cfg := assessment.DefaultConfig()
	sess := session.New("s1", user, session.Deps{
		Generator: assessment.NewGenerator(provider, cfg),
		Evaluator: assessment.NewEvaluator(provider, cfg, nil),
	})
	return New(sess, nil), sess
}

func typeText(h *HomeScreen, text string) {
	for _, r := range text {
		h.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestMenuListsSectorsWithPhase(t *testing.T) {
	h, _ := newTestHome(progress.Demo())

	labels := make([]string, len(h.menu.Items))
	for i, item := range h.menu.Items {
		labels[i] = item.Label
	}
	want := []string{"Cloud Computing", "Project Management", "Soft Skills", "Other sector…", "Phase ladder", "History", "Quit"}
	if strings.Join(labels, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected menu %v", labels)
	}
	if h.menu.Items[1].Hint != "Intermediate · 4/8" {
		t.Errorf("unexpected hint %q", h.menu.Items[1].Hint)
	}
	if !h.menu.Items[5].Disabled {
		t.Error("history needs an event log")
	}

	view := h.View(100, 40)
	if !strings.Contains(view, "Alex Rivera") || !strings.Contains(view, "1250 points") {
		t.Error("profile card missing")
	}
}

func TestSelectSectorStartsQuiz(t *testing.T) {
	h, _ := newTestHome(progress.Demo())

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	q, ok := push.Screen.(*quiz.QuizScreen)
	if !ok {
		t.Fatalf("expected quiz screen, got %T", push.Screen)
	}
	if q.Title() != "Cloud Computing Assessment" {
		t.Errorf("unexpected title %q", q.Title())
	}
}

func TestOtherSectorInput(t *testing.T) {
	h, _ := newTestHome(progress.Demo())
	h.menu.Selected = 3

	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !h.entering || !h.HandlesEscape() {
		t.Fatal("expected sector input")
	}

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank sector should be ignored")
	}

	typeText(h, "Finance")
	_, cmd = h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "Finance Assessment" {
		t.Errorf("unexpected title %q", push.Screen.Title())
	}
	if h.entering {
		t.Error("input should close after submitting")
	}

	h.menu.Selected = 3
	h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	h.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if h.entering {
		t.Error("esc should close the input")
	}
}

func TestRefreshOnRootActivated(t *testing.T) {
	h, sess := newTestHome(progress.New("u", "Jo", progress.RoleEndUser))
	if len(h.menu.Items) != 4 {
		t.Fatalf("expected only fixed entries, got %d", len(h.menu.Items))
	}

	// A sector taken through "Other sector…" shows up once it has progress.
	q, err := sess.StartAssessment(t.Context(), "Finance")
	if err != nil {
		t.Fatal(err)
	}
	for _, qq := range q.Questions {
		_ = sess.SubmitAnswer(qq.ID, qq.CorrectAnswer)
	}
	if _, err := sess.FinishAssessment(t.Context()); err != nil {
		t.Fatal(err)
	}
	if _, err := sess.AcknowledgeResult(t.Context()); err != nil {
		t.Fatal(err)
	}

	h.Update(router.RootActivatedMsg{})
	if h.menu.Items[0].Label != "Finance" || h.menu.Items[0].Hint != "Basic · 2/8" {
		t.Errorf("unexpected first item %+v", h.menu.Items[0])
	}
}
