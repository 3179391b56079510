package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screens/home"
	"github.com/abhisek/ksa/internal/session"
)

func testModel(skipWelcome bool) AppModel {
	provider := assessment.NewDemoProvider()
	cfg := assessment.DefaultConfig()
	sess := session.New("s1", progress.Demo(), session.Deps{
		Generator: assessment.NewGenerator(provider, cfg),
		Evaluator: assessment.NewEvaluator(provider, cfg, nil),
	})
	return newAppModel(Options{Session: sess, SkipWelcome: skipWelcome})
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestHeaderShowsUserStats(t *testing.T) {
	m, _ := update(testModel(true), tea.WindowSizeMsg{Width: 120, Height: 40})

	content := m.render()
	for _, want := range []string{"KSA Portal", "Alex Rivera", "1250 pts", "◆ 2"} {
		if !strings.Contains(content, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	m, _ := update(testModel(true), tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestEscPopsUnlessHandled(t *testing.T) {
	m := testModel(true)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home screen, got %T", m.router.Active())
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc at the root should do nothing")
	}

	// Phase ladder is the fifth menu entry for the demo user.
	for range 4 {
		m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, _ = update(m, cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("expected ladder pushed, depth %d", m.router.Depth())
	}

	_, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the ladder")
	}
}

func TestWelcomeFirst(t *testing.T) {
	m := testModel(false)
	if m.router.Active().Title() != "" {
		t.Error("expected the welcome screen first")
	}
}
