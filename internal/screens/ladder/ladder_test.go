package ladder

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
)

func TestRungs(t *testing.T) {
	got := Rungs(phase.Intermediate)
	if len(got) != phase.Len {
		t.Fatalf("expected %d rungs, got %d", phase.Len, len(got))
	}
	at := phase.Index(phase.Intermediate)
	for i, st := range got {
		want := RungAhead
		switch {
		case i < at:
			want = RungDone
		case i == at:
			want = RungCurrent
		}
		if st != want {
			t.Errorf("rung %d: got %d, want %d", i, st, want)
		}
	}
}

func TestSectorSwitching(t *testing.T) {
	user := progress.Demo()
	user.CurrentPhases["Project Management"] = phase.Intermediate
	s := New(user)

	if !strings.Contains(s.View(100, 40), "Cloud Computing") {
		t.Error("sectors should be listed alphabetically")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	view := s.View(100, 40)
	if !strings.Contains(view, "Project Management") || !strings.Contains(view, "you are here") {
		t.Error("expected the second sector with a current marker")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.current != len(s.sectors)-1 {
		t.Errorf("cursor should stop at the last sector, got %d", s.current)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop")
	}
}

func TestEmptyUser(t *testing.T) {
	s := New(progress.New("u", "Jo", progress.RoleEndUser))
	if !strings.Contains(s.View(100, 40), "No sectors yet") {
		t.Error("expected empty state")
	}
}
