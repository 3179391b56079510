package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestMultiChoice_ChooseWithCursor(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"w", "x", "y", "z"})
	if m.Answered() {
		t.Fatal("fresh selector should be unanswered")
	}

	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("down"))
	m, _ = m.Update(key("enter"))
	if m.Chosen != 2 {
		t.Errorf("Chosen = %d, want 2", m.Chosen)
	}

	// Changing the answer is allowed until the quiz is finished.
	m, _ = m.Update(key("up"))
	m, _ = m.Update(key("enter"))
	if m.Chosen != 1 {
		t.Errorf("Chosen = %d, want 1", m.Chosen)
	}
}

func TestMultiChoice_LetterKeys(t *testing.T) {
	m := NewMultiChoice("Pick one", []string{"w", "x", "y", "z"})
	m, _ = m.Update(key("d"))
	if m.Chosen != 3 || m.Cursor != 3 {
		t.Errorf("Chosen = %d, Cursor = %d, want 3", m.Chosen, m.Cursor)
	}
}

func TestMultiChoice_ReviewIsReadOnly(t *testing.T) {
	m := NewReview("Pick one", []string{"w", "x", "y", "z"}, 1, 2)
	m, _ = m.Update(key("a"))
	if m.Chosen != 1 {
		t.Errorf("review changed the choice to %d", m.Chosen)
	}
	if m.IsCorrect() {
		t.Error("choice 1 is not correct")
	}
	if !strings.Contains(m.View(), "C)  y") {
		t.Errorf("view missing option C: %q", m.View())
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	var picked string
	items := []MenuItem{
		{Label: "Admin", Disabled: true},
		{Label: "Cloud", Action: func() tea.Cmd { picked = "cloud"; return nil }},
		{Label: "Gone", Disabled: true},
		{Label: "Quit", Action: func() tea.Cmd { picked = "quit"; return nil }},
	}
	m := NewMenu(items)
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("Selected = %d, want 3", m.Selected)
	}
	m, _ = m.Update(key("enter"))
	if picked != "quit" {
		t.Errorf("picked = %q", picked)
	}
}

func TestProgressBar_Suffix(t *testing.T) {
	bar := NewProgressBar("", 0.7, 30)
	if !strings.Contains(bar.View(), "70%") {
		t.Errorf("view = %q", bar.View())
	}
	bar.Suffix = "7/10"
	if !strings.Contains(bar.View(), "7/10") {
		t.Errorf("view = %q", bar.View())
	}
}
