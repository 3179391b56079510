// Package ladder shows where a user stands on the eight-phase ladder in
// each of their sectors.
package ladder

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screen"
	"github.com/abhisek/ksa/internal/ui/components"
	"github.com/abhisek/ksa/internal/ui/layout"
	"github.com/abhisek/ksa/internal/ui/theme"
)

// RungState is how a phase relates to the user's current phase.
type RungState int

const (
	RungDone RungState = iota
	RungCurrent
	RungAhead
)

// LadderScreen renders one sector's ladder at a time.
type LadderScreen struct {
	user    progress.UserProgress
	sectors []string
	current int
}

var _ screen.Screen = (*LadderScreen)(nil)
var _ screen.KeyHintProvider = (*LadderScreen)(nil)

// New creates a LadderScreen over a snapshot of user.
func New(user progress.UserProgress) *LadderScreen {
	return &LadderScreen{
		user:    user,
		sectors: user.Sectors(),
	}
}

// Rungs returns the state of every phase for a user at p, bottom first.
func Rungs(p phase.Phase) []RungState {
	at := phase.Index(p)
	out := make([]RungState, phase.Len)
	for i := range out {
		switch {
		case i < at:
			out[i] = RungDone
		case i == at:
			out[i] = RungCurrent
		default:
			out[i] = RungAhead
		}
	}
	return out
}

func (s *LadderScreen) Init() tea.Cmd {
	return nil
}

func (s *LadderScreen) Title() string {
	return "Phase Ladder"
}

func (s *LadderScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Sector"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LadderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		if s.current > 0 {
			s.current--
		}
	case "right", "l", "tab":
		if s.current < len(s.sectors)-1 {
			s.current++
		}
	}
	return s, nil
}

func (s *LadderScreen) View(width, height int) string {
	if len(s.sectors) == 0 {
		return components.Center(theme.Hint.Render("No sectors yet. Start an assessment from the home screen."), width, height)
	}

	cw := components.ContentWidth(width)
	sector := s.sectors[s.current]
	p := s.user.PhaseFor(sector)

	done := lipgloss.NewStyle().Foreground(theme.Success)
	here := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	ahead := lipgloss.NewStyle().Foreground(theme.TextDim)

	ladder := phase.All()
	states := Rungs(p)
	var rows []string
	for i := len(ladder) - 1; i >= 0; i-- {
		name := fmt.Sprintf("%d  %-14s", i+1, ladder[i])
		var row string
		switch states[i] {
		case RungDone:
			badge := progress.BadgeName(ladder[i], sector)
			mark := "✓"
			if s.user.HasBadge(badge) {
				mark = "✓ ◆"
			}
			row = done.Render(name + mark)
		case RungCurrent:
			row = here.Render(name + "▸ you are here")
		default:
			row = ahead.Render(name)
		}
		rows = append(rows, row)
	}

	title := fmt.Sprintf("%s  (%d of %d)", sector, s.current+1, len(s.sectors))
	return components.Center(components.TitledCard(title, strings.Join(rows, "\n"), cw), width, height)
}
