package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screen"
	"github.com/abhisek/ksa/internal/screens/history"
	"github.com/abhisek/ksa/internal/screens/ladder"
	"github.com/abhisek/ksa/internal/screens/quiz"
	"github.com/abhisek/ksa/internal/session"
	"github.com/abhisek/ksa/internal/store"
	"github.com/abhisek/ksa/internal/ui/components"
	"github.com/abhisek/ksa/internal/ui/layout"
	"github.com/abhisek/ksa/internal/ui/theme"
)

const sectorCharLimit = 48

// HomeScreen shows the user's profile and lets them pick a sector to be
// assessed in.
type HomeScreen struct {
	sess   *session.Session
	events store.EventRepo

	menu     components.Menu
	input    components.TextInput
	entering bool
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.EscapeHandler = (*HomeScreen)(nil)

// New creates a HomeScreen for sess. events may be nil, which disables the
// history entry.
func New(sess *session.Session, events store.EventRepo) *HomeScreen {
	h := &HomeScreen{
		sess:   sess,
		events: events,
		input:  components.NewTextInput("e.g. Data Engineering", sectorCharLimit),
	}
	h.refresh()
	return h
}

// refresh rebuilds the menu from the current progress so phase hints stay
// accurate after an assessment.
func (h *HomeScreen) refresh() {
	user := h.sess.Progress()
	selected := h.menu.Selected

	var items []components.MenuItem
	for _, sector := range user.Sectors() {
		p := user.PhaseFor(sector)
		items = append(items, components.MenuItem{
			Label:  sector,
			Hint:   phaseHint(p),
			Action: h.startCmd(sector),
		})
	}
	items = append(items,
		components.MenuItem{Label: "Other sector…", Action: func() tea.Cmd {
			h.entering = true
			h.input.Reset()
			return h.input.Init()
		}},
		components.MenuItem{Label: "Phase ladder", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: ladder.New(h.sess.Progress())}
			}
		}},
		components.MenuItem{Label: "History", Disabled: h.events == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.events)}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) startCmd(sector string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: quiz.New(h.sess, sector)}
		}
	}
}

func phaseHint(p phase.Phase) string {
	return fmt.Sprintf("%s · %d/%d", p, phase.Index(p)+1, phase.Len)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) HandlesEscape() bool {
	return h.entering
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.entering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start assessment"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(router.RootActivatedMsg); ok {
		h.refresh()
		return h, nil
	}

	if h.entering {
		return h.updateInput(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.entering = false
			return h, nil
		case "enter":
			sector := h.input.Value()
			if sector == "" {
				return h, nil
			}
			h.entering = false
			return h, h.startCmd(sector)()
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	user := h.sess.Progress()

	var sections []string
	sections = append(sections, components.TitledCard("Profile", renderProfile(user.Name, string(user.Role), user.Points, user.Badges), cw))

	if h.entering {
		body := theme.Body.Render("Which sector would you like to be assessed in?") + "\n\n" + h.input.View()
		sections = append(sections, components.TitledCard("New sector", body, cw))
	} else {
		sections = append(sections, components.TitledCard("Choose a sector", h.menu.View(), cw))
	}

	return components.Center(strings.Join(sections, "\n"), width, height)
}

func renderProfile(name, role string, points int, badges []string) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(name))
	b.WriteString("  " + theme.Hint.Render(strings.ReplaceAll(role, "_", " ")) + "\n")
	b.WriteString(theme.Points.Render(fmt.Sprintf("★ %d points", points)) + "\n")

	if len(badges) == 0 {
		b.WriteString(theme.Hint.Render("No badges yet"))
		return b.String()
	}
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	for i, badge := range badges {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(badgeStyle.Render("◆ " + badge))
	}
	return b.String()
}
