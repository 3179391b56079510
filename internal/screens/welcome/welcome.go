package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/phase"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screen"
	"github.com/abhisek/ksa/internal/ui/theme"
)

const (
	tickInterval = 120 * time.Millisecond
	bannerAt     = 360 * time.Millisecond
	totalDur     = 2400 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the banner and climbs the phase ladder once before
// handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

// rungsShown is how many ladder rungs are lit at the current point of the
// animation.
func (w *WelcomeScreen) rungsShown() int {
	if w.elapsed < bannerAt {
		return 0
	}
	step := (totalDur - bannerAt) / time.Duration(phase.Len)
	n := int((w.elapsed-bannerAt)/step) + 1
	return min(n, phase.Len)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Knowledge · Skills · Abilities"))
	sections = append(sections, "")

	lit := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.Border)
	ladder := phase.All()
	var rungs []string
	for i := len(ladder) - 1; i >= 0; i-- {
		style := dim
		if i < w.rungsShown() {
			style = lit
		}
		rungs = append(rungs, style.Render("┤ "+ladder[i].String()+" ├"))
	}
	sections = append(sections, strings.Join(rungs, "\n"))

	if w.elapsed >= totalDur {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
