package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screen"
	"github.com/abhisek/ksa/internal/store"
	"github.com/abhisek/ksa/internal/ui/layout"
	"github.com/abhisek/ksa/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Attempts []store.AssessmentEventRecord
	Stats    []store.SectorStats
	Err      error
}

// HistoryScreen lists past assessment attempts with per-sector totals.
type HistoryScreen struct {
	eventRepo store.EventRepo
	attempts  []store.AssessmentEventRecord
	stats     []store.SectorStats
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		attempts, err := s.eventRepo.QueryAssessmentEvents(ctx, store.QueryOpts{Limit: historyLimit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Totals are a nice-to-have; show the list even if they fail.
		stats, err := s.eventRepo.AssessmentStatsBySector(ctx)
		if err != nil {
			return historyLoadedMsg{Attempts: attempts}
		}
		return historyLoadedMsg{Attempts: attempts, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Pick a sector to get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.stats) > 0 {
		for _, st := range s.stats {
			line := fmt.Sprintf("%-24s %3d attempts  %3d passed  avg %3.0f  best %3d  at %s",
				truncate(st.Sector, 24), st.Attempts, st.Passes, st.AvgScore, st.BestScore, st.HighestPhase)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Secondary).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	for i, a := range s.attempts {
		dateStr := a.Timestamp.Format("Jan 02, 2006")

		result := "passed"
		if !a.Passed {
			result = "not passed"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s %-13s %3d  %s",
			prefix, dateStr, truncate(a.Sector, 20), a.Phase, a.Score, result)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, d := range details(a) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render(d)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

func details(a store.AssessmentEventRecord) []string {
	out := []string{fmt.Sprintf("    %d of %d correct, next phase %s", a.Correct, a.Total, a.NextPhase)}
	if a.PointsAwarded > 0 {
		out = append(out, fmt.Sprintf("    +%d points", a.PointsAwarded))
	}
	if a.Badge != "" {
		out = append(out, "    ◆ "+a.Badge)
	}
	if a.RemediationFallback {
		out = append(out, "    general guidance shown")
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
