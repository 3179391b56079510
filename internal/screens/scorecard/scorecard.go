package scorecard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/progress"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screen"
	"github.com/abhisek/ksa/internal/session"
	"github.com/abhisek/ksa/internal/ui/components"
	"github.com/abhisek/ksa/internal/ui/layout"
	"github.com/abhisek/ksa/internal/ui/theme"
)

// acknowledgedMsg carries the progress returned by AcknowledgeResult.
type acknowledgedMsg struct {
	User progress.UserProgress
	Err  error
}

// ScorecardScreen presents a graded attempt. Leaving it acknowledges the
// result, which is when progress is applied.
type ScorecardScreen struct {
	sess    *session.Session
	quiz    *assessment.Quiz
	answers assessment.AnswerSet
	card    *assessment.Scorecard
	before  progress.UserProgress

	reviewing bool
	reviewIdx int

	acknowledging bool
	acked         bool
	after         progress.UserProgress
	errMsg        string
}

var _ screen.Screen = (*ScorecardScreen)(nil)
var _ screen.KeyHintProvider = (*ScorecardScreen)(nil)
var _ screen.EscapeHandler = (*ScorecardScreen)(nil)

// New creates a ScorecardScreen for card, graded from quiz and answers.
func New(sess *session.Session, quiz *assessment.Quiz, answers assessment.AnswerSet, card *assessment.Scorecard) *ScorecardScreen {
	return &ScorecardScreen{
		sess:    sess,
		quiz:    quiz,
		answers: answers,
		card:    card,
		before:  sess.Progress(),
	}
}

func (s *ScorecardScreen) Init() tea.Cmd {
	return nil
}

func (s *ScorecardScreen) Title() string {
	return "Scorecard"
}

func (s *ScorecardScreen) HandlesEscape() bool {
	return true
}

func (s *ScorecardScreen) KeyHints() []layout.KeyHint {
	if s.acked {
		return []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	}
	if s.reviewing {
		return []layout.KeyHint{
			{Key: "←→", Description: "Question"},
			{Key: "r", Description: "Summary"},
			{Key: "Enter", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "r", Description: "Review answers"},
		{Key: "Enter", Description: "Continue"},
	}
}

func (s *ScorecardScreen) acknowledge() tea.Cmd {
	s.acknowledging = true
	return func() tea.Msg {
		user, err := s.sess.AcknowledgeResult(context.Background())
		return acknowledgedMsg{User: user, Err: err}
	}
}

func (s *ScorecardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case acknowledgedMsg:
		s.acknowledging = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.acked = true
		s.reviewing = false
		s.after = msg.User
		return s, nil

	case tea.KeyMsg:
		if s.acknowledging {
			return s, nil
		}
		key := msg.String()
		if s.acked || s.errMsg != "" {
			if key == "enter" || key == "esc" {
				return s, func() tea.Msg { return router.PopToRootMsg{} }
			}
			return s, nil
		}
		switch key {
		case "enter", "esc":
			return s, s.acknowledge()
		case "r":
			s.reviewing = !s.reviewing
		case "left", "h":
			if s.reviewing && s.reviewIdx > 0 {
				s.reviewIdx--
			}
		case "right", "l", "tab":
			if s.reviewing && s.reviewIdx < len(s.quiz.Questions)-1 {
				s.reviewIdx++
			}
		}
	}
	return s, nil
}

func (s *ScorecardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.viewScore(cw))
	switch {
	case s.acked:
		sections = append(sections, components.TitledCard("Progress", s.viewOutcome(), cw))
	case s.reviewing:
		sections = append(sections, s.viewReview(cw))
	default:
		sections = append(sections, s.viewRemediation(cw)...)
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}
	return components.Center(strings.Join(sections, "\n"), width, height)
}

func (s *ScorecardScreen) viewScore(cw int) string {
	verdict := theme.Incorrect.Render("Not passed")
	fill := theme.Error
	if s.card.Passed {
		verdict = theme.Correct.Render("Passed")
		fill = theme.Success
	}

	bar := components.NewProgressBar("Score", float64(s.card.Score)/100, cw-6)
	bar.Suffix = fmt.Sprintf("%d / 100", s.card.Score)
	bar.Fill = fill

	head := theme.Label.Render(fmt.Sprintf("%s · %s", s.quiz.Sector, s.quiz.Phase)) + "   " + verdict
	detail := theme.Hint.Render(fmt.Sprintf("%d of %d correct, pass mark %d", s.card.Correct, s.card.Total, assessment.PassThreshold))
	return components.Card(head+"\n"+detail+"\n"+bar.View(), cw)
}

func (s *ScorecardScreen) viewRemediation(cw int) []string {
	wrap := lipgloss.NewStyle().Width(min(cw-6, layout.WrapWidth)).Foreground(theme.Text)

	gap := wrap.Render(s.card.GapAnalysis)
	if s.card.RemediationFallback {
		gap += "\n" + theme.Hint.Render("Personalised feedback was unavailable, showing general guidance.")
	}

	var rx strings.Builder
	writeList(&rx, "Online", s.card.Prescriptions.Online, wrap)
	rx.WriteString("\n")
	writeList(&rx, "Offline", s.card.Prescriptions.Offline, wrap)

	return []string{
		components.TitledCard("Gap analysis", gap, cw),
		components.TitledCard("Training prescriptions", strings.TrimRight(rx.String(), "\n"), cw),
	}
}

func writeList(b *strings.Builder, heading string, items []string, wrap lipgloss.Style) {
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(heading) + "\n")
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render("  none") + "\n")
		return
	}
	for _, item := range items {
		b.WriteString(wrap.Render("  • "+item) + "\n")
	}
}

func (s *ScorecardScreen) viewReview(cw int) string {
	q := s.quiz.Questions[s.reviewIdx]
	chosen, ok := s.answers[q.ID]
	if !ok {
		chosen = -1
	}
	mc := components.NewReview(q.Text, q.Options, chosen, q.CorrectAnswer)

	status := theme.Correct.Render("Correct")
	switch {
	case chosen < 0:
		status = theme.Hint.Render("Unanswered")
	case !mc.IsCorrect():
		status = theme.Incorrect.Render("Incorrect")
	}

	title := fmt.Sprintf("Question %d of %d", s.reviewIdx+1, len(s.quiz.Questions))
	body := lipgloss.NewStyle().Width(cw-6).Render(mc.View()) + "\n" + status
	return components.TitledCard(title, body, cw)
}

func (s *ScorecardScreen) viewOutcome() string {
	sector := s.quiz.Sector
	var lines []string

	from := s.before.PhaseFor(sector)
	to := s.after.PhaseFor(sector)
	switch {
	case to != from:
		lines = append(lines, theme.Correct.Render(fmt.Sprintf("Advanced from %s to %s", from, to)))
	case s.card.Passed:
		lines = append(lines, theme.Correct.Render(fmt.Sprintf("Staying at %s, the top of the ladder", to)))
	default:
		lines = append(lines, theme.Body.Render(fmt.Sprintf("Still at %s. Review the prescriptions and try again.", to)))
	}

	if gained := s.after.Points - s.before.Points; gained > 0 {
		lines = append(lines, theme.Points.Render(fmt.Sprintf("+%d points (%d total)", gained, s.after.Points)))
	}
	badge := progress.BadgeName(from, sector)
	if s.card.Passed && !s.before.HasBadge(badge) {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Render("◆ New badge: "+badge))
	}
	return strings.Join(lines, "\n")
}
