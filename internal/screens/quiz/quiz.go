// Package quiz is the screen where a user takes one assessment: it waits
// for the quiz to be generated, collects an answer per question and hands
// the graded result to the scorecard screen.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/router"
	"github.com/abhisek/ksa/internal/screen"
	"github.com/abhisek/ksa/internal/screens/scorecard"
	"github.com/abhisek/ksa/internal/session"
	"github.com/abhisek/ksa/internal/ui/components"
	"github.com/abhisek/ksa/internal/ui/layout"
	"github.com/abhisek/ksa/internal/ui/theme"
)

type mode int

const (
	modeLoading mode = iota
	modeFailed
	modeAnswering
	modeConfirmFinish
	modeConfirmQuit
	modeEvaluating
	modeClosed
)

// quizReadyMsg carries the outcome of StartAssessment.
type quizReadyMsg struct {
	Quiz *assessment.Quiz
	Err  error
}

// scoredMsg carries the outcome of FinishAssessment.
type scoredMsg struct {
	Card *assessment.Scorecard
	Err  error
}

// QuizScreen runs one assessment attempt for a sector.
type QuizScreen struct {
	sess   *session.Session
	sector string

	ctx    context.Context
	cancel context.CancelFunc

	mode    mode
	spinner spinner.Model
	quiz    *assessment.Quiz
	choices []components.MultiChoice
	current int
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a QuizScreen. Generation starts on Init.
func New(sess *session.Session, sector string) *QuizScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &QuizScreen{
		sess:    sess,
		sector:  sector,
		ctx:     ctx,
		cancel:  cancel,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.generate())
}

func (s *QuizScreen) generate() tea.Cmd {
	s.mode = modeLoading
	s.errMsg = ""
	return func() tea.Msg {
		q, err := s.sess.StartAssessment(s.ctx, s.sector)
		return quizReadyMsg{Quiz: q, Err: err}
	}
}

func (s *QuizScreen) finish() tea.Cmd {
	s.mode = modeEvaluating
	s.errMsg = ""
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		card, err := s.sess.FinishAssessment(s.ctx)
		return scoredMsg{Card: card, Err: err}
	})
}

// abandon drops the attempt and leaves the screen.
func (s *QuizScreen) abandon() tea.Cmd {
	s.mode = modeClosed
	s.sess.CancelAssessment()
	s.cancel()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *QuizScreen) Title() string {
	return s.sector + " Assessment"
}

func (s *QuizScreen) HandlesEscape() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Question"},
			{Key: "f", Description: "Finish"},
			{Key: "Esc", Description: "Quit"},
		}
	case modeConfirmFinish, modeConfirmQuit:
		return []layout.KeyHint{
			{Key: "y", Description: "Yes"},
			{Key: "n", Description: "No"},
		}
	case modeFailed:
		return []layout.KeyHint{
			{Key: "r", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Cancel"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if s.mode != modeLoading && s.mode != modeEvaluating {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case quizReadyMsg:
		return s.onQuizReady(msg)

	case scoredMsg:
		return s.onScored(msg)

	case tea.KeyMsg:
		return s.onKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) onQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	if s.mode != modeLoading {
		return s, nil
	}
	if msg.Err != nil {
		s.mode = modeFailed
		s.errMsg = describe(msg.Err)
		return s, nil
	}

	s.quiz = msg.Quiz
	s.choices = make([]components.MultiChoice, len(msg.Quiz.Questions))
	for i, q := range msg.Quiz.Questions {
		s.choices[i] = components.NewMultiChoice(q.Text, q.Options)
	}
	s.current = 0
	s.mode = modeAnswering
	return s, nil
}

func (s *QuizScreen) onScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	if s.mode != modeEvaluating {
		return s, nil
	}
	if msg.Err != nil {
		s.mode = modeAnswering
		s.errMsg = describe(msg.Err)
		return s, nil
	}
	next := scorecard.New(s.sess, s.quiz, s.sess.Answers(), msg.Card)
	s.mode = modeClosed
	s.cancel()
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *QuizScreen) onKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.mode {
	case modeLoading, modeEvaluating:
		if key == "esc" {
			return s, s.abandon()
		}

	case modeFailed:
		switch key {
		case "r":
			return s, tea.Batch(s.spinner.Tick, s.generate())
		case "esc":
			return s, s.abandon()
		}

	case modeConfirmQuit:
		switch key {
		case "y":
			return s, s.abandon()
		case "n", "esc":
			s.mode = modeAnswering
		}

	case modeConfirmFinish:
		switch key {
		case "y":
			return s, s.finish()
		case "n", "esc":
			s.mode = modeAnswering
		}

	case modeAnswering:
		return s.onAnswerKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) onAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.mode = modeConfirmQuit
		return s, nil
	case "left", "h":
		if s.current > 0 {
			s.current--
		}
		return s, nil
	case "right", "l", "tab":
		if s.current < len(s.choices)-1 {
			s.current++
		}
		return s, nil
	case "f":
		if s.unanswered() > 0 {
			s.mode = modeConfirmFinish
			return s, nil
		}
		return s, s.finish()
	}

	before := s.choices[s.current].Chosen
	var cmd tea.Cmd
	s.choices[s.current], cmd = s.choices[s.current].Update(msg)
	chosen := s.choices[s.current].Chosen
	if chosen < 0 || (chosen == before && msg.String() != "enter") {
		return s, cmd
	}

	q := s.quiz.Questions[s.current]
	if err := s.sess.SubmitAnswer(q.ID, chosen); err != nil {
		s.errMsg = describe(err)
		return s, cmd
	}
	s.errMsg = ""
	if s.current < len(s.choices)-1 {
		s.current++
	}
	return s, cmd
}

func (s *QuizScreen) unanswered() int {
	n := 0
	for _, c := range s.choices {
		if !c.Answered() {
			n++
		}
	}
	return n
}

// describe turns session errors into a line fit for the screen. Provider
// details stay in the log.
func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrNoQuestions):
		return "Could not generate an assessment right now. Please try again."
	case errors.Is(err, session.ErrAttemptInProgress):
		return "Another assessment is already in progress."
	case errors.Is(err, session.ErrCancelled):
		return "The assessment was cancelled."
	default:
		return err.Error()
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.mode {
	case modeLoading:
		body = components.Card(s.spinner.View()+" "+theme.Body.Render("Preparing your "+s.sector+" assessment…"), cw)
	case modeEvaluating:
		body = components.Card(s.spinner.View()+" "+theme.Body.Render("Scoring your answers…"), cw)
	case modeFailed:
		body = components.Card(
			theme.Incorrect.Render(s.errMsg)+"\n\n"+theme.Hint.Render("Press r to try again or Esc to go back."), cw)
	default:
		body = s.viewQuestion(cw)
	}
	return components.Center(body, width, height)
}

func (s *QuizScreen) viewQuestion(cw int) string {
	if s.quiz == nil || len(s.choices) == 0 {
		return ""
	}

	total := len(s.choices)
	answered := total - s.unanswered()
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.current+1, total),
		float64(answered)/float64(total), cw-6)
	bar.Suffix = fmt.Sprintf("%d answered", answered)

	var sections []string
	sections = append(sections, theme.Label.Render(fmt.Sprintf("%s · %s", s.quiz.Sector, s.quiz.Phase)))
	sections = append(sections, bar.View())
	sections = append(sections, components.Card(
		lipgloss.NewStyle().Width(cw-6).Render(s.choices[s.current].View()), cw))
	sections = append(sections, s.dots())

	switch s.mode {
	case modeConfirmFinish:
		sections = append(sections, theme.Points.Render(
			fmt.Sprintf("%d question(s) unanswered. Finish anyway? (y/n)", s.unanswered())))
	case modeConfirmQuit:
		sections = append(sections, theme.Points.Render("Quit this assessment? Your answers will be lost. (y/n)"))
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}

	return strings.Join(sections, "\n")
}

// dots renders one marker per question: filled when answered, ringed for
// the current one.
func (s *QuizScreen) dots() string {
	answered := lipgloss.NewStyle().Foreground(theme.Secondary)
	pending := lipgloss.NewStyle().Foreground(theme.Border)
	current := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	parts := make([]string, len(s.choices))
	for i, c := range s.choices {
		switch {
		case i == s.current:
			parts[i] = current.Render("◉")
		case c.Answered():
			parts[i] = answered.Render("●")
		default:
			parts[i] = pending.Render("○")
		}
	}
	return strings.Join(parts, " ")
}
