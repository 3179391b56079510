package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// MultiChoice is a multiple-choice selector. While answering, the cursor
// moves freely and Chosen marks the committed option (-1 for none). With
// Reveal set it becomes a read-only review that colors the correct option
// and a wrong choice.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int

	Reveal       bool
	CorrectIndex int
}

// NewMultiChoice creates a selector with nothing chosen yet.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question: question,
		Options:  options,
		Chosen:   -1,
	}
}

// NewReview creates a read-only selector showing chosen against correct.
func NewReview(question string, options []string, chosen, correct int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		Chosen:       chosen,
		Reveal:       true,
		CorrectIndex: correct,
	}
}

// Update moves the cursor. Enter, space or a letter key commits a choice.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Reveal {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space", " ":
		m.Chosen = m.Cursor
	default:
		for i := range m.Options {
			if i < len(optionLabels) && strings.EqualFold(key, optionLabels[i]) {
				m.Cursor = i
				m.Chosen = i
			}
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.Question) + "\n\n")

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}

		marker := "( )"
		if i == m.Chosen {
			marker = "(•)"
		}
		prefix := "  "
		if i == m.Cursor && !m.Reveal {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		var style lipgloss.Style
		switch {
		case m.Reveal && i == m.CorrectIndex:
			style = theme.Correct
		case m.Reveal && i == m.Chosen:
			style = theme.Incorrect
		case m.Reveal:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}

// Answered reports whether an option has been chosen.
func (m MultiChoice) Answered() bool {
	return m.Chosen >= 0
}

// IsCorrect reports whether the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Reveal && m.Chosen == m.CorrectIndex
}
