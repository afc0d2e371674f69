// Package summary shows the score card after a drill.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/quiz"
	"github.com/hyerin/vocadrill/internal/router"
	"github.com/hyerin/vocadrill/internal/screen"
	"github.com/hyerin/vocadrill/internal/ui/layout"
	"github.com/hyerin/vocadrill/internal/ui/theme"
	"github.com/hyerin/vocadrill/internal/vocab"
)

// SummaryScreen displays the drill result and the words to review.
type SummaryScreen struct {
	summary quiz.Summary
	missed  []vocab.Item
	saved   bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscHandler = (*SummaryScreen)(nil)

// HandlesEsc claims Esc so the summary unwinds to home, not back into the
// finished drill.
func (s *SummaryScreen) HandlesEsc() bool { return true }

// New creates a new SummaryScreen. saved reports whether the run reached
// the database; in-memory results are shown either way.
func New(summary quiz.Summary, missed []vocab.Item, saved bool) *SummaryScreen {
	return &SummaryScreen{summary: summary, missed: missed, saved: saved}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Drill Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var b strings.Builder

	// Title.
	headline := "Drill complete!"
	if sum.Accuracy == 100 && sum.Total > 0 {
		headline = "Perfect run!"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %d%%",
		sum.Total, sum.Correct, sum.Accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if !s.saved {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("changes not saved")))
		b.WriteString("\n\n")
	}

	if len(s.missed) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Correct.Render("Nothing missed. Keep it up!")))
		b.WriteString("\n")
		return b.String()
	}

	// Missed-words divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("To review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, it := range s.missed {
		line := fmt.Sprintf("  %s    %s", it.Headword, it.Meaning)
		if it.Pronunciation != "" {
			line += fmt.Sprintf("    [%s]", it.Pronunciation)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
