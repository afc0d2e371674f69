// Package mistakebook lists the words answered wrong across drills.
package mistakebook

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/screen"
	"github.com/hyerin/vocadrill/internal/store"
	"github.com/hyerin/vocadrill/internal/ui/layout"
	"github.com/hyerin/vocadrill/internal/ui/theme"
)

// BookScreen shows the mistake ledger with per-entry removal.
type BookScreen struct {
	ledger *mistakes.Ledger
	db     *store.Store

	cursor       int
	confirmClear bool
	unsaved      bool
}

var _ screen.Screen = (*BookScreen)(nil)
var _ screen.KeyHintProvider = (*BookScreen)(nil)

// New creates a new BookScreen.
func New(ledger *mistakes.Ledger, db *store.Store) *BookScreen {
	return &BookScreen{ledger: ledger, db: db}
}

func (b *BookScreen) Init() tea.Cmd { return nil }

func (b *BookScreen) Title() string { return "Mistake Book" }

func (b *BookScreen) KeyHints() []layout.KeyHint {
	if b.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear all"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "D", Description: "Remove"},
		{Key: "C", Description: "Clear all"},
	}
}

func (b *BookScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.confirmClear {
		switch kmsg.String() {
		case "y", "Y":
			b.ledger.Clear()
			b.cursor = 0
			b.persist()
		}
		b.confirmClear = false
		return b, nil
	}

	entries := b.ledger.All()
	switch kmsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(entries)-1 {
			b.cursor++
		}
	case "d":
		if b.cursor < len(entries) {
			b.ledger.Remove(entries[b.cursor].ID)
			if b.cursor >= b.ledger.Len() && b.cursor > 0 {
				b.cursor--
			}
			b.persist()
		}
	case "c":
		if len(entries) > 0 {
			b.confirmClear = true
		}
	}

	return b, nil
}

// persist writes the ledger through. On failure the screen keeps serving
// the in-memory state and flags it as unsaved.
func (b *BookScreen) persist() {
	b.unsaved = b.db.SaveMistakes(context.Background(), b.ledger.All()) != nil
}

func (b *BookScreen) View(width, height int) string {
	entries := b.ledger.All()

	if b.confirmClear {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Body.Render("Clear the whole mistake book?") + "\n\n" + theme.Hint.Render("y / n"))
	}

	var status string
	if b.unsaved {
		status = "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("changes not saved")
	}

	if len(entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No mistakes recorded. Nice!" + status)
	}

	var body string
	for i, e := range entries {
		line := fmt.Sprintf("%s    %s", e.Headword, e.Meaning)
		if e.Pronunciation != "" {
			line += fmt.Sprintf("    [%s]", e.Pronunciation)
		}
		line += theme.Hint.Render(fmt.Sprintf("    ×%d", e.WrongCount))

		if i == b.cursor {
			body += theme.Selected.Render("▸ "+line) + "\n"
		} else {
			body += theme.Body.Render("  "+line) + "\n"
		}
	}

	content := theme.Title.Render("Words to revisit") + "\n\n" + body + status

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
