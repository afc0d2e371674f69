// Package wordlist browses the vocabulary by origin.
package wordlist

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/screen"
	"github.com/hyerin/vocadrill/internal/ui/layout"
	"github.com/hyerin/vocadrill/internal/ui/theme"
	"github.com/hyerin/vocadrill/internal/vocab"
)

// originFilters cycles All and then each concrete origin.
var originFilters = []string{"All", "Builtin", "Manual", "Uploaded"}

// ListScreen shows the word list with an origin filter.
type ListScreen struct {
	words *vocab.Store

	filterIdx int
	offset    int
	cursor    int
	visible   int
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates a new ListScreen.
func New(words *vocab.Store) *ListScreen {
	return &ListScreen{words: words, visible: 14}
}

func (l *ListScreen) Init() tea.Cmd { return nil }

func (l *ListScreen) Title() string { return "Word List" }

func (l *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "O", Description: "Origin filter"},
		{Key: "↑↓", Description: "Scroll"},
	}
}

func (l *ListScreen) filtered() []vocab.Item {
	switch originFilters[l.filterIdx] {
	case "Builtin":
		return l.words.ByOrigin(vocab.OriginBuiltin)
	case "Manual":
		return l.words.ByOrigin(vocab.OriginManual)
	case "Uploaded":
		return l.words.ByOrigin(vocab.OriginUploaded)
	default:
		return l.words.All()
	}
}

func (l *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	items := l.filtered()
	switch kmsg.String() {
	case "o":
		l.filterIdx = (l.filterIdx + 1) % len(originFilters)
		l.cursor = 0
		l.offset = 0
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(items)-1 {
			l.cursor++
		}
	}

	// Keep the cursor inside the window.
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+l.visible {
		l.offset = l.cursor - l.visible + 1
	}

	return l, nil
}

func (l *ListScreen) View(width, height int) string {
	items := l.filtered()

	header := theme.Title.Render("Vocabulary") + "  " +
		theme.Hint.Render(fmt.Sprintf("(%s · %d words)", originFilters[l.filterIdx], len(items)))

	if len(items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No words under this filter.")
	}

	end := l.offset + l.visible
	if end > len(items) {
		end = len(items)
	}

	var body string
	for i := l.offset; i < end; i++ {
		it := items[i]

		line := fmt.Sprintf("%-14s %-24s %-12s", it.Headword, it.Meaning, it.Tier)
		line += theme.Hint.Render(fmt.Sprintf("fam %d", it.Familiarity))
		if it.MissCount > 0 {
			line += theme.Incorrect.Render(fmt.Sprintf("  ×%d", it.MissCount))
		}

		if i == l.cursor {
			body += theme.Selected.Render("▸ "+line) + "\n"
		} else {
			body += theme.Body.Render("  "+line) + "\n"
		}
	}

	if len(items) > l.visible {
		body += theme.Hint.Render(fmt.Sprintf("  %d-%d of %d", l.offset+1, end, len(items))) + "\n"
	}

	content := header + "\n\n" + body

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
