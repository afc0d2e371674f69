// Package home is the application's entry screen.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/quiz"
	"github.com/hyerin/vocadrill/internal/router"
	"github.com/hyerin/vocadrill/internal/screen"
	"github.com/hyerin/vocadrill/internal/screens/drill"
	"github.com/hyerin/vocadrill/internal/screens/mistakebook"
	"github.com/hyerin/vocadrill/internal/screens/wordlist"
	"github.com/hyerin/vocadrill/internal/speech"
	"github.com/hyerin/vocadrill/internal/store"
	"github.com/hyerin/vocadrill/internal/ui/components"
	"github.com/hyerin/vocadrill/internal/ui/theme"
	"github.com/hyerin/vocadrill/internal/vocab"
)

const banner = `
██╗   ██╗ ██████╗  ██████╗ █████╗ ██████╗ ██████╗ ██╗██╗     ██╗
██║   ██║██╔═══██╗██╔════╝██╔══██╗██╔══██╗██╔══██╗██║██║     ██║
██║   ██║██║   ██║██║     ███████║██║  ██║██████╔╝██║██║     ██║
╚██╗ ██╔╝██║   ██║██║     ██╔══██║██║  ██║██╔══██╗██║██║     ██║
 ╚████╔╝ ╚██████╔╝╚██████╗██║  ██║██████╔╝██║  ██║██║███████╗███████╗
  ╚═══╝   ╚═════╝  ╚═════╝╚═╝  ╚═╝╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	words  *vocab.Store
	ledger *mistakes.Ledger
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(words *vocab.Store, ledger *mistakes.Ledger, db *store.Store, voice *speech.Service) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:       "RECITE",
			Description: "multiple choice by difficulty",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: drill.NewReciteSetup(words, ledger, db, voice)}
				}
			},
		},
		{
			Label:       "CUSTOM DRILL",
			Description: "multiple choice over picked words",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drill.NewWordPickSetup(words, ledger, db, voice, quiz.KindMultipleChoice),
					}
				}
			},
		},
		{
			Label:       "MEMO",
			Description: "type the word from its meaning",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drill.NewWordPickSetup(words, ledger, db, voice, quiz.KindFreeText),
					}
				}
			},
		},
		{
			Label:       "MISTAKE BOOK",
			Description: "review what you got wrong",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: mistakebook.New(ledger, db)}
				}
			},
		},
		{
			Label:       "WORD LIST",
			Description: "browse the vocabulary",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: wordlist.New(words)}
				}
			},
		},
		{
			Label: "QUIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		words:  words,
		ledger: ledger,
		menu:   components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	compact := height < 24
	if !compact {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Primary).
			Render(strings.TrimPrefix(banner, "\n")))
	} else {
		sections = append(sections, theme.Title.Render("VOCADRILL"))
	}

	stats := theme.Hint.Render(fmt.Sprintf(
		"%d words in the book · %d in the mistake book",
		h.words.Len(), h.ledger.Len()))
	sections = append(sections, stats)

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
