package drill

import (
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/quiz"
	"github.com/hyerin/vocadrill/internal/router"
	"github.com/hyerin/vocadrill/internal/screen"
	"github.com/hyerin/vocadrill/internal/speech"
	"github.com/hyerin/vocadrill/internal/store"
	"github.com/hyerin/vocadrill/internal/ui/components"
	"github.com/hyerin/vocadrill/internal/ui/layout"
	"github.com/hyerin/vocadrill/internal/ui/theme"
	"github.com/hyerin/vocadrill/internal/vocab"
)

var tierChoices = []string{"All", "Beginner", "Intermediate", "Advanced"}
var countChoices = []string{"5", "10", "15", "20"}

// ReciteSetup picks a difficulty tier and question count before a recite
// drill.
type ReciteSetup struct {
	words  *vocab.Store
	ledger *mistakes.Ledger
	db     *store.Store
	voice  *speech.Service

	tier  components.Picker
	count components.Picker
	start components.Button
	focus int // 0 tier, 1 count, 2 start
}

var _ screen.Screen = (*ReciteSetup)(nil)
var _ screen.KeyHintProvider = (*ReciteSetup)(nil)

// NewReciteSetup creates the recite setup screen.
func NewReciteSetup(words *vocab.Store, ledger *mistakes.Ledger, db *store.Store, voice *speech.Service) *ReciteSetup {
	tier := components.NewPicker("Difficulty", tierChoices)
	tier.Focused = true
	count := components.NewPicker("Questions ", countChoices)
	count.Selected = 1 // default 10

	setup := &ReciteSetup{
		words:  words,
		ledger: ledger,
		db:     db,
		voice:  voice,
		tier:   tier,
		count:  count,
	}
	setup.start = components.NewButton("Start", false, setup.startCmd)
	return setup
}

func (r *ReciteSetup) Init() tea.Cmd { return nil }

func (r *ReciteSetup) Title() string { return "Recite" }

func (r *ReciteSetup) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "◂▸", Description: "Change"},
		{Key: "↑↓", Description: "Field"},
		{Key: "Enter", Description: "Start"},
	}
}

func (r *ReciteSetup) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		r.setFocus((r.focus + 2) % 3)
		return r, nil
	case "down", "j", "tab":
		r.setFocus((r.focus + 1) % 3)
		return r, nil
	case "enter":
		return r, r.startCmd()
	}

	var cmd tea.Cmd
	if r.focus == 0 {
		r.tier, cmd = r.tier.Update(msg)
	} else {
		r.count, cmd = r.count.Update(msg)
	}
	return r, cmd
}

func (r *ReciteSetup) setFocus(focus int) {
	r.focus = focus
	r.tier.Focused = focus == 0
	r.count.Focused = focus == 1
	r.start.Active = focus == 2
}

func (r *ReciteSetup) startCmd() tea.Cmd {
	var filter quiz.Filter
	switch r.tier.Value() {
	case "Beginner":
		filter.Tier = vocab.TierBeginner
	case "Intermediate":
		filter.Tier = vocab.TierIntermediate
	case "Advanced":
		filter.Tier = vocab.TierAdvanced
	}

	size, _ := strconv.Atoi(r.count.Value())

	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: NewDrill(r.words, r.ledger, r.db, r.voice, quiz.KindMultipleChoice, filter, size),
		}
	}
}

func (r *ReciteSetup) View(width, height int) string {
	content := theme.Title.Render("Set up your drill") + "\n\n" +
		r.tier.View() + "\n" +
		r.count.View() + "\n\n" +
		r.start.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// WordPickSetup selects the exact words for a custom or memo drill.
type WordPickSetup struct {
	words  *vocab.Store
	ledger *mistakes.Ledger
	db     *store.Store
	voice  *speech.Service
	kind   quiz.Kind

	list components.Checklist
}

var _ screen.Screen = (*WordPickSetup)(nil)
var _ screen.KeyHintProvider = (*WordPickSetup)(nil)

// NewWordPickSetup creates the word selection screen. Kind decides whether
// the drill asks multiple choice (custom) or typed recall (memo).
func NewWordPickSetup(words *vocab.Store, ledger *mistakes.Ledger, db *store.Store, voice *speech.Service, kind quiz.Kind) *WordPickSetup {
	items := words.Eligible()
	rows := make([]components.ChecklistItem, len(items))
	for i, it := range items {
		rows[i] = components.ChecklistItem{
			ID:    it.ID,
			Label: it.Headword + "  ·  " + it.Meaning,
		}
	}

	return &WordPickSetup{
		words:  words,
		ledger: ledger,
		db:     db,
		voice:  voice,
		kind:   kind,
		list:   components.NewChecklist(rows, 12),
	}
}

func (w *WordPickSetup) Init() tea.Cmd { return nil }

func (w *WordPickSetup) Title() string {
	if w.kind == quiz.KindFreeText {
		return "Memo"
	}
	return "Custom Drill"
}

func (w *WordPickSetup) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Toggle"},
		{Key: "A", Description: "All"},
		{Key: "Enter", Description: "Start"},
	}
}

func (w *WordPickSetup) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	if kmsg.String() == "enter" {
		ids := w.list.CheckedIDs()
		if len(ids) == 0 {
			return w, nil
		}
		return w, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: NewDrill(w.words, w.ledger, w.db, w.voice, w.kind, quiz.Filter{IDs: ids}, len(ids)),
			}
		}
	}

	var cmd tea.Cmd
	w.list, cmd = w.list.Update(msg)
	return w, cmd
}

func (w *WordPickSetup) View(width, height int) string {
	header := theme.Title.Render("Pick the words to drill")
	if len(w.list.Items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No words yet. Import a spreadsheet or add words first.")
	}

	checked := len(w.list.CheckedIDs())
	status := theme.Hint.Render(strconv.Itoa(checked) + " selected")

	content := header + "\n\n" + w.list.View() + "\n" + status

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
