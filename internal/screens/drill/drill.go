// Package drill hosts the active quiz screen and its setup screens.
package drill

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/quiz"
	"github.com/hyerin/vocadrill/internal/router"
	"github.com/hyerin/vocadrill/internal/screen"
	"github.com/hyerin/vocadrill/internal/screens/summary"
	"github.com/hyerin/vocadrill/internal/speech"
	"github.com/hyerin/vocadrill/internal/store"
	"github.com/hyerin/vocadrill/internal/ui/components"
	"github.com/hyerin/vocadrill/internal/ui/layout"
	"github.com/hyerin/vocadrill/internal/ui/theme"
	"github.com/hyerin/vocadrill/internal/vocab"
)

// feedbackDelay is how long the answer feedback stays before the drill moves
// on by itself. Any key advances sooner.
const feedbackDelay = 1500 * time.Millisecond

// Screen runs one quiz session from first question to summary.
type Screen struct {
	words  *vocab.Store
	ledger *mistakes.Ledger
	db     *store.Store
	voice  *speech.Service

	kind   quiz.Kind
	filter quiz.Filter
	size   int

	session *quiz.Session
	mc      components.MultiChoice
	input   components.TextInput

	showingFeedback bool
	lastCorrect     bool
	answerSeq       int
	quitConfirm     bool
	errMsg          string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.EscHandler = (*Screen)(nil)

// HandlesEsc claims the Esc key for the quit confirmation flow.
func (s *Screen) HandlesEsc() bool { return true }

// NewDrill creates the quiz screen. The session itself is sampled in Init.
func NewDrill(words *vocab.Store, ledger *mistakes.Ledger, db *store.Store, voice *speech.Service, kind quiz.Kind, filter quiz.Filter, size int) *Screen {
	return &Screen{
		words:  words,
		ledger: ledger,
		db:     db,
		voice:  voice,
		kind:   kind,
		filter: filter,
		size:   size,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.startSession()
}

func (s *Screen) Title() string {
	if s.kind == quiz.KindFreeText {
		return "Memo Drill"
	}
	return "Drill"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	case s.showingFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	case s.kind == quiz.KindFreeText:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

// startSession samples the question set off the main loop.
func (s *Screen) startSession() tea.Cmd {
	return func() tea.Msg {
		session, err := quiz.Start(s.words.All(), s.filter, s.kind, quiz.Config{
			Size:     s.size,
			Recorder: s.ledger,
			Hooks: quiz.Hooks{
				OnAnswer: s.onAnswer,
			},
		})
		return sessionStartMsg{Session: session, Err: err}
	}
}

// onAnswer applies the familiarity bookkeeping and speaks the headword.
func (s *Screen) onAnswer(item vocab.Item, correct bool) {
	if correct {
		s.words.BumpFamiliarity(item.ID)
	} else {
		s.words.RecordMiss(item.ID)
	}
	if s.voice != nil {
		go func() { _ = s.voice.Speak(context.Background(), item.Headword) }()
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartMsg:
		return s.handleStart(msg)

	case autoAdvanceMsg:
		if s.showingFeedback && msg.Seq == s.answerSeq {
			return s.advance()
		}
		return s, nil

	case drillEndMsg:
		return s.handleEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.session != nil && !s.showingFeedback && !s.quitConfirm && s.kind == quiz.KindFreeText {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *Screen) handleStart(msg sessionStartMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.session = msg.Session
	return s, s.loadQuestion()
}

// loadQuestion rebuilds the answer component for the question under the
// cursor.
func (s *Screen) loadQuestion() tea.Cmd {
	q, err := s.session.Current()
	if err != nil {
		return func() tea.Msg { return drillEndMsg{} }
	}

	if s.kind == quiz.KindMultipleChoice {
		s.mc = components.NewMultiChoice(q.Prompt, q.Options.Choices, q.Options.CorrectIndex)
		return nil
	}
	s.input = components.NewTextInput("Type the word...", 40)
	return s.input.Init()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return drillEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay, any key moves on.
	if s.showingFeedback {
		return s.advance()
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.kind == quiz.KindMultipleChoice {
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.submit(s.mc.Options[s.mc.ChosenIndex])
		}
		return s, cmd
	}

	// Free text.
	if key == "enter" {
		answer := s.input.Value()
		if answer == "" {
			return s, nil
		}
		return s.submit(answer)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit evaluates the answer and schedules the auto-advance timer.
func (s *Screen) submit(response string) (screen.Screen, tea.Cmd) {
	correct, err := s.session.Submit(response)
	if err != nil {
		return s, nil
	}

	s.lastCorrect = correct
	s.showingFeedback = true
	s.answerSeq++
	if s.kind == quiz.KindFreeText {
		s.input.Submit(correct)
	}

	seq := s.answerSeq
	return s, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Seq: seq}
	})
}

// advance moves past the feedback to the next question or the summary.
func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	s.showingFeedback = false

	if err := s.session.Advance(); err != nil {
		return s, nil
	}
	if s.session.Done() {
		return s, func() tea.Msg { return drillEndMsg{} }
	}
	return s, s.loadQuestion()
}

// handleEnd persists the run and shows the score card. Misses reach the
// ledger only through the session's own completion handoff, so a quit
// mid-run discards them.
func (s *Screen) handleEnd() (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	ctx := context.Background()
	saveErr := s.db.SaveVocab(ctx, s.words.All())
	if err := s.db.SaveMistakes(ctx, s.ledger.All()); err != nil && saveErr == nil {
		saveErr = err
	}

	sum := s.session.Summary()
	missed := s.session.Missed()
	saved := saveErr == nil

	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summary.New(sum, missed, saved),
		}
	}
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render(s.errMsg + "\n\n" + theme.Hint.Render("press any key to go back"))
	}
	if s.session == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Preparing questions...")
	}
	if s.quitConfirm {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Body.Render("End this drill?") + "\n\n" + theme.Hint.Render("y / n"))
	}
	return s.renderQuestion(width, height)
}

func (s *Screen) renderQuestion(width, height int) string {
	q, err := s.session.Current()
	if err != nil {
		return ""
	}

	bar := components.NewProgressBar(
		"",
		float64(s.session.Cursor())/float64(s.session.Len()),
		false,
		min(width-8, 48),
	).View()

	counter := theme.Hint.Render(
		fmt.Sprintf("%d / %d", s.session.Cursor()+1, s.session.Len()))

	var body string
	if s.kind == quiz.KindMultipleChoice {
		body = s.mc.View()
	} else {
		body = theme.Headword.Render(q.Prompt) + "\n\n" + s.input.View()
	}

	if s.showingFeedback {
		body += "\n" + s.renderFeedback(q)
	}

	content := counter + "  " + bar + "\n\n" + body

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// renderFeedback shows the verdict plus the word's supporting detail.
func (s *Screen) renderFeedback(q *quiz.Question) string {
	var out string
	if s.lastCorrect {
		out = theme.Correct.Render("Correct!")
	} else {
		out = theme.Incorrect.Render("Wrong") + "  " +
			theme.Body.Render(q.Item.Headword+"  ·  "+q.Item.Meaning)
	}
	if q.Item.Pronunciation != "" {
		out += "\n" + theme.Hint.Render("["+q.Item.Pronunciation+"]")
	}
	if q.Item.Example != "" {
		out += "\n" + theme.Hint.Render(q.Item.Example)
	}
	return out
}
