package quiz

import (
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/hyerin/vocadrill/internal/vocab"
)

var (
	// ErrEmptyPool is reported when no eligible items exist to drill.
	ErrEmptyPool = errors.New("no questions available")

	// ErrAlreadyAnswered rejects a repeated submit on the same question.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrUnanswered rejects advancing past a question that was never answered.
	ErrUnanswered = errors.New("current question not answered")

	// ErrSessionComplete rejects operations on a finished session.
	ErrSessionComplete = errors.New("session already complete")
)

// Kind selects the evaluation rule for a session.
type Kind int

const (
	// KindMultipleChoice shows the headword and asks for the meaning.
	// Correct iff the chosen option equals the meaning exactly.
	KindMultipleChoice Kind = iota

	// KindFreeText shows the meaning and asks the learner to type the
	// headword. Correct iff trimmed, case-folded input matches.
	KindFreeText
)

// DefaultSessionSize is the question count when the caller does not choose one.
const DefaultSessionSize = 10

// Filter narrows the pool before sampling a question set.
// Zero value means no filtering.
type Filter struct {
	// Tier keeps only items of the given difficulty. The beginner tier also
	// admits unclassified items, so fresh imports are drillable right away.
	Tier vocab.Tier

	// IDs keeps only items whose id is in the set.
	IDs []string
}

func (f Filter) apply(pool []vocab.Item) []vocab.Item {
	out := pool
	if f.Tier != "" {
		var kept []vocab.Item
		for _, it := range out {
			if it.Tier == f.Tier || (f.Tier == vocab.TierBeginner && it.Tier == vocab.TierUnclassified) {
				kept = append(kept, it)
			}
		}
		out = kept
	}
	if len(f.IDs) > 0 {
		want := make(map[string]bool, len(f.IDs))
		for _, id := range f.IDs {
			want[id] = true
		}
		var kept []vocab.Item
		for _, it := range out {
			if want[it.ID] {
				kept = append(kept, it)
			}
		}
		out = kept
	}
	return out
}

// Recorder receives the missed items when a session completes.
// *mistakes.Ledger satisfies it.
type Recorder interface {
	Record(item vocab.Item)
}

// Hooks are optional callbacks the session invokes on evaluation. They
// decouple side effects (speech, familiarity updates) from the engine.
type Hooks struct {
	OnAnswer func(item vocab.Item, correct bool)
}

// Question is one entry of a session's question set.
type Question struct {
	Item    vocab.Item
	Prompt  string
	Options OptionSet // zero value for free-text sessions

	answered bool
	correct  bool
}

// Answered reports whether the question has been evaluated.
func (q *Question) Answered() bool { return q.answered }

// Correct reports the evaluation outcome; meaningful only after Answered.
func (q *Question) Correct() bool { return q.correct }

// Config carries the optional knobs for Start.
type Config struct {
	Size            int
	DistractorCount int
	Recorder        Recorder
	Hooks           Hooks
	Rand            *rand.Rand // fixed stream for tests; nil seeds a fresh one
}

// Session drives one quiz run over a fixed question set. It is not safe for
// concurrent use; one session is active at a time.
type Session struct {
	kind      Kind
	questions []Question
	pool      []vocab.Item // distractor sampling pool
	cursor    int
	correct   int
	incorrect int
	missed    []vocab.Item
	complete  bool
	handedOff bool
	recorder  Recorder
	hooks     Hooks
	nOptions  int
	rng       *rand.Rand
}

// Start samples a question set from the pool and begins a session.
// Ineligible items are dropped first; if the filter matches nothing the
// unfiltered pool is used, so a session only fails with ErrEmptyPool when
// the pool itself has no eligible items.
func Start(pool []vocab.Item, filter Filter, kind Kind, cfg Config) (*Session, error) {
	var eligible []vocab.Item
	for _, it := range pool {
		if it.Eligible() {
			eligible = append(eligible, it)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrEmptyPool
	}

	selected := filter.apply(eligible)
	if len(selected) == 0 {
		selected = eligible
	}

	rng := cfg.Rand
	if rng == nil {
		rng = newRNG()
	}

	sampled := make([]vocab.Item, len(selected))
	copy(sampled, selected)
	rng.Shuffle(len(sampled), func(i, j int) {
		sampled[i], sampled[j] = sampled[j], sampled[i]
	})

	size := cfg.Size
	if size <= 0 {
		size = DefaultSessionSize
	}
	if size > len(sampled) {
		size = len(sampled)
	}
	sampled = sampled[:size]

	s := &Session{
		kind:     kind,
		pool:     eligible,
		recorder: cfg.Recorder,
		hooks:    cfg.Hooks,
		nOptions: cfg.DistractorCount,
		rng:      rng,
	}
	if s.nOptions <= 0 {
		s.nOptions = DefaultDistractorCount
	}

	s.questions = make([]Question, len(sampled))
	for i, it := range sampled {
		prompt := it.Headword
		if kind == KindFreeText {
			prompt = it.Meaning
		}
		s.questions[i] = Question{Item: it, Prompt: prompt}
	}
	s.prepareCurrent()

	return s, nil
}

// prepareCurrent generates a fresh option set for the question under the
// cursor. Options are never reused across questions.
func (s *Session) prepareCurrent() {
	if s.kind != KindMultipleChoice || s.cursor >= len(s.questions) {
		return
	}
	q := &s.questions[s.cursor]
	q.Options = NewOptionSet(s.pool, q.Item, s.nOptions, s.rng)
}

// Current returns the question under the cursor.
func (s *Session) Current() (*Question, error) {
	if s.complete {
		return nil, ErrSessionComplete
	}
	return &s.questions[s.cursor], nil
}

// Submit evaluates the learner's response against the current question.
// Each question may be answered exactly once; a repeat returns
// ErrAlreadyAnswered with state unchanged.
func (s *Session) Submit(response string) (bool, error) {
	if s.complete {
		return false, ErrSessionComplete
	}
	q := &s.questions[s.cursor]
	if q.answered {
		return false, ErrAlreadyAnswered
	}

	var correct bool
	switch s.kind {
	case KindFreeText:
		correct = strings.EqualFold(
			strings.TrimSpace(response),
			strings.TrimSpace(q.Item.Headword),
		)
	default:
		correct = response == q.Item.Meaning
	}

	q.answered = true
	q.correct = correct
	if correct {
		s.correct++
	} else {
		s.incorrect++
		missed := q.Item
		// Items reach the engine with a store-issued id; synthesize one only
		// if the item truly never had one.
		if missed.ID == "" {
			missed.ID = uuid.NewString()
		}
		s.missed = append(s.missed, missed)
	}

	if s.hooks.OnAnswer != nil {
		s.hooks.OnAnswer(q.Item, correct)
	}
	return correct, nil
}

// Advance moves the cursor to the next question. Reaching the end of the
// question set completes the session and hands the missed items to the
// recorder, exactly once.
func (s *Session) Advance() error {
	if s.complete {
		return ErrSessionComplete
	}
	if !s.questions[s.cursor].answered {
		return ErrUnanswered
	}

	s.cursor++
	if s.cursor >= len(s.questions) {
		s.finish()
		return nil
	}
	s.prepareCurrent()
	return nil
}

func (s *Session) finish() {
	s.complete = true
	if s.handedOff || s.recorder == nil {
		return
	}
	s.handedOff = true
	// One at a time, each against the ledger's latest state.
	for _, it := range s.missed {
		s.recorder.Record(it)
	}
}

// Done reports whether the session has completed.
func (s *Session) Done() bool { return s.complete }

// Kind returns the session's evaluation rule.
func (s *Session) Kind() Kind { return s.kind }

// Cursor returns the index of the current question.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the size of the question set.
func (s *Session) Len() int { return len(s.questions) }

// Missed returns copies of the items answered incorrectly this session.
func (s *Session) Missed() []vocab.Item {
	out := make([]vocab.Item, len(s.missed))
	copy(out, s.missed)
	return out
}
