package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hyerin/vocadrill/internal/vocab"
)

// recorderStub collects recorded items and counts per id.
type recorderStub struct {
	items  []vocab.Item
	counts map[string]int
}

func newRecorderStub() *recorderStub {
	return &recorderStub{counts: make(map[string]int)}
}

func (r *recorderStub) Record(item vocab.Item) {
	r.items = append(r.items, item)
	r.counts[item.ID]++
}

func beginnerPool(n int) []vocab.Item {
	items := make([]vocab.Item, n)
	for i := range items {
		items[i] = vocab.Item{
			ID:       fmt.Sprintf("w%d", i),
			Headword: fmt.Sprintf("단어%d", i),
			Meaning:  fmt.Sprintf("meaning %d", i),
			Tier:     vocab.TierBeginner,
		}
	}
	return items
}

// answerAll drives a session to completion, answering every question
// correctly or incorrectly per the wrong flag.
func answerAll(t *testing.T, s *Session, wrong bool) {
	t.Helper()
	for !s.Done() {
		q, err := s.Current()
		if err != nil {
			t.Fatalf("Current() error: %v", err)
		}
		response := q.Item.Meaning
		if s.Kind() == KindFreeText {
			response = q.Item.Headword
		}
		if wrong {
			response = "definitely not it"
		}
		if _, err := s.Submit(response); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
	}
}

func TestStart_EmptyPool(t *testing.T) {
	_, err := Start(nil, Filter{}, KindMultipleChoice, Config{})
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Start(empty pool) error = %v, want ErrEmptyPool", err)
	}

	// A pool of only ineligible items is still empty for quiz purposes.
	pool := []vocab.Item{{ID: "x", Headword: "", Meaning: "no headword"}}
	_, err = Start(pool, Filter{}, KindMultipleChoice, Config{})
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Start(ineligible pool) error = %v, want ErrEmptyPool", err)
	}
}

func TestStart_FilterFallsBackToFullPool(t *testing.T) {
	// Scenario: 3 beginner items, intermediate filter, size 10.
	pool := beginnerPool(3)

	s, err := Start(pool, Filter{Tier: vocab.TierIntermediate}, KindMultipleChoice, Config{Size: 10})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (fallback to full pool, clamped to available)", s.Len())
	}
}

func TestStart_SizeClampAndDefault(t *testing.T) {
	pool := beginnerPool(25)

	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.Len() != DefaultSessionSize {
		t.Errorf("Len() = %d, want default %d", s.Len(), DefaultSessionSize)
	}

	s, err = Start(pool, Filter{}, KindMultipleChoice, Config{Size: 100})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.Len() != 25 {
		t.Errorf("Len() = %d, want 25 (clamped to pool)", s.Len())
	}
}

func TestStart_IDSubsetFilter(t *testing.T) {
	pool := beginnerPool(10)

	s, err := Start(pool, Filter{IDs: []string{"w2", "w5", "w7"}}, KindFreeText, Config{Size: 10})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := map[string]bool{"w2": true, "w5": true, "w7": true}
	for i := range s.questions {
		if !want[s.questions[i].Item.ID] {
			t.Errorf("question set contains unselected id %q", s.questions[i].Item.ID)
		}
	}
}

func TestSession_CountersTrackCursor(t *testing.T) {
	pool := beginnerPool(6)
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 6})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	for !s.Done() {
		sum := s.Summary()
		if sum.Correct+sum.Incorrect != s.Cursor() {
			t.Fatalf("correct+incorrect = %d, want cursor %d", sum.Correct+sum.Incorrect, s.Cursor())
		}
		q, _ := s.Current()
		if _, err := s.Submit(q.Item.Meaning); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
	}

	sum := s.Summary()
	if sum.Correct+sum.Incorrect != s.Len() {
		t.Errorf("at Complete: correct+incorrect = %d, want %d", sum.Correct+sum.Incorrect, s.Len())
	}
}

func TestSubmit_RepeatRejectedStateUnchanged(t *testing.T) {
	pool := beginnerPool(4)
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 4})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	q, _ := s.Current()
	if _, err := s.Submit(q.Item.Meaning); err != nil {
		t.Fatalf("first Submit() error: %v", err)
	}
	before := s.Summary()

	if _, err := s.Submit(q.Item.Meaning); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("second Submit() error = %v, want ErrAlreadyAnswered", err)
	}
	if got := s.Summary(); got != before {
		t.Errorf("summary changed by rejected submit: %+v != %+v", got, before)
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	pool := beginnerPool(4)
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 4})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	if err := s.Advance(); !errors.Is(err, ErrUnanswered) {
		t.Errorf("Advance() before answering = %v, want ErrUnanswered", err)
	}
}

func TestFreeText_TrimAndCaseFold(t *testing.T) {
	pool := []vocab.Item{{ID: "w1", Headword: "안녕", Meaning: "hi"}}
	s, err := Start(pool, Filter{}, KindFreeText, Config{Size: 1})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	correct, err := s.Submit(" 안녕 ")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if !correct {
		t.Error("expected trimmed input to be evaluated correct")
	}
}

func TestFreeText_CaseInsensitiveLatin(t *testing.T) {
	pool := []vocab.Item{{ID: "w1", Headword: "Hello", Meaning: "인사"}}
	s, err := Start(pool, Filter{}, KindFreeText, Config{Size: 1})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	correct, err := s.Submit("hello")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if !correct {
		t.Error("expected case-folded input to be evaluated correct")
	}
}

func TestMultipleChoice_ExactMatchOnly(t *testing.T) {
	pool := beginnerPool(5)
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 5})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	q, _ := s.Current()
	correct, err := s.Submit(q.Item.Meaning + " ")
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if correct {
		t.Error("multiple-choice evaluation must be exact and case-sensitive")
	}
}

func TestOptions_RegeneratedPerQuestion(t *testing.T) {
	pool := beginnerPool(12)
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 5})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	for !s.Done() {
		q, _ := s.Current()
		if len(q.Options.Choices) != DefaultDistractorCount+1 {
			t.Fatalf("question %d has %d options, want %d", s.Cursor(), len(q.Options.Choices), DefaultDistractorCount+1)
		}
		if q.Options.Choices[q.Options.CorrectIndex] != q.Item.Meaning {
			t.Fatalf("question %d: correct index does not point at the item's meaning", s.Cursor())
		}
		if _, err := s.Submit(q.Item.Meaning); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
	}
}

func TestComplete_HandsMissedToRecorderOnce(t *testing.T) {
	pool := beginnerPool(4)
	rec := newRecorderStub()
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 4, Recorder: rec})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	answerAll(t, s, true) // miss everything

	if len(rec.items) != 4 {
		t.Errorf("recorder received %d items, want 4", len(rec.items))
	}
	for id, n := range rec.counts {
		if n != 1 {
			t.Errorf("id %q recorded %d times in one session, want 1", id, n)
		}
	}

	// Post-completion calls must not re-record.
	if err := s.Advance(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Advance() after complete = %v, want ErrSessionComplete", err)
	}
	if _, err := s.Submit("anything"); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Submit() after complete = %v, want ErrSessionComplete", err)
	}
	if len(rec.items) != 4 {
		t.Errorf("recorder received %d items after extra calls, want 4", len(rec.items))
	}
}

func TestTwoSessions_AccumulateWrongCount(t *testing.T) {
	// Same miss across two sessions must reach the recorder twice; the
	// ledger turns that into one entry with WrongCount 2.
	pool := []vocab.Item{
		{ID: "w1", Headword: "표적", Meaning: "the target", Tier: vocab.TierBeginner},
		{ID: "w2", Headword: "다른", Meaning: "another", Tier: vocab.TierBeginner},
	}
	rec := newRecorderStub()

	for i := 0; i < 2; i++ {
		s, err := Start(pool, Filter{IDs: []string{"w1"}}, KindMultipleChoice, Config{Size: 1, Recorder: rec})
		if err != nil {
			t.Fatalf("Start() error: %v", err)
		}
		answerAll(t, s, true)
	}

	if rec.counts["w1"] != 2 {
		t.Errorf("recorder saw id w1 %d times across two sessions, want 2", rec.counts["w1"])
	}
}

func TestSummary_Accuracy(t *testing.T) {
	pool := beginnerPool(3)
	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 3})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// 2 correct, 1 wrong: accuracy rounds to 67.
	for i := 0; i < 3; i++ {
		q, _ := s.Current()
		response := q.Item.Meaning
		if i == 2 {
			response = "wrong"
		}
		if _, err := s.Submit(response); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance() error: %v", err)
		}
	}

	sum := s.Summary()
	if sum.Total != 3 || sum.Correct != 2 || sum.Incorrect != 1 {
		t.Errorf("summary = %+v, want 2/1 of 3", sum)
	}
	if sum.Accuracy != 67 {
		t.Errorf("Accuracy = %d, want 67", sum.Accuracy)
	}
}

func TestSummary_EmptyIsZero(t *testing.T) {
	s := &Session{}
	if got := s.Summary(); got.Accuracy != 0 || got.Total != 0 {
		t.Errorf("empty summary = %+v, want zeros", got)
	}
}

func TestHooks_InvokedOnAnswer(t *testing.T) {
	pool := beginnerPool(2)
	var calls []bool
	hooks := Hooks{OnAnswer: func(_ vocab.Item, correct bool) {
		calls = append(calls, correct)
	}}

	s, err := Start(pool, Filter{}, KindMultipleChoice, Config{Size: 2, Hooks: hooks})
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	q, _ := s.Current()
	s.Submit(q.Item.Meaning)
	s.Advance()
	s.Submit("wrong")

	if len(calls) != 2 || !calls[0] || calls[1] {
		t.Errorf("hook calls = %v, want [true false]", calls)
	}
}
