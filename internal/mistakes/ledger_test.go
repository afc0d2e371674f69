package mistakes

import (
	"testing"

	"github.com/hyerin/vocadrill/internal/vocab"
)

func item(id, headword, meaning string) vocab.Item {
	return vocab.Item{ID: id, Headword: headword, Meaning: meaning}
}

func TestLedger_Record_DeduplicatesByID(t *testing.T) {
	l := New()

	l.Record(item("w1", "물", "water"))
	l.Record(item("w1", "물", "water"))

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (same id must not create a second entry)", l.Len())
	}
	e := l.All()[0]
	if e.WrongCount != 2 {
		t.Errorf("WrongCount = %d, want 2", e.WrongCount)
	}
}

func TestLedger_Record_CopiesFieldsAtInsertion(t *testing.T) {
	l := New()
	src := item("w1", "친구", "friend")
	src.Pronunciation = "chingu"

	l.Record(src)

	// Mutating the source after recording must not reach the ledger.
	src.Meaning = "edited later"
	src.Pronunciation = "edited"

	e := l.All()[0]
	if e.Meaning != "friend" || e.Pronunciation != "chingu" {
		t.Errorf("entry = %+v, want the values copied at insertion time", e)
	}
}

func TestLedger_Record_PreservesInsertionOrder(t *testing.T) {
	l := New()
	l.Record(item("a", "하나", "one"))
	l.Record(item("b", "둘", "two"))
	l.Record(item("a", "하나", "one"))
	l.Record(item("c", "셋", "three"))

	got := l.All()
	wantIDs := []string{"a", "b", "c"}
	if len(got) != len(wantIDs) {
		t.Fatalf("Len() = %d, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestLedger_Remove(t *testing.T) {
	l := New()
	l.Record(item("a", "하나", "one"))
	l.Record(item("b", "둘", "two"))

	l.Remove("a")
	if l.Len() != 1 || l.All()[0].ID != "b" {
		t.Errorf("after Remove(a): %v, want only b", l.All())
	}

	l.Remove("missing") // no-op
	if l.Len() != 1 {
		t.Errorf("Len() = %d after removing absent id, want 1", l.Len())
	}

	// Re-recording a removed id starts a fresh counter.
	l.Record(item("a", "하나", "one"))
	if got := l.All()[1].WrongCount; got != 1 {
		t.Errorf("WrongCount after re-record = %d, want 1", got)
	}
}

func TestLedger_Clear(t *testing.T) {
	l := New()
	l.Record(item("a", "하나", "one"))
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", l.Len())
	}
	l.Record(item("a", "하나", "one"))
	if l.Len() != 1 {
		t.Errorf("Len() = %d after recording post-clear, want 1", l.Len())
	}
}

func TestLedger_Replace_RoundTrips(t *testing.T) {
	l := New()
	l.Record(item("a", "하나", "one"))
	l.Record(item("b", "둘", "two"))
	l.Record(item("a", "하나", "one"))
	saved := l.All()

	restored := New()
	restored.Replace(saved)

	got := restored.All()
	if len(got) != len(saved) {
		t.Fatalf("restored %d entries, want %d", len(got), len(saved))
	}
	for i := range saved {
		if got[i] != saved[i] {
			t.Errorf("entry %d changed across Replace: %+v != %+v", i, got[i], saved[i])
		}
	}
}

func TestLedger_Replace_FoldsDuplicateIDs(t *testing.T) {
	restored := New()
	restored.Replace([]Entry{
		{ID: "a", Headword: "하나", Meaning: "one", WrongCount: 2},
		{ID: "a", Headword: "하나", Meaning: "one", WrongCount: 3},
	})

	if restored.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicates in persisted state must fold)", restored.Len())
	}
	if got := restored.All()[0].WrongCount; got != 5 {
		t.Errorf("WrongCount = %d, want 5", got)
	}
}
