package mistakes

import (
	"github.com/hyerin/vocadrill/internal/vocab"
)

// Entry is one missed word in the ledger. Headword, meaning and
// pronunciation are copied at first miss; later edits to the source item do
// not reach back into the ledger.
type Entry struct {
	ID            string `json:"id"`
	Headword      string `json:"headword"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation,omitempty"`
	WrongCount    int    `json:"wrong_count"`
}

// Ledger is the persistent, deduplicated record of missed items. At most one
// entry exists per item id; entries keep insertion order.
type Ledger struct {
	entries []Entry
	index   map[string]int
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// Record notes a miss for the item. A repeat miss of a known id increments
// its counter in place; a new id appends a fresh entry with WrongCount 1.
// Each call applies against the ledger's current state, so a batch of misses
// recorded one at a time is never lost.
func (l *Ledger) Record(item vocab.Item) {
	if idx, ok := l.index[item.ID]; ok {
		l.entries[idx].WrongCount++
		return
	}
	l.index[item.ID] = len(l.entries)
	l.entries = append(l.entries, Entry{
		ID:            item.ID,
		Headword:      item.Headword,
		Meaning:       item.Meaning,
		Pronunciation: item.Pronunciation,
		WrongCount:    1,
	})
}

// Remove deletes the entry for id. Absent ids are a no-op.
func (l *Ledger) Remove(id string) {
	idx, ok := l.index[id]
	if !ok {
		return
	}
	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	delete(l.index, id)
	for i := idx; i < len(l.entries); i++ {
		l.index[l.entries[i].ID] = i
	}
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.entries = l.entries[:0]
	l.index = make(map[string]int)
}

// All returns the entries in insertion order.
func (l *Ledger) All() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Replace swaps the ledger contents for the given entries, preserving order.
// Used when loading persisted state.
func (l *Ledger) Replace(entries []Entry) {
	l.entries = l.entries[:0]
	l.index = make(map[string]int, len(entries))
	for _, e := range entries {
		if _, dup := l.index[e.ID]; dup {
			// Malformed persisted state; fold the duplicate into the
			// existing entry rather than violating uniqueness.
			l.entries[l.index[e.ID]].WrongCount += e.WrongCount
			continue
		}
		l.index[e.ID] = len(l.entries)
		l.entries = append(l.entries, e)
	}
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }
