package vocab

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns the in-memory vocabulary list. It is the only place that
// issues item ids; quiz code receives copies and never mints ids of its own.
type Store struct {
	mu    sync.Mutex
	items []Item
	index map[string]int
}

// NewStore creates a store seeded with the given items. Seed items lacking
// an id are assigned one on admission.
func NewStore(seed []Item) *Store {
	s := &Store{index: make(map[string]int)}
	for _, it := range seed {
		s.Add(it)
	}
	return s
}

// Add admits an item, assigning a fresh unique id if the item has none,
// and returns the stored copy.
func (s *Store) Add(item Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Tier == "" {
		item.Tier = TierUnclassified
	}
	if idx, ok := s.index[item.ID]; ok {
		s.items[idx] = item
		return item
	}
	s.index[item.ID] = len(s.items)
	s.items = append(s.items, item)
	return item
}

// Remove deletes the item with the given id. Absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.index, id)
	for i := idx; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[id]
	if !ok {
		return Item{}, false
	}
	return s.items[idx], true
}

// All returns a copy of the full list in insertion order.
func (s *Store) All() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Eligible returns the items that can serve as quiz questions.
func (s *Store) Eligible() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Item
	for _, it := range s.items {
		if it.Eligible() {
			out = append(out, it)
		}
	}
	return out
}

// ByOrigin returns the items whose origin matches any of the given origins,
// in insertion order.
func (s *Store) ByOrigin(origins ...Origin) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Item
	for _, it := range s.items {
		for _, o := range origins {
			if it.Origin == o {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// RecordMiss increments the miss counter on the stored item, if present.
func (s *Store) RecordMiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.index[id]; ok {
		s.items[idx].MissCount++
	}
}

// BumpFamiliarity raises the item's familiarity by one, capped at 5.
func (s *Store) BumpFamiliarity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.index[id]; ok && s.items[idx].Familiarity < 5 {
		s.items[idx].Familiarity++
	}
}

// Replace swaps the store contents for the given list, preserving order.
// Used when loading persisted state.
func (s *Store) Replace(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = s.items[:0]
	s.index = make(map[string]int, len(items))
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if _, dup := s.index[it.ID]; dup {
			continue
		}
		s.index[it.ID] = len(s.items)
		s.items = append(s.items, it)
	}
}

// Len returns the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
