package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/vocab"
)

// Record names. Each holds a JSON array body; save and load round-trip the
// full sequence exactly.
const (
	recordVocab    = "vocab"
	recordMistakes = "mistakes"
)

const upsertRecord = `
INSERT INTO records (name, body, updated_at) VALUES (?, ?, datetime('now'))
ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`

func (s *Store) saveRecord(ctx context.Context, name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", name, err)
	}
	if _, err := s.db.ExecContext(ctx, upsertRecord, name, string(body)); err != nil {
		return fmt.Errorf("save %s record: %w", name, err)
	}
	return nil
}

func (s *Store) loadRecord(ctx context.Context, name string, v any) (bool, error) {
	var body string
	err := s.db.GetContext(ctx, &body, "SELECT body FROM records WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s record: %w", name, err)
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return false, fmt.Errorf("decode %s record: %w", name, err)
	}
	return true, nil
}

// SaveVocab persists the full vocabulary list.
func (s *Store) SaveVocab(ctx context.Context, items []vocab.Item) error {
	if items == nil {
		items = []vocab.Item{}
	}
	return s.saveRecord(ctx, recordVocab, items)
}

// LoadVocab returns the persisted vocabulary list, or nil if none was saved.
func (s *Store) LoadVocab(ctx context.Context) ([]vocab.Item, error) {
	var items []vocab.Item
	ok, err := s.loadRecord(ctx, recordVocab, &items)
	if err != nil || !ok {
		return nil, err
	}
	return items, nil
}

// SaveMistakes persists the full mistake ledger.
func (s *Store) SaveMistakes(ctx context.Context, entries []mistakes.Entry) error {
	if entries == nil {
		entries = []mistakes.Entry{}
	}
	return s.saveRecord(ctx, recordMistakes, entries)
}

// LoadMistakes returns the persisted ledger entries, or nil if none were saved.
func (s *Store) LoadMistakes(ctx context.Context) ([]mistakes.Entry, error) {
	var entries []mistakes.Entry
	ok, err := s.loadRecord(ctx, recordMistakes, &entries)
	if err != nil || !ok {
		return nil, err
	}
	return entries, nil
}

// Wipe deletes both records. Used by the reset command.
func (s *Store) Wipe(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM records"); err != nil {
		return fmt.Errorf("wipe records: %w", err)
	}
	return nil
}
