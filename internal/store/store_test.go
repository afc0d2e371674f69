package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestVocabRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	items := []vocab.Item{
		{
			ID: "a", Headword: "안녕하세요", Meaning: "hello",
			Pronunciation: "annyeonghaseyo", Example: "안녕하세요!\n두 번째 예문",
			Familiarity: 2, Tier: vocab.TierBeginner, Origin: vocab.OriginBuiltin, MissCount: 1,
		},
		{ID: "b", Headword: "갈등", Meaning: "conflict", Tier: vocab.TierAdvanced, Origin: vocab.OriginUploaded},
	}

	require.NoError(t, s.SaveVocab(ctx, items))

	got, err := s.LoadVocab(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestMistakesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entries := []mistakes.Entry{
		{ID: "a", Headword: "환경", Meaning: "environment", Pronunciation: "hwangyeong", WrongCount: 3},
		{ID: "b", Headword: "정책", Meaning: "policy", WrongCount: 1},
	}

	require.NoError(t, s.SaveMistakes(ctx, entries))

	got, err := s.LoadMistakes(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestLoadBeforeAnySave(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	items, err := s.LoadVocab(ctx)
	require.NoError(t, err)
	assert.Nil(t, items)

	entries, err := s.LoadMistakes(ctx)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestSaveOverwritesPrevious(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMistakes(ctx, []mistakes.Entry{{ID: "a", Headword: "하나", Meaning: "one", WrongCount: 1}}))
	require.NoError(t, s.SaveMistakes(ctx, []mistakes.Entry{{ID: "b", Headword: "둘", Meaning: "two", WrongCount: 2}}))

	got, err := s.LoadMistakes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestSaveEmptyListIsDistinctFromUnsaved(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVocab(ctx, []vocab.Item{}))

	got, err := s.LoadVocab(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveVocab(ctx, []vocab.Item{{ID: "a", Headword: "물", Meaning: "water"}}))
	require.NoError(t, s.SaveMistakes(ctx, []mistakes.Entry{{ID: "a", Headword: "물", Meaning: "water", WrongCount: 1}}))

	require.NoError(t, s.Wipe(ctx))

	items, err := s.LoadVocab(ctx)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "my.db")
	t.Setenv("VOCADRILL_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
