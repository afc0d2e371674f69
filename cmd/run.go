package cmd

import (
	"context"
	"fmt"

	"github.com/hyerin/vocadrill/internal/app"
	"github.com/hyerin/vocadrill/internal/mistakes"
	"github.com/hyerin/vocadrill/internal/speech"
	"github.com/hyerin/vocadrill/internal/store"
	"github.com/hyerin/vocadrill/internal/vocab"
	"github.com/spf13/cobra"
)

// runApp opens the store, loads the word book and mistake ledger, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	words, ledger, err := loadState(ctx, st)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Words:  words,
		Ledger: ledger,
		DB:     st,
		Voice:  speech.FromEnv(),
	})
}

// openStore resolves the database path and opens it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadState restores the persisted vocabulary and mistake ledger. A first
// run seeds the word book with the builtin vocabulary and persists it.
func loadState(ctx context.Context, st *store.Store) (*vocab.Store, *mistakes.Ledger, error) {
	items, err := st.LoadVocab(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load vocabulary: %w", err)
	}

	var words *vocab.Store
	if items == nil {
		words = vocab.NewStore(vocab.Builtin())
		if err := st.SaveVocab(ctx, words.All()); err != nil {
			return nil, nil, fmt.Errorf("seed vocabulary: %w", err)
		}
	} else {
		words = vocab.NewStore(nil)
		words.Replace(items)
	}

	entries, err := st.LoadMistakes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load mistake book: %w", err)
	}
	ledger := mistakes.New()
	ledger.Replace(entries)

	return words, ledger, nil
}
