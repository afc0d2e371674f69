package quiz

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/hyerin/vocadrill/internal/vocab"
)

func poolOf(n int) []vocab.Item {
	items := make([]vocab.Item, n)
	for i := range items {
		items[i] = vocab.Item{
			ID:       fmt.Sprintf("w%d", i),
			Headword: fmt.Sprintf("단어%d", i),
			Meaning:  fmt.Sprintf("meaning %d", i),
		}
	}
	return items
}

func fixedRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestDistractors_ExactCountNeverTarget(t *testing.T) {
	pool := poolOf(20)

	for _, target := range pool {
		for _, count := range []int{1, 3, 5} {
			got := Distractors(pool, target, count, nil)
			if len(got) != count {
				t.Fatalf("len = %d, want %d", len(got), count)
			}
			for _, m := range got {
				if m == target.Meaning {
					t.Fatalf("distractors contain the target meaning %q", m)
				}
			}
		}
	}
}

func TestDistractors_NoDuplicateOptions(t *testing.T) {
	pool := poolOf(10)
	got := Distractors(pool, pool[0], 5, nil)

	seen := make(map[string]bool)
	for _, m := range got {
		if seen[m] {
			t.Errorf("duplicate option %q", m)
		}
		seen[m] = true
	}
}

func TestDistractors_TinyPoolPadsWithPlaceholders(t *testing.T) {
	pool := poolOf(2) // one distinct wrong meaning available
	got := Distractors(pool, pool[0], 3, nil)

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 even when the pool is short", len(got))
	}
	for _, m := range got {
		if m == pool[0].Meaning {
			t.Errorf("padded set contains the target meaning %q", m)
		}
	}
}

func TestDistractors_PlaceholderCollisionAvoided(t *testing.T) {
	// A pool whose only meanings collide with the placeholder strings.
	pool := []vocab.Item{
		{ID: "t", Headword: "표적", Meaning: "target"},
		{ID: "p", Headword: "함정", Meaning: placeholderMeanings[0]},
	}

	got := Distractors(pool, pool[0], 3, nil)
	seen := make(map[string]int)
	for _, m := range got {
		seen[m]++
	}
	for m, n := range seen {
		if n > 1 {
			t.Errorf("option %q appears %d times; placeholders must stay distinct", m, n)
		}
	}
}

func TestNewOptionSet_ContainsTargetAtCorrectIndex(t *testing.T) {
	pool := poolOf(10)
	target := pool[4]

	for i := 0; i < 50; i++ {
		set := NewOptionSet(pool, target, 3, nil)
		if len(set.Choices) != 4 {
			t.Fatalf("len(Choices) = %d, want 4", len(set.Choices))
		}
		if set.Choices[set.CorrectIndex] != target.Meaning {
			t.Fatalf("Choices[%d] = %q, want %q", set.CorrectIndex, set.Choices[set.CorrectIndex], target.Meaning)
		}
	}
}

func TestNewOptionSet_NoPositionalBias(t *testing.T) {
	pool := poolOf(10)
	target := pool[0]

	const trials = 4000
	counts := make([]int, 4)
	rng := fixedRNG(7)
	for i := 0; i < trials; i++ {
		set := NewOptionSet(pool, target, 3, rng)
		counts[set.CorrectIndex]++
	}

	// Each position should land near trials/4; allow a wide tolerance so the
	// test stays deterministic-friendly while still catching a stuck index.
	want := trials / 4
	for pos, n := range counts {
		if n < want/2 || n > want*2 {
			t.Errorf("correct answer landed at position %d in %d/%d trials; distribution %v", pos, n, trials, counts)
		}
	}
}
