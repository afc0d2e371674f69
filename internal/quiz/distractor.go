package quiz

import (
	"math/rand/v2"

	"github.com/hyerin/vocadrill/internal/vocab"
)

// DefaultDistractorCount is the number of wrong options per multiple-choice
// question.
const DefaultDistractorCount = 3

// placeholderMeanings pad the distractor set when the pool has too few
// distinct meanings. They are disambiguated against real meanings before use.
var placeholderMeanings = []string{
	"(none of the above)",
	"(no such meaning)",
	"(missing entry)",
	"(not in this word list)",
}

// newRNG returns a generator on a fresh PCG stream. Seeding per call keeps
// option order independent across questions.
func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Distractors returns exactly count candidate meanings, none equal to the
// target's meaning. It draws distinct non-empty meanings from the pool first
// and pads with placeholders when the pool runs short.
func Distractors(pool []vocab.Item, target vocab.Item, count int, rng *rand.Rand) []string {
	if count <= 0 {
		count = DefaultDistractorCount
	}
	if rng == nil {
		rng = newRNG()
	}

	inPool := make(map[string]bool, len(pool))
	candidates := make([]string, 0, len(pool))
	for _, it := range pool {
		m := it.Meaning
		if m == "" || inPool[m] {
			continue
		}
		inPool[m] = true
		if m != target.Meaning {
			candidates = append(candidates, m)
		}
	}

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	chosen := make([]string, 0, count)
	for _, m := range candidates {
		if len(chosen) == count {
			break
		}
		chosen = append(chosen, m)
	}

	for i := 0; len(chosen) < count; i++ {
		p := placeholderMeanings[i%len(placeholderMeanings)]
		// Never collide with a real meaning or an option already picked.
		for inPool[p] {
			p += " ·"
		}
		inPool[p] = true
		chosen = append(chosen, p)
	}

	return chosen
}

// OptionSet is the full option list shown for one multiple-choice question.
type OptionSet struct {
	Choices      []string
	CorrectIndex int
}

// NewOptionSet builds the shuffled option list for a question: the target's
// meaning plus count distractors, in uniformly random order.
func NewOptionSet(pool []vocab.Item, target vocab.Item, count int, rng *rand.Rand) OptionSet {
	if rng == nil {
		rng = newRNG()
	}

	choices := append([]string{target.Meaning}, Distractors(pool, target, count, rng)...)
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correct := 0
	for i, c := range choices {
		if c == target.Meaning {
			correct = i
			break
		}
	}
	return OptionSet{Choices: choices, CorrectIndex: correct}
}
