package vocab

import "strings"

// Tier classifies an item's difficulty for filtered drills.
type Tier string

const (
	TierUnclassified Tier = "unclassified"
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// ParseTier maps a user-supplied string to a Tier, defaulting to unclassified.
func ParseTier(s string) Tier {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierBeginner:
		return TierBeginner
	case TierIntermediate:
		return TierIntermediate
	case TierAdvanced:
		return TierAdvanced
	default:
		return TierUnclassified
	}
}

// Origin records how an item entered the store. Set at creation, immutable.
type Origin string

const (
	OriginBuiltin  Origin = "builtin"
	OriginManual   Origin = "manual"
	OriginUploaded Origin = "uploaded"
)

// Item is a single vocabulary entry.
type Item struct {
	ID            string `json:"id"`
	Headword      string `json:"headword"`
	Meaning       string `json:"meaning"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Example       string `json:"example,omitempty"`
	Familiarity   int    `json:"familiarity"`
	Tier          Tier   `json:"tier"`
	Origin        Origin `json:"origin"`
	MissCount     int    `json:"miss_count"`
}

// Eligible reports whether the item can be served as a quiz question.
// Items with a blank headword or meaning remain storable but are never
// sampled into a question set.
func (i Item) Eligible() bool {
	return strings.TrimSpace(i.Headword) != "" && strings.TrimSpace(i.Meaning) != ""
}
