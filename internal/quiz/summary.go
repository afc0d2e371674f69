package quiz

import "math"

// Summary is the terminal result of a session.
type Summary struct {
	Correct   int
	Incorrect int
	Total     int
	Accuracy  int // rounded percentage; 0 for an empty session
}

// Summary builds the session's score card. Safe to call at any point; the
// totals reflect the answers evaluated so far.
func (s *Session) Summary() Summary {
	total := s.correct + s.incorrect
	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(100 * float64(s.correct) / float64(total)))
	}
	return Summary{
		Correct:   s.correct,
		Incorrect: s.incorrect,
		Total:     total,
		Accuracy:  accuracy,
	}
}
