package drill

import (
	"github.com/hyerin/vocadrill/internal/quiz"
)

// sessionStartMsg is sent when the question set has been sampled.
type sessionStartMsg struct {
	Session *quiz.Session
	Err     error
}

// autoAdvanceMsg is sent when the feedback display period ends. Seq ties the
// message to the answer that scheduled it, so a stale timer cannot skip a
// question the learner is still reading.
type autoAdvanceMsg struct {
	Seq int
}

// drillEndMsg is sent to trigger the end-of-drill flow.
type drillEndMsg struct{}
