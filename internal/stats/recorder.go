package stats

import (
	"time"

	"torsnake/internal/sim"
)

// Recorder wraps a Prompt and records one Round per terminal event. The
// prompt fires exactly once per death with the final score, which makes it
// the natural tap point; peak size for a round started at size 1 is always
// score+1.
type Recorder struct {
	inner   sim.Prompt
	session *Session
	started time.Time
}

// NewRecorder wraps prompt so every game-over lands in session.
func NewRecorder(prompt sim.Prompt, session *Session) *Recorder {
	return &Recorder{inner: prompt, session: session, started: time.Now()}
}

// Ask records the finished round, then defers to the wrapped prompt. The
// next round's clock starts once the prompt (which may block on the player)
// has answered.
func (r *Recorder) Ask(score int) (bool, error) {
	r.session.Record(Round{
		Score:    score,
		PeakSize: score + 1,
		Seconds:  time.Since(r.started).Seconds(),
	})
	again, err := r.inner.Ask(score)
	r.started = time.Now()
	return again, err
}
