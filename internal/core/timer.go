package core

import "time"

// FramePacer sleeps out the remainder of each frame to hold a target rate.
type FramePacer struct {
	target time.Duration
	start  time.Time
}

// NewFramePacer constructs a FramePacer targeting the given FPS.
func NewFramePacer(fps int) *FramePacer {
	if fps <= 0 {
		fps = 60
	}
	return &FramePacer{target: time.Second / time.Duration(fps)}
}

// Begin marks the start of a frame.
func (p *FramePacer) Begin() {
	p.start = time.Now()
}

// Wait sleeps until the frame's target duration has elapsed. Frames that
// already ran long return immediately.
func (p *FramePacer) Wait() {
	if elapsed := time.Since(p.start); elapsed < p.target {
		time.Sleep(p.target - elapsed)
	}
}

// FPSCounter aggregates frame counts into a once-per-second rate sample.
type FPSCounter struct {
	frames int
	last   time.Time
	rate   int
}

// NewFPSCounter constructs a counter starting its first sample window now.
func NewFPSCounter() *FPSCounter {
	return &FPSCounter{last: time.Now()}
}

// Tick records one frame. It reports true when a fresh 1 Hz sample is ready.
func (c *FPSCounter) Tick() bool {
	c.frames++
	since := time.Since(c.last)
	if since < time.Second {
		return false
	}
	c.rate = int(float64(c.frames) / since.Seconds())
	c.frames = 0
	c.last = time.Now()
	return true
}

// Rate returns the most recent 1 Hz frame-rate sample.
func (c *FPSCounter) Rate() int { return c.rate }
