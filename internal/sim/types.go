// Package sim implements the concurrent simulation engine: the mutex-guarded
// shared state, the periodic update worker, the single-flight game-over
// worker and the orchestrating session loop.
package sim

import (
	"time"

	"torsnake/internal/core"
	"torsnake/internal/snake"
)

// Command is a discrete input delivered by a Controller.
type Command int

const (
	CmdUp Command = iota
	CmdDown
	CmdLeft
	CmdRight
	CmdQuit
)

// Controller supplies the input commands buffered since the previous frame.
type Controller interface {
	Poll() []Command
}

// Renderer consumes immutable frame snapshots. Implementations never see the
// live mutable state.
type Renderer interface {
	Render(Snapshot)
	UpdateTitle(score, fps int)
}

// Prompt asks whether to start another round once the body dies. Ask may
// block indefinitely on user input; an error is treated as a "no" answer.
type Prompt interface {
	Ask(score int) (bool, error)
}

// Config fixes the startup parameters of a session.
type Config struct {
	Grid         core.Size
	Speed        float64       // initial speed in cells per second
	WakeInterval time.Duration // update worker wake/recheck interval
	FrameRate    int           // orchestrator target frames per second
	Seed         int64
}

// DefaultConfig mirrors the classic 32x32 setup: 0.2 cells per frame at
// 60 FPS works out to 12 cells per second.
func DefaultConfig() Config {
	return Config{
		Grid:         core.Size{W: 32, H: 32},
		Speed:        12,
		WakeInterval: 10 * time.Millisecond,
		FrameRate:    60,
		Seed:         42,
	}
}

// Snapshot is a consistent copy of the simulation state taken under the
// state lock, safe to hand to collaborators without further synchronization.
type Snapshot struct {
	HeadX, HeadY float64
	Head         core.Point
	Direction    snake.Direction
	Segments     []core.Point
	Size         int
	Speed        float64
	Alive        bool
	Food         core.Point
	Score        int
	Running      bool
}
