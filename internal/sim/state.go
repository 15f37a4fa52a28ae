package sim

import (
	"fmt"
	"sync"

	"torsnake/internal/core"
	"torsnake/internal/snake"
)

// State is the mutually guarded aggregate shared by the workers and the
// session loop. Every field below mu is read and written only while holding
// mu; collaborators get copies via Snapshot.
type State struct {
	cfg Config

	mu      sync.Mutex
	body    *snake.Body
	food    core.Point
	score   int
	running bool
	err     error // terminal condition such as ErrGridFull
	rng     *core.RNG

	// wake is buffered so notifiers never block. The update worker selects
	// on it with a bounded timeout and re-checks its predicate, which stands
	// in for a condition variable with a timed wait.
	wake chan struct{}

	updaterDone chan struct{} // closed when the current update worker exits
}

// NewState constructs a running session state with the body centered and the
// first food placed.
func NewState(cfg Config) (*State, error) {
	if cfg.Grid.Cells() < 2 {
		return nil, fmt.Errorf("sim: grid %dx%d cannot hold a body and food", cfg.Grid.W, cfg.Grid.H)
	}
	if cfg.Speed <= 0 {
		return nil, fmt.Errorf("sim: speed must be positive, got %v", cfg.Speed)
	}
	if cfg.WakeInterval <= 0 {
		cfg.WakeInterval = DefaultConfig().WakeInterval
	}
	s := &State{
		cfg:     cfg,
		body:    snake.New(cfg.Grid, cfg.Speed),
		running: true,
		rng:     core.NewRNG(cfg.Seed),
		wake:    make(chan struct{}, 1),
	}
	if err := s.placeFood(); err != nil {
		return nil, err
	}
	return s, nil
}

// notify wakes a waiting update worker without blocking. Mutation paths that
// change running or liveness call it so waiters observe the change within
// one wake interval.
func (s *State) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Running reports whether the session is still live.
func (s *State) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Err returns the terminal condition recorded for the current round, if any.
func (s *State) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Stop requests session shutdown and wakes any waiting worker.
func (s *State) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
	s.notify()
}

// Apply executes a single input command against the shared state.
func (s *State) Apply(cmd Command) {
	if cmd == CmdQuit {
		s.Stop()
		return
	}
	var dir snake.Direction
	switch cmd {
	case CmdUp:
		dir = snake.Up
	case CmdDown:
		dir = snake.Down
	case CmdLeft:
		dir = snake.Left
	case CmdRight:
		dir = snake.Right
	default:
		return
	}
	s.mu.Lock()
	s.body.Turn(dir)
	s.mu.Unlock()
}

// Snapshot copies the full simulation state under the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		HeadX:     s.body.HeadX,
		HeadY:     s.body.HeadY,
		Head:      s.body.Head(),
		Direction: s.body.Direction,
		Segments:  append([]core.Point(nil), s.body.Segments...),
		Size:      s.body.Size,
		Speed:     s.body.Speed,
		Alive:     s.body.Alive,
		Food:      s.food,
		Score:     s.score,
		Running:   s.running,
	}
}

// reset restores a fresh round: centered body, zero score, new food. Callers
// must hold mu.
func (s *State) reset() {
	s.body.Reset()
	s.score = 0
	s.err = nil
	if err := s.placeFood(); err != nil {
		// Unreachable for a size-1 body on a grid that passed validation.
		s.err = err
		s.body.Alive = false
	}
}
