package sim

import "torsnake/internal/core"

// Loop owns a play session: it polls input, hands consistent snapshots to
// the renderer, paces frames, refreshes the title once a second and manages
// the death-to-prompt transition. It runs on the caller's goroutine; the
// update and game-over workers run on their own.
type Loop struct {
	state      *State
	controller Controller
	renderer   Renderer
	prompt     Prompt

	pacer *core.FramePacer
	fps   *core.FPSCounter

	overPending bool
	overDone    chan Outcome
}

// NewLoop wires a session loop around the given state and collaborators.
func NewLoop(state *State, c Controller, r Renderer, p Prompt) *Loop {
	return &Loop{
		state:      state,
		controller: c,
		renderer:   r,
		prompt:     p,
		pacer:      core.NewFramePacer(state.cfg.FrameRate),
		fps:        core.NewFPSCounter(),
	}
}

// Run starts the first update worker and drives the session until the
// running flag flips false. It returns the final snapshot.
func (l *Loop) Run() Snapshot {
	l.state.StartUpdater()

	for {
		l.pacer.Begin()

		for _, cmd := range l.controller.Poll() {
			l.state.Apply(cmd)
		}

		snap := l.state.Snapshot()
		if !snap.Running {
			break
		}

		l.renderer.Render(snap)
		if l.fps.Tick() {
			l.renderer.UpdateTitle(snap.Score, l.fps.Rate())
		}

		// Collect a finished game-over worker before considering a new one;
		// at most one is ever outstanding.
		if l.overPending {
			select {
			case <-l.overDone:
				l.overPending = false
			default:
			}
		}
		if !snap.Alive && !l.overPending {
			l.overPending = true
			l.overDone = make(chan Outcome, 1)
			go l.state.runGameOver(l.prompt, l.overDone)
		}

		l.pacer.Wait()
	}
	return l.state.Snapshot()
}
