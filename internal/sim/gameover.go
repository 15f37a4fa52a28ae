package sim

// Outcome reports how a game-over phase resolved.
type Outcome int

const (
	// OutcomeReset means the player chose another round and the state was
	// reinitialized with a fresh update worker.
	OutcomeReset Outcome = iota
	// OutcomeStop means the session is shutting down.
	OutcomeStop
)

// runGameOver surfaces the terminal outcome through the prompt and applies
// the reset-or-stop decision. It runs on its own goroutine, spawned by the
// session loop at most once per death. The prompt may block indefinitely and
// is never called with the state lock held.
func (s *State) runGameOver(prompt Prompt, outcome chan<- Outcome) {
	s.mu.Lock()
	score := s.score
	done := s.updaterDone
	s.mu.Unlock()

	// The update worker stops on its own once liveness is false; wait for it
	// so the next round's worker is the only writer from the start.
	if done != nil {
		<-done
	}

	again, err := prompt.Ask(score)
	if err != nil {
		// A failing prompt terminates the session rather than crashing it.
		again = false
	}

	s.mu.Lock()
	if again && s.running {
		s.reset()
		s.mu.Unlock()
		s.StartUpdater()
		outcome <- OutcomeReset
		return
	}
	s.running = false
	s.mu.Unlock()
	s.notify()
	outcome <- OutcomeStop
}
