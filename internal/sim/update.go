package sim

import "time"

// speedScale is the multiplicative speed increase applied per consumption.
// Speed only ever goes up within a round.
const speedScale = 1.1

// StartUpdater launches a fresh update worker for the current round. The
// worker is the sole writer of body, food and score while the body is alive;
// it is replaced on every reset.
func (s *State) StartUpdater() {
	done := make(chan struct{})
	s.mu.Lock()
	s.updaterDone = done
	s.mu.Unlock()
	go s.updateLoop(done)
}

// UpdaterDone returns the channel closed when the current update worker
// exits.
func (s *State) UpdaterDone() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updaterDone
}

// updateLoop sleeps for at most one wake interval per iteration, re-checks
// its exit predicate under the lock, then advances the simulation by the
// elapsed wall time. It exits the instant shutdown is requested or the body
// dies, without performing a further tick.
func (s *State) updateLoop(done chan struct{}) {
	defer close(done)
	last := time.Now()
	for {
		select {
		case <-s.wake:
		case <-time.After(s.cfg.WakeInterval):
		}

		s.mu.Lock()
		if !s.running || !s.body.Alive {
			s.mu.Unlock()
			return
		}
		now := time.Now()
		elapsed := now.Sub(last).Seconds()
		last = now
		s.tick(elapsed)
		if !s.body.Alive {
			s.mu.Unlock()
			s.notify()
			return
		}
		s.mu.Unlock()
	}
}

// tick advances the body and resolves consumption. A consumption and the
// re-placement of food happen under one lock acquisition, so occupancy
// queries never observe the intermediate state. Callers must hold mu.
func (s *State) tick(elapsed float64) {
	crossed := s.body.Advance(elapsed)
	if !crossed || !s.body.Alive {
		return
	}
	if s.body.Head() != s.food {
		return
	}
	s.score++
	s.body.Grow()
	s.body.Speed *= speedScale
	if err := s.placeFood(); err != nil {
		// Nowhere left to put food: the round is over.
		s.err = err
		s.body.Alive = false
	}
}
