package sim

import (
	"errors"

	"torsnake/internal/core"
)

// ErrGridFull reports that the body covers every cell and no food can be
// placed. It ends the round instead of letting placement spin forever.
var ErrGridFull = errors.New("sim: grid full, no free cell for food")

// rejectionAttempts bounds the random-draw phase of placement. With at most
// half the grid occupied the chance of exhausting it is below 2^-32.
const rejectionAttempts = 32

// placeFood picks a uniformly random unoccupied cell for the food. Sparse
// grids use rejection sampling; once the body covers half the grid (or the
// draws run out) the free cells are enumerated directly so termination is
// structural. Callers must hold mu.
func (s *State) placeFood() error {
	total := s.cfg.Grid.Cells()
	if s.body.Size >= total {
		return ErrGridFull
	}

	if s.body.Size*2 < total {
		for i := 0; i < rejectionAttempts; i++ {
			c := s.rng.Cell(s.cfg.Grid)
			if !s.body.Occupies(c) {
				s.food = c
				return nil
			}
		}
	}

	free := make([]core.Point, 0, total-s.body.Size)
	for y := 0; y < s.cfg.Grid.H; y++ {
		for x := 0; x < s.cfg.Grid.W; x++ {
			c := core.Point{X: x, Y: y}
			if !s.body.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return ErrGridFull
	}
	s.food = free[s.rng.IntN(len(free))]
	return nil
}
