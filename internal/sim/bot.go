package sim

import "torsnake/internal/snake"

// Autopilot is a Controller that steers the body toward the food along the
// shortest toroidal path. It exists for headless load runs and tests; it
// plays greedily and makes no attempt to survive its own tail.
type Autopilot struct {
	state *State
}

// NewAutopilot builds an autopilot reading from the given state.
func NewAutopilot(state *State) *Autopilot {
	return &Autopilot{state: state}
}

// Poll emits at most one direction command per frame, never a reversal the
// engine would reject.
func (a *Autopilot) Poll() []Command {
	snap := a.state.Snapshot()
	if !snap.Alive {
		return nil
	}

	grid := a.state.cfg.Grid
	dx := torusDelta(snap.Food.X-snap.Head.X, grid.W)
	dy := torusDelta(snap.Food.Y-snap.Head.Y, grid.H)

	want := snap.Direction
	switch {
	case abs(dx) >= abs(dy) && dx != 0:
		want = pick(dx, snake.Right, snake.Left)
	case dy != 0:
		want = pick(dy, snake.Down, snake.Up)
	}

	if want == snap.Direction {
		return nil
	}
	if want == snap.Direction.Opposite() && snap.Size > 1 {
		// Sidestep instead of reversing.
		if want == snake.Up || want == snake.Down {
			want = pick(dx, snake.Right, snake.Left)
		} else {
			want = pick(dy, snake.Down, snake.Up)
		}
		if want == snap.Direction || want == snap.Direction.Opposite() {
			return nil
		}
	}
	return []Command{commandFor(want)}
}

// torusDelta maps a raw coordinate difference onto the shortest signed
// distance around a torus of the given dimension.
func torusDelta(d, dim int) int {
	d = (d%dim + dim) % dim
	if d > dim/2 {
		d -= dim
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func pick(d int, pos, neg snake.Direction) snake.Direction {
	if d > 0 {
		return pos
	}
	return neg
}

func commandFor(d snake.Direction) Command {
	switch d {
	case snake.Up:
		return CmdUp
	case snake.Down:
		return CmdDown
	case snake.Left:
		return CmdLeft
	default:
		return CmdRight
	}
}
