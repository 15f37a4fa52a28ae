// Package snake implements the moving body: a fractional head followed by an
// ordered run of occupied cells on a toroidal grid.
package snake

import "torsnake/internal/core"

// Direction is the body's facing. The set is closed; there are exactly four
// values.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Body is the moving actor. The head carries sub-cell precision; Segments
// holds the trailing cells with Segments[0] being the cell the head vacated
// most recently. Size counts the head plus all trailing segments.
type Body struct {
	HeadX, HeadY float64
	Direction    Direction
	Speed        float64 // cells per second
	Size         int
	Alive        bool
	Segments     []core.Point

	growing bool
	grid    core.Size
	base    float64 // initial speed, restored on Reset
}

// New constructs a Body centered on the grid, facing up, at the given base
// speed.
func New(grid core.Size, speed float64) *Body {
	b := &Body{grid: grid, base: speed}
	b.Reset()
	return b
}

// Reset reinitializes the body for a new round: centered, facing up, base
// speed, single cell, alive.
func (b *Body) Reset() {
	b.HeadX = float64(b.grid.W / 2)
	b.HeadY = float64(b.grid.H / 2)
	b.Direction = Up
	b.Speed = b.base
	b.Size = 1
	b.Alive = true
	b.growing = false
	b.Segments = b.Segments[:0]
}

// Grid returns the grid the body moves on.
func (b *Body) Grid() core.Size { return b.grid }

// Head returns the discrete cell the head currently occupies.
func (b *Body) Head() core.Point {
	return core.Point{X: int(b.HeadX), Y: int(b.HeadY)}
}

// Advance moves the head by Speed*elapsed along the current direction,
// wrapping both coordinates on the torus. When the head crosses into a new
// cell the trailing run shifts behind it and self-collision is checked;
// sub-cell movement touches only the fractional position. It reports whether
// a cell boundary was crossed.
func (b *Body) Advance(elapsed float64) bool {
	prev := b.Head()
	step := b.Speed * elapsed
	switch b.Direction {
	case Up:
		b.HeadY -= step
	case Down:
		b.HeadY += step
	case Left:
		b.HeadX -= step
	case Right:
		b.HeadX += step
	}
	b.HeadX = core.Wrap(b.HeadX, float64(b.grid.W))
	b.HeadY = core.Wrap(b.HeadY, float64(b.grid.H))

	cur := b.Head()
	if cur == prev {
		return false
	}
	b.shift(prev)
	if b.hits(cur) {
		b.Alive = false
	}
	return true
}

// shift pushes the vacated head cell onto the front of the trailing run. A
// growing tick keeps the tail and consumes the growing flag; otherwise the
// oldest segment drops off.
func (b *Body) shift(prev core.Point) {
	if b.growing {
		b.Segments = append(b.Segments, core.Point{})
		copy(b.Segments[1:], b.Segments)
		b.Segments[0] = prev
		b.growing = false
		b.Size++
		return
	}
	if len(b.Segments) == 0 {
		return
	}
	copy(b.Segments[1:], b.Segments[:len(b.Segments)-1])
	b.Segments[0] = prev
}

func (b *Body) hits(cell core.Point) bool {
	for _, s := range b.Segments {
		if s == cell {
			return true
		}
	}
	return false
}

// Occupies reports whether the cell equals the head's discrete cell or any
// trailing segment.
func (b *Body) Occupies(cell core.Point) bool {
	return b.Head() == cell || b.hits(cell)
}

// Grow marks the next cell-crossing tick to retain its tail and increment
// Size. Calling it again before that tick has no further effect.
func (b *Body) Grow() { b.growing = true }

// Turn applies a direction change. The exact opposite of the current
// direction is rejected unless the body occupies a single cell; a length-1
// body may pivot in place. It reports whether the change was applied.
func (b *Body) Turn(next Direction) bool {
	if next == b.Direction.Opposite() && b.Size > 1 {
		return false
	}
	b.Direction = next
	return true
}
