package snake

import (
	"testing"

	"torsnake/internal/core"
)

func TestAdvanceOneTickMovesUp(t *testing.T) {
	b := New(core.Size{W: 4, H: 4}, 1)
	if got := b.Head(); got != (core.Point{X: 2, Y: 2}) {
		t.Fatalf("fresh body head = %v, want (2,2)", got)
	}

	crossed := b.Advance(1)

	if !crossed {
		t.Fatal("one full-cell tick must cross a boundary")
	}
	if got := b.Head(); got != (core.Point{X: 2, Y: 1}) {
		t.Fatalf("head after tick = %v, want (2,1)", got)
	}
	if len(b.Segments) != 0 {
		t.Fatalf("size-1 body must leave no trail, got %v", b.Segments)
	}
	if !b.Alive {
		t.Fatal("body died on a plain move")
	}
}

func TestAdvanceWrapsAllFourDirections(t *testing.T) {
	grid := core.Size{W: 4, H: 4}
	cases := []struct {
		name  string
		x, y  float64
		dir   Direction
		want  core.Point
	}{
		{"right off east edge", 3, 2, Right, core.Point{X: 0, Y: 2}},
		{"left off west edge", 0, 2, Left, core.Point{X: 3, Y: 2}},
		{"up off north edge", 2, 0, Up, core.Point{X: 2, Y: 3}},
		{"down off south edge", 2, 3, Down, core.Point{X: 2, Y: 0}},
	}
	for _, c := range cases {
		b := New(grid, 1)
		b.HeadX, b.HeadY = c.x, c.y
		b.Direction = c.dir
		b.Advance(1)
		if got := b.Head(); got != c.want {
			t.Fatalf("%s: head = %v, want %v", c.name, got, c.want)
		}
		if b.HeadX < 0 || b.HeadX >= float64(grid.W) || b.HeadY < 0 || b.HeadY >= float64(grid.H) {
			t.Fatalf("%s: head coordinates (%v,%v) escaped the torus", c.name, b.HeadX, b.HeadY)
		}
	}
}

func TestGrowthAccounting(t *testing.T) {
	b := New(core.Size{W: 32, H: 32}, 1)
	const n = 5
	for i := 0; i < n; i++ {
		b.Grow()
		b.Advance(1)
	}
	if b.Size != n+1 {
		t.Fatalf("size after %d growth ticks = %d, want %d", n, b.Size, n+1)
	}
	if len(b.Segments) != n {
		t.Fatalf("trailing segments = %d, want %d", len(b.Segments), n)
	}
	if b.Size != 1+len(b.Segments) {
		t.Fatalf("size invariant broken: size=%d segments=%d", b.Size, len(b.Segments))
	}
}

func TestGrowIsIdempotentWithinTick(t *testing.T) {
	b := New(core.Size{W: 32, H: 32}, 1)
	b.Grow()
	b.Grow()
	b.Advance(1)
	if b.Size != 2 {
		t.Fatalf("double Grow before one tick produced size %d, want 2", b.Size)
	}
}

func TestTurnRejectsReversalWhenLong(t *testing.T) {
	b := New(core.Size{W: 32, H: 32}, 1)
	b.Grow()
	b.Advance(1) // size 2, facing up

	if b.Turn(Down) {
		t.Fatal("reversal accepted for size > 1")
	}
	if b.Direction != Up {
		t.Fatalf("direction changed to %v on rejected turn", b.Direction)
	}
}

func TestTurnAllowsReversalWhenSingle(t *testing.T) {
	b := New(core.Size{W: 8, H: 8}, 1)
	b.HeadX, b.HeadY = 0, 0
	b.Direction = Right

	if !b.Turn(Left) {
		t.Fatal("size-1 body must be allowed to pivot in place")
	}
	b.Advance(1)
	if got := b.Head(); got != (core.Point{X: 7, Y: 0}) {
		t.Fatalf("head after pivot and move = %v, want (7,0)", got)
	}
}

func TestSubCellTickTouchesOnlyHeadPosition(t *testing.T) {
	b := New(core.Size{W: 32, H: 32}, 1)
	b.Grow()
	b.Advance(1) // size 2
	b.Turn(Right)
	b.Advance(1)
	before := append([]core.Point(nil), b.Segments...)
	cell := b.Head()

	b.Speed = 0.25
	crossed := b.Advance(1)

	if crossed {
		t.Fatal("quarter-cell move must not cross a boundary")
	}
	if got := b.Head(); got != cell {
		t.Fatalf("head cell moved on sub-cell tick: %v -> %v", cell, got)
	}
	if len(b.Segments) != len(before) {
		t.Fatalf("trailing run changed on sub-cell tick: %v -> %v", before, b.Segments)
	}
	for i := range before {
		if b.Segments[i] != before[i] {
			t.Fatalf("segment %d changed on sub-cell tick", i)
		}
	}
}

// Drives a size-5 body through a tight left hook so the head re-enters a
// trailing cell.
func TestSelfCollision(t *testing.T) {
	b := New(core.Size{W: 20, H: 20}, 1)
	for i := 0; i < 4; i++ {
		b.Grow()
		b.Advance(1)
	}
	if b.Size != 5 {
		t.Fatalf("setup body size = %d, want 5", b.Size)
	}

	b.Turn(Right)
	b.Advance(1)
	if !b.Alive {
		t.Fatal("died too early, before the hook closed")
	}
	b.Turn(Down)
	b.Advance(1)
	if !b.Alive {
		t.Fatal("died too early, before the hook closed")
	}
	b.Turn(Left)
	b.Advance(1)

	if b.Alive {
		t.Fatal("head re-entered its own footprint but body stayed alive")
	}

	// Liveness stays false until an explicit reset.
	b.Advance(1)
	if b.Alive {
		t.Fatal("liveness flipped back without a reset")
	}
	b.Reset()
	if !b.Alive || b.Size != 1 || len(b.Segments) != 0 {
		t.Fatalf("reset left body in state size=%d segments=%d alive=%v", b.Size, len(b.Segments), b.Alive)
	}
	if b.Direction != Up {
		t.Fatalf("reset direction = %v, want up", b.Direction)
	}
}

func TestOccupiesCoversHeadAndTrail(t *testing.T) {
	b := New(core.Size{W: 20, H: 20}, 1)
	b.Grow()
	b.Advance(1)

	if !b.Occupies(b.Head()) {
		t.Fatal("head cell not reported occupied")
	}
	for _, s := range b.Segments {
		if !b.Occupies(s) {
			t.Fatalf("trailing cell %v not reported occupied", s)
		}
	}
	if b.Occupies(core.Point{X: 0, Y: 0}) {
		t.Fatal("far corner reported occupied")
	}
}
