package core

import (
	"math"
	"testing"
)

func TestWrapStaysInRange(t *testing.T) {
	const dim = 32.0
	inputs := []float64{-64.5, -32, -1, -0.25, 0, 0.75, 31.999, 32, 33.5, 96.25}
	for _, v := range inputs {
		got := Wrap(v, dim)
		if got < 0 || got >= dim {
			t.Fatalf("Wrap(%v, %v) = %v, outside [0, %v)", v, dim, got, dim)
		}
	}
}

func TestWrapKnownValues(t *testing.T) {
	cases := []struct {
		v, dim, want float64
	}{
		{-1, 32, 31},
		{32, 32, 0},
		{31.5, 32, 31.5},
		{-0.5, 4, 3.5},
		{9.25, 4, 1.25},
	}
	for _, c := range cases {
		if got := Wrap(c.v, c.dim); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("Wrap(%v, %v) = %v, want %v", c.v, c.dim, got, c.want)
		}
	}
}

func TestByteGridSetWraps(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(-1, -1, 7)
	if got := g.Cells()[g.Index(3, 2)]; got != 7 {
		t.Fatalf("Set(-1,-1) landed wrong, cell (3,2) = %d, want 7", got)
	}
	g.Set(4, 3, 9)
	if got := g.Cells()[g.Index(0, 0)]; got != 9 {
		t.Fatalf("Set(4,3) landed wrong, cell (0,0) = %d, want 9", got)
	}
}

func TestByteGridClear(t *testing.T) {
	g := NewByteGrid(5, 5)
	for i := range g.Cells() {
		g.Cells()[i] = 1
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear, want 0", i, v)
		}
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 100; i++ {
		pa := a.Cell(Size{W: 32, H: 32})
		pb := b.Cell(Size{W: 32, H: 32})
		if pa != pb {
			t.Fatalf("draw %d diverged: %v vs %v", i, pa, pb)
		}
	}
}
