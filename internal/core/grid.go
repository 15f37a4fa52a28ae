package core

import "math"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the total number of cells on the grid.
func (s Size) Cells() int { return s.W * s.H }

// Point identifies a single grid cell.
type Point struct {
	X int
	Y int
}

// Wrap maps a fractional coordinate onto the torus [0, dim). Defined for
// negative inputs.
func Wrap(v, dim float64) float64 {
	return math.Mod(math.Mod(v, dim)+dim, dim)
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set writes a cell value at (x, y) with toroidal wrapping.
func (g *ByteGrid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
