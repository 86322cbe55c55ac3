package core

// FloatGrid stores a 2D grid of float64 cell values in row-major order.
type FloatGrid struct {
	W, H int
	data []float64
}

// NewFloatGrid allocates a grid with the given dimensions.
func NewFloatGrid(w, h int) *FloatGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &FloatGrid{W: w, H: h, data: make([]float64, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *FloatGrid) Cells() []float64 { return g.data }

// Index returns the linear slice index for cell (row, col).
func (g *FloatGrid) Index(row, col int) int { return row*g.W + col }

// At returns the value stored at cell (row, col).
func (g *FloatGrid) At(row, col int) float64 { return g.data[row*g.W+col] }

// Set stores v at cell (row, col).
func (g *FloatGrid) Set(row, col int, v float64) { g.data[row*g.W+col] = v }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *FloatGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Fill sets every cell to v.
func (g *FloatGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns an independent copy of the grid.
func (g *FloatGrid) Clone() *FloatGrid {
	c := &FloatGrid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}
