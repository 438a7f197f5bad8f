package dendrogram

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Shape is the extent of each axis of an N-dimensional grid, slowest axis
// first. Cells are stored in row-major order (last axis fastest).
type Shape []int

// Dim returns the number of axes.
func (s Shape) Dim() int { return len(s) }

// Len returns the total number of cells (the product of all axes).
func (s Shape) Len() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, d := range s {
		n *= d
	}
	return n
}

// Strides returns the linear-index step of each axis.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	step := 1
	for i := len(s) - 1; i >= 0; i-- {
		strides[i] = step
		step *= s[i]
	}
	return strides
}

// Validate reports whether s describes a non-degenerate grid.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrEmptyShape
	}
	for i, d := range s {
		if d < 1 {
			return fmt.Errorf("%w: axis %d has length %d", ErrZeroDimension, i, d)
		}
	}
	return nil
}

// Index maps coordinates to a linear cell index. It returns -1 if the
// coordinates do not address a cell of s.
func (s Shape) Index(coords ...int) int {
	if len(coords) != len(s) {
		return -1
	}
	idx := 0
	for i, c := range coords {
		if c < 0 || c >= s[i] {
			return -1
		}
		idx = idx*s[i] + c
	}
	return idx
}

// Coord converts a linear cell index back to coordinates.
func (s Shape) Coord(idx int) []int {
	coords := make([]int, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		coords[i] = idx % s[i]
		idx /= s[i]
	}
	return coords
}

// Equal reports whether two shapes are identical.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

func (s Shape) clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Grid is an immutable N-dimensional array of scalar values.
type Grid struct {
	shape Shape
	data  []float64
}

// NewGrid builds a Grid from row-major data. The input is copied.
// Returns ErrEmptyShape or ErrZeroDimension for a degenerate shape and
// ErrShapeMismatch if len(data) is not the product of the shape.
func NewGrid(shape []int, data []float64) (*Grid, error) {
	s := Shape(shape).clone()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(data) != s.Len() {
		return nil, fmt.Errorf("%w: got %d values for shape %v (want %d)",
			ErrShapeMismatch, len(data), []int(s), s.Len())
	}
	d := make([]float64, len(data))
	copy(d, data)
	return &Grid{shape: s, data: d}, nil
}

// GridFrom2D builds a two-dimensional Grid from a rectangular slice of rows.
func GridFrom2D(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrZeroDimension
	}
	h, w := len(rows), len(rows[0])
	data := make([]float64, 0, h*w)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		data = append(data, row...)
	}
	return &Grid{shape: Shape{h, w}, data: data}, nil
}

// GridFromMatrix builds a two-dimensional Grid from any gonum matrix.
func GridFromMatrix(m mat.Matrix) (*Grid, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrZeroDimension
	}
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return &Grid{shape: Shape{r, c}, data: data}, nil
}

// Shape returns a copy of the grid's shape.
func (g *Grid) Shape() Shape { return g.shape.clone() }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Dim returns the number of axes.
func (g *Grid) Dim() int { return len(g.shape) }

// At returns the value at the given coordinates. It panics if the
// coordinates are out of range, like a slice index.
func (g *Grid) At(coords ...int) float64 {
	idx := g.shape.Index(coords...)
	if idx < 0 {
		panic(fmt.Sprintf("dendrogram: coordinates %v out of range for shape %v", coords, []int(g.shape)))
	}
	return g.data[idx]
}

// Value returns the value of the cell at linear index idx.
func (g *Grid) Value(idx int) float64 { return g.data[idx] }

// Data returns a copy of the row-major cell values.
func (g *Grid) Data() []float64 {
	d := make([]float64, len(g.data))
	copy(d, g.data)
	return d
}

// MaxFinite returns the largest finite value of the grid. The boolean is
// false when every cell is NaN or infinite.
func (g *Grid) MaxFinite() (float64, bool) {
	peak, ok := math.Inf(-1), false
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok || v > peak {
			peak = v
			ok = true
		}
	}
	return peak, ok
}

// Threshold returns the activity mask of cells strictly greater than level.
// NaN cells are never active.
func (g *Grid) Threshold(level float64) []bool {
	active := make([]bool, len(g.data))
	for i, v := range g.data {
		active[i] = v > level
	}
	return active
}
