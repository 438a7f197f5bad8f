package dendrogram

import (
	"fmt"
	"sort"
)

// Lattice is a grid together with its activity mask at one threshold.
type Lattice struct {
	shape  Shape
	level  float64
	active []bool
}

// NewLattice thresholds g at level: a cell is active when its value is
// strictly greater than level.
func NewLattice(g *Grid, level float64) *Lattice {
	return &Lattice{
		shape:  g.shape,
		level:  level,
		active: g.Threshold(level),
	}
}

// Level returns the threshold the lattice was built at.
func (l *Lattice) Level() float64 { return l.level }

// Shape returns a copy of the lattice shape.
func (l *Lattice) Shape() Shape { return l.shape.clone() }

// Active returns a copy of the activity mask.
func (l *Lattice) Active() []bool {
	a := make([]bool, len(l.active))
	copy(a, l.active)
	return a
}

// Label identifies the connected clusters of the lattice. See Label.
func (l *Lattice) Label() (*LabelGrid, error) {
	return Label(l.shape, l.active)
}

// LabelGrid holds one connected-component label per cell; -1 marks an
// inactive cell. Labels are only meaningful within a single labeling call.
type LabelGrid struct {
	shape  Shape
	labels []int
}

// Component is one connected cluster of a LabelGrid: its label and its
// cells as ascending linear indices.
type Component struct {
	Label int
	Cells []int
}

// Label computes connected-component labels of an N-dimensional activity
// mask stored in row-major order. Two active cells share a label iff a path
// of axis-aligned neighbors (no diagonals) joins them.
//
// The scan visits cells in increasing linear order and looks only at the
// backward neighbor along each axis, since forward neighbors are still
// unlabeled. Equivalent provisional labels are joined in a UnionFind; each
// component finally takes the smallest provisional label it absorbed, so
// labels increase with the position of a component's first cell.
//
// Provisional labels are bounded by len/2 + 1; running out returns
// ErrLabelCapacity.
//
// Time: O(len·D·α(len)). Memory: O(len).
func Label(shape Shape, active []bool) (*LabelGrid, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	n := shape.Len()
	if len(active) != n {
		return nil, fmt.Errorf("%w: mask has %d cells, shape %v has %d",
			ErrShapeMismatch, len(active), []int(shape), n)
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	strides := shape.Strides()
	uf := NewUnionFind(n/2 + 1)
	roots := make([]int, 0, len(shape))

	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}

		roots = roots[:0]
		for axis, stride := range strides {
			// First cell along this axis: no backward neighbor.
			if (i/stride)%shape[axis] == 0 {
				continue
			}
			if nb := labels[i-stride]; nb >= 0 {
				roots = append(roots, uf.Find(nb))
			}
		}

		if len(roots) == 0 {
			l, err := uf.Add()
			if err != nil {
				return nil, fmt.Errorf("%w: %d labels for %d cells", err, uf.Cap(), n)
			}
			labels[i] = l
			continue
		}

		root := roots[0]
		for _, r := range roots[1:] {
			root = uf.Union(root, r)
		}
		labels[i] = uf.Least(root)
	}

	for i, l := range labels {
		if l >= 0 {
			labels[i] = uf.Least(l)
		}
	}

	return &LabelGrid{shape: shape.clone(), labels: labels}, nil
}

// Shape returns a copy of the label grid's shape.
func (lg *LabelGrid) Shape() Shape { return lg.shape.clone() }

// Labels returns a copy of the row-major labels.
func (lg *LabelGrid) Labels() []int {
	l := make([]int, len(lg.labels))
	copy(l, lg.labels)
	return l
}

// At returns the label at the given coordinates, or -1 when they are out
// of range.
func (lg *LabelGrid) At(coords ...int) int {
	idx := lg.shape.Index(coords...)
	if idx < 0 {
		return -1
	}
	return lg.labels[idx]
}

// Count returns the number of distinct components.
func (lg *LabelGrid) Count() int {
	seen := make(map[int]struct{})
	for _, l := range lg.labels {
		if l >= 0 {
			seen[l] = struct{}{}
		}
	}
	return len(seen)
}

// Components returns every component in ascending label order.
func (lg *LabelGrid) Components() []Component {
	index := make(map[int]int)
	var comps []Component
	for i, l := range lg.labels {
		if l < 0 {
			continue
		}
		k, ok := index[l]
		if !ok {
			k = len(comps)
			index[l] = k
			comps = append(comps, Component{Label: l})
		}
		comps[k].Cells = append(comps[k].Cells, i)
	}
	sort.Slice(comps, func(a, b int) bool {
		return comps[a].Label < comps[b].Label
	})
	return comps
}
