package dendrogram

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// mask builds an activity mask from 0/1 values.
func mask(bits ...int) []bool {
	m := make([]bool, len(bits))
	for i, b := range bits {
		m[i] = b != 0
	}
	return m
}

func mustLabel(t *testing.T, shape Shape, active []bool) *LabelGrid {
	t.Helper()
	lg, err := Label(shape, active)
	if err != nil {
		t.Fatalf("Label(%v) error: %v", shape, err)
	}
	return lg
}

func TestLabel_AllInactive(t *testing.T) {
	lg := mustLabel(t, Shape{3, 4}, make([]bool, 12))
	for i, l := range lg.Labels() {
		if l != -1 {
			t.Errorf("label[%d] = %d, want -1", i, l)
		}
	}
	if lg.Count() != 0 {
		t.Errorf("Count() = %d, want 0", lg.Count())
	}
	if comps := lg.Components(); len(comps) != 0 {
		t.Errorf("Components() = %v, want none", comps)
	}
}

func TestLabel_SingleIsolatedCell(t *testing.T) {
	lg := mustLabel(t, Shape{3, 3}, mask(
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	))
	want := []int{-1, -1, -1, -1, 0, -1, -1, -1, -1}
	if got := lg.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
	if lg.At(1, 1) != 0 {
		t.Errorf("At(1,1) = %d, want 0", lg.At(1, 1))
	}
}

func TestLabel_DiagonalNotConnected(t *testing.T) {
	lg := mustLabel(t, Shape{2, 2}, mask(
		1, 0,
		0, 1,
	))
	if lg.At(0, 0) == lg.At(1, 1) {
		t.Errorf("diagonal cells share label %d", lg.At(0, 0))
	}
	if lg.Count() != 2 {
		t.Errorf("Count() = %d, want 2", lg.Count())
	}
}

func TestLabel_TwoBlocks(t *testing.T) {
	shape := Shape{4, 5}
	active := mask(
		1, 1, 0, 0, 0,
		1, 1, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	)
	lg := mustLabel(t, shape, active)

	comps := lg.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2", len(comps))
	}
	wantCells := [][]int{{0, 1, 5, 6}, {8, 9, 13, 14, 18, 19}}
	for i, c := range comps {
		if !reflect.DeepEqual(c.Cells, wantCells[i]) {
			t.Errorf("component %d cells = %v, want %v", i, c.Cells, wantCells[i])
		}
	}

	// Labeling the same mask again yields the same partition.
	again := mustLabel(t, shape, active)
	if !labelsEquivalent(lg.Labels(), again.Labels()) {
		t.Error("relabeling produced a different partition")
	}
}

func TestLabel_UShapeMergesToSmallest(t *testing.T) {
	// Scan trace:
	//   idx0 → new 0, idx2 → new 1, idx3 → 0, idx5 → 1, idx6 → 0, idx7 → 0
	//   idx8 sees 1 (above) and 0 (left): classes join, 0 survives.
	lg := mustLabel(t, Shape{3, 3}, mask(
		1, 0, 1,
		1, 0, 1,
		1, 1, 1,
	))
	want := []int{0, -1, 0, 0, -1, 0, 0, 0, 0}
	if got := lg.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestLabel_TieBreakKeepsSmallestClass(t *testing.T) {
	// idx1 → 0, idx2 → 1, idx3 touches both and resolves to 0.
	lg := mustLabel(t, Shape{2, 2}, mask(
		0, 1,
		1, 1,
	))
	want := []int{-1, 0, 0, 0}
	if got := lg.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestLabel_NoWrapAcrossRows(t *testing.T) {
	// Cell (1,0) directly follows (0,2) in linear order but is not adjacent.
	lg := mustLabel(t, Shape{2, 3}, mask(
		0, 0, 1,
		1, 0, 0,
	))
	if lg.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (row end must not touch next row start)", lg.Count())
	}
}

func TestLabel_OneDimensional(t *testing.T) {
	lg := mustLabel(t, Shape{6}, mask(1, 1, 0, 1, 0, 1))
	want := []int{0, 0, -1, 1, -1, 2}
	if got := lg.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestLabel_ThreeDimensional(t *testing.T) {
	// Shape 2×2×2. (0,0,0) and (1,0,0) are neighbors along axis 0
	// (stride 4); (0,1,1) is isolated.
	shape := Shape{2, 2, 2}
	active := make([]bool, 8)
	active[shape.Index(0, 0, 0)] = true
	active[shape.Index(1, 0, 0)] = true
	active[shape.Index(0, 1, 1)] = true

	lg := mustLabel(t, shape, active)
	want := []int{0, -1, -1, 1, 0, -1, -1, -1}
	if got := lg.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("labels = %v, want %v", got, want)
	}
}

func TestLabel_Errors(t *testing.T) {
	if _, err := Label(Shape{2, 2}, make([]bool, 3)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short mask: got %v, want ErrShapeMismatch", err)
	}
	if _, err := Label(Shape{2, 0}, nil); !errors.Is(err, ErrZeroDimension) {
		t.Errorf("zero axis: got %v, want ErrZeroDimension", err)
	}
	if _, err := Label(Shape{}, nil); !errors.Is(err, ErrEmptyShape) {
		t.Errorf("no axes: got %v, want ErrEmptyShape", err)
	}
}

func TestLattice_ThresholdIsStrict(t *testing.T) {
	g, err := GridFrom2D([][]float64{
		{1, 2},
		{2, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	lat := NewLattice(g, 2)
	if want := mask(0, 0, 0, 1); !reflect.DeepEqual(lat.Active(), want) {
		t.Errorf("Active() = %v, want %v", lat.Active(), want)
	}
	if lat.Level() != 2 {
		t.Errorf("Level() = %v, want 2", lat.Level())
	}
	lg, err := lat.Label()
	if err != nil {
		t.Fatal(err)
	}
	if lg.Count() != 1 || lg.At(1, 1) != 0 {
		t.Errorf("labels = %v, want only (1,1) labeled 0", lg.Labels())
	}
}

// floodComponents labels a mask by breadth-first flood fill over
// axis-aligned neighbors, as an independent reference.
func floodComponents(shape Shape, active []bool) []int {
	labels := make([]int, len(active))
	for i := range labels {
		labels[i] = -1
	}
	strides := shape.Strides()
	next := 0
	for start := range active {
		if !active[start] || labels[start] >= 0 {
			continue
		}
		labels[start] = next
		queue := []int{start}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for axis, stride := range strides {
				c := (u / stride) % shape[axis]
				if c > 0 && active[u-stride] && labels[u-stride] < 0 {
					labels[u-stride] = next
					queue = append(queue, u-stride)
				}
				if c < shape[axis]-1 && active[u+stride] && labels[u+stride] < 0 {
					labels[u+stride] = next
					queue = append(queue, u+stride)
				}
			}
		}
		next++
	}
	return labels
}

func TestLabel_MatchesFloodFill(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	shapes := []Shape{{1}, {17}, {9, 11}, {5, 6, 7}, {3, 4, 3, 5}}

	for _, shape := range shapes {
		for _, density := range []float64{0.2, 0.5, 0.8} {
			active := make([]bool, shape.Len())
			for i := range active {
				active[i] = rng.Float64() < density
			}
			lg := mustLabel(t, shape, active)
			want := floodComponents(shape, active)
			if !labelsEquivalent(want, lg.Labels()) {
				t.Errorf("shape %v density %.1f: partition differs from flood fill", shape, density)
			}
			// Flood fill numbers components by first cell, which is also
			// the order Label's labels increase in.
			comps := lg.Components()
			for i := 1; i < len(comps); i++ {
				if comps[i].Cells[0] < comps[i-1].Cells[0] {
					t.Errorf("shape %v: components not ordered by first cell", shape)
				}
			}
		}
	}
}

func TestLabel_CheckerboardWithinCapacity(t *testing.T) {
	// Every active cell starts its own component: the worst case for the
	// provisional label budget.
	shape := Shape{7, 9}
	active := make([]bool, shape.Len())
	for i := range active {
		c := shape.Coord(i)
		active[i] = (c[0]+c[1])%2 == 0
	}
	lg := mustLabel(t, shape, active)
	if lg.Count() != 32 {
		t.Errorf("Count() = %d, want 32", lg.Count())
	}
}
