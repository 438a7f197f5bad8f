package dendrogram

import (
	"errors"
	"math"
	"testing"
)

func TestLevels(t *testing.T) {
	g, _ := NewGrid([]int{4}, []float64{0, 10, math.NaN(), 5})
	levels, err := Levels(g, 0, 11)
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 11 {
		t.Fatalf("got %d levels, want 11", len(levels))
	}
	if levels[0] != 10 {
		t.Errorf("first level = %v, want the grid maximum 10", levels[0])
	}
	if math.Abs(levels[10]) > 1e-12 {
		t.Errorf("last level = %v, want 0", levels[10])
	}
	for i := 1; i < len(levels); i++ {
		if levels[i] >= levels[i-1] {
			t.Errorf("levels not strictly descending at %d: %v >= %v", i, levels[i], levels[i-1])
		}
		if step := levels[i-1] - levels[i]; math.Abs(step-1) > 1e-12 {
			t.Errorf("step %d = %v, want 1", i, step)
		}
	}
}

func TestLevels_SingleLevelIsMaximum(t *testing.T) {
	g, _ := NewGrid([]int{3}, []float64{2, 7, 1})
	levels, err := Levels(g, -100, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(levels) != 1 || levels[0] != 7 {
		t.Errorf("Levels(n=1) = %v, want [7]", levels)
	}
}

func TestLevels_MinValueAboveMaximum(t *testing.T) {
	// The schedule still runs from the maximum to minValue; it just never
	// activates anything.
	g, _ := NewGrid([]int{2}, []float64{1, 2})
	levels, err := Levels(g, 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if levels[0] != 2 || levels[2] != 4 {
		t.Errorf("Levels = %v, want 2..4", levels)
	}
}

func TestLevels_Errors(t *testing.T) {
	g, _ := NewGrid([]int{2}, []float64{1, 2})
	if _, err := Levels(g, 0, 0); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("zero levels: got %v, want ErrInvalidLevels", err)
	}
	if _, err := Levels(g, math.NaN(), 5); !errors.Is(err, ErrInvalidLevels) {
		t.Errorf("NaN minimum: got %v, want ErrInvalidLevels", err)
	}

	bad, _ := NewGrid([]int{2}, []float64{math.NaN(), math.Inf(-1)})
	if _, err := Levels(bad, 0, 5); !errors.Is(err, ErrNoFiniteValues) {
		t.Errorf("no finite values: got %v, want ErrNoFiniteValues", err)
	}
}
