package dendrogram

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Levels returns numLevel thresholds linearly spaced from the largest
// finite value of g down to minValue, both inclusive. A single level is
// just the maximum.
//
// Returns ErrNoFiniteValues when g has no finite value and
// ErrInvalidLevels when numLevel < 1 or minValue is not finite.
func Levels(g *Grid, minValue float64, numLevel int) ([]float64, error) {
	if numLevel < 1 {
		return nil, fmt.Errorf("%w: need at least 1 level, got %d", ErrInvalidLevels, numLevel)
	}
	if math.IsNaN(minValue) || math.IsInf(minValue, 0) {
		return nil, fmt.Errorf("%w: minimum value %v is not finite", ErrInvalidLevels, minValue)
	}
	top, ok := g.MaxFinite()
	if !ok {
		return nil, ErrNoFiniteValues
	}
	if numLevel == 1 {
		return []float64{top}, nil
	}
	return floats.Span(make([]float64, numLevel), top, minValue), nil
}
