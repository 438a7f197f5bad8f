package dendrogram

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the grid values inside one node's footprint.
type Stats struct {
	Size   int
	Sum    float64
	Mean   float64
	StdDev float64
	Peak   float64
	// Centroid is the intensity-weighted mean coordinate along each axis.
	// Footprints whose values do not sum to a positive weight fall back to
	// the plain geometric centroid.
	Centroid []float64
}

// Stats computes footprint statistics of the node with the given label over
// g, which must be the grid the tree was built from. An empty footprint
// yields a zero Stats.
func (t *Tree) Stats(g *Grid, label int) (Stats, error) {
	if !g.shape.Equal(t.shape) {
		return Stats{}, fmt.Errorf("%w: grid shape %v, tree shape %v",
			ErrShapeMismatch, []int(g.shape), []int(t.shape))
	}
	n, ok := t.Node(label)
	if !ok {
		return Stats{}, fmt.Errorf("%w: %d", ErrUnknownLabel, label)
	}
	if len(n.footprint) == 0 {
		return Stats{}, nil
	}

	values := make([]float64, len(n.footprint))
	for i, idx := range n.footprint {
		values[i] = g.data[idx]
	}

	s := Stats{
		Size: len(values),
		Sum:  floats.Sum(values),
		Peak: floats.Max(values),
	}
	if len(values) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	} else {
		s.Mean = values[0]
	}

	weights := values
	if s.Sum <= 0 || floats.Min(values) < 0 {
		weights = nil
	}
	coords := make([]float64, len(n.footprint))
	s.Centroid = make([]float64, len(t.shape))
	strides := t.shape.Strides()
	for axis, stride := range strides {
		for i, idx := range n.footprint {
			coords[i] = float64((idx / stride) % t.shape[axis])
		}
		s.Centroid[axis] = stat.Mean(coords, weights)
	}
	return s, nil
}
