package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/TrevorS/dendrogram"
)

// parseShape parses "64x64" or "16,16,8" into axis lengths.
func parseShape(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == 'x' || r == ',' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty shape %q", s)
	}
	shape := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid shape %q: %w", s, err)
		}
		shape[i] = n
	}
	return shape, nil
}

// syntheticGrid sums numPeaks isotropic Gaussians with random centers and
// amplitudes in [1, 10). The width of every peak is a tenth of the
// shortest axis.
func syntheticGrid(shape []int, numPeaks int, seed int64) (*dendrogram.Grid, error) {
	s := dendrogram.Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	shortest := shape[0]
	for _, d := range shape[1:] {
		shortest = min(shortest, d)
	}
	sigma := math.Max(float64(shortest)/10, 0.5)

	centers := make([][]float64, numPeaks)
	amps := make([]float64, numPeaks)
	for p := range centers {
		centers[p] = make([]float64, len(shape))
		for axis, d := range shape {
			centers[p][axis] = rng.Float64() * float64(d-1)
		}
		amps[p] = 1 + rng.Float64()*9
	}

	data := make([]float64, s.Len())
	for idx := range data {
		coord := s.Coord(idx)
		for p, c := range centers {
			var d2 float64
			for axis, x := range coord {
				dx := float64(x) - c[axis]
				d2 += dx * dx
			}
			data[idx] += amps[p] * math.Exp(-d2/(2*sigma*sigma))
		}
	}
	return dendrogram.NewGrid(shape, data)
}
