package dendrogram

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Config controls dendrogram construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// MinValue is the lowest threshold of the schedule. Structures only
	// exist where the grid is strictly above it. Must be finite.
	MinValue float64

	// MinDelta is how far a new structure's peak must rise above the level
	// it appears at to be kept. Must be >= 0. Default: 0.
	MinDelta float64

	// MinNPix is the smallest number of cells a new structure may have.
	// Must be >= 0. Default: 1.
	MinNPix int

	// NumLevel is the number of thresholds between the grid maximum and
	// MinValue, both included. Must be >= 1. Default: 100.
	NumLevel int

	// RetestRejected re-runs the MinDelta/MinNPix test on a candidate at
	// every level instead of rejecting its cells for good the first time it
	// fails. With it, a peak qualifies as soon as the level has dropped
	// MinDelta below it. Default: false.
	RetestRejected bool

	// Progress is called once per level. nil reports through Logger.
	Progress ProgressFunc

	// Logger receives construction diagnostics. nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with the default significance test and
// a 100-level schedule down to 0.
func DefaultConfig() Config {
	return Config{
		MinDelta: 0,
		MinNPix:  1,
		NumLevel: 100,
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.NumLevel < 1 {
		return fmt.Errorf("%w: NumLevel must be >= 1, got %d", ErrInvalidLevels, cfg.NumLevel)
	}
	if math.IsNaN(cfg.MinValue) || math.IsInf(cfg.MinValue, 0) {
		return fmt.Errorf("%w: MinValue must be finite, got %v", ErrInvalidLevels, cfg.MinValue)
	}
	if math.IsNaN(cfg.MinDelta) || cfg.MinDelta < 0 {
		return fmt.Errorf("dendrogram: MinDelta must be >= 0, got %v", cfg.MinDelta)
	}
	if cfg.MinNPix < 0 {
		return fmt.Errorf("dendrogram: MinNPix must be >= 0, got %d", cfg.MinNPix)
	}
	return nil
}

// applyDefaults fills in nil collaborators.
func applyDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Progress == nil {
		cfg.Progress = LogProgress(cfg.Logger)
	}
}

// Build constructs the dendrogram of g.
//
// Thresholds run from the grid maximum down to cfg.MinValue. At every level
// the cells above the threshold are labeled and each connected component
// is reconciled against the structures tracked so far:
//
//   - it overlaps exactly one structure: that structure grows to the
//     component's footprint;
//   - it overlaps none: it becomes a new leaf if its peak exceeds
//     level + MinDelta and it has at least MinNPix cells, otherwise it is
//     dropped as noise;
//   - it overlaps several: a merge node is created with those structures
//     as children.
//
// After the last level the surviving structures become children of the
// root. Returns an error if the config is invalid or the grid has no
// finite value.
func Build(g *Grid, cfg Config) (*Tree, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	levels, err := Levels(g, cfg.MinValue, cfg.NumLevel)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Info("dendrogram: building tree",
		"shape", []int(g.shape), "levels", len(levels),
		"max", levels[0], "min", levels[len(levels)-1])

	b := newBuilder(g, cfg)
	b.tree.levels = levels
	for i, level := range levels {
		cfg.Progress(i, len(levels))
		if err := b.step(level); err != nil {
			return nil, fmt.Errorf("dendrogram: level %d (%g): %w", i, level, err)
		}
	}
	b.finalize(levels[len(levels)-1])

	cfg.Logger.Info("dendrogram: tree built",
		"nodes", b.tree.Len(), "structures", len(b.tree.root.children))
	return b.tree, nil
}

// builder is the sole mutator of a Tree under construction. current maps
// every cell to the most specific structure covering it, or -1; rejected
// marks cells of candidates that failed the significance test.
type builder struct {
	grid     *Grid
	cfg      Config
	tree     *Tree
	current  []int
	rejected []bool
}

func newBuilder(g *Grid, cfg Config) *builder {
	current := make([]int, g.Len())
	for i := range current {
		current[i] = -1
	}
	return &builder{
		grid:     g,
		cfg:      cfg,
		tree:     newTree(g.shape),
		current:  current,
		rejected: make([]bool, g.Len()),
	}
}

// step reconciles the components of one level against the tracked
// structures.
func (b *builder) step(level float64) error {
	lg, err := NewLattice(b.grid, level).Label()
	if err != nil {
		return err
	}

	var grown, created, merged, dropped int
	comps := lg.Components()
	for _, c := range comps {
		overlap := b.overlap(c.Cells)
		switch len(overlap) {
		case 1:
			b.tree.updateFootprint(overlap[0], c.Cells, level)
			b.assign(c.Cells, overlap[0])
			grown++

		case 0:
			peak := b.peak(c.Cells)
			if !b.significant(c.Cells, level, peak) {
				b.reject(c.Cells)
				dropped++
				b.cfg.Logger.Debug("dendrogram: candidate dropped",
					"level", level, "cells", len(c.Cells), "peak", peak)
				continue
			}
			label := b.tree.createLeaf(c.Cells, level, peak)
			b.assign(c.Cells, label)
			created++

		default:
			label := b.tree.mergeBranch(c.Cells, overlap, level, b.peak(c.Cells))
			b.assign(c.Cells, label)
			merged++
		}
	}

	b.cfg.Logger.Debug("dendrogram: level reconciled",
		"level", level, "components", len(comps),
		"grown", grown, "created", created, "merged", merged, "dropped", dropped)
	return nil
}

// overlap returns the distinct tracked labels under cells, ascending.
func (b *builder) overlap(cells []int) []int {
	var labels []int
	for _, idx := range cells {
		if l := b.current[idx]; l >= 0 {
			labels = append(labels, l)
		}
	}
	if len(labels) < 2 {
		return labels
	}
	sort.Ints(labels)
	out := labels[:1]
	for _, l := range labels[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}

// significant applies the MinDelta/MinNPix test to a new candidate.
func (b *builder) significant(cells []int, level, peak float64) bool {
	if !b.cfg.RetestRejected {
		for _, idx := range cells {
			if b.rejected[idx] {
				return false
			}
		}
	}
	return peak > level+b.cfg.MinDelta && len(cells) >= b.cfg.MinNPix
}

func (b *builder) reject(cells []int) {
	if b.cfg.RetestRejected {
		return
	}
	for _, idx := range cells {
		b.rejected[idx] = true
	}
}

func (b *builder) assign(cells []int, label int) {
	for _, idx := range cells {
		b.current[idx] = label
	}
}

func (b *builder) peak(cells []int) float64 {
	peak := math.Inf(-1)
	for _, idx := range cells {
		if v := b.grid.data[idx]; v > peak {
			peak = v
		}
	}
	return peak
}

// finalize attaches the structures still tracked after the last level to
// the root.
func (b *builder) finalize(level float64) {
	seen := make(map[int]struct{})
	var survivors []int
	for _, l := range b.current {
		if l < 0 {
			continue
		}
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			survivors = append(survivors, l)
		}
	}
	sort.Ints(survivors)
	b.tree.mergeFinal(survivors, level)
}
