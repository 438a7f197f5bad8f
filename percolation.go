package dendrogram

// Percolates reports whether some component touches both the first and the
// last slab along axis 0, i.e. whether a connected cluster spans the grid
// from top to bottom. A grid with a single slab percolates as soon as it
// holds any component.
func (lg *LabelGrid) Percolates() bool {
	if len(lg.shape) == 0 || len(lg.labels) == 0 {
		return false
	}
	slab := len(lg.labels) / lg.shape[0]

	top := make(map[int]struct{})
	for _, l := range lg.labels[:slab] {
		if l >= 0 {
			top[l] = struct{}{}
		}
	}
	for _, l := range lg.labels[len(lg.labels)-slab:] {
		if _, ok := top[l]; ok && l >= 0 {
			return true
		}
	}
	return false
}
