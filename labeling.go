package dendrogram

import "fmt"

// Assign labels every cell with the most specific selected node whose
// footprint covers it, or -1 where none does. With no labels given every
// node is selected, which labels each cell with the deepest structure
// containing it. The root is never used as a label.
//
// Selecting the leaves gives a flat segmentation of the peaks:
//
//	lg, _ := tree.Assign(tree.Leaves()...)
func (t *Tree) Assign(labels ...int) (*LabelGrid, error) {
	selected := make(map[int]bool, len(labels))
	for _, l := range labels {
		if l < 0 || l >= len(t.nodes) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, l)
		}
		selected[l] = true
	}

	out := make([]int, t.shape.Len())
	for i := range out {
		out[i] = -1
	}

	// Walk paints ancestors before their descendants, so the deepest
	// selected node covering a cell is painted last.
	t.Walk(func(n *Node, _ int) bool {
		if n.label == RootLabel {
			return true
		}
		if len(selected) > 0 && !selected[n.label] {
			return true
		}
		for _, idx := range n.footprint {
			out[idx] = n.label
		}
		return true
	})

	return &LabelGrid{shape: t.shape.clone(), labels: out}, nil
}
