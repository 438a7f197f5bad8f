package dendrogram

// ComputeProminence computes how far each structure rises above the level
// where it stopped being independent:
//
//	prominence(n) = n.Peak() - n.Death()
//
// Death is the level of the merge that absorbed the node, or the last
// level for structures that survived to the root, so leaves that merge
// late and rise high score highest. The root is not included.
func ComputeProminence(t *Tree) map[int]float64 {
	if t.Len() == 0 {
		return nil
	}

	prominence := make(map[int]float64, t.Len())
	for _, n := range t.nodes {
		prominence[n.label] = n.peak - n.death
	}
	return prominence
}

// Persistence is the range of levels a node lived through as an
// independent structure: Birth - Death.
func (n *Node) Persistence() float64 {
	return n.birth - n.death
}
