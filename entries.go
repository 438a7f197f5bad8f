package dendrogram

// Entry is one parent/child edge of a dendrogram, flattened for
// serialization. The root appears only as a Parent.
type Entry struct {
	Parent int     `json:"parent" yaml:"parent"`
	Child  int     `json:"child" yaml:"child"`
	Leaf   bool    `json:"leaf" yaml:"leaf"`
	Birth  float64 `json:"birth" yaml:"birth"`
	Death  float64 `json:"death" yaml:"death"`
	Peak   float64 `json:"peak" yaml:"peak"`
	Size   int     `json:"size" yaml:"size"`
}

// Entries flattens the tree into one Entry per non-root node, in Walk order
// (parents before children, siblings in registration order).
func (t *Tree) Entries() []Entry {
	result := make([]Entry, 0, t.Len())
	t.Walk(func(n *Node, _ int) bool {
		if n.label == RootLabel {
			return true
		}
		result = append(result, Entry{
			Parent: n.parent,
			Child:  n.label,
			Leaf:   n.isLeaf,
			Birth:  n.birth,
			Death:  n.death,
			Peak:   n.peak,
			Size:   len(n.footprint),
		})
		return true
	})
	return result
}
