package dendrogram

import (
	"fmt"
	"sort"
)

// RootLabel is the label of the synthetic root every tree ends in.
const RootLabel = -1

// noParent marks a node that has not been attached to a parent yet.
const noParent = -2

// Node is one structure of a dendrogram. Nodes are created by the builder
// and read-only afterwards.
type Node struct {
	label     int
	parent    int
	children  []int
	footprint []int
	isLeaf    bool

	birth float64
	death float64
	peak  float64
}

// Label returns the node's label. The root's label is RootLabel.
func (n *Node) Label() int { return n.label }

// Parent returns the parent's label. The boolean is false for the root.
func (n *Node) Parent() (int, bool) {
	if n.parent == noParent {
		return 0, false
	}
	return n.parent, true
}

// Children returns the child labels in registration order.
func (n *Node) Children() []int {
	c := make([]int, len(n.children))
	copy(c, n.children)
	return c
}

// IsLeaf reports whether the node is a leaf. New structures start as
// leaves and merge nodes never are; the root stops being one when the tree
// is finalized, even if nothing survived to become its child.
func (n *Node) IsLeaf() bool { return n.isLeaf }

// Footprint returns the node's cells as ascending linear indices.
func (n *Node) Footprint() []int {
	f := make([]int, len(n.footprint))
	copy(f, n.footprint)
	return f
}

// Size returns the number of cells in the node's footprint.
func (n *Node) Size() int { return len(n.footprint) }

// Contains reports whether cell idx lies inside the footprint.
func (n *Node) Contains(idx int) bool {
	i := sort.SearchInts(n.footprint, idx)
	return i < len(n.footprint) && n.footprint[i] == idx
}

// Birth returns the level at which the node was created.
func (n *Node) Birth() float64 { return n.birth }

// Death returns the level at which the node was absorbed into a merge, or
// the last level of the schedule for structures that reached the root.
func (n *Node) Death() float64 { return n.death }

// Peak returns the largest grid value inside the footprint.
func (n *Node) Peak() float64 { return n.peak }

// Tree is a dendrogram: an arena of nodes addressed by label plus a
// synthetic root. Node labels are 0, 1, 2, ... in order of creation.
type Tree struct {
	shape  Shape
	levels []float64
	nodes  []*Node
	root   *Node
}

func newTree(shape Shape) *Tree {
	return &Tree{
		shape: shape.clone(),
		root: &Node{
			label:  RootLabel,
			parent: noParent,
			isLeaf: true,
		},
	}
}

// Shape returns a copy of the shape of the grid the tree was built from.
func (t *Tree) Shape() Shape { return t.shape.clone() }

// Levels returns a copy of the threshold schedule the tree was built over,
// highest first.
func (t *Tree) Levels() []float64 {
	l := make([]float64, len(t.levels))
	copy(l, t.levels)
	return l
}

// Root returns the synthetic root.
func (t *Tree) Root() *Node { return t.root }

// Len returns the number of nodes, not counting the root.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given label. RootLabel yields the root.
func (t *Tree) Node(label int) (*Node, bool) {
	if label == RootLabel {
		return t.root, true
	}
	if label < 0 || label >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[label], true
}

// Labels returns every node label in order of creation, without the root.
func (t *Tree) Labels() []int {
	labels := make([]int, len(t.nodes))
	for i := range t.nodes {
		labels[i] = i
	}
	return labels
}

// Mask returns the dense boolean footprint of a node over the full grid.
func (t *Tree) Mask(label int) ([]bool, error) {
	n, ok := t.Node(label)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, label)
	}
	mask := make([]bool, t.shape.Len())
	for _, idx := range n.footprint {
		mask[idx] = true
	}
	return mask, nil
}

// createLeaf registers a new leaf under the next label.
func (t *Tree) createLeaf(footprint []int, level, peak float64) int {
	label := len(t.nodes)
	t.nodes = append(t.nodes, &Node{
		label:     label,
		parent:    noParent,
		footprint: footprint,
		isLeaf:    true,
		birth:     level,
		death:     level,
		peak:      peak,
	})
	return label
}

// updateFootprint replaces, not unions, the footprint of a continuing node.
func (t *Tree) updateFootprint(label int, footprint []int, level float64) {
	n := t.nodes[label]
	n.footprint = footprint
	n.death = level
}

// mergeBranch registers a merge node over the given children under the
// next label. Children stay addressable by their own labels.
func (t *Tree) mergeBranch(footprint []int, children []int, level, peak float64) int {
	label := len(t.nodes)
	n := &Node{
		label:     label,
		parent:    noParent,
		children:  append([]int(nil), children...),
		footprint: footprint,
		birth:     level,
		death:     level,
		peak:      peak,
	}
	t.nodes = append(t.nodes, n)
	for _, c := range children {
		child := t.nodes[c]
		child.parent = label
		child.death = level
	}
	return label
}

// mergeFinal attaches the surviving structures to the root. The root's
// footprint becomes the union of theirs and it stops being a leaf, even
// when no structure survived.
func (t *Tree) mergeFinal(labels []int, level float64) {
	r := t.root
	r.isLeaf = false
	r.children = append([]int(nil), labels...)
	r.birth, r.death = level, level
	var union []int
	for i, l := range labels {
		n := t.nodes[l]
		n.parent = RootLabel
		n.death = level
		union = unionSorted(union, n.footprint)
		if i == 0 || n.peak > r.peak {
			r.peak = n.peak
		}
	}
	r.footprint = union
}

// unionSorted merges two ascending index lists without duplicates.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
