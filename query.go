package dendrogram

import (
	"fmt"
	"sort"
)

// Leaves returns the labels of all leaf nodes, ascending.
func (t *Tree) Leaves() []int {
	var leaves []int
	for _, n := range t.nodes {
		if n.isLeaf {
			leaves = append(leaves, n.label)
		}
	}
	return leaves
}

// Branches returns the labels of all merge nodes, ascending.
func (t *Tree) Branches() []int {
	var branches []int
	for _, n := range t.nodes {
		if !n.isLeaf {
			branches = append(branches, n.label)
		}
	}
	return branches
}

// Descendants returns label and every node below it in breadth-first
// order. RootLabel yields the whole tree.
func (t *Tree) Descendants(label int) ([]int, error) {
	n, ok := t.Node(label)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, label)
	}
	result := []int{n.label}
	toProcess := []*Node{n}

	for len(toProcess) > 0 {
		var next []*Node
		for _, node := range toProcess {
			for _, c := range node.children {
				result = append(result, c)
				next = append(next, t.nodes[c])
			}
		}
		toProcess = next
	}

	return result, nil
}

// Ancestors returns the parent chain of label, nearest first, ending at
// RootLabel once the tree is finalized.
func (t *Tree) Ancestors(label int) ([]int, error) {
	n, ok := t.Node(label)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLabel, label)
	}
	var chain []int
	for {
		p, ok := n.Parent()
		if !ok {
			return chain, nil
		}
		chain = append(chain, p)
		n, _ = t.Node(p)
	}
}

// LeavesUnder returns the leaf labels in the subtree of label, ascending.
func (t *Tree) LeavesUnder(label int) ([]int, error) {
	desc, err := t.Descendants(label)
	if err != nil {
		return nil, err
	}
	var leaves []int
	for _, l := range desc {
		if l != RootLabel && t.nodes[l].isLeaf {
			leaves = append(leaves, l)
		}
	}
	sort.Ints(leaves)
	return leaves, nil
}
