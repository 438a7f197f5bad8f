package dendrogram

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Walk visits the tree depth-first from the root, calling fn with each node
// and its depth (the root has depth 0). Children are visited in
// registration order. Returning false from fn skips the node's subtree.
//
// The traversal keeps an explicit stack, so tree depth is not limited by
// the goroutine stack.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.depth) {
			continue
		}
		// Push in reverse so the first registered child is popped first.
		for i := len(f.node.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{t.nodes[f.node.children[i]], f.depth + 1})
		}
	}
}

// WriteTopology writes one line per node in Walk order: four spaces per
// level of depth, then "|__(label)".
//
//	|__(-1)
//	    |__(2)
//	        |__(0)
//	        |__(1)
func (t *Tree) WriteTopology(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Walk(func(n *Node, depth int) bool {
		if err != nil {
			return false
		}
		_, err = bw.WriteString(topologyLine(n.label, depth))
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Topology returns the text WriteTopology would write.
func (t *Tree) Topology() string {
	var sb strings.Builder
	t.Walk(func(n *Node, depth int) bool {
		sb.WriteString(topologyLine(n.label, depth))
		return true
	})
	return sb.String()
}

func topologyLine(label, depth int) string {
	return strings.Repeat("    ", depth) + "|__(" + strconv.Itoa(label) + ")\n"
}
