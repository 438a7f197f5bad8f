package dendrogram

// UnionFind implements a disjoint-set data structure with path compression
// and union by size over a fixed number of provisional labels. Besides the
// usual root, every set tracks its least member, which is the label a set
// resolves to.
type UnionFind struct {
	parent []int
	size   []int
	least  []int
	// next is the next unallocated label.
	next int
}

// NewUnionFind creates a UnionFind with room for capacity labels. No label
// is allocated until Add is called.
func NewUnionFind(capacity int) *UnionFind {
	if capacity < 0 {
		capacity = 0
	}
	return &UnionFind{
		parent: make([]int, capacity),
		size:   make([]int, capacity),
		least:  make([]int, capacity),
	}
}

// Add allocates the next label as a singleton set. It returns
// ErrLabelCapacity once every slot is in use.
func (uf *UnionFind) Add() (int, error) {
	if uf.next >= len(uf.parent) {
		return -1, ErrLabelCapacity
	}
	x := uf.next
	uf.parent[x] = -1 // -1 means "is a root"
	uf.size[x] = 1
	uf.least[x] = x
	uf.next++
	return x, nil
}

// Len returns the number of allocated labels.
func (uf *UnionFind) Len() int { return uf.next }

// Cap returns the number of labels that can be allocated.
func (uf *UnionFind) Cap() int { return len(uf.parent) }

// Find returns the root of the set containing x, with path compression.
func (uf *UnionFind) Find(x int) int {
	// Walk to the root.
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	// Path compression: point all nodes along the path directly to root.
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// Least returns the smallest label in the set containing x.
func (uf *UnionFind) Least(x int) int {
	return uf.least[uf.Find(x)]
}

// Union merges the sets containing x and y by attaching the smaller tree
// under the larger. Returns the new root.
func (uf *UnionFind) Union(x, y int) int {
	rootX := uf.Find(x)
	rootY := uf.Find(y)
	if rootX == rootY {
		return rootX
	}

	// Attach smaller to larger.
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	if uf.least[rootY] < uf.least[rootX] {
		uf.least[rootX] = uf.least[rootY]
	}
	return rootX
}
