// Package dendrogram extracts the hierarchy of structures in an
// N-dimensional scalar grid, such as an intensity map or a data cube.
//
// The grid is thresholded at a descending series of levels. At each level
// the cells above the threshold are split into connected components using
// axis-aligned adjacency; components are matched against the structures
// found at higher levels to decide whether a structure grows, a new one
// appears, or several merge. The result is a tree whose leaves are the
// local peaks and whose internal nodes record where peaks join.
//
// Basic usage:
//
//	g, err := dendrogram.NewGrid([]int{64, 64}, values)
//	cfg := dendrogram.DefaultConfig()
//	cfg.MinValue = 0.5
//	cfg.MinNPix = 4
//	cfg.Progress = dendrogram.NoProgress
//	tree, err := dendrogram.Build(g, cfg)
//	fmt.Print(tree.Topology())
//	// |__(-1)
//	//     |__(5)
//	//         |__(0)
//	//         ...
//
// For a single threshold, label the lattice directly:
//
//	lg, err := dendrogram.NewLattice(g, 1.0).Label()
//	// lg.At(y, x) is the component of cell (y, x) (-1 = inactive)
//
// # Significance test
//
// A component that overlaps no tracked structure only becomes a leaf if its
// peak exceeds the current level by more than Config.MinDelta and it has at
// least Config.MinNPix cells. Rejected cells stay rejected for the rest of
// the build unless Config.RetestRejected is set, in which case candidates
// are tested again at every level.
//
// # Resources
//
// Construction is single-threaded. Every node keeps its footprint as a
// sorted list of linear cell indices for the lifetime of the tree; use
// Tree.Mask for a dense boolean view.
package dendrogram
