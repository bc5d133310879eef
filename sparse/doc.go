// Package sparse holds the local sparse tile that each rank owns, plus the
// small amount of sparse arithmetic the autotuner needs.
//
// The package provides:
//
//   - Tile: an immutable set of (row, col, value) triples with a local
//     shape, kept in column-major order (column asc, then row asc).
//   - Random: a seeded Erdős–Rényi generator of triples.
//   - Permute / RandPerm: symmetric permutation of a global triple set.
//   - SymbolicProduct: flop and output-nnz counts of A·B restricted to a
//     sample of B's columns, the basis of the compression-ratio estimate.
//
// Tiles may contain duplicate coordinates; they are a multiset and nothing
// here merges them.
package sparse
