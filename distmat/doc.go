// Package distmat is the distributed sparse matrix handle: global shape,
// the grid the matrix currently lives on (nil when this rank does not
// participate) and the tile this rank owns.
//
// Invariant: the union over ranks of GlobalTriples() is the matrix's
// non-zero multiset, each entry exactly once.
package distmat
