// Package redistribute moves a distributed sparse matrix from one square
// process grid onto another of a different side length.
//
// Redistribute is a collective over the enclosing communicator: every rank
// calls it, including ranks that hold nothing in the source grid or will
// hold nothing in the target grid. One call runs these steps in order:
//
//  1. Dimension agreement: the sum of local tile shapes over all ranks,
//     divided by the source side, gives the global shape. Ranks then check
//     their own tile against it and agree on both grid sides.
//  2. Rank translation: a sum-reduction fills the table from logical
//     target-grid rank to communicator rank, one contributor per slot.
//  3. Bucketing: each local entry is routed to the target rank owning its
//     global coordinate and re-expressed relative to that rank's tile.
//  4. Exchange: buckets are flattened by destination and exchanged with a
//     variable-length all-to-all (counts first, then triples).
//  5. Reconstruction: the received triples become the new local tile with
//     the target grid's LocalTileShape.
//
// Coordinate shifts:
//
//	shrink 4×4 → 2×2 (8×8 matrix)        grow 2×2 → 4×4 (8×8 matrix)
//	old tiles 2×2 merge into 4×4         old 4×4 tile fans out to 2×2 tiles
//	sender adds its offset inside        sender subtracts the destination's
//	the merged tile: +2 for odd idx      offset inside its own tile: -2
//
// Both cases are the single rule shift = srcOffset - dstOffset per axis,
// which also covers ragged tiles where neither tile contains the other.
//
// Configuration errors (disagreeing dimensions, a target slot with zero or
// several contributors) are detected from reduced values that every rank
// sees identically, so all ranks fail together and the communicator is
// aborted; no rank is left waiting in a later collective.
package redistribute
