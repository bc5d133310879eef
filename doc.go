// Package spgemmtune picks a communication-efficient square process grid for
// a distributed sparse matrix product (SpGEMM) and moves the operands onto it.
//
// What:
//
//	Given A and B distributed over some 2D grid, spgemmtune predicts the
//	running time of C = A·B on every square grid that fits a node budget,
//	selects the cheapest, and redistributes A and B from their current grid
//	onto the chosen one with a single variable-length all-to-all.
//
// Packages:
//
//	grid/          - square process grids, tile shapes, coordinate ownership
//	comm/          - collective communicator (allreduce, alltoall(v)) and an in-process world
//	sparse/        - column-major sparse tiles, generators, symbolic products
//	distmat/       - distributed matrix handle: one local tile per grid rank
//	redistribute/  - grid-to-grid redistribution (grow, shrink, ragged edges)
//	costmodel/     - pluggable runtime estimators (compression, uniform)
//	autotune/      - candidate enumeration, scoring and selection
//	evaluate/      - prediction quality vs. measured runtimes (τ, RMSE, top-k)
//	config/        - YAML run configuration
//	cmd/spgemmtune - the tune / evaluate command line
//
// Quick picture (shrink 2×2 → 1×1, grow is the reverse):
//
//	┌────┬────┐      ┌─────────┐
//	│ r0 │ r1 │      │         │
//	├────┼────┤  →   │   r0    │
//	│ r2 │ r3 │      │         │
//	└────┴────┘      └─────────┘
//
// Every entry point that takes a comm.Communicator is collective: all ranks
// call it in the same order, including ranks outside either grid.
package spgemmtune
