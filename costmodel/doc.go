// Package costmodel predicts the running time of a 2D (SUMMA-style) sparse
// matrix multiplication on a candidate process grid, before any of it runs.
//
// Every estimator splits its prediction the same way:
//
//   - Bcast: Side stages, each broadcasting one A tile along the process
//     row and one B tile along the process column (tree depth ⌈log₂ Side⌉).
//     Latency α per message, bandwidth β, per-rank volume nnz/P entries.
//   - LocalMult: γ per scalar multiply-add, flops/P per rank.
//   - Merge: γ per output entry per merge level, (nnz(C)/P)·log₂ Side.
//
// Estimators differ in how they predict flops and nnz(C):
//
//   - Compression scales a sampled compression ratio
//     nnz(C_s)/√(nnz(A_s)·nnz(B_s)) up to the full operands.
//   - Uniform assumes Erdős–Rényi operands and needs no sample.
//
// Strategies are chosen by name at construction time (New); callers only
// see the Estimator interface.
package costmodel
