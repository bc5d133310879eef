// Package autotune picks a square process grid for C = A·B before the
// multiplication runs.
//
// TuneAnalytical is collective over the whole communicator:
//
//  1. Global statistics of A and B are reduced across ranks.
//  2. The root gathers both operands, samples columns of B and counts the
//     symbolic product A·B[:, sample]; the sample is shared with a
//     sum-reduction so every rank scores the same inputs.
//  3. Grid sides 1..⌊√min(nodeBudget·PPN, worldSize)⌋ are scored with the
//     configured costmodel.Estimator.
//  4. The cheapest candidate wins; equal predictions prefer fewer processes.
//
// The "default" configuration (the largest square grid inside the launched
// processes) is scored alongside as a baseline.
package autotune
