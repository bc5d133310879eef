// Package evaluate scores runtime predictions against measured runtimes of
// the same grid candidates.
//
// Per problem it reports Kendall's τ-b between predicted and measured times,
// the RMSE, whether the measured-best candidate is among the k cheapest
// predictions (k = 1, 2, 3), the relative slowdown of the best of those k
// picks over the measured best, and the absolute time lost by trusting the
// top-1 prediction. Summarize aggregates these over many problems.
package evaluate
