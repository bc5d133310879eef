// SPDX-License-Identifier: MIT

package evaluate

import "math"

// KendallTauB returns Kendall's τ-b of x and y:
//
//	τ_b = (P - Q) / √((P + Q + Tx)·(P + Q + Ty))
//
// P and Q count concordant and discordant pairs, Tx pairs tied only in x,
// Ty pairs tied only in y; pairs tied in both are ignored. Unlike τ-a,
// ties lower the denominator instead of counting as agreement. The result
// is NaN when x or y is constant, or when len(x) < 2.
//
// Complexity: O(n²); candidate lists are short.
func KendallTauB(x, y []float64) float64 {
	if len(x) != len(y) {
		panic("evaluate: KendallTauB length mismatch")
	}
	var p, q, tx, ty float64
	for i := 0; i < len(x); i++ {
		for j := i + 1; j < len(x); j++ {
			dx, dy := sign(x[j]-x[i]), sign(y[j]-y[i])
			switch {
			case dx == 0 && dy == 0:
			case dx == 0:
				tx++
			case dy == 0:
				ty++
			case dx == dy:
				p++
			default:
				q++
			}
		}
	}
	den := math.Sqrt((p + q + tx) * (p + q + ty))
	if den == 0 {
		return math.NaN()
	}
	return (p - q) / den
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
