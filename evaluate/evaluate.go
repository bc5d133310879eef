// SPDX-License-Identifier: MIT

package evaluate

import (
	"math"
	"slices"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TopK is the deepest prediction rank Evaluate inspects.
const TopK = 3

// Point is one candidate config with its predicted and measured runtime.
type Point struct {
	Nodes, PPN int
	Predicted  float64
	Measured   float64
}

// Result scores one problem.
type Result struct {
	Problem string
	Tau     float64 // τ-b; NaN when either side is constant
	RMSE    float64
	Diff    float64 // measured(top-1 prediction) - min measured, seconds

	// Correct[k-1] holds when the measured best is among the k cheapest
	// predictions.
	Correct [TopK]bool

	// TopErr[k-1] is min over the k cheapest predictions of
	// measured/min(measured) - 1. Valid only when the fastest measurement
	// is positive.
	TopErr      [TopK]float64
	TopErrValid bool
}

// Evaluate scores points for problem.
// Errors: ErrTooFewPoints, ErrBadValue.
//
// Complexity: O(n²) for τ, O(n log n) otherwise.
func Evaluate(problem string, points []Point) (Result, error) {
	if len(points) < 2 {
		return Result{}, errors.Wrapf(ErrTooFewPoints, "%s: %d", problem, len(points))
	}
	pred := make([]float64, len(points))
	meas := make([]float64, len(points))
	for i, p := range points {
		if bad(p.Predicted) || bad(p.Measured) {
			return Result{}, errors.Wrapf(ErrBadValue, "%s: point %d (%d,%d)", problem, i, p.Nodes, p.PPN)
		}
		pred[i], meas[i] = p.Predicted, p.Measured
	}

	res := Result{
		Problem: problem,
		Tau:     KendallTauB(pred, meas),
		RMSE:    floats.Distance(pred, meas, 2) / math.Sqrt(float64(len(points))),
	}

	// Candidate indices by predicted runtime; stable so ties keep input order.
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int {
		switch {
		case pred[x] < pred[y]:
			return -1
		case pred[x] > pred[y]:
			return 1
		}
		return 0
	})

	bestIdx := floats.MinIdx(meas)
	best := meas[bestIdx]
	res.Diff = math.Abs(meas[order[0]] - best)
	res.TopErrValid = best > 0

	errK := math.Inf(1)
	for k := 0; k < TopK; k++ {
		i := order[min(k, len(order)-1)]
		res.Correct[k] = i == bestIdx || (k > 0 && res.Correct[k-1])
		if res.TopErrValid {
			errK = math.Min(errK, meas[i]/best-1)
			res.TopErr[k] = errK
		}
	}

	return res, nil
}

func bad(x float64) bool {
	return x < 0 || math.IsNaN(x) || math.IsInf(x, 0)
}

// Summary aggregates Results over problems.
type Summary struct {
	Problems     int
	MeanTau      float64
	MedianTau    float64
	MeanDiff     float64
	TotalDiff    float64
	Correct      [TopK]int
	MeanTopErr   [TopK]float64
	MedianTopErr [TopK]float64
	WorstTau     []string // up to 10 problems with a defined τ, worst first
}

// Summarize aggregates rs. τ statistics skip undefined (NaN) values and
// top-k errors only average results with TopErrValid.
func Summarize(rs []Result) (Summary, error) {
	if len(rs) == 0 {
		return Summary{}, ErrNoResults
	}
	s := Summary{Problems: len(rs)}

	var taus []float64
	diffs := make([]float64, len(rs))
	var topErrs [TopK][]float64
	for i, r := range rs {
		if !math.IsNaN(r.Tau) {
			taus = append(taus, r.Tau)
		}
		diffs[i] = r.Diff
		for k := 0; k < TopK; k++ {
			if r.Correct[k] {
				s.Correct[k]++
			}
			if r.TopErrValid {
				topErrs[k] = append(topErrs[k], r.TopErr[k])
			}
		}
	}

	if len(taus) > 0 {
		s.MeanTau, s.MedianTau = meanMedian(taus)
	}
	s.MeanDiff = stat.Mean(diffs, nil)
	s.TotalDiff = floats.Sum(diffs)
	for k := range topErrs {
		if len(topErrs[k]) > 0 {
			s.MeanTopErr[k], s.MedianTopErr[k] = meanMedian(topErrs[k])
		}
	}

	byTau := slices.DeleteFunc(slices.Clone(rs), func(r Result) bool { return math.IsNaN(r.Tau) })
	slices.SortStableFunc(byTau, func(x, y Result) int {
		switch {
		case x.Tau < y.Tau:
			return -1
		case x.Tau > y.Tau:
			return 1
		}
		return 0
	})
	for _, r := range byTau[:min(10, len(byTau))] {
		s.WorstTau = append(s.WorstTau, r.Problem)
	}

	return s, nil
}

func meanMedian(xs []float64) (float64, float64) {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	return stat.Mean(sorted, nil), stat.Quantile(0.5, stat.Empirical, sorted, nil)
}
