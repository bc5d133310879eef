// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spgemmtune/evaluate"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate PREDICTED.csv MEASURED.csv",
		Short: "Score predicted runtimes against measured runtimes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, err := readRecords(args[0])
			if err != nil {
				return err
			}
			meas, err := readRecords(args[1])
			if err != nil {
				return err
			}
			rs, err := evaluate.EvaluateAll(pred, meas)
			if err != nil {
				return err
			}
			sum, err := evaluate.Summarize(rs)
			if err != nil {
				return err
			}
			printEvaluation(cmd.OutOrStdout(), rs, sum)
			return nil
		},
	}
}

func readRecords(path string) ([]evaluate.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return evaluate.ReadRecords(f)
}

func printEvaluation(w io.Writer, rs []evaluate.Result, s evaluate.Summary) {
	for _, r := range rs {
		fmt.Fprintf(w, "%s: kt=%.4f rmse=%.6g diff=%.6gs correct=%v\n", r.Problem, r.Tau, r.RMSE, r.Diff, r.Correct)
	}
	fmt.Fprintf(w, "average kt: %.4f, median kt: %.4f\n", s.MeanTau, s.MedianTau)
	fmt.Fprintf(w, "average diff: %.6gs, total diff: %.6gs\n", s.MeanDiff, s.TotalDiff)
	for k := 0; k < evaluate.TopK; k++ {
		fmt.Fprintf(w, "top %d: correct %d/%d, error avg %.4f median %.4f\n",
			k+1, s.Correct[k], s.Problems, s.MeanTopErr[k], s.MedianTopErr[k])
	}
	fmt.Fprintf(w, "worst kt: %v\n", s.WorstTau)
}
