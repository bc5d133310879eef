// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spgemmtune/autotune"
	"github.com/katalvlaran/spgemmtune/comm"
	"github.com/katalvlaran/spgemmtune/config"
	"github.com/katalvlaran/spgemmtune/costmodel"
	"github.com/katalvlaran/spgemmtune/distmat"
	"github.com/katalvlaran/spgemmtune/evaluate"
	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/redistribute"
	"github.com/katalvlaran/spgemmtune/sparse"
)

var errVerify = errors.New("tune: redistributed matrix failed verification")

type tuneFlags struct {
	config      string
	predictions string
	problem     string
}

func newTuneCmd() *cobra.Command {
	var f tuneFlags
	cmd := &cobra.Command{
		Use:   "tune",
		Short: "Generate A and B, pick a grid, and redistribute both onto it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if f.config != "" {
				var err error
				if cfg, err = config.Load(f.config); err != nil {
					return err
				}
			}
			log, err := newLogger(cmd, cfg.Level())
			if err != nil {
				return err
			}
			out, err := runTune(cfg, log)
			if err != nil {
				return err
			}
			printTune(cmd.OutOrStdout(), out)
			if f.predictions != "" {
				return writePredictions(f.predictions, f.problem, out.result)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "YAML run configuration (defaults when empty)")
	cmd.Flags().StringVar(&f.predictions, "predictions", "", "write candidate predictions as CSV to this path")
	cmd.Flags().StringVar(&f.problem, "problem", "generated", "problem name used in the predictions CSV")
	return cmd
}

// tuneOutput is what the root rank reports.
type tuneOutput struct {
	result       autotune.Result
	tuneTime     time.Duration
	redistTime   time.Duration
	nnzA, nnzB   int64
	generateTime time.Duration
}

func generate(cfg config.Config) (a, b []sparse.Triple, err error) {
	if a, err = sparse.Random(cfg.A.Rows, cfg.A.Cols, cfg.A.Density, sparse.WithSeed(cfg.A.Seed)); err != nil {
		return nil, nil, errors.Wrap(err, "generate A")
	}
	if b, err = sparse.Random(cfg.B.Rows, cfg.B.Cols, cfg.B.Density, sparse.WithSeed(cfg.B.Seed)); err != nil {
		return nil, nil, errors.Wrap(err, "generate B")
	}
	if !cfg.Permute {
		return a, b, nil
	}
	perm, err := sparse.RandPerm(cfg.A.Rows, sparse.WithSeed(cfg.PermuteSeed))
	if err != nil {
		return nil, nil, err
	}
	if a, err = sparse.Permute(a, perm); err != nil {
		return nil, nil, err
	}
	if b, err = sparse.Permute(b, perm); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func runTune(cfg config.Config, log logrus.FieldLogger) (tuneOutput, error) {
	var out tuneOutput

	start := time.Now()
	ga, gb, err := generate(cfg)
	if err != nil {
		return out, err
	}
	out.generateTime = time.Since(start)
	log.WithFields(logrus.Fields{"nnzA": len(ga), "nnzB": len(gb), "took": out.generateTime}).Info("generated operands")

	est, err := costmodel.New(cfg.Estimator, cfg.Platform)
	if err != nil {
		return out, err
	}
	srcCfg, err := autotune.DefaultConfig(cfg.WorldSize, cfg.PPN)
	if err != nil {
		return out, err
	}

	err = comm.Run(cfg.WorldSize, func(c comm.Communicator) error {
		rlog := comm.RankLogger(log, c)

		src, err := autotune.MakeGrid(c, srcCfg)
		if err != nil {
			return err
		}
		a, err := distmat.FromGlobal(src, cfg.A.Rows, cfg.A.Cols, ga)
		if err != nil {
			return err
		}
		b, err := distmat.FromGlobal(src, cfg.B.Rows, cfg.B.Cols, gb)
		if err != nil {
			return err
		}

		tuner, err := autotune.New(est, cfg.PPN,
			autotune.WithLogger(rlog),
			autotune.WithSampleColumns(cfg.SampleCols),
			autotune.WithSeed(cfg.SampleSeed))
		if err != nil {
			return err
		}

		t0 := time.Now()
		res, err := tuner.TuneAnalytical(c, a, b, cfg.NodeBudget)
		if err != nil {
			return err
		}
		tuneTime := time.Since(t0)

		dst, err := autotune.MakeGrid(c, res.Best.Config)
		if err != nil {
			return err
		}
		engine := redistribute.New(redistribute.WithLogger(rlog))

		t1 := time.Now()
		na, err := engine.Matrix(c, a, srcCfg, dst, res.Best.Config)
		if err != nil {
			return err
		}
		nb, err := engine.Matrix(c, b, srcCfg, dst, res.Best.Config)
		if err != nil {
			return err
		}
		redistTime := time.Since(t1)

		nnzA, err := verify(c, na, dst, int64(len(ga)))
		if err != nil {
			return err
		}
		nnzB, err := verify(c, nb, dst, int64(len(gb)))
		if err != nil {
			return err
		}

		if c.Rank() == comm.Root {
			out = tuneOutput{
				result:       res,
				tuneTime:     tuneTime,
				redistTime:   redistTime,
				nnzA:         nnzA,
				nnzB:         nnzB,
				generateTime: out.generateTime,
			}
		}
		return nil
	})

	return out, err
}

// verify checks the local tile shape against the grid geometry and the
// global non-zero count against want. Collective over c.
func verify(c comm.Communicator, m *distmat.Matrix, g *grid.ProcGrid, want int64) (int64, error) {
	lr, lc := g.TileShape(m.Rows, m.Cols)
	if m.Local.Rows() != lr || m.Local.Cols() != lc {
		err := errors.Wrapf(errVerify, "rank %d: tile %dx%d, want %dx%d", c.Rank(), m.Local.Rows(), m.Local.Cols(), lr, lc)
		c.Abort(err)
		return 0, err
	}
	got, err := m.Nnz(c)
	if err != nil {
		return 0, err
	}
	if got != want {
		return 0, errors.Wrapf(errVerify, "nnz %d, want %d", got, want)
	}
	return got, nil
}

func printTune(w io.Writer, out tuneOutput) {
	res := out.result
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODES,PPN\tGRID\tBCAST(s)\tLOCAL(s)\tMERGE(s)\tTOTAL(s)\t")
	for _, s := range res.Candidates {
		mark := ""
		if s.Config == res.Best.Config {
			mark = "<- best"
		}
		fmt.Fprintf(tw, "%d,%d\t%dx%d\t%.6g\t%.6g\t%.6g\t%.6g\t%s\n",
			s.Config.Nodes, s.Config.PPN, s.Config.Side, s.Config.Side,
			s.Estimate.Bcast, s.Estimate.LocalMult, s.Estimate.Merge, s.Total(), mark)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "best: %s predicted %.6gs; default: %s predicted %.6gs (speedup %.3gx)\n",
		res.Best.Config, res.Best.Total(), res.Default.Config, res.Default.Total(), res.Speedup())
	fmt.Fprintf(w, "redistributed nnz(A)=%d nnz(B)=%d\n", out.nnzA, out.nnzB)
	fmt.Fprintf(w, "timings: generate %s, tune %s, redistribute %s\n", out.generateTime, out.tuneTime, out.redistTime)
}

func writePredictions(path, problem string, res autotune.Result) error {
	recs := make([]evaluate.Record, 0, len(res.Candidates))
	for _, s := range res.Candidates {
		recs = append(recs, evaluate.Record{Problem: problem, Nodes: s.Config.Nodes, PPN: s.Config.PPN, Seconds: s.Total()})
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := evaluate.WriteRecords(f, recs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
