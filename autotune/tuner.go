// SPDX-License-Identifier: MIT

package autotune

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/spgemmtune/comm"
	"github.com/katalvlaran/spgemmtune/costmodel"
	"github.com/katalvlaran/spgemmtune/distmat"
	"github.com/katalvlaran/spgemmtune/grid"
	"github.com/katalvlaran/spgemmtune/sparse"
)

// Tuner scores grid candidates with one estimator.
type Tuner struct {
	est  costmodel.Estimator
	ppn  int
	opts options
}

// New returns a Tuner for machines with ppn processes per node.
// Errors: ErrNilEstimator, ErrBadBudget.
func New(est costmodel.Estimator, ppn int, opts ...Option) (*Tuner, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}
	if ppn < 1 {
		return nil, errors.Wrapf(ErrBadBudget, "ppn=%d", ppn)
	}
	return &Tuner{est: est, ppn: ppn, opts: gatherOptions(opts...)}, nil
}

// maxSide returns ⌊√n⌋, or 0 for n <= 0.
func maxSide(n int) int {
	if n <= 0 {
		return 0
	}
	s := int(math.Sqrt(float64(n)))
	// Divisions instead of squares: s*s may overflow near math.MaxInt.
	for s > 0 && s > n/s {
		s--
	}
	for s+1 <= n/(s+1) {
		s++
	}
	return s
}

// DefaultConfig returns the largest square grid inside worldSize launched
// processes.
func DefaultConfig(worldSize, ppn int) (grid.Config, error) {
	return grid.NewConfig(maxSide(worldSize), ppn)
}

// Candidates lists the configs TuneAnalytical scores: sides 1 up to the
// largest whose square fits both nodeBudget·ppn and worldSize.
func (t *Tuner) Candidates(nodeBudget, worldSize int) ([]grid.Config, error) {
	if nodeBudget < 1 {
		return nil, errors.Wrapf(ErrBadBudget, "nodeBudget=%d", nodeBudget)
	}
	// nodeBudget·ppn only matters below worldSize; compare before
	// multiplying so huge budgets cannot overflow.
	limit := worldSize
	if nodeBudget <= worldSize/t.ppn {
		limit = nodeBudget * t.ppn
	}
	top := maxSide(limit)
	out := make([]grid.Config, 0, top)
	for side := 1; side <= top; side++ {
		cfg, err := grid.NewConfig(side, t.ppn)
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

// MakeGrid returns the caller's place in cfg: ranks below cfg.Procs
// participate in row-major order, the rest get nil. Not collective.
func MakeGrid(c comm.Communicator, cfg grid.Config) (*grid.ProcGrid, error) {
	if cfg.Procs > c.Size() {
		return nil, errors.Wrapf(ErrGridTooLarge, "%s on %d ranks", cfg, c.Size())
	}
	if c.Rank() >= cfg.Procs {
		return nil, nil
	}
	return grid.NewProcGrid(cfg.Side, c.Rank())
}

// Problem reduces the global statistics of a and b and the sampled
// symbolic product. Collective over c.
func (t *Tuner) Problem(c comm.Communicator, a, b *distmat.Matrix) (costmodel.Problem, error) {
	if a == nil || b == nil {
		return costmodel.Problem{}, ErrNilMatrix
	}
	if a.Cols != b.Rows {
		return costmodel.Problem{}, errors.Wrapf(ErrShapeMismatch, "%dx%d · %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}

	nnz := []int64{int64(a.Local.Nnz()), int64(b.Local.Nnz())}
	if err := c.AllreduceInt64(comm.OpSum, nnz); err != nil {
		return costmodel.Problem{}, err
	}

	sample, err := t.sample(c, a, b)
	if err != nil {
		return costmodel.Problem{}, err
	}

	return costmodel.Problem{
		A:      costmodel.Stats{Rows: a.Rows, Cols: a.Cols, Nnz: nnz[0]},
		B:      costmodel.Stats{Rows: b.Rows, Cols: b.Cols, Nnz: nnz[1]},
		Sample: sample,
	}, nil
}

// sample runs the symbolic product on the root and shares it.
func (t *Tuner) sample(c comm.Communicator, a, b *distmat.Matrix) (sparse.ProductSample, error) {
	ga, err := a.Gather(c)
	if err != nil {
		return sparse.ProductSample{}, err
	}
	gb, err := b.Gather(c)
	if err != nil {
		return sparse.ProductSample{}, err
	}

	buf := make([]int64, 4)
	if c.Rank() == comm.Root {
		s, err := t.rootSample(a, b, ga, gb)
		if err != nil {
			c.Abort(err)
			return sparse.ProductSample{}, err
		}
		buf[0], buf[1], buf[2], buf[3] = s.Flops, s.OutNnz, s.ANnz, s.BNnz
	}
	if err := c.AllreduceInt64(comm.OpSum, buf); err != nil {
		return sparse.ProductSample{}, err
	}

	return sparse.ProductSample{Flops: buf[0], OutNnz: buf[1], ANnz: buf[2], BNnz: buf[3]}, nil
}

func (t *Tuner) rootSample(a, b *distmat.Matrix, ga, gb []sparse.Triple) (sparse.ProductSample, error) {
	ta, err := sparse.NewTile(ga, a.Rows, a.Cols, false)
	if err != nil {
		return sparse.ProductSample{}, errors.Wrap(err, "autotune: A")
	}
	tb, err := sparse.NewTile(gb, b.Rows, b.Cols, false)
	if err != nil {
		return sparse.ProductSample{}, errors.Wrap(err, "autotune: B")
	}
	cols, err := sparse.SampleColumns(b.Cols, t.opts.sampleCols, sparse.WithSeed(t.opts.seed))
	if err != nil {
		return sparse.ProductSample{}, errors.Wrap(err, "autotune: sample")
	}

	return sparse.SymbolicProduct(ta, tb, cols)
}

// Score predicts cfg for p.
func (t *Tuner) Score(p costmodel.Problem, cfg grid.Config) (Scored, error) {
	est, err := t.est.EstimateTime(p, cfg)
	if err != nil {
		return Scored{}, err
	}
	return Scored{Config: cfg, Estimate: est}, nil
}

// TuneAnalytical scores every candidate grid for a·b under nodeBudget and
// returns the cheapest. Collective over c; every rank returns the same
// Result.
//
// Complexity: one gather of both operands to the root, O(nnz) there, plus
// O(√(nodeBudget·ppn)) estimator calls on every rank.
func (t *Tuner) TuneAnalytical(c comm.Communicator, a, b *distmat.Matrix, nodeBudget int) (Result, error) {
	cands, err := t.Candidates(nodeBudget, c.Size())
	if err != nil {
		return Result{}, err
	}
	def, err := DefaultConfig(c.Size(), t.ppn)
	if err != nil {
		return Result{}, err
	}

	p, err := t.Problem(c, a, b)
	if err != nil {
		return Result{}, err
	}

	res := Result{Problem: p, Candidates: make([]Scored, 0, len(cands))}
	for _, cfg := range cands {
		s, err := t.Score(p, cfg)
		if err != nil {
			return Result{}, err
		}
		res.Candidates = append(res.Candidates, s)
	}
	if res.Default, err = t.Score(p, def); err != nil {
		return Result{}, err
	}
	res.Best = lo.MinBy(res.Candidates, cheaper)

	t.report(comm.RootOnly(t.opts.log, c), res)
	return res, nil
}

// cheaper orders by predicted time, then by process count.
func cheaper(x, y Scored) bool {
	if x.Total() != y.Total() {
		return x.Total() < y.Total()
	}
	return x.Config.Procs < y.Config.Procs
}

func (t *Tuner) report(log logrus.FieldLogger, res Result) {
	log.WithFields(logrus.Fields{
		"estimator": t.est.Name(),
		"nnzA":      res.Problem.A.Nnz,
		"nnzB":      res.Problem.B.Nnz,
		"sampleOut": res.Problem.Sample.OutNnz,
	}).Info("autotune: problem")
	for _, s := range res.Candidates {
		log.Infof("%s -> %s", s.Config, s.Estimate)
	}
	log.WithFields(logrus.Fields{
		"best":    res.Best.Config.String(),
		"default": res.Default.Config.String(),
	}).Info("autotune: selected")
}
