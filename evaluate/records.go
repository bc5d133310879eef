// SPDX-License-Identifier: MIT

package evaluate

import (
	"encoding/csv"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Header is the CSV header written by WriteRecords and expected by
// ReadRecords.
var Header = []string{"problem", "nodes", "ppn", "seconds"}

// Record is one runtime (predicted or measured) of a problem on a config.
type Record struct {
	Problem    string
	Nodes, PPN int
	Seconds    float64
}

type key struct {
	problem    string
	nodes, ppn int
}

func (r Record) key() key { return key{r.Problem, r.Nodes, r.PPN} }

// ReadRecords parses CSV with Header as its first row.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "evaluate: header")
	}
	if !slices.Equal(lo.Map(head, func(h string, _ int) string { return strings.ToLower(h) }), Header) {
		return nil, errors.Wrapf(ErrBadRecord, "header %v, want %v", head, Header)
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "evaluate: line %d", line)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		out = append(out, rec)
	}
}

func parseRow(row []string) (Record, error) {
	nodes, err1 := strconv.Atoi(row[1])
	ppn, err2 := strconv.Atoi(row[2])
	secs, err3 := strconv.ParseFloat(row[3], 64)
	if err1 != nil || err2 != nil || err3 != nil || row[0] == "" {
		return Record{}, errors.Wrapf(ErrBadRecord, "%v", row)
	}
	return Record{Problem: row[0], Nodes: nodes, PPN: ppn, Seconds: secs}, nil
}

// WriteRecords writes Header followed by recs.
func WriteRecords(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{
			r.Problem,
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.PPN),
			strconv.FormatFloat(r.Seconds, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Join pairs predicted and measured records on (problem, nodes, ppn).
// Configs present on only one side are dropped. Points are ordered by
// process count.
func Join(predicted, measured []Record) map[string][]Point {
	meas := lo.SliceToMap(measured, func(r Record) (key, float64) { return r.key(), r.Seconds })

	out := make(map[string][]Point)
	for _, p := range predicted {
		m, ok := meas[p.key()]
		if !ok {
			continue
		}
		out[p.Problem] = append(out[p.Problem], Point{Nodes: p.Nodes, PPN: p.PPN, Predicted: p.Seconds, Measured: m})
	}
	for _, pts := range out {
		slices.SortFunc(pts, func(x, y Point) int { return x.Nodes*x.PPN - y.Nodes*y.PPN })
	}
	return out
}

// EvaluateAll runs Evaluate per joined problem, in problem-name order.
// Problems with fewer than two joined points are skipped.
func EvaluateAll(predicted, measured []Record) ([]Result, error) {
	joined := Join(predicted, measured)
	names := lo.Keys(joined)
	slices.Sort(names)

	var out []Result
	for _, name := range names {
		if len(joined[name]) < 2 {
			continue
		}
		r, err := Evaluate(name, joined[name])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
