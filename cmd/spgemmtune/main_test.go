// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestTune_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "run.yaml", `
a: {rows: 60, cols: 50, density: 0.1, seed: 3}
b: {rows: 50, cols: 70, density: 0.1, seed: 4}
node_budget: 2
ppn: 2
world_size: 5
sample_cols: 8
`)
	pred := filepath.Join(dir, "pred.csv")

	out, err := execute(t, "tune", "--config", cfg, "--predictions", pred, "--problem", "small", "--log-level", "debug")
	require.NoError(t, err)
	require.Contains(t, out, "<- best")
	require.Contains(t, out, "default: 2,2 (2x2)")
	require.Contains(t, out, "timings:")

	raw, err := os.ReadFile(pred)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Equal(t, "problem,nodes,ppn,seconds", lines[0])
	require.Len(t, lines, 3) // sides 1 and 2
	require.True(t, strings.HasPrefix(lines[1], "small,1,2,"))
}

func TestTune_Permuted(t *testing.T) {
	cfg := writeFile(t, t.TempDir(), "run.yaml", `
a: {rows: 40, cols: 40, density: 0.05}
b: {rows: 40, cols: 40, density: 0.05}
permute: true
permute_seed: 11
node_budget: 9
ppn: 1
world_size: 9
`)
	out, err := execute(t, "tune", "-c", cfg)
	require.NoError(t, err)
	require.Contains(t, out, "3x3")
}

func TestTune_BadInputs(t *testing.T) {
	_, err := execute(t, "tune", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = execute(t, "tune", "--log-level", "loud")
	require.Error(t, err)

	_, err = execute(t, "tune", "extra")
	require.Error(t, err)
}

func TestEvaluate_Command(t *testing.T) {
	dir := t.TempDir()
	pred := writeFile(t, dir, "pred.csv", "problem,nodes,ppn,seconds\nm,1,4,0.1\nm,4,4,0.2\nm,9,4,0.3\n")
	meas := writeFile(t, dir, "meas.csv", "problem,nodes,ppn,seconds\nm,1,4,1.0\nm,4,4,2.0\nm,9,4,3.0\n")

	out, err := execute(t, "evaluate", pred, meas)
	require.NoError(t, err)
	require.Contains(t, out, "m: kt=1.0000")
	require.Contains(t, out, "top 1: correct 1/1")

	_, err = execute(t, "evaluate", pred)
	require.Error(t, err)

	empty := writeFile(t, dir, "empty.csv", "problem,nodes,ppn,seconds\n")
	_, err = execute(t, "evaluate", pred, empty)
	require.Error(t, err)
}
