package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spgemmtune/grid"
)

func TestNewConfig(t *testing.T) {
	cfg, err := grid.NewConfig(4, 8)
	require.NoError(t, err)
	require.Equal(t, 16, cfg.Procs)
	require.Equal(t, 2, cfg.Nodes)

	cfg, err = grid.NewConfig(3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Nodes) // 9 procs over 4 per node

	_, err = grid.NewConfig(0, 4)
	require.ErrorIs(t, err, grid.ErrBadSide)
	_, err = grid.NewConfig(2, 0)
	require.ErrorIs(t, err, grid.ErrBadPPN)
}

func TestConfig_Validate(t *testing.T) {
	good, err := grid.NewConfig(3, 4)
	require.NoError(t, err)
	require.NoError(t, good.Validate())

	tests := []struct {
		name string
		cfg  grid.Config
		want error
	}{
		{"zero", grid.Config{}, grid.ErrBadSide},
		{"side only", grid.Config{Side: 2}, grid.ErrBadPPN},
		{"procs", grid.Config{Side: 2, Procs: 3, PPN: 1, Nodes: 3}, grid.ErrBadConfig},
		{"nodes", grid.Config{Side: 2, Procs: 4, PPN: 2, Nodes: 1}, grid.ErrBadConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.cfg.Validate(), tc.want)
		})
	}
}

func TestProcGrid_Coordinates(t *testing.T) {
	g, err := grid.NewProcGrid(3, 5)
	require.NoError(t, err)
	require.True(t, g.Participates())
	require.Equal(t, 9, g.Size())
	require.Equal(t, 1, g.RowRank())
	require.Equal(t, 2, g.ColRank())
	require.Equal(t, 5, g.RankOf(1, 2))

	_, err = grid.NewProcGrid(3, 9)
	require.ErrorIs(t, err, grid.ErrRankOutOfRange)
}

func TestProcGrid_NilIsNonParticipant(t *testing.T) {
	var g *grid.ProcGrid
	require.False(t, g.Participates())
	require.Equal(t, 0, g.Size())
	require.Equal(t, 0, g.Side())
	require.Equal(t, -1, g.Rank())
	require.Equal(t, -1, g.RowRank())
	require.Equal(t, -1, g.ColRank())
	require.Equal(t, "grid(none)", g.String())
}
