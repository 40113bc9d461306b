package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"ur/config"
	"ur/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestRunHorizonSweep(t *testing.T) {
	cfg := config.Default()
	writer, err := metrics.NewWriter(t.TempDir())
	require.NoError(t, err)

	records, err := RunHorizonSweep(cfg, []int{0, 1, 2}, writer)
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, 1, records[0].Nodes, "horizon 0 keeps only the root")
	require.Equal(t, 22, records[1].Nodes, "one pass plus 21 opening moves")
	require.Greater(t, records[2].Nodes, records[1].Nodes)
	for i, record := range records {
		require.Equal(t, i+1, record.ID)
		require.Equal(t, i, record.Horizon)
		require.Equal(t, "exhaustive", record.Mode)
	}

	f, err := os.Open(filepath.Join(writer.Dir(), "sweep.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per horizon")
	require.Equal(t, "22", rows[2][3])
}

func TestRunHorizonSweepInvalid(t *testing.T) {
	_, err := RunHorizonSweep(config.Default(), []int{1, -1}, nil)
	require.ErrorIs(t, err, config.ErrInvalid)

	cfg := config.Default()
	cfg.Mode = "bogus"
	_, err = RunHorizonSweep(cfg, DefaultHorizons, nil)
	require.ErrorIs(t, err, config.ErrInvalid)
}
