package experiments

import (
	"fmt"
	"ur/config"
	"ur/experiments/metrics"
	"ur/searcher"

	"github.com/rs/zerolog/log"
)

// DefaultHorizons are explored by a sweep when none are given. Exhaustive
// trees grow roughly twentyfold per ply, so the list stops early.
var DefaultHorizons = []int{0, 1, 2, 3}

// RunHorizonSweep explores the configured start position once per horizon and
// records the tree statistics of each run. Records are written to writer when
// it is not nil.
func RunHorizonSweep(cfg *config.Config, horizons []int, writer *metrics.Writer) ([]metrics.SweepRecord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	records := []metrics.SweepRecord{}
	log.Info().Msgf("starting horizon sweep over %v...", horizons)

	for i, horizon := range horizons {
		if horizon < 0 {
			return nil, fmt.Errorf("%w: horizon must not be negative, got %d", config.ErrInvalid, horizon)
		}

		run := *cfg
		run.Horizon = horizon
		state := run.InitialState()
		options, err := run.ExplorerOptions(state, log.Logger)
		if err != nil {
			return nil, err
		}

		metric := searcher.NewExplorer(state, options...).Run()
		records = append(records, metrics.SweepRecord{ID: i + 1, ExploreMetric: metric})

		log.Info().Msgf("completed horizon %d: %d nodes in %v", horizon, metric.Nodes, metric.Duration)
	}

	log.Info().Msg("completed horizon sweep")

	if writer == nil {
		return records, nil
	}
	if err := writer.WriteSweep(records); err != nil {
		return nil, fmt.Errorf("failed to store sweep records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored sweep records")
	return records, nil
}
