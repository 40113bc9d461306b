package searcher

import (
	"fmt"
	"ur/experiments/metrics"
	"ur/game"

	"github.com/rs/zerolog"
)

const DefaultHorizon = 2

// Mode decides how many dice faces a node is expanded with.
type Mode int

const (
	Exhaustive Mode = iota // every face 0..4
	Sampled                // one face drawn from the dice source
)

func (m Mode) String() string {
	switch m {
	case Exhaustive:
		return "exhaustive"
	case Sampled:
		return "sampled"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "exhaustive", "":
		return Exhaustive, nil
	case "sampled":
		return Sampled, nil
	}
	return 0, fmt.Errorf("unknown exploration mode %q", s)
}

type Option func(e *Explorer)

func WithHorizon(horizon int) Option {
	return func(e *Explorer) {
		if horizon >= 0 {
			e.horizon = horizon
		}
	}
}

func WithMode(mode Mode) Option {
	return func(e *Explorer) {
		e.mode = mode
	}
}

func WithDice(dice game.DiceSource) Option {
	return func(e *Explorer) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(e *Explorer) {
		if evaluate != nil {
			e.evaluate = evaluate
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Explorer) {
		e.logger = logger
	}
}

func WithMetrics() Option {
	return func(e *Explorer) {
		e.metrics = metrics.NewCollector()
	}
}

// WithDedupe drops children whose position equals an earlier sibling's.
func WithDedupe() Option {
	return func(e *Explorer) {
		e.dedupe = true
	}
}

func WithPlayer1Minimizes(minimizes bool) Option {
	return func(e *Explorer) {
		e.player1Minimizes = minimizes
	}
}
