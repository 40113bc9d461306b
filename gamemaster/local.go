package gamemaster

import (
	"errors"
	"fmt"
	"ur/game"

	"github.com/rs/zerolog"
)

// UpdateGetter returns the next unread update. It returns a zero move and a
// nil state when nothing is pending.
type UpdateGetter func() (game.Move, *game.GameState)

type Engine interface {
	Init(state *game.GameState) (*game.GameState, UpdateGetter)
	Play(game.Move) error
	State() *game.GameState
}

var (
	ErrNotStarted = errors.New("game has not been initialized")
	ErrGameOver   = errors.New("game is over - no moves allowed")
)

type update struct {
	move  game.Move
	state *game.GameState
}

type localEngine struct {
	state    *game.GameState
	updates  []update
	gameOver bool
	logger   zerolog.Logger
}

func NewLocalEngine(logger zerolog.Logger) *localEngine {
	return &localEngine{logger: logger}
}

// Init starts a game from state. The engine keeps its own copy, so the caller
// may keep using state.
func (e *localEngine) Init(state *game.GameState) (*game.GameState, UpdateGetter) {
	e.state = state.Copy()
	e.updates = nil
	e.gameOver = e.state.Winner() != game.NoPlayer

	return e.state.Copy(), func() (game.Move, *game.GameState) {
		if len(e.updates) == 0 {
			return game.Move{}, nil
		}
		u := e.updates[0]
		e.updates = e.updates[1:]
		return u.move, u.state.Copy()
	}
}

// Play applies move for the player whose turn it is.
func (e *localEngine) Play(move game.Move) error {
	if e.state == nil {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrGameOver
	}

	next, err := e.state.Play(move)
	if err != nil {
		e.logger.Warn().Err(err).Stringer("move", move).Msg("rejected move")
		return fmt.Errorf("failed to play %v: %w", move, err)
	}

	e.logger.Debug().
		Stringer("move", move).
		Int("player", int(e.state.CurrentPlayer)).
		Bool("bonus", next.BonusThrow).
		Msg("played move")

	e.state = next
	e.updates = append(e.updates, update{move: move, state: next})

	if winner := next.Winner(); winner != game.NoPlayer {
		e.gameOver = true
		e.logger.Info().Int("winner", int(winner)).Msg("game over")
	}
	return nil
}

// State returns a copy of the live position.
func (e *localEngine) State() *game.GameState {
	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}

// Replay plays moves in order from state and returns the final position.
func Replay(engine Engine, state *game.GameState, moves []game.Move) (*game.GameState, error) {
	engine.Init(state)
	for i, move := range moves {
		if err := engine.Play(move); err != nil {
			return nil, fmt.Errorf("move %d: %w", i, err)
		}
	}
	return engine.State(), nil
}
