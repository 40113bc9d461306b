package gamemaster

import (
	"testing"
	"ur/game"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newState(pieces int) *game.GameState {
	board := game.CreateBoard(true)
	rules := game.NewStandardRules(board)
	rules.Pieces = pieces
	return game.NewGameState(board, rules)
}

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine(zerolog.Nop())
	start := newState(5)
	state, getUpdate := engine.Init(start)

	require.Equal(t, start, state, "initial state should match the given position")
	require.NotSame(t, start, state, "engine should hand out copies")

	move, next := getUpdate()
	require.Nil(t, next, "no update before the first move")
	require.Equal(t, game.Move{}, move)
}

func TestLocalEnginePlay(t *testing.T) {
	t.Run("valid move", func(t *testing.T) {
		engine := NewLocalEngine(zerolog.Nop())
		_, getUpdate := engine.Init(newState(5))

		require.NoError(t, engine.Play(game.Move{Piece: 0, Dice: 2}))

		move, next := getUpdate()
		require.Equal(t, game.Move{Piece: 0, Dice: 2}, move)
		require.NotNil(t, next)
		require.Equal(t, game.Place(2), next.PiecesOf(game.Player1)[0])
		require.Equal(t, game.Player2, next.CurrentPlayer)
		require.Equal(t, next, engine.State())

		_, next = getUpdate()
		require.Nil(t, next, "updates are consumed once")
	})

	t.Run("illegal move", func(t *testing.T) {
		engine := NewLocalEngine(zerolog.Nop())
		state, getUpdate := engine.Init(newState(5))

		require.NoError(t, engine.Play(game.Move{Piece: 0, Dice: 1}))
		require.NoError(t, engine.Play(game.Pass))
		err := engine.Play(game.Move{Piece: 1, Dice: 1})
		require.ErrorIs(t, err, game.ErrSelfBlock)
		require.ErrorIs(t, err, game.ErrIllegalMove)

		getUpdate()
		getUpdate()
		_, next := getUpdate()
		require.Nil(t, next, "rejected moves publish nothing")
		require.Equal(t, game.Player1, engine.State().CurrentPlayer)
		require.NotEqual(t, state, engine.State())
	})

	t.Run("not started", func(t *testing.T) {
		engine := NewLocalEngine(zerolog.Nop())
		require.ErrorIs(t, engine.Play(game.Pass), ErrNotStarted)
		require.Nil(t, engine.State())
	})
}

func TestLocalEngineGameOver(t *testing.T) {
	engine := NewLocalEngine(zerolog.Nop())
	start := newState(1)
	start.Put(game.Player1, 0, 4)
	_, getUpdate := engine.Init(start)

	require.NoError(t, engine.Play(game.Move{Piece: 0, Dice: 1}))

	_, final := getUpdate()
	require.NotNil(t, final, "expected a final update")
	require.Equal(t, game.Player1, final.Winner())

	require.ErrorIs(t, engine.Play(game.Pass), ErrGameOver)
	_, next := getUpdate()
	require.Nil(t, next)
}

func TestReplay(t *testing.T) {
	engine := NewLocalEngine(zerolog.Nop())
	start := newState(5)

	state, err := Replay(engine, start, []game.Move{{Piece: 0, Dice: 4}, {Piece: 0, Dice: 1}})
	require.NoError(t, err)
	// The first throw lands on a rosette, so player 1 throws again.
	require.Equal(t, game.Place(6), state.PiecesOf(game.Player1)[0])
	require.Equal(t, game.Player2, state.CurrentPlayer)
	require.NoError(t, state.Validate())
	require.Equal(t, game.Place(game.Start), start.PiecesOf(game.Player1)[0], "input is not modified")

	_, err = Replay(engine, start, []game.Move{{Piece: 0, Dice: 2}, {Piece: 9, Dice: 1}})
	require.ErrorIs(t, err, game.ErrNoSuchPiece)
}
