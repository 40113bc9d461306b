package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEvaluator(state *GameState) *Evaluator {
	return NewEvaluator(state.Board, state.Rules, DefaultWeights())
}

func TestRosetteTable(t *testing.T) {
	state := newTestState()
	e := newTestEvaluator(state)

	require.Equal(t, 1.5, e.RosetteBonus(Player1, 7), "Middle rosette should be worth the most")
	require.Equal(t, 0.75, e.RosetteBonus(Player1, 3))
	require.Equal(t, 0.75, e.RosetteBonus(Player2, 13))
	require.Equal(t, DiceProbability(1)*1.5, e.RosetteBonus(Player1, 6))
	require.Equal(t, DiceProbability(2)*1.5, e.RosetteBonus(Player1, 5))
	require.Equal(t, 0.0, e.RosetteBonus(Player1, 8), "Next rosette is out of reach")
	require.Equal(t, DiceProbability(4)*0.75, e.RosetteBonus(Player1, 9))
}

func TestPosition(t *testing.T) {
	t.Run("opening", func(t *testing.T) {
		state := newTestState()
		e := newTestEvaluator(state)

		require.Equal(t, -25.0, e.Position(state, Player1))
		require.Equal(t, -25.0, e.Position(state, Player2))
	})

	t.Run("progress increases along the path", func(t *testing.T) {
		state := newTestState()
		e := newTestEvaluator(state)

		previous := e.Position(state, Player1)
		for _, square := range state.Board.Path(Player1) {
			state.Put(Player1, 0, Place(square))
			score := e.Position(state, Player1)
			require.Greater(t, score, previous-2, "Square %d should not fall behind by more than a rosette bonus", square)
			previous = score
		}
		state.Put(Player1, 0, Finish)
		require.Equal(t, 80.0, e.Position(state, Player1))
	})

	t.Run("threats and opportunities", func(t *testing.T) {
		state := newTestState()
		state.Put(Player1, 0, 8)
		state.Put(Player2, 0, 6)
		e := newTestEvaluator(state)

		require.Equal(t, -20+7+e.RosetteBonus(Player1, 6)-1.5, e.Position(state, Player1), "Piece on 8 is threatened from 6")
		require.Equal(t, -20+5+DiceProbability(3)*1.5+10, e.Position(state, Player2), "Piece on 6 can hit 8")
	})

	t.Run("protected pieces are neither targets nor threatened", func(t *testing.T) {
		state := newTestState()
		state.Put(Player1, 0, 8)
		state.Put(Player2, 0, 9)
		state.Put(Player1, 1, 6)
		e := newTestEvaluator(state)

		require.Equal(t, -15+7+e.RosetteBonus(Player1, 6)+5+e.RosetteBonus(Player1, 4), e.Position(state, Player1))
		require.Equal(t, -20+8+1.5, e.Position(state, Player2))
	})
}

func TestTransition(t *testing.T) {
	t.Run("executed capture earns a bonus", func(t *testing.T) {
		state := newTestState()
		state.Put(Player1, 0, 7)
		state.Put(Player2, 0, 8)
		e := newTestEvaluator(state)

		next, err := state.Play(Move{Piece: 0, Dice: 1})
		require.NoError(t, err)

		require.Equal(t, e.Position(next, Player1)+100, e.Transition(state, next))
	})

	t.Run("scored for the mover after a bonus throw", func(t *testing.T) {
		state := newTestState()
		state.Put(Player1, 0, 1)
		e := newTestEvaluator(state)

		next, err := state.Play(Move{Piece: 0, Dice: 1})
		require.NoError(t, err)
		require.True(t, next.BonusThrow)

		require.Equal(t, e.Position(next, Player1), e.Transition(state, next))
	})

	t.Run("scored for the mover after a pass", func(t *testing.T) {
		state := newTestState()
		state.Put(Player2, 0, 16)
		e := newTestEvaluator(state)

		next, err := state.Play(Pass)
		require.NoError(t, err)

		require.Equal(t, -25.0, e.Transition(state, next))
	})
}
