package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Move selects a piece and the dice face it moves by. Dice 0 is a pass and
// ignores the piece.
type Move struct {
	Piece int
	Dice  int
}

var Pass = Move{}

const MaxDice = 4

func (m Move) IsPass() bool {
	return m.Dice == 0
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("piece %d by %d", m.Piece, m.Dice)
}

var ErrBadMoveSyntax = errors.New("bad move syntax")

// ParseMove reads "pass" or "piece:dice".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if s == "pass" {
		return Pass, nil
	}
	pieceStr, diceStr, ok := strings.Cut(s, ":")
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMoveSyntax, s)
	}
	piece, err := strconv.Atoi(pieceStr)
	if err != nil {
		return Move{}, fmt.Errorf("%w: piece in %q", ErrBadMoveSyntax, s)
	}
	dice, err := strconv.Atoi(diceStr)
	if err != nil {
		return Move{}, fmt.Errorf("%w: dice in %q", ErrBadMoveSyntax, s)
	}
	return Move{Piece: piece, Dice: dice}, nil
}

// ParseMoves reads a comma separated list of moves.
func ParseMoves(s string) ([]Move, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	moves := []Move{}
	for _, field := range strings.Split(s, ",") {
		move, err := ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// ErrIllegalMove is wrapped by every rule rejection. Illegal moves are an
// ordinary outcome of move generation.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrNoSuchPiece   = fmt.Errorf("%w: no such piece", ErrIllegalMove)
	ErrBadDice       = fmt.Errorf("%w: dice out of range", ErrIllegalMove)
	ErrPieceFinished = fmt.Errorf("%w: piece already finished", ErrIllegalMove)
	ErrOvershoot     = fmt.Errorf("%w: piece must finish exactly", ErrIllegalMove)
	ErrSelfBlock     = fmt.Errorf("%w: square occupied by own piece", ErrIllegalMove)
	ErrSafeRosette   = fmt.Errorf("%w: opponent is safe on rosette", ErrIllegalMove)
	ErrGameOver      = fmt.Errorf("%w: game is over", ErrIllegalMove)
)

// Successor pairs a legal move with the position it produces.
type Successor struct {
	Move  Move
	State *GameState
}
