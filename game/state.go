package game

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"
)

// GameState is one position. Operations that change the position return a
// new copy; the receiver is left untouched.
type GameState struct {
	Board         *Board     // Static geometry, shared between copies
	Rules         Rules      // Rule variant, shared between copies
	Squares       []Square   // Occupancy, always derived from Pieces
	Scores        [2]int     // Finished pieces per player
	Pieces        [2][]Place // Placement per player, indexed by piece
	CurrentPlayer Player
	OtherPlayer   Player
	BonusThrow    bool   // CurrentPlayer throws again
	Won           Player // NoPlayer while the game is running
}

// NewGameState returns the opening position with every piece at the start
// and player 1 to move.
func NewGameState(board *Board, rules Rules) *GameState {
	squares := make([]Square, len(board.Specials))
	for id, special := range board.Specials {
		squares[id].Special = special
	}

	n := rules.PiecesPerPlayer()
	gs := &GameState{
		Board:         board,
		Rules:         rules,
		Squares:       squares,
		CurrentPlayer: Player1,
		OtherPlayer:   Player2,
	}
	// Separate slices per player; they must never alias.
	gs.Pieces[0] = lo.Times(n, func(int) Place { return Start })
	gs.Pieces[1] = lo.Times(n, func(int) Place { return Start })
	return gs
}

func (gs *GameState) Copy() *GameState {
	squaresCopy := make([]Square, len(gs.Squares))
	copy(squaresCopy, gs.Squares)

	var piecesCopy [2][]Place
	for i, pieces := range gs.Pieces {
		piecesCopy[i] = make([]Place, len(pieces))
		copy(piecesCopy[i], pieces)
	}

	return &GameState{
		Board:         gs.Board,
		Rules:         gs.Rules,
		Squares:       squaresCopy,
		Scores:        gs.Scores,
		Pieces:        piecesCopy,
		CurrentPlayer: gs.CurrentPlayer,
		OtherPlayer:   gs.OtherPlayer,
		BonusThrow:    gs.BonusThrow,
		Won:           gs.Won,
	}
}

func (gs *GameState) Score(p Player) int {
	return gs.Scores[p.slot()]
}

func (gs *GameState) PiecesOf(p Player) []Place {
	return gs.Pieces[p.slot()]
}

// CountAt counts the player's pieces at the given place.
func (gs *GameState) CountAt(p Player, place Place) int {
	return lo.Count(gs.PiecesOf(p), place)
}

func (gs *GameState) Winner() Player {
	return gs.Won
}

func (gs *GameState) SwapPlayer() {
	gs.CurrentPlayer, gs.OtherPlayer = gs.OtherPlayer, gs.CurrentPlayer
}

// Mover returns the player who made the move that produced this state.
func (gs *GameState) Mover() Player {
	if gs.BonusThrow {
		return gs.CurrentPlayer
	}
	return gs.OtherPlayer
}

// Put relocates a piece directly, keeping squares and scores in sync. It
// performs no rule checks and is meant for setting up positions.
func (gs *GameState) Put(p Player, piece int, to Place) {
	gs.movePiece(p, piece, to)
}

func (gs *GameState) movePiece(p Player, piece int, to Place) {
	slot := p.slot()
	from := gs.Pieces[slot][piece]
	if from.OnBoard() {
		gs.Squares[from].Occupant = NoPlayer
	}
	if from == Finish {
		gs.Scores[slot]--
	}
	if to.OnBoard() {
		gs.Squares[to].Occupant = p
	}
	if to == Finish {
		gs.Scores[slot]++
	}
	gs.Pieces[slot][piece] = to
}

// Play applies the move for the current player. Illegal moves return an
// error wrapping ErrIllegalMove and no state.
func (gs *GameState) Play(move Move) (*GameState, error) {
	if gs.Won != NoPlayer {
		return nil, ErrGameOver
	}
	if move.Dice < 0 || move.Dice > MaxDice {
		return nil, ErrBadDice
	}

	if move.IsPass() {
		return gs.PassTurn(), nil
	}

	player := gs.CurrentPlayer
	opponent := gs.OtherPlayer
	pieces := gs.PiecesOf(player)
	if move.Piece < 0 || move.Piece >= len(pieces) {
		return nil, ErrNoSuchPiece
	}

	from := pieces[move.Piece]
	if from == Finish {
		return nil, ErrPieceFinished
	}

	target := gs.Board.PathIndex(player, from) + move.Dice
	if target > PathLength {
		return nil, ErrOvershoot
	}

	newGs := gs.Copy()
	newGs.BonusThrow = false

	if target == PathLength {
		newGs.movePiece(player, move.Piece, Finish)
		if newGs.Score(player) == gs.Rules.PiecesPerPlayer() {
			newGs.Won = player
		}
		newGs.SwapPlayer()
		return newGs, nil
	}

	square := gs.Board.SquareAt(player, target)
	if lo.Contains(pieces, Place(square)) {
		return nil, ErrSelfBlock
	}

	if victim := lo.IndexOf(gs.PiecesOf(opponent), Place(square)); victim >= 0 {
		if gs.Rules.IsSafe(square) {
			return nil, ErrSafeRosette
		}
		newGs.movePiece(opponent, victim, Start)
	}
	newGs.movePiece(player, move.Piece, Place(square))

	if gs.Rules.GrantsBonus(square) {
		newGs.BonusThrow = true
	} else {
		newGs.SwapPlayer()
	}
	return newGs, nil
}

// PassTurn returns a copy where the turn goes to the opponent without any
// piece moving.
func (gs *GameState) PassTurn() *GameState {
	newGs := gs.Copy()
	newGs.BonusThrow = false
	newGs.SwapPlayer()
	return newGs
}

// Successors lists every legal move for a single dice face in piece order.
// A zero throw has exactly one successor, the pass.
func (gs *GameState) Successors(dice int) []Successor {
	if gs.Won != NoPlayer {
		return nil
	}
	if dice == 0 {
		return []Successor{{Move: Pass, State: gs.PassTurn()}}
	}

	var successors []Successor
	for piece := range gs.PiecesOf(gs.CurrentPlayer) {
		move := Move{Piece: piece, Dice: dice}
		if next, err := gs.Play(move); err == nil {
			successors = append(successors, Successor{Move: move, State: next})
		}
	}
	return successors
}

// ExpandAll enumerates every dice face for every piece: pieces in placement
// order, faces ascending. The pass appears once, ahead of the first piece.
func (gs *GameState) ExpandAll() []Successor {
	if gs.Won != NoPlayer {
		return nil
	}

	successors := []Successor{{Move: Pass, State: gs.PassTurn()}}
	for piece := range gs.PiecesOf(gs.CurrentPlayer) {
		for dice := 1; dice <= MaxDice; dice++ {
			move := Move{Piece: piece, Dice: dice}
			if next, err := gs.Play(move); err == nil {
				successors = append(successors, Successor{Move: move, State: next})
			}
		}
	}
	return successors
}

// Validate recomputes occupancy from the placements and reports any drift.
func (gs *GameState) Validate() error {
	occupancy := make([]Player, len(gs.Squares))
	for _, p := range []Player{Player1, Player2} {
		for piece, place := range gs.PiecesOf(p) {
			if !place.OnBoard() {
				if place != Start && place != Finish {
					return fmt.Errorf("player %d piece %d has invalid place %d", p, piece, place)
				}
				continue
			}
			if int(place) >= len(occupancy) || !gs.Board.OnPath(p, int(place)) {
				return fmt.Errorf("player %d piece %d is off its path at square %d", p, piece, place)
			}
			if occupancy[place] != NoPlayer {
				return fmt.Errorf("square %d holds more than one piece", place)
			}
			occupancy[place] = p
		}
		if finished := gs.CountAt(p, Finish); finished != gs.Score(p) {
			return fmt.Errorf("player %d score %d does not match %d finished pieces", p, gs.Score(p), finished)
		}
	}

	for id, square := range gs.Squares {
		if square.Occupant != occupancy[id] {
			return fmt.Errorf("square %d shows %d but placements say %d", id, square.Occupant, occupancy[id])
		}
		if square.Special != gs.Board.Specials[id] {
			return fmt.Errorf("square %d has special %d, board says %d", id, square.Special, gs.Board.Specials[id])
		}
	}
	return nil
}

// Hash identifies the position. Pieces are interchangeable, so only
// occupancy and scores count, not which piece stands where.
func (gs *GameState) Hash() StateHash {
	hasher := xxhash.New()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, gs.BonusThrow)
	binary.Write(hasher, binary.LittleEndian, int64(gs.Scores[0]))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Scores[1]))

	for _, square := range gs.Squares {
		binary.Write(hasher, binary.LittleEndian, int64(square.Occupant))
	}

	return StateHash(hasher.Sum64())
}

func (gs *GameState) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "current player: %d - other player: %d\n", gs.CurrentPlayer, gs.OtherPlayer)
	fmt.Fprintf(&b, "bonus throw: %t\n", gs.BonusThrow)
	b.WriteString("board: ")
	for _, square := range gs.Squares {
		switch {
		case square.Occupant != NoPlayer:
			fmt.Fprintf(&b, "%d", square.Occupant)
		case square.Special == SafeRosette:
			b.WriteString("#")
		case square.Special == Rosette:
			b.WriteString("*")
		default:
			b.WriteString(".")
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "pieces 1: %v - pieces 2: %v\n", gs.Pieces[0], gs.Pieces[1])
	fmt.Fprintf(&b, "score 1: %d - score 2: %d\n", gs.Scores[0], gs.Scores[1])
	return b.String()
}
