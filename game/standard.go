package game

// StandardRules follows the Finkel rule set: five pieces, the middle rosette
// protects its occupant.
type StandardRules struct {
	Board            *Board
	Pieces           int
	SafeRosette      bool
	SafeRosetteBonus bool
}

func NewStandardRules(board *Board) *StandardRules {
	return &StandardRules{
		Board:            board,
		Pieces:           5,
		SafeRosette:      true,
		SafeRosetteBonus: true,
	}
}

func (sr *StandardRules) PiecesPerPlayer() int {
	return sr.Pieces
}

func (sr *StandardRules) IsSafe(square int) bool {
	return sr.SafeRosette && sr.Board.Specials[square] == SafeRosette
}

func (sr *StandardRules) GrantsBonus(square int) bool {
	switch sr.Board.Specials[square] {
	case Rosette:
		return true
	case SafeRosette:
		return sr.SafeRosetteBonus
	}
	return false
}
