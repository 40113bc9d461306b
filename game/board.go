package game

import "github.com/samber/lo"

// Special marks squares with extra rules attached.
type Special int

const (
	Plain Special = iota
	Rosette
	SafeRosette
)

// Square is one board cell: who stands there and what kind of cell it is.
type Square struct {
	Occupant Player
	Special  Special
}

const (
	NumSquares = 20
	PathLength = 14

	// First and last square id of the lane both players share.
	SharedLaneFirst = 6
	SharedLaneLast  = 13

	// SafeSquare is the middle rosette of the shared lane.
	SafeSquare = 9
)

// Board is the static geometry: square kinds and each player's route.
type Board struct {
	Specials []Special
	Paths    [2][]int
}

// CreateBoard builds the standard board. When safe is set the middle
// rosette is tagged SafeRosette.
func CreateBoard(safe bool) *Board {
	specials := make([]Special, NumSquares)
	for _, id := range []int{0, 4, 9, 14, 18} {
		specials[id] = Rosette
	}
	if safe {
		specials[SafeSquare] = SafeRosette
	}

	return &Board{
		Specials: specials,
		Paths: [2][]int{
			{3, 2, 1, 0, 6, 7, 8, 9, 10, 11, 12, 13, 5, 4},
			{17, 16, 15, 14, 6, 7, 8, 9, 10, 11, 12, 13, 19, 18},
		},
	}
}

// Path returns the route of the given player.
func (b *Board) Path(p Player) []int {
	return b.Paths[p.slot()]
}

// PathIndex returns the position of the place on the player's path.
// Start is -1 as well as any square the path never touches; use OnPath to
// tell the two apart.
func (b *Board) PathIndex(p Player, place Place) int {
	if place == Finish {
		return PathLength
	}
	if place == Start {
		return -1
	}
	return lo.IndexOf(b.Path(p), int(place))
}

// OnPath reports whether the square belongs to the player's route.
func (b *Board) OnPath(p Player, square int) bool {
	return lo.Contains(b.Path(p), square)
}

// SquareAt resolves a path index to a square id.
func (b *Board) SquareAt(p Player, index int) int {
	return b.Path(p)[index]
}

func (b *Board) IsRosette(square int) bool {
	return b.Specials[square] != Plain
}

// IsShared reports whether the square is in the middle lane.
func IsShared(square int) bool {
	return square >= SharedLaneFirst && square <= SharedLaneLast
}
