package game

type Rules interface {
	PiecesPerPlayer() int
	// IsSafe reports whether a piece standing on the square cannot be captured.
	IsSafe(square int) bool
	// GrantsBonus reports whether landing on the square earns another throw.
	GrantsBonus(square int) bool
}
