package game

// Player identifies a side. NoPlayer marks an empty square or an undecided game.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return NoPlayer
}

// slot maps a player to its index in per-player arrays.
func (p Player) slot() int {
	if p != Player1 && p != Player2 {
		panic("no slot for player")
	}
	return int(p) - 1
}

// Place is where a piece sits: Start, Finish or a square id.
type Place int

const (
	Start  Place = -1
	Finish Place = -2
)

func (pl Place) OnBoard() bool {
	return pl >= 0
}

// Evaluate scores the transition from prev to next from the perspective of
// the player who made it.
type Evaluate func(prev, next *GameState) float64

type StateHash uint64
