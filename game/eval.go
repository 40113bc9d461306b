package game

// Weights tune the heuristic. The defaults favour finishing and executed
// captures far above everything else.
type Weights struct {
	Finish             float64 `yaml:"finish"`
	Start              float64 `yaml:"start"`
	RosetteMultiplier  float64 `yaml:"rosette_multiplier"`
	CaptureOpportunity float64 `yaml:"capture_opportunity"`
	Threat             float64 `yaml:"threat"`
	RealizedCapture    float64 `yaml:"realized_capture"`
	Window             int     `yaml:"window"`
}

func DefaultWeights() Weights {
	return Weights{
		Finish:             100,
		Start:              -5,
		RosetteMultiplier:  1.5,
		CaptureOpportunity: 10,
		Threat:             -1.5,
		RealizedCapture:    100,
		Window:             MaxDice,
	}
}

// Relative worth of a rosette. The shared one in the middle lane is the
// most contested.
const (
	sharedRosetteValue  = 1.0
	privateRosetteValue = 0.5
)

// Evaluator scores positions with fixed per-path-index tables.
type Evaluator struct {
	board   *Board
	rules   Rules
	weights Weights
	rosette [2][]float64
}

func NewEvaluator(board *Board, rules Rules, weights Weights) *Evaluator {
	e := &Evaluator{
		board:   board,
		rules:   rules,
		weights: weights,
	}
	for _, p := range []Player{Player1, Player2} {
		e.rosette[p.slot()] = rosetteTable(board.Path(p), board, weights)
	}
	return e
}

// rosetteTable gives each path index a bonus for standing on a rosette or for
// being able to reach the nearest one ahead, weighted by the probability of
// throwing that distance.
func rosetteTable(path []int, board *Board, w Weights) []float64 {
	table := make([]float64, len(path))
	for i := range path {
		for d := 0; d <= w.Window && i+d < len(path); d++ {
			square := path[i+d]
			if !board.IsRosette(square) {
				continue
			}
			value := privateRosetteValue
			if IsShared(square) {
				value = sharedRosetteValue
			}
			reach := 1.0
			if d > 0 {
				reach = DiceProbability(d)
			}
			table[i] = reach * value * w.RosetteMultiplier
			break
		}
	}
	return table
}

// RosetteBonus exposes the proximity table entry for a path index.
func (e *Evaluator) RosetteBonus(p Player, index int) float64 {
	return e.rosette[p.slot()][index]
}

// Position sums the per-piece terms for the player.
func (e *Evaluator) Position(s *GameState, p Player) float64 {
	w := e.weights
	opponent := p.Opponent()
	path := e.board.Path(p)
	opponentPath := e.board.Path(opponent)

	total := 0.0
	for _, place := range s.PiecesOf(p) {
		switch place {
		case Start:
			total += w.Start
			continue
		case Finish:
			total += w.Finish
			continue
		}

		index := e.board.PathIndex(p, place)
		total += float64(index+1) + e.rosette[p.slot()][index]

		// Opponent pieces this piece could hit next throw
		for d := 1; d <= w.Window && index+d < len(path); d++ {
			square := path[index+d]
			if s.Squares[square].Occupant == opponent && !e.rules.IsSafe(square) {
				total += w.CaptureOpportunity
			}
		}

		// Opponent pieces that could hit this one
		square := int(place)
		if !IsShared(square) || e.rules.IsSafe(square) {
			continue
		}
		opponentIndex := e.board.PathIndex(opponent, place)
		for d := 1; d <= w.Window && opponentIndex-d >= 0; d++ {
			if s.Squares[opponentPath[opponentIndex-d]].Occupant == opponent {
				total += w.Threat
			}
		}
	}
	return total
}

// Transition scores next for the player who produced it, adding a bonus
// when the move sent an opponent piece back to the start.
func (e *Evaluator) Transition(prev, next *GameState) float64 {
	mover := next.Mover()
	total := e.Position(next, mover)

	opponent := mover.Opponent()
	if next.CountAt(opponent, Start) > prev.CountAt(opponent, Start) {
		total += e.weights.RealizedCapture
	}
	return total
}
