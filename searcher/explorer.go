package searcher

import (
	"ur/experiments/metrics"
	"ur/game"

	"github.com/rs/zerolog"
)

// Phase is the explorer's position in its traversal state machine.
type Phase int

const (
	Expanding Phase = iota
	Descending
	Backtracking
	Done
)

func (p Phase) String() string {
	switch p {
	case Expanding:
		return "expanding"
	case Descending:
		return "descending"
	case Backtracking:
		return "backtracking"
	case Done:
		return "done"
	}
	return "unknown"
}

// Explorer builds the tree of positions reachable from a root up to a fixed
// horizon. The walk is depth first, driven one transition at a time through
// parent indices and per-node child cursors, so an outside loop can stop and
// resume it between any two steps.
type Explorer struct {
	store            *Store
	horizon          int
	mode             Mode
	dice             game.DiceSource
	evaluate         game.Evaluate
	dedupe           bool
	player1Minimizes bool
	logger           zerolog.Logger
	metrics          metrics.Collector

	phase   Phase
	current *Node
	depth   int
}

func NewExplorer(root *game.GameState, options ...Option) *Explorer {
	e := &Explorer{ // Default values
		store:    NewStore(),
		horizon:  DefaultHorizon,
		mode:     Exhaustive,
		evaluate: game.NewEvaluator(root.Board, root.Rules, game.DefaultWeights()).Transition,
		logger:   zerolog.Nop(),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	if e.dice == nil {
		e.dice = game.NewDice(0)
	}

	e.metrics.Start(e.horizon, e.mode.String())
	e.current = e.add(&Node{Parent: NoParent, State: root})
	e.phase = Expanding
	return e
}

func (e *Explorer) Store() *Store {
	return e.store
}

func (e *Explorer) Phase() Phase {
	return e.phase
}

// Current returns the node the state machine is working on and its depth.
func (e *Explorer) Current() (*Node, int) {
	return e.current, e.depth
}

func (e *Explorer) Done() bool {
	return e.phase == Done
}

// Step performs one transition and reports whether there is more to do.
func (e *Explorer) Step() bool {
	switch e.phase {
	case Expanding:
		e.expand()
	case Descending:
		e.descend()
	case Backtracking:
		e.backtrack()
	case Done:
		return false
	}
	return e.phase != Done
}

// Run steps until the whole tree has been explored.
func (e *Explorer) Run() metrics.ExploreMetric {
	for e.Step() {
	}
	metric := e.metrics.Complete()
	e.logger.Info().
		Int("nodes", e.store.Len()).
		Int("horizon", e.horizon).
		Stringer("mode", e.mode).
		Msg("exploration finished")
	return metric
}

func (e *Explorer) Metrics() metrics.ExploreMetric {
	return e.metrics.Complete()
}

func (e *Explorer) expand() {
	node := e.current
	e.phase = Descending

	if node.Terminal || e.depth >= e.horizon {
		return
	}

	e.logger.Debug().
		Int("step", e.depth).
		Int("node", node.Index).
		Str("state", node.State.String()).
		Msg("expanding")

	var successors []game.Successor
	attempts := len(node.State.PiecesOf(node.State.CurrentPlayer))
	switch e.mode {
	case Sampled:
		dice := e.dice.Draw()
		e.logger.Debug().Int("node", node.Index).Int("dice", dice).Msg("drew dice")
		successors = node.State.Successors(dice)
		if dice == 0 {
			attempts = 1
		}
	default:
		successors = node.State.ExpandAll()
		attempts = 1 + attempts*game.MaxDice
	}
	e.metrics.AddExpansion(attempts - len(successors))

	passThrough := false
	if len(successors) == 0 {
		// Nothing can move; the turn still changes hands
		successors = []game.Successor{{Move: game.Pass, State: node.State.PassTurn()}}
		passThrough = true
		e.metrics.AddPassThrough()
	}

	var siblings map[game.StateHash]struct{}
	if e.dedupe {
		siblings = make(map[game.StateHash]struct{}, len(successors))
	}
	for _, s := range successors {
		if siblings != nil {
			hash := s.State.Hash()
			if _, ok := siblings[hash]; ok {
				continue
			}
			siblings[hash] = struct{}{}
		}

		child := e.add(&Node{
			Parent:      node.Index,
			Depth:       e.depth + 1,
			Move:        s.Move,
			Eval:        e.evaluate(node.State, s.State),
			PassThrough: passThrough,
			State:       s.State,
		})

		e.logger.Debug().
			Int("step", e.depth).
			Int("node", child.Index).
			Stringer("move", child.Move).
			Float64("eval", child.Eval).
			Msg("simulated")
	}
}

// add stores a node and records it. Won positions are marked terminal so
// exploration continues around them without expanding below.
func (e *Explorer) add(node *Node) *Node {
	node.Minimizing = (node.State.CurrentPlayer == game.Player1) == e.player1Minimizes
	if winner := node.State.Winner(); winner != game.NoPlayer {
		node.Terminal = true
		e.metrics.AddTerminal()
		e.logger.Info().Int("winner", int(winner)).Int("depth", node.Depth).Msg("win reached")
	}
	e.store.Add(node)
	e.metrics.AddNode(node.Depth, node.Eval, node.State.Hash())
	return node
}

func (e *Explorer) descend() {
	if e.depth+1 >= e.horizon {
		e.phase = Backtracking
		return
	}

	child, ok := e.store.NextChild(e.current)
	if !ok {
		e.phase = Backtracking
		return
	}
	e.current = child
	e.depth++
	e.phase = Expanding
}

func (e *Explorer) backtrack() {
	parent, ok := e.store.Parent(e.current)
	if !ok {
		e.phase = Done
		return
	}

	if sibling, ok := e.store.NextChild(parent); ok {
		e.current = sibling
		e.phase = Expanding
		return
	}
	e.current = parent
	e.depth--
}
