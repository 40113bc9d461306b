// Package viz renders explored trees in the DOT language.
package viz

import (
	"fmt"
	"os"
	"strconv"
	"ur/game"
	"ur/searcher"

	"github.com/awalterschulze/gographviz"
)

const graphName = "tree"

var moverColors = map[game.Player]string{
	game.Player1: "palegreen",
	game.Player2: "lightcoral",
}

// Graph renders every stored node and every parent to child edge.
func Graph(store *searcher.Store) (string, error) {
	return render(store, store.Nodes())
}

// PathGraph renders the nodes reached by following the given dice throws
// from the root: children of the root thrown with throws[0], their children
// thrown with throws[1], and so on.
func PathGraph(store *searcher.Store, throws []int) (string, error) {
	if store.Len() == 0 {
		return render(store, nil)
	}
	selected := []*searcher.Node{store.Root()}
	frontier := []*searcher.Node{store.Root()}
	for _, dice := range throws {
		next := []*searcher.Node{}
		for _, node := range frontier {
			for _, index := range node.Children {
				child := store.Get(index)
				if child.Move.Dice == dice {
					next = append(next, child)
				}
			}
		}
		selected = append(selected, next...)
		frontier = next
	}
	return render(store, selected)
}

func render(store *searcher.Store, nodes []*searcher.Node) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", err
	}
	if err := g.SetDir(true); err != nil {
		return "", err
	}

	included := make(map[int]bool, len(nodes))
	for _, node := range nodes {
		attrs := map[string]string{
			"label":     strconv.Quote(label(node)),
			"style":     "filled",
			"fillcolor": moverColors[mover(node)],
		}
		if node.Terminal {
			attrs["shape"] = "doublecircle"
		}
		if err := g.AddNode(graphName, nodeID(node.Index), attrs); err != nil {
			return "", fmt.Errorf("failed to add node %d: %w", node.Index, err)
		}
		included[node.Index] = true
	}

	for _, edge := range store.Edges() {
		if !included[edge[0]] || !included[edge[1]] {
			continue
		}
		if err := g.AddEdge(nodeID(edge[0]), nodeID(edge[1]), true, nil); err != nil {
			return "", fmt.Errorf("failed to add edge %d->%d: %w", edge[0], edge[1], err)
		}
	}

	return g.String(), nil
}

// Save writes a rendered graph to path.
func Save(path string, dot string) error {
	if err := os.WriteFile(path, []byte(dot), 0644); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	return nil
}

func nodeID(index int) string {
	return strconv.Itoa(index)
}

// The root is colored by the player about to move, every other node by the
// player who just moved into it.
func mover(node *searcher.Node) game.Player {
	if node.IsRoot() {
		return node.State.CurrentPlayer
	}
	return node.State.Mover()
}

func label(node *searcher.Node) string {
	if node.IsRoot() {
		return fmt.Sprintf("root\neval %.3g", node.Eval)
	}
	piece := strconv.Itoa(node.Move.Piece)
	if node.Move.IsPass() {
		piece = "-"
	}
	return fmt.Sprintf("eval %.3g\ndice %d\npiece %s", node.Eval, node.Move.Dice, piece)
}
