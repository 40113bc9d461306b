package searcher

import (
	"fmt"
	"ur/game"
)

// NoParent is the parent index of the root.
const NoParent = -1

// Node is a stored position plus its tree bookkeeping. Parent and Children
// hold store indices; nodes never point at each other directly.
type Node struct {
	Index       int
	Parent      int
	Children    []int
	Depth       int
	Move        game.Move // Move that produced the node, zero for the root
	Eval        float64
	Terminal    bool // Won position, never expanded
	PassThrough bool // Synthesized because no piece could move
	Minimizing  bool // Player to move picks the minimum in a backup
	State       *game.GameState
	cursor      int // Last visited child, -1 before the first
}

func (n *Node) IsRoot() bool {
	return n.Parent == NoParent
}

func (n *Node) String() string {
	return fmt.Sprintf("node %d (depth %d, %v, eval %g)", n.Index, n.Depth, n.Move, n.Eval)
}

// Store is an append-only arena of nodes addressed by creation order.
type Store struct {
	nodes []*Node
}

func NewStore() *Store {
	return &Store{}
}

// Add appends the node, assigns its index and links it under its parent.
func (s *Store) Add(node *Node) *Node {
	node.Index = len(s.nodes)
	node.cursor = -1
	if node.Parent != NoParent {
		parent := s.Get(node.Parent)
		parent.Children = append(parent.Children, node.Index)
	}
	s.nodes = append(s.nodes, node)
	return node
}

func (s *Store) Get(index int) *Node {
	if index < 0 || index >= len(s.nodes) {
		panic(fmt.Sprintf("node index %d out of range [0, %d)", index, len(s.nodes)))
	}
	return s.nodes[index]
}

func (s *Store) Root() *Node {
	return s.Get(0)
}

// Parent returns the node's parent, or false for the root.
func (s *Store) Parent(node *Node) (*Node, bool) {
	if node.IsRoot() {
		return nil, false
	}
	return s.Get(node.Parent), true
}

// NextChild advances the node's cursor and returns the child it lands on, or
// false once every child has been handed out.
func (s *Store) NextChild(node *Node) (*Node, bool) {
	if node.cursor > len(node.Children) {
		panic(fmt.Sprintf("child cursor %d beyond %d children of node %d", node.cursor, len(node.Children), node.Index))
	}
	if node.cursor == len(node.Children) {
		return nil, false
	}
	node.cursor++
	if node.cursor == len(node.Children) {
		return nil, false
	}
	return s.Get(node.Children[node.cursor]), true
}

func (s *Store) Len() int {
	return len(s.nodes)
}

// Nodes returns the nodes in creation order. Callers must not modify them.
func (s *Store) Nodes() []*Node {
	return s.nodes
}

// Edges lists parent and child index pairs in creation order.
func (s *Store) Edges() [][2]int {
	var edges [][2]int
	for _, node := range s.nodes {
		if !node.IsRoot() {
			edges = append(edges, [2]int{node.Parent, node.Index})
		}
	}
	return edges
}
