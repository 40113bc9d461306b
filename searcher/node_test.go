package searcher

import (
	"testing"
	"ur/game"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("indices follow creation order and link parents", func(t *testing.T) {
		store := NewStore()
		root := store.Add(&Node{Parent: NoParent})
		a := store.Add(&Node{Parent: root.Index})
		b := store.Add(&Node{Parent: root.Index})
		c := store.Add(&Node{Parent: a.Index})

		require.Equal(t, []int{0, 1, 2, 3}, []int{root.Index, a.Index, b.Index, c.Index})
		require.Equal(t, []int{1, 2}, root.Children)
		require.Equal(t, []int{3}, a.Children)
		require.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}}, store.Edges())
		require.Equal(t, 4, store.Len())

		parent, ok := store.Parent(c)
		require.True(t, ok)
		require.Same(t, a, parent)

		_, ok = store.Parent(root)
		require.False(t, ok, "Root has no parent")
	})

	t.Run("child cursor hands out each child once", func(t *testing.T) {
		store := NewStore()
		root := store.Add(&Node{Parent: NoParent})
		a := store.Add(&Node{Parent: root.Index})
		b := store.Add(&Node{Parent: root.Index})

		got, ok := store.NextChild(root)
		require.True(t, ok)
		require.Same(t, a, got)
		got, ok = store.NextChild(root)
		require.True(t, ok)
		require.Same(t, b, got)
		_, ok = store.NextChild(root)
		require.False(t, ok)
		_, ok = store.NextChild(root)
		require.False(t, ok, "Exhausted cursor should stay exhausted")
	})

	t.Run("structural violations panic", func(t *testing.T) {
		store := NewStore()
		root := store.Add(&Node{Parent: NoParent})

		require.Panics(t, func() { store.Get(1) })
		require.Panics(t, func() { store.Add(&Node{Parent: 7}) })

		root.cursor = 3
		require.Panics(t, func() { store.NextChild(root) })
	})

	t.Run("root", func(t *testing.T) {
		store := NewStore()
		state := game.NewGameState(game.CreateBoard(true), game.NewStandardRules(game.CreateBoard(true)))
		root := store.Add(&Node{Parent: NoParent, State: state})

		require.Same(t, root, store.Root())
		require.True(t, root.IsRoot())
	})
}
