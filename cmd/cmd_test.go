package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"ur/game"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("horizon: 1\n"), 0644))

	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(append([]string{"--config", path}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestExplore(t *testing.T) {
	t.Run("config horizon", func(t *testing.T) {
		out, err := run(t, "explore")
		require.NoError(t, err)
		require.Contains(t, out, "horizon 1 (exhaustive)")
		require.Contains(t, out, "nodes 22,")
	})

	t.Run("flags override the config", func(t *testing.T) {
		out, err := run(t, "explore", "--horizon", "0")
		require.NoError(t, err)
		require.Contains(t, out, "nodes 1,")
	})

	t.Run("outputs", func(t *testing.T) {
		dir := t.TempDir()
		dot := filepath.Join(dir, "tree.dot")
		pathDot := filepath.Join(dir, "path.dot")
		_, err := run(t, "explore", "--dot", dot, "--path-dot", pathDot, "--throws", "2", "--out", dir)
		require.NoError(t, err)

		data, err := os.ReadFile(dot)
		require.NoError(t, err)
		require.Equal(t, 21, strings.Count(string(data), "->"))

		data, err = os.ReadFile(pathDot)
		require.NoError(t, err)
		require.Equal(t, 5, strings.Count(string(data), "->"), "five pieces can enter with a 2")

		scores, err := filepath.Glob(filepath.Join(dir, "*", "scores.csv"))
		require.NoError(t, err)
		require.Len(t, scores, 1)
	})

	t.Run("replayed moves", func(t *testing.T) {
		_, err := run(t, "explore", "--moves", "0:4,0:2")
		require.NoError(t, err)

		_, err = run(t, "explore", "--moves", "0:1,pass,1:1")
		require.ErrorIs(t, err, game.ErrSelfBlock)
	})

	t.Run("bad input", func(t *testing.T) {
		_, err := run(t, "explore", "--moves", "zero")
		require.Error(t, err)

		_, err = run(t, "explore", "--mode", "random")
		require.Error(t, err)

		_, err = run(t, "explore", "--throws", "1")
		require.ErrorIs(t, err, errThrowsWithoutPath)
	})
}

func TestSweep(t *testing.T) {
	out, err := run(t, "sweep", "--horizons", "0,1")
	require.NoError(t, err)
	require.Contains(t, out, "horizon 0: 1 nodes")
	require.Contains(t, out, "horizon 1: 22 nodes")
}
