package cmd

import (
	"fmt"
	"ur/experiments/metrics"
	"ur/game"
	"ur/gamemaster"
	"ur/searcher"
	"ur/viz"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Explore() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Explore the tree below a position",
		Long: heredoc.Doc(`
			Build the tree of positions below the start position, or below the
			position reached by replaying --moves, and print its statistics.

			Moves are written as piece:dice, or pass, separated by commas.
		`),
		Example: heredoc.Doc(`
			$ ur explore --horizon 3 --dot tree.dot
			$ ur explore --moves 0:4,0:2 --mode sampled --seed 7
			$ ur explore --path-dot path.dot --throws 2,3
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			movesFlag, _ := flags.GetString("moves")
			dotPath, _ := flags.GetString("dot")
			pathDotPath, _ := flags.GetString("path-dot")
			throws, _ := flags.GetIntSlice("throws")
			outDir, _ := flags.GetString("out")

			if flags.Changed("throws") && pathDotPath == "" {
				return errThrowsWithoutPath
			}

			moves, err := game.ParseMoves(movesFlag)
			if err != nil {
				return err
			}
			state, err := gamemaster.Replay(gamemaster.NewLocalEngine(log.Logger), cfg.InitialState(), moves)
			if err != nil {
				return err
			}
			log.Info().Int("moves", len(moves)).Str("position", state.String()).Msg("starting position")

			options, err := cfg.ExplorerOptions(state, log.Logger)
			if err != nil {
				return err
			}
			explorer := searcher.NewExplorer(state, options...)
			metric := explorer.Run()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "horizon %d (%s)\n", metric.Horizon, metric.Mode)
			fmt.Fprintf(out, "nodes %d, expanded %d, terminal %d, pass-through %d\n",
				metric.Nodes, metric.Expanded, metric.Terminals, metric.PassThroughs)
			fmt.Fprintf(out, "illegal attempts %d, transpositions %d, took %v\n",
				metric.Illegal, metric.Transpositions, metric.Duration)

			if dotPath != "" {
				if err := writeGraph(dotPath, func() (string, error) { return viz.Graph(explorer.Store()) }); err != nil {
					return err
				}
			}
			if pathDotPath != "" {
				if err := writeGraph(pathDotPath, func() (string, error) { return viz.PathGraph(explorer.Store(), throws) }); err != nil {
					return err
				}
			}
			if outDir != "" {
				writer, err := metrics.NewWriter(outDir)
				if err != nil {
					return err
				}
				if err := writer.WriteScores(metric.Scores); err != nil {
					return err
				}
				log.Info().Str("dir", writer.Dir()).Msg("stored scores")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("horizon", searcher.DefaultHorizon, "Plies to explore below the position")
	flags.String("mode", searcher.Exhaustive.String(), "Expansion mode: exhaustive or sampled")
	flags.Uint64("seed", 0, "Dice seed for sampled mode, 0 for random")
	flags.Int("pieces", 0, "Pieces per player")
	flags.String("moves", "", "Moves to replay before exploring")
	flags.String("dot", "", "Write the whole tree as DOT to this file")
	flags.String("path-dot", "", "Write the tree filtered by --throws as DOT to this file")
	flags.IntSlice("throws", []int{2, 3}, "Dice throws followed by --path-dot")
	flags.String("out", "", "Directory for the depth,score trace")

	return cmd
}

func writeGraph(path string, render func() (string, error)) error {
	dot, err := render()
	if err != nil {
		return err
	}
	if err := viz.Save(path, dot); err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("stored graph")
	return nil
}
