package cmd

import (
	"errors"
	"os"
	"ur/config"
	"ur/logx"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "ur",
		Short: "Explore the game tree of the Royal Game of Ur",
		Long: heredoc.Doc(`
			Explore the positions reachable from a Royal Game of Ur position up to
			a fixed number of plies, scoring every position with a heuristic.

			Settings are read from the file given with --config, or from
			ur/config.yaml in the XDG config directories when it exists.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if cmd.Flag("trace").Changed {
				level = zerolog.DebugLevel
			}
			log.Logger = logx.NewLogger(os.Stderr, level)
		},
	}

	// global flags
	root.PersistentFlags().StringP("config", "c", "", "Configuration file")
	root.PersistentFlags().BoolP("trace", "t", false, "Log every expansion step")

	root.AddCommand(Explore())
	root.AddCommand(Sweep())

	return root
}

// loadConfig reads the config named by --config, falls back to the XDG
// config file and finally to the defaults. Flags that were set override the
// file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		path, err = config.Find()
		if err != nil {
			log.Debug().Strs("dirs", xdg.ConfigDirs).Msg("no config file found, using defaults")
			path = ""
		}
	}

	cfg := config.Default()
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Msg("loaded config")
	}

	flags := cmd.Flags()
	if flags.Lookup("horizon") != nil && flags.Changed("horizon") {
		cfg.Horizon, _ = flags.GetInt("horizon")
	}
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Lookup("seed") != nil && flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Lookup("pieces") != nil && flags.Changed("pieces") {
		cfg.PiecesPerPlayer, _ = flags.GetInt("pieces")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var errThrowsWithoutPath = errors.New("--throws needs --path-dot")
