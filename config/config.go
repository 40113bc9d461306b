package config

import (
	"errors"
	"fmt"
	"os"
	"ur/game"
	"ur/meta"
	"ur/searcher"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	PiecesPerPlayer  int          `yaml:"pieces_per_player"`
	Horizon          int          `yaml:"horizon"`
	SafeRosette      bool         `yaml:"safe_rosette"`
	SafeRosetteBonus bool         `yaml:"safe_rosette_bonus"`
	Player1Minimizes bool         `yaml:"player1_minimizes"`
	Mode             string       `yaml:"mode"`
	Seed             uint64       `yaml:"seed"` // 0 picks a random seed
	Dedupe           bool         `yaml:"dedupe"`
	Weights          game.Weights `yaml:"weights"`
}

func Default() *Config {
	return &Config{
		PiecesPerPlayer:  meta.PIECES_PER_PLAYER,
		Horizon:          meta.STEPS_IN_FUTURE,
		SafeRosette:      meta.ROSETTE_9_IS_SAFE,
		SafeRosetteBonus: meta.ROSETTE_9_GRANTS_BONUS,
		Player1Minimizes: meta.PLAYER_1_MIN,
		Mode:             searcher.Exhaustive.String(),
		Weights:          game.DefaultWeights(),
	}
}

// Find returns the default config file from the XDG config directories.
func Find() (string, error) {
	return xdg.SearchConfigFile(meta.CONFIG_FILE)
}

// Load reads a YAML file over the defaults; keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	if c.PiecesPerPlayer < 1 || c.PiecesPerPlayer > game.PathLength {
		return fmt.Errorf("%w: pieces_per_player must be between 1 and %d, got %d", ErrInvalid, game.PathLength, c.PiecesPerPlayer)
	}
	if c.Horizon < 0 {
		return fmt.Errorf("%w: horizon must not be negative, got %d", ErrInvalid, c.Horizon)
	}
	if _, err := searcher.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Weights.Window < 1 || c.Weights.Window > game.MaxDice {
		return fmt.Errorf("%w: weights.window must be between 1 and %d, got %d", ErrInvalid, game.MaxDice, c.Weights.Window)
	}
	return nil
}

// Rules builds the board and rule variant described by the config.
func (c *Config) Rules() (*game.Board, *game.StandardRules) {
	board := game.CreateBoard(c.SafeRosette)
	rules := game.NewStandardRules(board)
	rules.Pieces = c.PiecesPerPlayer
	rules.SafeRosette = c.SafeRosette
	rules.SafeRosetteBonus = c.SafeRosetteBonus
	return board, rules
}

func (c *Config) InitialState() *game.GameState {
	board, rules := c.Rules()
	return game.NewGameState(board, rules)
}

// ExplorerOptions translates the config into searcher options for states
// built by Rules.
func (c *Config) ExplorerOptions(state *game.GameState, logger zerolog.Logger) ([]searcher.Option, error) {
	mode, err := searcher.ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}

	evaluator := game.NewEvaluator(state.Board, state.Rules, c.Weights)
	options := []searcher.Option{
		searcher.WithHorizon(c.Horizon),
		searcher.WithMode(mode),
		searcher.WithDice(game.NewDice(c.Seed)),
		searcher.WithEvaluationFn(evaluator.Transition),
		searcher.WithPlayer1Minimizes(c.Player1Minimizes),
		searcher.WithLogger(logger),
		searcher.WithMetrics(),
	}
	if c.Dedupe {
		options = append(options, searcher.WithDedupe())
	}
	return options, nil
}
