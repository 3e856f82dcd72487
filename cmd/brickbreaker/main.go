// brickbreaker is a brick breaker game for the terminal.
//
// Usage:
//
//	brickbreaker play            - Play in this terminal
//	brickbreaker levels          - List the levels and a player's progress
//	brickbreaker scores [player] - Show high scores
//	brickbreaker serve           - Start SSH server for remote play
//	brickbreaker sim             - Run the simulation headless with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.brickbreaker/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mode <mode>         - campaign, single or endless
//	--debug               - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal brick breaker: bounce the ball off your
paddle and clear every brick to finish a level.

Available commands:
  play     - Play in this terminal
  levels   - List levels and unlock progress
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless game with the autopilot

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy --mode endless
  brickbreaker levels --player ann
  brickbreaker serve --ssh :2222
  brickbreaker sim --frames 20000 --debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickbreaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Game mode: campaign, single, endless (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the logger shared by a command and the sessions it runs.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the game config and applies the difficulty and mode flags.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return config.Config{}, err
		}
		config.ApplyPreset(&cfg, preset)
		logger.Debug("difficulty applied", "preset", preset)
	}
	if flagMode != "" {
		cfg.Gameplay.Mode = flagMode
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// defaultPlayer names local players after the OS user.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
