// brickbreaker is a terminal brick breaker. A paddle deflects balls into a
// grid of bricks while falling power-ups change the rules.
//
// Usage:
//
//	brickbreaker play        - Play in this terminal
//	brickbreaker serve       - Start SSH server for remote play
//	brickbreaker config      - Print the default or resolved configuration
//
// Global flags:
//
//	--config <path>       - Path to a brickbreaker.yaml
//	--difficulty <name>   - Preset: easy, normal, hard
//	--seed <value>        - RNG seed for reproducible power-up drops
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick breaker in your terminal",
	Long: `Brick breaker is a terminal arcade game: steer the paddle with the
mouse or arrow keys, keep the balls in play and clear every brick.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print configuration

Examples:
  brickbreaker play
  brickbreaker play --difficulty hard --log-file game.log
  brickbreaker serve --ssh :2222
  brickbreaker config > ~/.brickbreaker/configs/brickbreaker.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value, then time based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
