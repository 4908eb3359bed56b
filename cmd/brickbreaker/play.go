package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a brick breaker session in this terminal.

Controls:
  Mouse        - Move the paddle
  Left/Right   - Nudge the paddle (also A/D)
  Space        - Pause / resume
  R            - Restart (after game over or victory)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Power-ups:
  M  MultiBall     - every ball splits in three
  L  ExtraLife     - one more life
  W  WiderPaddle   - permanently wider paddle
  S  SlowBall      - slows every ball down

Examples:
  brickbreaker play
  brickbreaker play --difficulty easy
  brickbreaker play --seed 42 --log-file game.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w, closeLog, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger, err := newLogger(w, "brickbreaker")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	if width, height, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = width
		rc.ScreenH = height
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, cfg, logger, rc); err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
