package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/handwave/catchball/internal/core"
	"github.com/handwave/catchball/internal/game"
	"github.com/handwave/catchball/internal/platform/tui"
	"github.com/handwave/catchball/internal/storage"
)

var (
	flagDemoConfig     string
	flagDemoDifficulty string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the virtual-hand demo in the terminal",
	Long: `Play catchball without a camera: keyboard-driven virtual hands
feed the same landmark frames a browser client would.

Controls:
  Arrows/WASD - Move the active hand
  Space       - Flick upward (throw gesture)
  H           - Toggle hand presence (simulate tracking loss)
  Tab         - Switch between left and right hand
  Enter       - Start/stop the session
  Q/Ctrl+C    - Quit

Examples:
  catchball demo
  catchball demo --seed 42
  catchball demo --config ./my-catchball.yaml --difficulty easy`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoConfig, "config", "", "Path to custom game config YAML")
	demoCmd.Flags().StringVar(&flagDemoDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runDemo(_ *cobra.Command, _ []string) {
	game.SetConfigPath(flagDemoConfig)
	game.SetDifficultyPreset(flagDemoDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the demo still works
		store = nil
	}

	runErr := tui.Run(store, cfg, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", runErr)
		os.Exit(1)
	}
}
