package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/handwave/catchball/internal/coach"
	"github.com/handwave/catchball/internal/config"
	"github.com/handwave/catchball/internal/core"
	"github.com/handwave/catchball/internal/game"
	"github.com/handwave/catchball/internal/server"
)

var (
	flagAddr       string
	flagOrigins    string
	flagConfig     string
	flagDifficulty string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the websocket game server",
	Long: `Start the game server that browser clients connect to.

Each websocket connection gets its own private game session. The client
streams hand-tracking frames; the server steps the simulation once per
frame and answers with authoritative state and events.

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  catchball serve
  catchball serve --addr :9000
  catchball serve --origins "https://example.com"
  catchball serve --config ./my-catchball.yaml --difficulty hard`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8090", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagOrigins, "origins", "", "Comma-separated allowed websocket origins")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runServe(_ *cobra.Command, _ []string) {
	game.SetConfigPath(flagConfig)
	game.SetDifficultyPreset(flagDifficulty)

	gameCfg, err := config.LoadCatchball(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	coachClient := coach.New(gameCfg.Coach, nil)

	var origins []string
	if flagOrigins != "" {
		origins = strings.Split(flagOrigins, ",")
	}

	srv := server.New(server.Config{
		Address:        flagAddr,
		DBPath:         flagDBPath,
		AllowedOrigins: origins,
		Runtime:        core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
	}, coachClient)

	fmt.Printf("Starting catchball server on %s\n", flagAddr)
	fmt.Println("Websocket endpoint: /ws")
	fmt.Println("Press Ctrl+C to stop")

	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
