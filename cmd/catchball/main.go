// catchball is a motion-controlled catch-and-throw game. A browser client
// streams hand-tracking frames to the game server over a websocket; the
// server runs the authoritative simulation. A terminal demo with
// keyboard-driven virtual hands exercises the same engine without a
// camera.
//
// Usage:
//
//	catchball serve          - Start the websocket game server
//	catchball demo           - Run the virtual-hand demo in the terminal
//	catchball ssh            - Serve the demo over SSH
//	catchball scores         - Show the best recorded sessions
//
// Global flags:
//
//	--fps <rate>    - Simulation tick rate for the demo (default: 30)
//	--seed <value>  - RNG seed for reproducible spawns (0 = time-based)
//	--db <path>     - Sessions database path (default: ~/.catchball/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catchball",
	Short: "Catchball - catch and throw balls with your hands",
	Long: `Catchball turns webcam hand tracking into a juggling game: balls
fall from above, you catch them with your palms and flick upward to
throw them back for points.

Available commands:
  serve    - Websocket game server for browser clients
  demo     - Terminal demo with keyboard-controlled virtual hands
  ssh      - Serve the terminal demo over SSH
  scores   - View the best recorded sessions

Examples:
  catchball serve --addr :8090
  catchball demo --seed 42
  catchball ssh --ssh :2222
  catchball scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Simulation tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catchball/sessions.db", "Path to sessions database")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(sshCmd)
	rootCmd.AddCommand(scoresCmd)
}
