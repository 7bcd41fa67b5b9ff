package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/handwave/catchball/internal/platform/tui"
	"github.com/handwave/catchball/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded sessions",
	Long: `Display the best recorded sessions, ordered by score.

Examples:
  catchball scores
  catchball scores --limit 25
  catchball scores --tui`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse sessions in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessions, err := store.TopSessions(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'catchball demo' to record the first session!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-6s  %-5s  %s\n",
		"Rank", "Score", "Throws", "Catches", "Drops", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %-6s  %-5s  %s\n",
		"----", "-----", "------", "-------", "-----", "----", "----")

	for i, s := range sessions {
		fmt.Printf("  %-4d  %-8d  %-7d  %-8d  %-6d  %-5s  %s\n",
			i+1, s.Score, s.Throws, s.Catches, s.Drops,
			fmt.Sprintf("%ds", s.Duration),
			s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats()
	if err == nil && stats.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Best: %d over %d sessions (avg %.0f)\n",
			stats.HighScore, stats.Sessions, stats.AvgScore)
	}
}
