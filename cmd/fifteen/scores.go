package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <puzzle>",
	Short: "Show best solves for a puzzle",
	Long: `Display the top 10 runs for the specified puzzle.

Examples:
  fifteen scores eight
  fifteen scores nested`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if puzzle exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fifteen list' to see available puzzles.")
		os.Exit(1)
	}

	// Get puzzle title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	solves, err := store.TopSolves(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solves: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Solves - %s\n", title)
	fmt.Println()

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fifteen play %s' to set the first record!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %s\n", "Rank", "Score", "Moves", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-7s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range solves {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", entry.Duration/60, entry.Duration%60)
		fmt.Printf("  %-4d  %-8d  %-7d  %-7s  %s\n", i+1, entry.Score, entry.Moves, timeStr, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	fewest, err := store.FewestMoves(gameID)
	if err == nil && fewest > 0 {
		fmt.Printf("Fewest moves: %d\n", fewest)
	}
}
