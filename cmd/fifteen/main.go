// fifteen is a TUI platform for playing sliding-tile puzzles in the terminal.
//
// Usage:
//
//	fifteen list              - List available puzzles
//	fifteen play <puzzle>     - Play a puzzle
//	fifteen menu              - Start menu to pick puzzles interactively
//	fifteen solve             - Shuffle a board and print a solver solution
//	fifteen serve             - Start SSH server for remote play
//	fifteen scores <puzzle>   - Show best solves for a puzzle
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible shuffles
//	--db <path>     - Set database path (default: ~/.fifteen/solves.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import puzzle variants to register them
	_ "github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
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
	Use:   "fifteen",
	Short: "Sliding-tile puzzles in your terminal",
	Long: `fifteen is a terminal-based platform for playing sliding-tile
puzzles: the classic 15-puzzle, its 3x3 little sibling, and a nested
variant where every tile hides a smaller puzzle inside it.

Available commands:
  list     - Show all available puzzles
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  solve    - Shuffle a board and print a solver solution
  serve    - Start SSH server for remote play
  scores   - View best solves

Examples:
  fifteen list
  fifteen play eight
  fifteen menu
  fifteen solve --cols 3 --rows 3 --shuffle 20
  fifteen serve --ssh :2222
  fifteen scores fifteen`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fifteen/solves.db", "Path to solves database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
