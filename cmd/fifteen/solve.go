package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
)

var (
	flagCols      int
	flagRows      int
	flagShuffle   int
	flagMaxStates int
	flagBoard     string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Shuffle a board and print a solver solution",
	Long: `Run the breadth-first solver on a board and print the move sequence.

By default the board is shuffled randomly; pass --board to solve a
specific position instead. The board is given as comma-separated tile
positions: the i-th number is the grid index currently holding tile i,
with the last tile being the hole.

The printed solution lists the tiles to slide, one per single-cell move.

Examples:
  fifteen solve --cols 3 --rows 3 --shuffle 20
  fifteen solve --cols 4 --rows 4 --shuffle 30 --seed 42
  fifteen solve --cols 2 --rows 2 --board 1,0,2,3
  fifteen solve --cols 4 --rows 4 --shuffle 60 --max-states 2000000`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagCols, "cols", 3, "Board width in tiles")
	solveCmd.Flags().IntVar(&flagRows, "rows", 3, "Board height in tiles")
	solveCmd.Flags().IntVar(&flagShuffle, "shuffle", 20, "Number of random shuffle moves")
	solveCmd.Flags().IntVar(&flagMaxStates, "max-states", 0, "Cap on visited states (0 = unlimited)")
	solveCmd.Flags().StringVar(&flagBoard, "board", "", "Explicit board as comma-separated tile positions")
}

func runSolve(_ *cobra.Command, _ []string) {
	board, err := buildBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Board (%dx%d):\n%s\n", board.Cols(), board.Rows(), formatBoard(board))

	start := time.Now()
	path, err := board.Solve(flagMaxStates)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, fifteen.ErrNoSolution):
		fmt.Println("This board has no solution.")
		os.Exit(1)
	case errors.Is(err, fifteen.ErrSearchLimit):
		fmt.Fprintf(os.Stderr, "Search limit of %d states exceeded; try --max-states 0.\n", flagMaxStates)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(path) == 0 {
		fmt.Println("Board is already solved.")
		return
	}

	// Tiles are displayed 1-based, matching the in-game labels.
	labels := make([]string, len(path))
	for i, ord := range path {
		labels[i] = strconv.Itoa(ord + 1)
	}
	fmt.Printf("Solution (%d moves, %s): %s\n", len(path), elapsed.Round(time.Millisecond), strings.Join(labels, " "))

	// Replay the path to double-check it actually solves the board.
	replay := board.Clone()
	for _, ord := range path {
		if !replay.StepOrdinal(ord) {
			fmt.Fprintln(os.Stderr, "Error: solution replay hit an illegal move")
			os.Exit(1)
		}
	}
	if !replay.IsSolved() {
		fmt.Fprintln(os.Stderr, "Error: solution replay did not solve the board")
		os.Exit(1)
	}
}

// buildBoard constructs the board from --board, or shuffles a fresh one.
func buildBoard() (*fifteen.Board, error) {
	if flagBoard != "" {
		parts := strings.Split(flagBoard, ",")
		positions := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return nil, fmt.Errorf("invalid board entry %q", p)
			}
			positions = append(positions, n)
		}
		return fifteen.FromPositions(flagCols, flagRows, flagCols*flagRows-1, positions)
	}

	if flagCols < 1 || flagRows < 1 {
		return nil, fmt.Errorf("invalid grid %dx%d", flagCols, flagRows)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := fifteen.New(flagCols, flagRows)
	board.Shuffle(rand.New(rand.NewSource(seed)), flagShuffle)
	return board, nil
}

// formatBoard renders the board as a text grid, "." marking the hole.
func formatBoard(b *fifteen.Board) string {
	cellW := len(strconv.Itoa(b.Size()-1)) + 1

	var sb strings.Builder
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			ord := b.OrdinalAt(b.CoordToIndex(col, row))
			label := "."
			if ord != b.EmptyOrdinal() {
				label = strconv.Itoa(ord + 1)
			}
			sb.WriteString(fmt.Sprintf("%*s", cellW, label))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
