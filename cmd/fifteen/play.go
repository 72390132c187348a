package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/games/fifteen"
	"github.com/vovakirdan/tui-fifteen/internal/platform/tui"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
	"github.com/vovakirdan/tui-fifteen/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle.

Controls:
  Arrows/WASD - Slide a tile into the hole
  H           - Hint (highlight the solver's next move)
  O           - Auto-solve the active board
  Enter       - Dive into a nested tile (nested variant)
  Esc         - Pop out of a nested tile
  P           - Pause
  R           - Reshuffle the current level
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Shallower shuffles
  normal - Default shuffle depth
  hard   - Deeper shuffles
  fixed  - Use the config file's depth exactly

Examples:
  fifteen play eight
  fifteen play fifteen --difficulty hard
  fifteen play nested
  fifteen play eight --level 5
  fifteen play fifteen --config ./my-fifteen.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = show selector)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if puzzle exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fifteen list' to see available puzzles.")
		os.Exit(1)
	}

	// Get terminal size early for the level selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	fifteen.SetConfigPath(flagConfig)
	fifteen.SetDifficultyPreset(flagDifficulty)

	if flagLevel > 0 {
		fifteen.SetStartLevel(flagLevel)
	} else {
		// Show the start level selector
		selection, updatedCfg, selErr := tui.RunLevelSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		if selection.Level > 0 {
			fifteen.SetStartLevel(selection.Level)
		}
	}

	// Create the puzzle instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}

	// Open solve storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open solves database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", runErr)
		os.Exit(1)
	}
}
