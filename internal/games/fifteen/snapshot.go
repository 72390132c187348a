package fifteen

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateLevelCleared GameStateType = "level_cleared"
	StateWin          GameStateType = "win"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Level       int // Current level (1-indexed for display)
	Score       int
	Moves       int // Moves in current level
	TotalMoves  int
	ActiveBoard []int // positionOfOrdinal of the active board
	ActiveIdx   int   // Arena index of the active board
	Unsolved    int   // Boards in the arena still unsolved
	AutoSolving bool
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.levelCleared:
		state = StateLevelCleared
	}

	return Snapshot{
		Tick:        g.tick,
		Variant:     string(g.variant),
		Level:       g.levelIndex + 1,
		Score:       g.score,
		Moves:       g.moves,
		TotalMoves:  g.totalMoves,
		ActiveBoard: g.tree.Active().Positions(),
		ActiveIdx:   g.tree.ActiveIndex(),
		Unsolved:    g.tree.UnsolvedCount(),
		AutoSolving: g.autoSolving,
		State:       state,
	}
}
