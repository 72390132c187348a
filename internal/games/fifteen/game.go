package fifteen

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-fifteen/internal/config"
	"github.com/vovakirdan/tui-fifteen/internal/core"
	"github.com/vovakirdan/tui-fifteen/internal/registry"
)

// Variant identifies a registered puzzle variant.
type Variant string

const (
	VariantEight   Variant = "eight"   // 3x3 grid
	VariantFifteen Variant = "fifteen" // 4x4 grid
	VariantNested  Variant = "nested"  // 3x3 grid, each tile holding a 2x2 puzzle
)

// levelClearPause is how long the level-cleared overlay stays up (ticks).
const levelClearPause = 120

// Game implements the sliding-tile puzzle on top of the Board model.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64
	cfg     config.FifteenConfig

	score        int
	moves        int // Moves in current level
	totalMoves   int
	levelIndex   int // Current level (0-indexed)
	shuffleMoves int // Shuffle depth of the current level

	tree *Tree // Flat variants use a single-board tree

	// Solver assists
	hintOrdinal   int
	hintTicksLeft int
	hintMsg       string
	hintMsgTicks  int
	hintsUsed     int
	autoSolving   bool
	autoPath      []int
	autoStep      int
	autoTickCount int
	autoUsed      bool

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Game state flags
	won             bool
	levelCleared    bool
	paused          bool
	tooSmall        bool
	moveProcessed   bool // Prevent multiple moves per tick
	levelClearTicks int
}

// Package-level variables for config
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path used at the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used at the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-10). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// NewFifteen creates a new 4x4 puzzle game.
func NewFifteen() *Game {
	return &Game{variant: VariantFifteen}
}

// NewEight creates a new 3x3 puzzle game.
func NewEight() *Game {
	return &Game{variant: VariantEight}
}

// NewNested creates a new nested puzzle game: a 3x3 board whose tiles each
// hold their own 2x2 puzzle.
func NewNested() *Game {
	return &Game{variant: VariantNested}
}

func init() {
	registry.Register("fifteen", func() registry.Game {
		return NewFifteen()
	})
	registry.Register("eight", func() registry.Game {
		return NewEight()
	})
	registry.Register("nested", func() registry.Game {
		return NewNested()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.variant {
	case VariantEight:
		return "Eight (3x3)"
	case VariantNested:
		return "Nested (3x3 of 2x2)"
	default:
		return "Fifteen (4x4)"
	}
}

// rootShape returns the root board dimensions for the variant.
func (g *Game) rootShape() (cols, rows int) {
	switch g.variant {
	case VariantEight, VariantNested:
		return 3, 3
	default:
		return 4, 4
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.totalMoves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.won = false
	g.levelCleared = false
	g.paused = false
	g.moveProcessed = false
	g.levelClearTicks = 0

	loaded, err := config.LoadFifteen(configPath)
	if err != nil {
		loaded = config.DefaultFifteenConfig()
	}
	config.ApplyFifteenPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	g.cfg = loaded

	// Apply selected start level
	if selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
	g.checkScreenSize()
}

// buildTree constructs a fresh solved puzzle tree for the variant.
func (g *Game) buildTree() {
	cols, rows := g.rootShape()
	g.tree = NewTree(cols, rows)

	if g.variant == VariantNested {
		root := g.tree.Root()
		for tile := 0; tile < root.Size(); tile++ {
			if tile == root.EmptyOrdinal() {
				continue
			}
			g.tree.AddChild(0, tile, 2, 2)
		}
	}
}

// loadLevel rebuilds the tree and shuffles it to the current level's depth.
func (g *Game) loadLevel() {
	level := GetLevel(g.levelIndex)
	if level == nil {
		level = GetLevel(LevelCount() - 1)
	}

	g.buildTree()

	// Level depths are calibrated for 3x3; scale by actual grid size and
	// the configured difficulty multiplier.
	rootSize := g.tree.Root().Size()
	shuffled := int(float64(level.Shuffle)*g.cfg.Shuffle.Scale) * rootSize / 9
	if shuffled < g.cfg.Shuffle.MinMoves {
		shuffled = g.cfg.Shuffle.MinMoves
	}
	g.shuffleMoves = shuffled

	g.tree.ShuffleAll(g.rng, g.shuffleMoves)
	// A short random walk can land back on the identity; reshuffle until
	// there is actually something to solve.
	for g.tree.AllSolved() {
		g.tree.ShuffleAll(g.rng, g.shuffleMoves)
	}

	g.moves = 0
	g.hintsUsed = 0
	g.autoUsed = false
	g.clearAssists()
	g.levelCleared = false
	g.levelClearTicks = 0
}

// clearAssists drops any pending hint highlight and auto-solve path.
func (g *Game) clearAssists() {
	g.hintOrdinal = -1
	g.hintTicksLeft = 0
	g.hintMsg = ""
	g.hintMsgTicks = 0
	g.autoSolving = false
	g.autoPath = nil
	g.autoStep = 0
	g.autoTickCount = 0
}

// checkScreenSize checks if the screen is large enough for the root board.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardPixelSize(g.tree.Root())
	minW := core.Max(boardW+2, 40)
	minH := boardH + hudHeight + 3
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Level cleared overlay, then auto-advance
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearPause {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.won {
		// Await restart from the platform
		return core.StepResult{State: g.State()}
	}

	// In-level restart reshuffles the current level
	if in.Has(core.ActionRestart) {
		g.loadLevel()
		return core.StepResult{State: g.State()}
	}

	g.tickAssistTimers()

	if in.Has(core.ActionHint) {
		g.requestHint()
	}
	if in.Has(core.ActionAutoSolve) {
		g.toggleAutoSolve()
	}

	if g.autoSolving {
		g.stepAutoSolve()
		return core.StepResult{State: g.State()}
	}

	// Nested navigation
	if g.variant == VariantNested {
		if in.Has(core.ActionConfirm) && g.tree.AtRoot() {
			if g.tree.EnterFirstUnsolved() {
				g.clearAssists()
			}
		}
		if in.Has(core.ActionBack) && !g.tree.AtRoot() {
			g.tree.Ascend()
			g.clearAssists()
		}
	}

	// Slide input
	var (
		moved bool
		doDir bool
		slide func() (int, bool)
	)
	board := g.tree.Active()
	switch {
	case in.Has(core.ActionLeft):
		slide, doDir = board.SlideLeft, true
	case in.Has(core.ActionRight):
		slide, doDir = board.SlideRight, true
	case in.Has(core.ActionUp):
		slide, doDir = board.SlideUp, true
	case in.Has(core.ActionDown):
		slide, doDir = board.SlideDown, true
	}

	if doDir && !g.moveProcessed {
		_, moved = slide()
		g.moveProcessed = true
	}

	if moved {
		g.moves++
		g.totalMoves++
		g.hintTicksLeft = 0
		g.postMove()
	}

	return core.StepResult{State: g.State()}
}

// tickAssistTimers decays the hint highlight and message timers.
func (g *Game) tickAssistTimers() {
	if g.hintTicksLeft > 0 {
		g.hintTicksLeft--
	}
	if g.hintMsgTicks > 0 {
		g.hintMsgTicks--
		if g.hintMsgTicks == 0 {
			g.hintMsg = ""
		}
	}
}

// requestHint asks the solver for the next best move on the active board.
func (g *Game) requestHint() {
	board := g.tree.Active()
	if board.IsSolved() {
		return
	}
	path, err := board.Solve(g.cfg.Solver.MaxStates)
	if err != nil {
		g.showSolverError(err)
		return
	}
	if len(path) == 0 {
		return
	}
	g.hintOrdinal = path[0]
	g.hintTicksLeft = g.cfg.Solver.HintSeconds * g.tickRate
	g.hintsUsed++
}

// toggleAutoSolve starts or cancels solver playback on the active board.
func (g *Game) toggleAutoSolve() {
	if g.autoSolving {
		g.autoSolving = false
		g.autoPath = nil
		return
	}
	board := g.tree.Active()
	if board.IsSolved() {
		return
	}
	path, err := board.Solve(g.cfg.Solver.MaxStates)
	if err != nil {
		g.showSolverError(err)
		return
	}
	g.autoPath = path
	g.autoStep = 0
	g.autoTickCount = 0
	g.autoSolving = true
	g.autoUsed = true
	g.hintTicksLeft = 0
}

// showSolverError surfaces a solver failure as a transient HUD message.
func (g *Game) showSolverError(err error) {
	switch {
	case errors.Is(err, ErrNoSolution):
		g.hintMsg = "This board cannot be solved"
	case errors.Is(err, ErrSearchLimit):
		g.hintMsg = "Too scrambled for a hint"
	default:
		g.hintMsg = "Solver failed"
	}
	g.hintMsgTicks = g.cfg.Solver.HintSeconds * g.tickRate
}

// stepAutoSolve replays the solver path one single-cell move at a time.
func (g *Game) stepAutoSolve() {
	g.autoTickCount++
	if g.autoTickCount < g.cfg.Solver.AutoMoveTicks {
		return
	}
	g.autoTickCount = 0

	if g.autoStep >= len(g.autoPath) {
		g.autoSolving = false
		return
	}

	board := g.tree.Active()
	ord := g.autoPath[g.autoStep]
	g.autoStep++
	if !board.StepOrdinal(ord) {
		// Board diverged from the planned path; give up quietly.
		g.autoSolving = false
		return
	}
	g.moves++
	g.totalMoves++
	g.postMove()
	if g.autoStep >= len(g.autoPath) {
		g.autoSolving = false
	}
}

// postMove handles solved-state transitions after any successful move.
func (g *Game) postMove() {
	board := g.tree.Active()
	if !board.IsSolved() {
		return
	}

	// A solved child pops back to its parent.
	if !g.tree.AtRoot() {
		g.tree.Ascend()
		g.clearAssists()
	}

	if g.tree.AllSolved() {
		g.onLevelSolved()
	}
}

// onLevelSolved scores the level and starts the cleared overlay.
func (g *Game) onLevelSolved() {
	g.score += g.levelScore()
	g.levelCleared = true
	g.levelClearTicks = 0
	g.clearAssists()
}

// levelScore rewards economical solutions. Auto-solved levels score nothing;
// hints cost a slice of the reward.
func (g *Game) levelScore() int {
	if g.autoUsed {
		return 0
	}
	base := 20*g.shuffleMoves - 10*g.moves - 10*g.hintsUsed
	if base < 10 {
		base = 10
	}
	return base
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= LevelCount()-1 {
		g.won = true
		return
	}

	g.levelIndex++
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Moves:    g.totalMoves,
		GameOver: g.won,
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}

// ActiveBoard exposes the board currently being manipulated.
func (g *Game) ActiveBoard() *Board {
	return g.tree.Active()
}

// PuzzleTree exposes the underlying board tree.
func (g *Game) PuzzleTree() *Tree {
	return g.tree
}
