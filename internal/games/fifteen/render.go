package fifteen

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-fifteen/internal/core"
)

const (
	cellHeight = 2 // Height of each cell (including borders)
	hudHeight  = 3
)

// cellWidth returns the cell width for a board, wide enough for its largest
// tile label plus padding.
func cellWidth(b *Board) int {
	label := len(strconv.Itoa(b.Size() - 1))
	return label + 4
}

// boardPixelSize returns the rendered width and height of a board in cells.
func (g *Game) boardPixelSize(b *Board) (w, h int) {
	return b.Cols()*cellWidth(b) + 1, b.Rows()*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	board := g.tree.Active()
	boardW, boardH := g.boardPixelSize(board)

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, board, boardX, boardY)
	g.renderFooter(dst)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the title, level, moves and score lines.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	level := GetLevel(g.levelIndex)
	levelName := ""
	if level != nil {
		levelName = level.Name
	}
	levelStr := fmt.Sprintf("Level %d/%d  %s", g.levelIndex+1, LevelCount(), levelName)
	dst.DrawText(boardX, 1, levelStr)

	scoreStr := fmt.Sprintf("Score: %d  Moves: %d", g.score, g.moves)
	scoreX := boardX + boardW - len(scoreStr)
	if scoreX < boardX {
		scoreX = boardX
	}
	dst.DrawText(scoreX, 1, scoreStr)

	// Third HUD line: nested breadcrumb or solver status
	switch {
	case g.hintMsg != "" && g.hintMsgTicks > 0:
		dst.DrawTextColored(boardX, 2, g.hintMsg, core.ColorBrightRed)
	case g.autoSolving:
		progress := fmt.Sprintf("Solving... %d/%d", g.autoStep, len(g.autoPath))
		dst.DrawTextColored(boardX, 2, progress, core.ColorBrightCyan)
	case g.variant == VariantNested && !g.tree.AtRoot():
		crumb := fmt.Sprintf("Inside tile %d  (Esc: back out)", g.tree.ParentTile()+1)
		dst.DrawTextColored(boardX, 2, crumb, core.ColorBrightYellow)
	case g.variant == VariantNested:
		left := g.tree.UnsolvedCount()
		if !g.tree.Root().IsSolved() {
			left-- // the root itself is shown on the board
		}
		if left > 0 {
			dst.DrawText(boardX, 2, fmt.Sprintf("Nested puzzles left: %d  (Enter: dive in)", left))
		}
	}
}

// renderBoard draws the grid and tiles of the given board.
func (g *Game) renderBoard(dst *core.Screen, board *Board, boardX, boardY int) {
	cols, rows := board.Cols(), board.Rows()
	cellW := cellWidth(board)

	// Grid lines
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			px := boardX + x*cellW
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < cols {
				for i := 1; i < cellW; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for ord := 0; ord < board.Size(); ord++ {
		if ord == board.EmptyOrdinal() {
			continue
		}
		col, row := board.OrdinalCoord(ord)
		cellX := boardX + col*cellW + 1
		cellY := boardY + row*cellHeight + 1

		label := strconv.Itoa(ord + 1)
		if g.tileHasUnsolvedChild(board, ord) {
			label += "*"
		}

		color := core.ColorDefault
		switch {
		case g.hintTicksLeft > 0 && ord == g.hintOrdinal:
			color = core.ColorOrange
		case board.Positions()[ord] == ord:
			color = core.ColorGreen
		}

		padLeft := (cellW - 1 - len(label)) / 2
		if padLeft < 0 {
			padLeft = 0
		}
		dst.DrawTextColored(cellX+padLeft, cellY, label, color)
	}
}

// tileHasUnsolvedChild reports whether the tile holds an unsolved nested board.
func (g *Game) tileHasUnsolvedChild(board *Board, ord int) bool {
	if g.variant != VariantNested || board != g.tree.Root() {
		return false
	}
	idx, ok := g.tree.ChildAt(0, ord)
	return ok && !g.tree.Board(idx).IsSolved()
}

// renderFooter draws the control hints at the bottom of the screen.
func (g *Game) renderFooter(dst *core.Screen) {
	controls := g.Controls()
	x := (g.screenW - len(controls)) / 2
	dst.DrawTextColored(x, g.screenH-1, controls, core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		movesStr := fmt.Sprintf("Solved in %d moves", g.moves)
		if g.levelIndex >= LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, movesStr, "Final level complete!")
		} else {
			nextStr := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, movesStr, nextStr)
		}
		return
	}

	if g.won {
		scoreStr := fmt.Sprintf("Final score: %d", g.score)
		g.drawOverlay(dst, centerX, centerY, "ALL LEVELS SOLVED!", scoreStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	if g.variant == VariantNested {
		return "Arrows/WASD: Slide | Enter: Dive | Esc: Out | H: Hint | O: Solve | R: Reshuffle | Q: Quit"
	}
	return "Arrows/WASD: Slide | H: Hint | O: Solve | P: Pause | R: Reshuffle | Q: Quit"
}
