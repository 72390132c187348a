// Package fifteen implements the sliding-tile puzzle: the board model, its
// breadth-first solver, and the playable game built on top of them.
//
// The board tracks a permutation of tile ordinals over grid cells. An ordinal
// is a tile's fixed identity, equal to its grid index when the board is
// solved. One ordinal is designated the empty slot (the hole); every move is
// a swap of the hole with an orthogonally adjacent tile.
package fifteen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Board is the permutation state of a cols x rows sliding puzzle.
//
// pos maps ordinal -> current grid index (row-major: index = row*cols + col)
// and is always a permutation of [0, cols*rows). It is the single source of
// truth; the index -> ordinal lookup is derived on demand.
//
// Board is a plain value: Clone gives an independent copy, which the solver
// relies on to explore hypothetical futures without touching the original.
// It is not safe for concurrent mutation.
type Board struct {
	cols, rows   int
	emptyOrdinal int
	pos          []int

	// Memoized solved flag. Invalidated on every successful swap.
	solvedKnown bool
	solvedVal   bool
}

// Direction codes for Shuffle. Opposite directions differ by exactly 2,
// which is what the no-immediate-reversal check relies on.
const (
	dirUp = iota
	dirRight
	dirDown
	dirLeft
	dirCount
)

// dirOffsets maps a direction code to the SwapWithEmpty offset that slides
// a tile in that visual direction into the hole.
var dirOffsets = [dirCount][2]int{
	dirUp:    {0, 1},
	dirRight: {-1, 0},
	dirDown:  {0, -1},
	dirLeft:  {1, 0},
}

// New creates a solved cols x rows board with the hole at the last index.
// Dimensions must be positive; this is caller discipline, not a checked
// precondition. Use FromPositions for untrusted input.
func New(cols, rows int) *Board {
	return NewWithEmpty(cols, rows, cols*rows-1)
}

// NewWithEmpty creates a solved board with an explicit empty ordinal.
func NewWithEmpty(cols, rows, emptyOrdinal int) *Board {
	n := cols * rows
	pos := make([]int, n)
	for i := range pos {
		pos[i] = i
	}
	return &Board{
		cols:         cols,
		rows:         rows,
		emptyOrdinal: emptyOrdinal,
		pos:          pos,
		solvedKnown:  true,
		solvedVal:    true,
	}
}

// FromPositions builds a board from an externally supplied permutation,
// validating every invariant. Unlike New, this path is safe for
// deserialized or hand-built boards.
func FromPositions(cols, rows, emptyOrdinal int, positions []int) (*Board, error) {
	if cols < 1 || rows < 1 {
		return nil, fmt.Errorf("fifteen: invalid grid %dx%d", cols, rows)
	}
	n := cols * rows
	if emptyOrdinal < 0 || emptyOrdinal >= n {
		return nil, fmt.Errorf("fifteen: empty ordinal %d out of range [0, %d)", emptyOrdinal, n)
	}
	if len(positions) != n {
		return nil, fmt.Errorf("fifteen: got %d positions, want %d", len(positions), n)
	}
	seen := make([]bool, n)
	for ord, p := range positions {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("fifteen: ordinal %d has position %d out of range [0, %d)", ord, p, n)
		}
		if seen[p] {
			return nil, fmt.Errorf("fifteen: position %d occupied twice, not a permutation", p)
		}
		seen[p] = true
	}
	pos := make([]int, n)
	copy(pos, positions)
	return &Board{
		cols:         cols,
		rows:         rows,
		emptyOrdinal: emptyOrdinal,
		pos:          pos,
	}, nil
}

// Cols returns the board width in tiles.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height in tiles.
func (b *Board) Rows() int { return b.rows }

// EmptyOrdinal returns the ordinal designated as the hole.
func (b *Board) EmptyOrdinal() int { return b.emptyOrdinal }

// Size returns the total tile count, cols*rows.
func (b *Board) Size() int { return b.cols * b.rows }

// Positions returns a copy of the ordinal -> grid index permutation.
func (b *Board) Positions() []int {
	out := make([]int, len(b.pos))
	copy(out, b.pos)
	return out
}

// IndexToCoord converts a grid index to (column, row).
func (b *Board) IndexToCoord(index int) (col, row int) {
	return index % b.cols, index / b.cols
}

// CoordToIndex converts (column, row) to a grid index.
func (b *Board) CoordToIndex(col, row int) int {
	return col + row*b.cols
}

// OrdinalCoord returns the current (column, row) of the given ordinal.
func (b *Board) OrdinalCoord(ordinal int) (col, row int) {
	return b.IndexToCoord(b.pos[ordinal])
}

// OrdinalAt returns the ordinal currently occupying the given grid index.
// Linear scan: grids are small and the lookup is infrequent.
func (b *Board) OrdinalAt(index int) int {
	for ord, p := range b.pos {
		if p == index {
			return ord
		}
	}
	// Unreachable while pos is a permutation.
	return -1
}

// IsSolved reports whether every ordinal sits at its own index.
func (b *Board) IsSolved() bool {
	if b.solvedKnown {
		return b.solvedVal
	}
	solved := true
	for ord, p := range b.pos {
		if ord != p {
			solved = false
			break
		}
	}
	b.solvedKnown = true
	b.solvedVal = solved
	return solved
}

// SwapWithEmpty attempts to move the tile at grid offset (dx, dy) relative to
// the hole's current position into the hole. dx and dy are each in {-1, 0, 1}
// and never both nonzero; the board does not validate this precondition.
//
// Returns the ordinal of the tile that moved and true, or (0, false) if the
// target cell is outside the grid (the board is left unchanged). Moves stay
// legal on a solved board; blocking that is a presentation-layer policy.
func (b *Board) SwapWithEmpty(dx, dy int) (ordinal int, moved bool) {
	ec, er := b.OrdinalCoord(b.emptyOrdinal)
	tc, tr := ec+dx, er+dy
	if tc < 0 || tc >= b.cols || tr < 0 || tr >= b.rows {
		return 0, false
	}
	other := b.OrdinalAt(b.CoordToIndex(tc, tr))
	b.pos[b.emptyOrdinal], b.pos[other] = b.pos[other], b.pos[b.emptyOrdinal]
	b.solvedKnown = false
	return other, true
}

// SlideLeft slides the tile right of the hole leftward into it.
func (b *Board) SlideLeft() (int, bool) { return b.SwapWithEmpty(1, 0) }

// SlideRight slides the tile left of the hole rightward into it.
func (b *Board) SlideRight() (int, bool) { return b.SwapWithEmpty(-1, 0) }

// SlideUp slides the tile below the hole upward into it.
func (b *Board) SlideUp() (int, bool) { return b.SwapWithEmpty(0, 1) }

// SlideDown slides the tile above the hole downward into it.
func (b *Board) SlideDown() (int, bool) { return b.SwapWithEmpty(0, -1) }

// SlideTileTowardEmpty executes a multi-cell slide: every tile between the
// given tile and the hole shifts one cell toward the hole, as a sequence of
// single-step swaps (one per cell of distance along the shared axis). The
// tile must share exactly one axis with the hole. Fails without moving
// anything if the board is solved, the tile is the hole itself, or the tile
// is not aligned.
func (b *Board) SlideTileTowardEmpty(ordinal int) bool {
	if b.IsSolved() || ordinal == b.emptyOrdinal {
		return false
	}
	tc, tr := b.OrdinalCoord(ordinal)
	ec, er := b.OrdinalCoord(b.emptyOrdinal)

	switch {
	case tr == er && tc != ec:
		dx := sign(tc - ec)
		for i := 0; i < abs(tc-ec); i++ {
			b.SwapWithEmpty(dx, 0)
		}
		return true
	case tc == ec && tr != er:
		dy := sign(tr - er)
		for i := 0; i < abs(tr-er); i++ {
			b.SwapWithEmpty(0, dy)
		}
		return true
	default:
		// Neither axis shared, or both (impossible for a distinct tile).
		return false
	}
}

// StepOrdinal moves the given tile one cell into the hole. The tile must be
// orthogonally adjacent to the hole. This is the replay primitive for solver
// paths: each solver step is exactly one single-cell swap.
func (b *Board) StepOrdinal(ordinal int) bool {
	if ordinal == b.emptyOrdinal {
		return false
	}
	tc, tr := b.OrdinalCoord(ordinal)
	ec, er := b.OrdinalCoord(b.emptyOrdinal)
	dx, dy := tc-ec, tr-er
	if abs(dx)+abs(dy) != 1 {
		return false
	}
	_, moved := b.SwapWithEmpty(dx, dy)
	return moved
}

// Shuffle performs moveCount successful random single-step moves. A move is
// never the exact reverse of the immediately preceding one, so the shuffle
// budget is not wasted on back-and-forth pairs. Every reached state stays in
// the solved state's connected component, so the result is always solvable.
func (b *Board) Shuffle(rng *rand.Rand, moveCount int) {
	prev := -1
	for done := 0; done < moveCount; {
		d := rng.Intn(dirCount)
		if prev >= 0 && abs(d-prev) == 2 {
			continue
		}
		off := dirOffsets[d]
		if _, moved := b.SwapWithEmpty(off[0], off[1]); moved {
			prev = d
			done++
		}
	}
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	pos := make([]int, len(b.pos))
	copy(pos, b.pos)
	return &Board{
		cols:         b.cols,
		rows:         b.rows,
		emptyOrdinal: b.emptyOrdinal,
		pos:          pos,
		solvedKnown:  b.solvedKnown,
		solvedVal:    b.solvedVal,
	}
}

// Equal reports whether two boards have identical shape, empty ordinal,
// and permutation.
func (b *Board) Equal(other *Board) bool {
	if b.cols != other.cols || b.rows != other.rows || b.emptyOrdinal != other.emptyOrdinal {
		return false
	}
	for i, p := range b.pos {
		if other.pos[i] != p {
			return false
		}
	}
	return true
}

// Key returns a hash key derived from the permutation alone. Collisions
// across different shapes are acceptable: the solver only compares boards
// of identical shape.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(len(b.pos) * 3)
	for i, p := range b.pos {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
