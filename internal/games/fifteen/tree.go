package fifteen

import "math/rand"

// Tree composes independent boards into a recursive puzzle: a tile of one
// board may hold a whole child board inside it. The board model itself has
// no awareness of nesting; the tree is an arena of owned boards plus
// parent/child index references, so no board embeds pointers to another.
//
// Children are attached to tile ordinals, not grid cells: a nested puzzle
// travels with its tile as the parent board is shuffled.
type Tree struct {
	boards     []*Board
	parent     []int         // board index -> parent board index, -1 for root
	parentTile []int         // board index -> ordinal of the parent tile holding it
	children   []map[int]int // board index -> (tile ordinal -> child board index)
	active     int
}

// NewTree creates a tree with a single solved root board.
func NewTree(cols, rows int) *Tree {
	t := &Tree{}
	t.addBoard(New(cols, rows), -1, -1)
	return t
}

func (t *Tree) addBoard(b *Board, parent, parentTile int) int {
	idx := len(t.boards)
	t.boards = append(t.boards, b)
	t.parent = append(t.parent, parent)
	t.parentTile = append(t.parentTile, parentTile)
	t.children = append(t.children, make(map[int]int))
	return idx
}

// AddChild nests a new solved cols x rows board inside the given tile of the
// board at boardIdx. Returns the child's board index. The empty tile cannot
// hold content, and a tile holds at most one child.
func (t *Tree) AddChild(boardIdx, tile, cols, rows int) (int, bool) {
	parent := t.boards[boardIdx]
	if tile == parent.EmptyOrdinal() {
		return 0, false
	}
	if _, taken := t.children[boardIdx][tile]; taken {
		return 0, false
	}
	idx := t.addBoard(New(cols, rows), boardIdx, tile)
	t.children[boardIdx][tile] = idx
	return idx, true
}

// BoardCount returns the number of boards in the arena.
func (t *Tree) BoardCount() int { return len(t.boards) }

// Board returns the board at the given arena index.
func (t *Tree) Board(i int) *Board { return t.boards[i] }

// Root returns the outermost board.
func (t *Tree) Root() *Board { return t.boards[0] }

// Active returns the board the player is currently manipulating.
func (t *Tree) Active() *Board { return t.boards[t.active] }

// ActiveIndex returns the arena index of the active board.
func (t *Tree) ActiveIndex() int { return t.active }

// AtRoot reports whether the active board is the root.
func (t *Tree) AtRoot() bool { return t.active == 0 }

// ChildAt returns the arena index of the child nested in the given tile of
// the board at boardIdx, if any.
func (t *Tree) ChildAt(boardIdx, tile int) (int, bool) {
	idx, ok := t.children[boardIdx][tile]
	return idx, ok
}

// Enter descends into the child nested in the given tile of the active board.
func (t *Tree) Enter(tile int) bool {
	idx, ok := t.children[t.active][tile]
	if !ok {
		return false
	}
	t.active = idx
	return true
}

// EnterFirstUnsolved descends into the first unsolved child of the active
// board, in tile-ordinal order. Returns false if every child is solved.
func (t *Tree) EnterFirstUnsolved() bool {
	parent := t.boards[t.active]
	for tile := 0; tile < parent.Size(); tile++ {
		if idx, ok := t.children[t.active][tile]; ok && !t.boards[idx].IsSolved() {
			t.active = idx
			return true
		}
	}
	return false
}

// Ascend pops back to the parent of the active board.
func (t *Tree) Ascend() bool {
	if t.active == 0 {
		return false
	}
	t.active = t.parent[t.active]
	return true
}

// ParentTile returns the ordinal of the parent tile holding the active board.
// Returns -1 for the root.
func (t *Tree) ParentTile() int { return t.parentTile[t.active] }

// AllSolved reports whether every board in the arena is solved.
func (t *Tree) AllSolved() bool {
	for _, b := range t.boards {
		if !b.IsSolved() {
			return false
		}
	}
	return true
}

// UnsolvedCount returns how many boards in the arena are not yet solved.
func (t *Tree) UnsolvedCount() int {
	n := 0
	for _, b := range t.boards {
		if !b.IsSolved() {
			n++
		}
	}
	return n
}

// ShuffleAll shuffles every board in the arena. Each board's shuffle depth
// is scaled by its size relative to the root, so small nested boards are not
// over-shuffled.
func (t *Tree) ShuffleAll(rng *rand.Rand, moveCount int) {
	rootSize := t.boards[0].Size()
	for _, b := range t.boards {
		moves := moveCount * b.Size() / rootSize
		if moves < 3 {
			moves = 3
		}
		b.Shuffle(rng, moves)
	}
	t.active = 0
}
