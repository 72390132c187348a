package fifteen

import (
	"math/rand"
	"testing"
)

// assertPermutation fails the test if the board's positions are not a
// permutation of [0, size).
func assertPermutation(t *testing.T, b *Board) {
	t.Helper()
	seen := make([]bool, b.Size())
	for ord, p := range b.Positions() {
		if p < 0 || p >= b.Size() {
			t.Fatalf("ordinal %d has out-of-range position %d", ord, p)
		}
		if seen[p] {
			t.Fatalf("position %d occupied twice", p)
		}
		seen[p] = true
	}
}

func TestNewBoardIsSolved(t *testing.T) {
	b := New(3, 3)

	if !b.IsSolved() {
		t.Error("new board should be solved")
	}
	if b.EmptyOrdinal() != 8 {
		t.Errorf("EmptyOrdinal() = %d, expected 8", b.EmptyOrdinal())
	}
	for ord, p := range b.Positions() {
		if ord != p {
			t.Errorf("Positions()[%d] = %d, expected identity", ord, p)
		}
	}
}

func TestCoordinateConversion(t *testing.T) {
	b := New(3, 2)

	tests := []struct {
		index    int
		col, row int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 2, 0},
		{3, 0, 1},
		{4, 1, 1},
		{5, 2, 1},
	}

	for _, tc := range tests {
		col, row := b.IndexToCoord(tc.index)
		if col != tc.col || row != tc.row {
			t.Errorf("IndexToCoord(%d) = (%d, %d), expected (%d, %d)", tc.index, col, row, tc.col, tc.row)
		}
		if got := b.CoordToIndex(tc.col, tc.row); got != tc.index {
			t.Errorf("CoordToIndex(%d, %d) = %d, expected %d", tc.col, tc.row, got, tc.index)
		}
	}
}

func TestOrdinalAt(t *testing.T) {
	b := New(3, 3)

	for index := 0; index < b.Size(); index++ {
		if got := b.OrdinalAt(index); got != index {
			t.Errorf("OrdinalAt(%d) = %d on solved board, expected %d", index, got, index)
		}
	}

	// Move a tile and check the inverse lookup follows
	ord, moved := b.SwapWithEmpty(0, -1)
	if !moved {
		t.Fatal("expected move to succeed")
	}
	if b.OrdinalAt(8) != ord {
		t.Errorf("OrdinalAt(8) = %d after swap, expected %d", b.OrdinalAt(8), ord)
	}
}

// The concrete 3x3 scenario: hole at index 8, sliding the tile above it down.
func TestSwapWithEmptyConcrete(t *testing.T) {
	b := New(3, 3)

	ord, moved := b.SwapWithEmpty(0, -1)
	if !moved {
		t.Fatal("SwapWithEmpty(0, -1) should succeed on a solved 3x3")
	}
	if ord != 5 {
		t.Errorf("moved ordinal = %d, expected 5", ord)
	}

	pos := b.Positions()
	if pos[5] != 8 {
		t.Errorf("pos[5] = %d, expected 8", pos[5])
	}
	if pos[8] != 5 {
		t.Errorf("pos[8] = %d, expected 5", pos[8])
	}
	if b.IsSolved() {
		t.Error("board should not be solved after one move")
	}
}

func TestIllegalMoveIsNoOp(t *testing.T) {
	b := New(3, 3)
	before := b.Positions()

	// Hole is at (2, 2); these all point off the grid.
	illegal := [][2]int{{1, 0}, {0, 1}}
	for _, off := range illegal {
		ord, moved := b.SwapWithEmpty(off[0], off[1])
		if moved {
			t.Errorf("SwapWithEmpty(%d, %d) should be illegal, moved ordinal %d", off[0], off[1], ord)
		}
	}

	after := b.Positions()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("illegal move changed positions: %v -> %v", before, after)
		}
	}
	if !b.IsSolved() {
		t.Error("board should still be solved after illegal moves")
	}
}

func TestMoveReversibility(t *testing.T) {
	b := New(3, 3)
	rng := rand.New(rand.NewSource(7))
	b.Shuffle(rng, 20)
	before := b.Positions()

	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for _, off := range offsets {
		if _, moved := b.SwapWithEmpty(off[0], off[1]); !moved {
			continue
		}
		if _, moved := b.SwapWithEmpty(-off[0], -off[1]); !moved {
			t.Fatalf("reverse of (%d, %d) should always be legal", off[0], off[1])
		}
		after := b.Positions()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("move + reverse is not identity: %v -> %v", before, after)
			}
		}
	}
}

func TestPermutationInvariant(t *testing.T) {
	b := New(4, 4)
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 500; i++ {
		// Random offsets, legal and illegal alike
		dx, dy := 0, 0
		if rng.Intn(2) == 0 {
			dx = rng.Intn(3) - 1
		} else {
			dy = rng.Intn(3) - 1
		}
		b.SwapWithEmpty(dx, dy)
		assertPermutation(t, b)
	}
}

func TestSlideTileTowardEmpty(t *testing.T) {
	t.Run("multi-cell slide along a row", func(t *testing.T) {
		b := New(3, 3)
		// Unsolve first so the slide is permitted; hole moves to index 7.
		if _, moved := b.SwapWithEmpty(-1, 0); !moved {
			t.Fatal("setup move failed")
		}
		// Now row 2 is [6, empty, 7]; tile 6 shares the row with the hole.
		if !b.SlideTileTowardEmpty(6) {
			t.Fatal("aligned slide should succeed")
		}
		// Single-cell distance: tile 6 lands in the hole's cell.
		if b.Positions()[6] != 7 {
			t.Errorf("pos[6] = %d, expected 7", b.Positions()[6])
		}
		assertPermutation(t, b)
	})

	t.Run("two-cell slide shifts the segment", func(t *testing.T) {
		b := New(3, 3)
		b.SwapWithEmpty(0, -1) // hole now at index 5, board unsolved
		// Row 1 is [3, 4, empty]; slide tile 3 from the far end.
		if !b.SlideTileTowardEmpty(3) {
			t.Fatal("aligned slide should succeed")
		}
		pos := b.Positions()
		if pos[3] != 4 || pos[4] != 5 {
			t.Errorf("segment did not shift: pos[3]=%d pos[4]=%d, expected 4 and 5", pos[3], pos[4])
		}
		// Hole ends at the clicked tile's original cell.
		if pos[b.EmptyOrdinal()] != 3 {
			t.Errorf("hole at %d, expected 3", pos[b.EmptyOrdinal()])
		}
		assertPermutation(t, b)
	})

	t.Run("fails on solved board", func(t *testing.T) {
		b := New(3, 3)
		if b.SlideTileTowardEmpty(7) {
			t.Error("slide should fail on a solved board")
		}
	})

	t.Run("fails when not aligned", func(t *testing.T) {
		b := New(3, 3)
		b.SwapWithEmpty(0, -1) // hole at index 5 (2, 1)
		// Tile 6 is at (0, 2): neither row nor column shared with the hole.
		if b.SlideTileTowardEmpty(6) {
			t.Error("slide should fail for an unaligned tile")
		}
	})

	t.Run("fails for the empty tile itself", func(t *testing.T) {
		b := New(3, 3)
		b.SwapWithEmpty(0, -1)
		if b.SlideTileTowardEmpty(b.EmptyOrdinal()) {
			t.Error("slide should fail for the empty ordinal")
		}
	})
}

func TestStepOrdinal(t *testing.T) {
	b := New(3, 3)

	// Tile 5 is directly above the hole: a valid single step.
	if !b.StepOrdinal(5) {
		t.Fatal("StepOrdinal(5) should succeed")
	}
	if b.Positions()[5] != 8 {
		t.Errorf("pos[5] = %d, expected 8", b.Positions()[5])
	}

	// Tile 0 is nowhere near the hole now.
	if b.StepOrdinal(0) {
		t.Error("StepOrdinal(0) should fail for a non-adjacent tile")
	}
	if b.StepOrdinal(b.EmptyOrdinal()) {
		t.Error("StepOrdinal should fail for the empty ordinal")
	}
}

func TestShuffle(t *testing.T) {
	t.Run("zero moves keeps the board solved", func(t *testing.T) {
		b := New(3, 3)
		b.Shuffle(rand.New(rand.NewSource(1)), 0)
		if !b.IsSolved() {
			t.Error("Shuffle(0) should leave the board solved")
		}
	})

	t.Run("preserves the permutation invariant", func(t *testing.T) {
		b := New(4, 4)
		b.Shuffle(rand.New(rand.NewSource(2)), 100)
		assertPermutation(t, b)
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		b1 := New(3, 3)
		b2 := New(3, 3)
		b1.Shuffle(rand.New(rand.NewSource(42)), 30)
		b2.Shuffle(rand.New(rand.NewSource(42)), 30)
		if !b1.Equal(b2) {
			t.Error("same seed should produce the same shuffle")
		}
	})
}

func TestCloneAndEqual(t *testing.T) {
	b := New(3, 3)
	b.Shuffle(rand.New(rand.NewSource(5)), 15)

	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone should equal its source")
	}
	if b.Key() != c.Key() {
		t.Fatal("clone should share its source's key")
	}

	// Mutating the clone must not touch the original
	before := b.Positions()
	c.SwapWithEmpty(0, -1)
	c.SwapWithEmpty(1, 0)
	after := b.Positions()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("mutating a clone changed the original")
		}
	}
}

func TestEqualShapeMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(3, 2)
	if a.Equal(b) {
		t.Error("boards of different shape should not be equal")
	}

	c := NewWithEmpty(2, 2, 0)
	d := NewWithEmpty(2, 2, 3)
	if c.Equal(d) {
		t.Error("boards with different empty ordinals should not be equal")
	}
}

func TestNewWithEmpty(t *testing.T) {
	b := NewWithEmpty(3, 3, 4)
	if b.EmptyOrdinal() != 4 {
		t.Errorf("EmptyOrdinal() = %d, expected 4", b.EmptyOrdinal())
	}
	if !b.IsSolved() {
		t.Error("board should start solved")
	}

	// Hole sits at the center; all four directions are legal.
	for _, off := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		c := b.Clone()
		if _, moved := c.SwapWithEmpty(off[0], off[1]); !moved {
			t.Errorf("SwapWithEmpty(%d, %d) should be legal with a centered hole", off[0], off[1])
		}
	}
}

func TestFromPositions(t *testing.T) {
	tests := []struct {
		name      string
		cols, row int
		empty     int
		positions []int
		wantErr   bool
	}{
		{"valid identity", 2, 2, 3, []int{0, 1, 2, 3}, false},
		{"valid permutation", 2, 2, 3, []int{1, 0, 3, 2}, false},
		{"wrong length", 2, 2, 3, []int{0, 1, 2}, true},
		{"duplicate position", 2, 2, 3, []int{0, 1, 1, 3}, true},
		{"position out of range", 2, 2, 3, []int{0, 1, 2, 4}, true},
		{"empty ordinal out of range", 2, 2, 4, []int{0, 1, 2, 3}, true},
		{"zero columns", 0, 2, 0, []int{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := FromPositions(tc.cols, tc.row, tc.empty, tc.positions)
			if tc.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertPermutation(t, b)
		})
	}
}

func TestSolvedIsDerivedNotStored(t *testing.T) {
	b := New(2, 2)

	// Solved -> unsolved -> solved purely through moves.
	b.SwapWithEmpty(0, -1)
	if b.IsSolved() {
		t.Fatal("board should be unsolved after a move")
	}
	b.SwapWithEmpty(0, 1)
	if !b.IsSolved() {
		t.Fatal("board should be solved again after the reverse move")
	}

	// Moves stay legal on a solved board.
	if _, moved := b.SwapWithEmpty(0, -1); !moved {
		t.Error("moves must remain legal on a solved board")
	}
}
