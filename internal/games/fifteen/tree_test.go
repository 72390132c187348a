package fifteen

import (
	"math/rand"
	"testing"
)

func TestNewTree(t *testing.T) {
	tree := NewTree(3, 3)

	if tree.BoardCount() != 1 {
		t.Errorf("BoardCount() = %d, expected 1", tree.BoardCount())
	}
	if !tree.AtRoot() {
		t.Error("new tree should start at the root")
	}
	if tree.Root() != tree.Active() {
		t.Error("root should be the active board")
	}
	if tree.ParentTile() != -1 {
		t.Errorf("ParentTile() = %d at root, expected -1", tree.ParentTile())
	}
	if !tree.AllSolved() {
		t.Error("new tree should be fully solved")
	}
}

func TestAddChild(t *testing.T) {
	tree := NewTree(3, 3)

	idx, ok := tree.AddChild(0, 4, 2, 2)
	if !ok {
		t.Fatal("AddChild on a free tile should succeed")
	}
	if tree.BoardCount() != 2 {
		t.Errorf("BoardCount() = %d, expected 2", tree.BoardCount())
	}
	if got, ok := tree.ChildAt(0, 4); !ok || got != idx {
		t.Errorf("ChildAt(0, 4) = (%d, %v), expected (%d, true)", got, ok, idx)
	}

	// The empty tile cannot hold content.
	if _, ok := tree.AddChild(0, tree.Root().EmptyOrdinal(), 2, 2); ok {
		t.Error("AddChild on the empty tile should fail")
	}
	// One child per tile.
	if _, ok := tree.AddChild(0, 4, 2, 2); ok {
		t.Error("AddChild on an occupied tile should fail")
	}
}

func TestEnterAndAscend(t *testing.T) {
	tree := NewTree(3, 3)
	idx, _ := tree.AddChild(0, 2, 2, 2)

	if tree.Enter(5) {
		t.Error("Enter should fail on a tile with no child")
	}
	if !tree.Enter(2) {
		t.Fatal("Enter(2) should succeed")
	}
	if tree.ActiveIndex() != idx {
		t.Errorf("ActiveIndex() = %d, expected %d", tree.ActiveIndex(), idx)
	}
	if tree.ParentTile() != 2 {
		t.Errorf("ParentTile() = %d, expected 2", tree.ParentTile())
	}

	if !tree.Ascend() {
		t.Fatal("Ascend from a child should succeed")
	}
	if !tree.AtRoot() {
		t.Error("should be back at the root")
	}
	if tree.Ascend() {
		t.Error("Ascend at the root should fail")
	}
}

func TestEnterFirstUnsolved(t *testing.T) {
	tree := NewTree(3, 3)
	a, _ := tree.AddChild(0, 1, 2, 2)
	b, _ := tree.AddChild(0, 5, 2, 2)

	// Everything solved: nothing to enter.
	if tree.EnterFirstUnsolved() {
		t.Error("EnterFirstUnsolved should fail when all children are solved")
	}

	// Unsolve the second child only.
	tree.Board(b).SwapWithEmpty(0, -1)
	if !tree.EnterFirstUnsolved() {
		t.Fatal("EnterFirstUnsolved should find the unsolved child")
	}
	if tree.ActiveIndex() != b {
		t.Errorf("ActiveIndex() = %d, expected %d", tree.ActiveIndex(), b)
	}
	tree.Ascend()

	// Unsolve both: tile order picks the lower ordinal first.
	tree.Board(a).SwapWithEmpty(0, -1)
	tree.EnterFirstUnsolved()
	if tree.ActiveIndex() != a {
		t.Errorf("ActiveIndex() = %d, expected %d (lowest tile ordinal)", tree.ActiveIndex(), a)
	}
}

func TestUnsolvedCount(t *testing.T) {
	tree := NewTree(3, 3)
	tree.AddChild(0, 0, 2, 2)
	tree.AddChild(0, 3, 2, 2)

	if n := tree.UnsolvedCount(); n != 0 {
		t.Errorf("UnsolvedCount() = %d, expected 0", n)
	}

	tree.Root().SwapWithEmpty(0, -1)
	tree.Board(1).SwapWithEmpty(0, -1)
	if n := tree.UnsolvedCount(); n != 2 {
		t.Errorf("UnsolvedCount() = %d, expected 2", n)
	}
	if tree.AllSolved() {
		t.Error("AllSolved() should be false")
	}
}

func TestShuffleAll(t *testing.T) {
	tree := NewTree(3, 3)
	tree.AddChild(0, 1, 2, 2)
	tree.Enter(1)

	tree.ShuffleAll(rand.New(rand.NewSource(11)), 30)

	if !tree.AtRoot() {
		t.Error("ShuffleAll should reset the active board to the root")
	}
	for i := 0; i < tree.BoardCount(); i++ {
		assertPermutation(t, tree.Board(i))
	}
}
