package fifteen

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSolveAlreadySolved(t *testing.T) {
	b := New(3, 3)
	path, err := b.Solve(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 0 {
		t.Errorf("path = %v, expected empty", path)
	}
}

func TestSolveOneMoveAway(t *testing.T) {
	b := New(3, 3)
	b.SwapWithEmpty(0, -1) // tile 5 moved down into the hole

	path, err := b.Solve(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(path) != 1 || path[0] != 5 {
		t.Errorf("path = %v, expected [5]", path)
	}
}

func TestSolveOptimalityTwoByTwo(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Board)
		want  int // optimal move count
	}{
		{
			name:  "one move",
			setup: func(b *Board) { b.SwapWithEmpty(0, -1) },
			want:  1,
		},
		{
			name: "two moves",
			setup: func(b *Board) {
				b.SwapWithEmpty(0, -1)
				b.SwapWithEmpty(1, 0)
			},
			want: 2,
		},
		{
			name: "three moves",
			setup: func(b *Board) {
				b.SwapWithEmpty(0, -1)
				b.SwapWithEmpty(1, 0)
				b.SwapWithEmpty(0, 1)
			},
			want: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New(2, 2)
			tc.setup(b)
			path, err := b.Solve(0)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(path) != tc.want {
				t.Errorf("path length = %d, expected %d (path %v)", len(path), tc.want, path)
			}
		})
	}
}

// A k-move shuffle is solvable in at most k moves, and replaying the returned
// path step by step actually solves the board.
func TestSolveShuffledAndReplay(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		const shuffleMoves = 12
		b := New(3, 3)
		b.Shuffle(rand.New(rand.NewSource(seed)), shuffleMoves)
		before := b.Positions()

		path, err := b.Solve(0)
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(path) > shuffleMoves {
			t.Errorf("seed %d: path length %d exceeds shuffle depth %d", seed, len(path), shuffleMoves)
		}

		replay := b.Clone()
		for i, ord := range path {
			if !replay.StepOrdinal(ord) {
				t.Fatalf("seed %d: step %d (ordinal %d) was not a legal move", seed, i, ord)
			}
		}
		if !replay.IsSolved() {
			t.Errorf("seed %d: board not solved after replaying %v", seed, path)
		}
		// Solving must not mutate the board it was asked about
		after := b.Positions()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("seed %d: Solve mutated its receiver: %v -> %v", seed, before, after)
			}
		}
	}
}

func TestSolveNoSolution(t *testing.T) {
	// Swapping exactly two tiles flips permutation parity, which no sequence
	// of hole moves can undo.
	b, err := FromPositions(2, 2, 3, []int{1, 0, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := b.Solve(0)
	if !errors.Is(err, ErrNoSolution) {
		t.Errorf("err = %v, expected ErrNoSolution", err)
	}
	if path != nil {
		t.Errorf("path = %v, expected nil", path)
	}
}

func TestSolveSearchLimit(t *testing.T) {
	b := New(4, 4)
	b.Shuffle(rand.New(rand.NewSource(3)), 200)

	_, err := b.Solve(10)
	if !errors.Is(err, ErrSearchLimit) {
		t.Errorf("err = %v, expected ErrSearchLimit", err)
	}
}
