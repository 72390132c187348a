package fifteen

import "errors"

var (
	// ErrNoSolution is returned when the search space is exhausted without
	// reaching the solved state. Boards produced by Shuffle can never hit
	// this; parity-odd permutations built via FromPositions can.
	ErrNoSolution = errors.New("fifteen: board has no solution")

	// ErrSearchLimit is returned when the visited-state cap is exceeded
	// before a solution is found.
	ErrSearchLimit = errors.New("fifteen: search limit exceeded")
)

// searchNode is one BFS frontier entry: a hypothetical board plus the
// ordinal path that produced it.
type searchNode struct {
	board *Board
	path  []int
}

// Solve computes a shortest move sequence that solves the board, as the
// ordinals of the tiles to move. Replaying the sequence with StepOrdinal
// (one single-cell swap per entry) yields a solved board. Returns an empty
// sequence for an already-solved board.
//
// The search is breadth-first over states reachable via single swaps, so the
// first solution found is optimal in move count. Visited states are
// deduplicated via Key; without that, 3x3 search (~181k reachable states)
// already degrades badly.
//
// maxStates caps the number of distinct states visited (0 means unlimited).
// The caller owns latency: Solve runs to completion on the calling
// goroutine, so anything interactive should run it off the UI loop or keep
// maxStates modest.
func (b *Board) Solve(maxStates int) ([]int, error) {
	if b.IsSolved() {
		return []int{}, nil
	}

	start := b.Clone()
	seen := map[string]bool{start.Key(): true}
	queue := []searchNode{{board: start, path: nil}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, off := range dirOffsets {
			next := cur.board.Clone()
			ord, moved := next.SwapWithEmpty(off[0], off[1])
			if !moved {
				continue
			}

			path := make([]int, len(cur.path), len(cur.path)+1)
			copy(path, cur.path)
			path = append(path, ord)

			if next.IsSolved() {
				return path, nil
			}

			key := next.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			if maxStates > 0 && len(seen) > maxStates {
				return nil, ErrSearchLimit
			}
			queue = append(queue, searchNode{board: next, path: path})
		}
	}

	return nil, ErrNoSolution
}
