package search

import (
	"context"
	"time"

	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

// aspirationWindow is the half-width W used once prev_best stabilizes at
// depth > 2.
const aspirationWindow eval.Score = 50

// aspirationMinDepth is the depth beyond which aspiration windows kick in;
// at and below it, the full window is searched.
const aspirationMinDepth = 2

// deadlineFraction is the fraction of the wall-clock budget after which the
// iterative loop stops starting new depths, leaving headroom for the
// in-flight iteration to return the last completed result rather than a
// partial one.
const deadlineFraction = 0.8

// Budget bounds one call to BestMove: a wall-clock ceiling and an optional
// depth cap. An unset DepthLimit means DefaultMaxDepth.
type Budget struct {
	TimeLimit  time.Duration
	DepthLimit lang.Optional[int]
}

// DefaultMaxDepth is the depth cap used when Budget.DepthLimit is unset.
const DefaultMaxDepth = 5

// PV reports the outcome of one best-move search: the move chosen, its
// score from Red's perspective, the depth actually completed, and node/time
// counters for diagnostics.
type PV struct {
	Move  board.Move
	Score eval.Score
	Depth int
	Nodes uint64
	Time  time.Duration
}

// BestMove runs iterative deepening from depth 1 up to budget.DepthLimit (or
// DefaultMaxDepth), returning the best move found at the last depth that
// completed within budget.TimeLimit. Returns the zero move and false if side
// has no legal move. It executes synchronously to completion or deadline,
// never suspending.
func (s *Search) BestMove(ctx context.Context, b *board.Board, side board.Color, budget Budget) (PV, bool) {
	start := time.Now()
	s.nodes = 0
	maxDepth := DefaultMaxDepth
	if v, ok := budget.DepthLimit.V(); ok && v > 0 {
		maxDepth = v
	}
	s.ctx = ctx
	if budget.TimeLimit > 0 {
		s.deadline = start.Add(time.Duration(float64(budget.TimeLimit) * deadlineFraction))
	} else {
		s.deadline = time.Time{}
	}

	rootMoves := b.LegalMoves(side)
	if len(rootMoves) == 0 {
		return PV{}, false
	}
	rootMoves = orderMoves(b, rootMoves, s.eval, s.killers, s.history, 0, board.Move{})

	best := rootMoves[0]
	var bestScore eval.Score
	var completedDepth int

	prevBest := eval.Score(0)
	maximizing := side == board.Red

	for depth := 1; depth <= maxDepth; depth++ {
		if s.timeUp() {
			break
		}

		useAspiration := depth > aspirationMinDepth
		alpha, beta := eval.NegInf, eval.Inf
		if useAspiration {
			alpha, beta = prevBest-aspirationWindow, prevBest+aspirationWindow
		}

		moves := rootMoves
		if len(moves) > s.maxMovesPerDepth {
			moves = moves[:s.maxMovesPerDepth]
		}

		depthBest := moves[0]
		depthScore := eval.NegInf
		if !maximizing {
			depthScore = eval.Inf
		}
		found := false

		for _, m := range moves {
			if s.timeUp() {
				break
			}

			u, err := b.Apply(m)
			if err != nil {
				panic(err)
			}
			score := s.alphabeta(b, side.Opponent(), depth-1, 1, alpha, beta)
			if useAspiration && (score <= alpha || score >= beta) {
				score = s.alphabeta(b, side.Opponent(), depth-1, 1, eval.NegInf, eval.Inf)
			}
			b.Undo(u)

			if maximizing && score > depthScore {
				depthScore = score
				depthBest = m
				found = true
			} else if !maximizing && score < depthScore {
				depthScore = score
				depthBest = m
				found = true
			}
		}

		// An iteration cut short by the deadline is discarded: its scores
		// come from truncated subtrees.
		if found && !s.timeUp() {
			best = depthBest
			bestScore = depthScore
			prevBest = depthScore
			completedDepth = depth
			rootMoves = reorderAround(rootMoves, best)
		}
	}

	return PV{
		Move:  best,
		Score: bestScore,
		Depth: completedDepth,
		Nodes: s.nodes,
		Time:  time.Since(start),
	}, true
}

// reorderAround moves best to the front of moves, preserving the relative
// order of the rest, so the next depth's iteration tries last depth's best
// move first.
func reorderAround(moves []board.Move, best board.Move) []board.Move {
	out := make([]board.Move, 0, len(moves))
	out = append(out, best)
	for _, m := range moves {
		if !m.Equals(best) {
			out = append(out, m)
		}
	}
	return out
}
