package search

import (
	"context"
	"time"

	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

// defaultMaxMovesPerDepth bounds how many ordered root moves are tried per
// iteration; interior nodes try up to four more. A SearchProfile (see
// pkg/config) may override it per search instance via SetMaxMovesPerDepth
// for a faster or slower/stronger trade-off.
const defaultMaxMovesPerDepth = 20

// lateMoveReductionMinDepth and lateMoveReductionMinIndex gate the late move
// reduction: only quiet moves at depth >= 3, ordered 5th or later (idx > 3,
// 0-indexed) are reduced.
const (
	lateMoveReductionMinDepth = 3
	lateMoveReductionMinIndex = 3
)

// Search holds one Hard-difficulty search's scratch state: transposition
// table, killer and history tables, and node/time bookkeeping. A Search runs
// synchronously, one call to BestMove at a time, with no goroutines inside;
// its tables carry over from one call to the next.
type Search struct {
	eval    eval.Evaluator
	tt      TranspositionTable
	killers *Killers
	history *History

	maxMovesPerDepth int
	nodes            uint64
	deadline         time.Time
	ctx              context.Context
}

// NewSearch returns a Search using ev for static evaluation and tt as its
// transposition table. Both may be reused across calls by the caller to
// retain warm-start state.
func NewSearch(ev eval.Evaluator, tt TranspositionTable) *Search {
	return &Search{
		eval:             ev,
		tt:               tt,
		killers:          NewKillers(),
		history:          NewHistory(),
		maxMovesPerDepth: defaultMaxMovesPerDepth,
	}
}

// SetMaxMovesPerDepth overrides the per-node move cap, e.g. from a Profile's
// "fast" (16) vs "balanced" (20) setting.
func (s *Search) SetMaxMovesPerDepth(n int) {
	s.maxMovesPerDepth = n
}

// Nodes returns the number of nodes visited by the most recent search.
func (s *Search) Nodes() uint64 {
	return s.nodes
}

// timeUp reports whether the search should stop: either its wall-clock
// deadline has passed, or the caller's context has been cancelled.
func (s *Search) timeUp() bool {
	if s.ctx != nil && contextx.IsCancelled(s.ctx) {
		return true
	}
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// alphabeta is the recursive negamax-free (explicit maximizing/minimizing)
// search core. Score is always reported from Red's perspective; side is
// always the side to move at this node, and maximizing is true iff side is
// Red, since Red always maximizes the absolute score and Black always
// minimizes it.
func (s *Search) alphabeta(b *board.Board, side board.Color, depth, ply int, alpha, beta eval.Score) eval.Score {
	maximizing := side == board.Red
	origAlpha, origBeta := alpha, beta

	hash := b.Hash()
	var ttBest board.Move
	if tightAlpha, tightBeta, cutoff, score, best := probe(s.tt, hash, depth, alpha, beta); true {
		ttBest = best
		if cutoff {
			return score
		}
		alpha, beta = tightAlpha, tightBeta
	}

	if depth == 0 {
		return s.quiescence(b, side, alpha, beta, maximizing)
	}

	s.nodes++

	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		if b.IsInCheck(side) {
			if side == board.Red {
				return eval.MatedIn(ply)
			}
			return eval.MateIn(ply)
		}
		return 0
	}

	ordered := orderMoves(b, moves, s.eval, s.killers, s.history, depth, ttBest)
	if len(ordered) > s.maxMovesPerDepth+4 {
		ordered = ordered[:s.maxMovesPerDepth+4]
	}

	bestScore := eval.NegInf
	if !maximizing {
		bestScore = eval.Inf
	}
	var bestMove board.Move

	for idx, m := range ordered {
		if s.timeUp() {
			break
		}

		reduction := 0
		if depth >= lateMoveReductionMinDepth && idx > lateMoveReductionMinIndex && isQuiet(b, m) {
			reduction = 1
		}

		u, err := b.Apply(m)
		if err != nil {
			panic(err)
		}

		var score eval.Score
		if idx == 0 {
			score = s.alphabeta(b, side.Opponent(), depth-1-reduction, ply+1, alpha, beta)
		} else {
			score = s.alphabeta(b, side.Opponent(), depth-1-reduction, ply+1, alpha, alpha+1)
			if maximizing && score > alpha && score < beta {
				score = s.alphabeta(b, side.Opponent(), depth-1, ply+1, alpha, beta)
			} else if !maximizing && score < beta && score > alpha {
				score = s.alphabeta(b, side.Opponent(), depth-1, ply+1, alpha, beta)
			}
		}

		b.Undo(u)

		if maximizing {
			if score > bestScore {
				bestScore = score
				bestMove = m
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				if isQuiet(b, m) {
					s.killers.Store(depth, m)
					s.history.Bump(m)
				}
				break
			}
		} else {
			if score < bestScore {
				bestScore = score
				bestMove = m
			}
			if score < beta {
				beta = score
			}
			if alpha >= beta {
				if isQuiet(b, m) {
					s.killers.Store(depth, m)
					s.history.Bump(m)
				}
				break
			}
		}
	}

	s.tt.Write(hash, Entry{
		Depth: depth,
		Score: bestScore,
		Bound: boundFor(bestScore, origAlpha, origBeta),
		Best:  bestMove,
	})
	return bestScore
}
