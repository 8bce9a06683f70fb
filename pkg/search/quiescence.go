package search

import (
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

// quiescence extends search along capture sequences only, to avoid the
// horizon effect at the leaves of the main search. Checks are deliberately
// not extended here: cheap and shallow beats exhaustive and slow for this
// engine's budget.
func (s *Search) quiescence(b *board.Board, side board.Color, alpha, beta eval.Score, maximizing bool) eval.Score {
	s.nodes++

	if s.timeUp() {
		return s.eval.Evaluate(b)
	}

	standPat := s.eval.Evaluate(b)
	if maximizing {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	} else {
		if standPat <= alpha {
			return alpha
		}
		if standPat < beta {
			beta = standPat
		}
	}

	captures := capturesOnly(b, b.LegalMoves(side))
	if len(captures) == 0 {
		return standPat
	}
	captures = orderMoves(b, captures, s.eval, s.killers, s.history, 0, board.Move{})

	for _, m := range captures {
		u, err := b.Apply(m)
		if err != nil {
			panic(err)
		}
		score := s.quiescence(b, side.Opponent(), alpha, beta, !maximizing)
		b.Undo(u)

		if maximizing {
			if score > alpha {
				alpha = score
			}
		} else {
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			break
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}
