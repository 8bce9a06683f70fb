package search

import (
	"math/rand"

	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

const (
	easyCaptureBonus     = 25
	easyCheckBonus       = 15
	easyEscapeCheckBonus = 30
)

// Easy is a 1-ply selector that maximizes the post-move evaluation plus a
// few cheap tactical bonuses. It does not recurse and does not use a
// transposition table; it exists for gameplay difficulty selection, not
// search strength.
type Easy struct {
	Eval eval.Evaluator
	Rand *rand.Rand
}

// NewEasy returns an Easy selector. If r is nil, math/rand's package-level
// source is used for tie-breaking.
func NewEasy(ev eval.Evaluator, r *rand.Rand) *Easy {
	return &Easy{Eval: ev, Rand: r}
}

// BestMove returns the highest-scoring legal move for side, breaking ties
// uniformly at random among equally-scored moves. Returns false if side has
// no legal move.
func (e *Easy) BestMove(b *board.Board, side board.Color) (board.Move, bool) {
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	inCheckBefore := b.IsInCheck(side)
	maximizing := side == board.Red

	var best []board.Move
	var bestScore eval.Score
	bestScore = eval.NegInf
	if !maximizing {
		bestScore = eval.Inf
	}

	for _, m := range moves {
		score := e.scoreMove(b, m, side, inCheckBefore)

		switch {
		case maximizing && score > bestScore:
			bestScore = score
			best = []board.Move{m}
		case !maximizing && score < bestScore:
			bestScore = score
			best = []board.Move{m}
		case score == bestScore:
			best = append(best, m)
		}
	}

	if len(best) == 1 {
		return best[0], true
	}
	if e.Rand != nil {
		return best[e.Rand.Intn(len(best))], true
	}
	return best[rand.Intn(len(best))], true
}

func (e *Easy) scoreMove(b *board.Board, m board.Move, side board.Color, inCheckBefore bool) eval.Score {
	isCapture := !b.PieceAt(m.To).IsEmpty()

	u, err := b.Apply(m)
	if err != nil {
		panic(err)
	}
	score := e.Eval.Evaluate(b)
	opponentInCheck := b.IsInCheck(side.Opponent())
	selfStillInCheck := b.IsInCheck(side)
	b.Undo(u)

	sign := eval.Unit(side)
	if isCapture {
		score += sign * easyCaptureBonus
	}
	if opponentInCheck {
		score += sign * easyCheckBonus
	}
	if inCheckBefore && !selfStillInCheck {
		score += sign * easyEscapeCheckBonus
	}
	return score
}
