package search

import (
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

const (
	mediumMaxRootMoves  = 20
	mediumMaxChildMoves = 15
	mediumOverlayWeight = 0.10
)

// Medium is a 2-ply alpha-beta engine over a capped, ordered move list, with
// a small positional overlay layered on top of Standard evaluation. It
// shares no state with Hard's Search: it keeps no transposition table,
// killers or history, matching its shallower, cheaper role.
type Medium struct {
	Eval eval.Evaluator
}

func NewMedium(ev eval.Evaluator) *Medium {
	return &Medium{Eval: ev}
}

// BestMove runs a 2-ply search capped at mediumMaxRootMoves root moves and
// mediumMaxChildMoves replies, returning the best move for side. Returns
// false if side has no legal move.
func (md *Medium) BestMove(b *board.Board, side board.Color) (board.Move, bool) {
	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		return board.Move{}, false
	}
	moves = orderMoves(b, moves, md.Eval, NewKillers(), NewHistory(), 0, board.Move{})
	if len(moves) > mediumMaxRootMoves {
		moves = moves[:mediumMaxRootMoves]
	}

	maximizing := side == board.Red
	var best board.Move
	bestScore := eval.NegInf
	if !maximizing {
		bestScore = eval.Inf
	}

	for _, m := range moves {
		u, err := b.Apply(m)
		if err != nil {
			panic(err)
		}
		score := md.search(b, side.Opponent(), 1, eval.NegInf, eval.Inf)
		b.Undo(u)

		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			best = m
		}
	}
	return best, true
}

func (md *Medium) search(b *board.Board, side board.Color, depth int, alpha, beta eval.Score) eval.Score {
	maximizing := side == board.Red

	if depth == 0 {
		return md.evaluate(b)
	}

	moves := b.LegalMoves(side)
	if len(moves) == 0 {
		if b.IsInCheck(side) {
			if side == board.Red {
				return eval.MatedIn(0)
			}
			return eval.MateIn(0)
		}
		return 0
	}
	moves = orderMoves(b, moves, md.Eval, NewKillers(), NewHistory(), 0, board.Move{})
	if len(moves) > mediumMaxChildMoves {
		moves = moves[:mediumMaxChildMoves]
	}

	best := eval.NegInf
	if !maximizing {
		best = eval.Inf
	}

	for _, m := range moves {
		u, err := b.Apply(m)
		if err != nil {
			panic(err)
		}
		score := md.search(b, side.Opponent(), depth-1, alpha, beta)
		b.Undo(u)

		if maximizing {
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < best {
				best = score
			}
			if score < beta {
				beta = score
			}
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// evaluate layers a small positional overlay (center control, piece
// activity, king safety, pawn structure) on top of Standard evaluation,
// worth roughly mediumOverlayWeight of the material score.
func (md *Medium) evaluate(b *board.Board) eval.Score {
	base := md.Eval.Evaluate(b)
	overlay := centerControl(b) + pieceActivity(b) + kingSafety(b) + pawnStructure(b)
	return base + eval.Score(float64(overlay)*mediumOverlayWeight)
}

// centerControl rewards pieces occupying the central file band (columns
// 3-5), a cheap proxy for board influence; attacks on the band are not
// counted.
func centerControl(b *board.Board) int {
	score := 0
	for r := 0; r < board.NumRows; r++ {
		for c := 3; c <= 5; c++ {
			p := b.PieceAt(board.Sq(r, c))
			if p.IsEmpty() {
				continue
			}
			v := int(eval.NominalValue(p.Kind()))
			if p.IsBlack() {
				v = -v
			}
			score += v / 20
		}
	}
	return score
}

// pieceActivity rewards mobility: the number of pseudo-legal moves
// available, a standard inexpensive activity proxy.
func pieceActivity(b *board.Board) int {
	red := len(b.PseudoLegalMoves(board.Red))
	black := len(b.PseudoLegalMoves(board.Black))
	return (red - black) * 2
}

// kingSafety penalizes a king whose palace has been stripped of defenders.
func kingSafety(b *board.Board) int {
	return defenderCount(b, board.Red)*10 - defenderCount(b, board.Black)*10
}

func defenderCount(b *board.Board, side board.Color) int {
	count := 0
	for r := 0; r < board.NumRows; r++ {
		for c := 3; c <= 5; c++ {
			s := board.Sq(r, c)
			p := b.PieceAt(s)
			if p.IsEmpty() || p.Color() != side {
				continue
			}
			if p.Kind() == board.Advisor || p.Kind() == board.Elephant {
				count++
			}
		}
	}
	return count
}

// pawnStructure rewards pawns that have crossed the river, where they gain
// sideways mobility and attacking value.
func pawnStructure(b *board.Board) int {
	score := 0
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			p := b.PieceAt(board.Sq(r, c))
			if p.Kind() != board.Pawn {
				continue
			}
			crossed := (p.IsRed() && r > 4) || (p.IsBlack() && r < 5)
			if !crossed {
				continue
			}
			if p.IsRed() {
				score += 5
			} else {
				score -= 5
			}
		}
	}
	return score
}
