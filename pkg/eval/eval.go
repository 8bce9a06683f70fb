package eval

import "github.com/tranvietanh/xiangqi/pkg/board"

// endgamePieceThreshold: once this many or fewer pieces remain on the board,
// Evaluate layers in the king-activity bonus. Below this count the palace
// and river constraints matter less than king centralization/advancement.
const endgamePieceThreshold = 10

// Evaluator is a static position evaluator. Its output is always from Red's
// perspective: positive favors Red, negative favors Black. Evaluate is pure
// and deterministic given a board value, so unlike search it needs no
// cancellation plumbing.
type Evaluator interface {
	Evaluate(b *board.Board) Score
}

// Material evaluates material balance only, ignoring piece placement. It is
// the cheapest evaluator; Engine does not use it.
type Material struct{}

func (Material) Evaluate(b *board.Board) Score {
	return materialScore(b)
}

func materialScore(b *board.Board) Score {
	var score Score
	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			p := b.PieceAt(board.Sq(r, c))
			if p.IsEmpty() {
				continue
			}
			v := NominalValue(p.Kind())
			if p.IsBlack() {
				v = -v
			}
			score += v
		}
	}
	return score
}

// Standard evaluates material plus piece-square placement plus, in the
// endgame, a king-activity bonus. This backs all three of Engine's
// difficulties.
type Standard struct{}

func (Standard) Evaluate(b *board.Board) Score {
	var score Score
	redPieces, blackPieces := 0, 0

	for r := 0; r < board.NumRows; r++ {
		for c := 0; c < board.NumCols; c++ {
			s := board.Sq(r, c)
			p := b.PieceAt(s)
			if p.IsEmpty() {
				continue
			}

			v := NominalValue(p.Kind())
			pst := Score(pstValue(p.Kind(), p.Color(), s))
			if p.IsRed() {
				redPieces++
				score += v + pst
			} else {
				blackPieces++
				score -= v + pst
			}
		}
	}

	if redPieces+blackPieces <= endgamePieceThreshold {
		score += endgameKingBonus(b)
	}
	return score
}

// endgameKingBonus rewards an advanced Red king and penalizes an advanced
// Black king, reflecting that with few pieces left the king itself becomes a
// fighting piece worth activating.
func endgameKingBonus(b *board.Board) Score {
	const perRow = 3

	red := b.KingSquare(board.Red)
	black := b.KingSquare(board.Black)

	bonus := Score(int(red.Row) * perRow)
	bonus -= Score(int(board.NumRows-1-black.Row) * perRow)
	return bonus
}
