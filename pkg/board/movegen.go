package board

import "sort"

// PseudoLegalMoves returns every move available to the given color ignoring
// whether the mover's own king would end up in check or facing the enemy
// king. Moves are ordered deterministically by (from row, from col, to row,
// to col) so that callers relying on generation order (perft divide, tests)
// get reproducible output.
func (b *Board) PseudoLegalMoves(side Color) []Move {
	var moves []Move
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			from := Sq(r, c)
			p := b.PieceAt(from)
			if p.IsEmpty() || p.Color() != side {
				continue
			}
			moves = append(moves, b.pseudoLegalFrom(from, p)...)
		}
	}
	sort.SliceStable(moves, func(i, j int) bool {
		mi, mj := moves[i], moves[j]
		if mi.From != mj.From {
			return mi.From.Row < mj.From.Row || (mi.From.Row == mj.From.Row && mi.From.Col < mj.From.Col)
		}
		if mi.To.Row != mj.To.Row {
			return mi.To.Row < mj.To.Row
		}
		return mi.To.Col < mj.To.Col
	})
	return moves
}

func (b *Board) pseudoLegalFrom(from Square, p Piece) []Move {
	switch p.Kind() {
	case King:
		return b.kingMoves(from, p.Color())
	case Advisor:
		return b.advisorMoves(from, p.Color())
	case Elephant:
		return b.elephantMoves(from, p.Color())
	case Knight:
		return b.knightMoves(from, p.Color())
	case Rook:
		return b.rookMoves(from, p.Color())
	case Cannon:
		return b.cannonMoves(from, p.Color())
	case Pawn:
		return b.pawnMoves(from, p.Color())
	default:
		return nil
	}
}

// canLandOn returns true iff a piece of the given color may move onto s:
// either empty, or occupied by an opposing piece (capture).
func (b *Board) canLandOn(s Square, side Color) bool {
	if !s.InBounds() {
		return false
	}
	occ := b.PieceAt(s)
	return occ.IsEmpty() || occ.Color() != side
}

func (b *Board) kingMoves(from Square, side Color) []Move {
	var moves []Move
	deltas := []Square{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	for _, d := range deltas {
		to := Sq(int(from.Row+d.Row), int(from.Col+d.Col))
		if to.InBounds() && inPalace(side, to) && b.canLandOn(to, side) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (b *Board) advisorMoves(from Square, side Color) []Move {
	var moves []Move
	deltas := []Square{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	for _, d := range deltas {
		to := Sq(int(from.Row+d.Row), int(from.Col+d.Col))
		if to.InBounds() && inPalace(side, to) && b.canLandOn(to, side) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// elephantMoves: the elephant moves exactly two squares diagonally, never
// crosses the river, and is blocked if the intervening "eye" square is
// occupied.
func (b *Board) elephantMoves(from Square, side Color) []Move {
	var moves []Move
	deltas := []Square{{Row: 2, Col: 2}, {Row: 2, Col: -2}, {Row: -2, Col: 2}, {Row: -2, Col: -2}}
	for _, d := range deltas {
		to := Sq(int(from.Row+d.Row), int(from.Col+d.Col))
		if !to.InBounds() || hasCrossedRiver(side, to) {
			continue
		}
		eye := Sq(int(from.Row+d.Row/2), int(from.Col+d.Col/2))
		if !b.PieceAt(eye).IsEmpty() {
			continue
		}
		if b.canLandOn(to, side) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// knightMoves: the knight moves in an "L" shape and is blocked by a piece on
// the adjacent orthogonal square in the direction of travel (the "horse
// leg").
func (b *Board) knightMoves(from Square, side Color) []Move {
	var moves []Move
	type jump struct{ dr, dc, legR, legC int8 }
	jumps := []jump{
		{2, 1, 1, 0}, {2, -1, 1, 0},
		{-2, 1, -1, 0}, {-2, -1, -1, 0},
		{1, 2, 0, 1}, {-1, 2, 0, 1},
		{1, -2, 0, -1}, {-1, -2, 0, -1},
	}
	for _, j := range jumps {
		leg := Sq(int(from.Row+j.legR), int(from.Col+j.legC))
		if !leg.InBounds() || !b.PieceAt(leg).IsEmpty() {
			continue
		}
		to := Sq(int(from.Row+j.dr), int(from.Col+j.dc))
		if to.InBounds() && b.canLandOn(to, side) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (b *Board) rookMoves(from Square, side Color) []Move {
	return b.slideMoves(from, side, false)
}

// cannonMoves: the cannon slides like a rook when not capturing, but to
// capture it must jump exactly one intervening piece (the "screen").
func (b *Board) cannonMoves(from Square, side Color) []Move {
	return b.slideMoves(from, side, true)
}

func (b *Board) slideMoves(from Square, side Color, isCannon bool) []Move {
	var moves []Move
	dirs := []Square{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	for _, d := range dirs {
		screened := false
		for step := int8(1); ; step++ {
			to := Sq(int(from.Row+d.Row*step), int(from.Col+d.Col*step))
			if !to.InBounds() {
				break
			}
			occ := b.PieceAt(to)
			if !isCannon {
				if occ.IsEmpty() {
					moves = append(moves, Move{From: from, To: to})
					continue
				}
				if occ.Color() != side {
					moves = append(moves, Move{From: from, To: to})
				}
				break
			}
			// Cannon: before finding a screen, only empty squares are
			// non-capturing destinations. After the screen, the first
			// occupied square is a legal capture if it is an enemy piece.
			if !screened {
				if occ.IsEmpty() {
					moves = append(moves, Move{From: from, To: to})
					continue
				}
				screened = true
				continue
			}
			if occ.IsEmpty() {
				continue
			}
			if occ.Color() != side {
				moves = append(moves, Move{From: from, To: to})
			}
			break
		}
	}
	return moves
}

// pawnMoves: the pawn advances one square forward only; after crossing the
// river it may also step sideways, but never backward.
func (b *Board) pawnMoves(from Square, side Color) []Move {
	var moves []Move
	forward := int8(1)
	if side == Black {
		forward = -1
	}
	to := Sq(int(from.Row+forward), int(from.Col))
	if to.InBounds() && b.canLandOn(to, side) {
		moves = append(moves, Move{From: from, To: to})
	}
	if hasCrossedRiver(side, from) {
		for _, dc := range []int8{1, -1} {
			side2 := Sq(int(from.Row), int(from.Col+dc))
			if side2.InBounds() && b.canLandOn(side2, side) {
				moves = append(moves, Move{From: from, To: side2})
			}
		}
	}
	return moves
}

// KingSquare returns the square of the given color's king. Panics if the
// king is absent: a board with no king is not a reachable game state under
// legal play, and callers (check detection, evaluation) all assume one
// exists.
func (b *Board) KingSquare(side Color) Square {
	want := NewPiece(side, King)
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			if b.squares[r][c] == want {
				return Sq(r, c)
			}
		}
	}
	panic("board has no king for " + side.String())
}

// IsInCheck returns true iff the given color's king is currently attacked by
// an opposing piece, including the flying-general condition (the two kings
// facing each other on an open file counts as check; see KingsFacing).
func (b *Board) IsInCheck(side Color) bool {
	king := b.KingSquare(side)
	if b.KingsFacing() {
		return true
	}
	for _, m := range b.PseudoLegalMoves(side.Opponent()) {
		if m.To.Equals(king) {
			return true
		}
	}
	return false
}

// KingsFacing returns true iff both kings stand on the same file with no
// piece between them ("flying general"), an illegal condition that neither
// side may bring about on its own move.
func (b *Board) KingsFacing() bool {
	red := b.KingSquare(Red)
	black := b.KingSquare(Black)
	if red.Col != black.Col {
		return false
	}
	lo, hi := red.Row, black.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if !b.PieceAt(Sq(int(r), int(red.Col))).IsEmpty() {
			return false
		}
	}
	return true
}

// LegalMoves returns every pseudo-legal move for side that does not leave
// that side's own king in check (including flying-general) after the move.
// This is the move list search and perft must use; PseudoLegalMoves alone is
// not a legal move list.
func (b *Board) LegalMoves(side Color) []Move {
	pseudo := b.PseudoLegalMoves(side)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		u, err := b.Apply(m)
		if err != nil {
			panic(err)
		}
		if !b.IsInCheck(side) {
			legal = append(legal, m)
		}
		b.Undo(u)
	}
	return legal
}
