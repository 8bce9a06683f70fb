package eval

import "github.com/tranvietanh/xiangqi/pkg/board"

// Each table is written from Red's own perspective: row 0 is Red's back
// rank, row 9 is Black's. A Red piece at (r,c) is looked up directly; a
// Black piece at (r,c) uses the mirrored row (9-r), so the same table
// expresses "good squares relative to one's own palace" for both colors.
//
// Values are heuristic centipawn nudges layered on top of material, not
// legality constraints: nothing here prevents an elephant from being
// generated across the river, that is movegen's job.

var kingPST = [board.NumRows][board.NumCols]int{
	{0, 0, 0, 5, 8, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 5, 10, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var advisorPST = [board.NumRows][board.NumCols]int{
	{0, 0, 0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 8, 0, 0, 0, 0},
	{0, 0, 0, 5, 0, 5, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

// The elephant never crosses the river, so its table only ever gets
// consulted for rows 0-4 (Red) / 5-9 (Black, mirrored): good central
// defensive posts near the river bank score higher than corner squares.
var elephantPST = [board.NumRows][board.NumCols]int{
	{0, 0, 4, 0, 0, 0, 4, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 0, 0, 0, 6, 0, 0, 0, 2},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 4, 0, 0, 0, 4, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
}

var knightPST = [board.NumRows][board.NumCols]int{
	{0, 2, 4, 3, 2, 3, 4, 2, 0},
	{2, 0, 6, 4, 8, 4, 6, 0, 2},
	{4, 6, 8, 7, 10, 7, 8, 6, 4},
	{3, 4, 7, 9, 12, 9, 7, 4, 3},
	{2, 8, 10, 12, 14, 12, 10, 8, 2},
	{2, 8, 10, 12, 14, 12, 10, 8, 2},
	{3, 4, 7, 9, 12, 9, 7, 4, 3},
	{4, 6, 8, 7, 10, 7, 8, 6, 4},
	{2, 0, 6, 4, 8, 4, 6, 0, 2},
	{0, 2, 4, 3, 2, 3, 4, 2, 0},
}

var rookPST = [board.NumRows][board.NumCols]int{
	{0, 2, 4, 5, 6, 5, 4, 2, 0},
	{0, 2, 4, 5, 6, 5, 4, 2, 0},
	{2, 4, 6, 7, 8, 7, 6, 4, 2},
	{2, 4, 6, 7, 8, 7, 6, 4, 2},
	{4, 6, 8, 9, 10, 9, 8, 6, 4},
	{4, 6, 8, 9, 10, 9, 8, 6, 4},
	{6, 8, 10, 11, 12, 11, 10, 8, 6},
	{8, 10, 12, 13, 14, 13, 12, 10, 8},
	{10, 12, 14, 15, 16, 15, 14, 12, 10},
	{12, 12, 14, 15, 16, 15, 14, 12, 12},
}

var cannonPST = [board.NumRows][board.NumCols]int{
	{6, 8, 7, 6, 5, 6, 7, 8, 6},
	{4, 5, 6, 5, 4, 5, 6, 5, 4},
	{2, 4, 5, 4, 3, 4, 5, 4, 2},
	{0, 2, 3, 2, 1, 2, 3, 2, 0},
	{0, 0, 1, 0, 0, 0, 1, 0, 0},
	{0, 0, 1, 0, 0, 0, 1, 0, 0},
	{0, 2, 3, 2, 1, 2, 3, 2, 0},
	{2, 4, 5, 4, 3, 4, 5, 4, 2},
	{4, 5, 6, 5, 4, 5, 6, 5, 4},
	{6, 8, 7, 6, 5, 6, 7, 8, 6},
}

var pawnPST = [board.NumRows][board.NumCols]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 2, 4, 2, 0, 0, 0},
	{0, 0, 2, 4, 6, 4, 2, 0, 0},
	{0, 2, 4, 6, 8, 6, 4, 2, 0},
	{2, 4, 6, 8, 10, 8, 6, 4, 2},
	{4, 6, 8, 10, 12, 10, 8, 6, 4},
	{6, 8, 10, 12, 14, 12, 10, 8, 6},
	{8, 10, 12, 14, 16, 14, 12, 10, 8},
	{10, 12, 14, 16, 18, 16, 14, 12, 10},
}

func pstFor(k board.Kind) *[board.NumRows][board.NumCols]int {
	switch k {
	case board.King:
		return &kingPST
	case board.Advisor:
		return &advisorPST
	case board.Elephant:
		return &elephantPST
	case board.Knight:
		return &knightPST
	case board.Rook:
		return &rookPST
	case board.Cannon:
		return &cannonPST
	case board.Pawn:
		return &pawnPST
	default:
		return nil
	}
}

// pstValue returns the positional bonus for a piece of kind k and color c
// standing on s, always expressed from Red's perspective (add for Red,
// subtract for Black is the caller's responsibility).
func pstValue(k board.Kind, c board.Color, s board.Square) int {
	t := pstFor(k)
	if t == nil {
		return 0
	}
	r := s.Row
	if c == board.Black {
		r = board.NumRows - 1 - r
	}
	return t[r][s.Col]
}
