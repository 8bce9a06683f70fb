package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
	"github.com/tranvietanh/xiangqi/pkg/search"
)

func newSearch() *search.Search {
	return search.NewSearch(eval.Standard{}, search.NewTable(1024))
}

func TestBestMoveReturnsLegalMoveFromStartingPosition(t *testing.T) {
	b := board.NewBoard()
	s := newSearch()

	pv, ok := s.BestMove(context.Background(), b, board.Red, search.Budget{TimeLimit: 2 * time.Second, DepthLimit: lang.Some(3)})
	assert.True(t, ok)

	legal := b.LegalMoves(board.Red)
	found := false
	for _, m := range legal {
		if m.Equals(pv.Move) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBestMoveNoLegalMoveReturnsFalse(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 3), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(8, 5), board.RedRook)
	b.SetTurn(board.Black)

	s := newSearch()
	_, ok := s.BestMove(context.Background(), b, board.Black, search.Budget{TimeLimit: time.Second, DepthLimit: lang.Some(2)})
	assert.False(t, ok)
}

// TestBestMoveFindsMateInOne builds a position where Red's rook capture both
// delivers check and removes Black's only blocker, while Black's king
// cannot recapture without creating an illegal flying-general exposure to
// Red's own king on the same file. Black's remaining elephant cannot reach
// the checking square. This is checkmate in one for Red.
func TestBestMoveFindsMateInOne(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 3), board.RedKing)
	b.Set(board.Sq(6, 3), board.RedRook)
	b.Set(board.Sq(9, 3), board.BlackKing)
	b.Set(board.Sq(8, 3), board.BlackAdvisor)
	b.Set(board.Sq(9, 4), board.BlackElephant)
	b.SetTurn(board.Red)

	s := newSearch()
	pv, ok := s.BestMove(context.Background(), b, board.Red, search.Budget{TimeLimit: 2 * time.Second, DepthLimit: lang.Some(3)})
	assert.True(t, ok)
	assert.Equal(t, board.Move{From: board.Sq(6, 3), To: board.Sq(8, 3)}, pv.Move)
	assert.GreaterOrEqual(t, int(pv.Score), 49000)
}

// TestBestMoveAvoidsFlyingGeneralExposure places a Red cannon as the only
// piece standing between the two kings on the same file (a cannon, unlike a
// rook, does not attack the Black king without a screen). Moving it away
// would expose Red's own king to the enemy king on an open file, which is
// illegal; BestMove must never choose such a move regardless of how
// tempting the cannon's destination looks.
func TestBestMoveAvoidsFlyingGeneralExposure(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(5, 4), board.RedCannon)
	b.Set(board.Sq(9, 0), board.BlackRook)
	b.SetTurn(board.Red)

	legal := b.LegalMoves(board.Red)
	for _, m := range legal {
		assert.False(t, m.From.Equals(board.Sq(5, 4)) && m.To.Col != 4)
	}

	s := newSearch()
	pv, ok := s.BestMove(context.Background(), b, board.Red, search.Budget{TimeLimit: 2 * time.Second, DepthLimit: lang.Some(3)})
	assert.True(t, ok)
	assert.False(t, pv.Move.From.Equals(board.Sq(5, 4)) && pv.Move.To.Col != 4)
}

func TestTranspositionTableReadWrite(t *testing.T) {
	tt := search.NewTable(16)
	var hash board.ZobristHash = 42

	_, ok := tt.Read(hash)
	assert.False(t, ok)

	tt.Write(hash, search.Entry{Depth: 3, Score: 150, Bound: search.ExactBound})
	e, ok := tt.Read(hash)
	assert.True(t, ok)
	assert.Equal(t, 3, e.Depth)
	assert.Equal(t, eval.Score(150), e.Score)
	assert.Equal(t, 1, tt.Len())

	tt.Clear()
	assert.Equal(t, 0, tt.Len())
}

func TestKillersStoreAndContain(t *testing.T) {
	k := search.NewKillers()
	m1 := board.Move{From: board.Sq(0, 0), To: board.Sq(1, 0)}
	m2 := board.Move{From: board.Sq(0, 1), To: board.Sq(1, 1)}

	assert.False(t, k.Contains(5, m1))
	k.Store(5, m1)
	assert.True(t, k.Contains(5, m1))

	k.Store(5, m2)
	assert.True(t, k.Contains(5, m1))
	assert.True(t, k.Contains(5, m2))
}

func TestHistoryBumpAccumulates(t *testing.T) {
	h := search.NewHistory()
	m := board.Move{From: board.Sq(0, 0), To: board.Sq(1, 0)}
	assert.Equal(t, 0, h.Score(m))
	h.Bump(m)
	h.Bump(m)
	assert.Equal(t, 2, h.Score(m))
}
