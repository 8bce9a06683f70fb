package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tranvietanh/xiangqi/pkg/board"
)

func TestNewBoardStartingPosition(t *testing.T) {
	b := board.NewBoard()
	assert.Equal(t, board.Red, b.Turn())
	assert.Equal(t, board.RedKing, b.PieceAt(board.Sq(0, 4)))
	assert.Equal(t, board.BlackKing, b.PieceAt(board.Sq(9, 4)))
	assert.Equal(t, board.RedCannon, b.PieceAt(board.Sq(2, 1)))
	assert.Equal(t, board.RedPawn, b.PieceAt(board.Sq(3, 0)))
	assert.Equal(t, board.BlackPawn, b.PieceAt(board.Sq(6, 0)))
	assert.True(t, b.PieceAt(board.Sq(4, 4)).IsEmpty())
}

func TestApplyAndUndoRoundTrip(t *testing.T) {
	b := board.NewBoard()
	before := b.String()

	m := board.Move{From: board.Sq(3, 0), To: board.Sq(4, 0)}
	u, err := b.Apply(m)
	assert.NoError(t, err)
	assert.Equal(t, board.Black, b.Turn())
	assert.True(t, b.PieceAt(board.Sq(3, 0)).IsEmpty())
	assert.Equal(t, board.RedPawn, b.PieceAt(board.Sq(4, 0)))

	b.Undo(u)
	assert.Equal(t, before, b.String())
	assert.Equal(t, board.Red, b.Turn())
}

func TestApplyRejectsWrongSideToMove(t *testing.T) {
	b := board.NewBoard()
	m := board.Move{From: board.Sq(6, 0), To: board.Sq(5, 0)}
	_, err := b.Apply(m)
	assert.Error(t, err)
	var illegal *board.IllegalMoveError
	assert.ErrorAs(t, err, &illegal)
}

func TestApplyRejectsEmptySource(t *testing.T) {
	b := board.NewBoard()
	m := board.Move{From: board.Sq(4, 4), To: board.Sq(5, 4)}
	_, err := b.Apply(m)
	assert.Error(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	b := board.NewBoard()
	cp := b.Clone()
	_, err := b.Apply(board.Move{From: board.Sq(3, 0), To: board.Sq(4, 0)})
	assert.NoError(t, err)

	assert.Equal(t, board.RedPawn, cp.PieceAt(board.Sq(3, 0)))
	assert.True(t, cp.PieceAt(board.Sq(4, 0)).IsEmpty())
}

func TestStartingPositionLegalMoveCount(t *testing.T) {
	b := board.NewBoard()
	moves := b.LegalMoves(board.Red)
	assert.Equal(t, 44, len(moves))
}

func TestElephantNeverCrossesRiver(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(4, 2), board.RedElephant)
	b.SetTurn(board.Red)

	moves := b.PseudoLegalMoves(board.Red)
	for _, m := range moves {
		if m.From.Equals(board.Sq(4, 2)) {
			assert.LessOrEqual(t, int(m.To.Row), 4)
		}
	}
}

func TestElephantBlockedByEye(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(2, 2), board.RedElephant)
	b.Set(board.Sq(1, 3), board.RedPawn)
	b.SetTurn(board.Red)

	for _, m := range b.PseudoLegalMoves(board.Red) {
		assert.False(t, m.From.Equals(board.Sq(2, 2)) && m.To.Equals(board.Sq(0, 4)))
	}
}

func TestCannonRequiresExactlyOneScreenToCapture(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(0, 0), board.RedCannon)
	b.Set(board.Sq(5, 0), board.BlackPawn)
	b.SetTurn(board.Red)

	found := false
	for _, m := range b.PseudoLegalMoves(board.Red) {
		if m.From.Equals(board.Sq(0, 0)) && m.To.Equals(board.Sq(5, 0)) {
			found = true
		}
	}
	assert.False(t, found, "cannon cannot capture with no screen")

	b.Set(board.Sq(3, 0), board.RedPawn)
	found = false
	for _, m := range b.PseudoLegalMoves(board.Red) {
		if m.From.Equals(board.Sq(0, 0)) && m.To.Equals(board.Sq(5, 0)) {
			found = true
		}
	}
	assert.True(t, found, "cannon captures over exactly one screen")
}

func TestFlyingGeneralIsCheck(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.SetTurn(board.Red)

	assert.True(t, b.KingsFacing())
	assert.True(t, b.IsInCheck(board.Red))
}

func TestLegalMovesExcludesSelfCheck(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(5, 4), board.BlackRook)
	b.Set(board.Sq(2, 0), board.RedRook)
	b.SetTurn(board.Red)

	for _, m := range b.LegalMoves(board.Red) {
		assert.False(t, m.From.Equals(board.Sq(2, 0)) && m.To.Equals(board.Sq(2, 4)))
	}
}

func TestZobristHashMatchesAfterApplyUndo(t *testing.T) {
	b := board.NewBoard()
	h0 := b.Hash()

	m := board.Move{From: board.Sq(3, 0), To: board.Sq(4, 0)}
	h1 := b.HashAfterMove(h0, m)
	u, err := b.Apply(m)
	assert.NoError(t, err)
	assert.Equal(t, b.Hash(), h1)

	b.Undo(u)
	assert.Equal(t, h0, b.Hash())
}

func TestZobristDistinguishesPositions(t *testing.T) {
	a := board.NewBoard()
	c := board.NewBoard()
	_, err := c.Apply(board.Move{From: board.Sq(3, 4), To: board.Sq(4, 4)})
	assert.NoError(t, err)
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestValidateMoveRejectsBadShape(t *testing.T) {
	b := board.NewBoard()
	err := board.ValidateMove(b, board.Move{From: board.Sq(0, 4), To: board.Sq(3, 4)})
	assert.Error(t, err)
}

func TestValidateMoveAcceptsGoodShape(t *testing.T) {
	b := board.NewBoard()
	err := board.ValidateMove(b, board.Move{From: board.Sq(3, 0), To: board.Sq(4, 0)})
	assert.NoError(t, err)
}

func TestValidateAcceptsStartingPosition(t *testing.T) {
	b := board.NewBoard()
	assert.NoError(t, board.Validate(b))
}

func TestValidateRejectsElephantPastRiver(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)
	b.Set(board.Sq(5, 2), board.RedElephant)

	err := board.Validate(b)
	assert.Error(t, err)
}

func TestValidateRejectsMissingKing(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)

	err := board.Validate(b)
	assert.Error(t, err)
}

func TestValidateRejectsFlyingGeneralExposure(t *testing.T) {
	b := board.NewEmptyBoard()
	b.Set(board.Sq(0, 4), board.RedKing)
	b.Set(board.Sq(9, 4), board.BlackKing)

	err := board.Validate(b)
	assert.Error(t, err)
}
