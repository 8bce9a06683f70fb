package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tranvietanh/xiangqi/pkg/config"
	"github.com/tranvietanh/xiangqi/pkg/engine"
)

func TestNewStartsAtStandardPosition(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	b := e.Board()
	assert.Equal(t, 44, len(b.LegalMoves(b.Turn())))
}

func TestMoveAndTakeBackRoundTrip(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	before := e.Board().String()

	err := e.Move(ctx, "c3c4")
	assert.NoError(t, err)
	assert.NotEqual(t, before, e.Board().String())

	ok := e.TakeBack(ctx)
	assert.True(t, ok)
	assert.Equal(t, before, e.Board().String())
}

func TestMoveRejectsIllegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	err := e.Move(ctx, "a0a9")
	assert.Error(t, err)
}

func TestTakeBackWithNoHistoryReturnsFalse(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	ok := e.TakeBack(ctx)
	assert.False(t, ok)
}

func TestPlayEasyAppliesALegalMove(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	m, ok, err := e.Play(ctx, config.Easy)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, m.IsZero())
}

func TestBestMoveDoesNotMutateSessionBoard(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	before := e.Board().String()
	_, ok := e.BestMove(ctx, config.Medium)
	assert.True(t, ok)
	assert.Equal(t, before, e.Board().String())
}

func TestStatsAccumulateAcrossMoves(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "TestEngine", "tester")

	assert.Equal(t, 0, e.Stats().TotalMoves)

	_, ok, err := e.Play(ctx, config.Easy)
	assert.NoError(t, err)
	assert.True(t, ok)

	stats := e.Stats()
	assert.Equal(t, 1, stats.TotalMoves)
	assert.True(t, stats.AverageThink() >= 0)
}
