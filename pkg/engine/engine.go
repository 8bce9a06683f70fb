// Package engine ties board, evaluation and search together into a
// stateful game session: reset, make a move, take it back, and ask for the
// engine's own best move at a chosen difficulty.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/config"
	"github.com/tranvietanh/xiangqi/pkg/eval"
	"github.com/tranvietanh/xiangqi/pkg/search"
)

var version = build.NewVersion(0, 1, 0)

// Stats accumulates per-session search performance counters: move count and
// average think time across a game.
type Stats struct {
	TotalMoves int
	TotalThink time.Duration
}

// AverageThink returns the mean time spent per BestMove call, or zero if no
// move has been searched yet.
func (s Stats) AverageThink() time.Duration {
	if s.TotalMoves == 0 {
		return 0
	}
	return s.TotalThink / time.Duration(s.TotalMoves)
}

// Engine encapsulates a single Xiangqi game session: the current board, the
// search state shared across Hard searches (transposition table, killers,
// history) and the configured difficulty budgets. Unlike a concurrent
// search harness, a session serves one request at a time; Engine is safe
// for concurrent use only because of the guarding mutex, not because its
// search is itself concurrent.
type Engine struct {
	name, author string

	cfg *config.Config

	b       *board.Board
	history []board.Undo

	hard  *search.Search
	easy  *search.Easy
	mediu *search.Medium

	stats Stats

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithConfig overrides the difficulty and search-profile configuration.
func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// New creates a new engine session, already reset to the standard starting
// position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		cfg:    config.Default(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.Reset(ctx)

	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Board returns a clone of the current board, safe for the caller to
// inspect or mutate without affecting the session.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Clone()
}

// Reset resets the session to the standard starting position and clears
// all accumulated search state.
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset to starting position")

	e.b = board.NewBoard()
	e.history = nil
	e.stats = Stats{}
	if err := board.Validate(e.b); err != nil {
		logw.Exitf(ctx, "Standard starting position failed validation: %v", err)
	}

	profile := config.SearchProfileByName(e.cfg.Profile)
	tt := search.NewTable(1 << 16)
	s := search.NewSearch(eval.Standard{}, tt)
	s.SetMaxMovesPerDepth(profile.MaxMovesPerDepth)

	e.hard = s
	e.easy = search.NewEasy(eval.Standard{}, rand.New(rand.NewSource(time.Now().UnixNano())))
	e.mediu = search.NewMedium(eval.Standard{})
}

// Move applies a move given in coordinate notation, usually an opponent
// move received from outside the session.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := board.ParseMove(move)
	if err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	legal := e.b.LegalMoves(e.b.Turn())
	for _, candidate := range legal {
		if !candidate.Equals(m) {
			continue
		}
		u, err := e.b.Apply(candidate)
		if err != nil {
			return fmt.Errorf("illegal move %v: %w", m, err)
		}
		e.history = append(e.history, u)
		logw.Infof(ctx, "Move %v: %v", m, e.b)
		return nil
	}
	return fmt.Errorf("illegal move: %v", m)
}

// TakeBack undoes the latest move played in this session. Returns false if
// there is no move to take back.
func (e *Engine) TakeBack(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.history) == 0 {
		return false
	}

	u := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.b.Undo(u)

	logw.Infof(ctx, "Takeback %v", u.Move)
	return true
}

// BestMove selects a move for the side to move, at the given difficulty,
// without applying it to the session board. Returns false if the side to
// move has no legal move.
func (e *Engine) BestMove(ctx context.Context, d config.Difficulty) (board.Move, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	side := e.b.Turn()
	budget := e.cfg.Budget(d)
	start := time.Now()

	var m board.Move
	var ok bool

	switch d {
	case config.Easy:
		m, ok = e.easy.BestMove(e.b, side)
		logw.Infof(ctx, "Easy move for %v: %v (ok=%v)", side, m, ok)
	case config.Medium:
		m, ok = e.mediu.BestMove(e.b, side)
		logw.Infof(ctx, "Medium move for %v: %v (ok=%v)", side, m, ok)
	default:
		var pv search.PV
		pv, ok = e.hard.BestMove(ctx, e.b, side, search.Budget{
			TimeLimit:  budget.TimeLimit,
			DepthLimit: lang.Some(budget.MaxDepth),
		})
		m = pv.Move
		logw.Infof(ctx, "Hard move for %v: %v, depth=%v, nodes=%v, score=%v (ok=%v)",
			side, pv.Move, pv.Depth, pv.Nodes, pv.Score, ok)
	}

	if ok {
		e.stats.TotalMoves++
		e.stats.TotalThink += time.Since(start)
	}
	return m, ok
}

// Stats returns the session's accumulated search performance counters.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.stats
}

// Play selects and applies a move for the side to move at the given
// difficulty, returning the move played. Returns false if there was no
// legal move to play.
func (e *Engine) Play(ctx context.Context, d config.Difficulty) (board.Move, bool, error) {
	m, ok := e.BestMove(ctx, d)
	if !ok {
		return board.Move{}, false, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	u, err := e.b.Apply(m)
	if err != nil {
		return board.Move{}, false, fmt.Errorf("engine selected illegal move %v: %w", m, err)
	}
	e.history = append(e.history, u)
	return m, true, nil
}
