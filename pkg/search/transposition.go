// Package search implements move ordering, quiescence, and the
// iterative-deepening alpha-beta engine used by the Hard difficulty, plus
// the shallow heuristic selectors used by Easy and Medium.
package search

import (
	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

// Bound represents the bound of a possibly-inexact stored score.
type Bound uint8

const (
	ExactBound Bound = iota
	LowerBound
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "exact"
	case LowerBound:
		return "lower"
	case UpperBound:
		return "upper"
	default:
		return "?"
	}
}

// Entry is a single transposition table record.
type Entry struct {
	Depth int
	Score eval.Score
	Bound Bound
	Best  board.Move
}

// TranspositionTable caches search results keyed by Zobrist hash. A single
// call to the search instance owns its table and uses it single-threaded;
// unlike the concurrent search harnesses this is modeled on, there is no
// need for atomic access here.
type TranspositionTable interface {
	Read(hash board.ZobristHash) (Entry, bool)
	Write(hash board.ZobristHash, e Entry)
	Len() int
	Clear()
}

// Table is a plain map-backed TranspositionTable with an "always replace"
// policy: the simplest correct policy to reason about. Not safe for
// concurrent use; the search model never shares one across goroutines.
type Table struct {
	m map[board.ZobristHash]Entry
}

// NewTable returns an empty transposition table. sizeHint is a capacity hint
// passed to the underlying map, not a hard limit.
func NewTable(sizeHint int) *Table {
	return &Table{m: make(map[board.ZobristHash]Entry, sizeHint)}
}

func (t *Table) Read(hash board.ZobristHash) (Entry, bool) {
	e, ok := t.m[hash]
	return e, ok
}

func (t *Table) Write(hash board.ZobristHash, e Entry) {
	t.m[hash] = e
}

func (t *Table) Len() int {
	return len(t.m)
}

func (t *Table) Clear() {
	t.m = make(map[board.ZobristHash]Entry, len(t.m))
}

// probe applies the transposition-table lookup rule to the running
// alpha/beta window. It returns the possibly-tightened bounds,
// a cutoff score (valid only if cutoff is true), and the stored best move if
// any (used to try it first in move ordering).
func probe(tt TranspositionTable, hash board.ZobristHash, depth int, alpha, beta eval.Score) (newAlpha, newBeta eval.Score, cutoff bool, cutoffScore eval.Score, best board.Move) {
	newAlpha, newBeta = alpha, beta
	e, ok := tt.Read(hash)
	if !ok || e.Depth < depth {
		if ok {
			best = e.Best
		}
		return
	}
	best = e.Best

	switch e.Bound {
	case ExactBound:
		return newAlpha, newBeta, true, e.Score, best
	case LowerBound:
		if e.Score > newAlpha {
			newAlpha = e.Score
		}
	case UpperBound:
		if e.Score < newBeta {
			newBeta = e.Score
		}
	}
	if newAlpha >= newBeta {
		return newAlpha, newBeta, true, e.Score, best
	}
	return newAlpha, newBeta, false, 0, best
}

// boundFor derives the bound flag to store, comparing the final score
// against the ORIGINAL alpha/beta captured before this node tightened them.
// Comparing against the post-tightening window here would produce an
// incorrect flag on a re-probed node.
func boundFor(score, origAlpha, origBeta eval.Score) Bound {
	switch {
	case score <= origAlpha:
		return UpperBound
	case score >= origBeta:
		return LowerBound
	default:
		return ExactBound
	}
}
