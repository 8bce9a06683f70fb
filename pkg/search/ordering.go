package search

import (
	"sort"

	"github.com/tranvietanh/xiangqi/pkg/board"
	"github.com/tranvietanh/xiangqi/pkg/eval"
)

// maxKillersPerDepth mirrors the reference engine's two-slot killer list.
const maxKillersPerDepth = 2

// Killers holds up to two killer moves per remaining search depth: quiet moves that
// caused a beta cutoff at that depth in a sibling subtree, tried early in
// other branches at the same depth on the theory that a refutation here is
// likely a refutation there too.
type Killers struct {
	moves map[int][maxKillersPerDepth]board.Move
}

func NewKillers() *Killers {
	return &Killers{moves: make(map[int][maxKillersPerDepth]board.Move)}
}

// Store records m as a killer at the given depth, evicting the older slot.
// A no-op if m is already stored at that depth.
func (k *Killers) Store(depth int, m board.Move) {
	slots := k.moves[depth]
	if slots[0].Equals(m) || slots[1].Equals(m) {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
	k.moves[depth] = slots
}

// Contains returns true iff m is a stored killer at depth.
func (k *Killers) Contains(depth int, m board.Move) bool {
	slots := k.moves[depth]
	return slots[0].Equals(m) || slots[1].Equals(m)
}

// History is the history heuristic: a counter per (from, to) square pair,
// incremented whenever a quiet move at that pair causes a beta cutoff.
// Used to break ties among quiet moves lacking a more specific ordering
// signal.
type History struct {
	counts map[board.Move]int
}

func NewHistory() *History {
	return &History{counts: make(map[board.Move]int)}
}

func (h *History) Bump(m board.Move) {
	h.counts[m]++
}

func (h *History) Score(m board.Move) int {
	return h.counts[m]
}

// scoredMove pairs a move with its ordering priority, higher first.
type scoredMove struct {
	move  board.Move
	score int
}

// orderMoves scores and sorts moves: MVV-LVA for captures, a cheap PST-delta
// estimate, then killer/history as tiebreaks for quiet moves. b is the
// position BEFORE any of the moves are applied.
func orderMoves(b *board.Board, moves []board.Move, ev eval.Evaluator, killers *Killers, history *History, depth int, ttBest board.Move) []board.Move {
	before := ev.Evaluate(b)
	scored := make([]scoredMove, len(moves))

	for i, m := range moves {
		s := 0
		captured := b.PieceAt(m.To)
		mover := b.PieceAt(m.From)
		isCapture := !captured.IsEmpty()

		if isCapture {
			s += int(eval.NominalValue(captured.Kind()))*10 - int(eval.NominalValue(mover.Kind()))
		}

		u := b.ApplyUnchecked(m)
		after := ev.Evaluate(b)
		b.Undo(u)
		s += int(after - before)

		if !isCapture {
			if killers.Contains(depth, m) {
				s += 5000
			}
			s += history.Score(m)
		}
		if ttBest.Equals(m) {
			s += 1 << 20
		}

		scored[i] = scoredMove{move: m, score: s}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ordered := make([]board.Move, len(scored))
	for i, sm := range scored {
		ordered[i] = sm.move
	}
	return ordered
}

// isQuiet returns true iff m does not capture a piece, evaluated against b
// BEFORE the move is applied.
func isQuiet(b *board.Board, m board.Move) bool {
	return b.PieceAt(m.To).IsEmpty()
}

// capturesOnly filters moves down to those that capture a piece, for
// quiescence search.
func capturesOnly(b *board.Board, moves []board.Move) []board.Move {
	out := moves[:0:0]
	for _, m := range moves {
		if !b.PieceAt(m.To).IsEmpty() {
			out = append(out, m)
		}
	}
	return out
}
