package board

import "math/rand"

// ZobristHash is a 64-bit position fingerprint used as the transposition
// table key.
type ZobristHash uint64

// zobristSeed is fixed rather than time-seeded so that two runs of the engine
// produce byte-identical hashes for the same position, which in turn makes
// search traces and transposition table behavior reproducible across runs.
const zobristSeed = 42

var zobristPieceKeys [NumColors][NumKinds][NumRows][NumCols]ZobristHash
var zobristTurnKey ZobristHash

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := Color(0); c < NumColors; c++ {
		for k := Kind(0); k < NumKinds; k++ {
			for r := 0; r < NumRows; r++ {
				for col := 0; col < NumCols; col++ {
					zobristPieceKeys[c][k][r][col] = ZobristHash(rng.Uint64())
				}
			}
		}
	}
	zobristTurnKey = ZobristHash(rng.Uint64())
}

// Hash computes the Zobrist fingerprint of the board from scratch. Search
// calls it at every node to key the transposition table; HashAfterMove
// yields the same value incrementally.
func (b *Board) Hash() ZobristHash {
	var h ZobristHash
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			p := b.squares[r][c]
			if p.IsEmpty() {
				continue
			}
			h ^= zobristPieceKeys[p.Color()][p.Kind()][r][c]
		}
	}
	if b.turn == Black {
		h ^= zobristTurnKey
	}
	return h
}

// HashAfterMove returns the Zobrist hash that results from applying m to a
// position currently hashed as h, without touching the board, in constant
// time rather than by recomputing Hash().
func (b *Board) HashAfterMove(h ZobristHash, m Move) ZobristHash {
	mover := b.PieceAt(m.From)
	captured := b.PieceAt(m.To)

	h ^= zobristPieceKeys[mover.Color()][mover.Kind()][m.From.Row][m.From.Col]
	if !captured.IsEmpty() {
		h ^= zobristPieceKeys[captured.Color()][captured.Kind()][m.To.Row][m.To.Col]
	}
	h ^= zobristPieceKeys[mover.Color()][mover.Kind()][m.To.Row][m.To.Col]
	h ^= zobristTurnKey
	return h
}
