// Package eval contains static position evaluation for Xiangqi positions:
// material, piece-square tables and an endgame king-advancement bonus.
package eval

import (
	"fmt"

	"github.com/tranvietanh/xiangqi/pkg/board"
)

// Score is a signed position score in centipawns, always from Red's
// perspective: positive favors Red, negative favors Black. Search negates or
// compares against this absolute scale rather than flipping sign per node
// (see pkg/search), which keeps aspiration windows and mate-distance math
// unambiguous.
type Score int32

const (
	NegInf         = MinScore - 1
	MinScore Score = -1_000_000
	MaxScore Score = 1_000_000
	Inf            = MaxScore + 1
)

// MateScore is the magnitude assigned to a forced mate, reduced by ply so
// that shallower mates score higher than deeper ones (prefer the fastest
// mate, avoid the slowest loss).
const MateScore Score = 50_000

// MateIn returns the score for delivering mate in the given ply count.
func MateIn(ply int) Score {
	return MateScore - Score(ply)
}

// MatedIn returns the score for being mated in the given ply count.
func MatedIn(ply int) Score {
	return -MateScore + Score(ply)
}

// IsMateScore returns true iff s represents a forced mate rather than a
// material/positional evaluation.
func IsMateScore(s Score) bool {
	return s > MateScore-1000 || s < -MateScore+1000
}

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

// Unit returns the signed unit for the color: 1 for Red, -1 for Black. Used
// to convert an absolute (Red-relative) Score into a side-relative one.
func Unit(c board.Color) Score {
	if c == board.Red {
		return 1
	}
	return -1
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the larger of a and b.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of a and b.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// NominalValue is the absolute material value of a piece kind in centipawns.
func NominalValue(k board.Kind) Score {
	switch k {
	case board.King:
		return 10000
	case board.Advisor:
		return 200
	case board.Elephant:
		return 200
	case board.Knight:
		return 400
	case board.Rook:
		return 900
	case board.Cannon:
		return 450
	case board.Pawn:
		return 100
	default:
		return 0
	}
}
