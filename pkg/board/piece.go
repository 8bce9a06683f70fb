package board

import "fmt"

// Kind represents a piece kind, independent of color. 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Advisor
	Elephant
	Knight
	Rook
	Cannon
	Pawn
)

const NumKinds = Pawn + 1

func (k Kind) String() string {
	switch k {
	case King:
		return "K"
	case Advisor:
		return "A"
	case Elephant:
		return "B"
	case Knight:
		return "N"
	case Rook:
		return "R"
	case Cannon:
		return "C"
	case Pawn:
		return "P"
	default:
		return "?"
	}
}

// Piece represents a piece kind plus color, or the absence of one. 4 bits.
type Piece uint8

const (
	NoPiece Piece = iota

	RedKing
	RedAdvisor
	RedElephant
	RedKnight
	RedRook
	RedCannon
	RedPawn

	BlackKing
	BlackAdvisor
	BlackElephant
	BlackKnight
	BlackRook
	BlackCannon
	BlackPawn
)

// NewPiece constructs a piece from a kind and color. NoKind yields NoPiece.
func NewPiece(c Color, k Kind) Piece {
	if k == NoKind {
		return NoPiece
	}
	if c == Black {
		return Piece(k) + Piece(BlackKing) - Piece(King)
	}
	return Piece(k)
}

// IsEmpty returns true iff the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Kind returns the piece kind. Undefined for NoPiece.
func (p Piece) Kind() Kind {
	if p == NoPiece {
		return NoKind
	}
	if p >= BlackKing {
		return Kind(p-BlackKing) + King
	}
	return Kind(p)
}

// Color returns the piece color. Undefined for NoPiece.
func (p Piece) Color() Color {
	if p >= BlackKing {
		return Black
	}
	return Red
}

// IsRed returns true iff the piece is a Red piece.
func (p Piece) IsRed() bool {
	return p != NoPiece && p < BlackKing
}

// IsBlack returns true iff the piece is a Black piece.
func (p Piece) IsBlack() bool {
	return p >= BlackKing
}

// SameColor returns true iff both pieces are non-empty and share a color.
func SameColor(a, b Piece) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Color() == b.Color()
}

func (p Piece) String() string {
	if p.IsEmpty() {
		return "."
	}
	s := p.Kind().String()
	if p.IsBlack() {
		return lower(s)
	}
	return s
}

func lower(s string) string {
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}

// ParsePiece parses the external textual encoding: uppercase KABNRCP for Red,
// lowercase kabnrcp for Black, '.' or ' ' for empty.
func ParsePiece(r rune) (Piece, error) {
	switch r {
	case '.', ' ':
		return NoPiece, nil
	case 'K':
		return RedKing, nil
	case 'A':
		return RedAdvisor, nil
	case 'B':
		return RedElephant, nil
	case 'N':
		return RedKnight, nil
	case 'R':
		return RedRook, nil
	case 'C':
		return RedCannon, nil
	case 'P':
		return RedPawn, nil
	case 'k':
		return BlackKing, nil
	case 'a':
		return BlackAdvisor, nil
	case 'b':
		return BlackElephant, nil
	case 'n':
		return BlackKnight, nil
	case 'r':
		return BlackRook, nil
	case 'c':
		return BlackCannon, nil
	case 'p':
		return BlackPawn, nil
	default:
		return NoPiece, fmt.Errorf("invalid piece rune: %q", r)
	}
}
