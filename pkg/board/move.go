package board

import "fmt"

// Move represents a move from one square to another. Promotions do not exist
// in Xiangqi, so unlike chess moves there is no promotion piece.
type Move struct {
	From, To Square
}

// ParseMove parses a move in pure coordinate notation, such as "a3a4": a
// From square immediately followed by a To square.
func ParseMove(str string) (Move, error) {
	if len(str) != 4 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}
	from, err := ParseSquare(str[:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	to, err := ParseSquare(str[2:])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", str, err)
	}
	return Move{From: from, To: to}, nil
}

func (m Move) Equals(o Move) bool {
	return m.From.Equals(o.From) && m.To.Equals(o.To)
}

// IsZero returns true iff the move is the zero value, used as a "no move" sentinel.
func (m Move) IsZero() bool {
	return m.From == Square{} && m.To == Square{}
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// Undo captures what is needed to reverse an applied move: the move itself
// and whatever piece, if any, it captured.
type Undo struct {
	Move     Move
	Captured Piece
}
