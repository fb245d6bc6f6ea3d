package game

import "fmt"

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	X          // Moves first
	O
)

// Opponent returns the other player's mark. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return " "
	case X:
		return "X"
	case O:
		return "O"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// ParseCell parses a player mark ("X" or "O", case-insensitive).
func ParseCell(s string) (Cell, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return Empty, fmt.Errorf("unknown player mark %q", s)
}
