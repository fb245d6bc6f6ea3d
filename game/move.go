package game

import "fmt"

// Move identifies a cell by 0-indexed row and column.
type Move struct {
	Row int
	Col int
}

// Center is the middle cell.
var Center = Move{Row: 1, Col: 1}

// MoveFromIndex converts a flattened row-major index in [0,9) to a Move.
func MoveFromIndex(index int) Move {
	return Move{Row: index / Size, Col: index % Size}
}

// Index returns the flattened row-major index of the move.
func (m Move) Index() int {
	return m.Row*Size + m.Col
}

// InBounds reports whether both coordinates are within the board.
func (m Move) InBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
