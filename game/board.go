package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
)

// Board is a 3x3 grid in row-major order. It is a value type: assigning or
// passing a Board copies the grid.
type Board [Size][Size]Cell

// lines lists every row, column and diagonal in scan order.
var lines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func (b *Board) At(m Move) Cell {
	return b[m.Row][m.Col]
}

// Set writes c at m. The search uses it to place and retract marks.
func (b *Board) Set(m Move, c Cell) {
	b[m.Row][m.Col] = c
}

func (b *Board) HasEmptyCell() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				return true
			}
		}
	}
	return false
}

// Winner returns the mark of the first complete line, scanning rows, then
// columns, then the two diagonals. It returns Empty if no line is complete.
// A malformed board with lines for both players reports whichever comes first.
func (b *Board) Winner() Cell {
	for _, line := range lines {
		first := b.At(line[0])
		if first != Empty && first == b.At(line[1]) && first == b.At(line[2]) {
			return first
		}
	}
	return Empty
}

// HasLine reports whether player owns a complete line.
func (b *Board) HasLine(player Cell) bool {
	for _, line := range lines {
		if b.At(line[0]) == player && b.At(line[1]) == player && b.At(line[2]) == player {
			return true
		}
	}
	return false
}

func (b *Board) IsDraw() bool {
	return !b.HasEmptyCell() && b.Winner() == Empty
}

// IsOver reports whether the game has a winner or no cells left.
func (b *Board) IsOver() bool {
	return b.Winner() != Empty || !b.HasEmptyCell()
}

// EmptyCells returns the empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	moves := make([]Move, 0, NumCells)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (b *Board) Count(c Cell) int {
	n := 0
	for r := 0; r < Size; r++ {
		for col := 0; col < Size; col++ {
			if b[r][col] == c {
				n++
			}
		}
	}
	return n
}

// Turn returns whose turn it is on a board reached by legal play with X
// moving first.
func (b *Board) Turn() Cell {
	if b.Count(X) > b.Count(O) {
		return O
	}
	return X
}

func (b Board) Hash() StateHash {
	hasher := fnv.New64a()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			binary.Write(hasher, binary.LittleEndian, uint8(b[r][c]))
		}
	}
	return StateHash(hasher.Sum64())
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteString("\n-+-+-\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(b[r][c].String())
		}
	}
	return sb.String()
}

// ParseBoard reads a board written as three rows separated by ';' or '/',
// each with three comma-separated cells. X and O are marks; B, '_', '.' or
// blank mean empty.
func ParseBoard(s string) (Board, error) {
	var b Board
	rows := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ';' || r == '/'
	})
	if len(rows) != Size {
		return b, fmt.Errorf("board must have %d rows, got %d", Size, len(rows))
	}
	for r, row := range rows {
		cells := strings.Split(row, ",")
		if len(cells) != Size {
			return b, fmt.Errorf("row %d must have %d cells, got %d", r, Size, len(cells))
		}
		for c, token := range cells {
			switch strings.ToUpper(strings.TrimSpace(token)) {
			case "X":
				b[r][c] = X
			case "O":
				b[r][c] = O
			case "", "B", "_", ".":
				b[r][c] = Empty
			default:
				return b, fmt.Errorf("invalid cell %q at row %d col %d", token, r, c)
			}
		}
	}
	return b, nil
}
