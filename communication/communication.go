package communication

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"tictactoe/game"
)

// Wire tokens understood by the classifier.
const (
	TokenX     = "X"
	TokenO     = "O"
	TokenBlank = "B"

	cellSeparator = ","
	rowSeparator  = ";"
)

var (
	ErrMalformedResponse = errors.New("malformed classifier response")
	ErrOutOfRange        = errors.New("classifier move index out of range")
)

// Classifier is an out-of-process move predictor. Predict returns a
// row-major cell index in [0,9).
type Classifier interface {
	Predict(ctx context.Context, board game.Board) (int, error)
}

// Encode writes the board in the classifier's format, e.g. "X,O,B;B,X,B;O,B,B".
func Encode(b game.Board) string {
	rows := make([]string, game.Size)
	for r := 0; r < game.Size; r++ {
		cells := make([]string, game.Size)
		for c := 0; c < game.Size; c++ {
			switch b[r][c] {
			case game.X:
				cells[c] = TokenX
			case game.O:
				cells[c] = TokenO
			default:
				cells[c] = TokenBlank
			}
		}
		rows[r] = strings.Join(cells, cellSeparator)
	}
	return strings.Join(rows, rowSeparator)
}

// ParseIndex reads a single cell index from a classifier response.
func ParseIndex(response []byte) (int, error) {
	text := strings.TrimSpace(string(response))
	if text == "" {
		return 0, fmt.Errorf("%w: empty output", ErrMalformedResponse)
	}
	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedResponse, text)
	}
	if err := CheckIndex(index); err != nil {
		return 0, err
	}
	return index, nil
}

func CheckIndex(index int) error {
	if index < 0 || index >= game.NumCells {
		return fmt.Errorf("%w: %d", ErrOutOfRange, index)
	}
	return nil
}
