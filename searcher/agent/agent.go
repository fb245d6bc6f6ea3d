package agent

import (
	"context"
	"errors"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var (
	// ErrNoEmptyCell is returned when asked to move on a full board.
	ErrNoEmptyCell = errors.New("board has no empty cell")
	// ErrClassifier wraps every failure of the external classifier.
	ErrClassifier = errors.New("external classifier failed")
)

type Agent interface {
	// FindMove returns the chosen move and the metrics collected while choosing it.
	// The board is never modified.
	FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error)
	// Mark returns the player this agent moves for.
	Mark() game.Cell
}

// Config fixes who the automated player is and how strong it plays.
type Config struct {
	Difficulty game.Difficulty
	Mark       game.Cell
}

// DefaultConfig plays O at the given difficulty.
func DefaultConfig(difficulty game.Difficulty) Config {
	return Config{Difficulty: difficulty, Mark: game.O}
}

// SelectMove builds a one-off agent for cfg and asks it for a move.
func SelectMove(ctx context.Context, board game.Board, cfg Config, options ...Option) (game.Move, error) {
	move, _, err := New(cfg, options...).FindMove(ctx, board)
	return move, err
}
