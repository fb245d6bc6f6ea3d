package engine

import (
	"context"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Engine interface {
	// Run plays the game till there's a winner or the board is full
	Run(ctx context.Context) (winner game.Cell, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
