package engine

import (
	"context"
	"errors"
	"fmt"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher/agent"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)

type Update struct {
	Move   game.Move
	Player game.Cell
	Hash   game.StateHash
}

type Option func(e *LocalEngine)

// WithBoard starts the game from b instead of an empty board. The player to
// move is derived from the mark counts.
func WithBoard(b game.Board) Option {
	return func(e *LocalEngine) {
		e.State = b
		e.toMove = b.Turn()
	}
}

// LocalEngine plays two in-process agents against each other.
type LocalEngine struct {
	ID      string
	State   game.Board
	Agents  map[game.Cell]agent.Agent
	Updates []Update
	toMove  game.Cell
}

func NewLocalEngine(x, o agent.Agent, options ...Option) *LocalEngine {
	if x.Mark() != game.X || o.Mark() != game.O {
		panic(fmt.Sprintf("agents play %v and %v, want X and O", x.Mark(), o.Mark()))
	}

	e := &LocalEngine{
		ID:     uuid.New().String(),
		Agents: map[game.Cell]agent.Agent{game.X: x, game.O: o},
		toMove: game.X,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// ToMove returns the player whose turn it is.
func (e *LocalEngine) ToMove() game.Cell {
	return e.toMove
}

// Play applies move for the player to move after checking it is legal.
func (e *LocalEngine) Play(move game.Move) error {
	if e.State.IsOver() {
		return ErrGameOver
	}
	if !move.InBounds() {
		return fmt.Errorf("%w: %v is off the board", ErrIllegalMove, move)
	}
	if e.State.At(move) != game.Empty {
		return fmt.Errorf("%w: %v is taken by %v", ErrIllegalMove, move, e.State.At(move))
	}

	e.State.Set(move, e.toMove)
	e.Updates = append(e.Updates, Update{
		Move:   move,
		Player: e.toMove,
		Hash:   e.State.Hash(),
	})
	e.toMove = e.toMove.Opponent()
	return nil
}

// Run executes the entire game loop until a winner is found or the board is full.
func (e *LocalEngine) Run(ctx context.Context) (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		StartingPlayer: e.toMove,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Str("game", e.ID).Msgf("player %v is starting", e.toMove)

	step := 1
	for !e.State.IsOver() {
		player := e.toMove
		move, searchMetric, err := e.Agents[player].FindMove(ctx, e.State)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %v failed to move: %w", player, err)
		}
		if err := e.Play(move); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %v: %w", player, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
		step++
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.Empty {
		log.Debug().Str("game", e.ID).Msgf("game ended with winner %v after %d moves", winner, gameMetric.TotalMoves)
	} else {
		log.Debug().Str("game", e.ID).Msgf("game ended in a draw after %d moves", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}

var _ Engine = (*LocalEngine)(nil)
