package agent

import (
	"context"
	"fmt"
	"tictactoe/communication"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Difficulty policy. Chances are percentages.
const (
	EasyRandomChance      = 80
	EasyDepthCap          = 2
	MediumMinDepthCap     = 4
	MediumDepthCapSpread  = 2 // Medium caps are drawn from [4, 4+spread)
	MediumImperfectChance = 20
)

// Rand is the source of every random choice an agent makes.
type Rand interface {
	Intn(n int) int
}

type Option func(a *minimaxAgent)

type minimaxAgent struct {
	config     Config
	rand       Rand
	classifier communication.Classifier
	evaluate   game.Evaluate
	collect    bool
}

func WithRand(r Rand) Option {
	return func(a *minimaxAgent) {
		if r != nil {
			a.rand = r
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(a *minimaxAgent) {
		a.rand = rand.New(rand.NewSource(seed))
	}
}

// WithClassifier sets the collaborator used at the External difficulty.
func WithClassifier(c communication.Classifier) Option {
	return func(a *minimaxAgent) {
		a.classifier = c
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(a *minimaxAgent) {
		a.evaluate = evaluate
	}
}

// WithMetrics makes FindMove report search metrics instead of a zero value.
func WithMetrics() Option {
	return func(a *minimaxAgent) {
		a.collect = true
	}
}

// New returns an agent for cfg. The random source is seeded once here, not
// on every move.
func New(cfg Config, options ...Option) Agent {
	if cfg.Mark != game.X && cfg.Mark != game.O {
		panic(fmt.Sprintf("agent mark must be X or O, got %v", cfg.Mark))
	}
	if cfg.Difficulty < game.External || cfg.Difficulty > game.Hard {
		panic(fmt.Sprintf("unknown difficulty %v", cfg.Difficulty))
	}
	a := &minimaxAgent{ // Default values
		config: cfg,
		rand:   rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

func (a *minimaxAgent) Mark() game.Cell {
	return a.config.Mark
}

func (a *minimaxAgent) FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error) {
	if !board.HasEmptyCell() {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%v cannot move: %w", a.config.Mark, ErrNoEmptyCell)
	}

	start := time.Now()
	collector := metrics.NewDummyCollector()
	if a.collect {
		collector = metrics.NewCollector()
	}
	collector.Start(a.config.Difficulty)

	var move game.Move
	var err error
	switch a.config.Difficulty {
	case game.Hard:
		move = a.findHard(board, collector)
	case game.Medium:
		move = a.findMedium(board, collector)
	case game.Easy:
		move = a.findEasy(board, collector)
	case game.External:
		move, err = a.findExternal(ctx, board)
	}
	metric := collector.Complete()
	if err != nil {
		return game.Move{}, metric, err
	}

	log.Debug().
		Stringer("difficulty", a.config.Difficulty).
		Stringer("player", a.config.Mark).
		Stringer("move", move).
		Int("depth_cap", metric.DepthCap).
		Int("nodes", metric.Nodes).
		Bool("random", metric.RandomMove).
		Dur("duration", time.Since(start)).
		Msg("ai chose move")
	return move, metric, nil
}

func (a *minimaxAgent) findHard(board game.Board, collector metrics.Collector) game.Move {
	// The center is never worse than any alternative while at most one mark
	// has been placed. Later on it can lose: on X,X,_;_,_,_;O,_,_ O must
	// block at (0,2) instead.
	if board.At(game.Center) == game.Empty && board.Count(game.X)+board.Count(game.O) <= 1 {
		collector.SetShortcut(true)
		return game.Center
	}
	return a.pick(a.bestMoves(board, searcher.HardDepthCap, collector))
}

func (a *minimaxAgent) findEasy(board game.Board, collector metrics.Collector) game.Move {
	if a.rand.Intn(100) < EasyRandomChance {
		collector.SetRandomMove(true)
		return a.randomMove(board)
	}
	return a.pick(a.bestMoves(board, EasyDepthCap, collector))
}

func (a *minimaxAgent) findMedium(board game.Board, collector metrics.Collector) game.Move {
	depthCap := MediumMinDepthCap + a.rand.Intn(MediumDepthCapSpread)
	best := a.bestMoves(board, depthCap, collector)

	if a.rand.Intn(100) < MediumImperfectChance {
		collector.SetRandomMove(true)
		return a.randomMove(board)
	}
	return a.pick(best)
}

func (a *minimaxAgent) findExternal(ctx context.Context, board game.Board) (game.Move, error) {
	if a.classifier == nil {
		return game.Move{}, fmt.Errorf("%w: no classifier configured", ErrClassifier)
	}

	index, err := a.classifier.Predict(ctx, board)
	if err != nil {
		return game.Move{}, fmt.Errorf("%w: %w", ErrClassifier, err)
	}
	if err := communication.CheckIndex(index); err != nil {
		return game.Move{}, fmt.Errorf("%w: %w", ErrClassifier, err)
	}

	move := game.MoveFromIndex(index)
	if board.At(move) != game.Empty {
		return game.Move{}, fmt.Errorf("%w: predicted occupied cell %v", ErrClassifier, move)
	}
	return move, nil
}

func (a *minimaxAgent) bestMoves(board game.Board, depthCap int, collector metrics.Collector) []game.Move {
	collector.SetDepthCap(depthCap)
	options := []searcher.Option{searcher.WithMetrics(collector)}
	if a.evaluate != nil {
		options = append(options, searcher.WithEvaluationFn(a.evaluate))
	}

	minimax := searcher.NewMinimax(a.config.Difficulty, a.config.Mark, options...)
	best, _ := minimax.BestMoves(board, depthCap)
	if len(best) == 0 {
		panic("search found no candidate move on a board with empty cells")
	}
	return best
}

// pick breaks ties uniformly at random.
func (a *minimaxAgent) pick(moves []game.Move) game.Move {
	return moves[a.rand.Intn(len(moves))]
}

func (a *minimaxAgent) randomMove(board game.Board) game.Move {
	return a.pick(board.EmptyCells())
}
