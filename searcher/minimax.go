package searcher

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Option func(m *Minimax)

// Minimax searches the game tree with alpha-beta pruning on behalf of one
// player at one difficulty.
type Minimax struct {
	difficulty game.Difficulty
	me         game.Cell
	opponent   game.Cell
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func NewMinimax(difficulty game.Difficulty, me game.Cell, options ...Option) *Minimax {
	if me != game.X && me != game.O {
		panic("maximizing player must be X or O")
	}
	m := &Minimax{ // Default values
		difficulty: difficulty,
		me:         me,
		opponent:   me.Opponent(),
		evaluate:   game.EvaluateBoard,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// BestMoves scores every empty cell of b by placing the maximizer's mark
// there and searching the opponent's replies up to depthCap. It returns all
// moves sharing the best score, in row-major order. b is copied, so the
// caller's board is never touched.
func (m *Minimax) BestMoves(b game.Board, depthCap int) ([]game.Move, int) {
	bestScore := 0
	best := make([]game.Move, 0, game.NumCells)

	for _, move := range b.EmptyCells() {
		b.Set(move, m.me)
		score := m.Search(&b, 0, false, -Infinity, Infinity, depthCap)
		b.Set(move, game.Empty)

		if len(best) == 0 || score > bestScore {
			bestScore = score
			best = best[:0]
			best = append(best, move)
		} else if score == bestScore {
			best = append(best, move)
		}
	}
	return best, bestScore
}

// Search returns the minimax value of b for the maximizer. Marks placed on b
// are removed again before Search returns.
//
// Wins are worth less the deeper they are found and losses hurt less the
// later they come, so the maximizer prefers quick wins and slow losses.
func (m *Minimax) Search(b *game.Board, depth int, maximizing bool, alpha, beta, depthCap int) int {
	m.metrics.AddNode()
	score := m.evaluate(*b, m.difficulty, m.me)

	if m.difficulty == game.Hard {
		if score == game.WinScore {
			return score - depth
		}
		if score == -game.WinScore {
			return score + depth
		}
		if !b.HasEmptyCell() {
			return 0
		}
	} else {
		if score >= Saturation {
			return score - depth
		}
		if score <= -Saturation {
			return score + depth
		}
		if !b.HasEmptyCell() || depth >= depthCap {
			return score
		}
	}

	best := Infinity
	mark := m.opponent
	if maximizing {
		best = -Infinity
		mark = m.me
	}

	for _, move := range moveOrder {
		if b.At(move) != game.Empty {
			continue
		}

		b.Set(move, mark)
		value := m.Search(b, depth+1, !maximizing, alpha, beta, depthCap)
		b.Set(move, game.Empty)

		if maximizing {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}
