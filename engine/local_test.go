package engine

import (
	"context"
	"testing"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher/agent"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixedAgent always plays the same cell.
type fixedAgent struct {
	mark game.Cell
	move game.Move
}

func (a fixedAgent) FindMove(ctx context.Context, b game.Board) (game.Move, metrics.SearchMetric, error) {
	return a.move, metrics.SearchMetric{}, nil
}

func (a fixedAgent) Mark() game.Cell {
	return a.mark
}

func newAgent(d game.Difficulty, mark game.Cell, seed uint64) agent.Agent {
	return agent.New(agent.Config{Difficulty: d, Mark: mark}, agent.WithSeed(seed), agent.WithMetrics())
}

func TestHardVersusHardDraws(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		e := NewLocalEngine(newAgent(game.Hard, game.X, seed), newAgent(game.Hard, game.O, seed+100))
		winner, gameMetric, moveMetrics, err := e.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, game.Empty, winner, "Perfect play should always draw")
		require.Equal(t, game.NumCells, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, game.NumCells)
		require.Equal(t, game.X, gameMetric.StartingPlayer)
		require.True(t, moveMetrics[0].Shortcut, "X opens in the center without searching")
		require.True(t, moveMetrics[1].Shortcut || moveMetrics[1].DepthCap == 9)
	}
}

func TestHardNeverLosesToWeakerTiers(t *testing.T) {
	for _, d := range []game.Difficulty{game.Easy, game.Medium} {
		for seed := uint64(0); seed < 20; seed++ {
			first := NewLocalEngine(newAgent(game.Hard, game.X, seed), newAgent(d, game.O, seed))
			winner, _, _, err := first.Run(context.Background())
			require.NoError(t, err)
			require.NotEqual(t, game.O, winner, "Hard as X lost to %s (seed %d)", d, seed)

			second := NewLocalEngine(newAgent(d, game.X, seed), newAgent(game.Hard, game.O, seed))
			winner, _, _, err = second.Run(context.Background())
			require.NoError(t, err)
			require.NotEqual(t, game.X, winner, "Hard as O lost to %s (seed %d)", d, seed)
		}
	}
}

func TestRunRecordsUpdates(t *testing.T) {
	e := NewLocalEngine(newAgent(game.Hard, game.X, 1), newAgent(game.Easy, game.O, 1))
	_, gameMetric, moveMetrics, err := e.Run(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(gameMetric.ID)
	require.NoError(t, err, "Games should be identified by a UUID")
	require.Len(t, e.Updates, len(moveMetrics))

	var replay game.Board
	for i, u := range e.Updates {
		require.Equal(t, moveMetrics[i].Move, u.Move)
		require.Equal(t, moveMetrics[i].Player, u.Player)
		replay.Set(u.Move, u.Player)
		require.Equal(t, replay.Hash(), u.Hash, "Update %d should hash the board after the move", i)
	}
	require.Equal(t, e.State, replay)
}

func TestPlay(t *testing.T) {
	t.Run("rejects occupied cells", func(t *testing.T) {
		e := NewLocalEngine(newAgent(game.Hard, game.X, 1), newAgent(game.Hard, game.O, 1))
		require.NoError(t, e.Play(game.Center))
		require.Equal(t, game.O, e.ToMove())
		require.ErrorIs(t, e.Play(game.Center), ErrIllegalMove)
		require.Equal(t, game.O, e.ToMove(), "A rejected move should not pass the turn")
	})

	t.Run("rejects moves off the board", func(t *testing.T) {
		e := NewLocalEngine(newAgent(game.Hard, game.X, 1), newAgent(game.Hard, game.O, 1))
		require.ErrorIs(t, e.Play(game.Move{Row: 3, Col: 0}), ErrIllegalMove)
	})

	t.Run("rejects moves after the game is over", func(t *testing.T) {
		b, err := game.ParseBoard("X,X,X;O,O,_;_,_,_")
		require.NoError(t, err)
		e := NewLocalEngine(newAgent(game.Hard, game.X, 1), newAgent(game.Hard, game.O, 1), WithBoard(b))
		require.ErrorIs(t, e.Play(game.Move{Row: 2, Col: 2}), ErrGameOver)
	})
}

func TestRunStopsOnIllegalAgentMove(t *testing.T) {
	e := NewLocalEngine(
		fixedAgent{mark: game.X, move: game.Center},
		fixedAgent{mark: game.O, move: game.Center},
	)
	_, _, moveMetrics, err := e.Run(context.Background())
	require.ErrorIs(t, err, ErrIllegalMove)
	require.Len(t, moveMetrics, 1, "Only X's first move should be recorded")
}

func TestResumeFromBoard(t *testing.T) {
	b, err := game.ParseBoard("X,X,_;_,O,_;_,_,_")
	require.NoError(t, err)

	e := NewLocalEngine(newAgent(game.Hard, game.X, 3), newAgent(game.Hard, game.O, 3), WithBoard(b))
	require.Equal(t, game.O, e.ToMove())

	_, _, moveMetrics, err := e.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, game.Move{Row: 0, Col: 2}, moveMetrics[0].Move, "O must block the top row")
}

func TestNewLocalEngineChecksSeats(t *testing.T) {
	require.Panics(t, func() {
		NewLocalEngine(newAgent(game.Hard, game.O, 1), newAgent(game.Hard, game.X, 1))
	})
}
