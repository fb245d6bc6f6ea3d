package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Cell
	}{
		{"empty board", "_,_,_;_,_,_;_,_,_", Empty},
		{"partial board", "X,_,_;_,O,_;_,_,_", Empty},
		{"first row", "X,X,X;_,O,_;_,_,O", X},
		{"second column", "X,O,_;X,O,_;_,O,_", O},
		{"main diagonal", "X,_,_;_,X,_;_,_,X", X},
		{"anti-diagonal", "_,_,O;_,O,_;O,_,_", O},
		{"full board draw", "X,O,X;X,O,O;O,X,X", Empty},
		{"first row wins on malformed board", "X,X,X;O,O,O;_,_,_", X},
		{"upper row wins on malformed board", "_,_,_;O,O,O;X,X,X", O},
		{"left column wins on malformed board", "O,X,_;O,X,_;O,X,_", O},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustParse(t, tt.board)
			require.Equal(t, tt.want, b.Winner())
		})
	}
}

func TestIsDraw(t *testing.T) {
	t.Run("full board without a line", func(t *testing.T) {
		b := mustParse(t, "X,O,X;X,O,O;O,X,X")
		require.True(t, b.IsDraw())
		require.True(t, b.IsOver())
		require.False(t, b.HasEmptyCell())
	})

	t.Run("full board with a line is not a draw", func(t *testing.T) {
		b := mustParse(t, "X,X,X;O,O,X;X,O,O")
		require.False(t, b.IsDraw())
		require.True(t, b.IsOver())
	})

	t.Run("board with empty cells", func(t *testing.T) {
		b := mustParse(t, "X,O,X;X,O,O;O,X,_")
		require.False(t, b.IsDraw())
		require.True(t, b.HasEmptyCell())
		require.False(t, b.IsOver())
	})
}

func TestEmptyCells(t *testing.T) {
	b := mustParse(t, "X,_,O;_,X,_;O,_,X")

	require.Equal(t, []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}}, b.EmptyCells(),
		"Empty cells should be listed in row-major order")
	require.Equal(t, 3, b.Count(X))
	require.Equal(t, 2, b.Count(O))
}

func TestTurn(t *testing.T) {
	var b Board
	require.Equal(t, X, b.Turn(), "X moves first")

	b.Set(Center, X)
	require.Equal(t, O, b.Turn())

	b.Set(Move{0, 0}, O)
	require.Equal(t, X, b.Turn())
}

func TestBoardIsValue(t *testing.T) {
	original := mustParse(t, "X,_,_;_,_,_;_,_,_")
	copied := original
	copied.Set(Center, O)

	require.Equal(t, Empty, original.At(Center), "Copies should not alias the original grid")
	require.NotEqual(t, original.Hash(), copied.Hash())
}

func TestParseBoard(t *testing.T) {
	t.Run("accepts blank tokens and both row separators", func(t *testing.T) {
		b := mustParse(t, "x, ,B/ _,o,. ;,,")
		require.Equal(t, X, b[0][0])
		require.Equal(t, O, b[1][1])
		require.Equal(t, NumCells-2, len(b.EmptyCells()))
	})

	t.Run("rejects wrong shapes and tokens", func(t *testing.T) {
		for _, s := range []string{"", "X,O;X,O", "X,O,X;O,X;O,X,O", "X,Q,_;_,_,_;_,_,_"} {
			_, err := ParseBoard(s)
			require.Error(t, err, "ParseBoard(%q) should fail", s)
		}
	})

	t.Run("round trips through the move index", func(t *testing.T) {
		for i := 0; i < NumCells; i++ {
			m := MoveFromIndex(i)
			require.True(t, m.InBounds())
			require.Equal(t, i, m.Index())
		}
	})
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{External, Easy, Medium, Hard} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	got, err := ParseDifficulty("3")
	require.NoError(t, err)
	require.Equal(t, Hard, got)

	_, err = ParseDifficulty("impossible")
	require.Error(t, err)
}
