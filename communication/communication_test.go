package communication

import (
	"testing"
	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	b, err := game.ParseBoard("X,O,_;_,X,_;O,_,_")
	require.NoError(t, err)

	require.Equal(t, "X,O,B;B,X,B;O,B,B", Encode(b))
	require.Equal(t, "B,B,B;B,B,B;B,B,B", Encode(game.Board{}))
}

func TestParseIndex(t *testing.T) {
	t.Run("valid indexes", func(t *testing.T) {
		for response, want := range map[string]int{"0": 0, "4\n": 4, "  8 \r\n": 8} {
			got, err := ParseIndex([]byte(response))
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("malformed output", func(t *testing.T) {
		for _, response := range []string{"", "   ", "None", "4 5", "1.0"} {
			_, err := ParseIndex([]byte(response))
			require.ErrorIs(t, err, ErrMalformedResponse, "response %q", response)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, response := range []string{"-1", "9", "42"} {
			_, err := ParseIndex([]byte(response))
			require.ErrorIs(t, err, ErrOutOfRange, "response %q", response)
		}
	})
}
