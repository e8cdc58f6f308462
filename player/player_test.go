package player

import (
	"bytes"
	"pawns/engine"
	"pawns/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func standardBoard(t *testing.T) *game.Board {
	t.Helper()
	board, err := game.NewBoardFromSetup(game.NewStandardSetup(game.Black))
	require.NoError(t, err)
	return board
}

func TestConsoleNextMove(t *testing.T) {
	t.Run("one integer per line", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("6\n0\n5\n0\n"), &out)

		move, err := c.NextMove(standardBoard(t), game.White)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: game.Position{Row: 6, Col: 0}, To: game.Position{Row: 5, Col: 0}}, move)
		require.Contains(t, out.String(), "black|black", "Board should be printed before the prompt")
	})

	t.Run("malformed tokens are reported and skipped", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("6 x\n6 2 5 2\n"), &out)

		move, err := c.NextMove(standardBoard(t), game.White)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: game.Position{Row: 6, Col: 2}, To: game.Position{Row: 5, Col: 2}}, move)
		require.Contains(t, out.String(), `"x" is not an integer`)
	})

	t.Run("illegal moves are re-prompted", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("6 0 4 0\n1 0 2 0\n6 7 5 7\n"), &out)

		move, err := c.NextMove(standardBoard(t), game.White)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: game.Position{Row: 6, Col: 7}, To: game.Position{Row: 5, Col: 7}}, move)
		require.Equal(t, 2, strings.Count(out.String(), "is not a legal move"))
	})

	t.Run("end of input resigns", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("6 0"), &out)

		_, err := c.NextMove(standardBoard(t), game.White)

		require.ErrorIs(t, err, engine.ErrResigned)
	})
}

func TestConsoleAgainstSession(t *testing.T) {
	s, err := engine.Setup(game.NewStandardSetup(game.Black))
	require.NoError(t, err)
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("6 3 5 3\n"), &out)

	gameMetric, moveMetrics, err := engine.LocalEngine(s, c).Run()

	require.NoError(t, err)
	require.Equal(t, engine.ReasonResigned, gameMetric.Reason, "Input ends after one move")
	require.Equal(t, 2, gameMetric.TotalMoves)
	require.Len(t, moveMetrics, 1)
	require.Equal(t, game.White, s.Board().At(game.Position{Row: 5, Col: 3}))
}
