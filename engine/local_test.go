package engine

import (
	"pawns/game"
	"pawns/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

// firstMovePlayer always plays the first generated move.
type firstMovePlayer struct {
	calls int
}

func (p *firstMovePlayer) NextMove(board *game.Board, side game.Side) (game.Move, error) {
	p.calls++
	return game.LegalMoves(board, side)[0], nil
}

type resigningPlayer struct{}

func (resigningPlayer) NextMove(*game.Board, game.Side) (game.Move, error) {
	return game.Move{}, ErrResigned
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("blockade", func(t *testing.T) {
		setup := game.Setup{
			White: []game.Position{pos(5, 0)},
			Black: []game.Position{pos(2, 0)},
			Color: game.White,
		}
		s, err := Setup(setup)
		require.NoError(t, err)

		gameMetric, moveMetrics, err := LocalEngine(s, &firstMovePlayer{}).Run()

		require.NoError(t, err)
		require.Equal(t, ReasonBlockade, gameMetric.Reason)
		require.Equal(t, "", gameMetric.Winner)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
	})

	t.Run("engine passes while blocked", func(t *testing.T) {
		setup := game.Setup{
			White: []game.Position{pos(4, 0), pos(6, 6)},
			Black: []game.Position{pos(3, 0)},
			Color: game.Black,
		}
		s, err := Setup(setup)
		require.NoError(t, err)
		opponent := &firstMovePlayer{}

		gameMetric, moveMetrics, err := LocalEngine(s, opponent).Run()

		require.NoError(t, err)
		require.Equal(t, ReasonGoal, gameMetric.Reason)
		require.Equal(t, "white", gameMetric.Winner)
		require.Equal(t, 6, gameMetric.TotalMoves, "White walks (6,6) to (0,6)")
		require.Equal(t, 6, opponent.calls)
		require.Empty(t, moveMetrics, "Blocked engine should never move")
	})

	t.Run("opponent resigns", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.Black))
		require.NoError(t, err)

		gameMetric, _, err := LocalEngine(s, resigningPlayer{}).Run()

		require.NoError(t, err)
		require.Equal(t, ReasonResigned, gameMetric.Reason)
		require.Equal(t, "black", gameMetric.Winner)
		require.Zero(t, gameMetric.TotalMoves)
	})

	t.Run("turn limit", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)
		e := LocalEngine(s, &firstMovePlayer{})
		e.MaxTurns = 4

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, ReasonTurnLimit, gameMetric.Reason)
		require.Equal(t, 4, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("minimax against random plays to the end", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)
		opponent := AgentPlayer{Agent: searcher.NewRandom(game.Black, 3)}

		gameMetric, moveMetrics, err := LocalEngine(s, opponent).Run()

		require.NoError(t, err)
		require.True(t, s.GameOver(), "Game should run until it is over")
		require.Contains(t, []string{ReasonGoal, ReasonBlockade}, gameMetric.Reason)
		require.NotEmpty(t, moveMetrics)
		for _, mm := range moveMetrics {
			require.Equal(t, "white", mm.Player)
		}
	})

	t.Run("illegal opponent move aborts", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)
		opponent := AgentPlayer{Agent: searcher.NewRandom(game.White, 1)}

		_, _, err = LocalEngine(s, opponent).Run()

		require.Error(t, err, "Agent bound to the wrong side should be refused")
	})
}

func TestLocalEnginePanics(t *testing.T) {
	require.Panics(t, func() {
		LocalEngine(nil, &firstMovePlayer{})
	})
}
