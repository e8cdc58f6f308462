package engine

import (
	"pawns/game"
	"pawns/searcher"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func TestSetup(t *testing.T) {
	t.Run("standard setup", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.Black))

		require.NoError(t, err)
		require.Equal(t, game.Black, s.Side())
		require.Equal(t, 8, s.Board().Count(game.White))
		require.Equal(t, 8, s.Board().Count(game.Black))
		require.False(t, s.GameOver())
	})

	t.Run("rejects a missing color", func(t *testing.T) {
		setup := game.NewStandardSetup(game.None)

		_, err := Setup(setup)

		require.ErrorIs(t, err, game.ErrUnknownSide)
	})

	t.Run("rejects pawns off the board", func(t *testing.T) {
		setup := game.Setup{White: []game.Position{pos(8, 0)}, Color: game.White}

		_, err := Setup(setup)

		require.ErrorIs(t, err, game.ErrOutOfBounds)
	})
}

func TestSessionMove(t *testing.T) {
	t.Run("first move from the standard setup", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)

		move, err := s.Move(nil)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: pos(6, 0), To: pos(5, 0)}, move)
		require.False(t, move.IsCapture(), "Opening move should be a straight advance")
		board := s.Board()
		require.Equal(t, 16, board.Count(game.White)+board.Count(game.Black), "No piece should be captured")
		require.Equal(t, game.White, board.At(pos(5, 0)))
		require.Equal(t, game.None, board.At(pos(6, 0)))
		require.Equal(t, 1, s.Plies())
	})

	t.Run("applies the previous move first", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.Black))
		require.NoError(t, err)
		previous := game.Move{From: pos(6, 3), To: pos(5, 3)}

		move, err := s.Move(&previous)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: pos(1, 0), To: pos(2, 0)}, move)
		board := s.Board()
		require.Equal(t, game.White, board.At(pos(5, 3)), "Opponent move should be on the board")
		require.Equal(t, game.Black, board.At(pos(2, 0)), "Reply should be on the board")
		require.Equal(t, 2, s.Plies())
	})

	t.Run("rejects an illegal previous move", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.Black))
		require.NoError(t, err)
		before := s.Board()

		_, err = s.Move(&game.Move{From: pos(6, 3), To: pos(4, 3)})
		require.ErrorIs(t, err, ErrIllegalMove, "Double steps are not allowed")

		_, err = s.Move(&game.Move{From: pos(1, 3), To: pos(2, 3)})
		require.ErrorIs(t, err, ErrIllegalMove, "Opponent cannot move the engine's pawns")

		_, err = s.Move(&game.Move{From: pos(6, 7), To: pos(5, 8)})
		require.ErrorIs(t, err, game.ErrOutOfBounds)

		require.Equal(t, before, s.Board(), "Rejected moves should leave the board untouched")
		require.Zero(t, s.Plies())
	})

	t.Run("previous move ends the game", func(t *testing.T) {
		setup := game.Setup{
			White: []game.Position{pos(1, 3)},
			Black: []game.Position{pos(6, 6)},
			Color: game.Black,
		}
		s, err := Setup(setup)
		require.NoError(t, err)

		_, err = s.Move(&game.Move{From: pos(1, 3), To: pos(0, 3)})

		require.ErrorIs(t, err, searcher.ErrGameOver)
		require.True(t, s.GameOver())
		require.Equal(t, game.White, s.Winner())
	})

	t.Run("no legal moves", func(t *testing.T) {
		setup := game.Setup{
			White: []game.Position{pos(4, 0), pos(6, 6)},
			Black: []game.Position{pos(3, 0)},
			Color: game.Black,
		}
		s, err := Setup(setup)
		require.NoError(t, err)

		_, err = s.Move(nil)

		require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
		require.Zero(t, s.Plies())
	})

	t.Run("records search metrics", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)

		_, err = s.Move(nil)
		require.NoError(t, err)

		history := s.History()
		require.Len(t, history, 1)
		require.Equal(t, 1, history[0].Step)
		require.Equal(t, "white", history[0].Player)
		require.Equal(t, 585, history[0].Nodes)
	})
}

func TestSessionConcurrentReads(t *testing.T) {
	s, err := Setup(game.NewStandardSetup(game.White))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Board()
			_ = s.GameOver()
		}()
	}
	_, err = s.Move(nil)
	wg.Wait()

	require.NoError(t, err)
	require.Equal(t, 1, s.Plies())
}

func TestSessionState(t *testing.T) {
	t.Run("winning move", func(t *testing.T) {
		s, err := Setup(game.Setup{
			White: []game.Position{pos(1, 3)},
			Black: []game.Position{pos(6, 6)},
			Color: game.White,
		})
		require.NoError(t, err)

		move, state, err := s.MoveState(nil)

		require.NoError(t, err)
		require.Equal(t, game.Move{From: pos(1, 3), To: pos(0, 3)}, move)
		require.True(t, state.GameOver)
		require.Equal(t, game.White, state.Winner)
		require.Equal(t, game.White, state.Color)
		require.Equal(t, 1, state.Plies)
		require.Equal(t, game.White, state.Board.At(pos(0, 3)))
		require.Equal(t, s.State(), state)
	})

	t.Run("rejected move leaves no state", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)

		_, state, err := s.MoveState(&game.Move{From: pos(6, 0), To: pos(5, 0)})

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, State{}, state)
		require.Equal(t, 0, s.State().Plies)
	})

	t.Run("reads never mix two positions", func(t *testing.T) {
		s, err := Setup(game.NewStandardSetup(game.White))
		require.NoError(t, err)

		var wg sync.WaitGroup
		mixed := make(chan game.Side, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				state := s.State()
				moved := state.Board.At(pos(5, 0)) == game.White
				if moved != (state.Plies == 1) {
					mixed <- state.Board.At(pos(5, 0))
				}
			}()
		}
		_, err = s.Move(nil)
		wg.Wait()
		close(mixed)

		require.NoError(t, err)
		require.Empty(t, mixed)
	})
}
