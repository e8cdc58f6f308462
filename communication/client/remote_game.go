package client

import (
	"errors"
	"net/http"
	"pawns/communication"
	"pawns/engine"
	"pawns/game"

	"github.com/rs/zerolog/log"
)

// RemoteGame sets up a session through comm and plays p against it until the
// game is over. White moves first. The winner is None after a blockade; a
// resignation by p makes the remote side the winner.
func RemoteGame(comm communication.Communicator, p engine.Player, setup game.Setup) (game.Side, error) {
	if _, err := comm.Setup(setup); err != nil {
		return game.None, err
	}
	human := setup.Color.Opponent()

	if setup.Color == game.White {
		if err := sendMove(comm, nil); err != nil {
			return game.None, err
		}
	}

	for {
		state, err := comm.Board()
		if err != nil {
			return game.None, err
		}
		if state.GameOver {
			return state.Winner, nil
		}

		board := state.Cells
		var previous *game.Move
		if len(game.LegalMoves(&board, human)) > 0 {
			move, err := p.NextMove(&board, human)
			if errors.Is(err, engine.ErrResigned) {
				return setup.Color, nil
			}
			if err != nil {
				return game.None, err
			}
			previous = &move
		} else {
			log.Info().Msgf("%v has no legal move and passes", human)
		}

		if err := sendMove(comm, previous); err != nil {
			return game.None, err
		}
	}
}

// sendMove forwards previous and lets the remote engine reply. A game ending
// on previous, or an engine without moves, is not an error.
func sendMove(comm communication.Communicator, previous *game.Move) error {
	resp, err := comm.Move(previous)
	var statusErr *communication.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusConflict, http.StatusUnprocessableEntity:
			log.Debug().Msgf("remote engine did not move: %v", statusErr)
			return nil
		}
	}
	if err != nil {
		return err
	}
	log.Debug().Msgf("remote engine played %v", resp.Move)
	return nil
}
