package communication

import (
	"fmt"
	"pawns/game"
)

// Communicator is an interface that abstracts the communication mechanism
// between a driver and a remote session.
type Communicator interface {
	Setup(setup game.Setup) (BoardResponse, error)
	Move(previous *game.Move) (MoveResponse, error)
	Board() (BoardResponse, error)
}

type MoveRequest struct {
	Previous *game.Move `json:"previous"`
}

type MoveResponse struct {
	Move     game.Move `json:"move"`
	GameOver bool      `json:"game_over"`
	Winner   game.Side `json:"winner"`
}

type BoardResponse struct {
	Cells    game.Board `json:"cells"`
	Color    game.Side  `json:"color"`
	GameOver bool       `json:"game_over"`
	Winner   game.Side  `json:"winner"`
	Plies    int        `json:"plies"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusError is returned by clients for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}
