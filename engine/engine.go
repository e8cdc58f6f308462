package engine

import (
	"errors"
	"pawns/experiments/metrics"
	"pawns/game"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrResigned    = errors.New("player resigned")
)

type Runner interface {
	// Run plays a game till it is over, a player resigns, or the turn cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Player supplies the moves of the side the session does not play.
type Player interface {
	// NextMove is only called when side has at least one legal move on board.
	// Returning ErrResigned ends the game in the session's favor.
	NextMove(board *game.Board, side game.Side) (game.Move, error)
}
