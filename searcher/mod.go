package searcher

import (
	"errors"
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/meta"
)

// DefaultDepth is the number of plies searched before leaves are scored.
const DefaultDepth = meta.SearchDepth

var (
	ErrGameOver     = errors.New("game is over")
	ErrNoLegalMoves = errors.New("no legal moves")
)

// Agent picks moves for one side.
type Agent interface {
	Side() game.Side
	// FindMove returns the move to play on board and the metrics of the
	// search that produced it. The board is not modified.
	FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error)
}
