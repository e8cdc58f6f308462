package searcher

import (
	"pawns/experiments/metrics"
	"pawns/game"
	"time"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline opponent of
// the experiments.
type Random struct {
	side game.Side
	rng  *rand.Rand
}

func NewRandom(side game.Side, seed uint64) *Random {
	return &Random{
		side: side,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (r *Random) Side() game.Side {
	return r.side
}

func (r *Random) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()
	if game.IsGameOver(board) {
		return game.Move{}, metrics.SearchMetric{}, ErrGameOver
	}
	moves := game.LegalMoves(board, r.side)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, ErrNoLegalMoves
	}

	move := moves[r.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Duration: time.Since(start), Nodes: 1}, nil
}
