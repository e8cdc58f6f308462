package searcher

import (
	"fmt"
	"math"
	"pawns/experiments/metrics"
	"pawns/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a fixed-depth minimax searcher playing one side. Its own side
// maximizes, the opponent minimizes. Every explored move is applied to a
// private snapshot of the board.
type Minimax struct {
	side     game.Side
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(side game.Side, options ...Option) *Minimax {
	if side != game.White && side != game.Black {
		panic(fmt.Sprintf("minimax must play white or black, got %q", side))
	}
	m := &Minimax{ // Default values
		side:     side,
		depth:    DefaultDepth,
		evaluate: game.EvaluateAdvancement,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Side() game.Side {
	return m.side
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) FindMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	m.metrics.Start(m.depth)
	move, score, err := m.BestMove(board)
	metric := m.metrics.Complete(score)
	if err != nil {
		return game.Move{}, metric, err
	}

	log.Debug().
		Stringer("side", m.side).
		Stringer("move", move).
		Int("score", score).
		Int("nodes", metric.Nodes).
		Msg("minimax selected move")
	return move, metric, nil
}

// BestMove searches board to the configured depth with the engine's side to
// play and returns the first move reaching the greatest minimax value,
// together with that value.
func (m *Minimax) BestMove(board *game.Board) (game.Move, int, error) {
	m.metrics.AddNode()
	if game.IsGameOver(board) {
		return game.Move{}, 0, ErrGameOver
	}
	moves := game.LegalMoves(board, m.side)
	if len(moves) == 0 {
		return game.Move{}, 0, fmt.Errorf("%v to play: %w", m.side, ErrNoLegalMoves)
	}

	best, score, found := m.extremum(board, m.depth, true)
	if !found {
		// Every move scored -inf, none is better than another
		best = moves[0]
	}
	return best, score, nil
}

// bestScore is the minimax value of board with depth plies left.
func (m *Minimax) bestScore(board *game.Board, depth int, maximizing bool) int {
	m.metrics.AddNode()
	if depth == 0 || game.IsGameOver(board) {
		m.metrics.AddLeaf()
		return m.evaluate(board, m.side)
	}
	_, score, _ := m.extremum(board, depth, maximizing)
	return score
}

// extremum explores the moves of the side to play, each on its own snapshot,
// and keeps the first move strictly improving on the running extremum. With no
// moves the accumulator is returned untouched: math.MinInt for a maximizing
// node, math.MaxInt for a minimizing one.
func (m *Minimax) extremum(board *game.Board, depth int, maximizing bool) (best game.Move, score int, found bool) {
	side := m.side
	score = math.MinInt
	if !maximizing {
		side = m.side.Opponent()
		score = math.MaxInt
	}

	for _, move := range game.LegalMoves(board, side) {
		child := board.Snapshot()
		child.Apply(move)
		eval := m.bestScore(child, depth-1, !maximizing)
		if (maximizing && eval > score) || (!maximizing && eval < score) {
			best, score, found = move, eval, true
		}
	}
	return best, score, found
}
