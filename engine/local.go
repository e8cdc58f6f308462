package engine

import (
	"errors"
	"fmt"
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/meta"
	"pawns/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ReasonGoal      = "goal"
	ReasonBlockade  = "blockade"
	ReasonResigned  = "resigned"
	ReasonTurnLimit = "turn limit"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Session  *Session
	Opponent Player
	MaxTurns int
}

func LocalEngine(session *Session, opponent Player) *Engine {
	if session == nil || opponent == nil {
		panic("local engine needs a session and an opponent")
	}
	return &Engine{
		Session:  session,
		Opponent: opponent,
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the game loop until the game is over. White moves first. A
// side without a legal move passes while the other side can still move.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: game.White.String(),
		StartTime:      time.Now(),
	}
	engineSide := e.Session.Side()
	turn := game.White

	log.Info().Msgf("engine plays %v, %v is starting", engineSide, turn)

	for !e.Session.GameOver() && e.Session.Plies() < e.MaxTurns {
		if turn == engineSide {
			move, err := e.Session.Move(nil)
			switch {
			case errors.Is(err, searcher.ErrNoLegalMoves):
				log.Info().Msgf("%v has no legal move and passes", turn)
			case err != nil:
				return gameMetric, e.Session.History(), fmt.Errorf("engine move: %w", err)
			default:
				log.Debug().Msgf("%v played %v", turn, move)
			}
		} else {
			resigned, err := e.opponentTurn(turn)
			if err != nil {
				return gameMetric, e.Session.History(), err
			}
			if resigned {
				log.Info().Msgf("%v resigned", turn)
				gameMetric.Winner = engineSide.String()
				gameMetric.Reason = ReasonResigned
				return e.complete(gameMetric), e.Session.History(), nil
			}
		}
		turn = turn.Opponent()
	}

	winner := e.Session.Winner()
	gameMetric.Winner = winner.String()
	switch {
	case winner != game.None:
		gameMetric.Reason = ReasonGoal
	case e.Session.GameOver():
		gameMetric.Reason = ReasonBlockade
	default:
		gameMetric.Reason = ReasonTurnLimit
	}

	if winner != game.None {
		log.Info().Msgf("game over after %d moves, winner: %v", e.Session.Plies(), winner)
	} else {
		log.Info().Msgf("game stopped after %d moves without a winner (%s)", e.Session.Plies(), gameMetric.Reason)
	}
	return e.complete(gameMetric), e.Session.History(), nil
}

func (e *Engine) opponentTurn(side game.Side) (resigned bool, err error) {
	board := e.Session.Board()
	if len(game.LegalMoves(board, side)) == 0 {
		log.Info().Msgf("%v has no legal move and passes", side)
		return false, nil
	}

	move, err := e.Opponent.NextMove(board, side)
	if errors.Is(err, ErrResigned) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("opponent move: %w", err)
	}

	if err := e.Session.Play(move); err != nil {
		return false, err
	}
	log.Debug().Msgf("%v played %v", side, move)
	return false, nil
}

func (e *Engine) complete(gameMetric metrics.GameMetric) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Session.Plies()
	return gameMetric
}

// AgentPlayer lets a searcher agent act as the opponent of a session.
type AgentPlayer struct {
	Agent searcher.Agent
}

func (a AgentPlayer) NextMove(board *game.Board, side game.Side) (game.Move, error) {
	if side != a.Agent.Side() {
		return game.Move{}, fmt.Errorf("agent plays %v, asked to move %v", a.Agent.Side(), side)
	}
	move, _, err := a.Agent.FindMove(board)
	return move, err
}
