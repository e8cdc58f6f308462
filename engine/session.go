package engine

import (
	"fmt"
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/searcher"
	"sync"
)

// Session owns the live board and the agent playing one side on it. Methods
// are safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	board   *game.Board
	agent   searcher.Agent
	plies   int
	history []metrics.MoveMetric
}

// Setup places the pawns of setup on a fresh board and binds a minimax agent
// to setup.Color. Search metrics are collected for every move.
func Setup(setup game.Setup, options ...searcher.Option) (*Session, error) {
	if setup.Color != game.White && setup.Color != game.Black {
		return nil, fmt.Errorf("engine color: %w", game.ErrUnknownSide)
	}
	board, err := game.NewBoardFromSetup(setup)
	if err != nil {
		return nil, err
	}
	options = append([]searcher.Option{searcher.WithMetrics()}, options...)
	return NewSession(board, searcher.NewMinimax(setup.Color, options...)), nil
}

// NewSession plays agent on board. The session takes ownership of board.
func NewSession(board *game.Board, agent searcher.Agent) *Session {
	return &Session{
		board: board,
		agent: agent,
	}
}

func (s *Session) Side() game.Side {
	return s.agent.Side()
}

// State is a view of the session read under a single lock.
type State struct {
	Board    game.Board
	Color    game.Side
	GameOver bool
	Winner   game.Side
	Plies    int
}

// Move applies previous, the opponent's last move, when it is not nil, then
// lets the agent pick a move, applies it and returns it.
func (s *Session) Move(previous *game.Move) (game.Move, error) {
	move, _, err := s.MoveState(previous)
	return move, err
}

// MoveState is Move followed by State without releasing the session in
// between, so the state is the one the returned move produced.
func (s *Session) MoveState(previous *game.Move) (game.Move, State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if previous != nil {
		if err := s.play(*previous); err != nil {
			return game.Move{}, State{}, err
		}
	}
	move, err := s.respond()
	if err != nil {
		return game.Move{}, State{}, err
	}
	return move, s.state(), nil
}

// Play validates and applies a move of the opponent without replying.
func (s *Session) Play(move game.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.play(move)
}

func (s *Session) play(move game.Move) error {
	if !s.board.InBounds(move.From) || !s.board.InBounds(move.To) {
		return fmt.Errorf("move %v: %w", move, game.ErrOutOfBounds)
	}
	if game.IsGameOver(s.board) {
		return fmt.Errorf("move %v: %w", move, searcher.ErrGameOver)
	}
	opponent := s.agent.Side().Opponent()
	if !game.IsLegal(s.board, opponent, move) {
		return fmt.Errorf("move %v for %v: %w", move, opponent, ErrIllegalMove)
	}

	s.board.Apply(move)
	s.plies++
	return nil
}

func (s *Session) respond() (game.Move, error) {
	move, metric, err := s.agent.FindMove(s.board)
	if err != nil {
		return game.Move{}, err
	}

	s.board.Apply(move)
	s.plies++
	s.history = append(s.history, metrics.MoveMetric{
		Step:         s.plies,
		Player:       s.agent.Side().String(),
		SearchMetric: metric,
	})
	return move, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

func (s *Session) state() State {
	return State{
		Board:    *s.board,
		Color:    s.agent.Side(),
		GameOver: game.IsGameOver(s.board),
		Winner:   game.Winner(s.board),
		Plies:    s.plies,
	}
}

// Board returns a snapshot of the live board.
func (s *Session) Board() *game.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board.Snapshot()
}

func (s *Session) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return game.IsGameOver(s.board)
}

func (s *Session) Winner() game.Side {
	s.mu.Lock()
	defer s.mu.Unlock()

	return game.Winner(s.board)
}

// Plies is the number of moves applied to the live board by either side.
func (s *Session) Plies() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plies
}

// History returns the search metrics of every move the agent played.
func (s *Session) History() []metrics.MoveMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]metrics.MoveMetric(nil), s.history...)
}
