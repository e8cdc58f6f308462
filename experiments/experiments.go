package experiments

import (
	"errors"
	"fmt"
	"pawns/engine"
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/searcher"

	"github.com/rs/zerolog/log"
)

var ErrUnknownAgent = errors.New("unknown agent kind")

const (
	KindMinimax = "minimax"
	KindRandom  = "random"
)

type Config struct {
	Name   string
	Dir    string // Records are written under Dir/Name when Dir is set
	Games  int
	Engine metrics.AgentConfig // Plays through the session
	Rival  metrics.AgentConfig
}

type Summary struct {
	EngineWins int
	RivalWins  int
	Draws      int // Blockades and turn limits
	Dir        string
}

// RunMatch plays cfg.Games games between the engine and the rival from the
// standard setup, swapping colors every game, and stores the records.
func RunMatch(cfg Config) (Summary, error) {
	var summary Summary
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment: engine=%+v rival=%+v", cfg.Name, cfg.Engine, cfg.Rival)

	for i := 0; i < cfg.Games; i++ {
		color := game.White
		if i%2 == 1 {
			color = game.Black
		}

		gameMetric, moveMetrics, err := runGame(cfg, color, i)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		switch gameMetric.Winner {
		case color.String():
			summary.EngineWins++
		case color.Opponent().String():
			summary.RivalWins++
		default:
			summary.Draws++
		}

		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Engine:     cfg.Engine.ID,
			Rival:      cfg.Rival.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %q (%s)", id, cfg.Games, gameMetric.Winner, gameMetric.Reason)
	}

	log.Info().Msgf("completed %s experiment: %+v", cfg.Name, summary)

	if cfg.Dir == "" {
		return summary, nil
	}
	dir, err := store(cfg, gameRecords, moveRecords)
	summary.Dir = dir
	return summary, err
}

func runGame(cfg Config, color game.Side, index int) (metrics.GameMetric, []metrics.MoveMetric, error) {
	board, err := game.NewBoardFromSetup(game.NewStandardSetup(color))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	agent, err := newAgent(cfg.Engine, color, index)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	rival, err := newAgent(cfg.Rival, color.Opponent(), index)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(engine.NewSession(board, agent), engine.AgentPlayer{Agent: rival})
	return e.Run()
}

func newAgent(config metrics.AgentConfig, side game.Side, index int) (searcher.Agent, error) {
	switch config.Kind {
	case KindMinimax:
		return searcher.NewMinimax(side, searcher.WithDepth(config.Depth), searcher.WithMetrics()), nil
	case KindRandom:
		// Vary the seed per game so games differ
		return searcher.NewRandom(side, config.Seed+uint64(index)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, config.Kind)
	}
}

func store(cfg Config, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.Dir, cfg.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs([]metrics.AgentConfig{cfg.Engine, cfg.Rival})
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
