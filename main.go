package main

import (
	"flag"
	"fmt"
	"os"
	"pawns/communication/client"
	"pawns/communication/server"
	"pawns/engine"
	"pawns/experiments"
	"pawns/experiments/metrics"
	"pawns/game"
	"pawns/meta"
	"pawns/player"
	"pawns/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "console", "console, serve, client or experiment")
	color := flag.String("color", "white", "Side played by the engine")
	depth := flag.Int("depth", meta.SearchDepth, "Search depth in plies")
	addr := flag.String("addr", meta.DefaultAddr, "Listen address in serve mode")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL in client mode")
	games := flag.Int("games", meta.GAMES, "Games per experiment")
	rival := flag.String("rival", experiments.KindRandom, "Experiment rival: random or minimax")
	rivalDepth := flag.Int("rival-depth", meta.SearchDepth, "Search depth of a minimax rival")
	seed := flag.Uint64("seed", 1, "Seed of the random experiment rival")
	outDir := flag.String("out", "experiments", "Directory of experiment records")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	configureLogging(*level)

	side, err := game.ParseSide(*color)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -color")
	}

	switch *mode {
	case "console":
		err = runConsole(side, *depth)
	case "serve":
		err = server.NewServerCommunicator(searcher.WithDepth(*depth)).Start(*addr)
	case "client":
		err = runClient(*serverURL, side)
	case "experiment":
		err = runExperiment(*games, *depth, metrics.AgentConfig{ID: 2, Kind: *rival, Depth: *rivalDepth, Seed: *seed}, *outDir)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func configureLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func runConsole(side game.Side, depth int) error {
	session, err := engine.Setup(game.NewStandardSetup(side), searcher.WithDepth(depth))
	if err != nil {
		return err
	}
	human := player.NewConsole(os.Stdin, os.Stdout)

	gameMetric, _, err := engine.LocalEngine(session, human).Run()
	if err != nil {
		return err
	}

	fmt.Println(session.Board())
	fmt.Printf("Game over (%s). Winner: %s\n", gameMetric.Reason, winnerName(gameMetric.Winner))
	return nil
}

func runClient(serverURL string, side game.Side) error {
	cc := client.NewClientCommunicator(serverURL)
	human := player.NewConsole(os.Stdin, os.Stdout)

	winner, err := client.RemoteGame(cc, human, game.NewStandardSetup(side))
	if err != nil {
		return err
	}
	fmt.Printf("Game over. Winner: %s\n", winnerName(winner.String()))
	return nil
}

func runExperiment(games, depth int, rival metrics.AgentConfig, outDir string) error {
	summary, err := experiments.RunMatch(experiments.Config{
		Name:   experiments.KindMinimax + "_vs_" + rival.Kind,
		Dir:    outDir,
		Games:  games,
		Engine: metrics.AgentConfig{ID: 1, Kind: experiments.KindMinimax, Depth: depth},
		Rival:  rival,
	})
	if err != nil {
		return err
	}
	fmt.Printf("engine %d, %s rival %d, draws %d (records in %s)\n", summary.EngineWins, rival.Kind, summary.RivalWins, summary.Draws, summary.Dir)
	return nil
}

func winnerName(winner string) string {
	if winner == "" {
		return "none"
	}
	return winner
}
