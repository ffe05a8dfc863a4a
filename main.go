package main

import (
	"flag"
	"os"

	"checkers/engine"
	"checkers/game"
	"checkers/meta"
	"checkers/metrics"
	"checkers/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	size      int
	players   int
	rounds    int
	seed      uint64
	goalAware bool
}

func main() {
	cfg := parseFlags()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if cfg.size < 1 {
		log.Fatal().Int("size", cfg.size).Msg("board size must be positive")
	}
	if cfg.players < 1 || cfg.players > len(meta.PLAYERS) {
		log.Fatal().Int("players", cfg.players).Msgf("players must be between 1 and %d", len(meta.PLAYERS))
	}

	gameMetric := runGame(cfg)
	log.Info().
		Strs("finished", gameMetric.Finished).
		Int("rounds", gameMetric.Rounds).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.size, "size", meta.BOARD_SIZE, "points along a triangle edge")
	flag.IntVar(&cfg.players, "players", len(meta.PLAYERS), "number of computer players")
	flag.IntVar(&cfg.rounds, "rounds", meta.MAX_ROUNDS, "maximum number of rounds")
	flag.Uint64Var(&cfg.seed, "seed", 0, "break ties at random with this seed (0 keeps the first best move)")
	flag.BoolVar(&cfg.goalAware, "goal-aware", false, "aim for empty goal points instead of the goal tip")
	flag.Parse()
	return cfg
}

// runGame seats the players on consecutive triangles and plays a headless game.
func runGame(cfg config) metrics.GameMetric {
	g := game.NewGame(cfg.size)
	agents := make(map[string]engine.Agent, cfg.players)
	for i, name := range meta.PLAYERS[:cfg.players] {
		if err := g.Register(name, game.Triangle(i)); err != nil {
			log.Fatal().Err(err).Str("player", name).Msg("failed to register player")
		}
		agents[name] = createAgent(cfg, uint64(i))
	}

	e := engine.LocalEngine(g, agents, engine.WithMaxRounds(cfg.rounds))
	gameMetric, _ := e.Run()
	return gameMetric
}

func createAgent(cfg config, offset uint64) *searcher.Greedy {
	options := []searcher.Option{}

	if cfg.seed > 0 {
		options = append(options, searcher.WithRandomTies(cfg.seed+offset))
	}
	if cfg.goalAware {
		options = append(options, searcher.WithEvaluationFn(game.EvaluateGoalProgress))
	}

	return searcher.NewGreedy(options...)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
