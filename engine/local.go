package engine

import (
	"fmt"
	"time"

	"checkers/game"
	"checkers/meta"
	"checkers/metrics"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

func WithMaxRounds(rounds int) Option {
	return func(e *Engine) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

// Engine drives a game to completion. Every turn runs generation, selection
// and application back to back before the next player moves.
type Engine struct {
	Game      *game.Game
	Agents    map[string]Agent
	maxRounds int
	observer  Observer
}

func LocalEngine(g *game.Game, agents map[string]Agent, options ...Option) *Engine {
	players := g.Players()
	if len(players) == 0 {
		panic("need at least one player")
	}
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	for _, player := range players {
		if _, ok := agents[player]; !ok {
			panic(fmt.Sprintf("player %s has no agent", player))
		}
	}

	e := &Engine{
		Game:      g,
		Agents:    agents,
		maxRounds: meta.MAX_ROUNDS,
		observer:  nopObserver{},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run plays rounds until every player is done or the round cap is hit.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	players := e.Game.Players()
	gameMetric := metrics.GameMetric{
		Size:      e.Game.Board.Size,
		Players:   len(players),
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric
	done := make(map[string]bool, len(players))

	log.Info().Int("size", e.Game.Board.Size).Strs("players", players).Msg("game started")

	for round := 1; round <= e.maxRounds && len(done) < len(players); round++ {
		e.observer.OnRound(round)
		gameMetric.Rounds = round

		for _, player := range players {
			if done[player] {
				continue
			}

			move, ok, selectMetric := e.Agents[player].FindMove(e.Game, player)
			if !ok {
				log.Debug().Str("player", player).Int("round", round).Msg("no move available, passing")
				gameMetric.Passes++
				continue
			}
			if err := e.Game.ApplyMove(player, move.From, move.To); err != nil {
				panic(fmt.Sprintf("failed to apply move: %v", err))
			}
			gameMetric.TotalMoves++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Round:        round,
				Player:       player,
				SelectMetric: selectMetric,
			})
			e.observer.OnMove(player, move)
			log.Debug().Str("player", player).Int("round", round).Stringer("move", move).Msg("move applied")

			if e.Game.IsDone(player) {
				done[player] = true
				gameMetric.Finished = append(gameMetric.Finished, player)
				e.observer.OnFinish(player, round)
				log.Info().Msgf("player %s finished in round %d", player, round)
			}
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	if len(done) == len(players) {
		log.Info().Msgf("all players finished after %d rounds", gameMetric.Rounds)
	} else {
		log.Info().Msgf("stopped after %d rounds with %d of %d players finished",
			gameMetric.Rounds, len(done), len(players))
	}
	return gameMetric, moveMetrics
}
