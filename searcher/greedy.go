package searcher

import (
	"checkers/game"
	"checkers/metrics"

	"golang.org/x/exp/rand"
)

// Scores closer than this are treated as equal.
const tieTolerance = 1e-9

type Option func(g *Greedy)

// Greedy picks the candidate move with the highest heuristic score. It looks
// one move ahead and ignores the opponents.
type Greedy struct {
	evaluate game.Evaluate
	rng      *rand.Rand // nil keeps the first best move
	metrics  metrics.Collector
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(g *Greedy) {
		if evaluate != nil {
			g.evaluate = evaluate
		}
	}
}

// WithRandomTies breaks ties uniformly at random instead of taking the first
// best move.
func WithRandomTies(seed uint64) Option {
	return func(g *Greedy) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = metrics.NewCollector()
	}
}

func NewGreedy(options ...Option) *Greedy {
	g := &Greedy{ // Default values
		evaluate: game.EvaluateTipProgress,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// SelectMove returns the best move for player, or false if it has none.
func (g *Greedy) SelectMove(state *game.Game, player string) (game.Move, bool) {
	move, ok, _ := g.FindMove(state, player)
	return move, ok
}

// FindMove is SelectMove plus the metrics of the selection.
func (g *Greedy) FindMove(state *game.Game, player string) (game.Move, bool, metrics.SelectMetric) {
	g.metrics.Start()

	var best game.Move
	bestScore, ties := 0.0, 0
	for _, move := range state.Moves(player) {
		if move.Kind == game.Jump {
			g.metrics.AddJump()
		} else {
			g.metrics.AddCrawl()
		}

		score := g.evaluate(state, player, move)
		switch {
		case ties == 0 || score > bestScore+tieTolerance:
			best, bestScore, ties = move, score, 1
		case score >= bestScore-tieTolerance:
			ties++
			// Reservoir sampling keeps each tied move with probability 1/ties
			if g.rng != nil && g.rng.Intn(ties) == 0 {
				best = move
			}
		}
	}

	g.metrics.SetBest(bestScore, ties)
	return best, ties > 0, g.metrics.Complete()
}
