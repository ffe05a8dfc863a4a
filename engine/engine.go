package engine

import (
	"checkers/game"
	"checkers/metrics"
)

// Agent chooses moves for one player.
type Agent interface {
	FindMove(state *game.Game, player string) (game.Move, bool, metrics.SelectMetric)
}

// Observer is notified as the game unfolds, e.g. to redraw a board.
type Observer interface {
	OnRound(round int)
	OnMove(player string, move game.Move)
	OnFinish(player string, round int)
}

type nopObserver struct{}

func (nopObserver) OnRound(int)              {}
func (nopObserver) OnMove(string, game.Move) {}
func (nopObserver) OnFinish(string, int)     {}
