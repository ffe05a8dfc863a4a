package game

import "math"

// Evaluate scores a candidate move for a player. Higher is better.
type Evaluate func(g *Game, player string, m Move) float64

// EvaluateTipProgress measures how much closer the move brings the piece to
// the tip of the player's goal triangle.
func EvaluateTipProgress(g *Game, player string, m Move) float64 {
	return progress(g.GoalTip(player), m)
}

// EvaluateGoalProgress measures progress toward the nearest goal point the
// player does not hold yet. Pieces already sitting in the goal keep being
// scored against the tip, which keeps stragglers moving late in the game.
func EvaluateGoalProgress(g *Game, player string, m Move) float64 {
	ps := g.PlayerState(player)
	if ps.Goal.Contains(m.From) {
		return progress(g.GoalTip(player), m)
	}

	target, best := Position{}, math.Inf(1)
	for _, p := range ps.Goal.Sorted() {
		if ps.Positions.Contains(p) {
			continue
		}
		if d := p.Sub(m.From).Norm(); d < best {
			target, best = p, d
		}
	}
	if math.IsInf(best, 1) {
		return progress(g.GoalTip(player), m)
	}
	return progress(target, m)
}

func progress(target Position, m Move) float64 {
	before := target.Sub(m.From).Norm()
	after := target.Sub(m.To).Norm()
	return before - after
}
