package game

import "fmt"

// MaxPlayers is bounded by the number of triangles.
const MaxPlayers = NumTriangles

// PlayerState is the occupancy of one player. Goal is fixed at registration.
type PlayerState struct {
	Triangle  Triangle
	Positions PositionSet
	Goal      PositionSet
}

// Game owns the board and every player's occupancy. It is not safe for
// concurrent use: a turn must finish generating, selecting and applying a
// move before the next one starts.
type Game struct {
	Board   *Board
	players map[string]*PlayerState
	order   []string
}

// NewGame creates a board of the given size with no players.
func NewGame(size int) *Game {
	return &Game{
		Board:   NewBoard(size),
		players: make(map[string]*PlayerState),
	}
}

// Register seats a player on triangle t. The player starts on every point of
// t and has to fill the opposite triangle.
func (g *Game) Register(name string, t Triangle) error {
	if len(g.players) >= MaxPlayers {
		return fmt.Errorf("%w: limit is %d", ErrCapacityExceeded, MaxPlayers)
	}
	if _, ok := g.players[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePlayer, name)
	}
	if !t.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidTriangle, t)
	}
	for other, ps := range g.players {
		if ps.Triangle == t {
			return fmt.Errorf("%w: %d is held by %q", ErrTriangleTaken, t, other)
		}
	}

	g.players[name] = &PlayerState{
		Triangle:  t,
		Positions: g.Board.Triangle(t),
		Goal:      g.Board.Triangle(t.Opposite()),
	}
	g.order = append(g.order, name)
	return nil
}

// Players returns the player names in registration order.
func (g *Game) Players() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// PlayerState returns the state of a registered player and panics otherwise.
func (g *Game) PlayerState(name string) *PlayerState {
	ps, ok := g.players[name]
	if !ok {
		panic(fmt.Sprintf("player %s is not found in the game", name))
	}
	return ps
}

// IsOccupied reports whether any player holds p.
func (g *Game) IsOccupied(p Position) bool {
	for _, ps := range g.players {
		if ps.Positions.Contains(p) {
			return true
		}
	}
	return false
}

// Occupant returns the player holding p.
func (g *Game) Occupant(p Position) (string, bool) {
	for _, name := range g.order {
		if g.players[name].Positions.Contains(p) {
			return name, true
		}
	}
	return "", false
}

// ApplyMove moves one of the player's pieces from one point to another. The
// caller guarantees that from is held by the player and to is a legal
// destination.
func (g *Game) ApplyMove(name string, from, to Position) error {
	ps, ok := g.players[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
	ps.Positions.Remove(from)
	ps.Positions.Add(to)
	return nil
}

// IsDone reports whether the player occupies exactly its goal triangle.
func (g *Game) IsDone(name string) bool {
	ps := g.PlayerState(name)
	return ps.Positions.Equal(ps.Goal)
}

// Finished returns the players that are done, in registration order.
func (g *Game) Finished() []string {
	var out []string
	for _, name := range g.order {
		if g.IsDone(name) {
			out = append(out, name)
		}
	}
	return out
}

// GoalTip is the tip of the player's goal triangle.
func (g *Game) GoalTip(name string) Position {
	return g.Board.Tip(g.PlayerState(name).Triangle.Opposite())
}
