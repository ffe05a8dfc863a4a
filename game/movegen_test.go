package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newDuel seats A on the top triangle and B on the bottom one.
func newDuel(t *testing.T, size int) *Game {
	t.Helper()
	g := NewGame(size)
	require.NoError(t, g.Register("A", 0))
	require.NoError(t, g.Register("B", 3))
	return g
}

func TestAdjacentUnoccupied(t *testing.T) {
	t.Run("minimal board tip", func(t *testing.T) {
		g := newDuel(t, 1)

		got := g.AdjacentUnoccupied(Position{X: 3, Y: 0})
		require.True(t, got.Equal(NewPositionSet(Position{X: 2, Y: 1}, Position{X: 4, Y: 1})))
	})

	t.Run("occupied neighbors are excluded", func(t *testing.T) {
		g := newDuel(t, 1)
		place(g, "A", Position{X: 3, Y: 2})
		place(g, "B", Position{X: 1, Y: 2}, Position{X: 4, Y: 3})

		got := g.AdjacentUnoccupied(Position{X: 3, Y: 2})
		require.True(t, got.Equal(NewPositionSet(
			Position{X: 2, Y: 1},
			Position{X: 2, Y: 3},
			Position{X: 5, Y: 2},
			Position{X: 4, Y: 1},
		)))
	})

	t.Run("panics for off-board origin", func(t *testing.T) {
		g := newDuel(t, 1)
		require.Panics(t, func() { g.AdjacentUnoccupied(Position{X: 0, Y: 0}) })
	})
}

func TestJumpable(t *testing.T) {
	origin := Position{X: 12, Y: 8}

	t.Run("single jump", func(t *testing.T) {
		g := newDuel(t, 4)
		place(g, "A", origin)
		place(g, "B", Position{X: 14, Y: 8})

		got := g.Jumpable(origin)
		require.True(t, got.Equal(NewPositionSet(Position{X: 16, Y: 8})))
	})

	t.Run("chained jumps", func(t *testing.T) {
		g := newDuel(t, 4)
		place(g, "A", origin)
		place(g, "B", Position{X: 14, Y: 8}, Position{X: 18, Y: 8})

		got := g.Jumpable(origin)
		require.True(t, got.Equal(NewPositionSet(Position{X: 16, Y: 8}, Position{X: 20, Y: 8})))

		paths := g.JumpPaths(origin)
		require.Equal(t, []Position{origin, {X: 16, Y: 8}, {X: 20, Y: 8}}, paths[Position{X: 20, Y: 8}])
		require.Equal(t, []Position{origin, {X: 16, Y: 8}}, paths[Position{X: 16, Y: 8}])
	})

	t.Run("blocked landing", func(t *testing.T) {
		g := newDuel(t, 4)
		place(g, "A", origin, Position{X: 16, Y: 8})
		place(g, "B", Position{X: 14, Y: 8})

		require.Empty(t, g.Jumpable(origin))
	})

	t.Run("landing off the board", func(t *testing.T) {
		g := newDuel(t, 1)
		place(g, "A", Position{X: 3, Y: 2})
		place(g, "B", Position{X: 4, Y: 1})

		// Beyond (4, 1) lies (5, 0), which is not on the board
		require.Empty(t, g.Jumpable(Position{X: 3, Y: 2}))
	})

	t.Run("origin is never a destination", func(t *testing.T) {
		g := newDuel(t, 4)
		place(g, "A", origin)
		place(g, "B", Position{X: 14, Y: 8}, Position{X: 17, Y: 9}, Position{X: 15, Y: 9})

		got := g.Jumpable(origin)
		require.False(t, got.Contains(origin))
		require.True(t, got.Contains(Position{X: 16, Y: 8}))
	})

	t.Run("closure is idempotent", func(t *testing.T) {
		g := newDuel(t, 4)
		for i, name := range []string{"C", "D", "E", "F"} {
			require.NoError(t, g.Register(name, []Triangle{1, 2, 4, 5}[i]))
		}
		// Open up the crowded start a little so chains appear
		place(g, "A", append(g.PlayerState("A").Positions.Sorted()[1:], Position{X: 12, Y: 4})...)

		for _, name := range g.Players() {
			for _, from := range g.PlayerState(name).Positions.Sorted() {
				found := g.Jumpable(from)
				for q := range found {
					for r := range g.Jumpable(q) {
						require.True(t, found.Contains(r),
							"%v reachable from %v via %v should already be in the closure", r, from, q)
					}
				}
			}
		}
	})
}

func TestMoves(t *testing.T) {
	origin := Position{X: 12, Y: 8}

	t.Run("crawls first in direction order then jumps", func(t *testing.T) {
		g := newDuel(t, 4)
		place(g, "A", origin)
		place(g, "B", Position{X: 14, Y: 8}, Position{X: 18, Y: 8})

		moves := g.Moves("A")
		var got []Position
		for _, m := range moves {
			require.Equal(t, origin, m.From)
			got = append(got, m.To)
		}
		require.Equal(t, []Position{
			{X: 11, Y: 7}, {X: 10, Y: 8}, {X: 11, Y: 9}, {X: 13, Y: 9}, {X: 13, Y: 7},
			{X: 16, Y: 8}, {X: 20, Y: 8},
		}, got)

		require.Equal(t, Crawl, moves[0].Kind)
		require.Equal(t, []Position{origin, {X: 11, Y: 7}}, moves[0].Path)
		require.Equal(t, Jump, moves[6].Kind)
		require.Equal(t, []Position{origin, {X: 16, Y: 8}, {X: 20, Y: 8}}, moves[6].Path)
	})

	t.Run("no duplicate destinations per origin", func(t *testing.T) {
		g := newDuel(t, 4)
		seen := make(map[[2]Position]bool)
		for _, m := range g.Moves("A") {
			key := [2]Position{m.From, m.To}
			require.False(t, seen[key], "duplicate move %v", m)
			seen[key] = true
			require.False(t, g.IsOccupied(m.To))
		}
		require.NotEmpty(t, seen)
	})

	t.Run("no pieces means no moves", func(t *testing.T) {
		g := newDuel(t, 2)
		place(g, "A")
		require.Empty(t, g.Moves("A"))
	})
}
