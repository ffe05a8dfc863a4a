package game

// AdjacentUnoccupied returns the neighbors of p that nobody holds.
func (g *Game) AdjacentUnoccupied(p Position) PositionSet {
	return NewPositionSet(g.crawls(p)...)
}

// Jumpable returns every point reachable from p by a chain of single jumps.
// The piece at p stays where it is while the chain is explored, so it can
// serve as a pivot for later hops.
func (g *Game) Jumpable(p Position) PositionSet {
	order, _ := g.jumpClosure(p)
	return NewPositionSet(order...)
}

// JumpPaths returns, for each point in Jumpable(p), one chain of landing
// points starting at p and ending at that point.
func (g *Game) JumpPaths(p Position) map[Position][]Position {
	order, parent := g.jumpClosure(p)
	paths := make(map[Position][]Position, len(order))
	for _, q := range order {
		paths[q] = witness(p, q, parent)
	}
	return paths
}

// Moves lists every candidate move of the player. Origins are visited row by
// row; for each origin the crawls come first in direction order, then the
// jumps in discovery order. A destination reachable by both is a crawl.
func (g *Game) Moves(name string) []Move {
	ps := g.PlayerState(name)
	var moves []Move
	for _, from := range ps.Positions.Sorted() {
		seen := NewPositionSet()
		for _, to := range g.crawls(from) {
			seen.Add(to)
			moves = append(moves, Move{From: from, To: to, Kind: Crawl, Path: []Position{from, to}})
		}
		order, parent := g.jumpClosure(from)
		for _, to := range order {
			if seen.Contains(to) {
				continue
			}
			seen.Add(to)
			moves = append(moves, Move{From: from, To: to, Kind: Jump, Path: witness(from, to, parent)})
		}
	}
	return moves
}

func (g *Game) crawls(p Position) []Position {
	n := g.Board.Node(p)
	var out []Position
	for d := Direction(0); d < NumDirections; d++ {
		q, ok := n.Neighbor(d)
		if ok && !g.IsOccupied(q) {
			out = append(out, q)
		}
	}
	return out
}

// hops returns the landing points of the single jumps from p.
func (g *Game) hops(p Position) []Position {
	n := g.Board.Node(p)
	var out []Position
	for d := Direction(0); d < NumDirections; d++ {
		leg, ok := n.Neighbor(d)
		if !ok || !g.IsOccupied(leg) {
			continue
		}
		land, ok := g.Board.Opposite(leg, p)
		if ok && !g.IsOccupied(land) {
			out = append(out, land)
		}
	}
	return out
}

// jumpClosure expands the single jumps of p breadth first until a round adds
// nothing new. It returns the destinations in discovery order and the point
// each one was first reached from.
func (g *Game) jumpClosure(p Position) ([]Position, map[Position]Position) {
	found := NewPositionSet()
	parent := make(map[Position]Position)
	var order []Position

	frontier := []Position{p}
	for len(frontier) > 0 {
		var next []Position
		for _, from := range frontier {
			for _, to := range g.hops(from) {
				if to == p || found.Contains(to) {
					continue
				}
				found.Add(to)
				parent[to] = from
				order = append(order, to)
				next = append(next, to)
			}
		}
		frontier = next
	}
	return order, parent
}

func witness(origin, dest Position, parent map[Position]Position) []Position {
	path := []Position{dest}
	for p := dest; p != origin; {
		p = parent[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
