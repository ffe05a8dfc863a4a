package game

import (
	"fmt"

	"checkers/utils"
)

// Slot is one neighbor entry of a Node. OK is false at board edges.
type Slot struct {
	Position Position
	OK       bool
}

// Node holds the static facts about one board point.
type Node struct {
	slots    [NumDirections]Slot
	triangle Triangle
}

func newNode(p Position, size int) *Node {
	n := &Node{triangle: p.InTriangle(size)}
	for d := Direction(0); d < NumDirections; d++ {
		q, ok := p.Add(d.Offset()).Validate(size)
		n.slots[d] = Slot{Position: q, OK: ok}
	}
	return n
}

// Neighbor returns the adjacent point in direction d, if it is on the board.
func (n *Node) Neighbor(d Direction) (Position, bool) {
	s := n.slots[d]
	return s.Position, s.OK
}

// DirectionTo returns the slot holding p, or false if p is not adjacent.
func (n *Node) DirectionTo(p Position) (Direction, bool) {
	i := utils.FindIndex(n.slots[:], Slot{Position: p, OK: true})
	if i < 0 {
		return 0, false
	}
	return Direction(i), true
}

// Triangle returns the corner region of the point, NoTriangle for the center.
func (n *Node) Triangle() Triangle {
	return n.triangle
}

// Board is the hexagram topology. It is never modified after NewBoard.
type Board struct {
	Size  int
	nodes map[Position]*Node
	order []Position
	tips  [NumTriangles]Position
}

// NewBoard builds the topology for the given size. size must be positive.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("board size must be positive, got %d", size))
	}
	b := &Board{
		Size:  size,
		nodes: make(map[Position]*Node),
		tips: [NumTriangles]Position{
			{X: 3 * size, Y: 0},
			{X: 0, Y: size},
			{X: 0, Y: 3 * size},
			{X: 3 * size, Y: 4 * size},
			{X: 6 * size, Y: 3 * size},
			{X: 6 * size, Y: size},
		},
	}

	// Each row is a run of points two x units apart. The outline mirrors
	// around y = 2*size.
	for y := 0; y <= 4*size; y++ {
		var x, last int
		if y < size || (y >= 2*size && y <= 3*size) {
			x, last = 3*size-y, y
		} else {
			x, last = y-size, 4*size-y
		}
		for i := 0; i <= last; i++ {
			p := Position{X: x + 2*i, Y: y}
			b.nodes[p] = newNode(p, size)
			b.order = append(b.order, p)
		}
	}
	return b
}

// Node returns the node at p and panics if p is not on the board.
func (b *Board) Node(p Position) *Node {
	n, ok := b.nodes[p]
	if !ok {
		panic(fmt.Sprintf("position %v is not found on the board", p))
	}
	return n
}

func (b *Board) Contains(p Position) bool {
	_, ok := b.nodes[p]
	return ok
}

// Len is the number of points on the board.
func (b *Board) Len() int {
	return len(b.order)
}

// Positions lists every point row by row, left to right.
func (b *Board) Positions() []Position {
	out := make([]Position, len(b.order))
	copy(out, b.order)
	return out
}

// Tip returns the extremal point of triangle t.
func (b *Board) Tip(t Triangle) Position {
	if !t.IsValid() {
		panic(fmt.Sprintf("triangle %d is out of range", t))
	}
	return b.tips[t]
}

// Triangle returns every point of triangle t.
func (b *Board) Triangle(t Triangle) PositionSet {
	set := NewPositionSet()
	for _, p := range b.order {
		if b.nodes[p].triangle == t {
			set.Add(p)
		}
	}
	return set
}

// Neighbors returns the on-board neighbors of p in direction order.
func (b *Board) Neighbors(p Position) []Position {
	n := b.Node(p)
	out := make([]Position, 0, NumDirections)
	for _, s := range n.slots {
		if s.OK {
			out = append(out, s.Position)
		}
	}
	return out
}

// Opposite returns the point across leg from center: the neighbor of center
// in the direction opposite to the one pointing at leg. It panics if leg is
// not adjacent to center.
func (b *Board) Opposite(center, leg Position) (Position, bool) {
	n := b.Node(center)
	d, ok := n.DirectionTo(leg)
	if !ok {
		panic(fmt.Sprintf("%v is not a neighbor of %v", leg, center))
	}
	return n.Neighbor(d.Opposite())
}
