package game

import (
	"fmt"
	"math"
)

// Position is a point in the skewed board frame. The origin (0, 0) is the
// upper-left corner of the display, x runs along a row and y down the columns.
// It doubles as a displacement vector when obtained from Sub.
type Position struct {
	X int
	Y int
}

func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Validate returns p and true if p lies inside the hexagram of the given size.
// The hexagram is the union of an upward and a downward triangle.
func (p Position) Validate(size int) (Position, bool) {
	up := p.Y >= size && p.Y-p.X <= size && p.X+p.Y <= 7*size
	down := p.Y <= 3*size && p.X+p.Y >= 3*size && p.X-p.Y <= 3*size
	if up || down {
		return p, true
	}
	return Position{}, false
}

// InTriangle classifies an on-board point. The first matching half-plane wins;
// points of the central field return NoTriangle.
//
//	  0
//	1   5
//	2   4
//	  3
func (p Position) InTriangle(size int) Triangle {
	switch {
	case p.Y < size:
		return 0
	case p.X+p.Y < 3*size:
		return 1
	case p.Y-p.X > size:
		return 2
	case p.Y > 3*size:
		return 3
	case p.X+p.Y > 7*size:
		return 4
	case p.X-p.Y > 3*size:
		return 5
	}
	return NoTriangle
}

// Norm is the Euclidean length corrected for the horizontal skew of the frame
// (two x units per hex column). Only used by heuristics.
func (p Position) Norm() float64 {
	x, y := float64(p.X), float64(p.Y)
	return math.Sqrt(x*x/3 + y*y)
}

// Triangle indexes one of the six corner regions of the hexagram.
type Triangle int

const (
	NumTriangles          = 6
	NoTriangle   Triangle = -1
)

// Opposite returns the diametrically opposite triangle.
func (t Triangle) Opposite() Triangle {
	return (t + 3) % NumTriangles
}

func (t Triangle) IsValid() bool {
	return t >= 0 && t < NumTriangles
}

// Direction is a neighbor slot, clockwise from upper-left.
type Direction int

const (
	UpLeft Direction = iota
	Left
	DownLeft
	DownRight
	Right
	UpRight
	NumDirections
)

var offsets = [NumDirections]Position{
	UpLeft:    {X: -1, Y: -1},
	Left:      {X: -2, Y: 0},
	DownLeft:  {X: -1, Y: 1},
	DownRight: {X: 1, Y: 1},
	Right:     {X: 2, Y: 0},
	UpRight:   {X: 1, Y: -1},
}

// Offset is the displacement of one step in direction d.
func (d Direction) Offset() Position {
	return offsets[d]
}

// Opposite returns the direction pointing back, (d+3) mod 6.
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}
