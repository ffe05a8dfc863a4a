package game

import "golang.org/x/exp/slices"

// PositionSet is an unordered set of board points.
type PositionSet map[Position]struct{}

func NewPositionSet(positions ...Position) PositionSet {
	s := make(PositionSet, len(positions))
	for _, p := range positions {
		s.Add(p)
	}
	return s
}

func (s PositionSet) Add(p Position) {
	s[p] = struct{}{}
}

func (s PositionSet) Remove(p Position) {
	delete(s, p)
}

func (s PositionSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Equal reports whether both sets hold exactly the same points.
func (s PositionSet) Equal(other PositionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}

func (s PositionSet) Clone() PositionSet {
	c := make(PositionSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Sorted returns the points in row-major order (by y, then x).
func (s PositionSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sortPositions(out)
	return out
}

func sortPositions(positions []Position) {
	slices.SortFunc(positions, comparePositions)
}

func comparePositions(a, b Position) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
