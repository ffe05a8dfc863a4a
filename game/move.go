package game

import (
	"fmt"
	"strings"
)

type MoveKind int

const (
	Crawl MoveKind = iota // one step to an adjacent empty point
	Jump                  // one or more chained hops over occupied points
)

func (k MoveKind) String() string {
	if k == Jump {
		return "jump"
	}
	return "crawl"
}

// Move relocates one piece. Path runs from From to To through every landing
// point of a jump chain; it is one witness chain, not the only one.
type Move struct {
	From Position
	To   Position
	Kind MoveKind
	Path []Position
}

func (m Move) String() string {
	hops := make([]string, len(m.Path))
	for i, p := range m.Path {
		hops[i] = p.String()
	}
	return fmt.Sprintf("%s %s", m.Kind, strings.Join(hops, " -> "))
}
