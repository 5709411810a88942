// Common Interfaces and constants
//
// Copyright (c) 2021, 2022  Philip Kaludercic
//
// This file is part of go-mancala.
//
// go-mancala is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mancala is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mancala. If not, see
// <http://www.gnu.org/licenses/>

package mancala

import "fmt"

// Side designates one of the two players
type Side uint8

const (
	// White moves first, Black is credited with the handicap
	White, Black Side = 0, 1
)

func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	panic(fmt.Sprintf("Illegal side: %d", s))
}

// Opponent returns the other side
func (s Side) Opponent() Side { return 1 - s }

// Short returns the single letter used in board renderings
func (s Side) Short() string {
	if s == White {
		return "w"
	}
	return "b"
}

// Agent decides on a move for the side that is currently to move.
//
// The returned index is reduced modulo the board size by the engine,
// so agents do not have to normalise it.
type Agent interface {
	Decide(*Game) (int, error)
}

// AgentFunc adapts an ordinary function to the Agent interface
type AgentFunc func(*Game) (int, error)

func (f AgentFunc) Decide(g *Game) (int, error) { return f(g) }

// Result of a finished game
type Result struct {
	Winner Side
	// Score differential from white's point of view, handicap
	// already subtracted
	Points int
}

// Margin is the absolute value of the score differential
func (r Result) Margin() int {
	if r.Points < 0 {
		return -r.Points
	}
	return r.Points
}

func (r Result) String() string {
	return fmt.Sprintf("%s +%d", r.Winner.Short(), r.Margin())
}

// Entry records a single move, together with the position it was
// made in
type Entry struct {
	Ply    uint
	Player Side
	Move   uint
	Legal  []bool
	Repr   string
	State  []float32
}
