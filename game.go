// Game Model
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

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Game is the state of a single match
type Game struct {
	rules   Rules
	enc     *Encoder
	board   *Board
	current Side
	ply     uint
	round   uint
	history []Entry
}

// MakeGame prepares a new game using RULES
func MakeGame(rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid rules")
	}
	g := &Game{
		rules: rules,
		enc:   rules.Encoder(),
	}
	g.Init()
	return g, nil
}

// ParseGame prepares a game from a board in KGP notation, with SIDE to
// move.  The board size overrides the size given by RULES.
func ParseGame(rules Rules, spec string, side Side) (*Game, error) {
	b, err := Parse(spec)
	if err != nil {
		return nil, err
	}
	rules.Size = b.Size()
	g, err := MakeGame(rules)
	if err != nil {
		return nil, err
	}
	g.board = b
	g.current = side
	return g, nil
}

// Init resets the game to the starting position
func (g *Game) Init() {
	g.board = MakeBoard(g.rules.Size, g.rules.Init)
	g.current = White
	g.ply = 0
	g.round = 0
	g.history = g.history[:0]
}

func (g *Game) Rules() Rules      { return g.rules }
func (g *Game) Encoder() *Encoder { return g.enc }
func (g *Game) Current() Side     { return g.current }
func (g *Game) Ply() uint         { return g.ply }
func (g *Game) Round() uint       { return g.round }

// Board returns a copy of the current board
func (g *Game) Board() *Board { return g.board.Copy() }

// Stones counts the stones on the board and in both barns
func (g *Game) Stones() uint { return g.board.Stones() }

// Points returns the score differential from white's point of view.
// White has to exceed black by more than the handicap to win.
func (g *Game) Points() int {
	return int(g.board.barns[White]) - int(g.board.barns[Black]) - g.rules.Handicap
}

// Legal returns the legal-move mask of the side to move
func (g *Game) Legal() []bool {
	return g.board.Mask(g.current)
}

// Moves counts the legal moves, and returns the right-most one
func (g *Game) Moves() (count, last uint) {
	return g.board.Moves(g.current)
}

// Over returns true if the side to move has no stones left
func (g *Game) Over() bool {
	return g.board.Empty(g.current)
}

// Result returns the outcome, if the game is over
func (g *Game) Result() (Result, bool) {
	if !g.Over() {
		return Result{}, false
	}
	r := Result{Winner: Black, Points: g.Points()}
	if r.Points > 0 {
		r.Winner = White
	}
	return r, true
}

// Features projects the current state onto a compact vector
func (g *Game) Features() []uint {
	return g.enc.Project(g.current, g.Points(), g.board, g.Legal())
}

// Encode projects the current state onto a binary vector
func (g *Game) Encode() []float32 {
	x, err := g.enc.Expand(g.Features())
	if err != nil {
		// Features always have the right shape
		panic(err)
	}
	return x
}

func (g *Game) normalise(pit int) uint {
	n := int(g.rules.Size)
	return uint((pit%n + n) % n)
}

// Move sows PIT for the side to move
func (g *Game) Move(pit int) error {
	return g.move(pit, nil)
}

// RecordMove sows PIT for the side to move, and appends the move made
// by WHO to the history
func (g *Game) RecordMove(pit int, who Side) error {
	return g.move(pit, &who)
}

func (g *Game) move(pit int, who *Side) error {
	p := g.normalise(pit)
	if !g.board.Legal(g.current, p) {
		return &IllegalMoveError{
			Side:  g.current,
			Pit:   p,
			Board: g.board.String(),
		}
	}

	if who != nil {
		g.history = append(g.history, Entry{
			Ply:    g.ply,
			Player: *who,
			Move:   p,
			Legal:  g.Legal(),
			Repr:   g.String(),
			State:  g.Encode(),
		})
	}

	self := g.current
	last := g.board.Sow(self, p)
	g.ply++

	// Only a stone in the own barn grants another move
	if last.OnBoard || last.Side != self {
		g.current = self.Opponent()
		g.round++
	}

	Debug.Debug().
		Uint("ply", g.ply).
		Str("side", self.String()).
		Uint("pit", p).
		Bool("repeat", g.current == self).
		Str("board", g.board.String()).
		Msg("move")
	return nil
}

// History returns all recorded moves
func (g *Game) History() []Entry {
	h := make([]Entry, len(g.history))
	copy(h, g.history)
	return h
}

// HistoryOf returns the moves recorded for PLAYER
func (g *Game) HistoryOf(player Side) []Entry {
	var h []Entry
	for _, e := range g.history {
		if e.Player == player {
			h = append(h, e)
		}
	}
	return h
}

// Copy creates an independent copy of the game, without history
func (g *Game) Copy() *Game {
	return &Game{
		rules:   g.rules,
		enc:     g.enc,
		board:   g.board.Copy(),
		current: g.current,
		ply:     g.ply,
		round:   g.round,
	}
}

func row(buf *bytes.Buffer, pits []uint) {
	for i, p := range pits {
		if i > 0 {
			buf.WriteByte(' ')
		}
		if p == 0 {
			fmt.Fprintf(buf, "%2s", ".")
		} else {
			fmt.Fprintf(buf, "%2d", p)
		}
	}
}

// String renders the game on a single line
func (g *Game) String() string {
	var buf bytes.Buffer
	over := g.Over()

	fmt.Fprintf(&buf, "%3d)    ", g.round/2+1)
	for _, s := range [2]Side{White, Black} {
		if s == g.current && !over {
			buf.WriteString(">>")
		} else {
			buf.WriteString("  ")
		}
		buf.WriteByte(' ')
		row(&buf, g.board.pits[s])

		barn := "(.)"
		if n := g.board.barns[s]; n > 0 {
			barn = fmt.Sprintf("(%d)", n)
		}
		fmt.Fprintf(&buf, "  %4s   ", barn)
	}
	buf.WriteByte(' ')
	if res, ok := g.Result(); ok {
		buf.WriteString(res.String())
	}

	return buf.String()
}
