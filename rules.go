// Game Rules
//
// Copyright (c) 2022  Philip Kaludercic
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
	"github.com/pkg/errors"
)

// Scoring selects how the opponent's score is encoded
type Scoring string

const (
	// The opponent sees the negated score differential
	Negate Scoring = "negate"
	// The opponent sees one minus the score differential
	Complement Scoring = "complement"
)

// Rules are fixed for the duration of a game
type Rules struct {
	Size     uint    `toml:"size"`     // pits per side
	Init     uint    `toml:"init"`     // starting stones per pit
	Handicap int     `toml:"handicap"` // points credited to black
	Max      uint    `toml:"max"`      // numbers above this are not distinguished
	Scoring  Scoring `toml:"scoring"`
	Legal    bool    `toml:"legal"` // encode the legal moves
}

// DefaultRules are used unless configured otherwise
var DefaultRules = Rules{
	Size:     6,
	Init:     4,
	Handicap: 0,
	Max:      18,
	Scoring:  Negate,
}

// HandicapRules compensate black for moving second
var HandicapRules = Rules{
	Size:     6,
	Init:     4,
	Handicap: 6,
	Max:      18,
	Scoring:  Negate,
	Legal:    true,
}

// Validate checks if a game can be played with these rules
func (r Rules) Validate() error {
	switch {
	case r.Size == 0:
		return errors.New("board size must be positive")
	case r.Init == 0:
		return errors.New("number of starting stones must be positive")
	case r.Max == 0:
		return errors.New("encoding ceiling must be positive")
	}
	switch r.Scoring {
	case Negate, Complement:
	default:
		return errors.Errorf("unknown scoring convention %q", r.Scoring)
	}
	return nil
}

// Stones returns the number of stones in play
func (r Rules) Stones() uint {
	return 2 * r.Size * r.Init
}

// Encoder returns the state encoder for these rules
func (r Rules) Encoder() *Encoder {
	return &Encoder{
		size:    r.Size,
		max:     r.Max,
		legal:   r.Legal,
		scoring: r.Scoring,
	}
}
