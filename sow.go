// Stone Distribution
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

// Landing designates where a single stone is placed.  If OnBoard is
// false, the stone went into the barn of Side and Pit is zero.
type Landing struct {
	OnBoard bool
	Side    Side
	Pit     uint
}

// Sower generates the landings of the stones picked up from a pit
type Sower struct {
	origin Landing
	stones uint
	size   uint

	// iteration state
	pos  Landing
	done uint
}

// MakeSower prepares the distribution of STONES taken from PIT on SIDE
func MakeSower(side Side, pit, stones, size uint) *Sower {
	if pit >= size {
		panic("Illegal access")
	}
	s := &Sower{
		origin: Landing{OnBoard: true, Side: side, Pit: pit},
		stones: stones,
		size:   size,
	}
	s.Reset()
	return s
}

// Reset restarts the iteration from the origin
func (s *Sower) Reset() {
	s.pos = s.origin
	s.done = 0
}

func (s *Sower) step() {
	if !s.pos.OnBoard {
		s.pos.OnBoard = true
		s.pos.Side = s.pos.Side.Opponent()
		return
	}
	s.pos.Pit++
	if s.pos.Pit >= s.size {
		s.pos.Pit = 0
		s.pos.OnBoard = false
	}
}

// Next returns the next landing, or false if all stones have been
// placed
func (s *Sower) Next() (Landing, bool) {
	if s.done >= s.stones {
		return Landing{}, false
	}
	s.step()
	// No stone is placed back into the pit it was taken from
	if s.pos == s.origin {
		s.step()
	}
	s.done++
	return s.pos, true
}

// Landings collects all remaining landings
func (s *Sower) Landings() []Landing {
	var ls []Landing
	for l, ok := s.Next(); ok; l, ok = s.Next() {
		ls = append(ls, l)
	}
	return ls
}
