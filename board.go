// Mancala Board Implementation
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
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var repr = regexp.MustCompile(`^\s*<\s*(\d+(\s*,\s*\d+)+)\s*>\s*$`)

// Board represents the pits and barns of both sides
type Board struct {
	// The pits of each side, sown from left to right
	pits [2][]uint
	// The barn of each side
	barns [2]uint
}

// MakeBoard creates a new board with SIZE pits, each with INIT stones
func MakeBoard(size, init uint) *Board {
	var b Board
	for s := range b.pits {
		b.pits[s] = make([]uint, int(size))
		for i := range b.pits[s] {
			b.pits[s][i] = init
		}
	}
	return &b
}

// Parse reads a board in KGP notation, <size,barn0,barn1,pits...>
func Parse(spec string) (*Board, error) {
	match := repr.FindStringSubmatch(spec)
	if match == nil {
		return nil, errors.New("invalid specification")
	}

	var data []uint
	for _, part := range strings.Split(match[1], ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", part)
		}
		data = append(data, uint(n))
	}

	size := data[0]
	if size == 0 || uint(len(data)) != 1+2+size*2 {
		return nil, errors.New("invalid size")
	}

	b := MakeBoard(size, 0)
	b.barns[White] = data[1]
	b.barns[Black] = data[2]
	for i := uint(0); i < size; i++ {
		b.pits[White][i] = data[3+i]
		b.pits[Black][i] = data[3+size+i]
	}
	return b, nil
}

// Size returns the number of pits per side
func (b *Board) Size() uint {
	return uint(len(b.pits[White]))
}

func (b *Board) Pit(side Side, pit uint) uint {
	if pit >= b.Size() {
		panic("Illegal access")
	}
	return b.pits[side][pit]
}

func (b *Board) Barn(side Side) uint {
	return b.barns[side]
}

// Row returns a copy of the pits of SIDE
func (b *Board) Row(side Side) []uint {
	row := make([]uint, len(b.pits[side]))
	copy(row, b.pits[side])
	return row
}

// Stones counts all stones on the board and in the barns
func (b *Board) Stones() (n uint) {
	for s := range b.pits {
		for _, p := range b.pits[s] {
			n += p
		}
		n += b.barns[s]
	}
	return n
}

// String converts a board into KGP notation
func (b *Board) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d,%d", b.Size(), b.barns[White], b.barns[Black])
	for _, pit := range b.pits[White] {
		fmt.Fprintf(&buf, ",%d", pit)
	}
	for _, pit := range b.pits[Black] {
		fmt.Fprintf(&buf, ",%d", pit)
	}
	fmt.Fprint(&buf, ">")

	return buf.String()
}

// Legal returns true if SIDE may play move PIT
func (b *Board) Legal(side Side, pit uint) bool {
	if pit >= b.Size() {
		panic("Illegal access")
	}
	return b.pits[side][pit] > 0
}

// Mask returns which pits SIDE may sow
func (b *Board) Mask(side Side) []bool {
	mask := make([]bool, b.Size())
	for i := range mask {
		mask[i] = b.pits[side][i] > 0
	}
	return mask
}

// Moves counts the legal moves for SIDE, and returns the right-most
// one
func (b *Board) Moves(side Side) (count, last uint) {
	for i := uint(0); i < b.Size(); i++ {
		if b.Legal(side, i) {
			last = i
			count++
		}
	}

	return
}

// Random returns a random legal move for SIDE
func (b *Board) Random(side Side, rng *rand.Rand) (move uint) {
	legal := make([]uint, 0, b.Size())

	for i := uint(0); i < b.Size(); i++ {
		if b.Legal(side, i) {
			legal = append(legal, i)
		}
	}

	// if len(legal) == 0, Intn panics.  This is ok, because
	// Random shouldn't be called when the game is already over.
	return legal[rng.Intn(len(legal))]
}

// Sow empties PIT of SELF and distributes the stones.  The last
// landing is returned, or a zero landing when no stone was sown.
func (b *Board) Sow(self Side, pit uint) (last Landing) {
	if !b.Legal(self, pit) {
		panic(fmt.Sprintf("Illegal move %d by %s in %s", pit, self, b))
	}

	stones := b.pits[self][pit]
	b.pits[self][pit] = 0

	s := MakeSower(self, pit, stones, b.Size())
	for l, ok := s.Next(); ok; l, ok = s.Next() {
		if l.OnBoard {
			b.pits[l.Side][l.Pit]++
		} else {
			b.barns[l.Side]++
		}
		last = l
	}
	return last
}

// Empty returns true if SIDE has no stones left in its pits
func (b *Board) Empty(side Side) bool {
	for _, p := range b.pits[side] {
		if p > 0 {
			return false
		}
	}
	return true
}

// Copy creates a deep copy of the board
func (b *Board) Copy() *Board {
	c := &Board{barns: b.barns}
	for s := range b.pits {
		c.pits[s] = make([]uint, len(b.pits[s]))
		if copy(c.pits[s], b.pits[s]) != len(b.pits[s]) {
			panic("Illegal board state")
		}
	}
	return c
}
