// State Encoding
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

// Encoder projects game states onto fixed-size feature vectors.
//
// The compact vector consists of the side to move, optionally the
// legal-move mask, the pits and the score of the side to move, and
// the pits and the score of the opponent.  The expanded vector
// replaces the side by a two-element indicator, keeps the mask as
// single bits and turns every other field into a one-hot indicator of
// length Max+1.
type Encoder struct {
	size    uint
	max     uint
	legal   bool
	scoring Scoring
}

func (e *Encoder) mask() uint {
	if e.legal {
		return e.size
	}
	return 0
}

// CompactLen returns the length of projected vectors
func (e *Encoder) CompactLen() int {
	return int(1 + e.mask() + 2*(e.size+1))
}

// Len returns the length of expanded vectors
func (e *Encoder) Len() int {
	return int(2 + e.mask() + 2*(e.size+1)*(e.max+1))
}

func (e *Encoder) clamp(v int) uint {
	switch {
	case v < 0:
		return 0
	case uint(v) > e.max:
		return e.max
	}
	return uint(v)
}

// Project computes the compact feature vector from the perspective of
// SIDE.  LEGAL is ignored unless the encoder includes the legal moves.
func (e *Encoder) Project(side Side, diff int, b *Board, legal []bool) []uint {
	var w [2]int
	switch e.scoring {
	case Complement:
		w = [2]int{diff, 1 - diff}
	default:
		w = [2]int{diff, -diff}
	}

	v := make([]uint, 0, e.CompactLen())
	v = append(v, uint(side))
	if e.legal {
		for i := uint(0); i < e.size; i++ {
			if i < uint(len(legal)) && legal[i] {
				v = append(v, 1)
			} else {
				v = append(v, 0)
			}
		}
	}
	for _, s := range [2]Side{side, side.Opponent()} {
		for _, p := range b.pits[s] {
			v = append(v, e.clamp(int(p)))
		}
		v = append(v, e.clamp(w[s]))
	}
	return v
}

// Expand converts a compact vector into its binary representation.
// Values are clamped again, so that any vector of the right length
// may be expanded.
func (e *Encoder) Expand(v []uint) ([]float32, error) {
	if len(v) != e.CompactLen() {
		return nil, &ShapeMismatchError{
			What: "feature vector",
			Want: e.CompactLen(),
			Got:  len(v),
		}
	}

	out := make([]float32, e.Len())
	off := 0
	if v[0] == 0 {
		out[0] = 1
	} else {
		out[1] = 1
	}
	off += 2

	rest := v[1:]
	if e.legal {
		for i := uint(0); i < e.size; i++ {
			if rest[i] > 0 {
				out[off] = 1
			}
			off++
		}
		rest = rest[e.size:]
	}
	for _, n := range rest {
		if n > e.max {
			n = e.max
		}
		out[off+int(n)] = 1
		off += int(e.max + 1)
	}
	return out, nil
}

// Collapse recovers the compact vector from an expanded one, by
// picking the largest entry of every indicator
func (e *Encoder) Collapse(x []float32) ([]uint, error) {
	if len(x) != e.Len() {
		return nil, &ShapeMismatchError{
			What: "binary vector",
			Want: e.Len(),
			Got:  len(x),
		}
	}

	v := make([]uint, 0, e.CompactLen())
	v = append(v, argmax(x[0:2]))
	off := 2
	if e.legal {
		for i := uint(0); i < e.size; i++ {
			if x[off] > 0.5 {
				v = append(v, 1)
			} else {
				v = append(v, 0)
			}
			off++
		}
	}
	seg := int(e.max + 1)
	for off < len(x) {
		v = append(v, argmax(x[off:off+seg]))
		off += seg
	}
	return v, nil
}

func argmax(x []float32) uint {
	var best uint
	for i := range x {
		if x[i] > x[best] {
			best = uint(i)
		}
	}
	return best
}
