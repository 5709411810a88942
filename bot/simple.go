// Simple Agent
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

package bot

import (
	"github.com/pkg/errors"

	"go-mancala"
)

type simple struct{}

// Decide prefers moves whose last stone reaches the barn, and
// otherwise the right-most legal pit.  The agent is deterministic.
func (simple) Decide(g *mancala.Game) (int, error) {
	var (
		rules = g.Rules()
		size  = rules.Size
		v     = g.Features()
		legal = g.Legal()
		off   = uint(1)
	)
	if rules.Legal {
		off += size
	}

	best, top := -1, uint(0)
	for i := uint(0); i < size; i++ {
		if !legal[i] {
			continue
		}
		score := i + 1
		if v[off+i] == size-i {
			score += 4 * size
		}
		if score > top {
			best, top = int(i), score
		}
	}
	if best < 0 {
		return 0, errors.New("unexpected final state")
	}
	return best, nil
}

func (simple) String() string { return "simple" }

// MakeSimple returns a hand-crafted agent that plays decently
func MakeSimple() mancala.Agent { return simple{} }
