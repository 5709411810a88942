// Random Agent
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
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"go-mancala"
)

type random struct {
	rng  *rand.Rand
	seed uint64
}

func (r *random) Decide(g *mancala.Game) (int, error) {
	if g.Over() {
		return 0, errors.New("unexpected final state")
	}
	return int(g.Board().Random(g.Current(), r.rng)), nil
}

func (r *random) String() string { return fmt.Sprintf("random(%d)", r.seed) }

// MakeRandom returns an agent that only makes random moves
func MakeRandom(seed uint64) mancala.Agent {
	return &random{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}
