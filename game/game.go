// Match Driver
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

package game

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"go-mancala"
)

// Options control how a match is played
type Options struct {
	// Print one line per move, if non-nil
	Render io.Writer
	// Record the moves in the game history
	Record bool
	// Start from the initial position
	Reset bool
}

// Move asks the agent of the side to move for a move, and applies it
func Move(g *mancala.Game, a mancala.Agent, record bool) error {
	side := g.Current()
	m, err := a.Decide(g)
	if err != nil {
		return errors.Wrapf(err, "ply %d: %s failed to decide", g.Ply(), side)
	}
	if record {
		err = g.RecordMove(m, side)
	} else {
		err = g.Move(m)
	}
	return errors.Wrapf(err, "ply %d", g.Ply())
}

// Play runs a match between AGENTS until the game is over.  The first
// agent plays white.
func Play(g *mancala.Game, agents [2]mancala.Agent, opt Options) (mancala.Result, error) {
	dbg := mancala.Debug

	if opt.Reset {
		g.Init()
	}
	if opt.Render != nil {
		fmt.Fprintln(opt.Render, g)
	}

	for !g.Over() {
		count, _ := g.Moves()
		if count == 0 {
			// If this happens, then Game.Over or
			// Board.Moves must be broken.
			panic("No moves even though game is not over")
		}

		side := g.Current()
		dbg.Debug().
			Uint("ply", g.Ply()).
			Str("side", side.String()).
			Uint("moves", count).
			Msg("requesting move")

		if err := Move(g, agents[side], opt.Record); err != nil {
			dbg.Debug().Err(err).Msg("match aborted")
			return mancala.Result{}, err
		}
		if opt.Render != nil {
			fmt.Fprintln(opt.Render, g)
		}
	}

	res, _ := g.Result()
	dbg.Debug().
		Str("winner", res.Winner.String()).
		Int("points", res.Points).
		Uint("plies", g.Ply()).
		Msg("match finished")
	return res, nil
}
