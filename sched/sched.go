// Win-rate Scheduler
//
// Copyright (c) 2022, 2023  Philip Kaludercic
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

package sched

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"go-mancala"
	"go-mancala/bot"
	"go-mancala/game"
)

// Estimate of the probability that an agent wins a game
type Estimate struct {
	Games uint
	Wins  uint
	Rate  float64
	Std   float64
}

func (e Estimate) String() string {
	return fmt.Sprintf("%.3f ± %.3f (%d/%d)", e.Rate, e.Std, e.Wins, e.Games)
}

// WinRate estimates the win probability from WINS out of GAMES, using
// Laplace's rule of succession
func WinRate(wins, games uint) (rate, std float64) {
	n := float64(games) + 2
	rate = (float64(wins) + 1) / n
	std = math.Sqrt(rate * (1 - rate) / n)
	return rate, std
}

// Performance plays GAMES matches between the agents created by
// MAKERS, and estimates how often the first agent wins.  The first
// agent plays white in even and black in odd games.  Every worker
// plays on its own game with its own agents.
func Performance(ctx context.Context, rules mancala.Rules, makers [2]bot.Maker, games, workers uint) (Estimate, error) {
	if workers == 0 {
		workers = uint(runtime.NumCPU())
	}
	if workers > games {
		workers = games
	}

	var (
		lock sync.Mutex
		wins uint
		done uint
		jobs = make(chan uint)
	)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(jobs)
		for j := uint(0); j < games; j++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- j:
			}
		}
		return nil
	})

	for i := uint(0); i < workers; i++ {
		grp.Go(func() error {
			g, err := mancala.MakeGame(rules)
			if err != nil {
				return err
			}
			var agents [2]mancala.Agent
			for k, mk := range makers {
				agents[k], err = mk(rules)
				if err != nil {
					return errors.WithMessagef(err, "agent %d", k)
				}
			}

			for j := range jobs {
				// Side of the first agent
				side := mancala.Side(j % 2)
				var seats [2]mancala.Agent
				seats[side] = agents[0]
				seats[side.Opponent()] = agents[1]

				res, err := game.Play(g, seats, game.Options{Reset: true})
				if err != nil {
					return errors.WithMessagef(err, "game %d", j)
				}

				lock.Lock()
				if res.Winner == side {
					wins++
				}
				done++
				mancala.Debug.Debug().
					Uint("game", j).
					Uint("done", done).
					Uint("games", games).
					Str("result", res.String()).
					Msg("game finished")
				lock.Unlock()

				if ctx.Err() != nil {
					return ctx.Err()
				}
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return Estimate{}, err
	}

	rate, std := WinRate(wins, games)
	return Estimate{
		Games: games,
		Wins:  wins,
		Rate:  rate,
		Std:   std,
	}, nil
}
