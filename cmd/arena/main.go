// Entry point
//
// Copyright (c) 2024  Philip Kaludercic
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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"go-mancala/bot"
	"go-mancala/conf"
	"go-mancala/sched"
)

func main() {
	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	c := conf.Load()

	var makers [2]bot.Maker
	for i, spec := range []string{c.Arena.Agent, c.Arena.Against} {
		mk, err := bot.MakeMaker(spec)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot prepare agent")
		}
		makers[i] = mk
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().
		Str("agent", c.Arena.Agent).
		Str("against", c.Arena.Against).
		Uint("games", c.Arena.Games).
		Msg("starting arena")
	est, err := sched.Performance(ctx, c.Rules, makers, c.Arena.Games, c.Arena.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("arena aborted")
	}

	fmt.Printf("%s vs. %s: %s\n", c.Arena.Agent, c.Arena.Against, est)
}
