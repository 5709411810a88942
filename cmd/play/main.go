// Entry point
//
// Copyright (c) 2021, 2022, 2023  Philip Kaludercic
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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"go-mancala"
	"go-mancala/bot"
	"go-mancala/conf"
	"go-mancala/game"
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

	// Load the configuration from disk (if available)
	c := conf.Load()

	g, err := mancala.MakeGame(c.Rules)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot prepare game")
	}

	var agents [2]mancala.Agent
	for i, spec := range []string{c.Match.White, c.Match.Black} {
		agents[i], err = bot.Make(spec, c.Rules)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot prepare agent")
		}
	}
	log.Info().
		Str("white", c.Match.White).
		Str("black", c.Match.Black).
		Msg("starting match")

	var out io.Writer
	if c.Match.Render {
		out = os.Stdout
	}
	res, err := game.Play(g, agents, game.Options{
		Render: out,
		Record: c.Match.Record,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	log.Info().
		Str("winner", res.Winner.String()).
		Int("margin", res.Margin()).
		Uint("plies", g.Ply()).
		Msg("match finished")

	for _, e := range g.History() {
		fmt.Printf("%3d %s %d %s\n", e.Ply, e.Player.Short(), e.Move, e.Repr)
	}
}
