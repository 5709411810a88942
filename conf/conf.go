// Configuration
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

package conf

import (
	"flag"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go-mancala"
)

const defconf = "go-mancala.toml"

func init() {
	def := &defaultConfig

	flag.UintVar(&def.Rules.Size, "board-size", def.Rules.Size,
		"Number of pits per side")
	flag.UintVar(&def.Rules.Init, "board-init", def.Rules.Init,
		"Number of stones per pit at the start of a game")
	flag.IntVar(&def.Rules.Handicap, "handicap", def.Rules.Handicap,
		"Points credited to black")

	flag.StringVar(&def.Match.White, "white", def.Match.White,
		"Agent playing white")
	flag.StringVar(&def.Match.Black, "black", def.Match.Black,
		"Agent playing black")
	flag.BoolVar(&def.Match.Record, "record", def.Match.Record,
		"Record and print the game history")

	flag.UintVar(&def.Arena.Games, "games", def.Arena.Games,
		"Number of games to play")
	flag.UintVar(&def.Arena.Workers, "workers", def.Arena.Workers,
		"Number of games to play in parallel (0 for one per CPU)")

	flag.BoolVar(&def.Debug, "debug", def.Debug, "Enable debug output")
	flag.BoolVar(&silent, "silent", silent, "Disable informational output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}

type MatchConf struct {
	White  string `toml:"white"`
	Black  string `toml:"black"`
	Render bool   `toml:"render"`
	Record bool   `toml:"record"`
}

type ArenaConf struct {
	Agent   string `toml:"agent"`
	Against string `toml:"against"`
	Games   uint   `toml:"games"`
	Workers uint   `toml:"workers"`
}

// Conf is the configuration of all commands
type Conf struct {
	Debug bool          `toml:"debug"`
	Rules mancala.Rules `toml:"rules"`
	Match MatchConf     `toml:"match"`
	Arena ArenaConf     `toml:"arena"`
}

// Configuration object used by default
var defaultConfig = Conf{
	Rules: mancala.DefaultRules,
	Match: MatchConf{
		White:  "simple",
		Black:  "random",
		Render: true,
	},
	Arena: ArenaConf{
		Agent:   "simple",
		Against: "random",
		Games:   100,
	},
}

// Flags given on the command line take precedence over the
// configuration file
var overrides = map[string]func(dst, src *Conf){
	"board-size": func(d, s *Conf) { d.Rules.Size = s.Rules.Size },
	"board-init": func(d, s *Conf) { d.Rules.Init = s.Rules.Init },
	"handicap":   func(d, s *Conf) { d.Rules.Handicap = s.Rules.Handicap },
	"white":      func(d, s *Conf) { d.Match.White = s.Match.White },
	"black":      func(d, s *Conf) { d.Match.Black = s.Match.Black },
	"record":     func(d, s *Conf) { d.Match.Record = s.Match.Record },
	"games":      func(d, s *Conf) { d.Arena.Games = s.Arena.Games },
	"workers":    func(d, s *Conf) { d.Arena.Workers = s.Arena.Workers },
	"debug":      func(d, s *Conf) { d.Debug = s.Debug },
}

var (
	silent = false
	dump   = false
	cfile  = defconf
)

// Default returns a copy of the default configuration, including
// command line flags parsed so far
func Default() Conf {
	return defaultConfig
}

// Decode parses a configuration from R, on top of the defaults
func Decode(r io.Reader) (*Conf, error) {
	c := defaultConfig
	_, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(err, "malformed configuration")
	}
	if err := c.Rules.Validate(); err != nil {
		return nil, errors.WithMessage(err, "invalid rules")
	}
	return &c, nil
}

// Open reads the configuration file NAME
func Open(name string) (*Conf, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	c, err := Decode(file)
	return c, errors.WithMessagef(err, "configuration %s", name)
}

// Load the configuration file given on the command line, if any, and
// set up logging.  Flags have to be parsed beforehand.
func Load() *Conf {
	c, err := Open(cfile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || cfile != defconf {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		d := defaultConfig
		c = &d
	}
	flag.Visit(func(f *flag.Flag) {
		if o, ok := overrides[f.Name]; ok {
			o(c, &defaultConfig)
		}
	})
	if err := c.Rules.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid rules")
	}

	c.Setup(os.Stderr)

	// Dump the configuration onto the disk if requested
	if dump {
		err = c.Dump(os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to dump configuration")
		}
		os.Exit(0)
	}

	return c
}

// Setup configures the loggers to write to W
func (c *Conf) Setup(w io.Writer) {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Logger()
	switch {
	case c.Debug:
		mancala.EnableDebug(w)
		mancala.Debug.Debug().Msg("Debug logging has been enabled")
	case silent:
		log.Logger = log.Logger.Level(zerolog.WarnLevel)
	}
}

// Dump serialises the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}
