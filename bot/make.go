// Agent Construction
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

package bot

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"go-mancala"
)

// Maker creates a fresh agent for a game played under the given rules
type Maker func(mancala.Rules) (mancala.Agent, error)

type params map[string]string

// parse splits "name:key=value,key=value" into its components
func parse(spec string) (string, params, error) {
	name, rest, _ := strings.Cut(spec, ":")
	name = strings.TrimSpace(name)
	p := make(params)
	if rest == "" {
		return name, p, nil
	}
	for _, kv := range strings.Split(rest, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return "", nil, errors.Errorf("invalid parameter %q", kv)
		}
		p[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return name, p, nil
}

func (p params) seed() (uint64, error) {
	v, ok := p["seed"]
	if !ok {
		return uint64(time.Now().UnixNano()), nil
	}
	delete(p, "seed")
	s, err := strconv.ParseUint(v, 10, 64)
	return s, errors.Wrapf(err, "failed to parse seed=%q", v)
}

func (p params) float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	delete(p, key)
	f, err := strconv.ParseFloat(v, 64)
	return f, errors.Wrapf(err, "failed to parse %s=%q", key, v)
}

func (p params) done() error {
	for k := range p {
		return errors.Errorf("unknown parameter %q", k)
	}
	return nil
}

// Make creates an agent from a specification such as "random",
// "random:seed=7", "simple" or "linear:temp=0.5,seed=3"
func Make(spec string, rules mancala.Rules) (mancala.Agent, error) {
	name, p, err := parse(spec)
	if err != nil {
		return nil, errors.WithMessagef(err, "agent %q", spec)
	}

	var a mancala.Agent
	switch name {
	case "random":
		var seed uint64
		seed, err = p.seed()
		a = MakeRandom(seed)
	case "simple":
		a = MakeSimple()
	case "linear":
		var (
			seed uint64
			temp float64
		)
		if seed, err = p.seed(); err != nil {
			break
		}
		if temp, err = p.float("temp", 1); err != nil {
			break
		}
		if temp <= 0 {
			err = errors.Errorf("temperature must be positive, got %g", temp)
			break
		}
		lin := MakeLinear(rules, temp)
		a = MakePolicy(spec, lin.Eval, seed)
	default:
		return nil, errors.Errorf("unknown agent %q", name)
	}
	if err == nil {
		err = p.done()
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "agent %q", spec)
	}
	return a, nil
}

// MakeMaker returns a Maker for SPEC, after checking that SPEC is
// valid
func MakeMaker(spec string) (Maker, error) {
	if _, err := Make(spec, mancala.DefaultRules); err != nil {
		return nil, err
	}
	return func(rules mancala.Rules) (mancala.Agent, error) {
		return Make(spec, rules)
	}, nil
}
