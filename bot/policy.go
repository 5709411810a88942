// Policy Agents
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
	"math"

	"golang.org/x/exp/rand"

	"go-mancala"
)

// PolicyFunc maps an encoded state onto one weight per pit
type PolicyFunc func(features []float32) ([]float64, error)

// Policy samples moves from the weights of a PolicyFunc, after
// illegal moves have been masked out
type Policy struct {
	Name string
	fn   PolicyFunc
	rng  *rand.Rand
}

// MakePolicy wraps FN into an agent
func MakePolicy(name string, fn PolicyFunc, seed uint64) *Policy {
	return &Policy{
		Name: name,
		fn:   fn,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Weights returns the masked output of the policy function
func (p *Policy) Weights(g *mancala.Game) ([]float64, error) {
	legal := g.Legal()
	out, err := p.fn(g.Encode())
	if err != nil {
		return nil, err
	}
	if len(out) != len(legal) {
		return nil, &mancala.ShapeMismatchError{
			What: "policy output",
			Want: len(legal),
			Got:  len(out),
		}
	}
	for i := range out {
		if !legal[i] {
			out[i] = 0
		}
	}
	return out, nil
}

func (p *Policy) Decide(g *mancala.Game) (int, error) {
	w, err := p.Weights(g)
	if err != nil {
		return 0, err
	}
	return Choose(w, p.rng)
}

func (p *Policy) String() string { return p.Name }

// Choose samples an index with a probability proportional to its
// weight.  Negative weights count as zero.
func Choose(weights []float64, rng *rand.Rand) (int, error) {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if !(total > 0) || math.IsInf(total, 0) {
		ws := make([]float64, len(weights))
		copy(ws, weights)
		return 0, &mancala.DegenerateDistributionError{Weights: ws}
	}

	var (
		r    = rng.Float64() * total
		last = -1
	)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i, nil
		}
		r -= w
		last = i
	}
	// rounding errors
	return last, nil
}

// Linear scores every pit by a weighted sum of the encoded state,
// and turns the scores into a distribution by a softmax
type Linear struct {
	Bias    []float64
	Weights [][]float64
	Temp    float64
}

// MakeLinear returns hand-tuned weights for RULES: moves that end in
// the own barn are strongly preferred, and pits further right are
// slightly preferred.
func MakeLinear(rules mancala.Rules, temp float64) *Linear {
	var (
		size = int(rules.Size)
		ceil = int(rules.Max)
		n    = rules.Encoder().Len()
		off  = 2
	)
	if rules.Legal {
		off += size
	}
	if temp <= 0 {
		temp = 1
	}

	l := &Linear{
		Bias:    make([]float64, size),
		Weights: make([][]float64, size),
		Temp:    temp,
	}
	for i := 0; i < size; i++ {
		l.Bias[i] = 0.25 * float64(i)
		l.Weights[i] = make([]float64, n)
		if exact := size - i; exact <= ceil {
			l.Weights[i][off+i*(ceil+1)+exact] = 3
		}
	}
	return l
}

// Eval is a PolicyFunc
func (l *Linear) Eval(x []float32) ([]float64, error) {
	out := make([]float64, len(l.Bias))
	hi := math.Inf(-1)
	for i := range out {
		if len(l.Weights[i]) != len(x) {
			return nil, &mancala.ShapeMismatchError{
				What: fmt.Sprintf("weights of pit %d", i),
				Want: len(x),
				Got:  len(l.Weights[i]),
			}
		}
		s := l.Bias[i]
		for j, w := range l.Weights[i] {
			s += w * float64(x[j])
		}
		out[i] = s / l.Temp
		hi = math.Max(hi, out[i])
	}
	for i := range out {
		out[i] = math.Exp(out[i] - hi)
	}
	return out, nil
}
