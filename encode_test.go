package mancala

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestEncoderLen(t *testing.T) {
	for _, test := range []struct {
		rules   Rules
		compact int
		binary  int
	}{
		{DefaultRules, 15, 2 + 6*19*2 + 19*2},
		{HandicapRules, 21, 2 + 6 + 6*19*2 + 19*2},
		{Rules{Size: 3, Init: 3, Max: 4, Scoring: Negate}, 9, 2 + 3*5*2 + 5*2},
	} {
		e := test.rules.Encoder()
		require.Equal(t, test.compact, e.CompactLen())
		require.Equal(t, test.binary, e.Len())

		g, err := MakeGame(test.rules)
		require.NoError(t, err)
		require.Len(t, g.Features(), test.compact)
		require.Len(t, g.Encode(), test.binary)
	}
}

func TestProject(t *testing.T) {
	const spec = "<6,0,2,1,0,0,0,0,30,3,0,0,0,0,0>"
	for i, test := range []struct {
		rules    Rules
		spec     string
		side     Side
		features []uint
	}{
		{
			rules:    DefaultRules,
			spec:     "<6,0,0,4,4,4,4,4,4,4,4,4,4,4,4>",
			side:     White,
			features: []uint{0, 4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0},
		},
		{
			rules:    DefaultRules,
			spec:     spec,
			side:     Black,
			features: []uint{1, 3, 0, 0, 0, 0, 0, 2, 1, 0, 0, 0, 0, 18, 0},
		},
		{
			rules:    Rules{Size: 6, Init: 4, Max: 18, Scoring: Complement},
			spec:     spec,
			side:     Black,
			features: []uint{1, 3, 0, 0, 0, 0, 0, 3, 1, 0, 0, 0, 0, 18, 0},
		},
		{
			rules:    Rules{Size: 6, Init: 4, Max: 18, Scoring: Complement},
			spec:     "<6,3,2,1,0,0,0,0,0,3,0,0,0,0,0>",
			side:     White,
			features: []uint{0, 1, 0, 0, 0, 0, 0, 1, 3, 0, 0, 0, 0, 0, 0},
		},
		{
			rules:    Rules{Size: 6, Init: 4, Max: 18, Scoring: Negate, Legal: true},
			spec:     spec,
			side:     Black,
			features: []uint{1, 1, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 2, 1, 0, 0, 0, 0, 18, 0},
		},
	} {
		g, err := ParseGame(test.rules, test.spec, test.side)
		require.NoError(t, err)
		require.Equal(t, test.features, g.Features(), "case %d", i)
	}
}

func TestExpand(t *testing.T) {
	e := Rules{Size: 2, Init: 1, Max: 3, Scoring: Negate, Legal: true}.Encoder()
	x, err := e.Expand([]uint{1, 1, 0, 2, 0, 7, 1, 3, 0})
	require.NoError(t, err)
	require.Equal(t, []float32{
		0, 1, // black to move
		1, 0, // legal moves
		0, 0, 1, 0, // 2
		1, 0, 0, 0, // 0
		0, 0, 0, 1, // 7, clamped
		0, 1, 0, 0, // 1
		0, 0, 0, 1, // 3
		1, 0, 0, 0, // 0
	}, x)

	v, err := e.Collapse(x)
	require.NoError(t, err)
	require.Equal(t, []uint{1, 1, 0, 2, 0, 3, 1, 3, 0}, v)

	_, err = e.Expand([]uint{0, 1})
	var shape *ShapeMismatchError
	require.True(t, errors.As(err, &shape))
	require.Equal(t, 9, shape.Want)
	require.Equal(t, 2, shape.Got)

	_, err = e.Collapse(x[1:])
	require.True(t, errors.As(err, &shape))
}

func TestEncodingRoundTrip(t *testing.T) {
	for _, rules := range []Rules{DefaultRules, HandicapRules} {
		g, err := MakeGame(rules)
		require.NoError(t, err)
		e := g.Encoder()
		rng := rand.New(rand.NewSource(42))

		for !g.Over() {
			features := g.Features()
			x := g.Encode()
			require.Len(t, x, e.Len())

			ones := 0
			for _, b := range x {
				require.Contains(t, []float32{0, 1}, b)
				if b == 1 {
					ones++
				}
			}
			// one bit per indicator, plus the legal moves
			legal := 0
			if rules.Legal {
				count, _ := g.Moves()
				legal = int(count)
			}
			require.Equal(t, 1+2*(int(rules.Size)+1)+legal, ones)

			v, err := e.Collapse(x)
			require.NoError(t, err)
			require.Equal(t, features, v)

			require.NoError(t, g.Move(int(g.Board().Random(g.Current(), rng))))
		}
	}
}
