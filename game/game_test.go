package game

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"go-mancala"
	"go-mancala/bot"
)

func newGame(t *testing.T) *mancala.Game {
	t.Helper()
	g, err := mancala.MakeGame(mancala.DefaultRules)
	require.NoError(t, err)
	return g
}

func TestPlay(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		var (
			g   = newGame(t)
			buf bytes.Buffer
		)
		agents := [2]mancala.Agent{bot.MakeSimple(), bot.MakeRandom(seed)}
		res, err := Play(g, agents, Options{Render: &buf, Record: true, Reset: true})
		require.NoError(t, err)

		require.True(t, g.Over())
		final, ok := g.Result()
		require.True(t, ok)
		require.Equal(t, final, res)
		require.Equal(t, mancala.DefaultRules.Stones(), g.Stones())

		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		require.Len(t, lines, int(g.Ply())+1)
		require.True(t, strings.HasSuffix(lines[len(lines)-1], res.String()))
		require.Len(t, g.History(), int(g.Ply()))
	}
}

func TestPlayReset(t *testing.T) {
	g := newGame(t)
	agents := [2]mancala.Agent{bot.MakeRandom(1), bot.MakeRandom(2)}

	_, err := Play(g, agents, Options{})
	require.NoError(t, err)
	require.True(t, g.Over())

	// without a reset there is nothing left to play
	ply := g.Ply()
	_, err = Play(g, agents, Options{})
	require.NoError(t, err)
	require.Equal(t, ply, g.Ply())

	_, err = Play(g, agents, Options{Reset: true})
	require.NoError(t, err)
	require.Empty(t, g.History(), "history is only recorded on request")
}

func TestPlayFromPosition(t *testing.T) {
	g, err := mancala.ParseGame(mancala.DefaultRules, "<6,10,20,0,0,0,0,0,1,2,2,2,2,2,3>", mancala.White)
	require.NoError(t, err)

	res, err := Play(g, [2]mancala.Agent{bot.MakeSimple(), bot.MakeSimple()}, Options{})
	require.NoError(t, err)
	require.Equal(t, mancala.Black, res.Winner)
	require.Equal(t, uint(1), g.Ply())
}

func TestPlayIllegalMove(t *testing.T) {
	g := newGame(t)
	stubborn := mancala.AgentFunc(func(*mancala.Game) (int, error) { return 2, nil })

	_, err := Play(g, [2]mancala.Agent{stubborn, stubborn}, Options{Record: true})
	var illegal *mancala.IllegalMoveError
	require.True(t, errors.As(err, &illegal))
	require.Equal(t, uint(2), illegal.Pit)
	require.Equal(t, mancala.White, illegal.Side)

	// the first move was played and kept the turn, the second
	// was rejected
	require.Equal(t, uint(1), g.Ply())
	require.Len(t, g.History(), 1)
}

func TestPlayAgentError(t *testing.T) {
	g := newGame(t)
	cause := errors.New("agent crashed")
	broken := mancala.AgentFunc(func(*mancala.Game) (int, error) { return 0, cause })

	_, err := Play(g, [2]mancala.Agent{bot.MakeSimple(), broken}, Options{})
	require.Error(t, err)
	require.Equal(t, cause, errors.Cause(err))
	require.Equal(t, mancala.Black, g.Current())
}

func TestMoveWrapsIndex(t *testing.T) {
	g := newGame(t)
	a := mancala.AgentFunc(func(*mancala.Game) (int, error) { return 14, nil })
	require.NoError(t, Move(g, a, false))
	require.Equal(t, "<6,1,0,4,4,0,5,5,5,4,4,4,4,4,4>", g.Board().String())
}
