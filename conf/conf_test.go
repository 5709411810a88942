package conf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"go-mancala"
)

func TestDecode(t *testing.T) {
	c, err := Decode(strings.NewReader(`
debug = true

[rules]
size = 4
handicap = 6
scoring = "complement"
legal = true

[arena]
agent = "linear:temp=0.5"
games = 10
`))
	require.NoError(t, err)
	require.True(t, c.Debug)
	require.Equal(t, mancala.Rules{
		Size:     4,
		Init:     4,
		Handicap: 6,
		Max:      18,
		Scoring:  mancala.Complement,
		Legal:    true,
	}, c.Rules)
	require.Equal(t, "linear:temp=0.5", c.Arena.Agent)
	require.Equal(t, "random", c.Arena.Against)
	require.Equal(t, uint(10), c.Arena.Games)
	require.Equal(t, Default().Match, c.Match)
}

func TestDecodeErrors(t *testing.T) {
	for _, data := range []string{
		"[rules\nsize = 4",
		"[rules]\nsize = 0",
		"[rules]\nscoring = \"percent\"",
		"[rules]\nsize = \"six\"",
	} {
		_, err := Decode(strings.NewReader(data))
		require.Error(t, err, "data %q", data)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	c := Default()
	c.Rules = mancala.HandicapRules
	c.Match.Record = true
	c.Arena.Workers = 3

	var buf bytes.Buffer
	require.NoError(t, c.Dump(&buf))
	require.Contains(t, buf.String(), "[rules]")

	d, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, c, *d)
}

func TestOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "go-mancala.toml")
	require.NoError(t, os.WriteFile(name, []byte("[match]\nwhite = \"linear\"\n"), 0o644))

	c, err := Open(name)
	require.NoError(t, err)
	require.Equal(t, "linear", c.Match.White)
	require.Equal(t, mancala.DefaultRules, c.Rules)

	_, err = Open(filepath.Join(t.TempDir(), "missing.toml"))
	require.True(t, os.IsNotExist(err))
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	c := Default()
	c.Debug = true
	c.Setup(&buf)

	g, err := mancala.MakeGame(mancala.DefaultRules)
	require.NoError(t, err)
	require.NoError(t, g.Move(2))
	require.Contains(t, buf.String(), "Debug logging has been enabled")
	require.Contains(t, buf.String(), "<6,1,0,4,4,0,5,5,5,4,4,4,4,4,4>")

	mancala.Debug = zerolog.Nop()
}
