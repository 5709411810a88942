package mancala

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSower(t *testing.T) {
	var (
		w = func(pit uint) Landing { return Landing{OnBoard: true, Side: White, Pit: pit} }
		b = func(pit uint) Landing { return Landing{OnBoard: true, Side: Black, Pit: pit} }
		W = Landing{Side: White}
		B = Landing{Side: Black}
	)

	for i, test := range []struct {
		side     Side
		pit      uint
		stones   uint
		size     uint
		landings []Landing
	}{
		{
			side: White, pit: 2, stones: 5, size: 6,
			landings: []Landing{w(3), w(4), w(5), W, b(0)},
		},
		{
			side: Black, pit: 5, stones: 3, size: 6,
			landings: []Landing{B, w(0), w(1)},
		},
		{
			side: White, pit: 0, stones: 14, size: 6,
			landings: []Landing{
				w(1), w(2), w(3), w(4), w(5), W,
				b(0), b(1), b(2), b(3), b(4), b(5), B,
				w(1),
			},
		},
		{
			side: White, pit: 1, stones: 6, size: 2,
			landings: []Landing{W, b(0), b(1), B, w(0), W},
		},
		{
			side: Black, pit: 0, stones: 1, size: 1,
			landings: []Landing{B},
		},
		{
			side: White, pit: 3, stones: 0, size: 6,
			landings: nil,
		},
	} {
		s := MakeSower(test.side, test.pit, test.stones, test.size)
		require.Equal(t, test.landings, s.Landings(), "case %d", i)
	}
}

func TestSowerSkipsOriginEveryLap(t *testing.T) {
	const size = 6
	s := MakeSower(White, 2, 40, size)
	ls := s.Landings()

	require.Len(t, ls, 40)
	for _, l := range ls {
		require.NotEqual(t, Landing{OnBoard: true, Side: White, Pit: 2}, l)
	}
}

func TestSowerReset(t *testing.T) {
	s := MakeSower(Black, 4, 9, 6)
	first := s.Landings()
	_, ok := s.Next()
	require.False(t, ok, "exhausted sower should stay exhausted")

	s.Reset()
	require.Equal(t, first, s.Landings())
}

func TestSowerIllegalPit(t *testing.T) {
	require.Panics(t, func() { MakeSower(White, 6, 1, 6) })
}
