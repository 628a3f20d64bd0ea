package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Run("accepts numeric, letter and word forms", func(t *testing.T) {
		cases := map[string]Action{
			"1": Cooperate, "C": Cooperate, "cooperate": Cooperate, " c ": Cooperate,
			"0": Defect, "d": Defect, "Defect": Defect, "0.0": Defect,
			"": Missing, "NA": Missing, "NaN": Missing, ".": Missing,
		}
		for in, want := range cases {
			got, err := ParseAction(in)
			require.NoError(t, err, "input %q", in)
			require.Equal(t, want, got, "input %q", in)
		}
	})

	t.Run("rejects values outside the domain", func(t *testing.T) {
		_, err := ParseAction("2")
		require.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestActionFromFloat(t *testing.T) {
	t.Run("maps the 1 / 0 / NaN coding", func(t *testing.T) {
		a, err := ActionFromFloat(1)
		require.NoError(t, err)
		require.Equal(t, Cooperate, a)

		a, err = ActionFromFloat(0)
		require.NoError(t, err)
		require.Equal(t, Defect, a)

		a, err = ActionFromFloat(math.NaN())
		require.NoError(t, err)
		require.Equal(t, Missing, a)
	})

	t.Run("rejects non-binary numbers", func(t *testing.T) {
		_, err := ActionFromFloat(0.5)
		require.ErrorIs(t, err, ErrMalformedInput)
	})
}

func TestMin(t *testing.T) {
	require.Equal(t, Defect, Min(Cooperate, Defect))
	require.Equal(t, Defect, Min(Defect, Cooperate))
	require.Equal(t, Cooperate, Min(Cooperate, Cooperate))
	require.Equal(t, Cooperate, Min(Cooperate, Missing), "Missing should carry no information")
	require.Equal(t, Defect, Min(Missing, Defect), "Missing should carry no information")
	require.Equal(t, Missing, Min(Missing, Missing))
}

func TestActionPredicates(t *testing.T) {
	require.False(t, Missing.Defected())
	require.False(t, Missing.Cooperated())
	require.False(t, Missing.Observed())
	require.True(t, Defect.Defected())
	require.True(t, Cooperate.Cooperated())
	require.False(t, Action(7).Valid())
	require.Equal(t, Defect, Cooperate.Flip())
	require.Equal(t, Missing, Missing.Flip())
	require.True(t, math.IsNaN(Missing.Float()))
}

func TestParseActions(t *testing.T) {
	got, err := ParseActions("1, 0,NA C\tD")
	require.NoError(t, err)
	require.Equal(t, []Action{Cooperate, Defect, Missing, Cooperate, Defect}, got)
	require.Equal(t, "C,D,NA,C,D", FormatActions(got))

	_, err = ParseActions("1,x")
	require.ErrorIs(t, err, ErrMalformedInput)
}
