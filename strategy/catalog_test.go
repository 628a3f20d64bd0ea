package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"supergame/game"
)

func TestStandardCatalog(t *testing.T) {
	t.Run("lists strategies in declaration order", func(t *testing.T) {
		require.Equal(t, []string{
			"ALLC", "ALLD", "TFT", "DTFT", "TF2T", "TF3T", "2TFT", "2TF2T", "T2", "GRIM",
			"GRIM2", "GRIM3", "WSLS", "2WSLS", "CtoD", "DTF2T", "DTF3T", "DGRIM2", "DGRIM3", "DCAlt",
		}, Standard().Names())
	})

	t.Run("exposes a handle for every name", func(t *testing.T) {
		rules := Standard().Rules()
		require.Len(t, rules, Standard().Len())
		for _, name := range Standard().Names() {
			require.Contains(t, rules, name)
			require.Equal(t, name, rules[name].Name())
			require.NotEmpty(t, rules[name].Description())
			require.GreaterOrEqual(t, len(rules[name].Opening()), rules[name].Memory())
		}
	})

	t.Run("returned collections are copies", func(t *testing.T) {
		names := Standard().Names()
		names[0] = "changed"
		delete(Standard().Rules(), "TFT")

		require.Equal(t, "ALLC", Standard().Names()[0])
		_, err := Standard().Lookup("TFT")
		require.NoError(t, err)
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("unknown rule", func(t *testing.T) {
		_, err := Evaluate("NOPE", []game.Action{game.Cooperate}, []int{1})
		require.ErrorIs(t, err, ErrUnknownRule)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Evaluate("TFT", []game.Action{game.Cooperate, game.Defect}, []int{1, 2, 3})
		require.ErrorIs(t, err, game.ErrLengthMismatch)
	})

	t.Run("malformed periods", func(t *testing.T) {
		_, err := Evaluate("TFT", []game.Action{game.Cooperate}, []int{0})
		require.ErrorIs(t, err, game.ErrMalformedInput)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := Evaluate("tft", []game.Action{game.Cooperate}, []int{1})
		require.ErrorIs(t, err, ErrUnknownRule)
	})

	t.Run("plays the named rule", func(t *testing.T) {
		got, err := Evaluate("TFT", []game.Action{game.Defect, game.Cooperate}, []int{1, 2})
		require.NoError(t, err)
		require.Equal(t, []game.Action{game.Cooperate, game.Defect}, got)
	})
}

func TestNewCatalog(t *testing.T) {
	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := NewCatalog(TFT(), GRIM(), TFT())
		require.Error(t, err)
	})

	t.Run("keeps registration order", func(t *testing.T) {
		c, err := NewCatalog(GRIM(), AllC())
		require.NoError(t, err)
		require.Equal(t, []string{"GRIM", "ALLC"}, c.Names())
		require.Equal(t, "GRIM", c.Strategies()[0].Name())
	})
}

func TestSubset(t *testing.T) {
	t.Run("keeps the requested order", func(t *testing.T) {
		c, err := Standard().Subset("WSLS", "ALLD")
		require.NoError(t, err)
		require.Equal(t, []string{"WSLS", "ALLD"}, c.Names())
	})

	t.Run("fails on unknown names", func(t *testing.T) {
		_, err := Standard().Subset("TFT", "NOPE")
		require.ErrorIs(t, err, ErrUnknownRule)
	})
}
