package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistoryValidate(t *testing.T) {
	t.Run("accepts back-to-back supergames", func(t *testing.T) {
		h := History{
			Actions: []Action{Cooperate, Defect, Missing, Cooperate, Defect},
			Periods: []int{1, 2, 3, 1, 2},
		}
		require.NoError(t, h.Validate())
	})

	t.Run("accepts an empty history", func(t *testing.T) {
		require.NoError(t, History{}.Validate())
	})

	t.Run("rejects unequal lengths", func(t *testing.T) {
		h := History{Actions: []Action{Cooperate, Defect}, Periods: []int{1, 2, 3}}
		require.ErrorIs(t, h.Validate(), ErrLengthMismatch)
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		h := History{Actions: []Action{Cooperate, Action(9)}, Periods: []int{1, 2}}
		require.ErrorIs(t, h.Validate(), ErrMalformedInput)
	})

	t.Run("rejects non-positive periods", func(t *testing.T) {
		h := History{Actions: []Action{Cooperate, Defect}, Periods: []int{1, 0}}
		require.ErrorIs(t, h.Validate(), ErrMalformedInput)
	})

	t.Run("rejects a history that does not start a supergame", func(t *testing.T) {
		h := History{Actions: []Action{Cooperate}, Periods: []int{2}}
		require.ErrorIs(t, h.Validate(), ErrMalformedInput)
	})

	t.Run("rejects skipped or repeated periods", func(t *testing.T) {
		skipped := History{Actions: []Action{Cooperate, Cooperate}, Periods: []int{1, 3}}
		require.ErrorIs(t, skipped.Validate(), ErrMalformedInput)

		repeated := History{Actions: []Action{Cooperate, Cooperate}, Periods: []int{1, 1}}
		require.NoError(t, repeated.Validate(), "two one-round supergames are valid")

		backwards := History{Actions: []Action{Cooperate, Cooperate, Cooperate}, Periods: []int{1, 2, 2}}
		require.ErrorIs(t, backwards.Validate(), ErrMalformedInput)
	})
}

func TestNewHistory(t *testing.T) {
	_, err := NewHistory([]Action{Cooperate}, []int{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)

	h, err := NewHistory([]Action{Cooperate, Defect}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 2, h.Len())
}

func TestSupergames(t *testing.T) {
	h := History{
		Actions: make([]Action, 6),
		Periods: PeriodsFor(3, 1, 2),
	}
	require.Equal(t, []int{1, 2, 3, 1, 1, 2}, h.Periods)
	require.Equal(t, []Span{{0, 3}, {3, 4}, {4, 6}}, h.Supergames())
	require.Equal(t, 2, h.Supergames()[2].Len())
	require.Empty(t, History{}.Supergames())
}

func TestParsePeriods(t *testing.T) {
	got, err := ParsePeriods("1,2 3,1")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 1}, got)

	_, err = ParsePeriods("1,two")
	require.ErrorIs(t, err, ErrMalformedInput)
}
