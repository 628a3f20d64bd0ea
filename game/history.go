package game

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrLengthMismatch = errors.New("actions and periods differ in length")
	ErrMalformedInput = errors.New("malformed input")
)

// History is the opponent's observed play over back-to-back supergames.
// Periods[t] is the round number of step t within its supergame; a period
// of 1 starts a new supergame.
type History struct {
	Actions []Action
	Periods []int
}

// Span is the half-open index range [Start, End) of one supergame.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func NewHistory(actions []Action, periods []int) (History, error) {
	h := History{Actions: actions, Periods: periods}
	if err := h.Validate(); err != nil {
		return History{}, err
	}
	return h, nil
}

func (h History) Len() int {
	return len(h.Actions)
}

// Validate checks that the history can be evaluated without reading across
// supergame boundaries: equal lengths, known actions, and periods that start
// at 1 and then either restart at 1 or count up by one.
func (h History) Validate() error {
	if len(h.Actions) != len(h.Periods) {
		return fmt.Errorf("%w: %d actions, %d periods", ErrLengthMismatch, len(h.Actions), len(h.Periods))
	}
	for t, a := range h.Actions {
		if !a.Valid() {
			return fmt.Errorf("%w: action %v at step %d", ErrMalformedInput, a, t)
		}
	}
	for t, p := range h.Periods {
		if p < 1 {
			return fmt.Errorf("%w: period %d at step %d is not positive", ErrMalformedInput, p, t)
		}
		if p == 1 {
			continue
		}
		if t == 0 {
			return fmt.Errorf("%w: history starts at period %d instead of 1", ErrMalformedInput, p)
		}
		if prev := h.Periods[t-1]; p != prev+1 {
			return fmt.Errorf("%w: period %d at step %d follows period %d", ErrMalformedInput, p, t, prev)
		}
	}
	return nil
}

// Supergames splits a valid history into one span per supergame.
func (h History) Supergames() []Span {
	var spans []Span
	for t, p := range h.Periods {
		if p == 1 || t == 0 {
			if len(spans) > 0 {
				spans[len(spans)-1].End = t
			}
			spans = append(spans, Span{Start: t})
		}
	}
	if len(spans) > 0 {
		spans[len(spans)-1].End = len(h.Periods)
	}
	return spans
}

// PeriodsFor returns the period markers of consecutive supergames with the
// given lengths.
func PeriodsFor(lengths ...int) []int {
	var periods []int
	for _, n := range lengths {
		for p := 1; p <= n; p++ {
			periods = append(periods, p)
		}
	}
	return periods
}

// ParsePeriods splits s on commas and whitespace and parses every field.
func ParsePeriods(s string) ([]int, error) {
	fields := splitList(s)
	periods := make([]int, len(fields))
	for i, field := range fields {
		p, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: period %q at position %d", ErrMalformedInput, field, i+1)
		}
		periods[i] = p
	}
	return periods, nil
}
