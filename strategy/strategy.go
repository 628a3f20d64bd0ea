package strategy

import (
	"fmt"
	"slices"

	"supergame/game"
)

// Machine decides one round at a time. A fresh Machine is built for every
// evaluation, so any state it carries lives for a single pass only.
type Machine interface {
	// Reset is called on the first round of every supergame.
	Reset()
	// Next decides the round at the window's position. It is only called
	// once the strategy's opening has been played, so lookback up to the
	// strategy's memory never leaves the current supergame.
	Next(w Window) game.Action
}

// Decide adapts a memoryless-state decision function to a Machine.
type Decide func(w Window) game.Action

func (d Decide) Reset() {}

func (d Decide) Next(w Window) game.Action {
	return d(w)
}

// Strategy is a named decision rule that predicts its own play against an
// observed opponent history.
type Strategy struct {
	name        string
	description string
	memory      int
	opening     []game.Action
	machine     func() Machine
}

// NewStrategy defines a rule that plays opening in the first rounds of each
// supergame and consults a new machine afterwards. The opening must cover
// the memory depth.
func NewStrategy(name, description string, memory int, opening []game.Action, machine func() Machine) Strategy {
	if name == "" {
		panic("strategy name cannot be empty")
	}
	if len(opening) == 0 || len(opening) < memory {
		panic(fmt.Sprintf("strategy %s: opening of %d rounds does not cover memory %d", name, len(opening), memory))
	}
	for _, a := range opening {
		if !a.Observed() {
			panic(fmt.Sprintf("strategy %s: opening must be Cooperate or Defect", name))
		}
	}
	return Strategy{
		name:        name,
		description: description,
		memory:      memory,
		opening:     slices.Clone(opening),
		machine:     machine,
	}
}

func (s Strategy) Name() string {
	return s.name
}

func (s Strategy) Description() string {
	return s.description
}

// Memory is the number of past rounds a decision depends on.
func (s Strategy) Memory() int {
	return s.memory
}

func (s Strategy) Opening() []game.Action {
	return slices.Clone(s.opening)
}

// Play validates h and returns the strategy's predicted action for every
// step. Steps where the opponent's action is Missing are Missing. The zero
// Strategy has no rule and always fails with ErrUnknownRule.
func (s Strategy) Play(h game.History) ([]game.Action, error) {
	if s.machine == nil {
		return nil, fmt.Errorf("%w: strategy has no rule", ErrUnknownRule)
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("failed to play %s: %w", s.name, err)
	}
	return mask(s.decide(h), h.Actions), nil
}

// decide runs the rule over h without masking. Later rounds read these
// unmasked decisions as the rule's own previous play.
func (s Strategy) decide(h game.History) []game.Action {
	m := s.machine()
	own := make([]game.Action, h.Len())
	for t, round := range h.Periods {
		if round == 1 {
			m.Reset()
		}
		if round <= len(s.opening) {
			own[t] = s.opening[round-1]
			continue
		}
		own[t] = m.Next(Window{opponent: h.Actions, own: own, t: t, round: round})
	}
	return own
}

func mask(own, actions []game.Action) []game.Action {
	out := make([]game.Action, len(own))
	for t, a := range own {
		if actions[t] == game.Missing {
			out[t] = game.Missing
		} else {
			out[t] = a
		}
	}
	return out
}
