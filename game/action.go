package game

import (
	"fmt"
	"math"
	"strings"
)

// Action is a single observed or predicted move in a round.
type Action int8

const (
	Missing Action = iota // Round was not observed
	Defect
	Cooperate
)

// Valid reports whether a is one of the three known actions.
func (a Action) Valid() bool {
	return a == Missing || a == Defect || a == Cooperate
}

func (a Action) Observed() bool {
	return a == Defect || a == Cooperate
}

// Defected and Cooperated are both false for Missing.
func (a Action) Defected() bool {
	return a == Defect
}

func (a Action) Cooperated() bool {
	return a == Cooperate
}

// Flip swaps Cooperate and Defect. Missing stays Missing.
func (a Action) Flip() Action {
	switch a {
	case Cooperate:
		return Defect
	case Defect:
		return Cooperate
	default:
		return a
	}
}

// Min is the worse of two actions, with Defect below Cooperate. A Missing
// operand carries no information, so the other operand is returned.
func Min(a, b Action) Action {
	switch {
	case !a.Observed():
		return b
	case !b.Observed():
		return a
	case a == Defect || b == Defect:
		return Defect
	default:
		return Cooperate
	}
}

func (a Action) String() string {
	switch a {
	case Cooperate:
		return "C"
	case Defect:
		return "D"
	case Missing:
		return "NA"
	default:
		return fmt.Sprintf("Action(%d)", int8(a))
	}
}

// Float returns the numeric coding used by analysis tools: 1, 0 or NaN.
func (a Action) Float() float64 {
	switch a {
	case Cooperate:
		return 1
	case Defect:
		return 0
	default:
		return math.NaN()
	}
}

// ParseAction reads an action from its textual form.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "1.0", "c", "cooperate":
		return Cooperate, nil
	case "0", "0.0", "d", "defect":
		return Defect, nil
	case "", "na", "nan", ".", "missing":
		return Missing, nil
	}
	return Missing, fmt.Errorf("%w: unknown action %q", ErrMalformedInput, s)
}

// ActionFromFloat reads the 1 / 0 / NaN numeric coding.
func ActionFromFloat(v float64) (Action, error) {
	switch {
	case math.IsNaN(v):
		return Missing, nil
	case v == 1:
		return Cooperate, nil
	case v == 0:
		return Defect, nil
	}
	return Missing, fmt.Errorf("%w: action value %v is not 0, 1 or NaN", ErrMalformedInput, v)
}

// ParseActions splits s on commas and whitespace and parses every field.
func ParseActions(s string) ([]Action, error) {
	fields := splitList(s)
	actions := make([]Action, len(fields))
	for i, field := range fields {
		a, err := ParseAction(field)
		if err != nil {
			return nil, fmt.Errorf("failed to parse action %d: %w", i+1, err)
		}
		actions[i] = a
	}
	return actions, nil
}

func FormatActions(actions []Action) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, ",")
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
