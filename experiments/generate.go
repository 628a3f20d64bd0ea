package experiments

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"supergame/game"
	"supergame/strategy"
)

// MaxRounds caps a generated supergame.
const MaxRounds = 100

// SessionConfig describes synthetic subjects. Supergame lengths are
// geometric: after every round the supergame continues with probability
// Continuation. Opponents cooperate with probability Cooperation, and a
// round goes unobserved with probability Missing.
//
// When Strategy is set the subject's own play follows it, with each
// observed decision flipped with probability Tremble.
type SessionConfig struct {
	Subjects     int
	Supergames   int
	Continuation float64
	Cooperation  float64
	Missing      float64
	Strategy     *strategy.Strategy
	Tremble      float64
}

func (c SessionConfig) validate() error {
	if c.Subjects < 0 || c.Supergames < 0 {
		return errors.New("subjects and supergames cannot be negative")
	}
	if c.Continuation < 0 || c.Continuation >= 1 {
		return fmt.Errorf("continuation probability %v is not in [0, 1)", c.Continuation)
	}
	for name, p := range map[string]float64{"cooperation": c.Cooperation, "missing": c.Missing, "tremble": c.Tremble} {
		if p < 0 || p > 1 {
			return fmt.Errorf("%s probability %v is not in [0, 1]", name, p)
		}
	}
	return nil
}

// Generate draws synthetic subjects from rng.
func Generate(rng *rand.Rand, cfg SessionConfig) ([]Subject, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	subjects := make([]Subject, cfg.Subjects)
	for i := range subjects {
		lengths := make([]int, cfg.Supergames)
		for g := range lengths {
			n := 1
			for n < MaxRounds && rng.Float64() < cfg.Continuation {
				n++
			}
			lengths[g] = n
		}

		periods := game.PeriodsFor(lengths...)
		actions := make([]game.Action, len(periods))
		for t := range actions {
			switch {
			case rng.Float64() < cfg.Missing:
				actions[t] = game.Missing
			case rng.Float64() < cfg.Cooperation:
				actions[t] = game.Cooperate
			default:
				actions[t] = game.Defect
			}
		}

		subject := Subject{
			ID:      fmt.Sprintf("s%03d", i+1),
			History: game.History{Actions: actions, Periods: periods},
		}
		if cfg.Strategy != nil {
			own, err := cfg.Strategy.Play(subject.History)
			if err != nil {
				return nil, fmt.Errorf("failed to play %s for subject %s: %w", cfg.Strategy.Name(), subject.ID, err)
			}
			for t, a := range own {
				if a.Observed() && rng.Float64() < cfg.Tremble {
					own[t] = a.Flip()
				}
			}
			subject.Own = own
		}
		subjects[i] = subject
	}
	return subjects, nil
}
