package strategy

import "supergame/game"

const (
	coop   = game.Cooperate
	defect = game.Defect
)

func always(a game.Action) func() Machine {
	return func() Machine {
		return Decide(func(Window) game.Action { return a })
	}
}

func AllC() Strategy {
	return NewStrategy("ALLC", "Always cooperate", 0, []game.Action{coop}, always(coop))
}

func AllD() Strategy {
	return NewStrategy("ALLD", "Always defect", 0, []game.Action{defect}, always(defect))
}

// CtoD cooperates in the first round of each supergame and defects after.
func CtoD() Strategy {
	return NewStrategy("CtoD", "C to D", 0, []game.Action{coop}, always(defect))
}

// DCAlt opens with Defect and then alternates regardless of the opponent.
func DCAlt() Strategy {
	return NewStrategy("DCAlt", "DC alternator", 1, []game.Action{defect}, func() Machine {
		return Decide(func(w Window) game.Action {
			return w.Own(1).Flip()
		})
	})
}
