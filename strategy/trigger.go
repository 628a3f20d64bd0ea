package strategy

import "supergame/game"

// GRIM defects forever once either player has defected in the supergame.
// A Missing opponent round leaves the decision unchanged.
func GRIM() Strategy {
	return NewStrategy("GRIM", "Grim trigger", 1, []game.Action{coop}, func() Machine {
		return Decide(func(w Window) game.Action {
			return game.Min(w.Own(1), w.Opponent(1))
		})
	})
}

// lenientGrim switches to Defect after k consecutive opponent defections and
// otherwise repeats its previous decision, so the switch is permanent.
func lenientGrim(k int) func() Machine {
	return func() Machine {
		return Decide(func(w Window) game.Action {
			if w.DefectedRun(k) {
				return defect
			}
			return w.Own(1)
		})
	}
}

func GRIM2() Strategy {
	return NewStrategy("GRIM2", "Lenient grim 2 trigger", 2, []game.Action{coop, coop}, lenientGrim(2))
}

func GRIM3() Strategy {
	return NewStrategy("GRIM3", "Lenient grim 3 trigger", 3, []game.Action{coop, coop, coop}, lenientGrim(3))
}

// suspiciousGrim defects when, in each of the last k rounds, at least one of
// the two players defected, and cooperates otherwise. The signal is
// recomputed from both players' play every round rather than by repeating
// the previous decision, so the opening Defect counts toward the trigger.
func suspiciousGrim(k int) func() Machine {
	return func() Machine {
		return Decide(func(w Window) game.Action {
			for i := 1; i <= k; i++ {
				if game.Min(w.Own(i), w.Opponent(i)) != defect {
					return coop
				}
			}
			return defect
		})
	}
}

func DGRIM2() Strategy {
	return NewStrategy("DGRIM2", "Suspicious lenient grim 2", 2, []game.Action{defect, coop}, suspiciousGrim(2))
}

func DGRIM3() Strategy {
	return NewStrategy("DGRIM3", "Suspicious lenient grim 3", 3, []game.Action{defect, coop, coop}, suspiciousGrim(3))
}
