package strategy

import "supergame/game"

// copyOpponent repeats the opponent's last action. When that action was not
// observed the previous decision is kept.
func copyOpponent() Machine {
	return Decide(func(w Window) game.Action {
		if last := w.Opponent(1); last.Observed() {
			return last
		}
		return w.Own(1)
	})
}

// forgiveUntil defects only after k consecutive opponent defections.
func forgiveUntil(k int) func() Machine {
	return func() Machine {
		return Decide(func(w Window) game.Action {
			if w.DefectedRun(k) {
				return defect
			}
			return coop
		})
	}
}

func TFT() Strategy {
	return NewStrategy("TFT", "Tit-for-tat", 1, []game.Action{coop}, copyOpponent)
}

// DTFT is suspicious tit-for-tat: it opens with Defect.
func DTFT() Strategy {
	return NewStrategy("DTFT", "Suspicious tit-for-tat", 1, []game.Action{defect}, copyOpponent)
}

func TF2T() Strategy {
	return NewStrategy("TF2T", "Tit-for-two-tats", 2, []game.Action{coop, coop}, forgiveUntil(2))
}

func TF3T() Strategy {
	return NewStrategy("TF3T", "Tit-for-three-tats", 3, []game.Action{coop, coop, coop}, forgiveUntil(3))
}

func DTF2T() Strategy {
	return NewStrategy("DTF2T", "Suspicious tit-for-two-tats", 2, []game.Action{defect, coop}, forgiveUntil(2))
}

func DTF3T() Strategy {
	return NewStrategy("DTF3T", "Suspicious tit-for-three-tats", 3, []game.Action{defect, coop, coop}, forgiveUntil(3))
}
