package strategy

import "supergame/game"

// WSLS (win-stay-lose-shift) cooperates when both players did the same thing
// last round and defects when they differed. A Missing opponent round counts
// as a mismatch.
func WSLS() Strategy {
	return NewStrategy("WSLS", "Win-stay-lose-shift", 1, []game.Action{coop}, func() Machine {
		return Decide(func(w Window) game.Action {
			own, opp := w.Own(1), w.Opponent(1)
			if (opp.Cooperated() && own.Cooperated()) || (opp.Defected() && own.Defected()) {
				return coop
			}
			return defect
		})
	})
}

type wslsState int

const (
	good wslsState = iota
	bad1
	bad2
)

// twoWSLS needs two defections in a row to forgive. Every branch keys on
// whether the opponent cooperated, so a Missing round is handled like a
// defection.
type twoWSLS struct {
	state wslsState
}

func (m *twoWSLS) Reset() {
	m.state = good
}

func (m *twoWSLS) Next(w Window) game.Action {
	cooperated := w.Opponent(1).Cooperated()
	switch m.state {
	case good:
		if cooperated {
			return coop
		}
		m.state = bad1
		return defect
	case bad1:
		if cooperated {
			return defect
		}
		m.state = bad2
		return defect
	default:
		if cooperated {
			m.state = bad1
			return defect
		}
		m.state = good
		return coop
	}
}

func TwoWSLS() Strategy {
	return NewStrategy("2WSLS", "Two-state win-stay-lose-shift", 1, []game.Action{coop}, func() Machine {
		return &twoWSLS{}
	})
}

// twoTitsForTat answers every defection with two rounds of Defect.
type twoTitsForTat struct {
	punishing bool
}

func (m *twoTitsForTat) Reset() {
	m.punishing = false
}

func (m *twoTitsForTat) Next(w Window) game.Action {
	if w.Opponent(1).Defected() {
		m.punishing = true
		return defect
	}
	if m.punishing {
		m.punishing = false
		return defect
	}
	return coop
}

func TwoTFT() Strategy {
	return NewStrategy("2TFT", "Two-tits-for-one-tat", 1, []game.Action{coop}, func() Machine {
		return &twoTitsForTat{}
	})
}

// twoTitsForTwoTats starts punishing after two defections in a row and keeps
// defecting until the opponent's last action is anything but a defection.
type twoTitsForTwoTats struct {
	punishing bool
}

func (m *twoTitsForTwoTats) Reset() {
	m.punishing = false
}

func (m *twoTitsForTwoTats) Next(w Window) game.Action {
	if !m.punishing && w.DefectedRun(2) {
		m.punishing = true
		return defect
	}
	if m.punishing {
		if !w.Opponent(1).Defected() {
			m.punishing = false
		}
		return defect
	}
	return coop
}

func TwoTF2T() Strategy {
	return NewStrategy("2TF2T", "Two-tits-for-two-tats", 2, []game.Action{coop, coop}, func() Machine {
		return &twoTitsForTwoTats{}
	})
}

// t2 punishes a defection with two Defects followed by one forced Cooperate.
type t2 struct {
	punish int
}

func (m *t2) Reset() {
	m.punish = 0
}

func (m *t2) Next(w Window) game.Action {
	switch m.punish {
	case 0:
		if w.Opponent(1).Defected() {
			m.punish = 2
			return defect
		}
		return coop
	case 2:
		m.punish = 1
		return defect
	default:
		m.punish = 0
		return coop
	}
}

func T2() Strategy {
	return NewStrategy("T2", "T2", 1, []game.Action{coop}, func() Machine {
		return &t2{}
	})
}
