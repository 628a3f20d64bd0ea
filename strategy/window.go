package strategy

import (
	"fmt"

	"supergame/game"
)

// Window gives a machine read access to the rounds of the current supergame
// that precede the step being decided.
type Window struct {
	opponent []game.Action
	own      []game.Action
	t        int
	round    int
}

// Round is the period marker of the step being decided.
func (w Window) Round() int {
	return w.round
}

// Opponent returns the opponent's action k rounds back. It may be Missing.
func (w Window) Opponent(k int) game.Action {
	w.check(k)
	return w.opponent[w.t-k]
}

// Own returns the rule's own decision k rounds back, before masking. It is
// never Missing.
func (w Window) Own(k int) game.Action {
	w.check(k)
	return w.own[w.t-k]
}

// DefectedRun reports whether the opponent defected in each of the last k
// rounds. A Missing round breaks the run.
func (w Window) DefectedRun(k int) bool {
	for i := 1; i <= k; i++ {
		if !w.Opponent(i).Defected() {
			return false
		}
	}
	return true
}

func (w Window) check(k int) {
	if k < 1 || k >= w.round {
		panic(fmt.Sprintf("lookback of %d rounds at round %d leaves the supergame", k, w.round))
	}
}
