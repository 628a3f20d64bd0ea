package strategy

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"supergame/game"
)

var ErrUnknownRule = errors.New("unknown strategy")

// Catalog is an immutable set of strategies keyed by name. Names keep their
// registration order.
type Catalog struct {
	names []string
	rules map[string]Strategy
}

func NewCatalog(strategies ...Strategy) (*Catalog, error) {
	c := &Catalog{
		names: make([]string, 0, len(strategies)),
		rules: make(map[string]Strategy, len(strategies)),
	}
	for _, s := range strategies {
		if _, ok := c.rules[s.Name()]; ok {
			return nil, fmt.Errorf("strategy %s registered twice", s.Name())
		}
		c.names = append(c.names, s.Name())
		c.rules[s.Name()] = s
	}
	return c, nil
}

var standard = mustCatalog(
	AllC(),
	AllD(),
	TFT(),
	DTFT(),
	TF2T(),
	TF3T(),
	TwoTFT(),
	TwoTF2T(),
	T2(),
	GRIM(),
	GRIM2(),
	GRIM3(),
	WSLS(),
	TwoWSLS(),
	CtoD(),
	DTF2T(),
	DTF3T(),
	DGRIM2(),
	DGRIM3(),
	DCAlt(),
)

// Standard returns the catalog of the twenty canonical strategies.
func Standard() *Catalog {
	return standard
}

func mustCatalog(strategies ...Strategy) *Catalog {
	c, err := NewCatalog(strategies...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns the strategy names in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

func (c *Catalog) Rules() map[string]Strategy {
	return maps.Clone(c.rules)
}

// Strategies returns the strategies in registration order.
func (c *Catalog) Strategies() []Strategy {
	out := make([]Strategy, len(c.names))
	for i, name := range c.names {
		out[i] = c.rules[name]
	}
	return out
}

func (c *Catalog) Lookup(name string) (Strategy, error) {
	s, ok := c.rules[name]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return s, nil
}

// Subset returns a catalog restricted to names, in the order given.
func (c *Catalog) Subset(names ...string) (*Catalog, error) {
	strategies := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return NewCatalog(strategies...)
}

// Evaluate plays the named strategy against the opponent's actions.
func (c *Catalog) Evaluate(name string, actions []game.Action, periods []int) ([]game.Action, error) {
	s, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.Play(game.History{Actions: actions, Periods: periods})
}

// Evaluate plays the named strategy from the standard catalog.
func Evaluate(name string, actions []game.Action, periods []int) ([]game.Action, error) {
	return standard.Evaluate(name, actions, periods)
}
