package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Lightning Bolt", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		for _, t := range targets {
			eff.DamageSingle(g, t, 3)
		}
		return nil
	})
}
