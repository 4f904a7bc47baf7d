package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Counterspell", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		for _, t := range targets {
			if t.Kind != state.TargetKindStack {
				continue
			}
			for _, other := range g.Stack {
				if other.ID == t.StackID {
					other.Countered = true
				}
			}
		}
		return nil
	})
}
