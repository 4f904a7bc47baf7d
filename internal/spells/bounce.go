package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Unsummon", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		for _, t := range targets {
			if t.Kind == state.TargetKindCard {
				eff.Bounce(g, t.CardID)
			}
		}
		return nil
	})
}
