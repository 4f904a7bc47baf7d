package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Inspiration", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		eff.Draw(g, so.Controller, 2)
		return nil
	})

	register("Mind Rot", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		for _, t := range targets {
			if t.Kind == state.TargetKindPlayer {
				eff.DiscardDeterministic(g, t.PlayerID, 2)
			}
		}
		return nil
	})
}
