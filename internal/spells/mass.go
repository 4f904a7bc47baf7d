package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Wrath of God", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		eff.DestroyAllCreatures(g)
		return nil
	})

	register("Earthquake", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		eff.DamageAll(g, so.XValue, effects.ExcludeFlying, true)
		return nil
	})

	register("Flood", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		eff.DestroyLandsExceptName(g, "Island")
		return nil
	})
}
