package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Raise Dead", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		for _, t := range targets {
			if t.Kind != state.TargetKindCard {
				continue
			}
			card, owner, zone := g.FindCard(t.CardID)
			if card == nil || zone != state.ZoneGraveyard {
				continue
			}
			g.MoveCard(owner, t.CardID, state.ZoneGraveyard, state.ZoneHand, owner)
		}
		return nil
	})
}
