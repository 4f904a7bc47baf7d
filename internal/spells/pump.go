package spells

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Giant Growth", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		for _, t := range targets {
			if t.Kind != state.TargetKindCard {
				continue
			}
			card, _, zone := g.FindCard(t.CardID)
			if card == nil || zone != state.ZoneBattlefield {
				continue
			}
			eff.TeamPump(g, 3, 3, func(tmpl *catalog.CardTemplate, ci *state.CardInstance) bool {
				return ci.InstanceID == t.CardID
			})
		}
		return nil
	})
}
