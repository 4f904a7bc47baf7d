package spells

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

func init() {
	register("Rampant Growth", func(g *state.GameState, eff effects.Context, so *state.StackObject, targets []state.TargetRef) error {
		id, found := eff.SearchLibrary(g, so.Controller, func(tmpl *catalog.CardTemplate) bool {
			return tmpl.IsLand()
		}, state.ZoneBattlefield, true)
		if found {
			if card, _, _ := g.FindCard(id); card != nil {
				card.Tapped = true
			}
		}
		return nil
	})
}
