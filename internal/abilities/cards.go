package abilities

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
	"mtgsim/internal/targeting"
)

func init() {
	registerBasicLand("Mountain", "mountain-tap", "R")
	registerBasicLand("Island", "island-tap", "U")
	registerBasicLand("Swamp", "swamp-tap", "B")
	registerBasicLand("Plains", "plains-tap", "W")
	registerBasicLand("Forest", "forest-tap", "G")

	register(Template{
		ID:       "llanowar-elves-tap",
		CardName: "Llanowar Elves",
		Speed:    SpeedInstant,
		Cost:     Cost{TapSelf: true},
		Effect: func(g *state.GameState, eff effects.Context, sourceID state.InstanceID, controller state.PlayerID, targets []state.TargetRef) error {
			g.Players[controller].ManaPool.Add("G")
			return nil
		},
	})

	register(Template{
		ID:       "royal-assassin-tap",
		CardName: "Royal Assassin",
		Speed:    SpeedInstant,
		Cost:     Cost{TapSelf: true},
		Requirements: []targeting.TargetRequirement{
			{ID: "target1", Count: 1, TargetType: targeting.TypeCreature, Zone: targeting.ZoneBattlefield,
				Restrictions: []targeting.TargetRestriction{{Kind: targeting.RestrictionTapped}},
				Description:  "target tapped creature"},
		},
		Effect: func(g *state.GameState, eff effects.Context, sourceID state.InstanceID, controller state.PlayerID, targets []state.TargetRef) error {
			for _, t := range targets {
				if t.Kind == state.TargetKindCard {
					eff.Destroy(g, t.CardID)
				}
			}
			return nil
		},
	})

	register(Template{
		ID:       "prodigal-sorcerer-tap",
		CardName: "Prodigal Sorcerer",
		Speed:    SpeedInstant,
		Cost:     Cost{TapSelf: true},
		Requirements: []targeting.TargetRequirement{
			{ID: "target1", Count: 1, TargetType: targeting.TypeAny, Zone: targeting.ZoneAny, Description: "any target"},
		},
		Effect: func(g *state.GameState, eff effects.Context, sourceID state.InstanceID, controller state.PlayerID, targets []state.TargetRef) error {
			for _, t := range targets {
				eff.DamageSingle(g, t, 1)
			}
			return nil
		},
	})
}

// registerBasicLand wires a basic land's tap-for-mana ability, the same
// TapSelf-cost shape as Llanowar Elves's, differing only in mana color.
func registerBasicLand(cardName, id, color string) {
	register(Template{
		ID:       id,
		CardName: cardName,
		Speed:    SpeedInstant,
		Cost:     Cost{TapSelf: true},
		Effect: func(g *state.GameState, eff effects.Context, sourceID state.InstanceID, controller state.PlayerID, targets []state.TargetRef) error {
			g.Players[controller].ManaPool.Add(color)
			return nil
		},
	})
}
