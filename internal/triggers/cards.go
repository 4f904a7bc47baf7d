package triggers

import "mtgsim/internal/state"

// Card-specific trigger handlers, registered at package init per the
// convention documented on Register. These are the only two handlers the
// starter catalog wires up; every other ENTERS_BATTLEFIELD/DIES/
// BECOMES_TAPPED/DEALT_DAMAGE event the effects library raises for an
// unregistered card name is a deliberate no-op (most permanents don't care
// about most events).
func init() {
	Register(EventEntersBattlefield, "Venerable Monk", func(_ *state.GameState, sourceID state.InstanceID, controller state.PlayerID) state.PendingTrigger {
		return state.PendingTrigger{
			Event:       string(EventEntersBattlefield),
			SourceID:    sourceID,
			Controller:  controller,
			Description: "Venerable Monk enters the battlefield: you gain 2 life.",
			Apply: func(g *state.GameState) error {
				g.Players[controller].Life += 2
				return nil
			},
		}
	})

	Register(EventDies, "Charnel Worm", func(_ *state.GameState, sourceID state.InstanceID, controller state.PlayerID) state.PendingTrigger {
		return state.PendingTrigger{
			Event:       string(EventDies),
			SourceID:    sourceID,
			Controller:  controller,
			Description: "Charnel Worm dies: you gain 1 life.",
			Apply: func(g *state.GameState) error {
				g.Players[controller].Life++
				return nil
			},
		}
	})
}
