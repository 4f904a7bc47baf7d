package engine

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/state"
)

// newEngineGame builds a bare two-player game in the player's main1 with
// priority assigned, for direct engine-level tests that bypass the action
// layer.
func newEngineGame(seed int64) (*state.GameState, *Engine) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	g := state.NewGameState(seed)
	g.ActivePlayer = state.Player
	g.TurnCount = 1
	g.Phase = state.PhaseMain1
	g.Step = state.StepMain
	g.SetPriority(state.Player)
	return g, New(reg)
}

func addPermanent(g *state.GameState, pid state.PlayerID, scryfallID string) *state.CardInstance {
	ci := &state.CardInstance{
		InstanceID: g.NextInstanceID(),
		ScryfallID: scryfallID,
		Owner:      pid,
		Controller: pid,
		Zone:       state.ZoneBattlefield,
	}
	p := g.Players[pid]
	p.Battlefield = append(p.Battlefield, ci)
	return ci
}

func addLibraryCard(g *state.GameState, pid state.PlayerID, scryfallID string) *state.CardInstance {
	ci := &state.CardInstance{
		InstanceID: g.NextInstanceID(),
		ScryfallID: scryfallID,
		Owner:      pid,
		Controller: pid,
		Zone:       state.ZoneLibrary,
	}
	p := g.Players[pid]
	p.Library = append(p.Library, ci)
	return ci
}
