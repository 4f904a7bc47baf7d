package action

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/engine"
	"mtgsim/internal/state"
)

// newFixtureGame builds a minimal two-player GameState with priority sitting
// with the player in main1, bypassing the deck/library/opening-hand
// machinery session.NewGame normally runs, so scenario tests can place exact
// cards in exact zones.
func newFixtureGame(seed int64) (*state.GameState, *Applier, *engine.Engine) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	eng := engine.New(reg)
	g := state.NewGameState(seed)
	g.ActivePlayer = state.Player
	g.Phase = state.PhaseMain1
	g.Step = state.StepMain
	g.SetPriority(state.Player)
	return g, NewApplier(eng), eng
}

// addBattlefield places a fresh, untapped, non-summoning-sick permanent
// directly onto pid's battlefield.
func addBattlefield(g *state.GameState, pid state.PlayerID, scryfallID string) *state.CardInstance {
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

// addHand places a card directly into pid's hand.
func addHand(g *state.GameState, pid state.PlayerID, scryfallID string) *state.CardInstance {
	ci := &state.CardInstance{
		InstanceID: g.NextInstanceID(),
		ScryfallID: scryfallID,
		Owner:      pid,
		Controller: pid,
		Zone:       state.ZoneHand,
	}
	p := g.Players[pid]
	p.Hand = append(p.Hand, ci)
	return ci
}

// tapForMana activates a basic land's mana ability and drives its two-pass
// resolution to completion, leaving the color in pid's mana pool.
func tapForMana(g *state.GameState, app *Applier, eng *engine.Engine, pid state.PlayerID, landID state.InstanceID, abilityID string) error {
	if err := app.Apply(g, pid, Action{Kind: KindActivateAbility, SourceID: landID, AbilityID: abilityID}); err != nil {
		return err
	}
	if err := eng.PassPriority(g); err != nil {
		return err
	}
	return eng.PassPriority(g)
}
