// Package engine drives the turn/phase/step/priority machine, stack
// resolution, combat, and state-based actions (spec.md §4.1-§4.2).
package engine

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
	"mtgsim/internal/triggers"
)

// Engine bundles the dependencies every step of the turn machine needs.
type Engine struct {
	Reg catalog.Registry
	Eff effects.Context
}

// New builds an Engine backed by the given card registry.
func New(reg catalog.Registry) *Engine {
	return &Engine{Reg: reg, Eff: effects.Context{Reg: reg}}
}

// CheckStateBasedActions applies spec.md §4.1's state-based action sweep
// until none apply (lethal damage this pass can enable an empty-library
// loss next pass only in principle; in practice one pass suffices for this
// subset, but looping keeps the function correct if that ever changes).
// Returns true if the game ended as a result.
func (e *Engine) CheckStateBasedActions(g *state.GameState) bool {
	if g.Outcome.Decided {
		return true
	}
	for {
		changed := e.sweepLethalDamage(g)
		changed = e.sweepLifeTotals(g) || changed
		if g.Outcome.Decided {
			return true
		}
		if !changed {
			return false
		}
	}
}

// sweepLethalDamage iterates the active player's battlefield before the
// other's (spec.md §5: "active player's permanents first, then opponent's,
// then by battlefield index"), so DIES triggers from the same sweep enqueue
// in that stable order.
func (e *Engine) sweepLethalDamage(g *state.GameState) bool {
	var dead []struct {
		card  *state.CardInstance
		owner state.PlayerID
	}
	for _, pid := range []state.PlayerID{g.ActivePlayer, g.ActivePlayer.Other()} {
		for _, ci := range g.Players[pid].Battlefield {
			tmpl, ok := e.Reg.Get(ci.ScryfallID)
			if !ok || !tmpl.IsCreature() {
				continue
			}
			if ci.Damage >= catalog.EffectiveToughness(tmpl, ci) {
				dead = append(dead, struct {
					card  *state.CardInstance
					owner state.PlayerID
				}{ci, pid})
			}
		}
	}
	if len(dead) == 0 {
		return false
	}
	// All deaths in this sweep are simultaneous: every card leaves the
	// battlefield before any DIES trigger for this batch resolves.
	for _, d := range dead {
		tmpl, _ := e.Reg.Get(d.card.ScryfallID)
		id := d.card.InstanceID
		g.MoveCard(d.owner, id, state.ZoneBattlefield, state.ZoneGraveyard, d.owner)
		if tmpl != nil {
			triggers.Raise(g, triggers.EventDies, tmpl.Name, id, d.owner)
		}
	}
	return true
}

func (e *Engine) sweepLifeTotals(g *state.GameState) bool {
	playerLost := g.Players[state.Player].Life <= 0
	opponentLost := g.Players[state.Opponent].Life <= 0
	if !playerLost && !opponentLost {
		return false
	}
	if playerLost && opponentLost {
		g.Outcome = state.Outcome{Decided: true, Draw: true}
	} else if playerLost {
		g.Outcome = state.Outcome{Decided: true, Winner: state.Opponent}
	} else {
		g.Outcome = state.Outcome{Decided: true, Winner: state.Player}
	}
	return true
}

// ApplyEmptyLibraryLoss marks the given player as having lost from drawing
// with an empty library, honoring simultaneous-loss-is-a-draw semantics if
// the other player has also already lost this way in the same action.
func (e *Engine) ApplyEmptyLibraryLoss(g *state.GameState, pid state.PlayerID, otherAlsoLost bool) {
	if otherAlsoLost {
		g.Outcome = state.Outcome{Decided: true, Draw: true}
		return
	}
	g.Outcome = state.Outcome{Decided: true, Winner: pid.Other()}
}
