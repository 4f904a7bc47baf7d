package engine

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/errors"
	"mtgsim/internal/state"
)

// DeclareAttackers taps and marks the chosen untapped, non-summoning-sick
// creatures as attacking (spec.md §4.1; vigilance is not in this subset, so
// every attacker taps).
func (e *Engine) DeclareAttackers(g *state.GameState, attackers []state.InstanceID) error {
	p := g.Players[g.ActivePlayer]
	for _, id := range attackers {
		ci, _ := p.FindInZone(state.ZoneBattlefield, id)
		if ci == nil {
			return errors.InvalidAction("attacker %s not controlled by active player", id)
		}
		tmpl, ok := e.Reg.Get(ci.ScryfallID)
		if !ok || !tmpl.IsCreature() {
			return errors.InvalidAction("attacker %s is not a creature", id)
		}
		if ci.Tapped || ci.SummoningSick {
			return errors.InvalidAction("attacker %s cannot attack (tapped or summoning sick)", id)
		}
	}
	for _, id := range attackers {
		ci, _ := p.FindInZone(state.ZoneBattlefield, id)
		ci.Attacking = true
		ci.Tapped = true
	}
	g.SetPriority(g.ActivePlayer)
	return nil
}

// Block pairs one blocker to one attacker.
type Block struct {
	BlockerID  state.InstanceID
	AttackerID state.InstanceID
}

// DeclareBlockers assigns each blocker to at most one attacker, enforcing
// the flying/reach restriction (spec.md §4.1).
func (e *Engine) DeclareBlockers(g *state.GameState, blocks []Block) error {
	defender := g.ActivePlayer.Other()
	dp := g.Players[defender]
	ap := g.Players[g.ActivePlayer]

	for _, b := range blocks {
		blocker, _ := dp.FindInZone(state.ZoneBattlefield, b.BlockerID)
		attacker, _ := ap.FindInZone(state.ZoneBattlefield, b.AttackerID)
		if blocker == nil || attacker == nil || !attacker.Attacking {
			return errors.InvalidAction("illegal block %s -> %s", b.BlockerID, b.AttackerID)
		}
		if blocker.Tapped {
			return errors.InvalidAction("blocker %s is tapped", b.BlockerID)
		}
		attackerTmpl, _ := e.Reg.Get(attacker.ScryfallID)
		if attackerTmpl != nil && attackerTmpl.HasKeyword(catalog.KeywordFlying) {
			blockerTmpl, _ := e.Reg.Get(blocker.ScryfallID)
			if blockerTmpl == nil || (!blockerTmpl.HasKeyword(catalog.KeywordFlying) && !blockerTmpl.HasKeyword(catalog.KeywordReach)) {
				return errors.InvalidAction("attacker %s has flying and cannot be blocked by %s", b.AttackerID, b.BlockerID)
			}
		}
	}

	for _, b := range blocks {
		blocker, _ := dp.FindInZone(state.ZoneBattlefield, b.BlockerID)
		attacker, _ := ap.FindInZone(state.ZoneBattlefield, b.AttackerID)
		blocker.Blocking = true
		blocker.BlockingAttacker = b.AttackerID
		attacker.BlockedBy = append(attacker.BlockedBy, b.BlockerID)
	}
	g.SetPriority(g.ActivePlayer)
	return nil
}

// ResolveCombatDamage applies simultaneous combat damage per spec.md §4.1
// and sweeps state-based actions afterward.
func (e *Engine) ResolveCombatDamage(g *state.GameState) {
	if g.PreventAllCombatDamage {
		e.clearCombatFlags(g)
		e.CheckStateBasedActions(g)
		return
	}

	ap := g.Players[g.ActivePlayer]
	dp := g.Players[g.ActivePlayer.Other()]

	type pendingDamage struct {
		target *state.CardInstance
		amount int
	}
	var creatureDamage []pendingDamage
	var playerDamage int

	for _, attacker := range ap.Battlefield {
		if !attacker.Attacking {
			continue
		}
		tmpl, ok := e.Reg.Get(attacker.ScryfallID)
		if !ok {
			continue
		}
		power := catalog.EffectivePower(tmpl, attacker)
		if len(attacker.BlockedBy) == 0 {
			playerDamage += power
			continue
		}
		for _, blockerID := range attacker.BlockedBy {
			blocker, _ := dp.FindInZone(state.ZoneBattlefield, blockerID)
			if blocker == nil {
				continue
			}
			creatureDamage = append(creatureDamage, pendingDamage{blocker, power})
		}
	}
	for _, blocker := range dp.Battlefield {
		if !blocker.Blocking {
			continue
		}
		attacker, _ := ap.FindInZone(state.ZoneBattlefield, blocker.BlockingAttacker)
		if attacker == nil {
			continue
		}
		tmpl, ok := e.Reg.Get(blocker.ScryfallID)
		if !ok {
			continue
		}
		creatureDamage = append(creatureDamage, pendingDamage{attacker, catalog.EffectivePower(tmpl, blocker)})
	}

	for _, pd := range creatureDamage {
		pd.target.Damage += pd.amount
	}
	if playerDamage > 0 {
		dp.Life -= playerDamage
	}

	e.clearCombatFlags(g)
	e.CheckStateBasedActions(g)
}

func (e *Engine) clearCombatFlags(g *state.GameState) {
	for _, pid := range []state.PlayerID{state.Player, state.Opponent} {
		for _, ci := range g.Players[pid].Battlefield {
			ci.Attacking = false
			ci.Blocking = false
			ci.BlockedBy = nil
			ci.BlockingAttacker = ""
		}
	}
}
