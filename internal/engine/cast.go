package engine

import (
	"mtgsim/internal/errors"
	"mtgsim/internal/mana"
	"mtgsim/internal/state"
	"mtgsim/internal/targeting"
)

// CastSpell implements spec.md §4.2's five-step cast sequence. targets must
// already be a legal tuple (the action layer enumerates and validates
// before calling this). xValue is ignored for non-X spells.
func (e *Engine) CastSpell(g *state.GameState, caster state.PlayerID, instanceID state.InstanceID, targets []state.TargetRef, xValue int) error {
	card, owner, zone := g.FindCard(instanceID)
	if card == nil || zone != state.ZoneHand || owner != caster {
		return errors.InvalidAction("card %s is not in caster's hand", instanceID)
	}
	tmpl, ok := e.Reg.Get(card.ScryfallID)
	if !ok {
		return errors.UnknownCardTemplate(card.ScryfallID)
	}

	reqs := targeting.ParseTargetRequirements(tmpl.OracleText)
	if len(reqs) > 0 {
		tuples := targeting.EnumerateTuples(g, e.Reg, reqs, caster, tmpl.Colors)
		if len(tuples) == 0 {
			hasNonOptional := false
			for _, r := range reqs {
				if !r.Optional {
					hasNonOptional = true
				}
			}
			if hasNonOptional {
				return errors.InvalidAction("no legal targets for %s", tmpl.Name)
			}
		}
	}

	cost := mana.ParseCost(tmpl.ManaCost)
	if !cost.HasX {
		xValue = 0
	}
	if !g.Players[caster].ManaPool.CanPay(cost, xValue) {
		return errors.InvalidAction("insufficient mana to cast %s", tmpl.Name)
	}

	g.MoveCard(owner, instanceID, state.ZoneHand, state.ZoneStack, caster)
	so := &state.StackObject{
		ID:         g.NextStackID(),
		Controller: caster,
		Card:       card,
		XValue:     xValue,
		Targets:    targets,
	}
	if err := g.Players[caster].ManaPool.Pay(cost, xValue); err != nil {
		return errors.InvalidAction("insufficient mana to cast %s", tmpl.Name)
	}
	g.PushStack(so)
	g.SetPriority(caster)
	return nil
}

// CanCastTiming reports whether a card may legally be cast right now, per
// spec.md §4.2's sorcery/instant timing rule.
func CanCastTiming(g *state.GameState, caster state.PlayerID, isInstant bool) bool {
	if isInstant {
		pid, ok := g.PriorityPlayer()
		return ok && pid == caster
	}
	return g.ActivePlayer == caster && len(g.Stack) == 0 &&
		(g.Phase == state.PhaseMain1 || g.Phase == state.PhaseMain2)
}
