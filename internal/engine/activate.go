package engine

import (
	"mtgsim/internal/abilities"
	"mtgsim/internal/errors"
	"mtgsim/internal/state"
	"mtgsim/internal/targeting"
)

// ActivateAbility pays an ability's cost and puts it on the stack (spec.md
// §4.6: "Costs are paid atomically before target choice is locked").
func (e *Engine) ActivateAbility(g *state.GameState, controller state.PlayerID, sourceID state.InstanceID, abilityID string, targets []state.TargetRef) error {
	card, owner, zone := g.FindCard(sourceID)
	if card == nil || zone != state.ZoneBattlefield || owner != controller {
		return errors.InvalidAction("source %s is not a controlled battlefield permanent", sourceID)
	}
	tmpl, ok := e.Reg.Get(card.ScryfallID)
	if !ok {
		return errors.UnknownCardTemplate(card.ScryfallID)
	}

	var tmplAbility *abilities.Template
	for _, a := range abilities.For(tmpl.Name) {
		a := a
		if a.ID == abilityID {
			tmplAbility = &a
			break
		}
	}
	if tmplAbility == nil {
		return errors.InvalidAction("unknown ability %s on %s", abilityID, tmpl.Name)
	}
	if !CanCastTiming(g, controller, tmplAbility.Speed == abilities.SpeedInstant) {
		return errors.InvalidAction("ability %s cannot be activated at this timing", abilityID)
	}

	p := g.Players[controller]
	if !abilities.CanPayCost(p, card, tmplAbility.Cost) {
		return errors.InvalidAction("cannot pay cost for ability %s", abilityID)
	}

	if len(tmplAbility.Requirements) > 0 {
		tuples := targeting.EnumerateTuples(g, e.Reg, tmplAbility.Requirements, controller, tmpl.Colors)
		if len(tuples) == 0 {
			return errors.InvalidAction("no legal targets for ability %s", abilityID)
		}
	}

	if err := abilities.PayCost(g, p, card, tmplAbility.Cost); err != nil {
		return err
	}

	reqs := tmplAbility.Requirements
	sourceColorsSnapshot := tmpl.Colors
	so := &state.StackObject{
		ID:         g.NextStackID(),
		Controller: controller,
		SourceID:   sourceID,
		AbilityID:  abilityID,
		Targets:    targets,
		TriggerApply: func(gs *state.GameState, legalTargets []state.TargetRef) error {
			return tmplAbility.Effect(gs, e.Eff, sourceID, controller, legalTargets)
		},
	}
	if len(reqs) > 0 {
		so.Recheck = func(gs *state.GameState) state.RecheckOutcome {
			r := targeting.Recheck(gs, e.Reg, reqs, controller, sourceColorsSnapshot, targets)
			return state.RecheckOutcome{LegalTargets: r.LegalTargets, AllIllegal: r.AllIllegal}
		}
	}
	g.PushStack(so)
	g.SetPriority(controller)
	return nil
}
