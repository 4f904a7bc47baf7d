package action

import (
	"mtgsim/internal/engine"
	"mtgsim/internal/errors"
	"mtgsim/internal/state"
)

// Applier mutates GameState by applying one validated Action, delegating to
// the engine for every effectful step (spec.md §4.7: "applyAction is
// validator ∘ mutator: if validation fails, nothing changes").
type Applier struct {
	Gen *Generator
	Eng *engine.Engine
}

// NewApplier builds an Applier sharing one card registry across generation,
// validation, and the underlying engine.
func NewApplier(eng *engine.Engine) *Applier {
	return &Applier{Gen: NewGenerator(eng.Reg), Eng: eng}
}

// Apply validates act for pid, then mutates g. No mutation occurs if
// validation fails.
func (a *Applier) Apply(g *state.GameState, pid state.PlayerID, act Action) error {
	if err := a.Gen.Validate(g, pid, act); err != nil {
		return err
	}
	switch act.Kind {
	case KindPlayLand:
		return a.applyPlayLand(g, pid, act)
	case KindCastSpell:
		if err := a.Eng.CastSpell(g, pid, act.CardInstanceID, act.Targets, act.XValue); err != nil {
			return err
		}
		a.Eng.GrantPriorityAfterAction(g, pid)
		return nil
	case KindActivateAbility:
		if err := a.Eng.ActivateAbility(g, pid, act.SourceID, act.AbilityID, act.Targets); err != nil {
			return err
		}
		a.Eng.GrantPriorityAfterAction(g, pid)
		return nil
	case KindDeclareAttackers:
		return a.Eng.DeclareAttackers(g, act.Attackers)
	case KindDeclareBlockers:
		blocks := make([]engine.Block, len(act.Blocks))
		for i, b := range act.Blocks {
			blocks[i] = engine.Block{BlockerID: b.BlockerID, AttackerID: b.AttackerID}
		}
		return a.Eng.DeclareBlockers(g, blocks)
	case KindPassPriority:
		return a.Eng.PassPriority(g)
	case KindEndTurn:
		return a.applyEndTurn(g, pid)
	}
	return errors.InvalidAction("unknown action kind %q", act.Kind)
}

func (a *Applier) applyPlayLand(g *state.GameState, pid state.PlayerID, act Action) error {
	card, owner, zone := g.FindCard(act.CardInstanceID)
	if card == nil || zone != state.ZoneHand || owner != pid {
		return errors.InvalidAction("card %s is not in caster's hand", act.CardInstanceID)
	}
	tmpl, ok := a.Eng.Reg.Get(card.ScryfallID)
	if !ok || !tmpl.IsLand() {
		return errors.InvalidAction("card %s is not a land", act.CardInstanceID)
	}
	g.MoveCard(owner, act.CardInstanceID, state.ZoneHand, state.ZoneBattlefield, pid)
	g.Players[pid].LandsPlayedThisTurn++
	a.Eng.GrantPriorityAfterAction(g, pid)
	return nil
}

// applyEndTurn passes priority repeatedly until the current turn ends or the
// game is decided. Generator.Legal never offers END_TURN, so Apply's
// legality check rejects an END_TURN action before this is reached.
func (a *Applier) applyEndTurn(g *state.GameState, pid state.PlayerID) error {
	for !g.Outcome.Decided && g.ActivePlayer == pid {
		turn := g.TurnCount
		if err := a.Eng.PassPriority(g); err != nil {
			return err
		}
		if g.TurnCount != turn {
			break
		}
	}
	return nil
}
