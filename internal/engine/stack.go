package engine

import (
	"regexp"
	"strconv"

	"mtgsim/internal/catalog"
	"mtgsim/internal/spells"
	"mtgsim/internal/state"
	"mtgsim/internal/targeting"
	"mtgsim/internal/triggers"
)

var dealsDamageRe = regexp.MustCompile(`(?i)deals (\d+) damage`)

// ResolveTop resolves the object on top of the stack and pops it, following
// spec.md §4.2. Fizzle, countering, spell-registry dispatch, and the built-in
// damage fallback are all handled here; newly queued triggers are drained
// onto the stack before returning, and state-based actions are swept.
func (e *Engine) ResolveTop(g *state.GameState) error {
	so := g.TopOfStack()
	if so == nil {
		return nil
	}

	if ok, err := triggers.ResolveTriggerStackObject(g, so); ok {
		g.PopStack()
		if err != nil {
			return err
		}
		e.drainAndCheck(g)
		return nil
	}

	if so.Countered {
		e.resolveCountered(g, so)
		g.PopStack()
		e.drainAndCheck(g)
		return nil
	}

	reqs := targeting.ParseTargetRequirements(cardOracleText(e.Reg, so))
	recheck := targeting.Recheck(g, e.Reg, reqs, so.Controller, sourceColors(e.Reg, so), so.Targets)
	if recheck.AllIllegal {
		e.resolveCountered(g, so)
		g.PopStack()
		e.drainAndCheck(g)
		return nil
	}

	if err := e.applySpellEffect(g, so, recheck.LegalTargets); err != nil {
		return err
	}

	if so.IsSpell() {
		e.moveResolvedCardToDestination(g, so)
	}

	g.PopStack()
	e.drainAndCheck(g)
	return nil
}

func (e *Engine) resolveCountered(g *state.GameState, so *state.StackObject) {
	if so.Card == nil {
		return
	}
	dest := state.ZoneGraveyard
	if so.PutOnLibrary {
		dest = state.ZoneLibrary
	}
	card := so.Card
	card.Zone = dest
	p := g.Players[card.Owner]
	if dest == state.ZoneLibrary {
		p.Library = append([]*state.CardInstance{card}, p.Library...)
	} else {
		p.Graveyard = append(p.Graveyard, card)
	}
}

func (e *Engine) applySpellEffect(g *state.GameState, so *state.StackObject, legalTargets []state.TargetRef) error {
	name := cardName(e.Reg, so)
	if resolver, ok := spells.Lookup(name); ok {
		return resolver(g, e.Eff, so, legalTargets)
	}
	if name == "" {
		return nil // activated ability with no registered spell-style resolver handled elsewhere
	}
	// Built-in fallback: a numeric "deals N damage" clause with no registry
	// entry still resolves via plain damage, per spec.md §4.2 step 3.
	if n, ok := parseFlatDamage(cardOracleText(e.Reg, so)); ok {
		for _, t := range legalTargets {
			e.Eff.DamageSingle(g, t, n)
		}
	}
	return nil
}

func (e *Engine) moveResolvedCardToDestination(g *state.GameState, so *state.StackObject) {
	tmpl, ok := e.Reg.Get(so.Card.ScryfallID)
	if !ok {
		return
	}
	if tmpl.IsPermanent() {
		e.Eff.EntersBattlefield(g, so)
		return
	}
	g.MoveStackObjectToZone(so, state.ZoneGraveyard)
}

// drainAndCheck drains any triggers queued by the resolution just performed
// onto the stack (stacked mode is canonical per DESIGN.md), then sweeps
// state-based actions.
func (e *Engine) drainAndCheck(g *state.GameState) {
	triggers.DrainToStack(g, triggers.ModeStacked, g.NextStackID)
	e.CheckStateBasedActions(g)
}

func cardName(reg catalog.Registry, so *state.StackObject) string {
	if so.Card == nil {
		return ""
	}
	tmpl, ok := reg.Get(so.Card.ScryfallID)
	if !ok {
		return ""
	}
	return tmpl.Name
}

func cardOracleText(reg catalog.Registry, so *state.StackObject) string {
	if so.Card == nil {
		return ""
	}
	tmpl, ok := reg.Get(so.Card.ScryfallID)
	if !ok {
		return ""
	}
	return tmpl.OracleText
}

func sourceColors(reg catalog.Registry, so *state.StackObject) []catalog.MtgColor {
	if so.Card == nil {
		return nil
	}
	tmpl, ok := reg.Get(so.Card.ScryfallID)
	if !ok {
		return nil
	}
	return tmpl.Colors
}

// parseFlatDamage recognizes "deals N damage" in oracle text as a built-in
// fallback when no spell-registry entry exists for a card.
func parseFlatDamage(oracleText string) (int, bool) {
	m := dealsDamageRe.FindStringSubmatch(oracleText)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
