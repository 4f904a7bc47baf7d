// Package effects is the pure state-mutating helper library every spell and
// activated ability resolves through (spec.md §4.5). Every function mutates
// *state.GameState in place and returns a summary of affected instances;
// nothing here touches the stack or priority, which is the engine's job.
package effects

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/state"
	"mtgsim/internal/triggers"
)

// Context carries the read-only dependencies every effect needs without
// each function threading them through individually.
type Context struct {
	Reg catalog.Registry
}

// DestroyResult summarizes a destroy/damage-death effect.
type DestroyResult struct {
	Destroyed []state.InstanceID
}

// Destroy moves a single permanent to its owner's graveyard and registers a
// DIES trigger. No-op (zero-value result) if the instance is not found on a
// battlefield.
func (c Context) Destroy(g *state.GameState, id state.InstanceID) DestroyResult {
	card, owner, zone := g.FindCard(id)
	if card == nil || zone != state.ZoneBattlefield {
		return DestroyResult{}
	}
	return c.destroyInstance(g, card, owner)
}

func (c Context) destroyInstance(g *state.GameState, card *state.CardInstance, owner state.PlayerID) DestroyResult {
	tmpl, _ := c.Reg.Get(card.ScryfallID)
	id := card.InstanceID
	g.MoveCard(owner, id, state.ZoneBattlefield, state.ZoneGraveyard, owner)
	if tmpl != nil {
		triggers.Raise(g, triggers.EventDies, tmpl.Name, id, owner)
	}
	return DestroyResult{Destroyed: []state.InstanceID{id}}
}

// DestroyAllMatching destroys every battlefield creature for which filter
// returns true. All removals happen before any DIES trigger is queued, so
// simultaneous deaths (e.g. a board wipe) are atomic per spec.md §8.
func (c Context) DestroyAllMatching(g *state.GameState, filter func(*catalog.CardTemplate, *state.CardInstance) bool) DestroyResult {
	return c.destroyAllPermanentsMatching(g, func(tmpl *catalog.CardTemplate, ci *state.CardInstance) bool {
		return tmpl.IsCreature() && filter(tmpl, ci)
	})
}

// destroyAllPermanentsMatching is the unrestricted version used by effects
// that can destroy non-creature permanents (e.g. land destruction). Like
// every other multi-player sweep in this file, it visits the active player's
// permanents before the other's (spec.md §5), so the DIES triggers it queues
// come out in that stable order.
func (c Context) destroyAllPermanentsMatching(g *state.GameState, filter func(*catalog.CardTemplate, *state.CardInstance) bool) DestroyResult {
	var targets []struct {
		card  *state.CardInstance
		owner state.PlayerID
	}
	for _, pid := range []state.PlayerID{g.ActivePlayer, g.ActivePlayer.Other()} {
		p := g.Players[pid]
		for _, ci := range p.Battlefield {
			tmpl, ok := c.Reg.Get(ci.ScryfallID)
			if !ok || !filter(tmpl, ci) {
				continue
			}
			targets = append(targets, struct {
				card  *state.CardInstance
				owner state.PlayerID
			}{ci, pid})
		}
	}
	var res DestroyResult
	for _, t := range targets {
		sub := c.destroyInstance(g, t.card, t.owner)
		res.Destroyed = append(res.Destroyed, sub.Destroyed...)
	}
	return res
}

// DestroyAllCreatures implements "Destroy all creatures" (Wrath of God).
func (c Context) DestroyAllCreatures(g *state.GameState) DestroyResult {
	return c.DestroyAllMatching(g, func(*catalog.CardTemplate, *state.CardInstance) bool { return true })
}

// DestroyByColor destroys every creature of the given color.
func (c Context) DestroyByColor(g *state.GameState, color catalog.MtgColor) DestroyResult {
	return c.DestroyAllMatching(g, func(t *catalog.CardTemplate, _ *state.CardInstance) bool { return t.HasColor(color) })
}

// DestroyBySubtype destroys every permanent (not only creatures) whose type
// line contains the given subtype, e.g. land destruction by basic type.
func (c Context) DestroyBySubtype(g *state.GameState, subtype string) DestroyResult {
	return c.destroyAllPermanentsMatching(g, func(tmpl *catalog.CardTemplate, _ *state.CardInstance) bool {
		return contains(tmpl.TypeLine, subtype)
	})
}

// DestroyLandsExceptName destroys every land whose name differs from
// exceptName (Flood's "Destroy all non-Island lands").
func (c Context) DestroyLandsExceptName(g *state.GameState, exceptName string) DestroyResult {
	return c.destroyAllPermanentsMatching(g, func(tmpl *catalog.CardTemplate, _ *state.CardInstance) bool {
		return tmpl.IsLand() && tmpl.Name != exceptName
	})
}

func contains(haystack, needle string) bool {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return true
		}
	}
	return len(needle) == 0
}

// Bounce returns a permanent to its owner's hand.
func (c Context) Bounce(g *state.GameState, id state.InstanceID) bool {
	card, owner, zone := g.FindCard(id)
	if card == nil || zone != state.ZoneBattlefield {
		return false
	}
	g.MoveCard(owner, id, state.ZoneBattlefield, state.ZoneHand, owner)
	return true
}

// ExileWithLifegain exiles a permanent and, if lifegain > 0, grants it to
// controller.
func (c Context) ExileWithLifegain(g *state.GameState, id state.InstanceID, controller state.PlayerID, lifegain int) bool {
	card, owner, zone := g.FindCard(id)
	if card == nil || zone != state.ZoneBattlefield {
		return false
	}
	g.MoveCard(owner, id, state.ZoneBattlefield, state.ZoneExile, owner)
	if lifegain > 0 {
		g.Players[controller].Life += lifegain
	}
	return true
}

// TapAllMatching taps every battlefield permanent passing filter and
// registers a BECOMES_TAPPED trigger for each one newly tapped.
func (c Context) TapAllMatching(g *state.GameState, filter func(*catalog.CardTemplate, *state.CardInstance) bool) []state.InstanceID {
	var tapped []state.InstanceID
	for _, pid := range []state.PlayerID{g.ActivePlayer, g.ActivePlayer.Other()} {
		for _, ci := range g.Players[pid].Battlefield {
			tmpl, ok := c.Reg.Get(ci.ScryfallID)
			if !ok || !filter(tmpl, ci) || ci.Tapped {
				continue
			}
			ci.Tapped = true
			tapped = append(tapped, ci.InstanceID)
			triggers.Raise(g, triggers.EventBecomesTapped, tmpl.Name, ci.InstanceID, pid)
		}
	}
	return tapped
}

// UntapAllMatching untaps every battlefield permanent passing filter.
// basicLandsOnly, when true, additionally requires the template be a land
// with no nonbasic supertype (none of the starter lands are nonbasic, so
// this is a pure narrowing filter here).
func (c Context) UntapAllMatching(g *state.GameState, basicLandsOnly bool, filter func(*catalog.CardTemplate, *state.CardInstance) bool) []state.InstanceID {
	var untapped []state.InstanceID
	for _, pid := range []state.PlayerID{g.ActivePlayer, g.ActivePlayer.Other()} {
		for _, ci := range g.Players[pid].Battlefield {
			tmpl, ok := c.Reg.Get(ci.ScryfallID)
			if !ok {
				continue
			}
			if basicLandsOnly && (!tmpl.IsLand() || !contains(tmpl.TypeLine, "Basic")) {
				continue
			}
			if !filter(tmpl, ci) {
				continue
			}
			if ci.Tapped {
				ci.Tapped = false
				untapped = append(untapped, ci.InstanceID)
			}
		}
	}
	return untapped
}

// DamageAll deals n damage to creatures (optionally excluding/including
// flyers) and, if toPlayers is true, to both players. Lethal damage is left
// for the engine's state-based action sweep to convert into deaths.
func (c Context) DamageAll(g *state.GameState, n int, flying flyingFilter, toPlayers bool) []state.InstanceID {
	var hit []state.InstanceID
	for _, pid := range []state.PlayerID{g.ActivePlayer, g.ActivePlayer.Other()} {
		for _, ci := range g.Players[pid].Battlefield {
			tmpl, ok := c.Reg.Get(ci.ScryfallID)
			if !ok || !tmpl.IsCreature() {
				continue
			}
			isFlying := tmpl.HasKeyword(catalog.KeywordFlying)
			switch flying {
			case ExcludeFlying:
				if isFlying {
					continue
				}
			case OnlyFlying:
				if !isFlying {
					continue
				}
			}
			ci.Damage += n
			hit = append(hit, ci.InstanceID)
			triggers.Raise(g, triggers.EventDealtDamage, tmpl.Name, ci.InstanceID, pid)
		}
		if toPlayers {
			g.Players[pid].Life -= n
		}
	}
	return hit
}

type flyingFilter int

const (
	AllCreatures flyingFilter = iota
	ExcludeFlying
	OnlyFlying
)

// DamageSingle deals n damage to a single target, which may be a player or a
// creature instance.
func (c Context) DamageSingle(g *state.GameState, target state.TargetRef, n int) {
	switch target.Kind {
	case state.TargetKindPlayer:
		g.Players[target.PlayerID].Life -= n
	case state.TargetKindCard:
		card, _, zone := g.FindCard(target.CardID)
		if card == nil || zone != state.ZoneBattlefield {
			return
		}
		card.Damage += n
		if tmpl, ok := c.Reg.Get(card.ScryfallID); ok {
			triggers.Raise(g, triggers.EventDealtDamage, tmpl.Name, card.InstanceID, card.Controller)
		}
	}
}

// TeamPump adds a temporary power/toughness modification to every creature
// passing filter, lasting until end of turn.
func (c Context) TeamPump(g *state.GameState, dp, dt int, filter func(*catalog.CardTemplate, *state.CardInstance) bool) []state.InstanceID {
	var affected []state.InstanceID
	for _, pid := range []state.PlayerID{g.ActivePlayer, g.ActivePlayer.Other()} {
		for _, ci := range g.Players[pid].Battlefield {
			tmpl, ok := c.Reg.Get(ci.ScryfallID)
			if !ok || !tmpl.IsCreature() || !filter(tmpl, ci) {
				continue
			}
			ci.AddModification(state.TemporaryModification{DeltaPower: dp, DeltaToughness: dt, Until: state.UntilEndOfTurn})
			affected = append(affected, ci.InstanceID)
		}
	}
	return affected
}

// Draw moves n cards from library to hand, reporting whether the player was
// forced to draw from an empty library (the caller applies the resulting
// loss via state-based actions, per spec.md §4.2).
func (c Context) Draw(g *state.GameState, pid state.PlayerID, n int) (drawn int, emptyLibrary bool) {
	for i := 0; i < n; i++ {
		if _, ok := g.Draw(pid); !ok {
			return drawn, true
		}
		drawn++
	}
	return drawn, false
}

// DiscardDeterministic discards the first n cards in hand order.
func (c Context) DiscardDeterministic(g *state.GameState, pid state.PlayerID, n int) []state.InstanceID {
	p := g.Players[pid]
	var out []state.InstanceID
	for i := 0; i < n && len(p.Hand) > 0; i++ {
		id := p.Hand[0].InstanceID
		g.MoveCard(pid, id, state.ZoneHand, state.ZoneGraveyard, pid)
		out = append(out, id)
	}
	return out
}

// DiscardRandom discards n cards chosen uniformly at random using the game's
// seeded RNG. Reserved for non-reward-shaped sessions; reward-shaped RL
// sessions must use DiscardDeterministic by default (spec.md §4.5).
func (c Context) DiscardRandom(g *state.GameState, pid state.PlayerID, n int) []state.InstanceID {
	p := g.Players[pid]
	var out []state.InstanceID
	for i := 0; i < n && len(p.Hand) > 0; i++ {
		idx := g.RNG.IntN(len(p.Hand))
		id := p.Hand[idx].InstanceID
		g.MoveCard(pid, id, state.ZoneHand, state.ZoneGraveyard, pid)
		out = append(out, id)
	}
	return out
}

// SearchLibrary finds the first card in library order for which match
// returns true, moves it to the destination zone, and (if shuffleAfter) puts
// the library back into a Fisher-Yates-shuffled order. Deterministic "first
// match" semantics, per spec.md §4.5.
func (c Context) SearchLibrary(g *state.GameState, pid state.PlayerID, match func(*catalog.CardTemplate) bool, dest state.Zone, shuffleAfter bool) (state.InstanceID, bool) {
	p := g.Players[pid]
	for _, ci := range p.Library {
		tmpl, ok := c.Reg.Get(ci.ScryfallID)
		if !ok || !match(tmpl) {
			continue
		}
		g.MoveCard(pid, ci.InstanceID, state.ZoneLibrary, dest, pid)
		if dest == state.ZoneBattlefield {
			triggers.Raise(g, triggers.EventEntersBattlefield, tmpl.Name, ci.InstanceID, pid)
		}
		if shuffleAfter {
			c.ShuffleLibrary(g, pid)
		}
		return ci.InstanceID, true
	}
	if shuffleAfter {
		c.ShuffleLibrary(g, pid)
	}
	return "", false
}

// GraveyardRecursion finds the first matching card in a player's graveyard
// and moves it to dest (typically hand, for reanimation-adjacent effects, to
// the battlefield).
func (c Context) GraveyardRecursion(g *state.GameState, pid state.PlayerID, match func(*catalog.CardTemplate) bool, dest state.Zone) (state.InstanceID, bool) {
	p := g.Players[pid]
	for _, ci := range p.Graveyard {
		tmpl, ok := c.Reg.Get(ci.ScryfallID)
		if !ok || !match(tmpl) {
			continue
		}
		g.MoveCard(pid, ci.InstanceID, state.ZoneGraveyard, dest, pid)
		if dest == state.ZoneBattlefield {
			triggers.Raise(g, triggers.EventEntersBattlefield, tmpl.Name, ci.InstanceID, pid)
		}
		return ci.InstanceID, true
	}
	return "", false
}

// ShuffleLibrary performs a deterministic Fisher-Yates shuffle over a
// player's library using the game's seeded RNG, so identical (seed, action
// sequence) pairs always reproduce identical shuffles.
func (c Context) ShuffleLibrary(g *state.GameState, pid state.PlayerID) {
	lib := g.Players[pid].Library
	g.RNG.Shuffle(len(lib), func(i, j int) { lib[i], lib[j] = lib[j], lib[i] })
}

// EntersBattlefield moves a stack object's card onto the battlefield and
// raises its ENTERS_BATTLEFIELD trigger. Called by the engine after a
// permanent spell resolves.
func (c Context) EntersBattlefield(g *state.GameState, so *state.StackObject) {
	if so.Card == nil {
		return
	}
	g.MoveStackObjectToZone(so, state.ZoneBattlefield)
	if tmpl, ok := c.Reg.Get(so.Card.ScryfallID); ok {
		triggers.Raise(g, triggers.EventEntersBattlefield, tmpl.Name, so.Card.InstanceID, so.Controller)
	}
}
