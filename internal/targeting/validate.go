package targeting

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/state"
)

// Chosen is a single concrete target choice, already resolved to one of a
// player, a CardInstance, or a stack object.
type Chosen = state.TargetRef

// Validate checks one chosen target against its requirement for the given
// spell/ability source and controller. It implements the five-step
// validation pipeline (spec.md §4.4: resolve, zone check, protection/
// hexproof/shroud, type check, restriction check).
func Validate(g *state.GameState, reg catalog.Registry, req TargetRequirement, sourceController state.PlayerID, sourceColors []catalog.MtgColor, target Chosen) bool {
	switch target.Kind {
	case state.TargetKindPlayer:
		return validatePlayerTarget(req, target.PlayerID)
	case state.TargetKindStack:
		return validateStackTarget(g, reg, req, target.StackID)
	case state.TargetKindCard:
		return validateCardTarget(g, reg, req, sourceController, sourceColors, target.CardID)
	}
	return false
}

func validatePlayerTarget(req TargetRequirement, pid state.PlayerID) bool {
	switch req.TargetType {
	case TypePlayer, TypeAny:
		return true
	case TypeOpponent:
		// Opponent-ness is relative to the caster; enumeration only ever
		// offers the caster's actual opponent as a candidate (see
		// candidatesFor), so reaching here means it already matched.
		return true
	}
	return false
}

func validateStackTarget(g *state.GameState, reg catalog.Registry, req TargetRequirement, id state.StackID) bool {
	var so *state.StackObject
	for _, s := range g.Stack {
		if s.ID == id {
			so = s
			break
		}
	}
	if so == nil || !so.IsSpell() {
		return false
	}
	switch req.TargetType {
	case TypeSpell:
		return true
	case TypeCreatureSpell:
		if so.Card == nil {
			return false
		}
		tmpl, ok := reg.Get(so.Card.ScryfallID)
		return ok && tmpl.IsCreature()
	}
	return false
}

func validateCardTarget(g *state.GameState, reg catalog.Registry, req TargetRequirement, sourceController state.PlayerID, sourceColors []catalog.MtgColor, id state.InstanceID) bool {
	card, _, zone := g.FindCard(id)
	if card == nil {
		return false
	}
	if req.Zone != ZoneAny && string(req.Zone) != string(zone) {
		return false
	}
	tmpl, ok := reg.Get(card.ScryfallID)
	if !ok {
		return false
	}

	if zone == state.ZoneBattlefield {
		if tmpl.HasKeyword(catalog.KeywordHexproof) && card.Controller != sourceController {
			return false
		}
		if tmpl.HasKeyword(catalog.KeywordShroud) {
			return false
		}
		protColors, allColors := tmpl.ProtectionFromColors()
		if allColors && len(sourceColors) > 0 {
			return false
		}
		for _, pc := range protColors {
			for _, sc := range sourceColors {
				if pc == sc {
					return false
				}
			}
		}
	}

	if !matchesType(req.TargetType, tmpl) {
		return false
	}
	for _, r := range req.Restrictions {
		if !matchesRestriction(r, card, tmpl, sourceController) {
			return false
		}
	}
	return true
}

func matchesType(t TargetType, tmpl *catalog.CardTemplate) bool {
	switch t {
	case TypeAny:
		return tmpl.IsCreature()
	case TypeCreature:
		return tmpl.IsCreature()
	case TypePermanent:
		return tmpl.IsPermanent()
	case TypeArtifact:
		return tmpl.IsArtifact()
	case TypeEnchantment:
		return tmpl.IsEnchantment()
	case TypeLand:
		return tmpl.IsLand()
	case TypeArtifactOrEnchant:
		return tmpl.IsArtifact() || tmpl.IsEnchantment()
	}
	return false
}

func matchesRestriction(r TargetRestriction, card *state.CardInstance, tmpl *catalog.CardTemplate, sourceController state.PlayerID) bool {
	switch r.Kind {
	case RestrictionColor:
		has := tmpl.HasColor(catalog.MtgColor(r.Color))
		if r.Negated {
			return !has
		}
		return has
	case RestrictionController:
		switch r.Controller {
		case ControllerYou:
			return card.Controller == sourceController
		case ControllerOpponent:
			return card.Controller != sourceController
		}
		return false
	case RestrictionCombat:
		switch r.Combat {
		case CombatAttacking:
			return card.Attacking
		case CombatBlocking:
			return card.Blocking
		case CombatAttackingOrBlocking:
			return card.Attacking || card.Blocking
		}
		return false
	case RestrictionTapped:
		return card.Tapped
	case RestrictionUntapped:
		return !card.Tapped
	case RestrictionNonartifact:
		return !tmpl.IsArtifact()
	case RestrictionNonland:
		return !tmpl.IsLand()
	case RestrictionKeyword:
		return tmpl.HasKeyword(r.Keyword)
	case RestrictionSubtype:
		return stringsContains(tmpl.TypeLine, r.Subtype)
	}
	return false
}

func stringsContains(haystack, needle string) bool {
	return len(needle) == 0 || indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
