// Package abilities declares activated abilities per card name (spec.md
// §4.6) and applies their costs and effects. Mirrors internal/spells'
// name-keyed registry shape, kept separate because an activated ability's
// cost payment (mana + tap + sacrifice) has no analogue in spell casting.
package abilities

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/mana"
	"mtgsim/internal/state"
	"mtgsim/internal/targeting"
)

// Speed controls the timing restriction an activation follows — the same
// sorcery/instant split spells use (spec.md §4.2 "Sorcery vs instant timing").
type Speed string

const (
	SpeedInstant Speed = "instant"
	SpeedSorcery Speed = "sorcery"
)

// Cost is what a permanent's controller must pay to activate one of its
// abilities.
type Cost struct {
	Mana       mana.Cost
	TapSelf    bool
	Sacrifice  bool
}

// Template is one activated ability a CardTemplate offers.
type Template struct {
	ID           string
	CardName     string
	Speed        Speed
	Cost         Cost
	Requirements []targeting.TargetRequirement
	Effect       func(g *state.GameState, eff effects.Context, sourceID state.InstanceID, controller state.PlayerID, targets []state.TargetRef) error
}

var registry = map[string][]Template{}

func register(t Template) {
	registry[t.CardName] = append(registry[t.CardName], t)
}

// For returns every activated ability a card name declares.
func For(cardName string) []Template {
	return registry[cardName]
}

// CanPayCost reports whether a permanent can currently pay the given cost:
// TapSelf requires the permanent be untapped and not summoning sick (unless
// the ability itself doesn't require tapping, which none of these do), and
// mana must be affordable from the controller's current mana pool.
func CanPayCost(p *state.Player, ci *state.CardInstance, cost Cost) bool {
	if cost.TapSelf && (ci.Tapped || ci.SummoningSick) {
		return false
	}
	if cost.Sacrifice && ci == nil {
		return false
	}
	return p.ManaPool.CanPay(cost.Mana, 0)
}

// PayCost atomically applies TapSelf/Sacrifice/mana cost. Callers must have
// already confirmed CanPayCost.
func PayCost(g *state.GameState, p *state.Player, ci *state.CardInstance, cost Cost) error {
	if cost.TapSelf {
		ci.Tapped = true
	}
	if err := p.ManaPool.Pay(cost.Mana, 0); err != nil {
		return err
	}
	if cost.Sacrifice {
		g.MoveCard(p.ID, ci.InstanceID, state.ZoneBattlefield, state.ZoneGraveyard, p.ID)
	}
	return nil
}
