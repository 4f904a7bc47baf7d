package action

import (
	"fmt"

	"mtgsim/internal/abilities"
	"mtgsim/internal/catalog"
	"mtgsim/internal/engine"
	"mtgsim/internal/mana"
	"mtgsim/internal/state"
	"mtgsim/internal/targeting"
)

// MaxActions bounds the legal-action list and the RL action mask length
// (spec.md §6 "MAX_ACTIONS").
const MaxActions = 200

// maxXCandidates bounds how many distinct X values an {X} spell offers,
// keeping the legal-action list comfortably under MaxActions even with
// several X spells in hand simultaneously.
const maxXCandidates = 6

// Generator produces the legal-action list for a player in the current state.
type Generator struct {
	Reg catalog.Registry
}

// NewGenerator builds a Generator over the given card registry.
func NewGenerator(reg catalog.Registry) *Generator {
	return &Generator{Reg: reg}
}

// Legal returns every Action the given player may currently take, honoring
// timing, priority, phase/step, land-per-turn, mana, and target legality
// (spec.md §4.7). The result is truncated to MaxActions if it would
// otherwise exceed it (a defensive bound; the starter catalog never gets
// close).
func (gn *Generator) Legal(g *state.GameState, pid state.PlayerID) []Action {
	var out []Action

	if g.Outcome.Decided {
		return out
	}

	switch g.Step {
	case state.StepDeclareAttackers:
		if g.ActivePlayer == pid {
			out = append(out, gn.combatAttackerActions(g, pid)...)
			return capActions(out)
		}
	case state.StepDeclareBlockers:
		if g.ActivePlayer.Other() == pid {
			out = append(out, gn.combatBlockerActions(g, pid)...)
			return capActions(out)
		}
	}

	priorityPid, hasPriority := g.PriorityPlayer()
	if !hasPriority || priorityPid != pid {
		return out
	}

	out = append(out, gn.playLandActions(g, pid)...)
	out = append(out, gn.castSpellActions(g, pid)...)
	out = append(out, gn.activateAbilityActions(g, pid)...)
	out = append(out, Action{Kind: KindPassPriority, Description: "pass priority"})

	return capActions(out)
}

func capActions(actions []Action) []Action {
	if len(actions) > MaxActions {
		return actions[:MaxActions]
	}
	return actions
}

func (gn *Generator) playLandActions(g *state.GameState, pid state.PlayerID) []Action {
	p := g.Players[pid]
	if p.LandsPlayedThisTurn >= 1 || g.ActivePlayer != pid ||
		!(g.Phase == state.PhaseMain1 || g.Phase == state.PhaseMain2) || len(g.Stack) > 0 {
		return nil
	}
	var out []Action
	for _, ci := range p.Hand {
		tmpl, ok := gn.Reg.Get(ci.ScryfallID)
		if !ok || !tmpl.IsLand() {
			continue
		}
		out = append(out, Action{
			Kind: KindPlayLand, CardInstanceID: ci.InstanceID,
			Description: fmt.Sprintf("play %s", tmpl.Name),
		})
	}
	return out
}

func (gn *Generator) castSpellActions(g *state.GameState, pid state.PlayerID) []Action {
	p := g.Players[pid]
	var out []Action
	for _, ci := range p.Hand {
		tmpl, ok := gn.Reg.Get(ci.ScryfallID)
		if !ok || tmpl.IsLand() {
			continue
		}
		if !engine.CanCastTiming(g, pid, tmpl.IsInstant()) {
			continue
		}
		reqs := targeting.ParseTargetRequirements(tmpl.OracleText)
		cost := mana.ParseCost(tmpl.ManaCost)

		xValues := []int{0}
		if cost.HasX {
			xValues = xCandidates(p.ManaPool.Total()-cost.ConvertedManaCost(), maxXCandidates)
		}
		for _, x := range xValues {
			if !p.ManaPool.CanPay(cost, x) {
				continue
			}
			tuples := targeting.EnumerateTuples(g, gn.Reg, reqs, pid, tmpl.Colors)
			if len(tuples) == 0 && hasNonOptional(reqs) {
				continue
			}
			if len(tuples) == 0 {
				tuples = [][]targeting.Chosen{{}}
			}
			for _, tuple := range tuples {
				out = append(out, Action{
					Kind: KindCastSpell, CardInstanceID: ci.InstanceID,
					Targets: tuple, HasX: cost.HasX, XValue: x,
					Description: fmt.Sprintf("cast %s", tmpl.Name),
				})
			}
		}
	}
	return out
}

func hasNonOptional(reqs []targeting.TargetRequirement) bool {
	for _, r := range reqs {
		if !r.Optional {
			return true
		}
	}
	return false
}

func xCandidates(maxAffordable, limit int) []int {
	if maxAffordable < 0 {
		maxAffordable = 0
	}
	if maxAffordable > limit {
		maxAffordable = limit
	}
	out := make([]int, 0, maxAffordable+1)
	for x := 0; x <= maxAffordable; x++ {
		out = append(out, x)
	}
	return out
}

func (gn *Generator) activateAbilityActions(g *state.GameState, pid state.PlayerID) []Action {
	p := g.Players[pid]
	var out []Action
	for _, ci := range p.Battlefield {
		tmpl, ok := gn.Reg.Get(ci.ScryfallID)
		if !ok {
			continue
		}
		for _, a := range abilities.For(tmpl.Name) {
			if !engine.CanCastTiming(g, pid, a.Speed == abilities.SpeedInstant) {
				continue
			}
			if !abilities.CanPayCost(p, ci, a.Cost) {
				continue
			}
			tuples := targeting.EnumerateTuples(g, gn.Reg, a.Requirements, pid, tmpl.Colors)
			if len(tuples) == 0 {
				if hasNonOptional(a.Requirements) {
					continue
				}
				tuples = [][]targeting.Chosen{{}}
			}
			for _, tuple := range tuples {
				out = append(out, Action{
					Kind: KindActivateAbility, SourceID: ci.InstanceID, AbilityID: a.ID,
					Targets:     tuple,
					Description: fmt.Sprintf("activate %s's ability", tmpl.Name),
				})
			}
		}
	}
	return out
}

// combatAttackerActions offers "no attackers", each legal singleton
// attacker, and "all attackers" (spec.md §4.7's minimum enumeration).
func (gn *Generator) combatAttackerActions(g *state.GameState, pid state.PlayerID) []Action {
	p := g.Players[pid]
	var eligible []state.InstanceID
	for _, ci := range p.Battlefield {
		tmpl, ok := gn.Reg.Get(ci.ScryfallID)
		if !ok || !tmpl.IsCreature() || ci.Tapped || ci.SummoningSick {
			continue
		}
		eligible = append(eligible, ci.InstanceID)
	}
	out := []Action{{Kind: KindDeclareAttackers, Attackers: nil, Description: "declare no attackers"}}
	for _, id := range eligible {
		out = append(out, Action{Kind: KindDeclareAttackers, Attackers: []state.InstanceID{id}, Description: "attack with one creature"})
	}
	if len(eligible) > 1 {
		out = append(out, Action{Kind: KindDeclareAttackers, Attackers: eligible, Description: "attack with all creatures"})
	}
	return out
}

// combatBlockerActions offers "no blocks", each legal singleton block, and
// "block every attacker with an available blocker" (best-effort one-to-one).
func (gn *Generator) combatBlockerActions(g *state.GameState, pid state.PlayerID) []Action {
	dp := g.Players[pid]
	ap := g.Players[pid.Other()]

	var attackers []*state.CardInstance
	for _, ci := range ap.Battlefield {
		if ci.Attacking {
			attackers = append(attackers, ci)
		}
	}
	var blockers []*state.CardInstance
	for _, ci := range dp.Battlefield {
		tmpl, ok := gn.Reg.Get(ci.ScryfallID)
		if ok && tmpl.IsCreature() && !ci.Tapped {
			blockers = append(blockers, ci)
		}
	}

	out := []Action{{Kind: KindDeclareBlockers, Blocks: nil, Description: "declare no blocks"}}
	for _, attacker := range attackers {
		attackerTmpl, _ := gn.Reg.Get(attacker.ScryfallID)
		flying := attackerTmpl != nil && attackerTmpl.HasKeyword(catalog.KeywordFlying)
		for _, blocker := range blockers {
			if flying {
				blockerTmpl, _ := gn.Reg.Get(blocker.ScryfallID)
				if blockerTmpl == nil || (!blockerTmpl.HasKeyword(catalog.KeywordFlying) && !blockerTmpl.HasKeyword(catalog.KeywordReach)) {
					continue
				}
			}
			out = append(out, Action{
				Kind: KindDeclareBlockers,
				Blocks: []BlockPair{{BlockerID: blocker.InstanceID, AttackerID: attacker.InstanceID}},
				Description: "block one attacker",
			})
		}
	}

	if len(attackers) > 0 && len(blockers) > 0 {
		var all []BlockPair
		used := map[state.InstanceID]bool{}
		for _, attacker := range attackers {
			attackerTmpl, _ := gn.Reg.Get(attacker.ScryfallID)
			flying := attackerTmpl != nil && attackerTmpl.HasKeyword(catalog.KeywordFlying)
			for _, blocker := range blockers {
				if used[blocker.InstanceID] {
					continue
				}
				if flying {
					blockerTmpl, _ := gn.Reg.Get(blocker.ScryfallID)
					if blockerTmpl == nil || (!blockerTmpl.HasKeyword(catalog.KeywordFlying) && !blockerTmpl.HasKeyword(catalog.KeywordReach)) {
						continue
					}
				}
				all = append(all, BlockPair{BlockerID: blocker.InstanceID, AttackerID: attacker.InstanceID})
				used[blocker.InstanceID] = true
				break
			}
		}
		if len(all) > 1 {
			out = append(out, Action{Kind: KindDeclareBlockers, Blocks: all, Description: "block as many attackers as possible"})
		}
	}

	return out
}
