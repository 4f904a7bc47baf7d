package targeting

import "mtgsim/internal/catalog"
import "mtgsim/internal/state"

// candidatesFor yields every Chosen target that passes Validate for a single
// requirement, scanning the zones the requirement's TargetType implies.
func candidatesFor(g *state.GameState, reg catalog.Registry, req TargetRequirement, caster state.PlayerID, sourceColors []catalog.MtgColor) []Chosen {
	var out []Chosen

	switch req.TargetType {
	case TypePlayer, TypeAny:
		for _, pid := range []state.PlayerID{state.Player, state.Opponent} {
			t := state.PlayerTarget(pid)
			if Validate(g, reg, req, caster, sourceColors, t) {
				out = append(out, t)
			}
		}
	case TypeOpponent:
		t := state.PlayerTarget(caster.Other())
		if Validate(g, reg, req, caster, sourceColors, t) {
			out = append(out, t)
		}
	case TypeSpell, TypeCreatureSpell:
		for _, so := range g.Stack {
			t := state.StackTarget(so.ID)
			if Validate(g, reg, req, caster, sourceColors, t) {
				out = append(out, t)
			}
		}
	}

	if req.TargetType == TypeCreature || req.TargetType == TypePermanent ||
		req.TargetType == TypeArtifact || req.TargetType == TypeEnchantment ||
		req.TargetType == TypeLand || req.TargetType == TypeArtifactOrEnchant ||
		req.TargetType == TypeAny {
		zones := []state.Zone{state.ZoneBattlefield}
		if req.Zone == ZoneGraveyard {
			zones = []state.Zone{state.ZoneGraveyard}
		} else if req.Zone == ZoneAny {
			zones = []state.Zone{state.ZoneBattlefield, state.ZoneGraveyard}
		}
		for _, pid := range []state.PlayerID{state.Player, state.Opponent} {
			p := g.Players[pid]
			for _, z := range zones {
				slice := p.ZoneSlice(z)
				if slice == nil {
					continue
				}
				for _, c := range *slice {
					t := state.CardTarget(c.InstanceID)
					if Validate(g, reg, req, caster, sourceColors, t) {
						out = append(out, t)
					}
				}
			}
		}
	}
	return out
}

// EnumerateTuples produces every legal combination of targets across all of
// a spell/ability's requirements: the filtered Cartesian product with
// duplicate targets within a tuple disallowed (spec.md §4.4). Zero
// requirements yields one empty tuple; this always returns at least one
// element in that case.
func EnumerateTuples(g *state.GameState, reg catalog.Registry, reqs []TargetRequirement, caster state.PlayerID, sourceColors []catalog.MtgColor) [][]Chosen {
	if len(reqs) == 0 {
		return [][]Chosen{{}}
	}
	perReq := make([][]Chosen, len(reqs))
	for i, req := range reqs {
		perReq[i] = candidatesFor(g, reg, req, caster, sourceColors)
	}
	var tuples [][]Chosen
	var rec func(idx int, acc []Chosen)
	rec = func(idx int, acc []Chosen) {
		if idx == len(perReq) {
			tuples = append(tuples, append([]Chosen(nil), acc...))
			return
		}
		for _, cand := range perReq[idx] {
			if containsTarget(acc, cand) {
				continue
			}
			rec(idx+1, append(acc, cand))
		}
	}
	rec(0, nil)
	return tuples
}

func containsTarget(acc []Chosen, cand Chosen) bool {
	for _, a := range acc {
		if a == cand {
			return true
		}
	}
	return false
}

// HasLegalTargets reports whether at least one legal tuple exists.
func HasLegalTargets(g *state.GameState, reg catalog.Registry, reqs []TargetRequirement, caster state.PlayerID, sourceColors []catalog.MtgColor) bool {
	return len(EnumerateTuples(g, reg, reqs, caster, sourceColors)) > 0
}

// RecheckResult is the outcome of re-validating a chosen tuple at resolution
// time.
type RecheckResult struct {
	LegalTargets   []Chosen
	IllegalTargets []Chosen
	AllIllegal     bool
}

// Recheck re-validates each already-chosen target against its original
// requirement (spec.md §4.3 "Fizzle"). A spell with zero targets can never
// fizzle: AllIllegal is only ever true when len(targets) > 0.
func Recheck(g *state.GameState, reg catalog.Registry, reqs []TargetRequirement, caster state.PlayerID, sourceColors []catalog.MtgColor, targets []Chosen) RecheckResult {
	var res RecheckResult
	for i, t := range targets {
		req := reqs[i]
		if Validate(g, reg, req, caster, sourceColors, t) {
			res.LegalTargets = append(res.LegalTargets, t)
		} else {
			res.IllegalTargets = append(res.IllegalTargets, t)
		}
	}
	res.AllIllegal = len(targets) > 0 && len(res.LegalTargets) == 0
	return res
}
