package rl

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/state"
)

// Default potential-shaping weights and constants (spec.md §4.8).
const (
	WeightLife      = 0.3
	WeightBoard     = 0.25
	WeightCreatures = 0.2
	WeightHand      = 0.15
	WeightLands     = 0.1

	ShapingGamma = 0.99
	ShapingScale = 0.1
	ShapingClamp = 0.5
)

// features is the five normalized (player − opponent) deltas potential
// shaping is computed from.
type features struct {
	life, board, creatures, hand, lands float64
}

func computeFeatures(g *state.GameState, reg catalog.Registry, pid state.PlayerID) features {
	opp := pid.Other()
	me, them := g.Players[pid], g.Players[opp]
	mine := computeBoardStats(reg, me)
	theirs := computeBoardStats(reg, them)

	return features{
		life:      float64(me.Life-them.Life) / lifeDivisor,
		board:     float64(mine.totalPower-theirs.totalPower) / powerDivisor,
		creatures: float64(mine.creatureCount-theirs.creatureCount) / creatureDivisor,
		hand:      float64(len(me.Hand)-len(them.Hand)) / handDivisor,
		lands:     float64(mine.landsTotal-theirs.landsTotal) / landDivisor,
	}
}

func potential(f features) float64 {
	return WeightLife*f.life + WeightBoard*f.board + WeightCreatures*f.creatures +
		WeightHand*f.hand + WeightLands*f.lands
}

// RewardShaper computes potential-based shaped rewards on top of the
// terminal ±1/0 outcome reward (spec.md §4.8). Its previous-potential memory
// must be reset via Init whenever the session is created or reset.
type RewardShaper struct {
	reg     catalog.Registry
	pid     state.PlayerID
	prevPot float64
	primed  bool
}

// NewRewardShaper builds a shaper for the given perspective player.
func NewRewardShaper(reg catalog.Registry, pid state.PlayerID) *RewardShaper {
	return &RewardShaper{reg: reg, pid: pid}
}

// Init (re)seeds the shaper's previous-potential memory from g, called at
// session creation and at every reset().
func (r *RewardShaper) Init(g *state.GameState) {
	r.prevPot = potential(computeFeatures(g, r.reg, r.pid))
	r.primed = true
}

// Step computes the shaped reward for the transition into g', clamped to
// [-ShapingClamp, ShapingClamp], and advances the shaper's memory. Callers
// must not call Step on a terminal transition; Terminal supplies that reward
// instead (spec.md: "terminal step returns the terminal reward alone").
func (r *RewardShaper) Step(g *state.GameState) float64 {
	if !r.primed {
		r.Init(g)
	}
	curPot := potential(computeFeatures(g, r.reg, r.pid))
	shaped := ShapingScale * (ShapingGamma*curPot - r.prevPot)
	r.prevPot = curPot
	if shaped > ShapingClamp {
		shaped = ShapingClamp
	}
	if shaped < -ShapingClamp {
		shaped = -ShapingClamp
	}
	return shaped
}

// Terminal returns the fixed terminal reward for pid's perspective: +1 win,
// -1 loss, 0 draw.
func Terminal(g *state.GameState, pid state.PlayerID) float64 {
	if !g.Outcome.Decided {
		return 0
	}
	if g.Outcome.Draw {
		return 0
	}
	if g.Outcome.Winner == pid {
		return 1
	}
	return -1
}
