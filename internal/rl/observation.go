// Package rl serializes a GameState into the fixed-shape feature vector and
// action mask consumed by the reinforcement-learning gateway, plus the
// potential-based reward shaper used by the session surface.
package rl

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/state"
)

// NumFeatures is the length of the observation vector.
const NumFeatures = 25

// FeatureNames is the immutable, order-significant list of observation
// components, exported verbatim so a wrapping client can validate shape.
var FeatureNames = [NumFeatures]string{
	"playerLife", "opponentLife", "lifeDelta",
	"playerCreatureCount", "opponentCreatureCount",
	"playerTotalPower", "opponentTotalPower",
	"playerTotalToughness", "opponentTotalToughness",
	"boardAdvantage",
	"playerHandSize", "opponentHandSize", "cardAdvantage",
	"playerLibrarySize", "opponentLibrarySize",
	"playerLandsTotal", "playerLandsUntapped",
	"opponentLandsTotal", "opponentLandsUntapped",
	"turnNumber", "isPlayerTurn", "phaseEncoded",
	"canAttack", "attackersAvailable", "blockersAvailable",
}

// Normalization divisors for every raw, un-clamped quantity in the vector.
// Chosen to keep typical values inside [0,1]; clamp handles the rare
// overshoot (e.g. a life total pushed above 40 by a lifegain spell).
const (
	lifeDivisor      = 40.0
	creatureDivisor  = 10.0
	powerDivisor     = 30.0
	toughnessDivisor = 30.0
	handDivisor      = 7.0
	librarDivisor    = 40.0
	landDivisor      = 10.0
	turnDivisor      = 40.0
)

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// boardStats bundles the battlefield aggregates one player contributes to
// the observation (and to reward shaping, which reuses this computation).
type boardStats struct {
	creatureCount int
	totalPower    int
	totalTough    int
	landsTotal    int
	landsUntapped int
}

func computeBoardStats(reg catalog.Registry, p *state.Player) boardStats {
	var bs boardStats
	for _, ci := range p.Battlefield {
		tmpl, ok := reg.Get(ci.ScryfallID)
		if !ok {
			continue
		}
		if tmpl.IsCreature() {
			bs.creatureCount++
			bs.totalPower += catalog.EffectivePower(tmpl, ci)
			bs.totalTough += catalog.EffectiveToughness(tmpl, ci)
		}
		if tmpl.IsLand() {
			bs.landsTotal++
			if !ci.Tapped {
				bs.landsUntapped++
			}
		}
	}
	return bs
}

// Observe builds the 25-dimensional feature vector for perspective pid.
func Observe(g *state.GameState, reg catalog.Registry, pid state.PlayerID) [NumFeatures]float64 {
	opp := pid.Other()
	me := g.Players[pid]
	them := g.Players[opp]

	mine := computeBoardStats(reg, me)
	theirs := computeBoardStats(reg, them)

	boardAdvantage := float64(mine.totalPower-theirs.totalPower)/powerDivisor + float64(mine.creatureCount-theirs.creatureCount)/creatureDivisor
	cardAdvantage := float64(len(me.Hand)-len(them.Hand)) / handDivisor

	var canAttack, attackersAvail, blockersAvail float64
	for _, ci := range me.Battlefield {
		tmpl, ok := reg.Get(ci.ScryfallID)
		if !ok || !tmpl.IsCreature() {
			continue
		}
		if !ci.Tapped && !ci.SummoningSick {
			attackersAvail++
			canAttack = 1
		}
	}
	for _, ci := range me.Battlefield {
		tmpl, ok := reg.Get(ci.ScryfallID)
		if ok && tmpl.IsCreature() && !ci.Tapped {
			blockersAvail++
		}
	}

	var out [NumFeatures]float64
	out[0] = clamp01(float64(me.Life) / lifeDivisor)
	out[1] = clamp01(float64(them.Life) / lifeDivisor)
	out[2] = clamp01(0.5 + float64(me.Life-them.Life)/(2*lifeDivisor))
	out[3] = clamp01(float64(mine.creatureCount) / creatureDivisor)
	out[4] = clamp01(float64(theirs.creatureCount) / creatureDivisor)
	out[5] = clamp01(float64(mine.totalPower) / powerDivisor)
	out[6] = clamp01(float64(theirs.totalPower) / powerDivisor)
	out[7] = clamp01(float64(mine.totalTough) / toughnessDivisor)
	out[8] = clamp01(float64(theirs.totalTough) / toughnessDivisor)
	out[9] = clamp01(0.5 + boardAdvantage/2)
	out[10] = clamp01(float64(len(me.Hand)) / handDivisor)
	out[11] = clamp01(float64(len(them.Hand)) / handDivisor)
	out[12] = clamp01(0.5 + cardAdvantage/2)
	out[13] = clamp01(float64(len(me.Library)) / librarDivisor)
	out[14] = clamp01(float64(len(them.Library)) / librarDivisor)
	out[15] = clamp01(float64(mine.landsTotal) / landDivisor)
	out[16] = clamp01(float64(mine.landsUntapped) / landDivisor)
	out[17] = clamp01(float64(theirs.landsTotal) / landDivisor)
	out[18] = clamp01(float64(theirs.landsUntapped) / landDivisor)
	out[19] = clamp01(float64(g.TurnCount) / turnDivisor)
	if g.ActivePlayer == pid {
		out[20] = 1
	}
	out[21] = clamp01(encodePhase(g.Phase))
	out[22] = canAttack
	out[23] = clamp01(attackersAvail / creatureDivisor)
	out[24] = clamp01(blockersAvail / creatureDivisor)

	return out
}

// encodePhase maps the five phases to evenly spaced points in [0,1], in
// their turn-order sequence.
func encodePhase(p state.Phase) float64 {
	switch p {
	case state.PhaseBeginning:
		return 0.0
	case state.PhaseMain1:
		return 0.25
	case state.PhaseCombat:
		return 0.5
	case state.PhaseMain2:
		return 0.75
	case state.PhaseEnding:
		return 1.0
	}
	return 0
}
