package engine

import "mtgsim/internal/state"

// stepOrder is the fixed sequence of steps a turn passes through (spec.md
// §4.1). Combat's internal steps are included; BeginCombat has no explicit
// step constant of its own (declare_attackers is the first combat step).
var stepOrder = []state.Step{
	state.StepUntap, state.StepUpkeep, state.StepDraw,
	state.StepMain,
	state.StepDeclareAttackers, state.StepDeclareBlockers, state.StepCombatDamage, state.StepEndOfCombat,
	state.StepMain,
	state.StepEndStep, state.StepCleanup,
}

// phaseForStep maps a step to its containing phase, needed because StepMain
// appears twice (main1 and main2) at different points of stepOrder.
func phaseForStep(idx int) state.Phase {
	switch stepOrder[idx] {
	case state.StepUntap, state.StepUpkeep, state.StepDraw:
		return state.PhaseBeginning
	case state.StepDeclareAttackers, state.StepDeclareBlockers, state.StepCombatDamage, state.StepEndOfCombat:
		return state.PhaseCombat
	case state.StepEndStep, state.StepCleanup:
		return state.PhaseEnding
	case state.StepMain:
		if idx < 4 {
			return state.PhaseMain1
		}
		return state.PhaseMain2
	}
	return state.PhaseBeginning
}

func stepIndex(g *state.GameState) int {
	for i, s := range stepOrder {
		if s != g.Step {
			continue
		}
		if s == state.StepMain {
			if g.Phase == state.PhaseMain1 && i < 4 {
				return i
			}
			if g.Phase == state.PhaseMain2 && i >= 4 {
				return i
			}
			continue
		}
		return i
	}
	return 0
}

// hasNoPriorityWindow reports whether a step gives no priority at all
// (untap, and cleanup in the common case with nothing queued).
func hasNoPriorityWindow(step state.Step) bool {
	return step == state.StepUntap
}

// StartTurn runs the untap step automatically (it grants no priority) and
// opens upkeep with the active player holding priority.
func (e *Engine) StartTurn(g *state.GameState) {
	g.TurnCount++
	g.Step = state.StepUntap
	g.Phase = state.PhaseBeginning
	e.runUntap(g)
	g.Step = state.StepUpkeep
	g.SetPriority(g.ActivePlayer)
}

func (e *Engine) runUntap(g *state.GameState) {
	p := g.Players[g.ActivePlayer]
	for _, ci := range p.Battlefield {
		ci.Tapped = false
		ci.SummoningSick = false
	}
	p.ManaPool.Empty()
}

// emptyManaPools drains both players' pools, the end-of-step contract of
// spec.md §4.1 (no starter card produces mana that outlives a step).
func emptyManaPools(g *state.GameState) {
	g.Players[state.Player].ManaPool.Empty()
	g.Players[state.Opponent].ManaPool.Empty()
}

// AdvanceStep moves to the next step/phase in sequence, applying each
// step's automatic entry contract (spec.md §4.1). Called once both players
// have passed in succession with an empty stack.
func (e *Engine) AdvanceStep(g *state.GameState) {
	emptyManaPools(g)
	idx := stepIndex(g)
	idx++
	if idx >= len(stepOrder) {
		e.endTurn(g)
		return
	}
	g.Step = stepOrder[idx]
	g.Phase = phaseForStep(idx)

	switch g.Step {
	case state.StepDraw:
		e.runDraw(g)
	case state.StepCombatDamage:
		e.ResolveCombatDamage(g)
	case state.StepCleanup:
		e.runCleanup(g)
		return
	}
	if !hasNoPriorityWindow(g.Step) {
		g.SetPriority(g.ActivePlayer)
	}
	e.CheckStateBasedActions(g)
}

func (e *Engine) runDraw(g *state.GameState) {
	if _, ok := g.Draw(g.ActivePlayer); !ok {
		e.ApplyEmptyLibraryLoss(g, g.ActivePlayer, false)
	}
}

func (e *Engine) runCleanup(g *state.GameState) {
	for _, pid := range []state.PlayerID{state.Player, state.Opponent} {
		for _, ci := range g.Players[pid].Battlefield {
			ci.Damage = 0
			ci.ClearEndOfTurnModifications()
		}
	}
	g.PreventAllCombatDamage = false
	g.Players[state.Player].LandsPlayedThisTurn = 0
	g.Players[state.Opponent].LandsPlayedThisTurn = 0

	if len(g.Triggers) > 0 {
		// Drain then re-run cleanup per spec.md §4.1.
		e.drainAndCheck(g)
		e.runCleanup(g)
		return
	}
	e.endTurn(g)
}

func (e *Engine) endTurn(g *state.GameState) {
	emptyManaPools(g)
	if g.Outcome.Decided {
		return
	}
	g.ActivePlayer = g.ActivePlayer.Other()
	e.StartTurn(g)
}

// PassPriority records a pass for the given player. If both players have
// passed in succession, it either resolves the top stack object (non-empty
// stack) or advances to the next step (empty stack), per spec.md §4.1.
func (e *Engine) PassPriority(g *state.GameState) error {
	pid, ok := g.PriorityPlayer()
	if !ok {
		return nil
	}
	g.Players[pid].HasPassed = true
	other := pid.Other()
	if !g.Players[other].HasPassed {
		g.SetPriority(other)
		return nil
	}

	g.Players[state.Player].HasPassed = false
	g.Players[state.Opponent].HasPassed = false

	if len(g.Stack) > 0 {
		if err := e.ResolveTop(g); err != nil {
			return err
		}
		if !g.Outcome.Decided {
			g.SetPriority(g.ActivePlayer)
		}
		return nil
	}
	e.AdvanceStep(g)
	return nil
}

// GrantPriorityAfterAction re-opens priority for the active player after a
// non-passing action (cast, activation, land play) resolves, resetting the
// pass-tracking flags so a fresh round of passes is required.
func (e *Engine) GrantPriorityAfterAction(g *state.GameState, actor state.PlayerID) {
	g.Players[state.Player].HasPassed = false
	g.Players[state.Opponent].HasPassed = false
	g.SetPriority(actor)
}
