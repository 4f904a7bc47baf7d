package engine

import (
	"testing"

	"mtgsim/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCombat(g *state.GameState) {
	g.Phase = state.PhaseCombat
	g.Step = state.StepDeclareAttackers
}

func TestDeclareAttackers_TapsAndMarks(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	bears := addPermanent(g, state.Player, "grizzly-bears")

	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{bears.InstanceID}))
	assert.True(t, bears.Attacking)
	assert.True(t, bears.Tapped)
}

func TestDeclareAttackers_RejectsTappedAndSummoningSick(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)

	tapped := addPermanent(g, state.Player, "grizzly-bears")
	tapped.Tapped = true
	assert.Error(t, eng.DeclareAttackers(g, []state.InstanceID{tapped.InstanceID}))

	sick := addPermanent(g, state.Player, "hill-giant")
	sick.SummoningSick = true
	assert.Error(t, eng.DeclareAttackers(g, []state.InstanceID{sick.InstanceID}))

	land := addPermanent(g, state.Player, "mountain")
	assert.Error(t, eng.DeclareAttackers(g, []state.InstanceID{land.InstanceID}))
}

func TestDeclareBlockers_FlyingRestriction(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	angel := addPermanent(g, state.Player, "serra-angel")
	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{angel.InstanceID}))
	g.Step = state.StepDeclareBlockers

	bears := addPermanent(g, state.Opponent, "grizzly-bears")
	err := eng.DeclareBlockers(g, []Block{{BlockerID: bears.InstanceID, AttackerID: angel.InstanceID}})
	assert.Error(t, err, "a ground creature cannot block a flyer")

	spider := addPermanent(g, state.Opponent, "giant-spider")
	err = eng.DeclareBlockers(g, []Block{{BlockerID: spider.InstanceID, AttackerID: angel.InstanceID}})
	assert.NoError(t, err, "reach blocks flying")
	assert.True(t, spider.Blocking)
	assert.Equal(t, angel.InstanceID, spider.BlockingAttacker)
	assert.Contains(t, angel.BlockedBy, spider.InstanceID)
}

func TestResolveCombatDamage_UnblockedHitsPlayer(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	giant := addPermanent(g, state.Player, "hill-giant")
	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{giant.InstanceID}))

	eng.ResolveCombatDamage(g)

	assert.Equal(t, 17, g.Players[state.Opponent].Life)
	assert.False(t, giant.Attacking, "combat flags clear after damage")
}

func TestResolveCombatDamage_BlockedTradesSimultaneously(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	playerBears := addPermanent(g, state.Player, "grizzly-bears")
	oppBears := addPermanent(g, state.Opponent, "grizzly-bears")

	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{playerBears.InstanceID}))
	g.Step = state.StepDeclareBlockers
	require.NoError(t, eng.DeclareBlockers(g, []Block{{BlockerID: oppBears.InstanceID, AttackerID: playerBears.InstanceID}}))

	eng.ResolveCombatDamage(g)

	// 2 damage each against toughness 2: both die in the same SBA sweep and
	// the defending player takes nothing.
	assert.Equal(t, 20, g.Players[state.Opponent].Life)
	assert.Empty(t, g.Players[state.Player].Battlefield)
	assert.Empty(t, g.Players[state.Opponent].Battlefield)
	assert.Len(t, g.Players[state.Player].Graveyard, 1)
	assert.Len(t, g.Players[state.Opponent].Graveyard, 1)
}

func TestResolveCombatDamage_BiggerBlockerSurvives(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	bears := addPermanent(g, state.Player, "grizzly-bears")
	wurm := addPermanent(g, state.Opponent, "craw-wurm")

	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{bears.InstanceID}))
	g.Step = state.StepDeclareBlockers
	require.NoError(t, eng.DeclareBlockers(g, []Block{{BlockerID: wurm.InstanceID, AttackerID: bears.InstanceID}}))

	eng.ResolveCombatDamage(g)

	assert.Empty(t, g.Players[state.Player].Battlefield, "2/2 dies to 6 damage")
	require.Len(t, g.Players[state.Opponent].Battlefield, 1)
	assert.Equal(t, 2, wurm.Damage, "sub-lethal damage stays marked until cleanup")
}

func TestResolveCombatDamage_PreventAllCombatDamage(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	giant := addPermanent(g, state.Player, "hill-giant")
	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{giant.InstanceID}))
	g.PreventAllCombatDamage = true

	eng.ResolveCombatDamage(g)

	assert.Equal(t, 20, g.Players[state.Opponent].Life)
	assert.False(t, giant.Attacking)
}

func TestResolveCombatDamage_LethalAttackWinsGame(t *testing.T) {
	g, eng := newEngineGame(1)
	setupCombat(g)
	g.Players[state.Opponent].Life = 3
	giant := addPermanent(g, state.Player, "hill-giant")
	require.NoError(t, eng.DeclareAttackers(g, []state.InstanceID{giant.InstanceID}))

	eng.ResolveCombatDamage(g)

	require.True(t, g.Outcome.Decided)
	assert.Equal(t, state.Player, g.Outcome.Winner)
}
