package engine

import (
	"testing"

	"mtgsim/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSBA_LethalDamageMovesCreatureToGraveyard(t *testing.T) {
	g, eng := newEngineGame(1)
	bears := addPermanent(g, state.Player, "grizzly-bears")
	bears.Damage = 2

	ended := eng.CheckStateBasedActions(g)

	assert.False(t, ended)
	assert.Empty(t, g.Players[state.Player].Battlefield)
	require.Len(t, g.Players[state.Player].Graveyard, 1)
	assert.Equal(t, state.ZoneGraveyard, bears.Zone)
}

func TestSBA_ZeroToughnessCreatureDies(t *testing.T) {
	g, eng := newEngineGame(1)
	bears := addPermanent(g, state.Player, "grizzly-bears")
	bears.Counters = map[string]int{"-1/-1": 2} // 2/2 shrunk to 0/0

	eng.CheckStateBasedActions(g)

	assert.Empty(t, g.Players[state.Player].Battlefield)
	assert.Len(t, g.Players[state.Player].Graveyard, 1)
}

func TestSBA_SubLethalDamageSurvives(t *testing.T) {
	g, eng := newEngineGame(1)
	wurm := addPermanent(g, state.Player, "craw-wurm")
	wurm.Damage = 3 // toughness 4

	eng.CheckStateBasedActions(g)

	assert.Len(t, g.Players[state.Player].Battlefield, 1)
	assert.Empty(t, g.Players[state.Player].Graveyard)
}

func TestSBA_TemporaryToughnessBoostPreventsDeath(t *testing.T) {
	g, eng := newEngineGame(1)
	bears := addPermanent(g, state.Player, "grizzly-bears")
	bears.Damage = 3
	bears.AddModification(state.TemporaryModification{DeltaPower: 3, DeltaToughness: 3, Until: state.UntilEndOfTurn})

	eng.CheckStateBasedActions(g)

	assert.Len(t, g.Players[state.Player].Battlefield, 1)
}

func TestSBA_PlayerAtZeroLifeLoses(t *testing.T) {
	g, eng := newEngineGame(1)
	g.Players[state.Opponent].Life = 0

	ended := eng.CheckStateBasedActions(g)

	require.True(t, ended)
	assert.True(t, g.Outcome.Decided)
	assert.Equal(t, state.Player, g.Outcome.Winner)
}

func TestSBA_SimultaneousLossIsDraw(t *testing.T) {
	g, eng := newEngineGame(1)
	g.Players[state.Player].Life = -2
	g.Players[state.Opponent].Life = 0

	require.True(t, eng.CheckStateBasedActions(g))
	assert.True(t, g.Outcome.Decided)
	assert.True(t, g.Outcome.Draw)
}

func TestSBA_SimultaneousDeathsAreOneAtomicBlock(t *testing.T) {
	g, eng := newEngineGame(1)
	a := addPermanent(g, state.Player, "grizzly-bears")
	b := addPermanent(g, state.Opponent, "hill-giant")
	a.Damage = 5
	b.Damage = 5

	eng.CheckStateBasedActions(g)

	// Both creatures are in their owners' graveyards before any DIES
	// trigger would resolve.
	assert.Empty(t, g.Players[state.Player].Battlefield)
	assert.Empty(t, g.Players[state.Opponent].Battlefield)
	assert.Len(t, g.Players[state.Player].Graveyard, 1)
	assert.Len(t, g.Players[state.Opponent].Graveyard, 1)
}

func TestSBA_DiesTriggerQueuedForRegisteredCard(t *testing.T) {
	g, eng := newEngineGame(1)
	worm := addPermanent(g, state.Opponent, "charnel-worm")
	worm.Damage = 2

	eng.CheckStateBasedActions(g)

	require.Len(t, g.Triggers, 1)
	assert.Equal(t, "DIES", g.Triggers[0].Event)
	assert.Equal(t, state.Opponent, g.Triggers[0].Controller)
}

func TestSBA_NoOpWhenGameAlreadyOver(t *testing.T) {
	g, eng := newEngineGame(1)
	g.Outcome = state.Outcome{Decided: true, Winner: state.Player}
	bears := addPermanent(g, state.Player, "grizzly-bears")
	bears.Damage = 9

	assert.True(t, eng.CheckStateBasedActions(g))
	assert.Len(t, g.Players[state.Player].Battlefield, 1, "no sweep once the game is decided")
}
