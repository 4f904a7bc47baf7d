package rl

import (
	"testing"

	"mtgsim/internal/catalog"
	"mtgsim/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestObserve_EmptyBoardIsSymmetric(t *testing.T) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	g := state.NewGameState(1)
	g.ActivePlayer = state.Player

	out := Observe(g, reg, state.Player)

	assert.Equal(t, 0.5, out[0]) // playerLife: 20/40
	assert.Equal(t, 0.5, out[1]) // opponentLife
	assert.Equal(t, 0.5, out[2]) // lifeDelta centered at 0.5 when equal
	assert.Equal(t, 1.0, out[20])
	assert.Equal(t, 0.0, out[21]) // PhaseBeginning encodes to 0
}

func TestObserve_PhaseEncoding(t *testing.T) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	g := state.NewGameState(1)
	g.Phase = state.PhaseCombat

	out := Observe(g, reg, state.Player)
	assert.Equal(t, 0.5, out[21])
}

func TestObserve_BoardAdvantageReflectsCreatures(t *testing.T) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	g := state.NewGameState(1)

	bear := &state.CardInstance{
		InstanceID: g.NextInstanceID(),
		ScryfallID: "grizzly-bears",
		Owner:      state.Player,
		Controller: state.Player,
		Zone:       state.ZoneBattlefield,
	}
	g.Players[state.Player].Battlefield = append(g.Players[state.Player].Battlefield, bear)

	out := Observe(g, reg, state.Player)
	assert.Greater(t, out[3], 0.0)  // playerCreatureCount
	assert.Greater(t, out[9], 0.5)  // boardAdvantage favors the player
	assert.Greater(t, out[23], 0.0) // attackersAvailable: untapped, not summoning sick
}
