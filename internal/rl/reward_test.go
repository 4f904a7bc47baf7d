package rl

import (
	"testing"

	"mtgsim/internal/catalog"
	"mtgsim/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSymmetricGame() *state.GameState {
	return state.NewGameState(1)
}

// TestRewardShaper_NoOpPassesYieldZero grounds spec scenario 5's baseline:
// two fully symmetric board states (nothing changed) shape to a reward of
// exactly zero.
func TestRewardShaper_NoOpPassesYieldZero(t *testing.T) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	g := newSymmetricGame()

	shaper := NewRewardShaper(reg, state.Player)
	shaper.Init(g)

	reward := shaper.Step(g)
	assert.Equal(t, 0.0, reward)
}

// TestRewardShaper_DestroyingOpponentCreatureIsPositive grounds spec
// scenario 5's board-swing case: removing an opposing 3/3 with no change to
// either player's life shapes to a strictly positive reward, comfortably
// inside the clamp.
func TestRewardShaper_DestroyingOpponentCreatureIsPositive(t *testing.T) {
	reg := catalog.NewRegistry(catalog.StarterCards)
	g := newSymmetricGame()

	giant := &state.CardInstance{
		InstanceID: g.NextInstanceID(),
		ScryfallID: "hill-giant",
		Owner:      state.Opponent,
		Controller: state.Opponent,
		Zone:       state.ZoneBattlefield,
	}
	g.Players[state.Opponent].Battlefield = append(g.Players[state.Opponent].Battlefield, giant)

	shaper := NewRewardShaper(reg, state.Player)
	shaper.Init(g)

	g.Players[state.Opponent].Battlefield = nil

	reward := shaper.Step(g)
	require.Greater(t, reward, 0.0)
	assert.LessOrEqual(t, reward, ShapingClamp)
}

func TestTerminal(t *testing.T) {
	g := newSymmetricGame()

	assert.Equal(t, 0.0, Terminal(g, state.Player))

	g.Outcome = state.Outcome{Decided: true, Winner: state.Player}
	assert.Equal(t, 1.0, Terminal(g, state.Player))
	assert.Equal(t, -1.0, Terminal(g, state.Opponent))

	g.Outcome = state.Outcome{Decided: true, Draw: true}
	assert.Equal(t, 0.0, Terminal(g, state.Player))
}
