package action

import (
	"testing"

	"mtgsim/internal/state"

	"github.com/stretchr/testify/require"
)

// TestScenario_BoltToFace grounds spec scenario 1: a Mountain taps for {R},
// Lightning Bolt resolves to the opponent's face for 3, and the spell lands
// in its owner's graveyard with the stack empty.
func TestScenario_BoltToFace(t *testing.T) {
	g, app, eng := newFixtureGame(12345)
	mountain := addBattlefield(g, state.Player, "mountain")
	addBattlefield(g, state.Player, "mountain")
	addBattlefield(g, state.Player, "mountain")
	bolt := addHand(g, state.Player, "lightning-bolt")

	require.NoError(t, tapForMana(g, app, eng, state.Player, mountain.InstanceID, "mountain-tap"))

	err := app.Apply(g, state.Player, Action{
		Kind:           KindCastSpell,
		CardInstanceID: bolt.InstanceID,
		Targets:        []state.TargetRef{state.PlayerTarget(state.Opponent)},
	})
	require.NoError(t, err)

	require.NoError(t, eng.PassPriority(g)) // caster passes
	require.NoError(t, eng.PassPriority(g)) // opponent passes, resolves

	require.Equal(t, 17, g.Players[state.Opponent].Life)
	require.Empty(t, g.Stack)
	require.Len(t, g.Players[state.Player].Graveyard, 1)
	require.Equal(t, "lightning-bolt", g.Players[state.Player].Graveyard[0].ScryfallID)
}

// TestScenario_Counterspell grounds spec scenario 2: Counterspell cast in
// response to Lightning Bolt resolves first (LIFO), countering the Bolt,
// and both cards end up in their owners' graveyards with the opponent's
// life untouched.
func TestScenario_Counterspell(t *testing.T) {
	g, app, eng := newFixtureGame(1)
	mountain := addBattlefield(g, state.Player, "mountain")
	island1 := addBattlefield(g, state.Opponent, "island")
	island2 := addBattlefield(g, state.Opponent, "island")
	bolt := addHand(g, state.Player, "lightning-bolt")
	counterspell := addHand(g, state.Opponent, "counterspell")

	require.NoError(t, tapForMana(g, app, eng, state.Player, mountain.InstanceID, "mountain-tap"))

	require.NoError(t, app.Apply(g, state.Player, Action{
		Kind:           KindCastSpell,
		CardInstanceID: bolt.InstanceID,
		Targets:        []state.TargetRef{state.PlayerTarget(state.Opponent)},
	}))
	boltStackID := g.TopOfStack().ID

	require.NoError(t, eng.PassPriority(g)) // player passes, priority to opponent

	require.NoError(t, tapForMana(g, app, eng, state.Opponent, island1.InstanceID, "island-tap"))
	require.NoError(t, tapForMana(g, app, eng, state.Opponent, island2.InstanceID, "island-tap"))

	require.NoError(t, app.Apply(g, state.Opponent, Action{
		Kind:           KindCastSpell,
		CardInstanceID: counterspell.InstanceID,
		Targets:        []state.TargetRef{state.StackTarget(boltStackID)},
	}))

	require.NoError(t, eng.PassPriority(g)) // opponent passes
	require.NoError(t, eng.PassPriority(g)) // player passes, Counterspell resolves

	require.NoError(t, eng.PassPriority(g)) // active player passes
	require.NoError(t, eng.PassPriority(g)) // other passes, countered Bolt resolves

	require.Empty(t, g.Stack)
	require.Equal(t, 20, g.Players[state.Opponent].Life)
	require.Len(t, g.Players[state.Player].Graveyard, 1)
	require.Equal(t, "lightning-bolt", g.Players[state.Player].Graveyard[0].ScryfallID)
	require.Len(t, g.Players[state.Opponent].Graveyard, 1)
	require.Equal(t, "counterspell", g.Players[state.Opponent].Graveyard[0].ScryfallID)
}

// TestScenario_WrathThenETB grounds spec scenario 3: Wrath of God destroys
// every creature on both sides simultaneously, with no damage dealt.
func TestScenario_WrathThenETB(t *testing.T) {
	g, app, eng := newFixtureGame(2)
	var plainses []*state.CardInstance
	for i := 0; i < 4; i++ {
		plainses = append(plainses, addBattlefield(g, state.Player, "plains"))
	}
	for i := 0; i < 3; i++ {
		addBattlefield(g, state.Player, "grizzly-bears")
		addBattlefield(g, state.Opponent, "grizzly-bears")
	}
	wrath := addHand(g, state.Player, "wrath-of-god")

	for _, p := range plainses {
		require.NoError(t, tapForMana(g, app, eng, state.Player, p.InstanceID, "plains-tap"))
	}

	require.NoError(t, app.Apply(g, state.Player, Action{
		Kind:           KindCastSpell,
		CardInstanceID: wrath.InstanceID,
	}))
	require.NoError(t, eng.PassPriority(g))
	require.NoError(t, eng.PassPriority(g))

	require.Empty(t, g.Stack)
	require.Equal(t, 20, g.Players[state.Player].Life)
	require.Equal(t, 20, g.Players[state.Opponent].Life)

	var playerCreatures, opponentCreatures int
	for _, ci := range g.Players[state.Player].Battlefield {
		if ci.ScryfallID == "grizzly-bears" {
			playerCreatures++
		}
	}
	for _, ci := range g.Players[state.Opponent].Battlefield {
		if ci.ScryfallID == "grizzly-bears" {
			opponentCreatures++
		}
	}
	require.Zero(t, playerCreatures)
	require.Zero(t, opponentCreatures)
	require.Len(t, g.Players[state.Player].Graveyard, 4) // 3 creatures + Wrath itself
	require.Len(t, g.Players[state.Opponent].Graveyard, 3)
}

// TestScenario_Fizzle grounds spec scenario 4: a removal spell whose target
// becomes illegal before it resolves (here, by leaving the battlefield, the
// mechanism this engine's Recheck actually detects — per-instance color
// changes aren't representable since color lives on the immutable catalog
// template) resolves to no effect and goes to its owner's graveyard.
func TestScenario_Fizzle(t *testing.T) {
	g, app, eng := newFixtureGame(7)
	swamp1 := addBattlefield(g, state.Player, "swamp")
	swamp2 := addBattlefield(g, state.Player, "swamp")
	bears := addBattlefield(g, state.Opponent, "grizzly-bears")
	terror := addHand(g, state.Player, "terror")

	require.NoError(t, tapForMana(g, app, eng, state.Player, swamp1.InstanceID, "swamp-tap"))
	require.NoError(t, tapForMana(g, app, eng, state.Player, swamp2.InstanceID, "swamp-tap"))

	require.NoError(t, app.Apply(g, state.Player, Action{
		Kind:           KindCastSpell,
		CardInstanceID: terror.InstanceID,
		Targets:        []state.TargetRef{state.CardTarget(bears.InstanceID)},
	}))

	// The target leaves the battlefield in response, making it illegal by
	// the time Terror would resolve.
	eng.Eff.Bounce(g, bears.InstanceID)

	require.NoError(t, eng.PassPriority(g))
	require.NoError(t, eng.PassPriority(g))

	require.Empty(t, g.Stack)
	require.Len(t, g.Players[state.Player].Graveyard, 1)
	require.Equal(t, "terror", g.Players[state.Player].Graveyard[0].ScryfallID)
	require.Len(t, g.Players[state.Opponent].Hand, 1)
	require.Equal(t, "grizzly-bears", g.Players[state.Opponent].Hand[0].ScryfallID)
	require.Empty(t, g.Players[state.Opponent].Graveyard)
}

// TestScenario_TriggeredAbilityStacksWithResponseWindow grounds the
// trigger-stacking Open Question decision recorded in DESIGN.md: a
// triggered ability is placed on the stack as its own object, not applied
// the instant it's raised, so it opens a real response window before its
// effect happens.
func TestScenario_TriggeredAbilityStacksWithResponseWindow(t *testing.T) {
	g, app, eng := newFixtureGame(3)
	plains1 := addBattlefield(g, state.Player, "plains")
	plains2 := addBattlefield(g, state.Player, "plains")
	plains3 := addBattlefield(g, state.Player, "plains")
	monk := addHand(g, state.Player, "venerable-monk")

	for _, p := range []*state.CardInstance{plains1, plains2, plains3} {
		require.NoError(t, tapForMana(g, app, eng, state.Player, p.InstanceID, "plains-tap"))
	}

	require.NoError(t, app.Apply(g, state.Player, Action{
		Kind:           KindCastSpell,
		CardInstanceID: monk.InstanceID,
	}))
	require.NoError(t, eng.PassPriority(g)) // caster passes
	require.NoError(t, eng.PassPriority(g)) // opponent passes; Venerable Monk resolves onto the battlefield

	// The creature is on the battlefield and its ETB trigger has been queued
	// as its own object on the stack -- but not yet resolved, so life has
	// not changed yet. This is the behavior the "immediate resolution"
	// alternative (DESIGN.md) would NOT exhibit.
	require.Len(t, g.Stack, 1)
	require.Equal(t, 20, g.Players[state.Player].Life)
	require.Len(t, g.Players[state.Player].Battlefield, 4) // 3 Plains + Monk

	require.NoError(t, eng.PassPriority(g)) // active player passes with the trigger on the stack
	require.NoError(t, eng.PassPriority(g)) // opponent passes; the trigger resolves

	require.Empty(t, g.Stack)
	require.Equal(t, 22, g.Players[state.Player].Life)
}
