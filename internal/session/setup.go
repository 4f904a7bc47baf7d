package session

import (
	"mtgsim/internal/deck"
	"mtgsim/internal/state"
)

// buildLibrary instantiates and shuffles deckName's card list into pid's
// library, then draws the opening hand of 7 (spec.md's implicit starting
// setup; the original distillation leaves the exact opening-hand size to
// standard Magic convention, followed here).
const openingHandSize = 7

func buildLibrary(g *state.GameState, pid state.PlayerID, deckName string) {
	p := g.Players[pid]
	p.DeckName = deckName
	tmpl := deck.Resolve(deckName, g.RNG)
	ids := deck.Instantiate(tmpl)

	p.Library = make([]*state.CardInstance, 0, len(ids))
	for _, scryfallID := range ids {
		ci := &state.CardInstance{
			InstanceID: g.NextInstanceID(),
			ScryfallID: scryfallID,
			Owner:      pid,
			Controller: pid,
			Zone:       state.ZoneLibrary,
		}
		p.Library = append(p.Library, ci)
	}
	g.RNG.Shuffle(len(p.Library), func(i, j int) {
		p.Library[i], p.Library[j] = p.Library[j], p.Library[i]
	})
}

func drawOpeningHand(g *state.GameState, pid state.PlayerID) {
	for i := 0; i < openingHandSize; i++ {
		g.Draw(pid)
	}
}

// NewGame builds a fresh two-player GameState from the given deck names and
// seed, with both opening hands drawn and the player seat going first.
func NewGame(playerDeck, opponentDeck string, seed int64) *state.GameState {
	g := state.NewGameState(seed)
	buildLibrary(g, state.Player, playerDeck)
	buildLibrary(g, state.Opponent, opponentDeck)
	drawOpeningHand(g, state.Player)
	drawOpeningHand(g, state.Opponent)
	g.ActivePlayer = state.Player
	return g
}
