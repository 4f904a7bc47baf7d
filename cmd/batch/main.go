// Command batch runs a batch of sessions to completion against a trivial
// deterministic bot, purely to exercise the Bot interface and session
// lifecycle end-to-end and report aggregate outcomes and step counts. It is
// test-fixture grade, not a policy implementation.
package main

import (
	"flag"
	"fmt"
	"os"

	"mtgsim/internal/action"
	"mtgsim/internal/catalog"
	"mtgsim/internal/logger"
	"mtgsim/internal/session"
	"mtgsim/internal/state"
)

// firstLegalActionBot always plays the first legal action offered to it; it
// exists to drive sessions to completion, not to play well.
type firstLegalActionBot struct{}

func (firstLegalActionBot) ChooseAction(g *state.GameState, pid state.PlayerID, legal []action.Action) (action.Action, error) {
	return legal[0], nil
}

func main() {
	games := flag.Int("games", 100, "number of games to simulate")
	playerDeck := flag.String("player-deck", "red-aggro", "player deck template name")
	opponentDeck := flag.String("opponent-deck", "random", "opponent deck template name")
	opponentKind := flag.String("opponent", "random", "opponent bot kind")
	seed := flag.Int64("seed", 1, "base RNG seed")
	flag.Parse()

	if err := logger.Init(nil); err != nil {
		panic(err)
	}

	reg := catalog.NewRegistry(catalog.StarterCards)
	manager := session.NewManager(reg)

	var wins, losses, draws, truncated int
	var totalSteps int

	for i := 0; i < *games; i++ {
		gameSeed := *seed + int64(i)
		opponent, resolvedKind := session.ResolveOpponent(*opponentKind, gameSeed+1)
		sess, err := manager.Create(*playerDeck, *opponentDeck, opponent, resolvedKind, gameSeed)
		if err != nil {
			fmt.Fprintf(os.Stderr, "game %d: failed to create session: %v\n", i, err)
			continue
		}

		bot := firstLegalActionBot{}
		result := sess.State()
		for !result.Done && !result.Truncated {
			legal := sess.Legal(state.Player)
			if len(legal) == 0 {
				break
			}
			act, err := bot.ChooseAction(sess.Game, state.Player, legal)
			if err != nil {
				break
			}
			idx := indexOf(legal, act)
			result = sess.Step(idx)
		}

		totalSteps += result.StepCount
		switch {
		case result.Truncated:
			truncated++
		case result.Winner == nil:
			draws++
		case *result.Winner == state.Player:
			wins++
		default:
			losses++
		}

		manager.Delete(sess.ID)
	}

	fmt.Printf("games: %d  wins: %d  losses: %d  draws: %d  truncated: %d\n",
		*games, wins, losses, draws, truncated)
	if *games > 0 {
		fmt.Printf("avg steps per game: %.1f\n", float64(totalSteps)/float64(*games))
	}
}

func indexOf(legal []action.Action, act action.Action) int {
	for i, candidate := range legal {
		if action.Equal(candidate, act) {
			return i
		}
	}
	return 0
}
