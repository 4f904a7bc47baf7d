package session

import (
	"mtgsim/internal/action"
	"mtgsim/internal/errors"
	"mtgsim/internal/logger"
	"mtgsim/internal/rng"
	"mtgsim/internal/state"

	"go.uber.org/zap"
)

// OpponentKinds is the closed set of opponent kind names the core accepts
// (spec.md §6 "Opponent kinds"). Only "random" and "external" have an
// in-core behavior; the named policy kinds are external collaborators the
// core never implements (an explicit Non-goal) and fall back to the random
// bot with a logged warning, the same pattern deck.Resolve uses for an
// unrecognized deck name.
var OpponentKinds = []string{"random", "greedy", "mcts", "mcts-fast", "mcts-strong", "external"}

// RandomBot picks uniformly among the legal actions. It is the one concrete
// Bot the core ships, needed to make "random" (and the as-yet-unimplemented
// named policy kinds) actually playable; it is not one of the policy
// implementations spec.md's Non-goals exclude.
type RandomBot struct {
	RNG *rng.Source
}

func (b *RandomBot) ChooseAction(g *state.GameState, playerID state.PlayerID, legal []action.Action) (action.Action, error) {
	if len(legal) == 0 {
		return action.Action{}, errors.InvalidAction("no legal actions available to opponent")
	}
	return legal[b.RNG.IntN(len(legal))], nil
}

// ResolveOpponent maps an opponent kind name to a Bot. "external" returns
// nil (the caller drives that seat itself via OpponentStep); an unrecognized
// name falls back to "random" with a logged warning
// (spec.md §7 InvalidConfiguration).
func ResolveOpponent(kind string, seed int64) (Bot, string) {
	switch kind {
	case "external":
		return nil, "external"
	case "random":
		return &RandomBot{RNG: rng.New(seed)}, "random"
	case "greedy", "mcts", "mcts-fast", "mcts-strong":
		logger.Get().Warn("opponent policy not implemented by the core, falling back to random",
			zap.String("requested", kind))
		return &RandomBot{RNG: rng.New(seed)}, "random"
	default:
		logger.Get().Warn("unknown opponent kind, falling back to random", zap.String("requested", kind))
		return &RandomBot{RNG: rng.New(seed)}, "random"
	}
}
