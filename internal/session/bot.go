package session

import (
	"mtgsim/internal/action"
	"mtgsim/internal/state"
)

// Bot is the opponent-driving interface the session consumes. The core
// provides no implementations; Random/Greedy/MCTS-style policies are
// external collaborators (spec.md §4.8 "Bot capability").
type Bot interface {
	ChooseAction(g *state.GameState, playerID state.PlayerID, legal []action.Action) (action.Action, error)
}

// BotFunc adapts a plain function to the Bot interface.
type BotFunc func(g *state.GameState, playerID state.PlayerID, legal []action.Action) (action.Action, error)

func (f BotFunc) ChooseAction(g *state.GameState, playerID state.PlayerID, legal []action.Action) (action.Action, error) {
	return f(g, playerID, legal)
}
