// Package spells maps a card name to its resolution behavior (spec.md §4.3
// step 2: "look up a card-specific implementation by name in the spell
// registry"). Each resolver receives the already-validated, post-fizzle-
// recheck target list and applies effects via internal/effects.
package spells

import (
	"mtgsim/internal/effects"
	"mtgsim/internal/state"
)

// Resolver applies a spell's resolution effect. legalTargets is the subset
// of so.Targets that survived the resolution-time fizzle recheck, in the
// same order as the card's parsed target requirements.
type Resolver func(g *state.GameState, eff effects.Context, so *state.StackObject, legalTargets []state.TargetRef) error

var registry = map[string]Resolver{}

// register is called from each effect-family file's init().
func register(name string, r Resolver) {
	registry[name] = r
}

// Lookup returns the registered resolver for a card name, if any. A card
// with no registered resolver falls back to the engine's built-in
// targeting-derived behaviors (step 3 of spec.md §4.3), handled in
// internal/engine, not here.
func Lookup(name string) (Resolver, bool) {
	r, ok := registry[name]
	return r, ok
}
