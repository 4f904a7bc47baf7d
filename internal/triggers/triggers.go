// Package triggers raises and dispatches triggered-ability events (ENTERS_
// BATTLEFIELD, DIES, BECOMES_TAPPED, and friends). It depends on state but
// state never depends back on it: every queued trigger is represented as a
// state.PendingTrigger, a type owned by the state package precisely so this
// package can stay a one-way dependency.
package triggers

import "mtgsim/internal/state"

// EventType names a trigger condition. Not a closed set in the traditional
// enum sense, since oracle text can introduce bespoke ones per card, but
// these are the events the built-in effects library and spell registry
// raise.
type EventType string

const (
	EventEntersBattlefield EventType = "ENTERS_BATTLEFIELD"
	EventDies              EventType = "DIES"
	EventBecomesTapped     EventType = "BECOMES_TAPPED"
	EventUpkeep            EventType = "UPKEEP"
	EventDealtDamage       EventType = "DEALT_DAMAGE"
)

// Handler builds a PendingTrigger reacting to one specific permanent's event.
// sourceID is the permanent that triggered; controller is its controller at
// the time of the event.
type Handler func(g *state.GameState, sourceID state.InstanceID, controller state.PlayerID) state.PendingTrigger

// registry maps a card name to the handlers it registers per event, mirroring
// the name-keyed spell/ability registries elsewhere in the engine.
type registry struct {
	handlers map[EventType]map[string]Handler
}

var defaultRegistry = &registry{handlers: map[EventType]map[string]Handler{}}

// Register attaches a handler for a given event and card name. Safe to call
// from package init() in the catalog's card-specific trigger files.
func Register(event EventType, cardName string, h Handler) {
	byName, ok := defaultRegistry.handlers[event]
	if !ok {
		byName = map[string]Handler{}
		defaultRegistry.handlers[event] = byName
	}
	byName[cardName] = h
}

// Raise looks up any handler registered for (event, cardName) and, if found,
// queues the resulting PendingTrigger on the game state. Raising an event
// with no registered handler is a silent no-op: most permanents don't care
// about most events.
func Raise(g *state.GameState, event EventType, cardName string, sourceID state.InstanceID, controller state.PlayerID) {
	byName, ok := defaultRegistry.handlers[event]
	if !ok {
		return
	}
	h, ok := byName[cardName]
	if !ok {
		return
	}
	g.Triggers = append(g.Triggers, h(g, sourceID, controller))
}

// ResolutionMode controls whether queued triggers are placed on the stack
// (the tournament-accurate default) or applied the instant they're raised.
type ResolutionMode string

const (
	// ModeStacked queues triggers and requires DrainToStack to place them on
	// the stack at the next priority-passing window, allowing responses.
	ModeStacked ResolutionMode = "stacked"
	// ModeImmediate applies triggers the moment DrainToStack is called,
	// without giving either player a chance to respond. Offered because
	// some battle-tested simplified engines model triggers this way; kept
	// available behind this flag rather than removed.
	ModeImmediate ResolutionMode = "immediate"
)

// DrainToStack converts every queued PendingTrigger into a stack object (mode
// stacked) or applies it immediately (mode immediate), then clears the
// queue. Multiple triggers raised in the same game event are drained in the
// order they were queued (APNAP ordering is the caller's responsibility when
// it matters, per spec.md's single-non-networked-engine scope).
func DrainToStack(g *state.GameState, mode ResolutionMode, nextStackID func() state.StackID) error {
	pending := g.DrainTriggers()
	for _, t := range pending {
		switch mode {
		case ModeImmediate:
			if err := t.Apply(g); err != nil {
				return err
			}
		default:
			trigger := t
			so := &state.StackObject{
				ID:         nextStackID(),
				Controller: trigger.Controller,
				SourceID:   trigger.SourceID,
				AbilityID:  "trigger:" + trigger.Event,
				TriggerApply: func(gs *state.GameState, _ []state.TargetRef) error {
					return trigger.Apply(gs)
				},
			}
			g.PushStack(so)
		}
	}
	return nil
}

// ResolveTriggerStackObject runs the closure for a triggered or activated
// ability that has reached the top of the stack, re-validating its targets
// first if it declared a Recheck. Returns false if so is a plain spell (the
// caller should resolve it through the spell registry instead).
func ResolveTriggerStackObject(g *state.GameState, so *state.StackObject) (bool, error) {
	if so.TriggerApply == nil {
		return false, nil
	}
	var legal []state.TargetRef
	if so.Recheck != nil {
		outcome := so.Recheck(g)
		if outcome.AllIllegal {
			return true, nil
		}
		legal = outcome.LegalTargets
	} else {
		legal = so.Targets
	}
	return true, so.TriggerApply(g, legal)
}
