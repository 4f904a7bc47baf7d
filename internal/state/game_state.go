package state

import "mtgsim/internal/rng"

// PendingTrigger is a queued trigger effect awaiting either immediate
// application or being placed on the stack (spec.md §4.6, §9). Apply
// mutates GameState directly; the closure captures whatever inputs the
// handler needs (source, event payload) at registration time.
type PendingTrigger struct {
	Event       string
	SourceID    InstanceID
	Controller  PlayerID
	Description string
	Apply       func(*GameState) error
}

// Outcome records whether, and how, the game ended.
type Outcome struct {
	Decided bool
	Draw    bool
	Winner  PlayerID // meaningful only when Decided && !Draw
}

// GameState is the single aggregate the engine mutates. It exclusively owns
// every CardInstance it references (spec.md §3 "Ownership & lifecycle").
type GameState struct {
	Players map[PlayerID]*Player
	Stack   []*StackObject

	TurnCount int
	Phase     Phase
	Step      Step

	ActivePlayer      PlayerID
	priorityPlayer    PlayerID
	priorityPlayerSet bool

	PreventAllCombatDamage bool

	Outcome Outcome

	RNG *rng.Source
	Seed int64

	Triggers []PendingTrigger

	nextInstanceSeq int
	nextStackSeq    int
}

// GameOver is a convenience accessor mirroring spec.md's `gameOver` field.
func (g *GameState) GameOver() bool { return g.Outcome.Decided }

// PriorityPlayer returns the player who currently holds priority and whether
// priority is currently defined (it is undefined only inside atomic
// transitions, per invariant 5).
func (g *GameState) PriorityPlayer() (PlayerID, bool) { return g.priorityPlayer, g.priorityPlayerSet }

// SetPriority assigns priority to a player.
func (g *GameState) SetPriority(p PlayerID) {
	g.priorityPlayer = p
	g.priorityPlayerSet = true
}

// ClearPriority marks priority as undefined (only valid mid-transition).
func (g *GameState) ClearPriority() { g.priorityPlayerSet = false }

// NewGameState builds an empty two-player game state with the given seed.
func NewGameState(seed int64) *GameState {
	return &GameState{
		Players: map[PlayerID]*Player{
			Player:   NewPlayer(Player, ""),
			Opponent: NewPlayer(Opponent, ""),
		},
		Phase: PhaseBeginning,
		Step:  StepUntap,
		RNG:   rng.New(seed),
		Seed:  seed,
	}
}

// NextInstanceID allocates the next instance id from this game's own
// counter ("card-1", "card-2", ...). Ids are unique within the game, not
// across games.
func (g *GameState) NextInstanceID() InstanceID {
	g.nextInstanceSeq++
	return InstanceID(itoa(g.nextInstanceSeq, "card-"))
}

// NextStackID allocates the next stack id from this game's own counter
// ("stack-1", "stack-2", ...).
func (g *GameState) NextStackID() StackID {
	g.nextStackSeq++
	return StackID(itoa(g.nextStackSeq, "stack-"))
}

func itoa(n int, prefix string) string {
	// Avoids importing strconv in a hot allocation path at only a tiny
	// readability cost; kept simple since ids are opaque strings.
	digits := [20]byte{}
	i := len(digits)
	if n == 0 {
		i--
		digits[i] = '0'
	}
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return prefix + string(digits[i:])
}

// FindCard scans both players' battlefield, graveyard, hand, library and
// exile, then the stack, for the given instance id.
func (g *GameState) FindCard(id InstanceID) (*CardInstance, PlayerID, Zone) {
	for _, pid := range []PlayerID{Player, Opponent} {
		p := g.Players[pid]
		for _, z := range []Zone{ZoneBattlefield, ZoneGraveyard, ZoneHand, ZoneLibrary, ZoneExile} {
			if c, _ := p.FindInZone(z, id); c != nil {
				return c, pid, z
			}
		}
	}
	for _, so := range g.Stack {
		if so.Card != nil && so.Card.InstanceID == id {
			return so.Card, so.Controller, ZoneStack
		}
	}
	return nil, "", ""
}

// TopOfStack returns the top (next to resolve) stack object, or nil if empty.
func (g *GameState) TopOfStack() *StackObject {
	if len(g.Stack) == 0 {
		return nil
	}
	return g.Stack[len(g.Stack)-1]
}

// PushStack pushes a new object onto the top of the stack.
func (g *GameState) PushStack(so *StackObject) { g.Stack = append(g.Stack, so) }

// PopStack removes and returns the top stack object.
func (g *GameState) PopStack() *StackObject {
	top := g.TopOfStack()
	if top == nil {
		return nil
	}
	g.Stack = g.Stack[:len(g.Stack)-1]
	return top
}

// DrainTriggers removes and returns every queued trigger, in FIFO order.
func (g *GameState) DrainTriggers() []PendingTrigger {
	t := g.Triggers
	g.Triggers = nil
	return t
}

// Clone returns a deep, independent copy of the entire game state, including
// an RNG positioned at the same point in its stream, so the copy can be
// advanced without disturbing the original. Session reset does not use it;
// it rebuilds the state from the seed.
func (g *GameState) Clone() *GameState {
	cp := &GameState{
		TurnCount:              g.TurnCount,
		Phase:                  g.Phase,
		Step:                   g.Step,
		ActivePlayer:           g.ActivePlayer,
		priorityPlayer:         g.priorityPlayer,
		priorityPlayerSet:      g.priorityPlayerSet,
		PreventAllCombatDamage: g.PreventAllCombatDamage,
		Outcome:                g.Outcome,
		RNG:                    g.RNG.Clone(),
		Seed:                   g.Seed,
		nextInstanceSeq:        g.nextInstanceSeq,
		nextStackSeq:           g.nextStackSeq,
	}
	cp.Players = make(map[PlayerID]*Player, len(g.Players))
	for id, p := range g.Players {
		cp.Players[id] = p.Clone()
	}
	cp.Stack = make([]*StackObject, len(g.Stack))
	for i, so := range g.Stack {
		soCopy := *so
		if so.Card != nil {
			soCopy.Card = so.Card.Clone()
		}
		soCopy.Targets = append([]TargetRef(nil), so.Targets...)
		cp.Stack[i] = &soCopy
	}
	// Triggers intentionally not deep-copied: PendingTrigger.Apply closures
	// capture values from the original state and cannot be safely replayed
	// against a clone; a clone is only ever used at quiescent points between
	// external steps, where the trigger queue is always empty (§4.1 cleanup
	// drains it before re-entering).
	return cp
}
