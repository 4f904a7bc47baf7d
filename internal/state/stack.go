package state

// TargetKind discriminates what a TargetRef points at.
type TargetKind string

const (
	TargetKindPlayer TargetKind = "player"
	TargetKindCard   TargetKind = "card"
	TargetKindStack  TargetKind = "stack"
)

// TargetRef identifies a chosen target: a player, a CardInstance (by
// InstanceID, resolved by scanning zones), or another stack object (for
// counterspells).
type TargetRef struct {
	Kind     TargetKind
	PlayerID PlayerID
	CardID   InstanceID
	StackID  StackID
}

func PlayerTarget(id PlayerID) TargetRef  { return TargetRef{Kind: TargetKindPlayer, PlayerID: id} }
func CardTarget(id InstanceID) TargetRef  { return TargetRef{Kind: TargetKindCard, CardID: id} }
func StackTarget(id StackID) TargetRef    { return TargetRef{Kind: TargetKindStack, StackID: id} }

// StackObject is a spell or ability awaiting resolution on the stack.
type StackObject struct {
	ID         StackID
	Controller PlayerID
	Card       *CardInstance // the CardInstance being cast (nil for pure activated abilities with no card)
	SourceID   InstanceID    // source permanent, for activated/triggered abilities
	AbilityID  string        // non-empty when this object is an activated/triggered ability, not a spell
	XValue     int
	Targets    []TargetRef

	Countered    bool
	PutOnLibrary bool

	// TriggerApply is set for stack objects representing a triggered or
	// activated ability; it is the closure that performs the effect when
	// this object resolves, given whatever targets survived Recheck.
	TriggerApply func(g *GameState, legalTargets []TargetRef) error

	// Recheck re-validates this object's original targets against their
	// requirements at resolution time (spec.md §4.2 "Fizzle"). nil means the
	// object never had targets to begin with (most triggers) and can never
	// fizzle.
	Recheck func(*GameState) RecheckOutcome
}

// RecheckOutcome is the result of re-validating a stack object's targets
// immediately before it resolves.
type RecheckOutcome struct {
	LegalTargets   []TargetRef
	AllIllegal bool
}

// IsSpell reports whether this stack object represents a card being cast
// (as opposed to an activated or triggered ability).
func (s *StackObject) IsSpell() bool { return s.AbilityID == "" }
