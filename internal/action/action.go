// Package action defines the Action sum type, the legal-action generator,
// the validator, and ApplyAction = validator ∘ mutator (spec.md §4.7).
package action

import "mtgsim/internal/state"

// Kind discriminates the Action tagged variant.
type Kind string

const (
	KindPlayLand        Kind = "PLAY_LAND"
	KindCastSpell        Kind = "CAST_SPELL"
	KindActivateAbility  Kind = "ACTIVATE_ABILITY"
	KindDeclareAttackers Kind = "DECLARE_ATTACKERS"
	KindDeclareBlockers  Kind = "DECLARE_BLOCKERS"
	KindPassPriority     Kind = "PASS_PRIORITY"
	KindEndTurn          Kind = "END_TURN"
)

// BlockPair names one blocker/attacker assignment within a DECLARE_BLOCKERS action.
type BlockPair struct {
	BlockerID  state.InstanceID
	AttackerID state.InstanceID
}

// Action is the tagged variant every legal move in the game is expressed as.
// Only the fields relevant to Kind are populated.
type Action struct {
	Kind Kind

	CardInstanceID state.InstanceID // PLAY_LAND, CAST_SPELL
	Targets        []state.TargetRef // CAST_SPELL, ACTIVATE_ABILITY
	HasX           bool
	XValue         int // CAST_SPELL

	SourceID  state.InstanceID // ACTIVATE_ABILITY
	AbilityID string           // ACTIVATE_ABILITY

	Attackers []state.InstanceID // DECLARE_ATTACKERS
	Blocks    []BlockPair        // DECLARE_BLOCKERS

	Description string // human-readable summary, surfaced to queryExpertAction callers
}
