package action

import (
	"mtgsim/internal/errors"
	"mtgsim/internal/state"

	"go.uber.org/multierr"
)

// Validate re-derives the legal-action list and confirms act is a member of
// it, aggregating every mismatch found along the way with multierr so
// callers can report more than just "not legal" (spec.md §4.7 "Validator").
func (gn *Generator) Validate(g *state.GameState, pid state.PlayerID, act Action) error {
	legal := gn.Legal(g, pid)
	for _, candidate := range legal {
		if equalAction(candidate, act) {
			return nil
		}
	}

	var err error
	err = multierr.Append(err, errors.InvalidAction("action is not in the current legal-action set"))
	if len(legal) == 0 {
		err = multierr.Append(err, errors.InvalidAction("no legal actions are available for this player right now"))
	}
	return err
}

// Equal reports whether two actions denote the same move (Action contains
// slices, so it is not comparable with ==).
func Equal(a, b Action) bool { return equalAction(a, b) }

func equalAction(a, b Action) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindPlayLand:
		return a.CardInstanceID == b.CardInstanceID
	case KindCastSpell:
		return a.CardInstanceID == b.CardInstanceID && a.XValue == b.XValue && equalTargets(a.Targets, b.Targets)
	case KindActivateAbility:
		return a.SourceID == b.SourceID && a.AbilityID == b.AbilityID && equalTargets(a.Targets, b.Targets)
	case KindDeclareAttackers:
		return equalInstanceIDs(a.Attackers, b.Attackers)
	case KindDeclareBlockers:
		return equalBlocks(a.Blocks, b.Blocks)
	case KindPassPriority, KindEndTurn:
		return true
	}
	return false
}

func equalTargets(a, b []state.TargetRef) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInstanceIDs(a, b []state.InstanceID) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[state.InstanceID]bool{}
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}

func equalBlocks(a, b []BlockPair) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[BlockPair]bool{}
	for _, p := range a {
		seen[p] = true
	}
	for _, p := range b {
		if !seen[p] {
			return false
		}
	}
	return true
}
