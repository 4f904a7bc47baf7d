package rl

import "mtgsim/internal/action"

// Mask builds a length-MaxActions boolean vector aligned to legal, where
// entry i is true iff index i names a legal action (spec.md §6 "Action
// mask"). Entries beyond len(legal) are false.
func Mask(legal []action.Action) [action.MaxActions]bool {
	var mask [action.MaxActions]bool
	for i := range legal {
		if i >= action.MaxActions {
			break
		}
		mask[i] = true
	}
	return mask
}
