package catalog

import (
	"strconv"

	"mtgsim/internal/state"
)

// EffectivePower and EffectiveToughness compute a creature's current
// power/toughness: the template's base value (with non-numeric placeholders
// like "*" treated as 0, since none of the starter cards use characteristic-
// defining abilities) plus every active temporary modification plus +1/+1
// and -1/-1 counters netted against each other.
func EffectivePower(tmpl *CardTemplate, ci *state.CardInstance) int {
	base := parsePT(tmpl.Power)
	dp, _ := ci.PowerToughnessDelta()
	return base + dp + counterDelta(ci)
}

func EffectiveToughness(tmpl *CardTemplate, ci *state.CardInstance) int {
	base := parsePT(tmpl.Toughness)
	_, dt := ci.PowerToughnessDelta()
	return base + dt + counterDelta(ci)
}

func parsePT(s *string) int {
	if s == nil {
		return 0
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return 0
	}
	return n
}

func counterDelta(ci *state.CardInstance) int {
	return ci.Counters["+1/+1"] - ci.Counters["-1/-1"]
}
