// Package deck holds the closed set of named starter deck templates plus
// the "random" draw-from-all-templates kind (spec.md §6 "Deck kinds").
package deck

import (
	"mtgsim/internal/catalog"
	"mtgsim/internal/logger"
	"mtgsim/internal/rng"

	"go.uber.org/zap"
)

// Entry names one scryfallId/count pair in a deck template's multiset.
type Entry struct {
	ScryfallID string
	Count      int
}

// Template is a named, fixed 40-card deck list.
type Template struct {
	Name    string
	Entries []Entry
}

// DefaultName is the deterministic fallback used whenever a requested deck
// name is unknown (spec.md §7 InvalidConfiguration: "recoverable").
const DefaultName = "red-aggro"

// templates is the closed set of starter decks, validated against the
// catalog at package init so a malformed template is a build-time
// programmer error rather than a runtime surprise.
var templates = map[string]Template{
	"red-aggro": {
		Name: "red-aggro",
		Entries: []Entry{
			{"mountain", 17},
			{"lightning-bolt", 4},
			{"hill-giant", 4},
			{"earthquake", 3},
			{"prodigal-sorcerer", 4},
			{"black-knight", 4},
			{"craw-wurm", 4},
		},
	},
	"blue-control": {
		Name: "blue-control",
		Entries: []Entry{
			{"island", 18},
			{"counterspell", 4},
			{"unsummon", 4},
			{"inspiration", 4},
			{"mistfolk-seer", 4},
			{"prodigal-sorcerer", 4},
			{"flood", 2},
		},
	},
	"black-control": {
		Name: "black-control",
		Entries: []Entry{
			{"swamp", 17},
			{"terror", 4},
			{"mind-rot", 4},
			{"raise-dead", 3},
			{"black-knight", 4},
			{"royal-assassin", 4},
			{"charnel-worm", 4},
		},
	},
	"green-ramp": {
		Name: "green-ramp",
		Entries: []Entry{
			{"forest", 17},
			{"llanowar-elves", 4},
			{"rampant-growth", 4},
			{"giant-growth", 3},
			{"rootrunner-druid", 4},
			{"giant-spider", 4},
			{"craw-wurm", 4},
		},
	},
	"white-weenie": {
		Name: "white-weenie",
		Entries: []Entry{
			{"plains", 21},
			{"wrath-of-god", 3},
			{"serra-angel", 4},
			{"sacred-guardian", 4},
			{"grizzly-bears", 4},
			{"venerable-monk", 4},
		},
	},
}

var validationRegistry = catalog.NewRegistry(catalog.StarterCards)

// orderedNames is the fixed iteration order for the "random" deck kind.
// Go deliberately randomizes map-iteration order, so ranging over
// `templates` directly (as `Names` used to) would make `Resolve("random", r)`
// pick a different template for the same seed across runs, breaking
// spec.md's determinism property. This slice is the single source of truth
// for that order; `init` checks it stays in sync with `templates`.
var orderedNames = []string{
	"red-aggro",
	"blue-control",
	"black-control",
	"green-ramp",
	"white-weenie",
}

func init() {
	if len(orderedNames) != len(templates) {
		panic("deck: orderedNames is out of sync with templates")
	}
	for _, name := range orderedNames {
		tmpl, ok := templates[name]
		if !ok {
			panic("deck: orderedNames references undefined template " + name)
		}
		total := 0
		for _, e := range tmpl.Entries {
			if _, ok := validationRegistry.Get(e.ScryfallID); !ok {
				panic("deck: template " + name + " references unknown card " + e.ScryfallID)
			}
			total += e.Count
		}
		if total == 0 {
			panic("deck: template " + name + " is empty")
		}
	}
}

// Names lists every valid deck name, in the fixed order `Resolve` indexes
// with the "random" kind, for validation and CLI prompts.
func Names() []string {
	out := make([]string, len(orderedNames))
	copy(out, orderedNames)
	return out
}

// Resolve looks up a deck by name, falling back to DefaultName (with a
// logged warning) for an unknown name, and expanding "random" to a
// deterministic pick from RNG over the fixed `orderedNames` order (never a
// map range, which would not be a deterministic function of the seed).
func Resolve(name string, r *rng.Source) Template {
	if name == "random" {
		return templates[orderedNames[r.IntN(len(orderedNames))]]
	}
	if tmpl, ok := templates[name]; ok {
		return tmpl
	}
	logger.Get().Warn("unknown deck name, falling back to default",
		zap.String("requested", name), zap.String("fallback", DefaultName))
	return templates[DefaultName]
}

// Instantiate expands a Template into the ordered scryfallId multiset a
// fresh library is built from (pre-shuffle; callers shuffle via the
// session's RNG for determinism).
func Instantiate(tmpl Template) []string {
	var out []string
	for _, e := range tmpl.Entries {
		for i := 0; i < e.Count; i++ {
			out = append(out, e.ScryfallID)
		}
	}
	return out
}
