package targeting

import (
	"fmt"
	"regexp"
	"strings"
)

// patternEntry pairs a regex against lowercased, trigger-stripped oracle
// text with a builder that turns a match into one TargetRequirement.
// Priority is expressed purely by table order: the first matching entry
// wins, so more specific patterns are listed before more general ones.
type patternEntry struct {
	name    string
	re      *regexp.Regexp
	builder func(id string, count int, m []string) TargetRequirement
}

var triggerPrefix = regexp.MustCompile(`(?i)^(when|whenever|at )[^.]*\.\s*`)
var costPrefix = regexp.MustCompile(`^\{[^}]*\}\s*:\s*`)
var countWord = regexp.MustCompile(`(?i)\btarget(s)?\b`)

// stripNonTargetClauses removes triggered-ability and activation-cost
// prefixes from oracle text before pattern matching, per spec.md §4.4.
func stripNonTargetClauses(text string) string {
	text = costPrefix.ReplaceAllString(text, "")
	text = triggerPrefix.ReplaceAllString(text, "")
	return text
}

// patternTable is appended to, never reordered, keeping earlier entries'
// priority intact as new ones are added (the extensibility requirement).
var patternTable = []patternEntry{
	{
		name: "compound-nonartifact-nonblack-creature",
		re:   regexp.MustCompile(`(?i)target nonartifact,\s*nonblack creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{
					{Kind: RestrictionNonartifact},
					{Kind: RestrictionColor, Color: "B", Negated: true},
				},
				Description: "target nonartifact, nonblack creature",
			}
		},
	},
	{
		name: "creature-you-control",
		re:   regexp.MustCompile(`(?i)target creature you control`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionController, Controller: ControllerYou}},
				Description:  "target creature you control",
			}
		},
	},
	{
		name: "creature-opponent-controls",
		re:   regexp.MustCompile(`(?i)target creature an? opponent controls`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionController, Controller: ControllerOpponent}},
				Description:  "target creature an opponent controls",
			}
		},
	},
	{
		name: "attacking-or-blocking-creature",
		re:   regexp.MustCompile(`(?i)target attacking or blocking creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionCombat, Combat: CombatAttackingOrBlocking}},
				Description:  "target attacking or blocking creature",
			}
		},
	},
	{
		name: "attacking-creature",
		re:   regexp.MustCompile(`(?i)target attacking creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionCombat, Combat: CombatAttacking}},
				Description:  "target attacking creature",
			}
		},
	},
	{
		name: "blocking-creature",
		re:   regexp.MustCompile(`(?i)target blocking creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionCombat, Combat: CombatBlocking}},
				Description:  "target blocking creature",
			}
		},
	},
	{
		name: "tapped-creature",
		re:   regexp.MustCompile(`(?i)target tapped creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionTapped}},
				Description:  "target tapped creature",
			}
		},
	},
	{
		name: "untapped-creature",
		re:   regexp.MustCompile(`(?i)target untapped creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionUntapped}},
				Description:  "target untapped creature",
			}
		},
	},
	{
		name: "creature-card-from-your-graveyard",
		re:   regexp.MustCompile(`(?i)target creature card from your graveyard`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneGraveyard,
				Restrictions: []TargetRestriction{{Kind: RestrictionController, Controller: ControllerYou}},
				Description:  "target creature card from your graveyard",
			}
		},
	},
	{
		name: "non-color-creature",
		re:   regexp.MustCompile(`(?i)target non(white|blue|black|red|green) creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionColor, Color: colorLetter(m[1]), Negated: true}},
				Description:  "target non" + m[1] + " creature",
			}
		},
	},
	{
		name: "color-creature",
		re:   regexp.MustCompile(`(?i)target (white|blue|black|red|green) creature`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{
				ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Restrictions: []TargetRestriction{{Kind: RestrictionColor, Color: colorLetter(m[1])}},
				Description:  "target " + m[1] + " creature",
			}
		},
	},
	{
		name: "instant-or-sorcery-spell",
		re:   regexp.MustCompile(`(?i)target instant or sorcery spell`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeSpell, Zone: ZoneStack,
				Description: "target instant or sorcery spell"}
		},
	},
	{
		name: "creature-spell",
		re:   regexp.MustCompile(`(?i)target creature spell`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeCreatureSpell, Zone: ZoneStack,
				Description: "target creature spell"}
		},
	},
	{
		name: "spell",
		re:   regexp.MustCompile(`(?i)target spell`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeSpell, Zone: ZoneStack,
				Description: "target spell"}
		},
	},
	{
		name: "opponent",
		re:   regexp.MustCompile(`(?i)target opponent\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeOpponent, Zone: ZoneAny,
				Description: "target opponent"}
		},
	},
	{
		name: "player",
		re:   regexp.MustCompile(`(?i)target player\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypePlayer, Zone: ZoneAny,
				Description: "target player"}
		},
	},
	{
		name: "artifact-or-enchantment",
		re:   regexp.MustCompile(`(?i)target artifact or enchantment`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeArtifactOrEnchant, Zone: ZoneBattlefield,
				Description: "target artifact or enchantment"}
		},
	},
	{
		name: "artifact",
		re:   regexp.MustCompile(`(?i)target artifact\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeArtifact, Zone: ZoneBattlefield,
				Description: "target artifact"}
		},
	},
	{
		name: "enchantment",
		re:   regexp.MustCompile(`(?i)target enchantment\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeEnchantment, Zone: ZoneBattlefield,
				Description: "target enchantment"}
		},
	},
	{
		name: "land",
		re:   regexp.MustCompile(`(?i)target land\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeLand, Zone: ZoneBattlefield,
				Description: "target land"}
		},
	},
	{
		name: "permanent",
		re:   regexp.MustCompile(`(?i)target permanent\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypePermanent, Zone: ZoneBattlefield,
				Description: "target permanent"}
		},
	},
	{
		name: "creature",
		re:   regexp.MustCompile(`(?i)target creature\b`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeCreature, Zone: ZoneBattlefield,
				Description: "target creature"}
		},
	},
	{
		name: "any-target",
		re:   regexp.MustCompile(`(?i)any target`),
		builder: func(id string, count int, m []string) TargetRequirement {
			return TargetRequirement{ID: id, Count: count, TargetType: TypeAny, Zone: ZoneAny,
				Description: "any target"}
		},
	},
}

func colorLetter(name string) string {
	switch strings.ToLower(name) {
	case "white":
		return "W"
	case "blue":
		return "U"
	case "black":
		return "B"
	case "red":
		return "R"
	case "green":
		return "G"
	}
	return ""
}

// ParseTargetRequirements scans oracle text sentence by sentence, applying
// the first matching pattern table entry to each "target ..." occurrence.
// Sentences are split on ". " so a card with multiple independent target
// clauses (e.g. "Destroy target creature. Its controller draws a card.")
// produces one requirement for the targeting clause, none for clauses
// without "target". Each sentence yields at most one requirement, from the
// first matching table entry; a second target in the same sentence is not
// parsed. Requirements get sequential ids across sentences ("target1",
// "target2", ...).
func ParseTargetRequirements(oracleText string) []TargetRequirement {
	var reqs []TargetRequirement
	seq := 0
	for _, sentence := range strings.Split(oracleText, ". ") {
		clause := stripNonTargetClauses(sentence)
		if !countWord.MatchString(clause) {
			continue
		}
		for _, entry := range patternTable {
			loc := entry.re.FindStringSubmatchIndex(clause)
			if loc == nil {
				continue
			}
			m := make([]string, len(loc)/2)
			for i := range m {
				if loc[2*i] >= 0 {
					m[i] = clause[loc[2*i]:loc[2*i+1]]
				}
			}
			seq++
			req := entry.builder(fmt.Sprintf("target%d", seq), 1, m)
			reqs = append(reqs, req)
			break
		}
	}
	return reqs
}
