package catalog

func str(s string) *string { return &s }

// ids used as ScryfallID below are stable, catalog-local slugs rather than
// real Scryfall UUIDs -- the engine never talks to Scryfall (that enrichment
// lives in the out-of-scope web inspector), it only needs a stable key.

// StarterCards is the fixed card pool loaded at process startup. It is sized
// to exercise every targeting pattern and every effects-library function
// named in spec.md §4.4/§4.5, not to approach tournament-legal completeness.
var StarterCards = []*CardTemplate{
	// Basic lands.
	{ID: "mountain", Name: "Mountain", TypeLine: "Basic Land - Mountain", OracleText: "{T}: Add {R}."},
	{ID: "island", Name: "Island", TypeLine: "Basic Land - Island", OracleText: "{T}: Add {U}."},
	{ID: "swamp", Name: "Swamp", TypeLine: "Basic Land - Swamp", OracleText: "{T}: Add {B}."},
	{ID: "plains", Name: "Plains", TypeLine: "Basic Land - Plains", OracleText: "{T}: Add {W}."},
	{ID: "forest", Name: "Forest", TypeLine: "Basic Land - Forest", OracleText: "{T}: Add {G}."},

	// Burn / removal / counters.
	{
		ID: "lightning-bolt", Name: "Lightning Bolt", ManaCost: "{R}", CMC: 1,
		TypeLine: "Instant", Colors: []MtgColor{Red},
		OracleText: "Lightning Bolt deals 3 damage to any target.",
	},
	{
		ID: "terror", Name: "Terror", ManaCost: "{1}{B}", CMC: 2,
		TypeLine: "Instant", Colors: []MtgColor{Black},
		OracleText: "Destroy target nonartifact, nonblack creature. It can't be regenerated.",
	},
	{
		ID: "counterspell", Name: "Counterspell", ManaCost: "{U}{U}", CMC: 2,
		TypeLine: "Instant", Colors: []MtgColor{Blue},
		OracleText: "Counter target spell.",
	},
	{
		ID: "unsummon", Name: "Unsummon", ManaCost: "{U}", CMC: 1,
		TypeLine: "Instant", Colors: []MtgColor{Blue},
		OracleText: "Return target creature to its owner's hand.",
	},
	{
		ID: "giant-growth", Name: "Giant Growth", ManaCost: "{G}", CMC: 1,
		TypeLine: "Instant", Colors: []MtgColor{Green},
		OracleText: "Target creature gets +3/+3 until end of turn.",
	},

	// Mass effects.
	{
		ID: "wrath-of-god", Name: "Wrath of God", ManaCost: "{2}{W}{W}", CMC: 4,
		TypeLine: "Sorcery", Colors: []MtgColor{White},
		OracleText: "Destroy all creatures. They can't be regenerated.",
	},
	{
		ID: "earthquake", Name: "Earthquake", ManaCost: "{X}{R}", CMC: 1,
		TypeLine: "Instant", Colors: []MtgColor{Red},
		OracleText: "Earthquake deals X damage to each creature and each player without flying.",
	},
	{
		ID: "flood", Name: "Flood", ManaCost: "{1}{U}", CMC: 2,
		TypeLine: "Sorcery", Colors: []MtgColor{Blue},
		OracleText: "Destroy all non-Island lands.",
	},

	// Draw / discard / recursion / tutor.
	{
		ID: "inspiration", Name: "Inspiration", ManaCost: "{3}{U}", CMC: 4,
		TypeLine: "Instant", Colors: []MtgColor{Blue},
		OracleText: "Draw two cards.",
	},
	{
		ID: "mind-rot", Name: "Mind Rot", ManaCost: "{2}{B}", CMC: 3,
		TypeLine: "Sorcery", Colors: []MtgColor{Black},
		OracleText: "Target player discards two cards.",
	},
	{
		ID: "raise-dead", Name: "Raise Dead", ManaCost: "{B}", CMC: 1,
		TypeLine: "Sorcery", Colors: []MtgColor{Black},
		OracleText: "Return target creature card from your graveyard to your hand.",
	},
	{
		ID: "rampant-growth", Name: "Rampant Growth", ManaCost: "{1}{G}", CMC: 2,
		TypeLine: "Sorcery", Colors: []MtgColor{Green},
		OracleText: "Search your library for a basic land card and put it onto the battlefield tapped. Then shuffle your library.",
	},

	// Creatures.
	{
		ID: "grizzly-bears", Name: "Grizzly Bears", ManaCost: "{1}{G}", CMC: 2,
		TypeLine: "Creature - Bear", Colors: []MtgColor{Green},
		Power: str("2"), Toughness: str("2"),
		OracleText: "",
	},
	{
		ID: "hill-giant", Name: "Hill Giant", ManaCost: "{3}{R}", CMC: 4,
		TypeLine: "Creature - Giant", Colors: []MtgColor{Red},
		Power: str("3"), Toughness: str("3"),
		OracleText: "",
	},
	{
		ID: "serra-angel", Name: "Serra Angel", ManaCost: "{3}{W}{W}", CMC: 5,
		TypeLine: "Creature - Angel", Colors: []MtgColor{White},
		Power: str("4"), Toughness: str("4"), Keywords: []string{KeywordFlying},
		OracleText: "Flying",
	},
	{
		ID: "giant-spider", Name: "Giant Spider", ManaCost: "{3}{G}", CMC: 4,
		TypeLine: "Creature - Spider", Colors: []MtgColor{Green},
		Power: str("2"), Toughness: str("4"), Keywords: []string{KeywordReach},
		OracleText: "Reach",
	},
	{
		ID: "llanowar-elves", Name: "Llanowar Elves", ManaCost: "{G}", CMC: 1,
		TypeLine: "Creature - Elf", Colors: []MtgColor{Green},
		Power: str("1"), Toughness: str("1"),
		OracleText: "{T}: Add {G}.",
	},
	{
		ID: "royal-assassin", Name: "Royal Assassin", ManaCost: "{1}{B}{B}", CMC: 3,
		TypeLine: "Creature - Assassin", Colors: []MtgColor{Black},
		Power: str("1"), Toughness: str("1"),
		OracleText: "{T}: Destroy target tapped creature.",
	},
	{
		ID: "prodigal-sorcerer", Name: "Prodigal Sorcerer", ManaCost: "{2}{U}", CMC: 3,
		TypeLine: "Creature - Human Wizard", Colors: []MtgColor{Blue},
		Power: str("1"), Toughness: str("1"),
		OracleText: "{T}: Prodigal Sorcerer deals 1 damage to any target.",
	},
	{
		ID: "black-knight", Name: "Black Knight", ManaCost: "{B}{B}", CMC: 2,
		TypeLine: "Creature - Human Knight", Colors: []MtgColor{Black},
		Power: str("2"), Toughness: str("2"),
		OracleText: "Protection from white.",
	},
	{
		ID: "sacred-guardian", Name: "Sacred Guardian", ManaCost: "{3}{W}{W}", CMC: 5,
		TypeLine: "Creature - Human Cleric", Colors: []MtgColor{White},
		Power: str("3"), Toughness: str("3"),
		OracleText: "Protection from all colors.",
	},
	{
		ID: "mistfolk-seer", Name: "Mistfolk Seer", ManaCost: "{2}{U}", CMC: 3,
		TypeLine: "Creature - Human Wizard", Colors: []MtgColor{Blue},
		Power: str("2"), Toughness: str("2"), Keywords: []string{KeywordShroud},
		OracleText: "Shroud",
	},
	{
		ID: "rootrunner-druid", Name: "Rootrunner Druid", ManaCost: "{1}{G}", CMC: 2,
		TypeLine: "Creature - Human Druid", Colors: []MtgColor{Green},
		Power: str("2"), Toughness: str("2"), Keywords: []string{KeywordHexproof},
		OracleText: "Hexproof",
	},
	{
		ID: "craw-wurm", Name: "Craw Wurm", ManaCost: "{4}{G}{G}", CMC: 6,
		TypeLine: "Creature - Wurm", Colors: []MtgColor{Green},
		Power: str("6"), Toughness: str("4"),
		OracleText: "",
	},

	// Triggered-ability creatures, exercising the stacked trigger pipeline
	// (internal/triggers) end to end: an ENTERS_BATTLEFIELD and a DIES
	// handler, each registered in internal/triggers/cards.go.
	{
		ID: "venerable-monk", Name: "Venerable Monk", ManaCost: "{2}{W}", CMC: 3,
		TypeLine: "Creature - Human Cleric", Colors: []MtgColor{White},
		Power: str("2"), Toughness: str("2"),
		OracleText: "When Venerable Monk enters the battlefield, you gain 2 life.",
	},
	{
		ID: "charnel-worm", Name: "Charnel Worm", ManaCost: "{1}{B}", CMC: 2,
		TypeLine: "Creature - Worm", Colors: []MtgColor{Black},
		Power: str("1"), Toughness: str("2"),
		OracleText: "When Charnel Worm dies, you gain 1 life.",
	},
}
