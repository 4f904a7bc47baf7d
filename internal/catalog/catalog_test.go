package catalog

import (
	"testing"

	"mtgsim/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_LookupByIDAndName(t *testing.T) {
	reg := NewRegistry(StarterCards)

	tmpl, ok := reg.Get("lightning-bolt")
	require.True(t, ok)
	assert.Equal(t, "Lightning Bolt", tmpl.Name)

	byName, ok := reg.GetByName("Lightning Bolt")
	require.True(t, ok)
	assert.Same(t, tmpl, byName)

	_, ok = reg.Get("no-such-card")
	assert.False(t, ok)
	assert.Len(t, reg.All(), len(StarterCards))
}

func TestTypeLinePredicates(t *testing.T) {
	reg := NewRegistry(StarterCards)

	land, _ := reg.Get("mountain")
	assert.True(t, land.IsLand())
	assert.True(t, land.IsPermanent())
	assert.False(t, land.IsCreature())

	bolt, _ := reg.Get("lightning-bolt")
	assert.True(t, bolt.IsInstant())
	assert.False(t, bolt.IsPermanent())

	wrath, _ := reg.Get("wrath-of-god")
	assert.True(t, wrath.IsSorcery())
	assert.False(t, wrath.IsPermanent())

	bears, _ := reg.Get("grizzly-bears")
	assert.True(t, bears.IsCreature())
	assert.True(t, bears.IsPermanent())
}

func TestHasKeywordAndColor(t *testing.T) {
	reg := NewRegistry(StarterCards)

	angel, _ := reg.Get("serra-angel")
	assert.True(t, angel.HasKeyword(KeywordFlying))
	assert.False(t, angel.HasKeyword(KeywordReach))
	assert.True(t, angel.HasColor(White))
	assert.False(t, angel.HasColor(Blue))
	assert.False(t, angel.Colorless())

	land, _ := reg.Get("mountain")
	assert.True(t, land.Colorless())
}

func TestProtectionFromColors(t *testing.T) {
	reg := NewRegistry(StarterCards)

	knight, _ := reg.Get("black-knight")
	colors, all := knight.ProtectionFromColors()
	assert.False(t, all)
	assert.Equal(t, []MtgColor{White}, colors)

	guardian, _ := reg.Get("sacred-guardian")
	_, all = guardian.ProtectionFromColors()
	assert.True(t, all)

	bears, _ := reg.Get("grizzly-bears")
	colors, all = bears.ProtectionFromColors()
	assert.False(t, all)
	assert.Empty(t, colors)
}

func TestEffectivePowerToughness(t *testing.T) {
	reg := NewRegistry(StarterCards)
	bears, _ := reg.Get("grizzly-bears")

	ci := &state.CardInstance{InstanceID: "c1", ScryfallID: "grizzly-bears"}
	assert.Equal(t, 2, EffectivePower(bears, ci))
	assert.Equal(t, 2, EffectiveToughness(bears, ci))

	ci.AddModification(state.TemporaryModification{DeltaPower: 3, DeltaToughness: 3, Until: state.UntilEndOfTurn})
	assert.Equal(t, 5, EffectivePower(bears, ci))
	assert.Equal(t, 5, EffectiveToughness(bears, ci))

	ci.Counters = map[string]int{"+1/+1": 1, "-1/-1": 2}
	assert.Equal(t, 4, EffectivePower(bears, ci))
	assert.Equal(t, 4, EffectiveToughness(bears, ci))
}

func TestEffectivePower_NonNumericBaseIsZero(t *testing.T) {
	star := "*"
	tmpl := &CardTemplate{ID: "variable", Name: "Variable", TypeLine: "Creature", Power: &star, Toughness: &star}
	ci := &state.CardInstance{InstanceID: "c1", ScryfallID: "variable"}
	assert.Zero(t, EffectivePower(tmpl, ci))
	assert.Zero(t, EffectiveToughness(tmpl, ci))
}
