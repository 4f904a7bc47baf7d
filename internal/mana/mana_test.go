package mana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCost(t *testing.T) {
	tests := []struct {
		in   string
		want Cost
	}{
		{"", Cost{}},
		{"{R}", Cost{Red: 1}},
		{"{U}{U}", Cost{Blue: 2}},
		{"{2}{W}{W}", Cost{White: 2, Generic: 2}},
		{"{X}{R}", Cost{Red: 1, HasX: true}},
		{"{C}", Cost{Colorless: 1}},
		{"{10}", Cost{Generic: 10}},
		{"{1}{W}{U}{B}{R}{G}", Cost{White: 1, Blue: 1, Black: 1, Red: 1, Green: 1, Generic: 1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCost(tt.in), "cost %q", tt.in)
	}
}

func TestConvertedManaCost(t *testing.T) {
	assert.Equal(t, 4, ParseCost("{2}{W}{W}").ConvertedManaCost())
	assert.Equal(t, 1, ParseCost("{X}{R}").ConvertedManaCost()) // X counts as zero until chosen
	assert.Equal(t, 0, ParseCost("").ConvertedManaCost())
}

func TestPool_CanPay(t *testing.T) {
	p := Pool{Red: 2, Green: 1}

	assert.True(t, p.CanPay(ParseCost("{R}"), 0))
	assert.True(t, p.CanPay(ParseCost("{1}{R}"), 0))
	assert.True(t, p.CanPay(ParseCost("{2}{R}"), 0))
	assert.False(t, p.CanPay(ParseCost("{3}{R}"), 0))
	assert.False(t, p.CanPay(ParseCost("{U}"), 0))
	assert.True(t, p.CanPay(ParseCost("{X}{R}"), 2))
	assert.False(t, p.CanPay(ParseCost("{X}{R}"), 3))
}

func TestPool_PayColoredThenGeneric(t *testing.T) {
	p := Pool{White: 2, Green: 3}
	require.NoError(t, p.Pay(ParseCost("{1}{W}{W}"), 0))
	// Generic comes from the largest remaining pool (green).
	assert.Equal(t, Pool{Green: 2}, p)
}

func TestPool_PayPrefersColorlessForGeneric(t *testing.T) {
	p := Pool{Colorless: 1, Red: 3}
	require.NoError(t, p.Pay(ParseCost("{1}{R}"), 0))
	assert.Equal(t, Pool{Red: 2}, p)
}

func TestPool_PayGenericLargestPoolTieBreak(t *testing.T) {
	// Equal counts: the fixed W,U,B,R,G order breaks the tie, so white is
	// drained first and the same state always pays the same way.
	p := Pool{White: 1, Blue: 1}
	require.NoError(t, p.Pay(ParseCost("{1}"), 0))
	assert.Equal(t, Pool{Blue: 1}, p)
}

func TestPool_PayInsufficientLeavesPoolUntouched(t *testing.T) {
	p := Pool{Red: 1}
	err := p.Pay(ParseCost("{R}{R}"), 0)
	require.Error(t, err)
	assert.Equal(t, Pool{Red: 1}, p)
}

func TestPool_PayWithX(t *testing.T) {
	p := Pool{Red: 4}
	require.NoError(t, p.Pay(ParseCost("{X}{R}"), 3))
	assert.Equal(t, Pool{}, p)
}

func TestPool_EmptyAndTotal(t *testing.T) {
	p := Pool{White: 1, Blue: 2, Black: 3, Red: 4, Green: 5, Colorless: 6}
	assert.Equal(t, 21, p.Total())
	p.Empty()
	assert.Equal(t, 0, p.Total())
}

func TestPool_Add(t *testing.T) {
	var p Pool
	for _, c := range []string{"W", "U", "B", "R", "G", "C"} {
		p.Add(c)
	}
	assert.Equal(t, Pool{White: 1, Blue: 1, Black: 1, Red: 1, Green: 1, Colorless: 1}, p)
	p.Add("Q") // unknown symbols are ignored
	assert.Equal(t, 6, p.Total())
}
