// Package mana parses mana cost strings and implements the deterministic
// payment algorithm of spec.md §4.3.
package mana

import (
	"fmt"
	"strconv"
	"strings"
)

// Cost is a parsed mana cost: a count per colored symbol, a generic amount,
// and whether the cost includes a variable {X}.
type Cost struct {
	White, Blue, Black, Red, Green, Colorless int
	Generic                                   int
	HasX                                      bool
}

// ConvertedManaCost returns the colored-symbol count plus the generic amount
// (X is not included; it is zero until the caster chooses a value).
func (c Cost) ConvertedManaCost() int {
	return c.White + c.Blue + c.Black + c.Red + c.Green + c.Colorless + c.Generic
}

// ParseCost parses a mana-cost string of the form "{2}{W}{W}", "{X}{R}",
// "{C}" etc. Unknown/malformed symbols are ignored rather than erroring: a
// card's ManaCost field is catalog-authored data, not user input.
func ParseCost(s string) Cost {
	var c Cost
	for _, sym := range splitSymbols(s) {
		switch sym {
		case "W":
			c.White++
		case "U":
			c.Blue++
		case "B":
			c.Black++
		case "R":
			c.Red++
		case "G":
			c.Green++
		case "C":
			c.Colorless++
		case "X":
			c.HasX = true
		default:
			if n, err := strconv.Atoi(sym); err == nil {
				c.Generic += n
			}
		}
	}
	return c
}

func splitSymbols(s string) []string {
	var out []string
	var cur strings.Builder
	inBrace := false
	for _, r := range s {
		switch r {
		case '{':
			inBrace = true
			cur.Reset()
		case '}':
			if inBrace {
				out = append(out, cur.String())
			}
			inBrace = false
		default:
			if inBrace {
				cur.WriteRune(r)
			}
		}
	}
	return out
}

// Pool is the six-counter mana pool (spec.md §3). Defined here, not in
// internal/state, because payment/production logic (this package) is the
// only thing that needs to reason about it structurally; state simply holds
// one as a Player field.
type Pool struct {
	White, Blue, Black, Red, Green, Colorless int
}

// Empty zeroes every counter (called at the end of every phase step).
func (p *Pool) Empty() { *p = Pool{} }

// Add increases the pool by the given color.
func (p *Pool) Add(color string) {
	switch color {
	case "W":
		p.White++
	case "U":
		p.Blue++
	case "B":
		p.Black++
	case "R":
		p.Red++
	case "G":
		p.Green++
	case "C":
		p.Colorless++
	}
}

// Total returns the sum of all counters.
func (p Pool) Total() int {
	return p.White + p.Blue + p.Black + p.Red + p.Green + p.Colorless
}

// CanPay reports whether the pool can pay the given cost plus xValue
// generic, without mutating the pool.
func (p Pool) CanPay(cost Cost, xValue int) bool {
	if p.White < cost.White || p.Blue < cost.Blue || p.Black < cost.Black ||
		p.Red < cost.Red || p.Green < cost.Green || p.Colorless < cost.Colorless {
		return false
	}
	remaining := p.Total() - cost.White - cost.Blue - cost.Black - cost.Red - cost.Green - cost.Colorless
	return remaining >= cost.Generic+xValue
}

// Pay subtracts the cost (plus xValue generic) from the pool in place.
// Generic payment deterministically prefers colorless first, then the pool
// with the largest remaining count, per spec.md §4.3, so that tests and
// replays are reproducible. Returns an error (without partially mutating the
// pool) if payment is not possible.
func (p *Pool) Pay(cost Cost, xValue int) error {
	if !p.CanPay(cost, xValue) {
		return fmt.Errorf("insufficient mana to pay cost")
	}
	p.White -= cost.White
	p.Blue -= cost.Blue
	p.Black -= cost.Black
	p.Red -= cost.Red
	p.Green -= cost.Green
	p.Colorless -= cost.Colorless

	generic := cost.Generic + xValue
	for generic > 0 {
		symbol, count := p.largestForGeneric()
		if count == 0 {
			// CanPay already guaranteed enough total mana; unreachable.
			return fmt.Errorf("internal error paying generic mana")
		}
		p.spendGeneric(symbol)
		generic--
	}
	return nil
}

// largestForGeneric picks colorless first, then whichever color pool holds
// the most mana (ties broken by a fixed color order for reproducibility).
func (p *Pool) largestForGeneric() (symbol string, count int) {
	if p.Colorless > 0 {
		return "C", p.Colorless
	}
	best := ""
	bestCount := 0
	for _, entry := range []struct {
		sym string
		val int
	}{{"W", p.White}, {"U", p.Blue}, {"B", p.Black}, {"R", p.Red}, {"G", p.Green}} {
		if entry.val > bestCount {
			best, bestCount = entry.sym, entry.val
		}
	}
	return best, bestCount
}

func (p *Pool) spendGeneric(symbol string) {
	switch symbol {
	case "C":
		p.Colorless--
	case "W":
		p.White--
	case "U":
		p.Blue--
	case "B":
		p.Black--
	case "R":
		p.Red--
	case "G":
		p.Green--
	}
}
