// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package throw produces random die results and coin flips.
package throw

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"rollr/internal/dice"
)

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it, which lets tests use a seeded generator.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Roller rolls dice and flips coins using a single Source.
type Roller struct {
	src Source
}

// NewRoller returns a Roller backed by src. A nil src uses the
// process-wide generator, which is seeded from OS entropy.
func NewRoller(src Source) *Roller {
	if src == nil {
		src = globalSource{}
	}
	return &Roller{src: src}
}

// NewSeededRoller returns a Roller whose results are reproducible for a given seed.
func NewSeededRoller(seed uint64) *Roller {
	return NewRoller(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// RollDice returns count independent results, each in [1, sides], in the
// order they were rolled. sides is treated as at least 1.
func (r *Roller) RollDice(count, sides uint16) []uint16 {
	if sides == 0 {
		sides = 1
	}
	results := make([]uint16, count)
	for i := range results {
		results[i] = uint16(r.src.IntN(int(sides))) + 1
	}
	return results
}

// FlipCoin returns true for heads and false for tails.
func (r *Roller) FlipCoin() bool {
	return r.src.IntN(2) == 1
}

// Result is the outcome of rolling a dice.Request.
type Result struct {
	Request dice.Request
	Values  []uint16
}

// Total sums the individual results.
func (res Result) Total() int {
	total := 0
	for _, v := range res.Values {
		total += int(v)
	}
	return total
}

// ValuesString renders the results like a list literal, e.g. "[3, 17]".
func (res Result) ValuesString() string {
	parts := make([]string, len(res.Values))
	for i, v := range res.Values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String renders the result as "2D20 : [3, 17]".
func (res Result) String() string {
	return res.Request.String() + " : " + res.ValuesString()
}

// CoinFace names the side a flip landed on.
func CoinFace(heads bool) string {
	if heads {
		return "Heads"
	}
	return "Tails"
}

// CoinText renders a flip the way rollr prints it, e.g. "🪙 Heads !".
func CoinText(heads bool) string {
	return "🪙 " + CoinFace(heads) + " !"
}

// Roll rolls every die in req.
func (r *Roller) Roll(req dice.Request) Result {
	return Result{
		Request: req,
		Values:  r.RollDice(req.Count, req.Kind.Sides()),
	}
}
