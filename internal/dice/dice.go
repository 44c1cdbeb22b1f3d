// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package dice turns a command-line token such as "2D20" into a validated
// roll request. Parsing never fails: malformed input falls back to one
// six-sided die.
package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind is a supported die, identified by its number of sides.
type Kind uint16

const (
	D3   Kind = 3
	D4   Kind = 4
	D5   Kind = 5
	D6   Kind = 6
	D7   Kind = 7
	D8   Kind = 8
	D10  Kind = 10
	D12  Kind = 12
	D14  Kind = 14
	D16  Kind = 16
	D20  Kind = 20
	D24  Kind = 24
	D30  Kind = 30
	D50  Kind = 50
	D60  Kind = 60
	D100 Kind = 100
)

// kinds lists every supported die in ascending order.
var kinds = []Kind{D3, D4, D5, D6, D7, D8, D10, D12, D14, D16, D20, D24, D30, D50, D60, D100}

// Kinds returns the supported dice in ascending order of sides.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// KindFromSides returns the die with n sides, or false if no such die is supported.
func KindFromSides(n uint16) (Kind, bool) {
	for _, k := range kinds {
		if uint16(k) == n {
			return k, true
		}
	}
	return 0, false
}

// Sides returns the number of faces on the die.
func (k Kind) Sides() uint16 {
	return uint16(k)
}

func (k Kind) String() string {
	return fmt.Sprintf("D%d", uint16(k))
}

// Request describes how many dice of which kind to roll. Count is never zero.
type Request struct {
	Count uint16
	Kind  Kind
}

// DefaultRequest is what any unusable token resolves to: a single D6.
func DefaultRequest() Request {
	return Request{Count: 1, Kind: D6}
}

func (r Request) String() string {
	return fmt.Sprintf("%dD%d", r.Count, r.Kind.Sides())
}

var diceExpr = regexp.MustCompile(`(?i)^(\d*)D(\d+)$`)

// Parse interprets token as "<count>D<sides>". The count is optional and
// matching is case-insensitive.
//
// An empty count, zero, or a count too large to represent becomes 1. An
// unsupported or unparsable side count becomes D6 but keeps the parsed
// count, so "2D99" is two D6. Anything that doesn't match the pattern at
// all yields DefaultRequest.
func Parse(token string) Request {
	m := diceExpr.FindStringSubmatch(token)
	if m == nil {
		return DefaultRequest()
	}

	req := DefaultRequest()
	if n, err := strconv.ParseUint(m[1], 10, 16); err == nil && n > 0 {
		req.Count = uint16(n)
	}
	if n, err := strconv.ParseUint(m[2], 10, 16); err == nil {
		if k, ok := KindFromSides(uint16(n)); ok {
			req.Kind = k
		}
	}
	return req
}

// ParseArgs parses the first positional argument, or returns DefaultRequest
// when there is none. Extra arguments are ignored.
func ParseArgs(args []string) Request {
	if len(args) == 0 {
		return DefaultRequest()
	}
	return Parse(args[0])
}

var coinAliases = []string{"f", "flip", "flipcoin"}

// CoinAliases returns the tokens that request a coin flip instead of a roll.
func CoinAliases() []string {
	out := make([]string, len(coinAliases))
	copy(out, coinAliases)
	return out
}

// IsCoinFlip reports whether token asks for a coin flip, ignoring case.
func IsCoinFlip(token string) bool {
	for _, a := range coinAliases {
		if strings.EqualFold(token, a) {
			return true
		}
	}
	return false
}
