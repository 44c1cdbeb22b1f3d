// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "rollr/internal/throw"

// entry is one line of history: either a dice result or a coin flip.
type entry struct {
	input  string
	result throw.Result
	coin   bool
	heads  bool
}
