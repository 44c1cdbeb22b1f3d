// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

const (
	maxHistory     = 10 // Results kept on screen; older ones scroll off.
	inputCharLimit = 32
)
