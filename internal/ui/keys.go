// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// This file defines the keyboard bindings for the interactive roller.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the interactive roller.
type KeyMap struct {
	Roll  key.Binding // Roll the expression in the prompt
	Again key.Binding // Repeat the previous expression
	Clear key.Binding // Clear the history
	Quit  key.Binding // Exit the application
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Roll: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "roll"),
	),
	Again: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reroll"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// bindings returns the keys shown in the footer, in display order.
func (k KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Roll, k.Again, k.Clear, k.Quit}
}
