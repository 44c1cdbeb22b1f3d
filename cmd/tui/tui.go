// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"rollr/internal/throw"
	"rollr/internal/ui"
)

// RunTUI runs the interactive roller until the user quits.
func RunTUI(roller *throw.Roller) error {
	m := ui.InitialModel(roller)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive mode failed: %w", err)
	}
	return nil
}
