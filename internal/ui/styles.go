// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	requestStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	resultStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	coinStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	totalStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	historyBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	footerKeyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	footerDescStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	footerSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
