// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rollr/internal/throw"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rollr"))
	b.WriteString("\n")
	b.WriteString(m.renderHistory())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderHistory() string {
	var lines []string
	if len(m.history) == 0 {
		lines = append(lines, emptyStyle.Render("No rolls yet."))
	}
	for _, e := range m.history {
		lines = append(lines, renderEntry(e))
	}

	box := historyBorder
	if m.width > 4 {
		box = box.Width(m.width - 2)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderEntry(e entry) string {
	if e.coin {
		return coinStyle.Render(throw.CoinText(e.heads))
	}
	line := requestStyle.Render(e.result.Request.String()) + " : " + resultStyle.Render(e.result.ValuesString())
	if len(e.result.Values) > 1 {
		line += totalStyle.Render(fmt.Sprintf("  (total %d)", e.result.Total()))
	}
	return line
}

func (m Model) renderFooter() string {
	sep := footerSeparatorStyle.Render(" | ")
	var parts []string
	for _, b := range m.keys.bindings() {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, sep)
}
