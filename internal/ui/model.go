// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui implements the interactive roller: a prompt that accepts the
// same tokens as the command line and keeps a short history of results.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rollr/internal/dice"
	"rollr/internal/logger"
	"rollr/internal/throw"
)

// Model is the Bubble Tea model for the interactive roller.
type Model struct {
	input   textinput.Model
	roller  *throw.Roller
	keys    KeyMap
	history []entry
	last    string // last submitted token, for reroll
	width   int
}

// InitialModel returns a focused prompt backed by roller.
func InitialModel(roller *throw.Roller) Model {
	ti := textinput.New()
	ti.Prompt = "🎲 "
	ti.Placeholder = "2D20, D8, flip..."
	ti.CharLimit = inputCharLimit
	ti.Focus()

	return Model{
		input:  ti,
		roller: roller,
		keys:   DefaultKeyMap,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Roll):
			m.submit(m.input.Value())
			m.input.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Again):
			m.submit(m.last)
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.history = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit rolls or flips for token and records the outcome.
func (m *Model) submit(token string) {
	token = strings.TrimSpace(token)
	m.last = token

	e := entry{input: token}
	if dice.IsCoinFlip(token) {
		e.coin = true
		e.heads = m.roller.FlipCoin()
	} else {
		e.result = m.roller.Roll(dice.Parse(token))
	}
	logger.Debug("Interactive roll.", "input", token, "coin", e.coin)

	m.history = append(m.history, e)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
}
