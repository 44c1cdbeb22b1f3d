// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollr/internal/dice"
	"rollr/internal/throw"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeAndRoll(t *testing.T, m Model, text string) Model {
	t.Helper()
	m.input.SetValue(text)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestEnterRollsDice(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	m = typeAndRoll(t, m, "3d8")

	require.Len(t, m.history, 1)
	e := m.history[0]
	assert.False(t, e.coin)
	assert.Equal(t, dice.Request{Count: 3, Kind: dice.D8}, e.result.Request)
	assert.Len(t, e.result.Values, 3)
	assert.Empty(t, m.input.Value())
}

func TestEnterFlipsCoin(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	m = typeAndRoll(t, m, "Flip")

	require.Len(t, m.history, 1)
	assert.True(t, m.history[0].coin)
	assert.Contains(t, m.View(), "🪙")
}

func TestInvalidInputFallsBack(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	m = typeAndRoll(t, m, "nonsense")

	require.Len(t, m.history, 1)
	assert.Equal(t, dice.DefaultRequest(), m.history[0].result.Request)
}

func TestRerollRepeatsLastToken(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	m = typeAndRoll(t, m, "2D20")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	require.Len(t, m.history, 2)
	assert.Equal(t, m.history[0].result.Request, m.history[1].result.Request)
}

func TestHistoryIsBounded(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	for range maxHistory + 5 {
		m = typeAndRoll(t, m, "D4")
	}
	assert.Len(t, m.history, maxHistory)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, m.history)
	assert.Contains(t, m.View(), "No rolls yet.")
}

func TestQuit(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsResultsAndTotal(t *testing.T) {
	m := InitialModel(throw.NewSeededRoller(1))
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m = typeAndRoll(t, m, "2D6")

	view := m.View()
	assert.Contains(t, view, "2D6")
	assert.Contains(t, view, "total")
	assert.Contains(t, view, "reroll")
}
