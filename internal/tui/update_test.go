package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/painter/internal/theme"
)

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateNavigatesEntries(t *testing.T) {
	m := NewModel(fixtureResult())

	m, _ = press(t, m, runes("j"))
	name, _ := m.Selected()
	require.Equal(t, "black", name)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	name, _ = m.Selected()
	require.Equal(t, "blue", name)

	m, _ = press(t, m, runes("k"))
	name, _ = m.Selected()
	require.Equal(t, "black", name)
}

func TestUpdateSwitchesTables(t *testing.T) {
	m := NewModel(fixtureResult())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, theme.KindBorder, m.Kind())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, theme.KindButton, m.Kind())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, theme.KindBorder, m.Kind())
}

func TestUpdateTogglesHelp(t *testing.T) {
	m := NewModel(fixtureResult())
	require.False(t, m.help.ShowAll)

	m, _ = press(t, m, runes("?"))
	require.True(t, m.help.ShowAll)
}

func TestUpdateQuits(t *testing.T) {
	cases := []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}}

	for _, msg := range cases {
		m := NewModel(fixtureResult())
		m, cmd := press(t, m, msg)
		require.True(t, m.Quitting())
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdateHandlesWindowSize(t *testing.T) {
	m := NewModel(fixtureResult())

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
	require.Equal(t, 120, m.help.Width)
}
