package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/engine"
	"github.com/alexisbeaulieu97/painter/internal/style"
)

func TestViewRendersTablesAndDetail(t *testing.T) {
	m := NewModel(fixtureResult())

	view := m.View()
	require.Contains(t, view, "painter • Browser")
	require.Contains(t, view, "color (3)")
	require.Contains(t, view, "button (2)")
	require.Contains(t, view, "> white")
	require.Contains(t, view, "color/white")
	require.Contains(t, view, "rgba(255, 255, 255, 1)")
	require.Contains(t, view, "Failures (1)")
	require.Contains(t, view, "NO_DEFINED_STATE")
	require.Contains(t, view, "quit")
}

func TestViewRendersCompositeStates(t *testing.T) {
	m := NewModel(fixtureResult())
	m.switchKind(-1)

	view := m.View()
	require.Contains(t, view, "button/primary")
	for _, label := range []string{"active", "hovered", "pressed", "disabled"} {
		require.Contains(t, view, label)
	}
	require.Contains(t, view, "rgba(0, 0, 255, 1)")
}

func TestViewEmptyTheme(t *testing.T) {
	m := NewModel(&engine.Result{Theme: &style.Theme{}})

	view := m.View()
	require.Contains(t, view, "untitled theme")
	require.Contains(t, view, "theme has no entries")
}

func TestViewAfterQuitIsBlank(t *testing.T) {
	m := NewModel(fixtureResult())
	m.quitting = true
	require.Empty(t, m.View())
}

func TestSwatchDoesNotPanic(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Swatch(color.Red))
}
