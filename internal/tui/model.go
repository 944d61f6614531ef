// Package tui is the interactive browser over a resolved theme.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/painter/internal/engine"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

// browsable lists the tables the browser can show, in tab order.
var browsable = append([]theme.Kind{theme.KindColor, theme.KindBorder, theme.KindApplication}, theme.StyleKinds...)

// Model contains the Bubbletea state of the theme browser.
type Model struct {
	theme    *style.Theme
	failures []*apperrors.ThemeError

	kinds   []theme.Kind
	kindIdx int
	cursor  int

	keys keyMap
	help help.Model

	width    int
	height   int
	quitting bool
}

// NewModel builds a browser over a resolution result. Tables without
// entries are left out of the tab bar.
func NewModel(res *engine.Result) Model {
	m := Model{
		theme: &style.Theme{},
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
	if res != nil && res.Theme != nil {
		m.theme = res.Theme
		m.failures = res.Failures
	}

	for _, kind := range browsable {
		if len(m.theme.Names(kind)) > 0 {
			m.kinds = append(m.kinds, kind)
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Kind returns the table currently shown, or "" when the theme is empty.
func (m Model) Kind() theme.Kind {
	if len(m.kinds) == 0 {
		return ""
	}
	return m.kinds[m.kindIdx]
}

// Selected returns the name under the cursor.
func (m Model) Selected() (string, bool) {
	names := m.names()
	if m.cursor < 0 || m.cursor >= len(names) {
		return "", false
	}
	return names[m.cursor], true
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) names() []string {
	kind := m.Kind()
	if kind == "" {
		return nil
	}
	return m.theme.Names(kind)
}

func (m *Model) moveCursor(delta int) {
	n := len(m.names())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) switchKind(delta int) {
	n := len(m.kinds)
	if n == 0 {
		return
	}
	m.kindIdx = (m.kindIdx + delta + n) % n
	m.cursor = 0
}
