package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render(fmt.Sprintf("painter • %s", m.title()))}

	if len(m.kinds) == 0 {
		sections = append(sections, mutedStyle.Render("theme has no entries"))
	} else {
		sections = append(sections, m.renderTabs())
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), m.renderDetail()))
	}

	if len(m.failures) > 0 {
		sections = append(sections, sectionStyle.Render(fmt.Sprintf("Failures (%d)", len(m.failures))))
		for _, f := range m.failures {
			sections = append(sections, failureStyle.Render("✗ ")+f.Error())
		}
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	if strings.TrimSpace(m.theme.Name) != "" {
		return m.theme.Name
	}
	return "untitled theme"
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.kinds))
	for i, kind := range m.kinds {
		label := fmt.Sprintf("%s (%d)", kind, len(m.theme.Names(kind)))
		if i == m.kindIdx {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderList() string {
	names := m.names()
	lines := make([]string, len(names))
	for i, name := range names {
		if i == m.cursor {
			lines[i] = cursorStyle.Render("> " + name)
		} else {
			lines[i] = "  " + name
		}
	}
	return listStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderDetail() string {
	name, ok := m.Selected()
	if !ok {
		return ""
	}
	entry, ok := m.theme.Get(m.Kind(), name)
	if !ok {
		return ""
	}

	d := &detail{}
	d.header(fmt.Sprintf("%s/%s", m.Kind(), name))
	d.entry(entry)
	return detailStyle.Render(strings.Join(d.lines, "\n"))
}

// detail accumulates the lines of the detail pane.
type detail struct {
	lines []string
}

func (d *detail) header(text string) {
	d.lines = append(d.lines, titleStyle.Render(text))
}

func (d *detail) section(text string) {
	d.lines = append(d.lines, sectionStyle.Render(text))
}

func (d *detail) color(label string, c color.Color) {
	d.lines = append(d.lines, fmt.Sprintf("%s %s %s", labelStyle.Render(fmt.Sprintf("%-20s", label)), Swatch(c), c.String()))
}

func (d *detail) number(label string, v float64) {
	d.lines = append(d.lines, fmt.Sprintf("%s %.3f", labelStyle.Render(fmt.Sprintf("%-20s", label)), v))
}

func (d *detail) border(label string, b style.Border) {
	d.color(label, b.Color)
	d.number("  radius", b.Radius)
	d.number("  width", b.Width)
}

func (d *detail) entry(entry any) {
	switch v := entry.(type) {
	case color.Color:
		d.color("value", v)
	case style.Border:
		d.border("border", v)
	case style.Application:
		d.color("background", v.Background)
		d.color("text", v.Text)
	case style.Container:
		d.color("color", v.Color)
		d.border("border", v.Border)
	case style.Tooltip:
		d.color("background", v.Background)
		d.color("text", v.Text)
		d.border("border", v.Border)
	case style.ProgressBar:
		d.color("background", v.Background)
		d.color("bar", v.Bar)
		d.number("radius", v.Radius)
	case style.Button:
		for i, s := range v.States {
			d.section(theme.ButtonLabels[i])
			d.color("background", s.Background)
			d.color("text", s.Text)
			d.border("border", s.Border)
		}
	case style.PaneGrid:
		for i, s := range v.States {
			d.section(theme.PaneGridLabels[i])
			d.color("color", s.Color)
			d.number("width", s.Width)
		}
	case style.Picklist:
		for i, s := range v.States {
			d.section(theme.PicklistLabels[i])
			d.color("background", s.Background)
			d.color("text", s.Text)
			d.color("placeholder", s.Placeholder)
			d.color("handle", s.Handle)
			d.border("border", s.Border)
		}
		d.section("menu")
		d.color("background", v.Menu.Background)
		d.color("text", v.Menu.Text)
		d.color("selected background", v.Menu.SelectedBackground)
		d.color("selected text", v.Menu.SelectedText)
		d.border("border", v.Menu.Border)
	case style.Scrollable:
		for i, s := range v.States {
			d.section(theme.ScrollableLabels[i])
			d.color("color", s.Color)
			d.border("border", s.Border)
			d.color("scroller color", s.ScrollerColor)
			d.border("scroller border", s.ScrollerBorder)
		}
	case style.TextInput:
		for i, s := range v.States {
			d.section(theme.TextInputLabels[i])
			d.color("background", s.Background)
			d.border("border", s.Border)
		}
		d.section("text")
		d.color("placeholder", v.Placeholder)
		d.color("value", v.Value)
		d.color("selection", v.Selection)
	}
}
