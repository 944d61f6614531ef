package engine

import (
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

// composites wires every composite kind of doc to its output table in out.
func composites(doc *theme.Theme, r *refs, out *style.Theme) []compositeTable {
	buttons := newEntries(r, theme.KindButton, doc.Buttons, &out.Buttons)
	buttons.build = func(a *attempt, d theme.Button) style.Button {
		states := slots(a, buttons, theme.ButtonLabels, d.Slots(), func(s theme.ButtonState) style.ButtonState {
			return style.ButtonState{
				Background: a.color("background", s.Background),
				Text:       a.color("text", s.Text),
				Border:     a.border("border", s.Border),
			}
		}, func(b style.Button, i int) style.ButtonState { return b.States[i] }, true)

		var b style.Button
		copy(b.States[:], states)
		return b
	}

	panegrids := newEntries(r, theme.KindPaneGrid, doc.PaneGrids, &out.PaneGrids)
	panegrids.build = func(a *attempt, d theme.PaneGrid) style.PaneGrid {
		states := slots(a, panegrids, theme.PaneGridLabels, d.Slots(), func(s theme.PaneGridState) style.PaneGridState {
			return style.PaneGridState{Color: a.color("color", s.Color), Width: s.Width}
		}, func(p style.PaneGrid, i int) style.PaneGridState { return p.States[i] }, true)

		var p style.PaneGrid
		copy(p.States[:], states)
		return p
	}

	picklists := newEntries(r, theme.KindPicklist, doc.Picklists, &out.Picklists)
	picklists.build = func(a *attempt, d theme.Picklist) style.Picklist {
		states := slots(a, picklists, theme.PicklistLabels, d.Slots(), func(s theme.PicklistState) style.PicklistState {
			return style.PicklistState{
				Background:  a.color("background", s.Background),
				Text:        a.color("text", s.Text),
				Placeholder: a.color("placeholder", s.Placeholder),
				Border:      a.border("border", s.Border),
				Handle:      a.color("handle", s.Handle),
			}
		}, func(p style.Picklist, i int) style.PicklistState { return p.States[i] }, true)

		menu := slots(a, picklists, []string{"menu"}, []theme.Slot[theme.PicklistMenu]{d.Menu}, func(m theme.PicklistMenu) style.PicklistMenu {
			return style.PicklistMenu{
				Background:         a.color("background", m.Background),
				Text:               a.color("text", m.Text),
				Border:             a.border("border", m.Border),
				SelectedBackground: a.color("selected_background", m.SelectedBackground),
				SelectedText:       a.color("selected_text", m.SelectedText),
			}
		}, func(p style.Picklist, _ int) style.PicklistMenu { return p.Menu }, false)

		var p style.Picklist
		copy(p.States[:], states)
		if len(menu) == 1 {
			p.Menu = menu[0]
		}
		return p
	}

	scrollables := newEntries(r, theme.KindScrollable, doc.Scrollables, &out.Scrollables)
	scrollables.build = func(a *attempt, d theme.Scrollable) style.Scrollable {
		states := slots(a, scrollables, theme.ScrollableLabels, d.Slots(), func(s theme.ScrollableState) style.ScrollableState {
			return style.ScrollableState{
				Color:          a.color("color", s.Color),
				Border:         a.border("border", s.Border),
				ScrollerColor:  a.color("scroller_color", s.ScrollerColor),
				ScrollerBorder: a.border("scroller_border", s.ScrollerBorder),
			}
		}, func(s style.Scrollable, i int) style.ScrollableState { return s.States[i] }, true)

		var s style.Scrollable
		copy(s.States[:], states)
		return s
	}

	textinputs := newEntries(r, theme.KindTextInput, doc.TextInputs, &out.TextInputs)
	textinputs.build = func(a *attempt, d theme.TextInput) style.TextInput {
		states := slots(a, textinputs, theme.TextInputLabels, d.Slots(), func(s theme.TextInputState) style.TextInputState {
			return style.TextInputState{Background: a.color("background", s.Background), Border: a.border("border", s.Border)}
		}, func(t style.TextInput, i int) style.TextInputState { return t.States[i] }, true)

		t := style.TextInput{
			Placeholder: a.color("placeholder", d.Placeholder),
			Value:       a.color("value", d.Value),
			Selection:   a.color("selection", d.Selection),
		}
		copy(t.States[:], states)
		return t
	}

	return []compositeTable{buttons, panegrids, picklists, scrollables, textinputs}
}
