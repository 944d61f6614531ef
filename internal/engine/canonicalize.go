package engine

import (
	"fmt"

	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/ordered"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

// interner names values by content: equal values share one name, new values
// get prefix_<n> where n is the table size at insertion.
type interner[V comparable] struct {
	prefix string
	index  map[V]string
	table  ordered.Map[V]
}

func newInterner[V comparable](prefix string) *interner[V] {
	return &interner[V]{prefix: prefix, index: make(map[V]string)}
}

func (in *interner[V]) name(v V) string {
	if n, ok := in.index[v]; ok {
		return n
	}
	n := fmt.Sprintf("%s_%d", in.prefix, in.table.Len())
	in.table.Set(n, v)
	in.index[v] = n
	return n
}

type canonicalizer struct {
	colors  *interner[color.Color]
	borders *interner[theme.Border]
}

func (c *canonicalizer) color(v color.Color) string {
	return c.colors.name(v)
}

func (c *canonicalizer) border(b style.Border) string {
	return c.borders.name(theme.Border{Color: c.color(b.Color), Radius: b.Radius, Width: b.Width})
}

// Canonicalize rewrites a resolved theme as a declarative one: every colour
// and border reached from a style entry is interned by value, entry names are
// kept and every composite slot is written out as defined. Value table
// entries no style references are not carried over. A nil theme yields an
// empty document.
func Canonicalize(t *style.Theme) *theme.Theme {
	if t == nil {
		return &theme.Theme{}
	}

	c := &canonicalizer{
		colors:  newInterner[color.Color]("color"),
		borders: newInterner[theme.Border]("border"),
	}

	out := &theme.Theme{Name: t.Name, Description: t.Description}

	if t.Application != nil {
		out.Application = &theme.Application{
			Background: c.color(t.Application.Background),
			Text:       c.color(t.Application.Text),
		}
	}

	for name, v := range t.Containers.All() {
		out.Containers.Set(name, theme.Container{Color: c.color(v.Color), Border: c.border(v.Border)})
	}
	for name, v := range t.Tooltips.All() {
		out.Tooltips.Set(name, theme.Tooltip{Background: c.color(v.Background), Text: c.color(v.Text), Border: c.border(v.Border)})
	}
	for name, v := range t.ProgressBars.All() {
		out.ProgressBars.Set(name, theme.ProgressBar{Background: c.color(v.Background), Bar: c.color(v.Bar), Radius: v.Radius})
	}

	for name, v := range t.Buttons.All() {
		s := defineAll(v.States[:], func(st style.ButtonState) theme.ButtonState {
			return theme.ButtonState{Background: c.color(st.Background), Text: c.color(st.Text), Border: c.border(st.Border)}
		})
		out.Buttons.Set(name, theme.Button{Active: s[0], Hovered: s[1], Pressed: s[2], Disabled: s[3]})
	}

	for name, v := range t.PaneGrids.All() {
		s := defineAll(v.States[:], func(st style.PaneGridState) theme.PaneGridState {
			return theme.PaneGridState{Color: c.color(st.Color), Width: st.Width}
		})
		out.PaneGrids.Set(name, theme.PaneGrid{Picked: s[0], Hovered: s[1]})
	}

	for name, v := range t.Picklists.All() {
		s := defineAll(v.States[:], func(st style.PicklistState) theme.PicklistState {
			return theme.PicklistState{
				Background:  c.color(st.Background),
				Text:        c.color(st.Text),
				Placeholder: c.color(st.Placeholder),
				Border:      c.border(st.Border),
				Handle:      c.color(st.Handle),
			}
		})
		menu := theme.Define(theme.PicklistMenu{
			Background:         c.color(v.Menu.Background),
			Text:               c.color(v.Menu.Text),
			Border:             c.border(v.Menu.Border),
			SelectedBackground: c.color(v.Menu.SelectedBackground),
			SelectedText:       c.color(v.Menu.SelectedText),
		})
		out.Picklists.Set(name, theme.Picklist{Active: s[0], Hovered: s[1], Menu: menu})
	}

	for name, v := range t.Scrollables.All() {
		s := defineAll(v.States[:], func(st style.ScrollableState) theme.ScrollableState {
			return theme.ScrollableState{
				Color:          c.color(st.Color),
				Border:         c.border(st.Border),
				ScrollerColor:  c.color(st.ScrollerColor),
				ScrollerBorder: c.border(st.ScrollerBorder),
			}
		})
		out.Scrollables.Set(name, theme.Scrollable{Active: s[0], Hovered: s[1], Dragging: s[2]})
	}

	for name, v := range t.TextInputs.All() {
		s := defineAll(v.States[:], func(st style.TextInputState) theme.TextInputState {
			return theme.TextInputState{Background: c.color(st.Background), Border: c.border(st.Border)}
		})
		out.TextInputs.Set(name, theme.TextInput{
			Active:      s[0],
			Hovered:     s[1],
			Focused:     s[2],
			Placeholder: c.color(v.Placeholder),
			Value:       c.color(v.Value),
			Selection:   c.color(v.Selection),
		})
	}

	out.Colors = c.colors.table
	out.Borders = c.borders.table
	return out
}

func defineAll[R, S any](states []R, convert func(R) S) []theme.Slot[S] {
	out := make([]theme.Slot[S], len(states))
	for i, st := range states {
		out[i] = theme.Define(convert(st))
	}
	return out
}
