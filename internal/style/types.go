// Package style holds the fully resolved theme: every reference replaced by
// the concrete value it named, every composite slot filled.
package style

import (
	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/ordered"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

// Border is a concrete border.
type Border struct {
	Color  color.Color `json:"color"`
	Radius float64     `json:"radius"`
	Width  float64     `json:"width"`
}

// Application holds the window-wide colours.
type Application struct {
	Background color.Color `json:"background"`
	Text       color.Color `json:"text"`
}

type Container struct {
	Color  color.Color `json:"color"`
	Border Border      `json:"border"`
}

type Tooltip struct {
	Background color.Color `json:"background"`
	Text       color.Color `json:"text"`
	Border     Border      `json:"border"`
}

type ProgressBar struct {
	Background color.Color `json:"background"`
	Bar        color.Color `json:"bar"`
	Radius     float64     `json:"radius"`
}

// Button state indexes.
const (
	ButtonActive = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

type ButtonState struct {
	Background color.Color `json:"background"`
	Text       color.Color `json:"text"`
	Border     Border      `json:"border"`
}

type Button struct {
	States [4]ButtonState `json:"states"`
}

// Pane grid state indexes.
const (
	PaneGridPicked = iota
	PaneGridHovered
)

type PaneGridState struct {
	Color color.Color `json:"color"`
	Width float64     `json:"width"`
}

type PaneGrid struct {
	States [2]PaneGridState `json:"states"`
}

// Pick list state indexes.
const (
	PicklistActive = iota
	PicklistHovered
)

type PicklistState struct {
	Background  color.Color `json:"background"`
	Text        color.Color `json:"text"`
	Placeholder color.Color `json:"placeholder"`
	Border      Border      `json:"border"`
	Handle      color.Color `json:"handle"`
}

type PicklistMenu struct {
	Background         color.Color `json:"background"`
	Text               color.Color `json:"text"`
	Border             Border      `json:"border"`
	SelectedBackground color.Color `json:"selected_background"`
	SelectedText       color.Color `json:"selected_text"`
}

type Picklist struct {
	States [2]PicklistState `json:"states"`
	Menu   PicklistMenu     `json:"menu"`
}

// Scrollable state indexes.
const (
	ScrollableActive = iota
	ScrollableHovered
	ScrollableDragging
)

type ScrollableState struct {
	Color          color.Color `json:"color"`
	Border         Border      `json:"border"`
	ScrollerColor  color.Color `json:"scroller_color"`
	ScrollerBorder Border      `json:"scroller_border"`
}

type Scrollable struct {
	States [3]ScrollableState `json:"states"`
}

// Text input state indexes.
const (
	TextInputActive = iota
	TextInputHovered
	TextInputFocused
)

type TextInputState struct {
	Background color.Color `json:"background"`
	Border     Border      `json:"border"`
}

type TextInput struct {
	States      [3]TextInputState `json:"states"`
	Placeholder color.Color       `json:"placeholder"`
	Value       color.Color       `json:"value"`
	Selection   color.Color       `json:"selection"`
}

// Theme is a resolved theme. Tables keep the order of the source document.
type Theme struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Application *Application `json:"application,omitempty"`

	Colors  ordered.Map[color.Color] `json:"color"`
	Borders ordered.Map[Border]      `json:"border"`

	Containers   ordered.Map[Container]   `json:"container"`
	Tooltips     ordered.Map[Tooltip]     `json:"tooltip"`
	ProgressBars ordered.Map[ProgressBar] `json:"progressbar"`

	Buttons     ordered.Map[Button]     `json:"button"`
	PaneGrids   ordered.Map[PaneGrid]   `json:"panegrid"`
	Picklists   ordered.Map[Picklist]   `json:"picklist"`
	Scrollables ordered.Map[Scrollable] `json:"scrollable"`
	TextInputs  ordered.Map[TextInput]  `json:"textinput"`
}

func (t *Theme) Color(name string) (color.Color, bool)       { return t.Colors.Get(name) }
func (t *Theme) Border(name string) (Border, bool)           { return t.Borders.Get(name) }
func (t *Theme) Container(name string) (Container, bool)     { return t.Containers.Get(name) }
func (t *Theme) Tooltip(name string) (Tooltip, bool)         { return t.Tooltips.Get(name) }
func (t *Theme) ProgressBar(name string) (ProgressBar, bool) { return t.ProgressBars.Get(name) }
func (t *Theme) Button(name string) (Button, bool)           { return t.Buttons.Get(name) }
func (t *Theme) PaneGrid(name string) (PaneGrid, bool)       { return t.PaneGrids.Get(name) }
func (t *Theme) Picklist(name string) (Picklist, bool)       { return t.Picklists.Get(name) }
func (t *Theme) Scrollable(name string) (Scrollable, bool)   { return t.Scrollables.Get(name) }
func (t *Theme) TextInput(name string) (TextInput, bool)     { return t.TextInputs.Get(name) }

// Get looks an entry up by kind and name. The application entry answers to
// any name.
func (t *Theme) Get(kind theme.Kind, name string) (any, bool) {
	switch kind {
	case theme.KindColor:
		return unbox(t.Colors.Get(name))
	case theme.KindBorder:
		return unbox(t.Borders.Get(name))
	case theme.KindApplication:
		if t.Application == nil {
			return nil, false
		}
		return *t.Application, true
	case theme.KindContainer:
		return unbox(t.Containers.Get(name))
	case theme.KindTooltip:
		return unbox(t.Tooltips.Get(name))
	case theme.KindProgressBar:
		return unbox(t.ProgressBars.Get(name))
	case theme.KindButton:
		return unbox(t.Buttons.Get(name))
	case theme.KindPaneGrid:
		return unbox(t.PaneGrids.Get(name))
	case theme.KindPicklist:
		return unbox(t.Picklists.Get(name))
	case theme.KindScrollable:
		return unbox(t.Scrollables.Get(name))
	case theme.KindTextInput:
		return unbox(t.TextInputs.Get(name))
	}
	return nil, false
}

// Names lists the entries of kind in document order.
func (t *Theme) Names(kind theme.Kind) []string {
	switch kind {
	case theme.KindColor:
		return t.Colors.Keys()
	case theme.KindBorder:
		return t.Borders.Keys()
	case theme.KindApplication:
		if t.Application == nil {
			return nil
		}
		return []string{string(theme.KindApplication)}
	case theme.KindContainer:
		return t.Containers.Keys()
	case theme.KindTooltip:
		return t.Tooltips.Keys()
	case theme.KindProgressBar:
		return t.ProgressBars.Keys()
	case theme.KindButton:
		return t.Buttons.Keys()
	case theme.KindPaneGrid:
		return t.PaneGrids.Keys()
	case theme.KindPicklist:
		return t.Picklists.Keys()
	case theme.KindScrollable:
		return t.Scrollables.Keys()
	case theme.KindTextInput:
		return t.TextInputs.Keys()
	}
	return nil
}

func unbox[V any](v V, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}
