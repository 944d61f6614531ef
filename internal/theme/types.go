// Package theme models the declarative theme document: named value tables and
// style entries that reference those values, or each other, by name.
package theme

import (
	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/ordered"
)

// Theme represents the full declarative theme document.
type Theme struct {
	Name        string       `yaml:"name" validate:"required,max=100"`
	Description string       `yaml:"description,omitempty"`
	Application *Application `yaml:"application,omitempty" validate:"-"`

	Colors  ordered.Map[color.Color] `yaml:"color,omitempty"`
	Borders ordered.Map[Border]      `yaml:"border,omitempty"`

	Containers   ordered.Map[Container]   `yaml:"container,omitempty"`
	Tooltips     ordered.Map[Tooltip]     `yaml:"tooltip,omitempty"`
	ProgressBars ordered.Map[ProgressBar] `yaml:"progressbar,omitempty"`

	Buttons     ordered.Map[Button]     `yaml:"button,omitempty"`
	PaneGrids   ordered.Map[PaneGrid]   `yaml:"panegrid,omitempty"`
	Picklists   ordered.Map[Picklist]   `yaml:"picklist,omitempty"`
	Scrollables ordered.Map[Scrollable] `yaml:"scrollable,omitempty"`
	TextInputs  ordered.Map[TextInput]  `yaml:"textinput,omitempty"`
}

// Application holds the window-wide colours.
type Application struct {
	Background string `yaml:"background_color" validate:"required,ref"`
	Text       string `yaml:"text_color" validate:"required,ref"`
}

// Border references a colour and carries its geometry.
type Border struct {
	Color  string  `yaml:"color" validate:"required,ref"`
	Radius float64 `yaml:"radius" validate:"gte=0"`
	Width  float64 `yaml:"width" validate:"gte=0"`
}

// Container is the panel style.
type Container struct {
	Color  string `yaml:"color" validate:"required,ref"`
	Border string `yaml:"border" validate:"required,ref"`
}

// Tooltip styles the tooltip overlay.
type Tooltip struct {
	Background string `yaml:"background" validate:"required,ref"`
	Text       string `yaml:"text" validate:"required,ref"`
	Border     string `yaml:"border" validate:"required,ref"`
}

// ProgressBar styles a progress indicator.
type ProgressBar struct {
	Background string  `yaml:"background" validate:"required,ref"`
	Bar        string  `yaml:"bar" validate:"required,ref"`
	Radius     float64 `yaml:"radius" validate:"gte=0"`
}

// ButtonState is one of the four button states.
type ButtonState struct {
	Background string `yaml:"background" validate:"required,ref"`
	Text       string `yaml:"text" validate:"required,ref"`
	Border     string `yaml:"border" validate:"required,ref"`
}

// Button holds the active, hovered, pressed and disabled states.
type Button struct {
	Active   Slot[ButtonState] `yaml:"active" validate:"-"`
	Hovered  Slot[ButtonState] `yaml:"hovered" validate:"-"`
	Pressed  Slot[ButtonState] `yaml:"pressed" validate:"-"`
	Disabled Slot[ButtonState] `yaml:"disabled" validate:"-"`
}

// Slots lists the states in resolution order.
func (b Button) Slots() []Slot[ButtonState] {
	return []Slot[ButtonState]{b.Active, b.Hovered, b.Pressed, b.Disabled}
}

// PaneGridState styles a split line.
type PaneGridState struct {
	Color string  `yaml:"color" validate:"required,ref"`
	Width float64 `yaml:"width" validate:"gte=0"`
}

// PaneGrid holds the picked and hovered split lines.
type PaneGrid struct {
	Picked  Slot[PaneGridState] `yaml:"picked" validate:"-"`
	Hovered Slot[PaneGridState] `yaml:"hovered" validate:"-"`
}

// Slots lists the states in resolution order.
func (p PaneGrid) Slots() []Slot[PaneGridState] {
	return []Slot[PaneGridState]{p.Picked, p.Hovered}
}

// PicklistState styles the closed pick list.
type PicklistState struct {
	Background  string `yaml:"background" validate:"required,ref"`
	Text        string `yaml:"text" validate:"required,ref"`
	Placeholder string `yaml:"placeholder" validate:"required,ref"`
	Border      string `yaml:"border" validate:"required,ref"`
	Handle      string `yaml:"handle" validate:"required,ref"`
}

// PicklistMenu styles the open menu.
type PicklistMenu struct {
	Background         string `yaml:"background" validate:"required,ref"`
	Text               string `yaml:"text" validate:"required,ref"`
	Border             string `yaml:"border" validate:"required,ref"`
	SelectedBackground string `yaml:"selected_background" validate:"required,ref"`
	SelectedText       string `yaml:"selected_text" validate:"required,ref"`
}

// Picklist holds two states and the menu. The menu must be defined or
// inherited; unlike states it has no default to fall back on.
type Picklist struct {
	Active  Slot[PicklistState] `yaml:"active" validate:"-"`
	Hovered Slot[PicklistState] `yaml:"hovered" validate:"-"`
	Menu    Slot[PicklistMenu]  `yaml:"menu" validate:"-"`
}

// Slots lists the states in resolution order.
func (p Picklist) Slots() []Slot[PicklistState] {
	return []Slot[PicklistState]{p.Active, p.Hovered}
}

// ScrollableState styles the scrollbar and its scroller.
type ScrollableState struct {
	Color          string `yaml:"color" validate:"required,ref"`
	Border         string `yaml:"border" validate:"required,ref"`
	ScrollerColor  string `yaml:"scroller_color" validate:"required,ref"`
	ScrollerBorder string `yaml:"scroller_border" validate:"required,ref"`
}

// Scrollable holds the active, hovered and dragging states.
type Scrollable struct {
	Active   Slot[ScrollableState] `yaml:"active" validate:"-"`
	Hovered  Slot[ScrollableState] `yaml:"hovered" validate:"-"`
	Dragging Slot[ScrollableState] `yaml:"dragging" validate:"-"`
}

// Slots lists the states in resolution order.
func (s Scrollable) Slots() []Slot[ScrollableState] {
	return []Slot[ScrollableState]{s.Active, s.Hovered, s.Dragging}
}

// TextInputState styles the input box.
type TextInputState struct {
	Background string `yaml:"background" validate:"required,ref"`
	Border     string `yaml:"border" validate:"required,ref"`
}

// TextInput holds three states plus the colours shared by all of them.
type TextInput struct {
	Active  Slot[TextInputState] `yaml:"active" validate:"-"`
	Hovered Slot[TextInputState] `yaml:"hovered" validate:"-"`
	Focused Slot[TextInputState] `yaml:"focused" validate:"-"`

	Placeholder string `yaml:"placeholder" validate:"required,ref"`
	Value       string `yaml:"value" validate:"required,ref"`
	Selection   string `yaml:"selection" validate:"required,ref"`
}

// Slots lists the states in resolution order.
func (t TextInput) Slots() []Slot[TextInputState] {
	return []Slot[TextInputState]{t.Active, t.Hovered, t.Focused}
}
