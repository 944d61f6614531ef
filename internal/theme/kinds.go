package theme

// Kind names a table of the document. The values double as the YAML keys.
type Kind string

const (
	KindColor       Kind = "color"
	KindBorder      Kind = "border"
	KindApplication Kind = "application"
	KindContainer   Kind = "container"
	KindTooltip     Kind = "tooltip"
	KindProgressBar Kind = "progressbar"
	KindButton      Kind = "button"
	KindPaneGrid    Kind = "panegrid"
	KindPicklist    Kind = "picklist"
	KindScrollable  Kind = "scrollable"
	KindTextInput   Kind = "textinput"
)

// StyleKinds lists the style tables in document order.
var StyleKinds = []Kind{
	KindContainer,
	KindTooltip,
	KindProgressBar,
	KindButton,
	KindPaneGrid,
	KindPicklist,
	KindScrollable,
	KindTextInput,
}

// Composite reports whether entries of k are made of slots.
func (k Kind) Composite() bool {
	switch k {
	case KindButton, KindPaneGrid, KindPicklist, KindScrollable, KindTextInput:
		return true
	}
	return false
}

// Slot labels per composite kind, in slot order.
var (
	ButtonLabels     = []string{"active", "hovered", "pressed", "disabled"}
	PaneGridLabels   = []string{"picked", "hovered"}
	PicklistLabels   = []string{"active", "hovered"}
	ScrollableLabels = []string{"active", "hovered", "dragging"}
	TextInputLabels  = []string{"active", "hovered", "focused"}
)
