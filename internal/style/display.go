package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/ordered"
	"github.com/alexisbeaulieu97/painter/internal/theme"
)

// DisplayOptions tunes the tree printer. A nil Renderer prints no swatches.
type DisplayOptions struct {
	Renderer *lipgloss.Renderer
}

// Display writes t as an indented tree, one section per table.
func Display(w io.Writer, t *Theme, opts DisplayOptions) error {
	p := &printer{w: w, r: opts.Renderer}

	p.printf("Theme %q\n", t.Name)
	if t.Description != "" {
		p.printf("  %s\n", t.Description)
	}

	if t.Application != nil {
		p.line(0, "Application")
		p.color(1, "Background", t.Application.Background)
		p.color(1, "Text      ", t.Application.Text)
	}

	p.line(0, "Colors")
	for name, c := range t.Colors.All() {
		p.color(1, fmt.Sprintf("%q", name), c)
	}

	p.line(0, "Borders")
	for name, b := range t.Borders.All() {
		p.line(1, fmt.Sprintf("%q", name))
		p.borderFields(2, b)
	}

	section(p, "Containers", t.Containers, func(c Container) {
		p.color(2, "Color", c.Color)
		p.border(2, "Border", c.Border)
	})

	section(p, "Tooltips", t.Tooltips, func(tt Tooltip) {
		p.color(2, "Background", tt.Background)
		p.color(2, "Text      ", tt.Text)
		p.border(2, "Border", tt.Border)
	})

	section(p, "Progress bars", t.ProgressBars, func(pb ProgressBar) {
		p.color(2, "Background", pb.Background)
		p.color(2, "Bar       ", pb.Bar)
		p.line(2, fmt.Sprintf("Radius: %.3f", pb.Radius))
	})

	section(p, "Buttons", t.Buttons, func(b Button) {
		for i, s := range b.States {
			p.line(2, stateLabel(theme.ButtonLabels[i]))
			p.color(3, "Background", s.Background)
			p.color(3, "Text      ", s.Text)
			p.border(3, "Border", s.Border)
		}
	})

	section(p, "Pane grids", t.PaneGrids, func(pg PaneGrid) {
		for i, s := range pg.States {
			p.line(2, stateLabel(theme.PaneGridLabels[i]))
			p.color(3, "Line color", s.Color)
			p.line(3, fmt.Sprintf("Line width: %.3f", s.Width))
		}
	})

	section(p, "Pick lists", t.Picklists, func(pl Picklist) {
		for i, s := range pl.States {
			p.line(2, stateLabel(theme.PicklistLabels[i]))
			p.color(3, "Background ", s.Background)
			p.color(3, "Text       ", s.Text)
			p.color(3, "Placeholder", s.Placeholder)
			p.color(3, "Handle     ", s.Handle)
			p.border(3, "Border", s.Border)
		}
		p.line(2, "Menu")
		p.color(3, "Background         ", pl.Menu.Background)
		p.color(3, "Text               ", pl.Menu.Text)
		p.color(3, "Selected background", pl.Menu.SelectedBackground)
		p.color(3, "Selected text      ", pl.Menu.SelectedText)
		p.border(3, "Border", pl.Menu.Border)
	})

	section(p, "Scrollables", t.Scrollables, func(s Scrollable) {
		for i, st := range s.States {
			p.line(2, stateLabel(theme.ScrollableLabels[i]))
			p.color(3, "Scrollbar color", st.Color)
			p.border(3, "Scrollbar border", st.Border)
			p.color(3, "Scroller color ", st.ScrollerColor)
			p.border(3, "Scroller border", st.ScrollerBorder)
		}
	})

	section(p, "Text inputs", t.TextInputs, func(ti TextInput) {
		for i, s := range ti.States {
			p.line(2, stateLabel(theme.TextInputLabels[i]))
			p.color(3, "Background", s.Background)
			p.border(3, "Border", s.Border)
		}
		p.color(2, "Placeholder", ti.Placeholder)
		p.color(2, "Value      ", ti.Value)
		p.color(2, "Selection  ", ti.Selection)
	})

	return p.err
}

// String renders the tree without swatches.
func (t *Theme) String() string {
	var b strings.Builder
	_ = Display(&b, t, DisplayOptions{})
	return b.String()
}

func section[V any](p *printer, title string, table ordered.Map[V], body func(V)) {
	p.line(0, title)
	for name, v := range table.All() {
		p.line(1, fmt.Sprintf("%q", name))
		body(v)
	}
}

func stateLabel(label string) string {
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

type printer struct {
	w   io.Writer
	r   *lipgloss.Renderer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) line(depth int, text string) {
	p.printf("%s|- %s\n", strings.Repeat("| ", depth), text)
}

func (p *printer) color(depth int, label string, c color.Color) {
	p.line(depth, fmt.Sprintf("%s: %s%s", label, c.Describe(), p.swatch(c)))
}

func (p *printer) border(depth int, label string, b Border) {
	p.line(depth, label)
	p.borderFields(depth+1, b)
}

func (p *printer) borderFields(depth int, b Border) {
	p.color(depth, "Color ", b.Color)
	p.line(depth, fmt.Sprintf("Radius: %.3f", b.Radius))
	p.line(depth, fmt.Sprintf("Width:  %.3f", b.Width))
}

func (p *printer) swatch(c color.Color) string {
	if p.r == nil {
		return ""
	}
	return " " + p.r.NewStyle().Background(lipgloss.Color(c.Hex())).Render("    ")
}
