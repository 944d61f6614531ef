package engine

import (
	"github.com/alexisbeaulieu97/painter/internal/ordered"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

// resolveValues copies the colour table and resolves every border against it.
func resolveValues(doc *theme.Theme) (*refs, []*apperrors.ThemeError) {
	r := &refs{colors: doc.Colors.Clone(), broken: make(map[string]bool)}

	var errs []*apperrors.ThemeError
	for name, b := range doc.Borders.All() {
		a := newAttempt(r, theme.KindBorder, name)
		resolved := style.Border{Color: a.color("color", b.Color), Radius: b.Radius, Width: b.Width}
		if a.failed() {
			r.broken[name] = true
			errs = append(errs, a.errs...)
			continue
		}
		r.borders.Set(name, resolved)
	}

	return r, errs
}

// resolveLeaves fills the leaf tables of out. Leaves only reference value
// tables, so one pass in any order is enough.
func resolveLeaves(doc *theme.Theme, r *refs, out *style.Theme) []*apperrors.ThemeError {
	var errs []*apperrors.ThemeError

	if doc.Application != nil {
		a := newAttempt(r, theme.KindApplication, "")
		app := style.Application{
			Background: a.color("background_color", doc.Application.Background),
			Text:       a.color("text_color", doc.Application.Text),
		}
		if a.failed() {
			errs = append(errs, a.errs...)
		} else {
			out.Application = &app
		}
	}

	errs = append(errs, leaves(r, theme.KindContainer, doc.Containers, &out.Containers, func(a *attempt, c theme.Container) style.Container {
		return style.Container{Color: a.color("color", c.Color), Border: a.border("border", c.Border)}
	})...)

	errs = append(errs, leaves(r, theme.KindTooltip, doc.Tooltips, &out.Tooltips, func(a *attempt, t theme.Tooltip) style.Tooltip {
		return style.Tooltip{
			Background: a.color("background", t.Background),
			Text:       a.color("text", t.Text),
			Border:     a.border("border", t.Border),
		}
	})...)

	errs = append(errs, leaves(r, theme.KindProgressBar, doc.ProgressBars, &out.ProgressBars, func(a *attempt, p theme.ProgressBar) style.ProgressBar {
		return style.ProgressBar{Background: a.color("background", p.Background), Bar: a.color("bar", p.Bar), Radius: p.Radius}
	})...)

	return errs
}

func leaves[D, R any](r *refs, kind theme.Kind, decl ordered.Map[D], sink *ordered.Map[R], build func(*attempt, D) R) []*apperrors.ThemeError {
	var errs []*apperrors.ThemeError
	for name, d := range decl.All() {
		a := newAttempt(r, kind, name)
		v := build(a, d)
		if a.failed() {
			errs = append(errs, a.errs...)
			continue
		}
		sink.Set(name, v)
	}
	return errs
}
