// Package engine turns declarative themes into resolved ones and back.
package engine

import (
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/painter/internal/logger"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

// Options tunes the composite fixed point.
type Options struct {
	// MaxPasses caps the number of composite passes. Zero means passes run
	// until nothing is pending or a pass makes no progress.
	MaxPasses int
}

// Resolver resolves declarative themes. It holds no per-theme state and is
// safe for concurrent use.
type Resolver struct {
	log  *logger.Logger
	opts Options
}

// NewResolver creates a Resolver. A nil logger disables logging.
func NewResolver(log *logger.Logger, opts Options) *Resolver {
	return &Resolver{log: log, opts: opts}
}

// Result is the outcome of resolving one theme. Failed composite entries are
// missing from Theme and listed in Failures.
type Result struct {
	Theme    *style.Theme
	Failures []*apperrors.ThemeError
	Passes   int
}

// Err joins the composite failures, or returns nil when there are none.
func (r *Result) Err() error {
	if r == nil || len(r.Failures) == 0 {
		return nil
	}
	return joinErrors(r.Failures)
}

// Resolve resolves doc without modifying it. Broken colours, borders or leaf
// entries abort with every such failure joined into the returned error;
// composite failures are reported in the Result instead.
func (r *Resolver) Resolve(doc *theme.Theme) (*Result, error) {
	if doc == nil {
		return nil, errors.New("resolve theme: theme is nil")
	}

	log := r.log.ForTheme(doc.Name)

	refs, errs := resolveValues(doc)
	out := &style.Theme{
		Name:        doc.Name,
		Description: doc.Description,
		Colors:      refs.colors.Clone(),
		Borders:     refs.borders.Clone(),
	}
	errs = append(errs, resolveLeaves(doc, refs, out)...)
	if len(errs) > 0 {
		err := joinErrors(errs)
		log.Error(err, "theme has broken values or leaf entries")
		return nil, err
	}
	log.WithFields(map[string]any{
		"colors":  out.Colors.Len(),
		"borders": out.Borders.Len(),
	}).Debug("resolved value tables and leaf entries")

	tables := composites(doc, refs, out)
	passes := r.fixedPoint(log, tables)

	result := &Result{Theme: out, Passes: passes}
	for _, t := range tables {
		result.Failures = append(result.Failures, t.collect()...)
	}

	for _, f := range result.Failures {
		log.Failure(f)
	}

	return result, nil
}

func (r *Resolver) fixedPoint(log *logger.Logger, tables []compositeTable) int {
	passes := 0
	for {
		pending := 0
		for _, t := range tables {
			pending += t.pending()
		}
		if pending == 0 {
			return passes
		}

		if r.opts.MaxPasses > 0 && passes >= r.opts.MaxPasses {
			log.WithFields(map[string]any{"pending": pending, "passes": passes}).Debug("pass budget exhausted")
			for _, t := range tables {
				t.stall(fmt.Sprintf("budget exhausted after %d passes", passes))
			}
			return passes
		}

		passes++
		progress := 0
		for _, t := range tables {
			progress += t.pass()
		}
		log.WithFields(map[string]any{
			"pass":      passes,
			"finalised": progress,
			"pending":   pending - progress,
		}).Debug("composite pass complete")

		if progress == 0 {
			for _, t := range tables {
				t.stall("inheritance never resolves")
			}
			return passes
		}
	}
}

func joinErrors(errs []*apperrors.ThemeError) error {
	joined := make([]error, len(errs))
	for i, err := range errs {
		joined[i] = err
	}
	return errors.Join(joined...)
}
