package engine

import (
	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/ordered"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

// refs holds the resolved value tables every style entry looks names up in.
type refs struct {
	colors  ordered.Map[color.Color]
	borders ordered.Map[style.Border]
	// broken names declared borders that failed; references to them are not
	// reported a second time.
	broken map[string]bool
}

// attempt is one try at resolving one entry. Lookups never stop early: every
// failure is recorded so a single run reports all of them.
type attempt struct {
	refs  *refs
	kind  theme.Kind
	entry string

	slot  int
	label string

	errs     []*apperrors.ThemeError
	deferred []string
}

func newAttempt(r *refs, kind theme.Kind, entry string) *attempt {
	return &attempt{refs: r, kind: kind, entry: entry, slot: apperrors.NoSlot}
}

// at attributes the following failures to slot i.
func (a *attempt) at(i int, label string) {
	a.slot, a.label = i, label
}

func (a *attempt) fail(err *apperrors.ThemeError) {
	if a.slot != apperrors.NoSlot {
		err = err.AtSlot(a.slot, a.label)
	}
	a.errs = append(a.errs, err)
}

func (a *attempt) waitFor(peer string) {
	a.deferred = append(a.deferred, peer)
}

func (a *attempt) failed() bool {
	return len(a.errs) > 0
}

func (a *attempt) color(field, name string) color.Color {
	c, ok := a.refs.colors.Get(name)
	if !ok {
		a.fail(apperrors.NewUnknownReference(string(a.kind), a.entry, field, name))
	}
	return c
}

func (a *attempt) border(field, name string) style.Border {
	b, ok := a.refs.borders.Get(name)
	if !ok && !a.refs.broken[name] {
		a.fail(apperrors.NewUnknownReference(string(a.kind), a.entry, field, name))
	}
	return b
}
