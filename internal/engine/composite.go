package engine

import (
	"fmt"

	"github.com/alexisbeaulieu97/painter/internal/ordered"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

type status int

const (
	statusPending status = iota
	statusResolved
	statusFailed
)

// compositeTable is one composite kind taking part in the fixed point.
type compositeTable interface {
	// pass attempts every pending entry once and returns how many were
	// finalised, resolved or failed.
	pass() int
	pending() int
	// stall fails every pending entry as an unresolvable cycle.
	stall(message string)
	// collect writes resolved entries to the output table and returns the
	// failures in document order.
	collect() []*apperrors.ThemeError
}

// entries tracks the entries of one composite kind across passes. An entry
// is finalised at most once; later passes never touch it again.
type entries[D, R any] struct {
	kind  theme.Kind
	decl  ordered.Map[D]
	refs  *refs
	sink  *ordered.Map[R]
	build func(a *attempt, d D) R

	status   map[string]status
	resolved map[string]R
	waiting  map[string][]string
	errs     map[string][]*apperrors.ThemeError
}

func newEntries[D, R any](r *refs, kind theme.Kind, decl ordered.Map[D], sink *ordered.Map[R]) *entries[D, R] {
	return &entries[D, R]{
		kind:     kind,
		decl:     decl,
		refs:     r,
		sink:     sink,
		status:   make(map[string]status, decl.Len()),
		resolved: make(map[string]R, decl.Len()),
		waiting:  make(map[string][]string),
		errs:     make(map[string][]*apperrors.ThemeError),
	}
}

func (e *entries[D, R]) pass() int {
	done := 0
	for name, d := range e.decl.All() {
		if e.status[name] != statusPending {
			continue
		}

		a := newAttempt(e.refs, e.kind, name)
		v := e.build(a, d)

		switch {
		case a.failed():
			e.status[name] = statusFailed
			e.errs[name] = a.errs
			delete(e.waiting, name)
			done++
		case len(a.deferred) > 0:
			e.waiting[name] = a.deferred
		default:
			e.status[name] = statusResolved
			e.resolved[name] = v
			delete(e.waiting, name)
			done++
		}
	}
	return done
}

func (e *entries[D, R]) pending() int {
	n := 0
	for _, name := range e.decl.Keys() {
		if e.status[name] == statusPending {
			n++
		}
	}
	return n
}

func (e *entries[D, R]) stall(message string) {
	var stuck []string
	for _, name := range e.decl.Keys() {
		if e.status[name] == statusPending {
			stuck = append(stuck, name)
		}
	}

	// Chains are walked before any status changes so every one of them sees
	// the same pending set.
	for _, name := range stuck {
		e.errs[name] = []*apperrors.ThemeError{
			apperrors.NewUnresolvableCycle(string(e.kind), name, e.chain(name), message),
		}
	}
	for _, name := range stuck {
		e.status[name] = statusFailed
		delete(e.waiting, name)
	}
}

// chain follows the first peer each pending entry waits on until a name
// repeats or the walk leaves the pending set.
func (e *entries[D, R]) chain(name string) []string {
	path := []string{name}
	seen := map[string]bool{name: true}

	for cur := name; ; {
		peers := e.waiting[cur]
		if len(peers) == 0 {
			return path
		}
		next := peers[0]
		path = append(path, next)
		if seen[next] || e.status[next] != statusPending {
			return path
		}
		seen[next] = true
		cur = next
	}
}

func (e *entries[D, R]) collect() []*apperrors.ThemeError {
	var failures []*apperrors.ThemeError
	for _, name := range e.decl.Keys() {
		switch e.status[name] {
		case statusResolved:
			e.sink.Set(name, e.resolved[name])
		case statusFailed:
			failures = append(failures, e.errs[name]...)
		}
	}
	return failures
}

// inherit reads the slot picked out of a peer entry. A pending peer defers
// the attempt; an undeclared or failed peer fails it.
func inherit[D, R, V any](a *attempt, e *entries[D, R], peer string, pick func(R) V) (V, bool) {
	var zero V

	if !e.decl.Has(peer) {
		a.fail(apperrors.NewUnknownReference(string(e.kind), a.entry, "inherited", peer))
		return zero, false
	}

	switch e.status[peer] {
	case statusResolved:
		return pick(e.resolved[peer]), true
	case statusFailed:
		err := apperrors.NewUnknownReference(string(e.kind), a.entry, "inherited", peer)
		err.Message = fmt.Sprintf("inherits from failed entry %q", peer)
		a.fail(err)
	default:
		a.waitFor(peer)
	}
	return zero, false
}

// slots resolves one run of slots. Defined slots look their fields up,
// inherited slots copy the same position of a peer. Once nothing in the run
// is deferred, Absent slots take the first resolved slot when fill is set;
// without fill every slot must resolve on its own.
func slots[D, R, S, V any](
	a *attempt,
	e *entries[D, R],
	labels []string,
	in []theme.Slot[S],
	define func(S) V,
	pick func(R, int) V,
	fill bool,
) []V {
	errsBefore, deferredBefore := len(a.errs), len(a.deferred)

	out := make([]V, len(in))
	have := make([]bool, len(in))
	for i, slot := range in {
		a.at(i, labels[i])
		switch slot.Kind {
		case theme.Defined:
			mark := len(a.errs)
			v := define(slot.Value)
			if len(a.errs) == mark {
				out[i], have[i] = v, true
			}
		case theme.Inherited:
			v, ok := inherit(a, e, slot.Inherited, func(r R) V { return pick(r, i) })
			if ok {
				out[i], have[i] = v, true
			}
		}
	}
	a.at(apperrors.NoSlot, "")

	if len(a.errs) > errsBefore || len(a.deferred) > deferredBefore {
		return nil
	}

	first := -1
	for i := range in {
		if have[i] {
			first = i
			break
		}
	}

	if !fill {
		for i := range in {
			if !have[i] {
				a.fail(apperrors.NewNoDefinedState(string(e.kind), a.entry).AtSlot(i, labels[i]))
			}
		}
		return out
	}

	if first < 0 {
		a.fail(apperrors.NewNoDefinedState(string(e.kind), a.entry))
		return nil
	}
	for i := range in {
		if !have[i] {
			out[i] = out[first]
		}
	}
	return out
}
