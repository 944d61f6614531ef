package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/painter/internal/theme"
)

// Outcome pairs one document of a batch with its resolution. Err holds a
// fatal resolution error; composite failures stay in Result.
type Outcome struct {
	Theme  *theme.Theme
	Result *Result
	Err    error
}

// ResolveAll resolves independent documents on at most limit goroutines
// (limit <= 0 means unbounded). Outcomes keep the order of docs. Cancelling
// ctx stops documents that have not started; the returned error is the
// context's error in that case.
func (r *Resolver) ResolveAll(ctx context.Context, docs []*theme.Theme, limit int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				outcomes[i] = Outcome{Theme: doc, Err: err}
				return err
			}
			res, err := r.Resolve(doc)
			outcomes[i] = Outcome{Theme: doc, Result: res, Err: err}
			return nil
		})
	}

	return outcomes, g.Wait()
}
