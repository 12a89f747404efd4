package core

import "context"

// ViewInvalidator signals the presentation layer that dashboard views are stale.
// Callers treat failures as non-fatal: the mutation has already been committed.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}
