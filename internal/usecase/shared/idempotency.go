package shared

import (
	"context"

	"github.com/google/uuid"
)

// IdempotencyStore remembers the result of a keyed request for a while.
//
// Begin claims the key. It returns the stored result when an earlier request
// with the key already completed, and errs.ErrIdempotencyInProgress while one
// is still running. Release gives the key back after a failed attempt.
type IdempotencyStore interface {
	Begin(ctx context.Context, key string) (*uuid.UUID, error)
	Complete(ctx context.Context, key string, resultID uuid.UUID) error
	Release(ctx context.Context, key string) error
}
