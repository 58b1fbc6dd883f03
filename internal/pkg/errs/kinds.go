package errs

import "errors"

// Error categories. Every domain and usecase error is marked with exactly one
// of these so the handler layer can pick a status code without knowing the
// concrete error.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")

	ErrUnauthenticated = errors.New("unauthenticated")
)

// Idempotency errors
var (
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
)

func Validation(msg string) error { return Mark(New(msg), ErrValidation) }
func NotFound(msg string) error   { return Mark(New(msg), ErrNotFound) }
func Conflict(msg string) error   { return Mark(New(msg), ErrConflict) }
func Forbidden(msg string) error  { return Mark(New(msg), ErrForbidden) }

func IsValidation(err error) bool { return Is(err, ErrValidation) }
func IsNotFound(err error) bool   { return Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return Is(err, ErrConflict) }
func IsForbidden(err error) bool  { return Is(err, ErrForbidden) }

func IsUnauthenticated(err error) bool { return Is(err, ErrUnauthenticated) }
