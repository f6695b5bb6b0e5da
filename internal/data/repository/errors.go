// Package repository defines error types that are reused across
// multiple repositories, so higher layers can distinguish failure
// scenarios without matching on message text. A NotFoundError maps to
// an HTTP 404, a transient fault to a retryable 503.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// NotFoundError signals that a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%v not found", e.Entity, e.ID)
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransient reports whether err is a persistence fault the caller may
// retry: a lock-wait timeout, a deadlock, a serialization failure, a
// connection fault, or a deadline expiry. Business failures and absent
// entities are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgerrcode.LockNotAvailable,
		pgerrcode.DeadlockDetected,
		pgerrcode.SerializationFailure:
		return true
	}
	return pgerrcode.IsConnectionException(pgErr.Code)
}
