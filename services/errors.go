package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"
)

// Error taxonomy surfaced to the HTTP layer. Callers match with errors.Is;
// the concrete message travels in the wrapping error.
var (
	// ErrValidation marks malformed or out-of-range input. Not retryable
	// without changing the request.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an absent referenced entity.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a slot that is no longer available. The caller must
	// re-query availability and pick another slot.
	ErrConflict = errors.New("conflict")
	// ErrTransientStore marks a store timeout or connection failure. Safe to
	// retry with backoff.
	ErrTransientStore = errors.New("transient store failure")
)

// HTTPStatus maps a service error to its response code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrTransientStore):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// storeErr classifies a raw database error: deadline and cancellation
// failures become transient, everything else passes through untouched.
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Join(ErrTransientStore, err)
	}
	return err
}

const defaultStoreTimeout = 5 * time.Second

// storeContext bounds every store call with a request-scoped deadline, so a
// hung connection surfaces as ErrTransientStore instead of blocking the
// request. STORE_TIMEOUT overrides the default.
func storeContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultStoreTimeout
	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}
	return context.WithTimeout(parent, timeout)
}
