package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad date", ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: staff missing", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: slot no longer available", ErrConflict), http.StatusConflict},
		{fmt.Errorf("wrapping: %w", ErrTransientStore), http.StatusServiceUnavailable},
		{errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestStoreErrClassifiesTimeouts(t *testing.T) {
	err := storeErr(context.DeadlineExceeded)
	if !errors.Is(err, ErrTransientStore) {
		t.Fatalf("deadline exceeded should map to ErrTransientStore")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("original cause should still be visible")
	}

	plain := errors.New("syntax error")
	if got := storeErr(plain); !errors.Is(got, plain) || errors.Is(got, ErrTransientStore) {
		t.Fatalf("plain errors should pass through unchanged")
	}
}

func TestStoreContextInstallsDeadline(t *testing.T) {
	ctx, cancel := storeContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("storeContext should install a deadline")
	}
	if remaining := time.Until(deadline); remaining > defaultStoreTimeout {
		t.Fatalf("deadline %v exceeds default timeout", remaining)
	}

	t.Setenv("STORE_TIMEOUT", "250ms")
	ctx2, cancel2 := storeContext(context.Background())
	defer cancel2()
	deadline2, _ := ctx2.Deadline()
	if remaining := time.Until(deadline2); remaining > 250*time.Millisecond {
		t.Fatalf("STORE_TIMEOUT override not honored, remaining %v", remaining)
	}
}

func TestCreateErrMapsConstraintViolation(t *testing.T) {
	err := createErr(errors.New(`ERROR: conflicting key value violates exclusion constraint "appointments_no_overlap" (SQLSTATE 23P01)`))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("exclusion violation should map to ErrConflict, got %v", err)
	}

	if err := createErr(nil); err != nil {
		t.Fatalf("nil should stay nil")
	}
}
