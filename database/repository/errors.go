package repository

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks persistence-layer failures (connectivity,
// timeouts) so handlers can answer 503 without leaking driver errors.
var ErrStoreUnavailable = errors.New("store unavailable")

// Unavailable wraps a driver error with ErrStoreUnavailable.
func Unavailable(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrStoreUnavailable)
}
