package booking

import "fmt"

// ConflictError signals that the caller already holds a booking for the
// same treatment on the same date.
type ConflictError struct {
	Date string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.Date)
}
