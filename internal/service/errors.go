// Package service applies the business rules sitting between the HTTP
// handlers and the repositories.  The booking admission rules live here;
// the CRUD services mostly add existence and range checks on top of
// their repositories.
package service

import (
	"errors"
	"fmt"
)

// Business-rule rejections.  Handlers translate these into HTTP 400
// responses; they are distinct from the repository's not-found and
// duplicate-key errors.
var (
	// ErrDateInPast rejects a booking dated before today.
	ErrDateInPast = errors.New("booking date cannot be in the past")

	// ErrDateTooFar rejects a booking dated beyond the booking horizon.
	ErrDateTooFar = errors.New("booking date is too far in advance")

	// ErrInvalidDate rejects a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrTableUnavailable rejects a booking whose table, date and time
	// slot are already taken by another booking.
	ErrTableUnavailable = errors.New("table already booked for this time slot")
)

// CapacityError reports a table capacity outside the configured range.
type CapacityError struct {
	Min, Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity must be between %d and %d seats", e.Min, e.Max)
}
