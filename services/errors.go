// Package services holds the business logic behind the HTTP layer. The
// sentinel errors below are the shared failure taxonomy: services wrap them
// with context via fmt.Errorf("%w: ..."), and controllers translate them to
// HTTP statuses with errors.Is.
package services

import "errors"

// ErrValidation marks malformed or missing input (bad date range, rating out
// of bounds, unknown promo code). Maps to 400.
var ErrValidation = errors.New("validation failed")

// ErrNotFound marks a referenced room/booking/promo/user that does not exist.
// Maps to 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden marks an operation on a resource the caller does not own, or a
// review attempt without a completed stay. Maps to 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict marks an invalid state transition, such as cancelling an
// already-cancelled booking. Maps to 409.
var ErrConflict = errors.New("conflict")

// ErrInsufficientAvailability marks a booking attempt where at least one date
// in the requested range has no unit left. Maps to 400; the booking is never
// partially created.
var ErrInsufficientAvailability = errors.New("insufficient availability")
