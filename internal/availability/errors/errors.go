package errors

import "errors"

var (
	ErrNotFound = errors.New("slot not found")

	ErrInvalidID = errors.New("invalid slot ID format")

	ErrInvalidRange = errors.New("end time must be after start time")

	// ErrAlreadyBooked signals a lost race or an attempt to touch consumed
	// availability. Booked slots are immutable history.
	ErrAlreadyBooked = errors.New("slot is already booked")

	ErrNotOwned = errors.New("slot belongs to another painter")
)
