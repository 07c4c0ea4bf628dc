package errors

import "errors"

var (
	ErrPainterNotFound = errors.New("painter profile not found")

	ErrCustomerNotFound = errors.New("customer profile not found")

	ErrInvalidID = errors.New("invalid profile ID format")

	// ErrAlreadyExists guards the one-profile-per-identity rule.
	ErrAlreadyExists = errors.New("profile already exists for this identity")
)
