package store

import "errors"

var (
	// ErrInvalidArgument is returned when a required input is nil or empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a locationId lies outside [models.MinLocationID, models.MaxLocationID].
	ErrOutOfRange = errors.New("locationId out of range")
)
