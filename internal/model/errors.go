package model

import "errors"

// Sentinel errors for list commands
var (
	// ErrEmptyDescription is returned when a description is blank after trimming
	ErrEmptyDescription = errors.New("description must not be empty")

	// ErrInvalidQuantity is returned for quantities outside MinQuantity..MaxQuantity
	ErrInvalidQuantity = errors.New("quantity out of range")

	// ErrUnknownSortMode is returned for sort modes that are not defined
	ErrUnknownSortMode = errors.New("unknown sort mode")
)
