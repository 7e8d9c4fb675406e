package models

import "errors"

var (
	// Input errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidSchedule = errors.New("invalid price schedule")

	// Collaborator errors
	ErrItemNotFound          = errors.New("item not found")
	ErrControlUnavailable    = errors.New("control is disabled or item is locked")
	ErrInsufficientResources = errors.New("insufficient resources")
)
