// ABOUTME: Sentinel errors for store operations
// ABOUTME: Callers match these with errors.Is and surface user-facing messages
package db

import "errors"

var (
	// ErrNotFound means a referenced profile or contact id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName means a profile with the same trimmed name already exists.
	ErrDuplicateName = errors.New("profile name already exists")

	// ErrValidation means user input was missing or malformed.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidStatus means a status outside the closed enumeration was supplied.
	ErrInvalidStatus = errors.New("invalid call status")
)
