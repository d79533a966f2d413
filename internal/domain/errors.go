// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrEmptyTitle is returned when a task has no title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrInvalidPriority is returned when a priority is not one of High, Medium, Low.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidRecurrence is returned when a recurrence is not one of None, Daily, Weekly, Monthly.
	ErrInvalidRecurrence = errors.New("invalid recurrence")

	// ErrInvalidDueDate is returned when a due date is missing or unparseable.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrEmptyEmail is returned when an email address is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyPassword is returned when a password is missing.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrEmptyHashedPassword is returned when a stored user has no password hash.
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)
