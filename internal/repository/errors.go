package repository

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given key.
	ErrUserNotFound = errors.New("user not found")

	// ErrReadingNotFound is returned when no reading matches the given id.
	ErrReadingNotFound = errors.New("reading not found")

	// ErrDuplicateUser is returned when the username or email is already taken.
	ErrDuplicateUser = errors.New("username or email already exists")
)
