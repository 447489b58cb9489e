package service

import "errors"

var (
	// ErrNotFound means the target record does not exist.
	ErrNotFound = errors.New("service: not found")
	// ErrConflict means a concurrent write won a uniqueness race; the
	// validator's check passed but the insert lost to the constraint.
	ErrConflict = errors.New("service: duplicate username or email")
)
