package repository

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry means a write violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// isDuplicateEntryError sniffs the driver-specific unique-violation message.
// Covers sqlite, mysql and postgres wordings.
func isDuplicateEntryError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
