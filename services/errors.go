package services

import (
	"errors"
	"fmt"
	"strings"
)

// Failure classes surfaced to the API layer. Everything else coming out of
// the storage layer is passed through as-is and treated as a server error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("tournament not found")
	ErrConflict   = errors.New("duplicate tournament entry")
)

// classify maps a storage uniqueness violation onto ErrConflict and leaves
// every other error untouched. Matches the Postgres driver text as well as
// SQLite's, which the tests run against.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "unique constraint") {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}
