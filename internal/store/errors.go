package store

import (
	"errors"
	"fmt"
)

// StorageError reports a failed persistence call. Err carries the driver
// detail, which is logged but never shown to API callers.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func wrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorageError reports whether err originates from the persistence layer
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
