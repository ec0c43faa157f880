package domain

import (
	"errors"
	"fmt"
)

// Error kinds services return; handlers map them onto HTTP statuses with
// errors.Is, so they must be wrapped with %w.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage error")
	ErrForbidden  = errors.New("forbidden")
)

func ValidationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func StorageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
