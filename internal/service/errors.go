package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound marks lookups for ids that do not exist. Handlers map it to a
// 404 response.
var ErrNotFound = errors.New("record not found")

// ValidationError marks rejected input: a missing required field, an
// unparseable value, an unknown type tag, or a broken foreign reference.
// Handlers map it to a 400 response carrying the message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// notFoundOr translates GORM's record-not-found into the service taxonomy.
// Other errors pass through; the store already wrapped them with context.
func notFoundOr(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return err
}
