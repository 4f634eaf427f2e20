package todos

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrEmptyTitle      = errors.New("todo title cannot be empty")
	ErrNoChanges       = errors.New("at least one change must be present")
	ErrEmptyCollection = errors.New("target collection cannot be empty")
	ErrLimitConversion = errors.New("result limit does not fit the platform index type")
)

// TitleTooLongError reports a title exceeding MaxTitleLen.
type TitleTooLongError struct {
	Input  string
	MaxLen int
}

func (e *TitleTooLongError) Error() string {
	return fmt.Sprintf("title %q exceeds max %d characters", e.Input, e.MaxLen)
}

// DateTimeParseError reports a deadline string that does not match the
// user-facing date-time format.
type DateTimeParseError struct {
	Input          string
	ExpectedFormat string
	cause          error
}

func (e *DateTimeParseError) Error() string {
	return fmt.Sprintf("%q is not in the required format of %q", e.Input, e.ExpectedFormat)
}

// Unwrap returns the underlying parse error.
func (e *DateTimeParseError) Unwrap() error {
	return e.cause
}

// NotFoundError reports a lookup for an ID the store does not hold.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo with ID %q not found", e.ID)
}

// InvalidIDError reports an external identifier string that is not a valid
// UUID. It is produced by boundary adapters, never by the store itself.
type InvalidIDError struct {
	Raw   string
	cause error
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("%q is not a valid todo ID", e.Raw)
}

// Unwrap returns the underlying parse error.
func (e *InvalidIDError) Unwrap() error {
	return e.cause
}

// NewInvalidIDError wraps a UUID parse failure for the raw input.
func NewInvalidIDError(raw string, cause error) *InvalidIDError {
	return &InvalidIDError{Raw: raw, cause: cause}
}

// CountConversionError reports a record count that cannot be widened to the
// external unsigned representation. Practically unreachable on 64-bit
// platforms; kept as a defensive guard.
type CountConversionError struct {
	Count int
}

func (e *CountConversionError) Error() string {
	return fmt.Sprintf("cannot convert count %d to unsigned 64-bit", e.Count)
}
