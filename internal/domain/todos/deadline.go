package todos

import (
	"strings"
	"time"
)

// DeadlineFormat is the user-facing deadline format: hour granularity only.
const DeadlineFormat = "2006-01-02 15"

// DeadlineInput wraps an optional raw deadline string. The zero value means
// "no deadline given".
type DeadlineInput struct {
	raw *string
}

// DeadlineOf wraps a raw deadline string.
func DeadlineOf(raw string) DeadlineInput {
	return DeadlineInput{raw: &raw}
}

// NoDeadline is the absent deadline input.
func NoDeadline() DeadlineInput {
	return DeadlineInput{}
}

// IsSet reports whether a raw value is present.
func (d DeadlineInput) IsSet() bool {
	return d.raw != nil
}

// Resolve parses the raw input into unix seconds, truncated to the top of
// the hour, interpreted as UTC. An absent input resolves to nil. A malformed
// string or an out-of-range calendar date fails with DateTimeParseError.
func (d DeadlineInput) Resolve() (*int64, error) {
	if d.raw == nil {
		return nil, nil
	}

	input := strings.TrimSpace(*d.raw)

	parsed, err := time.ParseInLocation(DeadlineFormat, input, time.UTC)
	if err != nil {
		return nil, &DateTimeParseError{
			Input:          *d.raw,
			ExpectedFormat: "YYYY-MM-DD HH",
			cause:          err,
		}
	}

	unix := parsed.Unix()
	return &unix, nil
}
