package todos

import "strings"

// MaxTitleLen is the maximum number of bytes a stored title may have.
const MaxTitleLen = 20

// Title wraps a raw title string, trimmed of surrounding whitespace on
// construction. Validation happens when the store consumes it.
type Title struct {
	value string
}

// NewTitle trims the raw input and wraps it.
func NewTitle(raw string) Title {
	return Title{value: strings.TrimSpace(raw)}
}

// Validate returns the trimmed title, or ErrEmptyTitle / TitleTooLongError
// when it is empty or longer than MaxTitleLen.
func (t Title) Validate() (string, error) {
	switch {
	case len(t.value) < 1:
		return "", ErrEmptyTitle
	case len(t.value) > MaxTitleLen:
		return "", &TitleTooLongError{Input: t.value, MaxLen: MaxTitleLen}
	default:
		return t.value, nil
	}
}
