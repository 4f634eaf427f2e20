package todos

import "math"

const (
	// DefaultSearchLimit applies when no result cap is given (or the given
	// cap is below one).
	DefaultSearchLimit uint32 = 10

	// MaxSearchLimit is the hard ceiling on the result cap.
	MaxSearchLimit uint32 = 100
)

// ResultLimit wraps an optional result cap. The zero value means "no cap
// given" and resolves to DefaultSearchLimit.
type ResultLimit struct {
	value *uint32
}

// LimitOf wraps an explicit result cap.
func LimitOf(n uint32) ResultLimit {
	return ResultLimit{value: &n}
}

// NoLimit is the absent result cap.
func NoLimit() ResultLimit {
	return ResultLimit{}
}

// Resolve clamps the cap into [1, MaxSearchLimit]: absent or below one
// falls back to the default, above the maximum is capped. The conversion
// guard only trips where uint32 exceeds the platform int.
func (l ResultLimit) Resolve() (int, error) {
	n := DefaultSearchLimit

	if l.value != nil {
		switch {
		case *l.value > MaxSearchLimit:
			n = MaxSearchLimit
		case *l.value >= 1:
			n = *l.value
		}
	}

	if uint64(n) > uint64(math.MaxInt) {
		return 0, ErrLimitConversion
	}

	return int(n), nil
}
