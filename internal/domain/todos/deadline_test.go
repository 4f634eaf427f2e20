package todos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadlineResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int64
	}{
		{"2022-01-01 09", 1641027600},
		{"1970-01-01 00", 0},
		{" 2022-01-01 09 ", 1641027600},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := DeadlineOf(testCase.input).Resolve()
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, testCase.want, *got)
		})
	}
}

func TestDeadlineResolveAbsent(t *testing.T) {
	t.Parallel()

	got, err := NoDeadline().Resolve()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeadlineResolveInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"not a date", "abc"},
		{"missing hour", "2022-01-01"},
		{"february 29 on a non-leap year", "2021-02-29 01"},
		{"february 30", "2022-02-30 01"},
		{"unparsable hour", "2022-01-01 xx"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := DeadlineOf(testCase.input).Resolve()

			var parseErr *DateTimeParseError
			require.True(t, errors.As(err, &parseErr), "expected DateTimeParseError, got %v", err)
			assert.Equal(t, testCase.input, parseErr.Input)
			assert.Equal(t, "YYYY-MM-DD HH", parseErr.ExpectedFormat)
		})
	}
}
