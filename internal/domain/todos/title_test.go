package todos

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Buy milk", "Buy milk"},
		{"surrounding whitespace is trimmed", "  Buy milk \t", "Buy milk"},
		{"exactly max length", strings.Repeat("a", MaxTitleLen), strings.Repeat("a", MaxTitleLen)},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewTitle(testCase.input).Validate()
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestTitleValidateEmpty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NewTitle(input).Validate()
		require.ErrorIs(t, err, ErrEmptyTitle, "input %q should be rejected as empty", input)
	}
}

func TestTitleValidateTooLong(t *testing.T) {
	t.Parallel()

	input := strings.Repeat("a", MaxTitleLen+1)

	_, err := NewTitle(input).Validate()

	var tooLong *TitleTooLongError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, input, tooLong.Input)
	assert.Equal(t, MaxTitleLen, tooLong.MaxLen)
}
