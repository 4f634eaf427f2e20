package todos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultLimitResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit ResultLimit
		want  int
	}{
		{"absent falls back to default", NoLimit(), 10},
		{"zero falls back to default", LimitOf(0), 10},
		{"within range passes through", LimitOf(5), 5},
		{"one is the lowest accepted", LimitOf(1), 1},
		{"maximum passes through", LimitOf(100), 100},
		{"above maximum is capped", LimitOf(200), 100},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := testCase.limit.Resolve()
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}
