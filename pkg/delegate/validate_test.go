package delegate_test

import (
	"testing"

	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAgainstCount_NilSelectionAlwaysValidates(t *testing.T) {
	t.Parallel()

	require.NoError(t, delegate.ValidateAgainstCount(nil, 1))
	require.NoError(t, delegate.ValidateAgainstCount(nil, 50))
}

func TestValidateAgainstCount_SelectionWithinCount(t *testing.T) {
	t.Parallel()

	require.NoError(t, delegate.ValidateAgainstCount([]int{1, 2, 3}, 5))
	require.NoError(t, delegate.ValidateAgainstCount([]int{1, 2, 3}, 3))
}

func TestValidateAgainstCount_SelectionBeyondCount(t *testing.T) {
	t.Parallel()

	err := delegate.ValidateAgainstCount([]int{1, 2, 3}, 2)
	require.ErrorIs(t, err, delegate.ErrRangeExceedsCount)
	assert.Contains(t, err.Error(), "2")
}

func TestValidateAgainstCount_CountOutsideItsOwnRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		count int
	}{
		{"zero", 0},
		{"negative", -1},
		{"above maximum", 51},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := delegate.ValidateAgainstCount([]int{1}, testCase.count)
			require.ErrorIs(t, err, delegate.ErrDelegateCountInvalid)
		})
	}
}
