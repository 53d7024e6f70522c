package whirlpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTickArrayStartTickIndex(t *testing.T) {
	for _, tc := range []struct {
		tick     int32
		spacing  uint16
		expected int32
	}{
		{0, 64, 0},
		{1, 64, 0},
		{5631, 64, 0},
		{5632, 64, 5632},
		{-1, 64, -5632},
		{-5632, 64, -5632},
		{-5633, 64, -11264},
		{100, 1, 88},
		{-88, 1, -88},
		{-89, 1, -176},
		{MAX_TICK_INDEX, 1, 443608},
		{MIN_TICK_INDEX, 1, -443696},
	} {
		actual, err := GetTickArrayStartTickIndex(tc.tick, tc.spacing)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, actual, "tick=%d spacing=%d", tc.tick, tc.spacing)
	}
}

func TestGetTickArrayStartTickIndex_Invalid(t *testing.T) {
	_, err := GetTickArrayStartTickIndex(0, 0)
	assert.Equal(t, ErrInvalidTickSpacing, err)

	_, err = GetTickArrayStartTickIndex(MAX_TICK_INDEX+1, 64)
	assert.Equal(t, ErrTickIndexOutOfBounds, err)

	_, err = GetTickArrayStartTickIndex(MIN_TICK_INDEX-1, 64)
	assert.Equal(t, ErrTickIndexOutOfBounds, err)
}

func TestIsTickInitializable(t *testing.T) {
	assert.True(t, IsTickInitializable(128, 64))
	assert.True(t, IsTickInitializable(-128, 64))
	assert.False(t, IsTickInitializable(100, 64))
	assert.False(t, IsTickInitializable(64, 0))
}
