package whirlpool

const (
	TICK_ARRAY_SIZE = 88

	MIN_TICK_INDEX = -443636
	MAX_TICK_INDEX = 443636
)

// IsTickIndexInBounds reports whether tickIndex is within the range supported
// by the program.
func IsTickIndexInBounds(tickIndex int32) bool {
	return tickIndex >= MIN_TICK_INDEX && tickIndex <= MAX_TICK_INDEX
}

// IsTickInitializable reports whether a position boundary can be placed at
// tickIndex for a pool with the given tick spacing.
func IsTickInitializable(tickIndex int32, tickSpacing uint16) bool {
	if tickSpacing == 0 {
		return false
	}
	return tickIndex%int32(tickSpacing) == 0
}

// GetTickArrayStartTickIndex returns the start index of the tick array that
// hosts tickIndex. Each tick array covers TICK_ARRAY_SIZE ticks spaced
// tickSpacing apart, and start indexes are rounded towards negative infinity.
func GetTickArrayStartTickIndex(tickIndex int32, tickSpacing uint16) (int32, error) {
	if tickSpacing == 0 {
		return 0, ErrInvalidTickSpacing
	}
	if !IsTickIndexInBounds(tickIndex) {
		return 0, ErrTickIndexOutOfBounds
	}

	ticksInArray := int32(tickSpacing) * TICK_ARRAY_SIZE

	arrayIndex := tickIndex / ticksInArray
	if tickIndex < 0 && tickIndex%ticksInArray != 0 {
		arrayIndex--
	}

	return arrayIndex * ticksInArray, nil
}
