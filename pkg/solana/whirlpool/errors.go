package whirlpool

import (
	"fmt"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

// WhirlpoolError is a custom error code returned by the program.
type WhirlpoolError uint32

const (
	ErrInvalidEnum WhirlpoolError = iota + 0x1770
	ErrInvalidStartTick
	ErrTickArrayExistInPool
	ErrTickArrayIndexOutofBounds
	ErrProgramInvalidTickSpacing
	ErrClosePositionNotEmpty
	ErrDivideByZero
	ErrNumberCastError
	ErrNumberDownCastError

	// Tick array account doesn't contain the tick for the position
	ErrTickNotFound

	ErrInvalidTickIndex
	ErrSqrtPriceOutOfBounds

	// Position has zero liquidity, so its fees and rewards are already up to date
	ErrLiquidityZero

	ErrLiquidityTooHigh
	ErrLiquidityOverflow
	ErrLiquidityUnderflow
	ErrLiquidityNetError
	ErrTokenMaxExceeded
	ErrTokenMinSubceeded
	ErrMissingOrInvalidDelegate
	ErrInvalidPositionTokenAmount
	ErrInvalidTimestampConversion
	ErrInvalidTimestamp
	ErrInvalidTickArraySequence
	ErrInvalidTokenMintOrder
	ErrRewardNotInitialized
	ErrInvalidRewardIndex
	ErrRewardVaultAmountInsufficient
	ErrFeeRateMaxExceeded
	ErrProtocolFeeRateMaxExceeded
	ErrMultiplicationShiftRightOverflow
	ErrMulDivOverflow
	ErrMulDivInvalidInput
	ErrMultiplicationOverflow
	ErrInvalidSqrtPriceLimitDirection
	ErrZeroTradableAmount
	ErrAmountOutBelowMinimum
	ErrAmountInAboveMaximum
	ErrTickArraySequenceInvalidIndex
	ErrAmountCalcOverflow
	ErrAmountRemainingOverflow
)

var whirlpoolErrorNames = map[WhirlpoolError]string{
	ErrInvalidEnum:                      "InvalidEnum",
	ErrInvalidStartTick:                 "InvalidStartTick",
	ErrTickArrayExistInPool:             "TickArrayExistInPool",
	ErrTickArrayIndexOutofBounds:        "TickArrayIndexOutofBounds",
	ErrProgramInvalidTickSpacing:        "InvalidTickSpacing",
	ErrClosePositionNotEmpty:            "ClosePositionNotEmpty",
	ErrDivideByZero:                     "DivideByZero",
	ErrNumberCastError:                  "NumberCastError",
	ErrNumberDownCastError:              "NumberDownCastError",
	ErrTickNotFound:                     "TickNotFound",
	ErrInvalidTickIndex:                 "InvalidTickIndex",
	ErrSqrtPriceOutOfBounds:             "SqrtPriceOutOfBounds",
	ErrLiquidityZero:                    "LiquidityZero",
	ErrLiquidityTooHigh:                 "LiquidityTooHigh",
	ErrLiquidityOverflow:                "LiquidityOverflow",
	ErrLiquidityUnderflow:               "LiquidityUnderflow",
	ErrLiquidityNetError:                "LiquidityNetError",
	ErrTokenMaxExceeded:                 "TokenMaxExceeded",
	ErrTokenMinSubceeded:                "TokenMinSubceeded",
	ErrMissingOrInvalidDelegate:         "MissingOrInvalidDelegate",
	ErrInvalidPositionTokenAmount:       "InvalidPositionTokenAmount",
	ErrInvalidTimestampConversion:       "InvalidTimestampConversion",
	ErrInvalidTimestamp:                 "InvalidTimestamp",
	ErrInvalidTickArraySequence:         "InvalidTickArraySequence",
	ErrInvalidTokenMintOrder:            "InvalidTokenMintOrder",
	ErrRewardNotInitialized:             "RewardNotInitialized",
	ErrInvalidRewardIndex:               "InvalidRewardIndex",
	ErrRewardVaultAmountInsufficient:    "RewardVaultAmountInsufficient",
	ErrFeeRateMaxExceeded:               "FeeRateMaxExceeded",
	ErrProtocolFeeRateMaxExceeded:       "ProtocolFeeRateMaxExceeded",
	ErrMultiplicationShiftRightOverflow: "MultiplicationShiftRightOverflow",
	ErrMulDivOverflow:                   "MulDivOverflow",
	ErrMulDivInvalidInput:               "MulDivInvalidInput",
	ErrMultiplicationOverflow:           "MultiplicationOverflow",
	ErrInvalidSqrtPriceLimitDirection:   "InvalidSqrtPriceLimitDirection",
	ErrZeroTradableAmount:               "ZeroTradableAmount",
	ErrAmountOutBelowMinimum:            "AmountOutBelowMinimum",
	ErrAmountInAboveMaximum:             "AmountInAboveMaximum",
	ErrTickArraySequenceInvalidIndex:    "TickArraySequenceInvalidIndex",
	ErrAmountCalcOverflow:               "AmountCalcOverflow",
	ErrAmountRemainingOverflow:          "AmountRemainingOverflow",
}

func (e WhirlpoolError) String() string {
	if name, ok := whirlpoolErrorNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", uint32(e))
}

func (e WhirlpoolError) Error() string {
	return fmt.Sprintf("whirlpool program error %d: %s", uint32(e), e.String())
}

// IsKnown reports whether the code is one the program is known to return.
func (e WhirlpoolError) IsKnown() bool {
	_, ok := whirlpoolErrorNames[e]
	return ok
}

// GetWhirlpoolError extracts the program error from a failed transaction,
// along with the index of the instruction that raised it.
func GetWhirlpoolError(txErr *solana.TransactionError) (WhirlpoolError, int, bool) {
	if txErr == nil {
		return 0, 0, false
	}

	code, index, ok := txErr.CustomErrorCode()
	if !ok {
		return 0, 0, false
	}

	whirlpoolErr := WhirlpoolError(code)
	if !whirlpoolErr.IsKnown() {
		return 0, 0, false
	}

	return whirlpoolErr, index, true
}
