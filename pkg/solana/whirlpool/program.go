package whirlpool

import (
	"crypto/ed25519"
	"errors"
)

var (
	ErrInvalidProgram         = errors.New("invalid program id")
	ErrInvalidInstructionData = errors.New("unexpected instruction data")
	ErrInvalidTickSpacing     = errors.New("tick spacing must be positive")
	ErrTickIndexOutOfBounds   = errors.New("tick index out of bounds")
	ErrInvalidTickRange       = errors.New("lower tick index must be less than upper tick index")
	ErrTickNotInitializable   = errors.New("tick index is not a multiple of the tick spacing")
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)
