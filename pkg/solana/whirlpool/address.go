package whirlpool

import (
	"crypto/ed25519"
	"strconv"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

var (
	WhirlpoolPrefix = []byte("whirlpool")
	PositionPrefix  = []byte("position")
	TickArrayPrefix = []byte("tick_array")
)

type GetWhirlpoolAddressArgs struct {
	WhirlpoolsConfig ed25519.PublicKey
	TokenMintA       ed25519.PublicKey
	TokenMintB       ed25519.PublicKey
	TickSpacing      uint16
}

func GetWhirlpoolAddress(program ed25519.PublicKey, args *GetWhirlpoolAddressArgs) (ed25519.PublicKey, uint8, error) {
	var offset int
	tickSpacing := make([]byte, 2)
	putUint16(tickSpacing, args.TickSpacing, &offset)

	return solana.FindProgramAddressAndBump(
		program,
		WhirlpoolPrefix,
		args.WhirlpoolsConfig,
		args.TokenMintA,
		args.TokenMintB,
		tickSpacing,
	)
}

type GetPositionAddressArgs struct {
	PositionMint ed25519.PublicKey
}

func GetPositionAddress(program ed25519.PublicKey, args *GetPositionAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		program,
		PositionPrefix,
		args.PositionMint,
	)
}

type GetTickArrayAddressArgs struct {
	Whirlpool      ed25519.PublicKey
	StartTickIndex int32
}

// GetTickArrayAddress derives the tick array that starts at StartTickIndex.
// The start index is seeded as its decimal string representation.
func GetTickArrayAddress(program ed25519.PublicKey, args *GetTickArrayAddressArgs) (ed25519.PublicKey, uint8, error) {
	return solana.FindProgramAddressAndBump(
		program,
		TickArrayPrefix,
		args.Whirlpool,
		[]byte(strconv.FormatInt(int64(args.StartTickIndex), 10)),
	)
}
