package whirlpool

import (
	"strconv"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

// Pool tests based on the SOL/USDC (64) pool https://explorer.solana.com/address/HJPjoWUrhoZzkNfRpHuieeFk9WcZWjwy6PBjZ81ngndJ

var (
	testWhirlpoolsConfig = mustBase58Decode("2LecshUwdy9xi7meFgHtFJQNSKk4KdTrcpvaB56dP2NQ")
	testMintSol          = mustBase58Decode("So11111111111111111111111111111111111111112")
	testMintUsdc         = mustBase58Decode("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v")
	testWhirlpool        = mustBase58Decode("HJPjoWUrhoZzkNfRpHuieeFk9WcZWjwy6PBjZ81ngndJ")
)

func TestGetWhirlpoolAddress(t *testing.T) {
	address, bump, err := GetWhirlpoolAddress(PROGRAM_ID, &GetWhirlpoolAddressArgs{
		WhirlpoolsConfig: testWhirlpoolsConfig,
		TokenMintA:       testMintSol,
		TokenMintB:       testMintUsdc,
		TickSpacing:      64,
	})
	require.NoError(t, err)
	assert.Equal(t, "HJPjoWUrhoZzkNfRpHuieeFk9WcZWjwy6PBjZ81ngndJ", base58.Encode(address))
	assert.EqualValues(t, 255, bump)
}

func TestGetPositionAddress(t *testing.T) {
	address, bump, err := GetPositionAddress(PROGRAM_ID, &GetPositionAddressArgs{
		PositionMint: mustBase58Decode("Fu8eNzJH3mwTRQt5VWx3fCNpdbn9eHo6mwNqNEDh8zUH"),
	})
	require.NoError(t, err)
	assert.Equal(t, "EaJTbK1YyDxbZeoYqHCppUd4i1ohSk5Dm3qmkq5DZaPz", base58.Encode(address))
	assert.EqualValues(t, 254, bump)
}

func TestGetTickArrayAddress(t *testing.T) {
	for _, tc := range []struct {
		start    int32
		expected string
		bump     uint8
	}{
		{-5632, "9K1HWrGKZKfjTnKfF621BmEQdai4FcUz9tsoF41jwz5B", 252},
		{0, "JCpxMSDRDPBMqjoX7LkhMwro2y6r85Q8E6p5zNdBZyWa", 255},
		{5632, "BW2Mr823NUQN7vnVpv5E6yCTnqEXQ3ZnqjZyiywXPcUp", 254},
	} {
		address, bump, err := GetTickArrayAddress(PROGRAM_ID, &GetTickArrayAddressArgs{
			Whirlpool:      testWhirlpool,
			StartTickIndex: tc.start,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.expected, base58.Encode(address), tc.start)
		assert.Equal(t, tc.bump, bump, tc.start)

		recreated, err := solana.CreateProgramAddress(PROGRAM_ID, TickArrayPrefix, testWhirlpool, []byte(strconv.Itoa(int(tc.start))), []byte{bump})
		require.NoError(t, err)
		assert.EqualValues(t, address, recreated)
	}
}
