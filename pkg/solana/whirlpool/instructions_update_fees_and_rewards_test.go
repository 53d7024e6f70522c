package whirlpool

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

func TestInstructionDiscriminator(t *testing.T) {
	assert.Equal(t, "update_fees_and_rewards", toSnakeCase(InstructionNameUpdateFeesAndRewards))
	assert.Equal(t, []byte{154, 230, 250, 13, 236, 209, 75, 223}, updateFeesAndRewardsInstructionDiscriminator)

	// Discriminators observed on chain for other program instructions
	for name, expected := range map[string]string{
		"swap":              "f8c69e91e17587c8",
		"increaseLiquidity": "2e9cf3760dcdfbb2",
		"decreaseLiquidity": "a026d06f685b2c01",
	} {
		assert.Equal(t, expected, hex.EncodeToString(instructionDiscriminator(name)), name)
	}
}

func TestNewUpdateFeesAndRewardsInstruction(t *testing.T) {
	keys := generateKeys(t, 5)

	accounts := &UpdateFeesAndRewardsInstructionAccounts{
		Whirlpool:      keys[1],
		Position:       keys[2],
		TickArrayLower: keys[3],
		TickArrayUpper: keys[4],
	}
	instruction := NewUpdateFeesAndRewardsInstruction(accounts)

	assert.EqualValues(t, PROGRAM_ID, instruction.Program)
	assert.Equal(t, updateFeesAndRewardsInstructionDiscriminator, instruction.Data)
	require.Len(t, instruction.Accounts, UpdateFeesAndRewardsInstructionAccountsCount)

	expected := []solana.AccountMeta{
		solana.NewAccountMeta(keys[1], false),
		solana.NewAccountMeta(keys[2], false),
		solana.NewReadonlyAccountMeta(keys[3], false),
		solana.NewReadonlyAccountMeta(keys[4], false),
	}
	assert.Equal(t, expected, instruction.Accounts)

	var txn solana.Transaction
	require.NoError(t, txn.Unmarshal(solana.NewTransaction(keys[0], instruction).Marshal()))

	decompiled, err := UpdateFeesAndRewardsInstructionFromLegacyInstruction(txn, PROGRAM_ID, 0)
	require.NoError(t, err)
	assert.EqualValues(t, accounts, decompiled)
}

func TestUpdateFeesAndRewardsInstructionFromLegacyInstruction_Invalid(t *testing.T) {
	keys := generateKeys(t, 5)

	instruction := NewUpdateFeesAndRewardsInstruction(&UpdateFeesAndRewardsInstructionAccounts{
		Whirlpool:      keys[1],
		Position:       keys[2],
		TickArrayLower: keys[3],
		TickArrayUpper: keys[4],
	})

	txn := solana.NewTransaction(keys[0], instruction)

	_, err := UpdateFeesAndRewardsInstructionFromLegacyInstruction(txn, PROGRAM_ID, 1)
	assert.Equal(t, ErrInvalidInstructionData, err)

	_, err = UpdateFeesAndRewardsInstructionFromLegacyInstruction(txn, keys[0], 0)
	assert.Equal(t, ErrInvalidProgram, err)

	wrongDiscriminator := instruction.Clone()
	wrongDiscriminator.Data[0] ^= 0xff
	_, err = UpdateFeesAndRewardsInstructionFromLegacyInstruction(solana.NewTransaction(keys[0], wrongDiscriminator), PROGRAM_ID, 0)
	assert.Equal(t, ErrInvalidInstructionData, err)

	missingAccount := instruction.Clone()
	missingAccount.Accounts = missingAccount.Accounts[:3]
	_, err = UpdateFeesAndRewardsInstructionFromLegacyInstruction(solana.NewTransaction(keys[0], missingAccount), PROGRAM_ID, 0)
	assert.Equal(t, ErrInvalidInstructionData, err)

	extraData := instruction.Clone()
	extraData.Data = append(extraData.Data, 1)
	_, err = UpdateFeesAndRewardsInstructionFromLegacyInstruction(solana.NewTransaction(keys[0], extraData), PROGRAM_ID, 0)
	assert.Equal(t, ErrInvalidInstructionData, err)
}

func TestInstructionSpec_Encode(t *testing.T) {
	keys := generateKeys(t, 4)

	spec, err := GetInstructionSpec(InstructionNameUpdateFeesAndRewards)
	require.NoError(t, err)

	accounts := map[string]ed25519.PublicKey{
		"whirlpool":      keys[0],
		"position":       keys[1],
		"tickArrayLower": keys[2],
		"tickArrayUpper": keys[3],
		"unused":         keys[0],
	}

	encoded, err := spec.Encode(PROGRAM_ID, accounts, nil)
	require.NoError(t, err)

	expected := NewUpdateFeesAndRewardsInstruction(&UpdateFeesAndRewardsInstructionAccounts{
		Whirlpool:      keys[0],
		Position:       keys[1],
		TickArrayLower: keys[2],
		TickArrayUpper: keys[3],
	})
	assert.EqualValues(t, expected.Program, encoded.Program)
	assert.Equal(t, expected.Data, encoded.Data)
	assert.Equal(t, expected.Accounts, encoded.Accounts)

	// Encoded keys never alias the caller's buffers
	encoded.Accounts[0].PublicKey[0] ^= 0xff
	assert.NotEqual(t, encoded.Accounts[0].PublicKey, accounts["whirlpool"])
}

func TestInstructionSpec_EncodeErrors(t *testing.T) {
	keys := generateKeys(t, 4)

	spec, err := GetInstructionSpec(InstructionNameUpdateFeesAndRewards)
	require.NoError(t, err)

	_, err = spec.Encode(nil, map[string]ed25519.PublicKey{}, nil)
	assert.Equal(t, ErrInvalidProgram, err)

	_, err = spec.Encode(PROGRAM_ID, map[string]ed25519.PublicKey{
		"whirlpool":      keys[0],
		"position":       keys[1],
		"tickArrayLower": keys[2],
	}, nil)
	assert.ErrorIs(t, err, ErrMissingAccount)

	_, err = spec.Encode(PROGRAM_ID, map[string]ed25519.PublicKey{
		"whirlpool":      keys[0],
		"position":       keys[1][:31],
		"tickArrayLower": keys[2],
		"tickArrayUpper": keys[3],
	}, nil)
	assert.ErrorIs(t, err, ErrInvalidAccountKey)

	_, err = GetInstructionSpec("closePosition")
	assert.ErrorIs(t, err, ErrUnknownInstruction)
}

func generateKeys(t *testing.T, amount int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, amount)

	for i := 0; i < amount; i++ {
		pub, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		keys[i] = pub
	}

	return keys
}
