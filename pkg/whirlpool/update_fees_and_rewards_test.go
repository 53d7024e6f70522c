package whirlpool

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
	whirlpool_program "github.com/code-payments/whirlpool-sdk/pkg/solana/whirlpool"
	"github.com/code-payments/whirlpool-sdk/pkg/testutil"
)

func newTestParams(t *testing.T) UpdateFeesAndRewardsParams {
	keys := testutil.GenerateSolanaKeys(t, 4)
	params, err := NewUpdateFeesAndRewardsParams(keys[0], keys[1], keys[2], keys[3])
	require.NoError(t, err)
	return params
}

func TestUpdateFeesAndRewardsIx(t *testing.T) {
	ctx := newTestContext(t)
	params := newTestParams(t)

	ix, err := UpdateFeesAndRewardsIx(ctx, params)
	require.NoError(t, err)

	require.Len(t, ix.Instructions, 1)
	assert.NotNil(t, ix.CleanupInstructions)
	assert.Empty(t, ix.CleanupInstructions)
	assert.NotNil(t, ix.Signers)
	assert.Empty(t, ix.Signers)

	ixn := ix.Instructions[0]
	assert.EqualValues(t, whirlpool_program.PROGRAM_ID, ixn.Program)

	expected := []solana.AccountMeta{
		solana.NewAccountMeta(params.Whirlpool, false),
		solana.NewAccountMeta(params.Position, false),
		solana.NewReadonlyAccountMeta(params.TickArrayLower, false),
		solana.NewReadonlyAccountMeta(params.TickArrayUpper, false),
	}
	assert.Equal(t, expected, ixn.Accounts)

	raw := whirlpool_program.NewUpdateFeesAndRewardsInstruction(&whirlpool_program.UpdateFeesAndRewardsInstructionAccounts{
		Whirlpool:      params.Whirlpool,
		Position:       params.Position,
		TickArrayLower: params.TickArrayLower,
		TickArrayUpper: params.TickArrayUpper,
	})
	assert.Equal(t, raw.Data, ixn.Data)
	assert.Equal(t, raw.Accounts, ixn.Accounts)
}

func TestUpdateFeesAndRewardsIx_DeterministicAndPure(t *testing.T) {
	ctx := newTestContext(t)
	params := newTestParams(t)
	snapshot := testutil.CloneKeys(params.Whirlpool, params.Position, params.TickArrayLower, params.TickArrayUpper)

	first, err := UpdateFeesAndRewardsIx(ctx, params)
	require.NoError(t, err)
	second, err := UpdateFeesAndRewardsIx(ctx, params)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Results are independent values
	first.Instructions[0].Data[0] ^= 0xff
	first.Instructions[0].Accounts[0].PublicKey[0] ^= 0xff
	assert.NotEqual(t, first.Instructions[0].Data, second.Instructions[0].Data)

	assert.Equal(t, snapshot, []ed25519.PublicKey{params.Whirlpool, params.Position, params.TickArrayLower, params.TickArrayUpper})
	assert.EqualValues(t, whirlpool_program.PROGRAM_ID, ctx.ProgramID())
}

func TestUpdateFeesAndRewardsIx_Transaction(t *testing.T) {
	ctx := newTestContext(t)
	params := newTestParams(t)
	payer := testutil.GenerateSolanaKeypair(t)

	ix, err := UpdateFeesAndRewardsIx(ctx, params)
	require.NoError(t, err)

	txn, err := ix.Transaction(payer.Public().(ed25519.PublicKey), solana.Blockhash{})
	require.NoError(t, err)
	require.NoError(t, ix.SignTransaction(&txn, payer))

	var decoded solana.Transaction
	require.NoError(t, decoded.Unmarshal(txn.Marshal()))

	accounts, err := whirlpool_program.UpdateFeesAndRewardsInstructionFromLegacyInstruction(decoded, whirlpool_program.PROGRAM_ID, 0)
	require.NoError(t, err)
	assert.EqualValues(t, params.Whirlpool, accounts.Whirlpool)
	assert.EqualValues(t, params.Position, accounts.Position)
	assert.EqualValues(t, params.TickArrayLower, accounts.TickArrayLower)
	assert.EqualValues(t, params.TickArrayUpper, accounts.TickArrayUpper)
}

func TestUpdateFeesAndRewardsIx_ComposedWithComputeBudget(t *testing.T) {
	ctx := newTestContext(t)
	ctx.computeUnitPrice = 1_000

	ix, err := UpdateFeesAndRewardsIx(ctx, newTestParams(t))
	require.NoError(t, err)

	composed := Compose(ComputeBudgetIx(ctx), ix)
	require.Len(t, composed.Instructions, 2)
	assert.Equal(t, ix.Instructions[0], composed.Instructions[1])
	assert.Empty(t, composed.Signers)
}

func TestUpdateFeesAndRewardsIx_EncoderError(t *testing.T) {
	params := newTestParams(t)

	_, err := UpdateFeesAndRewardsIx(nil, params)
	assert.Equal(t, ErrNilContext, err)

	_, err = UpdateFeesAndRewardsIx(&Context{}, params)
	assert.Equal(t, whirlpool_program.ErrInvalidProgram, err)

	// Params built without the constructor only fail inside the encoder
	params.TickArrayUpper = nil
	_, err = UpdateFeesAndRewardsIx(newTestContext(t), params)
	assert.ErrorIs(t, err, whirlpool_program.ErrMissingAccount)
}

func TestNewUpdateFeesAndRewardsParams(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 4)

	params, err := NewUpdateFeesAndRewardsParams(keys[0], keys[1], keys[2], keys[3])
	require.NoError(t, err)
	assert.Equal(t, keys[0], params.Whirlpool)
	assert.Equal(t, keys[1], params.Position)
	assert.Equal(t, keys[2], params.TickArrayLower)
	assert.Equal(t, keys[3], params.TickArrayUpper)

	for i := range keys {
		missing := testutil.CloneKeys(keys...)
		missing[i] = nil
		_, err = NewUpdateFeesAndRewardsParams(missing[0], missing[1], missing[2], missing[3])
		assert.ErrorIs(t, err, ErrInvalidParams, i)

		short := testutil.CloneKeys(keys...)
		short[i] = short[i][:16]
		_, err = NewUpdateFeesAndRewardsParams(short[0], short[1], short[2], short[3])
		assert.ErrorIs(t, err, ErrInvalidParams, i)
	}
}

func TestNewUpdateFeesAndRewardsParamsFromStrings(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 4)
	encoded := make([]string, len(keys))
	for i, key := range keys {
		encoded[i] = base58.Encode(key)
	}

	params, err := NewUpdateFeesAndRewardsParamsFromStrings(encoded[0], encoded[1], encoded[2], encoded[3])
	require.NoError(t, err)
	assert.Equal(t, keys[3], params.TickArrayUpper)

	_, err = NewUpdateFeesAndRewardsParamsFromStrings(encoded[0], "", encoded[2], encoded[3])
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = NewUpdateFeesAndRewardsParamsFromStrings(encoded[0], encoded[1], "0OIl", encoded[3])
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestDeriveUpdateFeesAndRewardsParams(t *testing.T) {
	ctx := newTestContext(t)

	args := &DeriveUpdateFeesAndRewardsArgs{
		Whirlpool:      mustDecode(t, "HJPjoWUrhoZzkNfRpHuieeFk9WcZWjwy6PBjZ81ngndJ"),
		PositionMint:   mustDecode(t, "Fu8eNzJH3mwTRQt5VWx3fCNpdbn9eHo6mwNqNEDh8zUH"),
		TickLowerIndex: -64,
		TickUpperIndex: 5632,
		TickSpacing:    64,
	}

	params, err := DeriveUpdateFeesAndRewardsParams(ctx, args)
	require.NoError(t, err)
	assert.Equal(t, "HJPjoWUrhoZzkNfRpHuieeFk9WcZWjwy6PBjZ81ngndJ", base58.Encode(params.Whirlpool))
	assert.Equal(t, "EaJTbK1YyDxbZeoYqHCppUd4i1ohSk5Dm3qmkq5DZaPz", base58.Encode(params.Position))
	assert.Equal(t, "9K1HWrGKZKfjTnKfF621BmEQdai4FcUz9tsoF41jwz5B", base58.Encode(params.TickArrayLower))
	assert.Equal(t, "BW2Mr823NUQN7vnVpv5E6yCTnqEXQ3ZnqjZyiywXPcUp", base58.Encode(params.TickArrayUpper))

	invalid := *args
	invalid.TickLowerIndex = invalid.TickUpperIndex
	_, err = DeriveUpdateFeesAndRewardsParams(ctx, &invalid)
	assert.Equal(t, whirlpool_program.ErrInvalidTickRange, err)

	invalid = *args
	invalid.TickLowerIndex = -63
	_, err = DeriveUpdateFeesAndRewardsParams(ctx, &invalid)
	assert.ErrorIs(t, err, whirlpool_program.ErrTickNotInitializable)

	invalid = *args
	invalid.TickUpperIndex = whirlpool_program.MAX_TICK_INDEX + 64
	_, err = DeriveUpdateFeesAndRewardsParams(ctx, &invalid)
	assert.ErrorIs(t, err, whirlpool_program.ErrTickIndexOutOfBounds)

	invalid = *args
	invalid.PositionMint = nil
	_, err = DeriveUpdateFeesAndRewardsParams(ctx, &invalid)
	assert.ErrorIs(t, err, ErrInvalidParams)

	_, err = DeriveUpdateFeesAndRewardsParams(nil, args)
	assert.Equal(t, ErrNilContext, err)
}

func mustDecode(t *testing.T, s string) ed25519.PublicKey {
	decoded, err := base58.Decode(s)
	require.NoError(t, err)
	return decoded
}
