package whirlpool

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
	whirlpool_program "github.com/code-payments/whirlpool-sdk/pkg/solana/whirlpool"
)

var ErrInvalidParams = errors.New("invalid instruction params")

// UpdateFeesAndRewardsParams are the accounts needed to update the accrued
// fees and rewards of a position.
type UpdateFeesAndRewardsParams struct {
	// The whirlpool the position belongs to
	Whirlpool ed25519.PublicKey

	Position ed25519.PublicKey

	// Tick arrays hosting the ticks at the position's lower and upper tick index
	TickArrayLower ed25519.PublicKey
	TickArrayUpper ed25519.PublicKey
}

// NewUpdateFeesAndRewardsParams validates and copies the provided accounts.
// Every account is required.
func NewUpdateFeesAndRewardsParams(
	whirlpool ed25519.PublicKey,
	position ed25519.PublicKey,
	tickArrayLower ed25519.PublicKey,
	tickArrayUpper ed25519.PublicKey,
) (UpdateFeesAndRewardsParams, error) {
	for _, account := range []struct {
		name string
		key  ed25519.PublicKey
	}{
		{whirlpool_program.AccountWhirlpool, whirlpool},
		{whirlpool_program.AccountPosition, position},
		{whirlpool_program.AccountTickArrayLower, tickArrayLower},
		{whirlpool_program.AccountTickArrayUpper, tickArrayUpper},
	} {
		if len(account.key) == 0 {
			return UpdateFeesAndRewardsParams{}, errors.Wrapf(ErrInvalidParams, "%s is required", account.name)
		}
		if len(account.key) != ed25519.PublicKeySize {
			return UpdateFeesAndRewardsParams{}, errors.Wrapf(ErrInvalidParams, "%s has length %d", account.name, len(account.key))
		}
	}

	return UpdateFeesAndRewardsParams{
		Whirlpool:      append(ed25519.PublicKey(nil), whirlpool...),
		Position:       append(ed25519.PublicKey(nil), position...),
		TickArrayLower: append(ed25519.PublicKey(nil), tickArrayLower...),
		TickArrayUpper: append(ed25519.PublicKey(nil), tickArrayUpper...),
	}, nil
}

// NewUpdateFeesAndRewardsParamsFromStrings is NewUpdateFeesAndRewardsParams
// for base58 encoded addresses.
func NewUpdateFeesAndRewardsParamsFromStrings(whirlpool, position, tickArrayLower, tickArrayUpper string) (UpdateFeesAndRewardsParams, error) {
	keys := make([]ed25519.PublicKey, 4)
	for i, encoded := range []string{whirlpool, position, tickArrayLower, tickArrayUpper} {
		if len(encoded) == 0 {
			continue
		}

		decoded, err := base58.Decode(encoded)
		if err != nil {
			return UpdateFeesAndRewardsParams{}, errors.Wrapf(ErrInvalidParams, "invalid address %q", encoded)
		}
		keys[i] = decoded
	}

	return NewUpdateFeesAndRewardsParams(keys[0], keys[1], keys[2], keys[3])
}

// UpdateFeesAndRewardsIx updates the accrued fees and rewards for a position.
//
// The transaction will fail on chain with TickNotFound when a tick array
// doesn't contain the position's tick, or LiquidityZero when the position has
// no liquidity and therefore already holds its latest fee and reward values.
func UpdateFeesAndRewardsIx(ctx *Context, params UpdateFeesAndRewardsParams) (Instruction, error) {
	ixn, err := ctx.Encode(whirlpool_program.InstructionNameUpdateFeesAndRewards, map[string]ed25519.PublicKey{
		whirlpool_program.AccountWhirlpool:      params.Whirlpool,
		whirlpool_program.AccountPosition:       params.Position,
		whirlpool_program.AccountTickArrayLower: params.TickArrayLower,
		whirlpool_program.AccountTickArrayUpper: params.TickArrayUpper,
	})
	if err != nil {
		return Instruction{}, err
	}

	return TransformTx(ctx, Instruction{
		Instructions:        []solana.Instruction{ixn},
		CleanupInstructions: []solana.Instruction{},
		Signers:             []ed25519.PrivateKey{},
	}), nil
}

// DeriveUpdateFeesAndRewardsArgs identifies a position by its mint and tick
// range instead of by account addresses.
type DeriveUpdateFeesAndRewardsArgs struct {
	Whirlpool      ed25519.PublicKey
	PositionMint   ed25519.PublicKey
	TickLowerIndex int32
	TickUpperIndex int32
	TickSpacing    uint16
}

// DeriveUpdateFeesAndRewardsParams derives the position and tick array
// addresses for the UpdateFeesAndRewardsIx of a position.
func DeriveUpdateFeesAndRewardsParams(ctx *Context, args *DeriveUpdateFeesAndRewardsArgs) (UpdateFeesAndRewardsParams, error) {
	if ctx == nil {
		return UpdateFeesAndRewardsParams{}, ErrNilContext
	}
	if len(args.Whirlpool) != ed25519.PublicKeySize || len(args.PositionMint) != ed25519.PublicKeySize {
		return UpdateFeesAndRewardsParams{}, errors.Wrap(ErrInvalidParams, "whirlpool and position mint are required")
	}
	if args.TickLowerIndex >= args.TickUpperIndex {
		return UpdateFeesAndRewardsParams{}, whirlpool_program.ErrInvalidTickRange
	}
	for _, tick := range []int32{args.TickLowerIndex, args.TickUpperIndex} {
		if !whirlpool_program.IsTickIndexInBounds(tick) {
			return UpdateFeesAndRewardsParams{}, errors.Wrapf(whirlpool_program.ErrTickIndexOutOfBounds, "tick %d", tick)
		}
		if !whirlpool_program.IsTickInitializable(tick, args.TickSpacing) {
			return UpdateFeesAndRewardsParams{}, errors.Wrapf(whirlpool_program.ErrTickNotInitializable, "tick %d with spacing %d", tick, args.TickSpacing)
		}
	}

	program := ctx.ProgramID()

	position, _, err := whirlpool_program.GetPositionAddress(program, &whirlpool_program.GetPositionAddressArgs{
		PositionMint: args.PositionMint,
	})
	if err != nil {
		return UpdateFeesAndRewardsParams{}, errors.Wrap(err, "failed to derive position address")
	}

	tickArrays := make([]ed25519.PublicKey, 2)
	for i, tick := range []int32{args.TickLowerIndex, args.TickUpperIndex} {
		start, err := whirlpool_program.GetTickArrayStartTickIndex(tick, args.TickSpacing)
		if err != nil {
			return UpdateFeesAndRewardsParams{}, err
		}

		tickArrays[i], _, err = whirlpool_program.GetTickArrayAddress(program, &whirlpool_program.GetTickArrayAddressArgs{
			Whirlpool:      args.Whirlpool,
			StartTickIndex: start,
		})
		if err != nil {
			return UpdateFeesAndRewardsParams{}, errors.Wrapf(err, "failed to derive tick array address for start %d", start)
		}
	}

	return NewUpdateFeesAndRewardsParams(args.Whirlpool, position, tickArrays[0], tickArrays[1])
}
