package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
	"github.com/code-payments/whirlpool-sdk/pkg/whirlpool"
)

// run builds the unsigned update_fees_and_rewards transaction described by
// config and writes it to out, base64 encoded and then in readable form.
func run(ctx *whirlpool.Context, config cliConfig, out io.Writer) error {
	log := logrus.StandardLogger().WithField("type", "cmd/update-fees-and-rewards")

	payer, err := decodeKey("payer", config.Payer)
	if err != nil {
		return err
	}

	var blockhash solana.Blockhash
	if len(config.Blockhash) > 0 {
		decoded, err := base58.Decode(config.Blockhash)
		if err != nil || len(decoded) != len(blockhash) {
			return errors.Errorf("invalid blockhash %q", config.Blockhash)
		}
		copy(blockhash[:], decoded)
	}

	params, err := resolveParams(ctx, config)
	if err != nil {
		return err
	}

	ix, err := whirlpool.UpdateFeesAndRewardsIx(ctx, params)
	if err != nil {
		return errors.Wrap(err, "failed to build instruction")
	}

	txn, err := whirlpool.Compose(whirlpool.ComputeBudgetIx(ctx), ix).Transaction(payer, blockhash)
	if err != nil {
		return errors.Wrap(err, "failed to compile transaction")
	}

	log.WithFields(logrus.Fields{
		"whirlpool": base58.Encode(params.Whirlpool),
		"position":  base58.Encode(params.Position),
	}).Info("built update fees and rewards transaction")

	if _, err := fmt.Fprintln(out, base64.StdEncoding.EncodeToString(txn.Marshal())); err != nil {
		return err
	}
	_, err = fmt.Fprint(out, txn.String())
	return err
}

func resolveParams(ctx *whirlpool.Context, config cliConfig) (whirlpool.UpdateFeesAndRewardsParams, error) {
	if len(config.Position) > 0 || len(config.PositionMint) == 0 {
		return whirlpool.NewUpdateFeesAndRewardsParamsFromStrings(
			config.Whirlpool,
			config.Position,
			config.TickArrayLower,
			config.TickArrayUpper,
		)
	}

	pool, err := decodeKey("whirlpool", config.Whirlpool)
	if err != nil {
		return whirlpool.UpdateFeesAndRewardsParams{}, err
	}
	positionMint, err := decodeKey("position_mint", config.PositionMint)
	if err != nil {
		return whirlpool.UpdateFeesAndRewardsParams{}, err
	}

	return whirlpool.DeriveUpdateFeesAndRewardsParams(ctx, &whirlpool.DeriveUpdateFeesAndRewardsArgs{
		Whirlpool:      pool,
		PositionMint:   positionMint,
		TickLowerIndex: config.TickLowerIndex,
		TickUpperIndex: config.TickUpperIndex,
		TickSpacing:    config.TickSpacing,
	})
}

func decodeKey(name, value string) (ed25519.PublicKey, error) {
	if len(value) == 0 {
		return nil, errors.Errorf("%s is required", name)
	}

	decoded, err := base58.Decode(value)
	if err != nil || len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Errorf("invalid %s %q", name, value)
	}
	return decoded, nil
}
