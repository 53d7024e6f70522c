package whirlpool

import (
	"bytes"
	"crypto/ed25519"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

var updateFeesAndRewardsInstructionDiscriminator = instructionDiscriminator(InstructionNameUpdateFeesAndRewards)

const (
	UpdateFeesAndRewardsInstructionArgsSize = 0

	UpdateFeesAndRewardsInstructionAccountsCount = 4
)

// UpdateFeesAndRewardsInstructionAccounts are the accounts of the
// update_fees_and_rewards instruction.
//
// The instruction can fail on chain with TickNotFound, when a tick array
// doesn't contain the position's boundary tick, or LiquidityZero, when the
// position has no liquidity and is therefore already up to date.
type UpdateFeesAndRewardsInstructionAccounts struct {
	Whirlpool      ed25519.PublicKey
	Position       ed25519.PublicKey
	TickArrayLower ed25519.PublicKey
	TickArrayUpper ed25519.PublicKey
}

func NewUpdateFeesAndRewardsInstruction(
	accounts *UpdateFeesAndRewardsInstructionAccounts,
) solana.Instruction {
	var offset int

	// Serialize instruction arguments
	data := make([]byte, discriminatorSize+UpdateFeesAndRewardsInstructionArgsSize)

	putDiscriminator(data, updateFeesAndRewardsInstructionDiscriminator, &offset)

	return solana.Instruction{
		Program: PROGRAM_ADDRESS,

		// Instruction args
		Data: data,

		// Instruction accounts
		Accounts: []solana.AccountMeta{
			{
				PublicKey:  accounts.Whirlpool,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.Position,
				IsWritable: true,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TickArrayLower,
				IsWritable: false,
				IsSigner:   false,
			},
			{
				PublicKey:  accounts.TickArrayUpper,
				IsWritable: false,
				IsSigner:   false,
			},
		},
	}
}

// UpdateFeesAndRewardsInstructionFromLegacyInstruction extracts the accounts of
// an update_fees_and_rewards instruction at index idx of a compiled
// transaction that targets program.
func UpdateFeesAndRewardsInstructionFromLegacyInstruction(
	txn solana.Transaction,
	program ed25519.PublicKey,
	idx int,
) (*UpdateFeesAndRewardsInstructionAccounts, error) {
	var offset int
	var discriminator []byte

	if idx < 0 || idx >= len(txn.Message.Instructions) {
		return nil, ErrInvalidInstructionData
	}
	instruction := txn.Message.Instructions[idx]

	programAccount := txn.Message.Accounts[instruction.ProgramIndex]
	if !bytes.Equal(program, programAccount) {
		return nil, ErrInvalidProgram
	}

	if len(instruction.Data) != discriminatorSize+UpdateFeesAndRewardsInstructionArgsSize {
		return nil, ErrInvalidInstructionData
	}
	if len(instruction.Accounts) != UpdateFeesAndRewardsInstructionAccountsCount {
		return nil, ErrInvalidInstructionData
	}

	getDiscriminator(instruction.Data, &discriminator, &offset)

	if !bytes.Equal(discriminator, updateFeesAndRewardsInstructionDiscriminator) {
		return nil, ErrInvalidInstructionData
	}

	var accounts UpdateFeesAndRewardsInstructionAccounts

	// Instruction Accounts
	accounts.Whirlpool = txn.Message.Accounts[instruction.Accounts[0]]
	accounts.Position = txn.Message.Accounts[instruction.Accounts[1]]
	accounts.TickArrayLower = txn.Message.Accounts[instruction.Accounts[2]]
	accounts.TickArrayUpper = txn.Message.Accounts[instruction.Accounts[3]]

	return &accounts, nil
}
