package whirlpool

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

const (
	InstructionNameUpdateFeesAndRewards = "updateFeesAndRewards"
)

// Account names, as declared in the program IDL
const (
	AccountWhirlpool      = "whirlpool"
	AccountPosition       = "position"
	AccountTickArrayLower = "tickArrayLower"
	AccountTickArrayUpper = "tickArrayUpper"
)

var (
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrMissingAccount     = errors.New("missing instruction account")
	ErrInvalidAccountKey  = errors.New("invalid instruction account key")
)

// AccountSpec describes one account expected by a program instruction, in the
// position it must appear in the instruction's account list.
type AccountSpec struct {
	Name       string
	IsWritable bool
	IsSigner   bool
}

// InstructionSpec is the account schema of a program instruction, as declared
// by the program's Anchor IDL.
type InstructionSpec struct {
	Name          string
	Discriminator []byte
	Accounts      []AccountSpec
}

var updateFeesAndRewardsInstructionSpec = InstructionSpec{
	Name:          InstructionNameUpdateFeesAndRewards,
	Discriminator: updateFeesAndRewardsInstructionDiscriminator,
	Accounts: []AccountSpec{
		{Name: AccountWhirlpool, IsWritable: true},
		{Name: AccountPosition, IsWritable: true},
		{Name: AccountTickArrayLower},
		{Name: AccountTickArrayUpper},
	},
}

var instructionSpecs = map[string]InstructionSpec{
	InstructionNameUpdateFeesAndRewards: updateFeesAndRewardsInstructionSpec,
}

// GetInstructionSpec returns the schema for the named instruction.
func GetInstructionSpec(name string) (InstructionSpec, error) {
	spec, ok := instructionSpecs[name]
	if !ok {
		return InstructionSpec{}, errors.Wrapf(ErrUnknownInstruction, "%q", name)
	}
	return spec, nil
}

// Encode builds the instruction for program, placing the provided accounts in
// schema order. args is the already serialized instruction argument payload,
// which follows the discriminator.
//
// Every account in the schema must be present in accounts. Keys that aren't
// part of the schema are ignored, matching Anchor's client behaviour.
func (s InstructionSpec) Encode(program ed25519.PublicKey, accounts map[string]ed25519.PublicKey, args []byte) (solana.Instruction, error) {
	if !isValidKey(program) {
		return solana.Instruction{}, ErrInvalidProgram
	}

	metas := make([]solana.AccountMeta, len(s.Accounts))
	for i, account := range s.Accounts {
		key, ok := accounts[account.Name]
		if !ok || key == nil {
			return solana.Instruction{}, errors.Wrapf(ErrMissingAccount, "%s: %s", s.Name, account.Name)
		}
		if !isValidKey(key) {
			return solana.Instruction{}, errors.Wrapf(ErrInvalidAccountKey, "%s: %s has length %d", s.Name, account.Name, len(key))
		}

		metas[i] = solana.AccountMeta{
			PublicKey:  append(ed25519.PublicKey(nil), key...),
			IsWritable: account.IsWritable,
			IsSigner:   account.IsSigner,
		}
	}

	var offset int
	data := make([]byte, len(s.Discriminator)+len(args))
	putDiscriminator(data, s.Discriminator, &offset)
	copy(data[offset:], args)

	return solana.Instruction{
		Program:  append(ed25519.PublicKey(nil), program...),
		Accounts: metas,
		Data:     data,
	}, nil
}
