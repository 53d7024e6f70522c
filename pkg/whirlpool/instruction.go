package whirlpool

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
	compute_budget "github.com/code-payments/whirlpool-sdk/pkg/solana/computebudget"
)

// Instruction is a composable unit of work: the instructions to run, the
// cleanup instructions that must follow them, and the extra keys that have
// to sign the transaction carrying them.
type Instruction struct {
	Instructions        []solana.Instruction
	CleanupInstructions []solana.Instruction
	Signers             []ed25519.PrivateKey
}

// TransformTx wraps ix into the form returned by every builder in this
// package. Nil lists become empty lists and all buffers are copied, so the
// result shares no memory with ix.
func TransformTx(ctx *Context, ix Instruction) Instruction {
	transformed := Instruction{
		Instructions:        cloneInstructions(ix.Instructions),
		CleanupInstructions: cloneInstructions(ix.CleanupInstructions),
		Signers:             make([]ed25519.PrivateKey, len(ix.Signers)),
	}
	for i, signer := range ix.Signers {
		transformed.Signers[i] = append(ed25519.PrivateKey(nil), signer...)
	}

	if ctx != nil {
		ctx.logger().WithField("instructions", len(transformed.Instructions)).Trace("transformed instruction")
	}

	return transformed
}

// Compose merges ixs into a single Instruction. Instructions and cleanup
// instructions keep their relative order, and signers are deduplicated by
// public key.
func Compose(ixs ...Instruction) Instruction {
	composed := Instruction{
		Instructions:        []solana.Instruction{},
		CleanupInstructions: []solana.Instruction{},
		Signers:             []ed25519.PrivateKey{},
	}

	for _, ix := range ixs {
		composed.Instructions = append(composed.Instructions, cloneInstructions(ix.Instructions)...)
		composed.CleanupInstructions = append(composed.CleanupInstructions, cloneInstructions(ix.CleanupInstructions)...)

		for _, signer := range ix.Signers {
			if containsSigner(composed.Signers, signer) {
				continue
			}
			composed.Signers = append(composed.Signers, append(ed25519.PrivateKey(nil), signer...))
		}
	}

	return composed
}

// IsEmpty reports whether ix carries no instructions at all.
func (ix Instruction) IsEmpty() bool {
	return len(ix.Instructions) == 0 && len(ix.CleanupInstructions) == 0
}

// Transaction compiles the instructions, followed by the cleanup
// instructions, into an unsigned transaction paid for by payer.
func (ix Instruction) Transaction(payer ed25519.PublicKey, blockhash solana.Blockhash) (solana.Transaction, error) {
	if len(payer) != ed25519.PublicKeySize {
		return solana.Transaction{}, errors.Errorf("invalid payer length %d", len(payer))
	}

	all := make([]solana.Instruction, 0, len(ix.Instructions)+len(ix.CleanupInstructions))
	all = append(all, ix.Instructions...)
	all = append(all, ix.CleanupInstructions...)

	txn := solana.NewTransaction(payer, all...)
	txn.SetBlockhash(blockhash)

	if err := txn.Validate(); err != nil {
		return solana.Transaction{}, err
	}

	return txn, nil
}

// SignTransaction signs txn with the instruction's own signers and any extra
// keys, such as the fee payer.
func (ix Instruction) SignTransaction(txn *solana.Transaction, extra ...ed25519.PrivateKey) error {
	signers := make([]ed25519.PrivateKey, 0, len(ix.Signers)+len(extra))
	signers = append(signers, extra...)
	for _, signer := range ix.Signers {
		if !containsSigner(signers, signer) {
			signers = append(signers, signer)
		}
	}

	if err := txn.Sign(signers...); err != nil {
		return errors.Wrap(err, "failed to sign transaction")
	}
	return nil
}

// ComputeBudgetIx returns the compute budget instructions configured on ctx.
// The result is empty when no budget is configured.
func ComputeBudgetIx(ctx *Context) Instruction {
	limit, price := ctx.ComputeBudget()

	var ixns []solana.Instruction
	if limit > 0 {
		ixns = append(ixns, compute_budget.SetComputeUnitLimit(limit))
	}
	if price > 0 {
		ixns = append(ixns, compute_budget.SetComputeUnitPrice(price))
	}

	return TransformTx(ctx, Instruction{Instructions: ixns})
}

func cloneInstructions(ixns []solana.Instruction) []solana.Instruction {
	cloned := make([]solana.Instruction, len(ixns))
	for i, ixn := range ixns {
		cloned[i] = ixn.Clone()
	}
	return cloned
}

func containsSigner(signers []ed25519.PrivateKey, signer ed25519.PrivateKey) bool {
	pub := signer.Public().(ed25519.PublicKey)
	for _, existing := range signers {
		if bytes.Equal(existing.Public().(ed25519.PublicKey), pub) {
			return true
		}
	}
	return false
}
