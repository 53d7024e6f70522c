package compute_budget

import (
	"bytes"
	"crypto/ed25519"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
)

// ComputeBudget111111111111111111111111111111
var ProgramKey = ed25519.PublicKey{3, 6, 70, 111, 229, 33, 23, 50, 255, 236, 173, 186, 114, 195, 155, 231, 188, 140, 229, 187, 197, 247, 18, 107, 44, 67, 155, 58, 64, 0, 0, 0}

const (
	commandRequestUnits uint8 = iota
	commandRequestHeapFrame
	commandSetComputeUnitLimit
	commandSetComputeUnitPrice
)

var (
	ErrInvalidProgram     = errors.New("invalid compute budget program")
	ErrInvalidInstruction = errors.New("invalid compute budget instruction")
)

// SetComputeUnitLimit caps the compute units the transaction may consume.
func SetComputeUnitLimit(computeUnitLimit uint32) solana.Instruction {
	data := make([]byte, 1+4)
	data[0] = commandSetComputeUnitLimit
	binary.LittleEndian.PutUint32(data[1:], computeUnitLimit)

	return solana.NewInstruction(
		ProgramKey[:],
		data,
	)
}

// SetComputeUnitPrice sets the priority fee, in micro-lamports per compute unit.
func SetComputeUnitPrice(computeUnitPrice uint64) solana.Instruction {
	data := make([]byte, 1+8)
	data[0] = commandSetComputeUnitPrice
	binary.LittleEndian.PutUint64(data[1:], computeUnitPrice)

	return solana.NewInstruction(
		ProgramKey[:],
		data,
	)
}

func ParseSetComputeUnitLimitIxnData(data []byte) (uint32, error) {
	if len(data) != 5 || data[0] != commandSetComputeUnitLimit {
		return 0, ErrInvalidInstruction
	}
	return binary.LittleEndian.Uint32(data[1:]), nil
}

func ParseSetComputeUnitPriceIxnData(data []byte) (uint64, error) {
	if len(data) != 9 || data[0] != commandSetComputeUnitPrice {
		return 0, ErrInvalidInstruction
	}
	return binary.LittleEndian.Uint64(data[1:]), nil
}

// DecompiledComputeBudget is the budget a transaction requested through the
// compute budget program. Unset fields are nil.
type DecompiledComputeBudget struct {
	ComputeUnitLimit *uint32
	ComputeUnitPrice *uint64
}

// DecompileComputeBudget collects every compute budget instruction in m.
func DecompileComputeBudget(m solana.Message) (*DecompiledComputeBudget, error) {
	var budget DecompiledComputeBudget

	for i, ixn := range m.Instructions {
		if int(ixn.ProgramIndex) >= len(m.Accounts) {
			return nil, errors.Errorf("instruction %d references unknown program index %d", i, ixn.ProgramIndex)
		}
		if !bytes.Equal(m.Accounts[ixn.ProgramIndex], ProgramKey) {
			continue
		}
		if len(ixn.Data) == 0 {
			return nil, errors.Wrapf(ErrInvalidInstruction, "instruction %d", i)
		}

		switch ixn.Data[0] {
		case commandSetComputeUnitLimit:
			limit, err := ParseSetComputeUnitLimitIxnData(ixn.Data)
			if err != nil {
				return nil, errors.Wrapf(err, "instruction %d", i)
			}
			budget.ComputeUnitLimit = &limit
		case commandSetComputeUnitPrice:
			price, err := ParseSetComputeUnitPriceIxnData(ixn.Data)
			if err != nil {
				return nil, errors.Wrapf(err, "instruction %d", i)
			}
			budget.ComputeUnitPrice = &price
		}
	}

	return &budget, nil
}
