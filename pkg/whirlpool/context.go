package whirlpool

import (
	"context"
	"crypto/ed25519"
	"math"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/whirlpool-sdk/pkg/solana"
	whirlpool_program "github.com/code-payments/whirlpool-sdk/pkg/solana/whirlpool"
)

var (
	ErrNilContext       = errors.New("whirlpool context is nil")
	ErrInvalidProgramID = errors.New("invalid whirlpool program id")
	ErrInvalidBudget    = errors.New("invalid compute budget")
)

// Context holds everything needed to encode Whirlpool instructions for one
// deployment of the program. It is immutable and safe for concurrent use.
type Context struct {
	log *logrus.Entry

	programID        ed25519.PublicKey
	computeUnitLimit uint32
	computeUnitPrice uint64
}

// NewContext returns a Context that targets programID.
func NewContext(programID ed25519.PublicKey) (*Context, error) {
	if len(programID) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidProgramID, "length %d", len(programID))
	}

	return &Context{
		log:       logrus.StandardLogger().WithField("type", "whirlpool/context"),
		programID: append(ed25519.PublicKey(nil), programID...),
	}, nil
}

// NewContextFromConfig resolves conf and returns the Context it describes.
func NewContextFromConfig(ctx context.Context, conf *Config) (*Context, error) {
	encoded, err := conf.ProgramID.GetSafe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get program id config")
	}

	programID, err := base58.Decode(encoded)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidProgramID, "%q", encoded)
	}

	c, err := NewContext(programID)
	if err != nil {
		return nil, err
	}

	limit, err := conf.ComputeUnitLimit.GetSafe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get compute unit limit config")
	}
	if limit > math.MaxUint32 {
		return nil, errors.Wrapf(ErrInvalidBudget, "compute unit limit %d", limit)
	}

	price, err := conf.ComputeUnitPrice.GetSafe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get compute unit price config")
	}

	c.computeUnitLimit = uint32(limit)
	c.computeUnitPrice = price

	c.log.WithFields(logrus.Fields{
		"program":            base58.Encode(c.programID),
		"compute_unit_limit": c.computeUnitLimit,
		"compute_unit_price": c.computeUnitPrice,
	}).Debug("loaded whirlpool context")

	return c, nil
}

// ProgramID returns a copy of the program the Context encodes for.
func (c *Context) ProgramID() ed25519.PublicKey {
	if c == nil {
		return nil
	}
	return append(ed25519.PublicKey(nil), c.programID...)
}

// ComputeBudget returns the configured compute unit limit and price.
func (c *Context) ComputeBudget() (limit uint32, price uint64) {
	if c == nil {
		return 0, 0
	}
	return c.computeUnitLimit, c.computeUnitPrice
}

// Encode builds the named program instruction with accounts keyed by their
// IDL names. accounts is only read.
func (c *Context) Encode(name string, accounts map[string]ed25519.PublicKey) (solana.Instruction, error) {
	if c == nil {
		return solana.Instruction{}, ErrNilContext
	}

	log := c.logger().WithField("instruction", name)

	spec, err := whirlpool_program.GetInstructionSpec(name)
	if err != nil {
		log.WithError(err).Debug("failed to find instruction")
		return solana.Instruction{}, err
	}

	ixn, err := spec.Encode(c.programID, accounts, nil)
	if err != nil {
		log.WithError(err).Debug("failed to encode instruction")
		return solana.Instruction{}, err
	}

	log.WithField("program", base58.Encode(ixn.Program)).Trace("encoded instruction")
	return ixn, nil
}

func (c *Context) logger() *logrus.Entry {
	if c.log == nil {
		return logrus.StandardLogger().WithField("type", "whirlpool/context")
	}
	return c.log
}
