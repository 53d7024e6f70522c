// Package shortvec implements the compact-u16 length prefix used by the
// Solana wire format.
package shortvec

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const maxEncodedLen = 3

var ErrInvalidLength = errors.New("shortvec: invalid encoded length")

// EncodeLen encodes the specified len into the writer.
//
// If len > math.MaxUint16, an error is returned.
func EncodeLen(w io.Writer, len int) (int, error) {
	if len < 0 || len > math.MaxUint16 {
		return 0, errors.Errorf("len must be within [0, %d]", math.MaxUint16)
	}

	encoded := make([]byte, 0, maxEncodedLen)
	for {
		b := byte(len & 0x7f)
		len >>= 7
		if len == 0 {
			encoded = append(encoded, b)
			break
		}
		encoded = append(encoded, b|0x80)
	}

	return w.Write(encoded)
}

// DecodeLen decodes a shortvec encoded len from the reader.
func DecodeLen(r io.Reader) (int, error) {
	var val int
	b := make([]byte, 1)

	for i := 0; ; i++ {
		if i == maxEncodedLen {
			return 0, errors.Wrapf(ErrInvalidLength, "more than %d bytes", maxEncodedLen)
		}

		if _, err := io.ReadFull(r, b); err != nil {
			return 0, err
		}

		val |= int(b[0]&0x7f) << (i * 7)
		if b[0]&0x80 == 0 {
			break
		}
	}

	if val > math.MaxUint16 {
		return 0, errors.Wrapf(ErrInvalidLength, "%d overflows u16", val)
	}

	return val, nil
}
