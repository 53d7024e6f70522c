package whirlpool

import (
	"crypto/ed25519"
	"crypto/sha256"
	"strings"
	"unicode"

	"github.com/mr-tron/base58"
)

const discriminatorSize = 8

// instructionDiscriminator returns the Anchor sighash for an instruction,
// which is the first 8 bytes of sha256("global:<snake_case_name>").
func instructionDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("global:" + toSnakeCase(name)))
	return h[:discriminatorSize]
}

func toSnakeCase(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func putDiscriminator(dst []byte, v []byte, offset *int) {
	copy(dst[*offset:], v)
	*offset += discriminatorSize
}
func getDiscriminator(src []byte, dst *[]byte, offset *int) {
	*dst = make([]byte, discriminatorSize)
	copy(*dst, src[*offset:])
	*offset += discriminatorSize
}

func putUint16(dst []byte, v uint16, offset *int) {
	dst[*offset] = byte(v)
	dst[*offset+1] = byte(v >> 8)
	*offset += 2
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}

func isValidKey(key ed25519.PublicKey) bool {
	return len(key) == ed25519.PublicKeySize
}
