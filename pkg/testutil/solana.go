package testutil

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

func GenerateSolanaKeypair(t *testing.T) ed25519.PrivateKey {
	_, p, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return p
}

func GenerateSolanaKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		p, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = p
	}
	return keys
}

// CloneKeys deep copies keys, so tests can later assert they weren't mutated.
func CloneKeys(keys ...ed25519.PublicKey) []ed25519.PublicKey {
	cloned := make([]ed25519.PublicKey, len(keys))
	for i, key := range keys {
		cloned[i] = append(ed25519.PublicKey(nil), key...)
	}
	return cloned
}
