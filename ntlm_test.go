package md4

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	xmd4 "golang.org/x/crypto/md4"
)

func TestNTLMHash(t *testing.T) {
	for _, tt := range []struct {
		password string
		want     string
	}{
		// The empty NT hash equals MD4 of the empty message.
		{"", "31d6cfe0d16ae931b73c59d7e0c089c0"},
		{"password", "8846f7eaee8fb117ad06bdd830b7586c"},
	} {
		sum := NTLMHash(tt.password)
		require.Equal(t, tt.want, hex.EncodeToString(sum[:]), "password %q", tt.password)
	}
}

// Non-ASCII passwords exercise the UTF-16LE encoding; check against the
// reference MD4 over a hand-built little-endian code unit sequence.
func TestNTLMHashNonASCII(t *testing.T) {
	password := "pässwörd€"
	var encoded []byte
	for _, r := range password {
		// All code points here are in the BMP, one code unit each.
		encoded = append(encoded, byte(r), byte(r>>8))
	}

	ref := xmd4.New()
	ref.Write(encoded)

	sum := NTLMHash(password)
	require.Equal(t, ref.Sum(nil), sum[:])
}
