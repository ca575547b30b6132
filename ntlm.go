package md4

import (
	"encoding/binary"
	"unicode/utf16"
)

// NTLMHash returns the NT hash of password: the MD4 checksum of its
// UTF-16LE encoding. This is the form Windows stores passwords in and
// the main reason MD4 still appears in the wild.
func NTLMHash(password string) [Size]byte {
	u := utf16.Encode([]rune(password))
	b := make([]byte, len(u)*2)
	for i, v := range u {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return Sum(b)
}
