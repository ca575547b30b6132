package md4

import "hash"

// hmacMD4 keys an inner MD4 with the ipad-masked key; the outer hash is
// built fresh on every Sum so the accumulator stays reusable.
type hmacMD4 struct {
	inner hash.Hash
	key   []byte
}

// NewHMAC returns an HMAC-MD4 keyed with key. HMAC-MD4 survives in legacy
// protocols such as NTLMv2; like MD4 itself it carries no security
// guarantee.
func NewHMAC(key []byte) hash.Hash {
	k := make([]byte, BlockSize)
	if len(key) <= BlockSize {
		copy(k, key)
	} else {
		kh := New()
		kh.Write(key)
		kh.Sum(k[:0])
	}

	h := &hmacMD4{inner: New(), key: k}
	h.Reset()
	return h
}

func (h *hmacMD4) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

func (h *hmacMD4) Sum(in []byte) []byte {
	inLen := len(in)
	in = h.inner.Sum(in)
	innerSum := in[inLen:]

	outer := New()
	block := make([]byte, BlockSize)
	for i, kb := range h.key {
		block[i] = kb ^ 0x5c
	}
	outer.Write(block)
	outer.Write(innerSum)
	return outer.Sum(in[:inLen])
}

func (h *hmacMD4) Reset() {
	h.inner.Reset()
	block := make([]byte, BlockSize)
	for i, kb := range h.key {
		block[i] = kb ^ 0x36
	}
	h.inner.Write(block)
}

func (h *hmacMD4) Size() int { return Size }

func (h *hmacMD4) BlockSize() int { return BlockSize }
