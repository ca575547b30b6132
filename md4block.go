// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Derived from golang.org/x/crypto/md4

// MD4 block step.
// In its own file so that a faster implementation can be substituted.

package md4

import (
	"encoding/binary"
	"math/bits"
)

// Per-round shift schedules and message word orders, RFC 1320 section 3.
// Round 1 reads the words in order; rounds 2 and 3 permute them.
var shift1 = [4]int{3, 7, 11, 19}
var shift2 = [4]int{3, 5, 9, 13}
var shift3 = [4]int{3, 9, 11, 15}

var xIndex2 = [16]uint{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
var xIndex3 = [16]uint{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}

// blocks folds the leading full 64-byte blocks of p into the running
// state and returns the number of bytes consumed. Within each round the
// recomputed state variable cycles a, d, c, b; rotating the four locals
// after every step keeps the step body identical for all 16 steps.
func blocks(dig *digest, p []byte) int {
	a := dig.s[0]
	b := dig.s[1]
	c := dig.s[2]
	d := dig.s[3]
	n := 0
	var X [16]uint32
	for len(p) >= chunk {
		aa, bb, cc, dd := a, b, c, d

		for i := 0; i < 16; i++ {
			X[i] = binary.LittleEndian.Uint32(p[4*i:])
		}

		// Round 1: f(x,y,z) = (x AND y) OR ((NOT x) AND z).
		for i := uint(0); i < 16; i++ {
			x := i
			s := shift1[i%4]
			f := (b & c) | (^b & d)
			a += f + X[x]
			a = bits.RotateLeft32(a, s)
			a, b, c, d = d, a, b, c
		}

		// Round 2: g(x,y,z) = (x AND y) OR (x AND z) OR (y AND z).
		for i := uint(0); i < 16; i++ {
			x := xIndex2[i]
			s := shift2[i%4]
			g := (b & c) | (b & d) | (c & d)
			a += g + X[x] + 0x5A827999
			a = bits.RotateLeft32(a, s)
			a, b, c, d = d, a, b, c
		}

		// Round 3: h(x,y,z) = x XOR y XOR z.
		for i := uint(0); i < 16; i++ {
			x := xIndex3[i]
			s := shift3[i%4]
			h := b ^ c ^ d
			a += h + X[x] + 0x6ED9EBA1
			a = bits.RotateLeft32(a, s)
			a, b, c, d = d, a, b, c
		}

		a += aa
		b += bb
		c += cc
		d += dd

		p = p[chunk:]
		n += chunk
	}

	dig.s[0] = a
	dig.s[1] = b
	dig.s[2] = c
	dig.s[3] = d
	return n
}
