// Copyright (c) 2022-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uniformprng implements a seeded, cryptographically secure
// pseudo-random byte stream.
//
// A Source is an io.Reader, so it can stand in for crypto/rand wherever a
// reproducible sequence of keys is wanted.  Two sources created from the same
// seed produce the same bytes.
package uniformprng

import "golang.org/x/crypto/chacha20"

// Source returns cryptographically-secure pseudorandom bytes with uniform
// distribution.
type Source struct {
	cipher *chacha20.Cipher
}

var nonce = make([]byte, chacha20.NonceSize)

// NewSource seeds a Source from a 32-byte key.
func NewSource(seed *[32]byte) *Source {
	cipher, _ := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	return &Source{cipher: cipher}
}

// Read fills p with the next len(p) bytes of the keystream.  It never fails.
func (s *Source) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}
