// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keygen

import (
	"io"

	"decred.org/ethkey/errors"
	"decred.org/ethkey/internal/zero"
	"decred.org/ethkey/keypair"
)

// Random generates key pairs from uniformly random secrets.
type Random struct {
	// Rand is the entropy source.  When nil, crypto/rand is used.
	Rand io.Reader
}

// NewRandom returns a Random generator reading from crypto/rand.
func NewRandom() *Random {
	return new(Random)
}

// Generate reads 32 bytes from the entropy source and returns the key pair for
// them.  Byte strings that are not a valid secret (zero, or not less than the
// curve order) are discarded and read again.  A failure of the entropy source
// is returned and is not retried.
func (g *Random) Generate() (*keypair.KeyPair, error) {
	const op errors.Op = "keygen.Random"
	kp, err := randomKeyPair(randReader(g.Rand))
	if err != nil {
		return nil, errors.E(op, err)
	}
	return kp, nil
}

func randomKeyPair(rand io.Reader) (*keypair.KeyPair, error) {
	var b [keypair.SecretSize]byte
	defer zero.Bytea32(&b)
	for {
		if _, err := io.ReadFull(rand, b[:]); err != nil {
			return nil, errors.E(errors.Generation, err)
		}
		// Out of range values occur with probability below 2^-127.
		if keypair.ValidSecret(b[:]) {
			return keypair.FromSecret(b[:])
		}
	}
}
