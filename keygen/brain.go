// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keygen

import (
	"decred.org/ethkey/errors"
	"decred.org/ethkey/internal/zero"
	"decred.org/ethkey/keypair"
)

const (
	// BrainRounds is the number of times the phrase digest is rehashed
	// before the first candidate secret is checked.
	BrainRounds = 16386

	// MaxBrainRehash bounds the number of extra rehashes performed while
	// the candidate is not a valid secret.
	MaxBrainRehash = 1 << 16
)

// Brain derives a key pair deterministically from a passphrase.
//
// The secret is computed as follows, where H is Keccak-256:
//
//	c = H(phrase)
//	repeat BrainRounds times: c = H(c)
//	while c is zero or not less than the curve order: c = H(c)
//
// The key has no more entropy than the phrase itself.
type Brain struct {
	phrase []byte
}

// NewBrain returns a Brain generator for phrase.  The phrase is used as is,
// without trimming or normalization.
func NewBrain(phrase string) *Brain {
	return &Brain{phrase: []byte(phrase)}
}

// Generate returns the key pair derived from the phrase.  It is a pure function
// of the phrase.
func (g *Brain) Generate() (*keypair.KeyPair, error) {
	const op errors.Op = "keygen.Brain"

	c := keypair.Keccak256(g.phrase)
	defer func() { zero.Bytes(c) }()
	for i := 0; i < BrainRounds; i++ {
		next := keypair.Keccak256(c)
		zero.Bytes(c)
		c = next
	}

	c, err := rehashUntilValid(c, MaxBrainRehash)
	if err != nil {
		return nil, errors.E(op, err)
	}

	kp, err := keypair.FromSecret(c)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return kp, nil
}

// rehashUntilValid replaces c with its Keccak-256 digest until it is a valid
// secret, rehashing at most limit times.  The input slice is cleared whenever
// it is replaced.
func rehashUntilValid(c []byte, limit int) ([]byte, error) {
	for rehash := 0; !keypair.ValidSecret(c); rehash++ {
		if rehash == limit {
			zero.Bytes(c)
			return nil, errors.E(errors.Generation,
				errors.Errorf("no valid secret after %d rehashes", limit))
		}
		log.Tracef("Derived scalar out of range, rehashing")
		next := keypair.Keccak256(c)
		zero.Bytes(c)
		c = next
	}
	return c, nil
}
