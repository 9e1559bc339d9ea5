// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keygen

import (
	"bytes"
	"io"

	"decred.org/ethkey/errors"
	"decred.org/ethkey/keypair"
)

// ErrNoMatch is the cause of the error returned by Prefix when no address
// matched within the allowed number of iterations.
var ErrNoMatch = errors.New("could not find keypair")

// Prefix generates random key pairs until one has an address beginning with
// a chosen byte prefix.
//
// Each additional byte of prefix multiplies the expected number of attempts by
// 256, which is why the iteration limit has no default.
type Prefix struct {
	prefix     []byte
	iterations uint64

	// Rand is the entropy source.  When nil, crypto/rand is used.
	Rand io.Reader
}

// NewPrefix returns a Prefix generator that tries at most iterations random
// key pairs.
func NewPrefix(prefix []byte, iterations uint64) *Prefix {
	p := make([]byte, len(prefix))
	copy(p, prefix)
	return &Prefix{prefix: p, iterations: iterations}
}

// Generate returns the first random key pair whose address starts with the
// prefix.  An empty prefix accepts the first key pair.  When no match is found
// after the configured number of attempts, the returned error has kind
// errors.Generation and wraps ErrNoMatch.
func (g *Prefix) Generate() (*keypair.KeyPair, error) {
	const op errors.Op = "keygen.Prefix"
	rand := randReader(g.Rand)

	log.Debugf("Searching up to %d keys for a %d byte address prefix",
		g.iterations, len(g.prefix))

	for i := uint64(0); i < g.iterations; i++ {
		kp, err := randomKeyPair(rand)
		if err != nil {
			return nil, errors.E(op, err)
		}
		addr := kp.Address()
		if bytes.HasPrefix(addr[:], g.prefix) {
			log.Debugf("Found matching address after %d attempts", i+1)
			return kp, nil
		}
		if (i+1)%100000 == 0 {
			log.Tracef("Tried %d keys", i+1)
		}
	}

	log.Debugf("No match after %d attempts", g.iterations)
	return nil, errors.E(op, errors.Generation, ErrNoMatch)
}
