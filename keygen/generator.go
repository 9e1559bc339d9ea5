// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package keygen implements the strategies used to produce Ethereum key pairs.

There are exactly three generators:

	Random  a uniformly random secret read from a cryptographically secure source
	Prefix  random generation repeated until the address begins with a prefix
	Brain   deterministic derivation from a passphrase

Generators are stateless.  Random and Prefix may return a different key pair on
every call; Brain always returns the same key pair for the same phrase.

All failures are returned as errors of kind errors.Generation.
*/
package keygen

import (
	"crypto/rand"
	"io"

	"decred.org/ethkey/keypair"
)

// Generator produces a key pair.  The set of implementations is closed: the
// only generators are *Random, *Prefix and *Brain.
type Generator interface {
	Generate() (*keypair.KeyPair, error)

	generator()
}

func (*Random) generator() {}
func (*Prefix) generator() {}
func (*Brain) generator()  {}

// randReader returns r, or the operating system's secure random source if r is
// nil.
func randReader(r io.Reader) io.Reader {
	if r == nil {
		return rand.Reader
	}
	return r
}
