// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair defines the Ethereum account key pair: a secp256k1 secret
// scalar, its uncompressed public point and the address derived from it.
//
// A KeyPair is immutable and fully determined by its secret.  The public key
// and address are recomputed from the secret whenever a KeyPair is created and
// can never be set independently.
package keypair

import (
	"encoding/hex"

	"decred.org/ethkey/errors"
	"decred.org/ethkey/internal/zero"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// Sizes of the serialized key pair fields.
const (
	SecretSize  = 32
	PublicSize  = 64
	AddressSize = 20
)

// Secret is a 32-byte big-endian secp256k1 scalar in the range [1, N-1].
type Secret [SecretSize]byte

// String returns the secret as lowercase hex.
func (s Secret) String() string {
	return hex.EncodeToString(s[:])
}

// Public is the uncompressed public point serialized as X || Y, without the
// leading 0x04 tag byte.
type Public [PublicSize]byte

// String returns the public key as lowercase hex.
func (p Public) String() string {
	return hex.EncodeToString(p[:])
}

// Address is the last 20 bytes of the Keccak-256 digest of a Public.
type Address [AddressSize]byte

// String returns the address as lowercase hex without a 0x prefix.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// KeyPair is a secret key together with the public key and address derived
// from it.
type KeyPair struct {
	secret  Secret
	public  Public
	address Address
}

// Keccak256 returns the legacy Keccak-256 digest (the pre-standard padding used
// by Ethereum, not SHA3-256) of the concatenated data.
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// PublicToAddress derives the address of a public key.
func PublicToAddress(pub *Public) Address {
	var addr Address
	digest := Keccak256(pub[:])
	copy(addr[:], digest[32-AddressSize:])
	return addr
}

// ValidSecret returns whether b is a 32-byte scalar accepted by the curve,
// that is, non-zero and less than the group order.
func ValidSecret(b []byte) bool {
	if len(b) != SecretSize {
		return false
	}
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	valid := !overflow && !s.IsZero()
	s.Zero()
	return valid
}

// FromSecret creates the key pair for a 32-byte secret.  An error with kind
// errors.Generation is returned if the secret is not a valid scalar.
func FromSecret(b []byte) (*KeyPair, error) {
	const op errors.Op = "keypair.FromSecret"
	if len(b) != SecretSize {
		return nil, errors.E(op, errors.Generation,
			errors.Errorf("secret must be %d bytes, got %d", SecretSize, len(b)))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		s.Zero()
		return nil, errors.E(op, errors.Generation, "secret is not less than the curve order")
	}
	if s.IsZero() {
		return nil, errors.E(op, errors.Generation, "secret is zero")
	}
	priv := secp256k1.NewPrivateKey(&s)
	kp := FromPrivateKey(priv)
	priv.Zero()
	s.Zero()
	return kp, nil
}

// FromPrivateKey creates the key pair for an already valid private key.
func FromPrivateKey(priv *secp256k1.PrivateKey) *KeyPair {
	kp := new(KeyPair)
	var sec [SecretSize]byte
	priv.Key.PutBytes(&sec)
	kp.secret = sec
	zero.Bytea32(&sec)

	// Drop the 0x04 prefix of the uncompressed encoding.
	uncompressed := priv.PubKey().SerializeUncompressed()
	copy(kp.public[:], uncompressed[1:])
	kp.address = PublicToAddress(&kp.public)
	return kp
}

// Secret returns a copy of the secret.
func (kp *KeyPair) Secret() Secret {
	return kp.secret
}

// Public returns a copy of the public key.
func (kp *KeyPair) Public() Public {
	return kp.public
}

// Address returns a copy of the address.
func (kp *KeyPair) Address() Address {
	return kp.address
}

// String returns the full key pair block, identical to Render with FullPair.
func (kp *KeyPair) String() string {
	return Render(kp, FullPair)
}
