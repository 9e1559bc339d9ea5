// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

// DisplayMode selects which fields of a KeyPair are rendered.
type DisplayMode int

// Display modes.
const (
	FullPair DisplayMode = iota
	SecretOnly
	PublicOnly
	AddressOnly
)

func (m DisplayMode) String() string {
	switch m {
	case FullPair:
		return "keypair"
	case SecretOnly:
		return "secret"
	case PublicOnly:
		return "public"
	case AddressOnly:
		return "address"
	default:
		return "unknown display mode"
	}
}

// Render formats kp according to mode.  All fields are lowercase hex.  The
// full pair is three labeled lines with no trailing newline; every other mode
// is the bare field.
func Render(kp *KeyPair, mode DisplayMode) string {
	switch mode {
	case SecretOnly:
		return kp.secret.String()
	case PublicOnly:
		return kp.public.String()
	case AddressOnly:
		return kp.address.String()
	default:
		return "secret:  " + kp.secret.String() + "\n" +
			"public:  " + kp.public.String() + "\n" +
			"address: " + kp.address.String()
	}
}
