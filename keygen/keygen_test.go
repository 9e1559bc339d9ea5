// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keygen

import (
	"bytes"
	"encoding/hex"
	stderrors "errors"
	"io"
	"testing"

	"decred.org/ethkey/errors"
	"decred.org/ethkey/internal/uniformprng"
	"decred.org/ethkey/keypair"
)

var (
	_ Generator = (*Random)(nil)
	_ Generator = (*Prefix)(nil)
	_ Generator = (*Brain)(nil)
)

// countingReader records how many bytes were read from the wrapped reader.
type countingReader struct {
	r io.Reader
	n int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += n
	return n, err
}

func seeded(b byte) *countingReader {
	return &countingReader{r: uniformprng.NewSource(&[32]byte{b})}
}

var errEntropy = stderrors.New("entropy source exhausted")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errEntropy }

func TestRandomNoCollisions(t *testing.T) {
	const trials = 10000
	g := NewRandom()
	seen := make(map[keypair.Secret]struct{}, trials)
	for i := 0; i < trials; i++ {
		kp, err := g.Generate()
		if err != nil {
			t.Fatalf("trial %d: %v", i, err)
		}
		if _, ok := seen[kp.Secret()]; ok {
			t.Fatalf("trial %d: duplicate secret", i)
		}
		seen[kp.Secret()] = struct{}{}
	}
}

func TestRandomSeeded(t *testing.T) {
	a := &Random{Rand: seeded(1)}
	b := &Random{Rand: seeded(1)}
	kpA, err := a.Generate()
	if err != nil {
		t.Fatal(err)
	}
	kpB, err := b.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if kpA.Secret() != kpB.Secret() {
		t.Fatal("same entropy produced different keys")
	}
	kpC, err := a.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if kpA.Secret() == kpC.Secret() {
		t.Fatal("second draw repeated the first key")
	}
}

func TestRandomSkipsInvalidSecrets(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1
	// Zero and a value above the curve order must both be skipped.
	rand := io.MultiReader(
		bytes.NewReader(make([]byte, 32)),
		bytes.NewReader(bytes.Repeat([]byte{0xff}, 32)),
		bytes.NewReader(one),
	)
	kp, err := (&Random{Rand: rand}).Generate()
	if err != nil {
		t.Fatal(err)
	}
	if got := kp.Address().String(); got != "7e5f4552091a69125d5dfcb7b8c2659029395bdf" {
		t.Fatalf("got address %s", got)
	}
}

func TestRandomEntropyFailure(t *testing.T) {
	tests := []io.Reader{
		failingReader{},
		bytes.NewReader(make([]byte, 10)), // short read
	}
	for i, rand := range tests {
		kp, err := (&Random{Rand: rand}).Generate()
		if kp != nil {
			t.Errorf("test %d: got key pair from failed entropy source", i)
		}
		if !errors.Is(errors.Generation, err) {
			t.Errorf("test %d: wrong error kind: %v", i, err)
		}
		if !errors.Match(errors.E(errors.Op("keygen.Random")), err) {
			t.Errorf("test %d: wrong op: %v", i, err)
		}
	}

	_, err := (&Random{Rand: failingReader{}}).Generate()
	if !stderrors.Is(err, errEntropy) {
		t.Errorf("entropy error not wrapped: %v", err)
	}
}

func TestPrefixEmpty(t *testing.T) {
	rand := seeded(2)
	g := NewPrefix(nil, 5)
	g.Rand = rand
	if _, err := g.Generate(); err != nil {
		t.Fatal(err)
	}
	if rand.n != keypair.SecretSize {
		t.Fatalf("empty prefix read %d bytes, want one attempt", rand.n)
	}
}

func TestPrefixZeroIterations(t *testing.T) {
	rand := seeded(3)
	g := NewPrefix([]byte{0xab}, 0)
	g.Rand = rand
	kp, err := g.Generate()
	if kp != nil {
		t.Fatal("got key pair with zero iterations")
	}
	if !errors.Is(errors.Generation, err) || !stderrors.Is(err, ErrNoMatch) {
		t.Fatalf("wrong error: %v", err)
	}
	if rand.n != 0 {
		t.Fatalf("read %d bytes with zero iterations", rand.n)
	}
}

func TestPrefixExhaustsExactIterations(t *testing.T) {
	const iterations = 50
	rand := seeded(4)
	// No address is longer than 20 bytes, so this prefix never matches.
	g := NewPrefix(make([]byte, keypair.AddressSize+1), iterations)
	g.Rand = rand
	_, err := g.Generate()
	if !stderrors.Is(err, ErrNoMatch) {
		t.Fatalf("wrong error: %v", err)
	}
	if rand.n != iterations*keypair.SecretSize {
		t.Fatalf("made %d attempts, want %d", rand.n/keypair.SecretSize, iterations)
	}
}

func TestPrefixMatch(t *testing.T) {
	tests := [][]byte{
		{0xab},
		{0x00},
		{0xff},
		{0x12, 0x34},
	}
	for i, prefix := range tests {
		g := NewPrefix(prefix, 1000000)
		g.Rand = seeded(byte(10 + i))
		kp, err := g.Generate()
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		addr := kp.Address()
		if !bytes.HasPrefix(addr[:], prefix) {
			t.Errorf("test %d: address %x does not start with %x", i, addr[:], prefix)
		}
	}
}

func TestPrefixCopiesInput(t *testing.T) {
	prefix := []byte{0xab}
	g := NewPrefix(prefix, 100000)
	prefix[0] = 0xcd
	g.Rand = seeded(5)
	kp, err := g.Generate()
	if err != nil {
		t.Fatal(err)
	}
	if kp.Address()[0] != 0xab {
		t.Fatalf("prefix changed after construction: got %s", kp.Address())
	}
}

func TestPrefixEntropyFailure(t *testing.T) {
	g := NewPrefix([]byte{0xab}, 10)
	g.Rand = failingReader{}
	_, err := g.Generate()
	if !errors.Is(errors.Generation, err) || !stderrors.Is(err, errEntropy) {
		t.Fatalf("wrong error: %v", err)
	}
	if stderrors.Is(err, ErrNoMatch) {
		t.Fatal("entropy failure reported as exhaustion")
	}
}

var brainTests = []struct {
	phrase  string
	secret  string
	address string
}{
	{
		phrase:  "correct horse battery staple",
		secret:  "72861f5767c11b93c53bb9d2cf7bacdb6445a31469a3080007223596a17f1a4b",
		address: "cbba0de104a06b50bd1c14cff359b6eaf41be36b",
	},
	{
		phrase:  "this is sparta!",
		secret:  "bfa034710d57da47f2cfcc1467da2115ff41507942563004804513bb2a6e6c76",
		address: "5d3383e25662613573883f99f6e93a846ae06181",
	},
	{
		phrase:  "",
		secret:  "e35593da6aff348d8982ce3314bf66e3ad90a89d9171aa5c1d4f1cd4b3592dc8",
		address: "7cde855bca46672e9db0490c1718f5d7156592b8",
	},
}

func TestBrainVectors(t *testing.T) {
	for i, test := range brainTests {
		kp, err := NewBrain(test.phrase).Generate()
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got := kp.Secret().String(); got != test.secret {
			t.Errorf("test %d: secret got %s want %s", i, got, test.secret)
		}
		if got := kp.Address().String(); got != test.address {
			t.Errorf("test %d: address got %s want %s", i, got, test.address)
		}
	}
}

func TestBrainDeterministic(t *testing.T) {
	phrases := []string{"a", "A", "a ", "ünïcödé phrase", "correct horse battery staple"}
	seen := make(map[keypair.Secret]string)
	for _, phrase := range phrases {
		g := NewBrain(phrase)
		first, err := g.Generate()
		if err != nil {
			t.Fatalf("%q: %v", phrase, err)
		}
		// A second call on the same generator and a fresh generator
		// must both reproduce the key.
		again, err := g.Generate()
		if err != nil {
			t.Fatalf("%q: %v", phrase, err)
		}
		fresh, err := NewBrain(phrase).Generate()
		if err != nil {
			t.Fatalf("%q: %v", phrase, err)
		}
		if *first != *again || *first != *fresh {
			t.Errorf("%q: derivation is not deterministic", phrase)
		}
		if other, ok := seen[first.Secret()]; ok {
			t.Errorf("%q and %q derived the same key", phrase, other)
		}
		seen[first.Secret()] = phrase
	}
}

func TestRehashUntilValid(t *testing.T) {
	one := make([]byte, 32)
	one[31] = 1
	order, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	tests := []struct {
		name      string
		candidate []byte
		limit     int
		want      string
	}{
		{"valid", one, 0, "0000000000000000000000000000000000000000000000000000000000000001"},
		{"zero", make([]byte, 32), MaxBrainRehash, "290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563"},
		{"order", order, MaxBrainRehash, "ba6b8b26f8db7265820aa6f65d8a3a4507f9ce776254027bb39ddf3a0b9a6e22"},
		{"all ones", bytes.Repeat([]byte{0xff}, 32), 1, "a9c584056064687e149968cbab758a3376d22aedc6a55823d1b3ecbee81b8fb9"},
		{"zero at limit", make([]byte, 32), 0, ""},
		{"order at limit", order, 0, ""},
	}
	for _, test := range tests {
		c := append([]byte(nil), test.candidate...)
		got, err := rehashUntilValid(c, test.limit)
		if test.want == "" {
			if !errors.Is(errors.Generation, err) {
				t.Errorf("%s: got error %v, want a generation failure", test.name, err)
			}
			if got != nil {
				t.Errorf("%s: returned a candidate past the limit", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", test.name, err)
			continue
		}
		if hex.EncodeToString(got) != test.want {
			t.Errorf("%s: got %x want %s", test.name, got, test.want)
		}
	}
}
