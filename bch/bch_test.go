package bch

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

// bitVector is a fixed-size pool of random 0/1 values that property
// tests slice down to a codec's actual K, mirroring the teacher
// package's own BitString.Generate pattern of producing a fixed-size
// random bit source rather than a size tied to quick's own size hint.
type bitVector [64]int

func (bitVector) Generate(rand *rand.Rand, size int) reflect.Value {
	var bv bitVector
	for i := range bv {
		bv[i] = rand.Intn(2)
	}
	return reflect.ValueOf(bv)
}

func smallCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(31, 3, nil)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	return c
}

// TestEncodeAgreement checks law 4: EncodeBits and EncodeBytes agree,
// under the byte-packing conventions of §3, for every message.
func TestEncodeAgreement(t *testing.T) {
	c := smallCodec(t)
	k := c.K()

	err := quick.Check(func(bv bitVector) bool {
		msg := append([]int(nil), bv[:k]...)

		codeword, err := c.EncodeBits(msg)
		if err != nil {
			t.Fatalf("EncodeBits: %v", err)
		}

		data := packMessage(msg)
		ecc := make([]byte, c.EccBytes())
		if err := c.EncodeBytes(data, len(data), ecc); err != nil {
			t.Fatalf("EncodeBytes: %v", err)
		}

		parBits := unpackParity(ecc, c.NRdncy())
		for i := 0; i < c.NRdncy(); i++ {
			if codeword[i] != parBits[i] {
				return false
			}
		}
		for i := 0; i < k; i++ {
			if codeword[c.NRdncy()+i] != msg[i] {
				return false
			}
		}
		return true
	}, nil)

	if err != nil {
		t.Fatal(err)
	}
}

// TestSystematicForm checks law 7: bits [n_rdncy, N) of a codeword
// produced by EncodeBits equal the input message verbatim.
func TestSystematicForm(t *testing.T) {
	c := smallCodec(t)
	k := c.K()

	err := quick.Check(func(bv bitVector) bool {
		msg := append([]int(nil), bv[:k]...)
		codeword, err := c.EncodeBits(msg)
		if err != nil {
			t.Fatalf("EncodeBits: %v", err)
		}
		for i := 0; i < k; i++ {
			if codeword[c.NRdncy()+i] != msg[i] {
				return false
			}
		}
		return true
	}, nil)

	if err != nil {
		t.Fatal(err)
	}
}

// TestDecodeIdentityClean checks law 5: decoding a clean codeword always
// returns (true, the original message).
func TestDecodeIdentityClean(t *testing.T) {
	c := smallCodec(t)
	k := c.K()
	out := make([]int, k)

	err := quick.Check(func(bv bitVector) bool {
		msg := append([]int(nil), bv[:k]...)
		codeword, err := c.EncodeBits(msg)
		if err != nil {
			t.Fatalf("EncodeBits: %v", err)
		}

		ok, err := c.DecodeBits(codeword, out)
		if err != nil {
			t.Fatalf("DecodeBits: %v", err)
		}
		if !ok {
			return false
		}
		for i := 0; i < k; i++ {
			if out[i] != msg[i] {
				return false
			}
		}
		return true
	}, nil)

	if err != nil {
		t.Fatal(err)
	}
}

// TestCorrectionUpToT checks law 6: any error pattern of Hamming weight
// <= t is corrected.
func TestCorrectionUpToT(t *testing.T) {
	c := smallCodec(t)
	k, n, cap := c.K(), c.N(), c.T()
	out := make([]int, k)
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		msg := make([]int, k)
		for i := range msg {
			msg[i] = rng.Intn(2)
		}
		codeword, err := c.EncodeBits(msg)
		if err != nil {
			t.Fatalf("EncodeBits: %v", err)
		}

		w := rng.Intn(cap + 1)
		received := append([]int(nil), codeword...)
		flipped := map[int]bool{}
		for len(flipped) < w {
			idx := rng.Intn(n)
			if flipped[idx] {
				continue
			}
			flipped[idx] = true
			received[idx] ^= 1
		}

		ok, err := c.DecodeBits(received, out)
		if err != nil {
			t.Fatalf("DecodeBits: %v", err)
		}
		if !ok {
			t.Fatalf("trial %d: weight %d uncorrectable", trial, w)
		}
		for i := 0; i < k; i++ {
			if out[i] != msg[i] {
				t.Fatalf("trial %d: weight %d, bit %d: got %d want %d", trial, w, i, out[i], msg[i])
			}
		}
	}
}
