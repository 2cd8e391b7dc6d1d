// Package bch implements a systematic binary BCH encoder and decoder: the
// codec facade, its two lookup-table builders, and the encode/decode
// algorithms. It generalizes this module's teacher package of the same
// name -- a single fixed-generator-polynomial LFSR checksum helper -- into
// a full construct-once, encode/decode-many BCH engine parameterized by
// codeword length N = 2^m-1 and correction capacity t.
package bch

import (
	"golang.org/x/xerrors"

	"github.com/dhall/gobch/bch/internal/lut"
	"github.com/dhall/gobch/genpoly"
	"github.com/dhall/gobch/gf"
)

// Error kinds. Construction and bit-vector encode/decode wrap one of
// these with xerrors so callers can errors.Is against the sentinel while
// still getting a descriptive message, matching this module's teacher
// package's own xerrors.Errorf("...: %w", err) convention.
var (
	// ErrInvalidArgument covers a bad (N, t) pair, a malformed primitive
	// polynomial, or a size mismatch on an input/output buffer.
	ErrInvalidArgument = xerrors.New("bch: invalid argument")

	// ErrUncorrectable marks a received word beyond the code's bounded
	// distance capability. It is never returned by the two public decode
	// methods (which signal failure via a bool or a negative count, per
	// their documented contracts), and no code in this package returns
	// it; it only names the failure kind.
	ErrUncorrectable = xerrors.New("bch: uncorrectable error pattern")

	// ErrInternal marks a generator polynomial that reduced to a
	// non-binary coefficient: a bug in this library, not a caller
	// mistake. NewCodec panics wrapping this error rather than returning
	// it, since it can only mean a fault in the generator-polynomial
	// construction (a non-primitive polynomial, default or supplied, is
	// rejected earlier by gf.NewField as ErrInvalidArgument).
	ErrInternal = xerrors.New("bch: internal invariant violated")
)

// Codec holds the immutable configuration and precomputed tables for one
// (N, t, primitive polynomial) triple. All fields are read-only after
// NewCodec returns; a *Codec may be shared across goroutines for
// concurrent encoding and decoding, since decoding allocates its own
// workspace per call rather than mutating the codec.
type Codec struct {
	m, n, t, d int
	nRdncy     int
	k          int
	eccBytes   int

	p       []int
	alphaTo []int
	indexOf []int
	g       []int

	encodeLUT   [][]uint32
	syndromeLUT [][]int
}

// NewCodec constructs a BCH codec for codeword length n = 2^m-1 (m in
// [3,16]) and correction capacity t (1 <= t, 2t < n). If p is nil, the
// built-in primitive polynomial for m is used; otherwise p must have
// length m+1 with p[0] = p[m] = 1.
func NewCodec(n, t int, p []int) (*Codec, error) {
	m := degreeOf(n)
	if m == 0 {
		return nil, xerrors.Errorf("bch: n=%d is not 2^m-1 for any m in [3,16]: %w", n, ErrInvalidArgument)
	}
	if t < 1 {
		return nil, xerrors.Errorf("bch: t=%d must be >= 1: %w", t, ErrInvalidArgument)
	}
	if 2*t >= n {
		return nil, xerrors.Errorf("bch: 2t=%d must be < n=%d: %w", 2*t, n, ErrInvalidArgument)
	}

	if p == nil {
		p = gf.DefaultPoly(m)
	}

	field, err := gf.NewField(m, n, p)
	if err != nil {
		return nil, xerrors.Errorf("bch: %v: %w", err, ErrInvalidArgument)
	}

	d := 2*t + 1
	g, err := genpoly.Build(field, d)
	if err != nil {
		return nil, xerrors.Errorf("bch: t=%d leaves no redundancy: %w", t, ErrInvalidArgument)
	}
	if g[0] != 1 {
		panic(xerrors.Errorf("bch: generator polynomial g[0]=%d, want 1: %w", g[0], ErrInternal))
	}
	for _, c := range g {
		if c != 0 && c != 1 {
			panic(xerrors.Errorf("bch: generator polynomial coefficient %d is non-binary: %w", c, ErrInternal))
		}
	}

	nRdncy := len(g) - 1
	k := n - nRdncy
	if k < 1 {
		return nil, xerrors.Errorf("bch: n=%d, t=%d leaves K=%d <= 0: %w", n, t, k, ErrInvalidArgument)
	}

	return &Codec{
		m:           m,
		n:           n,
		t:           t,
		d:           d,
		nRdncy:      nRdncy,
		k:           k,
		eccBytes:    (nRdncy + 7) / 8,
		p:           append([]int(nil), p...),
		alphaTo:     field.AlphaTo,
		indexOf:     field.IndexOf,
		g:           g,
		encodeLUT:   lut.BuildEncode(g, nRdncy),
		syndromeLUT: lut.BuildSyndrome(field.AlphaTo, n, t),
	}, nil
}

// degreeOf returns m such that n == 2^m-1 for some m in [3,16], or 0 if
// no such m exists.
func degreeOf(n int) int {
	for m := 3; m <= 16; m++ {
		if n == (1<<uint(m))-1 {
			return m
		}
	}
	return 0
}

// K returns the message bit count.
func (c *Codec) K() int { return c.k }

// N returns the codeword bit length.
func (c *Codec) N() int { return c.n }

// T returns the correction capacity.
func (c *Codec) T() int { return c.t }

// NRdncy returns the parity bit count (deg of the generator polynomial).
func (c *Codec) NRdncy() int { return c.nRdncy }

// EccBytes returns the parity byte count, ceil(NRdncy()/8).
func (c *Codec) EccBytes() int { return c.eccBytes }
