// Package gf builds the discrete-log tables for GF(2^m), the finite field a
// BCH code is defined over. It generalizes the fixed GF(256) Reed-Solomon
// field used elsewhere in this module's retrieval lineage (r900/gf) to any
// order 2^m, m in [3,16], matching the BCH codec's primitive-polynomial
// convention rather than the RS convention of a single packed polynomial
// int.
package gf

import (
	"golang.org/x/xerrors"
)

// ErrInvalidPoly is returned when a primitive polynomial is malformed:
// wrong length, or missing the mandatory p[0] and p[m] taps.
var ErrInvalidPoly = xerrors.New("gf: invalid primitive polynomial")

// Field holds the antilog (AlphaTo) and log (IndexOf) tables of GF(2^m)
// with respect to a primitive element alpha, built from a degree-m
// primitive polynomial P.
//
// AlphaTo[i] = alpha^i for i in [0,N]. IndexOf[x] = log_alpha(x) for
// x in [1,N]; IndexOf[0] = -1, the sentinel for "log of zero".
type Field struct {
	M int
	N int // N = 2^M - 1

	P []int // primitive polynomial coefficients, length M+1, P[0]=P[M]=1

	AlphaTo []int // length N+1
	IndexOf []int // length N+1
}

// DefaultPoly returns the built-in primitive polynomial coefficient vector
// for degree m, or nil if m is out of the supported range [3,16].
func DefaultPoly(m int) []int {
	taps, ok := defaultTaps[m]
	if !ok {
		return nil
	}
	p := make([]int, m+1)
	p[0], p[m] = 1, 1
	for _, i := range taps {
		p[i] = 1
	}
	return p
}

// defaultTaps lists the non-trivial taps (excluding p[0] and p[m], which
// are always 1) of the built-in primitive polynomial for each supported m,
// per the codec's default primitive polynomial table.
var defaultTaps = map[int][]int{
	3:  {1},
	4:  {1},
	5:  {2},
	6:  {1},
	7:  {1},
	8:  {4, 5, 6},
	9:  {1},
	10: {3},
	11: {2},
	12: {3, 4, 7},
	13: {1, 3, 4},
	14: {1, 11, 12},
	15: {1},
	16: {2, 3, 5},
}

// NewField constructs the GF(2^m) log/antilog tables from a degree-m
// primitive polynomial p (length m+1, p[0]=p[m]=1). N must equal 2^m-1.
func NewField(m, n int, p []int) (*Field, error) {
	if len(p) != m+1 {
		return nil, xerrors.Errorf("gf: primitive polynomial length %d, want %d: %w", len(p), m+1, ErrInvalidPoly)
	}
	if p[0] != 1 || p[m] != 1 {
		return nil, xerrors.Errorf("gf: primitive polynomial must have p[0]=p[%d]=1: %w", m, ErrInvalidPoly)
	}

	f := &Field{
		M:       m,
		N:       n,
		P:       append([]int(nil), p...),
		AlphaTo: make([]int, n+1),
		IndexOf: make([]int, n+1),
	}

	mask := 1
	f.AlphaTo[m] = 0
	for i := 0; i < m; i++ {
		f.AlphaTo[i] = mask
		f.IndexOf[f.AlphaTo[i]] = i
		if p[i] != 0 {
			f.AlphaTo[m] ^= mask
		}
		mask <<= 1
	}
	f.IndexOf[f.AlphaTo[m]] = m

	mask >>= 1
	for i := m + 1; i < n; i++ {
		if f.AlphaTo[i-1] >= mask {
			f.AlphaTo[i] = f.AlphaTo[m] ^ ((f.AlphaTo[i-1] ^ mask) << 1)
		} else {
			f.AlphaTo[i] = f.AlphaTo[i-1] << 1
		}
		f.IndexOf[f.AlphaTo[i]] = i
	}

	// A primitive polynomial makes alpha a generator of the field's
	// multiplicative group: AlphaTo[0:n] must enumerate every nonzero
	// element of the field exactly once. An irreducible-but-not-primitive
	// polynomial makes alpha's order a proper divisor of n, so some
	// nonzero value repeats before i reaches n -- catch that here rather
	// than silently handing back a codec built on a corrupted field.
	seen := make([]bool, n+1)
	for i := 0; i < n; i++ {
		v := f.AlphaTo[i]
		if v < 1 || v > n || seen[v] {
			return nil, xerrors.Errorf("gf: polynomial is not primitive (alpha has order < %d): %w", n, ErrInvalidPoly)
		}
		seen[v] = true
	}

	f.AlphaTo[n] = f.AlphaTo[0]
	f.IndexOf[0] = -1

	return f, nil
}

// Exp returns alpha^e, reducing e modulo N. Negative e (the log-of-zero
// sentinel domain) is not meaningful and callers must guard for it
// themselves, mirroring the BCH decoder's explicit -1 checks.
func (f *Field) Exp(e int) int {
	e %= f.N
	if e < 0 {
		e += f.N
	}
	return f.AlphaTo[e]
}

// Log returns the discrete log of x, or -1 if x is zero.
func (f *Field) Log(x int) int {
	if x == 0 {
		return -1
	}
	return f.IndexOf[x]
}
