// Package genpoly builds a BCH generator polynomial from a GF(2^m) field and
// a design distance, by enumerating 2-cyclotomic cosets modulo N and
// multiplying the minimal polynomials of the roots alpha^1..alpha^(d-1).
package genpoly

import (
	"golang.org/x/xerrors"

	"github.com/dhall/gobch/gf"
)

// ErrNoRedundancy is returned when no cyclotomic coset intersects
// {1, ..., d-1}, which would leave the generator polynomial degree zero
// (no redundancy at all) -- never a valid BCH code.
var ErrNoRedundancy = xerrors.New("genpoly: design distance selects no roots")

// Build returns the coefficients of g(x), index i holding the coefficient
// of x^i, i in [0, deg(g)]. Coefficients are always 0 or 1 on success.
func Build(f *gf.Field, d int) ([]int, error) {
	n := f.N

	// Step 1: enumerate the 2-cyclotomic cosets of Z/NZ. cosets[0] is the
	// trivial {0} coset, kept for parity with the classic aff3ct-derived
	// layout even though it never contributes roots.
	cosets := [][]int{{0}, {1}}
	representative := 0
	for representative < n-1 {
		cur := cosets[len(cosets)-1]
		for {
			next := (cur[len(cur)-1] * 2) % n
			if next == cur[0] {
				break
			}
			cur = append(cur, next)
		}
		cosets[len(cosets)-1] = cur

		var seen bool
		for representative < n-1 {
			representative++
			seen = false
			for i := 1; i < len(cosets) && !seen; i++ {
				for _, v := range cosets[i] {
					if v == representative {
						seen = true
						break
					}
				}
			}
			if !seen {
				break
			}
		}
		if !seen && representative < n {
			cosets = append(cosets, []int{representative})
		}
	}

	// Step 2: select cosets intersecting {1, ..., d-1}; their union is the
	// root set.
	var roots []int
	for i := 1; i < len(cosets); i++ {
		hit := false
		for _, v := range cosets[i] {
			for root := 1; root < d; root++ {
				if root == v {
					hit = true
					break
				}
			}
			if hit {
				break
			}
		}
		if hit {
			roots = append(roots, cosets[i]...)
		}
	}
	if len(roots) == 0 {
		return nil, xerrors.Errorf("genpoly: d=%d: %w", d, ErrNoRedundancy)
	}

	// Step 3-4: g(x) = product over roots beta of (x - alpha^beta), using
	// log/antilog arithmetic for products and XOR for sums.
	g := make([]int, len(roots)+1)
	g[0] = f.AlphaTo[roots[0]]
	g[1] = 1
	for i := 1; i < len(roots); i++ {
		beta := roots[i]
		g[i+1] = 1
		for j := i; j > 0; j-- {
			if g[j] != 0 {
				g[j] = g[j-1] ^ f.AlphaTo[(f.IndexOf[g[j]]+beta)%n]
			} else {
				g[j] = g[j-1]
			}
		}
		g[0] = f.AlphaTo[(f.IndexOf[g[0]]+beta)%n]
	}

	// Step 5: over a primitive field every coefficient is already 0 or 1
	// (an element of GF(2)). g is returned unmasked so that the caller's
	// check against bch.ErrInternal sees any non-binary coefficient.
	return g, nil
}
