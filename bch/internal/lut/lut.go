// Package lut builds the two lookup tables that turn the BCH codec's
// encoder and decoder from bit-serial loops into byte-at-a-time table
// lookups: the encode acceleration table (component 3 of the codec) and
// the syndrome acceleration table (component 4). Both are immutable once
// built and depend only on the generator polynomial and the GF(2^m)
// antilog table, never on a particular message or received word.
package lut

// EccWords returns the number of little-endian 32-bit words needed to hold
// nRdncy parity bits.
func EccWords(nRdncy int) int {
	return (nRdncy + 31) / 32
}

// BuildEncode precomputes, for every byte value b and the generator
// polynomial g (coefficients 0/1, g[0] at x^0), the XOR pattern that must
// be applied to the parity register after shifting b through the LFSR one
// bit at a time, MSB first. Each entry is packed into EccWords(nRdncy)
// little-endian 32-bit words, rem[0] landing in bit 0 of word 0.
func BuildEncode(g []int, nRdncy int) [][]uint32 {
	words := EccWords(nRdncy)
	table := make([][]uint32, 256)
	rem := make([]int, nRdncy)

	for b := 0; b < 256; b++ {
		for i := range rem {
			rem[i] = 0
		}

		for bit := 7; bit >= 0; bit-- {
			input := (b >> uint(bit)) & 1
			feedback := input ^ rem[nRdncy-1]

			for k := nRdncy - 1; k > 0; k-- {
				rem[k] = rem[k-1] ^ (g[k] & feedback)
			}
			rem[0] = g[0] & feedback
		}

		packed := make([]uint32, words)
		for idx := 0; idx < nRdncy; idx++ {
			if rem[idx] != 0 {
				w, bi := idx/32, uint(idx%32)
				packed[w] |= 1 << bi
			}
		}
		table[b] = packed
	}

	return table
}

// BuildSyndrome precomputes syndromeLUT[i][b], the GF(2^m) value (in
// polynomial form) of byte b evaluated at alpha^i, for i in [1, 2t] and
// b in [0, 256). alphaTo is the antilog table of the field, and n is the
// codeword length (field order minus one).
func BuildSyndrome(alphaTo []int, n, t int) [][]int {
	table := make([][]int, 2*t+1)
	for i := 1; i <= 2*t; i++ {
		row := make([]int, 256)
		for b := 0; b < 256; b++ {
			var val int
			for p := 0; p < 8; p++ {
				if (b>>uint(p))&1 != 0 {
					val ^= alphaTo[(i*p)%n]
				}
			}
			row[b] = val
		}
		table[i] = row
	}
	return table
}
