package bch

import "github.com/dhall/gobch/bch/internal/lut"

// EncodeBits is the bit-serial reference encoder. msg must have length
// K(); it returns a fresh codeword of length N(): parity bits (low degree
// first) followed by msg verbatim.
func (c *Codec) EncodeBits(msg []int) ([]int, error) {
	if len(msg) != c.k {
		return nil, errInvalidf("EncodeBits: len(msg)=%d, want K=%d", len(msg), c.k)
	}
	for _, b := range msg {
		if b != 0 && b != 1 {
			return nil, errInvalidf("EncodeBits: message bit %d out of {0,1}", b)
		}
	}

	par := make([]int, c.nRdncy)
	for i := c.k - 1; i >= 0; i-- {
		feedback := msg[i] ^ par[c.nRdncy-1]
		for j := c.nRdncy - 1; j > 0; j-- {
			par[j] = par[j-1] ^ (c.g[j] & feedback)
		}
		par[0] = c.g[0] & feedback
	}

	codeword := make([]int, c.n)
	copy(codeword, par)
	copy(codeword[c.nRdncy:], msg)
	return codeword, nil
}

// EncodeBytes is the byte-oriented fast-path encoder. data must hold at
// least ceil(K()/8) bytes with the top K() bits meaningful (MSB-first,
// message-bit 0 at the highest bit of the stream); eccOut must have
// length EccBytes() and receives the parity bits, LSB-first within each
// byte.
func (c *Codec) EncodeBytes(data []byte, dataLen int, eccOut []byte) error {
	wantLen := (c.k + 7) / 8
	if dataLen != wantLen || len(data) < dataLen {
		return errInvalidf("EncodeBytes: dataLen=%d, want %d", dataLen, wantLen)
	}
	if len(eccOut) != c.eccBytes {
		return errInvalidf("EncodeBytes: len(eccOut)=%d, want %d", len(eccOut), c.eccBytes)
	}

	par := make(parityReg, lut.EccWords(c.nRdncy))

	fullBytes := c.k / 8
	remBits := c.k % 8

	for i := 0; i < fullBytes; i++ {
		feedback := par.topByte(c.nRdncy) ^ data[i]
		par.shiftLeft8()
		par.mask(c.nRdncy)
		par.xorLUT(c.encodeLUT[feedback])
	}

	if remBits > 0 {
		last := data[fullBytes]
		for b := 0; b < remBits; b++ {
			bitPos := 7 - b
			inputBit := int((last >> uint(bitPos)) & 1)
			feedback := inputBit ^ par.bit(c.nRdncy-1)

			par.shiftLeft1()
			if feedback != 0 {
				par.addGenerator(c.g, c.nRdncy)
			}
		}
		par.mask(c.nRdncy)
	}

	for i := range eccOut {
		eccOut[i] = 0
	}
	for i := 0; i < c.nRdncy; i++ {
		if par.bit(i) != 0 {
			eccOut[i/8] |= 1 << uint(i%8)
		}
	}
	return nil
}
