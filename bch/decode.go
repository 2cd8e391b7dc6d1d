package bch

// DecodeBits is the bit-serial reference decoder. received must have
// length N(); out must have length K() and receives the corrected
// message on success. It returns true on success (including the
// no-errors case) and false if the received word is uncorrectable; on
// false, out's contents are unspecified.
func (c *Codec) DecodeBits(received, out []int) (bool, error) {
	if len(received) != c.n {
		return false, errInvalidf("DecodeBits: len(received)=%d, want N=%d", len(received), c.n)
	}
	if len(out) != c.k {
		return false, errInvalidf("DecodeBits: len(out)=%d, want K=%d", len(out), c.k)
	}

	s := make([]int, 2*c.t+1)
	synError := false
	for i := 1; i <= 2*c.t; i++ {
		var acc int
		for j := 0; j < c.n; j++ {
			if received[j] != 0 {
				acc ^= c.alphaTo[(i*j)%c.n]
			}
		}
		if acc != 0 {
			synError = true
		}
		s[i] = c.indexOf[acc]
	}

	if !synError {
		copy(out, received[c.nRdncy:])
		return true, nil
	}

	ws := newDecodeWorkspace(c.t)
	loc, ok := c.findErrors(s, ws)
	if !ok {
		return false, nil
	}

	corrected := append([]int(nil), received...)
	for _, idx := range loc {
		if idx < 0 || idx >= c.n {
			return false, nil
		}
		corrected[idx] ^= 1
	}

	copy(out, corrected[c.nRdncy:])
	return true, nil
}

// DecodeBytes is the byte-oriented fast-path decoder. It corrects up to
// t errors in place across data (dataLen bytes, same packing as
// EncodeBytes) and ecc (EccBytes() bytes). It returns the number of
// corrections made (>= 0, 0 meaning a clean codeword) or a negative
// value if the received word is uncorrectable.
func (c *Codec) DecodeBytes(data []byte, dataLen int, ecc []byte) (int, error) {
	wantLen := (c.k + 7) / 8
	if dataLen != wantLen || len(data) < dataLen {
		return -1, errInvalidf("DecodeBytes: dataLen=%d, want %d", dataLen, wantLen)
	}
	if len(ecc) != c.eccBytes {
		return -1, errInvalidf("DecodeBytes: len(ecc)=%d, want %d", len(ecc), c.eccBytes)
	}

	calcEcc := make([]byte, c.eccBytes)
	if err := c.EncodeBytes(data, dataLen, calcEcc); err != nil {
		return -1, err
	}

	diff := make([]byte, c.eccBytes)
	for i := range diff {
		diff[i] = calcEcc[i] ^ ecc[i]
	}

	t2 := 2 * c.t
	alpha8Pow := make([]int, t2+1)
	for i := 1; i <= t2; i++ {
		alpha8Pow[i] = (i * 8) % c.n
	}

	sPoly := make([]int, t2+1)
	for k := c.eccBytes - 1; k >= 0; k-- {
		b := diff[k]
		if k == c.eccBytes-1 {
			if valid := c.nRdncy % 8; valid != 0 {
				b &= byte((1 << uint(valid)) - 1)
			}
		}
		for i := 1; i <= t2; i++ {
			if sPoly[i] != 0 {
				idx := (c.indexOf[sPoly[i]] + alpha8Pow[i]) % c.n
				sPoly[i] = c.alphaTo[idx]
			}
			sPoly[i] ^= c.syndromeLUT[i][b]
		}
	}

	s := make([]int, t2+1)
	synError := false
	for i := 1; i <= t2; i++ {
		if sPoly[i] != 0 {
			s[i] = c.indexOf[sPoly[i]]
			synError = true
		} else {
			s[i] = -1
		}
	}
	if !synError {
		return 0, nil
	}

	ws := newDecodeWorkspace(c.t)
	loc, ok := c.findErrors(s, ws)
	if !ok {
		return -1, nil
	}

	for _, bitIdx := range loc {
		if bitIdx < 0 || bitIdx >= c.n {
			return -1, nil
		}
		if bitIdx >= c.nRdncy {
			dIdx := bitIdx - c.nRdncy
			streamPos := c.k - 1 - dIdx
			byteIdx := streamPos / 8
			bitOff := uint(7 - streamPos%8)
			data[byteIdx] ^= 1 << bitOff
		} else {
			byteIdx := bitIdx / 8
			bitOff := uint(bitIdx % 8)
			ecc[byteIdx] ^= 1 << bitOff
		}
	}

	return len(loc), nil
}
