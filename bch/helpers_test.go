package bch

// Tiny bit<->byte packing helpers for tests only. The public API never
// exposes string/bit conversion helpers (out of scope per this module's
// spec), but exercising the bit-exact equivalence between EncodeBits and
// EncodeBytes needs to convert between the two packing conventions of
// §3: MSB-first for message bytes, LSB-first for parity bytes.

// packMessage packs K message bits into ceil(K/8) bytes, MSB-first, with
// message-bit 0 at the highest bit of the stream (stream_pos = K-1-i).
func packMessage(msg []int) []byte {
	k := len(msg)
	data := make([]byte, (k+7)/8)
	for i, bit := range msg {
		if bit == 0 {
			continue
		}
		streamPos := k - 1 - i
		data[streamPos/8] |= 1 << uint(7-streamPos%8)
	}
	return data
}

// unpackMessage is the inverse of packMessage.
func unpackMessage(data []byte, k int) []int {
	msg := make([]int, k)
	for i := range msg {
		streamPos := k - 1 - i
		byteIdx, bitOff := streamPos/8, uint(7-streamPos%8)
		msg[i] = int((data[byteIdx] >> bitOff) & 1)
	}
	return msg
}

// packParity packs nRdncy parity bits (low degree first) into
// ceil(nRdncy/8) bytes, LSB-first within each byte.
func packParity(par []int) []byte {
	n := len(par)
	ecc := make([]byte, (n+7)/8)
	for i, bit := range par {
		if bit != 0 {
			ecc[i/8] |= 1 << uint(i%8)
		}
	}
	return ecc
}

// unpackParity is the inverse of packParity.
func unpackParity(ecc []byte, nRdncy int) []int {
	par := make([]int, nRdncy)
	for i := range par {
		par[i] = int((ecc[i/8] >> uint(i%8)) & 1)
	}
	return par
}
