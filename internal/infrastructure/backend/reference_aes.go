package backend

import "github.com/MGTheTrain/aes-ecb/internal/domain/aesecb"

var sbox [256]byte

func init() {
	// Walk GF(2^8) with generator 3: p runs over the powers of 3 and q over their inverses.
	var p, q byte = 1, 1
	for {
		p ^= xtime(p)

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		sbox[p] = q ^ rotl8(q, 1) ^ rotl8(q, 2) ^ rotl8(q, 3) ^ rotl8(q, 4) ^ 0x63
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63
}

func rotl8(x byte, n uint) byte {
	return x<<n | x>>(8-n)
}

// xtime multiplies by x in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

// expandKey fills w with the FIPS-197 key expansion of key. len(w) selects the round count.
func expandKey(key, w []byte) {
	nk := len(key) / 4
	total := len(w) / 4
	copy(w, key)

	rcon := byte(1)
	var t [4]byte
	for i := nk; i < total; i++ {
		copy(t[:], w[4*(i-1):4*i])
		switch {
		case i%nk == 0:
			t[0], t[1], t[2], t[3] = sbox[t[1]]^rcon, sbox[t[2]], sbox[t[3]], sbox[t[0]]
			rcon = xtime(rcon)
		case nk > 6 && i%nk == 4:
			for j := range t {
				t[j] = sbox[t[j]]
			}
		}
		for j := 0; j < 4; j++ {
			w[4*i+j] = w[4*(i-nk)+j] ^ t[j]
		}
	}
}

// encryptBlock runs the AES cipher over one block. The state is column major, byte 4*c+r.
func encryptBlock(w []byte, dst, src []byte) {
	nr := len(w)/aesecb.BlockSize - 1

	var s [aesecb.BlockSize]byte
	copy(s[:], src[:aesecb.BlockSize])

	addRoundKey(&s, w[:16])
	for round := 1; round < nr; round++ {
		subBytes(&s)
		shiftRows(&s)
		mixColumns(&s)
		addRoundKey(&s, w[16*round:16*round+16])
	}
	subBytes(&s)
	shiftRows(&s)
	addRoundKey(&s, w[16*nr:16*nr+16])

	copy(dst[:aesecb.BlockSize], s[:])
	clear(s[:])
}

func addRoundKey(s *[16]byte, k []byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

func subBytes(s *[16]byte) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

func shiftRows(s *[16]byte) {
	old := *s
	for c := 0; c < 4; c++ {
		for r := 1; r < 4; r++ {
			s[4*c+r] = old[4*((c+r)%4)+r]
		}
	}
}

func mixColumns(s *[16]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		s[4*c] = a0 ^ t ^ xtime(a0^a1)
		s[4*c+1] = a1 ^ t ^ xtime(a1^a2)
		s[4*c+2] = a2 ^ t ^ xtime(a2^a3)
		s[4*c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}
