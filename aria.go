// Package aria implements the ARIA block cipher as specified in
// RFC 5794.
//
// ARIA is a 128-bit block cipher with a substitution-permutation
// network structure similar to AES, selected as a standard by the
// Korean Agency for Technology and Standards. It accepts 128-, 192-,
// and 256-bit master keys and runs 12, 14, or 16 rounds accordingly.
// The key schedule drives the master key through a 3-round 256-bit
// Feistel network seeded with the binary expansion of 1/pi.
//
// This is a reference implementation. Substitution is table-driven and
// not hardened against timing side channels.
package aria

import "strconv"

// BlockSize is the ARIA block size in bytes.
const BlockSize = 16

// block is the 128-bit unit every round operation works on.
type block [BlockSize]byte

// KeySizeError reports a master key whose length is not 16, 24, or 32
// bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aria: invalid key size " + strconv.Itoa(int(k))
}

// InputSizeError reports a buffer whose length is not a positive
// multiple of the cipher's accepted chunk size.
type InputSizeError int

func (n InputSizeError) Error() string {
	return "aria: invalid input size " + strconv.Itoa(int(n))
}

// Cipher holds the round keys expanded from one master key. It is
// immutable once constructed and safe for concurrent use by multiple
// goroutines.
type Cipher struct {
	ek     []block // encryption round keys, rounds+1 of them
	dk     []block // decryption round keys, same count
	rounds int
	keyLen int
}

// NewCipher expands the given 16-, 24-, or 32-byte master key into
// encryption and decryption round keys and returns a ready cipher.
func NewCipher(key []byte) (*Cipher, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, KeySizeError(len(key))
	}
	c := &Cipher{keyLen: len(key)}
	c.expandKey(key)
	return c, nil
}

// BlockSize returns the ARIA block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// KeySize returns the master key length in bytes.
func (c *Cipher) KeySize() int {
	return c.keyLen
}

// Rounds returns the number of cipher rounds for this key size.
func (c *Cipher) Rounds() int {
	return c.rounds
}

// expandKey implements the RFC 5794 section 2.2 key schedule. The key
// length has already been validated.
func (c *Cipher) expandKey(key []byte) {
	var ck1, ck2, ck3 block
	switch len(key) {
	case 16:
		ck1, ck2, ck3 = c1, c2, c3
		c.rounds = 12
	case 24:
		ck1, ck2, ck3 = c2, c3, c1
		c.rounds = 14
	case 32:
		ck1, ck2, ck3 = c3, c1, c2
		c.rounds = 16
	}

	// KL || KR = K || 0..0: KL is the leftmost 128 bits, KR the rest
	// right-padded with zeros.
	var kl, kr block
	copy(kl[:], key[:BlockSize])
	if len(key) > BlockSize {
		copy(kr[:], key[BlockSize:])
	}

	// Three Feistel rounds over the 256-bit value KL || KR.
	w0 := kl
	w1 := xorBlock(fo(w0, ck1), kr)
	w2 := xorBlock(fe(w1, ck2), w0)
	w3 := xorBlock(fo(w2, ck3), w1)

	// Seventeen candidate round keys ek1..ek17; only the first
	// rounds+1 are used for this key size.
	ek := [17]block{
		xorRotatedRight(w0, w1, 19),
		xorRotatedRight(w1, w2, 19),
		xorRotatedRight(w2, w3, 19),
		xorRotatedRight(w3, w0, 19),
		xorRotatedRight(w0, w1, 31),
		xorRotatedRight(w1, w2, 31),
		xorRotatedRight(w2, w3, 31),
		xorRotatedRight(w3, w0, 31),
		xorRotatedLeft(w0, w1, 61),
		xorRotatedLeft(w1, w2, 61),
		xorRotatedLeft(w2, w3, 61),
		xorRotatedLeft(w3, w0, 61),
		xorRotatedLeft(w0, w1, 31),
		xorRotatedLeft(w1, w2, 31),
		xorRotatedLeft(w2, w3, 31),
		xorRotatedLeft(w3, w0, 31),
		xorRotatedLeft(w0, w1, 19),
	}
	c.ek = make([]block, c.rounds+1)
	copy(c.ek, ek[:c.rounds+1])

	// dk1 = ek{n+1}, dk{i} = A(ek{n+1-i}) for 1 < i < n+1, dk{n+1} = ek1.
	c.dk = make([]block, c.rounds+1)
	c.dk[0] = c.ek[c.rounds]
	for i := 1; i < c.rounds; i++ {
		c.dk[i] = diffuse(c.ek[c.rounds-i])
	}
	c.dk[c.rounds] = c.ek[0]
}

// xorRotatedRight returns a ^ (b >>> n).
func xorRotatedRight(a, b block, n int) block {
	var y block
	copy(y[:], xorBytes(a[:], rotateRight(b[:], n)))
	return y
}

// xorRotatedLeft returns a ^ (b <<< n).
func xorRotatedLeft(a, b block, n int) block {
	var y block
	copy(y[:], xorBytes(a[:], rotateLeft(b[:], n)))
	return y
}

// Encrypt encrypts src and returns the ciphertext. The length of src
// must be a positive multiple of both the master key length and the
// 16-byte block size; blocks are processed independently, with no
// chaining.
func (c *Cipher) Encrypt(src []byte) ([]byte, error) {
	return c.crypt(src, c.ek)
}

// Decrypt decrypts src and returns the plaintext. The same length
// rules apply as for Encrypt.
func (c *Cipher) Decrypt(src []byte) ([]byte, error) {
	return c.crypt(src, c.dk)
}

func (c *Cipher) crypt(src []byte, keys []block) ([]byte, error) {
	if len(src) == 0 || len(src)%c.keyLen != 0 || len(src)%BlockSize != 0 {
		return nil, InputSizeError(len(src))
	}
	dst := make([]byte, len(src))
	var b block
	for off := 0; off < len(src); off += BlockSize {
		copy(b[:], src[off:off+BlockSize])
		b = c.cryptBlock(b, keys)
		copy(dst[off:], b[:])
	}
	return dst, nil
}

// cryptBlock runs one block through the full round sequence: an odd
// first round, alternating even/odd rounds, and the final round that
// swaps the diffusion layer for a second key addition. Encryption and
// decryption differ only in the round keys supplied.
func (c *Cipher) cryptBlock(b block, keys []block) block {
	b = fo(b, keys[0])
	for j := 1; j < c.rounds-1; j++ {
		if j%2 == 0 {
			b = fo(b, keys[j])
		} else {
			b = fe(b, keys[j])
		}
	}
	return xorBlock(sl2(xorBlock(b, keys[c.rounds-1])), keys[c.rounds])
}

// EncryptBlock encrypts exactly one 16-byte block from src into dst,
// which may overlap. It panics if either buffer is shorter than
// BlockSize.
func (c *Cipher) EncryptBlock(dst, src []byte) {
	c.cryptBlockSlices(dst, src, c.ek)
}

// DecryptBlock decrypts exactly one 16-byte block from src into dst,
// which may overlap. It panics if either buffer is shorter than
// BlockSize.
func (c *Cipher) DecryptBlock(dst, src []byte) {
	c.cryptBlockSlices(dst, src, c.dk)
}

func (c *Cipher) cryptBlockSlices(dst, src []byte, keys []block) {
	if len(src) < BlockSize {
		panic("aria: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aria: output not full block")
	}
	var b block
	copy(b[:], src[:BlockSize])
	b = c.cryptBlock(b, keys)
	copy(dst, b[:])
}
