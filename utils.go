package aria

// rotateLeft returns a new byte array equal to x circularly rotated
// left by n bits. n is reduced modulo the bit length of x, so n = 0 or
// any multiple of len(x)*8 returns an equal copy.
func rotateLeft(x []byte, n int) []byte {
	size := len(x)
	result := make([]byte, size)
	if size == 0 {
		return result
	}
	bits := size * 8
	n = ((n % bits) + bits) % bits
	if n == 0 {
		copy(result, x)
		return result
	}
	byteOff := n / 8
	bitOff := n % 8
	for i := 0; i < size; i++ {
		hi := x[(i+byteOff)%size] << bitOff
		lo := x[(i+byteOff+1)%size] >> (8 - bitOff)
		result[i] = hi | lo
	}
	return result
}

// rotateRight returns a new byte array equal to x circularly rotated
// right by n bits, defined as a left rotation by bitlength - n.
func rotateRight(x []byte, n int) []byte {
	return rotateLeft(x, len(x)*8-n)
}

// xorBytes XORs x with y byte-wise into a new array. y may be shorter
// than x; bytes of x past len(y) are copied through unchanged.
func xorBytes(x, y []byte) []byte {
	result := make([]byte, len(x))
	copy(result, x)
	for i := 0; i < len(x) && i < len(y); i++ {
		result[i] ^= y[i]
	}
	return result
}
