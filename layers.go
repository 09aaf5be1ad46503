package aria

// The cipher body is built from three fixed 16-byte transforms: two
// byte-wise substitution layers that alternate between rounds and one
// linear diffusion layer shared by both round types. All of them work
// on block values, so a wrong-sized input cannot reach them.

// sl1 is the type 1 substitution layer, used in odd rounds.
func sl1(x block) block {
	var y block
	for i := 0; i < BlockSize; i += 4 {
		y[i] = sb1[x[i]]
		y[i+1] = sb2[x[i+1]]
		y[i+2] = sb3[x[i+2]]
		y[i+3] = sb4[x[i+3]]
	}
	return y
}

// sl2 is the type 2 substitution layer, used in even rounds and in the
// final key-addition round. It is the inverse of sl1.
func sl2(x block) block {
	var y block
	for i := 0; i < BlockSize; i += 4 {
		y[i] = sb3[x[i]]
		y[i+1] = sb4[x[i+1]]
		y[i+2] = sb1[x[i+2]]
		y[i+3] = sb2[x[i+3]]
	}
	return y
}

// diffuse is the diffusion layer A: each output byte is the XOR of
// seven input bytes per the fixed binary matrix of RFC 5794 section
// 2.4.3. A is an involution: diffuse(diffuse(x)) == x.
func diffuse(x block) block {
	var y block
	y[0] = x[3] ^ x[4] ^ x[6] ^ x[8] ^ x[9] ^ x[13] ^ x[14]
	y[1] = x[2] ^ x[5] ^ x[7] ^ x[8] ^ x[9] ^ x[12] ^ x[15]
	y[2] = x[1] ^ x[4] ^ x[6] ^ x[10] ^ x[11] ^ x[12] ^ x[15]
	y[3] = x[0] ^ x[5] ^ x[7] ^ x[10] ^ x[11] ^ x[13] ^ x[14]
	y[4] = x[0] ^ x[2] ^ x[5] ^ x[8] ^ x[11] ^ x[14] ^ x[15]
	y[5] = x[1] ^ x[3] ^ x[4] ^ x[9] ^ x[10] ^ x[14] ^ x[15]
	y[6] = x[0] ^ x[2] ^ x[7] ^ x[9] ^ x[10] ^ x[12] ^ x[13]
	y[7] = x[1] ^ x[3] ^ x[6] ^ x[8] ^ x[11] ^ x[12] ^ x[13]
	y[8] = x[0] ^ x[1] ^ x[4] ^ x[7] ^ x[10] ^ x[13] ^ x[15]
	y[9] = x[0] ^ x[1] ^ x[5] ^ x[6] ^ x[11] ^ x[12] ^ x[14]
	y[10] = x[2] ^ x[3] ^ x[5] ^ x[6] ^ x[8] ^ x[13] ^ x[15]
	y[11] = x[2] ^ x[3] ^ x[4] ^ x[7] ^ x[9] ^ x[12] ^ x[14]
	y[12] = x[1] ^ x[2] ^ x[6] ^ x[7] ^ x[9] ^ x[11] ^ x[12]
	y[13] = x[0] ^ x[3] ^ x[6] ^ x[7] ^ x[8] ^ x[10] ^ x[13]
	y[14] = x[0] ^ x[3] ^ x[4] ^ x[5] ^ x[9] ^ x[11] ^ x[14]
	y[15] = x[1] ^ x[2] ^ x[4] ^ x[5] ^ x[8] ^ x[10] ^ x[15]
	return y
}

// xorBlock XORs two blocks byte-wise.
func xorBlock(a, b block) block {
	var y block
	for i := range y {
		y[i] = a[i] ^ b[i]
	}
	return y
}

// fo is the odd round function FO(D, RK) = A(SL1(D ^ RK)).
func fo(d, rk block) block {
	return diffuse(sl1(xorBlock(d, rk)))
}

// fe is the even round function FE(D, RK) = A(SL2(D ^ RK)).
func fe(d, rk block) block {
	return diffuse(sl2(xorBlock(d, rk)))
}
