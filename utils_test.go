package aria

import (
	"bytes"
	"testing"
)

func TestRotateIdentities(t *testing.T) {
	for _, size := range []int{1, 2, 7, 16, 32} {
		x := make([]byte, size)
		for i := range x {
			x[i] = byte(i*59 + 3)
		}
		bits := size * 8
		for _, n := range []int{0, bits, 2 * bits} {
			if got := rotateLeft(x, n); !bytes.Equal(got, x) {
				t.Errorf("rotateLeft(%d bytes, %d) = %x, want input unchanged", size, n, got)
			}
		}
		for n := 0; n <= bits; n++ {
			if got := rotateRight(rotateLeft(x, n), n); !bytes.Equal(got, x) {
				t.Errorf("rotateRight(rotateLeft(x, %d), %d) != x for %d bytes", n, n, size)
			}
		}
	}
}

func TestRotateKnownValues(t *testing.T) {
	cases := []struct {
		in   []byte
		n    int
		want []byte
	}{
		{[]byte{0x80, 0x00}, 1, []byte{0x00, 0x01}},
		{[]byte{0x01, 0x00}, 8, []byte{0x00, 0x01}},
		{[]byte{0x12, 0x34, 0x56}, 4, []byte{0x23, 0x45, 0x61}},
		{[]byte{0x80}, 1, []byte{0x01}},
	}
	for _, tc := range cases {
		if got := rotateLeft(tc.in, tc.n); !bytes.Equal(got, tc.want) {
			t.Errorf("rotateLeft(%x, %d) = %x, want %x", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestRotateReturnsCopy(t *testing.T) {
	x := []byte{0xab, 0xcd}
	got := rotateLeft(x, 0)
	got[0] = 0
	if x[0] != 0xab {
		t.Error("rotateLeft aliased its input")
	}
}

func TestXorBytes(t *testing.T) {
	x := []byte{0x0f, 0xf0, 0xaa, 0x55}
	y := []byte{0xff, 0xff, 0xff, 0xff}
	if got, want := xorBytes(x, y), []byte{0xf0, 0x0f, 0x55, 0xaa}; !bytes.Equal(got, want) {
		t.Errorf("xorBytes = %x, want %x", got, want)
	}

	// A shorter second operand leaves the tail of the first unchanged.
	short := []byte{0xff, 0xff}
	if got, want := xorBytes(x, short), []byte{0xf0, 0x0f, 0xaa, 0x55}; !bytes.Equal(got, want) {
		t.Errorf("xorBytes with short operand = %x, want %x", got, want)
	}

	if got := xorBytes(x, nil); !bytes.Equal(got, x) {
		t.Errorf("xorBytes with empty operand = %x, want %x", got, x)
	}
}
