package fingerprint

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/zeebo/assert"
	"testing"
)

func TestPad(t *testing.T) {
	for n := 0; n <= 3*BlockSize; n++ {
		msg := bytes.Repeat([]byte{0xa5}, n)
		padded, err := Pad(msg)
		assert.NoError(t, err)

		/* Smallest multiple of 512 bits with room for the 1-bit and the 64-bit length. */
		want := (n*8 + 65 + 511) / 512 * 64
		assert.Equal(t, len(padded), want)
		assert.That(t, bytes.Equal(padded[:n], msg))
		assert.Equal(t, padded[n], byte(0x80))
		for _, v := range padded[n+1 : len(padded)-lengthBytes] {
			assert.Equal(t, v, byte(0))
		}

		bits, err := LengthField(padded)
		assert.NoError(t, err)
		assert.Equal(t, bits, uint64(n)*8)
	}
}

func TestPad_DoesNotAlias(t *testing.T) {
	msg := make([]byte, 3, BlockSize)
	copy(msg, "abc")
	padded, err := Pad(msg)
	assert.NoError(t, err)
	padded[0] = 'x'
	assert.Equal(t, string(msg), "abc")
	assert.Equal(t, string(msg[:cap(msg)][3:4]), "\x00")
}

func TestPadding_Boundaries(t *testing.T) {
	cases := []struct {
		n    uint64
		size int
	}{
		{0, 64}, {55, 9}, {56, 72}, {63, 65}, {64, 64}, {119, 9}, {120, 72},
		{maxBytes, 65},
	}
	for _, c := range cases {
		tail, err := padding(c.n)
		assert.NoError(t, err)
		assert.Equal(t, len(tail), c.size)
		assert.Equal(t, (c.n+uint64(len(tail)))%BlockSize, uint64(0))
	}
}

func TestPadding_Overflow(t *testing.T) {
	for _, n := range []uint64{maxBytes + 1, 1 << 62, 1<<64 - 1} {
		_, err := padding(n)
		var overflow *LengthOverflowError
		assert.That(t, errors.As(err, &overflow))
		assert.Equal(t, overflow.Bytes, n)
	}
}

func TestLengthField_Misaligned(t *testing.T) {
	for _, n := range []int{0, 1, 63, 65} {
		_, err := LengthField(make([]byte, n))
		var invalid *InvalidInputError
		assert.That(t, errors.As(err, &invalid))
	}
}
