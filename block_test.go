package fingerprint

import (
	"github.com/pkg/errors"
	"github.com/zeebo/assert"
	"testing"
)

func TestSplit(t *testing.T) {
	padded := make([]byte, 3*BlockSize)
	for i := range padded {
		padded[i] = byte(i)
	}
	blocks, err := Split(padded)
	assert.NoError(t, err)
	assert.Equal(t, len(blocks), 3)

	/* Big-endian words, in byte order. */
	assert.Equal(t, blocks[0][0], uint32(0x00010203))
	assert.Equal(t, blocks[0][15], uint32(0x3c3d3e3f))
	assert.Equal(t, blocks[1][0], uint32(0x40414243))
	assert.Equal(t, blocks[2][15], uint32(0xbcbdbebf))
}

func TestSplit_Misaligned(t *testing.T) {
	for _, n := range []int{1, 63, 65, 127} {
		_, err := Split(make([]byte, n))
		var invalid *InvalidInputError
		assert.That(t, errors.As(err, &invalid))
	}

	blocks, err := Split(nil)
	assert.NoError(t, err)
	assert.Equal(t, len(blocks), 0)
}

func TestExpand(t *testing.T) {
	padded, err := Pad([]byte("abc"))
	assert.NoError(t, err)
	blocks, err := Split(padded)
	assert.NoError(t, err)

	w := expand(&blocks[0])
	assert.Equal(t, w[0], uint32(0x61626380))
	assert.Equal(t, w[15], uint32(0x00000018))
	assert.Equal(t, w[16], uint32(0x61626380))
	assert.Equal(t, w[17], uint32(0x000f0000))
	assert.Equal(t, w[18], uint32(0x7da86405))
	assert.Equal(t, w[19], uint32(0x600003c6))
	assert.Equal(t, w[63], uint32(0x12b1edeb))

	/* Pure: the same block always expands identically. */
	assert.Equal(t, expand(&blocks[0]), w)
}
