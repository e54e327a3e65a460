package fingerprint

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"strconv"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Pad returns a copy of msg extended with a single 1-bit, the fewest 0-bits that leave it 64 bits
// short of a block boundary, and the original length in bits as a 64-bit big-endian integer. The
// result is always a whole number of 512-bit blocks.
func Pad(msg []byte) ([]byte, error) {
	tail, err := padding(uint64(len(msg)))
	if err != nil {
		return nil, err
	}
	padded := make([]byte, 0, len(msg)+len(tail))
	return append(append(padded, msg...), tail...), nil
}

// padding builds the bytes that close a message of n bytes. Only the length matters, which lets
// Digest pad a stream it never held in full.
func padding(n uint64) ([]byte, error) {
	if n > maxBytes {
		return nil, errors.WithStack(&LengthOverflowError{Bytes: n})
	}
	/* 0x80 marks the end of the message, then zeroes until the length field ends the block. */
	fill := (BlockSize*2 - lengthBytes - 1 - n%BlockSize) % BlockSize
	tail := make([]byte, 1+fill+lengthBytes)
	tail[0] = 0x80
	binary.BigEndian.PutUint64(tail[1+fill:], n<<3)
	return tail, nil
}

// LengthField decodes the bit length recorded in the last 64 bits of a padded message.
func LengthField(padded []byte) (uint64, error) {
	if len(padded) == 0 || len(padded)%BlockSize != 0 {
		return 0, errors.WithStack(&InvalidInputError{
			Reason: "padded message of " + strconv.Itoa(len(padded)) + " bytes is not block-aligned"})
	}
	return binary.BigEndian.Uint64(padded[len(padded)-lengthBytes:]), nil
}
