package fingerprint

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"strconv"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Block is one 512-bit slice of a padded message as sixteen big-endian words.
type Block [wordsPerBlock]uint32

// Split partitions a padded message into consecutive blocks, preserving byte order.
func Split(padded []byte) ([]Block, error) {
	if len(padded)%BlockSize != 0 {
		/* Pad never produces this; reaching it means a caller built its own padding. */
		return nil, errors.WithStack(&InvalidInputError{
			Reason: "padded length " + strconv.Itoa(len(padded)) + " is not a multiple of " +
				strconv.Itoa(BlockSize)})
	}
	blocks := make([]Block, len(padded)/BlockSize)
	for i := range blocks {
		decodeBlock(&blocks[i], padded[i*BlockSize:])
	}
	return blocks, nil
}

func decodeBlock(b *Block, p []byte) {
	_ = p[BlockSize-1] /* Bounds check eliminated. */
	for i := range b {
		b[i] = binary.BigEndian.Uint32(p[i<<2:])
	}
}
