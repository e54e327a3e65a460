package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// State holds the eight running hash words H0 through H7.
type State [8]uint32

// Bytes renders the state big-endian, H0 first.
func (s State) Bytes() (out [Size]byte) {
	for i, v := range s {
		binary.BigEndian.PutUint32(out[i<<2:], v)
	}
	return out
}

// Hex renders the state as 64 lowercase hexadecimal digits, eight per word, H0 first.
func (s State) Hex() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}
