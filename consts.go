package fingerprint

//go:generate go run ./consts_gen -o table.go

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const (
	// Size is the length of a digest in bytes.
	Size = 32
	// HexSize is the length of a digest rendered as lowercase hexadecimal.
	HexSize = Size * 2
	// BlockSize is the number of message bytes folded into the state per compression.
	BlockSize = 64

	rounds        = 64
	wordsPerBlock = BlockSize / 4
	lengthBytes   = 8 /* Big-endian bit count closing every padded message */
	/* The bit count must fit the 64-bit length field, so messages top out just below 2^61 bytes. */
	maxBytes = 1<<61 - 1
)

/* iv and k live in table.go, which consts_gen derives from the square and cube roots of the first
primes. Neither is ever written to after init; callers only ever see copies. */

// RoundConstants returns a copy of the 64 standard round constants.
func RoundConstants() [rounds]uint32 { return k }

// InitialState returns the standard initial hash state H(0).
func InitialState() State { return State(iv) }
