package main

import (
	"encoding/binary"
	. "fmt"
	"github.com/p7r0x7/fingerprint"
	"github.com/zeebo/pcg"
	"math/bits"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const ints = 5e4

// meanBias returns the average distance, as a percentage of the ideal, between how often each
// digest bit was set and half of the digests.
func meanBias(tally *[fingerprint.Size * 8]int) float64 {
	var total int
	for _, v := range tally {
		if v -= ints / 2; v < 0 {
			v = -v
		}
		total += v
	}
	return float64(total) / float64(len(tally)) / (ints / 2) * 100
}

func count(tally *[fingerprint.Size * 8]int, sum [fingerprint.Size]byte) {
	for i, b := range sum {
		for ; b != 0; b &= b - 1 {
			tally[i<<3+bits.TrailingZeros8(b)]++
		}
	}
}

func monobit() {
	var integers, random [fingerprint.Size * 8]int
	num, msg := make([]byte, 4), make([]byte, 1024)
	for i := uint32(ints); i > 0; i-- {
		binary.BigEndian.PutUint32(num, i)
		sum, _ := fingerprint.Sum(num)
		count(&integers, sum)

		for j := 0; j < len(msg); j += 4 {
			binary.LittleEndian.PutUint32(msg[j:], pcg.Uint32())
		}
		sum, _ = fingerprint.Sum(msg)
		count(&random, sum)
	}
	Printf("Integer input Monobit test:  %5.3f%%\n", meanBias(&integers))
	Printf("Random input Monobit test:   %5.3f%%\n", meanBias(&random))
}
