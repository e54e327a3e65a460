package fingerprint

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Schedule is the per-block message schedule feeding one word into each round.
type Schedule [rounds]uint32

// expand copies the block into the first sixteen entries and derives the remaining 48 from them.
// It depends on nothing but the block.
func expand(b *Block) (w Schedule) {
	copy(w[:wordsPerBlock], b[:])
	for t := wordsPerBlock; t < rounds; t++ {
		w[t] = sigma1(w[t-2]) + w[t-7] + sigma0(w[t-15]) + w[t-16]
	}
	return w
}
