package fingerprint

import "github.com/pkg/errors"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The compression function folds one block into the running state. State is passed and returned
// by value: every computation owns its own copy, and only k, which is never written, is shared.

// compress runs the 64 rounds over blk and returns the state that follows s. k must hold exactly
// one constant per round.
func (s State) compress(blk *Block, k []uint32) (State, error) {
	if len(k) != rounds {
		return s, errors.WithStack(&ConfigurationError{Constants: len(k)})
	}
	k = k[:rounds] /* Bounds check eliminated. */
	w := expand(blk)

	a, b, c, d, e, f, g, h := s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]
	for t := 0; t < rounds; t++ {
		/* Round t draws on constant t and schedule entry t, never a fixed index. */
		t1 := h + bigSigma1(e) + ch(e, f, g) + k[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		h, g, f, e = g, f, e, d+t1
		d, c, b, a = c, b, a, t1+t2
	}

	s[0] += a
	s[1] += b
	s[2] += c
	s[3] += d
	s[4] += e
	s[5] += f
	s[6] += g
	s[7] += h
	return s, nil
}

// fold compresses blocks strictly in message order, threading the state from each into the next.
func fold(s State, blocks []Block, k []uint32) (State, error) {
	var err error
	for i := range blocks {
		if s, err = s.compress(&blocks[i], k); err != nil {
			return State{}, err
		}
	}
	return s, nil
}
