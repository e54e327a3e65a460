package fingerprint

import . "math/bits"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// The word-level functions below are shared by the message scheduler and the compressor. Every
// combination of bit strings is an XOR; modular addition only ever happens in their callers.

func rotr(x uint32, n int) uint32 { return RotateLeft32(x, -n) }

func shr(x uint32, n uint) uint32 { return x >> n }

// ch selects, bit by bit, f where e is set and g where it is not.
func ch(e, f, g uint32) uint32 { return e&f ^ ^e&g }

// maj is the per-bit majority vote of a, b and c.
func maj(a, b, c uint32) uint32 { return a&b ^ a&c ^ b&c }

func sigma0(x uint32) uint32 { return rotr(x, 7) ^ rotr(x, 18) ^ shr(x, 3) }

func sigma1(x uint32) uint32 { return rotr(x, 17) ^ rotr(x, 19) ^ shr(x, 10) }

func bigSigma0(x uint32) uint32 { return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22) }

func bigSigma1(x uint32) uint32 { return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25) }
