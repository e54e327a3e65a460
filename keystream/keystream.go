// Package keystream XORs messages with a keystream. Every transform here is its own inverse:
// applying it twice with the same key returns the original message, so there is no separate
// decrypt. It shares nothing with the digest pipeline.
package keystream

import (
	"crypto/cipher"
	"github.com/aead/chacha20/chacha"
	"github.com/pkg/errors"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

var (
	ErrEmptyKey  = errors.New("keystream: key must not be empty")
	ErrNonceSize = errors.New("keystream: nonce must be 8, 12, or 24 bytes")
	ErrOffset    = errors.New("keystream: offset is past the end of the keystream")
)

// Transform returns msg with byte i XORed against key[i%len(key)].
func Transform(msg, key []byte) ([]byte, error) {
	r, err := NewRepeating(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(msg))
	r.XORKeyStream(out, msg)
	return out, nil
}

// Repeating is a cipher.Stream cycling through a fixed key. It remembers its position, so a long
// message may be fed through in pieces.
type Repeating struct {
	key []byte
	pos int
}

var _ cipher.Stream = (*Repeating)(nil)

// NewRepeating returns a Repeating stream positioned at the start of key. The key is copied.
func NewRepeating(key []byte) (*Repeating, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &Repeating{key: append([]byte(nil), key...)}, nil
}

// XORKeyStream implements cipher.Stream. dst and src may overlap entirely.
func (r *Repeating) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("keystream: output smaller than input")
	}
	for i, v := range src {
		dst[i] = v ^ r.key[r.pos]
		if r.pos++; r.pos == len(r.key) {
			r.pos = 0
		}
	}
}

// ChaCha returns a ChaCha20 stream over key and nonce positioned offset bytes in. A 24-byte nonce
// selects XChaCha20 and a 12-byte nonce the IETF variant, whose 32-bit block counter limits offset
// to 256 GiB.
func ChaCha(key [32]byte, nonce []byte, offset uint64) (cipher.Stream, error) {
	switch len(nonce) {
	case chacha.NonceSize, chacha.INonceSize, chacha.XNonceSize:
	default:
		return nil, ErrNonceSize
	}
	if len(nonce) == chacha.INonceSize && offset>>6 > 1<<32-1 {
		return nil, ErrOffset
	}

	c, err := chacha.NewCipher(nonce, key[:], 20)
	if err != nil {
		return nil, errors.Wrap(err, "keystream")
	}
	c.SetCounter(offset >> 6)
	/* Discards the head of the first block so output starts at exactly offset. */
	skip := make([]byte, offset&63)
	c.XORKeyStream(skip, skip)
	return c, nil
}
