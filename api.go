package fingerprint

import (
	"encoding"
	"encoding/binary"
	"github.com/pkg/errors"
	"hash"
	"math"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// This file contains the Go-specific API: one-shot helpers that run the pipeline over a message
// held in memory, and Digest, which implements the standard hash.Hash interface over a stream.

var (
	_ hash.Hash                  = (*Digest)(nil)
	_ encoding.BinaryMarshaler   = (*Digest)(nil)
	_ encoding.BinaryUnmarshaler = (*Digest)(nil)
)

// Hex returns the digest of msg as 64 lowercase hexadecimal characters.
func Hex(msg []byte) (string, error) {
	s, err := compute(msg)
	if err != nil {
		return "", err
	}
	return s.Hex(), nil
}

// Sum returns the digest of msg as raw bytes.
func Sum(msg []byte) ([Size]byte, error) {
	s, err := compute(msg)
	if err != nil {
		return [Size]byte{}, err
	}
	return s.Bytes(), nil
}

func compute(msg []byte) (State, error) {
	padded, err := Pad(msg)
	if err != nil {
		return State{}, err
	}
	blocks, err := Split(padded)
	if err != nil {
		return State{}, err
	}
	return fold(State(iv), blocks, k[:])
}

// Digest computes a digest incrementally. Its zero value is ready to use with the standard
// constants. A Digest must not be shared between goroutines; distinct Digests are independent.
type Digest struct {
	h     State
	iv    State
	k     []uint32 /* Never written; may alias the package table. */
	len   uint64
	nc    int
	carry [BlockSize]byte
}

// New returns a Digest using the standard initial state and round constants.
func New() *Digest {
	d := &Digest{}
	d.ensure()
	return d
}

// NewVariant returns a Digest seeded with a custom initial state and round-constant table, for
// experimenting with the construction. Its output is not the standard digest unless both tables
// are the standard ones. The table is copied; constants must hold exactly 64 words.
func NewVariant(seed State, constants []uint32) (*Digest, error) {
	if len(constants) != rounds {
		return nil, errors.WithStack(&ConfigurationError{Constants: len(constants)})
	}
	d := &Digest{iv: seed, k: append([]uint32(nil), constants...)}
	d.Reset()
	return d, nil
}

func (d *Digest) ensure() {
	if d.k == nil {
		d.iv, d.k = State(iv), k[:]
		d.h = d.iv
	}
}

// Size implements part of hash.Hash. It returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize implements part of hash.Hash.
func (d *Digest) BlockSize() int { return BlockSize }

// Reset implements part of hash.Hash. The Digest then acts as if newly created with the same
// tables.
func (d *Digest) Reset() {
	d.ensure()
	d.h, d.len, d.nc = d.iv, 0, 0
}

// Write implements part of hash.Hash. It only returns an error if the Digest was built with a
// malformed constant table, which the constructors rule out.
func (d *Digest) Write(buf []byte) (int, error) {
	d.ensure()
	count := len(buf)
	if d.len += uint64(count); d.len < uint64(count) {
		d.len = math.MaxUint64 /* Saturates; Finish reports the overflow. */
	}

	if d.nc > 0 {
		n := copy(d.carry[d.nc:], buf)
		d.nc += n
		buf = buf[n:]
		if d.nc < BlockSize {
			return count, nil
		}
		if err := d.consume(d.carry[:]); err != nil {
			return 0, err
		}
		d.nc = 0
	}
	for len(buf) >= BlockSize {
		if err := d.consume(buf[:BlockSize]); err != nil {
			return 0, err
		}
		buf = buf[BlockSize:]
	}
	d.nc = copy(d.carry[:], buf)
	return count, nil
}

// WriteString is Write for strings.
func (d *Digest) WriteString(s string) (int, error) { return d.Write([]byte(s)) }

func (d *Digest) consume(p []byte) (err error) {
	var b Block
	decodeBlock(&b, p)
	d.h, err = d.h.compress(&b, d.k)
	return err
}

// Finish returns the final state for everything written so far without disturbing the Digest,
// so writing may continue afterward.
func (d *Digest) Finish() (State, error) {
	d.ensure()
	tail, err := padding(d.len)
	if err != nil {
		return State{}, err
	}
	c := *d
	if _, err = c.Write(tail); err != nil {
		return State{}, err
	}
	if c.nc != 0 {
		return State{}, errors.WithStack(&InvalidInputError{Reason: "padding left a partial block"})
	}
	return c.h, nil
}

// Sum implements part of hash.Hash. It appends the digest to b. Because hash.Hash offers no error
// return, it panics with a *LengthOverflowError if 2^61 or more bytes were written; use Finish to
// receive that error instead.
func (d *Digest) Sum(b []byte) []byte {
	s, err := d.Finish()
	if err != nil {
		panic(err)
	}
	sum := s.Bytes()
	return append(b, sum[:]...)
}

// Clone returns an independent copy of d.
func (d *Digest) Clone() *Digest {
	c := *d
	return &c
}

const (
	magic         = "fgp\x01"
	marshaledSize = len(magic) + Size + BlockSize + 8
)

// MarshalBinary snapshots the running state. The tables are not included: restore a snapshot
// into a Digest built with the same tables.
func (d *Digest) MarshalBinary() ([]byte, error) {
	d.ensure()
	b := make([]byte, marshaledSize)
	copy(b, magic)
	sum := d.h.Bytes()
	copy(b[len(magic):], sum[:])
	copy(b[len(magic)+Size:], d.carry[:d.nc])
	binary.BigEndian.PutUint64(b[len(magic)+Size+BlockSize:], d.len)
	return b, nil
}

// UnmarshalBinary restores a snapshot taken by MarshalBinary.
func (d *Digest) UnmarshalBinary(b []byte) error {
	if len(b) != marshaledSize || string(b[:len(magic)]) != magic {
		return errors.WithStack(&InvalidInputError{Reason: "malformed digest state"})
	}
	d.ensure()
	for i := range d.h {
		d.h[i] = binary.BigEndian.Uint32(b[len(magic)+i<<2:])
	}
	d.len = binary.BigEndian.Uint64(b[len(magic)+Size+BlockSize:])
	d.nc = int(d.len % BlockSize)
	copy(d.carry[:], b[len(magic)+Size:len(magic)+Size+d.nc])
	return nil
}
