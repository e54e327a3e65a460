package fingerprint

import (
	"fmt"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"testing"
)

var sizes = []int{0, 55, 64, 1 << 10, 64 << 10}

func BenchmarkHex(b *testing.B) {
	for _, size := range sizes {
		msg := make([]byte, size)
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := b.N; i > 0; i-- {
				_, _ = Hex(msg)
			}
		})
	}
}

func BenchmarkDigest(b *testing.B) {
	for _, size := range sizes {
		msg, sum := make([]byte, size), make([]byte, 0, Size)
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			d := New()
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := b.N; i > 0; i-- {
				d.Reset()
				_, _ = d.Write(msg)
				d.Sum(sum[:0])
			}
		})
	}
}

func BenchmarkCompress(b *testing.B) {
	var blk Block
	s := InitialState()
	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for i := b.N; i > 0; i-- {
		s, _ = s.compress(&blk, k[:])
	}
}

func BenchmarkBlake3(b *testing.B) {
	h, msg := blake3.New(), make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Reset()
		_, _ = h.Write(msg)
		h.Sum(nil)
	}
}

func BenchmarkXXH3(b *testing.B) {
	msg := make([]byte, 1<<10)
	b.SetBytes(1 << 10)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xxh3.Hash(msg)
	}
}
