package main

import (
	"github.com/p7r0x7/fingerprint"
	"github.com/pkg/errors"
	"github.com/zeebo/assert"
	"math/big"
	"os"
	"path/filepath"
	"testing"
)

func TestDerive(t *testing.T) {
	iv, k := derive()
	assert.Equal(t, fingerprint.State(iv), fingerprint.InitialState())
	assert.Equal(t, k, fingerprint.RoundConstants())
}

func TestTableUpToDate(t *testing.T) {
	table, err := os.ReadFile("../table.go")
	assert.NoError(t, err)
	assert.Equal(t, string(table), render(derive()))
}

func TestIcbrt(t *testing.T) {
	for _, n := range []int64{1, 7, 8, 9, 26, 27, 28, 1000, 999999, 1 << 62} {
		r := icbrt(big.NewInt(n))
		cube := new(big.Int).Exp(r, big.NewInt(3), nil)
		next := new(big.Int).Add(r, big.NewInt(1))
		next.Exp(next, big.NewInt(3), nil)
		assert.That(t, cube.Cmp(big.NewInt(n)) <= 0)
		assert.That(t, next.Cmp(big.NewInt(n)) > 0)
	}
}

func TestPrimes(t *testing.T) {
	list := primes(8)
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19}
	for i := range want {
		assert.Equal(t, list[i].Int64(), want[i])
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.go")
	count, err := write(path)
	assert.NoError(t, err)

	got, err := os.ReadFile(path)
	assert.NoError(t, err)
	want, err := os.ReadFile("../table.go")
	assert.NoError(t, err)
	assert.Equal(t, count, len(got))
	assert.Equal(t, string(got), string(want))

	_, err = write(filepath.Join(t.TempDir(), "missing", "table.go"))
	assert.That(t, errors.Is(err, os.ErrNotExist))
}
