package main

import (
	"fmt"
	"github.com/spf13/pflag"
	"math/big"
	"os"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
/* Writes table.go: the initial state from the first 32 fractional bits of the square roots of the
first 8 primes, and the round constants from the cube roots of the first 64. */

func main() {
	out := pflag.StringP("out", "o", "table.go", "file to (over)write")
	pflag.Parse()

	count, err := write(*out)
	if err != nil {
		fmt.Println("Failed:", *out, "could not be written:", err)
		os.Exit(1)
	}
	fmt.Println(count, "bytes written successfully to", *out)
}

// write renders the table once and writes it to path, returning its length.
func write(path string) (int, error) {
	table := render(derive())
	return len(table), os.WriteFile(path, []byte(table), 0666)
}

func primes(n int) []*big.Int {
	list := make([]*big.Int, 0, n)
	one := big.NewInt(1)
	for i := big.NewInt(2); len(list) < n; i.Add(i, one) {
		if i.ProbablyPrime(20) {
			list = append(list, new(big.Int).Set(i))
		}
	}
	return list
}

func derive() (iv [8]uint32, k [64]uint32) {
	mask := big.NewInt(0xffffffff)
	for i, p := range primes(len(k)) {
		/* floor(cbrt(p * 2^96)) keeps 32 fractional bits of cbrt(p); the mask drops the integer part. */
		root := icbrt(new(big.Int).Lsh(p, 96))
		k[i] = uint32(root.And(root, mask).Uint64())
		if i < len(iv) {
			root = new(big.Int).Sqrt(new(big.Int).Lsh(p, 64))
			iv[i] = uint32(root.And(root, mask).Uint64())
		}
	}
	return iv, k
}

// icbrt returns floor(cbrt(n)) for n > 0 by Newton's method from an overestimate.
func icbrt(n *big.Int) *big.Int {
	three := big.NewInt(3)
	x := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()+2)/3)
	for y := new(big.Int); ; x.Set(y) {
		y.Mul(x, x)
		y.Quo(n, y)
		y.Add(y, new(big.Int).Lsh(x, 1))
		y.Quo(y, three)
		if y.Cmp(x) >= 0 {
			return x
		}
	}
}

func render(iv [8]uint32, k [64]uint32) string {
	var str strings.Builder
	str.WriteString("// Code generated by consts_gen; DO NOT EDIT.\n\npackage fingerprint\n\n")
	fmt.Fprintf(&str, "var iv = [%d]uint32{\n", len(iv))
	row(&str, iv[:])
	fmt.Fprintf(&str, "}\n\nvar k = [%d]uint32{\n", len(k))
	for i := 0; i < len(k); i += 8 {
		row(&str, k[i:i+8])
	}
	str.WriteString("}\n")
	return str.String()
}

func row(str *strings.Builder, words []uint32) {
	str.WriteString("\t")
	for i, w := range words {
		if i > 0 {
			str.WriteString(" ")
		}
		fmt.Fprintf(str, "0x%08x,", w)
	}
	str.WriteString("\n")
}
