package main

import (
	"crypto/cipher"
	"encoding/hex"
	. "fmt"
	"github.com/p7r0x7/fingerprint/keystream"
	"github.com/pion/logging"
	"github.com/pkg/errors"
	. "github.com/spf13/pflag"
	"io"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure = 0, 1

var pKey, pNonce = "", ""
var pOffset uint64
var pHelp, pChaCha, pQuiet bool

func init() {
	BoolVarP(&pHelp, "help", "h", false, "print this help menu"+n)
	BoolVar(&pChaCha, "chacha", false,
		"treat KEY as 64 hex digits and XOR with a ChaCha20 keystream"+n+
			"instead of repeating KEY")
	StringVarP(&pKey, "key", "k", "", "the key (required)")
	StringVar(&pNonce, "nonce", "0000000000000000",
		"ChaCha20 nonce as 16, 24, or 48 hex digits")
	Uint64Var(&pOffset, "offset", 0, "start the ChaCha20 keystream this many bytes in")
	BoolVarP(&pQuiet, "quiet", "q", false, "suppress error messages")
	CommandLine.SortFlags = false
}

func main() {
	Parse()
	os.Exit(program())
}

func help() {
	Fprint(os.Stderr, "XOR a message with a keystream; running it again undoes it."+n+n+
		"Usage:"+n+
		"  keyxor -k KEY [PATH] > OUT"+n+
		"  keyxor --chacha -k HEXKEY [--nonce HEX] [--offset N] [PATH] > OUT"+n+n+
		"Options:"+n)
	PrintDefaults()
	Fprint(os.Stderr, n+"Reads ", os.Stdin.Name(), " when PATH is absent or `-`."+n)
}

// This program applies the keystream transform to one message and writes the result to stdout.
func program() int {
	f := logging.NewDefaultLoggerFactory()
	f.Writer = os.Stderr
	if pQuiet {
		f.DefaultLogLevel = logging.LogLevelDisabled
	}
	log := f.NewLogger("keyxor")

	if pHelp || pKey == "" || NArg() > 1 {
		help()
		if pHelp {
			return success
		}
		return failure
	}

	in := io.Reader(os.Stdin)
	if NArg() == 1 && Arg(0) != "-" {
		file, err := os.Open(Arg(0))
		if err != nil {
			log.Errorf("%v", err)
			return failure
		}
		defer file.Close()
		in = file
	}

	if err := transform(in, os.Stdout); err != nil {
		log.Errorf("%v", err)
		return failure
	}
	return success
}

// transform copies in to out through the keystream the flags select.
func transform(in io.Reader, out io.Writer) error {
	s, err := stream()
	if err != nil {
		return err
	}
	_, err = io.Copy(out, cipher.StreamReader{S: s, R: in})
	return errors.WithStack(err)
}

func stream() (cipher.Stream, error) {
	if !pChaCha {
		r, err := keystream.NewRepeating([]byte(pKey))
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	var key [32]byte
	raw, err := hex.DecodeString(pKey)
	if err != nil || len(raw) != len(key) {
		return nil, errors.New("keyxor: --chacha needs a key of exactly 64 hex digits")
	}
	copy(key[:], raw)
	nonce, err := hex.DecodeString(pNonce)
	if err != nil {
		return nil, errors.Wrap(err, "keyxor: nonce")
	}
	return keystream.ChaCha(key, nonce, pOffset)
}
