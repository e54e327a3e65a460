// Package sumfile reads and writes checksum lists in the two-column layout sha256sum uses, and
// hashes many targets at once on a bounded pool of workers.
package sumfile

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"github.com/p7r0x7/fingerprint"
	"github.com/pkg/errors"
	"io"
	"strconv"
	"strings"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// Entry is one line of a checksum list.
type Entry struct {
	Digest [fingerprint.Size]byte
	Path   string
	Binary bool /* Written as `*PATH`; kept only so lines round-trip. */
}

// MalformedLineError reports a line of a checksum list that could not be parsed.
type MalformedLineError struct {
	Line   int
	Reason string
}

func (e *MalformedLineError) Error() string {
	return "sumfile: line " + strconv.Itoa(e.Line) + ": " + e.Reason
}

var b64Size = base64.StdEncoding.EncodedLen(fingerprint.Size)

// ParseLine parses `DIGEST  PATH` or `DIGEST *PATH`. DIGEST may be hex, in either case, or
// standard base64. A leading backslash marks a path with `\\` and `\n` escapes.
func ParseLine(line string) (Entry, error) {
	var e Entry
	escaped := strings.HasPrefix(line, `\`)
	if escaped {
		line = line[1:]
	}

	sep := strings.IndexByte(line, ' ')
	if sep < 0 || len(line) < sep+3 {
		return e, &MalformedLineError{Reason: "expected DIGEST and PATH separated by two columns"}
	}
	digest, mode, path := line[:sep], line[sep+1], line[sep+2:]
	switch mode {
	case ' ':
	case '*':
		e.Binary = true
	default:
		return e, &MalformedLineError{Reason: "unknown mode character " + strconv.QuoteRune(rune(mode))}
	}

	var raw []byte
	var err error
	switch len(digest) {
	case fingerprint.HexSize:
		raw, err = hex.DecodeString(digest)
	case b64Size:
		raw, err = base64.StdEncoding.DecodeString(digest)
	default:
		return e, &MalformedLineError{Reason: "digest of " + strconv.Itoa(len(digest)) + " characters"}
	}
	if err != nil {
		return e, &MalformedLineError{Reason: err.Error()}
	}
	copy(e.Digest[:], raw)

	if escaped {
		if path, err = unescape(path); err != nil {
			return e, &MalformedLineError{Reason: err.Error()}
		}
	}
	e.Path = path
	return e, nil
}

// String renders e the way ParseLine reads it, in hex.
func (e Entry) String() string {
	var b strings.Builder
	path := e.Path
	if strings.ContainsAny(path, "\\\n") {
		b.WriteByte('\\')
		path = strings.NewReplacer(`\`, `\\`, "\n", `\n`).Replace(path)
	}
	b.WriteString(hex.EncodeToString(e.Digest[:]))
	if e.Binary {
		b.WriteString(" *")
	} else {
		b.WriteString("  ")
	}
	b.WriteString(path)
	return b.String()
}

func unescape(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i++; i == len(s) {
			return "", errors.New("trailing backslash in path")
		}
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		default:
			return "", errors.New("unknown escape \\" + string(s[i]))
		}
	}
	return b.String(), nil
}

// Parse reads a checksum list. Blank lines are skipped. Lines that do not parse are returned in
// malformed, numbered from 1, and do not stop the scan; err is set only if reading r fails.
func Parse(r io.Reader) (entries []Entry, malformed []error, err error) {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		e, err := ParseLine(text)
		if err != nil {
			var m *MalformedLineError
			if errors.As(err, &m) {
				m.Line = line
			}
			malformed = append(malformed, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, malformed, errors.WithStack(sc.Err())
}
