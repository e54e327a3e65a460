package main

import (
	"encoding/base64"
	"encoding/hex"
	. "fmt"
	"github.com/p7r0x7/fingerprint/sumfile"
	"github.com/p7r0x7/vainpath"
	"github.com/pion/logging"
	. "github.com/spf13/pflag"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"
	"unicode/utf8"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

const n = "\n"
const success, failure = 0, 1

var warnings = 0
var log logging.LeveledLogger

func main() {
	parseFlags()
	os.Exit(program())
}

// help prints a usage menu. To consistently render this menu in most terminal windows, its content
// should be no wider than 80 columns.
func help() {
	origin, err := os.Executable()
	if err != nil {
		origin = "fpsum" /* Default binary name */
	} else {
		origin = filepath.Base(origin)
	}
	name := vainpath.Trim(origin, "…", 12)
	spaces := strings.Repeat(" ", utf8.RuneCountInString(name)+3)
	Fprint(os.Stderr, yell, "Print or check 256-bit fingerprint digests.", zero, n+n+
		"Usage:"+n+
		"  ", name, " [-h]"+n,
		spaces, "[-bt] [-j <int>] [--quiet|no-codes] [--strict|raw] -|PATH..."+n,
		spaces, "[-bt] [-j <int>] [--quiet|no-codes] [--strict|raw] -s STRING..."+n,
		spaces, "[-j <int>] [--quiet|no-codes] [--strict] -c FILE"+n+n+
			"Options:"+n)
	PrintDefaults()
	name = vainpath.Trim(origin, "…", 15)
	Fprint(os.Stderr, n+"Order of arguments placed after `", name, "` does not matter unless `--` is"+
		n+"specified, signaling the end of parsed flags. Long-form flag equivalents are"+n+
		"above. `-` is treated as a reference to ", os.Stdin.Name(), " on this platform."+n)
}

func newLogger() logging.LeveledLogger {
	f := logging.NewDefaultLoggerFactory()
	f.Writer = os.Stderr
	switch {
	case pQuiet || pRaw:
		f.DefaultLogLevel = logging.LogLevelDisabled
	case pDebug:
		f.DefaultLogLevel = logging.LogLevelDebug
	default:
		f.DefaultLogLevel = logging.LogLevelWarn
	}
	return f.NewLogger("fpsum")
}

// This program is a command-line interface for fingerprint: it hashes an unlimited number of files
// or strings, or verifies a checksum list, as required by the command-line operator.
func program() int {
	log = newLogger()
	if consoleErr != nil {
		log.Debugf("formatting codes disabled: %v", consoleErr)
	}
	if pDebug {
		if cf, err := os.Create("cpu.prof"); err != nil {
			log.Warnf("cpu profile: %v", err)
		} else if err = pprof.StartCPUProfile(cf); err == nil {
			defer pprof.StopCPUProfile()
		}
	}

	if pHelp || NArg() == 0 && pCheck == "" {
		help()
		return success
	}
	if pCheck != "" {
		return check(pCheck, os.Stdin, os.Stdout)
	}
	return sum(Args(), os.Stdin, os.Stdout)
}

// sum prints the digest of every target to out, in argument order, and returns the exit code.
func sum(targets []string, stdin io.Reader, out io.Writer) int {
	encode := hex.EncodeToString
	if pBase64 {
		encode = base64.StdEncoding.EncodeToString
	}
	in := &claim{r: stdin}
	jobs := make([]sumfile.Job, len(targets))
	for i, target := range targets {
		jobs[i] = job(target, pString, in)
	}
	log.Debugf("hashing %d targets on %d workers", len(jobs), pJobs)

	sumfile.Run(jobs, pJobs, func(dex int, r sumfile.Result) {
		target := jobs[dex].Name
		if r.Err != nil {
			warn(target, r.Err)
			return
		}
		if pRaw {
			out.Write(r.Sum[:])
			return
		}

		delta := ""
		if pTime {
			d := r.Elapsed
			if d.Microseconds() > 99 {
				d = d.Truncate(10 * time.Microsecond)
			}
			delta = " (" + d.String() + ")"
		}
		if pQuiet {
			Fprint(out, encode(r.Sum[:]), n)
		} else if pString {
			Fprint(out, yell, encode(r.Sum[:]), zero, `  "`, target, `"`, delta, n)
		} else if pNoCodes {
			Fprint(out, encode(r.Sum[:]), `  `, filepath.Clean(target), delta, n)
		} else {
			Fprint(out, yell, encode(r.Sum[:]), zero, `  `, und, vainpath.Simplify(target), zero, delta, n)
		}
	})

	if !(pQuiet || pRaw) {
		if warnings == 1 {
			Fprint(os.Stderr, "1 ", purp, "target is a directory or is otherwise inaccessible.", zero, n)
		} else if warnings > 1 {
			Fprint(os.Stderr, warnings, " ", purp, "targets are directories or are otherwise inaccessible.", zero, n)
		}
	}
	if warnings > 0 {
		return failure
	}
	return success
}

// check verifies every target named in the checksum list at path, printing one verdict per line
// to out the way sha256sum --check does. --quiet leaves only the failures.
func check(path string, stdin io.Reader, out io.Writer) int {
	in := &claim{r: stdin}
	list, err := job(path, false, in).Open()
	if err != nil {
		warn(path, err)
		return failure
	}
	entries, malformed, err := sumfile.Parse(list)
	list.Close()
	if err != nil {
		warn(path, err)
		return failure
	}
	for _, e := range malformed {
		warn(path, e)
	}

	jobs := make([]sumfile.Job, len(entries))
	for i, e := range entries {
		jobs[i] = job(e.Path, false, in)
	}
	mismatched, unread := 0, 0
	sumfile.Run(jobs, pJobs, func(dex int, r sumfile.Result) {
		target := entries[dex].Path
		switch {
		case r.Err != nil:
			unread++
			Fprint(out, target, ": ", purp, "FAILED open or read", zero, n)
			warn(target, r.Err)
		case r.Sum != entries[dex].Digest:
			mismatched++
			Fprint(out, target, ": ", purp, "FAILED", zero, n)
			if pStrict {
				panic(target + ": digest mismatch")
			}
		case !pQuiet:
			Fprint(out, target, ": OK", n)
		}
	})

	if !pQuiet {
		if m := len(malformed); m > 0 {
			Fprint(os.Stderr, purp, "WARNING: ", zero, m, " line", plural(m), " improperly formatted", n)
		}
		if unread > 0 {
			Fprint(os.Stderr, purp, "WARNING: ", zero, unread, " listed file", plural(unread), " could not be read", n)
		}
		if mismatched > 0 {
			Fprint(os.Stderr, purp, "WARNING: ", zero, mismatched, " computed checksum", plural(mismatched), " did NOT match", n)
		}
	}
	if mismatched > 0 || warnings > 0 || len(entries) == 0 {
		return failure
	}
	return success
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// claim hands standard input to the first target that names it. Targets are hashed concurrently,
// so every later reference reads nothing rather than racing the first for the same bytes.
type claim struct{ r io.Reader }

func (c *claim) take() io.Reader {
	r := c.r
	c.r = strings.NewReader("")
	return r
}

// job describes how to read target: as the bytes of the string itself, as standard input, or as a
// file. It is called in argument order, which decides who claims stdin.
func job(target string, literal bool, in *claim) sumfile.Job {
	j := sumfile.Job{Name: target}
	switch {
	case literal:
		j.Open = func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(target)), nil }
	case target == "-" || target == os.Stdin.Name():
		/* STDIN should not be closed. */
		r := in.take()
		j.Open = func() (io.ReadCloser, error) { return io.NopCloser(r), nil }
	default:
		j.Open = func() (io.ReadCloser, error) { return os.Open(target) }
	}
	return j
}

func warn(target string, err error) {
	if pStrict {
		panic(err)
	}
	warnings++
	log.Warnf("%s: %v", target, err)
}
