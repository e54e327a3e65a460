package main

import (
	"bytes"
	"github.com/p7r0x7/fingerprint/sumfile"
	"github.com/zeebo/assert"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	emptyHex = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	abcHex   = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	zerosHex = "8dbe5f139fd946d4cd84e8cc612cd9f68cbc87e394457884acc0c5dad56dd8dd" /* 4e6 zero bytes */
)

func reset() {
	yell, purp, und, zero = "", "", "", ""
	pNoCodes, pQuiet, pStrict, pString, pBase64, pRaw, pTime = true, false, false, false, false, false, false
	pJobs, warnings = 2, 0
	log = newLogger()
}

func read(t *testing.T, j sumfile.Job) string {
	t.Helper()
	r, err := j.Open()
	assert.NoError(t, err)
	b, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.NoError(t, r.Close())
	return string(b)
}

func TestJob_StdinClaimedOnce(t *testing.T) {
	in := &claim{r: strings.NewReader("abc")}
	first := job("-", false, in)
	literal := job("-", true, in)
	second := job("-", false, in)
	byName := job(os.Stdin.Name(), false, in)

	assert.Equal(t, read(t, first), "abc")
	assert.Equal(t, read(t, literal), "-")
	assert.Equal(t, read(t, second), "")
	assert.Equal(t, read(t, byName), "")
}

func TestSum_RepeatedStdin(t *testing.T) {
	reset()
	for i := 0; i < 5; i++ {
		out := new(bytes.Buffer)
		code := sum([]string{"-", "-"}, bytes.NewReader(make([]byte, 4e6)), out)
		assert.Equal(t, code, success)
		assert.Equal(t, out.String(), zerosHex+"  -\n"+emptyHex+"  -\n")
	}
}

func TestSum_Strings(t *testing.T) {
	reset()
	pString = true
	out := new(bytes.Buffer)
	assert.Equal(t, sum([]string{"abc", ""}, strings.NewReader(""), out), success)
	assert.Equal(t, out.String(), abcHex+`  "abc"`+"\n"+emptyHex+`  ""`+"\n")
}

func TestSum_Missing(t *testing.T) {
	reset()
	out := new(bytes.Buffer)
	code := sum([]string{filepath.Join(t.TempDir(), "missing")}, strings.NewReader(""), out)
	assert.Equal(t, code, failure)
	assert.Equal(t, warnings, 1)
	assert.Equal(t, out.Len(), 0)
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	reset()
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "abc")
	b := writeFile(t, dir, "b", "xyz")
	c := filepath.Join(dir, "c")
	list := writeFile(t, dir, "list", abcHex+"  "+a+"\n"+
		abcHex+"  "+b+"\n"+
		abcHex+"  "+c+"\n"+
		"garbage\n")

	out := new(bytes.Buffer)
	assert.Equal(t, check(list, strings.NewReader(""), out), failure)
	assert.Equal(t, out.String(), a+": OK\n"+b+": FAILED\n"+c+": FAILED open or read\n")
	assert.Equal(t, warnings, 2) /* The malformed line and the unreadable file. */

	reset()
	pQuiet = true
	out.Reset()
	assert.Equal(t, check(list, strings.NewReader(""), out), failure)
	assert.Equal(t, out.String(), b+": FAILED\n"+c+": FAILED open or read\n")
}

func TestCheck_Success(t *testing.T) {
	reset()
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "abc")
	list := writeFile(t, dir, "list", abcHex+"  "+a+"\n"+emptyHex+"  -\n")

	out := new(bytes.Buffer)
	assert.Equal(t, check(list, strings.NewReader(""), out), success)
	assert.Equal(t, out.String(), a+": OK\n-: OK\n")

	/* The list itself claims stdin, so a listed `-` reads nothing. */
	out.Reset()
	listed := abcHex + "  " + a + "\n" + emptyHex + "  -\n"
	assert.Equal(t, check("-", strings.NewReader(listed), out), success)
	assert.Equal(t, out.String(), a+": OK\n-: OK\n")
}

func TestCheck_EmptyList(t *testing.T) {
	reset()
	out := new(bytes.Buffer)
	assert.Equal(t, check("-", strings.NewReader("\n\n"), out), failure)
	assert.Equal(t, out.Len(), 0)
}
