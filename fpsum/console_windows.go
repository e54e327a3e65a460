//go:build windows

package main

import (
	"github.com/pkg/errors"
	. "golang.org/x/sys/windows"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// enableVirtualTerminal asks the console behind stdout and stderr to interpret ANSI formatting
// codes. It stops at the first stream that refuses and names it in the error.
func enableVirtualTerminal() error {
	for _, f := range [...]*os.File{os.Stdout, os.Stderr} {
		h, mode := Handle(f.Fd()), uint32(0)
		if err := GetConsoleMode(h, &mode); err != nil {
			return errors.Wrap(err, f.Name())
		}
		if mode&ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
			continue
		}
		if err := SetConsoleMode(h, mode|ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
			return errors.Wrap(err, f.Name())
		}
	}
	return nil
}

/* Runs before flags.go's init, since files are initialized in name order. A redirected stream
is not a console, so output meant for files or pipes goes without codes. */
func init() {
	if consoleErr = enableVirtualTerminal(); consoleErr != nil {
		pNoCodesDefault = true
	}
	pNoCodes = pNoCodesDefault
}
