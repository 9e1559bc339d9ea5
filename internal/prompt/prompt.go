// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package prompt reads secrets from the user without echoing them.
package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"decred.org/ethkey/internal/zero"
	"golang.org/x/term"
)

// ErrNoInput is returned when the input ends before a response is read.
var ErrNoInput = errors.New("no input provided")

// isTerminal reports whether fd is a terminal.  It is replaced by tests.
var isTerminal = term.IsTerminal

// readLine reads one response.  Terminal input is read without echo.  Other
// input is read up to the next newline, with the line ending removed but all
// other whitespace kept.
func readLine(reader *bufio.Reader, out io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if isTerminal(fd) {
		line, err := term.ReadPassword(fd)
		fmt.Fprint(out, "\n")
		return line, err
	}

	line, err := reader.ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		if len(line) == 0 {
			return nil, ErrNoInput
		}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, nil
}

// BrainPhrase prompts for a brain wallet phrase, writing prompts to out.  The
// prompt repeats until a non-empty phrase is entered.  When reading from a
// terminal the phrase must be entered twice and both entries must match.
//
// The caller should clear the returned phrase with zero.Bytes once it is no
// longer needed.
func BrainPhrase(reader *bufio.Reader, out io.Writer) ([]byte, error) {
	confirm := isTerminal(int(os.Stdin.Fd()))
	for {
		fmt.Fprint(out, "Enter brain wallet phrase: ")
		phrase, err := readLine(reader, out)
		if err != nil {
			return nil, err
		}
		if len(phrase) == 0 {
			continue
		}
		if !confirm {
			return phrase, nil
		}

		fmt.Fprint(out, "Confirm phrase: ")
		again, err := readLine(reader, out)
		if err != nil {
			zero.Bytes(phrase)
			return nil, err
		}
		match := bytes.Equal(phrase, again)
		zero.Bytes(again)
		if !match {
			zero.Bytes(phrase)
			fmt.Fprintln(out, "The entered phrases do not match")
			continue
		}

		return phrase, nil
	}
}
