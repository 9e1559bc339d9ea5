// Copyright (c) 2018-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// API inspired by https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html

/*
Package errors defines the errors returned by ethkey.  It is imported as errors
in place of the standard library package.

An *Error records the operation that failed (an Op such as "keygen.Prefix" or
"ethkey.brain"), a Kind classifying the failure and the underlying cause.
Wrapping an *Error with E adds the caller's operation while keeping the kind,
so the outermost error always reports why a command failed:

	ethkey.prefix: key generation failed: keygen.Prefix: could not find keypair

Generation, HexDecode and IntegerParse are the failures a generate command can
report.  Error text never contains a secret key or a seed phrase.
*/
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Separator is written between an error and the nested *Error it wraps.  It
// defaults to a newline and tab; the ethkey command sets it to ": " so every
// error prints as a single line.
var Separator = ":\n\t"

// Error is an operation, kind and cause.  Any field may be unset.
type Error struct {
	Op   Op
	Kind Kind
	Err  error
}

// Op names the function or command that failed, written as package.Function
// or ethkey.command.
type Op string

// Kind classifies an error.
type Kind int

// Error kinds.
const (
	Other        Kind = iota // No kind; omitted from error text
	Bug                      // Unreachable state in ethkey itself
	Invalid                  // Rejected option or configuration value
	IO                       // Terminal, file or log failure
	Generation               // No key pair could be produced
	HexDecode                // Argument is not valid hex
	IntegerParse             // Argument is not a valid unsigned integer
)

func (k Kind) String() string {
	switch k {
	case Other:
		return "unclassified error"
	case Bug:
		return "internal error"
	case Invalid:
		return "invalid operation"
	case IO:
		return "I/O error"
	case Generation:
		return "key generation failed"
	case HexDecode:
		return "invalid hex"
	case IntegerParse:
		return "invalid integer"
	default:
		return "unknown error kind"
	}
}

// New returns an error with the given text, as errors.New does.
func New(text string) error {
	return errors.New(text)
}

// Errorf returns a formatted error, as fmt.Errorf does.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// E builds an *Error from its arguments, which may be given in any order:
//
//	Op      the failing operation
//	Kind    the error class
//	string  the cause, as if passed to New
//	error   the cause
//
// A later argument of the same type replaces an earlier one.  When the cause is
// itself an *Error, its Op and Kind fill in any not given here, and it is
// unwrapped entirely if it would add nothing to the message.
//
// E panics when called without arguments.
func E(args ...interface{}) error {
	if len(args) == 0 {
		panic("errors.E: no args")
	}

	e := new(Error)
	var wrapped *Error
	for _, arg := range args {
		switch arg := arg.(type) {
		case Op:
			e.Op = arg
		case Kind:
			e.Kind = arg
		case string:
			e.Err = errors.New(arg)
		case *Error:
			e.Err, wrapped = arg, arg
		case error:
			e.Err = arg
		}
	}
	if wrapped == nil || e.Err != wrapped {
		return e
	}

	if e.Op == "" {
		e.Op = wrapped.Op
	}
	if e.Kind == Other {
		e.Kind = wrapped.Kind
	}
	sameOp := wrapped.Op == "" || wrapped.Op == e.Op
	sameKind := wrapped.Kind == Other || wrapped.Kind == e.Kind
	if sameOp && sameKind {
		e.Err = wrapped.Err
	}
	return e
}

// Error writes each Op and Kind once, outermost first, followed by the
// innermost cause.
func (e *Error) Error() string {
	var b strings.Builder
	var lastOp Op
	var lastKind Kind

	for e != nil {
		sep := ""
		if e.Op != "" && e.Op != lastOp {
			b.WriteString(string(e.Op))
			lastOp = e.Op
			sep = ": "
		}
		if e.Kind != Other && e.Kind != lastKind {
			b.WriteString(sep)
			b.WriteString(e.Kind.String())
			lastKind = e.Kind
			sep = ": "
		}

		next, nested := e.Err.(*Error)
		switch {
		case e.Err == nil:
			e = nil
		case nested:
			if sep != "" {
				b.WriteString(Separator)
			}
			e = next
		default:
			b.WriteString(sep)
			b.WriteString(e.Err.Error())
			e = nil
		}
	}

	if b.Len() == 0 {
		return Other.String()
	}
	return b.String()
}

// Unwrap returns the cause, so the standard library errors.Is finds sentinels
// such as keygen.ErrNoMatch.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether err is an *Error whose kind is kind.  An error without a
// kind takes the kind of the *Error it wraps.
func Is(kind Kind, err error) bool {
	for {
		e, ok := err.(*Error)
		if !ok {
			return false
		}
		if e.Kind != Other {
			return e.Kind == kind
		}
		err = e.Err
	}
}

// Match reports whether every field set in the pattern err1 equals the same
// field of err2.  A nested *Error in the pattern is matched against the cause
// of err2, and any other cause is compared by its text.
func Match(err1, err2 error) bool {
	pattern, ok := err1.(*Error)
	if !ok {
		return false
	}
	e, ok := err2.(*Error)
	if !ok {
		return false
	}

	switch {
	case pattern.Op != "" && pattern.Op != e.Op:
		return false
	case pattern.Kind != Other && pattern.Kind != e.Kind:
		return false
	case pattern.Err == nil, pattern.Err == e.Err:
		return true
	}
	if _, nested := pattern.Err.(*Error); nested {
		return Match(pattern.Err, e.Err)
	}
	return e.Err != nil && pattern.Err.Error() == e.Err.Error()
}
