// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"decred.org/ethkey/errors"
	"decred.org/ethkey/internal/loggers"
	"decred.org/ethkey/internal/prompt"
	"decred.org/ethkey/internal/zero"
	"decred.org/ethkey/keygen"
	"decred.org/ethkey/keypair"
	"decred.org/ethkey/version"
	flags "github.com/jessevdk/go-flags"
)

func init() {
	// Format nested errors on a single line.
	errors.Separator = ": "
}

// entropy is the randomness source for random and prefix generation.  Nil
// selects crypto/rand.
var entropy io.Reader

func main() {
	err := run(os.Args[1:], bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		// go-flags has already printed its own errors and help.
		if _, ok := err.(*flags.Error); !ok {
			fmt.Fprintln(os.Stderr, err)
		}
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// run parses args, generates the requested key pair and writes it to stdout.
// Seed phrases requested with "-" are read from stdin.
func run(args []string, stdin *bufio.Reader, stdout io.Writer) error {
	cfg, parser, err := loadConfig(args)
	if err != nil {
		return err
	}
	defer loggers.CloseLogRotator()

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Fprintf(stdout, "%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	}

	log.Debugf("Version %s (Go version %s %s/%s)", version.String(),
		runtime.Version(), runtime.GOOS, runtime.GOARCH)

	cmd := parser.Active
	if cmd == nil || cmd.Active == nil {
		return errors.E(errors.Op("ethkey"), errors.Invalid, "no command specified")
	}
	out, err := cfg.Generate.execute(cmd.Active.Name, stdin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// execute selects the generator for the named command, generates a key pair
// and renders it.
func (c *generateCommand) execute(name string, stdin *bufio.Reader) (string, error) {
	op := errors.Op("ethkey." + name)

	g, display, err := c.selectGenerator(name, stdin)
	if err != nil {
		return "", errors.E(op, err)
	}
	log.Debugf("Generating %s key pair", name)
	kp, err := g.Generate()
	if err != nil {
		return "", errors.E(op, err)
	}
	return keypair.Render(kp, display.mode()), nil
}

// selectGenerator validates the command arguments and returns the generator
// and display options of the named command.  No key is generated here.
func (c *generateCommand) selectGenerator(name string, stdin *bufio.Reader) (keygen.Generator, *displayOptions, error) {
	switch name {
	case "random":
		g := keygen.NewRandom()
		g.Rand = entropy
		return g, &c.Random.displayOptions, nil

	case "prefix":
		prefix, err := hex.DecodeString(c.Prefix.Args.Prefix)
		if err != nil {
			return nil, nil, errors.E(errors.HexDecode, err)
		}
		iterations, err := strconv.ParseUint(c.Prefix.Args.Iterations, 10, 64)
		if err != nil {
			return nil, nil, errors.E(errors.IntegerParse, err)
		}
		g := keygen.NewPrefix(prefix, iterations)
		g.Rand = entropy
		return g, &c.Prefix.displayOptions, nil

	case "brain":
		seed := c.Brain.Args.Seed
		if seed != "-" {
			return keygen.NewBrain(seed), &c.Brain.displayOptions, nil
		}
		phrase, err := prompt.BrainPhrase(stdin, os.Stderr)
		if err != nil {
			return nil, nil, errors.E(errors.IO, err)
		}
		g := keygen.NewBrain(string(phrase))
		zero.Bytes(phrase)
		return g, &c.Brain.displayOptions, nil

	default:
		return nil, nil, errors.E(errors.Bug, errors.Errorf("unknown command %q", name))
	}
}
