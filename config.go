// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"decred.org/ethkey/errors"
	"decred.org/ethkey/internal/cfgutil"
	"decred.org/ethkey/internal/loggers"
	"decred.org/ethkey/keypair"
	"github.com/decred/dcrd/dcrutil/v4"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "ethkey.conf"
	defaultLogLevel       = "warn"
	defaultLogFilename    = "ethkey.log"
	defaultLogSize        = 10 * 1024 // KiB
)

// usageNotes is shown in the help output.
const usageNotes = `Generated keys are written to standard output.  Errors are written to
standard error as a single line and the exit status is 1.  Nothing is written
to standard output when generation fails.`

var (
	defaultAppDataDir = dcrutil.AppDataDir("ethkey", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
)

// globalOptions are accepted before the command and may also be set in the
// config file.
type globalOptions struct {
	ConfigFile  string `short:"C" long:"configfile" description:"Path to configuration file"`
	AppDataDir  string `short:"A" long:"appdata" description:"Application data directory for config and logs"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off} or SUBSYS=level pairs"`
	LogDir      string `long:"logdir" description:"Also write logs to a rotated file in this directory"`
}

type config struct {
	globalOptions

	Generate generateCommand `command:"generate" description:"Generate a key pair"`
}

type generateCommand struct {
	Random randomCommand `command:"random" description:"Generate a key pair from a random secret"`
	Prefix prefixCommand `command:"prefix" description:"Generate a key pair whose address starts with a hex prefix"`
	Brain  brainCommand  `command:"brain" description:"Derive a key pair from a seed phrase"`
}

// displayOptions select which field of the key pair is printed.  When more
// than one is set, secret wins over public and public wins over address.
type displayOptions struct {
	Secret  bool `short:"s" long:"secret" description:"Display only the secret key"`
	Public  bool `short:"p" long:"public" description:"Display only the public key"`
	Address bool `short:"a" long:"address" description:"Display only the address"`
}

func (o *displayOptions) mode() keypair.DisplayMode {
	switch {
	case o.Secret:
		return keypair.SecretOnly
	case o.Public:
		return keypair.PublicOnly
	case o.Address:
		return keypair.AddressOnly
	default:
		return keypair.FullPair
	}
}

type randomCommand struct {
	displayOptions
}

type prefixCommand struct {
	displayOptions

	Args struct {
		Prefix     string `positional-arg-name:"prefix" description:"Hex encoded address prefix"`
		Iterations string `positional-arg-name:"iterations" description:"Maximum number of keys to try"`
	} `positional-args:"yes" required:"yes"`
}

type brainCommand struct {
	displayOptions

	Args struct {
		Seed string `positional-arg-name:"seed" description:"Seed phrase, or - to read it from standard input"`
	} `positional-args:"yes" required:"yes"`
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// Command line options always take precedence.  The returned parser reports
// which command is active.  When the version flag is set, the command line is
// not fully parsed and the parser is nil.
func loadConfig(args []string) (*config, *flags.Parser, error) {
	const op errors.Op = "ethkey.loadConfig"

	cfg := config{
		globalOptions: globalOptions{
			ConfigFile: defaultConfigFile,
			AppDataDir: defaultAppDataDir,
			DebugLevel: defaultLogLevel,
		},
	}

	// Pre-parse the global options to see if an alternative config file or
	// the version flag was specified.  Errors are left for the full parse
	// to report along with usage.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg.globalOptions, flags.IgnoreUnknown)
	preParser.ParseArgs(args)
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Load additional config from file.  A missing config file is not an
	// error.
	parser := flags.NewParser(&cfg, flags.Default)
	setUsageNotes(parser.Command)
	configFilePath := preCfg.ConfigFile
	if configFilePath == defaultConfigFile && preCfg.AppDataDir != defaultAppDataDir {
		appDataDir := cfgutil.CleanAndExpandPath(preCfg.AppDataDir)
		configFilePath = filepath.Join(appDataDir, defaultConfigFilename)
	}
	configFilePath = cfgutil.CleanAndExpandPath(configFilePath)
	exists, err := cfgutil.FileExists(configFilePath)
	if err != nil {
		return nil, nil, errors.E(op, errors.IO, err)
	}
	var configFileMissing bool
	if exists {
		err := flags.NewIniParser(parser).ParseFile(configFilePath)
		if err != nil {
			parser.WriteHelp(os.Stderr)
			return nil, nil, errors.E(op, errors.Invalid, err)
		}
	} else {
		configFileMissing = preCfg.ConfigFile != defaultConfigFile
	}

	// Parse command line options again to ensure they take precedence.
	_, err = parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.AppDataDir = cfgutil.CleanAndExpandPath(cfg.AppDataDir)
	cfg.LogDir = cfgutil.CleanAndExpandPath(cfg.LogDir)

	if err := loggers.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		parser.WriteHelp(os.Stderr)
		return nil, nil, errors.E(op, err)
	}
	if cfg.LogDir != "" {
		logFile := filepath.Join(cfg.LogDir, defaultLogFilename)
		if err := loggers.InitLogRotator(logFile, defaultLogSize); err != nil {
			return nil, nil, errors.E(op, err)
		}
	}

	// Warn about a missing config file after the final command line parse
	// succeeds.  This prevents the warning on help messages and invalid
	// options.
	if configFileMissing {
		log.Warnf("Config file %s does not exist", configFilePath)
	}

	return &cfg, parser, nil
}

// setUsageNotes adds the output notes to the help of c and its subcommands.
func setUsageNotes(c *flags.Command) {
	c.LongDescription = usageNotes
	for _, sub := range c.Commands() {
		setUsageNotes(sub)
	}
}
