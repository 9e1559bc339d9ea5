// Copyright (c) 2023 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loggers owns the logging backend and the subsystem loggers of the
// ethkey command.
package loggers

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"decred.org/ethkey/errors"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to standard error and, once
// initialized, the log rotator.  Standard output is reserved for generated
// keys.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

var stderr io.Writer = os.Stderr

// Loggers per subsystem.  A single backend logger is created and all subsytem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is an optional logging output.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	MainLog   = backendLog.Logger("EKEY")
	KeygenLog = backendLog.Logger("KGEN")
)

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"EKEY": MainLog,
	"KGEN": KeygenLog,
}

// InitLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  logSize is the size in KiB after
// which a log file will be rotated and compressed.
func InitLogRotator(logFile string, logSize int64) error {
	const op errors.Op = "loggers.InitLogRotator"
	logDir, _ := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}
	r, err := rotator.New(logFile, logSize, false, 0)
	if err != nil {
		return errors.E(op, errors.IO, err)
	}

	logRotator = r
	return nil
}

// CloseLogRotator closes the log rotator, syncing all file writes, if the
// rotator was initialized.
func CloseLogRotator() error {
	if logRotator == nil {
		return nil
	}

	err := logRotator.Close()
	logRotator = nil
	return err
}

// SetLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	// Defaults to info if the log level is invalid.
	level, _ := slog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for all subsystem loggers to the passed
// level.
func SetLogLevels(logLevel string) {
	for subsystemID := range subsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}

// SupportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func SupportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsytems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// ValidLogLevel returns whether or not logLevel is a valid debug log level.
func ValidLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical", "off":
		return true
	}
	return false
}

// ParseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  The level is either a single level applied to every
// subsystem or a comma separated list of subsystem=level pairs.  An error with
// kind errors.Invalid is returned if anything is invalid.
func ParseAndSetDebugLevels(debugLevel string) error {
	const op errors.Op = "loggers.ParseAndSetDebugLevels"

	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !ValidLogLevel(debugLevel) {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level [%v] is invalid", debugLevel))
		}
		SetLogLevels(debugLevel)
		return nil
	}

	// Validate every pair before changing any level.
	levels := make(map[string]string)
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		subsysID, logLevel, ok := strings.Cut(logLevelPair, "=")
		if !ok {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level contains an "+
					"invalid subsystem/level pair [%v]", logLevelPair))
		}
		if _, exists := subsystemLoggers[subsysID]; !exists {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified subsystem [%v] is invalid -- "+
					"supported subsytems %v", subsysID, SupportedSubsystems()))
		}
		if !ValidLogLevel(logLevel) {
			return errors.E(op, errors.Invalid,
				errors.Errorf("the specified debug level [%v] is invalid", logLevel))
		}
		levels[subsysID] = logLevel
	}
	for subsysID, logLevel := range levels {
		SetLogLevel(subsysID, logLevel)
	}

	return nil
}
