// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"decred.org/ethkey/internal/loggers"
	"decred.org/ethkey/keygen"
)

var log = loggers.MainLog

// Initialize package-global logger variables.
func init() {
	keygen.UseLogger(loggers.KeygenLog)
}
