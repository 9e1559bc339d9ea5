// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version describes the version of the ethkey command.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// semverAlphabet is an alphabet of all characters allowed in semver prerelease
// or build metadata identifiers, and the . separator.
const semverAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// Constants defining the application version number.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// PreRelease contains the prerelease name of the application.  It is a variable
// so it can be modified at link time (e.g.
// `-ldflags "-X decred.org/ethkey/version.PreRelease=rc1"`).
// It must only contain characters from the semantic version alphabet.
var PreRelease = "pre"

// BuildMetadata defines additional build metadata.  It is modified at link time
// for official releases.  When empty, the VCS revision recorded by the Go
// toolchain is used.
var BuildMetadata = ""

func init() {
	if BuildMetadata == "" {
		BuildMetadata = vcsCommitID()
	}
}

// vcsCommitID returns the first 9 characters of the VCS revision embedded in
// the binary, or the empty string when it is not available.
func vcsCommitID() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	var revision string
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			revision = s.Value
			break
		}
	}
	if len(revision) > 9 {
		revision = revision[:9]
	}
	return revision
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	// The pre-release and build metadata separators are added here and
	// must not be part of the variables themselves.
	if preRelease := normalizeVerString(PreRelease); preRelease != "" {
		version = version + "-" + preRelease
	}
	if buildMetadata := normalizeVerString(BuildMetadata); buildMetadata != "" {
		version = version + "+" + buildMetadata
	}
	return version
}

// normalizeVerString returns the passed string stripped of all characters which
// are not valid according to the semantic versioning guidelines for pre-release
// version and build metadata strings.
func normalizeVerString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semverAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
