// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import "testing"

func TestString(t *testing.T) {
	savedPre, savedMeta := PreRelease, BuildMetadata
	defer func() { PreRelease, BuildMetadata = savedPre, savedMeta }()

	tests := []struct {
		pre, meta string
		want      string
	}{
		{"", "", "1.0.0"},
		{"pre", "", "1.0.0-pre"},
		{"rc1", "abc123", "1.0.0-rc1+abc123"},
		{"", "abc123", "1.0.0+abc123"},
		{"r c!1", "a_b", "1.0.0-rc1+ab"},
		{"!!", "", "1.0.0"},
	}
	for i, test := range tests {
		PreRelease, BuildMetadata = test.pre, test.meta
		if got := String(); got != test.want {
			t.Errorf("test %d: got %q want %q", i, got, test.want)
		}
	}
}
