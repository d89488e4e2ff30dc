// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
	"strings"
)

// notAvailable replaces build fields that were not injected by the linker.
const notAvailable = "N/A"

// AppBuildInfo holds the version, date and commit stamped into a binary via
// -ldflags. Zero values are valid and render as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the linker-provided values and wraps them.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

// BuildVersion returns the raw version, empty when unset.
func (a AppBuildInfo) BuildVersion() string { return a.version }

// BuildDate returns the raw build date, empty when unset.
func (a AppBuildInfo) BuildDate() string { return a.date }

// BuildCommit returns the raw commit hash, empty when unset.
func (a AppBuildInfo) BuildCommit() string { return a.commit }

// Fields returns label/value pairs in display order with missing values
// replaced by "N/A".
func (a AppBuildInfo) Fields() [][2]string {
	return [][2]string{
		{"version", orNotAvailable(a.version)},
		{"date", orNotAvailable(a.date)},
		{"commit", orNotAvailable(a.commit)},
	}
}

// Print writes the "Build <label>: <value>" banner printed by the binaries on
// startup.
func (a AppBuildInfo) Print(w io.Writer) {
	for _, f := range a.Fields() {
		_, _ = fmt.Fprintf(w, "Build %s: %s\n", f[0], f[1])
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
