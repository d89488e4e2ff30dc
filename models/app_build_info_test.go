// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	NewAppBuildInfo(" v1.0.0 ", "", "abc123").Print(&buf)

	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Empty(t, info.BuildVersion())
	for _, f := range info.Fields() {
		assert.Equal(t, "N/A", f[1], f[0])
	}
}
