// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := []string{"Application: Note Keeper"}
	for _, f := range info.Fields() {
		label := strings.ToUpper(f[0][:1]) + f[0][1:]
		lines = append(lines, label+": "+f[1])
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
