// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package compiler

import (
	"path/filepath"
)

func getDefaultRoots(lookup func(string) (string, bool)) []string {
	var roots []string
	local, _ := lookup("LOCALAPPDATA")
	if local == "" {
		if profile, _ := lookup("USERPROFILE"); profile != "" {
			local = filepath.Join(profile, "AppData", "Local")
		}
	}
	if local != "" {
		roots = append(roots, filepath.Join(local, "tsgram"))
	}
	programData, _ := lookup("ProgramData")
	if programData == "" {
		drive, _ := lookup("SystemDrive")
		programData = filepath.Join(drive+`\`, "ProgramData")
	}
	return append(roots, filepath.Join(programData, "tsgram"))
}
