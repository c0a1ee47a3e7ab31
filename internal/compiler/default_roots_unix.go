// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

//go:build aix || darwin || dragonfly || freebsd || (js && wasm) || linux || netbsd || openbsd || solaris

package compiler

import (
	"os"
	"path/filepath"
	"strings"
)

// getDefaultRoots follows the XDG base directory layout: the user data
// directory first, then each system data directory.
func getDefaultRoots(lookup func(string) (string, bool)) []string {
	expand := func(p string) string {
		return os.Expand(p, func(s string) string {
			v, _ := lookup(s)
			return v
		})
	}
	var roots []string
	dataHome, _ := lookup("XDG_DATA_HOME")
	if dataHome == "" {
		if home, _ := lookup("HOME"); home != "" {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}
	if dataHome != "" {
		roots = append(roots, filepath.Join(expand(dataHome), "tsgram"))
	}
	dataDirs, _ := lookup("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share/:/usr/share/"
	}
	for _, dir := range strings.Split(dataDirs, ":") {
		if dir == "" {
			continue
		}
		roots = append(roots, filepath.Join(expand(dir), "tsgram"))
	}
	return roots
}
