// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package target converts command line targets into the URIs understood by
// the file systems.
package target

import (
	"net/url"
	"path/filepath"
)

// Normalize accepts a path or URI. Paths and file URIs become rooted paths;
// a relative path is taken as relative to the search roots, not the working
// directory. Other URIs are returned unchanged for another file system to
// handle.
func Normalize(target string) string {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "" && u.Scheme != "file") {
		return target
	}
	if u.Scheme == "file" {
		target = u.Path
	}
	return filepath.Join("/", target)
}

// LocalPath is the path on disk that a target resolves to under root. The
// second result is false for URIs no local file system can serve.
func LocalPath(root string, target string) (string, bool) {
	uri := Normalize(target)
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "" {
		return "", false
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	return filepath.Join(abs, uri), true
}
