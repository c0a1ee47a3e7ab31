// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"path/filepath"

	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/source"
)

// NewDefaultFS searches the platform data directories.
func NewDefaultFS(lookup func(string) (string, bool)) (source.FileSystem, error) {
	return NewRootsFS(DefaultRoots(lookup))
}

// DefaultRoots lists the platform data directories in search order.
func DefaultRoots(lookup func(string) (string, bool)) []string {
	return getDefaultRoots(lookup)
}

// NewRootsFS searches each root in order.
func NewRootsFS(roots []string) (source.FileSystem, error) {
	f := make(fs.FileSystemMulti, 0, len(roots))
	for _, root := range roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			return nil, errAbs
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			return nil, err
		}
		f = append(f, rf)
	}
	return f, nil
}
