// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package source holds the interfaces shared by the file systems, iterators
// and the compiler driver.
package source

import (
	"context"
	"fmt"

	"github.com/tsgram/tsgram/internal/optional"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

type Reader interface {
	Read(ctx context.Context, size int32) ([]byte, error)
}

type FileBody interface {
	Reader
	Closer
}

type FileKind uint32

const (
	FileKindNone FileKind = iota
	// FileKindTypeScript covers .ts, .mts and .cts sources.
	FileKindTypeScript
	// FileKindDeclaration covers .d.ts, .d.mts and .d.cts sources. These are
	// parsed in an ambient context.
	FileKindDeclaration
)

func (k FileKind) String() string {
	switch k {
	case FileKindNone:
		return "none"
	case FileKindTypeScript:
		return "typescript"
	case FileKindDeclaration:
		return "declaration"
	default:
		return fmt.Sprintf("unknown-%d", k)
	}
}

type File interface {
	Path(ctx context.Context) string
	Kind(ctx context.Context) FileKind
	Body(ctx context.Context) (FileBody, error)
}

type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
	Write(ctx context.Context, uri string, content string) error
}
