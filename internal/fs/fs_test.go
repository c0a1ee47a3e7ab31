package fs

import (
	"context"
	iofs "io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/tsgram/tsgram/internal/source"
)

func TestKindOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		expected source.FileKind
	}{
		{name: "/a/b.ts", expected: source.FileKindTypeScript},
		{name: "b.mts", expected: source.FileKindTypeScript},
		{name: "b.cts", expected: source.FileKindTypeScript},
		{name: "lib.d.ts", expected: source.FileKindDeclaration},
		{name: "lib.dom.d.ts", expected: source.FileKindDeclaration},
		{name: "x.d.mts", expected: source.FileKindDeclaration},
		{name: "x.js", expected: source.FileKindNone},
		{name: "x.tsx", expected: source.FileKindNone},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, KindOf(testCase.name))
		})
	}
}

func TestFileSystemLocalDirectory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	mem := fstest.MapFS{
		"src/a.ts":        &fstest.MapFile{Data: []byte("type A = string;")},
		"src/b.d.ts":      &fstest.MapFile{Data: []byte("declare const b: number;")},
		"src/readme.md":   &fstest.MapFile{Data: []byte("# readme")},
		"src/nested/c.ts": &fstest.MapFile{Data: []byte("type C = 1;")},
	}
	local, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS { return mem }))
	require.NoError(t, err)

	files, err := local.Open(ctx, "/src")
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, source.FileKindTypeScript, files[0].Kind(ctx))
	require.Equal(t, source.FileKindDeclaration, files[1].Kind(ctx))

	body, err := ReadAll(ctx, files[0])
	require.NoError(t, err)
	require.Equal(t, "type A = string;", string(body))

	_, err = local.Open(ctx, "/missing.ts")
	require.Error(t, err)
}

func TestFileSystemMulti(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS { return fstest.MapFS{} }))
	require.NoError(t, err)
	second, err := NewFileSystemLocal("/", WithOptionFSFactory(func(string) iofs.FS {
		return fstest.MapFS{"lib.d.ts": &fstest.MapFile{Data: []byte("interface I {}")}}
	}))
	require.NoError(t, err)

	files, err := FileSystemMulti{first, second}.Open(ctx, "/lib.d.ts")
	require.NoError(t, err)
	require.Len(t, files, 1)

	body, err := ReadAll(ctx, NewFileString("/x.ts", "let x = 1;", source.FileKindTypeScript))
	require.NoError(t, err)
	require.Equal(t, "let x = 1;", string(body))
	require.Error(t, FileSystemMulti{first}.Write(ctx, "/x.ts", ""))
}
