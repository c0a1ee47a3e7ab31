package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		target   string
		expected string
	}{
		{target: "/abs/a.ts", expected: "/abs/a.ts"},
		{target: "rel/a.ts", expected: "/rel/a.ts"},
		{target: "file:///abs/a.d.ts", expected: "/abs/a.d.ts"},
		{target: "https://example.com/a.ts", expected: "https://example.com/a.ts"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.target, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Normalize(testCase.target))
		})
	}
}

func TestLocalPath(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		root     string
		target   string
		expected string
		ok       bool
	}{
		{name: "relative", root: "/src", target: "a/b.ts", expected: "/src/a/b.ts", ok: true},
		{name: "rooted", root: "/src", target: "/b.d.ts", expected: "/src/b.d.ts", ok: true},
		{name: "file uri", root: "/src", target: "file:///c.ts", expected: "/src/c.ts", ok: true},
		{name: "remote", root: "/src", target: "https://example.com/a.ts"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			got, ok := LocalPath(testCase.root, testCase.target)
			require.Equal(t, testCase.ok, ok)
			require.Equal(t, testCase.expected, got)
		})
	}
}
