package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) {
	return "", false
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestRun(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{
		"a.ts":        "type A = string | number;",
		"bad.ts":      "type B = ;",
		"warn.ts":     "type C = readonly string;",
		"tsgram.toml": "format = \"ts\"\n",
		"bad.yaml":    "format: json\n",
	})
	testCases := []struct {
		name       string
		args       []string
		status     int
		wantStdout []string
		wantStderr []string
	}{
		{
			name:       "print tree as typescript",
			args:       []string{"--root", dir, "--dump-tree", "--format", "ts", "a.ts"},
			wantStdout: []string{"type A = string | number;"},
		},
		{
			name:       "yaml tree",
			args:       []string{"--root", dir, "--dump-tree", "a.ts"},
			wantStdout: []string{"type: TSTypeAliasDeclaration", "type: TSUnionType"},
		},
		{
			name:       "config file format",
			args:       []string{"--root", dir, "--config", filepath.Join(dir, "tsgram.toml"), "--dump-tree", "a.ts"},
			wantStdout: []string{"type A = string | number;"},
		},
		{
			name:       "tokens",
			args:       []string{"--root", dir, "--dump-tokens", "a.ts"},
			wantStdout: []string{"'A'"},
		},
		{
			name:       "fatal diagnostic",
			args:       []string{"--root", dir, "bad.ts"},
			status:     1,
			wantStderr: []string{"TS1003"},
		},
		{
			name:       "non-fatal diagnostic is a warning",
			args:       []string{"--root", dir, "warn.ts"},
			wantStderr: []string{"warning:", "TS1354"},
		},
		{
			name:       "invalid config",
			args:       []string{"--root", dir, "--config", filepath.Join(dir, "bad.yaml"), "a.ts"},
			status:     2,
			wantStderr: []string{"M0006"},
		},
		{
			name:       "no targets",
			args:       []string{"--root", dir},
			status:     2,
			wantStderr: []string{"no targets given"},
		},
		{
			name:   "unknown flag",
			args:   []string{"--nope"},
			status: 2,
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			var stdout, stderr bytes.Buffer
			status := run(context.Background(), testCase.args, &stdout, &stderr, noEnv)
			require.Equal(t, testCase.status, status, stderr.String())
			for _, s := range testCase.wantStdout {
				require.Contains(t, stdout.String(), s)
			}
			for _, s := range testCase.wantStderr {
				require.Contains(t, stderr.String(), s)
			}
		})
	}
}

func TestRunMixedDiagnostics(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{
		"bad.ts":  "type B = ;",
		"warn.ts": "type C = readonly string;",
	})
	var stdout, stderr bytes.Buffer
	status := run(context.Background(), []string{"--root", dir, "bad.ts", "warn.ts"}, &stdout, &stderr, noEnv)
	require.Equal(t, 1, status, stderr.String())
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		switch {
		case strings.Contains(line, "TS1003"):
			require.False(t, strings.HasPrefix(line, "warning: "), line)
		case strings.Contains(line, "TS1354"):
			require.True(t, strings.HasPrefix(line, "warning: "), line)
		default:
			require.Fail(t, "unexpected diagnostic", line)
		}
	}
}

func TestRunTokenKindOnly(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{"a.ts": "type A = B;"})
	var stdout, stderr bytes.Buffer
	status := run(context.Background(), []string{"--root", dir, "--dump-tokens", "--token-kind", "Identifier", "a.ts"}, &stdout, &stderr, noEnv)
	require.Equal(t, 0, status, stderr.String())
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "# "))
	require.Contains(t, lines[1], "'A'")
	require.Contains(t, lines[2], "'B'")
}

func TestRunMetricsOut(t *testing.T) {
	t.Parallel()
	dir := writeFiles(t, map[string]string{"a.ts": "interface I { a: string }"})
	out := filepath.Join(t.TempDir(), "metrics.prom")
	var stdout, stderr bytes.Buffer
	status := run(context.Background(), []string{"--root", dir, "--metrics-out", out, "--crosscheck", "a.ts"}, &stdout, &stderr, noEnv)
	require.Equal(t, 0, status, stderr.String())
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(b), `tsgram_files_total{kind="typescript"} 1`)
}
