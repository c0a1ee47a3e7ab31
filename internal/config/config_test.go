package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/source"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		uri      string
		content  string
		expected *Config
	}{
		{
			name: "yaml",
			uri:  "/tsgram.yaml",
			content: `
roots: [/src, /lib]
preserve_parens: true
max_concurrency: 4
non_fatal: [TS1005]
crosscheck: true
format: ts
log:
  level: debug
  format: json
`,
			expected: &Config{
				Roots:          []string{"/src", "/lib"},
				PreserveParens: true,
				MaxConcurrency: 4,
				NonFatal:       []string{"TS1005"},
				CrossCheck:     true,
				Format:         OutputTS,
				Log:            Log{Level: "debug", Format: "json"},
			},
		},
		{
			name: "toml",
			uri:  "/tsgram.toml",
			content: `
roots = ["/src"]
preserve_parens = true
non_fatal = ["TS1110"]

[log]
level = "warn"
`,
			expected: &Config{
				Roots:          []string{"/src"},
				PreserveParens: true,
				NonFatal:       []string{"TS1110"},
				Format:         OutputYAML,
				Log:            Log{Level: "warn", Format: "text"},
			},
		},
		{
			name:     "empty yaml keeps defaults",
			uri:      "/tsgram.yml",
			content:  "",
			expected: Default(),
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse(testCase.uri, []byte(testCase.content), DetectFormat(testCase.uri))
			require.NoError(t, err)
			require.Equal(t, testCase.expected, cfg)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		uri     string
		content string
	}{
		{name: "yaml unknown key", uri: "/c.yaml", content: "rootz: [/src]\n"},
		{name: "toml unknown key", uri: "/c.toml", content: "rootz = [\"/src\"]\n"},
		{name: "yaml syntax", uri: "/c.yaml", content: "roots: [\n"},
		{name: "toml syntax", uri: "/c.toml", content: "roots = \n"},
		{name: "bad format", uri: "/c.yaml", content: "format: json\n"},
		{name: "bad log level", uri: "/c.yaml", content: "log:\n  level: loud\n"},
		{name: "bad log format", uri: "/c.toml", content: "[log]\nformat = \"xml\"\n"},
		{name: "negative concurrency", uri: "/c.yaml", content: "max_concurrency: -1\n"},
		{name: "empty code", uri: "/c.yaml", content: "non_fatal: [\"\"]\n"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(testCase.uri, []byte(testCase.content), DetectFormat(testCase.uri))
			require.Error(t, err)
			e, ok := err.(exc.Exception)
			require.True(t, ok)
			require.Equal(t, exc.CodeInvalidConfig, e.Code())
			require.Equal(t, testCase.uri, e.Location().URI)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg, err := Load(ctx, fs.NewFileString("/tsgram.toml", "crosscheck = true\n", source.FileKindNone))
	require.NoError(t, err)
	require.True(t, cfg.CrossCheck)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(func(k string) (string, bool) {
		if k == EnvLogLevel {
			return "debug", true
		}
		return "", false
	}))
	require.Equal(t, "debug", cfg.Log.Level)

	err := cfg.ApplyEnv(func(string) (string, bool) { return "loud", true })
	require.Error(t, err)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()
	require.Equal(t, FormatTOML, DetectFormat("/a/tsgram.TOML"))
	require.Equal(t, FormatYAML, DetectFormat("/a/tsgram.yml"))
	require.Equal(t, FormatYAML, DetectFormat("/a/tsgram"))
}
