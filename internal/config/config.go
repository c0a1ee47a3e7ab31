// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional tsgram configuration file. YAML and
// TOML are supported and chosen by file extension.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/logging"
	"github.com/tsgram/tsgram/internal/source"
)

type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Output formats for dumped trees.
const (
	OutputYAML = "yaml"
	OutputTS   = "ts"
)

// EnvLogLevel overrides Log.Level when set.
const EnvLogLevel = "TSGRAM_LOG_LEVEL"

type Config struct {
	Roots          []string `yaml:"roots" toml:"roots"`
	PreserveParens bool     `yaml:"preserve_parens" toml:"preserve_parens"`
	MaxConcurrency int      `yaml:"max_concurrency" toml:"max_concurrency"`
	// NonFatal lists diagnostic codes that are reported without failing.
	NonFatal   []string `yaml:"non_fatal" toml:"non_fatal"`
	CrossCheck bool     `yaml:"crosscheck" toml:"crosscheck"`
	Format     string   `yaml:"format" toml:"format"`
	Log        Log      `yaml:"log" toml:"log"`
}

type Log struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

func Default() *Config {
	return &Config{
		Format: OutputYAML,
		Log: Log{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// DetectFormat picks the decoder from the file extension. Anything that is
// not TOML is read as YAML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads f over the defaults. Unknown keys are rejected.
func Load(ctx context.Context, f source.File) (*Config, error) {
	body, err := fs.ReadAll(ctx, f)
	if err != nil {
		return nil, err
	}
	return Parse(f.Path(ctx), body, DetectFormat(f.Path(ctx)))
}

func Parse(uri string, content []byte, format Format) (*Config, error) {
	cfg := Default()
	loc := exc.Location{URI: uri}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, exc.Wrap(loc, exc.CodeInvalidConfig, fmt.Errorf("yaml: %w", err))
		}
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, exc.Wrap(loc, exc.CodeInvalidConfig, fmt.Errorf("toml: %w", err))
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, exc.New(loc, exc.CodeInvalidConfig, fmt.Sprintf("toml: unknown keys %s", strings.Join(keys, ", ")))
		}
	default:
		return nil, exc.New(loc, exc.CodeInvalidConfig, fmt.Sprintf("unsupported config format %s", format))
	}
	if err := cfg.Validate(); err != nil {
		return nil, exc.Wrap(loc, exc.CodeInvalidConfig, err)
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if _, err := logging.ParseLevel(v); err != nil {
			return exc.Wrap(exc.Location{URI: EnvLogLevel}, exc.CodeInvalidConfig, err)
		}
		c.Log.Level = v
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case OutputYAML, OutputTS:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", OutputYAML, OutputTS, c.Format)
	}
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("max_concurrency must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, c.Log.Format)
	}
	for _, code := range c.NonFatal {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("non_fatal contains an empty code")
		}
	}
	return nil
}
