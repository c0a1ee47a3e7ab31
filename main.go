// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"

	"github.com/tsgram/tsgram/internal/compiler"
	"github.com/tsgram/tsgram/internal/compiler/typescript"
	"github.com/tsgram/tsgram/internal/config"
	"github.com/tsgram/tsgram/internal/crosscheck"
	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/logging"
	"github.com/tsgram/tsgram/internal/source"
	"github.com/tsgram/tsgram/internal/target"
	"github.com/tsgram/tsgram/internal/treedump"
	"github.com/tsgram/tsgram/internal/watch"
)

type opts struct {
	Roots          []string
	Config         string
	DumpTokens     bool
	TokenKinds     []string
	DumpTree       bool
	Format         string
	PreserveParens bool
	CrossCheck     bool
	Watch          bool
	MetricsOut     string
	LogLevel       string
	LogFormat      string
	MaxConcurrency int
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(ctx context.Context, args []string, stdout io.Writer, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	op := &opts{}
	flags := pflag.NewFlagSet("tsgram", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for targets.")
	flags.StringVar(&op.Config, "config", "", "Configuration file in YAML or TOML.")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream of each file.")
	flags.StringArrayVar(&op.TokenKinds, "token-kind", nil, "Limit --dump-tokens to this token kind. Repeatable.")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Output the syntax tree of each file.")
	flags.StringVar(&op.Format, "format", config.OutputYAML, "Tree dump format: yaml or ts.")
	flags.BoolVar(&op.PreserveParens, "preserve-parens", false, "Keep parenthesized types in the tree.")
	flags.BoolVar(&op.CrossCheck, "crosscheck", false, "Compare declaration counts against tree-sitter.")
	flags.BoolVar(&op.Watch, "watch", false, "Parse again whenever a target changes.")
	flags.StringVar(&op.MetricsOut, "metrics-out", "", "Write Prometheus metrics to FILE after each run.")
	flags.StringVar(&op.LogLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	flags.StringVar(&op.LogFormat, "log-format", logging.FormatText, "Log format: text or json.")
	flags.IntVar(&op.MaxConcurrency, "max-concurrency", 0, "Files parsed at once. Zero uses the CPU count.")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	targets := flags.Args()

	cfg, err := loadConfig(ctx, op, flags, lookupEnv)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	logger, err := logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	logger.Debug("configuration", "roots", cfg.Roots, "format", cfg.Format, "crosscheck", cfg.CrossCheck, "max_concurrency", cfg.MaxConcurrency)
	if len(targets) == 0 {
		fmt.Fprintln(stderr, "no targets given")
		return 2
	}

	mf := make(fs.FileSystemMulti, 0, len(cfg.Roots)+1)
	for _, root := range cfg.Roots {
		rf, err := fs.NewFileSystemLocal(root)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 2
		}
		mf = append(mf, rf)
	}
	dfs, err := compiler.NewDefaultFS(lookupEnv)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	mf = append(mf, dfs)

	var registry *prometheus.Registry
	var metrics *compiler.Metrics
	if op.MetricsOut != "" {
		registry = prometheus.NewRegistry()
		metrics, err = compiler.NewMetrics(registry)
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 2
		}
	}

	d := &driver{
		cfg:        cfg,
		op:         op,
		fs:         mf,
		lookupEnv:  lookupEnv,
		logger:     logger,
		metrics:    metrics,
		registry:   registry,
		stdout:     stdout,
		stderr:     stderr,
		dumpTokens: op.DumpTokens,
		dumpTree:   op.DumpTree,
	}
	status := d.once(ctx, targets)
	if !op.Watch {
		return status
	}

	paths := make([]string, 0, len(targets))
	for _, t := range targets {
		if p, ok := target.LocalPath(cfg.Roots[0], t); ok {
			paths = append(paths, p)
		}
	}
	w, err := watch.New(paths, watch.DefaultDebounce, logger)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	defer w.Close()
	logger.Info("watching", "paths", paths)
	err = w.Run(ctx, func(ctx context.Context, changed []string) error {
		logger.Info("change detected", "paths", changed)
		status = d.once(ctx, targets)
		return nil
	})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	return status
}

func loadConfig(ctx context.Context, op *opts, flags *pflag.FlagSet, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	cfg := config.Default()
	if op.Config != "" {
		path := op.Config
		f := fs.NewFileFN(path, func() (io.ReadCloser, error) { return os.Open(path) }, source.FileKindNone)
		loaded, err := config.Load(ctx, f)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.Changed("root") || len(cfg.Roots) == 0 {
		cfg.Roots = append(op.Roots, cfg.Roots...)
	}
	if flags.Changed("format") {
		cfg.Format = op.Format
	}
	if flags.Changed("preserve-parens") {
		cfg.PreserveParens = op.PreserveParens
	}
	if flags.Changed("crosscheck") {
		cfg.CrossCheck = op.CrossCheck
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = op.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = op.LogFormat
	}
	if flags.Changed("max-concurrency") {
		cfg.MaxConcurrency = op.MaxConcurrency
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, exc.Wrap(exc.Location{URI: op.Config}, exc.CodeInvalidConfig, err)
	}
	return cfg, nil
}

type driver struct {
	cfg        *config.Config
	op         *opts
	fs         source.FileSystem
	lookupEnv  func(string) (string, bool)
	logger     *slog.Logger
	metrics    *compiler.Metrics
	registry   *prometheus.Registry
	stdout     io.Writer
	stderr     io.Writer
	dumpTokens bool
	dumpTree   bool
}

// once parses every target with a fresh reporter and returns the exit
// status.
func (d *driver) once(ctx context.Context, targets []string) int {
	options := []compiler.Option{
		compiler.OptionWithLookupEnv(d.lookupEnv),
		compiler.OptionWithFS(d.fs),
		compiler.OptionWithLogger(d.logger),
		compiler.OptionWithMaxConcurrency(d.cfg.MaxConcurrency),
		compiler.OptionWithParseOptions(typescript.Options{PreserveParens: d.cfg.PreserveParens}),
	}
	if d.metrics != nil {
		options = append(options, compiler.OptionWithMetrics(d.metrics))
	}
	if d.cfg.CrossCheck {
		options = append(options, compiler.OptionWithCrossCheck(crosscheck.New()))
	}
	reporter := exc.NewReporter(d.cfg.NonFatal)
	options = append(options, compiler.OptionWithExcReporter(reporter))
	c, err := compiler.New(options...)
	if err != nil {
		fmt.Fprintln(d.stderr, err.Error())
		return 2
	}

	out, err := c.Compile(ctx, &compiler.CompileRequest{
		Files:      targets,
		DumpTokens: d.dumpTokens,
		TokenKinds: d.op.TokenKinds,
	})
	status := 0
	if err != nil {
		var me compiler.MultiException
		if !errors.As(err, &me) {
			fmt.Fprintln(d.stderr, err.Error())
			return 2
		}
		for _, e := range me {
			d.printDiagnostic(reporter, e)
		}
		status = 1
	} else {
		for _, mod := range out.Modules {
			for _, e := range mod.Diagnostics {
				d.printDiagnostic(reporter, e)
			}
		}
	}
	if out != nil {
		for _, mod := range out.Modules {
			if err := d.dump(mod); err != nil {
				fmt.Fprintln(d.stderr, err.Error())
				return 2
			}
		}
	}
	if d.registry != nil {
		if err := d.writeMetrics(); err != nil {
			fmt.Fprintln(d.stderr, err.Error())
			return 2
		}
	}
	return status
}

func (d *driver) printDiagnostic(r exc.Reporter, e exc.Exception) {
	if r.IsFatal(e) {
		fmt.Fprintln(d.stderr, e.Error())
		return
	}
	fmt.Fprintf(d.stderr, "warning: %s\n", e.Error())
}

func (d *driver) dump(mod *compiler.Module) error {
	if d.dumpTokens {
		fmt.Fprintf(d.stdout, "# %s\n", mod.URI)
		for _, token := range mod.Tokens {
			fmt.Fprintf(d.stdout, "%-24s", token.Kind)
			if token.Value != "" {
				fmt.Fprintf(d.stdout, "'%s'", token.Value)
			}
			fmt.Fprintln(d.stdout)
		}
	}
	if !d.dumpTree {
		return nil
	}
	switch d.cfg.Format {
	case config.OutputTS:
		fmt.Fprintf(d.stdout, "// %s\n%s\n", mod.URI, typescript.Print(mod.Program))
	default:
		b, err := treedump.Marshal(mod.Program)
		if err != nil {
			return err
		}
		fmt.Fprintf(d.stdout, "# %s\n%s", mod.URI, b)
	}
	return nil
}

func (d *driver) writeMetrics() error {
	f, err := os.Create(d.op.MetricsOut)
	if err != nil {
		return err
	}
	if err := compiler.WriteMetrics(f, d.registry); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
