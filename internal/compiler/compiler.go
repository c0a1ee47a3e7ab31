// © 2026 The tsgram Authors
//
// SPDX-License-Identifier: Apache-2.0

package compiler

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tsgram/tsgram/internal/compiler/typescript"
	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/source"
	"github.com/tsgram/tsgram/internal/target"
)

// Compiler parses a set of targets into modules.
type Compiler interface {
	Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error)
}

type CompileRequest struct {
	// Files are paths or URIs. Directories expand to every supported file
	// they contain.
	Files      []string
	DumpTokens bool
	// TokenKinds limits a token dump to the named kinds, as printed by
	// typescript.Kind.String. Empty keeps every token.
	TokenKinds []string
}

type CompileResponse struct {
	// Modules are sorted by URI.
	Modules []*Module
}

// Module is the parse result for one file.
type Module struct {
	URI         string
	Kind        source.FileKind
	Program     *typescript.Program
	Tokens      []*typescript.Token
	Diagnostics []exc.Exception
	Stats       typescript.Stats
}

// CrossChecker compares a parsed program against an independent parser.
type CrossChecker interface {
	Check(ctx context.Context, file source.File, program *typescript.Program) ([]exc.Exception, error)
}

type Option func(c *compiler) error

func OptionWithFS(fs source.FileSystem) Option {
	return func(c *compiler) error {
		c.FS = fs
		return nil
	}
}

func OptionWithLookupEnv(lookupEnv func(string) (string, bool)) Option {
	return func(c *compiler) error {
		c.LookupENV = lookupEnv
		return nil
	}
}

func OptionWithExcReporter(reporter exc.Reporter) Option {
	return func(c *compiler) error {
		c.Reporter = reporter
		return nil
	}
}

func OptionWithLogger(logger *slog.Logger) Option {
	return func(c *compiler) error {
		c.Logger = logger
		return nil
	}
}

// OptionWithMetrics records parse metrics in m. One Metrics value may be
// shared by several compilers.
func OptionWithMetrics(m *Metrics) Option {
	return func(c *compiler) error {
		c.Metrics = m
		return nil
	}
}

func OptionWithParseOptions(options typescript.Options) Option {
	return func(c *compiler) error {
		c.ParseOptions = options
		return nil
	}
}

func OptionWithMaxConcurrency(n int) Option {
	return func(c *compiler) error {
		c.MaxConcurrency = n
		return nil
	}
}

func OptionWithCrossCheck(checker CrossChecker) Option {
	return func(c *compiler) error {
		c.CrossCheck = checker
		return nil
	}
}

func New(opts ...Option) (Compiler, error) {
	c := &compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.LookupENV == nil {
		c.LookupENV = os.LookupEnv
	}
	if c.FS == nil {
		dfs, err := NewDefaultFS(c.LookupENV)
		if err != nil {
			return nil, err
		}
		c.FS = dfs
	}
	if c.MaxConcurrency <= 0 {
		max := runtime.GOMAXPROCS(-1)
		cpus := runtime.NumCPU()
		if max > cpus {
			max = cpus
		}
		c.MaxConcurrency = max
	}
	if c.Reporter == nil {
		c.Reporter = exc.NewReporter(nil)
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.SubCompilers == nil {
		c.SubCompilers = DefaultSubCompilers(c.ParseOptions)
	}
	return c, nil
}

type compiler struct {
	LookupENV      func(string) (string, bool)
	FS             source.FileSystem
	MaxConcurrency int
	Reporter       exc.Reporter
	Logger         *slog.Logger
	Metrics        *Metrics
	ParseOptions   typescript.Options
	CrossCheck     CrossChecker
	SubCompilers   map[source.FileKind]SubCompiler
}

func (self *compiler) Compile(ctx context.Context, req *CompileRequest) (*CompileResponse, error) {
	files := make([]source.File, 0, len(req.Files))
	for _, f := range req.Files {
		uri := target.Normalize(f)
		in, err := self.FS.Open(ctx, uri)
		if err != nil {
			if e := self.Reporter.Report(exc.Wrap(exc.Location{URI: uri}, exc.CodeFileNotFound, err)); e != nil {
				return nil, MultiException(self.Reporter.Reported())
			}
			continue
		}
		for _, inf := range in {
			if inf.Kind(ctx) == source.FileKindNone {
				continue
			}
			files = append(files, inf)
		}
	}

	var lock sync.Mutex
	modules := make([]*Module, 0, len(files))
	loaded := &sync.Map{}
	var tokens source.Filter[*typescript.Token]
	if req.DumpTokens {
		tokens = TokenKindFilter(req.TokenKinds)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(self.MaxConcurrency)
	for _, file := range files {
		g.Go(func() error {
			mod, err := self.compileFile(gctx, file, loaded, tokens)
			if mod != nil {
				lock.Lock()
				modules = append(modules, mod)
				lock.Unlock()
			}
			// Exceptions are already in the reporter and must not cancel
			// the remaining files.
			if _, ok := err.(exc.Exception); ok {
				return nil
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(modules, func(i, j int) bool { return modules[i].URI < modules[j].URI })
	resp := &CompileResponse{Modules: modules}
	if len(self.Reporter.Fatal()) > 0 {
		return resp, MultiException(self.Reporter.Reported())
	}
	return resp, nil
}

func (self *compiler) compileFile(ctx context.Context, file source.File, loaded *sync.Map, tokens source.Filter[*typescript.Token]) (*Module, error) {
	path := file.Path(ctx)
	if _, ok := loaded.LoadOrStore(path, true); ok {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sc := self.SubCompilers[file.Kind(ctx)]
	if sc == nil {
		e := exc.New(exc.Location{URI: path}, exc.CodeUnsupportedFileFormat, "Unsupported file format")
		return nil, self.Reporter.Report(e)
	}
	log := self.Logger.With("uri", path, "kind", file.Kind(ctx).String())
	log.Debug("parse start")
	done := self.Metrics.observeStart(file.Kind(ctx))
	mod, err := sc.CompileFile(ctx, self.Reporter, file, tokens)
	done()
	if mod == nil {
		log.Debug("parse failed", "error", err)
		return nil, err
	}
	self.Metrics.observeModule(mod)
	if self.CrossCheck != nil {
		found, cerr := self.CrossCheck.Check(ctx, file, mod.Program)
		if cerr != nil {
			return mod, cerr
		}
		for _, e := range found {
			mod.Diagnostics = append(mod.Diagnostics, e)
			self.Metrics.observeDiagnostic(e)
			if fatal := self.Reporter.Report(e); fatal != nil && err == nil {
				err = fatal
			}
		}
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		decls := make([]string, 0, len(mod.Program.Body))
		for _, stmt := range mod.Program.Body {
			decls = append(decls, typescript.DescribeStatement(stmt))
		}
		log.Debug("parse finish",
			"statements", decls,
			"type_nodes", countTypeNodes(mod.Program),
			"diagnostics", len(mod.Diagnostics),
			"speculations", mod.Stats.Speculations,
			"rollbacks", mod.Stats.Rollbacks,
			"lookaheads", mod.Stats.Lookaheads,
		)
	}
	return mod, err
}

type MultiException []exc.Exception

func (self MultiException) Error() string {
	var b strings.Builder
	for _, err := range self[:len(self)-1] {
		b.WriteString(err.Error())
		b.WriteString("; ")
	}
	b.WriteString(self[len(self)-1].Error())
	return b.String()
}
