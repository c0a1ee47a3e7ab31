package typescript

import (
	"context"
	"fmt"
	"sort"

	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/fs"
	"github.com/tsgram/tsgram/internal/source"
)

// Options control parser behaviour that is not expressed in the source.
type Options struct {
	// PreserveParens keeps TSParenthesizedType nodes in the tree.
	PreserveParens bool
	// Ambient parses the file as if every statement were inside `declare`.
	Ambient bool
}

// Stats counts speculative work done during one parse.
type Stats struct {
	Speculations int
	Rollbacks    int
	Lookaheads   int
}

type ParserTypeScript struct {
	reporter exc.Reporter
	options  Options
}

func NewParserTypeScript(reporter exc.Reporter, options Options) *ParserTypeScript {
	return &ParserTypeScript{reporter: reporter, options: options}
}

// Result is the outcome of parsing one file.
type Result struct {
	Program     *Program
	Diagnostics []exc.Exception
	Stats       Stats
}

// Parse reads and parses f. Every diagnostic is sent to the reporter; the
// returned error is the first diagnostic the reporter considers fatal.
func (self *ParserTypeScript) Parse(ctx context.Context, f source.File) (*Result, error) {
	body, err := fs.ReadAll(ctx, f)
	if err != nil {
		return nil, err
	}
	options := self.options
	if f.Kind(ctx) == source.FileKindDeclaration {
		options.Ambient = true
	}
	res := ParseSource(f.Path(ctx), body, options)
	var first error
	for _, d := range res.Diagnostics {
		if e := self.reporter.Report(d); e != nil && first == nil {
			first = e
		}
	}
	return res, first
}

// ParseSource parses src without touching any reporter.
func ParseSource(uri string, src []byte, options Options) *Result {
	p := newParser(uri, src, options)
	program := p.parseProgram()
	return &Result{
		Program:     program,
		Diagnostics: p.diagnostics,
		Stats:       p.stats,
	}
}

type parser struct {
	uri     string
	lexer   Lexer
	options Options
	ctx     Context
	prevEnd uint32
	// braces is the number of `{` consumed minus the number of `}`.
	braces      int
	diagnostics []exc.Exception
	// decorators holds decorators that have been parsed but not yet attached
	// to a class or class member.
	decorators []*Decorator
	lines      []uint32
	stats      Stats
}

func newParser(uri string, src []byte, options Options) *parser {
	p := &parser{
		uri:     uri,
		lexer:   NewLexer(src),
		options: options,
		ctx:     ContextIn,
	}
	if options.Ambient {
		p.ctx = p.ctx | ContextAmbient
	}
	p.lines = lineStarts(src)
	p.lexer.Next()
	p.collectLexerDiagnostic()
	return p
}

func lineStarts(src []byte) []uint32 {
	lines := []uint32{0}
	for i := 0; i < len(src); i = i + 1 {
		switch src[i] {
		case '\n':
			lines = append(lines, uint32(i+1))
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				continue
			}
			lines = append(lines, uint32(i+1))
		}
	}
	return lines
}

func (p *parser) location(span Span) exc.Location {
	line := sort.Search(len(p.lines), func(i int) bool { return p.lines[i] > span.Start }) - 1
	if line < 0 {
		line = 0
	}
	return exc.Location{
		URI:    p.uri,
		Line:   uint32(line + 1),
		Column: span.Start - p.lines[line] + 1,
		Start:  span.Start,
		End:    span.End,
	}
}

// ---------------------------------------------------------------------------
// Diagnostics

// error records a non-fatal diagnostic and lets parsing continue.
func (p *parser) error(span Span, code string, message string) {
	p.diagnostics = append(p.diagnostics, exc.New(p.location(span), code, message))
}

// fatal builds a diagnostic to be returned up the call stack.
func (p *parser) fatal(span Span, code string, message string) error {
	return exc.New(p.location(span), code, message)
}

func (p *parser) unexpected() error {
	tok := p.tok()
	if tok.Kind == KindEOF {
		return p.fatal(tok.Span, exc.CodeUnexpectedEOF, "unexpected end of file")
	}
	return p.fatal(tok.Span, exc.CodeUnexpectedToken, fmt.Sprintf("unexpected token %s", p.describe(tok)))
}

func (p *parser) describe(tok Token) string {
	switch tok.Kind {
	case KindIdent, KindPrivateIdent:
		return fmt.Sprintf("'%s'", tok.Value)
	case KindStr, KindNum, KindBigInt, KindNoSubstitutionTemplate, KindTemplateHead,
		KindTemplateMiddle, KindTemplateTail, KindUnknown:
		return fmt.Sprintf("'%s'", p.lexer.Source(tok.Span))
	}
	return fmt.Sprintf("'%s'", tok.Kind)
}

func (p *parser) collectLexerDiagnostic() {
	if d := p.lexer.diag; d != nil {
		p.error(d.span, d.code, d.message)
		p.lexer.diag = nil
	}
}

// ---------------------------------------------------------------------------
// Cursor

func (p *parser) tok() Token {
	return p.lexer.tok
}

func (p *parser) cur() Kind {
	return p.lexer.tok.Kind
}

func (p *parser) at(kind Kind) bool {
	return p.lexer.tok.Kind == kind
}

func (p *parser) start() uint32 {
	return p.lexer.tok.Span.Start
}

// end closes a span opened with start at the end of the last consumed token.
func (p *parser) end(start uint32) Span {
	if p.prevEnd < start {
		return Span{Start: start, End: start}
	}
	return Span{Start: start, End: p.prevEnd}
}

// nth returns the token n positions ahead; nth(0) is the current token.
func (p *parser) nth(n int) Token {
	if n == 0 {
		return p.lexer.tok
	}
	return p.lexer.Peek(n)
}

func (p *parser) peek() Token {
	return p.nth(1)
}

func (p *parser) peekAt(kind Kind) bool {
	return p.nth(1).Kind == kind
}

func (p *parser) nthAt(n int, kind Kind) bool {
	return p.nth(n).Kind == kind
}

// bump consumes the current token unconditionally.
func (p *parser) bump() {
	if p.at(KindEOF) {
		return
	}
	switch p.cur() {
	case KindLCurly:
		p.braces = p.braces + 1
	case KindRCurly:
		p.braces = p.braces - 1
	}
	p.prevEnd = p.lexer.tok.Span.End
	p.lexer.Next()
	p.collectLexerDiagnostic()
}

func (p *parser) eat(kind Kind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	return false
}

func (p *parser) expect(kind Kind) error {
	if p.at(kind) {
		p.bump()
		return nil
	}
	tok := p.tok()
	if tok.Kind == KindEOF {
		return p.fatal(tok.Span, exc.CodeUnexpectedEOF, fmt.Sprintf("'%s' expected but found end of file", kind))
	}
	return p.fatal(tok.Span, exc.CodeExpectedToken, fmt.Sprintf("'%s' expected but found %s", kind, p.describe(tok)))
}

func (p *parser) canInsertSemicolon() bool {
	return p.at(KindSemicolon) || p.at(KindRCurly) || p.at(KindEOF) || p.tok().OnNewLine
}

// asi consumes a statement terminator, real or inserted.
func (p *parser) asi() error {
	if !p.canInsertSemicolon() {
		return p.fatal(Span{Start: p.prevEnd, End: p.prevEnd}, exc.CodeExpectedToken,
			fmt.Sprintf("';' expected but found %s", p.describe(p.tok())))
	}
	p.eat(KindSemicolon)
	return nil
}

func (p *parser) reLexLAngle() Kind {
	p.lexer.ReLexLAngle()
	return p.cur()
}

func (p *parser) reLexRightAngle() Kind {
	p.lexer.ReLexRightAngle()
	return p.cur()
}

func (p *parser) reLexSingleRightAngle() {
	p.lexer.ReLexSingleRightAngle()
}

func (p *parser) reLexTemplateContinuation() {
	p.lexer.ReLexTemplateContinuation()
	p.collectLexerDiagnostic()
}

// ---------------------------------------------------------------------------
// Speculation

type checkpoint struct {
	lexer       Lexer
	prevEnd     uint32
	braces      int
	ctx         Context
	diagnostics int
	// decorators is the buffer header at checkpoint time. Elements below
	// its length are never overwritten, so restoring the header is enough.
	decorators []*Decorator
}

func (p *parser) checkpoint() checkpoint {
	return checkpoint{
		lexer:       p.lexer,
		prevEnd:     p.prevEnd,
		braces:      p.braces,
		ctx:         p.ctx,
		diagnostics: len(p.diagnostics),
		decorators:  p.decorators,
	}
}

func (p *parser) rewind(cp checkpoint) {
	p.lexer = cp.lexer
	p.prevEnd = cp.prevEnd
	p.braces = cp.braces
	p.ctx = cp.ctx
	p.diagnostics = p.diagnostics[:cp.diagnostics]
	p.decorators = cp.decorators
}

// tryParse runs f and keeps its result when it succeeds. On a fatal error
// every observable piece of parser state is restored and ok is false.
func tryParse[T any](p *parser, f func() (T, error)) (T, bool) {
	p.stats.Speculations = p.stats.Speculations + 1
	cp := p.checkpoint()
	v, err := f()
	if err != nil {
		p.stats.Rollbacks = p.stats.Rollbacks + 1
		p.rewind(cp)
		var zero T
		return zero, false
	}
	return v, true
}

// lookahead runs f for its answer and always restores parser state.
func (p *parser) lookahead(f func() bool) bool {
	p.stats.Lookaheads = p.stats.Lookaheads + 1
	cp := p.checkpoint()
	ok := f()
	p.rewind(cp)
	return ok
}

// ---------------------------------------------------------------------------
// Lists

// parseDelimitedList parses `item (sep item)* sep?` up to, but not
// including, close.
func parseDelimitedList[T any](p *parser, close Kind, sep Kind, trailing bool, item func() (T, error)) ([]T, error) {
	var list []T
	first := true
	for !p.at(close) && !p.at(KindEOF) {
		if !first {
			if err := p.expect(sep); err != nil {
				return nil, err
			}
			if p.at(close) {
				if !trailing {
					return nil, p.unexpected()
				}
				break
			}
		}
		first = false
		v, err := item()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

// parseNormalList parses `open item* close`; items carry their own
// separators.
func parseNormalList[T any](p *parser, open Kind, close Kind, item func() (T, error)) ([]T, error) {
	if err := p.expect(open); err != nil {
		return nil, err
	}
	var list []T
	for !p.at(close) {
		if p.at(KindEOF) {
			return nil, p.expect(close)
		}
		v, err := item()
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	p.bump()
	return list, nil
}
