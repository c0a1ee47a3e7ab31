package typescript

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsgram/tsgram/internal/exc"
	"github.com/tsgram/tsgram/internal/iter"
	"github.com/tsgram/tsgram/internal/source"
)

// Lexer is a value type. Copying a Lexer copies its position, which is what
// the parser relies on for checkpoints and peeking.
type Lexer struct {
	src  []byte
	pos  int
	tok  Token
	diag *lexDiag
}

type lexDiag struct {
	code    string
	message string
	span    Span
}

// NewLexer returns a lexer positioned before the first token. Call Next to
// load it.
func NewLexer(src []byte) Lexer {
	l := Lexer{src: src}
	if len(src) >= 2 && src[0] == '#' && src[1] == '!' {
		for l.pos < len(src) && !isLineTerminatorByte(src[l.pos]) {
			l.pos = l.pos + 1
		}
	}
	return l
}

// Token returns the current token.
func (l *Lexer) Token() Token {
	return l.tok
}

// Source returns the text covered by span.
func (l *Lexer) Source(span Span) string {
	return string(l.src[span.Start:span.End])
}

// Next advances to the following token.
func (l *Lexer) Next() {
	l.diag = nil
	newline := l.skipTrivia()
	start := l.pos
	kind, value, escaped := l.scan()
	l.tok = Token{
		Kind:      kind,
		Span:      Span{Start: uint32(start), End: uint32(l.pos)},
		OnNewLine: newline,
		Value:     value,
		Escaped:   escaped,
	}
}

// Peek returns the token n positions ahead without moving.
func (l Lexer) Peek(n int) Token {
	for x := 0; x < n; x = x + 1 {
		l.Next()
	}
	return l.tok
}

// ReLexLAngle splits `<<`, `<=` and `<<=` so that the current token is a
// single `<`.
func (l *Lexer) ReLexLAngle() {
	switch l.tok.Kind {
	case KindShiftLeft, KindLtEq, KindShiftLeftEq:
		l.pos = int(l.tok.Span.Start) + 1
		l.tok.Kind = KindLAngle
		l.tok.Span.End = uint32(l.pos)
		l.tok.Value = ""
	}
}

// ReLexRightAngle joins a `>` with any directly following `>` and `=`
// characters. The lexer never does this on its own because nested type
// argument lists close with consecutive `>` tokens.
func (l *Lexer) ReLexRightAngle() {
	if l.tok.Kind != KindRAngle {
		return
	}
	p := int(l.tok.Span.Start) + 1
	kind := KindRAngle
	if p < len(l.src) && l.src[p] == '>' {
		p = p + 1
		kind = KindShiftRight
		if p < len(l.src) && l.src[p] == '>' {
			p = p + 1
			kind = KindShiftRight3
		}
	}
	if p < len(l.src) && l.src[p] == '=' {
		p = p + 1
		switch kind {
		case KindRAngle:
			kind = KindGtEq
		case KindShiftRight:
			kind = KindShiftRightEq
		case KindShiftRight3:
			kind = KindShiftRight3Eq
		}
	}
	l.pos = p
	l.tok.Kind = kind
	l.tok.Span.End = uint32(p)
}

// ReLexSingleRightAngle undoes ReLexRightAngle.
func (l *Lexer) ReLexSingleRightAngle() {
	switch l.tok.Kind {
	case KindRAngle, KindGtEq, KindShiftRight, KindShiftRight3, KindShiftRightEq, KindShiftRight3Eq:
		l.pos = int(l.tok.Span.Start) + 1
		l.tok.Kind = KindRAngle
		l.tok.Span.End = uint32(l.pos)
	}
}

// ReLexTemplateContinuation rescans a `}` that closes a template substitution
// as a template middle or tail.
func (l *Lexer) ReLexTemplateContinuation() {
	if l.tok.Kind != KindRCurly {
		return
	}
	l.diag = nil
	l.pos = int(l.tok.Span.Start) + 1
	kind, value := l.scanTemplate(false)
	l.tok.Kind = kind
	l.tok.Value = value
	l.tok.Span.End = uint32(l.pos)
}

// Tokens lexes the whole input. Template substitutions are tracked so the
// stream matches what the parser sees.
func (l Lexer) Tokens(ctx context.Context) source.Iterator[*Token] {
	var out []*Token
	var braces []int
	for {
		l.Next()
		switch l.tok.Kind {
		case KindTemplateHead:
			braces = append(braces, 0)
		case KindLCurly:
			if len(braces) > 0 {
				braces[len(braces)-1] = braces[len(braces)-1] + 1
			}
		case KindRCurly:
			if len(braces) > 0 {
				if braces[len(braces)-1] == 0 {
					l.ReLexTemplateContinuation()
					if l.tok.Kind == KindTemplateTail {
						braces = braces[:len(braces)-1]
					}
				} else {
					braces[len(braces)-1] = braces[len(braces)-1] - 1
				}
			}
		}
		if l.tok.Kind == KindEOF {
			break
		}
		tok := l.tok
		out = append(out, &tok)
	}
	return iter.NewSlice(out)
}

func (l *Lexer) errorf(code string, start int, message string) {
	l.diag = &lexDiag{code: code, message: message, span: Span{Start: uint32(start), End: uint32(l.pos)}}
}

func isLineTerminatorByte(b byte) bool {
	return b == '\n' || b == '\r'
}

func isLineTerminatorRune(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func (l *Lexer) skipTrivia() bool {
	newline := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\v' || c == '\f':
			l.pos = l.pos + 1
		case isLineTerminatorByte(c):
			newline = true
			l.pos = l.pos + 1
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) {
				r, size := utf8.DecodeRune(l.src[l.pos:])
				if isLineTerminatorRune(r) {
					break
				}
				l.pos = l.pos + size
			}
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '*':
			start := l.pos
			end := bytes.Index(l.src[l.pos+2:], []byte("*/"))
			if end < 0 {
				body := l.src[l.pos:]
				l.pos = len(l.src)
				l.errorf(exc.CodeUnterminatedComment, start, "'*/' expected")
				if containsLineTerminator(body) {
					newline = true
				}
				return newline
			}
			body := l.src[l.pos : l.pos+2+end]
			if containsLineTerminator(body) {
				newline = true
			}
			l.pos = l.pos + 2 + end + 2
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRune(l.src[l.pos:])
			if isLineTerminatorRune(r) {
				newline = true
			} else if !(r == '\u00a0' || r == '\ufeff' || unicode.Is(unicode.Zs, r)) {
				return newline
			}
			l.pos = l.pos + size
		default:
			return newline
		}
	}
	return newline
}

func containsLineTerminator(b []byte) bool {
	for _, r := range string(b) {
		if isLineTerminatorRune(r) {
			return true
		}
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '$' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= utf8.RuneSelf && unicode.IsLetter(r))
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '\u200c' || r == '\u200d' ||
		(r >= utf8.RuneSelf && (unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)))
}

func (l *Lexer) peekRune(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return -1
	}
	r, _ := utf8.DecodeRune(l.src[l.pos+offset:])
	return r
}

func (l *Lexer) at(offset int, b byte) bool {
	return l.pos+offset < len(l.src) && l.src[l.pos+offset] == b
}

// punct consumes size bytes and returns kind.
func (l *Lexer) punct(kind Kind, size int) (Kind, string, bool) {
	l.pos = l.pos + size
	return kind, "", false
}

func (l *Lexer) scan() (Kind, string, bool) {
	if l.pos >= len(l.src) {
		return KindEOF, "", false
	}
	r := l.peekRune(0)
	if isIdentStart(r) || r == '\\' {
		return l.scanIdentifier()
	}
	c := l.src[l.pos]
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		kind, value := l.scanNumber()
		return kind, value, false
	case '"', '\'':
		return KindStr, l.scanString(c), false
	case '`':
		l.pos = l.pos + 1
		kind, value := l.scanTemplate(true)
		return kind, value, false
	case '#':
		if next := l.peekRune(1); isIdentStart(next) || next == '\\' {
			l.pos = l.pos + 1
			_, value, escaped := l.scanIdentifier()
			return KindPrivateIdent, value, escaped
		}
		return l.punct(KindHash, 1)
	case '{':
		return l.punct(KindLCurly, 1)
	case '}':
		return l.punct(KindRCurly, 1)
	case '(':
		return l.punct(KindLParen, 1)
	case ')':
		return l.punct(KindRParen, 1)
	case '[':
		return l.punct(KindLBrack, 1)
	case ']':
		return l.punct(KindRBrack, 1)
	case ';':
		return l.punct(KindSemicolon, 1)
	case ',':
		return l.punct(KindComma, 1)
	case ':':
		return l.punct(KindColon, 1)
	case '~':
		return l.punct(KindTilde, 1)
	case '@':
		return l.punct(KindAt, 1)
	case '.':
		if l.at(1, '.') && l.at(2, '.') {
			return l.punct(KindDot3, 3)
		}
		if next := l.peekRune(1); next >= '0' && next <= '9' {
			kind, value := l.scanNumber()
			return kind, value, false
		}
		return l.punct(KindDot, 1)
	case '<':
		if l.at(1, '<') {
			if l.at(2, '=') {
				return l.punct(KindShiftLeftEq, 3)
			}
			return l.punct(KindShiftLeft, 2)
		}
		if l.at(1, '=') {
			return l.punct(KindLtEq, 2)
		}
		return l.punct(KindLAngle, 1)
	case '>':
		return l.punct(KindRAngle, 1)
	case '=':
		if l.at(1, '=') {
			if l.at(2, '=') {
				return l.punct(KindEq3, 3)
			}
			return l.punct(KindEq2, 2)
		}
		if l.at(1, '>') {
			return l.punct(KindArrow, 2)
		}
		return l.punct(KindEq, 1)
	case '!':
		if l.at(1, '=') {
			if l.at(2, '=') {
				return l.punct(KindNeq2, 3)
			}
			return l.punct(KindNeq, 2)
		}
		return l.punct(KindBang, 1)
	case '+':
		if l.at(1, '+') {
			return l.punct(KindPlus2, 2)
		}
		if l.at(1, '=') {
			return l.punct(KindPlusEq, 2)
		}
		return l.punct(KindPlus, 1)
	case '-':
		if l.at(1, '-') {
			return l.punct(KindMinus2, 2)
		}
		if l.at(1, '=') {
			return l.punct(KindMinusEq, 2)
		}
		return l.punct(KindMinus, 1)
	case '*':
		if l.at(1, '*') {
			if l.at(2, '=') {
				return l.punct(KindStar2Eq, 3)
			}
			return l.punct(KindStar2, 2)
		}
		if l.at(1, '=') {
			return l.punct(KindStarEq, 2)
		}
		return l.punct(KindStar, 1)
	case '/':
		if l.at(1, '=') {
			return l.punct(KindSlashEq, 2)
		}
		return l.punct(KindSlash, 1)
	case '%':
		if l.at(1, '=') {
			return l.punct(KindPercentEq, 2)
		}
		return l.punct(KindPercent, 1)
	case '^':
		if l.at(1, '=') {
			return l.punct(KindCaretEq, 2)
		}
		return l.punct(KindCaret, 1)
	case '&':
		if l.at(1, '&') {
			if l.at(2, '=') {
				return l.punct(KindAmp2Eq, 3)
			}
			return l.punct(KindAmp2, 2)
		}
		if l.at(1, '=') {
			return l.punct(KindAmpEq, 2)
		}
		return l.punct(KindAmp, 1)
	case '|':
		if l.at(1, '|') {
			if l.at(2, '=') {
				return l.punct(KindPipe2Eq, 3)
			}
			return l.punct(KindPipe2, 2)
		}
		if l.at(1, '=') {
			return l.punct(KindPipeEq, 2)
		}
		return l.punct(KindPipe, 1)
	case '?':
		if l.at(1, '?') {
			if l.at(2, '=') {
				return l.punct(KindQuestion2Eq, 3)
			}
			return l.punct(KindQuestion2, 2)
		}
		// `a?.5:b` is a conditional, not an optional chain.
		if l.at(1, '.') {
			if next := l.peekRune(2); next < '0' || next > '9' {
				return l.punct(KindQuestionDot, 2)
			}
		}
		return l.punct(KindQuestion, 1)
	}
	start := l.pos
	_, size := utf8.DecodeRune(l.src[l.pos:])
	l.pos = l.pos + size
	l.errorf(exc.CodeInvalidCharacter, start, "invalid character")
	return KindUnknown, string(l.src[start:l.pos]), false
}

func (l *Lexer) scanIdentifier() (Kind, string, bool) {
	var b strings.Builder
	escaped := false
	first := true
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRune(l.src[l.pos:])
		if r == '\\' {
			start := l.pos
			l.pos = l.pos + 1
			if !l.at(0, 'u') {
				l.errorf(exc.CodeInvalidCharacter, start, "invalid character")
				break
			}
			l.pos = l.pos + 1
			cp, ok := l.scanUnicodeEscape()
			if !ok || (first && !isIdentStart(cp)) || (!first && !isIdentPart(cp)) {
				l.errorf(exc.CodeInvalidCharacter, start, "invalid unicode escape in identifier")
			}
			b.WriteRune(cp)
			escaped = true
			first = false
			continue
		}
		if (first && !isIdentStart(r)) || (!first && !isIdentPart(r)) {
			break
		}
		b.WriteRune(r)
		l.pos = l.pos + size
		first = false
	}
	name := b.String()
	if kind, ok := keywords[name]; ok && !escaped {
		return kind, name, false
	}
	return KindIdent, name, escaped
}

// scanUnicodeEscape reads the part of a \u escape after the `u`.
func (l *Lexer) scanUnicodeEscape() (rune, bool) {
	if l.at(0, '{') {
		end := bytes.IndexByte(l.src[l.pos:], '}')
		if end < 0 {
			return utf8.RuneError, false
		}
		v, err := strconv.ParseUint(string(l.src[l.pos+1:l.pos+end]), 16, 32)
		l.pos = l.pos + end + 1
		if err != nil || v > unicode.MaxRune {
			return utf8.RuneError, false
		}
		return rune(v), true
	}
	if l.pos+4 > len(l.src) {
		l.pos = len(l.src)
		return utf8.RuneError, false
	}
	v, err := strconv.ParseUint(string(l.src[l.pos:l.pos+4]), 16, 32)
	if err != nil {
		return utf8.RuneError, false
	}
	l.pos = l.pos + 4
	return rune(v), true
}

func isDigitFor(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return c >= '0' && c <= '9'
}

func (l *Lexer) scanDigits(base int) {
	for l.pos < len(l.src) && (isDigitFor(l.src[l.pos], base) || l.src[l.pos] == '_') {
		l.pos = l.pos + 1
	}
}

func (l *Lexer) scanNumber() (Kind, string) {
	start := l.pos
	base := 10
	if l.at(0, '0') && l.pos+1 < len(l.src) {
		switch l.src[l.pos+1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
	}
	if base != 10 {
		l.pos = l.pos + 2
		l.scanDigits(base)
		if l.pos == start+2 {
			l.errorf(exc.CodeInvalidNumber, start, "digit expected")
		}
	} else {
		l.scanDigits(10)
		if l.at(0, '.') {
			l.pos = l.pos + 1
			l.scanDigits(10)
		}
		if l.at(0, 'e') || l.at(0, 'E') {
			save := l.pos
			l.pos = l.pos + 1
			if l.at(0, '+') || l.at(0, '-') {
				l.pos = l.pos + 1
			}
			if l.pos >= len(l.src) || !isDigitFor(l.src[l.pos], 10) {
				l.pos = save
			} else {
				l.scanDigits(10)
			}
		}
	}
	kind := KindNum
	if l.at(0, 'n') {
		l.pos = l.pos + 1
		kind = KindBigInt
	}
	if r := l.peekRune(0); isIdentStart(r) {
		l.errorf(exc.CodeInvalidNumber, start, "an identifier or keyword cannot immediately follow a numeric literal")
	}
	return kind, string(l.src[start:l.pos])
}

// scanEscape decodes one escape sequence; the backslash is already consumed.
func (l *Lexer) scanEscape(b *strings.Builder) {
	if l.pos >= len(l.src) {
		return
	}
	c := l.src[l.pos]
	l.pos = l.pos + 1
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\r':
		if l.at(0, '\n') {
			l.pos = l.pos + 1
		}
	case '\n':
	case 'x':
		if l.pos+2 <= len(l.src) {
			if v, err := strconv.ParseUint(string(l.src[l.pos:l.pos+2]), 16, 8); err == nil {
				b.WriteRune(rune(v))
				l.pos = l.pos + 2
				return
			}
		}
		b.WriteByte('x')
	case 'u':
		cp, ok := l.scanUnicodeEscape()
		if ok {
			b.WriteRune(cp)
		}
	default:
		l.pos = l.pos - 1
		r, size := utf8.DecodeRune(l.src[l.pos:])
		l.pos = l.pos + size
		if r != '\u2028' && r != '\u2029' {
			b.WriteRune(r)
		}
	}
}

func (l *Lexer) scanString(quote byte) string {
	start := l.pos
	l.pos = l.pos + 1
	var b strings.Builder
	for {
		if l.pos >= len(l.src) || isLineTerminatorByte(l.src[l.pos]) {
			l.errorf(exc.CodeUnterminatedStringLiteral, start, "unterminated string literal")
			return b.String()
		}
		c := l.src[l.pos]
		switch c {
		case quote:
			l.pos = l.pos + 1
			return b.String()
		case '\\':
			l.pos = l.pos + 1
			l.scanEscape(&b)
		default:
			r, size := utf8.DecodeRune(l.src[l.pos:])
			b.WriteRune(r)
			l.pos = l.pos + size
		}
	}
}

// scanTemplate reads a template chunk. head is true when the chunk follows
// a backtick and false when it follows the `}` of a substitution.
func (l *Lexer) scanTemplate(head bool) (Kind, string) {
	start := l.pos - 1
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			l.errorf(exc.CodeUnterminatedTemplateLiteral, start, "unterminated template literal")
			if head {
				return KindNoSubstitutionTemplate, b.String()
			}
			return KindTemplateTail, b.String()
		}
		c := l.src[l.pos]
		switch {
		case c == '`':
			l.pos = l.pos + 1
			if head {
				return KindNoSubstitutionTemplate, b.String()
			}
			return KindTemplateTail, b.String()
		case c == '$' && l.at(1, '{'):
			l.pos = l.pos + 2
			if head {
				return KindTemplateHead, b.String()
			}
			return KindTemplateMiddle, b.String()
		case c == '\\':
			l.pos = l.pos + 1
			l.scanEscape(&b)
		case c == '\r':
			// Template values normalise CRLF and CR to LF.
			l.pos = l.pos + 1
			if l.at(0, '\n') {
				l.pos = l.pos + 1
			}
			b.WriteByte('\n')
		default:
			r, size := utf8.DecodeRune(l.src[l.pos:])
			b.WriteRune(r)
			l.pos = l.pos + size
		}
	}
}
