package typescript

import "fmt"

// Kind identifies a token produced by the lexer.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindEOF

	KindIdent
	KindPrivateIdent
	KindStr
	KindNum
	KindBigInt
	KindNoSubstitutionTemplate
	KindTemplateHead
	KindTemplateMiddle
	KindTemplateTail

	// Punctuators.
	KindLCurly
	KindRCurly
	KindLParen
	KindRParen
	KindLBrack
	KindRBrack
	KindDot
	KindDot3
	KindSemicolon
	KindComma
	KindLAngle
	KindRAngle
	KindLtEq
	KindGtEq
	KindEq2
	KindNeq
	KindEq3
	KindNeq2
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindPercent
	KindStar2
	KindPlus2
	KindMinus2
	KindShiftLeft
	KindShiftRight
	KindShiftRight3
	KindAmp
	KindPipe
	KindCaret
	KindBang
	KindTilde
	KindAmp2
	KindPipe2
	KindQuestion2
	KindQuestion
	KindQuestionDot
	KindColon
	KindEq
	KindPlusEq
	KindMinusEq
	KindStarEq
	KindSlashEq
	KindPercentEq
	KindStar2Eq
	KindShiftLeftEq
	KindShiftRightEq
	KindShiftRight3Eq
	KindAmpEq
	KindPipeEq
	KindCaretEq
	KindAmp2Eq
	KindPipe2Eq
	KindQuestion2Eq
	KindArrow
	KindAt
	KindHash

	// Reserved words.
	kindReservedStart
	KindBreak
	KindCase
	KindCatch
	KindClass
	KindConst
	KindContinue
	KindDebugger
	KindDefault
	KindDelete
	KindDo
	KindElse
	KindEnum
	KindExport
	KindExtends
	KindFalse
	KindFinally
	KindFor
	KindFunction
	KindIf
	KindImport
	KindIn
	KindInstanceof
	KindNew
	KindNull
	KindReturn
	KindSuper
	KindSwitch
	KindThis
	KindThrow
	KindTrue
	KindTry
	KindTypeof
	KindVar
	KindVoid
	KindWhile
	KindWith
	kindReservedEnd

	// Contextual keywords. These are valid identifiers outside of the
	// positions that give them meaning.
	KindAbstract
	KindAccessor
	KindAny
	KindAs
	KindAsserts
	KindAsync
	KindAwait
	KindBigIntKeyword
	KindBoolean
	KindConstructor
	KindDeclare
	KindFrom
	KindGet
	KindGlobal
	KindImplements
	KindInfer
	KindInterface
	KindIntrinsic
	KindIs
	KindKeyof
	KindLet
	KindModule
	KindNamespace
	KindNever
	KindNumber
	KindObject
	KindOf
	KindOut
	KindOverride
	KindPackage
	KindPrivate
	KindProtected
	KindPublic
	KindReadonly
	KindRequire
	KindSatisfies
	KindSet
	KindStatic
	KindString
	KindSymbol
	KindType
	KindUndefined
	KindUnique
	KindUnknownKeyword
	KindYield
	kindKeywordEnd
)

var keywords = map[string]Kind{
	"break":      KindBreak,
	"case":       KindCase,
	"catch":      KindCatch,
	"class":      KindClass,
	"const":      KindConst,
	"continue":   KindContinue,
	"debugger":   KindDebugger,
	"default":    KindDefault,
	"delete":     KindDelete,
	"do":         KindDo,
	"else":       KindElse,
	"enum":       KindEnum,
	"export":     KindExport,
	"extends":    KindExtends,
	"false":      KindFalse,
	"finally":    KindFinally,
	"for":        KindFor,
	"function":   KindFunction,
	"if":         KindIf,
	"import":     KindImport,
	"in":         KindIn,
	"instanceof": KindInstanceof,
	"new":        KindNew,
	"null":       KindNull,
	"return":     KindReturn,
	"super":      KindSuper,
	"switch":     KindSwitch,
	"this":       KindThis,
	"throw":      KindThrow,
	"true":       KindTrue,
	"try":        KindTry,
	"typeof":     KindTypeof,
	"var":        KindVar,
	"void":       KindVoid,
	"while":      KindWhile,
	"with":       KindWith,

	"abstract":    KindAbstract,
	"accessor":    KindAccessor,
	"any":         KindAny,
	"as":          KindAs,
	"asserts":     KindAsserts,
	"async":       KindAsync,
	"await":       KindAwait,
	"bigint":      KindBigIntKeyword,
	"boolean":     KindBoolean,
	"constructor": KindConstructor,
	"declare":     KindDeclare,
	"from":        KindFrom,
	"get":         KindGet,
	"global":      KindGlobal,
	"implements":  KindImplements,
	"infer":       KindInfer,
	"interface":   KindInterface,
	"intrinsic":   KindIntrinsic,
	"is":          KindIs,
	"keyof":       KindKeyof,
	"let":         KindLet,
	"module":      KindModule,
	"namespace":   KindNamespace,
	"never":       KindNever,
	"number":      KindNumber,
	"object":      KindObject,
	"of":          KindOf,
	"out":         KindOut,
	"override":    KindOverride,
	"package":     KindPackage,
	"private":     KindPrivate,
	"protected":   KindProtected,
	"public":      KindPublic,
	"readonly":    KindReadonly,
	"require":     KindRequire,
	"satisfies":   KindSatisfies,
	"set":         KindSet,
	"static":      KindStatic,
	"string":      KindString,
	"symbol":      KindSymbol,
	"type":        KindType,
	"undefined":   KindUndefined,
	"unique":      KindUnique,
	"unknown":     KindUnknownKeyword,
	"yield":       KindYield,
}

var punctuators = map[Kind]string{
	KindLCurly:        "{",
	KindRCurly:        "}",
	KindLParen:        "(",
	KindRParen:        ")",
	KindLBrack:        "[",
	KindRBrack:        "]",
	KindDot:           ".",
	KindDot3:          "...",
	KindSemicolon:     ";",
	KindComma:         ",",
	KindLAngle:        "<",
	KindRAngle:        ">",
	KindLtEq:          "<=",
	KindGtEq:          ">=",
	KindEq2:           "==",
	KindNeq:           "!=",
	KindEq3:           "===",
	KindNeq2:          "!==",
	KindPlus:          "+",
	KindMinus:         "-",
	KindStar:          "*",
	KindSlash:         "/",
	KindPercent:       "%",
	KindStar2:         "**",
	KindPlus2:         "++",
	KindMinus2:        "--",
	KindShiftLeft:     "<<",
	KindShiftRight:    ">>",
	KindShiftRight3:   ">>>",
	KindAmp:           "&",
	KindPipe:          "|",
	KindCaret:         "^",
	KindBang:          "!",
	KindTilde:         "~",
	KindAmp2:          "&&",
	KindPipe2:         "||",
	KindQuestion2:     "??",
	KindQuestion:      "?",
	KindQuestionDot:   "?.",
	KindColon:         ":",
	KindEq:            "=",
	KindPlusEq:        "+=",
	KindMinusEq:       "-=",
	KindStarEq:        "*=",
	KindSlashEq:       "/=",
	KindPercentEq:     "%=",
	KindStar2Eq:       "**=",
	KindShiftLeftEq:   "<<=",
	KindShiftRightEq:  ">>=",
	KindShiftRight3Eq: ">>>=",
	KindAmpEq:         "&=",
	KindPipeEq:        "|=",
	KindCaretEq:       "^=",
	KindAmp2Eq:        "&&=",
	KindPipe2Eq:       "||=",
	KindQuestion2Eq:   "??=",
	KindArrow:         "=>",
	KindAt:            "@",
	KindHash:          "#",
}

var keywordNames = func() map[Kind]string {
	out := make(map[Kind]string, len(keywords))
	for name, kind := range keywords {
		out[kind] = name
	}
	return out
}()

func (k Kind) String() string {
	if s, ok := punctuators[k]; ok {
		return s
	}
	if s, ok := keywordNames[k]; ok {
		return s
	}
	switch k {
	case KindUnknown:
		return "Unknown"
	case KindEOF:
		return "EOF"
	case KindIdent:
		return "Identifier"
	case KindPrivateIdent:
		return "PrivateIdentifier"
	case KindStr:
		return "String"
	case KindNum:
		return "Number"
	case KindBigInt:
		return "BigInt"
	case KindNoSubstitutionTemplate:
		return "NoSubstitutionTemplate"
	case KindTemplateHead:
		return "TemplateHead"
	case KindTemplateMiddle:
		return "TemplateMiddle"
	case KindTemplateTail:
		return "TemplateTail"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// IsKeyword reports whether k is a reserved or contextual keyword.
func (k Kind) IsKeyword() bool {
	return k > kindReservedStart && k < kindKeywordEnd && k != kindReservedEnd
}

// IsReserved reports whether k can never be used as an identifier reference.
func (k Kind) IsReserved() bool {
	return k > kindReservedStart && k < kindReservedEnd
}

// IsContextualKeyword reports whether k is a keyword that remains usable as an
// identifier.
func (k Kind) IsContextualKeyword() bool {
	return k > kindReservedEnd && k < kindKeywordEnd
}

// IsIdentifierName reports whether k may appear as a property name.
func (k Kind) IsIdentifierName() bool {
	return k == KindIdent || k.IsKeyword()
}

// IsIdentifierReference reports whether k may name a binding or reference.
func (k Kind) IsIdentifierReference() bool {
	return k == KindIdent || k.IsContextualKeyword()
}

// IsLiteralPropertyName reports whether k can start a non-computed member name.
func (k Kind) IsLiteralPropertyName() bool {
	return k.IsIdentifierName() || k == KindStr || k == KindNum || k == KindBigInt
}

// IsTemplateStart reports whether k begins a template literal.
func (k Kind) IsTemplateStart() bool {
	return k == KindNoSubstitutionTemplate || k == KindTemplateHead
}

// IsNumber reports numeric literal tokens.
func (k Kind) IsNumber() bool {
	return k == KindNum || k == KindBigInt
}

// IsModifierKind reports tokens that may act as declaration modifiers.
func (k Kind) IsModifierKind() bool {
	switch k {
	case KindAbstract, KindAccessor, KindAsync, KindConst, KindDeclare,
		KindDefault, KindExport, KindIn, KindOut, KindPublic, KindPrivate,
		KindProtected, KindReadonly, KindStatic, KindOverride:
		return true
	}
	return false
}

// IsBinaryOperator reports tokens that continue a binary expression.
func (k Kind) IsBinaryOperator() bool {
	_, ok := binaryPrecedence[k]
	return ok
}

// IsAssignmentOperator reports `=` and the compound assignment operators.
func (k Kind) IsAssignmentOperator() bool {
	switch k {
	case KindEq, KindPlusEq, KindMinusEq, KindStarEq, KindSlashEq, KindPercentEq,
		KindStar2Eq, KindShiftLeftEq, KindShiftRightEq, KindShiftRight3Eq,
		KindAmpEq, KindPipeEq, KindCaretEq, KindAmp2Eq, KindPipe2Eq, KindQuestion2Eq:
		return true
	}
	return false
}

// Span is a half open byte range into the source text.
type Span struct {
	Start uint32
	End   uint32
}

// GetSpan satisfies Node for every type that embeds a Span.
func (s Span) GetSpan() Span {
	return s
}

// Size returns the number of bytes covered.
func (s Span) Size() uint32 {
	return s.End - s.Start
}

// Token is a single lexeme.
type Token struct {
	Kind      Kind
	Span      Span
	OnNewLine bool
	// Value carries the identifier name, the cooked string or template text,
	// or the raw numeric text.
	Value string
	// Escaped is set for identifiers and keywords written with unicode escapes.
	Escaped bool
}
