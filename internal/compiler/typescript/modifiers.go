package typescript

import (
	"fmt"

	"github.com/tsgram/tsgram/internal/exc"
)

type ModifierKind uint8

const (
	ModifierDeclare ModifierKind = iota
	ModifierExport
	ModifierDefault
	ModifierAbstract
	ModifierAsync
	ModifierConst
	ModifierPublic
	ModifierPrivate
	ModifierProtected
	ModifierStatic
	ModifierReadonly
	ModifierOverride
	ModifierAccessor
	ModifierIn
	ModifierOut
)

var modifierNames = [...]string{
	ModifierDeclare:   "declare",
	ModifierExport:    "export",
	ModifierDefault:   "default",
	ModifierAbstract:  "abstract",
	ModifierAsync:     "async",
	ModifierConst:     "const",
	ModifierPublic:    "public",
	ModifierPrivate:   "private",
	ModifierProtected: "protected",
	ModifierStatic:    "static",
	ModifierReadonly:  "readonly",
	ModifierOverride:  "override",
	ModifierAccessor:  "accessor",
	ModifierIn:        "in",
	ModifierOut:       "out",
}

func (k ModifierKind) String() string {
	return modifierNames[k]
}

// Flag returns the single-bit set for k.
func (k ModifierKind) Flag() ModifierFlags {
	return 1 << k
}

type ModifierFlags uint16

const (
	ModifierFlagDeclare ModifierFlags = 1 << iota
	ModifierFlagExport
	ModifierFlagDefault
	ModifierFlagAbstract
	ModifierFlagAsync
	ModifierFlagConst
	ModifierFlagPublic
	ModifierFlagPrivate
	ModifierFlagProtected
	ModifierFlagStatic
	ModifierFlagReadonly
	ModifierFlagOverride
	ModifierFlagAccessor
	ModifierFlagIn
	ModifierFlagOut

	ModifierFlagAccessibility = ModifierFlagPublic | ModifierFlagPrivate | ModifierFlagProtected
)

func (f ModifierFlags) Has(flags ModifierFlags) bool {
	return f&flags == flags
}

func modifierKindOf(kind Kind) (ModifierKind, bool) {
	switch kind {
	case KindDeclare:
		return ModifierDeclare, true
	case KindExport:
		return ModifierExport, true
	case KindDefault:
		return ModifierDefault, true
	case KindAbstract:
		return ModifierAbstract, true
	case KindAsync:
		return ModifierAsync, true
	case KindConst:
		return ModifierConst, true
	case KindPublic:
		return ModifierPublic, true
	case KindPrivate:
		return ModifierPrivate, true
	case KindProtected:
		return ModifierProtected, true
	case KindStatic:
		return ModifierStatic, true
	case KindReadonly:
		return ModifierReadonly, true
	case KindOverride:
		return ModifierOverride, true
	case KindAccessor:
		return ModifierAccessor, true
	case KindIn:
		return ModifierIn, true
	case KindOut:
		return ModifierOut, true
	}
	return 0, false
}

type Modifier struct {
	Span
	Kind ModifierKind
}

// Modifiers is an ordered modifier list. A kind appears at most once.
type Modifiers struct {
	List  []Modifier
	Flags ModifierFlags
}

func (m Modifiers) Contains(kind ModifierKind) bool {
	return m.Flags.Has(kind.Flag())
}

func (m Modifiers) IsEmpty() bool {
	return len(m.List) == 0
}

// DeclarationKind selects a modifier allow-list.
type DeclarationKind uint8

const (
	DeclarationKindEnum DeclarationKind = iota
	DeclarationKindTypeAlias
	DeclarationKindInterface
	DeclarationKindModule
	DeclarationKindTypeParameter
	DeclarationKindIndexSignature
	DeclarationKindFunction
	DeclarationKindVariable
	DeclarationKindClass
	DeclarationKindImportEquals
	DeclarationKindClassProperty
	DeclarationKindClassMethod
	DeclarationKindConstructorParameter
	DeclarationKindParameter
)

var modifierAllowList = map[DeclarationKind]ModifierFlags{
	DeclarationKindEnum:           ModifierFlagDeclare | ModifierFlagConst,
	DeclarationKindTypeAlias:      ModifierFlagDeclare,
	DeclarationKindInterface:      ModifierFlagDeclare,
	DeclarationKindModule:         ModifierFlagDeclare | ModifierFlagExport,
	DeclarationKindTypeParameter:  ModifierFlagIn | ModifierFlagOut | ModifierFlagConst,
	DeclarationKindIndexSignature: ModifierFlagReadonly | ModifierFlagStatic,
	DeclarationKindFunction:       ModifierFlagDeclare | ModifierFlagAsync,
	DeclarationKindVariable:       ModifierFlagDeclare,
	DeclarationKindClass:          ModifierFlagDeclare | ModifierFlagAbstract,
	DeclarationKindImportEquals:   0,
	DeclarationKindClassProperty: ModifierFlagAccessibility | ModifierFlagStatic | ModifierFlagReadonly |
		ModifierFlagAbstract | ModifierFlagOverride | ModifierFlagDeclare | ModifierFlagAccessor,
	DeclarationKindClassMethod: ModifierFlagAccessibility | ModifierFlagStatic | ModifierFlagAbstract |
		ModifierFlagOverride | ModifierFlagAsync,
	DeclarationKindConstructorParameter: ModifierFlagAccessibility | ModifierFlagReadonly | ModifierFlagOverride,
	DeclarationKindParameter:            0,
}

// AllowedModifiers returns the modifiers permitted on kind.
func AllowedModifiers(kind DeclarationKind) ModifierFlags {
	return modifierAllowList[kind]
}

type modifierDiagnostic func(m Modifier) (code string, message string)

func modifierCannotBeUsedHere(m Modifier) (string, string) {
	return exc.CodeModifierCannotBeUsedHere, fmt.Sprintf("'%s' modifier cannot be used here", m.Kind)
}

func modifierCannotAppearOnTypeParameter(m Modifier) (string, string) {
	return exc.CodeModifierCannotBeUsedHere, fmt.Sprintf("'%s' modifier cannot appear on a type parameter", m.Kind)
}

func modifierCannotAppearOnIndexSignature(m Modifier) (string, string) {
	return exc.CodeIndexSignatureModifier, fmt.Sprintf("'%s' modifier cannot appear on an index signature", m.Kind)
}

// verifyModifiers reports each modifier outside allowed. The modifiers stay
// in the tree.
func (p *parser) verifyModifiers(m Modifiers, allowed ModifierFlags, diag modifierDiagnostic) {
	for _, mod := range m.List {
		if !allowed.Has(mod.Kind.Flag()) {
			code, message := diag(mod)
			p.error(mod.Span, code, message)
		}
	}
}

func (p *parser) verifyModifiersFor(m Modifiers, kind DeclarationKind) {
	p.verifyModifiers(m, modifierAllowList[kind], modifierCannotBeUsedHere)
}

func (p *parser) addModifier(m *Modifiers, kind ModifierKind, span Span) {
	if m.Contains(kind) {
		p.error(span, exc.CodeModifierAlreadySeen, fmt.Sprintf("'%s' modifier already seen", kind))
		return
	}
	m.Flags = m.Flags | kind.Flag()
	m.List = append(m.List, Modifier{Span: span, Kind: kind})
}

// parseModifiers collects modifiers in type parameter, index signature and
// parameter positions. With permitConst, `const` acts as a modifier when it
// is followed on the same line by something that can follow a modifier.
func (p *parser) parseModifiers(permitConst bool) Modifiers {
	var m Modifiers
	for {
		kind, ok := modifierKindOf(p.cur())
		if !ok {
			break
		}
		if !p.lookahead(func() bool { return p.nextTokenCanFollowModifier(permitConst) }) {
			break
		}
		p.addModifier(&m, kind, p.tok().Span)
		p.bump()
	}
	return m
}

func (p *parser) nextTokenCanFollowModifier(permitConst bool) bool {
	kind := p.cur()
	p.bump()
	switch kind {
	case KindConst:
		if !permitConst {
			return p.at(KindEnum)
		}
	case KindStatic:
		return p.canFollowModifier()
	case KindExport:
		if p.at(KindDefault) {
			return true
		}
		return p.at(KindStar) || p.at(KindLCurly) || p.at(KindAs) || p.canFollowModifier()
	case KindDefault:
		switch p.cur() {
		case KindClass, KindFunction, KindInterface, KindAt:
			return true
		case KindAbstract, KindAsync:
			return !p.peek().OnNewLine
		}
		return false
	}
	return !p.tok().OnNewLine && p.canFollowModifier()
}

func (p *parser) canFollowModifier() bool {
	switch p.cur() {
	case KindLBrack, KindLCurly, KindStar, KindDot3, KindPrivateIdent:
		return true
	}
	return p.cur().IsLiteralPropertyName()
}

// isNthAtModifier decides whether the nth token acts as a class element or
// parameter property modifier.
func (p *parser) isNthAtModifier(n int, isConstructorParameter bool) bool {
	nth := p.nth(n)
	switch nth.Kind {
	case KindPublic, KindProtected, KindPrivate, KindStatic, KindAbstract,
		KindReadonly, KindDeclare, KindOverride, KindExport:
	default:
		return false
	}
	next := p.nth(n + 1)
	if next.OnNewLine {
		return false
	}
	followedByAnyMember := next.Kind == KindPrivateIdent || next.Kind == KindLBrack || next.Kind.IsLiteralPropertyName()
	followedByClassMember := !isConstructorParameter && next.Kind == KindStar
	followedByParameter := isConstructorParameter &&
		(next.Kind == KindLCurly || next.Kind == KindLBrack || next.Kind == KindDot3)
	return followedByAnyMember || followedByClassMember || followedByParameter
}

// parseClassElementModifiers collects modifiers on class members and
// constructor parameters. Repeated modifiers are reported and dropped.
func (p *parser) parseClassElementModifiers(isConstructorParameter bool) Modifiers {
	var m Modifiers
	for p.isNthAtModifier(0, isConstructorParameter) {
		kind, ok := modifierKindOf(p.cur())
		if !ok {
			break
		}
		p.addModifier(&m, kind, p.tok().Span)
		p.bump()
	}
	return m
}

// isAtModifierBeforeDeclaration reports whether the current token is a
// modifier of the declaration that follows it.
func (p *parser) isAtModifierBeforeDeclaration() bool {
	next := p.peek()
	switch p.cur() {
	case KindConst:
		return next.Kind == KindEnum
	case KindDeclare, KindAbstract, KindAsync, KindAccessor, KindPublic, KindPrivate,
		KindProtected, KindReadonly, KindStatic, KindOverride:
		return !next.OnNewLine && (next.Kind.IsIdentifierName() || next.Kind == KindLCurly)
	}
	return false
}

func (p *parser) eatModifiersBeforeDeclaration() Modifiers {
	var m Modifiers
	for p.isAtModifierBeforeDeclaration() {
		kind, _ := modifierKindOf(p.cur())
		p.addModifier(&m, kind, p.tok().Span)
		p.bump()
	}
	return m
}
