package typescript

import (
	"fmt"

	"github.com/tsgram/tsgram/internal/exc"
)

func (p *parser) parseProgram() *Program {
	body := p.parseStatementList(KindEOF)
	return &Program{Span: Span{Start: 0, End: uint32(len(p.lexer.src))}, Body: body}
}

// parseStatementList parses statements up to close. A fatal error inside a
// statement is recorded and parsing resumes after the `}` closing any block
// the statement opened, otherwise after the next `;`, or before the next `}`
// or line break.
func (p *parser) parseStatementList(close Kind) []Statement {
	var body []Statement
	for !p.at(close) && !p.at(KindEOF) {
		before := p.start()
		braces := p.braces
		stmt, err := p.parseStatementListItem()
		if err != nil {
			p.recover(err, before, braces)
			continue
		}
		body = append(body, stmt)
	}
	return body
}

func (p *parser) recover(err error, before uint32, braces int) {
	e, ok := err.(exc.Exception)
	if !ok {
		e = exc.WrapUnknown(p.location(p.tok().Span), err)
	}
	p.diagnostics = append(p.diagnostics, e)
	p.decorators = nil
	if p.start() == before {
		p.bump()
	}
	if p.braces > braces {
		for p.braces > braces && !p.at(KindEOF) {
			p.bump()
		}
		return
	}
	for !p.at(KindEOF) && !p.at(KindRCurly) && !p.tok().OnNewLine {
		if p.eat(KindSemicolon) {
			return
		}
		p.bump()
	}
}

func (p *parser) parseStatementListItem() (Statement, error) {
	start := p.start()
	stmt, err := p.parseStatement(start)
	if err != nil {
		return nil, err
	}
	if len(p.decorators) > 0 {
		for _, d := range p.takeDecorators() {
			p.error(d.Span, exc.CodeDecoratorsNotValid, "decorators are not valid here")
		}
	}
	return stmt, nil
}

func (p *parser) parseStatement(start uint32) (Statement, error) {
	switch {
	case p.at(KindSemicolon):
		p.bump()
		return &EmptyStatement{Span: p.end(start)}, nil
	case p.at(KindAt):
		if err := p.eatDecorators(); err != nil {
			return nil, err
		}
		if p.at(KindExport) {
			return p.parseExportDeclaration(start)
		}
		return p.parseTSDeclarationStatement(start, false)
	case p.at(KindImport) && !p.peekAt(KindLParen) && !p.peekAt(KindDot):
		return p.parseImportDeclaration(start)
	case p.at(KindExport):
		return p.parseExportDeclaration(start)
	case p.atStartOfTSDeclaration():
		return p.parseTSDeclarationStatement(start, false)
	}
	expr, err := withContext(p, ContextIn, 0, p.parseExpression)
	if err != nil {
		return nil, err
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	return &ExpressionStatement{Span: p.end(start), Expression: expr}, nil
}

// atStartOfTSDeclaration scans past modifiers to decide whether the
// statement at the cursor is a declaration. A modifier followed by a line
// break ends the scan: `declare\nfoo` is two expression statements.
func (p *parser) atStartOfTSDeclaration() bool {
	return p.lookahead(p.atStartOfTSDeclarationWorker)
}

func (p *parser) atStartOfTSDeclarationWorker() bool {
	for {
		switch p.cur() {
		case KindVar, KindConst, KindFunction, KindClass, KindEnum:
			return true
		case KindLet:
			next := p.peek()
			return next.Kind.IsIdentifierReference() || next.Kind == KindLBrack || next.Kind == KindLCurly
		case KindInterface, KindType:
			p.bump()
			return p.cur().IsIdentifierReference() && !p.tok().OnNewLine
		case KindModule, KindNamespace:
			p.bump()
			return !p.tok().OnNewLine && (p.cur().IsIdentifierReference() || p.at(KindStr))
		case KindAbstract, KindAccessor, KindAsync, KindDeclare, KindPrivate, KindProtected,
			KindPublic, KindReadonly:
			p.bump()
			if p.tok().OnNewLine {
				return false
			}
		case KindGlobal:
			p.bump()
			return p.at(KindLCurly)
		case KindStatic:
			p.bump()
		default:
			return false
		}
	}
}

// parseTSDeclarationStatement parses a declaration with its leading
// modifiers. `declare` puts the declaration in the ambient context and
// `async` toggles the await context; both are restored on exit.
func (p *parser) parseTSDeclarationStatement(start uint32, anonymous bool) (Statement, error) {
	saved := p.ctx
	defer func() {
		p.ctx = saved
	}()
	modifiers := p.eatModifiersBeforeDeclaration()
	if modifiers.Contains(ModifierDeclare) {
		p.ctx = p.ctx.with(ContextAmbient, 0)
	}
	if modifiers.Contains(ModifierAsync) {
		p.ctx = p.ctx.with(ContextAwait, 0)
	} else {
		p.ctx = p.ctx.with(0, ContextAwait)
	}
	return p.parseDeclaration(start, modifiers, anonymous)
}

func (p *parser) parseDeclaration(start uint32, modifiers Modifiers, anonymous bool) (Statement, error) {
	switch p.cur() {
	case KindNamespace, KindModule:
		return p.parseModuleDeclaration(start, modifiers)
	case KindGlobal:
		if p.peekAt(KindLCurly) {
			return p.parseModuleDeclaration(start, modifiers)
		}
	case KindType:
		return p.parseTypeAliasDeclaration(start, modifiers)
	case KindEnum:
		return p.parseEnumDeclaration(start, modifiers)
	case KindInterface:
		if p.isAtInterfaceDeclaration() {
			return p.parseInterfaceDeclaration(start, modifiers)
		}
	case KindClass:
		return p.parseClassDeclaration(start, modifiers, anonymous)
	case KindImport:
		p.verifyModifiersFor(modifiers, DeclarationKindImportEquals)
		p.bump()
		return p.parseTSImportEqualsDeclaration(start)
	case KindVar, KindLet, KindConst:
		return p.parseVariableDeclaration(start, modifiers)
	case KindFunction:
		return p.parseFunctionDeclaration(start, modifiers, anonymous)
	}
	return nil, p.unexpected()
}

func (p *parser) isAtInterfaceDeclaration() bool {
	next := p.peek()
	return p.at(KindInterface) && !next.OnNewLine && (next.Kind.IsIdentifierReference() || next.Kind == KindLCurly)
}

// ---------------------------------------------------------------------------
// Type declarations

// TypeAlias = type identifier [ TypeParameters ] = ( intrinsic | Type ) ; .
func (p *parser) parseTypeAliasDeclaration(start uint32, modifiers Modifiers) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindTypeAlias)
	p.bump()
	id, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	params, err := p.parseTSTypeParameters()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindEq); err != nil {
		return nil, err
	}
	var ty TSType
	if p.at(KindIntrinsic) && !p.peekAt(KindDot) {
		span := p.tok().Span
		p.bump()
		ty = &TSKeywordType{Span: span, Keyword: TSKeywordIntrinsic}
	} else if ty, err = p.parseTSType(); err != nil {
		return nil, err
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	return &TSTypeAliasDeclaration{
		Span:           p.end(start),
		ID:             id,
		TypeParameters: params,
		TypeAnnotation: ty,
		Declare:        modifiers.Contains(ModifierDeclare),
	}, nil
}

// Interface = interface identifier [ TypeParameters ] [ extends Heritage { , Heritage } ] TypeLiteral .
func (p *parser) parseInterfaceDeclaration(start uint32, modifiers Modifiers) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindInterface)
	p.bump()
	id, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	params, err := p.parseTSTypeParameters()
	if err != nil {
		return nil, err
	}
	var extends []*TSInterfaceHeritage
	if p.eat(KindExtends) {
		for {
			heritageStart := p.start()
			expr, args, err := p.parseHeritageExpression()
			if err != nil {
				return nil, err
			}
			extends = append(extends, &TSInterfaceHeritage{Span: p.end(heritageStart), Expression: expr, TypeArguments: args})
			if !p.eat(KindComma) {
				break
			}
		}
	}
	bodyStart := p.start()
	members, err := parseNormalList(p, KindLCurly, KindRCurly, p.parseTSTypeSignature)
	if err != nil {
		return nil, err
	}
	return &TSInterfaceDeclaration{
		Span:           p.end(start),
		ID:             id,
		TypeParameters: params,
		Extends:        extends,
		Body:           &TSInterfaceBody{Span: p.end(bodyStart), Body: members},
		Declare:        modifiers.Contains(ModifierDeclare),
	}, nil
}

// parseHeritageExpression reads `Expr [TypeArguments]` after extends.
func (p *parser) parseHeritageExpression() (Expression, *TSTypeParameterInstantiation, error) {
	expr, err := p.parseLeftHandSideExpression()
	if err != nil {
		return nil, nil, err
	}
	if inst, ok := expr.(*TSInstantiationExpression); ok {
		return inst.Expression, inst.TypeArguments, nil
	}
	args, err := p.tryParseTypeArguments()
	if err != nil {
		return nil, nil, err
	}
	return expr, args, nil
}

// Enum = enum identifier { [ EnumMember { , EnumMember } [ , ] ] } .
func (p *parser) parseEnumDeclaration(start uint32, modifiers Modifiers) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindEnum)
	p.bump()
	id, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindLCurly); err != nil {
		return nil, err
	}
	members, err := parseDelimitedList(p, KindRCurly, KindComma, true, p.parseTSEnumMember)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	return &TSEnumDeclaration{
		Span:    p.end(start),
		ID:      id,
		Members: members,
		Const:   modifiers.Contains(ModifierConst),
		Declare: modifiers.Contains(ModifierDeclare),
	}, nil
}

func (p *parser) parseTSEnumMember() (*TSEnumMember, error) {
	start := p.start()
	member := &TSEnumMember{}
	tok := p.tok()
	switch {
	case tok.Kind == KindLBrack:
		expr, err := p.parseComputedPropertyName()
		if err != nil {
			return nil, err
		}
		switch name := expr.(type) {
		case *StringLiteral:
			member.ID = name
		case *TemplateLiteral:
			if len(name.Expressions) > 0 {
				return nil, p.fatal(name.Span, exc.CodeEnumMemberComputedName, "computed property names are not allowed in enums")
			}
			member.ID = name
		default:
			return nil, p.fatal(expr.GetSpan(), exc.CodeEnumMemberComputedName, "computed property names are not allowed in enums")
		}
		member.Computed = true
	case tok.Kind == KindStr:
		p.bump()
		member.ID = &StringLiteral{Span: tok.Span, Value: tok.Value}
	case tok.Kind.IsNumber():
		return nil, p.fatal(tok.Span, exc.CodeEnumMemberNumericName, "an enum member cannot have a numeric name")
	default:
		name, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		member.ID = name
	}
	if p.eat(KindEq) {
		init, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
		if err != nil {
			return nil, err
		}
		member.Initializer = init
	}
	member.Span = p.end(start)
	return member, nil
}

// Module = ( namespace | module ) identifier { . identifier } ModuleBlock | module string [ ModuleBlock ] | global ModuleBlock .
func (p *parser) parseModuleDeclaration(start uint32, modifiers Modifiers) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindModule)
	declare := modifiers.Contains(ModifierDeclare)
	switch {
	case p.eat(KindNamespace):
		return p.parseModuleDeclarationBody(start, TSModuleDeclarationKindNamespace, declare)
	case p.at(KindGlobal):
		tok := p.tok()
		p.bump()
		block, err := p.parseModuleBlock()
		if err != nil {
			return nil, err
		}
		return &TSModuleDeclaration{
			Span:    p.end(start),
			ID:      &BindingIdentifier{Span: tok.Span, Name: tok.Value},
			Body:    block,
			Kind:    TSModuleDeclarationKindGlobal,
			Declare: declare,
		}, nil
	}
	if err := p.expect(KindModule); err != nil {
		return nil, err
	}
	if !p.at(KindStr) {
		return p.parseModuleDeclarationBody(start, TSModuleDeclarationKindModule, declare)
	}
	tok := p.tok()
	p.bump()
	decl := &TSModuleDeclaration{
		ID:      &StringLiteral{Span: tok.Span, Value: tok.Value},
		Kind:    TSModuleDeclarationKindModule,
		Declare: declare,
	}
	if p.at(KindLCurly) {
		block, err := p.parseModuleBlock()
		if err != nil {
			return nil, err
		}
		decl.Body = block
	} else if err := p.asi(); err != nil {
		return nil, err
	}
	decl.Span = p.end(start)
	return decl, nil
}

// parseModuleDeclarationBody handles `A.B.C { }` by nesting one
// declaration per name. Inner declarations carry no modifiers.
func (p *parser) parseModuleDeclarationBody(start uint32, kind TSModuleDeclarationKind, declare bool) (*TSModuleDeclaration, error) {
	id, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	decl := &TSModuleDeclaration{ID: id, Kind: kind, Declare: declare}
	if p.eat(KindDot) {
		inner, err := p.parseModuleDeclarationBody(p.start(), kind, false)
		if err != nil {
			return nil, err
		}
		decl.Body = inner
	} else {
		block, err := p.parseModuleBlock()
		if err != nil {
			return nil, err
		}
		decl.Body = block
	}
	decl.Span = p.end(start)
	return decl, nil
}

func (p *parser) parseModuleBlock() (*TSModuleBlock, error) {
	start := p.start()
	if err := p.expect(KindLCurly); err != nil {
		return nil, err
	}
	body := p.parseStatementList(KindRCurly)
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	return &TSModuleBlock{Span: p.end(start), Body: body}, nil
}

// ---------------------------------------------------------------------------
// Imports and exports

// ImportEquals = import [ type ] identifier = ( require ( string ) | EntityName ) ; .
func (p *parser) parseTSImportEqualsDeclaration(start uint32) (Statement, error) {
	kind := ImportOrExportKindValue
	if p.at(KindType) && !p.peekAt(KindEq) {
		p.bump()
		kind = ImportOrExportKindType
	}
	id, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindEq); err != nil {
		return nil, err
	}
	var reference TSModuleReference
	if p.at(KindRequire) && p.peekAt(KindLParen) {
		referenceStart := p.start()
		p.bump()
		p.bump()
		lit, err := p.parseStringLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.expect(KindRParen); err != nil {
			return nil, err
		}
		reference = &TSExternalModuleReference{Span: p.end(referenceStart), Expression: lit}
	} else {
		name, err := p.parseTSTypeName()
		if err != nil {
			return nil, err
		}
		reference = name.(TSModuleReference)
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	return &TSImportEqualsDeclaration{Span: p.end(start), ID: id, ModuleReference: reference, ImportKind: kind}, nil
}

func (p *parser) parseStringLiteral() (*StringLiteral, error) {
	tok := p.tok()
	if err := p.expect(KindStr); err != nil {
		return nil, err
	}
	return &StringLiteral{Span: tok.Span, Value: tok.Value}, nil
}

func (p *parser) isImportEquals() bool {
	if p.at(KindType) && !p.peekAt(KindEq) {
		p.bump()
	}
	return p.cur().IsIdentifierReference() && p.peekAt(KindEq)
}

// Import = import string ; | import [ type ] [ identifier [ , ] ] [ * as identifier | { Specifiers } ] from string ; .
func (p *parser) parseImportDeclaration(start uint32) (Statement, error) {
	p.bump()
	if p.lookahead(p.isImportEquals) {
		return p.parseTSImportEqualsDeclaration(start)
	}
	decl := &ImportDeclaration{}
	if !p.at(KindStr) {
		if p.at(KindType) && !p.peekAt(KindFrom) && !p.peekAt(KindComma) {
			p.bump()
			decl.ImportKind = ImportOrExportKindType
		}
		if p.cur().IsIdentifierReference() {
			id, err := p.parseBindingIdentifier()
			if err != nil {
				return nil, err
			}
			decl.Default = id
			if !p.eat(KindComma) {
				return p.finishImportDeclaration(start, decl)
			}
		}
		switch p.cur() {
		case KindStar:
			p.bump()
			if err := p.expect(KindAs); err != nil {
				return nil, err
			}
			ns, err := p.parseBindingIdentifier()
			if err != nil {
				return nil, err
			}
			decl.Namespace = ns
		case KindLCurly:
			p.bump()
			specifiers, err := parseDelimitedList(p, KindRCurly, KindComma, true, p.parseImportSpecifier)
			if err != nil {
				return nil, err
			}
			if err := p.expect(KindRCurly); err != nil {
				return nil, err
			}
			decl.Specifiers = specifiers
		default:
			return nil, p.unexpected()
		}
	}
	return p.finishImportDeclaration(start, decl)
}

func (p *parser) finishImportDeclaration(start uint32, decl *ImportDeclaration) (Statement, error) {
	if decl.Default != nil || decl.Namespace != nil || decl.Specifiers != nil || !p.at(KindStr) {
		if err := p.expect(KindFrom); err != nil {
			return nil, err
		}
	}
	source, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	decl.Source = source
	decl.Span = p.end(start)
	return decl, nil
}

// isTypeOnlySpecifier matches `type name` but not `type as x` or `type`.
func (p *parser) isTypeOnlySpecifier() bool {
	return p.at(KindType) && p.peek().Kind.IsIdentifierName() && !p.peekAt(KindAs)
}

func (p *parser) parseImportSpecifier() (*ImportSpecifier, error) {
	start := p.start()
	kind := ImportOrExportKindValue
	if p.isTypeOnlySpecifier() {
		p.bump()
		kind = ImportOrExportKindType
	}
	imported, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	var local *BindingIdentifier
	if p.eat(KindAs) {
		if local, err = p.parseBindingIdentifier(); err != nil {
			return nil, err
		}
	} else {
		tok := Token{Kind: KindIdent, Span: imported.Span, Value: imported.Name}
		if kw, ok := keywords[imported.Name]; ok {
			tok.Kind = kw
		}
		if err := p.checkIdentifierReference(tok); err != nil {
			return nil, err
		}
		local = &BindingIdentifier{Span: imported.Span, Name: imported.Name}
	}
	return &ImportSpecifier{Span: p.end(start), Imported: imported, Local: local, ImportKind: kind}, nil
}

func (p *parser) parseExportSpecifier() (*ExportSpecifier, error) {
	start := p.start()
	kind := ImportOrExportKindValue
	if p.isTypeOnlySpecifier() {
		p.bump()
		kind = ImportOrExportKindType
	}
	local, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	exported := local
	if p.eat(KindAs) {
		if exported, err = p.parseIdentifierName(); err != nil {
			return nil, err
		}
	}
	return &ExportSpecifier{Span: p.end(start), Local: local, Exported: exported, ExportKind: kind}, nil
}

// parseExportDeclaration dispatches on the token after `export`.
func (p *parser) parseExportDeclaration(start uint32) (Statement, error) {
	p.bump()
	switch {
	case p.at(KindEq):
		p.bump()
		expr, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
		if err != nil {
			return nil, err
		}
		if err := p.asi(); err != nil {
			return nil, err
		}
		return &TSExportAssignment{Span: p.end(start), Expression: expr}, nil
	case p.at(KindAs):
		p.bump()
		if err := p.expect(KindNamespace); err != nil {
			return nil, err
		}
		id, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		if err := p.asi(); err != nil {
			return nil, err
		}
		return &TSNamespaceExportDeclaration{Span: p.end(start), ID: id}, nil
	case p.at(KindDefault):
		return p.parseExportDefaultDeclaration(start)
	case p.at(KindStar), p.at(KindType) && p.peekAt(KindStar):
		return p.parseExportAllDeclaration(start)
	case p.at(KindLCurly), p.at(KindType) && p.peekAt(KindLCurly):
		return p.parseExportNamedSpecifiers(start)
	case p.at(KindImport):
		declStart := p.start()
		p.bump()
		decl, err := p.parseTSImportEqualsDeclaration(declStart)
		if err != nil {
			return nil, err
		}
		return &ExportNamedDeclaration{Span: p.end(start), Declaration: decl}, nil
	}
	if err := p.eatDecorators(); err != nil {
		return nil, err
	}
	if !p.atStartOfTSDeclaration() {
		return nil, p.unexpected()
	}
	decl, err := p.parseTSDeclarationStatement(p.start(), false)
	if err != nil {
		return nil, err
	}
	return &ExportNamedDeclaration{Span: p.end(start), Declaration: decl}, nil
}

func (p *parser) parseExportDefaultDeclaration(start uint32) (Statement, error) {
	p.bump()
	if err := p.eatDecorators(); err != nil {
		return nil, err
	}
	declaration := false
	switch p.cur() {
	case KindClass, KindFunction:
		declaration = true
	case KindAbstract:
		declaration = p.peekAt(KindClass) && !p.peek().OnNewLine
	case KindAsync:
		declaration = p.peekAt(KindFunction) && !p.peek().OnNewLine
	case KindInterface:
		declaration = p.isAtInterfaceDeclaration()
	}
	if declaration {
		decl, err := p.parseTSDeclarationStatement(p.start(), true)
		if err != nil {
			return nil, err
		}
		return &ExportDefaultDeclaration{Span: p.end(start), Declaration: decl}, nil
	}
	expr, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
	if err != nil {
		return nil, err
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	return &ExportDefaultDeclaration{Span: p.end(start), Declaration: expr}, nil
}

func (p *parser) parseExportAllDeclaration(start uint32) (Statement, error) {
	decl := &ExportAllDeclaration{}
	if p.eat(KindType) {
		decl.ExportKind = ImportOrExportKindType
	}
	p.bump()
	if p.eat(KindAs) {
		exported, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		decl.Exported = exported
	}
	if err := p.expect(KindFrom); err != nil {
		return nil, err
	}
	source, err := p.parseStringLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	decl.Source = source
	decl.Span = p.end(start)
	return decl, nil
}

func (p *parser) parseExportNamedSpecifiers(start uint32) (Statement, error) {
	decl := &ExportNamedDeclaration{}
	if p.eat(KindType) {
		decl.ExportKind = ImportOrExportKindType
	}
	p.bump()
	specifiers, err := parseDelimitedList(p, KindRCurly, KindComma, true, p.parseExportSpecifier)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	decl.Specifiers = specifiers
	if p.eat(KindFrom) {
		if decl.Source, err = p.parseStringLiteral(); err != nil {
			return nil, err
		}
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	decl.Span = p.end(start)
	return decl, nil
}

// ---------------------------------------------------------------------------
// Functions and variables

// Function = function [ * ] identifier [ TypeParameters ] Parameters [ : ReturnType ] ( Body | ; ) .
// A declaration without a body is an overload or ambient signature.
func (p *parser) parseFunctionDeclaration(start uint32, modifiers Modifiers, anonymous bool) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindFunction)
	async := modifiers.Contains(ModifierAsync)
	if err := p.expect(KindFunction); err != nil {
		return nil, err
	}
	generator := p.eat(KindStar)
	var id *BindingIdentifier
	if !anonymous || p.cur().IsIdentifierReference() {
		var err error
		if id, err = p.parseBindingIdentifier(); err != nil {
			return nil, err
		}
	}
	parts, err := p.parseFunctionSignature(async, generator, formalParameterKindFunction)
	if err != nil {
		return nil, err
	}
	body, err := p.parseOptionalFunctionBody()
	if err != nil {
		return nil, err
	}
	return &FunctionDeclaration{
		Span:           p.end(start),
		ID:             id,
		Async:          async,
		Generator:      generator,
		Declare:        modifiers.Contains(ModifierDeclare),
		TypeParameters: parts.typeParameters,
		ThisParam:      parts.thisParam,
		Params:         parts.params,
		ReturnType:     parts.returnType,
		Body:           body,
	}, nil
}

// parseFunctionSignature parses parameters in the await and yield context
// of the function they belong to.
func (p *parser) parseFunctionSignature(async bool, generator bool, kind formalParameterKind) (signatureParts, error) {
	var enter, exit Context
	if async {
		enter = enter | ContextAwait
	} else {
		exit = exit | ContextAwait
	}
	if generator {
		enter = enter | ContextYield
	} else {
		exit = exit | ContextYield
	}
	return withContext(p, enter, exit, func() (signatureParts, error) {
		return p.parseSignatureParts(kind)
	})
}

// parseOptionalFunctionBody returns nil for a body-less signature.
func (p *parser) parseOptionalFunctionBody() (*FunctionBody, error) {
	if !p.at(KindLCurly) {
		return nil, p.asi()
	}
	body, err := p.parseFunctionBody()
	if err != nil {
		return nil, err
	}
	if p.ctx.Has(ContextAmbient) {
		p.error(body.Span, exc.CodeAmbientImplementation, "an implementation cannot be declared in ambient contexts")
	}
	return body, nil
}

// parseFunctionBody skips a brace-balanced block. Template substitutions
// are tracked so that `}` closing a `${` is re-scanned as template text.
func (p *parser) parseFunctionBody() (*FunctionBody, error) {
	start := p.start()
	if err := p.expect(KindLCurly); err != nil {
		return nil, err
	}
	depth := 1
	var templates []int
	for depth > 0 {
		switch p.cur() {
		case KindEOF:
			return nil, p.expect(KindRCurly)
		case KindLCurly:
			depth = depth + 1
		case KindTemplateHead:
			templates = append(templates, depth)
		case KindRCurly:
			if n := len(templates); n > 0 && templates[n-1] == depth {
				p.reLexTemplateContinuation()
				if p.at(KindTemplateTail) {
					templates = templates[:n-1]
				}
				p.bump()
				continue
			}
			depth = depth - 1
		}
		p.bump()
	}
	return &FunctionBody{Span: p.end(start)}, nil
}

// Variables = ( var | let | const ) Declarator { , Declarator } ; .
func (p *parser) parseVariableDeclaration(start uint32, modifiers Modifiers) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindVariable)
	decl := &VariableDeclaration{Declare: modifiers.Contains(ModifierDeclare)}
	switch p.cur() {
	case KindLet:
		decl.Kind = VariableDeclarationKindLet
	case KindConst:
		decl.Kind = VariableDeclarationKindConst
	}
	p.bump()
	for {
		declarator, err := p.parseVariableDeclarator()
		if err != nil {
			return nil, err
		}
		decl.Declarations = append(decl.Declarations, declarator)
		if !p.eat(KindComma) {
			break
		}
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	decl.Span = p.end(start)
	return decl, nil
}

func (p *parser) parseVariableDeclarator() (*VariableDeclarator, error) {
	start := p.start()
	id, err := p.parseBindingPatternKind()
	if err != nil {
		return nil, err
	}
	declarator := &VariableDeclarator{ID: id}
	if p.at(KindBang) && !p.tok().OnNewLine {
		p.bump()
		declarator.Definite = true
	}
	if declarator.TypeAnnotation, err = p.parseTSTypeAnnotation(); err != nil {
		return nil, err
	}
	if p.eat(KindEq) {
		if declarator.Init, err = withContext(p, ContextIn, 0, p.parseAssignmentExpression); err != nil {
			return nil, err
		}
	}
	declarator.Span = p.end(start)
	return declarator, nil
}

// ---------------------------------------------------------------------------
// Classes

// Class = { Decorator } class identifier [ TypeParameters ] [ extends Heritage ] [ ImplementsClause ] { { ClassElement } } .
func (p *parser) parseClassDeclaration(start uint32, modifiers Modifiers, anonymous bool) (Statement, error) {
	p.verifyModifiersFor(modifiers, DeclarationKindClass)
	decl := &ClassDeclaration{
		Decorators: p.takeDecorators(),
		Abstract:   modifiers.Contains(ModifierAbstract),
		Declare:    modifiers.Contains(ModifierDeclare),
	}
	if err := p.expect(KindClass); err != nil {
		return nil, err
	}
	var err error
	if !anonymous || (p.cur().IsIdentifierReference() && !p.at(KindImplements)) {
		if decl.ID, err = p.parseBindingIdentifier(); err != nil {
			return nil, err
		}
	}
	if decl.TypeParameters, err = p.parseTSTypeParameters(); err != nil {
		return nil, err
	}
	if p.eat(KindExtends) {
		if decl.SuperClass, decl.SuperTypeParameters, err = p.parseHeritageExpression(); err != nil {
			return nil, err
		}
	}
	if p.at(KindImplements) {
		if decl.Implements, err = p.parseTSImplementsClause(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(KindLCurly); err != nil {
		return nil, err
	}
	for !p.at(KindRCurly) && !p.at(KindEOF) {
		if p.eat(KindSemicolon) {
			continue
		}
		element, err := p.parseClassElement()
		if err != nil {
			return nil, err
		}
		decl.Body = append(decl.Body, element)
	}
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	decl.Span = p.end(start)
	return decl, nil
}

func isClassMemberNameStart(kind Kind) bool {
	return kind.IsLiteralPropertyName() || kind == KindLBrack || kind == KindPrivateIdent
}

// nextIsClassMemberName reports whether the token after a contextual
// keyword such as `get` or `async` names a member on the same line.
func (p *parser) nextIsClassMemberName() bool {
	next := p.peek()
	return !next.OnNewLine && (isClassMemberNameStart(next.Kind) || next.Kind == KindStar)
}

func (p *parser) parseClassElement() (ClassElement, error) {
	start := p.start()
	if err := p.eatDecorators(); err != nil {
		return nil, err
	}
	decorators := p.takeDecorators()
	if p.lookahead(p.isAtTSIndexSignatureMember) {
		modifiers := p.parseClassElementModifiers(false)
		p.verifyModifiers(modifiers, modifierAllowList[DeclarationKindIndexSignature], modifierCannotAppearOnIndexSignature)
		sig, err := p.parseIndexSignatureDeclaration(start, modifiers)
		if err != nil {
			return nil, err
		}
		return &ClassIndexSignature{TSIndexSignature: sig}, nil
	}
	modifiers := p.parseClassElementModifiers(false)
	if p.at(KindAccessor) && p.nextIsClassMemberName() {
		p.addModifier(&modifiers, ModifierAccessor, p.tok().Span)
		p.bump()
	}
	async := false
	if p.at(KindAsync) && p.nextIsClassMemberName() {
		p.addModifier(&modifiers, ModifierAsync, p.tok().Span)
		p.bump()
		async = true
	}
	generator := p.eat(KindStar)
	kind := MethodDefinitionKindMethod
	if !async && !generator && (p.at(KindGet) || p.at(KindSet)) && p.nextIsClassMemberName() && !p.peekAt(KindStar) {
		kind = MethodDefinitionKindGet
		if p.at(KindSet) {
			kind = MethodDefinitionKindSet
		}
		p.bump()
	}
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	if kind == MethodDefinitionKindMethod && !computed && isConstructorKey(key) {
		kind = MethodDefinitionKindConstructor
	}
	optional := p.eat(KindQuestion)
	if kind != MethodDefinitionKindMethod || async || generator || p.at(KindLParen) || p.at(KindLAngle) {
		p.verifyModifiersFor(modifiers, DeclarationKindClassMethod)
		paramKind := formalParameterKindFunction
		if kind == MethodDefinitionKindConstructor {
			paramKind = formalParameterKindConstructor
		}
		parts, err := p.parseFunctionSignature(async, generator, paramKind)
		if err != nil {
			return nil, err
		}
		if kind == MethodDefinitionKindGet || kind == MethodDefinitionKindSet {
			p.checkAccessorParts(kind == MethodDefinitionKindSet, parts)
		}
		body, err := p.parseOptionalFunctionBody()
		if err != nil {
			return nil, err
		}
		return &MethodDefinition{
			Span:           p.end(start),
			Decorators:     decorators,
			Modifiers:      modifiers,
			Kind:           kind,
			Key:            key,
			Computed:       computed,
			Optional:       optional,
			Async:          async,
			Generator:      generator,
			TypeParameters: parts.typeParameters,
			ThisParam:      parts.thisParam,
			Params:         parts.params,
			ReturnType:     parts.returnType,
			Body:           body,
		}, nil
	}
	p.verifyModifiersFor(modifiers, DeclarationKindClassProperty)
	prop := &PropertyDefinition{
		Decorators: decorators,
		Modifiers:  modifiers,
		Key:        key,
		Computed:   computed,
		Optional:   optional,
	}
	if !optional && p.at(KindBang) && !p.tok().OnNewLine {
		p.bump()
		prop.Definite = true
	}
	if prop.TypeAnnotation, err = p.parseTSTypeAnnotation(); err != nil {
		return nil, err
	}
	if p.eat(KindEq) {
		if prop.Value, err = withContext(p, ContextIn, 0, p.parseAssignmentExpression); err != nil {
			return nil, err
		}
	}
	if err := p.asi(); err != nil {
		return nil, err
	}
	prop.Span = p.end(start)
	return prop, nil
}

func isConstructorKey(key PropertyKey) bool {
	switch k := key.(type) {
	case *IdentifierName:
		return k.Name == "constructor"
	case *StringLiteral:
		return k.Value == "constructor"
	}
	return false
}

// DescribeStatement names a statement for log output.
func DescribeStatement(stmt Statement) string {
	switch s := stmt.(type) {
	case *TSTypeAliasDeclaration:
		return fmt.Sprintf("type %s", s.ID.Name)
	case *TSInterfaceDeclaration:
		return fmt.Sprintf("interface %s", s.ID.Name)
	case *TSEnumDeclaration:
		return fmt.Sprintf("enum %s", s.ID.Name)
	case *ClassDeclaration:
		if s.ID != nil {
			return fmt.Sprintf("class %s", s.ID.Name)
		}
		return "class"
	case *FunctionDeclaration:
		if s.ID != nil {
			return fmt.Sprintf("function %s", s.ID.Name)
		}
		return "function"
	case *TSModuleDeclaration:
		return s.Kind.String()
	case *ExportNamedDeclaration:
		if s.Declaration != nil {
			return "export " + DescribeStatement(s.Declaration)
		}
		return "export"
	}
	return fmt.Sprintf("%T", stmt)
}
