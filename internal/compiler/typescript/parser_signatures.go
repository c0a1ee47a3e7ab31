package typescript

import (
	"github.com/tsgram/tsgram/internal/exc"
)

// TypeMember = IndexSignature | CallSignature | ConstructSignature | Accessor | PropertySignature | MethodSignature .
func (p *parser) parseTSTypeSignature() (TSSignature, error) {
	if p.lookahead(p.isAtTSIndexSignatureMember) {
		start := p.start()
		modifiers := p.parseClassElementModifiers(false)
		p.verifyModifiers(modifiers, modifierAllowList[DeclarationKindIndexSignature], modifierCannotAppearOnIndexSignature)
		return p.parseIndexSignatureDeclaration(start, modifiers)
	}
	switch p.cur() {
	case KindLParen, KindLAngle:
		return p.parseTSCallSignatureMember()
	case KindNew:
		if p.peekAt(KindLParen) || p.peekAt(KindLAngle) {
			return p.parseTSConstructSignatureMember()
		}
	case KindGet:
		if p.isNextAtTypeMemberName() {
			return p.parseTSAccessorSignatureMember(TSMethodSignatureKindGet)
		}
	case KindSet:
		if p.isNextAtTypeMemberName() {
			return p.parseTSAccessorSignatureMember(TSMethodSignatureKindSet)
		}
	}
	return p.parseTSPropertyOrMethodSignatureMember()
}

// isAtTSIndexSignatureMember matches `modifiers [ name :` and
// `modifiers [ name ,`.
func (p *parser) isAtTSIndexSignatureMember() bool {
	offset := 0
	for p.isNthAtModifier(offset, false) {
		offset = offset + 1
	}
	if !p.nthAt(offset, KindLBrack) || !p.nth(offset+1).Kind.IsIdentifierReference() {
		return false
	}
	return p.nthAt(offset+2, KindColon) || p.nthAt(offset+2, KindComma)
}

func (p *parser) isNextAtTypeMemberName() bool {
	next := p.peek().Kind
	return next.IsLiteralPropertyName() || next == KindLBrack
}

// parseTypeMemberSemicolon consumes `,`, `;` or an inserted semicolon.
func (p *parser) parseTypeMemberSemicolon() error {
	if p.eat(KindComma) {
		return nil
	}
	return p.asi()
}

type signatureParts struct {
	typeParameters *TSTypeParameterDeclaration
	thisParam      *TSThisParameter
	params         *FormalParameters
	returnType     *TSTypeAnnotation
}

// parseSignatureParts reads `[TypeParameters] Parameters [: ReturnType]`.
func (p *parser) parseSignatureParts(kind formalParameterKind) (signatureParts, error) {
	var parts signatureParts
	var err error
	if parts.typeParameters, err = p.parseTSTypeParameters(); err != nil {
		return parts, err
	}
	if parts.thisParam, parts.params, err = p.parseFormalParameters(kind); err != nil {
		return parts, err
	}
	if parts.returnType, err = p.parseTSReturnTypeAnnotation(); err != nil {
		return parts, err
	}
	return parts, nil
}

func (p *parser) parseTSCallSignatureMember() (TSSignature, error) {
	start := p.start()
	parts, err := p.parseSignatureParts(formalParameterKindSignature)
	if err != nil {
		return nil, err
	}
	if err := p.parseTypeMemberSemicolon(); err != nil {
		return nil, err
	}
	return &TSCallSignatureDeclaration{
		Span:           p.end(start),
		TypeParameters: parts.typeParameters,
		ThisParam:      parts.thisParam,
		Params:         parts.params,
		ReturnType:     parts.returnType,
	}, nil
}

func (p *parser) parseTSConstructSignatureMember() (TSSignature, error) {
	start := p.start()
	p.bump()
	parts, err := p.parseSignatureParts(formalParameterKindSignature)
	if err != nil {
		return nil, err
	}
	if parts.thisParam != nil {
		p.error(parts.thisParam.Span, exc.CodeConstructorTypeThisParameter, "a constructor type cannot have a 'this' parameter")
	}
	if err := p.parseTypeMemberSemicolon(); err != nil {
		return nil, err
	}
	return &TSConstructSignatureDeclaration{
		Span:           p.end(start),
		TypeParameters: parts.typeParameters,
		Params:         parts.params,
		ReturnType:     parts.returnType,
	}, nil
}

func (p *parser) parseTSAccessorSignatureMember(kind TSMethodSignatureKind) (TSSignature, error) {
	start := p.start()
	p.bump()
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	parts, err := p.parseSignatureParts(formalParameterKindSignature)
	if err != nil {
		return nil, err
	}
	p.checkAccessorParts(kind == TSMethodSignatureKindSet, parts)
	if err := p.parseTypeMemberSemicolon(); err != nil {
		return nil, err
	}
	return &TSMethodSignature{
		Span:           p.end(start),
		Key:            key,
		Computed:       computed,
		Kind:           kind,
		TypeParameters: parts.typeParameters,
		ThisParam:      parts.thisParam,
		Params:         parts.params,
		ReturnType:     parts.returnType,
	}, nil
}

// checkAccessorParts reports type parameters on any accessor and a return
// type on a set accessor.
func (p *parser) checkAccessorParts(setter bool, parts signatureParts) {
	if parts.typeParameters != nil {
		p.error(parts.typeParameters.Span, exc.CodeAccessorTypeParameters, "an accessor cannot have type parameters")
	}
	if setter && parts.returnType != nil {
		p.error(parts.returnType.Span, exc.CodeSetAccessorReturnType, "a 'set' accessor cannot have a return type annotation")
	}
}

func (p *parser) parseTSPropertyOrMethodSignatureMember() (TSSignature, error) {
	start := p.start()
	readonly := p.at(KindReadonly) && p.isNextAtTypeMemberName()
	readonlySpan := p.tok().Span
	if readonly {
		p.bump()
	}
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	optional := p.eat(KindQuestion)
	if p.at(KindLParen) || p.at(KindLAngle) {
		parts, err := p.parseSignatureParts(formalParameterKindSignature)
		if err != nil {
			return nil, err
		}
		if readonly {
			p.error(readonlySpan, exc.CodeModifierCannotBeUsedHere, "'readonly' modifier cannot be used here")
		}
		if err := p.parseTypeMemberSemicolon(); err != nil {
			return nil, err
		}
		return &TSMethodSignature{
			Span:           p.end(start),
			Key:            key,
			Computed:       computed,
			Optional:       optional,
			Kind:           TSMethodSignatureKindMethod,
			TypeParameters: parts.typeParameters,
			ThisParam:      parts.thisParam,
			Params:         parts.params,
			ReturnType:     parts.returnType,
		}, nil
	}
	annotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if err := p.parseTypeMemberSemicolon(); err != nil {
		return nil, err
	}
	return &TSPropertySignature{
		Span:           p.end(start),
		Computed:       computed,
		Optional:       optional,
		Readonly:       readonly,
		Key:            key,
		TypeAnnotation: annotation,
	}, nil
}

// IndexSignature = [ name : Type { , name : Type } ] : Type .
func (p *parser) parseIndexSignatureDeclaration(start uint32, modifiers Modifiers) (*TSIndexSignature, error) {
	if err := p.expect(KindLBrack); err != nil {
		return nil, err
	}
	var params []*TSIndexSignatureName
	for {
		param, err := p.parseTSIndexSignatureName()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.eat(KindComma) {
			break
		}
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	annotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, p.expect(KindColon)
	}
	if err := p.parseTypeMemberSemicolon(); err != nil {
		return nil, err
	}
	return &TSIndexSignature{
		Span:           p.end(start),
		Parameters:     params,
		TypeAnnotation: annotation,
		Readonly:       modifiers.Contains(ModifierReadonly),
		Static:         modifiers.Contains(ModifierStatic),
	}, nil
}

func (p *parser) parseTSIndexSignatureName() (*TSIndexSignatureName, error) {
	start := p.start()
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	annotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	if annotation == nil {
		return nil, p.expect(KindColon)
	}
	return &TSIndexSignatureName{Span: p.end(start), Name: name.Name, TypeAnnotation: annotation}, nil
}

// PropertyName = identifier | string | number | private_name | [ Expression ] .
func (p *parser) parsePropertyName() (PropertyKey, bool, error) {
	tok := p.tok()
	switch {
	case tok.Kind == KindStr:
		p.bump()
		return &StringLiteral{Span: tok.Span, Value: tok.Value}, false, nil
	case tok.Kind.IsNumber():
		lit, err := p.parseLiteralExpression()
		return lit, false, err
	case tok.Kind == KindPrivateIdent:
		p.bump()
		return &PrivateIdentifier{Span: tok.Span, Name: tok.Value}, false, nil
	case tok.Kind == KindLBrack:
		key, err := p.parseComputedPropertyName()
		return key, true, err
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, false, err
	}
	return name, false, nil
}

func (p *parser) parseComputedPropertyName() (Expression, error) {
	p.bump()
	expr, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	return expr, nil
}
