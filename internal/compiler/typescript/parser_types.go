package typescript

import (
	"github.com/tsgram/tsgram/internal/exc"
)

// Type = FunctionType | ConstructorType | UnionType [ extends Type ? Type : Type ] .
func (p *parser) parseTSType() (TSType, error) {
	if p.isStartOfFunctionTypeOrConstructorType() {
		return p.parseFunctionOrConstructorType()
	}
	start := p.start()
	ty, err := p.parseUnionTypeOrHigher()
	if err != nil {
		return nil, err
	}
	if p.ctx.Has(ContextDisallowConditionalTypes) || p.tok().OnNewLine || !p.eat(KindExtends) {
		return ty, nil
	}
	extendsType, err := withContext(p, ContextDisallowConditionalTypes, 0, p.parseTSType)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindQuestion); err != nil {
		return nil, err
	}
	trueType, err := withContext(p, 0, ContextDisallowConditionalTypes, p.parseTSType)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindColon); err != nil {
		return nil, err
	}
	falseType, err := withContext(p, 0, ContextDisallowConditionalTypes, p.parseTSType)
	if err != nil {
		return nil, err
	}
	return &TSConditionalType{
		Span:        p.end(start),
		CheckType:   ty,
		ExtendsType: extendsType,
		TrueType:    trueType,
		FalseType:   falseType,
	}, nil
}

// FunctionType = [ abstract ] [ new ] [ TypeParameters ] Parameters => ReturnType .
func (p *parser) parseFunctionOrConstructorType() (TSType, error) {
	start := p.start()
	abstract := p.eat(KindAbstract)
	isConstructor := p.eat(KindNew)
	typeParameters, err := p.parseTSTypeParameters()
	if err != nil {
		return nil, err
	}
	thisParam, params, err := p.parseFormalParameters(formalParameterKindSignature)
	if err != nil {
		return nil, err
	}
	returnStart := p.start()
	if err := p.expect(KindArrow); err != nil {
		return nil, err
	}
	ret, err := withContext(p, 0, ContextDisallowConditionalTypes, p.parseTypeOrTypePredicate)
	if err != nil {
		return nil, err
	}
	returnType := &TSTypeAnnotation{Span: p.end(returnStart), TypeAnnotation: ret}
	span := p.end(start)
	if isConstructor {
		if thisParam != nil {
			p.error(thisParam.Span, exc.CodeConstructorTypeThisParameter, "a constructor type cannot have a 'this' parameter")
		}
		return &TSConstructorType{
			Span:           span,
			Abstract:       abstract,
			TypeParameters: typeParameters,
			Params:         params,
			ReturnType:     returnType,
		}, nil
	}
	return &TSFunctionType{
		Span:           span,
		TypeParameters: typeParameters,
		ThisParam:      thisParam,
		Params:         params,
		ReturnType:     returnType,
	}, nil
}

func (p *parser) isStartOfFunctionTypeOrConstructorType() bool {
	if p.at(KindLAngle) {
		return true
	}
	if p.at(KindLParen) && p.lookahead(p.isUnambiguouslyStartOfFunctionType) {
		return true
	}
	return p.at(KindNew) || (p.at(KindAbstract) && p.peekAt(KindNew))
}

// isUnambiguouslyStartOfFunctionType runs with the cursor on `(`.
func (p *parser) isUnambiguouslyStartOfFunctionType() bool {
	p.bump()
	if p.at(KindRParen) || p.at(KindDot3) {
		return true
	}
	if p.skipParameterStart() {
		switch p.cur() {
		case KindColon, KindComma, KindQuestion, KindEq:
			return true
		}
		if p.eat(KindRParen) && p.at(KindArrow) {
			return true
		}
	}
	return false
}

func (p *parser) skipParameterStart() bool {
	if p.cur().IsModifierKind() {
		p.parseModifiers(false)
	}
	if p.cur().IsIdentifierReference() || p.at(KindThis) {
		p.bump()
		return true
	}
	if p.at(KindLBrack) || p.at(KindLCurly) {
		count := len(p.diagnostics)
		_, err := p.parseBindingPatternKind()
		return err == nil && count == len(p.diagnostics)
	}
	return false
}

// TypeParameters = < TypeParameter { , TypeParameter } [ , ] > .
func (p *parser) parseTSTypeParameters() (*TSTypeParameterDeclaration, error) {
	if !p.at(KindLAngle) {
		return nil, nil
	}
	start := p.start()
	p.bump()
	params, err := parseDelimitedList(p, KindRAngle, KindComma, true, p.parseTSTypeParameter)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRAngle); err != nil {
		return nil, err
	}
	return &TSTypeParameterDeclaration{Span: p.end(start), Params: params}, nil
}

// TypeParameter = { in | out | const } identifier [ extends Type ] [ = Type ] .
func (p *parser) parseTSTypeParameter() (*TSTypeParameter, error) {
	start := p.start()
	modifiers := p.parseModifiers(true)
	p.verifyModifiers(modifiers, modifierAllowList[DeclarationKindTypeParameter], modifierCannotAppearOnTypeParameter)
	name, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	constraint, err := p.parseTSTypeConstraint()
	if err != nil {
		return nil, err
	}
	def, err := p.parseTSDefaultType()
	if err != nil {
		return nil, err
	}
	return &TSTypeParameter{
		Span:       p.end(start),
		Name:       name,
		Constraint: constraint,
		Default:    def,
		In:         modifiers.Contains(ModifierIn),
		Out:        modifiers.Contains(ModifierOut),
		Const:      modifiers.Contains(ModifierConst),
	}, nil
}

func (p *parser) parseTSTypeConstraint() (TSType, error) {
	if !p.eat(KindExtends) {
		return nil, nil
	}
	return p.parseTSType()
}

func (p *parser) parseTSDefaultType() (TSType, error) {
	if !p.eat(KindEq) {
		return nil, nil
	}
	return p.parseTSType()
}

// ImplementsClause = implements TypeReference { , TypeReference } .
func (p *parser) parseTSImplementsClause() ([]*TSClassImplements, error) {
	if err := p.expect(KindImplements); err != nil {
		return nil, err
	}
	var implements []*TSClassImplements
	for {
		start := p.start()
		name, err := p.parseTSTypeName()
		if err != nil {
			return nil, err
		}
		args, err := p.parseTypeArgumentsOfTypeReference()
		if err != nil {
			return nil, err
		}
		implements = append(implements, &TSClassImplements{Span: p.end(start), Expression: name, TypeArguments: args})
		if !p.eat(KindComma) {
			return implements, nil
		}
	}
}

func (p *parser) parseUnionTypeOrHigher() (TSType, error) {
	return p.parseUnionOrIntersectionType(KindPipe, p.parseIntersectionTypeOrHigher)
}

func (p *parser) parseIntersectionTypeOrHigher() (TSType, error) {
	return p.parseUnionOrIntersectionType(KindAmp, p.parseTypeOperatorOrHigher)
}

// UnionType = [ | ] IntersectionType { | IntersectionType } .
// IntersectionType = [ & ] TypeOperator { & TypeOperator } .
func (p *parser) parseUnionOrIntersectionType(kind Kind, constituent func() (TSType, error)) (TSType, error) {
	start := p.start()
	hasLeadingOperator := p.eat(kind)
	ty, err := constituent()
	if err != nil {
		return nil, err
	}
	if !p.at(kind) && !hasLeadingOperator {
		return ty, nil
	}
	types := []TSType{ty}
	for p.eat(kind) {
		next, err := constituent()
		if err != nil {
			return nil, err
		}
		types = append(types, next)
	}
	if kind == KindPipe {
		return &TSUnionType{Span: p.end(start), Types: types}, nil
	}
	return &TSIntersectionType{Span: p.end(start), Types: types}, nil
}

func (p *parser) parseTypeOperatorOrHigher() (TSType, error) {
	switch p.cur() {
	case KindKeyof:
		return p.parseTypeOperator(TSTypeOperatorKeyof)
	case KindUnique:
		return p.parseTypeOperator(TSTypeOperatorUnique)
	case KindReadonly:
		return p.parseTypeOperator(TSTypeOperatorReadonly)
	case KindInfer:
		return p.parseInferType()
	}
	return withContext(p, 0, ContextDisallowConditionalTypes, p.parsePostfixTypeOrHigher)
}

// TypeOperator = ( keyof | unique | readonly ) TypeOperator .
func (p *parser) parseTypeOperator(operator TSTypeOperatorKind) (TSType, error) {
	start := p.start()
	p.bump()
	operatorSpan := p.end(start)
	ty, err := p.parseTypeOperatorOrHigher()
	if err != nil {
		return nil, err
	}
	if operator == TSTypeOperatorReadonly {
		switch ty.(type) {
		case *TSArrayType, *TSTupleType:
		default:
			p.error(operatorSpan, exc.CodeReadonlyTypeOperator, "'readonly' type modifier is only permitted on array and tuple literal types")
		}
	}
	return &TSTypeOperator{Span: p.end(start), Operator: operator, TypeAnnotation: ty}, nil
}

// InferType = infer identifier [ extends Type ] .
func (p *parser) parseInferType() (TSType, error) {
	start := p.start()
	p.bump()
	paramStart := p.start()
	name, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	var constraint TSType
	if p.at(KindExtends) {
		constraint, _ = tryParse(p, p.tryParseConstraintOfInferType)
	}
	param := &TSTypeParameter{Span: p.end(paramStart), Name: name, Constraint: constraint}
	return &TSInferType{Span: p.end(start), TypeParameter: param}, nil
}

// tryParseConstraintOfInferType fails when the constraint would be better
// read as the check type of a conditional: `infer U extends X ? A : B`.
func (p *parser) tryParseConstraintOfInferType() (TSType, error) {
	if p.eat(KindExtends) {
		constraint, err := withContext(p, ContextDisallowConditionalTypes, 0, p.parseTSType)
		if err != nil {
			return nil, err
		}
		if p.ctx.Has(ContextDisallowConditionalTypes) || !p.at(KindQuestion) {
			return constraint, nil
		}
	}
	return nil, p.unexpected()
}

// PostfixType = NonArrayType { ! | ? | [ ] | [ Type ] } .
func (p *parser) parsePostfixTypeOrHigher() (TSType, error) {
	start := p.start()
	ty, err := p.parseNonArrayType()
	if err != nil {
		return nil, err
	}
	for !p.tok().OnNewLine {
		switch p.cur() {
		case KindBang:
			p.bump()
			ty = &JSDocNonNullableType{Span: p.end(start), TypeAnnotation: ty, Postfix: true}
		case KindQuestion:
			// `T ? X : Y` where T is the extends type of a conditional.
			if p.lookahead(p.nextTokenIsStartOfType) {
				return ty, nil
			}
			p.bump()
			ty = &JSDocNullableType{Span: p.end(start), TypeAnnotation: ty, Postfix: true}
		case KindLBrack:
			p.bump()
			if p.isStartOfType(false) {
				index, err := p.parseTSType()
				if err != nil {
					return nil, err
				}
				if err := p.expect(KindRBrack); err != nil {
					return nil, err
				}
				ty = &TSIndexedAccessType{Span: p.end(start), ObjectType: ty, IndexType: index}
			} else {
				if err := p.expect(KindRBrack); err != nil {
					return nil, err
				}
				ty = &TSArrayType{Span: p.end(start), ElementType: ty}
			}
		default:
			return ty, nil
		}
	}
	return ty, nil
}

var keywordTypes = map[Kind]TSKeyword{
	KindAny:            TSKeywordAny,
	KindUnknownKeyword: TSKeywordUnknown,
	KindString:         TSKeywordString,
	KindNumber:         TSKeywordNumber,
	KindBigIntKeyword:  TSKeywordBigInt,
	KindSymbol:         TSKeywordSymbol,
	KindBoolean:        TSKeywordBoolean,
	KindUndefined:      TSKeywordUndefined,
	KindNever:          TSKeywordNever,
	KindObject:         TSKeywordObject,
	KindNull:           TSKeywordNull,
}

func (p *parser) parseNonArrayType() (TSType, error) {
	kind := p.cur()
	if _, ok := keywordTypes[kind]; ok {
		if ty, ok := tryParse(p, p.parseKeywordAndNoDot); ok {
			return ty, nil
		}
		return p.parseTypeReference()
	}
	switch {
	case kind == KindQuestion:
		return p.parseJSDocUnknownOrNullableType()
	case kind == KindBang:
		return p.parseJSDocNonNullableType()
	case kind == KindNoSubstitutionTemplate || kind == KindStr || kind == KindTrue || kind == KindFalse || kind.IsNumber():
		return p.parseLiteralTypeNode(false)
	case kind == KindMinus:
		if p.peek().Kind.IsNumber() {
			return p.parseLiteralTypeNode(true)
		}
		return p.parseTypeReference()
	case kind == KindVoid:
		start := p.start()
		p.bump()
		return &TSKeywordType{Span: p.end(start), Keyword: TSKeywordVoid}, nil
	case kind == KindThis:
		this := p.parseThisTypeNode()
		if p.at(KindIs) && !p.tok().OnNewLine {
			return p.parseThisTypePredicate(this)
		}
		return this, nil
	case kind == KindTypeof:
		return p.parseTypeQuery()
	case kind == KindLCurly:
		if p.lookahead(p.isStartOfMappedType) {
			return p.parseMappedType()
		}
		return p.parseTypeLiteral()
	case kind == KindLBrack:
		return p.parseTupleType()
	case kind == KindLParen:
		return p.parseParenthesizedType()
	case kind == KindImport:
		return p.parseTSImportType()
	case kind == KindAsserts:
		next := p.peek()
		if next.Kind.IsIdentifierName() && !next.OnNewLine {
			return p.parseAssertsTypePredicate()
		}
		return p.parseTypeReference()
	case kind == KindTemplateHead:
		return p.parseTemplateType()
	}
	return p.parseTypeReference()
}

// parseKeywordAndNoDot fails for `string.x` so that the keyword is read as
// the start of a qualified name instead.
func (p *parser) parseKeywordAndNoDot() (TSType, error) {
	keyword, ok := keywordTypes[p.cur()]
	if !ok {
		return nil, p.unexpected()
	}
	start := p.start()
	p.bump()
	if p.at(KindDot) {
		return nil, p.unexpected()
	}
	return &TSKeywordType{Span: p.end(start), Keyword: keyword}, nil
}

func (p *parser) isStartOfType(inStartOfParameter bool) bool {
	kind := p.cur()
	if kind.IsNumber() {
		return true
	}
	switch kind {
	case KindAny, KindUnknownKeyword, KindString, KindNumber, KindBigIntKeyword, KindBoolean,
		KindReadonly, KindSymbol, KindUnique, KindVoid, KindUndefined, KindNull, KindThis,
		KindTypeof, KindNever, KindLCurly, KindLBrack, KindLAngle, KindPipe, KindAmp, KindNew,
		KindStr, KindTrue, KindFalse, KindObject, KindStar, KindQuestion, KindBreak, KindDot3,
		KindInfer, KindImport, KindAsserts, KindNoSubstitutionTemplate, KindTemplateHead:
		return true
	case KindFunction:
		return !inStartOfParameter
	case KindMinus:
		return !inStartOfParameter && p.peek().Kind.IsNumber()
	case KindLParen:
		return !inStartOfParameter && p.lookahead(p.isStartOfParenthesizedOrFunctionType)
	}
	return kind.IsIdentifierReference()
}

// isStartOfMappedType matches `{ [+|-] readonly [ K in` and
// `{ [readonly] [ K in`.
func (p *parser) isStartOfMappedType() bool {
	if !p.at(KindLCurly) {
		return false
	}
	if p.peekAt(KindPlus) || p.peekAt(KindMinus) {
		return p.nthAt(2, KindReadonly)
	}
	offset := 1
	if p.nthAt(offset, KindReadonly) {
		offset = offset + 1
	}
	return p.nthAt(offset, KindLBrack) &&
		p.nth(offset+1).Kind.IsIdentifierName() &&
		p.nthAt(offset+2, KindIn)
}

func (p *parser) nextTokenIsStartOfType() bool {
	p.bump()
	return p.isStartOfType(false)
}

func (p *parser) isStartOfParenthesizedOrFunctionType() bool {
	p.bump()
	return p.at(KindRParen) || p.isStartOfParameter(false) || p.isStartOfType(false)
}

func (p *parser) isStartOfParameter(isJSDocParameter bool) bool {
	kind := p.cur()
	return kind == KindDot3 ||
		kind.IsIdentifierReference() || kind == KindPrivateIdent || kind == KindLBrack || kind == KindLCurly ||
		kind.IsModifierKind() ||
		kind == KindAt ||
		p.isStartOfType(!isJSDocParameter)
}

// MappedType = { [ [+|-] readonly ] [ identifier in Type [ as Type ] ] [ [+|-] ? ] [ : Type ] [ ; ] } .
func (p *parser) parseMappedType() (TSType, error) {
	start := p.start()
	if err := p.expect(KindLCurly); err != nil {
		return nil, err
	}
	readonly := TSMappedTypeModifierNone
	switch {
	case p.eat(KindReadonly):
		readonly = TSMappedTypeModifierTrue
	case p.eat(KindPlus):
		if err := p.expect(KindReadonly); err != nil {
			return nil, err
		}
		readonly = TSMappedTypeModifierPlus
	case p.eat(KindMinus):
		if err := p.expect(KindReadonly); err != nil {
			return nil, err
		}
		readonly = TSMappedTypeModifierMinus
	}
	if err := p.expect(KindLBrack); err != nil {
		return nil, err
	}
	paramStart := p.start()
	if !p.cur().IsIdentifierName() {
		return nil, p.unexpected()
	}
	name, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindIn); err != nil {
		return nil, err
	}
	constraint, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	param := &TSTypeParameter{Span: p.end(paramStart), Name: name, Constraint: constraint}
	var nameType TSType
	if p.eat(KindAs) {
		if nameType, err = p.parseTSType(); err != nil {
			return nil, err
		}
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	optional := TSMappedTypeModifierNone
	switch p.cur() {
	case KindQuestion:
		p.bump()
		optional = TSMappedTypeModifierTrue
	case KindMinus:
		p.bump()
		if err := p.expect(KindQuestion); err != nil {
			return nil, err
		}
		optional = TSMappedTypeModifierMinus
	case KindPlus:
		p.bump()
		if err := p.expect(KindQuestion); err != nil {
			return nil, err
		}
		optional = TSMappedTypeModifierPlus
	}
	var annotation TSType
	if p.eat(KindColon) {
		if annotation, err = p.parseTSType(); err != nil {
			return nil, err
		}
	}
	p.eat(KindSemicolon)
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	return &TSMappedType{
		Span:           p.end(start),
		TypeParameter:  param,
		NameType:       nameType,
		TypeAnnotation: annotation,
		Optional:       optional,
		Readonly:       readonly,
	}, nil
}

// TypeLiteral = { { TypeMember } } .
func (p *parser) parseTypeLiteral() (TSType, error) {
	start := p.start()
	members, err := parseNormalList(p, KindLCurly, KindRCurly, p.parseTSTypeSignature)
	if err != nil {
		return nil, err
	}
	return &TSTypeLiteral{Span: p.end(start), Members: members}, nil
}

// TypeQuery = typeof ( ImportType | EntityName [ TypeArguments ] ) .
func (p *parser) parseTypeQuery() (TSType, error) {
	start := p.start()
	p.bump()
	if p.at(KindImport) {
		imp, err := p.parseTSImportType()
		if err != nil {
			return nil, err
		}
		return &TSTypeQuery{Span: p.end(start), ExprName: imp.(*TSImportType)}, nil
	}
	name, err := p.parseTSTypeName()
	if err != nil {
		return nil, err
	}
	var args *TSTypeParameterInstantiation
	if !p.tok().OnNewLine {
		if args, err = p.tryParseTypeArguments(); err != nil {
			return nil, err
		}
	}
	return &TSTypeQuery{Span: p.end(start), ExprName: name.(TSTypeQueryExprName), TypeArguments: args}, nil
}

func (p *parser) parseThisTypeNode() *TSThisType {
	start := p.start()
	p.bump()
	return &TSThisType{Span: p.end(start)}
}

func (p *parser) parseThisTypePredicate(this *TSThisType) (TSType, error) {
	p.bump()
	typeStart := p.start()
	ty, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	return &TSTypePredicate{
		Span:           p.end(this.Start),
		ParameterName:  this,
		TypeAnnotation: &TSTypeAnnotation{Span: p.end(typeStart), TypeAnnotation: ty},
	}, nil
}

// parseTemplateElement consumes a template chunk token. The element span
// covers the raw text between the delimiters.
func (p *parser) parseTemplateElement() *TemplateElement {
	tok := p.tok()
	tail := tok.Kind == KindNoSubstitutionTemplate || tok.Kind == KindTemplateTail
	inner := Span{Start: tok.Span.Start + 1, End: tok.Span.End}
	switch {
	case tail && p.lexer.src[tok.Span.End-1] == '`' && tok.Span.End-1 >= inner.Start:
		inner.End = tok.Span.End - 1
	case !tail && tok.Span.End >= inner.Start+2:
		inner.End = tok.Span.End - 2
	}
	p.bump()
	return &TemplateElement{Span: inner, Raw: p.lexer.Source(inner), Cooked: tok.Value, Tail: tail}
}

// TemplateLiteralType = template_head Type { template_middle Type } template_tail .
func (p *parser) parseTemplateType() (TSType, error) {
	start := p.start()
	quasis := []*TemplateElement{p.parseTemplateElement()}
	var types []TSType
	for {
		ty, err := p.parseTSType()
		if err != nil {
			return nil, err
		}
		types = append(types, ty)
		if !p.at(KindRCurly) {
			return nil, p.expect(KindRCurly)
		}
		p.reLexTemplateContinuation()
		element := p.parseTemplateElement()
		quasis = append(quasis, element)
		if element.Tail {
			break
		}
	}
	return &TSTemplateLiteralType{Span: p.end(start), Quasis: quasis, Types: types}, nil
}

// AssertsPredicate = asserts ( this | identifier ) [ is Type ] .
func (p *parser) parseAssertsTypePredicate() (TSType, error) {
	start := p.start()
	p.bump()
	var name TSTypePredicateName
	if p.at(KindThis) {
		name = p.parseThisTypeNode()
	} else {
		id, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		name = id
	}
	var annotation *TSTypeAnnotation
	if p.eat(KindIs) {
		typeStart := p.start()
		ty, err := p.parseTSType()
		if err != nil {
			return nil, err
		}
		annotation = &TSTypeAnnotation{Span: p.end(typeStart), TypeAnnotation: ty}
	}
	return &TSTypePredicate{Span: p.end(start), ParameterName: name, Asserts: true, TypeAnnotation: annotation}, nil
}

// TypeReference = EntityName [ TypeArguments ] .
func (p *parser) parseTypeReference() (TSType, error) {
	start := p.start()
	name, err := p.parseTSTypeName()
	if err != nil {
		return nil, err
	}
	args, err := p.parseTypeArgumentsOfTypeReference()
	if err != nil {
		return nil, err
	}
	return &TSTypeReference{Span: p.end(start), TypeName: name, TypeArguments: args}, nil
}

// EntityName = identifier { . identifier } .
func (p *parser) parseTSTypeName() (TSTypeName, error) {
	start := p.start()
	id, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	var left TSTypeName = &IdentifierReference{Span: id.Span, Name: id.Name}
	for p.eat(KindDot) {
		right, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		left = &TSQualifiedName{Span: p.end(start), Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseTypeArgumentList(start uint32) (*TSTypeParameterInstantiation, error) {
	p.bump()
	params, err := parseDelimitedList(p, KindRAngle, KindComma, true, p.parseTSType)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRAngle); err != nil {
		return nil, err
	}
	return &TSTypeParameterInstantiation{Span: p.end(start), Params: params}, nil
}

func (p *parser) tryParseTypeArguments() (*TSTypeParameterInstantiation, error) {
	if !p.at(KindLAngle) {
		return nil, nil
	}
	return p.parseTypeArgumentList(p.start())
}

// parseTypeArgumentsOfTypeReference reads `<...>` after a type name. The
// `<` must be on the same line as the name.
func (p *parser) parseTypeArgumentsOfTypeReference() (*TSTypeParameterInstantiation, error) {
	if p.reLexLAngle() != KindLAngle || p.tok().OnNewLine {
		return nil, nil
	}
	return p.parseTypeArgumentList(p.start())
}

// parseTypeArgumentsInExpression is only ever run speculatively. It fails
// unless the argument list is followed by something that makes the `<`
// unambiguously a type argument list.
func (p *parser) parseTypeArgumentsInExpression() (*TSTypeParameterInstantiation, error) {
	start := p.start()
	if p.reLexLAngle() != KindLAngle {
		return nil, p.unexpected()
	}
	p.bump()
	params, err := parseDelimitedList(p, KindRAngle, KindComma, true, p.parseTSType)
	if err != nil {
		return nil, err
	}
	// `a < b >= c` is a comparison.
	if p.reLexRightAngle() == KindGtEq {
		return nil, p.unexpected()
	}
	p.reLexSingleRightAngle()
	if err := p.expect(KindRAngle); err != nil {
		return nil, err
	}
	if !p.canFollowTypeArgumentsInExpr() {
		return nil, p.unexpected()
	}
	return &TSTypeParameterInstantiation{Span: p.end(start), Params: params}, nil
}

func (p *parser) canFollowTypeArgumentsInExpr() bool {
	switch p.cur() {
	case KindLParen, KindNoSubstitutionTemplate, KindTemplateHead:
		return true
	case KindLAngle, KindRAngle, KindPlus, KindMinus:
		return false
	}
	return p.tok().OnNewLine || p.isBinaryOperator() || !p.isStartOfExpression()
}

// TupleType = [ [ TupleElement { , TupleElement } [ , ] ] ] .
func (p *parser) parseTupleType() (TSType, error) {
	start := p.start()
	if err := p.expect(KindLBrack); err != nil {
		return nil, err
	}
	elements, err := parseDelimitedList(p, KindRBrack, KindComma, true, p.parseTupleElementNameOrTupleElementType)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	return &TSTupleType{Span: p.end(start), ElementTypes: elements}, nil
}

func (p *parser) parseTupleElementNameOrTupleElementType() (TSTupleElement, error) {
	if !p.lookahead(p.isTupleElementName) {
		return p.parseTupleElementType()
	}
	start := p.start()
	rest := p.eat(KindDot3)
	memberStart := p.start()
	label, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	optional := p.eat(KindQuestion)
	if err := p.expect(KindColon); err != nil {
		return nil, err
	}
	elementType, err := p.parseTupleElementType()
	if err != nil {
		return nil, err
	}
	if rest {
		member := &TSNamedTupleMember{Span: p.end(memberStart), Label: label, ElementType: elementType, Optional: optional}
		return &TSRestType{Span: p.end(start), TypeAnnotation: member}, nil
	}
	return &TSNamedTupleMember{Span: p.end(start), Label: label, ElementType: elementType, Optional: optional}, nil
}

// isTupleElementName matches `...? name :` and `...? name ?:`.
func (p *parser) isTupleElementName() bool {
	p.eat(KindDot3)
	return p.cur().IsIdentifierName() && p.isNextTokenColonOrQuestionColon()
}

func (p *parser) isNextTokenColonOrQuestionColon() bool {
	p.bump()
	if p.at(KindColon) {
		return true
	}
	return p.at(KindQuestion) && p.peekAt(KindColon)
}

// parseTupleElementType reads `...T`, `T?` or `T`. A postfix nullable type
// at the top of an element is an optional element.
func (p *parser) parseTupleElementType() (TSTupleElement, error) {
	start := p.start()
	if p.eat(KindDot3) {
		ty, err := p.parseTSType()
		if err != nil {
			return nil, err
		}
		return &TSRestType{Span: p.end(start), TypeAnnotation: ty}, nil
	}
	ty, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	if nullable, ok := ty.(*JSDocNullableType); ok && nullable.Postfix {
		return &TSOptionalType{Span: nullable.Span, TypeAnnotation: nullable.TypeAnnotation}, nil
	}
	return ty, nil
}

// ParenthesizedType = ( Type ) .
func (p *parser) parseParenthesizedType() (TSType, error) {
	start := p.start()
	p.bump()
	ty, err := withContext(p, 0, ContextDisallowConditionalTypes, p.parseTSType)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRParen); err != nil {
		return nil, err
	}
	if p.options.PreserveParens {
		return &TSParenthesizedType{Span: p.end(start), TypeAnnotation: ty}, nil
	}
	return ty, nil
}

// LiteralType = [ - ] number | bigint | string | true | false | no_substitution_template .
func (p *parser) parseLiteralTypeNode(negative bool) (TSType, error) {
	start := p.start()
	if negative {
		p.bump()
	}
	var expr Expression
	var err error
	if p.at(KindNoSubstitutionTemplate) {
		expr = p.parseNoSubstitutionTemplate()
	} else if expr, err = p.parseLiteralExpression(); err != nil {
		return nil, err
	}
	span := p.end(start)
	if negative {
		return &TSLiteralType{Span: span, Literal: &UnaryExpression{Span: span, Operator: KindMinus, Argument: expr}}, nil
	}
	switch expr.(type) {
	case *BooleanLiteral, *NumericLiteral, *BigIntLiteral, *StringLiteral, *TemplateLiteral:
		return &TSLiteralType{Span: span, Literal: expr}, nil
	}
	return nil, p.unexpected()
}

// ImportType = import ( Type [ , ObjectLiteral [ , ] ] ) [ . EntityName ] [ TypeArguments ] .
func (p *parser) parseTSImportType() (TSType, error) {
	start := p.start()
	if err := p.expect(KindImport); err != nil {
		return nil, err
	}
	if err := p.expect(KindLParen); err != nil {
		return nil, err
	}
	argument, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	var options *ObjectExpression
	if p.eat(KindComma) && !p.at(KindRParen) {
		if options, err = p.parseObjectExpression(); err != nil {
			return nil, err
		}
		p.eat(KindComma)
	}
	if err := p.expect(KindRParen); err != nil {
		return nil, err
	}
	var qualifier TSTypeName
	if p.eat(KindDot) {
		if qualifier, err = p.parseTSTypeName(); err != nil {
			return nil, err
		}
	}
	args, err := p.parseTypeArgumentsOfTypeReference()
	if err != nil {
		return nil, err
	}
	return &TSImportType{
		Span:          p.end(start),
		Argument:      argument,
		Options:       options,
		Qualifier:     qualifier,
		TypeArguments: args,
	}, nil
}

// parseTSReturnTypeAnnotation reads `: ReturnType` when present.
func (p *parser) parseTSReturnTypeAnnotation() (*TSTypeAnnotation, error) {
	if !p.at(KindColon) {
		return nil, nil
	}
	start := p.start()
	p.bump()
	ty, err := withContext(p, 0, ContextDisallowConditionalTypes, p.parseTypeOrTypePredicate)
	if err != nil {
		return nil, err
	}
	return &TSTypeAnnotation{Span: p.end(start), TypeAnnotation: ty}, nil
}

// ReturnType = [ ( this | identifier ) is ] Type .
func (p *parser) parseTypeOrTypePredicate() (TSType, error) {
	start := p.start()
	var name TSTypePredicateName
	isPredicate := false
	if p.peekAt(KindIs) {
		name, isPredicate = tryParse(p, p.parseTypePredicatePrefix)
	}
	typeStart := p.start()
	ty, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	if !isPredicate {
		return ty, nil
	}
	return &TSTypePredicate{
		Span:           p.end(start),
		ParameterName:  name,
		TypeAnnotation: &TSTypeAnnotation{Span: p.end(typeStart), TypeAnnotation: ty},
	}, nil
}

func (p *parser) parseTypePredicatePrefix() (TSTypePredicateName, error) {
	var name TSTypePredicateName
	if p.at(KindThis) {
		name = p.parseThisTypeNode()
	} else {
		id, err := p.parseIdentifierName()
		if err != nil {
			return nil, err
		}
		name = id
	}
	if p.at(KindIs) && !p.tok().OnNewLine {
		p.bump()
		return name, nil
	}
	return nil, p.unexpected()
}

// TypeAnnotation = : Type .
func (p *parser) parseTSTypeAnnotation() (*TSTypeAnnotation, error) {
	if !p.at(KindColon) {
		return nil, nil
	}
	start := p.start()
	p.bump()
	ty, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	return &TSTypeAnnotation{Span: p.end(start), TypeAnnotation: ty}, nil
}

// parseJSDocUnknownOrNullableType reads `?` and `?T`.
func (p *parser) parseJSDocUnknownOrNullableType() (TSType, error) {
	start := p.start()
	p.bump()
	switch p.cur() {
	case KindComma, KindRCurly, KindRParen, KindRAngle, KindEq, KindPipe, KindRBrack, KindSemicolon, KindEOF:
		return &JSDocUnknownType{Span: p.end(start)}, nil
	}
	ty, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	return &JSDocNullableType{Span: p.end(start), TypeAnnotation: ty}, nil
}

func (p *parser) parseJSDocNonNullableType() (TSType, error) {
	start := p.start()
	p.bump()
	ty, err := p.parseNonArrayType()
	if err != nil {
		return nil, err
	}
	return &JSDocNonNullableType{Span: p.end(start), TypeAnnotation: ty}, nil
}
