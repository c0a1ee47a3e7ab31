package typescript

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsgram/tsgram/internal/exc"
)

// Binding power of the binary operators. `as` and `satisfies` bind like
// the relational operators but are handled outside this table.
const (
	precedenceCoalesce = iota + 1
	precedenceLogicalOr
	precedenceLogicalAnd
	precedenceBitwiseOr
	precedenceBitwiseXor
	precedenceBitwiseAnd
	precedenceEquality
	precedenceRelational
	precedenceShift
	precedenceAdditive
	precedenceMultiplicative
	precedenceExponential
)

var binaryPrecedence = map[Kind]int{
	KindQuestion2:   precedenceCoalesce,
	KindPipe2:       precedenceLogicalOr,
	KindAmp2:        precedenceLogicalAnd,
	KindPipe:        precedenceBitwiseOr,
	KindCaret:       precedenceBitwiseXor,
	KindAmp:         precedenceBitwiseAnd,
	KindEq2:         precedenceEquality,
	KindNeq:         precedenceEquality,
	KindEq3:         precedenceEquality,
	KindNeq2:        precedenceEquality,
	KindLAngle:      precedenceRelational,
	KindRAngle:      precedenceRelational,
	KindLtEq:        precedenceRelational,
	KindGtEq:        precedenceRelational,
	KindInstanceof:  precedenceRelational,
	KindIn:          precedenceRelational,
	KindShiftLeft:   precedenceShift,
	KindShiftRight:  precedenceShift,
	KindShiftRight3: precedenceShift,
	KindPlus:        precedenceAdditive,
	KindMinus:       precedenceAdditive,
	KindStar:        precedenceMultiplicative,
	KindSlash:       precedenceMultiplicative,
	KindPercent:     precedenceMultiplicative,
	KindStar2:       precedenceExponential,
}

// isBinaryOperator reports whether the current token continues a binary
// expression. `in` only counts when the In context is set.
func (p *parser) isBinaryOperator() bool {
	kind := p.cur()
	if kind == KindIn && !p.ctx.Has(ContextIn) {
		return false
	}
	return kind.IsBinaryOperator() || kind == KindAs || kind == KindSatisfies
}

func (p *parser) isStartOfExpression() bool {
	if p.isStartOfLeftHandSideExpression() {
		return true
	}
	kind := p.cur()
	switch kind {
	case KindPlus, KindMinus, KindTilde, KindBang, KindDelete, KindTypeof, KindVoid,
		KindPlus2, KindMinus2, KindLAngle, KindAwait, KindYield, KindPrivateIdent, KindAt:
		return true
	}
	if kind.IsBinaryOperator() {
		return true
	}
	return kind.IsIdentifierReference()
}

func (p *parser) isStartOfLeftHandSideExpression() bool {
	switch p.cur() {
	case KindNum, KindBigInt, KindStr, KindTrue, KindFalse, KindNull,
		KindNoSubstitutionTemplate, KindTemplateHead,
		KindThis, KindSuper, KindLParen, KindLBrack, KindLCurly,
		KindFunction, KindClass, KindNew, KindSlash, KindSlashEq:
		return true
	case KindImport:
		next := p.peek().Kind
		return next == KindLParen || next == KindLAngle || next == KindDot
	}
	return false
}

// Expression = AssignmentExpression { , AssignmentExpression } .
func (p *parser) parseExpression() (Expression, error) {
	start := p.start()
	expr, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if !p.at(KindComma) {
		return expr, nil
	}
	expressions := []Expression{expr}
	for p.eat(KindComma) {
		next, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, next)
	}
	return &SequenceExpression{Span: p.end(start), Expressions: expressions}, nil
}

func (p *parser) parseAssignmentExpression() (Expression, error) {
	if p.isStartOfArrowFunction() {
		if arrow, ok := tryParse(p, p.parseArrowFunction); ok {
			return arrow, nil
		}
	}
	start := p.start()
	left, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}
	if !p.cur().IsAssignmentOperator() {
		return left, nil
	}
	operator := p.cur()
	p.bump()
	right, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &AssignmentExpression{Span: p.end(start), Left: left, Operator: operator, Right: right}, nil
}

func (p *parser) isStartOfArrowFunction() bool {
	switch kind := p.cur(); {
	case kind == KindLParen, kind == KindLAngle:
		return true
	case kind == KindAsync:
		next := p.peek()
		if next.OnNewLine {
			return false
		}
		return next.Kind == KindLParen || next.Kind == KindLAngle || next.Kind == KindArrow || next.Kind.IsIdentifierReference()
	case kind.IsIdentifierReference():
		next := p.peek()
		return next.Kind == KindArrow && !next.OnNewLine
	}
	return false
}

// ArrowFunction = [ async ] ( identifier | [ TypeParameters ] Parameters [ : ReturnType ] ) => Body .
func (p *parser) parseArrowFunction() (Expression, error) {
	start := p.start()
	async := false
	if p.at(KindAsync) && !p.peekAt(KindArrow) {
		p.bump()
		async = true
	}
	arrow := &ArrowFunctionExpression{Async: async}
	if p.cur().IsIdentifierReference() && p.peekAt(KindArrow) {
		id, err := p.parseBindingIdentifier()
		if err != nil {
			return nil, err
		}
		arrow.Params = &FormalParameters{
			Span:  id.Span,
			Items: []*FormalParameter{{Span: id.Span, Pattern: id}},
		}
	} else {
		parts, err := p.parseSignatureParts(formalParameterKindArrow)
		if err != nil {
			return nil, err
		}
		arrow.TypeParameters = parts.typeParameters
		arrow.Params = parts.params
		arrow.ReturnType = parts.returnType
	}
	if p.tok().OnNewLine || !p.at(KindArrow) {
		return nil, p.unexpected()
	}
	p.bump()
	enter, exit := Context(0), ContextAwait
	if async {
		enter, exit = ContextAwait, 0
	}
	if p.at(KindLCurly) {
		body, err := p.parseFunctionBody()
		if err != nil {
			return nil, err
		}
		arrow.Body = body
	} else {
		expr, err := withContext(p, enter, exit, p.parseAssignmentExpression)
		if err != nil {
			return nil, err
		}
		arrow.Expression = expr
	}
	arrow.Span = p.end(start)
	return arrow, nil
}

func (p *parser) parseConditionalExpression() (Expression, error) {
	start := p.start()
	test, err := p.parseBinaryExpression(0)
	if err != nil {
		return nil, err
	}
	if !p.eat(KindQuestion) {
		return test, nil
	}
	consequent, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindColon); err != nil {
		return nil, err
	}
	alternate, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ConditionalExpression{Span: p.end(start), Test: test, Consequent: consequent, Alternate: alternate}, nil
}

// parseBinaryExpression climbs operators that bind tighter than minimum.
func (p *parser) parseBinaryExpression(minimum int) (Expression, error) {
	start := p.start()
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.reLexRightAngle()
		if kind == KindAs || kind == KindSatisfies {
			if precedenceRelational <= minimum || p.tok().OnNewLine {
				return left, nil
			}
			p.bump()
			ty, err := p.parseTSType()
			if err != nil {
				return nil, err
			}
			if kind == KindAs {
				left = &TSAsExpression{Span: p.end(start), Expression: left, TypeAnnotation: ty}
			} else {
				left = &TSSatisfiesExpression{Span: p.end(start), Expression: left, TypeAnnotation: ty}
			}
			continue
		}
		precedence, ok := binaryPrecedence[kind]
		if !ok || precedence <= minimum || (kind == KindIn && !p.ctx.Has(ContextIn)) {
			return left, nil
		}
		p.bump()
		next := precedence
		if kind == KindStar2 {
			next = precedence - 1
		}
		right, err := p.parseBinaryExpression(next)
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Span: p.end(start), Left: left, Operator: kind, Right: right}
	}
}

func (p *parser) parseUnaryExpression() (Expression, error) {
	start := p.start()
	switch kind := p.cur(); kind {
	case KindPlus, KindMinus, KindTilde, KindBang, KindDelete, KindTypeof, KindVoid:
		p.bump()
		argument, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &UnaryExpression{Span: p.end(start), Operator: kind, Argument: argument}, nil
	case KindPlus2, KindMinus2:
		p.bump()
		argument, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &UpdateExpression{Span: p.end(start), Operator: kind, Prefix: true, Argument: argument}, nil
	case KindAwait:
		if p.ctx.Has(ContextAwait) {
			p.bump()
			argument, err := p.parseUnaryExpression()
			if err != nil {
				return nil, err
			}
			return &UnaryExpression{Span: p.end(start), Operator: kind, Argument: argument}, nil
		}
	case KindLAngle:
		return p.parseTypeAssertion()
	}
	expr, err := p.parseLeftHandSideExpression()
	if err != nil {
		return nil, err
	}
	if (p.at(KindPlus2) || p.at(KindMinus2)) && !p.tok().OnNewLine {
		operator := p.cur()
		p.bump()
		return &UpdateExpression{Span: p.end(start), Operator: operator, Argument: expr}, nil
	}
	return expr, nil
}

// TypeAssertion = < Type > UnaryExpression .
func (p *parser) parseTypeAssertion() (Expression, error) {
	start := p.start()
	p.bump()
	ty, err := p.parseTSType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRAngle); err != nil {
		return nil, err
	}
	expr, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	return &TSTypeAssertion{Span: p.end(start), TypeAnnotation: ty, Expression: expr}, nil
}

func (p *parser) parseLeftHandSideExpression() (Expression, error) {
	start := p.start()
	var expr Expression
	var err error
	if p.at(KindNew) {
		expr, err = p.parseNewExpression()
	} else {
		expr, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}
	return p.parseMemberExpressionRest(start, expr, true)
}

// NewExpression = new MemberExpression [ TypeArguments ] [ Arguments ] .
func (p *parser) parseNewExpression() (Expression, error) {
	start := p.start()
	p.bump()
	calleeStart := p.start()
	var callee Expression
	var err error
	if p.at(KindNew) {
		callee, err = p.parseNewExpression()
	} else {
		callee, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}
	if callee, err = p.parseMemberExpressionRest(calleeStart, callee, false); err != nil {
		return nil, err
	}
	var typeArguments *TSTypeParameterInstantiation
	if p.at(KindLAngle) || p.at(KindShiftLeft) {
		typeArguments, _ = tryParse(p, p.parseTypeArgumentsInExpression)
	}
	var arguments []Expression
	if p.at(KindLParen) {
		if arguments, err = p.parseArguments(); err != nil {
			return nil, err
		}
	}
	return &NewExpression{Span: p.end(start), Callee: callee, TypeArguments: typeArguments, Arguments: arguments}, nil
}

// parseMemberExpressionRest applies member access, calls, tagged templates,
// non-null assertions and explicit type arguments to expr. Without
// allowCall it stops at the first `(` or `<` so that `new` can claim them.
func (p *parser) parseMemberExpressionRest(start uint32, expr Expression, allowCall bool) (Expression, error) {
	for {
		switch p.cur() {
		case KindDot:
			p.bump()
			member, err := p.parseMemberName(start, expr, false)
			if err != nil {
				return nil, err
			}
			expr = member
		case KindQuestionDot:
			if !allowCall {
				return expr, nil
			}
			p.bump()
			switch p.cur() {
			case KindLParen:
				arguments, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				expr = &CallExpression{Span: p.end(start), Callee: expr, Arguments: arguments, Optional: true}
			case KindLBrack:
				member, err := p.parseComputedMember(start, expr, true)
				if err != nil {
					return nil, err
				}
				expr = member
			default:
				member, err := p.parseMemberName(start, expr, true)
				if err != nil {
					return nil, err
				}
				expr = member
			}
		case KindLBrack:
			if p.ctx.Has(ContextDecorator) {
				return expr, nil
			}
			member, err := p.parseComputedMember(start, expr, false)
			if err != nil {
				return nil, err
			}
			expr = member
		case KindBang:
			if p.tok().OnNewLine {
				return expr, nil
			}
			p.bump()
			expr = &TSNonNullExpression{Span: p.end(start), Expression: expr}
		case KindNoSubstitutionTemplate, KindTemplateHead:
			quasi, err := p.parseTemplateLiteral()
			if err != nil {
				return nil, err
			}
			expr = &TaggedTemplateExpression{Span: p.end(start), Tag: expr, Quasi: quasi}
		case KindLParen:
			if !allowCall {
				return expr, nil
			}
			arguments, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &CallExpression{Span: p.end(start), Callee: expr, Arguments: arguments}
		case KindLAngle, KindShiftLeft:
			if !allowCall {
				return expr, nil
			}
			typeArguments, ok := tryParse(p, p.parseTypeArgumentsInExpression)
			if !ok {
				return expr, nil
			}
			switch p.cur() {
			case KindLParen:
				arguments, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				expr = &CallExpression{Span: p.end(start), Callee: expr, TypeArguments: typeArguments, Arguments: arguments}
			case KindNoSubstitutionTemplate, KindTemplateHead:
				quasi, err := p.parseTemplateLiteral()
				if err != nil {
					return nil, err
				}
				expr = &TaggedTemplateExpression{Span: p.end(start), Tag: expr, TypeArguments: typeArguments, Quasi: quasi}
			default:
				expr = &TSInstantiationExpression{Span: p.end(start), Expression: expr, TypeArguments: typeArguments}
			}
		default:
			return expr, nil
		}
	}
}

func (p *parser) parseMemberName(start uint32, object Expression, optional bool) (Expression, error) {
	if tok := p.tok(); tok.Kind == KindPrivateIdent {
		p.bump()
		field := &PrivateIdentifier{Span: tok.Span, Name: tok.Value}
		return &PrivateFieldExpression{Span: p.end(start), Object: object, Field: field, Optional: optional}, nil
	}
	name, err := p.parseIdentifierName()
	if err != nil {
		return nil, err
	}
	return &StaticMemberExpression{Span: p.end(start), Object: object, Property: name, Optional: optional}, nil
}

func (p *parser) parseComputedMember(start uint32, object Expression, optional bool) (Expression, error) {
	p.bump()
	property, err := withContext(p, ContextIn, 0, p.parseExpression)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	return &ComputedMemberExpression{Span: p.end(start), Object: object, Expression: property, Optional: optional}, nil
}

// Arguments = ( [ Argument { , Argument } [ , ] ] ) .
func (p *parser) parseArguments() ([]Expression, error) {
	if err := p.expect(KindLParen); err != nil {
		return nil, err
	}
	arguments, err := withContext(p, ContextIn, ContextDecorator, func() ([]Expression, error) {
		return parseDelimitedList(p, KindRParen, KindComma, true, p.parseSpreadOrAssignmentExpression)
	})
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRParen); err != nil {
		return nil, err
	}
	return arguments, nil
}

func (p *parser) parseSpreadOrAssignmentExpression() (Expression, error) {
	if !p.at(KindDot3) {
		return p.parseAssignmentExpression()
	}
	start := p.start()
	p.bump()
	argument, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &SpreadElement{Span: p.end(start), Argument: argument}, nil
}

func (p *parser) parsePrimaryExpression() (Expression, error) {
	tok := p.tok()
	switch tok.Kind {
	case KindThis:
		p.bump()
		return &ThisExpression{Span: tok.Span}, nil
	case KindSuper:
		p.bump()
		return &Super{Span: tok.Span}, nil
	case KindNum, KindBigInt, KindStr, KindTrue, KindFalse, KindNull:
		return p.parseLiteralExpression()
	case KindNoSubstitutionTemplate, KindTemplateHead:
		return p.parseTemplateLiteral()
	case KindLBrack:
		return p.parseArrayExpression()
	case KindLCurly:
		return p.parseObjectExpression()
	case KindLParen:
		return p.parseParenthesizedExpression()
	}
	if tok.Kind.IsIdentifierReference() {
		return p.parseIdentifierReference()
	}
	if tok.Kind == KindEOF {
		return nil, p.fatal(tok.Span, exc.CodeUnexpectedEOF, "expression expected but found end of file")
	}
	return nil, p.fatal(tok.Span, exc.CodeExpectedExpression, "expression expected but found "+p.describe(tok))
}

func (p *parser) parseParenthesizedExpression() (Expression, error) {
	start := p.start()
	p.bump()
	expr, err := withContext(p, ContextIn, ContextDecorator, p.parseExpression)
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRParen); err != nil {
		return nil, err
	}
	if p.options.PreserveParens {
		return &ParenthesizedExpression{Span: p.end(start), Expression: expr}, nil
	}
	return expr, nil
}

func (p *parser) parseLiteralExpression() (Expression, error) {
	tok := p.tok()
	switch tok.Kind {
	case KindNum:
		p.bump()
		return &NumericLiteral{Span: tok.Span, Value: numericValue(tok.Value), Raw: tok.Value}, nil
	case KindBigInt:
		p.bump()
		return &BigIntLiteral{Span: tok.Span, Raw: tok.Value}, nil
	case KindStr:
		p.bump()
		return &StringLiteral{Span: tok.Span, Value: tok.Value}, nil
	case KindTrue, KindFalse:
		p.bump()
		return &BooleanLiteral{Span: tok.Span, Value: tok.Kind == KindTrue}, nil
	case KindNull:
		p.bump()
		return &NullLiteral{Span: tok.Span}, nil
	}
	return nil, p.unexpected()
}

// numericValue evaluates the raw text of a numeric literal.
func numericValue(raw string) float64 {
	text := strings.ReplaceAll(raw, "_", "")
	if len(text) > 2 && text[0] == '0' {
		base := 0
		switch text[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(text[2:], base, 64)
			if err != nil {
				return math.Inf(1)
			}
			return float64(v)
		}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && v == 0 {
		return math.NaN()
	}
	return v
}

func (p *parser) parseNoSubstitutionTemplate() *TemplateLiteral {
	start := p.start()
	element := p.parseTemplateElement()
	return &TemplateLiteral{Span: p.end(start), Quasis: []*TemplateElement{element}}
}

// TemplateLiteral = no_substitution_template | template_head Expression { template_middle Expression } template_tail .
func (p *parser) parseTemplateLiteral() (*TemplateLiteral, error) {
	if p.at(KindNoSubstitutionTemplate) {
		return p.parseNoSubstitutionTemplate(), nil
	}
	start := p.start()
	literal := &TemplateLiteral{Quasis: []*TemplateElement{p.parseTemplateElement()}}
	for {
		expr, err := withContext(p, ContextIn, 0, p.parseExpression)
		if err != nil {
			return nil, err
		}
		literal.Expressions = append(literal.Expressions, expr)
		if !p.at(KindRCurly) {
			return nil, p.expect(KindRCurly)
		}
		p.reLexTemplateContinuation()
		element := p.parseTemplateElement()
		literal.Quasis = append(literal.Quasis, element)
		if element.Tail {
			break
		}
	}
	literal.Span = p.end(start)
	return literal, nil
}

func (p *parser) parseArrayExpression() (Expression, error) {
	start := p.start()
	p.bump()
	array := &ArrayExpression{}
	for !p.at(KindRBrack) && !p.at(KindEOF) {
		if p.eat(KindComma) {
			array.Elements = append(array.Elements, nil)
			continue
		}
		element, err := withContext(p, ContextIn, 0, p.parseSpreadOrAssignmentExpression)
		if err != nil {
			return nil, err
		}
		array.Elements = append(array.Elements, element)
		if !p.at(KindRBrack) {
			if err := p.expect(KindComma); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	array.Span = p.end(start)
	return array, nil
}

// ObjectLiteral = { [ Property { , Property } [ , ] ] } .
func (p *parser) parseObjectExpression() (*ObjectExpression, error) {
	start := p.start()
	if err := p.expect(KindLCurly); err != nil {
		return nil, err
	}
	properties, err := withContext(p, ContextIn, 0, func() ([]*ObjectProperty, error) {
		return parseDelimitedList(p, KindRCurly, KindComma, true, p.parseObjectProperty)
	})
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	return &ObjectExpression{Span: p.end(start), Properties: properties}, nil
}

func (p *parser) parseObjectProperty() (*ObjectProperty, error) {
	start := p.start()
	if p.eat(KindDot3) {
		argument, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		return &ObjectProperty{Span: p.end(start), Kind: PropertyKindSpread, Value: argument}, nil
	}
	if p.cur().IsIdentifierReference() && (p.peekAt(KindComma) || p.peekAt(KindRCurly)) {
		id, err := p.parseIdentifierReference()
		if err != nil {
			return nil, err
		}
		return &ObjectProperty{
			Span:  p.end(start),
			Kind:  PropertyKindShorthand,
			Key:   &IdentifierName{Span: id.Span, Name: id.Name},
			Value: id,
		}, nil
	}
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindColon); err != nil {
		return nil, err
	}
	value, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ObjectProperty{Span: p.end(start), Kind: PropertyKindInit, Key: key, Computed: computed, Value: value}, nil
}
