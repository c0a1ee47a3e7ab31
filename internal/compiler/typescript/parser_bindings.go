package typescript

import (
	"fmt"

	"github.com/tsgram/tsgram/internal/exc"
)

type formalParameterKind uint8

const (
	// formalParameterKindSignature covers type members and function types.
	formalParameterKindSignature formalParameterKind = iota
	formalParameterKindFunction
	formalParameterKindConstructor
	formalParameterKindArrow
)

// Parameters = ( [ this [ : Type ] , ] { Parameter , } [ ... BindingPattern [ : Type ] ] ) .
func (p *parser) parseFormalParameters(kind formalParameterKind) (*TSThisParameter, *FormalParameters, error) {
	start := p.start()
	if err := p.expect(KindLParen); err != nil {
		return nil, nil, err
	}
	var this *TSThisParameter
	if p.at(KindThis) {
		param, err := p.parseTSThisParameter()
		if err != nil {
			return nil, nil, err
		}
		this = param
		if !p.at(KindRParen) {
			if err := p.expect(KindComma); err != nil {
				return nil, nil, err
			}
		}
	}
	params := &FormalParameters{}
	for !p.at(KindRParen) && !p.at(KindEOF) {
		if p.at(KindDot3) {
			rest, err := p.parseBindingRestElement()
			if err != nil {
				return nil, nil, err
			}
			params.Rest = rest
			p.eat(KindComma)
			break
		}
		param, err := p.parseFormalParameter(kind)
		if err != nil {
			return nil, nil, err
		}
		params.Items = append(params.Items, param)
		if !p.at(KindRParen) {
			if err := p.expect(KindComma); err != nil {
				return nil, nil, err
			}
		}
	}
	if err := p.expect(KindRParen); err != nil {
		return nil, nil, err
	}
	params.Span = p.end(start)
	return this, params, nil
}

func (p *parser) parseTSThisParameter() (*TSThisParameter, error) {
	start := p.start()
	p.bump()
	annotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	return &TSThisParameter{Span: p.end(start), TypeAnnotation: annotation}, nil
}

// Parameter = { Decorator } { Modifier } BindingPattern [ ? ] [ : Type ] [ = Expression ] .
func (p *parser) parseFormalParameter(kind formalParameterKind) (*FormalParameter, error) {
	start := p.start()
	if err := p.eatDecorators(); err != nil {
		return nil, err
	}
	decorators := p.takeDecorators()
	var modifiers Modifiers
	if kind == formalParameterKindConstructor {
		modifiers = p.parseClassElementModifiers(true)
		p.verifyModifiersFor(modifiers, DeclarationKindConstructorParameter)
	} else {
		modifiers = p.parseModifiers(false)
		p.verifyModifiersFor(modifiers, DeclarationKindParameter)
	}
	pattern, err := p.parseBindingPatternKind()
	if err != nil {
		return nil, err
	}
	optional := p.eat(KindQuestion)
	annotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	var init Expression
	if p.eat(KindEq) {
		if init, err = withContext(p, ContextIn, 0, p.parseAssignmentExpression); err != nil {
			return nil, err
		}
	}
	return &FormalParameter{
		Span:           p.end(start),
		Decorators:     decorators,
		Modifiers:      modifiers,
		Pattern:        pattern,
		Optional:       optional,
		TypeAnnotation: annotation,
		Initializer:    init,
	}, nil
}

func (p *parser) parseBindingRestElement() (*BindingRestElement, error) {
	start := p.start()
	p.bump()
	argument, err := p.parseBindingPatternKind()
	if err != nil {
		return nil, err
	}
	annotation, err := p.parseTSTypeAnnotation()
	if err != nil {
		return nil, err
	}
	return &BindingRestElement{Span: p.end(start), Argument: argument, TypeAnnotation: annotation}, nil
}

func (p *parser) parseBindingPatternKind() (BindingPattern, error) {
	switch p.cur() {
	case KindLCurly:
		return p.parseObjectPattern()
	case KindLBrack:
		return p.parseArrayPattern()
	}
	id, err := p.parseBindingIdentifier()
	if err != nil {
		return nil, err
	}
	return id, nil
}

// parseBindingElement reads a pattern with an optional default value.
func (p *parser) parseBindingElement() (BindingPattern, error) {
	start := p.start()
	pattern, err := p.parseBindingPatternKind()
	if err != nil {
		return nil, err
	}
	if !p.eat(KindEq) {
		return pattern, nil
	}
	init, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
	if err != nil {
		return nil, err
	}
	return &AssignmentPattern{Span: p.end(start), Left: pattern, Right: init}, nil
}

func (p *parser) parseObjectPattern() (BindingPattern, error) {
	start := p.start()
	p.bump()
	pattern := &ObjectPattern{}
	for !p.at(KindRCurly) && !p.at(KindEOF) {
		if p.at(KindDot3) {
			rest, err := p.parseBindingRestElement()
			if err != nil {
				return nil, err
			}
			pattern.Rest = rest
			break
		}
		prop, err := p.parseBindingProperty()
		if err != nil {
			return nil, err
		}
		pattern.Properties = append(pattern.Properties, prop)
		if !p.at(KindRCurly) {
			if err := p.expect(KindComma); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(KindRCurly); err != nil {
		return nil, err
	}
	pattern.Span = p.end(start)
	return pattern, nil
}

func (p *parser) parseBindingProperty() (*BindingProperty, error) {
	start := p.start()
	if p.cur().IsIdentifierReference() && !p.peekAt(KindColon) {
		id, err := p.parseBindingIdentifier()
		if err != nil {
			return nil, err
		}
		var value BindingPattern = id
		if p.eat(KindEq) {
			init, err := withContext(p, ContextIn, 0, p.parseAssignmentExpression)
			if err != nil {
				return nil, err
			}
			value = &AssignmentPattern{Span: p.end(start), Left: id, Right: init}
		}
		return &BindingProperty{
			Span:      p.end(start),
			Key:       &IdentifierName{Span: id.Span, Name: id.Name},
			Shorthand: true,
			Value:     value,
		}, nil
	}
	key, computed, err := p.parsePropertyName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(KindColon); err != nil {
		return nil, err
	}
	value, err := p.parseBindingElement()
	if err != nil {
		return nil, err
	}
	return &BindingProperty{Span: p.end(start), Key: key, Computed: computed, Value: value}, nil
}

func (p *parser) parseArrayPattern() (BindingPattern, error) {
	start := p.start()
	p.bump()
	pattern := &ArrayPattern{}
	for !p.at(KindRBrack) && !p.at(KindEOF) {
		if p.eat(KindComma) {
			pattern.Elements = append(pattern.Elements, nil)
			continue
		}
		if p.at(KindDot3) {
			rest, err := p.parseBindingRestElement()
			if err != nil {
				return nil, err
			}
			pattern.Rest = rest
			break
		}
		element, err := p.parseBindingElement()
		if err != nil {
			return nil, err
		}
		pattern.Elements = append(pattern.Elements, element)
		if !p.at(KindRBrack) {
			if err := p.expect(KindComma); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expect(KindRBrack); err != nil {
		return nil, err
	}
	pattern.Span = p.end(start)
	return pattern, nil
}

// ---------------------------------------------------------------------------
// Identifiers

func (p *parser) checkIdentifierReference(tok Token) error {
	kind := tok.Kind
	switch {
	case kind == KindAwait && p.ctx.Has(ContextAwait), kind == KindYield && p.ctx.Has(ContextYield):
		return p.fatal(tok.Span, exc.CodeExpectedIdentifier,
			fmt.Sprintf("identifier expected; '%s' is not allowed here", kind))
	case kind.IsIdentifierReference():
		return nil
	case kind.IsReserved():
		return p.fatal(tok.Span, exc.CodeExpectedIdentifier,
			fmt.Sprintf("identifier expected; '%s' is a reserved word", kind))
	case kind == KindEOF:
		return p.fatal(tok.Span, exc.CodeUnexpectedEOF, "identifier expected but found end of file")
	}
	return p.fatal(tok.Span, exc.CodeExpectedIdentifier, fmt.Sprintf("identifier expected but found %s", p.describe(tok)))
}

func (p *parser) parseBindingIdentifier() (*BindingIdentifier, error) {
	tok := p.tok()
	if err := p.checkIdentifierReference(tok); err != nil {
		return nil, err
	}
	p.bump()
	return &BindingIdentifier{Span: tok.Span, Name: tok.Value}, nil
}

func (p *parser) parseIdentifierReference() (*IdentifierReference, error) {
	tok := p.tok()
	if err := p.checkIdentifierReference(tok); err != nil {
		return nil, err
	}
	p.bump()
	return &IdentifierReference{Span: tok.Span, Name: tok.Value}, nil
}

// parseIdentifierName accepts keywords as well as identifiers.
func (p *parser) parseIdentifierName() (*IdentifierName, error) {
	tok := p.tok()
	if !tok.Kind.IsIdentifierName() {
		if tok.Kind == KindEOF {
			return nil, p.fatal(tok.Span, exc.CodeUnexpectedEOF, "identifier expected but found end of file")
		}
		return nil, p.fatal(tok.Span, exc.CodeExpectedIdentifier, fmt.Sprintf("identifier expected but found %s", p.describe(tok)))
	}
	p.bump()
	return &IdentifierName{Span: tok.Span, Name: tok.Value}, nil
}

// ---------------------------------------------------------------------------
// Decorators

// eatDecorators buffers every `@expr` at the cursor until a class, class
// member or parameter claims them with takeDecorators.
func (p *parser) eatDecorators() error {
	for p.at(KindAt) {
		start := p.start()
		p.bump()
		expr, err := withContext(p, ContextDecorator, 0, p.parseLeftHandSideExpression)
		if err != nil {
			return err
		}
		p.decorators = append(p.decorators, &Decorator{Span: p.end(start), Expression: expr})
	}
	return nil
}

func (p *parser) takeDecorators() []*Decorator {
	if len(p.decorators) == 0 {
		return nil
	}
	decorators := p.decorators
	p.decorators = nil
	return decorators
}
