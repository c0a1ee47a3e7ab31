package typescript

import (
	"fmt"
	"strings"
)

// Type precedence, lowest first. A child is parenthesized when its
// precedence is below what its position requires.
const (
	typePrecedenceConditional = iota
	typePrecedenceUnion
	typePrecedenceIntersection
	typePrecedenceOperator
	typePrecedencePostfix
	typePrecedencePrimary
)

// Print renders node as TypeScript source. Function bodies are opaque and
// print as `{}`. Parsing the output yields the same tree up to spans.
func Print(node Node) string {
	pr := &printer{}
	pr.node(node)
	return pr.b.String()
}

type printer struct {
	b strings.Builder
}

func (pr *printer) write(parts ...string) {
	for _, s := range parts {
		pr.b.WriteString(s)
	}
}

func (pr *printer) node(node Node) {
	switch n := node.(type) {
	case *Program:
		for i, stmt := range n.Body {
			if i > 0 {
				pr.write("\n")
			}
			pr.statement(stmt)
		}
	case Statement:
		pr.statement(n)
	case TSType:
		pr.tsType(n, typePrecedenceConditional)
	case Expression:
		pr.expression(n)
	case TSSignature:
		pr.signature(n)
	case ClassElement:
		pr.classElement(n)
	default:
		pr.write(fmt.Sprintf("/* %T */", node))
	}
}

func typePrecedence(ty TSType) int {
	switch t := ty.(type) {
	case *TSConditionalType, *TSFunctionType, *TSConstructorType, *TSTypePredicate:
		return typePrecedenceConditional
	case *TSInferType:
		if t.TypeParameter.Constraint != nil {
			return typePrecedenceConditional
		}
		return typePrecedenceOperator
	case *TSUnionType:
		return typePrecedenceUnion
	case *TSIntersectionType:
		return typePrecedenceIntersection
	case *TSTypeOperator:
		return typePrecedenceOperator
	case *TSArrayType, *TSIndexedAccessType:
		return typePrecedencePostfix
	case *JSDocNonNullableType:
		if t.Postfix {
			return typePrecedencePostfix
		}
	}
	return typePrecedencePrimary
}

func (pr *printer) tsType(ty TSType, minimum int) {
	if typePrecedence(ty) < minimum {
		pr.write("(")
		pr.tsType(ty, typePrecedenceConditional)
		pr.write(")")
		return
	}
	switch t := ty.(type) {
	case *TSKeywordType:
		pr.write(t.Keyword.String())
	case *TSThisType:
		pr.write("this")
	case *TSLiteralType:
		pr.expression(t.Literal)
	case *TSTemplateLiteralType:
		pr.write("`")
		for i, quasi := range t.Quasis {
			pr.write(quasi.Raw)
			if i < len(t.Types) {
				pr.write("${")
				pr.tsType(t.Types[i], typePrecedenceConditional)
				pr.write("}")
			}
		}
		pr.write("`")
	case *TSTypeReference:
		pr.typeName(t.TypeName)
		pr.typeArguments(t.TypeArguments)
	case *TSFunctionType:
		pr.typeParameters(t.TypeParameters)
		pr.params(t.ThisParam, t.Params)
		pr.write(" => ")
		pr.tsType(t.ReturnType.TypeAnnotation, typePrecedenceConditional)
	case *TSConstructorType:
		if t.Abstract {
			pr.write("abstract ")
		}
		pr.write("new ")
		pr.typeParameters(t.TypeParameters)
		pr.params(nil, t.Params)
		pr.write(" => ")
		pr.tsType(t.ReturnType.TypeAnnotation, typePrecedenceConditional)
	case *TSUnionType:
		if len(t.Types) == 1 {
			pr.write("| ")
		}
		pr.typeList(t.Types, " | ", typePrecedenceIntersection)
	case *TSIntersectionType:
		if len(t.Types) == 1 {
			pr.write("& ")
		}
		pr.typeList(t.Types, " & ", typePrecedenceOperator)
	case *TSConditionalType:
		pr.tsType(t.CheckType, typePrecedenceUnion)
		pr.write(" extends ")
		extends := typePrecedenceConditional
		if _, ok := t.ExtendsType.(*TSConditionalType); ok {
			extends = typePrecedenceUnion
		}
		pr.tsType(t.ExtendsType, extends)
		pr.write(" ? ")
		pr.tsType(t.TrueType, typePrecedenceConditional)
		pr.write(" : ")
		pr.tsType(t.FalseType, typePrecedenceConditional)
	case *TSTypeOperator:
		pr.write(t.Operator.String(), " ")
		pr.tsType(t.TypeAnnotation, typePrecedenceOperator)
	case *TSInferType:
		pr.write("infer ", t.TypeParameter.Name.Name)
		if t.TypeParameter.Constraint != nil {
			pr.write(" extends ")
			pr.tsType(t.TypeParameter.Constraint, typePrecedenceUnion)
		}
	case *TSArrayType:
		pr.tsType(t.ElementType, typePrecedencePostfix)
		pr.write("[]")
	case *TSIndexedAccessType:
		pr.tsType(t.ObjectType, typePrecedencePostfix)
		pr.write("[")
		pr.tsType(t.IndexType, typePrecedenceConditional)
		pr.write("]")
	case *TSTupleType:
		pr.write("[")
		for i, element := range t.ElementTypes {
			if i > 0 {
				pr.write(", ")
			}
			pr.tupleElement(element)
		}
		pr.write("]")
	case *TSMappedType:
		pr.mappedType(t)
	case *TSTypeLiteral:
		pr.members(t.Members)
	case *TSTypeQuery:
		pr.write("typeof ")
		switch name := t.ExprName.(type) {
		case *TSImportType:
			pr.tsType(name, typePrecedencePrimary)
		case TSTypeName:
			pr.typeName(name)
		}
		pr.typeArguments(t.TypeArguments)
	case *TSTypePredicate:
		if t.Asserts {
			pr.write("asserts ")
		}
		switch name := t.ParameterName.(type) {
		case *IdentifierName:
			pr.write(name.Name)
		case *TSThisType:
			pr.write("this")
		}
		if t.TypeAnnotation != nil {
			pr.write(" is ")
			pr.tsType(t.TypeAnnotation.TypeAnnotation, typePrecedenceConditional)
		}
	case *TSParenthesizedType:
		pr.write("(")
		pr.tsType(t.TypeAnnotation, typePrecedenceConditional)
		pr.write(")")
	case *TSImportType:
		pr.write("import(")
		pr.tsType(t.Argument, typePrecedenceConditional)
		if t.Options != nil {
			pr.write(", ")
			pr.expression(t.Options)
		}
		pr.write(")")
		if t.Qualifier != nil {
			pr.write(".")
			pr.typeName(t.Qualifier)
		}
		pr.typeArguments(t.TypeArguments)
	case *JSDocNullableType:
		pr.write("(")
		if t.Postfix {
			pr.tsType(t.TypeAnnotation, typePrecedencePostfix)
			pr.write("?")
		} else {
			pr.write("?")
			pr.tsType(t.TypeAnnotation, typePrecedenceConditional)
		}
		pr.write(")")
	case *JSDocNonNullableType:
		if t.Postfix {
			pr.tsType(t.TypeAnnotation, typePrecedencePostfix)
			pr.write("!")
		} else {
			pr.write("!")
			pr.tsType(t.TypeAnnotation, typePrecedencePrimary)
		}
	case *JSDocUnknownType:
		pr.write("?")
	default:
		pr.write(fmt.Sprintf("/* %T */", ty))
	}
}

func (pr *printer) typeList(types []TSType, sep string, minimum int) {
	for i, ty := range types {
		if i > 0 {
			pr.write(sep)
		}
		pr.tsType(ty, minimum)
	}
}

func (pr *printer) typeName(name TSTypeName) {
	switch n := name.(type) {
	case *IdentifierReference:
		pr.write(n.Name)
	case *TSQualifiedName:
		pr.typeName(n.Left)
		pr.write(".", n.Right.Name)
	}
}

func (pr *printer) tupleElement(element TSTupleElement) {
	switch e := element.(type) {
	case *TSNamedTupleMember:
		pr.write(e.Label.Name)
		if e.Optional {
			pr.write("?")
		}
		pr.write(": ")
		pr.tupleElement(e.ElementType)
	case *TSOptionalType:
		pr.tsType(e.TypeAnnotation, typePrecedencePostfix)
		pr.write("?")
	case *TSRestType:
		pr.write("...")
		pr.tupleElement(e.TypeAnnotation)
	case TSType:
		pr.tsType(e, typePrecedenceConditional)
	}
}

func mappedModifier(m TSMappedTypeModifier) string {
	switch m {
	case TSMappedTypeModifierPlus:
		return "+"
	case TSMappedTypeModifierMinus:
		return "-"
	}
	return ""
}

func (pr *printer) mappedType(t *TSMappedType) {
	pr.write("{ ")
	if t.Readonly != TSMappedTypeModifierNone {
		pr.write(mappedModifier(t.Readonly), "readonly ")
	}
	pr.write("[", t.TypeParameter.Name.Name, " in ")
	pr.tsType(t.TypeParameter.Constraint, typePrecedenceConditional)
	if t.NameType != nil {
		pr.write(" as ")
		pr.tsType(t.NameType, typePrecedenceConditional)
	}
	pr.write("]")
	if t.Optional != TSMappedTypeModifierNone {
		pr.write(mappedModifier(t.Optional), "?")
	}
	if t.TypeAnnotation != nil {
		pr.write(": ")
		pr.tsType(t.TypeAnnotation, typePrecedenceConditional)
	}
	pr.write(" }")
}

func (pr *printer) typeAnnotation(annotation *TSTypeAnnotation) {
	if annotation == nil {
		return
	}
	pr.write(": ")
	pr.tsType(annotation.TypeAnnotation, typePrecedenceConditional)
}

func (pr *printer) typeArguments(args *TSTypeParameterInstantiation) {
	if args == nil {
		return
	}
	pr.write("<")
	pr.typeList(args.Params, ", ", typePrecedenceConditional)
	pr.write(">")
}

func (pr *printer) typeParameters(params *TSTypeParameterDeclaration) {
	if params == nil {
		return
	}
	pr.write("<")
	for i, param := range params.Params {
		if i > 0 {
			pr.write(", ")
		}
		if param.Const {
			pr.write("const ")
		}
		if param.In {
			pr.write("in ")
		}
		if param.Out {
			pr.write("out ")
		}
		pr.write(param.Name.Name)
		if param.Constraint != nil {
			pr.write(" extends ")
			pr.tsType(param.Constraint, typePrecedenceConditional)
		}
		if param.Default != nil {
			pr.write(" = ")
			pr.tsType(param.Default, typePrecedenceConditional)
		}
	}
	pr.write(">")
}

// ---------------------------------------------------------------------------
// Signatures and parameters

func (pr *printer) members(members []TSSignature) {
	if len(members) == 0 {
		pr.write("{}")
		return
	}
	pr.write("{ ")
	for _, member := range members {
		pr.signature(member)
		pr.write("; ")
	}
	pr.write("}")
}

func (pr *printer) signature(sig TSSignature) {
	switch s := sig.(type) {
	case *TSCallSignatureDeclaration:
		pr.typeParameters(s.TypeParameters)
		pr.params(s.ThisParam, s.Params)
		pr.typeAnnotation(s.ReturnType)
	case *TSConstructSignatureDeclaration:
		pr.write("new ")
		pr.typeParameters(s.TypeParameters)
		pr.params(nil, s.Params)
		pr.typeAnnotation(s.ReturnType)
	case *TSMethodSignature:
		switch s.Kind {
		case TSMethodSignatureKindGet:
			pr.write("get ")
		case TSMethodSignatureKindSet:
			pr.write("set ")
		}
		pr.propertyKey(s.Key, s.Computed)
		if s.Optional {
			pr.write("?")
		}
		pr.typeParameters(s.TypeParameters)
		pr.params(s.ThisParam, s.Params)
		pr.typeAnnotation(s.ReturnType)
	case *TSPropertySignature:
		if s.Readonly {
			pr.write("readonly ")
		}
		pr.propertyKey(s.Key, s.Computed)
		if s.Optional {
			pr.write("?")
		}
		pr.typeAnnotation(s.TypeAnnotation)
	case *TSIndexSignature:
		pr.indexSignature(s)
	}
}

func (pr *printer) indexSignature(s *TSIndexSignature) {
	if s.Static {
		pr.write("static ")
	}
	if s.Readonly {
		pr.write("readonly ")
	}
	pr.write("[")
	for i, param := range s.Parameters {
		if i > 0 {
			pr.write(", ")
		}
		pr.write(param.Name)
		pr.typeAnnotation(param.TypeAnnotation)
	}
	pr.write("]")
	pr.typeAnnotation(s.TypeAnnotation)
}

func (pr *printer) propertyKey(key PropertyKey, computed bool) {
	if computed {
		pr.write("[")
		pr.expression(key.(Expression))
		pr.write("]")
		return
	}
	switch k := key.(type) {
	case *IdentifierName:
		pr.write(k.Name)
	case *PrivateIdentifier:
		pr.write("#", k.Name)
	case Expression:
		pr.expression(k)
	}
}

func (pr *printer) modifiers(m Modifiers) {
	for _, mod := range m.List {
		pr.write(mod.Kind.String(), " ")
	}
}

func (pr *printer) decorators(decorators []*Decorator) {
	for _, d := range decorators {
		pr.write("@")
		pr.operand(d.Expression)
		pr.write(" ")
	}
}

func (pr *printer) params(this *TSThisParameter, params *FormalParameters) {
	pr.write("(")
	n := 0
	sep := func() {
		if n > 0 {
			pr.write(", ")
		}
		n = n + 1
	}
	if this != nil {
		sep()
		pr.write("this")
		pr.typeAnnotation(this.TypeAnnotation)
	}
	if params != nil {
		for _, param := range params.Items {
			sep()
			pr.decorators(param.Decorators)
			pr.modifiers(param.Modifiers)
			pr.bindingPattern(param.Pattern)
			if param.Optional {
				pr.write("?")
			}
			pr.typeAnnotation(param.TypeAnnotation)
			if param.Initializer != nil {
				pr.write(" = ")
				pr.expression(param.Initializer)
			}
		}
		if params.Rest != nil {
			sep()
			pr.rest(params.Rest)
		}
	}
	pr.write(")")
}

func (pr *printer) rest(rest *BindingRestElement) {
	pr.write("...")
	pr.bindingPattern(rest.Argument)
	pr.typeAnnotation(rest.TypeAnnotation)
}

func (pr *printer) bindingPattern(pattern BindingPattern) {
	switch b := pattern.(type) {
	case *BindingIdentifier:
		pr.write(b.Name)
	case *AssignmentPattern:
		pr.bindingPattern(b.Left)
		pr.write(" = ")
		pr.expression(b.Right)
	case *ObjectPattern:
		pr.write("{")
		for i, prop := range b.Properties {
			if i > 0 {
				pr.write(",")
			}
			pr.write(" ")
			if !prop.Shorthand {
				pr.propertyKey(prop.Key, prop.Computed)
				pr.write(": ")
			}
			pr.bindingPattern(prop.Value)
		}
		if b.Rest != nil {
			if len(b.Properties) > 0 {
				pr.write(",")
			}
			pr.write(" ")
			pr.rest(b.Rest)
		}
		pr.write(" }")
	case *ArrayPattern:
		pr.write("[")
		for i, element := range b.Elements {
			if i > 0 {
				pr.write(", ")
			}
			if element != nil {
				pr.bindingPattern(element)
			}
		}
		if len(b.Elements) > 0 && b.Elements[len(b.Elements)-1] == nil {
			pr.write(",")
		}
		if b.Rest != nil {
			if len(b.Elements) > 0 {
				pr.write(", ")
			}
			pr.rest(b.Rest)
		}
		pr.write("]")
	}
}

// ---------------------------------------------------------------------------
// Expressions

// isSimpleExpression reports expressions that never need parentheses as
// operands.
func isSimpleExpression(expr Expression) bool {
	switch expr.(type) {
	case *IdentifierReference, *BooleanLiteral, *NullLiteral, *NumericLiteral, *BigIntLiteral,
		*StringLiteral, *TemplateLiteral, *ThisExpression, *Super, *ArrayExpression,
		*ParenthesizedExpression, *CallExpression, *StaticMemberExpression,
		*PrivateFieldExpression, *ComputedMemberExpression, *TaggedTemplateExpression,
		*TSNonNullExpression, *TSInstantiationExpression:
		return true
	}
	return false
}

func (pr *printer) operand(expr Expression) {
	if isSimpleExpression(expr) {
		pr.expression(expr)
		return
	}
	pr.write("(")
	pr.expression(expr)
	pr.write(")")
}

func (pr *printer) expression(expr Expression) {
	switch e := expr.(type) {
	case *IdentifierReference:
		pr.write(e.Name)
	case *BooleanLiteral:
		pr.write(fmt.Sprint(e.Value))
	case *NullLiteral:
		pr.write("null")
	case *NumericLiteral:
		pr.write(e.Raw)
	case *BigIntLiteral:
		pr.write(e.Raw)
	case *StringLiteral:
		pr.write(quote(e.Value))
	case *TemplateLiteral:
		pr.write("`")
		for i, quasi := range e.Quasis {
			pr.write(quasi.Raw)
			if i < len(e.Expressions) {
				pr.write("${")
				pr.expression(e.Expressions[i])
				pr.write("}")
			}
		}
		pr.write("`")
	case *ThisExpression:
		pr.write("this")
	case *Super:
		pr.write("super")
	case *ArrayExpression:
		pr.write("[")
		for i, element := range e.Elements {
			if i > 0 {
				pr.write(", ")
			}
			if element != nil {
				pr.expression(element)
			}
		}
		if n := len(e.Elements); n > 0 && e.Elements[n-1] == nil {
			pr.write(",")
		}
		pr.write("]")
	case *SpreadElement:
		pr.write("...")
		pr.operand(e.Argument)
	case *ObjectExpression:
		pr.objectExpression(e)
	case *ParenthesizedExpression:
		pr.write("(")
		pr.expression(e.Expression)
		pr.write(")")
	case *UnaryExpression:
		pr.write(e.Operator.String())
		switch e.Operator {
		case KindTypeof, KindVoid, KindDelete, KindAwait:
			pr.write(" ")
		}
		pr.operand(e.Argument)
	case *UpdateExpression:
		if e.Prefix {
			pr.write(e.Operator.String())
			pr.operand(e.Argument)
		} else {
			pr.operand(e.Argument)
			pr.write(e.Operator.String())
		}
	case *BinaryExpression:
		pr.operand(e.Left)
		pr.write(" ", e.Operator.String(), " ")
		pr.operand(e.Right)
	case *AssignmentExpression:
		pr.operand(e.Left)
		pr.write(" ", e.Operator.String(), " ")
		pr.operand(e.Right)
	case *ConditionalExpression:
		pr.operand(e.Test)
		pr.write(" ? ")
		pr.operand(e.Consequent)
		pr.write(" : ")
		pr.operand(e.Alternate)
	case *SequenceExpression:
		for i, item := range e.Expressions {
			if i > 0 {
				pr.write(", ")
			}
			pr.operand(item)
		}
	case *CallExpression:
		pr.operand(e.Callee)
		if e.Optional {
			pr.write("?.")
		}
		pr.typeArguments(e.TypeArguments)
		pr.arguments(e.Arguments)
	case *NewExpression:
		pr.write("new ")
		pr.operand(e.Callee)
		pr.typeArguments(e.TypeArguments)
		pr.arguments(e.Arguments)
	case *StaticMemberExpression:
		pr.operand(e.Object)
		if e.Optional {
			pr.write("?.")
		} else {
			pr.write(".")
		}
		pr.write(e.Property.Name)
	case *PrivateFieldExpression:
		pr.operand(e.Object)
		if e.Optional {
			pr.write("?.")
		} else {
			pr.write(".")
		}
		pr.write("#", e.Field.Name)
	case *ComputedMemberExpression:
		pr.operand(e.Object)
		if e.Optional {
			pr.write("?.")
		}
		pr.write("[")
		pr.expression(e.Expression)
		pr.write("]")
	case *TaggedTemplateExpression:
		pr.operand(e.Tag)
		pr.typeArguments(e.TypeArguments)
		pr.expression(e.Quasi)
	case *TSAsExpression:
		pr.operand(e.Expression)
		pr.write(" as ")
		pr.tsType(e.TypeAnnotation, typePrecedenceConditional)
	case *TSSatisfiesExpression:
		pr.operand(e.Expression)
		pr.write(" satisfies ")
		pr.tsType(e.TypeAnnotation, typePrecedenceConditional)
	case *TSTypeAssertion:
		pr.write("<")
		pr.tsType(e.TypeAnnotation, typePrecedenceConditional)
		pr.write(">")
		pr.operand(e.Expression)
	case *TSNonNullExpression:
		pr.operand(e.Expression)
		pr.write("!")
	case *TSInstantiationExpression:
		pr.operand(e.Expression)
		pr.typeArguments(e.TypeArguments)
	case *ArrowFunctionExpression:
		if e.Async {
			pr.write("async ")
		}
		pr.typeParameters(e.TypeParameters)
		pr.params(nil, e.Params)
		pr.typeAnnotation(e.ReturnType)
		pr.write(" => ")
		if e.Body != nil {
			pr.write("{}")
		} else if _, ok := e.Expression.(*ObjectExpression); ok {
			pr.write("(")
			pr.expression(e.Expression)
			pr.write(")")
		} else {
			pr.expression(e.Expression)
		}
	default:
		pr.write(fmt.Sprintf("/* %T */", expr))
	}
}

func (pr *printer) arguments(args []Expression) {
	pr.write("(")
	for i, arg := range args {
		if i > 0 {
			pr.write(", ")
		}
		pr.expression(arg)
	}
	pr.write(")")
}

func (pr *printer) objectExpression(e *ObjectExpression) {
	if len(e.Properties) == 0 {
		pr.write("{}")
		return
	}
	pr.write("{ ")
	for i, prop := range e.Properties {
		if i > 0 {
			pr.write(", ")
		}
		switch prop.Kind {
		case PropertyKindSpread:
			pr.write("...")
			pr.expression(prop.Value)
		case PropertyKindShorthand:
			pr.expression(prop.Value)
		default:
			pr.propertyKey(prop.Key, prop.Computed)
			pr.write(": ")
			pr.expression(prop.Value)
		}
	}
	pr.write(" }")
}

// quote renders s as a double-quoted string literal.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x2028 || r == 0x2029 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ---------------------------------------------------------------------------
// Statements

func (pr *printer) statement(stmt Statement) {
	switch s := stmt.(type) {
	case *EmptyStatement:
		pr.write(";")
	case *ExpressionStatement:
		if _, ok := s.Expression.(*ObjectExpression); ok {
			pr.write("(")
			pr.expression(s.Expression)
			pr.write(")")
		} else {
			pr.expression(s.Expression)
		}
		pr.write(";")
	case *TSTypeAliasDeclaration:
		pr.declare(s.Declare)
		pr.write("type ", s.ID.Name)
		pr.typeParameters(s.TypeParameters)
		pr.write(" = ")
		pr.tsType(s.TypeAnnotation, typePrecedenceConditional)
		pr.write(";")
	case *TSInterfaceDeclaration:
		pr.declare(s.Declare)
		pr.write("interface ", s.ID.Name)
		pr.typeParameters(s.TypeParameters)
		for i, heritage := range s.Extends {
			if i == 0 {
				pr.write(" extends ")
			} else {
				pr.write(", ")
			}
			pr.operand(heritage.Expression)
			pr.typeArguments(heritage.TypeArguments)
		}
		pr.write(" ")
		pr.members(s.Body.Body)
	case *TSEnumDeclaration:
		pr.declare(s.Declare)
		if s.Const {
			pr.write("const ")
		}
		pr.write("enum ", s.ID.Name, " {")
		for i, member := range s.Members {
			if i > 0 {
				pr.write(",")
			}
			pr.write(" ")
			switch id := member.ID.(type) {
			case *IdentifierName:
				pr.write(id.Name)
			case Expression:
				if member.Computed {
					pr.write("[")
					pr.expression(id)
					pr.write("]")
				} else {
					pr.expression(id)
				}
			}
			if member.Initializer != nil {
				pr.write(" = ")
				pr.expression(member.Initializer)
			}
		}
		pr.write(" }")
	case *TSModuleDeclaration:
		pr.declare(s.Declare)
		pr.moduleDeclaration(s)
	case *TSImportEqualsDeclaration:
		pr.write("import ")
		if s.ImportKind == ImportOrExportKindType {
			pr.write("type ")
		}
		pr.write(s.ID.Name, " = ")
		switch ref := s.ModuleReference.(type) {
		case *TSExternalModuleReference:
			pr.write("require(", quote(ref.Expression.Value), ")")
		case TSTypeName:
			pr.typeName(ref)
		}
		pr.write(";")
	case *FunctionDeclaration:
		pr.declare(s.Declare)
		if s.Async {
			pr.write("async ")
		}
		pr.write("function")
		if s.Generator {
			pr.write("*")
		}
		if s.ID != nil {
			pr.write(" ", s.ID.Name)
		}
		pr.typeParameters(s.TypeParameters)
		pr.params(s.ThisParam, s.Params)
		pr.typeAnnotation(s.ReturnType)
		pr.body(s.Body)
	case *VariableDeclaration:
		pr.declare(s.Declare)
		pr.write(s.Kind.String(), " ")
		for i, d := range s.Declarations {
			if i > 0 {
				pr.write(", ")
			}
			pr.bindingPattern(d.ID)
			if d.Definite {
				pr.write("!")
			}
			pr.typeAnnotation(d.TypeAnnotation)
			if d.Init != nil {
				pr.write(" = ")
				pr.expression(d.Init)
			}
		}
		pr.write(";")
	case *ClassDeclaration:
		pr.classDeclaration(s)
	case *ImportDeclaration:
		pr.importDeclaration(s)
	case *ExportNamedDeclaration:
		pr.write("export ")
		if s.Declaration != nil {
			pr.statement(s.Declaration)
			return
		}
		if s.ExportKind == ImportOrExportKindType {
			pr.write("type ")
		}
		pr.write("{")
		for i, spec := range s.Specifiers {
			if i > 0 {
				pr.write(",")
			}
			pr.write(" ")
			if spec.ExportKind == ImportOrExportKindType {
				pr.write("type ")
			}
			pr.write(spec.Local.Name)
			if spec.Exported.Name != spec.Local.Name {
				pr.write(" as ", spec.Exported.Name)
			}
		}
		pr.write(" }")
		if s.Source != nil {
			pr.write(" from ", quote(s.Source.Value))
		}
		pr.write(";")
	case *ExportAllDeclaration:
		pr.write("export ")
		if s.ExportKind == ImportOrExportKindType {
			pr.write("type ")
		}
		pr.write("*")
		if s.Exported != nil {
			pr.write(" as ", s.Exported.Name)
		}
		pr.write(" from ", quote(s.Source.Value), ";")
	case *ExportDefaultDeclaration:
		pr.write("export default ")
		switch d := s.Declaration.(type) {
		case Statement:
			pr.statement(d)
		case Expression:
			pr.expression(d)
			pr.write(";")
		}
	case *TSExportAssignment:
		pr.write("export = ")
		pr.expression(s.Expression)
		pr.write(";")
	case *TSNamespaceExportDeclaration:
		pr.write("export as namespace ", s.ID.Name, ";")
	default:
		pr.write(fmt.Sprintf("/* %T */", stmt))
	}
}

func (pr *printer) declare(declare bool) {
	if declare {
		pr.write("declare ")
	}
}

func (pr *printer) body(body *FunctionBody) {
	if body == nil {
		pr.write(";")
		return
	}
	pr.write(" {}")
}

func (pr *printer) moduleDeclaration(s *TSModuleDeclaration) {
	if s.Kind != TSModuleDeclarationKindGlobal {
		pr.write(s.Kind.String(), " ")
	}
	for {
		switch id := s.ID.(type) {
		case *BindingIdentifier:
			pr.write(id.Name)
		case *StringLiteral:
			pr.write(quote(id.Value))
		}
		inner, ok := s.Body.(*TSModuleDeclaration)
		if !ok {
			break
		}
		pr.write(".")
		s = inner
	}
	block, ok := s.Body.(*TSModuleBlock)
	if !ok {
		pr.write(";")
		return
	}
	pr.write(" {")
	for _, stmt := range block.Body {
		pr.write(" ")
		pr.statement(stmt)
	}
	pr.write(" }")
}

func (pr *printer) importDeclaration(s *ImportDeclaration) {
	pr.write("import ")
	if s.ImportKind == ImportOrExportKindType {
		pr.write("type ")
	}
	clause := false
	if s.Default != nil {
		pr.write(s.Default.Name)
		clause = true
	}
	if s.Namespace != nil || s.Specifiers != nil {
		if clause {
			pr.write(", ")
		}
		clause = true
	}
	if s.Namespace != nil {
		pr.write("* as ", s.Namespace.Name)
	}
	if s.Specifiers != nil {
		pr.write("{")
		for i, spec := range s.Specifiers {
			if i > 0 {
				pr.write(",")
			}
			pr.write(" ")
			if spec.ImportKind == ImportOrExportKindType {
				pr.write("type ")
			}
			pr.write(spec.Imported.Name)
			if spec.Local.Name != spec.Imported.Name {
				pr.write(" as ", spec.Local.Name)
			}
		}
		pr.write(" }")
	}
	if clause {
		pr.write(" from ")
	}
	pr.write(quote(s.Source.Value), ";")
}

func (pr *printer) classDeclaration(s *ClassDeclaration) {
	pr.decorators(s.Decorators)
	pr.declare(s.Declare)
	if s.Abstract {
		pr.write("abstract ")
	}
	pr.write("class")
	if s.ID != nil {
		pr.write(" ", s.ID.Name)
	}
	pr.typeParameters(s.TypeParameters)
	if s.SuperClass != nil {
		pr.write(" extends ")
		pr.operand(s.SuperClass)
		pr.typeArguments(s.SuperTypeParameters)
	}
	for i, impl := range s.Implements {
		if i == 0 {
			pr.write(" implements ")
		} else {
			pr.write(", ")
		}
		pr.typeName(impl.Expression)
		pr.typeArguments(impl.TypeArguments)
	}
	if len(s.Body) == 0 {
		pr.write(" {}")
		return
	}
	pr.write(" {")
	for _, element := range s.Body {
		pr.write(" ")
		pr.classElement(element)
	}
	pr.write(" }")
}

func (pr *printer) classElement(element ClassElement) {
	switch e := element.(type) {
	case *ClassIndexSignature:
		pr.indexSignature(e.TSIndexSignature)
		pr.write(";")
	case *PropertyDefinition:
		pr.decorators(e.Decorators)
		pr.modifiers(e.Modifiers)
		pr.propertyKey(e.Key, e.Computed)
		if e.Optional {
			pr.write("?")
		}
		if e.Definite {
			pr.write("!")
		}
		pr.typeAnnotation(e.TypeAnnotation)
		if e.Value != nil {
			pr.write(" = ")
			pr.expression(e.Value)
		}
		pr.write(";")
	case *MethodDefinition:
		pr.decorators(e.Decorators)
		pr.modifiers(e.Modifiers)
		if e.Generator {
			pr.write("*")
		}
		switch e.Kind {
		case MethodDefinitionKindGet:
			pr.write("get ")
		case MethodDefinitionKindSet:
			pr.write("set ")
		}
		pr.propertyKey(e.Key, e.Computed)
		if e.Optional {
			pr.write("?")
		}
		pr.typeParameters(e.TypeParameters)
		pr.params(e.ThisParam, e.Params)
		pr.typeAnnotation(e.ReturnType)
		pr.body(e.Body)
	}
}
