package typescript

// Node is implemented by every tree node.
type Node interface {
	GetSpan() Span
}

// TSTupleElement is anything that may appear between the brackets of a
// tuple type. Every TSType is also a TSTupleElement.
type TSTupleElement interface {
	Node
	tsTupleElement()
}

type TSType interface {
	TSTupleElement
	tsType()
}

type TSSignature interface {
	Node
	tsSignature()
}

type Statement interface {
	Node
	statement()
}

// PropertyKey names an object member. Every Expression may be used as a
// computed key.
type PropertyKey interface {
	Node
	propertyKey()
}

type Expression interface {
	PropertyKey
	expression()
}

type BindingPattern interface {
	Node
	bindingPattern()
}

// TSTypeName is an identifier or a dotted path of identifiers.
type TSTypeName interface {
	Node
	tsTypeName()
}

// TSTypeQueryExprName is the operand of a `typeof` type query.
type TSTypeQueryExprName interface {
	Node
	tsTypeQueryExprName()
}

// TSModuleReference is the right hand side of an import-equals declaration.
type TSModuleReference interface {
	Node
	tsModuleReference()
}

type TSTypePredicateName interface {
	Node
	tsTypePredicateName()
}

type TSEnumMemberName interface {
	Node
	tsEnumMemberName()
}

type TSModuleDeclarationName interface {
	Node
	tsModuleDeclarationName()
}

type TSModuleDeclarationBody interface {
	Node
	tsModuleDeclarationBody()
}

// ---------------------------------------------------------------------------
// Names and literals

type IdentifierName struct {
	Span
	Name string
}

type IdentifierReference struct {
	Span
	Name string
}

type BindingIdentifier struct {
	Span
	Name string
}

type PrivateIdentifier struct {
	Span
	Name string
}

type BooleanLiteral struct {
	Span
	Value bool
}

type NullLiteral struct {
	Span
}

type NumericLiteral struct {
	Span
	Value float64
	Raw   string
}

type BigIntLiteral struct {
	Span
	Raw string
}

type StringLiteral struct {
	Span
	Value string
}

type TemplateElement struct {
	Span
	Raw    string
	Cooked string
	Tail   bool
}

type TemplateLiteral struct {
	Span
	Quasis      []*TemplateElement
	Expressions []Expression
}

// ---------------------------------------------------------------------------
// Types

type TSKeyword uint8

const (
	TSKeywordAny TSKeyword = iota
	TSKeywordUnknown
	TSKeywordNumber
	TSKeywordBigInt
	TSKeywordBoolean
	TSKeywordString
	TSKeywordSymbol
	TSKeywordObject
	TSKeywordNever
	TSKeywordUndefined
	TSKeywordNull
	TSKeywordVoid
	TSKeywordIntrinsic
)

var tsKeywordNames = [...]string{
	TSKeywordAny:       "any",
	TSKeywordUnknown:   "unknown",
	TSKeywordNumber:    "number",
	TSKeywordBigInt:    "bigint",
	TSKeywordBoolean:   "boolean",
	TSKeywordString:    "string",
	TSKeywordSymbol:    "symbol",
	TSKeywordObject:    "object",
	TSKeywordNever:     "never",
	TSKeywordUndefined: "undefined",
	TSKeywordNull:      "null",
	TSKeywordVoid:      "void",
	TSKeywordIntrinsic: "intrinsic",
}

func (k TSKeyword) String() string {
	return tsKeywordNames[k]
}

type TSKeywordType struct {
	Span
	Keyword TSKeyword
}

type TSThisType struct {
	Span
}

// TSLiteralType wraps a boolean, null-free numeric, bigint, string,
// no-substitution template or negated numeric literal.
type TSLiteralType struct {
	Span
	Literal Expression
}

type TSTemplateLiteralType struct {
	Span
	Quasis []*TemplateElement
	Types  []TSType
}

type TSTypeReference struct {
	Span
	TypeName      TSTypeName
	TypeArguments *TSTypeParameterInstantiation
}

type TSQualifiedName struct {
	Span
	Left  TSTypeName
	Right *IdentifierName
}

type TSFunctionType struct {
	Span
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

type TSConstructorType struct {
	Span
	Abstract       bool
	TypeParameters *TSTypeParameterDeclaration
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

type TSUnionType struct {
	Span
	Types []TSType
}

type TSIntersectionType struct {
	Span
	Types []TSType
}

type TSConditionalType struct {
	Span
	CheckType   TSType
	ExtendsType TSType
	TrueType    TSType
	FalseType   TSType
}

type TSTypeOperatorKind uint8

const (
	TSTypeOperatorKeyof TSTypeOperatorKind = iota
	TSTypeOperatorUnique
	TSTypeOperatorReadonly
)

func (k TSTypeOperatorKind) String() string {
	switch k {
	case TSTypeOperatorKeyof:
		return "keyof"
	case TSTypeOperatorUnique:
		return "unique"
	default:
		return "readonly"
	}
}

type TSTypeOperator struct {
	Span
	Operator       TSTypeOperatorKind
	TypeAnnotation TSType
}

type TSInferType struct {
	Span
	TypeParameter *TSTypeParameter
}

type TSArrayType struct {
	Span
	ElementType TSType
}

type TSIndexedAccessType struct {
	Span
	ObjectType TSType
	IndexType  TSType
}

type TSTupleType struct {
	Span
	ElementTypes []TSTupleElement
}

type TSOptionalType struct {
	Span
	TypeAnnotation TSType
}

// TSRestType wraps either a type or, for `...name: T`, a named member.
type TSRestType struct {
	Span
	TypeAnnotation TSTupleElement
}

type TSNamedTupleMember struct {
	Span
	Label       *IdentifierName
	ElementType TSTupleElement
	Optional    bool
}

// TSMappedTypeModifier records a `+`, `-` or bare `readonly`/`?` on a mapped
// type. The zero value means the modifier is absent.
type TSMappedTypeModifier uint8

const (
	TSMappedTypeModifierNone TSMappedTypeModifier = iota
	TSMappedTypeModifierTrue
	TSMappedTypeModifierPlus
	TSMappedTypeModifierMinus
)

type TSMappedType struct {
	Span
	TypeParameter  *TSTypeParameter
	NameType       TSType
	TypeAnnotation TSType
	Optional       TSMappedTypeModifier
	Readonly       TSMappedTypeModifier
}

type TSTypeLiteral struct {
	Span
	Members []TSSignature
}

type TSTypeQuery struct {
	Span
	ExprName      TSTypeQueryExprName
	TypeArguments *TSTypeParameterInstantiation
}

type TSTypePredicate struct {
	Span
	ParameterName  TSTypePredicateName
	Asserts        bool
	TypeAnnotation *TSTypeAnnotation
}

type TSParenthesizedType struct {
	Span
	TypeAnnotation TSType
}

type TSImportType struct {
	Span
	Argument      TSType
	Options       *ObjectExpression
	Qualifier     TSTypeName
	TypeArguments *TSTypeParameterInstantiation
}

// JSDocNullableType is `?T` or, with Postfix set, `T?`.
type JSDocNullableType struct {
	Span
	TypeAnnotation TSType
	Postfix        bool
}

type JSDocNonNullableType struct {
	Span
	TypeAnnotation TSType
	Postfix        bool
}

// JSDocUnknownType is a bare `?`.
type JSDocUnknownType struct {
	Span
}

type TSTypeAnnotation struct {
	Span
	TypeAnnotation TSType
}

type TSTypeParameter struct {
	Span
	Name       *BindingIdentifier
	Constraint TSType
	Default    TSType
	In         bool
	Out        bool
	Const      bool
}

type TSTypeParameterDeclaration struct {
	Span
	Params []*TSTypeParameter
}

type TSTypeParameterInstantiation struct {
	Span
	Params []TSType
}

// ---------------------------------------------------------------------------
// Signatures

type TSCallSignatureDeclaration struct {
	Span
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

type TSConstructSignatureDeclaration struct {
	Span
	TypeParameters *TSTypeParameterDeclaration
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

type TSMethodSignatureKind uint8

const (
	TSMethodSignatureKindMethod TSMethodSignatureKind = iota
	TSMethodSignatureKindGet
	TSMethodSignatureKindSet
)

type TSMethodSignature struct {
	Span
	Key            PropertyKey
	Computed       bool
	Optional       bool
	Kind           TSMethodSignatureKind
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
}

type TSPropertySignature struct {
	Span
	Computed       bool
	Optional       bool
	Readonly       bool
	Key            PropertyKey
	TypeAnnotation *TSTypeAnnotation
}

type TSIndexSignatureName struct {
	Span
	Name           string
	TypeAnnotation *TSTypeAnnotation
}

type TSIndexSignature struct {
	Span
	Parameters     []*TSIndexSignatureName
	TypeAnnotation *TSTypeAnnotation
	Readonly       bool
	Static         bool
}

// ---------------------------------------------------------------------------
// Parameters and bindings

type TSThisParameter struct {
	Span
	TypeAnnotation *TSTypeAnnotation
}

type FormalParameter struct {
	Span
	Decorators     []*Decorator
	Modifiers      Modifiers
	Pattern        BindingPattern
	Optional       bool
	TypeAnnotation *TSTypeAnnotation
	Initializer    Expression
}

type BindingRestElement struct {
	Span
	Argument       BindingPattern
	TypeAnnotation *TSTypeAnnotation
}

type FormalParameters struct {
	Span
	Items []*FormalParameter
	Rest  *BindingRestElement
}

type BindingProperty struct {
	Span
	Key       PropertyKey
	Computed  bool
	Shorthand bool
	Value     BindingPattern
}

type ObjectPattern struct {
	Span
	Properties []*BindingProperty
	Rest       *BindingRestElement
}

// ArrayPattern holds nil Elements for elisions.
type ArrayPattern struct {
	Span
	Elements []BindingPattern
	Rest     *BindingRestElement
}

type AssignmentPattern struct {
	Span
	Left  BindingPattern
	Right Expression
}

type Decorator struct {
	Span
	Expression Expression
}

// ---------------------------------------------------------------------------
// Declarations

type Program struct {
	Span
	Body []Statement
}

type TSEnumDeclaration struct {
	Span
	ID      *BindingIdentifier
	Members []*TSEnumMember
	Const   bool
	Declare bool
}

type TSEnumMember struct {
	Span
	ID          TSEnumMemberName
	Computed    bool
	Initializer Expression
}

type TSTypeAliasDeclaration struct {
	Span
	ID             *BindingIdentifier
	TypeParameters *TSTypeParameterDeclaration
	TypeAnnotation TSType
	Declare        bool
}

type TSInterfaceHeritage struct {
	Span
	Expression    Expression
	TypeArguments *TSTypeParameterInstantiation
}

type TSInterfaceBody struct {
	Span
	Body []TSSignature
}

type TSInterfaceDeclaration struct {
	Span
	ID             *BindingIdentifier
	TypeParameters *TSTypeParameterDeclaration
	Extends        []*TSInterfaceHeritage
	Body           *TSInterfaceBody
	Declare        bool
}

type TSModuleDeclarationKind uint8

const (
	TSModuleDeclarationKindModule TSModuleDeclarationKind = iota
	TSModuleDeclarationKindNamespace
	TSModuleDeclarationKindGlobal
)

func (k TSModuleDeclarationKind) String() string {
	switch k {
	case TSModuleDeclarationKindNamespace:
		return "namespace"
	case TSModuleDeclarationKindGlobal:
		return "global"
	default:
		return "module"
	}
}

// TSModuleDeclaration has a nil Body for `declare module "x";`.
type TSModuleDeclaration struct {
	Span
	ID      TSModuleDeclarationName
	Body    TSModuleDeclarationBody
	Kind    TSModuleDeclarationKind
	Declare bool
}

type TSModuleBlock struct {
	Span
	Body []Statement
}

type ImportOrExportKind uint8

const (
	ImportOrExportKindValue ImportOrExportKind = iota
	ImportOrExportKindType
)

type TSExternalModuleReference struct {
	Span
	Expression *StringLiteral
}

type TSImportEqualsDeclaration struct {
	Span
	ID              *BindingIdentifier
	ModuleReference TSModuleReference
	ImportKind      ImportOrExportKind
}

// FunctionBody is kept opaque; only its extent is recorded.
type FunctionBody struct {
	Span
}

type FunctionDeclaration struct {
	Span
	ID             *BindingIdentifier
	Async          bool
	Generator      bool
	Declare        bool
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
	Body           *FunctionBody
}

type VariableDeclarationKind uint8

const (
	VariableDeclarationKindVar VariableDeclarationKind = iota
	VariableDeclarationKindLet
	VariableDeclarationKindConst
)

func (k VariableDeclarationKind) String() string {
	switch k {
	case VariableDeclarationKindLet:
		return "let"
	case VariableDeclarationKindConst:
		return "const"
	default:
		return "var"
	}
}

type VariableDeclarator struct {
	Span
	ID             BindingPattern
	Definite       bool
	TypeAnnotation *TSTypeAnnotation
	Init           Expression
}

type VariableDeclaration struct {
	Span
	Kind         VariableDeclarationKind
	Declarations []*VariableDeclarator
	Declare      bool
}

type TSClassImplements struct {
	Span
	Expression    TSTypeName
	TypeArguments *TSTypeParameterInstantiation
}

type ClassElement interface {
	Node
	classElement()
}

type ClassDeclaration struct {
	Span
	Decorators          []*Decorator
	ID                  *BindingIdentifier
	TypeParameters      *TSTypeParameterDeclaration
	SuperClass          Expression
	SuperTypeParameters *TSTypeParameterInstantiation
	Implements          []*TSClassImplements
	Body                []ClassElement
	Abstract            bool
	Declare             bool
}

type MethodDefinitionKind uint8

const (
	MethodDefinitionKindMethod MethodDefinitionKind = iota
	MethodDefinitionKindGet
	MethodDefinitionKindSet
	MethodDefinitionKindConstructor
)

type PropertyDefinition struct {
	Span
	Decorators     []*Decorator
	Modifiers      Modifiers
	Key            PropertyKey
	Computed       bool
	Optional       bool
	Definite       bool
	TypeAnnotation *TSTypeAnnotation
	Value          Expression
}

type MethodDefinition struct {
	Span
	Decorators     []*Decorator
	Modifiers      Modifiers
	Kind           MethodDefinitionKind
	Key            PropertyKey
	Computed       bool
	Optional       bool
	Async          bool
	Generator      bool
	TypeParameters *TSTypeParameterDeclaration
	ThisParam      *TSThisParameter
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
	Body           *FunctionBody
}

// ClassIndexSignature is an index signature inside a class body.
type ClassIndexSignature struct {
	*TSIndexSignature
}

// ImportDeclaration is `import [type] clause from "x"` or `import "x"`.
type ImportDeclaration struct {
	Span
	Default    *BindingIdentifier
	Namespace  *BindingIdentifier
	Specifiers []*ImportSpecifier
	Source     *StringLiteral
	ImportKind ImportOrExportKind
}

type ImportSpecifier struct {
	Span
	Imported   *IdentifierName
	Local      *BindingIdentifier
	ImportKind ImportOrExportKind
}

type ExportSpecifier struct {
	Span
	Local      *IdentifierName
	Exported   *IdentifierName
	ExportKind ImportOrExportKind
}

// ExportNamedDeclaration is either `export <declaration>` or
// `export { a, b as c } [from "x"]`.
type ExportNamedDeclaration struct {
	Span
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral
	ExportKind  ImportOrExportKind
}

type ExportAllDeclaration struct {
	Span
	Exported   *IdentifierName
	Source     *StringLiteral
	ExportKind ImportOrExportKind
}

// ExportDefaultDeclaration holds a Statement for function, class and
// interface declarations and an Expression otherwise.
type ExportDefaultDeclaration struct {
	Span
	Declaration Node
}

// TSExportAssignment is `export = expr`.
type TSExportAssignment struct {
	Span
	Expression Expression
}

// TSNamespaceExportDeclaration is `export as namespace X`.
type TSNamespaceExportDeclaration struct {
	Span
	ID *IdentifierName
}

type ExpressionStatement struct {
	Span
	Expression Expression
}

type EmptyStatement struct {
	Span
}

// ---------------------------------------------------------------------------
// Expressions

type ThisExpression struct {
	Span
}

type Super struct {
	Span
}

// ArrayExpression holds nil Elements for elisions.
type ArrayExpression struct {
	Span
	Elements []Expression
}

type SpreadElement struct {
	Span
	Argument Expression
}

type PropertyKind uint8

const (
	PropertyKindInit PropertyKind = iota
	PropertyKindShorthand
	PropertyKindSpread
)

type ObjectProperty struct {
	Span
	Kind     PropertyKind
	Key      PropertyKey
	Computed bool
	Value    Expression
}

type ObjectExpression struct {
	Span
	Properties []*ObjectProperty
}

type ParenthesizedExpression struct {
	Span
	Expression Expression
}

type UnaryExpression struct {
	Span
	Operator Kind
	Argument Expression
}

type UpdateExpression struct {
	Span
	Operator Kind
	Prefix   bool
	Argument Expression
}

type BinaryExpression struct {
	Span
	Left     Expression
	Operator Kind
	Right    Expression
}

type ConditionalExpression struct {
	Span
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

type AssignmentExpression struct {
	Span
	Left     Expression
	Operator Kind
	Right    Expression
}

type SequenceExpression struct {
	Span
	Expressions []Expression
}

type CallExpression struct {
	Span
	Callee        Expression
	TypeArguments *TSTypeParameterInstantiation
	Arguments     []Expression
	Optional      bool
}

type NewExpression struct {
	Span
	Callee        Expression
	TypeArguments *TSTypeParameterInstantiation
	Arguments     []Expression
}

type StaticMemberExpression struct {
	Span
	Object   Expression
	Property *IdentifierName
	Optional bool
}

type PrivateFieldExpression struct {
	Span
	Object   Expression
	Field    *PrivateIdentifier
	Optional bool
}

type ComputedMemberExpression struct {
	Span
	Object     Expression
	Expression Expression
	Optional   bool
}

type TaggedTemplateExpression struct {
	Span
	Tag           Expression
	TypeArguments *TSTypeParameterInstantiation
	Quasi         *TemplateLiteral
}

type TSAsExpression struct {
	Span
	Expression     Expression
	TypeAnnotation TSType
}

type TSSatisfiesExpression struct {
	Span
	Expression     Expression
	TypeAnnotation TSType
}

type TSTypeAssertion struct {
	Span
	TypeAnnotation TSType
	Expression     Expression
}

type TSNonNullExpression struct {
	Span
	Expression Expression
}

type TSInstantiationExpression struct {
	Span
	Expression    Expression
	TypeArguments *TSTypeParameterInstantiation
}

// ArrowFunctionExpression has either a concise Expression body or an
// opaque block Body.
type ArrowFunctionExpression struct {
	Span
	Async          bool
	TypeParameters *TSTypeParameterDeclaration
	Params         *FormalParameters
	ReturnType     *TSTypeAnnotation
	Expression     Expression
	Body           *FunctionBody
}

// ---------------------------------------------------------------------------
// Interface membership

func (*TSKeywordType) tsType()         {}
func (*TSThisType) tsType()            {}
func (*TSLiteralType) tsType()         {}
func (*TSTemplateLiteralType) tsType() {}
func (*TSTypeReference) tsType()       {}
func (*TSFunctionType) tsType()        {}
func (*TSConstructorType) tsType()     {}
func (*TSUnionType) tsType()           {}
func (*TSIntersectionType) tsType()    {}
func (*TSConditionalType) tsType()     {}
func (*TSTypeOperator) tsType()        {}
func (*TSInferType) tsType()           {}
func (*TSArrayType) tsType()           {}
func (*TSIndexedAccessType) tsType()   {}
func (*TSTupleType) tsType()           {}
func (*TSMappedType) tsType()          {}
func (*TSTypeLiteral) tsType()         {}
func (*TSTypeQuery) tsType()           {}
func (*TSTypePredicate) tsType()       {}
func (*TSParenthesizedType) tsType()   {}
func (*TSImportType) tsType()          {}
func (*JSDocNullableType) tsType()     {}
func (*JSDocNonNullableType) tsType()  {}
func (*JSDocUnknownType) tsType()      {}

func (*TSKeywordType) tsTupleElement()         {}
func (*TSThisType) tsTupleElement()            {}
func (*TSLiteralType) tsTupleElement()         {}
func (*TSTemplateLiteralType) tsTupleElement() {}
func (*TSTypeReference) tsTupleElement()       {}
func (*TSFunctionType) tsTupleElement()        {}
func (*TSConstructorType) tsTupleElement()     {}
func (*TSUnionType) tsTupleElement()           {}
func (*TSIntersectionType) tsTupleElement()    {}
func (*TSConditionalType) tsTupleElement()     {}
func (*TSTypeOperator) tsTupleElement()        {}
func (*TSInferType) tsTupleElement()           {}
func (*TSArrayType) tsTupleElement()           {}
func (*TSIndexedAccessType) tsTupleElement()   {}
func (*TSTupleType) tsTupleElement()           {}
func (*TSMappedType) tsTupleElement()          {}
func (*TSTypeLiteral) tsTupleElement()         {}
func (*TSTypeQuery) tsTupleElement()           {}
func (*TSTypePredicate) tsTupleElement()       {}
func (*TSParenthesizedType) tsTupleElement()   {}
func (*TSImportType) tsTupleElement()          {}
func (*JSDocNullableType) tsTupleElement()     {}
func (*JSDocNonNullableType) tsTupleElement()  {}
func (*JSDocUnknownType) tsTupleElement()      {}
func (*TSOptionalType) tsTupleElement()        {}
func (*TSRestType) tsTupleElement()            {}
func (*TSNamedTupleMember) tsTupleElement()    {}

func (*TSCallSignatureDeclaration) tsSignature()      {}
func (*TSConstructSignatureDeclaration) tsSignature() {}
func (*TSMethodSignature) tsSignature()               {}
func (*TSPropertySignature) tsSignature()             {}
func (*TSIndexSignature) tsSignature()                {}

func (*IdentifierReference) tsTypeName() {}
func (*TSQualifiedName) tsTypeName()     {}

func (*IdentifierReference) tsTypeQueryExprName() {}
func (*TSQualifiedName) tsTypeQueryExprName()     {}
func (*TSImportType) tsTypeQueryExprName()        {}

func (*IdentifierReference) tsModuleReference()       {}
func (*TSQualifiedName) tsModuleReference()           {}
func (*TSExternalModuleReference) tsModuleReference() {}

func (*IdentifierName) tsTypePredicateName() {}
func (*TSThisType) tsTypePredicateName()     {}

func (*IdentifierName) tsEnumMemberName()  {}
func (*StringLiteral) tsEnumMemberName()   {}
func (*TemplateLiteral) tsEnumMemberName() {}

func (*BindingIdentifier) tsModuleDeclarationName() {}
func (*StringLiteral) tsModuleDeclarationName()     {}

func (*TSModuleDeclaration) tsModuleDeclarationBody() {}
func (*TSModuleBlock) tsModuleDeclarationBody()       {}

func (*BindingIdentifier) bindingPattern() {}
func (*ObjectPattern) bindingPattern()     {}
func (*ArrayPattern) bindingPattern()      {}
func (*AssignmentPattern) bindingPattern() {}

func (*PropertyDefinition) classElement()  {}
func (*MethodDefinition) classElement()    {}
func (*ClassIndexSignature) classElement() {}

func (*TSEnumDeclaration) statement()         {}
func (*TSTypeAliasDeclaration) statement()    {}
func (*TSInterfaceDeclaration) statement()    {}
func (*TSModuleDeclaration) statement()       {}
func (*TSImportEqualsDeclaration) statement() {}
func (*FunctionDeclaration) statement()       {}
func (*VariableDeclaration) statement()       {}
func (*ClassDeclaration) statement()          {}
func (*ExportNamedDeclaration) statement()    {}
func (*ExpressionStatement) statement()       {}
func (*EmptyStatement) statement()            {}

func (*ImportDeclaration) statement()            {}
func (*ExportAllDeclaration) statement()         {}
func (*ExportDefaultDeclaration) statement()     {}
func (*TSExportAssignment) statement()           {}
func (*TSNamespaceExportDeclaration) statement() {}

func (*IdentifierName) propertyKey()    {}
func (*PrivateIdentifier) propertyKey() {}

func (*IdentifierReference) propertyKey()       {}
func (*BooleanLiteral) propertyKey()            {}
func (*NullLiteral) propertyKey()               {}
func (*NumericLiteral) propertyKey()            {}
func (*BigIntLiteral) propertyKey()             {}
func (*StringLiteral) propertyKey()             {}
func (*TemplateLiteral) propertyKey()           {}
func (*ThisExpression) propertyKey()            {}
func (*Super) propertyKey()                     {}
func (*ArrayExpression) propertyKey()           {}
func (*SpreadElement) propertyKey()             {}
func (*ObjectExpression) propertyKey()          {}
func (*ParenthesizedExpression) propertyKey()   {}
func (*UnaryExpression) propertyKey()           {}
func (*UpdateExpression) propertyKey()          {}
func (*BinaryExpression) propertyKey()          {}
func (*ConditionalExpression) propertyKey()     {}
func (*AssignmentExpression) propertyKey()      {}
func (*SequenceExpression) propertyKey()        {}
func (*CallExpression) propertyKey()            {}
func (*NewExpression) propertyKey()             {}
func (*StaticMemberExpression) propertyKey()    {}
func (*PrivateFieldExpression) propertyKey()    {}
func (*ComputedMemberExpression) propertyKey()  {}
func (*TaggedTemplateExpression) propertyKey()  {}
func (*TSAsExpression) propertyKey()            {}
func (*TSSatisfiesExpression) propertyKey()     {}
func (*TSTypeAssertion) propertyKey()           {}
func (*TSNonNullExpression) propertyKey()       {}
func (*TSInstantiationExpression) propertyKey() {}
func (*ArrowFunctionExpression) propertyKey()   {}

func (*IdentifierReference) expression()       {}
func (*BooleanLiteral) expression()            {}
func (*NullLiteral) expression()               {}
func (*NumericLiteral) expression()            {}
func (*BigIntLiteral) expression()             {}
func (*StringLiteral) expression()             {}
func (*TemplateLiteral) expression()           {}
func (*ThisExpression) expression()            {}
func (*Super) expression()                     {}
func (*ArrayExpression) expression()           {}
func (*SpreadElement) expression()             {}
func (*ObjectExpression) expression()          {}
func (*ParenthesizedExpression) expression()   {}
func (*UnaryExpression) expression()           {}
func (*UpdateExpression) expression()          {}
func (*BinaryExpression) expression()          {}
func (*ConditionalExpression) expression()     {}
func (*AssignmentExpression) expression()      {}
func (*SequenceExpression) expression()        {}
func (*CallExpression) expression()            {}
func (*NewExpression) expression()             {}
func (*StaticMemberExpression) expression()    {}
func (*PrivateFieldExpression) expression()    {}
func (*ComputedMemberExpression) expression()  {}
func (*TaggedTemplateExpression) expression()  {}
func (*TSAsExpression) expression()            {}
func (*TSSatisfiesExpression) expression()     {}
func (*TSTypeAssertion) expression()           {}
func (*TSNonNullExpression) expression()       {}
func (*TSInstantiationExpression) expression() {}
func (*ArrowFunctionExpression) expression()   {}
