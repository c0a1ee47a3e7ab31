package typescript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsgram/tsgram/internal/exc"
)

func parseAliasType(t *testing.T, src string, options Options) TSType {
	t.Helper()
	res := ParseSource("/test.ts", []byte("type T = "+src+";"), options)
	require.Empty(t, res.Diagnostics, "%v", res.Diagnostics)
	require.Len(t, res.Program.Body, 1)
	alias, ok := res.Program.Body[0].(*TSTypeAliasDeclaration)
	require.True(t, ok, "%T", res.Program.Body[0])
	return alias.TypeAnnotation
}

func refName(t *testing.T, ty TSType) string {
	t.Helper()
	ref, ok := ty.(*TSTypeReference)
	require.True(t, ok, "%T", ty)
	id, ok := ref.TypeName.(*IdentifierReference)
	require.True(t, ok, "%T", ref.TypeName)
	return id.Name
}

func TestParseTypes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		input   string
		options Options
		check   func(t *testing.T, ty TSType)
	}{
		{
			name:  "keyword",
			input: "string",
			check: func(t *testing.T, ty TSType) {
				require.Equal(t, TSKeywordString, ty.(*TSKeywordType).Keyword)
			},
		},
		{
			name:  "keyword as qualifier",
			input: "string.Foo",
			check: func(t *testing.T, ty TSType) {
				name, ok := ty.(*TSTypeReference).TypeName.(*TSQualifiedName)
				require.True(t, ok)
				require.Equal(t, "Foo", name.Right.Name)
				require.Equal(t, "string", name.Left.(*IdentifierReference).Name)
			},
		},
		{
			name:  "union binds looser than intersection",
			input: "A | B & C",
			check: func(t *testing.T, ty TSType) {
				union := ty.(*TSUnionType)
				require.Len(t, union.Types, 2)
				require.Equal(t, "A", refName(t, union.Types[0]))
				require.Len(t, union.Types[1].(*TSIntersectionType).Types, 2)
			},
		},
		{
			name:  "leading pipe",
			input: "| A",
			check: func(t *testing.T, ty TSType) {
				require.Len(t, ty.(*TSUnionType).Types, 1)
			},
		},
		{
			name:  "keyof binds looser than array",
			input: "keyof T[]",
			check: func(t *testing.T, ty TSType) {
				op := ty.(*TSTypeOperator)
				require.Equal(t, TSTypeOperatorKeyof, op.Operator)
				require.IsType(t, &TSArrayType{}, op.TypeAnnotation)
			},
		},
		{
			name:  "readonly array",
			input: "readonly string[]",
			check: func(t *testing.T, ty TSType) {
				require.Equal(t, TSTypeOperatorReadonly, ty.(*TSTypeOperator).Operator)
			},
		},
		{
			name:  "unique symbol",
			input: "unique symbol",
			check: func(t *testing.T, ty TSType) {
				require.Equal(t, TSTypeOperatorUnique, ty.(*TSTypeOperator).Operator)
			},
		},
		{
			name:  "indexed access",
			input: "T[\"a\"][]",
			check: func(t *testing.T, ty TSType) {
				array := ty.(*TSArrayType)
				require.IsType(t, &TSIndexedAccessType{}, array.ElementType)
			},
		},
		{
			name:  "conditional",
			input: "T extends string ? 1 : 2",
			check: func(t *testing.T, ty TSType) {
				cond := ty.(*TSConditionalType)
				require.Equal(t, "T", refName(t, cond.CheckType))
				require.IsType(t, &TSKeywordType{}, cond.ExtendsType)
				require.IsType(t, &TSLiteralType{}, cond.TrueType)
				require.IsType(t, &TSLiteralType{}, cond.FalseType)
			},
		},
		{
			name:  "nested conditional in false branch",
			input: "A extends B ? C : D extends E ? F : G",
			check: func(t *testing.T, ty TSType) {
				require.IsType(t, &TSConditionalType{}, ty.(*TSConditionalType).FalseType)
			},
		},
		{
			name:  "infer with constraint in extends position",
			input: "T extends infer U extends string ? U : never",
			check: func(t *testing.T, ty TSType) {
				infer := ty.(*TSConditionalType).ExtendsType.(*TSInferType)
				require.Equal(t, "U", infer.TypeParameter.Name.Name)
				require.IsType(t, &TSKeywordType{}, infer.TypeParameter.Constraint)
			},
		},
		{
			name:  "infer with constraint inside tuple",
			input: "T extends [infer H extends string, ...infer R] ? H : never",
			check: func(t *testing.T, ty TSType) {
				tuple := ty.(*TSConditionalType).ExtendsType.(*TSTupleType)
				require.Len(t, tuple.ElementTypes, 2)
				head := tuple.ElementTypes[0].(*TSInferType)
				require.NotNil(t, head.TypeParameter.Constraint)
				rest := tuple.ElementTypes[1].(*TSRestType)
				require.Nil(t, rest.TypeAnnotation.(*TSInferType).TypeParameter.Constraint)
			},
		},
		{
			name:  "infer constraint yields to conditional",
			input: "T extends (infer U extends string ? 1 : 2) ? U : never",
			check: func(t *testing.T, ty TSType) {
				inner := ty.(*TSConditionalType).ExtendsType.(*TSConditionalType)
				infer := inner.CheckType.(*TSInferType)
				require.Nil(t, infer.TypeParameter.Constraint)
			},
		},
		{
			name:  "parenthesized type dropped",
			input: "(string)",
			check: func(t *testing.T, ty TSType) {
				require.IsType(t, &TSKeywordType{}, ty)
			},
		},
		{
			name:    "parenthesized type preserved",
			input:   "(string)",
			options: Options{PreserveParens: true},
			check: func(t *testing.T, ty TSType) {
				require.IsType(t, &TSKeywordType{}, ty.(*TSParenthesizedType).TypeAnnotation)
			},
		},
		{
			name:  "function type",
			input: "<T>(a: T, ...rest: T[]) => void",
			check: func(t *testing.T, ty TSType) {
				fn := ty.(*TSFunctionType)
				require.Len(t, fn.TypeParameters.Params, 1)
				require.Len(t, fn.Params.Items, 1)
				require.NotNil(t, fn.Params.Rest)
				require.Equal(t, TSKeywordVoid, fn.ReturnType.TypeAnnotation.(*TSKeywordType).Keyword)
			},
		},
		{
			name:  "function type with this parameter",
			input: "(this: Window, ev: Event) => any",
			check: func(t *testing.T, ty TSType) {
				fn := ty.(*TSFunctionType)
				require.NotNil(t, fn.ThisParam)
				require.Len(t, fn.Params.Items, 1)
			},
		},
		{
			name:  "function type with destructured parameter",
			input: "({ a, b }: P) => void",
			check: func(t *testing.T, ty TSType) {
				fn := ty.(*TSFunctionType)
				require.IsType(t, &ObjectPattern{}, fn.Params.Items[0].Pattern)
			},
		},
		{
			name:  "function type returning predicate",
			input: "(x: unknown) => x is string",
			check: func(t *testing.T, ty TSType) {
				pred := ty.(*TSFunctionType).ReturnType.TypeAnnotation.(*TSTypePredicate)
				require.Equal(t, "x", pred.ParameterName.(*IdentifierName).Name)
				require.False(t, pred.Asserts)
			},
		},
		{
			name:  "abstract constructor type",
			input: "abstract new () => object",
			check: func(t *testing.T, ty TSType) {
				require.True(t, ty.(*TSConstructorType).Abstract)
			},
		},
		{
			name:  "named tuple members",
			input: "[a: string, b?: number, ...rest: boolean[]]",
			check: func(t *testing.T, ty TSType) {
				tuple := ty.(*TSTupleType)
				require.Len(t, tuple.ElementTypes, 3)
				require.False(t, tuple.ElementTypes[0].(*TSNamedTupleMember).Optional)
				require.True(t, tuple.ElementTypes[1].(*TSNamedTupleMember).Optional)
				member := tuple.ElementTypes[2].(*TSRestType).TypeAnnotation.(*TSNamedTupleMember)
				require.Equal(t, "rest", member.Label.Name)
			},
		},
		{
			name:  "unnamed tuple members",
			input: "[string, number?, ...boolean[]]",
			check: func(t *testing.T, ty TSType) {
				tuple := ty.(*TSTupleType)
				require.IsType(t, &TSKeywordType{}, tuple.ElementTypes[0])
				require.IsType(t, &TSKeywordType{}, tuple.ElementTypes[1].(*TSOptionalType).TypeAnnotation)
				require.IsType(t, &TSArrayType{}, tuple.ElementTypes[2].(*TSRestType).TypeAnnotation)
			},
		},
		{
			name:  "mapped type",
			input: "{ [K in keyof T]?: T[K] }",
			check: func(t *testing.T, ty TSType) {
				mapped := ty.(*TSMappedType)
				require.Equal(t, "K", mapped.TypeParameter.Name.Name)
				require.Equal(t, TSMappedTypeModifierTrue, mapped.Optional)
				require.Equal(t, TSMappedTypeModifierNone, mapped.Readonly)
				require.IsType(t, &TSIndexedAccessType{}, mapped.TypeAnnotation)
			},
		},
		{
			name:  "mapped type with modifiers and key remapping",
			input: "{ -readonly [K in keyof T as `get${K}`]-?: T[K] }",
			check: func(t *testing.T, ty TSType) {
				mapped := ty.(*TSMappedType)
				require.Equal(t, TSMappedTypeModifierMinus, mapped.Readonly)
				require.Equal(t, TSMappedTypeModifierMinus, mapped.Optional)
				require.IsType(t, &TSTemplateLiteralType{}, mapped.NameType)
			},
		},
		{
			name:  "type literal",
			input: "{ a: string; b?(): void, readonly [k: string]: any; new (x: number): T; (y): U }",
			check: func(t *testing.T, ty TSType) {
				lit := ty.(*TSTypeLiteral)
				require.Len(t, lit.Members, 5)
				require.IsType(t, &TSPropertySignature{}, lit.Members[0])
				require.True(t, lit.Members[1].(*TSMethodSignature).Optional)
				require.True(t, lit.Members[2].(*TSIndexSignature).Readonly)
				require.IsType(t, &TSConstructSignatureDeclaration{}, lit.Members[3])
				require.IsType(t, &TSCallSignatureDeclaration{}, lit.Members[4])
			},
		},
		{
			name:  "template literal type",
			input: "`prefix-${string}-${number}`",
			check: func(t *testing.T, ty TSType) {
				tmpl := ty.(*TSTemplateLiteralType)
				require.Len(t, tmpl.Quasis, 3)
				require.Len(t, tmpl.Types, 2)
				require.Equal(t, "prefix-", tmpl.Quasis[0].Raw)
				require.Equal(t, "-", tmpl.Quasis[1].Raw)
				require.True(t, tmpl.Quasis[2].Tail)
			},
		},
		{
			name:  "import type",
			input: "import(\"./mod\").Foo<string>",
			check: func(t *testing.T, ty TSType) {
				imp := ty.(*TSImportType)
				require.Equal(t, "./mod", imp.Argument.(*TSLiteralType).Literal.(*StringLiteral).Value)
				require.Equal(t, "Foo", imp.Qualifier.(*IdentifierReference).Name)
				require.Len(t, imp.TypeArguments.Params, 1)
			},
		},
		{
			name:  "import type with options",
			input: "import(\"./mod\", { with: { \"resolution-mode\": \"import\" } })",
			check: func(t *testing.T, ty TSType) {
				require.Len(t, ty.(*TSImportType).Options.Properties, 1)
			},
		},
		{
			name:  "type query",
			input: "typeof a.b<string>",
			check: func(t *testing.T, ty TSType) {
				query := ty.(*TSTypeQuery)
				require.IsType(t, &TSQualifiedName{}, query.ExprName)
				require.Len(t, query.TypeArguments.Params, 1)
			},
		},
		{
			name:  "type query of import",
			input: "typeof import(\"x\")",
			check: func(t *testing.T, ty TSType) {
				require.IsType(t, &TSImportType{}, ty.(*TSTypeQuery).ExprName)
			},
		},
		{
			name:  "negative literal",
			input: "-1",
			check: func(t *testing.T, ty TSType) {
				unary := ty.(*TSLiteralType).Literal.(*UnaryExpression)
				require.Equal(t, KindMinus, unary.Operator)
				require.Equal(t, float64(1), unary.Argument.(*NumericLiteral).Value)
			},
		},
		{
			name:  "nested type arguments close with adjacent angles",
			input: "A<B<C>>",
			check: func(t *testing.T, ty TSType) {
				inner := ty.(*TSTypeReference).TypeArguments.Params[0].(*TSTypeReference)
				require.Equal(t, "C", refName(t, inner.TypeArguments.Params[0]))
			},
		},
		{
			name:  "jsdoc unknown",
			input: "?",
			check: func(t *testing.T, ty TSType) {
				require.IsType(t, &JSDocUnknownType{}, ty)
			},
		},
		{
			name:  "jsdoc prefix nullable",
			input: "?string",
			check: func(t *testing.T, ty TSType) {
				require.False(t, ty.(*JSDocNullableType).Postfix)
			},
		},
		{
			name:  "jsdoc postfix nullable",
			input: "string?",
			check: func(t *testing.T, ty TSType) {
				require.True(t, ty.(*JSDocNullableType).Postfix)
			},
		},
		{
			name:  "jsdoc non-nullable",
			input: "!string",
			check: func(t *testing.T, ty TSType) {
				require.False(t, ty.(*JSDocNonNullableType).Postfix)
			},
		},
		{
			name:  "this type",
			input: "this",
			check: func(t *testing.T, ty TSType) {
				require.IsType(t, &TSThisType{}, ty)
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			testCase.check(t, parseAliasType(t, testCase.input, testCase.options))
		})
	}
}

func TestParseTypePredicates(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, `declare function isString(x: unknown): x is string;
declare function assert(x: unknown): asserts x;
declare function assertIs(x: unknown): asserts x is number;
interface Guard { check(): this is Foo }
`)
	require.Len(t, program.Body, 4)

	pred := program.Body[0].(*FunctionDeclaration).ReturnType.TypeAnnotation.(*TSTypePredicate)
	require.False(t, pred.Asserts)
	require.Equal(t, "x", pred.ParameterName.(*IdentifierName).Name)

	pred = program.Body[1].(*FunctionDeclaration).ReturnType.TypeAnnotation.(*TSTypePredicate)
	require.True(t, pred.Asserts)
	require.Nil(t, pred.TypeAnnotation)

	pred = program.Body[2].(*FunctionDeclaration).ReturnType.TypeAnnotation.(*TSTypePredicate)
	require.True(t, pred.Asserts)
	require.NotNil(t, pred.TypeAnnotation)

	method := program.Body[3].(*TSInterfaceDeclaration).Body.Body[0].(*TSMethodSignature)
	pred = method.ReturnType.TypeAnnotation.(*TSTypePredicate)
	require.IsType(t, &TSThisType{}, pred.ParameterName)
}

func TestParseTypeIsNotPredicateAcrossLines(t *testing.T) {
	t.Parallel()
	res := ParseSource("/test.ts", []byte("declare function f(): x\nis;"), Options{})
	fn := res.Program.Body[0].(*FunctionDeclaration)
	require.IsType(t, &TSTypeReference{}, fn.ReturnType.TypeAnnotation)
}

func TestParseTypeDiagnostics(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "readonly on non-array",
			input:    "type T = readonly string;",
			expected: []string{exc.CodeReadonlyTypeOperator},
		},
		{
			name:     "this on constructor type",
			input:    "type T = new (this: Foo) => Foo;",
			expected: []string{exc.CodeConstructorTypeThisParameter},
		},
		{
			name:     "this on construct signature",
			input:    "type T = { new (this: Foo): Foo };",
			expected: []string{exc.CodeConstructorTypeThisParameter},
		},
		{
			name:     "type parameters on accessor",
			input:    "type T = { get x<U>(): U };",
			expected: []string{exc.CodeAccessorTypeParameters},
		},
		{
			name:     "return type on set accessor",
			input:    "type T = { set x(v: number): void };",
			expected: []string{exc.CodeSetAccessorReturnType},
		},
		{
			name:     "readonly method signature",
			input:    "type T = { readonly m(): void };",
			expected: []string{exc.CodeModifierCannotBeUsedHere},
		},
		{
			name:     "accessibility modifier on type parameter",
			input:    "type T<public U> = U;",
			expected: []string{exc.CodeModifierCannotBeUsedHere},
		},
		{
			name:     "accessibility modifier on index signature",
			input:    "type T = { public [k: string]: any };",
			expected: []string{exc.CodeIndexSignatureModifier},
		},
		{
			name:     "missing type",
			input:    "type T = ;",
			expected: []string{exc.CodeExpectedIdentifier},
		},
		{
			name:     "unterminated type arguments",
			input:    "type T = A<B",
			expected: []string{exc.CodeUnexpectedEOF},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			res := ParseSource("/test.ts", []byte(testCase.input), Options{})
			require.Equal(t, testCase.expected, diagnosticCodes(res))
		})
	}
}

func TestParseTypeParameterModifiers(t *testing.T) {
	t.Parallel()
	alias := parseProgram(t, "type T<in out A, const B extends string = \"x\"> = A;").Body[0].(*TSTypeAliasDeclaration)
	params := alias.TypeParameters.Params
	require.Len(t, params, 2)
	require.True(t, params[0].In)
	require.True(t, params[0].Out)
	require.True(t, params[1].Const)
	require.NotNil(t, params[1].Constraint)
	require.NotNil(t, params[1].Default)
}
