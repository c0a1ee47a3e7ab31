package typescript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsgram/tsgram/internal/exc"
)

func TestParseEnums(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, "const enum E { A, B = 1 << 2, \"c\", ['d'], [`e`], }\ndeclare enum F {}")
	require.Len(t, program.Body, 2)

	e := program.Body[0].(*TSEnumDeclaration)
	require.True(t, e.Const)
	require.False(t, e.Declare)
	require.Equal(t, "E", e.ID.Name)
	require.Len(t, e.Members, 5)
	require.Equal(t, "A", e.Members[0].ID.(*IdentifierName).Name)
	require.IsType(t, &BinaryExpression{}, e.Members[1].Initializer)
	require.False(t, e.Members[2].Computed)
	require.Equal(t, "c", e.Members[2].ID.(*StringLiteral).Value)
	require.True(t, e.Members[3].Computed)
	require.Equal(t, "d", e.Members[3].ID.(*StringLiteral).Value)
	require.True(t, e.Members[4].Computed)
	require.IsType(t, &TemplateLiteral{}, e.Members[4].ID)

	f := program.Body[1].(*TSEnumDeclaration)
	require.True(t, f.Declare)
	require.Empty(t, f.Members)
}

func TestParseEnumDiagnostics(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "numeric name", input: "enum E { 1 = 2 }", expected: exc.CodeEnumMemberNumericName},
		{name: "computed expression", input: "enum E { [x] }", expected: exc.CodeEnumMemberComputedName},
		{name: "computed template with substitution", input: "enum E { [`a${b}`] }", expected: exc.CodeEnumMemberComputedName},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			res := ParseSource("/test.ts", []byte(testCase.input), Options{})
			require.NotEmpty(t, res.Diagnostics)
			require.Equal(t, testCase.expected, res.Diagnostics[0].Code())
		})
	}
}

func TestParseModules(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, `namespace A.B.C { export const x = 1; }
declare module "foo";
declare module "bar" { export function f(): void; }
declare global { interface Window { tsgram: string } }
module M {}
`)
	require.Len(t, program.Body, 5)

	a := program.Body[0].(*TSModuleDeclaration)
	require.Equal(t, TSModuleDeclarationKindNamespace, a.Kind)
	require.Equal(t, "A", a.ID.(*BindingIdentifier).Name)
	b := a.Body.(*TSModuleDeclaration)
	require.Equal(t, "B", b.ID.(*BindingIdentifier).Name)
	require.Equal(t, TSModuleDeclarationKindNamespace, b.Kind)
	c := b.Body.(*TSModuleDeclaration)
	block := c.Body.(*TSModuleBlock)
	require.Len(t, block.Body, 1)
	require.IsType(t, &VariableDeclaration{}, block.Body[0].(*ExportNamedDeclaration).Declaration)

	foo := program.Body[1].(*TSModuleDeclaration)
	require.True(t, foo.Declare)
	require.Nil(t, foo.Body)
	require.Equal(t, "foo", foo.ID.(*StringLiteral).Value)

	bar := program.Body[2].(*TSModuleDeclaration)
	require.Len(t, bar.Body.(*TSModuleBlock).Body, 1)

	global := program.Body[3].(*TSModuleDeclaration)
	require.Equal(t, TSModuleDeclarationKindGlobal, global.Kind)
	require.True(t, global.Declare)

	m := program.Body[4].(*TSModuleDeclaration)
	require.Equal(t, TSModuleDeclarationKindModule, m.Kind)
	require.Empty(t, m.Body.(*TSModuleBlock).Body)
}

func TestParseImportEquals(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, `import A = require("a");
import type B = require("b");
import C = N.M.C;
export import D = N.D;
`)
	require.Len(t, program.Body, 4)

	a := program.Body[0].(*TSImportEqualsDeclaration)
	require.Equal(t, "A", a.ID.Name)
	require.Equal(t, ImportOrExportKindValue, a.ImportKind)
	require.Equal(t, "a", a.ModuleReference.(*TSExternalModuleReference).Expression.Value)

	b := program.Body[1].(*TSImportEqualsDeclaration)
	require.Equal(t, ImportOrExportKindType, b.ImportKind)

	c := program.Body[2].(*TSImportEqualsDeclaration)
	name := c.ModuleReference.(*TSQualifiedName)
	require.Equal(t, "C", name.Right.Name)

	d := program.Body[3].(*ExportNamedDeclaration).Declaration.(*TSImportEqualsDeclaration)
	require.Equal(t, "D", d.ID.Name)
}

func TestParseImports(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, `import x, { a as b, type c, default as d } from "m";
import * as ns from "m";
import "side";
import type { T } from "m";
import type from "m";
`)
	require.Len(t, program.Body, 5)

	first := program.Body[0].(*ImportDeclaration)
	require.Equal(t, "x", first.Default.Name)
	require.Len(t, first.Specifiers, 3)
	require.Equal(t, "a", first.Specifiers[0].Imported.Name)
	require.Equal(t, "b", first.Specifiers[0].Local.Name)
	require.Equal(t, ImportOrExportKindType, first.Specifiers[1].ImportKind)
	require.Equal(t, "c", first.Specifiers[1].Local.Name)
	require.Equal(t, "m", first.Source.Value)

	require.Equal(t, "ns", program.Body[1].(*ImportDeclaration).Namespace.Name)

	side := program.Body[2].(*ImportDeclaration)
	require.Nil(t, side.Default)
	require.Empty(t, side.Specifiers)
	require.Equal(t, "side", side.Source.Value)

	require.Equal(t, ImportOrExportKindType, program.Body[3].(*ImportDeclaration).ImportKind)

	def := program.Body[4].(*ImportDeclaration)
	require.Equal(t, ImportOrExportKindValue, def.ImportKind)
	require.Equal(t, "type", def.Default.Name)
}

func TestParseExports(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		check func(t *testing.T, stmt Statement)
	}{
		{
			name:  "export assignment",
			input: "export = foo;",
			check: func(t *testing.T, stmt Statement) {
				require.IsType(t, &IdentifierReference{}, stmt.(*TSExportAssignment).Expression)
			},
		},
		{
			name:  "namespace export",
			input: "export as namespace Lib;",
			check: func(t *testing.T, stmt Statement) {
				require.Equal(t, "Lib", stmt.(*TSNamespaceExportDeclaration).ID.Name)
			},
		},
		{
			name:  "default anonymous class",
			input: "export default class {}",
			check: func(t *testing.T, stmt Statement) {
				class := stmt.(*ExportDefaultDeclaration).Declaration.(*ClassDeclaration)
				require.Nil(t, class.ID)
			},
		},
		{
			name:  "default interface",
			input: "export default interface I {}",
			check: func(t *testing.T, stmt Statement) {
				require.IsType(t, &TSInterfaceDeclaration{}, stmt.(*ExportDefaultDeclaration).Declaration)
			},
		},
		{
			name:  "default expression",
			input: "export default 42;",
			check: func(t *testing.T, stmt Statement) {
				require.IsType(t, &NumericLiteral{}, stmt.(*ExportDefaultDeclaration).Declaration)
			},
		},
		{
			name:  "star as",
			input: "export * as ns from \"m\";",
			check: func(t *testing.T, stmt Statement) {
				all := stmt.(*ExportAllDeclaration)
				require.Equal(t, "ns", all.Exported.Name)
				require.Equal(t, "m", all.Source.Value)
			},
		},
		{
			name:  "type star",
			input: "export type * from \"m\";",
			check: func(t *testing.T, stmt Statement) {
				require.Equal(t, ImportOrExportKindType, stmt.(*ExportAllDeclaration).ExportKind)
			},
		},
		{
			name:  "named specifiers with source",
			input: "export { a, b as c, type d } from \"m\";",
			check: func(t *testing.T, stmt Statement) {
				named := stmt.(*ExportNamedDeclaration)
				require.Len(t, named.Specifiers, 3)
				require.Equal(t, "c", named.Specifiers[1].Exported.Name)
				require.Equal(t, ImportOrExportKindType, named.Specifiers[2].ExportKind)
				require.Equal(t, "m", named.Source.Value)
			},
		},
		{
			name:  "type-only specifiers",
			input: "export type { T };",
			check: func(t *testing.T, stmt Statement) {
				named := stmt.(*ExportNamedDeclaration)
				require.Equal(t, ImportOrExportKindType, named.ExportKind)
				require.Nil(t, named.Source)
			},
		},
		{
			name:  "declared variable",
			input: "export declare const x: number;",
			check: func(t *testing.T, stmt Statement) {
				decl := stmt.(*ExportNamedDeclaration).Declaration.(*VariableDeclaration)
				require.True(t, decl.Declare)
				require.Equal(t, VariableDeclarationKindConst, decl.Kind)
			},
		},
		{
			name:  "abstract class",
			input: "export abstract class C {}",
			check: func(t *testing.T, stmt Statement) {
				require.True(t, stmt.(*ExportNamedDeclaration).Declaration.(*ClassDeclaration).Abstract)
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			program := parseProgram(t, testCase.input)
			require.Len(t, program.Body, 1)
			testCase.check(t, program.Body[0])
		})
	}
}

func TestParseClass(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, `@sealed
export abstract class Foo<T> extends Base<T> implements I, J<T> {
  static readonly [key: string]: any;
  private x?: number;
  declare y: string;
  z!: T;
  accessor w = 1;
  #priv = 2;
  constructor(private readonly a: string, public b?: number) {}
  get v(): T { return this.z }
  set v(value: T) {}
  async *gen() {}
  abstract m<U>(u: U): void;
  @log handler() {}
}
`)
	require.Len(t, program.Body, 1)
	class := program.Body[0].(*ExportNamedDeclaration).Declaration.(*ClassDeclaration)
	require.Len(t, class.Decorators, 1)
	require.True(t, class.Abstract)
	require.Equal(t, "Foo", class.ID.Name)
	require.Len(t, class.TypeParameters.Params, 1)
	require.Equal(t, "Base", class.SuperClass.(*IdentifierReference).Name)
	require.Len(t, class.SuperTypeParameters.Params, 1)
	require.Len(t, class.Implements, 2)
	require.Len(t, class.Implements[1].TypeArguments.Params, 1)
	require.Len(t, class.Body, 12)

	index := class.Body[0].(*ClassIndexSignature)
	require.True(t, index.Static)
	require.True(t, index.Readonly)

	x := class.Body[1].(*PropertyDefinition)
	require.True(t, x.Modifiers.Contains(ModifierPrivate))
	require.True(t, x.Optional)

	require.True(t, class.Body[2].(*PropertyDefinition).Modifiers.Contains(ModifierDeclare))
	require.True(t, class.Body[3].(*PropertyDefinition).Definite)
	require.True(t, class.Body[4].(*PropertyDefinition).Modifiers.Contains(ModifierAccessor))
	require.IsType(t, &PrivateIdentifier{}, class.Body[5].(*PropertyDefinition).Key)

	ctor := class.Body[6].(*MethodDefinition)
	require.Equal(t, MethodDefinitionKindConstructor, ctor.Kind)
	require.Len(t, ctor.Params.Items, 2)
	require.True(t, ctor.Params.Items[0].Modifiers.Contains(ModifierPrivate))
	require.True(t, ctor.Params.Items[0].Modifiers.Contains(ModifierReadonly))
	require.True(t, ctor.Params.Items[1].Optional)
	require.NotNil(t, ctor.Body)

	require.Equal(t, MethodDefinitionKindGet, class.Body[7].(*MethodDefinition).Kind)
	require.Equal(t, MethodDefinitionKindSet, class.Body[8].(*MethodDefinition).Kind)

	gen := class.Body[9].(*MethodDefinition)
	require.True(t, gen.Async)
	require.True(t, gen.Generator)

	abstract := class.Body[10].(*MethodDefinition)
	require.True(t, abstract.Modifiers.Contains(ModifierAbstract))
	require.Nil(t, abstract.Body)
	require.Len(t, abstract.TypeParameters.Params, 1)

	require.Len(t, class.Body[11].(*MethodDefinition).Decorators, 1)
}

func TestParseFunctions(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, "function f(a: string): void;\nfunction f(a: any) {}\nasync function* g<T>(this: Window, ...rest: T[]) { yield `${ {a: 1} }` }")
	require.Len(t, program.Body, 3)

	overload := program.Body[0].(*FunctionDeclaration)
	require.Nil(t, overload.Body)
	require.NotNil(t, overload.ReturnType)

	impl := program.Body[1].(*FunctionDeclaration)
	require.NotNil(t, impl.Body)

	g := program.Body[2].(*FunctionDeclaration)
	require.True(t, g.Async)
	require.True(t, g.Generator)
	require.NotNil(t, g.ThisParam)
	require.NotNil(t, g.Params.Rest)
}

func TestParseVariables(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, "let a!: number, { b, c: [d] } = o;\nvar e = 1\ndeclare let f: string;")
	require.Len(t, program.Body, 3)

	let := program.Body[0].(*VariableDeclaration)
	require.Equal(t, VariableDeclarationKindLet, let.Kind)
	require.Len(t, let.Declarations, 2)
	require.True(t, let.Declarations[0].Definite)
	require.IsType(t, &ObjectPattern{}, let.Declarations[1].ID)

	require.Equal(t, VariableDeclarationKindVar, program.Body[1].(*VariableDeclaration).Kind)
	require.True(t, program.Body[2].(*VariableDeclaration).Declare)
}

func TestParseDeclarationDiagnostics(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "implementation in ambient function",
			input:    "declare function f() {}",
			expected: []string{exc.CodeAmbientImplementation},
		},
		{
			name:     "implementation inside ambient namespace",
			input:    "declare namespace N { function g() {} }",
			expected: []string{exc.CodeAmbientImplementation},
		},
		{
			name:     "decorators on interface",
			input:    "@dec interface I {}",
			expected: []string{exc.CodeDecoratorsNotValid},
		},
		{
			name:     "async class",
			input:    "async class C {}",
			expected: []string{exc.CodeModifierCannotBeUsedHere},
		},
		{
			name:     "readonly method",
			input:    "class C { readonly m() {} }",
			expected: []string{exc.CodeModifierCannotBeUsedHere},
		},
		{
			name:     "duplicate member modifier",
			input:    "class C { public public x; }",
			expected: []string{exc.CodeModifierAlreadySeen},
		},
		{
			name:     "parameter property outside constructor",
			input:    "function f(public x) {}",
			expected: []string{exc.CodeModifierCannotBeUsedHere},
		},
		{
			name:     "setter with return type",
			input:    "class C { set x(v): void {} }",
			expected: []string{exc.CodeSetAccessorReturnType},
		},
		{
			name:     "getter with type parameters",
			input:    "class C { get x<T>() {} }",
			expected: []string{exc.CodeAccessorTypeParameters},
		},
		{
			name:     "index signature modifier",
			input:    "class C { private [k: string]: any }",
			expected: []string{exc.CodeIndexSignatureModifier},
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

func TestParseModifierLineBreaks(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "declare then identifier", input: "declare\nfoo", expected: []string{"*typescript.ExpressionStatement", "*typescript.ExpressionStatement"}},
		{name: "abstract then class", input: "abstract\nclass C {}", expected: []string{"*typescript.ExpressionStatement", "class C"}},
		{name: "type then name", input: "type\nA = 1", expected: []string{"*typescript.ExpressionStatement", "*typescript.ExpressionStatement"}},
		{name: "namespace then name", input: "namespace\nN", expected: []string{"*typescript.ExpressionStatement", "*typescript.ExpressionStatement"}},
		{name: "declare on same line", input: "declare const x: number", expected: []string{"*typescript.VariableDeclaration"}},
		{name: "global block", input: "declare global {}", expected: []string{"global"}},
		{name: "interface", input: "interface I {}", expected: []string{"interface I"}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			res := ParseSource("/test.ts", []byte(testCase.input), Options{})
			var described []string
			for _, stmt := range res.Program.Body {
				described = append(described, DescribeStatement(stmt))
			}
			require.Equal(t, testCase.expected, described)
		})
	}
}

func TestParseStatementRecovery(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		codes    []string
		expected []string
	}{
		{
			name:     "top level",
			input:    "type A = ;\ntype B = string;\ninterface I { x: }\nenum E { X }",
			codes:    []string{exc.CodeExpectedIdentifier, exc.CodeExpectedIdentifier},
			expected: []string{"type B", "enum E"},
		},
		{
			name:     "same line after block",
			input:    "interface I { x: } type B = string;",
			codes:    []string{exc.CodeExpectedIdentifier},
			expected: []string{"type B"},
		},
		{
			name:     "nested block",
			input:    "interface I { m(): { a: } }\ntype B = string;",
			codes:    []string{exc.CodeExpectedIdentifier},
			expected: []string{"type B"},
		},
		{
			name:     "stray close brace",
			input:    "}\ntype B = string;",
			codes:    []string{exc.CodeExpectedExpression},
			expected: []string{"type B"},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			res := ParseSource("/test.ts", []byte(testCase.input), Options{})
			require.Equal(t, testCase.codes, diagnosticCodes(res))
			var described []string
			for _, stmt := range res.Program.Body {
				described = append(described, DescribeStatement(stmt))
			}
			require.Equal(t, testCase.expected, described)
		})
	}
}

func TestParseStatementRecoveryInModule(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		code  string
	}{
		{name: "enum", input: "namespace N { enum E { 1 = 2 } const x = 1; }", code: exc.CodeEnumMemberNumericName},
		{name: "interface", input: "namespace N { interface I { a: } const y = 1; }", code: exc.CodeExpectedIdentifier},
		{name: "line break", input: "namespace N {\n  interface I { a: }\n  const y = 1;\n}", code: exc.CodeExpectedIdentifier},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			res := ParseSource("/test.ts", []byte(testCase.input), Options{})
			require.Equal(t, []string{testCase.code}, diagnosticCodes(res))
			require.Len(t, res.Program.Body, 1)
			module := res.Program.Body[0].(*TSModuleDeclaration)
			block := module.Body.(*TSModuleBlock)
			require.Len(t, block.Body, 1)
			require.IsType(t, &VariableDeclaration{}, block.Body[0])
		})
	}
}

func TestParseIntrinsic(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, "type Uppercase<S extends string> = intrinsic;\ntype X = intrinsic.Foo;")
	require.Equal(t, TSKeywordIntrinsic, program.Body[0].(*TSTypeAliasDeclaration).TypeAnnotation.(*TSKeywordType).Keyword)
	require.IsType(t, &TSTypeReference{}, program.Body[1].(*TSTypeAliasDeclaration).TypeAnnotation)
}

func TestParseInterfaceHeritage(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, "interface I<T> extends A<T>, ns.B { }")
	iface := program.Body[0].(*TSInterfaceDeclaration)
	require.Len(t, iface.Extends, 2)
	require.Len(t, iface.Extends[0].TypeArguments.Params, 1)
	require.IsType(t, &StaticMemberExpression{}, iface.Extends[1].Expression)
}
