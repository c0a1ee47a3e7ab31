package typescript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsgram/tsgram/internal/exc"
)

func modifierKinds(m Modifiers) []ModifierKind {
	var kinds []ModifierKind
	for _, mod := range m.List {
		kinds = append(kinds, mod.Kind)
	}
	return kinds
}

func TestModifierFlags(t *testing.T) {
	t.Parallel()
	require.Equal(t, ModifierFlagDeclare, ModifierDeclare.Flag())
	require.Equal(t, ModifierFlagOut, ModifierOut.Flag())
	require.Equal(t, "readonly", ModifierReadonly.String())
	require.True(t, ModifierFlagAccessibility.Has(ModifierFlagPrivate))
	require.False(t, ModifierFlagPrivate.Has(ModifierFlagAccessibility))
}

func TestAllowedModifiers(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		kind     DeclarationKind
		allowed  []ModifierKind
		rejected []ModifierKind
	}{
		{
			name:     "enum",
			kind:     DeclarationKindEnum,
			allowed:  []ModifierKind{ModifierDeclare, ModifierConst},
			rejected: []ModifierKind{ModifierAbstract, ModifierAsync},
		},
		{
			name:     "type parameter",
			kind:     DeclarationKindTypeParameter,
			allowed:  []ModifierKind{ModifierIn, ModifierOut, ModifierConst},
			rejected: []ModifierKind{ModifierPublic, ModifierDeclare},
		},
		{
			name:     "index signature",
			kind:     DeclarationKindIndexSignature,
			allowed:  []ModifierKind{ModifierReadonly, ModifierStatic},
			rejected: []ModifierKind{ModifierPrivate},
		},
		{
			name:     "class property",
			kind:     DeclarationKindClassProperty,
			allowed:  []ModifierKind{ModifierPrivate, ModifierAccessor, ModifierDeclare, ModifierOverride},
			rejected: []ModifierKind{ModifierAsync, ModifierConst},
		},
		{
			name:     "class method",
			kind:     DeclarationKindClassMethod,
			allowed:  []ModifierKind{ModifierAsync, ModifierAbstract, ModifierStatic},
			rejected: []ModifierKind{ModifierReadonly, ModifierDeclare, ModifierAccessor},
		},
		{
			name:     "constructor parameter",
			kind:     DeclarationKindConstructorParameter,
			allowed:  []ModifierKind{ModifierPublic, ModifierReadonly, ModifierOverride},
			rejected: []ModifierKind{ModifierStatic},
		},
		{
			name:     "import equals",
			kind:     DeclarationKindImportEquals,
			rejected: []ModifierKind{ModifierDeclare, ModifierExport},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			allowed := AllowedModifiers(testCase.kind)
			for _, kind := range testCase.allowed {
				require.True(t, allowed.Has(kind.Flag()), kind.String())
			}
			for _, kind := range testCase.rejected {
				require.False(t, allowed.Has(kind.Flag()), kind.String())
			}
		})
	}
}

func TestParseModifiers(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name         string
		input        string
		permitConst  bool
		expected     []ModifierKind
		expectedNext string
	}{
		{name: "variance", input: "in out T", permitConst: true, expected: []ModifierKind{ModifierIn, ModifierOut}, expectedNext: "T"},
		{name: "const type parameter", input: "const T", permitConst: true, expected: []ModifierKind{ModifierConst}, expectedNext: "T"},
		{name: "const not permitted", input: "const T", expectedNext: "const"},
		{name: "const before enum", input: "const enum", expected: []ModifierKind{ModifierConst}, expectedNext: "enum"},
		{name: "line break ends modifiers", input: "readonly\nx", expectedNext: "readonly"},
		{name: "modifier used as name", input: "public: string", expectedNext: "public"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p := newParser("/test.ts", []byte(testCase.input), Options{})
			m := p.parseModifiers(testCase.permitConst)
			require.Equal(t, testCase.expected, modifierKinds(m))
			require.Equal(t, testCase.expectedNext, p.tok().Value)
		})
	}
}

func TestEatModifiersBeforeDeclaration(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    string
		expected []ModifierKind
	}{
		{name: "declare abstract", input: "declare abstract class C {}", expected: []ModifierKind{ModifierDeclare, ModifierAbstract}},
		{name: "const variable", input: "const x = 1"},
		{name: "const enum", input: "const enum E {}", expected: []ModifierKind{ModifierConst}},
		{name: "async function", input: "async function f() {}", expected: []ModifierKind{ModifierAsync}},
		{name: "declare global", input: "declare global {}", expected: []ModifierKind{ModifierDeclare}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			p := newParser("/test.ts", []byte(testCase.input), Options{})
			require.Equal(t, testCase.expected, modifierKinds(p.eatModifiersBeforeDeclaration()))
		})
	}
}

func TestAddModifierRejectsDuplicates(t *testing.T) {
	t.Parallel()
	p := newParser("/test.ts", []byte(""), Options{})
	var m Modifiers
	p.addModifier(&m, ModifierStatic, Span{Start: 0, End: 6})
	p.addModifier(&m, ModifierStatic, Span{Start: 7, End: 13})
	require.Len(t, m.List, 1)
	require.Len(t, p.diagnostics, 1)
	require.Equal(t, exc.CodeModifierAlreadySeen, p.diagnostics[0].Code())
}

func TestVerifyModifiersKeepsModifiers(t *testing.T) {
	t.Parallel()
	res := ParseSource("/test.ts", []byte("class C { readonly m() {} }"), Options{})
	require.Equal(t, []string{exc.CodeModifierCannotBeUsedHere}, diagnosticCodes(res))
	method := res.Program.Body[0].(*ClassDeclaration).Body[0].(*MethodDefinition)
	require.True(t, method.Modifiers.Contains(ModifierReadonly))
}
