package compiler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsgram/tsgram/internal/compiler/typescript"
)

func TestWalkNode(t *testing.T) {
	t.Parallel()
	res := typescript.ParseSource("/a.ts", []byte("type A<T> = T | string[];"), typescript.Options{})
	require.Empty(t, res.Diagnostics)

	var visited []string
	walkNode(res.Program, func(node typescript.Node) {
		visited = append(visited, fmt.Sprintf("%T", node))
	})
	require.Equal(t, []string{
		"*typescript.Program",
		"*typescript.TSTypeAliasDeclaration",
		"*typescript.BindingIdentifier",
		"*typescript.TSTypeParameterDeclaration",
		"*typescript.TSTypeParameter",
		"*typescript.BindingIdentifier",
		"*typescript.TSUnionType",
		"*typescript.TSTypeReference",
		"*typescript.IdentifierReference",
		"*typescript.TSArrayType",
		"*typescript.TSKeywordType",
	}, visited)
}

func TestCountTypeNodes(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input    string
		expected int
	}{
		{input: "let x = 1;", expected: 0},
		{input: "type A = string;", expected: 1},
		{input: "interface I { a: string; b(x: number): void }", expected: 3},
		{input: "type A<T> = T | string[];", expected: 4},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			res := typescript.ParseSource("/a.ts", []byte(testCase.input), typescript.Options{})
			require.Empty(t, res.Diagnostics)
			require.Equal(t, testCase.expected, countTypeNodes(res.Program))
		})
	}
}
