package typescript

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseExpressionStatement(t *testing.T, src string) Expression {
	t.Helper()
	program := parseProgram(t, src)
	require.Len(t, program.Body, 1)
	stmt, ok := program.Body[0].(*ExpressionStatement)
	require.True(t, ok, "%T", program.Body[0])
	return stmt.Expression
}

func TestParseExpressions(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name  string
		input string
		check func(t *testing.T, expr Expression)
	}{
		{
			name:  "comparison chain",
			input: "a < b > c;",
			check: func(t *testing.T, expr Expression) {
				outer := expr.(*BinaryExpression)
				require.Equal(t, KindRAngle, outer.Operator)
				require.Equal(t, KindLAngle, outer.Left.(*BinaryExpression).Operator)
			},
		},
		{
			name:  "comparison with greater or equal",
			input: "a < b >= c;",
			check: func(t *testing.T, expr Expression) {
				outer := expr.(*BinaryExpression)
				require.Equal(t, KindGtEq, outer.Operator)
				require.Equal(t, KindLAngle, outer.Left.(*BinaryExpression).Operator)
			},
		},
		{
			name:  "shift right",
			input: "a >> b;",
			check: func(t *testing.T, expr Expression) {
				require.Equal(t, KindShiftRight, expr.(*BinaryExpression).Operator)
			},
		},
		{
			name:  "call with type arguments",
			input: "f<T>(x);",
			check: func(t *testing.T, expr Expression) {
				call := expr.(*CallExpression)
				require.Len(t, call.TypeArguments.Params, 1)
				require.Len(t, call.Arguments, 1)
			},
		},
		{
			name:  "instantiation expression",
			input: "f<T>;",
			check: func(t *testing.T, expr Expression) {
				inst := expr.(*TSInstantiationExpression)
				require.Equal(t, "f", inst.Expression.(*IdentifierReference).Name)
			},
		},
		{
			name:  "nested type arguments in call",
			input: "f<A<B>>();",
			check: func(t *testing.T, expr Expression) {
				call := expr.(*CallExpression)
				require.IsType(t, &TSTypeReference{}, call.TypeArguments.Params[0])
			},
		},
		{
			name:  "tagged template with type arguments",
			input: "tag<T>`x`;",
			check: func(t *testing.T, expr Expression) {
				require.NotNil(t, expr.(*TaggedTemplateExpression).TypeArguments)
			},
		},
		{
			name:  "new with type arguments",
			input: "new Foo<T>();",
			check: func(t *testing.T, expr Expression) {
				require.Len(t, expr.(*NewExpression).TypeArguments.Params, 1)
			},
		},
		{
			name:  "as",
			input: "x as T;",
			check: func(t *testing.T, expr Expression) {
				require.Equal(t, "T", refName(t, expr.(*TSAsExpression).TypeAnnotation))
			},
		},
		{
			name:  "chained as",
			input: "a as B as C;",
			check: func(t *testing.T, expr Expression) {
				outer := expr.(*TSAsExpression)
				require.IsType(t, &TSAsExpression{}, outer.Expression)
			},
		},
		{
			name:  "as binds looser than addition",
			input: "1 + 2 as number;",
			check: func(t *testing.T, expr Expression) {
				require.IsType(t, &BinaryExpression{}, expr.(*TSAsExpression).Expression)
			},
		},
		{
			name:  "satisfies",
			input: "x satisfies T;",
			check: func(t *testing.T, expr Expression) {
				require.IsType(t, &TSSatisfiesExpression{}, expr)
			},
		},
		{
			name:  "type assertion",
			input: "<T>x;",
			check: func(t *testing.T, expr Expression) {
				assertion := expr.(*TSTypeAssertion)
				require.Equal(t, "T", refName(t, assertion.TypeAnnotation))
				require.Equal(t, "x", assertion.Expression.(*IdentifierReference).Name)
			},
		},
		{
			name:  "generic arrow",
			input: "<T>(x: T): T => x;",
			check: func(t *testing.T, expr Expression) {
				arrow := expr.(*ArrowFunctionExpression)
				require.Len(t, arrow.TypeParameters.Params, 1)
				require.NotNil(t, arrow.ReturnType)
				require.IsType(t, &IdentifierReference{}, arrow.Expression)
			},
		},
		{
			name:  "async arrow with block",
			input: "async (x) => { await x };",
			check: func(t *testing.T, expr Expression) {
				arrow := expr.(*ArrowFunctionExpression)
				require.True(t, arrow.Async)
				require.NotNil(t, arrow.Body)
			},
		},
		{
			name:  "bare parameter arrow",
			input: "x => x;",
			check: func(t *testing.T, expr Expression) {
				require.Len(t, expr.(*ArrowFunctionExpression).Params.Items, 1)
			},
		},
		{
			name:  "parenthesized operand of conditional",
			input: "a ? (b) : c;",
			check: func(t *testing.T, expr Expression) {
				cond := expr.(*ConditionalExpression)
				require.Equal(t, "b", cond.Consequent.(*IdentifierReference).Name)
			},
		},
		{
			name:  "non-null member",
			input: "a!.b;",
			check: func(t *testing.T, expr Expression) {
				member := expr.(*StaticMemberExpression)
				require.IsType(t, &TSNonNullExpression{}, member.Object)
			},
		},
		{
			name:  "in operator",
			input: "k in o;",
			check: func(t *testing.T, expr Expression) {
				require.Equal(t, KindIn, expr.(*BinaryExpression).Operator)
			},
		},
		{
			name:  "exponent is right associative",
			input: "a ** b ** c;",
			check: func(t *testing.T, expr Expression) {
				require.IsType(t, &BinaryExpression{}, expr.(*BinaryExpression).Right)
			},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			testCase.check(t, parseExpressionStatement(t, testCase.input))
		})
	}
}

func TestIsBinaryOperator(t *testing.T) {
	t.Parallel()
	p := newParser("/test.ts", []byte("in"), Options{})
	require.True(t, p.isBinaryOperator())
	p.ctx = p.ctx.with(0, ContextIn)
	require.False(t, p.isBinaryOperator())

	p = newParser("/test.ts", []byte("satisfies"), Options{})
	require.True(t, p.isBinaryOperator())
}

func TestTypeArgumentsInExpressionRollback(t *testing.T) {
	t.Parallel()
	p := newParser("/test.ts", []byte("a < b >= c"), Options{})
	p.bump()
	_, ok := tryParse(p, p.parseTypeArgumentsInExpression)
	require.False(t, ok)
	require.Equal(t, KindLAngle, p.cur())
	require.Equal(t, 1, p.stats.Rollbacks)
}

func TestAsOnNewLineEndsStatement(t *testing.T) {
	t.Parallel()
	program := parseProgram(t, "x\nas\n")
	require.Len(t, program.Body, 2)
	require.IsType(t, &IdentifierReference{}, program.Body[0].(*ExpressionStatement).Expression)
}
