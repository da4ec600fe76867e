package calc

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc123+45xyz", "123+45"},
		{"2 + 2", "2+2"},
		{"(1.5 * 4) / 2", "(1.5*4)/2"},
		{"alert('x')", "()"},
		{"", ""},
		{"10 % 3", "103"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "Sanitize(%q)", tt.in)
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+2", 4},
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"10/4", 2.5},
		{"10-4-3", 3},
		{"8/4/2", 1},
		{"-3+5", 2},
		{"+3", 3},
		{"2*-3", -6},
		{"-(-2)", 2},
		{"+-2", -2},
		{"-+2", -2},
		{".5+1", 1.5},
		{"5.+1", 6},
		{"007", 7},
		{"((((1))))", 1},
		{"0.1+0.2", 0.1 + 0.2},
	}
	ev := New()
	for _, tt := range tests {
		got, err := ev.Eval(tt.expr)
		require.NoError(t, err, "Eval(%q)", tt.expr)
		assert.Equal(t, tt.want, got, "Eval(%q)", tt.expr)
	}
}

func TestEval_DivisionByZero(t *testing.T) {
	ev := New()

	v, err := ev.Eval("1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = ev.Eval("-1/0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, -1))

	v, err = ev.Eval("0/0")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEval_SyntaxErrors(t *testing.T) {
	for _, expr := range []string{
		"2+",
		"*2",
		"()",
		"(1+2",
		"1+2)",
		"2(3)",
		"(2)(3)",
		".",
		"1.2.3",
		"1--2",
		"2++3",
		"2**3",
		"/",
	} {
		_, err := New().Eval(expr)
		assert.ErrorIs(t, err, ErrSyntax, "Eval(%q)", expr)
	}
}

func TestEval_Empty(t *testing.T) {
	_, err := New().Eval("")
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestEval_Limits(t *testing.T) {
	ev := New(WithMaxLength(10), WithMaxDepth(3))

	_, err := ev.Eval("1+1+1+1+1+1")
	assert.ErrorIs(t, err, ErrTooLong)

	_, err = ev.Eval("(((1)))")
	assert.NoError(t, err)

	_, err = ev.Eval("((((1))))")
	assert.ErrorIs(t, err, ErrTooDeep)

	deep := strings.Repeat("(", 500) + "1" + strings.Repeat(")", 500)
	_, err = New().Eval(deep)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestOptions_IgnoreNonPositive(t *testing.T) {
	ev := New(WithMaxLength(0), WithMaxDepth(-1))
	assert.Equal(t, DefaultMaxLength, ev.maxLength)
	assert.Equal(t, DefaultMaxDepth, ev.maxDepth)
}
