package mathexpr_test

import (
	"math"
	"testing"

	"github.com/emmetio/py-emmet/internal/mathexpr"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateBasic(t *testing.T) {
	v, err := mathexpr.Evaluate("10+2*3")
	assert.NoError(t, err)
	assert.Equal(t, 16.0, v)
}

func TestEvaluateParens(t *testing.T) {
	v, err := mathexpr.Evaluate("(10+2)*3")
	assert.NoError(t, err)
	assert.Equal(t, 36.0, v)
}

func TestEvaluateUnaryMinus(t *testing.T) {
	v, err := mathexpr.Evaluate("-5+10")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestEvaluateIntDivide(t *testing.T) {
	v, err := mathexpr.Evaluate("7\\2")
	assert.NoError(t, err)
	assert.Equal(t, math.Floor(7.0/2.0), v)
}

func TestEvaluateUnmatchedParen(t *testing.T) {
	_, err := mathexpr.Evaluate("(1+2")
	assert.Error(t, err)
}

func TestExtractSimple(t *testing.T) {
	text := "width: 10+2*3px"
	start, end, ok := mathexpr.Extract(text, len("width: 10+2*3"), mathexpr.DefaultExtractOptions())
	assert.True(t, ok)
	assert.Equal(t, "10+2*3", text[start:end])
}

func TestExtractLookAheadParen(t *testing.T) {
	text := "(1+2)"
	start, end, ok := mathexpr.Extract(text, len("(1+2"), mathexpr.DefaultExtractOptions())
	assert.True(t, ok)
	assert.Equal(t, "(1+2)", text[start:end])
}
