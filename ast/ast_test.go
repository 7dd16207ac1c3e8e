package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/smlparse/infix"
	"github.com/vippsas/smlparse/source"
	"github.com/vippsas/smlparse/token"
)

func ident(f *source.File, start, length int) Expr {
	return ExprIdent{Name: token.Token{Src: f.Whole().Slice(start, length), Class: token.Identifier}}
}

func op(f *source.File, start, length int) token.Token {
	return token.Token{Src: f.Whole().Slice(start, length), Class: token.Identifier}
}

func TestMakeInfixKeepsHigherPrecedenceRight(t *testing.T) {
	// a + b * c : right (b*c) binds tighter than '+', so keep as-is.
	f := source.NewFile("t.sml", []byte("a+b*c"))
	a, plus, b, star, c := ident(f, 0, 1), op(f, 1, 1), ident(f, 2, 1), op(f, 3, 1), ident(f, 4, 1)

	dict := infix.New().Insert("+", 6, infix.Left).Insert("*", 7, infix.Left)
	inner, err := MakeInfix(dict, b, star, c)
	require.NoError(t, err)
	result, err := MakeInfix(dict, a, plus, inner)
	require.NoError(t, err)

	top, ok := result.(ExprInfix)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op.Text())
	_, rightIsMul := top.Right.(ExprInfix)
	assert.True(t, rightIsMul)
}

func TestMakeInfixRotatesLeftAssociative(t *testing.T) {
	// a - b - c parses right-leaning as a - (b - c) and must rotate to
	// (a - b) - c since '-' is left-associative.
	f := source.NewFile("t.sml", []byte("a-b-c"))
	a, m1, b, m2, c := ident(f, 0, 1), op(f, 1, 1), ident(f, 2, 1), op(f, 3, 1), ident(f, 4, 1)

	dict := infix.New().Insert("-", 6, infix.Left)
	inner, err := MakeInfix(dict, b, m2, c)
	require.NoError(t, err)
	result, err := MakeInfix(dict, a, m1, inner)
	require.NoError(t, err)

	top, ok := result.(ExprInfix)
	require.True(t, ok)
	left, ok := top.Left.(ExprInfix)
	require.True(t, ok)
	assert.Equal(t, "a", left.Left.(ExprIdent).Name.Text())
	assert.Equal(t, "b", left.Right.(ExprIdent).Name.Text())
	assert.Equal(t, "c", top.Right.(ExprIdent).Name.Text())
}

func TestMakeInfixAmbiguousMixedAssociativity(t *testing.T) {
	f := source.NewFile("t.sml", []byte("a+b@c"))
	a, plus, b, at, c := ident(f, 0, 1), op(f, 1, 1), ident(f, 2, 1), op(f, 3, 1), ident(f, 4, 1)

	dict := infix.New().Insert("+", 6, infix.Left).Insert("@", 6, infix.Right)
	inner, err := MakeInfix(dict, b, at, c)
	require.NoError(t, err)
	_, err = MakeInfix(dict, a, plus, inner)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ambiguous infix expression.")
}

func TestSeqSlice(t *testing.T) {
	assert.Nil(t, Empty[int]().Slice())
	assert.Equal(t, []int{1}, One(1).Slice())
	f := source.NewFile("t.sml", []byte("(1,2)"))
	tok := func(s string) token.Token {
		return token.Token{Src: f.Whole(), Class: token.Reserved}
	}
	many := Many(tok("("), []int{1, 2}, []token.Token{tok(",")}, tok(")"))
	assert.Equal(t, []int{1, 2}, many.Slice())
	assert.Equal(t, 2, many.Len())
}

func TestSpanAndRenderRoundTrip(t *testing.T) {
	f := source.NewFile("t.sml", []byte("a+b"))
	a := ident(f, 0, 1)
	plus := op(f, 1, 1)
	b := ident(f, 2, 1)
	e := ExprInfix{Left: a, Op: plus, Right: b}

	assert.Equal(t, "a+b", Span(e).String())

	var sb strings.Builder
	require.NoError(t, Render(e, &sb))
	assert.Equal(t, "a+b", sb.String())
}
