package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/smlparse/source"
	"github.com/vippsas/smlparse/token"
)

func scanAll(t *testing.T, input string) []token.Token {
	t.Helper()
	f := source.NewFile("t.sml", []byte(input))
	toks, err := Tokens(f.Whole())
	require.NoError(t, err)
	return toks
}

func TestReservedWordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "val x = foo")
	require.Len(t, toks, 4)
	assert.Equal(t, token.Reserved, toks[0].Class)
	assert.Equal(t, token.Identifier, toks[1].Class)
	assert.Equal(t, token.Reserved, toks[2].Class)
	assert.Equal(t, token.Identifier, toks[3].Class)
}

func TestLongIdentifier(t *testing.T) {
	toks := scanAll(t, "List.map")
	require.Len(t, toks, 1)
	assert.Equal(t, token.Identifier, toks[0].Class)
	assert.True(t, toks[0].Long)
	assert.Equal(t, "List.map", toks[0].Text())
}

func TestSymbolicIdentifiers(t *testing.T) {
	toks := scanAll(t, "a + b :: c")
	require.Len(t, toks, 5)
	assert.Equal(t, "+", toks[1].Text())
	assert.Equal(t, token.Identifier, toks[1].Class)
	assert.Equal(t, "::", toks[3].Text())
}

func TestStarIsReserved(t *testing.T) {
	toks := scanAll(t, "a * b")
	assert.True(t, toks[1].IsStar())
	assert.Equal(t, token.Reserved, toks[1].Class)
}

func TestNumberLiterals(t *testing.T) {
	toks := scanAll(t, "123 0x1F 0w9 0wxAB 1.5 1e10 1.5e-3")
	classes := []token.Class{
		token.IntConst, token.HexIntConst, token.WordConst, token.HexWordConst,
		token.RealConst, token.RealConst, token.RealConst,
	}
	require.Len(t, toks, len(classes))
	for i, c := range classes {
		assert.Equal(t, c, toks[i].Class, "token %d (%q)", i, toks[i].Text())
	}
}

func TestTyVar(t *testing.T) {
	toks := scanAll(t, "'a ''b")
	require.Len(t, toks, 2)
	assert.Equal(t, token.TyVar, toks[0].Class)
	assert.Equal(t, "'a", toks[0].Text())
	assert.Equal(t, "''b", toks[1].Text())
}

func TestStringLiteral(t *testing.T) {
	toks := scanAll(t, `"hello\n\"world\""`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.StringConst, toks[0].Class)
}

func TestCharConst(t *testing.T) {
	toks := scanAll(t, `#"a"`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.CharConst, toks[0].Class)
}

func TestCharConstMustBeSingleChar(t *testing.T) {
	f := source.NewFile("t.sml", []byte(`#""`))
	_, err := Tokens(f.Whole())
	require.Error(t, err)

	f = source.NewFile("t.sml", []byte(`#"ab"`))
	_, err = Tokens(f.Whole())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Character constant must contain exactly one character.")
}

func TestCharConstSingleEscape(t *testing.T) {
	toks := scanAll(t, `#"\n"`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.CharConst, toks[0].Class)

	f := source.NewFile("t.sml", []byte(`#"\n "`))
	_, err := Tokens(f.Whole())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Character constant must contain exactly one character.")
}

func TestNestedComment(t *testing.T) {
	toks := scanAll(t, "(* outer (* inner *) still outer *) val x = 1")
	require.Len(t, toks, 5)
	assert.Equal(t, token.Comment, toks[0].Class)
	assert.Equal(t, token.Reserved, toks[1].Class)
}

func TestUnterminatedCommentErrors(t *testing.T) {
	f := source.NewFile("t.sml", []byte("(* never closed"))
	_, err := Tokens(f.Whole())
	require.Error(t, err)
}

func TestUnterminatedStringErrors(t *testing.T) {
	f := source.NewFile("t.sml", []byte(`"never closed`))
	_, err := Tokens(f.Whole())
	require.Error(t, err)
}

func TestPunctuation(t *testing.T) {
	toks := scanAll(t, "( ) [ ] , ;")
	require.Len(t, toks, 6)
	for _, tok := range toks {
		assert.Equal(t, token.Reserved, tok.Class)
	}
}

func TestUnexpectedCharacterErrors(t *testing.T) {
	f := source.NewFile("t.sml", []byte("val x = 1 § 2"))
	_, err := Tokens(f.Whole())
	require.Error(t, err)
}
