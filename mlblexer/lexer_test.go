package mlblexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/smlparse/source"
)

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	f := source.NewFile("test.mlb", []byte(input))
	toks, err := Tokens(f.Whole())
	require.NoError(t, err)
	return toks
}

func TestReservedWords(t *testing.T) {
	toks := scanAll(t, "bas basis ann _prim")
	require.Len(t, toks, 4)
	for i, want := range []string{"bas", "basis", "ann", "_prim"} {
		assert.Equal(t, Reserved, toks[i].Class)
		assert.Equal(t, want, toks[i].Text())
	}
}

func TestBasDisambiguation(t *testing.T) {
	// "bas" alone, followed by whitespace, is the keyword.
	toks := scanAll(t, "bas foo.mlb is")
	require.Len(t, toks, 3)
	assert.True(t, toks[0].Is("bas"))
	assert.Equal(t, Path, toks[1].Class)
	assert.Equal(t, "foo.mlb", toks[1].Text())
	assert.Equal(t, Identifier, toks[2].Class)
	assert.Equal(t, "is", toks[2].Text())

	// "bas" immediately followed by "is" and a non-path character is the
	// five-character keyword "basis", not "bas" + "is".
	toks = scanAll(t, "basis foo.mlb")
	require.Len(t, toks, 2)
	assert.True(t, toks[0].Is("basis"))

	// "bas" followed directly by more path characters is not a keyword at
	// all; it is the prefix of a longer word.
	toks = scanAll(t, "bastion.sml")
	require.Len(t, toks, 1)
	assert.Equal(t, Path, toks[0].Class)
	assert.Equal(t, "bastion.sml", toks[0].Text())
}

func TestPathExtensions(t *testing.T) {
	for _, ext := range []string{".mlb", ".sml", ".sig", ".fun"} {
		toks := scanAll(t, "foo"+ext)
		require.Len(t, toks, 1)
		assert.Equal(t, Path, toks[0].Class)
	}

	f := source.NewFile("test.mlb", []byte("foo.txt"))
	_, err := Tokens(f.Whole())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing or invalid file extension in path.")
}

func TestBareWordIsIdentifier(t *testing.T) {
	toks := scanAll(t, "is")
	require.Len(t, toks, 1)
	assert.Equal(t, Identifier, toks[0].Class)
	assert.Equal(t, "is", toks[0].Text())
}

func TestCommentDelegatesToMainLexer(t *testing.T) {
	toks := scanAll(t, "(* a comment *) foo.sml")
	require.Len(t, toks, 2)
	assert.Equal(t, Comment, toks[0].Class)
	assert.Equal(t, "(* a comment *)", toks[0].Text())
	assert.Equal(t, Path, toks[1].Class)
}

func TestStringDelegatesToMainLexer(t *testing.T) {
	toks := scanAll(t, `"quoted string" foo.sml`)
	require.Len(t, toks, 2)
	assert.Equal(t, StringConst, toks[0].Class)
	assert.Equal(t, `"quoted string"`, toks[0].Text())
}

func TestRecoverResynchronizesPastAnError(t *testing.T) {
	f := source.NewFile("test.mlb", []byte("foo.txt bar.sml"))
	l := New(f.Whole())

	_, _, err := l.Next()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing or invalid file extension in path.")

	hasMore := l.Recover()
	require.True(t, hasMore)

	tok, ok, err := l.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Path, tok.Class)
	assert.Equal(t, "bar.sml", tok.Text())
}

func TestSlashPath(t *testing.T) {
	toks := scanAll(t, "lib/foo.mlb")
	require.Len(t, toks, 1)
	assert.Equal(t, Path, toks[0].Class)
	assert.Equal(t, "lib/foo.mlb", toks[0].Text())
}
