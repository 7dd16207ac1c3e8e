package token

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vippsas/smlparse/source"
)

func mkToken(text string, class Class) Token {
	f := source.NewFile("t.sml", []byte(text))
	return New(f.Whole(), class)
}

func TestIs(t *testing.T) {
	tok := mkToken("end", Reserved)
	assert.True(t, tok.Is("end"))
	assert.False(t, tok.Is("in"))
}

func TestIsValueIdentifier(t *testing.T) {
	assert.True(t, mkToken("foo", Identifier).IsValueIdentifier())
	assert.False(t, mkToken("end", Reserved).IsValueIdentifier())
}

func TestIsMaybeLongIdentifier(t *testing.T) {
	f := source.NewFile("t.sml", []byte("A.B.c"))
	tok := NewLong(f.Whole())
	assert.True(t, tok.IsMaybeLongIdentifier())
	assert.False(t, mkToken("foo", Identifier).IsMaybeLongIdentifier())
}

func TestIsStar(t *testing.T) {
	assert.True(t, mkToken("*", Reserved).IsStar())
	assert.False(t, mkToken("+", Identifier).IsStar())
}

func TestEndsCurrentExp(t *testing.T) {
	assert.True(t, mkToken("end", Reserved).EndsCurrentExp())
	assert.True(t, mkToken(")", Reserved).EndsCurrentExp())
	assert.False(t, mkToken("val", Reserved).EndsCurrentExp())
	assert.False(t, mkToken("foo", Identifier).EndsCurrentExp())
}

func TestIsReservedWord(t *testing.T) {
	assert.True(t, IsReservedWord("let"))
	assert.True(t, IsReservedWord("=>"))
	assert.False(t, IsReservedWord("foo"))
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "Reserved", Reserved.String())
	assert.Equal(t, "Identifier", Identifier.String())
}
