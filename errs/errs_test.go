package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/smlparse/source"
)

func TestLineErrorFormatting(t *testing.T) {
	f := source.NewFile("foo.sml", []byte("val x = +\nend"))
	pos := f.Whole().Slice(8, 1)
	err := New(SyntaxError, pos, "Infix identifier not prefaced by 'op'.")
	assert.Equal(t, "foo.sml:1:9: SYNTAX ERROR: Infix identifier not prefaced by 'op'.", err.Error())
}

func TestLineErrorWithExplain(t *testing.T) {
	f := source.NewFile("foo.sml", []byte("foo"))
	pos := f.Whole()
	err := Newf(SyntaxError, pos, "Unexpected token.", "Expected to see an identifier")
	assert.Equal(t, "foo.sml:1:1: SYNTAX ERROR: Unexpected token. (Expected to see an identifier)", err.Error())
}

func TestBugError(t *testing.T) {
	b := Bug{What: "cursor out of range"}
	assert.Equal(t, "BUG: cursor out of range", b.Error())
}

func TestPanicRaisesBug(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		bug, ok := r.(Bug)
		require.True(t, ok)
		assert.Contains(t, bug.Error(), "unreachable")
	}()
	Panic("unreachable: %s", "cursor invariant broken")
}
