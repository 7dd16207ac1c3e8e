package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	m, err := Decode([]byte("roots:\n  LIB: ../lib\n  APP: .\n"))
	require.NoError(t, err)
	assert.Equal(t, "../lib", m.Roots["LIB"])
	assert.Equal(t, ".", m.Roots["APP"])
}

func TestResolveKnownAlias(t *testing.T) {
	m := Manifest{Roots: map[string]string{"LIB": "../lib"}}
	assert.Equal(t, "../lib/foo.sml", m.Resolve("$(LIB)/foo.sml"))
}

func TestResolveUnknownAliasUnchanged(t *testing.T) {
	m := Manifest{Roots: map[string]string{"LIB": "../lib"}}
	assert.Equal(t, "$(NOPE)/foo.sml", m.Resolve("$(NOPE)/foo.sml"))
}

func TestResolvePlainPathUnchanged(t *testing.T) {
	m := Manifest{Roots: map[string]string{"LIB": "../lib"}}
	assert.Equal(t, "foo.sml", m.Resolve("foo.sml"))
}
