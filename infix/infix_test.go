package infix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndLookup(t *testing.T) {
	d := New().Insert("**", 9, Left)
	f, ok := d.Lookup("**")
	assert.True(t, ok)
	assert.Equal(t, Fixity{Precedence: 9, Assoc: Left}, f)
}

func TestInsertIsPersistent(t *testing.T) {
	base := New().Insert("+", 6, Left)
	extended := base.Insert("@@", 5, Right)
	assert.False(t, base.Contains("@@"))
	assert.True(t, extended.Contains("@@"))
	assert.True(t, extended.Contains("+"))
}

func TestReplaceFixity(t *testing.T) {
	d := New().Insert("**", 5, Left)
	d = d.Insert("**", 9, Right)
	f, _ := d.Lookup("**")
	assert.Equal(t, 9, f.Precedence)
	assert.Equal(t, Right, f.Assoc)
}

func TestRemove(t *testing.T) {
	d := New().Insert("**", 5, Left)
	d2 := d.Remove("**")
	assert.True(t, d.Contains("**"))
	assert.False(t, d2.Contains("**"))
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	d := New()
	d2 := d.Remove("nope")
	assert.False(t, d2.Contains("nope"))
}

func TestHigherPrecedenceAndSamePrecedence(t *testing.T) {
	d := New().Insert("+", 6, Left).Insert("*", 7, Left)
	assert.True(t, d.HigherPrecedence("*", "+"))
	assert.False(t, d.HigherPrecedence("+", "*"))
	assert.True(t, d.SamePrecedence("+", "+"))
}

func TestAssociates(t *testing.T) {
	d := New().Insert("+", 6, Left).Insert("::", 5, Right)
	assert.True(t, d.AssociatesLeft("+"))
	assert.False(t, d.AssociatesRight("+"))
	assert.True(t, d.AssociatesRight("::"))
}

func TestInitialTopLevel(t *testing.T) {
	d := InitialTopLevel()
	assert.True(t, d.HigherPrecedence("*", "+"))
	assert.True(t, d.AssociatesRight("::"))
	assert.True(t, d.AssociatesLeft("-"))
	assert.True(t, d.Contains("div"))
	assert.True(t, d.Contains("before"))
}
