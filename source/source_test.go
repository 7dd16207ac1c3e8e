package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWholeAndString(t *testing.T) {
	f := NewFile("t.sml", []byte("val x = 1"))
	s := f.Whole()
	assert.Equal(t, "val x = 1", s.String())
	assert.Equal(t, 9, s.Length())
}

func TestSliceAndDrop(t *testing.T) {
	f := NewFile("t.sml", []byte("val x = 1"))
	s := f.Whole()
	assert.Equal(t, "val", s.Slice(0, 3).String())
	assert.Equal(t, "x = 1", s.Drop(4).String())
}

func TestLineColOf(t *testing.T) {
	f := NewFile("t.sml", []byte("val x\n= 1\n"))
	s := f.Whole()
	eq := s.Slice(6, 1)
	lc := eq.AbsoluteStart()
	assert.Equal(t, LineCol{Line: 2, Col: 1}, lc)
}

func TestWholeLine(t *testing.T) {
	f := NewFile("t.sml", []byte("val x\n= 1\n"))
	s := f.Whole()
	assert.Equal(t, "val x", s.WholeLine(1).String())
	assert.Equal(t, "= 1", s.WholeLine(2).String())
}

func TestEmpty(t *testing.T) {
	f := NewFile("t.sml", []byte(""))
	assert.True(t, f.Whole().Empty())
}

func TestRuneAt(t *testing.T) {
	f := NewFile("t.sml", []byte("føo"))
	s := f.Whole()
	r, size := s.RuneAt(1)
	assert.Equal(t, 'ø', r)
	assert.Equal(t, 2, size)
}
