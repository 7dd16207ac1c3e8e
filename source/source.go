// Package source provides the byte-indexed slice-of-a-file facility that the
// lexer, infix dictionary and parser borrow from but never own: a File holds
// an immutable buffer and a Source is a start/length view into it, with
// on-demand line/column lookup for error messages.
package source

import (
	"sort"
	"unicode/utf8"
)

// LineCol is a 1-indexed line and column pair, suitable for direct display
// in an error message.
type LineCol struct {
	Line, Col int
}

// File is an immutable byte buffer read from disk (or handed to us by a
// caller, e.g. an editor buffer). Source values borrow from it; the File
// must outlive every Source, Token and CST node derived from it.
type File struct {
	name string
	buf  []byte

	// lineStarts[i] is the absolute byte offset of the first byte of line i
	// (0-indexed). Computed once, lazily, on first use.
	lineStarts []int
}

// NewFile wraps buf as a named, immutable source file. buf is not copied;
// callers must not mutate it afterwards.
func NewFile(name string, buf []byte) *File {
	return &File{name: name, buf: buf}
}

func (f *File) ensureLineStarts() {
	if f.lineStarts != nil {
		return
	}
	starts := []int{0}
	for i, b := range f.buf {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	f.lineStarts = starts
}

// lineColOf returns the 1-indexed line/column of an absolute byte offset.
func (f *File) lineColOf(offset int) LineCol {
	f.ensureLineStarts()
	// last line start <= offset
	i := sort.Search(len(f.lineStarts), func(i int) bool { return f.lineStarts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return LineCol{Line: i + 1, Col: offset - f.lineStarts[i] + 1}
}

func (f *File) lineCount() int {
	f.ensureLineStarts()
	return len(f.lineStarts)
}

// lineSpan returns the [start,end) byte range of a 1-indexed line, end
// exclusive of the line's trailing newline.
func (f *File) lineSpan(lineNumber int) (start, end int) {
	f.ensureLineStarts()
	idx := lineNumber - 1
	start = f.lineStarts[idx]
	if idx+1 < len(f.lineStarts) {
		end = f.lineStarts[idx+1]
		for end > start && (f.buf[end-1] == '\n' || f.buf[end-1] == '\r') {
			end--
		}
	} else {
		end = len(f.buf)
	}
	return
}

// Whole returns a Source covering the entire file.
func (f *File) Whole() Source {
	return Source{file: f, start: 0, length: len(f.buf)}
}

// Source is a view: [start, start+length) of an underlying File's buffer.
// Source values are small and copied by value throughout the lexer/parser.
type Source struct {
	file   *File
	start  int
	length int
}

// Length returns the number of bytes in this slice.
func (s Source) Length() int { return s.length }

// Nth returns the byte at index i (0-indexed, relative to this slice).
func (s Source) Nth(i int) byte { return s.file.buf[s.start+i] }

// RuneAt decodes the rune at relative byte offset i without materialising
// a copy of the remaining slice, so the lexer's maximal-munch scanning
// stays linear in the input size.
func (s Source) RuneAt(i int) (rune, int) {
	start := s.start + i
	if i >= s.length {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(s.file.buf[start : s.start+s.length])
}

// Slice returns the sub-slice [start, start+length) relative to this Source.
func (s Source) Slice(start, length int) Source {
	return Source{file: s.file, start: s.start + start, length: length}
}

// Drop returns the suffix of this Source starting at the given relative
// offset, i.e. Slice(offset, s.Length()-offset).
func (s Source) Drop(offset int) Source {
	return s.Slice(offset, s.length-offset)
}

// AbsoluteStartOffset is this slice's start, as a byte offset into the file.
func (s Source) AbsoluteStartOffset() int { return s.start }

// AbsoluteEndOffset is this slice's end (exclusive), as a byte offset into
// the file.
func (s Source) AbsoluteEndOffset() int { return s.start + s.length }

// AbsoluteStart is the line/column of this slice's first byte.
func (s Source) AbsoluteStart() LineCol { return s.file.lineColOf(s.start) }

// AbsoluteEnd is the line/column of the byte just past this slice.
func (s Source) AbsoluteEnd() LineCol { return s.file.lineColOf(s.start + s.length) }

// WholeLine returns a Source covering the given 1-indexed line of the
// underlying file (not just this slice), excluding its terminating newline.
func (s Source) WholeLine(lineNumber int) Source {
	start, end := s.file.lineSpan(lineNumber)
	return Source{file: s.file, start: start, length: end - start}
}

// LineCount returns the number of lines in the underlying file.
func (s Source) LineCount() int { return s.file.lineCount() }

// FileName is the name of the underlying file.
func (s Source) FileName() string { return s.file.name }

// String is the textual content of this slice.
func (s Source) String() string {
	return string(s.file.buf[s.start : s.start+s.length])
}

// Empty reports whether this slice has zero length.
func (s Source) Empty() bool { return s.length == 0 }
