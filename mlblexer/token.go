// Package mlblexer tokenises build-description (.mlb) source, the
// secondary lexer of spec §4.3. It has its own small reserved set and its
// own path-token shape, and delegates comments and string constants to the
// main lexer package rather than re-implementing their escape handling.
package mlblexer

import "github.com/vippsas/smlparse/source"

// Class classifies a build-description token.
type Class int

const (
	Reserved Class = iota
	Path
	Identifier
	Comment
	StringConst
)

func (c Class) String() string {
	switch c {
	case Reserved:
		return "Reserved"
	case Path:
		return "Path"
	case Identifier:
		return "Identifier"
	case Comment:
		return "Comment"
	case StringConst:
		return "StringConst"
	default:
		return "Unknown"
	}
}

// Token is a single build-description token.
type Token struct {
	Src   source.Source
	Class Class
}

func (t Token) Text() string { return t.Src.String() }

func (t Token) Is(word string) bool {
	return t.Class == Reserved && t.Text() == word
}
