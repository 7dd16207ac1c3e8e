// Package token defines the typed token values produced by the main
// lexer: every token carries the source slice it was scanned from (so the
// original text, and hence a lossless round-trip, is always recoverable)
// plus a Class. Modelled on the teacher's Scanner/TokenType split
// (sqlparser/scanner.go, sqlparser/tokentype.go), but here the token is a
// standalone immutable value rather than scanner-cursor state, since the
// parser driver needs a whole token array with a cursor (spec §4.6), not a
// single mutable scan position.
package token

import "github.com/vippsas/smlparse/source"

// Class enumerates the kinds of token the main lexer produces. See spec §3.
type Class int

const (
	_ Class = iota

	// Reserved covers every member of the closed keyword/punctuation set:
	// val fun type infix infixr nonfix rec op let in end case of fn raise
	// handle andalso orelse if then else while do ( ) [ ] , ; | _ = => -> : *
	Reserved

	// Identifier covers both alphanumeric (foo, List.map) and symbolic
	// (+, @, ::) value identifiers that are not in the reserved set. Long
	// reports whether the textual form contains '.' path separators.
	Identifier

	// TyVar is a type variable: a leading ' (or '' for an equality tyvar)
	// followed by identifier characters.
	TyVar

	// Constant token subvariants.
	IntConst     // decimal integer, e.g. 123
	HexIntConst  // 0x1F
	WordConst    // 0w123
	HexWordConst // 0wxFF
	RealConst    // 1.0, 1e10, 1.5e-3
	CharConst    // #"a"
	StringConst  // "..."

	// Comment is emitted by the lexer for tooling but filtered before
	// parsing; see spec §4.7 "Comment retention".
	Comment
)

// reservedWords is the closed set named in spec §3. Punctuation reserved
// forms are keyed by their literal text, same as keywords.
var reservedWords = map[string]struct{}{
	"val": {}, "fun": {}, "type": {}, "infix": {}, "infixr": {}, "nonfix": {},
	"rec": {}, "op": {}, "let": {}, "in": {}, "end": {}, "case": {}, "of": {},
	"fn": {}, "raise": {}, "handle": {}, "andalso": {}, "orelse": {}, "if": {},
	"then": {}, "else": {}, "while": {}, "do": {},
	"(": {}, ")": {}, "[": {}, "]": {}, ",": {}, ";": {}, "|": {}, "_": {},
	"=": {}, "=>": {}, "->": {}, ":": {}, "*": {},
}

// String names a Class for diagnostics and CLI token listings.
func (c Class) String() string {
	switch c {
	case Reserved:
		return "Reserved"
	case Identifier:
		return "Identifier"
	case TyVar:
		return "TyVar"
	case IntConst:
		return "IntConst"
	case HexIntConst:
		return "HexIntConst"
	case WordConst:
		return "WordConst"
	case HexWordConst:
		return "HexWordConst"
	case RealConst:
		return "RealConst"
	case CharConst:
		return "CharConst"
	case StringConst:
		return "StringConst"
	case Comment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// IsReservedWord reports whether text is a member of the closed reserved set.
func IsReservedWord(text string) bool {
	_, ok := reservedWords[text]
	return ok
}

// endsExp is the subset of reserved words that can never appear mid-expression
// (spec §3's endsCurrentExp predicate).
var endsExp = map[string]struct{}{
	")": {}, "]": {}, ",": {}, ";": {}, "|": {},
	"then": {}, "else": {}, "of": {}, "do": {}, "in": {}, "end": {},
}

// Token is an immutable (source slice, class) pair. Two tokens are
// considered equal only by identity of slice + class; the parser never
// needs structural equality of expressions.
type Token struct {
	Src   source.Source
	Class Class

	// Long is only meaningful for Identifier: true when the textual form
	// contains one or more '.' path separators, e.g. "A.B.c".
	Long bool
}

// New constructs a token from a source slice and class.
func New(src source.Source, class Class) Token {
	return Token{Src: src, Class: class}
}

// NewLong constructs a long-form Identifier token.
func NewLong(src source.Source) Token {
	return Token{Src: src, Class: Identifier, Long: true}
}

// Text is the token's original textual form.
func (t Token) Text() string { return t.Src.String() }

// Is reports whether t is a Reserved token with the given literal text,
// e.g. t.Is("end").
func (t Token) Is(word string) bool {
	return t.Class == Reserved && t.Text() == word
}

// IsValueIdentifier reports whether t can be used as a value identifier
// (bound variable or value-level name), i.e. it is not reserved, not a
// type variable.
func (t Token) IsValueIdentifier() bool {
	return t.Class == Identifier
}

// IsMaybeLongIdentifier reports whether t is an Identifier whose textual
// form is a dotted path, e.g. "A.B.c".
func (t Token) IsMaybeLongIdentifier() bool {
	return t.Class == Identifier && t.Long
}

// IsTyVar reports whether t is a type variable ('a, ''a, ...).
func (t Token) IsTyVar() bool { return t.Class == TyVar }

// IsMaybeLongTyCon is the type-constructor analogue of
// IsMaybeLongIdentifier: type constructors share the same lexical shape as
// value identifiers (tycons are just lowercase alphanumeric identifiers, and
// may likewise be long paths, e.g. "A.B.t").
func (t Token) IsMaybeLongTyCon() bool {
	return t.Class == Identifier
}

// IsStar reports whether t is the reserved symbol "*", which is ambiguous
// between the tuple-type separator and a multiplication operator and so
// needs its own predicate at several call sites in the parser.
func (t Token) IsStar() bool { return t.Is("*") }

// EndsCurrentExp reports whether t is a token that can never appear in the
// middle of an expression -- the after-expression loop (spec §4.6) uses
// this to know when to stop looking for postfix continuations.
func (t Token) EndsCurrentExp() bool {
	if t.Class != Reserved {
		return false
	}
	_, ok := endsExp[t.Text()]
	return ok
}

// RenderReserved renders a reserved word for inclusion in an error message,
// e.g. for "Unexpected token. Expected to see '<X>'".
func RenderReserved(word string) string {
	return "'" + word + "'"
}
