// Package lexer is the main tokenizer (spec §4.2): it turns a source slice
// into a sequence of tokens by maximal munch over absolute byte offsets,
// one character of lookahead past the current class decision. Comments are
// emitted as tokens (for tooling) but the parser driver filters them out
// before parsing (spec §4.7 "Comment retention").
//
// The overall shape -- a cursor scanning forward over a Source, dispatching
// on the first non-whitespace byte, with small scanXxx helpers for each
// lexical form -- follows the teacher's sqlparser.Scanner
// (sqlparser/scanner.go), adapted from a single mutable-cursor Scanner type
// to a Next/Tokens pair returning immutable token values, because the
// parser driver here needs the whole token array up front (spec §4.6)
// rather than a cursor it advances token-by-token itself.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/source"
	"github.com/vippsas/smlparse/token"
)

// symbolChars is the alphabet of symbolic-identifier characters (spec §4.2).
const symbolChars = "!%&$#+-/:<=>?@\\~`^|*"

func isSymbolChar(r rune) bool {
	return r < utf8.RuneSelf && strings.ContainsRune(symbolChars, r)
}

func isIdentStart(r rune) bool {
	return r == '_' || xid.Start(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || xid.Continue(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Lexer scans a single Source into tokens, advancing a cursor over it.
type Lexer struct {
	rest source.Source // unscanned remainder
}

// New creates a Lexer positioned at the start of src.
func New(src source.Source) *Lexer {
	return &Lexer{rest: src}
}

// Next returns the next token, or ok=false when only whitespace/EOF remains.
func (l *Lexer) Next() (tok token.Token, ok bool, err error) {
	// skip whitespace between tokens; whitespace itself is never tokenised
	for l.rest.Length() > 0 {
		r, w := l.rest.RuneAt(0)
		if w == 0 || !unicode.IsSpace(r) {
			break
		}
		l.rest = l.rest.Drop(w)
	}
	if l.rest.Length() == 0 {
		return token.Token{}, false, nil
	}
	tok, n, err := l.scanOne()
	if err != nil {
		return token.Token{}, false, err
	}
	l.rest = l.rest.Drop(n)
	return tok, true, nil
}

// Tokens scans src to completion, returning every token in order. It fails
// with a syntax error on malformed input (spec §4.2).
func Tokens(src source.Source) ([]token.Token, error) {
	lx := New(src)
	var out []token.Token
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}

// scanOne scans exactly one token starting at l.rest's first byte (which is
// known not to be whitespace), and returns it plus the number of bytes
// consumed from l.rest.
func (l *Lexer) scanOne() (token.Token, int, error) {
	s := l.rest
	r, w := s.RuneAt(0)

	switch {
	case r == '(' && s.Length() > 1 && s.Nth(1) == '*':
		return l.scanComment(s)
	case r == '"':
		return l.scanString(s, w, token.StringConst)
	case r == '#' && s.Length() > 1 && s.Nth(1) == '"':
		return l.scanCharConst(s)
	case isDigit(r):
		return l.scanNumber(s)
	case r == '(' || r == ')' || r == '[' || r == ']' || r == ',' || r == ';':
		return token.New(s.Slice(0, w), token.Reserved), w, nil
	case r == '\'':
		return l.scanTyVar(s)
	case isIdentStart(r):
		return l.scanIdentPath(s)
	case isSymbolChar(r):
		return l.scanSymbolPath(s)
	}
	return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, w), "Unexpected character.")
}

// scanComment consumes a possibly-nested "(* ... *)" comment. Nesting depth
// is tracked with an explicit counter rather than recursion, per spec §9's
// note about pathological inputs with unbounded nesting.
func (l *Lexer) scanComment(s source.Source) (token.Token, int, error) {
	depth := 1
	i := 2 // past opening "(*"
	for {
		if i >= s.Length() {
			return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, s.Length()), "Unterminated comment.")
		}
		switch {
		case i+1 < s.Length() && s.Nth(i) == '(' && s.Nth(i+1) == '*':
			depth++
			i += 2
		case i+1 < s.Length() && s.Nth(i) == '*' && s.Nth(i+1) == ')':
			depth--
			i += 2
			if depth == 0 {
				return token.New(s.Slice(0, i), token.Comment), i, nil
			}
		default:
			i++
		}
	}
}

// scanString consumes a '"'-delimited string literal starting after the
// opening quote has been measured (but not yet consumed from s). Handles
// \\ \" \n \t \^c, decimal (\ddd) and hex (\uXXXX) numeric escapes, and
// string continuation across newlines (\<whitespace>\).
func (l *Lexer) scanString(s source.Source, openWidth int, class token.Class) (token.Token, int, error) {
	i := openWidth
	for {
		if i >= s.Length() {
			return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, s.Length()), "Unterminated string.")
		}
		c := s.Nth(i)
		switch {
		case c == '"':
			i++
			return token.New(s.Slice(0, i), class), i, nil
		case c == '\n':
			return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, i), "Unterminated string (newline inside string).")
		case c == '\\':
			n, err := scanEscape(s, i)
			if err != nil {
				return token.Token{}, 0, err
			}
			i = n
		default:
			i++
		}
	}
}

// scanEscape consumes one escape sequence starting at the backslash s.Nth(i)
// and returns the index just past it.
func scanEscape(s source.Source, i int) (int, error) {
	if i+1 >= s.Length() {
		return 0, errs.New(errs.SyntaxError, s.Slice(i, s.Length()-i), "Unterminated escape sequence.")
	}
	c := s.Nth(i + 1)
	switch {
	case c == '\\' || c == '"' || c == 'n' || c == 't' || c == 'a' || c == 'b' || c == 'f' || c == 'r' || c == 'v':
		return i + 2, nil
	case c == '^':
		if i+2 >= s.Length() {
			return 0, errs.New(errs.SyntaxError, s.Slice(i, s.Length()-i), "Invalid control escape.")
		}
		return i + 3, nil
	case c >= '0' && c <= '9':
		j := i + 1
		for k := 0; k < 3 && j < s.Length() && s.Nth(j) >= '0' && s.Nth(j) <= '9'; k++ {
			j++
		}
		if j-(i+1) != 3 {
			return 0, errs.New(errs.SyntaxError, s.Slice(i, j-i), "Invalid decimal escape: needs exactly 3 digits.")
		}
		return j, nil
	case c == 'u':
		j := i + 2
		for k := 0; k < 4; k++ {
			if j >= s.Length() || !isHexDigit(rune(s.Nth(j))) {
				return 0, errs.New(errs.SyntaxError, s.Slice(i, j-i), "Invalid \\u escape: needs exactly 4 hex digits.")
			}
			j++
		}
		return j, nil
	case unicode.IsSpace(rune(c)):
		// string continuation: \<whitespace>+\ ; elided from the value but
		// still part of the token's source text.
		j := i + 1
		for j < s.Length() && unicode.IsSpace(rune(s.Nth(j))) {
			j++
		}
		if j >= s.Length() || s.Nth(j) != '\\' {
			return 0, errs.New(errs.SyntaxError, s.Slice(i, j-i), "Unterminated string continuation.")
		}
		return j + 1, nil
	}
	return 0, errs.New(errs.SyntaxError, s.Slice(i, 2), "Invalid escape sequence.")
}

// scanCharConst consumes a #"c" character constant, which must contain
// exactly one character (or one escape sequence).
func (l *Lexer) scanCharConst(s source.Source) (token.Token, int, error) {
	body, n, err := l.scanString(s.Drop(1), 1, token.CharConst)
	if err != nil {
		return token.Token{}, 0, err
	}
	inner := body.Src.Slice(1, body.Src.Length()-2)
	if err := checkSingleCharBody(inner); err != nil {
		return token.Token{}, 0, err
	}
	full := s.Slice(0, n+1)
	return token.New(full, token.CharConst), n + 1, nil
}

// checkSingleCharBody verifies that inner (the content between the quotes of
// a #"..." constant) decodes to exactly one character or one escape
// sequence, per scanCharConst's contract -- not just a non-empty body, so
// that e.g. #"ab" is rejected rather than silently accepted as a one-rune
// character constant.
func checkSingleCharBody(inner source.Source) error {
	if inner.Length() == 0 {
		return errs.New(errs.SyntaxError, inner, "Character constant must contain exactly one character.")
	}
	if inner.Nth(0) == '\\' {
		end, err := scanEscape(inner, 0)
		if err != nil {
			return err
		}
		if end != inner.Length() {
			return errs.New(errs.SyntaxError, inner, "Character constant must contain exactly one character.")
		}
		return nil
	}
	_, w := inner.RuneAt(0)
	if w != inner.Length() {
		return errs.New(errs.SyntaxError, inner, "Character constant must contain exactly one character.")
	}
	return nil
}

// scanNumber consumes decimal, hex (0x), word (0w, 0wx) and real literals.
func (l *Lexer) scanNumber(s source.Source) (token.Token, int, error) {
	i := 0
	if s.Nth(0) == '0' && s.Length() > 1 {
		switch s.Nth(1) {
		case 'x', 'X':
			i = 2
			start := i
			for i < s.Length() && isHexDigit(rune(s.Nth(i))) {
				i++
			}
			if i == start {
				return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, i), "Invalid hexadecimal literal.")
			}
			return token.New(s.Slice(0, i), token.HexIntConst), i, nil
		case 'w', 'W':
			if s.Length() > 2 && (s.Nth(2) == 'x' || s.Nth(2) == 'X') {
				i = 3
				start := i
				for i < s.Length() && isHexDigit(rune(s.Nth(i))) {
					i++
				}
				if i == start {
					return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, i), "Invalid hexadecimal word literal.")
				}
				return token.New(s.Slice(0, i), token.HexWordConst), i, nil
			}
			i = 2
			start := i
			for i < s.Length() && isDigit(rune(s.Nth(i))) {
				i++
			}
			if i == start {
				return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, i), "Invalid word literal.")
			}
			return token.New(s.Slice(0, i), token.WordConst), i, nil
		}
	}

	for i < s.Length() && isDigit(rune(s.Nth(i))) {
		i++
	}
	isReal := false
	if i+1 < s.Length() && s.Nth(i) == '.' && isDigit(rune(s.Nth(i+1))) {
		isReal = true
		i++
		for i < s.Length() && isDigit(rune(s.Nth(i))) {
			i++
		}
	}
	if i < s.Length() && (s.Nth(i) == 'e' || s.Nth(i) == 'E') {
		j := i + 1
		if j < s.Length() && (s.Nth(j) == '+' || s.Nth(j) == '-') {
			j++
		}
		if j < s.Length() && isDigit(rune(s.Nth(j))) {
			isReal = true
			for j < s.Length() && isDigit(rune(s.Nth(j))) {
				j++
			}
			i = j
		}
	}
	if isReal {
		return token.New(s.Slice(0, i), token.RealConst), i, nil
	}
	return token.New(s.Slice(0, i), token.IntConst), i, nil
}

// scanTyVar consumes 'a or ''a (equality tyvars): a run of one or more
// leading quotes followed by identifier characters.
func (l *Lexer) scanTyVar(s source.Source) (token.Token, int, error) {
	i := 0
	for i < s.Length() && s.Nth(i) == '\'' {
		i++
	}
	start := i
	for i < s.Length() {
		r, w := s.RuneAt(i)
		if !isIdentContinue(r) && !isDigit(r) {
			break
		}
		i += w
	}
	if i == start {
		return token.Token{}, 0, errs.New(errs.SyntaxError, s.Slice(0, i), "Malformed type variable.")
	}
	return token.New(s.Slice(0, i), token.TyVar), i, nil
}

// scanIdentPath scans one alphanumeric identifier segment, then continues
// across '.' separators as long as each subsequent segment begins
// immediately (no intervening whitespace) -- this is how long identifiers
// like A.B.c are recognised (spec §4.2's "." bullet).
func (l *Lexer) scanIdentPath(s source.Source) (token.Token, int, error) {
	i := scanAlnumSegment(s)
	long := false
	for i < s.Length() && s.Nth(i) == '.' {
		rest := s.Drop(i + 1)
		if rest.Length() == 0 {
			break
		}
		r, _ := rest.RuneAt(0)
		var segLen int
		if isIdentStart(r) {
			segLen = scanAlnumSegment(rest)
		} else if isSymbolChar(r) {
			segLen = scanSymbolSegment(rest)
		} else {
			break
		}
		if segLen == 0 {
			break
		}
		long = true
		i = i + 1 + segLen
	}
	text := s.Slice(0, i)
	if !long && token.IsReservedWord(text.String()) {
		return token.New(text, token.Reserved), i, nil
	}
	return token.Token{Src: text, Class: token.Identifier, Long: long}, i, nil
}

// scanSymbolPath scans a symbolic identifier (+, ::, <=, ...). Symbolic
// identifiers may also participate in a long path as the final segment
// (e.g. "Int.+"), but cannot themselves be preceded by a '.' continuation
// (a symbol run never contains '.').
func (l *Lexer) scanSymbolPath(s source.Source) (token.Token, int, error) {
	i := scanSymbolSegment(s)
	text := s.Slice(0, i)
	if token.IsReservedWord(text.String()) {
		return token.New(text, token.Reserved), i, nil
	}
	return token.New(text, token.Identifier), i, nil
}

func scanAlnumSegment(s source.Source) int {
	i := 0
	for i < s.Length() {
		r, w := s.RuneAt(i)
		if i == 0 {
			if !isIdentStart(r) {
				return 0
			}
		} else if !isIdentContinue(r) && !isDigit(r) {
			break
		}
		i += w
	}
	return i
}

func scanSymbolSegment(s source.Source) int {
	i := 0
	for i < s.Length() {
		r, w := s.RuneAt(i)
		if !isSymbolChar(r) {
			break
		}
		i += w
	}
	return i
}
