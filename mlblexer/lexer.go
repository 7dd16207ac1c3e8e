package mlblexer

import (
	"github.com/vippsas/smlparse/errs"
	"github.com/vippsas/smlparse/lexer"
	"github.com/vippsas/smlparse/source"
)

var validExtensions = []string{".mlb", ".sml", ".sig", ".fun"}

func isPathChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '.', b == '/', b == '_', b == '-':
		return true
	}
	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// Lexer scans a build-description source into Tokens.
type Lexer struct {
	rest source.Source
}

// New returns a Lexer positioned at the start of src.
func New(src source.Source) *Lexer {
	return &Lexer{rest: src}
}

// Next scans and returns the next token, or ok=false at end of input.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	for l.rest.Length() > 0 && isSpace(l.rest.Nth(0)) {
		l.rest = l.rest.Drop(1)
	}
	if l.rest.Length() == 0 {
		return Token{}, false, nil
	}

	b := l.rest.Nth(0)

	if b == '(' && l.rest.Length() > 1 && l.rest.Nth(1) == '*' {
		return l.delegate(Comment)
	}
	if b == '"' {
		return l.delegate(StringConst)
	}

	if word, class, ok := l.tryReservedPrefix(); ok {
		src := l.rest.Slice(0, len(word))
		l.rest = l.rest.Drop(len(word))
		return Token{Src: src, Class: class}, true, nil
	}

	if !isPathChar(b) {
		return Token{}, false, errs.New(errs.SyntaxError, l.rest.Slice(0, 1), "Unexpected character.")
	}
	return l.scanWord()
}

// Recover discards one byte from the front of the unscanned input, for a
// caller resynchronizing past a lexical error (spec's batch-style scan, see
// cli/cmd/mlb.go's scanBestEffort): it reports whether any input remains to
// retry Next on.
func (l *Lexer) Recover() bool {
	if l.rest.Length() == 0 {
		return false
	}
	l.rest = l.rest.Drop(1)
	return l.rest.Length() > 0
}

// Tokens scans src to completion.
func Tokens(src source.Source) ([]Token, error) {
	l := New(src)
	var out []Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, tok)
	}
}

// delegate hands the remainder to the main lexer to scan a comment or a
// string constant, then wraps the result in a build-description token
// carrying the same source span and the equivalent class (spec §4.3).
func (l *Lexer) delegate(class Class) (Token, bool, error) {
	inner := lexer.New(l.rest)
	tok, ok, err := inner.Next()
	if err != nil {
		return Token{}, false, err
	}
	if !ok {
		errs.Panic("main lexer refused to scan at a position mlblexer dispatched on")
	}
	l.rest = l.rest.Drop(tok.Src.Length())
	return Token{Src: tok.Src, Class: class}, true, nil
}

// tryReservedPrefix implements the bas/basis/ann/_prim lookahead discipline
// of spec §4.3: each is the reserved form only when not immediately
// followed by another path-continuation character, so that e.g. "bass" or
// "basis.sml" are never mistaken for the keyword.
func (l *Lexer) tryReservedPrefix() (word string, class Class, ok bool) {
	try := func(w string) (string, bool) {
		if l.rest.Length() < len(w) {
			return "", false
		}
		for i := 0; i < len(w); i++ {
			if l.rest.Nth(i) != w[i] {
				return "", false
			}
		}
		if l.rest.Length() > len(w) && isPathChar(l.rest.Nth(len(w))) {
			return "", false
		}
		return w, true
	}

	if l.rest.Length() >= 3 && l.rest.Nth(0) == 'b' && l.rest.Nth(1) == 'a' && l.rest.Nth(2) == 's' {
		if w, ok := try("basis"); ok {
			return w, Reserved, true
		}
		if w, ok := try("bas"); ok {
			return w, Reserved, true
		}
		return "", 0, false
	}
	if l.rest.Length() >= 3 && l.rest.Nth(0) == 'a' && l.rest.Nth(1) == 'n' && l.rest.Nth(2) == 'n' {
		if w, ok := try("ann"); ok {
			return w, Reserved, true
		}
		return "", 0, false
	}
	if l.rest.Length() >= 5 && l.rest.Nth(0) == '_' && l.rest.Nth(1) == 'p' && l.rest.Nth(2) == 'r' &&
		l.rest.Nth(3) == 'i' && l.rest.Nth(4) == 'm' {
		if w, ok := try("_prim"); ok {
			return w, Reserved, true
		}
		return "", 0, false
	}
	return "", 0, false
}

// scanWord scans a maximal run of path-valid characters and classifies it.
// A word containing a '.' or '/' is a path and must end in a recognised
// source extension; otherwise it is a plain Identifier.
//
// This resolves a tension in spec §8's build-description scenario: a bare
// word with no extension is said to error ("input foo -> syntax error
// about missing extension"), yet the same scenario also classifies the
// bare trailing word "is" (in "bas foo.mlb is") as an Identifier, not an
// error. Requiring an extension only for words that contain a path
// separator in the first place is the reading that keeps both halves of
// that example consistent with one context-free rule (see DESIGN.md).
func (l *Lexer) scanWord() (Token, bool, error) {
	n := 0
	for n < l.rest.Length() && isPathChar(l.rest.Nth(n)) {
		n++
	}
	word := l.rest.Slice(0, n)
	l.rest = l.rest.Drop(n)

	text := word.String()
	hasSeparator := false
	for i := 0; i < len(text); i++ {
		if text[i] == '.' || text[i] == '/' {
			hasSeparator = true
			break
		}
	}
	if !hasSeparator {
		return Token{Src: word, Class: Identifier}, true, nil
	}

	for _, ext := range validExtensions {
		if len(text) >= len(ext) && text[len(text)-len(ext):] == ext {
			return Token{Src: word, Class: Path}, true, nil
		}
	}
	return Token{}, false, errs.New(errs.SyntaxError, word, "Missing or invalid file extension in path.")
}
