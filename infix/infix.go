// Package infix implements the mutable-by-declaration operator-precedence
// dictionary described in spec §4.4: identifier -> (precedence, associativity),
// with insert/remove/lookup and the precedence comparisons the infix
// reassembler (ast.MakeInfix) needs.
//
// Dict is represented as a persistent map, per spec §9's design note: insert
// and remove return a new Dict rather than mutating the receiver, so a
// `let`-scoped declaration can hand a clone to the inner parse and simply
// drop it on the way back out, without an explicit undo log.
package infix

// Assoc is an infix identifier's associativity.
type Assoc int

const (
	Left Assoc = iota
	Right
)

// Fixity is an infix identifier's precedence and associativity.
type Fixity struct {
	Precedence int
	Assoc      Assoc
}

// Dict maps identifier text to Fixity. The zero Dict is not usable; use New.
type Dict struct {
	entries map[string]Fixity
}

// New returns an empty dictionary.
func New() Dict {
	return Dict{entries: map[string]Fixity{}}
}

// Insert returns a new Dict equal to d but with id bound to
// (precedence, assoc), replacing any prior binding (idempotent replace).
func (d Dict) Insert(id string, precedence int, assoc Assoc) Dict {
	next := make(map[string]Fixity, len(d.entries)+1)
	for k, v := range d.entries {
		next[k] = v
	}
	next[id] = Fixity{Precedence: precedence, Assoc: assoc}
	return Dict{entries: next}
}

// Remove returns a new Dict equal to d but with id unbound. Safe if id is
// already absent.
func (d Dict) Remove(id string) Dict {
	if _, ok := d.entries[id]; !ok {
		return d
	}
	next := make(map[string]Fixity, len(d.entries))
	for k, v := range d.entries {
		if k != id {
			next[k] = v
		}
	}
	return Dict{entries: next}
}

// Contains reports whether id has a declared fixity.
func (d Dict) Contains(id string) bool {
	_, ok := d.entries[id]
	return ok
}

// Lookup returns id's fixity and whether it was found.
func (d Dict) Lookup(id string) (Fixity, bool) {
	f, ok := d.entries[id]
	return f, ok
}

func (d Dict) precedenceOf(id string) int {
	return d.entries[id].Precedence
}

// HigherPrecedence reports whether a binds tighter than b. Both must be
// present in d; callers check Contains first (spec §4.4).
func (d Dict) HigherPrecedence(a, b string) bool {
	return d.precedenceOf(a) > d.precedenceOf(b)
}

// SamePrecedence reports whether a and b share a precedence level.
func (d Dict) SamePrecedence(a, b string) bool {
	return d.precedenceOf(a) == d.precedenceOf(b)
}

// AssociatesLeft reports whether id is declared left-associative (infix).
func (d Dict) AssociatesLeft(id string) bool {
	return d.entries[id].Assoc == Left
}

// AssociatesRight reports whether id is declared right-associative (infixr).
func (d Dict) AssociatesRight(id string) bool {
	return d.entries[id].Assoc == Right
}

// InitialTopLevel is the preloaded dictionary for the standard Basis
// operators named in spec §4.4, with their real Standard ML fixities:
//
//	infixr 5 :: @
//	infix  4 = <> > >= < <=
//	infix  3 := o
//	infix  0 before
//	infix  6 + -
//	infix  7 * div mod
func InitialTopLevel() Dict {
	d := New()
	d = d.Insert("+", 6, Left)
	d = d.Insert("-", 6, Left)
	d = d.Insert("*", 7, Left)
	d = d.Insert("div", 7, Left)
	d = d.Insert("mod", 7, Left)
	d = d.Insert("<", 4, Left)
	d = d.Insert(">", 4, Left)
	d = d.Insert("<=", 4, Left)
	d = d.Insert(">=", 4, Left)
	d = d.Insert("=", 4, Left)
	d = d.Insert("<>", 4, Left)
	d = d.Insert("::", 5, Right)
	d = d.Insert("@", 5, Right)
	d = d.Insert("o", 3, Left)
	d = d.Insert(":=", 3, Left)
	d = d.Insert("before", 0, Left)
	return d
}
