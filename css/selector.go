package css

import (
	"cmp"
	"strings"
)

// Specificity is selector precedence as (ids, types, classes). Only the
// number of parts carrying a class counts, not the number of classes.
type Specificity [3]int

// Compare returns -1, 0 or +1 comparing s and other lexicographically.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if c := cmp.Compare(s[i], other[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Less returns true if s < other (strictly).
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

// SimpleSelector constrains a single element. Empty fields match anything.
type SimpleSelector struct {
	Type  string
	ID    string
	Class string
}

// Matches reports whether element e satisfies all constraints of s.
func (s SimpleSelector) Matches(e Element) bool {
	if s.Type != "" && s.Type != e.Type {
		return false
	}
	if s.ID != "" && s.ID != e.ID {
		return false
	}
	if s.Class != "" && !e.HasClass(s.Class) {
		return false
	}
	return true
}

func (s SimpleSelector) String() string {
	str := s.Type
	if str == "" {
		str = "*"
	}
	if s.ID != "" {
		str += "#" + s.ID
	}
	if s.Class != "" {
		str += "." + s.Class
	}
	return str
}

// Selector is a sequence of simple selectors joined by the (implied)
// descendant combinator. Specificity is fixed at construction.
type Selector struct {
	parts       []SimpleSelector
	specificity Specificity
}

// NewSelector builds a selector from parts. A selector without parts matches
// every element path.
func NewSelector(parts ...SimpleSelector) Selector {
	sel := Selector{parts: append([]SimpleSelector(nil), parts...)}
	for _, p := range sel.parts {
		if p.ID != "" {
			sel.specificity[0]++
		}
		if p.Type != "" {
			sel.specificity[1]++
		}
		if p.Class != "" {
			sel.specificity[2]++
		}
	}
	return sel
}

// ParseSelector parses whitespace separated "type#id.class" tokens. Only the
// first class of a token is kept; "*" or a missing type is a wildcard. Blank
// text is the only structural error.
func ParseSelector(text string) (Selector, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return Selector{}, &ParseError{Offset: -1, Text: text, Reason: "selector has no tokens", Err: ErrEmptySelector}
	}
	parts := make([]SimpleSelector, 0, len(tokens))
	for _, tok := range tokens {
		typ, id, classes := splitToken(tok)
		part := SimpleSelector{Type: typ, ID: id}
		if len(classes) > 0 {
			part.Class = classes[0]
		}
		parts = append(parts, part)
	}
	return NewSelector(parts...), nil
}

// MustParseSelector is like ParseSelector but panics on error. Intended for
// selectors known at compile time.
func MustParseSelector(text string) Selector {
	sel, err := ParseSelector(text)
	if err != nil {
		panic(err)
	}
	return sel
}

// Parts returns a copy of the selector's simple selectors.
func (s Selector) Parts() []SimpleSelector {
	return append([]SimpleSelector(nil), s.parts...)
}

// Specificity returns the precedence computed at construction.
func (s Selector) Specificity() Specificity {
	return s.specificity
}

// Matches walks the path from the root, advancing through the selector parts
// whenever the current element satisfies the current part. Elements need not
// be adjacent, which gives descendant semantics.
func (s Selector) Matches(path ElementPath) bool {
	di := 0
	if di >= len(s.parts) {
		return true
	}
	for _, e := range path {
		if s.parts[di].Matches(e) {
			di++
			if di >= len(s.parts) {
				return true
			}
		}
	}
	return false
}

func (s Selector) String() string {
	strs := make([]string, len(s.parts))
	for i, p := range s.parts {
		strs[i] = p.String()
	}
	return strings.Join(strs, " ")
}
