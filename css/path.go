package css

import (
	"slices"
	"strings"
)

// Element is a single level in the element hierarchy being styled. Empty
// strings stand for "absent".
type Element struct {
	Type    string   // component type: "wavegraph", "grid", "label"...
	ID      string   // element id, e.g. "x" in grid#x
	Classes []string // element classes, order is irrelevant for matching
}

// HasClass reports whether the element carries class cls.
func (e Element) HasClass(cls string) bool {
	return slices.Contains(e.Classes, cls)
}

// String renders the element as type#id.class1.class2.
func (e Element) String() string {
	var sb strings.Builder
	if e.Type == "" {
		sb.WriteByte('*')
	} else {
		sb.WriteString(e.Type)
	}
	if e.ID != "" {
		sb.WriteByte('#')
		sb.WriteString(e.ID)
	}
	for _, c := range e.Classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	return sb.String()
}

// ElementPath is the ancestor chain from the root element to the queried one.
type ElementPath []Element

// ParseElementPath turns selector-like shorthand ("wavegraph grid#x.major label")
// into an ElementPath. Unlike selectors, every class of a segment is retained.
func ParseElementPath(text string) ElementPath {
	tokens := strings.Fields(text)
	path := make(ElementPath, 0, len(tokens))
	for _, tok := range tokens {
		typ, id, classes := splitToken(tok)
		path = append(path, Element{Type: typ, ID: id, Classes: classes})
	}
	return path
}

// Child returns a copy of the path extended by one anonymous element of the
// given type. The receiver is never modified.
func (p ElementPath) Child(typ string) ElementPath {
	out := make(ElementPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, Element{Type: typ})
}

// Parent returns the path without its last element.
func (p ElementPath) Parent() ElementPath {
	if len(p) == 0 {
		return nil
	}
	return p[: len(p)-1 : len(p)-1]
}

// Last returns the queried (deepest) element.
func (p ElementPath) Last() (Element, bool) {
	if len(p) == 0 {
		return Element{}, false
	}
	return p[len(p)-1], true
}

func (p ElementPath) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// splitToken splits "type#id.c1.c2" into its components. The id is split off
// first, so anything written before '#' (including dots) is the type.
func splitToken(tok string) (typ, id string, classes []string) {
	var rest []string
	if before, after, found := strings.Cut(tok, "#"); found {
		typ = before
		idcls := strings.Split(after, ".")
		id = idcls[0]
		rest = idcls[1:]
	} else {
		tagcls := strings.Split(tok, ".")
		typ = tagcls[0]
		rest = tagcls[1:]
	}
	if typ == "*" {
		typ = ""
	}
	for _, c := range rest {
		if c != "" {
			classes = append(classes, c)
		}
	}
	return typ, id, classes
}
