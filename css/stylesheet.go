package css

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Stylesheet is an ordered collection of rules, always kept sorted by
// ascending specificity. Sorting is stable, so among rules of equal
// specificity the one added later wins the cascade.
//
// Mutators take an exclusive lock which also blocks queries, so resolution
// always sees a consistent, fully sorted rule list.
type Stylesheet struct {
	mu       sync.RWMutex
	rules    []Rule
	warnings []string // non fatal problems found while parsing
}

// New creates an empty stylesheet.
func New() *Stylesheet {
	return &Stylesheet{}
}

// AddRule inserts a rule and restores the cascade order.
func (s *Stylesheet) AddRule(r Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = append(s.rules, r)
	s.sortRules()
}

// Merge appends all rules of other and restores the cascade order. Rules of
// other win over existing rules of equal specificity. Duplicates are not
// removed, merging a stylesheet twice keeps both copies.
func (s *Stylesheet) Merge(other *Stylesheet) {
	if other == nil {
		return
	}
	// Snapshot first: other may be s itself.
	rules, warnings := other.snapshot()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rules = append(s.rules, rules...)
	s.warnings = append(s.warnings, warnings...)
	s.sortRules()
}

// Combine returns a new stylesheet holding the rules of base followed by the
// rules of override. Neither argument is modified; either may be nil.
func Combine(base, override *Stylesheet) *Stylesheet {
	out := New()
	out.Merge(base)
	out.Merge(override)
	return out
}

// Clone returns an independent copy of the stylesheet.
func (s *Stylesheet) Clone() *Stylesheet {
	return Combine(s, nil)
}

func (s *Stylesheet) snapshot() ([]Rule, []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rules), slices.Clone(s.warnings)
}

func (s *Stylesheet) sortRules() {
	sort.SliceStable(s.rules, func(i, j int) bool {
		return s.rules[i].Specificity().Less(s.rules[j].Specificity())
	})
}

// Rules returns a copy of the rules in cascade order.
func (s *Stylesheet) Rules() []Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rules)
}

// Len returns number of rules.
func (s *Stylesheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// Warnings returns problems the lossy parser recovered from.
func (s *Stylesheet) Warnings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.warnings)
}

// Resolve returns the merged property set for path. Properties of every
// ancestor level are inherited; then every matching rule is overlaid in
// cascade order. The result is a fresh map owned by the caller.
func (s *Stylesheet) Resolve(path ElementPath) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(path)
}

func (s *Stylesheet) resolve(path ElementPath) map[string]string {
	if len(path) == 0 {
		return make(map[string]string)
	}
	props := s.resolve(path[:len(path)-1])
	for _, r := range s.rules {
		if r.selector.Matches(path) {
			r.overlay(props)
		}
	}
	return props
}

// Query resolves path and wraps the result into a typed Properties view.
func (s *Stylesheet) Query(path ElementPath) *Properties {
	p := make(ElementPath, len(path))
	copy(p, path)
	return &Properties{values: s.Resolve(p), sheet: s, path: p}
}

// QueryString is Query for selector-like shorthand, e.g.
// "wavegraph grid#x.major label". Every class of a segment is kept.
func (s *Stylesheet) QueryString(text string) *Properties {
	return s.Query(ParseElementPath(text))
}

// WriteTo writes the stylesheet in cascade order, implementing io.WriterTo.
// Property order within a rule is alphabetical for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	rules := s.Rules()

	var total int64
	for i := range rules {
		n, err := writeRule(w, &rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}
		if i < len(rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, name := range rule.Names() {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.properties[name])
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
