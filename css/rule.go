package css

import (
	"maps"
	"slices"
)

// Rule pairs a selector with raw, uninterpreted property values. Rules are
// immutable once created.
type Rule struct {
	selector   Selector
	properties map[string]string
}

// NewRule parses selector text and creates a rule holding a copy of props.
func NewRule(selector string, props map[string]string) (Rule, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return Rule{}, err
	}
	return NewRuleFor(sel, props), nil
}

// NewRuleFor creates a rule for an already parsed selector.
func NewRuleFor(sel Selector, props map[string]string) Rule {
	cp := make(map[string]string, len(props))
	maps.Copy(cp, props)
	return Rule{selector: sel, properties: cp}
}

// Selector returns the rule selector.
func (r Rule) Selector() Selector {
	return r.selector
}

// Specificity is a shortcut for r.Selector().Specificity().
func (r Rule) Specificity() Specificity {
	return r.selector.specificity
}

// Get returns the raw value for a property, or false if the rule does not set it.
func (r Rule) Get(name string) (string, bool) {
	v, ok := r.properties[name]
	return v, ok
}

// Properties returns a copy of the rule's property mapping.
func (r Rule) Properties() map[string]string {
	return maps.Clone(r.properties)
}

// Names returns property names in alphabetical order.
func (r Rule) Names() []string {
	return slices.Sorted(maps.Keys(r.properties))
}

// overlay copies the rule's properties over dst, later values win.
func (r Rule) overlay(dst map[string]string) {
	maps.Copy(dst, r.properties)
}
