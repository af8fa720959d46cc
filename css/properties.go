package css

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// DefaultFontFamily is used when neither "font-family" nor "font" is set.
const DefaultFontFamily = "Sans"

// Properties is a read-only, typed view over the resolved properties of an
// element path. Missing keys always resolve to the caller supplied default;
// only values that are present but cannot be interpreted produce errors.
type Properties struct {
	values map[string]string
	sheet  *Stylesheet
	path   ElementPath
}

// Path returns the element path the view was resolved for.
func (p *Properties) Path() ElementPath {
	return slices.Clone(p.path)
}

// Raw returns a copy of the resolved mapping.
func (p *Properties) Raw() map[string]string {
	return maps.Clone(p.values)
}

// Keys returns property names in alphabetical order.
func (p *Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Len returns number of resolved properties.
func (p *Properties) Len() int {
	return len(p.values)
}

// Has reports whether key was set by any matching rule.
func (p *Properties) Has(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Get returns the raw value of key or def.
func (p *Properties) Get(key, def string) string {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// Sub returns the view for an anonymous child element of type name, e.g. the
// "label" of a grid. The child is resolved against the stylesheet, so it
// inherits everything above it.
func (p *Properties) Sub(name string) *Properties {
	if p.sheet == nil {
		return &Properties{values: maps.Clone(p.values), path: p.path.Child(name)}
	}
	return p.sheet.Query(p.path.Child(name))
}

func (p *Properties) coercionError(key, value, want string, err error) error {
	return &CoercionError{Key: key, Value: value, Want: want, Err: err}
}

// Float returns key as a float64.
func (p *Properties) Float(key string, def float64) (float64, error) {
	raw, ok := p.values[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, p.coercionError(key, raw, "float", err)
	}
	return v, nil
}

// Int returns key as an int.
func (p *Properties) Int(key string, def int) (int, error) {
	raw, ok := p.values[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, p.coercionError(key, raw, "int", err)
	}
	return v, nil
}

// Length returns key in pixels. Bare numbers and px/pt units are accepted.
func (p *Properties) Length(key string, def float64) (float64, error) {
	raw, ok := p.values[key]
	if !ok {
		return def, nil
	}
	v, err := ParseLength(raw)
	if err != nil {
		return 0, p.coercionError(key, raw, "length", err)
	}
	return v, nil
}

// List splits the value (or def when missing) on commas and trims every item.
func (p *Properties) List(key, def string) []string {
	raw := p.Get(key, def)
	items := strings.Split(raw, ",")
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}
	return items
}

// Align returns key as a number in [0,1]. Fractions, percentages and the
// keywords left/top, middle/center/centre, bottom/right are understood.
func (p *Properties) Align(key string, def float64) (float64, error) {
	raw, ok := p.values[key]
	if !ok {
		if def < 0 || def > 1 {
			return 0, p.coercionError(key, strconv.FormatFloat(def, 'g', -1, 64), "alignment", nil)
		}
		return def, nil
	}
	v, err := ParseAlign(raw)
	if err != nil {
		return 0, p.coercionError(key, raw, "alignment", err)
	}
	return v, nil
}

// Color returns key (or the def color text when missing) as normalized RGBA.
func (p *Properties) Color(key, def string) (Color, error) {
	raw := p.Get(key, def)
	c, err := ParseColor(raw)
	if err != nil {
		return Color{}, p.coercionError(key, raw, "color", err)
	}
	return c, nil
}

// ColorOr is Color with an already decoded default, which is returned as is.
func (p *Properties) ColorOr(key string, def Color) (Color, error) {
	if !p.Has(key) {
		return def, nil
	}
	return p.Color(key, "")
}

// Value returns key classified into number, unit and keyword.
func (p *Properties) Value(key string) (Value, bool) {
	raw, ok := p.values[key]
	if !ok {
		return Value{}, false
	}
	return ClassifyValue(raw), true
}

// FontFamily returns the first family of "font-family", falling back to the
// "font" shorthand and then to def.
func (p *Properties) FontFamily(def string) string {
	if raw, ok := p.values["font-family"]; ok {
		if fams := splitFamilies(raw); len(fams) > 0 {
			return fams[0]
		}
	}
	if raw, ok := p.values["font"]; ok {
		if fs, err := parseFontShorthand(raw); err == nil && len(fs.families) > 0 {
			return fs.families[0]
		}
	}
	return def
}

// FontWeight returns "font-weight" (or the weight given in "font") as one of
// the two supported weights.
func (p *Properties) FontWeight(def FontWeight) (FontWeight, error) {
	if raw, ok := p.values["font-weight"]; ok {
		w, err := parseWeight(raw)
		if err != nil {
			return def, p.coercionError("font-weight", raw, "font weight", err)
		}
		return w, nil
	}
	if raw, ok := p.values["font"]; ok {
		fs, err := parseFontShorthand(raw)
		if err != nil {
			return def, p.coercionError("font", raw, "font", err)
		}
		if fs.hasWeight {
			return fs.weight, nil
		}
	}
	return def, nil
}

// FontSlant is always normal: charts never draw slanted text.
func (p *Properties) FontSlant() FontSlant {
	return FontSlantNormal
}

// Font assembles family, weight, slant and size. Longhand properties
// (font-family, font-weight, font-size) win over the "font" shorthand.
func (p *Properties) Font() (Font, error) {
	f := Font{Family: DefaultFontFamily, Weight: FontWeightNormal, Slant: FontSlantNormal}

	if raw, ok := p.values["font"]; ok {
		fs, err := parseFontShorthand(raw)
		if err != nil {
			return f, p.coercionError("font", raw, "font", err)
		}
		if len(fs.families) > 0 {
			f.Family = fs.families[0]
		}
		if fs.hasWeight {
			f.Weight = fs.weight
		}
		f.Size = fs.size
	}

	f.Family = p.FontFamily(f.Family)
	w, err := p.FontWeight(f.Weight)
	if err != nil {
		return f, err
	}
	f.Weight = w
	if f.Size, err = p.Length("font-size", f.Size); err != nil {
		return f, err
	}
	return f, nil
}
