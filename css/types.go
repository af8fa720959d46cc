package css

import (
	"fmt"
	"unicode"
)

// Value is a raw property value classified by its leading token.
type Value struct {
	Raw     string  // Original value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "center", "#ff0000", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	// If there's a unit, it's definitely numeric
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	// Handles "0"
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Color is a normalized RGBA color, every component in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGBA returns components as a tuple, convenient for drawing surfaces.
func (c Color) RGBA() (r, g, b, a float64) {
	return c.R, c.G, c.B, c.A
}

// Valid reports whether every component is within [0,1].
func (c Color) Valid() bool {
	for _, v := range [...]float64{c.R, c.G, c.B, c.A} {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A))
}

func toByte(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}

// Font is a resolved font description.
type Font struct {
	Family string
	Weight FontWeight
	Slant  FontSlant
	Size   float64 // 0 when not specified
}
