package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// token is a significant (non whitespace, non comment) lexer token.
type token struct {
	tt   css.TokenType
	data string
}

// tokenize splits a raw property value into significant tokens.
func tokenize(raw string) []token {
	l := css.NewLexer(parse.NewInputString(raw))
	var tokens []token
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return tokens
		case css.WhitespaceToken, css.CommentToken:
			continue
		}
		tokens = append(tokens, token{tt: tt, data: string(data)})
	}
}

// ClassifyValue converts a raw property string into a Value.
func ClassifyValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	val := Value{Raw: raw}

	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return val
	}

	// Handle single token cases
	if len(tokens) == 1 {
		t := tokens[0]
		switch t.tt {
		case css.DimensionToken:
			val.Value, val.Unit = parseDimension(t.data)
		case css.PercentageToken:
			val.Value, _ = strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
			val.Unit = "%"
		case css.NumberToken:
			val.Value, _ = strconv.ParseFloat(t.data, 64)
		case css.IdentToken:
			val.Keyword = strings.ToLower(t.data)
		case css.StringToken:
			val.Keyword = unquote(t.data)
		case css.HashToken:
			val.Keyword = t.data
		default:
			val.Keyword = raw
		}
		return val
	}

	// Functions (rgb(), url()...) and multi-value properties keep the raw text
	val.Keyword = raw
	return val
}

// parseDimension splits dimension token into numeric value and unit.
func parseDimension(s string) (float64, string) {
	numEnd := parse.Number([]byte(s))
	if numEnd == 0 {
		return 0, ""
	}

	num, _ := strconv.ParseFloat(s[:numEnd], 64)
	unit := strings.ToLower(s[numEnd:])
	return num, unit
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// lengthUnits maps supported units to device pixels.
var lengthUnits = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 4.0 / 3.0,
}

// ParseLength parses a bare number or a number with a px/pt unit into pixels.
func ParseLength(raw string) (float64, error) {
	tokens := tokenize(raw)
	if len(tokens) != 1 {
		return 0, fmt.Errorf("expected single length, got %d tokens", len(tokens))
	}
	t := tokens[0]
	switch t.tt {
	case css.NumberToken:
		return strconv.ParseFloat(t.data, 64)
	case css.DimensionToken:
		v, unit := parseDimension(t.data)
		factor, ok := lengthUnits[unit]
		if !ok {
			return 0, fmt.Errorf("unsupported unit: %s", unit)
		}
		return v * factor, nil
	}
	return 0, fmt.Errorf("not a length")
}

var alignKeywords = map[string]float64{
	"left":   0.0,
	"top":    0.0,
	"middle": 0.5,
	"center": 0.5,
	"centre": 0.5,
	"bottom": 1.0,
	"right":  1.0,
}

// ParseAlign interprets a fraction, a percentage or a placement keyword as a
// number in [0,1]. Values outside of that range are errors, not clamped.
func ParseAlign(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	var (
		val float64
		err error
	)
	if num, found := strings.CutSuffix(raw, "%"); found {
		if val, err = strconv.ParseFloat(strings.TrimSpace(num), 64); err != nil {
			return 0, err
		}
		val /= 100.0
	} else if kw, ok := alignKeywords[strings.ToLower(raw)]; ok {
		val = kw
	} else if val, err = strconv.ParseFloat(raw, 64); err != nil {
		return 0, fmt.Errorf("neither keyword nor number")
	}

	if math.IsNaN(val) || val < 0 || val > 1 {
		return 0, fmt.Errorf("%v is outside of [0,1]", val)
	}
	return val, nil
}

// namedColors is a small set of keywords charts commonly use.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"lime":    "#00ff00",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"brown":   "#a52a2a",
	"pink":    "#ffc0cb",

	"transparent": "#0000",
}

// ParseColor parses a CSS color into normalized RGBA.
// Supports: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r,g,b), rgba(r,g,b,a), color keywords.
// Hex pairs decode as pair/255; missing alpha means fully opaque.
func ParseColor(raw string) (Color, error) {
	raw = strings.TrimSpace(raw)
	if hex, ok := namedColors[strings.ToLower(raw)]; ok {
		raw = hex
	}

	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "rgb(") || strings.HasPrefix(lower, "rgba(") {
		return parseRGBFunc(lower)
	}

	hex, found := strings.CutPrefix(raw, "#")
	if !found {
		return Color{}, fmt.Errorf("unsupported color format")
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return Color{}, fmt.Errorf("invalid hex digit %q", r)
		}
	}

	var rgb, alpha string
	switch len(hex) {
	case 3, 6:
		rgb, alpha = hex, "ff"
	case 4:
		rgb, alpha = hex[:3], strings.Repeat(hex[3:], 2)
	case 8:
		rgb, alpha = hex[:6], hex[6:]
	default:
		return Color{}, fmt.Errorf("hex color must have 3, 4, 6 or 8 digits, not %d", len(hex))
	}

	c, err := colorful.Hex("#" + rgb)
	if err != nil {
		return Color{}, err
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: float64(a) / 255.0}, nil
}

// parseRGBFunc handles rgb(r,g,b) with 0-255 components and rgba(r,g,b,a)
// with alpha in [0,1].
func parseRGBFunc(lower string) (Color, error) {
	name, inner, _ := strings.Cut(lower, "(")
	inner = strings.TrimSuffix(strings.TrimSpace(inner), ")")
	parts := strings.Split(inner, ",")

	want := 3
	if name == "rgba" {
		want = 4
	}
	if len(parts) != want {
		return Color{}, fmt.Errorf("%s() needs %d components, got %d", name, want, len(parts))
	}

	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, err
		}
		vals[i] = v
	}

	c := Color{R: vals[0] / 255.0, G: vals[1] / 255.0, B: vals[2] / 255.0, A: 1}
	if want == 4 {
		c.A = vals[3]
	}
	if !c.Valid() {
		return Color{}, fmt.Errorf("%s() component out of range", name)
	}
	return c, nil
}

// parseWeight maps CSS font-weight values onto the two weights charts use.
// Numeric weights follow the usual convention: 600 and above is bold.
func parseWeight(raw string) (FontWeight, error) {
	kw := strings.ToLower(strings.TrimSpace(raw))
	switch kw {
	case "normal", "lighter":
		return FontWeightNormal, nil
	case "bold", "bolder":
		return FontWeightBold, nil
	}
	if n, err := strconv.Atoi(kw); err == nil && n >= 1 && n <= 1000 {
		if n >= 600 {
			return FontWeightBold, nil
		}
		return FontWeightNormal, nil
	}
	return FontWeightNormal, fmt.Errorf("unknown font weight")
}

// fontShorthand holds what could be extracted from a "font" property.
type fontShorthand struct {
	weight    FontWeight
	hasWeight bool
	size      float64
	families  []string
}

// parseFontShorthand understands "[style] [weight] [size[/line-height]] family[, family]*".
// Slant keywords are accepted but ignored.
func parseFontShorthand(raw string) (fontShorthand, error) {
	var (
		fs       fontShorthand
		family   []string
		seenSize bool
		skipNext bool
	)
	flush := func() {
		if len(family) > 0 {
			fs.families = append(fs.families, strings.Join(family, " "))
			family = family[:0]
		}
	}

	for _, t := range tokenize(raw) {
		if skipNext {
			skipNext = false
			continue
		}
		switch t.tt {
		case css.IdentToken:
			kw := strings.ToLower(t.data)
			if !seenSize && len(family) == 0 {
				switch kw {
				case "italic", "oblique":
					continue
				case "normal", "bold", "bolder", "lighter":
					fs.weight, _ = parseWeight(kw)
					fs.hasWeight = true
					continue
				}
			}
			family = append(family, t.data)
		case css.StringToken:
			family = append(family, unquote(t.data))
		case css.NumberToken:
			if seenSize {
				return fs, fmt.Errorf("unexpected number %q", t.data)
			}
			w, err := parseWeight(t.data)
			if err != nil {
				return fs, err
			}
			fs.weight, fs.hasWeight = w, true
		case css.DimensionToken:
			if seenSize {
				return fs, fmt.Errorf("unexpected dimension %q", t.data)
			}
			size, err := ParseLength(t.data)
			if err != nil {
				return fs, err
			}
			fs.size, seenSize = size, true
		case css.DelimToken:
			if t.data == "/" && seenSize {
				// line-height is not part of a chart font
				skipNext = true
				continue
			}
			return fs, fmt.Errorf("unexpected %q", t.data)
		case css.CommaToken:
			flush()
		default:
			return fs, fmt.Errorf("unexpected %q", t.data)
		}
	}
	flush()
	return fs, nil
}

// splitFamilies splits a font-family list and strips quotes.
func splitFamilies(raw string) []string {
	var out []string
	for f := range strings.SplitSeq(raw, ",") {
		if f = unquote(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
