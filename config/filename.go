package config

import (
	"strings"
	"unicode"
)

// defaultFileName is used when nothing usable is left of the source text.
const defaultFileName = "chartstyle"

// CleanFileName turns free text, usually an element path like
// "legend grid#x.major", into a base name for output files. Runs of spaces
// become a single '_', characters the platform does not allow are dropped and
// leading dots are trimmed so the result is never hidden.
func CleanFileName(in string) string {
	var b strings.Builder
	space := false
	for _, sym := range strings.TrimSpace(in) {
		switch {
		case unicode.IsSpace(sym):
			space = true
			continue
		case sym == 0 || strings.ContainsRune(forbiddenNameChars, sym):
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte('_')
		}
		space = false
		b.WriteRune(sym)
	}
	out := strings.TrimLeft(b.String(), "._")
	if len(out) == 0 {
		return defaultFileName
	}
	return out
}
