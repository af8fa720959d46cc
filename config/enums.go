package config

import "chartstyle/css"

//go:generate go tool go-enum --marshal --names

// How malformed stylesheet fragments are treated.
// ENUM(lossy, strict)
type ParseMode int

// ParserOptions translates mode into css parser options.
func (m ParseMode) ParserOptions() []css.ParserOption {
	return []css.ParserOption{css.WithStrict(m == ParseModeStrict)}
}
