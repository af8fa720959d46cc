package css

//go:generate go tool go-enum --marshal --names

// Font weight as understood by drawing surfaces: only two values exist.
// ENUM(normal, bold)
type FontWeight int

// Font slant. Charts are drawn upright only.
// ENUM(normal)
type FontSlant int
