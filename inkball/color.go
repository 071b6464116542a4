package inkball

import "strings"

// Color is the gameplay tag carried by balls, walls, bricks and holes.
// Grey is the wildcard: it matches every other color in capture logic.
type Color int

const ColorInvalid Color = -1

const (
	Grey Color = iota
	Orange
	Blue
	Green
	Yellow
)

var colorNames = [...]string{"grey", "orange", "blue", "green", "yellow"}

// Colors lists every valid color in tag order.
func Colors() []Color {
	return []Color{Grey, Orange, Blue, Green, Yellow}
}

// ParseColor resolves a color name case-insensitively. Unknown names yield ColorInvalid.
func ParseColor(name string) Color {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i)
		}
	}
	return ColorInvalid
}

// colorFromDigit maps a layout digit '0'..'4' to its color.
func colorFromDigit(ch byte) (Color, bool) {
	if ch < '0' || ch > '4' {
		return ColorInvalid, false
	}
	return Color(ch - '0'), true
}

func (c Color) Valid() bool {
	return c >= Grey && c <= Yellow
}

func (c Color) IsWildcard() bool {
	return c == Grey
}

// Matches reports whether a ball of color c may be captured by a hole of color o.
func (c Color) Matches(o Color) bool {
	return c == o || c.IsWildcard() || o.IsWildcard()
}

func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}
