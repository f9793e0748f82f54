package color

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var ansiNames = []string{
	"ansiblack", "ansired", "ansigreen", "ansiyellow",
	"ansiblue", "ansimagenta", "ansicyan", "ansiwhite",
	"ansibrightblack", "ansibrightred", "ansibrightgreen", "ansibrightyellow",
	"ansibrightblue", "ansibrightmagenta", "ansibrightcyan", "ansibrightwhite",
}

// normalizeName lowercases a color name and drops spaces, underscores and
// hyphens, so "Dark Khaki", "dark_khaki" and "DarkKhaki" are the same name.
func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func lookup(name string) (Color, bool) {
	key := normalizeName(name)
	if key == "" {
		return Color{}, false
	}

	for i, n := range ansiNames {
		if n == key {
			c := palette[i]
			c.name = key
			return c, true
		}
	}

	if c, ok := grayLevel(key); ok {
		return c, true
	}

	if rgba, ok := colornames.Map[key]; ok {
		return Color{valid: true, r: rgba.R, g: rgba.G, b: rgba.B, name: key}, true
	}
	return Color{}, false
}

// grayLevel handles the X11 "grayN"/"greyN" percentages.
func grayLevel(key string) (Color, bool) {
	var digits string
	switch {
	case strings.HasPrefix(key, "gray"):
		digits = key[4:]
	case strings.HasPrefix(key, "grey"):
		digits = key[4:]
	default:
		return Color{}, false
	}
	if digits == "" {
		return Color{}, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 100 {
		return Color{}, false
	}
	v := uint8((n*255 + 49) / 100)
	return Color{valid: true, r: v, g: v, b: v, name: key}, true
}

// Names returns the W3C color names known to Parse, sorted.
func Names() []string {
	return colornames.Names
}
