// Package color resolves color specifications into concrete RGB values and
// maps them onto the terminal palettes.
package color

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/arthur-debert/clio/pkg/errors"
)

// Color is a resolved color. The zero value is "not set".
type Color struct {
	valid   bool
	r, g, b uint8
	name    string
}

// New returns a valid color with the given components.
func New(r, g, b uint8) Color {
	return Color{valid: true, r: r, g: g, b: b}
}

// IsValid reports whether the color is set.
func (c Color) IsValid() bool {
	return c.valid
}

// RGB returns the color components. An invalid color returns zeros.
func (c Color) RGB() (r, g, b uint8) {
	return c.r, c.g, c.b
}

// Name returns the name the color was resolved from, or its hex form.
func (c Color) Name() string {
	if !c.valid {
		return ""
	}
	if c.name != "" {
		return c.name
	}
	return c.Hex()
}

// Hex returns the color as "#rrggbb", or "" when the color is not set.
func (c Color) Hex() string {
	if !c.valid {
		return ""
	}
	return c.colorful().Hex()
}

// Equal compares colors by value. Two unset colors are equal.
func (c Color) Equal(o Color) bool {
	if c.valid != o.valid {
		return false
	}
	if !c.valid {
		return true
	}
	return c.r == o.r && c.g == o.g && c.b == o.b
}

// XTermCode returns the index of the nearest entry of the 256 color xterm
// palette, or -1 when the color is not set.
func (c Color) XTermCode() int {
	if !c.valid {
		return -1
	}
	return nearest(c, palette[:])
}

// ANSICode returns the index (0-15) of the nearest of the sixteen system
// colors, or -1 when the color is not set.
func (c Color) ANSICode() int {
	if !c.valid {
		return -1
	}
	return nearest(c, palette[:16])
}

func (c Color) String() string {
	if !c.valid {
		return "none"
	}
	return c.Name()
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255.0,
		G: float64(c.g) / 255.0,
		B: float64(c.b) / 255.0,
	}
}

// nearest uses the squared euclidean distance in RGB space. Ties go to the
// lowest index, so exact system colors win over their cube duplicates.
func nearest(c Color, candidates []Color) int {
	best, bestDist := 0, -1
	for i, p := range candidates {
		dr := int(c.r) - int(p.r)
		dg := int(c.g) - int(p.g)
		db := int(c.b) - int(p.b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
		if d == 0 {
			break
		}
	}
	return best
}

// Spec is anything that resolves to a Color: Named, Index, RGB, Hex,
// Inherit or a Color itself.
type Spec interface {
	resolve() Color
}

// Named is a color name such as "dark khaki", "ansiRed" or "gray50".
type Named string

// Index is an entry of the 256 color xterm palette.
type Index uint8

// RGB is an explicit component triple.
type RGB struct {
	R, G, B uint8
}

// Hex is a "#rgb" or "#rrggbb" string.
type Hex string

type inherit struct{}

// Inherit resolves to an unset color.
var Inherit Spec = inherit{}

func (c Color) resolve() Color { return c }

func (n Named) resolve() Color {
	c, _ := lookup(string(n))
	return c
}

func (i Index) resolve() Color {
	return palette[i]
}

func (v RGB) resolve() Color {
	return New(v.R, v.G, v.B)
}

func (h Hex) resolve() Color {
	cf, err := colorful.Hex(strings.TrimSpace(string(h)))
	if err != nil {
		return Color{}
	}
	r, g, b := cf.RGB255()
	return New(r, g, b)
}

func (inherit) resolve() Color { return Color{} }

// Resolve turns a spec into a Color. Nil and unknown specs resolve to an
// unset color.
func Resolve(spec Spec) Color {
	if spec == nil {
		return Color{}
	}
	return spec.resolve()
}

// Parse reads a textual color: a name, "#hex", an xterm index (0-255) or an
// "r,g,b" triple. Empty strings, "none", "default" and "inherit" give an
// unset color.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "default", "inherit":
		return Color{}, nil
	}

	if strings.HasPrefix(s, "#") {
		if c := Hex(s).resolve(); c.IsValid() {
			return c, nil
		}
		return Color{}, errors.Newf(errors.ErrInvalidColor, "invalid hex color %q", s)
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return Color{}, errors.Newf(errors.ErrInvalidColor, "color index %d out of range 0-255", n)
		}
		return Index(n).resolve(), nil
	}

	if parts := strings.Split(s, ","); len(parts) == 3 {
		var comps [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, errors.Wrapf(err, errors.ErrInvalidColor, "invalid rgb color %q", s)
			}
			comps[i] = uint8(v)
		}
		return New(comps[0], comps[1], comps[2]), nil
	}

	c, ok := lookup(s)
	if !ok {
		return Color{}, errors.Newf(errors.ErrInvalidColor, "unknown color %q", s).
			WithDetail("color", s)
	}
	return c, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("color: %v", err))
	}
	return c
}
