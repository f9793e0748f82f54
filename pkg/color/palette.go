package color

// palette is the xterm 256 color table: sixteen system colors, a 6x6x6
// cube and a 24 step gray ramp.
var palette = buildPalette()

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

func buildPalette() [256]Color {
	var p [256]Color
	system := [16][3]uint8{
		{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
		{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range system {
		p[i] = New(c[0], c[1], c[2])
	}
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[16+36*r+6*g+b] = New(cubeLevels[r], cubeLevels[g], cubeLevels[b])
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p[232+i] = New(v, v, v)
	}
	return p
}

// Palette returns entry i of the xterm 256 color table.
func Palette(i uint8) Color {
	return palette[i]
}
