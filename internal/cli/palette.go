package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
)

// swatchWidth is the width of one palette cell.
const swatchWidth = 22

func newPaletteCmd(g *globals) *cobra.Command {
	var xterm bool

	cmd := &cobra.Command{
		Use:     "palette [prefix]",
		Short:   MsgPaletteShort,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			var cells []color.Color
			if xterm {
				for i := 0; i < 256; i++ {
					cells = append(cells, color.Palette(uint8(i)))
				}
			} else {
				prefix := ""
				if len(args) == 1 {
					prefix = strings.ToLower(args[0])
				}
				for _, name := range color.Names() {
					if strings.HasPrefix(name, prefix) {
						cells = append(cells, color.MustParse(name))
					}
				}
			}
			drawPalette(c, cells, xterm)
			return finish(c)
		},
	}

	cmd.Flags().BoolVarP(&xterm, "xterm", "x", false, MsgFlagXTerm)
	return cmd
}

// drawPalette shows one cell per color, filled with it, as many per line
// as the width allows.
func drawPalette(c *clio.Clio, cells []color.Color, indexed bool) {
	width := swatchWidth
	if indexed {
		width = 5
	}
	perLine := max(1, c.Width()/width)

	var spans []clio.Span
	for i, col := range cells {
		label := col.Name()
		if indexed {
			label = fmt.Sprint(i)
		}
		label = c.MarkupDefinition().Justify(" "+label, markup.Left, width)
		spans = append(spans, clio.Span{
			Text:  label,
			Style: style.New().SetColors(contrast(col), col),
		})
		if (i+1)%perLine == 0 || i == len(cells)-1 {
			c.StyleSpans(spans...).Clear(true).NewLine(1)
			spans = spans[:0]
		}
	}
}

// contrast is black on light colors and white on dark ones.
func contrast(col color.Color) color.Color {
	r, g, b := col.RGB()
	if 299*int(r)+587*int(g)+114*int(b) > 128000 {
		return color.MustParse("black")
	}
	return color.MustParse("white")
}
