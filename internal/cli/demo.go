package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/layout"
	"github.com/arthur-debert/clio/pkg/lists"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
	"github.com/arthur-debert/clio/pkg/tables"
)

const demoParagraph = "Text is **wrapped** at the session width and __justified__ " +
	"without counting the markup symbols, so styled text lines up with plain text. " +
	"Symbols may **nest __inside__ each other** and stay open across lines."

func newDemoCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Short:   MsgDemoShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			demo(c)
			return finish(c)
		},
	}
}

// demo draws one of each widget.
func demo(c *clio.Clio) {
	heading := style.New().SetBold(true).SetUnderline(true)
	title := layout.NewTitle(c, markup.Left, heading)

	layout.NewTitle(c, markup.Center, style.New().SetBold(true).SetColors(color.Named("white"), color.Named("navy"))).
		Display("clio")

	title.Display("Markup")
	layout.NewParagraph(c, nil).Display(demoParagraph)
	c.Style("Scoped styles", style.New().SetTextColor(color.Named("darkorange"))).
		Line(" leave the surrounding style untouched.")

	title.Display("Lists")
	ordered := lists.NewOrdered(c)
	ordered.Start("Steps:").Item("Register markup symbols").Item("Display text")
	ordered.Start("").Item("Symbols toggle styles").Item("Clear closes them").End()
	ordered.Item("Draw widgets").End()
	lists.NewUnordered(c).SetBullet("*").Start("").Item("Unordered lists take any bullet").End()

	title.Display("Tables")
	price := tables.NewColumn("Price", 0)
	price.SetJustification(markup.Right)
	bar := tables.NewBar(c, tables.NewColumn("Item", 0), price)
	bar.SetTitle("Groceries")
	bar.Draw([][]string{{"Apples", "3.20"}, {"**Bread**", "2.10"}, {"Coffee", "11.90"}})
	c.NewLine(1)

	alternating := tables.NewAlternating(c, tables.NewColumn("Mode", 0), tables.NewColumn("Colors", 0))
	alternating.Draw([][]string{
		{"plain", "none"},
		{"vt100", "16"},
		{"xterm", "256"},
		{"rgb", "16 million"},
	})
}
