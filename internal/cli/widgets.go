package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/layout"
	"github.com/arthur-debert/clio/pkg/lists"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/menu"
	"github.com/arthur-debert/clio/pkg/style"
	"github.com/arthur-debert/clio/pkg/tables"
)

// styleFlags are the attribute flags of the widget commands. Only flags
// given on the command line end up in the style.
type styleFlags struct {
	bold, underline bool
	fg, bg          string
}

func (s *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.bold, "bold", false, MsgFlagBold)
	cmd.Flags().BoolVar(&s.underline, "underline", false, MsgFlagUnderline)
	cmd.Flags().StringVar(&s.fg, "fg", "", MsgFlagFg)
	cmd.Flags().StringVar(&s.bg, "bg", "", MsgFlagBg)
}

// build returns the style, starting from base when no flag is given.
func (s *styleFlags) build(cmd *cobra.Command, base *style.Style) (*style.Style, error) {
	st := base
	if st == nil {
		st = style.New()
	}
	flags := cmd.Flags()
	if flags.Changed("bold") {
		st.SetBold(s.bold)
	}
	if flags.Changed("underline") {
		st.SetUnderline(s.underline)
	}
	if flags.Changed("fg") {
		fg, err := color.Parse(s.fg)
		if err != nil {
			return nil, err
		}
		st.SetTextColor(fg)
	}
	if flags.Changed("bg") {
		bg, err := color.Parse(s.bg)
		if err != nil {
			return nil, err
		}
		st.SetFillColor(bg)
	}
	return st, nil
}

func newTitleCmd(g *globals) *cobra.Command {
	var align string
	sf := &styleFlags{}

	cmd := &cobra.Command{
		Use:     "title [text...]",
		Short:   MsgTitleShort,
		GroupID: "widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, false)
			if err != nil {
				return err
			}
			st, err := sf.build(cmd, style.New().SetBold(true))
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			layout.NewTitle(c, markup.ParseJustification(align), st).Display(text)
			return finish(c)
		},
	}

	cmd.Flags().StringVarP(&align, "align", "a", "center", MsgFlagAlign)
	_ = cmd.RegisterFlagCompletionFunc("align", completeAlign)
	sf.register(cmd)
	return cmd
}

func newParagraphCmd(g *globals) *cobra.Command {
	var interpret bool
	sf := &styleFlags{}

	cmd := &cobra.Command{
		Use:     "paragraph [text...]",
		Short:   MsgParagraphShort,
		GroupID: "widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, interpret)
			if err != nil {
				return err
			}
			st, err := sf.build(cmd, nil)
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			layout.NewParagraph(c, st).Display(text)
			return finish(c)
		},
	}

	cmd.Flags().BoolVarP(&interpret, "escapes", "e", false, MsgFlagEscapes)
	sf.register(cmd)
	return cmd
}

// listItem is an item with its nesting level: two leading spaces per level.
type listItem struct {
	level int
	text  string
}

func parseItems(args []string) []listItem {
	items := make([]listItem, 0, len(args))
	for _, arg := range args {
		trimmed := strings.TrimLeft(arg, " ")
		items = append(items, listItem{
			level: (len(arg) - len(trimmed)) / 2,
			text:  trimmed,
		})
	}
	return items
}

// lister is what the list command needs of both list kinds.
type lister interface {
	start(intro string)
	item(text string)
	end()
	nesting() int
}

type orderedLister struct{ *lists.Ordered }

func (o orderedLister) start(intro string) { o.Start(intro) }
func (o orderedLister) item(text string)   { o.Item(text) }
func (o orderedLister) end()               { o.End() }
func (o orderedLister) nesting() int       { return o.Nesting() }

type unorderedLister struct{ *lists.Unordered }

func (u unorderedLister) start(intro string) { u.Start(intro) }
func (u unorderedLister) item(text string)   { u.Item(text) }
func (u unorderedLister) end()               { u.End() }
func (u unorderedLister) nesting() int       { return u.Nesting() }

// drawList opens and closes levels to follow the item levels.
func drawList(l lister, intro string, items []listItem) {
	l.start(intro)
	for _, it := range items {
		for l.nesting() < it.level+1 {
			l.start("")
		}
		for l.nesting() > it.level+1 {
			l.end()
		}
		l.item(it.text)
	}
	for l.nesting() > 0 {
		l.end()
	}
}

func newListCmd(g *globals) *cobra.Command {
	var ordered bool
	var bullet, intro string

	cmd := &cobra.Command{
		Use:     "list item...",
		Short:   MsgListShort,
		Long:    MsgListShort + ". Items starting with two spaces per level are nested.",
		GroupID: "widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrNoItems)
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			var l lister
			if ordered {
				l = orderedLister{lists.NewOrdered(c)}
			} else {
				l = unorderedLister{lists.NewUnordered(c).SetBullet(bullet)}
			}
			drawList(l, intro, parseItems(args))
			return finish(c)
		},
	}

	cmd.Flags().BoolVarP(&ordered, "ordered", "o", false, MsgFlagOrdered)
	cmd.Flags().StringVarP(&bullet, "bullet", "b", lists.DefaultBullet, MsgFlagBullet)
	cmd.Flags().StringVarP(&intro, "intro", "i", "", MsgFlagIntro)
	return cmd
}

func newTableCmd(g *globals) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "table FILE|-",
		Short:   MsgTableShort,
		Long:    MsgTableLong,
		Example: MsgTableExample,
		GroupID: "widgets",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0], format)
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			if err := doc.Draw(c); err != nil {
				return err
			}
			return finish(c)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(tables.YAML), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(tables.YAML), string(tables.TOML)}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func readDocument(cmd *cobra.Command, path, format string) (*tables.Document, error) {
	if path != "-" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotFound, "cannot read %s", path)
		}
		return tables.LoadDocument(path)
	}
	f := tables.Format(strings.ToLower(format))
	if f != tables.YAML && f != tables.TOML {
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrBadFormat, format)
	}
	data, err := readAll(cmd)
	if err != nil {
		return nil, err
	}
	return tables.ParseDocument(data, f)
}

func newChooseCmd(g *globals) *cobra.Command {
	var def, title string

	cmd := &cobra.Command{
		Use:     "choose choice...",
		Short:   MsgChooseShort,
		Long:    MsgChooseLong,
		GroupID: "widgets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrNoChoices)
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			answer, err := choose(c, title, args, def)
			if err != nil {
				c.Clear(true)
				return err
			}
			c.Line(answer)
			return finish(c)
		},
	}

	cmd.Flags().StringVarP(&def, "default", "d", "", MsgFlagDefault)
	cmd.Flags().StringVarP(&title, "title", "t", menu.DefaultTitle, MsgFlagMenuTitle)
	return cmd
}

func choose(c *clio.Clio, title string, choices []string, def string) (string, error) {
	m := menu.New(c)
	m.Title = title
	return m.Select(choices, def)
}
