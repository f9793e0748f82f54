package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/clio/pkg/markup"
)

func newDisplayCmd(g *globals) *cobra.Command {
	var noNewline, interpret bool

	cmd := &cobra.Command{
		Use:     "display [text...]",
		Short:   MsgDisplayShort,
		Example: MsgDisplayExample,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, interpret)
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			c.Display(text)
			if !noNewline {
				c.NewLine(1)
			}
			return finish(c)
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.Flags().BoolVarP(&interpret, "escapes", "e", false, MsgFlagEscapes)
	return cmd
}

func newJustifyCmd(g *globals) *cobra.Command {
	var align string
	var width int

	cmd := &cobra.Command{
		Use:     "justify [text...]",
		Short:   MsgJustifyShort,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, false)
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			c.Line(c.Justify(text, markup.ParseJustification(align), width))
			return finish(c)
		},
	}

	cmd.Flags().StringVarP(&align, "align", "a", "left", MsgFlagAlign)
	cmd.Flags().IntVarP(&width, "columns", "c", 0, MsgFlagColumns)
	_ = cmd.RegisterFlagCompletionFunc("align", completeAlign)
	return cmd
}

func newWrapCmd(g *globals) *cobra.Command {
	var width int
	var interpret bool

	cmd := &cobra.Command{
		Use:     "wrap [text...]",
		Short:   MsgWrapShort,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, interpret)
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			c.Display(c.Wordwrap(text, width, true))
			return finish(c)
		},
	}

	cmd.Flags().IntVarP(&width, "columns", "c", 0, MsgFlagColumns)
	cmd.Flags().BoolVarP(&interpret, "escapes", "e", false, MsgFlagEscapes)
	return cmd
}

func newStripCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [text...]",
		Short:   MsgStripShort,
		GroupID: "text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args, false)
			if err != nil {
				return err
			}
			c, err := g.session(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.StripMarkup(text))
			return nil
		},
	}
}

func completeAlign(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"left", "center", "right", "none"}, cobra.ShellCompDirectiveNoFileComp
}
