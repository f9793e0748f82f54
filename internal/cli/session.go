package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/config"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/logging"
)

// globals holds the persistent flags.
type globals struct {
	verbosity  int
	configPath string
	mode       string
	width      int
	textColor  string
	fillColor  string
}

// register adds the persistent flags to root.
func (g *globals) register(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&g.configPath, "config", "", MsgFlagConfig)
	flags.StringVar(&g.mode, "mode", "", MsgFlagMode)
	flags.IntVar(&g.width, "width", 0, MsgFlagWidth)
	flags.StringVar(&g.textColor, "text-color", "", MsgFlagTextColor)
	flags.StringVar(&g.fillColor, "fill-color", "", MsgFlagFillColor)

	_ = root.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "plain", "vt100", "xterm", "rgb"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// loadOptions turns the flags given on the command line into the config
// flag layer. Flags left at their defaults do not override other layers.
func (g *globals) loadOptions(cmd *cobra.Command) config.LoadOptions {
	values := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		values["mode"] = g.mode
	}
	if flags.Changed("width") {
		values["width"] = g.width
	}
	if flags.Changed("text-color") {
		values["text_color"] = g.textColor
	}
	if flags.Changed("fill-color") {
		values["fill_color"] = g.fillColor
	}
	return config.LoadOptions{Path: g.configPath, Flags: values}
}

// session opens a clio session on the command's output and input.
func (g *globals) session(cmd *cobra.Command) (*clio.Clio, error) {
	c, cfg, err := config.New(g.loadOptions(cmd), cmd.OutOrStdout(), cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("cli")
	logger.Debug().
		Str("command", cmd.Name()).
		Str("mode", c.Mode().String()).
		Int("width", c.Width()).
		Int("markup", len(cfg.Markup)).
		Msg("session opened")
	return c, nil
}

// finish resets the terminal styling and reports write errors.
func finish(c *clio.Clio) error {
	c.Clear(true)
	if err := c.Err(); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to write output")
	}
	return nil
}

var escapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)

// textArg joins args, or reads standard input when there are none or the
// only argument is "-".
func textArg(cmd *cobra.Command, args []string, interpret bool) (string, error) {
	var text string
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := readAll(cmd)
		if err != nil {
			return "", err
		}
		text = strings.TrimSuffix(string(data), "\n")
	} else {
		text = strings.Join(args, " ")
	}
	if interpret {
		text = escapes.Replace(text)
	}
	return text, nil
}

func readAll(cmd *cobra.Command) ([]byte, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadInput)
	}
	return data, nil
}
