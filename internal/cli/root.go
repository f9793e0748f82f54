// Package cli builds the clio command line.
package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/clio/internal/version"
	"github.com/arthur-debert/clio/pkg/cobrax/topics"
	"github.com/arthur-debert/clio/pkg/config"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/logging"
	"github.com/arthur-debert/clio/pkg/terminal"
)

//go:embed topics
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "clio",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	g.register(rootCmd)

	rootCmd.AddGroup(&cobra.Group{ID: "text", Title: "TEXT:"})
	rootCmd.AddGroup(&cobra.Group{ID: "widgets", Title: "WIDGETS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDisplayCmd(g))
	rootCmd.AddCommand(newJustifyCmd(g))
	rootCmd.AddCommand(newWrapCmd(g))
	rootCmd.AddCommand(newStripCmd(g))
	rootCmd.AddCommand(newTitleCmd(g))
	rootCmd.AddCommand(newParagraphCmd(g))
	rootCmd.AddCommand(newListCmd(g))
	rootCmd.AddCommand(newTableCmd(g))
	rootCmd.AddCommand(newChooseCmd(g))
	rootCmd.AddCommand(newPaletteCmd(g))
	rootCmd.AddCommand(newDemoCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Help topics ship inside the binary. Text topics may use clio markup;
	// markdown goes through glamour.
	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		mode := terminal.DetectMode(os.Stdout)
		opts := topics.Options{
			Renderer: &topics.ByFormat{
				Formats: map[string]topics.Renderer{
					".md":  topics.NewGlamourRendererWithWidth(config.TerminalWidth(os.Stdout)),
					".txt": &topics.MarkupRenderer{Mode: mode},
				},
				Default: &topics.PlainRenderer{},
			},
		}
		_, _ = topics.InitializeWithOptions(rootCmd, sub, opts)
	}

	return rootCmd
}
