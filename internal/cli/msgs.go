package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Style terminal text with markup and colors"
	MsgDisplayShort    = "Display text, interpreting its markup"
	MsgJustifyShort    = "Justify text to a width, ignoring markup"
	MsgWrapShort       = "Wrap text at a width, keeping markup"
	MsgStripShort      = "Remove the markup from text"
	MsgTitleShort      = "Display a title"
	MsgParagraphShort  = "Display a wrapped, styled paragraph"
	MsgListShort       = "Display a bulleted or numbered list"
	MsgTableShort      = "Draw a table from a YAML or TOML document"
	MsgChooseShort     = "Ask the user to pick one of several choices"
	MsgPaletteShort    = "Show the named colors or the xterm palette"
	MsgDemoShort       = "Show what clio can draw"
	MsgConfigShort     = "Inspect or create the configuration file"
	MsgConfigShowShort = "Print the merged configuration as TOML"
	MsgConfigInitShort = "Write a commented configuration file"
	MsgConfigPathShort = "Print the configuration file path"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgConfigWritten  = "Wrote %s\n"
	MsgConfigPath     = "%s\n"
	MsgConfigNotFound = "%s (not found)\n"
	MsgVersionFormat  = "clio version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoText     = "no text given"
	MsgErrNoChoices  = "no choices given"
	MsgErrNoItems    = "no items given"
	MsgErrBadFormat  = "unknown document format %q (yaml or toml)"
	MsgErrReadInput  = "failed to read standard input"
	MsgErrNoCommand  = "no command specified"
	MsgErrCompletion = "failed to generate %s completion"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default is $XDG_CONFIG_HOME/clio/config.toml)"
	MsgFlagMode      = "Color mode: auto, plain, vt100, xterm or rgb"
	MsgFlagWidth     = "Width in columns (0 uses the terminal width)"
	MsgFlagTextColor = "Default text color"
	MsgFlagFillColor = "Default fill color"
	MsgFlagNoNewline = "Do not end the output with a newline"
	MsgFlagEscapes   = "Interpret \\n and \\t in the text"
	MsgFlagAlign     = "Justification: left, center, right or none"
	MsgFlagColumns   = "Width to use instead of the session width"
	MsgFlagBold      = "Bold"
	MsgFlagUnderline = "Underline"
	MsgFlagFg        = "Text color"
	MsgFlagBg        = "Fill color"
	MsgFlagOrdered   = "Number the items"
	MsgFlagBullet    = "Bullet of unordered items"
	MsgFlagIntro     = "Line shown before the items"
	MsgFlagFormat    = "Document format for standard input: yaml or toml"
	MsgFlagDefault   = "Choice selected by an empty answer"
	MsgFlagMenuTitle = "Menu title"
	MsgFlagXTerm     = "Show the 256 color xterm palette"
	MsgFlagForce     = "Overwrite an existing file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/display-example.txt
	msgDisplayExampleRaw string
	MsgDisplayExample    = strings.TrimRight(msgDisplayExampleRaw, "\n")

	//go:embed msgs/table-long.txt
	msgTableLongRaw string
	MsgTableLong    = strings.TrimSpace(msgTableLongRaw)

	//go:embed msgs/table-example.txt
	msgTableExampleRaw string
	MsgTableExample    = strings.TrimRight(msgTableExampleRaw, "\n")

	//go:embed msgs/choose-long.txt
	msgChooseLongRaw string
	MsgChooseLong    = strings.TrimSpace(msgChooseLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
