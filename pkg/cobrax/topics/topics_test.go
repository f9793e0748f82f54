package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clio/pkg/terminal"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"markup.txt":           {Data: []byte("Use **stars** for bold")},
		"colors.md":            {Data: []byte("# Colors\n\nNamed colors")},
		"config.txxt":          {Data: []byte("Configuration Guide")},
		"ignore.json":          {Data: []byte("{}")},
		"option-mode.txt":      {Data: []byte("Mode help")},
		"option-verbose.txt":   {Data: []byte("Verbose help")},
		"advanced/plugins.txt": {Data: []byte("Plugin help")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"markup", true, "Use **stars** for bold"},
			{"colors", true, "# Colors\n\nNamed colors"},
			{"plugins", true, "Plugin help"},
			{"config", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.scanTopics())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.scanTopics())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"markup", "markup", true},
		{"option-mode", "option-mode", true},
		{"mode", "option-mode", true},
		{"--mode", "option-mode", true},
		{"-mode", "option-mode", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	var out bytes.Buffer
	tm.WriteList(&out, "clio")
	assert.Equal(t, `Available help topics:

General topics:
  colors
  markup
  plugins

Option topics:
  --mode
  --verbose

Use 'clio help <topic>' to read about a specific topic.
`, out.String())

	out.Reset()
	New(fstest.MapFS{}).WriteList(&out, "clio")
	assert.Equal(t, "No help topics available.\n", out.String())
}

func newRoot(out *bytes.Buffer) *cobra.Command {
	root := &cobra.Command{Use: "testapp", Short: "Test application"}
	root.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})
	root.SetOut(out)
	root.SetErr(out)
	return root
}

func TestInitialize(t *testing.T) {
	var out bytes.Buffer
	root := newRoot(&out)

	tm, err := Initialize(root, testFS())
	require.NoError(t, err)
	assert.Len(t, tm.ListTopics(), 5)

	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	root.SetArgs([]string{"help", "option-verbose"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Verbose help", out.String())

	out.Reset()
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "Available help topics:"))

	out.Reset()
	root.SetArgs([]string{"help", "show"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Show something")
}

func TestRenderers(t *testing.T) {
	plain := &PlainRenderer{}
	assert.Equal(t, "**x**", plain.Render("**x**", ".txt"))

	markup := &MarkupRenderer{Mode: terminal.Plain}
	assert.Equal(t, "bold x", markup.Render("**bold** x", ".txt"))
	assert.Equal(t, "**x**", markup.Render("**x**", ".md"))

	vt100 := &MarkupRenderer{Mode: terminal.VT100}
	assert.True(t, strings.HasPrefix(vt100.Render("**Hi**", ".txt"), "\x1b[1mHi\x1b[0m"))

	byFormat := &ByFormat{
		Formats: map[string]Renderer{".txt": markup},
		Default: plain,
	}
	assert.Equal(t, "x", byFormat.Render("**x**", ".txt"))
	assert.Equal(t, "**x**", byFormat.Render("**x**", ".md"))
	assert.Equal(t, "**x**", (&ByFormat{}).Render("**x**", ".txt"))
}

func TestGlamourRenderer(t *testing.T) {
	r := NewGlamourRendererWithWidth(40)
	r.Style = "notty"
	r.Fallback = &MarkupRenderer{Mode: terminal.Plain}

	assert.Equal(t, "bold", r.Render("**bold**", ".txt"))

	rendered := r.Render("# Colors\n\nNamed colors", ".md")
	assert.Contains(t, rendered, "Colors")
	assert.Contains(t, rendered, "Named colors")
}
