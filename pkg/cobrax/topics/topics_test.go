package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource() fstest.MapFS {
	return fstest.MapFS{
		"help/pattern.md":         {Data: []byte("# Pattern\n\nNames start with DD.MM.YY")},
		"help/limitations.txt":    {Data: []byte("Years always land in 20xx")},
		"help/option-dry-run.txt": {Data: []byte("Nothing is changed")},
		"help/notes.json":         {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	tm := New(testSource(), Options{})
	require.NoError(t, tm.Load())

	assert.Equal(t, []string{"limitations", "option-dry-run", "pattern"}, tm.ListTopics())

	topic, ok := tm.GetTopic("pattern")
	require.True(t, ok)
	assert.Equal(t, "help/pattern.md", topic.FilePath)

	_, ok = tm.GetTopic("notes")
	assert.False(t, ok, "json is not a topic extension")

	topic, ok = tm.GetTopic("--dry-run")
	require.True(t, ok)
	assert.Equal(t, "Nothing is changed", topic.Content)
}

func TestTopicManager_CustomExtensions(t *testing.T) {
	tm := New(testSource(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.Load())
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestTopicManager_NilSource(t *testing.T) {
	tm := New(nil, Options{})
	require.NoError(t, tm.Load())
	assert.Empty(t, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "redate", Short: "root help text"}
	root.AddCommand(&cobra.Command{Use: "scan", Short: "scan help text", Run: func(*cobra.Command, []string) {}})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	_, err := Initialize(root, testSource(), Options{})
	require.NoError(t, err)
	return root, &out
}

func TestInitialize_HelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic", []string{"help", "limitations"}, "Years always land in 20xx"},
		{"option_topic", []string{"help", "--dry-run"}, "Nothing is changed"},
		{"list", []string{"help", "topics"}, "--dry-run"},
		{"command", []string{"help", "scan"}, "scan help text"},
		{"root", []string{"help"}, "root help text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestInitialize_TopicList(t *testing.T) {
	root, out := newRoot(t)
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())

	text := out.String()
	assert.Less(t, strings.Index(text, "General topics:"), strings.Index(text, "Option topics:"))
	assert.Contains(t, text, "Use 'redate help <topic>'")
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 60}

	assert.Equal(t, "plain", r.Render("plain", ".txt"))
	out := r.Render("# Title\n\nbody", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body")
}
