package redate

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/redate/pkg/testutil"
	"github.com/spf13/cobra/doc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with stdin and returns what it wrote to stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--log-file", "-", "--format", "text"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScanCmd(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	out, err := execute(t, "", "scan", tree.Root)
	require.NoError(t, err)

	assert.Contains(t, out, "Scan of "+tree.Root)
	assert.Contains(t, out, "# 12.05.23 folder-0\n")
	assert.Contains(t, out, "- "+filepath.Join("12.05.23 folder-0", "12.05.23 file-0.txt"))
	assert.Contains(t, out, "@ "+filepath.Join("12.05.23 shortcuts", "12.05.23 shortcut_to_file_0.lnk"))
	assert.Contains(t, out, "3 entries to rename, 1 shortcut to relink, 0 already converted")
	assert.True(t, tree.Exists("12.05.23 folder-0"), "scan must not change anything")
}

func TestScanCmd_MissingDirectory(t *testing.T) {
	_, err := execute(t, "", "scan", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DIRECTORY_NOT_FOUND")
}

func TestRunCmd(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	out, err := execute(t, "", "run", tree.Root, "--yes")
	require.NoError(t, err)

	assert.True(t, tree.Exists("2023.05.12 folder-0/2023.05.12 file-0.txt"))
	rel := "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"
	assert.Equal(t, tree.Path("2023.05.12 folder-0/2023.05.12 file-0.txt"), tree.Target(rel))

	content, err := os.ReadFile(tree.Path(rel))
	require.NoError(t, err)
	assert.Equal(t, "file 0", string(content))

	assert.Contains(t, out, "3 total, 3 succeeded, 0 failed, 0 skipped")
	assert.Contains(t, out, "1 total, 1 succeeded, 0 failed, 0 skipped")
}

func TestRunCmd_DryRun(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	out, err := execute(t, "", "run", tree.Root, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, MsgDryRunNotice)
	assert.Contains(t, out, "(dry run)")
	assert.True(t, tree.Exists("12.05.23 folder-0/12.05.23 file-0.txt"))
	assert.False(t, tree.Exists("2023.05.12 folder-0"))
	assert.Equal(t, tree.Path("12.05.23 folder-0/12.05.23 file-0.txt"),
		tree.Target("12.05.23 shortcuts/12.05.23 shortcut_to_file_0.lnk"))
}

func TestRunCmd_JSON(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"run", tree.Root, "--yes", "--log-file", "-", "--format", "json"})
	require.NoError(t, rootCmd.Execute())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded), out.String())
	assert.Contains(t, decoded, "renames")
	assert.Contains(t, decoded, "relinks")
}

func TestRenameCmd_Confirmation(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		renamed bool
	}{
		{"yes", "y\n", true},
		{"yes_word", "YES\n", true},
		{"no", "n\n", false},
		{"empty", "\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := testutil.NewOSTree(t).SampleTree()

			out, err := execute(t, tt.answer, "rename", tree.Root)
			require.NoError(t, err)

			assert.Contains(t, out, "Rename 3 entries under "+tree.Root+"? [y/N]: ")
			assert.Equal(t, tt.renamed, tree.Exists("2023.05.12 folder-0"))
			if !tt.renamed {
				assert.Contains(t, out, MsgAborted)
			}
		})
	}
}

func TestRenameCmd_NothingToDo(t *testing.T) {
	tree := testutil.NewOSTree(t)
	tree.File("2023.05.12 done.txt", "")

	out, err := execute(t, "", "rename", tree.Root)
	require.NoError(t, err)
	assert.Contains(t, out, MsgNothingToDo)
}

func TestRelinkCmd_BeforeRenameFails(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	out, err := execute(t, "", "relink", tree.Root, "--yes")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "1 of 1 entries failed")
	assert.Contains(t, out, "TARGET_PARENT_MISSING")
	assert.Equal(t, tree.Path("12.05.23 folder-0/12.05.23 file-0.txt"),
		tree.Target("12.05.23 shortcuts/12.05.23 shortcut_to_file_0.lnk"))
}

func TestRenameThenRelinkCmds(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	_, err := execute(t, "", "rename", tree.Root, "-y")
	require.NoError(t, err)
	out, err := execute(t, "", "relink", tree.Root, "-y")
	require.NoError(t, err)

	assert.Contains(t, out, "Relink")
	assert.Equal(t, tree.Path("2023.05.12 folder-0/2023.05.12 file-0.txt"),
		tree.Target("2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"))
}

func TestMenuCmd(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	stdin := strings.Join([]string{
		"x",
		"s",
		`"` + tree.Root + `"`,
		"a",
		tree.Root,
		"y",
		"q",
	}, "\n") + "\n"

	out, err := execute(t, stdin, "menu")
	require.NoError(t, err)

	assert.Contains(t, out, MsgMenuTitle)
	assert.Contains(t, out, `Unknown action "x"`)
	assert.Contains(t, out, "Scan of "+tree.Root)
	assert.Contains(t, out, "(dry run)", "a preview is shown before confirming")
	assert.Contains(t, out, "Process 4 entries under "+tree.Root)
	assert.Contains(t, out, MsgMenuBye)

	assert.True(t, tree.Exists("2023.05.12 folder-0/2023.05.12 file-0.txt"))
	assert.Equal(t, tree.Path("2023.05.12 folder-0/2023.05.12 file-0.txt"),
		tree.Target("2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"))
}

func TestMenuCmd_DeclineAndEOF(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()

	out, err := execute(t, "r\n"+tree.Root+"\nn\n", "menu")
	require.NoError(t, err)

	assert.Contains(t, out, MsgAborted)
	assert.Contains(t, out, MsgMenuBye)
	assert.True(t, tree.Exists("12.05.23 folder-0"))
}

func TestMenuCmd_BadDirectoryContinues(t *testing.T) {
	out, err := execute(t, "s\n"+filepath.Join(t.TempDir(), "missing")+"\nq\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, MsgMenuBye)
}

func TestGenConfigCmd(t *testing.T) {
	out, err := execute(t, "", "genconfig", "--pattern", "[0-3][0-9].[0-1][0-9].[0-9][0-9]_*")
	require.NoError(t, err)
	assert.Contains(t, out, "[scan]")
	assert.Contains(t, out, `[0-3][0-9].[0-1][0-9].[0-9][0-9]_*`)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = execute(t, "", "genconfig", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	_, err = os.Stat(target)
	require.NoError(t, err)

	_, err = execute(t, "", "genconfig", "-o", target)
	assert.Error(t, err, "existing file needs --force")
	_, err = execute(t, "", "genconfig", "-o", target, "--force")
	assert.NoError(t, err)
}

func TestCustomPatternFlag(t *testing.T) {
	tree := testutil.NewOSTree(t)
	tree.File("12.05.23_report.txt", "")
	tree.File("13.05.23 spaced.txt", "")

	_, err := execute(t, "", "rename", tree.Root, "-y", "--pattern", "[0-3][0-9].[0-1][0-9].[0-9][0-9]_*")
	require.NoError(t, err)

	assert.True(t, tree.Exists("2023.05.12_report.txt"))
	assert.True(t, tree.Exists("13.05.23 spaced.txt"))
}

func TestInvalidFlagValue(t *testing.T) {
	tree := testutil.NewOSTree(t)

	_, err := execute(t, "", "scan", tree.Root, "--mode", "atomic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestHelpTopics(t *testing.T) {
	out, err := execute(t, "", "help", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "pattern")
	assert.Contains(t, out, "dry-run")

	out, err = execute(t, "", "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "Available help topics")
}

func TestNoSubcommand(t *testing.T) {
	_, err := execute(t, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoSubcommand)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "redate version")
}

func TestCompletionCmd(t *testing.T) {
	out, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "redate")

	_, err = execute(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestManPage(t *testing.T) {
	var out bytes.Buffer
	header := &doc.GenManHeader{Title: "REDATE", Section: "1"}
	require.NoError(t, doc.GenMan(NewRootCmd(), header, &out))
	assert.Contains(t, out.String(), "redate")
}
