package shortcut_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/renamer"
	"github.com/arthur-debert/redate/pkg/scanner"
	"github.com/arthur-debert/redate/pkg/shortcut"
	"github.com/arthur-debert/redate/pkg/testutil"
	"github.com/arthur-debert/redate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleFile     = "12.05.23 folder-0/12.05.23 file-0.txt"
	sampleShortcut = "12.05.23 shortcuts/12.05.23 shortcut_to_file_0.lnk"
	renamedFile    = "2023.05.12 folder-0/2023.05.12 file-0.txt"
)

// failingStore wraps a store and fails selected calls
type failingStore struct {
	shortcut.Store
	failCreate   bool
	wrongResolve bool
}

func (f *failingStore) Create(path, target string) error {
	if f.failCreate {
		return stderrors.New("disk full")
	}
	return f.Store.Create(path, target)
}

func (f *failingStore) Resolve(path string) (string, error) {
	if f.wrongResolve && strings.Contains(filepath.Base(path), ".tmp-") {
		return "/somewhere/else", nil
	}
	return f.Store.Resolve(path)
}

func shortcutEntry(tree *testutil.Tree, rel string) types.Entry {
	return types.Entry{Path: tree.Path(rel), Kind: types.KindShortcut}
}

func renameFiles(t *testing.T, tree *testutil.Tree) {
	t.Helper()
	logger, _ := testutil.NewLogger()
	result, err := scanner.New(tree.FS, logger).Scan(tree.Root, scanner.DefaultOptions())
	require.NoError(t, err)
	batch := renamer.New(tree.FS, logger, renamer.Options{}).RenameAll(result.Files)
	require.Equal(t, 0, batch.Summary().Failed)
}

func TestParseCommitMode(t *testing.T) {
	mode, err := shortcut.ParseCommitMode("")
	require.NoError(t, err)
	assert.Equal(t, shortcut.CommitReplace, mode)

	mode, err = shortcut.ParseCommitMode(" SAFE ")
	require.NoError(t, err)
	assert.Equal(t, shortcut.CommitSafe, mode)

	_, err = shortcut.ParseCommitMode("atomic")
	testutil.AssertErrorCode(t, err, errors.ErrInvalidInput)
}

func TestRelinkAll_AfterRename(t *testing.T) {
	for _, mode := range []shortcut.CommitMode{shortcut.CommitReplace, shortcut.CommitSafe} {
		t.Run(string(mode), func(t *testing.T) {
			tree := testutil.NewTree(t, "/data").SampleTree()
			renameFiles(t, tree)
			logger, _ := testutil.NewLogger()

			// the shortcut directory itself was renamed too
			entry := shortcutEntry(tree, "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk")
			r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{Mode: mode})
			batch := r.RelinkAll([]types.Entry{entry})

			require.Len(t, batch.Outcomes, 1)
			o := batch.Outcomes[0]
			require.NoError(t, o.Err)
			assert.Equal(t, entry.Path, o.NewPath)
			require.NotNil(t, o.Record)
			assert.Equal(t, tree.Path(sampleFile), o.Record.OldTarget)
			assert.Equal(t, tree.Path(renamedFile), o.Record.NewTarget)
			assert.Equal(t, tree.Path(renamedFile), tree.Target("2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"))

			entries, err := tree.FS.ReadDir(tree.Path("2023.05.12 shortcuts"))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "no temporary shortcut may be left behind")
		})
	}
}

func TestRelinkAll_BeforeRenameFails(t *testing.T) {
	tree := testutil.NewTree(t, "/data").SampleTree()
	logger, _ := testutil.NewLogger()

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{})
	batch := r.RelinkAll([]types.Entry{shortcutEntry(tree, sampleShortcut)})

	require.Len(t, batch.Outcomes, 1)
	assert.Equal(t, errors.ErrTargetParentMissing, batch.Outcomes[0].ErrorCode())
	assert.Equal(t, tree.Path(sampleFile), tree.Target(sampleShortcut), "shortcut must be untouched")
}

func TestRelinkAll_Unresolvable(t *testing.T) {
	tree := testutil.NewTree(t, "/data")
	tree.Dir("12.05.23 folder.lnk")
	tree.File("12.05.23 plain.lnk", "/data/12.05.23 target.txt")
	logger, _ := testutil.NewLogger()

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{})
	batch := r.RelinkAll([]types.Entry{
		shortcutEntry(tree, "12.05.23 folder.lnk"),
		shortcutEntry(tree, "12.05.23 plain.lnk"),
		shortcutEntry(tree, "12.05.23 missing.lnk"),
	})

	assert.Equal(t, types.Summary{Total: 3, Failed: 3}, batch.Summary())
	for _, o := range batch.Outcomes {
		assert.Equal(t, errors.ErrUnresolvableShortcut, o.ErrorCode())
		assert.Nil(t, o.Record)
	}
}

func TestRelinkAll_TargetWithoutDateIsSkipped(t *testing.T) {
	tree := testutil.NewTree(t, "/data")
	target := tree.File("docs/readme.md", "")
	tree.Shortcut("12.05.23 readme.lnk", target)
	logger, _ := testutil.NewLogger()

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{})
	batch := r.RelinkAll([]types.Entry{shortcutEntry(tree, "12.05.23 readme.lnk")})

	assert.Equal(t, types.Summary{Total: 1, Skipped: 1}, batch.Summary())
	assert.Equal(t, target, tree.Target("12.05.23 readme.lnk"))
}

func TestRelinkAll_ReplaceModeCreateFailureLosesShortcut(t *testing.T) {
	tree := testutil.NewTree(t, "/data").SampleTree()
	renameFiles(t, tree)
	logger, _ := testutil.NewLogger()
	rel := "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"

	store := &failingStore{Store: shortcut.NewSymlinkStore(tree.FS), failCreate: true}
	r := shortcut.New(tree.FS, store, logger, shortcut.Options{Mode: shortcut.CommitReplace})
	batch := r.RelinkAll([]types.Entry{shortcutEntry(tree, rel)})

	o := batch.Outcomes[0]
	assert.Equal(t, errors.ErrShortcutCommitFailure, o.ErrorCode())
	assert.Equal(t, true, errors.GetErrorDetails(o.Err)["shortcut_lost"])
	assert.False(t, tree.Exists(rel))
}

func TestRelinkAll_SafeModeKeepsShortcutOnFailure(t *testing.T) {
	tests := []struct {
		name  string
		store func(shortcut.Store) shortcut.Store
	}{
		{"create_fails", func(s shortcut.Store) shortcut.Store { return &failingStore{Store: s, failCreate: true} }},
		{"verify_fails", func(s shortcut.Store) shortcut.Store { return &failingStore{Store: s, wrongResolve: true} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := testutil.NewTree(t, "/data").SampleTree()
			renameFiles(t, tree)
			logger, _ := testutil.NewLogger()
			rel := "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"

			r := shortcut.New(tree.FS, tt.store(shortcut.NewSymlinkStore(tree.FS)), logger,
				shortcut.Options{Mode: shortcut.CommitSafe})
			batch := r.RelinkAll([]types.Entry{shortcutEntry(tree, rel)})

			o := batch.Outcomes[0]
			assert.Equal(t, errors.ErrShortcutCommitFailure, o.ErrorCode())
			assert.Equal(t, false, errors.GetErrorDetails(o.Err)["shortcut_lost"])
			assert.Equal(t, tree.Path(sampleFile), tree.Target(rel), "old shortcut must survive")

			entries, err := tree.FS.ReadDir(tree.Path("2023.05.12 shortcuts"))
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}

func TestRelinkAll_DryRun(t *testing.T) {
	tree := testutil.NewTree(t, "/data").SampleTree()
	renameFiles(t, tree)
	logger, _ := testutil.NewLogger()
	rel := "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{DryRun: true})
	batch := r.RelinkAll([]types.Entry{shortcutEntry(tree, rel)})

	o := batch.Outcomes[0]
	require.NoError(t, o.Err)
	assert.True(t, o.DryRun)
	assert.Equal(t, tree.Path(renamedFile), o.Record.NewTarget)
	assert.Equal(t, tree.Path(sampleFile), tree.Target(rel))
}

func TestRelinkAll_BatchTotalAndLogging(t *testing.T) {
	tree := testutil.NewTree(t, "/data").SampleTree()
	renameFiles(t, tree)
	logger, buf := testutil.NewLogger()

	entries := []types.Entry{
		shortcutEntry(tree, "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"),
		shortcutEntry(tree, "nope.lnk"),
	}
	batch := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{}).RelinkAll(entries)

	assert.Len(t, batch.Outcomes, len(entries))
	assert.Equal(t, types.Summary{Total: 2, Succeeded: 1, Failed: 1}, batch.Summary())
	assert.Equal(t, types.OperationRelink, batch.Operation)

	out := buf.String()
	assert.Contains(t, out, `"message":"Relinked shortcut"`)
	assert.Contains(t, out, `"code":"UNRESOLVABLE_SHORTCUT"`)
	assert.Contains(t, out, `"batch":"`+batch.ID+`"`)
}

func TestRelink_OSSymlinks(t *testing.T) {
	tree := testutil.NewOSTree(t).SampleTree()
	renameFiles(t, tree)
	logger, _ := testutil.NewLogger()
	rel := "2023.05.12 shortcuts/12.05.23 shortcut_to_file_0.lnk"

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{Mode: shortcut.CommitSafe})
	o := r.Relink(shortcutEntry(tree, rel))
	require.NoError(t, o.Err)

	content, err := os.ReadFile(tree.Path(rel))
	require.NoError(t, err)
	assert.Equal(t, "file 0", string(content))
}

func TestRelinkAll_DryRunAcceptsPlannedDirectories(t *testing.T) {
	tree := testutil.NewTree(t, "/data").SampleTree()
	logger, _ := testutil.NewLogger()
	entry := shortcutEntry(tree, sampleShortcut)

	planned := []string{tree.Path("2023.05.12 folder-0")}
	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger,
		shortcut.Options{DryRun: true, Planned: planned})
	o := r.Relink(entry)
	require.NoError(t, o.Err)
	assert.Equal(t, tree.Path(renamedFile), o.Record.NewTarget)

	// outside of dry run the planned list is ignored
	r = shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{Planned: planned})
	o = r.Relink(entry)
	assert.Equal(t, errors.ErrTargetParentMissing, o.ErrorCode())
	assert.Equal(t, tree.Path(sampleFile), tree.Target(sampleShortcut))
}

func TestRelink_OSRelativeTarget(t *testing.T) {
	tree := testutil.NewOSTree(t)
	tree.File("2023.05.12 folder-0/2023.05.12 file-0.txt", "file 0")
	rel := "shortcuts/12.05.23 s.lnk"
	tree.Shortcut(rel, "../12.05.23 folder-0/12.05.23 file-0.txt")
	logger, _ := testutil.NewLogger()

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{Mode: shortcut.CommitSafe})
	o := r.Relink(shortcutEntry(tree, rel))
	require.NoError(t, o.Err)
	assert.Equal(t, tree.Path(rel), o.NewPath)

	// the link stays relative to its own directory
	assert.Equal(t, "../2023.05.12 folder-0/2023.05.12 file-0.txt", tree.Target(rel))
	content, err := os.ReadFile(tree.Path(rel))
	require.NoError(t, err)
	assert.Equal(t, "file 0", string(content))
}

func TestRelinkAll_RelativeTargetParentCheck(t *testing.T) {
	tree := testutil.NewTree(t, "/data")
	tree.Dir("2023.05.12 folder-0")
	tree.Shortcut("links/12.05.23 ok.lnk", "../12.05.23 folder-0/a.txt")
	tree.Shortcut("links/12.05.23 missing.lnk", "../12.05.23 nowhere/a.txt")
	logger, _ := testutil.NewLogger()

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{})
	batch := r.RelinkAll([]types.Entry{
		shortcutEntry(tree, "links/12.05.23 ok.lnk"),
		shortcutEntry(tree, "links/12.05.23 missing.lnk"),
	})

	require.Len(t, batch.Outcomes, 2)
	require.NoError(t, batch.Outcomes[0].Err)
	assert.Equal(t, "../2023.05.12 folder-0/a.txt", tree.Target("links/12.05.23 ok.lnk"))

	o := batch.Outcomes[1]
	assert.Equal(t, errors.ErrTargetParentMissing, o.ErrorCode())
	assert.Equal(t, tree.Path("2023.05.12 nowhere"), errors.GetErrorDetails(o.Err)["parent"])
}

func TestRelinkAll_DryRunRelativeTargetUsesPlanned(t *testing.T) {
	tree := testutil.NewTree(t, "/data")
	tree.Shortcut("links/12.05.23 s.lnk", "../12.05.23 folder-0/a.txt")
	logger, _ := testutil.NewLogger()

	r := shortcut.New(tree.FS, shortcut.NewSymlinkStore(tree.FS), logger, shortcut.Options{
		DryRun:  true,
		Planned: []string{tree.Path("2023.05.12 folder-0")},
	})
	o := r.Relink(shortcutEntry(tree, "links/12.05.23 s.lnk"))

	require.NoError(t, o.Err)
	assert.Equal(t, "../2023.05.12 folder-0/a.txt", o.Record.NewTarget)
	assert.Equal(t, "../12.05.23 folder-0/a.txt", tree.Target("links/12.05.23 s.lnk"))
}
