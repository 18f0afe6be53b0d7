package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/redate/pkg/errors"
	"github.com/arthur-debert/redate/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"/data/My Photos"`, "/data/My Photos"},
		{`'/data/My Photos'`, "/data/My Photos"},
		{`"/data/mixed'`, `"/data/mixed'`},
		{`"`, `"`},
		{"/plain", "/plain"},
		{`""`, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, paths.Unquote(tt.in), tt.in)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, paths.ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "scans"), paths.ExpandHome("~/scans"))
	assert.Equal(t, "~bob/scans", paths.ExpandHome("~bob/scans"))
	assert.Equal(t, "/abs", paths.ExpandHome("/abs"))
}

func TestNormalize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := paths.Normalize(`  "~/My Scans/" `)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "My Scans"), got)

	got, err = paths.Normalize("relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
	assert.True(t, strings.HasSuffix(got, filepath.Join("relative", "dir")))
}

func TestNormalize_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", `""`, "a\x00b", strings.Repeat("x", 5000)} {
		_, err := paths.Normalize(in)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "%q: %v", in, err)
	}
}
