package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/redate/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// maxPathLength is a common filesystem limit
const maxPathLength = 4096

// Normalize validates a user supplied directory and returns it absolute
// and cleaned. It does not check that the directory exists.
func Normalize(input string) (string, error) {
	path := Unquote(strings.TrimSpace(input))
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	path = ExpandHome(path)
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve %q", input)
	}
	return abs, nil
}

// Unquote strips one pair of matching single or double quotes
func Unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ValidatePath rejects empty, oversized and NUL-containing paths
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}
	if len(path) > maxPathLength {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}
	return nil
}

// ExpandHome expands a leading ~ to the home directory. ~user forms are
// returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
