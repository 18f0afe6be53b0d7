package datecodec

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/redate/pkg/errors"
)

const (
	// PrefixLen is the length of a DD.MM.YY token.
	PrefixLen = 8

	// Century is prepended to the two digit year.
	Century = "20"

	// parseLayout validates day against month the way strptime("%d.%m.%y") does.
	parseLayout = "02.01.06"
)

// Token is a date decoded from a name prefix.
type Token struct {
	Day   int
	Month int
	Year2 int
}

// Year returns the four digit year using the fixed century.
func (t Token) Year() int {
	return 2000 + t.Year2
}

// Parse decodes the DD.MM.YY prefix of name. The character after the prefix,
// if any, is the delimiter and must be neither a digit nor a dot, so
// "12.05.23 notes" and "12.05.23_notes" parse while "12.05.23.txt" and
// "12.05.2023 notes" do not.
func Parse(name string) (Token, error) {
	if len(name) < PrefixLen {
		return Token{}, invalid(name, "name is shorter than a date prefix")
	}

	for i := 0; i < PrefixLen; i++ {
		c := name[i]
		if i == 2 || i == 5 {
			if c != '.' {
				return Token{}, invalid(name, fmt.Sprintf("expected '.' at position %d", i+1))
			}
			continue
		}
		if !isDigit(c) {
			return Token{}, invalid(name, fmt.Sprintf("expected digit at position %d", i+1))
		}
	}

	if len(name) > PrefixLen {
		if d := name[PrefixLen]; isDigit(d) || d == '.' {
			return Token{}, invalid(name, "date prefix is not followed by a delimiter")
		}
	}

	parsed, err := time.Parse(parseLayout, name[:PrefixLen])
	if err != nil {
		return Token{}, errors.Wrapf(err, errors.ErrInvalidDateFormat, "invalid date in %q", name).
			WithDetail("name", name)
	}

	return Token{
		Day:   parsed.Day(),
		Month: int(parsed.Month()),
		Year2: twoDigits(name[6:8]),
	}, nil
}

// Format renders t as YYYY.MM.DD.
func Format(t Token) string {
	return fmt.Sprintf("%s%02d.%02d.%02d", Century, t.Year2, t.Month, t.Day)
}

// RewritePrefix replaces the DD.MM.YY prefix of name with YYYY.MM.DD and
// keeps the rest of the name, delimiter included.
func RewritePrefix(name string) (string, error) {
	t, err := Parse(name)
	if err != nil {
		return "", err
	}
	return Format(t) + name[PrefixLen:], nil
}

// IsConverted reports whether name already starts with a YYYY.MM.DD prefix.
func IsConverted(name string) bool {
	if len(name) < 10 {
		return false
	}
	if name[4] != '.' || name[7] != '.' {
		return false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !isDigit(name[i]) {
			return false
		}
	}
	_, err := time.Parse("2006.01.02", name[:10])
	return err == nil
}

// RewriteSegments rewrites every segment of path that carries a date
// prefix. Separators and non-matching segments are kept byte for byte.
// The second return value reports whether any segment changed.
func RewriteSegments(path string) (string, bool) {
	var b strings.Builder
	b.Grow(len(path) + 8)

	changed := false
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && !isSeparator(path[i]) {
			continue
		}

		segment := path[start:i]
		if rewritten, err := RewritePrefix(segment); err == nil {
			b.WriteString(rewritten)
			changed = true
		} else {
			b.WriteString(segment)
		}
		if i < len(path) {
			b.WriteByte(path[i])
		}
		start = i + 1
	}

	return b.String(), changed
}

func invalid(name, reason string) *errors.RedateError {
	return errors.Newf(errors.ErrInvalidDateFormat, "invalid date prefix in %q: %s", name, reason).
		WithDetail("name", name)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSeparator(c byte) bool {
	return c == '/' || c == filepath.Separator
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}
