// Package version parses GWT version strings.
//
// Two shapes are accepted: a numeric "major.minor[.patch]" form, where the
// patch segment may carry arbitrary suffixes ("2.5.1-RC1"), and a named
// "HEAD-*" form used for snapshot builds. A named tag behaves as the newest
// possible version: every IsAtLeast check against it succeeds.
package version

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalid is wrapped by every ParseError.
var ErrInvalid = errors.New("invalid GWT version")

// ErrEmpty is returned by ParseStrict for blank input.
var ErrEmpty = errors.New("no GWT version given")

// headToken marks an unbounded snapshot version.
const headToken = "HEAD"

// reSeparator splits a version string into its segments.
var reSeparator = regexp.MustCompile(`[-.]`)

// ParseError reports a version string that does not follow the grammar.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("GWT version %q cannot be parsed: valid versions have the form "+
		"major.minor.patch (major and minor being unsigned integers) or HEAD-* "+
		"where * is an arbitrary string", e.Input)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalid}
	}
	return []error{ErrInvalid, e.Err}
}

// Tag is an immutable parsed version.
type Tag struct {
	major int
	minor int
	patch string
	name  string // set only for HEAD-* tags
}

// Parse parses text into a Tag. Blank input yields (nil, nil): "no version
// configured" is not an error at this layer.
func Parse(text string) (*Tag, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	parts := reSeparator.Split(text, 3)
	if parts[0] == headToken {
		return &Tag{
			major: math.MaxInt,
			minor: math.MaxInt,
			name:  text,
		}, nil
	}
	if len(parts) < 2 {
		return nil, &ParseError{Input: text}
	}

	major, err := parseUnsigned(parts[0])
	if err != nil {
		return nil, &ParseError{Input: text, Err: err}
	}
	minor, err := parseUnsigned(parts[1])
	if err != nil {
		return nil, &ParseError{Input: text, Err: err}
	}

	patch := "0"
	if len(parts) == 3 {
		patch = parts[2]
	}
	return &Tag{major: major, minor: minor, patch: patch}, nil
}

// ParseStrict is like Parse but treats blank input as an error.
func ParseStrict(text string) (*Tag, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Input: text, Err: ErrEmpty}
	}
	return Parse(text)
}

// MustParse parses text and panics on failure or blank input.
// Intended for package-level constants.
func MustParse(text string) *Tag {
	t, err := ParseStrict(text)
	if err != nil {
		panic(err)
	}
	return t
}

func parseUnsigned(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("segment %q is not an unsigned integer", s)
	}
	return int(n), nil
}

// String returns "major.minor.patch", or the original text for HEAD tags.
func (t *Tag) String() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("%d.%d.%s", t.major, t.minor, t.patch)
}

// IsAtLeast reports whether t is major.minor or newer. Patch is ignored.
func (t *Tag) IsAtLeast(major, minor int) bool {
	return t.major > major || (t.major == major && t.minor >= minor)
}
