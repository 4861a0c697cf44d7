package parsers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/svioletg/scoreboard2json/filters"
	"github.com/svioletg/scoreboard2json/scoreboard"
)

// Matches one "key": "value" pair inside a text-component string.
var displayNamePairRegex = regexp.MustCompile(`"([^"]+)"\s*:\s*"([^"]*)"`)

// FormatError reports source data whose shape does not match the scoreboard
// schema: a missing required key, or a tag of an unexpected type.
type FormatError struct {
	Path string
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed scoreboard data at %s: %s", e.Path, e.Msg)
}

func formatErrorf(path, format string, a ...any) *FormatError {
	return &FormatError{Path: path, Msg: fmt.Sprintf(format, a...)}
}

// ParseFile parses path as a binary scoreboard when it has a .dat suffix and
// as a JSON dump when it has a .json suffix.
func ParseFile(path string, filter *filters.PlayerFilter) (*scoreboard.Scoreboard, error) {
	var parse func(io.Reader, *filters.PlayerFilter) (*scoreboard.Scoreboard, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dat":
		parse = ParseNBT
	case ".json":
		parse = ParseJSON
	default:
		return nil, fmt.Errorf("unsupported scoreboard file %q: expected a .dat or .json suffix", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f, filter)
}

// parseDisplayName builds the dual raw/parsed view of a text-component
// string. The scan is a flat best-effort pass over quoted key/value pairs,
// not a JSON parse: components without any such pair yield a nil map while
// the raw string is always kept. Lossy on purpose; Raw is the source of
// truth.
func parseDisplayName(raw string) scoreboard.DisplayName {
	d := scoreboard.DisplayName{Raw: raw}
	for _, m := range displayNamePairRegex.FindAllStringSubmatch(raw, -1) {
		if d.Parsed == nil {
			d.Parsed = make(map[string]string)
		}
		d.Parsed[m[1]] = m[2]
	}
	return d
}
