// Package exportfile writes downloaded exports to the local export directory.
package exportfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/wetrace/internal/config"
)

// DefaultName is used in place of a missing talker.
const DefaultName = "export"

// Saved describes a written export.
type Saved struct {
	Path  string `json:"path"`
	Bytes int    `json:"bytes"`
}

// Size formats the byte count with thousands separators.
func (s Saved) Size() string {
	return message.NewPrinter(language.English).Sprintf("%d bytes", s.Bytes)
}

// Filename builds "{kind}_{talker}.{format}". Each part is reduced to a
// single safe path element; an empty talker becomes "export".
func Filename(kind, talker, format string) string {
	name := sanitize(talker)
	if name == "" {
		name = DefaultName
	}
	return fmt.Sprintf("%s_%s.%s", sanitize(kind), name, sanitize(format))
}

// Save writes data to dir/Filename(kind, talker, format), creating dir when
// needed. A leading "~" in dir is expanded.
func Save(dir, kind, talker, format string, data []byte) (Saved, error) {
	dir = config.ExpandHome(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(kind, talker, format))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Saved{}, fmt.Errorf("writing export: %w", err)
	}
	return Saved{Path: path, Bytes: len(data)}, nil
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case r == '-', r == '_', r == '.', r == '@':
			return r
		default:
			return '_'
		}
	}, strings.TrimSpace(s))
	return strings.TrimLeft(s, ".")
}
