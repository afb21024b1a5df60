package site

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrNameRequired is returned by Validate when the site name is blank.
var ErrNameRequired = errors.New("site: name is required")

// Validate performs the presence checks a caller should run before
// rendering. Only the name is required.
func Validate(record Record) error {
	if strings.TrimSpace(record.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// IsHexColor reports whether color is a bare #RRGGBB value. Pages append
// two digit alpha suffixes to the accent color, so any other form yields
// invalid CSS. Callers should warn, not reject.
func IsHexColor(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for _, r := range color[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// SuggestedFilename derives the default save name from the site name:
// spaces become underscores and the result is lower cased.
func SuggestedFilename(name string) string {
	base := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	if base == "" {
		base = "website"
	}
	return base + ".html"
}

// EnsureHTMLExtension appends .html unless path already ends in .html or
// .htm (case-insensitive).
func EnsureHTMLExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return path
	}
	return path + ".html"
}
