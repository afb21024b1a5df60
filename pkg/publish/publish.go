// Package publish persists rendered pages and opens them in a browser.
package publish

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/goliatone/go-sitegen/pkg/site"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644

	// PreviewFilename is the fixed name used for throwaway previews.
	PreviewFilename = "temp_preview.html"
)

// ErrNoBrowser is returned by the default opener when no Chrome or Chromium
// install can be located.
var ErrNoBrowser = errors.New("publish: no browser found")

// WriteFile writes html to path as UTF-8, appending .html when the path has
// no .html or .htm extension. Parent directories are created and an existing
// file is overwritten. The final path is returned.
func WriteFile(path, html string) (string, error) {
	if path == "" {
		return "", errors.New("publish: output path is required")
	}
	final := site.EnsureHTMLExtension(path)
	if dir := filepath.Dir(final); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", fmt.Errorf("publish: create directory: %w", err)
		}
	}
	if err := os.WriteFile(final, []byte(html), filePermissions); err != nil {
		return "", fmt.Errorf("publish: write %s: %w", final, err)
	}
	return final, nil
}

// Opener opens a URL for the user.
type Opener func(url string) error

// OpenInBrowser opens url with the Chrome or Chromium binary go-rod finds.
func OpenInBrowser(url string) error {
	if _, found := launcher.LookPath(); !found {
		return ErrNoBrowser
	}
	launcher.Open(url)
	return nil
}

// Previewer writes a page to a scratch file and opens it.
type Previewer struct {
	// Dir holds the preview file. Defaults to os.TempDir().
	Dir string
	// Open defaults to OpenInBrowser.
	Open Opener
}

// Preview writes html to Dir/temp_preview.html, replacing any earlier
// preview, and opens it as a file:// URL. It returns the absolute path.
func (p Previewer) Preview(html string) (string, error) {
	dir := p.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	path, err := WriteFile(filepath.Join(dir, PreviewFilename), html)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("publish: resolve preview path: %w", err)
	}

	open := p.Open
	if open == nil {
		open = OpenInBrowser
	}
	if err := open(FileURL(abs)); err != nil {
		return abs, fmt.Errorf("publish: open preview: %w", err)
	}
	return abs, nil
}

// FileURL returns the file:// URL for an absolute path.
func FileURL(abs string) string {
	return "file://" + filepath.ToSlash(abs)
}
