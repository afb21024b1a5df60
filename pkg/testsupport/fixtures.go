package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitegen/pkg/site"
)

// FixedInstant is the moment FixedClock reports: 2025-03-05 09:30 UTC.
var FixedInstant = time.Date(2025, time.March, 5, 9, 30, 0, 0, time.UTC)

// FixedClock returns a clock pinned to FixedInstant so year and date stamps
// are stable across runs.
func FixedClock() func() time.Time {
	return func() time.Time { return FixedInstant }
}

// AcmeRaw is the form input used across end-to-end tests.
func AcmeRaw() site.RawFields {
	return site.RawFields{
		Name:        "  Acme  ",
		Description: "Widgets",
		Email:       "a@acme.io",
		Phone:       "1",
		Color:       "",
		Features:    "A, B",
		Facebook:    "https://fb.com/acme",
	}
}

// AcmeRecord is AcmeRaw after normalization.
func AcmeRecord() site.Record {
	return site.Record{
		Name:        "Acme",
		Description: "Widgets",
		Email:       "a@acme.io",
		Phone:       "1",
		AccentColor: site.DefaultAccentColor,
		Features:    []string{"A", "B"},
		Social:      site.Social{Facebook: "https://fb.com/acme"},
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

// AssertContainsInOrder fails unless every needle appears in haystack after
// the previous one.
func AssertContainsInOrder(t *testing.T, haystack string, needles ...string) {
	t.Helper()
	offset := 0
	for _, needle := range needles {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			t.Fatalf("expected %q after offset %d", needle, offset)
		}
		offset += idx + len(needle)
	}
}
