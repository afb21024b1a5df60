package render

import (
	"fmt"
	"html"
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-sitegen/pkg/site"
)

// EscapePolicy controls how user supplied text reaches the page.
type EscapePolicy int

const (
	// EscapeNone interpolates every field verbatim. Markup characters such as
	// <, >, & and " pass through unchanged. Only use it for trusted input.
	EscapeNone EscapePolicy = iota
	// EscapeHTML entity-escapes every field, including URLs and the color.
	EscapeHTML
	// EscapeSanitize strips markup from text fields with a strict bluemonday
	// policy and drops social links whose scheme is not http, https or mailto.
	EscapeSanitize
)

func (p EscapePolicy) String() string {
	switch p {
	case EscapeNone:
		return "none"
	case EscapeHTML:
		return "html"
	case EscapeSanitize:
		return "sanitize"
	default:
		return fmt.Sprintf("EscapePolicy(%d)", int(p))
	}
}

// ParseEscapePolicy maps none|html|sanitize (case-insensitive). An empty
// string selects EscapeNone.
func ParseEscapePolicy(value string) (EscapePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "raw":
		return EscapeNone, nil
	case "html", "escape":
		return EscapeHTML, nil
	case "sanitize", "strict":
		return EscapeSanitize, nil
	default:
		return EscapeNone, fmt.Errorf("render: unknown escape policy %q", value)
	}
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// apply returns a copy of record with the policy applied to every field the
// templates interpolate. The input record is never modified.
//
// Whatever the policy, invalid UTF-8 sequences are replaced with U+FFFD
// first. Pages are served as text/html; charset=utf-8, so the output is
// always valid UTF-8 even when the input is not.
func (p EscapePolicy) apply(record site.Record) site.Record {
	out := validUTF8(record.Clone())

	var text, link func(string) string
	switch p {
	case EscapeHTML:
		text = html.EscapeString
		link = html.EscapeString
	case EscapeSanitize:
		text = sanitizeText
		link = sanitizeURL
	default:
		return out
	}

	out.Name = text(out.Name)
	out.Description = text(out.Description)
	out.Email = text(out.Email)
	out.Phone = text(out.Phone)
	out.AccentColor = html.EscapeString(out.AccentColor)
	for i, feature := range out.Features {
		out.Features[i] = text(feature)
	}
	out.Social = site.Social{
		Facebook: link(out.Social.Facebook),
		Twitter:  link(out.Social.Twitter),
		LinkedIn: link(out.Social.LinkedIn),
	}
	return out
}

func validUTF8(record site.Record) site.Record {
	fix := func(value string) string {
		return strings.ToValidUTF8(value, string(utf8.RuneError))
	}
	record.Name = fix(record.Name)
	record.Description = fix(record.Description)
	record.Email = fix(record.Email)
	record.Phone = fix(record.Phone)
	record.AccentColor = fix(record.AccentColor)
	for i, feature := range record.Features {
		record.Features[i] = fix(feature)
	}
	record.Social = site.Social{
		Facebook: fix(record.Social.Facebook),
		Twitter:  fix(record.Social.Twitter),
		LinkedIn: fix(record.Social.LinkedIn),
	}
	return record
}

func sanitizeText(value string) string {
	if value == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(value))
}

func sanitizeURL(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return html.EscapeString(parsed.String())
	default:
		return ""
	}
}
