package render

import (
	"strconv"
	"strings"
)

// Template identifies one of the six built-in pages. The set is closed:
// adding a page means adding a constant here, a case in Renderer.Render, and
// a template file.
type Template int

const (
	Business Template = iota
	Portfolio
	Ecommerce
	Blog
	Landing
	Restaurant
)

var templateOrder = [...]Template{Business, Portfolio, Ecommerce, Blog, Landing, Restaurant}

// Templates lists every page in display order.
func Templates() []Template {
	out := make([]Template, len(templateOrder))
	copy(out[:], templateOrder[:])
	return out
}

// String returns the display name shown in selection controls.
func (t Template) String() string {
	switch t {
	case Business:
		return "Business"
	case Portfolio:
		return "Portfolio"
	case Ecommerce:
		return "E-commerce"
	case Blog:
		return "Blog"
	case Landing:
		return "Landing Page"
	case Restaurant:
		return "Restaurant"
	default:
		return "Template(" + strconv.Itoa(int(t)) + ")"
	}
}

// Slug returns the lower case identifier used for file names, URLs and CLI
// flags. It is also the embedded template file name without extension.
func (t Template) Slug() string {
	switch t {
	case Business:
		return "business"
	case Portfolio:
		return "portfolio"
	case Ecommerce:
		return "ecommerce"
	case Blog:
		return "blog"
	case Landing:
		return "landing"
	case Restaurant:
		return "restaurant"
	default:
		return ""
	}
}

// Valid reports whether t is one of the declared constants.
func (t Template) Valid() bool {
	return t >= Business && t <= Restaurant
}

// ParseTemplate resolves a display name ("Landing Page") or slug ("landing"),
// ignoring case and surrounding whitespace.
func ParseTemplate(name string) (Template, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key != "" {
		for _, t := range templateOrder {
			if key == strings.ToLower(t.String()) || key == t.Slug() {
				return t, nil
			}
		}
	}
	return 0, &UnknownTemplateError{Name: name}
}

// MustParseTemplate panics when name is not a known template.
func MustParseTemplate(name string) Template {
	t, err := ParseTemplate(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the display names in order.
func Names() []string {
	out := make([]string, 0, len(templateOrder))
	for _, t := range templateOrder {
		out = append(out, t.String())
	}
	return out
}
