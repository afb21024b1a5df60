package site

// DefaultAccentColor is applied when the raw color field is empty.
const DefaultAccentColor = "#2563eb"

// Social groups the optional profile links rendered in page footers. Each
// link is emitted only when non-empty, in the order Facebook, Twitter,
// LinkedIn.
type Social struct {
	Facebook string `json:"facebook" yaml:"facebook"`
	Twitter  string `json:"twitter" yaml:"twitter"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
}

// Links returns the populated social links in render order.
func (s Social) Links() []Link {
	var out []Link
	if s.Facebook != "" {
		out = append(out, Link{Label: "Facebook", URL: s.Facebook})
	}
	if s.Twitter != "" {
		out = append(out, Link{Label: "Twitter", URL: s.Twitter})
	}
	if s.LinkedIn != "" {
		out = append(out, Link{Label: "LinkedIn", URL: s.LinkedIn})
	}
	return out
}

// Link is a labelled URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Record is the normalized site description. Values are copied into the
// renderer; nothing downstream mutates a Record.
type Record struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	AccentColor string   `json:"color"`
	Features    []string `json:"features"`
	Social      Social   `json:"social"`
}

// Clone returns a deep copy so callers can derive variants without sharing
// the features slice.
func (r Record) Clone() Record {
	out := r
	if r.Features != nil {
		out.Features = append([]string(nil), r.Features...)
	}
	return out
}

// RawFields carries untrimmed form values exactly as a collaborator gathered
// them. Features is the comma separated list typed by the user. FeatureItems,
// when non nil, holds an already separated list (for example a YAML
// sequence) and takes precedence over Features so items may contain commas.
type RawFields struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Email       string `json:"email" yaml:"email"`
	Phone       string `json:"phone" yaml:"phone"`
	Color       string `json:"color" yaml:"color"`
	Features    string `json:"features" yaml:"features"`
	Facebook    string `json:"facebook" yaml:"facebook"`
	Twitter     string `json:"twitter" yaml:"twitter"`
	LinkedIn    string `json:"linkedin" yaml:"linkedin"`

	FeatureItems []string `json:"-" yaml:"-"`
}

// DefaultRawFields mirrors the values the form is pre-filled with.
func DefaultRawFields() RawFields {
	return RawFields{
		Name:        "My Awesome Website",
		Description: "We provide innovative solutions for your business needs.",
		Email:       "info@example.com",
		Phone:       "+1 (555) 123-4567",
		Color:       DefaultAccentColor,
		Features:    "Fast Delivery, Quality Service, 24/7 Support",
	}
}

// Merge overlays every non-empty field of override onto r. The features
// string and FeatureItems travel together.
func (r RawFields) Merge(override RawFields) RawFields {
	pick := func(base, next string) string {
		if next != "" {
			return next
		}
		return base
	}
	features, items := r.Features, r.FeatureItems
	if override.Features != "" || override.FeatureItems != nil {
		features, items = override.Features, override.FeatureItems
	}
	return RawFields{
		Name:        pick(r.Name, override.Name),
		Description: pick(r.Description, override.Description),
		Email:       pick(r.Email, override.Email),
		Phone:       pick(r.Phone, override.Phone),
		Color:       pick(r.Color, override.Color),
		Features:    features,
		Facebook:    pick(r.Facebook, override.Facebook),
		Twitter:     pick(r.Twitter, override.Twitter),
		LinkedIn:    pick(r.LinkedIn, override.LinkedIn),

		FeatureItems: items,
	}
}
