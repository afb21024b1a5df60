package sitefile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sitegen/pkg/palette"
	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/site"
)

// Definition is one decoded site document.
type Definition struct {
	Template    string      `yaml:"template" json:"template"`
	Palette     string      `yaml:"palette" json:"palette"`
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Email       string      `yaml:"email" json:"email"`
	Phone       string      `yaml:"phone" json:"phone"`
	Color       string      `yaml:"color" json:"color"`
	Features    FeatureList `yaml:"features" json:"features"`
	Social      site.Social `yaml:"social" json:"social"`

	// Location is where the document was read from, if known.
	Location string `yaml:"-" json:"-"`
}

// FeatureList accepts either a comma separated string or a sequence of
// strings. A scalar is kept as Text and split later on commas. A sequence
// keeps its items intact in Items, so an item may itself contain a comma.
type FeatureList struct {
	Text  string
	Items []string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *FeatureList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*f = FeatureList{Text: node.Value}
		return nil
	case yaml.SequenceNode:
		items := []string{}
		if err := node.Decode(&items); err != nil {
			return err
		}
		*f = FeatureList{Text: strings.Join(items, ", "), Items: items}
		return nil
	default:
		return fmt.Errorf("sitefile: features must be a string or a list")
	}
}

// TemplateKind resolves Template. An empty value selects render.Business.
func (d Definition) TemplateKind() (render.Template, error) {
	if strings.TrimSpace(d.Template) == "" {
		return render.Business, nil
	}
	return render.ParseTemplate(d.Template)
}

// Raw flattens the definition into form fields. When Color is empty and a
// palette is named, the palette accent fills the color.
func (d Definition) Raw() site.RawFields {
	color := d.Color
	if strings.TrimSpace(color) == "" && strings.TrimSpace(d.Palette) != "" {
		if accent, err := palette.Accent(d.Palette); err == nil {
			color = accent
		}
	}
	return site.RawFields{
		Name:        d.Name,
		Description: d.Description,
		Email:       d.Email,
		Phone:       d.Phone,
		Color:       color,
		Features:    d.Features.Text,
		Facebook:    d.Social.Facebook,
		Twitter:     d.Social.Twitter,
		LinkedIn:    d.Social.LinkedIn,

		FeatureItems: d.Features.Items,
	}
}

// Record is Normalize(d.Raw(), opts...).
func (d Definition) Record(opts ...site.NormalizeOption) site.Record {
	return site.Normalize(d.Raw(), opts...)
}

// Parse decodes and checks a definition document.
func Parse(data []byte) (Definition, error) {
	return parse("", data)
}

// Load reads src and parses it.
func Load(ctx context.Context, src Source) (Definition, error) {
	if src == nil {
		return Definition{}, errors.New("sitefile: source is nil")
	}
	data, err := src.read(ctx)
	if err != nil {
		return Definition{}, fmt.Errorf("sitefile: read %s: %w", src.Location(), err)
	}
	return parse(src.Location(), data)
}

func parse(location string, data []byte) (Definition, error) {
	generic, err := toGeneric(data)
	if err != nil {
		return Definition{}, &Error{Location: location, Issues: []Issue{{Message: err.Error()}}}
	}

	issues, err := checkPresence(generic)
	if err != nil {
		return Definition{}, err
	}

	var def Definition
	if len(issues) == 0 {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return Definition{}, &Error{Location: location, Issues: []Issue{{Message: err.Error()}}}
		}
		if _, err := def.TemplateKind(); err != nil {
			issues = append(issues, Issue{Field: "template", Message: fmt.Sprintf("unknown template %q", def.Template)})
		}
		if strings.TrimSpace(def.Palette) != "" {
			if _, err := palette.Accent(def.Palette); err != nil {
				issues = append(issues, Issue{Field: "palette", Message: fmt.Sprintf("unknown palette %q", def.Palette)})
			}
		}
	}
	if len(issues) > 0 {
		return Definition{}, &Error{Location: location, Issues: issues}
	}

	def.Location = location
	return def, nil
}

// toGeneric converts YAML into the plain JSON value model the schema
// validator expects (map[string]any, []any, float64, string, bool, nil).
func toGeneric(data []byte) (any, error) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if decoded == nil {
		decoded = map[string]any{}
	}
	if _, ok := decoded.(map[string]any); !ok {
		return nil, errors.New("document must be a mapping")
	}

	payload, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	var out any
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return out, nil
}
