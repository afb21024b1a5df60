// Package palette provides named accent color presets. The presets are held
// in a go-theme manifest so hosts that already resolve themes through
// go-theme can select them the same way.
package palette

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

const (
	// ThemeName is the manifest name every preset lives under.
	ThemeName = "sitegen"
	// DefaultName is the preset used when no palette is requested.
	DefaultName = "ocean"

	TokenAccent    = "accent"
	TokenSecondary = "secondary"
)

// ErrUnknownPalette is returned for preset names outside Names().
var ErrUnknownPalette = errors.New("palette: unknown palette")

type preset struct {
	name      string
	accent    string
	secondary string
}

var presets = []preset{
	{name: "ocean", accent: "#2563eb", secondary: "#1e40af"},
	{name: "forest", accent: "#16a34a", secondary: "#15803d"},
	{name: "sunset", accent: "#ea580c", secondary: "#c2410c"},
	{name: "berry", accent: "#db2777", secondary: "#be185d"},
	{name: "violet", accent: "#7c3aed", secondary: "#6d28d9"},
	{name: "slate", accent: "#475569", secondary: "#334155"},
}

// Palettes resolves presets by name through a go-theme registry and
// selector. It satisfies theme.ThemeSelector.
type Palettes struct {
	manifest *theme.Manifest
	registry *theme.MemoryRegistry
	selector theme.Selector
	order    []string
}

var _ theme.ThemeSelector = (*Palettes)(nil)

var (
	defaultOnce     sync.Once
	defaultPalettes *Palettes
)

// Default returns the built-in presets. The manifest is static, so a
// validation failure is a programming error and panics.
func Default() *Palettes {
	defaultOnce.Do(func() {
		defaultPalettes = mustNew(presetManifest())
	})
	return defaultPalettes
}

// New validates manifest, registers it and returns Palettes whose presets are
// the manifest variants. order fixes the listing order of Names.
func New(manifest *theme.Manifest, order []string) (*Palettes, error) {
	if manifest == nil {
		return nil, errors.New("palette: manifest is nil")
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("palette: invalid manifest: %w", err)
	}
	for _, name := range order {
		if _, ok := manifest.Variants[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
		}
	}

	registry := theme.NewRegistry()
	if err := registry.Register(manifest); err != nil {
		return nil, fmt.Errorf("palette: register manifest: %w", err)
	}

	return &Palettes{
		manifest: manifest,
		registry: registry,
		selector: theme.Selector{
			Registry:       registry,
			DefaultTheme:   manifest.Name,
			DefaultVariant: DefaultName,
		},
		order: append([]string(nil), order...),
	}, nil
}

func mustNew(manifest *theme.Manifest) *Palettes {
	order := make([]string, 0, len(presets))
	for _, p := range presets {
		order = append(order, p.name)
	}
	p, err := New(manifest, order)
	if err != nil {
		panic(err)
	}
	return p
}

func presetManifest() *theme.Manifest {
	manifest := &theme.Manifest{
		Name:        ThemeName,
		Version:     "1.0.0",
		Description: "sitegen accent presets",
		Tokens: map[string]string{
			TokenAccent:    presets[0].accent,
			TokenSecondary: presets[0].secondary,
		},
		Variants: make(map[string]theme.Variant, len(presets)),
	}
	for _, p := range presets {
		manifest.Variants[p.name] = theme.Variant{
			Description: p.name,
			Tokens: map[string]string{
				TokenAccent:    p.accent,
				TokenSecondary: p.secondary,
			},
		}
	}
	return manifest
}

// Manifest exposes the go-theme manifest backing the presets.
func (p *Palettes) Manifest() *theme.Manifest {
	return p.manifest
}

// Names lists preset names in display order.
func (p *Palettes) Names() []string {
	return append([]string(nil), p.order...)
}

// Accent returns the #RRGGBB accent of the named preset. An empty name
// selects DefaultName.
func (p *Palettes) Accent(name string) (string, error) {
	tokens, err := p.Tokens(name)
	if err != nil {
		return "", err
	}
	return tokens[TokenAccent], nil
}

// Tokens returns the base tokens overlaid with the preset's tokens.
func (p *Palettes) Tokens(name string) (map[string]string, error) {
	selection, err := p.Select(ThemeName, name)
	if err != nil {
		return nil, err
	}
	return selection.Tokens(), nil
}

// Select implements theme.ThemeSelector. name must be empty or ThemeName;
// variant is a preset name and defaults to DefaultName. The go-theme selector
// does not check variants, so unknown presets are rejected here first.
func (p *Palettes) Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error) {
	if trimmed := strings.TrimSpace(name); trimmed != "" && trimmed != p.manifest.Name {
		return nil, fmt.Errorf("palette: unknown theme %q", name)
	}
	key := normalizeName(variant)
	if _, ok := p.manifest.Variants[key]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, variant)
	}
	selection, err := p.selector.Select(p.manifest.Name, key, opts...)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	return selection, nil
}

// Provider exposes the go-theme registry holding the manifest, for hosts that
// accept a theme.ThemeProvider.
func (p *Palettes) Provider() theme.ThemeProvider {
	return p.registry
}

// Accent resolves name against the built-in presets.
func Accent(name string) (string, error) {
	return Default().Accent(name)
}

// Names lists the built-in preset names.
func Names() []string {
	return Default().Names()
}

func normalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultName
	}
	return key
}
