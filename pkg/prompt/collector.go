// Package prompt gathers site fields interactively in the terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-sitegen/pkg/palette"
	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/site"
)

// CustomColor is the palette option that asks for a hex color instead.
const CustomColor = "custom"

// Answers is what the collector returns: the chosen page, the chosen palette
// (CustomColor when a hex value was typed) and the raw field values.
type Answers struct {
	Template render.Template
	Palette  string
	Fields   site.RawFields
}

// DefaultAnswers pre-fills every prompt with the stock form values.
func DefaultAnswers() Answers {
	return Answers{
		Template: render.Business,
		Palette:  palette.DefaultName,
		Fields:   site.DefaultRawFields(),
	}
}

// Option configures a Collector.
type Option func(*Collector)

// WithPromptDriver overrides the survey backed driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(c *Collector) {
		if driver != nil {
			c.driver = driver
		}
	}
}

// WithPalettes overrides the preset list offered for the accent color.
func WithPalettes(p *palette.Palettes) Option {
	return func(c *Collector) {
		if p != nil {
			c.palettes = p
		}
	}
}

// WithConfirm asks for a final confirmation before returning.
func WithConfirm(enabled bool) Option {
	return func(c *Collector) {
		c.confirm = enabled
	}
}

// Collector walks the user through the site form.
type Collector struct {
	driver   PromptDriver
	palettes *palette.Palettes
	confirm  bool
}

// New constructs a Collector.
func New(options ...Option) *Collector {
	c := &Collector{
		driver:   NewSurveyDriver(),
		palettes: palette.Default(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Collect asks for each field in form order: name, template, description,
// email, phone, palette or color, features, then the social links. Values in
// defaults pre-fill the prompts.
func (c *Collector) Collect(ctx context.Context, defaults Answers) (Answers, error) {
	if c == nil || c.driver == nil {
		return Answers{}, errors.New("prompt: collector has no driver")
	}
	out := defaults

	name, err := c.askName(ctx, defaults.Fields.Name)
	if err != nil {
		return Answers{}, err
	}
	out.Fields.Name = name

	tmpl, err := c.askTemplate(ctx, defaults.Template)
	if err != nil {
		return Answers{}, err
	}
	out.Template = tmpl

	if out.Fields.Description, err = c.driver.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Default: defaults.Fields.Description,
	}); err != nil {
		return Answers{}, err
	}
	if out.Fields.Email, err = c.ask(ctx, "Email", defaults.Fields.Email, ""); err != nil {
		return Answers{}, err
	}
	if out.Fields.Phone, err = c.ask(ctx, "Phone", defaults.Fields.Phone, ""); err != nil {
		return Answers{}, err
	}

	if out.Palette, out.Fields.Color, err = c.askColor(ctx, defaults); err != nil {
		return Answers{}, err
	}

	features, err := c.ask(ctx, "Features", defaults.Fields.Features, "Comma separated, e.g. Fast Delivery, Quality Service")
	if err != nil {
		return Answers{}, err
	}
	// An untouched answer keeps any pre-split items from the defaults.
	if features != defaults.Fields.Features {
		out.Fields.Features, out.Fields.FeatureItems = features, nil
	}
	if out.Fields.Facebook, err = c.ask(ctx, "Facebook URL", defaults.Fields.Facebook, "Leave empty to omit"); err != nil {
		return Answers{}, err
	}
	if out.Fields.Twitter, err = c.ask(ctx, "Twitter URL", defaults.Fields.Twitter, "Leave empty to omit"); err != nil {
		return Answers{}, err
	}
	if out.Fields.LinkedIn, err = c.ask(ctx, "LinkedIn URL", defaults.Fields.LinkedIn, "Leave empty to omit"); err != nil {
		return Answers{}, err
	}

	if c.confirm {
		ok, err := c.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Generate the %s website?", out.Template),
			Default: true,
		})
		if err != nil {
			return Answers{}, err
		}
		if !ok {
			return Answers{}, ErrAborted
		}
	}
	return out, nil
}

func (c *Collector) ask(ctx context.Context, message, def, help string) (string, error) {
	return c.driver.Input(ctx, InputConfig{Message: message, Default: def, Help: help})
}

// askName repeats until a non blank name is given.
func (c *Collector) askName(ctx context.Context, def string) (string, error) {
	for {
		name, err := c.driver.Input(ctx, InputConfig{
			Message:   "Website name",
			Default:   def,
			Validator: requireName,
		})
		if err != nil {
			return "", err
		}
		if requireName(name) == nil {
			return name, nil
		}
		if err := c.driver.Info(ctx, "Please enter a website name"); err != nil {
			return "", err
		}
	}
}

func requireName(value string) error {
	if strings.TrimSpace(value) == "" {
		return site.ErrNameRequired
	}
	return nil
}

func (c *Collector) askTemplate(ctx context.Context, def render.Template) (render.Template, error) {
	names := render.Names()
	defIdx := 0
	if def.Valid() {
		defIdx = int(def)
	}
	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      "Template",
		Options:      names,
		DefaultIndex: defIdx,
	})
	if err != nil {
		return 0, err
	}
	templates := render.Templates()
	if idx < 0 || idx >= len(templates) {
		return 0, &render.UnknownTemplateError{Name: fmt.Sprintf("option %d", idx)}
	}
	return templates[idx], nil
}

// askColor offers the palette presets plus CustomColor. Non hex custom values
// are accepted with a warning.
func (c *Collector) askColor(ctx context.Context, defaults Answers) (string, string, error) {
	options := append(c.palettes.Names(), CustomColor)
	defIdx := indexOf(options, strings.ToLower(strings.TrimSpace(defaults.Palette)))
	if defIdx < 0 {
		defIdx = 0
	}

	idx, err := c.driver.Select(ctx, SelectConfig{
		Message:      "Color palette",
		Options:      options,
		DefaultIndex: defIdx,
	})
	if err != nil {
		return "", "", err
	}
	if idx >= 0 && idx < len(options)-1 {
		name := options[idx]
		accent, err := c.palettes.Accent(name)
		if err != nil {
			return "", "", err
		}
		return name, accent, nil
	}

	color, err := c.ask(ctx, "Primary color", defaults.Fields.Color, "Hex value such as #2563eb")
	if err != nil {
		return "", "", err
	}
	if trimmed := strings.TrimSpace(color); trimmed != "" && !site.IsHexColor(trimmed) {
		if err := c.driver.Info(ctx, fmt.Sprintf("Warning: %q is not a #RRGGBB color; page gradients may not render", trimmed)); err != nil {
			return "", "", err
		}
	}
	return CustomColor, color, nil
}
