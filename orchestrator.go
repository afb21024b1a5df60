// Package sitegen turns a handful of site fields into a complete single file
// HTML page using one of six built-in templates.
package sitegen

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/site"
	"github.com/goliatone/go-sitegen/pkg/sitefile"
)

// Request describes one page to generate. Exactly one of Fields, Definition
// or Source supplies the input. Template overrides the definition's own
// template when set.
type Request struct {
	Template   string
	Fields     *site.RawFields
	Definition *sitefile.Definition
	Source     sitefile.Source
}

// Result carries the rendered page and the record it was built from.
type Result struct {
	Template render.Template
	Record   site.Record
	HTML     string
}

// Generator runs normalize, validate and render.
type Generator struct {
	renderer  *render.Renderer
	normalize []site.NormalizeOption
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer supplies a configured renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(g *Generator) {
		if r != nil {
			g.renderer = r
		}
	}
}

// WithNormalizeOptions forwards options to site.Normalize.
func WithNormalizeOptions(opts ...site.NormalizeOption) Option {
	return func(g *Generator) {
		g.normalize = append(g.normalize, opts...)
	}
}

// New constructs a Generator. Without WithRenderer the shared default
// renderer is used.
func New(options ...Option) *Generator {
	g := &Generator{}
	for _, opt := range options {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Generate resolves the request input and renders it.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	renderer := g.renderer
	if renderer == nil {
		var err error
		if renderer, err = render.Default(); err != nil {
			return Result{}, err
		}
	}

	raw, tmpl, err := g.resolve(ctx, req)
	if err != nil {
		return Result{}, err
	}

	record := site.Normalize(raw, g.normalize...)
	if err := site.Validate(record); err != nil {
		return Result{}, err
	}

	html, err := renderer.Render(tmpl, record)
	if err != nil {
		return Result{}, err
	}
	return Result{Template: tmpl, Record: record, HTML: html}, nil
}

func (g *Generator) resolve(ctx context.Context, req Request) (site.RawFields, render.Template, error) {
	def := req.Definition
	if def == nil && req.Source != nil {
		loaded, err := sitefile.Load(ctx, req.Source)
		if err != nil {
			return site.RawFields{}, 0, err
		}
		def = &loaded
	}

	var raw site.RawFields
	tmpl := render.Business
	switch {
	case req.Fields != nil:
		raw = *req.Fields
	case def != nil:
		raw = def.Raw()
		kind, err := def.TemplateKind()
		if err != nil {
			return site.RawFields{}, 0, err
		}
		tmpl = kind
	default:
		return site.RawFields{}, 0, errors.New("sitegen: request has no input")
	}

	if req.Template != "" {
		kind, err := render.ParseTemplate(req.Template)
		if err != nil {
			return site.RawFields{}, 0, err
		}
		tmpl = kind
	}
	return raw, tmpl, nil
}

// Generate normalizes raw, checks the name is present and renders the named
// template with a renderer built from opts.
func Generate(templateName string, raw site.RawFields, opts ...render.Option) (string, error) {
	tmpl, err := render.ParseTemplate(templateName)
	if err != nil {
		return "", err
	}
	renderer, err := rendererFor(opts)
	if err != nil {
		return "", err
	}
	result, err := New(WithRenderer(renderer)).Generate(context.Background(), Request{
		Template: tmpl.Slug(),
		Fields:   &raw,
	})
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// GenerateFromFile renders the site definition stored at path.
func GenerateFromFile(ctx context.Context, path string, opts ...render.Option) (Result, error) {
	renderer, err := rendererFor(opts)
	if err != nil {
		return Result{}, err
	}
	return New(WithRenderer(renderer)).Generate(ctx, Request{
		Source: sitefile.SourceFromFile(path),
	})
}

func rendererFor(opts []render.Option) (*render.Renderer, error) {
	if len(opts) == 0 {
		return render.Default()
	}
	r, err := render.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("sitegen: build renderer: %w", err)
	}
	return r, nil
}
