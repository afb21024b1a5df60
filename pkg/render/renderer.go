package render

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-sitegen/pkg/render/template"
	"github.com/goliatone/go-sitegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sitegen/pkg/site"
)

// ContentType is the media type of every rendered page.
const ContentType = "text/html; charset=utf-8"

// Renderer turns a normalized site.Record into a complete HTML document for
// one of the built-in pages. A Renderer is safe for concurrent use.
type Renderer struct {
	templates template.TemplateRenderer
	now       func() time.Time
	escape    EscapePolicy
}

// New constructs a Renderer backed by the embedded templates unless an
// alternate bundle or engine is supplied.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		now:    time.Now,
		escape: EscapeNone,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := registerPageFilters(); err != nil {
		return nil, fmt.Errorf("render: register filters: %w", err)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		files := cfg.templateFS
		if files == nil {
			files = TemplatesFS()
		}
		slugs := make([]string, 0, len(templateOrder))
		for _, t := range templateOrder {
			slugs = append(slugs, t.Slug())
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(files),
			gotemplate.WithTemplateFunc(pageFilters()),
			gotemplate.WithPreload(slugs...),
		)
		if err != nil {
			return nil, fmt.Errorf("render: load templates: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		now:       cfg.now,
		escape:    cfg.escape,
	}, nil
}

// Name identifies the renderer in logs.
func (r *Renderer) Name() string {
	return "sitegen"
}

// ContentType returns the media type of rendered pages.
func (r *Renderer) ContentType() string {
	return ContentType
}

// EscapePolicy reports the configured policy.
func (r *Renderer) EscapePolicy() EscapePolicy {
	if r == nil {
		return EscapeNone
	}
	return r.escape
}

// Render produces the page for t. Output is a single document starting with
// <!DOCTYPE html>; user text is interpolated per the escape policy.
func (r *Renderer) Render(t Template, record site.Record) (string, error) {
	if r == nil || r.templates == nil {
		return "", errors.New("render: renderer not initialised")
	}

	record = r.escape.apply(record)
	now := r.now()

	var data map[string]any
	switch t {
	case Business:
		data = businessContext(record, now)
	case Portfolio:
		data = portfolioContext(record)
	case Ecommerce:
		data = ecommerceContext(record)
	case Blog:
		data = blogContext(record, now)
	case Landing:
		data = landingContext(record)
	case Restaurant:
		data = restaurantContext(record, now)
	default:
		return "", &UnknownTemplateError{Name: t.String()}
	}

	html, err := r.templates.RenderTemplate(t.Slug(), data)
	if err != nil {
		return "", fmt.Errorf("render: %s: %w", t.Slug(), err)
	}
	return html, nil
}

// RenderByName resolves name with ParseTemplate before rendering.
func (r *Renderer) RenderByName(name string, record site.Record) (string, error) {
	t, err := ParseTemplate(name)
	if err != nil {
		return "", err
	}
	return r.Render(t, record)
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
	defaultErr      error
)

// Default returns a shared Renderer using the embedded templates, the system
// clock and EscapeNone.
func Default() (*Renderer, error) {
	defaultOnce.Do(func() {
		defaultRenderer, defaultErr = New()
	})
	return defaultRenderer, defaultErr
}

// Render renders the named page with the shared default Renderer.
func Render(name string, record site.Record) (string, error) {
	t, err := ParseTemplate(name)
	if err != nil {
		return "", err
	}
	renderer, err := Default()
	if err != nil {
		return "", err
	}
	return renderer.Render(t, record)
}

// pageFilters are the pongo2 filters the page templates depend on.
func pageFilters() map[string]any {
	return map[string]any{
		"alpha": pongo2.FilterFunction(filterAlpha),
	}
}

var filtersOnce sync.Once
var filtersErr error

// registerPageFilters installs pageFilters in the process-wide pongo2 table so
// injected engines can parse the embedded templates too.
func registerPageFilters() error {
	filtersOnce.Do(func() {
		for name, fn := range pageFilters() {
			if pongo2.FilterExists(name) {
				continue
			}
			if err := pongo2.RegisterFilter(name, fn.(pongo2.FilterFunction)); err != nil {
				filtersErr = err
				return
			}
		}
	})
	return filtersErr
}

// filterAlpha appends a two digit hex alpha to a #rrggbb color, so
// {{ accent|alpha:"dd" }} becomes #2563ebdd.
func filterAlpha(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if param == nil {
		return in, nil
	}
	return pongo2.AsValue(in.String() + param.String()), nil
}
