package render

import (
	"io/fs"
	"os"
	"time"

	rendertemplate "github.com/goliatone/go-sitegen/pkg/render/template"
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	now              func() time.Time
	escape           EscapePolicy
}

// WithClock overrides time.Now. Business, Restaurant and Blog pages stamp the
// current year or date, so tests pin the clock for byte-identical output.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithEscapePolicy selects how user text is treated. Default EscapeNone.
func WithEscapePolicy(policy EscapePolicy) Option {
	return func(cfg *config) {
		cfg.escape = policy
	}
}

// WithTemplatesFS supplies an alternate template bundle. It must contain one
// <slug>.tpl file per page.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom engine. It takes precedence over
// WithTemplatesFS and WithTemplatesDir.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}
