// Package template defines the engine seam page renderers depend on. The
// default implementation lives in the gotemplate subpackage; callers can
// inject any engine that satisfies TemplateRenderer.
package template
