package template_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	gotemplatepkg "github.com/goliatone/go-template"

	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sitegen/pkg/testsupport"
)

var templateFixtures = fstest.MapFS{
	"hello.tpl":      {Data: []byte(`Hello {{ name }}!`)},
	"use-global.tpl": {Data: []byte(`env={{ settings.env }}`)},
	"use-filter.tpl": {Data: []byte(`{{ name|shout }}`)},
	"raw.tpl":        {Data: []byte(`{% autoescape off %}{{ site.name }}{% endautoescape %}|{{ site.name }}`)},
	"list.tpl":       {Data: []byte(`{% for item in items %}[{{ item }}]{% endfor %}`)},
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	result, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output %q", result)
	}

	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}
}

func TestGoTemplateEngine_StructDataUsesJSONTags(t *testing.T) {
	engine := newEngine(t)

	type record struct {
		Name string `json:"name"`
	}

	result, err := engine.RenderTemplate("raw", map[string]any{"site": record{Name: "<b>Acme</b>"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<b>Acme</b>|&lt;b&gt;Acme&lt;/b&gt;"
	if result != want {
		t.Fatalf("autoescape mismatch\nwant: %q\n got: %q", want, result)
	}
}

func TestGoTemplateEngine_RenderStringAndLists(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": "1", "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "1-two" {
		t.Fatalf("unexpected inline output %q", out)
	}

	out, err = engine.Render("list", map[string]any{"items": []string{"x", "y"}})
	if err != nil {
		t.Fatalf("render list: %v", err)
	}
	if out != "[x][y]" {
		t.Fatalf("unexpected list output %q", out)
	}
}

func TestGoTemplateEngine_NumbersArriveAsFloats(t *testing.T) {
	engine := newEngine(t)

	out, err := engine.Render("{{ n|floatformat:0 }}", map[string]any{"n": 2025})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "2025" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGoTemplateEngine_ForwardsGoTemplateOptions(t *testing.T) {
	engine, err := gotemplate.New(
		gotemplate.WithFS(templateFixtures),
		gotemplate.WithGoTemplateOptions(gotemplatepkg.WithGlobalData(map[string]any{
			"settings": map[string]any{"env": "production"},
		})),
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "env=production" {
		t.Fatalf("go-template option not applied, got %q", out)
	}
}

func TestGoTemplateEngine_PostHook(t *testing.T) {
	engine := newEngine(t)
	engine.RegisterPostHook(func(ctx *gotemplatepkg.HookContext) (string, error) {
		return strings.TrimSuffix(ctx.Output, "!") + "?", nil
	})

	out, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Ada?" {
		t.Fatalf("post hook not applied, got %q", out)
	}
}

func TestGoTemplateEngine_RendersEmbeddedPages(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithFS(render.TemplatesFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	renderer, err := render.New(
		render.WithTemplateRenderer(engine),
		render.WithClock(testsupport.FixedClock()),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(render.Business, testsupport.AcmeRecord())
	if err != nil {
		t.Fatalf("render business: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype")
	}
	if !strings.Contains(out, "&copy; 2025 Acme.") {
		t.Fatalf("expected integer year in footer")
	}
}

func TestGoTemplateEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestGoTemplateEngine_PreloadFailsFast(t *testing.T) {
	_, err := gotemplate.New(gotemplate.WithFS(templateFixtures), gotemplate.WithPreload("hello", "missing"))
	if err == nil {
		t.Fatalf("expected preload error")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(templateFixtures))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
