package render_test

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/site"
	"github.com/goliatone/go-sitegen/pkg/testsupport"
)

func newRenderer(t *testing.T, opts ...render.Option) *render.Renderer {
	t.Helper()
	opts = append([]render.Option{render.WithClock(testsupport.FixedClock())}, opts...)
	r, err := render.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func TestRenderer_EveryTemplateIsOneDocument(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()

	for _, tmpl := range render.Templates() {
		t.Run(tmpl.Slug(), func(t *testing.T) {
			out, err := r.Render(tmpl, record)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.HasPrefix(out, "<!DOCTYPE html>") {
				t.Fatalf("output does not start with doctype: %q", out[:min(40, len(out))])
			}
			if got := strings.Count(out, "<!DOCTYPE html>"); got != 1 {
				t.Fatalf("expected one doctype, got %d", got)
			}
			if !strings.Contains(out, "<html") || !strings.Contains(out, "</html>") {
				t.Fatalf("missing html wrapper")
			}
			if !strings.Contains(out, "<title>Acme</title>") {
				t.Fatalf("missing title")
			}
		})
	}
}

func TestRenderer_Idempotent(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()

	for _, tmpl := range render.Templates() {
		first, err := r.Render(tmpl, record)
		if err != nil {
			t.Fatalf("render %s: %v", tmpl, err)
		}
		second, err := r.Render(tmpl, record)
		if err != nil {
			t.Fatalf("render %s: %v", tmpl, err)
		}
		if diff := testsupport.CompareGolden(first, second); diff != "" {
			t.Fatalf("%s output changed between renders (-first +second):\n%s", tmpl, diff)
		}
	}
}

func TestRenderer_BusinessAccentColor(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()
	record.AccentColor = "#ff00aa"

	out, err := r.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(out, "#ff00aa"); got < 10 {
		t.Fatalf("expected at least 10 accent occurrences, got %d", got)
	}
	for _, suffix := range []string{"#ff00aadd", "#ff00aa22", "#ff00aa44"} {
		if !strings.Contains(out, suffix) {
			t.Fatalf("expected alpha variant %q", suffix)
		}
	}
}

func TestRenderer_BusinessAcmeScenario(t *testing.T) {
	r := newRenderer(t)
	record := site.Normalize(testsupport.AcmeRaw())

	out, err := r.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := strings.Count(out, `class="feature"`); got != 2 {
		t.Fatalf("expected 2 feature blocks, got %d", got)
	}
	testsupport.AssertContainsInOrder(t, out, "<h3>A</h3>", "<h3>B</h3>")

	if got := strings.Count(out, `class="social-link"`); got != 1 {
		t.Fatalf("expected 1 social link, got %d", got)
	}
	if !strings.Contains(out, `<a href="https://fb.com/acme" class="social-link">Facebook</a>`) {
		t.Fatalf("missing facebook anchor")
	}
	if strings.Contains(out, ">Twitter<") || strings.Contains(out, ">LinkedIn<") {
		t.Fatalf("unexpected empty social anchors")
	}
	if !strings.Contains(out, "2025") {
		t.Fatalf("expected copyright year")
	}
	if !strings.Contains(out, site.DefaultAccentColor) {
		t.Fatalf("expected default accent color")
	}
}

func TestRenderer_FeatureFanOut(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()
	record.Features = []string{"Go", "Rust", "Zig"}

	cases := []struct {
		tmpl render.Template
		want []string
	}{
		{render.Business, []string{"<h3>Go</h3>", "<h3>Rust</h3>", "<h3>Zig</h3>"}},
		{render.Portfolio, []string{"<h3>Go</h3>", "<h3>Rust</h3>", "<h3>Zig</h3>"}},
		{render.Landing, []string{"<h3>Go</h3>", "<h3>Rust</h3>", "<h3>Zig</h3>"}},
		{render.Restaurant, []string{">Go</div>", ">Rust</div>", ">Zig</div>"}},
	}
	for _, tc := range cases {
		out, err := r.Render(tc.tmpl, record)
		if err != nil {
			t.Fatalf("render %s: %v", tc.tmpl, err)
		}
		testsupport.AssertContainsInOrder(t, out, tc.want...)
	}
}

func TestRenderer_EmptyFeatures(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()
	record.Features = nil

	out, err := r.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(out, `class="feature"`); got != 0 {
		t.Fatalf("expected no feature blocks, got %d", got)
	}

	record = site.Normalize(site.RawFields{Name: "X"}, site.WithBlankFeature())
	out, err = r.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := strings.Count(out, `class="feature"`); got != 1 {
		t.Fatalf("expected one blank feature block, got %d", got)
	}
}

func TestRenderer_FixedContent(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()

	out, err := r.Render(render.Ecommerce, record)
	if err != nil {
		t.Fatalf("render ecommerce: %v", err)
	}
	testsupport.AssertContainsInOrder(t, out,
		"Product 1", "$99.99",
		"Product 2", "$149.99",
		"Product 3", "$79.99",
		"Product 4", "$199.99",
	)

	out, err = r.Render(render.Blog, record)
	if err != nil {
		t.Fatalf("render blog: %v", err)
	}
	testsupport.AssertContainsInOrder(t, out, "Welcome to My Blog", "Getting Started")
	if got := strings.Count(out, "Posted on March 05, 2025"); got != 2 {
		t.Fatalf("expected 2 dated posts, got %d", got)
	}

	out, err = r.Render(render.Restaurant, record)
	if err != nil {
		t.Fatalf("render restaurant: %v", err)
	}
	for _, dish := range render.MenuTeaser() {
		if !strings.Contains(out, dish.Name) {
			t.Fatalf("missing dish %q", dish.Name)
		}
	}
}

func TestRenderer_ContactLinks(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()

	out, err := r.Render(render.Portfolio, record)
	if err != nil {
		t.Fatalf("render portfolio: %v", err)
	}
	if !strings.Contains(out, `href="mailto:a@acme.io"`) {
		t.Fatalf("portfolio missing mailto link")
	}

	out, err = r.Render(render.Landing, record)
	if err != nil {
		t.Fatalf("render landing: %v", err)
	}
	if !strings.Contains(out, `href="#a@acme.io"`) {
		t.Fatalf("landing missing fragment link")
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r := newRenderer(t)

	_, err := r.Render(render.Template(42), testsupport.AcmeRecord())
	if !errors.Is(err, render.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}

	_, err = r.RenderByName("Wiki", testsupport.AcmeRecord())
	var unknown *render.UnknownTemplateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTemplateError, got %v", err)
	}
	if unknown.Name != "Wiki" {
		t.Fatalf("unexpected name %q", unknown.Name)
	}

	if _, err := render.Render("", testsupport.AcmeRecord()); !errors.Is(err, render.ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate for empty name, got %v", err)
	}
}

func TestRenderer_EscapePolicies(t *testing.T) {
	record := testsupport.AcmeRecord()
	record.Name = `<b>Acme</b>`
	record.Social.Facebook = "javascript:alert(1)"

	raw := newRenderer(t)
	out, err := raw.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<title><b>Acme</b></title>") {
		t.Fatalf("expected verbatim interpolation by default")
	}

	escaped := newRenderer(t, render.WithEscapePolicy(render.EscapeHTML))
	out, err = escaped.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<title>&lt;b&gt;Acme&lt;/b&gt;</title>") {
		t.Fatalf("expected escaped name")
	}

	sanitized := newRenderer(t, render.WithEscapePolicy(render.EscapeSanitize))
	out, err = sanitized.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<title>Acme</title>") {
		t.Fatalf("expected markup stripped from name")
	}
	if strings.Contains(out, "javascript:") {
		t.Fatalf("expected unsafe link dropped")
	}
	if strings.Contains(out, `class="social-link"`) {
		t.Fatalf("expected no social anchors once the link is dropped")
	}

	if record.Name != `<b>Acme</b>` {
		t.Fatalf("escape policy mutated the caller's record")
	}
}

func TestRenderer_EscapeNoneKeepsMarkupInEveryField(t *testing.T) {
	const markup = `<i a="1">&</i>`

	record := testsupport.AcmeRecord()
	record.Name = "name" + markup
	record.Description = "description" + markup
	record.Email = "email" + markup
	record.Phone = "phone" + markup
	record.Features = []string{"feature" + markup}
	record.Social = site.Social{Facebook: "https://fb.example/" + markup}

	r := newRenderer(t, render.WithEscapePolicy(render.EscapeNone))
	out, err := r.Render(render.Business, record)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	cases := map[string]string{
		"name":        "<title>" + record.Name + "</title>",
		"description": "<p>" + record.Description + "</p>",
		"email":       "<strong>Email:</strong> " + record.Email,
		"phone":       "<strong>Phone:</strong> " + record.Phone,
		"feature":     "<h3>" + record.Features[0] + "</h3>",
		"social url":  `href="` + record.Social.Facebook + `"`,
	}
	for field, want := range cases {
		if !strings.Contains(out, want) {
			t.Errorf("%s not interpolated verbatim, want %q", field, want)
		}
	}
	for _, entity := range []string{"&lt;", "&gt;", "&amp;", "&quot;", "&#34;", "&#39;"} {
		if strings.Contains(out, entity) {
			t.Errorf("unexpected entity %q under EscapeNone", entity)
		}
	}
}

func TestRenderer_InvalidUTF8Replaced(t *testing.T) {
	record := testsupport.AcmeRecord()
	record.Name = "caf\xe9"
	record.Features = []string{"bad\xffbyte"}

	for _, policy := range []render.EscapePolicy{render.EscapeNone, render.EscapeHTML, render.EscapeSanitize} {
		t.Run(policy.String(), func(t *testing.T) {
			out, err := newRenderer(t, render.WithEscapePolicy(policy)).Render(render.Business, record)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !utf8.ValidString(out) {
				t.Fatalf("output is not valid UTF-8")
			}
			if !strings.Contains(out, "<title>caf\uFFFD</title>") {
				t.Fatalf("expected replacement character in title")
			}
			if !strings.Contains(out, "bad\uFFFDbyte") {
				t.Fatalf("expected replacement character in feature")
			}
		})
	}
}

func TestParseEscapePolicy(t *testing.T) {
	cases := map[string]render.EscapePolicy{
		"":         render.EscapeNone,
		"none":     render.EscapeNone,
		"HTML":     render.EscapeHTML,
		"sanitize": render.EscapeSanitize,
	}
	for input, want := range cases {
		got, err := render.ParseEscapePolicy(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %s got %s", input, want, got)
		}
	}
	if _, err := render.ParseEscapePolicy("bogus"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestParseTemplate(t *testing.T) {
	cases := map[string]render.Template{
		"Business":     render.Business,
		"landing page": render.Landing,
		" landing ":    render.Landing,
		"E-commerce":   render.Ecommerce,
		"ecommerce":    render.Ecommerce,
		"RESTAURANT":   render.Restaurant,
	}
	for input, want := range cases {
		got, err := render.ParseTemplate(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		if got != want {
			t.Fatalf("parse %q: want %s got %s", input, want, got)
		}
	}

	want := []string{"Business", "Portfolio", "E-commerce", "Blog", "Landing Page", "Restaurant"}
	if diff := testsupport.CompareGolden(want, render.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog(t *testing.T) {
	catalog := render.Catalog()
	if len(catalog) != len(render.Templates()) {
		t.Fatalf("expected %d descriptors, got %d", len(render.Templates()), len(catalog))
	}
	for i, desc := range catalog {
		if desc.Template != render.Templates()[i] {
			t.Fatalf("descriptor %d out of order", i)
		}
		if desc.Summary == "" {
			t.Fatalf("descriptor %s missing summary", desc.Slug)
		}
	}
}

func TestRenderer_CustomTemplatesFS(t *testing.T) {
	files := fstest.MapFS{}
	for _, tmpl := range render.Templates() {
		files[tmpl.Slug()+".tpl"] = &fstest.MapFile{
			Data: []byte(`{% autoescape off %}<!DOCTYPE html><html>` + tmpl.Slug() + `:{{ site.name }}:{{ accent|alpha:"80" }}</html>{% endautoescape %}`),
		}
	}

	r := newRenderer(t, render.WithTemplatesFS(files))
	out, err := r.Render(render.Blog, testsupport.AcmeRecord())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<!DOCTYPE html><html>blog:Acme:#2563eb80</html>"
	if out != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderer_MissingTemplateFailsAtConstruction(t *testing.T) {
	_, err := render.New(render.WithTemplatesFS(fstest.MapFS{
		"business.tpl": {Data: []byte("<!DOCTYPE html>")},
	}))
	if err == nil {
		t.Fatalf("expected error for incomplete bundle")
	}
}

func TestRenderer_ConcurrentUse(t *testing.T) {
	r := newRenderer(t)
	record := testsupport.AcmeRecord()

	var wg sync.WaitGroup
	errs := make(chan error, len(render.Templates())*4)
	for i := 0; i < 4; i++ {
		for _, tmpl := range render.Templates() {
			wg.Add(1)
			go func(tmpl render.Template) {
				defer wg.Done()
				if _, err := r.Render(tmpl, record); err != nil {
					errs <- err
				}
			}(tmpl)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent render: %v", err)
	}
}
