package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/goliatone/go-sitegen"
	"github.com/goliatone/go-sitegen/internal/config"
	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/palette"
	"github.com/goliatone/go-sitegen/pkg/preview"
	"github.com/goliatone/go-sitegen/pkg/prompt"
	"github.com/goliatone/go-sitegen/pkg/publish"
	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/site"
	"github.com/goliatone/go-sitegen/pkg/sitefile"
)

// pageCommand is a parsed generate or preview invocation. The logger is
// built while parsing, so callers sync it whether or not the page builds.
type pageCommand struct {
	fs     *flag.FlagSet
	flags  commonFlags
	cfg    *config.Config
	logger *zap.Logger
}

func runGenerate(ctx context.Context, args []string, env *Environment) error {
	cmd, err := newPageCommand("generate", args, env)
	if err != nil {
		return err
	}
	defer cmd.logger.Sync()

	result, err := cmd.build(ctx, env)
	if err != nil {
		return err
	}

	if cmd.flags.output == "-" {
		_, err := fmt.Fprint(env.Stdout, result.HTML)
		return err
	}

	target := cmd.flags.output
	if target == "" {
		target = filepath.Join(cmd.cfg.OutputDir, site.SuggestedFilename(result.Record.Name))
	}
	path, err := publish.WriteFile(target, result.HTML)
	if err != nil {
		return err
	}
	cmd.logger.Info("page written", zap.String("path", path), zap.String("template", result.Template.Slug()))

	successColor.Fprintf(env.Stdout, "✓ %s website generated successfully!\n", result.Template)
	fmt.Fprintf(env.Stdout, "  Saved to %s\n", path)
	return nil
}

func runPreview(ctx context.Context, args []string, env *Environment) error {
	cmd, err := newPageCommand("preview", args, env)
	if err != nil {
		return err
	}
	defer cmd.logger.Sync()

	result, err := cmd.build(ctx, env)
	if err != nil {
		return err
	}

	previewer := publish.Previewer{Open: env.Open}
	if cmd.flags.output != "" && cmd.flags.output != "-" {
		previewer.Dir = cmd.flags.output
	}
	path, err := previewer.Preview(result.HTML)
	if err != nil {
		return err
	}
	accentColor.Fprintf(env.Stdout, "Previewing %s\n", path)
	return nil
}

func runServe(ctx context.Context, args []string, env *Environment) error {
	var flags commonFlags
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.StringVar(&flags.site, "site", "", "site definition file to serve (required)")
	fs.String("addr", "", "listen address (default 127.0.0.1:8080)")
	fs.String("escape", "", "escape policy: none, html, sanitize")
	fs.Bool("blank-feature", false, "render one empty feature block when no features are given")
	addCommonFlags(fs, &flags)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if flags.site == "" {
		return fmt.Errorf("%w: --site is required", errUsage)
	}

	cfg, logger, err := loadSettings(flags, fs, env)
	if err != nil {
		return err
	}
	defer logger.Sync()

	renderer, err := newRenderer(cfg, env)
	if err != nil {
		return err
	}
	srv, err := preview.New(ctx, flags.site,
		preview.WithRenderer(renderer),
		preview.WithLogger(logger),
		preview.WithNormalizeOptions(normalizeOptions(cfg)...),
	)
	if err != nil {
		return err
	}

	go func() {
		if err := srv.Watch(ctx, nil); err != nil {
			logger.Error("watch stopped", zap.Error(err))
		}
	}()

	accentColor.Fprintf(env.Stdout, "Serving %s on http://%s\n", srv.Path(), cfg.Serve.Addr)
	return srv.ListenAndServe(ctx, cfg.Serve.Addr)
}

func runTemplates(env *Environment) error {
	w := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	for _, desc := range render.Catalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", desc.Slug, desc.Name, desc.Summary)
	}
	return w.Flush()
}

func runPalettes(env *Environment) error {
	palettes := palette.Default()
	w := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	for _, name := range palettes.Names() {
		tokens, err := palettes.Tokens(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, tokens[palette.TokenAccent], tokens[palette.TokenSecondary])
	}
	return w.Flush()
}

func newPageCommand(name string, args []string, env *Environment) (*pageCommand, error) {
	cmd := &pageCommand{}
	cmd.fs = newPageFlagSet(name, &cmd.flags)
	cmd.fs.SetOutput(env.Stderr)
	if err := parseFlags(cmd.fs, args); err != nil {
		return nil, err
	}

	var err error
	if cmd.cfg, cmd.logger, err = loadSettings(cmd.flags, cmd.fs, env); err != nil {
		return nil, err
	}
	return cmd, nil
}

// build gathers fields from the site file, flags and optional prompts, then
// renders the page. Flags override the site file; prompts start from the
// merged values.
func (c *pageCommand) build(ctx context.Context, env *Environment) (sitegen.Result, error) {
	answers := prompt.DefaultAnswers()
	templateName := c.cfg.Template
	var siteColor, sitePalette string

	if c.flags.site != "" {
		def, err := sitefile.Load(ctx, sitefile.SourceFromFile(c.flags.site))
		if err != nil {
			return sitegen.Result{}, err
		}
		c.logger.Debug("loaded site definition", zap.String("path", def.Location))
		answers.Fields = def.Raw()
		if strings.TrimSpace(def.Template) != "" && !c.fs.Changed("template") {
			templateName = def.Template
		}
		siteColor = strings.TrimSpace(def.Color)
		sitePalette = strings.TrimSpace(def.Palette)
	}

	var err error
	if answers.Template, err = render.ParseTemplate(templateName); err != nil {
		return sitegen.Result{}, err
	}
	applyFieldFlags(c.fs, c.flags.fields, &answers.Fields)

	if err := c.applyAccent(siteColor, sitePalette, &answers); err != nil {
		return sitegen.Result{}, err
	}

	if c.flags.interactive {
		collector := prompt.New(prompt.WithPromptDriver(env.Driver))
		if answers, err = collector.Collect(ctx, answers); err != nil {
			return sitegen.Result{}, err
		}
	}

	renderer, err := newRenderer(c.cfg, env)
	if err != nil {
		return sitegen.Result{}, err
	}
	gen := sitegen.New(
		sitegen.WithRenderer(renderer),
		sitegen.WithNormalizeOptions(normalizeOptions(c.cfg)...),
	)
	result, err := gen.Generate(ctx, sitegen.Request{
		Template: answers.Template.Slug(),
		Fields:   &answers.Fields,
	})
	if err != nil {
		return sitegen.Result{}, err
	}

	if !site.IsHexColor(result.Record.AccentColor) {
		printWarning(env, "%q is not a #RRGGBB color; gradients may not render", result.Record.AccentColor)
	}
	c.logger.Debug("rendered page",
		zap.String("template", result.Template.Slug()),
		zap.String("palette", answers.Palette),
		zap.Int("bytes", len(result.HTML)),
	)
	return result, nil
}

// applyAccent settles the accent color and the palette the color prompt
// starts on. Highest first: --color, --palette, a site file color, a site
// file palette, then a palette from the config file.
func (c *pageCommand) applyAccent(siteColor, sitePalette string, answers *prompt.Answers) error {
	switch {
	case c.fs.Changed("color"):
		answers.Palette = prompt.CustomColor
	case c.fs.Changed("palette"):
		return usePalette(c.cfg.Palette, answers)
	case siteColor != "":
		answers.Palette = prompt.CustomColor
	case sitePalette != "":
		return usePalette(sitePalette, answers)
	case strings.TrimSpace(c.cfg.Palette) != "":
		return usePalette(c.cfg.Palette, answers)
	}
	return nil
}

func usePalette(name string, answers *prompt.Answers) error {
	accent, err := palette.Accent(name)
	if err != nil {
		return err
	}
	answers.Palette = strings.ToLower(strings.TrimSpace(name))
	answers.Fields.Color = accent
	return nil
}

func loadSettings(flags commonFlags, fs *flag.FlagSet, env *Environment) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(flags.config, fs)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	newLogger := env.NewLogger
	if newLogger == nil {
		newLogger = logging.New
	}
	logger, err := newLogger(level, cfg.Log.Format)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if cfg.File != "" {
		logger.Debug("using config file", zap.String("path", cfg.File))
	}
	return cfg, logger, nil
}

func newRenderer(cfg *config.Config, env *Environment) (*render.Renderer, error) {
	policy, err := render.ParseEscapePolicy(cfg.Escape)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	return render.New(render.WithClock(env.Now), render.WithEscapePolicy(policy))
}

func normalizeOptions(cfg *config.Config) []site.NormalizeOption {
	if cfg.BlankFeature {
		return []site.NormalizeOption{site.WithBlankFeature()}
	}
	return nil
}
