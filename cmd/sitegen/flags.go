package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/goliatone/go-sitegen/pkg/site"
)

// siteFlags holds the form fields accepted on the command line.
type siteFlags struct {
	name        string
	description string
	email       string
	phone       string
	color       string
	features    string
	facebook    string
	twitter     string
	linkedin    string
}

// commonFlags holds flags shared by every page producing command.
type commonFlags struct {
	config      string
	site        string
	interactive bool
	output      string
	verbose     bool
	fields      siteFlags
}

// fieldFlags maps flag names to the RawFields they set.
var fieldFlags = []struct {
	name string
	set  func(*site.RawFields, string)
	get  func(siteFlags) string
}{
	{"name", func(r *site.RawFields, v string) { r.Name = v }, func(f siteFlags) string { return f.name }},
	{"description", func(r *site.RawFields, v string) { r.Description = v }, func(f siteFlags) string { return f.description }},
	{"email", func(r *site.RawFields, v string) { r.Email = v }, func(f siteFlags) string { return f.email }},
	{"phone", func(r *site.RawFields, v string) { r.Phone = v }, func(f siteFlags) string { return f.phone }},
	{"color", func(r *site.RawFields, v string) { r.Color = v }, func(f siteFlags) string { return f.color }},
	{"features", func(r *site.RawFields, v string) { r.Features, r.FeatureItems = v, nil }, func(f siteFlags) string { return f.features }},
	{"facebook", func(r *site.RawFields, v string) { r.Facebook = v }, func(f siteFlags) string { return f.facebook }},
	{"twitter", func(r *site.RawFields, v string) { r.Twitter = v }, func(f siteFlags) string { return f.twitter }},
	{"linkedin", func(r *site.RawFields, v string) { r.LinkedIn = v }, func(f siteFlags) string { return f.linkedin }},
}

func newPageFlagSet(name string, flags *commonFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false

	fs.String("template", "", "page template: business, portfolio, ecommerce, blog, landing, restaurant")
	fs.StringVar(&flags.fields.name, "name", "", "website name")
	fs.StringVar(&flags.fields.description, "description", "", "short description")
	fs.StringVar(&flags.fields.email, "email", "", "contact email")
	fs.StringVar(&flags.fields.phone, "phone", "", "contact phone")
	fs.StringVar(&flags.fields.color, "color", "", "accent color as #RRGGBB")
	fs.String("palette", "", "named accent palette (see 'sitegen palettes')")
	fs.StringVar(&flags.fields.features, "features", "", "comma separated features")
	fs.StringVar(&flags.fields.facebook, "facebook", "", "Facebook URL")
	fs.StringVar(&flags.fields.twitter, "twitter", "", "Twitter URL")
	fs.StringVar(&flags.fields.linkedin, "linkedin", "", "LinkedIn URL")

	fs.StringVar(&flags.site, "site", "", "site definition file (YAML or JSON)")
	fs.BoolVarP(&flags.interactive, "interactive", "i", false, "prompt for every field")
	fs.StringVarP(&flags.output, "output", "o", "", "output file, '-' for stdout")
	fs.String("output-dir", "", "directory for the default output file")
	fs.String("escape", "", "escape policy: none, html, sanitize")
	fs.Bool("blank-feature", false, "render one empty feature block when no features are given")

	addCommonFlags(fs, flags)
	return fs
}

func addCommonFlags(fs *flag.FlagSet, flags *commonFlags) {
	fs.StringVar(&flags.config, "config", "", "config file (default ./sitegen.yaml)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	fs.String("log-level", "", "log level: debug, info, warn, error")
	fs.String("log-format", "", "log format: console, json")
}

// parseFlags parses args and wraps failures as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	return nil
}

// applyFieldFlags copies every explicitly set field flag onto raw.
func applyFieldFlags(fs *flag.FlagSet, flags siteFlags, raw *site.RawFields) {
	for _, f := range fieldFlags {
		if fs.Changed(f.name) {
			f.set(raw, f.get(flags))
		}
	}
}
