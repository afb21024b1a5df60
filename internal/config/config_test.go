package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Template != "Business" || cfg.OutputDir != "." || cfg.Escape != "none" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Serve.Addr != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr %q", cfg.Serve.Addr)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitegen.yaml")
	doc := "template: Blog\npalette: forest\noutput_dir: out\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SITEGEN_OUTPUT_DIR", "from-env")
	t.Setenv("SITEGEN_SERVE_ADDR", ":9999")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("template", "", "")
	flags.Bool("blank-feature", false, "")
	if err := flags.Parse([]string{"--template", "landing", "--blank-feature"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Template != "landing" {
		t.Fatalf("flag should win, got %q", cfg.Template)
	}
	if cfg.Palette != "forest" {
		t.Fatalf("file value expected, got %q", cfg.Palette)
	}
	if cfg.OutputDir != "from-env" {
		t.Fatalf("env should beat file, got %q", cfg.OutputDir)
	}
	if cfg.Serve.Addr != ":9999" {
		t.Fatalf("env addr expected, got %q", cfg.Serve.Addr)
	}
	if !cfg.BlankFeature {
		t.Fatalf("expected blank feature from flag")
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.File != path {
		t.Fatalf("unexpected config file %q", cfg.File)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}
