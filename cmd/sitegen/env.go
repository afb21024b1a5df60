package main

import (
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/goliatone/go-sitegen/internal/logging"
	"github.com/goliatone/go-sitegen/pkg/prompt"
	"github.com/goliatone/go-sitegen/pkg/publish"
)

// Environment carries the process dependencies commands touch so tests can
// substitute them.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Now    func() time.Time
	Driver prompt.PromptDriver
	Open   publish.Opener

	// NewLogger builds the command logger. Nil selects logging.New.
	NewLogger func(level, format string) (*zap.Logger, error)
}

// DefaultEnvironment wires the real terminal, clock and browser.
func DefaultEnvironment() *Environment {
	return &Environment{
		Stdout: color.Output,
		Stderr: color.Error,
		Now:    time.Now,
		Driver: prompt.NewSurveyDriver(),
		Open:   publish.OpenInBrowser,

		NewLogger: logging.New,
	}
}

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	accentColor  = color.New(color.FgCyan)
)

func printError(env *Environment, err error) {
	errorColor.Fprintf(env.Stderr, "Error: %v\n", err)
}

func printWarning(env *Environment, format string, args ...any) {
	warnColor.Fprintf(env.Stderr, "Warning: "+format+"\n", args...)
}
