package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS env; runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], DefaultEnvironment())
	stop()

	if code != ExitSuccess {
		os.Exit(code)
	}
}

// run dispatches a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(ctx, args[1:], env)
	case "preview":
		err = runPreview(ctx, args[1:], env)
	case "serve":
		err = runServe(ctx, args[1:], env)
	case "templates":
		err = runTemplates(env)
	case "palettes":
		err = runPalettes(env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "sitegen %s\n", Version)
	case "help", "-h", "--help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil && !errors.Is(err, flag.ErrHelp) {
		printError(env, err)
	}
	return exitCodeFor(err)
}
