package main

import (
	"errors"

	flag "github.com/spf13/pflag"

	"github.com/goliatone/go-sitegen/pkg/prompt"
)

// Exit codes follow Unix conventions: 0 success, 1 general, 2 usage and
// 130 for an interrupted prompt.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2
	ExitAborted = 130
)

// errUsage marks flag and argument problems.
var errUsage = errors.New("usage")

func exitCodeFor(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitSuccess
	case errors.Is(err, prompt.ErrAborted):
		return ExitAborted
	case errors.Is(err, errUsage):
		return ExitUsage
	default:
		return ExitGeneral
	}
}
