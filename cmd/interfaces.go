package cmd

import (
	"context"
	"io"

	"github.com/mwantia/cmdargs"
)

// Command represents a console command that receives one raw command line.
type Command interface {
	// Name returns the command identifier, matched against the first word of
	// a command line.
	Name() string

	// Description returns human-readable help text
	Description() string

	// DefineArgs registers the arguments of this command on a fresh parser.
	// It is called once per invocation, before the line is parsed.
	DefineArgs(parser *cmdargs.Parser) error

	// Execute runs the command with the parsed arguments.
	// Output is written to w. Returns exit code (0 = success) and error.
	Execute(ctx context.Context, inv *Invocation, w io.Writer) (int, error)
}
