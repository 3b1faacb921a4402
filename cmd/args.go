package cmd

import (
	"strings"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/mwantia/cmdargs"
)

// Invocation is a single dispatched command line.
type Invocation struct {
	// Unique identifier, used to correlate log lines
	ID string

	// Command name as typed by the user
	Name string

	// Raw command line, including the command name
	Line string

	// Parser holding the successfully parsed arguments
	Args *cmdargs.Parser
}

// FormatValues renders every captured argument of parser in registration
// order as name=value pairs. Values are shell quoted so that whitespace and
// quotes inside them stay visible.
func FormatValues(parser *cmdargs.Parser) string {
	var parts []string
	for _, spec := range parser.Args() {
		value, ok := spec.Value()
		if !ok {
			continue
		}
		parts = append(parts, spec.Name()+"="+shellquote.Join(value))
	}
	return strings.Join(parts, " ")
}
