package main

import (
	"fmt"
	"strings"
)

// exitError carries the exit code of a failed command up to main.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d: %v", e.code, e.err)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// joinLine rebuilds a command line from shell arguments. Arguments holding
// whitespace are wrapped in double quotes, the only quoting the parser reads.
func joinLine(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n\f\r") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}
