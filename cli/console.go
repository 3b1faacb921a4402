package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/cmdargs/cmd"
)

const prompt = "> "

// runConsole executes one command per input line until EOF, exit or quit.
// Failed commands are reported on errOut and do not end the loop.
func runConsole(ctx context.Context, m *cmd.Manager, in io.Reader, out, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		if code, err := m.Execute(ctx, line, out); err != nil {
			fmt.Fprintf(errOut, "error (%d): %v\n", code, err)
		}
	}
}
