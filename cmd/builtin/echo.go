package builtin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/cmdargs"
	"github.com/mwantia/cmdargs/cmd"
)

const maxEchoRepeat = 100

type EchoCommand struct {
}

func (*EchoCommand) Name() string {
	return "echo"
}

func (*EchoCommand) Description() string {
	return "Writes -text back, optionally repeated and upper-cased"
}

func (*EchoCommand) DefineArgs(parser *cmdargs.Parser) error {
	if err := parser.AddArg("-text", cmdargs.Required()); err != nil {
		return err
	}
	if err := parser.AddArg("-repeat", cmdargs.OfType(cmdargs.Integer)); err != nil {
		return err
	}
	return parser.AddArg("-upper", cmdargs.OfType(cmdargs.Bool))
}

func (*EchoCommand) Execute(ctx context.Context, inv *cmd.Invocation, w io.Writer) (int, error) {
	text, _ := inv.Args.GetString("-text")

	repeat := 1
	if inv.Args.Has("-repeat") {
		repeat, _ = inv.Args.GetInt("-repeat")
	}
	if repeat < 1 || repeat > maxEchoRepeat {
		return 2, fmt.Errorf("echo: -repeat must be between 1 and %d, got %d", maxEchoRepeat, repeat)
	}

	if inv.Args.Has("-upper") {
		if upper, _ := inv.Args.GetBool("-upper"); upper {
			text = strings.ToUpper(text)
		}
	}

	for range repeat {
		fmt.Fprintln(w, text)
	}
	return 0, nil
}
