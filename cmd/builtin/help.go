package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/cmdargs"
	"github.com/mwantia/cmdargs/cmd"
)

type HelpCommand struct {
	manager *cmd.Manager
}

func NewHelpCommand(m *cmd.Manager) *HelpCommand {
	return &HelpCommand{manager: m}
}

func (*HelpCommand) Name() string {
	return "help"
}

func (*HelpCommand) Description() string {
	return "Lists commands, or describes the arguments of one command"
}

func (*HelpCommand) DefineArgs(parser *cmdargs.Parser) error {
	return parser.AddArg("-command")
}

func (h *HelpCommand) Execute(ctx context.Context, inv *cmd.Invocation, w io.Writer) (int, error) {
	if inv.Args.Has("-command") {
		name, _ := inv.Args.GetString("-command")
		text, err := h.manager.Describe(name)
		if err != nil {
			return 1, err
		}
		fmt.Fprint(w, text)
		return 0, nil
	}

	commands := h.manager.List()
	width := 0
	for _, c := range commands {
		width = max(width, len(c.Name()))
	}

	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-*s    %s\n", width, c.Name(), c.Description())
	}
	return 0, nil
}
