package builtin

import (
	"context"
	"fmt"
	"io"

	"github.com/mwantia/cmdargs"
	"github.com/mwantia/cmdargs/cmd"
)

// SpawnCommand reports where a number of actors would be placed. It exists to
// exercise every argument type from the console.
type SpawnCommand struct {
}

func (*SpawnCommand) Name() string {
	return "spawn"
}

func (*SpawnCommand) Description() string {
	return "Places -count actors at -pos"
}

func (*SpawnCommand) DefineArgs(parser *cmdargs.Parser) error {
	args := []struct {
		name string
		opts []cmdargs.ArgOption
	}{
		{"-pos", []cmdargs.ArgOption{cmdargs.Required(), cmdargs.OfType(cmdargs.Vector)}},
		{"-count", []cmdargs.ArgOption{cmdargs.OfType(cmdargs.Integer)}},
		{"-scale", []cmdargs.ArgOption{cmdargs.OfType(cmdargs.Float)}},
		{"-name", nil},
	}

	for _, arg := range args {
		if err := parser.AddArg(arg.name, arg.opts...); err != nil {
			return err
		}
	}
	return nil
}

func (*SpawnCommand) Execute(ctx context.Context, inv *cmd.Invocation, w io.Writer) (int, error) {
	pos, _ := inv.Args.GetVector("-pos")

	count := int32(1)
	if inv.Args.Has("-count") {
		count, _ = inv.Args.GetInt32("-count")
	}
	if count < 0 {
		return 2, fmt.Errorf("spawn: -count must not be negative, got %d", count)
	}

	scale := 1.0
	if inv.Args.Has("-scale") {
		scale, _ = inv.Args.GetFloat64("-scale")
	}

	name := "actor"
	if inv.Args.Has("-name") {
		name, _ = inv.Args.GetString("-name")
	}

	for i := range count {
		if err := ctx.Err(); err != nil {
			return 1, err
		}
		fmt.Fprintf(w, "%s #%d at %s scale %.3f\n", name, i+1, pos, scale)
	}
	return 0, nil
}
