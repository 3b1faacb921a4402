package catalog

import (
	"context"
	"fmt"
	"io"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/mwantia/cmdargs"
	"github.com/mwantia/cmdargs/cmd"
)

// SchemaCommand is a command declared by a schema. Executing it prints every
// captured argument on its own line.
type SchemaCommand struct {
	schema *Schema
}

func NewSchemaCommand(schema *Schema) *SchemaCommand {
	return &SchemaCommand{schema: schema}
}

func (sc *SchemaCommand) Name() string {
	return sc.schema.Name
}

func (sc *SchemaCommand) Description() string {
	return sc.schema.Description
}

func (sc *SchemaCommand) DefineArgs(parser *cmdargs.Parser) error {
	for _, arg := range sc.schema.Args {
		opts := []cmdargs.ArgOption{cmdargs.OfType(arg.Type)}
		if arg.Required {
			opts = append(opts, cmdargs.Required())
		}
		if err := parser.AddArg(arg.Name, opts...); err != nil {
			return err
		}
	}
	return nil
}

func (sc *SchemaCommand) Execute(ctx context.Context, inv *cmd.Invocation, w io.Writer) (int, error) {
	for _, spec := range inv.Args.Args() {
		value, ok := spec.Value()
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s %s=%s\n", sc.schema.Name, spec.Name(), shellquote.Join(value))
	}
	return 0, nil
}

// Register adds a SchemaCommand for every schema to m.
func Register(m *cmd.Manager, schemas []*Schema) error {
	for _, schema := range schemas {
		if err := m.Register(NewSchemaCommand(schema)); err != nil {
			return fmt.Errorf("%s: %w", schema.Source, err)
		}
	}
	return nil
}
