package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/mwantia/cmdargs"
)

var (
	ErrInvalidSchema    = errors.New("catalog: invalid schema")
	ErrDuplicateCommand = errors.New("catalog: duplicate command")
)

// hclFile represents the top-level structure of a schema file for decoding.
type hclFile struct {
	Commands []*hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Name        string    `hcl:"name,label"`
	Description string    `hcl:"description,optional"`
	Args        []*hclArg `hcl:"arg,block"`
}

type hclArg struct {
	Name        string `hcl:"name,label"`
	Required    bool   `hcl:"required,optional"`
	Type        string `hcl:"type,optional"`
	Description string `hcl:"description,optional"`
}

// Schema declares a command and the arguments its parser expects.
type Schema struct {
	Name        string
	Description string
	Args        []ArgSchema

	// File or key the schema was decoded from
	Source string
}

type ArgSchema struct {
	Name        string
	Required    bool
	Type        cmdargs.ArgType
	Description string
}

// Decode parses src as a schema file. filename is only used in diagnostics.
func Decode(filename string, src []byte) ([]*Schema, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidSchema, filename, diags)
	}

	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode %s: %w", ErrInvalidSchema, filename, diags)
	}

	schemas := make([]*Schema, 0, len(parsed.Commands))
	for _, block := range parsed.Commands {
		schema, err := newSchema(block, filename)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, schema)
	}

	return schemas, nil
}

func newSchema(block *hclCommand, filename string) (*Schema, error) {
	if block.Name == "" || strings.ContainsAny(block.Name, " \t\r\n") {
		return nil, fmt.Errorf("%w: %s: invalid command name %q", ErrInvalidSchema, filename, block.Name)
	}

	schema := &Schema{
		Name:        block.Name,
		Description: block.Description,
		Args:        make([]ArgSchema, 0, len(block.Args)),
		Source:      filename,
	}

	seen := make(map[string]struct{}, len(block.Args))
	for _, arg := range block.Args {
		if arg.Name == "" {
			return nil, fmt.Errorf("%w: %s: command %s has an argument without name", ErrInvalidSchema, filename, block.Name)
		}
		if _, exists := seen[arg.Name]; exists {
			return nil, fmt.Errorf("%w: %s: command %s declares %s twice", ErrInvalidSchema, filename, block.Name, arg.Name)
		}
		seen[arg.Name] = struct{}{}

		argType, err := cmdargs.ParseArgType(arg.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: command %s argument %s: %w", ErrInvalidSchema, filename, block.Name, arg.Name, err)
		}

		schema.Args = append(schema.Args, ArgSchema{
			Name:        arg.Name,
			Required:    arg.Required,
			Type:        argType,
			Description: arg.Description,
		})
	}

	return schema, nil
}

// merge appends schemas to dst, rejecting names already present in seen.
func merge(dst []*Schema, seen map[string]string, schemas []*Schema) ([]*Schema, error) {
	for _, schema := range schemas {
		if prev, exists := seen[schema.Name]; exists {
			return nil, fmt.Errorf("%w: %s defined in %s and %s", ErrDuplicateCommand, schema.Name, prev, schema.Source)
		}
		seen[schema.Name] = schema.Source
		dst = append(dst, schema)
	}
	return dst, nil
}
