package cmdargs

import (
	"fmt"

	"github.com/mwantia/cmdargs/log"
	"github.com/tidwall/btree"
)

// Parser holds a set of argument definitions and parses command lines
// against them. Arguments are written as "<name> <value>" pairs anywhere in
// the command; values are either double quoted or run up to the next
// whitespace.
//
//	parser, _ := cmdargs.NewParser()
//	parser.AddArg("-pos", cmdargs.Required(), cmdargs.OfType(cmdargs.Vector))
//	parser.AddArg("-count", cmdargs.OfType(cmdargs.Integer))
//
//	if parser.Parse(`Spawn -pos "(X=1,Y=2,Z=3)" -count 5`) {
//		pos, _ := parser.GetVector("-pos")
//		count, _ := parser.GetInt32("-count")
//	}
//
// A Parser is not safe for concurrent use.
type Parser struct {
	specs []*ArgSpec
	index *btree.Map[string, *ArgSpec]

	state State
	err   error

	strict bool
	logger *log.Logger
}

func NewParser(opts ...ParserOption) (*Parser, error) {
	options := newDefaultParserOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &Parser{
		index:  btree.NewMap[string, *ArgSpec](0),
		strict: options.Strict,
		logger: options.logger(),
	}, nil
}

// AddArg registers a new argument. Registration is only possible before the
// first parse, or after Reset.
func (p *Parser) AddArg(name string, opts ...ArgOption) error {
	if p.state != Unparsed {
		return p.misuse(fmt.Errorf("%w: cannot add %s", ErrAlreadyParsed, name))
	}
	if name == "" {
		return p.misuse(ErrEmptyName)
	}

	options := &ArgOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return p.misuse(fmt.Errorf("argument %s: %w", name, err))
		}
	}

	if _, exists := p.index.Get(name); exists {
		return p.misuse(fmt.Errorf("%w: %s", ErrDuplicateArg, name))
	}

	spec := &ArgSpec{
		name:     name,
		required: options.Required,
		argType:  options.Type,
	}
	p.specs = append(p.specs, spec)
	p.index.Set(name, spec)

	return nil
}

// Parse extracts and validates every registered argument from command, in
// registration order. It stops at the first argument that is missing while
// required, has no value, or fails type validation; Err describes that
// failure until the next Parse or Reset.
func (p *Parser) Parse(command string) bool {
	p.err = nil
	for _, spec := range p.specs {
		spec.reset()
	}

	for _, spec := range p.specs {
		if err := p.parseArg(spec, command); err != nil {
			p.logger.Error("Failed to parse command %q: %v", command, err)
			p.err = err
			p.state = Invalid
			return false
		}
	}

	p.state = Valid
	return true
}

func (p *Parser) parseArg(spec *ArgSpec, command string) error {
	rest, found := locate(command, spec.name)
	if !found {
		if spec.required {
			return fmt.Errorf("%w: %s", ErrMissingArg, spec.name)
		}
		return nil
	}

	value, ok := extractValue(rest)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoValue, spec.name)
	}

	if err := Validate(value, spec.argType); err != nil {
		return fmt.Errorf("argument %s: %w", spec.name, err)
	}

	spec.capture(value)
	return nil
}

// Reset drops every argument definition and parse result, returning the
// parser to the state NewParser left it in.
func (p *Parser) Reset() {
	for _, spec := range p.specs {
		spec.reset()
	}

	p.state = Unparsed
	p.err = nil
	p.specs = nil
	p.index.Clear()
}

func (p *Parser) State() State {
	return p.state
}

// Err returns the reason the last Parse failed, or nil.
func (p *Parser) Err() error {
	return p.err
}

// Args returns the registered arguments in registration order.
func (p *Parser) Args() []*ArgSpec {
	specs := make([]*ArgSpec, len(p.specs))
	copy(specs, p.specs)
	return specs
}

func (p *Parser) Lookup(name string) (*ArgSpec, bool) {
	return p.index.Get(name)
}

// Has reports whether the last successful parse captured a value for name.
// Unlike the getters it never treats a missing value as misuse.
func (p *Parser) Has(name string) bool {
	if p.state != Valid {
		return false
	}
	spec, ok := p.index.Get(name)
	return ok && spec.captured
}

func (p *Parser) misuse(err error) error {
	if p.strict {
		panic(err)
	}
	p.logger.Warn("%v", err)
	return err
}
