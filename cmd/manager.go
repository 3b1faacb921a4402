package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mwantia/cmdargs"
	"github.com/mwantia/cmdargs/log"
	"github.com/tidwall/btree"
)

var (
	ErrNoCommand       = errors.New("cmd: no command specified")
	ErrCommandNotFound = errors.New("cmd: command not found")
	ErrCommandExists   = errors.New("cmd: command already registered")
	ErrInvalidCommand  = errors.New("cmd: invalid command")
)

// Manager handles command registration and dispatches command lines.
// It is safe for concurrent use; every invocation gets its own parser.
type Manager struct {
	mu   sync.RWMutex
	cmds *btree.Map[string, Command]

	logger     *log.Logger
	parserOpts []cmdargs.ParserOption
}

type ManagerOptions struct {
	Logger        *log.Logger
	ParserOptions []cmdargs.ParserOption
}

type ManagerOption func(*ManagerOptions) error

func WithLogger(logger *log.Logger) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.Logger = logger
		return nil
	}
}

// WithParserOptions adds options applied to the parser of every invocation.
func WithParserOptions(parserOpts ...cmdargs.ParserOption) ManagerOption {
	return func(opts *ManagerOptions) error {
		opts.ParserOptions = append(opts.ParserOptions, parserOpts...)
		return nil
	}
}

func NewManager(opts ...ManagerOption) (*Manager, error) {
	options := &ManagerOptions{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Nop()
	}

	return &Manager{
		cmds:       btree.NewMap[string, Command](0),
		logger:     logger.Named("cmd"),
		parserOpts: append([]cmdargs.ParserOption{cmdargs.WithLogger(logger)}, options.ParserOptions...),
	}, nil
}

// Register registers a command
func (m *Manager) Register(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: command cannot be nil", ErrInvalidCommand)
	}

	name := cmd.Name()
	if name == "" || strings.ContainsAny(name, " \t\r\n") {
		return fmt.Errorf("%w: invalid name %q", ErrInvalidCommand, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.cmds.Get(name); exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}

	m.cmds.Set(name, cmd)
	return nil
}

// Unregister removes a registered command
func (m *Manager) Unregister(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, deleted := m.cmds.Delete(name); !deleted {
		return fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	return nil
}

// Get returns a command by name
func (m *Manager) Get(name string) (Command, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cmd, exists := m.cmds.Get(name)
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}
	return cmd, nil
}

// List returns all registered commands sorted by name
func (m *Manager) List() []Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	commands := make([]Command, 0, m.cmds.Len())
	m.cmds.Scan(func(_ string, cmd Command) bool {
		commands = append(commands, cmd)
		return true
	})
	return commands
}

// Describe renders the synopsis and argument list of a command.
func (m *Manager) Describe(name string) (string, error) {
	cmd, err := m.Get(name)
	if err != nil {
		return "", err
	}

	parser, err := m.newParser(cmd)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", cmd.Name(), cmd.Description())
	fmt.Fprintf(&b, "\nUsage: %s\n", parser.Synopsis(cmd.Name()))
	if usage := parser.Usage(); usage != "" {
		fmt.Fprintf(&b, "\nArguments:\n%s", usage)
	}
	return b.String(), nil
}

// Execute parses line against the arguments of the command named by its
// first word and runs that command.
func (m *Manager) Execute(ctx context.Context, line string, w io.Writer) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 1, ErrNoCommand
	}
	if err := ctx.Err(); err != nil {
		return 1, err
	}

	name := fields[0]
	cmd, err := m.Get(name)
	if err != nil {
		return 1, err
	}

	parser, err := m.newParser(cmd)
	if err != nil {
		return 1, err
	}

	inv := &Invocation{
		ID:   uuid.Must(uuid.NewV7()).String(),
		Name: name,
		Line: line,
		Args: parser,
	}

	if !parser.Parse(line) {
		m.logger.Debug("Invocation %s of %s rejected: %v", inv.ID, name, parser.Err())
		return 1, fmt.Errorf("%s: %w", name, parser.Err())
	}
	m.logger.Debug("Invocation %s of %s: %s", inv.ID, name, FormatValues(parser))

	code, err := cmd.Execute(ctx, inv, w)
	if err != nil {
		m.logger.Warn("Invocation %s of %s failed with code %d: %v", inv.ID, name, code, err)
	}
	return code, err
}

func (m *Manager) newParser(cmd Command) (*cmdargs.Parser, error) {
	parser, err := cmdargs.NewParser(m.parserOpts...)
	if err != nil {
		return nil, err
	}

	if err := cmd.DefineArgs(parser); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCommand, cmd.Name(), err)
	}
	return parser, nil
}
